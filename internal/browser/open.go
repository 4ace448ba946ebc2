// Package browser opens URLs in the user's default browser. The shop
// uses it to show product images, which a terminal cannot render.
package browser

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"
)

// Open launches the default browser for url. The BROWSER environment
// variable, when set, overrides platform detection.
func Open(url string) error {
	if cmd := os.Getenv("BROWSER"); cmd != "" {
		return exec.Command(cmd, url).Start()
	}
	switch runtime.GOOS {
	case "darwin":
		return exec.Command("open", url).Start()
	case "linux":
		return exec.Command("xdg-open", url).Start()
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", url).Start()
	default:
		return fmt.Errorf("unsupported OS: %s", runtime.GOOS)
	}
}
