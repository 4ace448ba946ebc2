package tui

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/connectify/connectify/pkg/domain"
)

// Shimmer animation for the CONNECTIFY logo.
type shimmerTickMsg time.Time

func shimmerTickCmd() tea.Cmd {
	return tea.Tick(80*time.Millisecond, func(t time.Time) tea.Msg {
		return shimmerTickMsg(t)
	})
}

// renderShimmerLogo renders "C O N N E C T I F Y" as a flowing wave of
// blue light. Deep navy (#14283c) -> bright sky (#38bdf8).
func renderShimmerLogo(frame int) string {
	const text = "CONNECTIFY"
	n := len(text)

	var out string
	t := float64(frame)

	for i := 0; i < n; i++ {
		x := float64(i) / float64(n-1)

		phase := t*0.1 - x*3.0
		phase += math.Sin(t*0.023) * 2.0

		b := math.Sin(phase)*0.5 + 0.5
		b = math.Pow(b, 1.3)

		tide := math.Sin(t*0.035) * 0.12
		b = b*0.75 + tide + 0.18

		if b > 1.0 {
			b = 1.0
		} else if b < 0.05 {
			b = 0.05
		}

		// Deep:   (20, 40, 60)    #14283c
		// Bright: (56, 189, 248)  #38bdf8
		r := clampByte(20 + b*(56-20))
		g := clampByte(40 + b*(189-40))
		bl := clampByte(60 + b*(248-60))

		color := fmt.Sprintf("#%02X%02X%02X", r, g, bl)

		s := lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(color))
		out += s.Render(string(text[i]))

		if i < n-1 {
			out += " "
		}
	}

	return out
}

func clampByte(v float64) int {
	if v > 255 {
		return 255
	}
	if v < 0 {
		return 0
	}
	return int(v)
}

var (
	// Base styles
	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#8890a0"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#e4e4ec")).
			Bold(true)

	normalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#c0c4d0"))

	metaStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#505868"))

	// Help bar
	helpKeyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#8890a0"))

	helpLabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#505868"))

	// Search / accent
	searchStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#38bdf8")).
			Bold(true)

	accentStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#0ea5e9"))

	priceStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#fbbf24"))

	brandStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#c084e0"))

	categoryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#3ecce4"))

	stockLowStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#e06060"))

	okStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ade80"))

	errStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#b45555"))

	adminStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#d4a844")).
			Bold(true)

	inputPromptStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#0ea5e9")).
				Bold(true)

	inputPlaceholderStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#343c4a"))

	// Order status colors
	statusColors = map[string]lipgloss.Color{
		domain.StatusPending:   lipgloss.Color("#fbbf24"),
		domain.StatusConfirmed: lipgloss.Color("#60a0e0"),
		domain.StatusShipping:  lipgloss.Color("#3ecce4"),
		domain.StatusDelivered: lipgloss.Color("#4ade80"),
		domain.StatusCancelled: lipgloss.Color("#b45555"),
	}
)

// StatusStyle returns a bold style colored for the given order status.
func StatusStyle(status string) lipgloss.Style {
	if c, ok := statusColors[status]; ok {
		return lipgloss.NewStyle().Foreground(c).Bold(true)
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color("#606878")).Bold(true)
}

// helpEntry renders a single "key label" pair for help bars.
func helpEntry(key, label string) string {
	return helpKeyStyle.Render(key) + " " + helpLabelStyle.Render(label)
}

// helpView renders the help overlay.
func helpView() string {
	title := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#38bdf8")).
		Bold(true).
		Render("C O N N E C T I F Y")

	cmdStyle := lipgloss.NewStyle().Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	sectionStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true)

	commands := []struct{ cmd, desc string }{
		{"connectify", "Open the store (interactive TUI)"},
		{"connectify login", "Log in with email and password"},
		{"connectify logout", "Clear your session"},
		{"connectify --version", "Show version"},
	}

	keys := []struct{ key, desc string }{
		{"1-5", "switch tabs"},
		{"j/k", "move the cursor"},
		{"/", "search products"},
		{"enter", "open the selected item"},
		{"esc", "go back"},
		{"q", "quit"},
	}

	var b strings.Builder
	fmt.Fprintf(&b, "\n  %s\n\n", title)

	fmt.Fprintf(&b, "  %s\n", sectionStyle.Render("Commands"))
	for _, c := range commands {
		fmt.Fprintf(&b, "    %s  %s\n", cmdStyle.Render(fmt.Sprintf("%-24s", c.cmd)), descStyle.Render(c.desc))
	}

	fmt.Fprintf(&b, "\n  %s\n", sectionStyle.Render("Keys"))
	for _, k := range keys {
		fmt.Fprintf(&b, "    %s  %s\n", cmdStyle.Render(fmt.Sprintf("%-24s", k.key)), descStyle.Render(k.desc))
	}
	return b.String()
}
