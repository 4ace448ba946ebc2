package facade

import (
	"context"

	"github.com/connectify/connectify/internal/session"
)

// ensureAdmin is the mandatory pre-flight check before a privileged
// write: a fresh identity lookup, never the cached role flag. A stale
// or forged client-side flag must not be able to trigger the
// privileged request, so on any failure the write is not sent.
// Returns "" when the caller is a confirmed admin, otherwise the
// failure message for the short-circuited Result.
func ensureAdmin(ctx context.Context, identity session.Identity) string {
	me, err := identity.GetMe(ctx)
	if err != nil {
		return msgNotLoggedIn
	}
	if !me.IsAdmin() {
		return msgNotAdmin
	}
	return ""
}
