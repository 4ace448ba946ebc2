package domain

import (
	"strings"

	"github.com/google/uuid"
)

// User types as reported by the backend.
const (
	TypeUser  = "user"
	TypeAdmin = "admin"
)

// User represents a registered Connectify account.
// The cached copy held by the session is a UI convenience only; the
// backend re-checks the type on every privileged call.
type User struct {
	UserID      uuid.UUID `json:"userId"`
	Email       string    `json:"email"`
	Fullname    string    `json:"fullname"`
	Phonenumber string    `json:"phonenumber"`
	Type        string    `json:"type"` // "user" or "admin"
	Avatar      string    `json:"avatar,omitempty"`
}

// IsAdmin reports whether the user carries the admin type flag.
func (u *User) IsAdmin() bool {
	return u != nil && u.Type == TypeAdmin
}

// SearchUsers returns users whose email, fullname, or phone number
// contains the query, case-insensitively. An empty query matches all.
func SearchUsers(users []User, query string) []User {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return users
	}
	var out []User
	for _, u := range users {
		if strings.Contains(strings.ToLower(u.Email), query) ||
			strings.Contains(strings.ToLower(u.Fullname), query) ||
			strings.Contains(u.Phonenumber, query) {
			out = append(out, u)
		}
	}
	return out
}
