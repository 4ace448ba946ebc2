package domain

import "testing"

func TestIsAdmin(t *testing.T) {
	if (&User{Type: TypeUser}).IsAdmin() {
		t.Error("regular user reported as admin")
	}
	if !(&User{Type: TypeAdmin}).IsAdmin() {
		t.Error("admin user not reported as admin")
	}
	var nobody *User
	if nobody.IsAdmin() {
		t.Error("nil user reported as admin")
	}
}

func TestSearchUsers(t *testing.T) {
	users := []User{
		{Email: "alice@example.com", Fullname: "Alice Nguyen", Phonenumber: "0901234567"},
		{Email: "bob@example.com", Fullname: "Bob Tran", Phonenumber: "0912345678"},
	}

	tests := []struct {
		name  string
		query string
		want  int
	}{
		{"empty matches all", "", 2},
		{"email match", "alice@", 1},
		{"fullname case insensitive", "TRAN", 1},
		{"phone match", "0901", 1},
		{"no match", "carol", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SearchUsers(users, tt.query); len(got) != tt.want {
				t.Errorf("SearchUsers(%q) returned %d users, want %d", tt.query, len(got), tt.want)
			}
		})
	}
}
