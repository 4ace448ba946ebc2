package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/connectify/connectify/internal/facade"
)

type loginField int

const (
	lfEmail loginField = iota
	lfPassword
	lfFullname
	lfPhone
	numLoginFields
)

// loginCancelledMsg is emitted when the user backs out of the form.
type loginCancelledMsg struct{}

type loginDoneMsg struct {
	ok      bool
	message string
}

type signupDoneMsg struct {
	ok      bool
	message string
}

// loginModel is the combined login/signup form. Signup mode exposes
// the two extra fields.
type loginModel struct {
	svc *Services

	signup     bool
	fields     [numLoginFields]string
	focus      loginField
	submitting bool
	errText    string

	width  int
	height int
}

func newLoginModel(svc *Services) loginModel {
	return loginModel{svc: svc}
}

func (m loginModel) Init() tea.Cmd {
	return nil
}

func (m loginModel) fieldCount() loginField {
	if m.signup {
		return numLoginFields
	}
	return lfFullname // email + password only
}

func (m loginModel) Update(msg tea.Msg) (loginModel, tea.Cmd) {
	switch msg := msg.(type) {
	case loginDoneMsg:
		m.submitting = false
		if !msg.ok {
			m.errText = msg.message
			return m, nil
		}
		return m, func() tea.Msg { return loggedInMsg{} }

	case signupDoneMsg:
		m.submitting = false
		if !msg.ok {
			m.errText = msg.message
			return m, nil
		}
		// Account created; switch back to login with the email kept.
		m.signup = false
		m.fields[lfPassword] = ""
		m.focus = lfPassword
		return m, func() tea.Msg { return flashMsg{text: "account created, please log in"} }

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		return m.updateKeys(msg)
	}
	return m, nil
}

func (m loginModel) updateKeys(msg tea.KeyMsg) (loginModel, tea.Cmd) {
	m.errText = ""
	switch key := msg.String(); key {
	case "tab", "down":
		m.focus = (m.focus + 1) % m.fieldCount()
	case "shift+tab", "up":
		m.focus = (m.focus - 1 + m.fieldCount()) % m.fieldCount()
	case "ctrl+s":
		m.signup = !m.signup
		m.focus = lfEmail
	case "esc":
		return m, func() tea.Msg { return loginCancelledMsg{} }
	case "enter":
		if m.focus < m.fieldCount()-1 {
			m.focus++
			return m, nil
		}
		return m.submit()
	default:
		m.fields[m.focus] = editRune(m.fields[m.focus], key)
	}
	return m, nil
}

func (m loginModel) submit() (loginModel, tea.Cmd) {
	if m.submitting {
		return m, nil
	}
	m.submitting = true
	svc := m.svc

	if m.signup {
		in := facade.SignupInput{
			Email:       strings.TrimSpace(m.fields[lfEmail]),
			Password:    m.fields[lfPassword],
			Fullname:    strings.TrimSpace(m.fields[lfFullname]),
			Phonenumber: strings.TrimSpace(m.fields[lfPhone]),
		}
		return m, func() tea.Msg {
			res := svc.Auth.Signup(context.Background(), in)
			if !res.OK {
				return signupDoneMsg{message: res.Message}
			}
			return signupDoneMsg{ok: true}
		}
	}

	in := facade.LoginInput{
		Email:    strings.TrimSpace(m.fields[lfEmail]),
		Password: m.fields[lfPassword],
	}
	return m, func() tea.Msg {
		res := svc.Auth.Login(context.Background(), in)
		if !res.OK {
			return loginDoneMsg{message: res.Message}
		}
		return loginDoneMsg{ok: true}
	}
}

func (m loginModel) View() string {
	var sb strings.Builder

	title := "Log in"
	if m.signup {
		title = "Create an account"
	}
	sb.WriteString(" " + selectedStyle.Render(title) + "\n\n")

	labels := [numLoginFields]string{"email", "password", "fullname", "phone"}
	for i := loginField(0); i < m.fieldCount(); i++ {
		cursor := " "
		style := metaStyle
		if i == m.focus {
			cursor = ">"
			style = selectedStyle
		}
		value := m.fields[i]
		if i == lfPassword {
			value = strings.Repeat("*", len(value))
		}
		if i == m.focus {
			value += "█"
		}
		fmt.Fprintf(&sb, " %s %s: %s\n", cursor, style.Render(labels[i]), value)
	}

	sb.WriteString("\n")
	if m.submitting {
		sb.WriteString(" " + dimStyle.Render("signing in...") + "\n")
	} else if m.errText != "" {
		sb.WriteString(" " + errStyle.Render(m.errText) + "\n")
	}
	if m.signup {
		sb.WriteString("\n " + dimStyle.Render("ctrl+s to switch to login") + "\n")
	} else {
		sb.WriteString("\n " + dimStyle.Render("ctrl+s to create an account instead") + "\n")
	}
	return sb.String()
}
