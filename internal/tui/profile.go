package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/connectify/connectify/internal/facade"
	"github.com/connectify/connectify/pkg/domain"
)

type profileLoadedMsg struct {
	user    *domain.User
	errText string
}

type profileSavedMsg struct {
	ok      bool
	message string
}

type profileField int

const (
	pfFullname profileField = iota
	pfPhone
	pfPassword
	numProfileFields
)

type profileModel struct {
	svc *Services

	user *domain.User

	editing bool
	fields  [numProfileFields]string
	focus   profileField
	saving  bool

	loading bool
	errText string
	width   int
	height  int
}

func newProfileModel(svc *Services) profileModel {
	return profileModel{svc: svc, loading: true}
}

func (m profileModel) Init() tea.Cmd {
	return m.load()
}

func (m profileModel) load() tea.Cmd {
	svc := m.svc
	return func() tea.Msg {
		res := svc.Auth.Me(context.Background())
		if !res.OK {
			return profileLoadedMsg{errText: res.Message}
		}
		return profileLoadedMsg{user: res.Data}
	}
}

func (m profileModel) Update(msg tea.Msg) (profileModel, tea.Cmd) {
	switch msg := msg.(type) {
	case profileLoadedMsg:
		m.loading = false
		m.errText = msg.errText
		if msg.errText == "" {
			m.user = msg.user
		}
		return m, nil

	case profileSavedMsg:
		m.saving = false
		if !msg.ok {
			return m, func() tea.Msg { return flashMsg{text: msg.message, isErr: true} }
		}
		m.editing = false
		m.loading = true
		return m, tea.Batch(m.load(), func() tea.Msg { return flashMsg{text: "profile saved"} })

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		return m.updateKeys(msg)
	}
	return m, nil
}

func (m profileModel) updateKeys(msg tea.KeyMsg) (profileModel, tea.Cmd) {
	key := msg.String()

	if m.editing {
		switch key {
		case "esc":
			m.editing = false
		case "tab", "down":
			m.focus = (m.focus + 1) % numProfileFields
		case "shift+tab", "up":
			m.focus = (m.focus - 1 + numProfileFields) % numProfileFields
		case "ctrl+s", "enter":
			return m.save()
		default:
			m.fields[m.focus] = editRune(m.fields[m.focus], key)
		}
		return m, nil
	}

	switch key {
	case "e":
		if m.user != nil {
			m.editing = true
			m.focus = pfFullname
			m.fields[pfFullname] = m.user.Fullname
			m.fields[pfPhone] = m.user.Phonenumber
			m.fields[pfPassword] = ""
		}
	case "r":
		m.loading = true
		return m, m.load()
	case "x":
		svc := m.svc
		return m, func() tea.Msg {
			if res := svc.Auth.Logout(); !res.OK {
				return flashMsg{text: res.Message, isErr: true}
			}
			return loggedOutMsg{}
		}
	}
	return m, nil
}

func (m profileModel) save() (profileModel, tea.Cmd) {
	if m.saving {
		return m, nil
	}
	m.saving = true
	svc := m.svc
	in := facade.UpdateProfileInput{
		Fullname:    m.fields[pfFullname],
		Phonenumber: m.fields[pfPhone],
		Password:    m.fields[pfPassword],
	}
	return m, func() tea.Msg {
		res := svc.Auth.UpdateProfile(context.Background(), in)
		if !res.OK {
			return profileSavedMsg{message: res.Message}
		}
		return profileSavedMsg{ok: true}
	}
}

func (m profileModel) helpKeys() string {
	if m.editing {
		return helpEntry("tab", "next") + "  " + helpEntry("ctrl+s", "save") + "  " + helpEntry("esc", "cancel")
	}
	return helpEntry("1-5", "tabs") + "  " + helpEntry("e", "edit") + "  " + helpEntry("x", "logout") + "  " + helpEntry("q", "quit")
}

func (m profileModel) View() string {
	if m.loading && m.user == nil {
		return " " + dimStyle.Render("loading your profile...")
	}
	if m.errText != "" {
		return " " + errStyle.Render(m.errText)
	}
	if m.user == nil {
		return " " + dimStyle.Render("not logged in")
	}

	if m.editing {
		return m.editView()
	}

	var sb strings.Builder
	sb.WriteString(" " + selectedStyle.Render(m.user.Fullname) + "\n\n")
	sb.WriteString(" " + metaStyle.Render("email") + "     " + normalStyle.Render(m.user.Email) + "\n")
	sb.WriteString(" " + metaStyle.Render("phone") + "     " + normalStyle.Render(m.user.Phonenumber) + "\n")
	role := "customer"
	if m.user.IsAdmin() {
		role = "admin"
	}
	sb.WriteString(" " + metaStyle.Render("role") + "      " + adminStyle.Render(role) + "\n")
	if exp, ok := m.svc.Session.ExpiryHint(); ok {
		sb.WriteString(" " + metaStyle.Render("session") + "   " + dimStyle.Render("expires "+exp.Format("2006-01-02 15:04")) + "\n")
	}
	return sb.String()
}

func (m profileModel) editView() string {
	var sb strings.Builder
	sb.WriteString(" " + selectedStyle.Render("Edit profile") + "\n\n")

	labels := [numProfileFields]string{"fullname", "phone", "new password"}
	for i := profileField(0); i < numProfileFields; i++ {
		cursor := " "
		style := metaStyle
		if i == m.focus {
			cursor = ">"
			style = selectedStyle
		}
		value := m.fields[i]
		if i == pfPassword {
			value = strings.Repeat("*", len(value))
		}
		if i == m.focus {
			value += "█"
		}
		fmt.Fprintf(&sb, " %s %s: %s\n", cursor, style.Render(labels[i]), value)
	}
	if m.saving {
		sb.WriteString("\n " + dimStyle.Render("saving...") + "\n")
	}
	return sb.String()
}
