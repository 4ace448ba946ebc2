package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/connectify/connectify/internal/access"
	"github.com/connectify/connectify/internal/facade"
	"github.com/connectify/connectify/internal/session"
)

type view int

const (
	viewShop view = iota
	viewCart
	viewOrders
	viewProfile
	viewAdmin
	viewLogin
	viewNone view = -1
)

// requirementFor maps each view to its guard requirement.
func requirementFor(v view) access.Requirement {
	switch v {
	case viewCart, viewOrders, viewProfile:
		return access.Authenticated
	case viewAdmin:
		return access.AdminOnly
	default:
		return access.Public
	}
}

// Services bundles everything the screens need. The session store is
// shared so every screen sees the same identity.
type Services struct {
	Session    *session.Store
	Auth       *facade.Auth
	Catalog    *facade.Catalog
	Brands     *facade.Brands
	Categories *facade.Categories
	Cart       *facade.Cart
	Orders     *facade.Orders
	Users      *facade.Users
}

// sessionResolvedMsg carries the outcome of the startup identity check.
type sessionResolvedMsg struct {
	state session.State
}

// loggedInMsg is emitted by the login screen after a successful login.
type loggedInMsg struct{}

// loggedOutMsg is emitted by the profile screen after logout.
type loggedOutMsg struct{}

// flashMsg sets the transient status line.
type flashMsg struct {
	text  string
	isErr bool
}

// App is the root Bubbletea model.
type App struct {
	svc     *Services
	version string

	view    view
	pending view // guarded view requested before identity was known

	shop    shopModel
	cart    cartModel
	orders  ordersModel
	profile profileModel
	admin   adminModel
	login   loginModel

	helpOpen bool
	status   string
	statusOK bool
	width    int
	height   int
	frame    int // logo shimmer animation frame
}

// NewApp creates the root application model.
func NewApp(svc *Services, version string) App {
	return App{
		svc:     svc,
		version: version,
		pending: viewNone,
		shop:    newShopModel(svc),
		cart:    newCartModel(svc),
		orders:  newOrdersModel(svc),
		profile: newProfileModel(svc),
		admin:   newAdminModel(svc),
		login:   newLoginModel(svc),
	}
}

func (a App) Init() tea.Cmd {
	return tea.Batch(a.shop.Init(), shimmerTickCmd(), a.resolveSession())
}

func (a App) resolveSession() tea.Cmd {
	sess := a.svc.Session
	return func() tea.Msg {
		return sessionResolvedMsg{state: sess.Resolve(context.Background())}
	}
}

// navigate runs the guard table for the requested view and either
// mounts it, parks it until identity is known, or redirects.
func (a App) navigate(v view) (App, tea.Cmd) {
	if v == viewLogin {
		a.view = viewLogin
		a.login = newLoginModel(a.svc)
		return a, nil
	}

	switch access.Decide(a.svc.Session.State(), a.svc.Session.User(), requirementFor(v)) {
	case access.Allow:
		a.view = v
		a.pending = viewNone
		return a, a.initFor(v)
	case access.Wait:
		a.pending = v
		a.status = "checking your session..."
		a.statusOK = true
		if a.svc.Session.State() == session.StateUnresolved {
			return a, a.resolveSession()
		}
		return a, nil
	case access.RedirectToLogin:
		a.pending = v
		a.view = viewLogin
		a.login = newLoginModel(a.svc)
		return a, nil
	default: // access.RedirectHome
		a.view = viewShop
		a.pending = viewNone
		a.status = "admin privileges are required for this action"
		a.statusOK = false
		return a, a.shop.Init()
	}
}

func (a App) initFor(v view) tea.Cmd {
	switch v {
	case viewShop:
		return a.shop.Init()
	case viewCart:
		return a.cart.Init()
	case viewOrders:
		return a.orders.Init()
	case viewProfile:
		return a.profile.Init()
	case viewAdmin:
		return a.admin.Init()
	}
	return nil
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		// Chrome: header(2) + tabs(1) + status(1) + help(1) = 5 lines
		bodyMsg := tea.WindowSizeMsg{Width: msg.Width, Height: msg.Height - 5}
		a.shop, _ = a.shop.Update(bodyMsg)
		a.cart, _ = a.cart.Update(bodyMsg)
		a.orders, _ = a.orders.Update(bodyMsg)
		a.profile, _ = a.profile.Update(bodyMsg)
		a.admin, _ = a.admin.Update(bodyMsg)
		a.login, _ = a.login.Update(bodyMsg)

	case shimmerTickMsg:
		a.frame++
		return a, shimmerTickCmd()

	case sessionResolvedMsg:
		if a.pending != viewNone {
			want := a.pending
			a.pending = viewNone
			a.status = ""
			return a.navigate(want)
		}
		return a, nil

	case loggedInMsg:
		a.status = "welcome back, " + a.svc.Session.User().Fullname
		a.statusOK = true
		if a.pending != viewNone {
			want := a.pending
			a.pending = viewNone
			return a.navigate(want)
		}
		return a.navigate(viewShop)

	case loginCancelledMsg:
		a.pending = viewNone
		return a.navigate(viewShop)

	case loggedOutMsg:
		a.status = "logged out"
		a.statusOK = true
		a.pending = viewNone
		return a.navigate(viewShop)

	case flashMsg:
		a.status = msg.text
		a.statusOK = !msg.isErr
		// Screens may also react, e.g. to reload after a write.

	case tea.KeyMsg:
		a.status = ""

		if a.helpOpen {
			switch msg.String() {
			case "?", "esc":
				a.helpOpen = false
			case "q", "ctrl+c":
				return a, tea.Quit
			}
			return a, nil
		}

		if !a.isEditing() {
			switch msg.String() {
			case "?":
				a.helpOpen = true
				return a, nil
			case "q", "ctrl+c":
				return a, tea.Quit
			case "1":
				return a.navigate(viewShop)
			case "2":
				return a.navigate(viewCart)
			case "3":
				return a.navigate(viewOrders)
			case "4":
				return a.navigate(viewProfile)
			case "5":
				return a.navigate(viewAdmin)
			case "L":
				if a.svc.Session.State() != session.StateAuthenticated {
					return a.navigate(viewLogin)
				}
			}
		}
	}

	var cmd tea.Cmd
	switch a.view {
	case viewShop:
		a.shop, cmd = a.shop.Update(msg)
	case viewCart:
		a.cart, cmd = a.cart.Update(msg)
	case viewOrders:
		a.orders, cmd = a.orders.Update(msg)
	case viewProfile:
		a.profile, cmd = a.profile.Update(msg)
	case viewAdmin:
		a.admin, cmd = a.admin.Update(msg)
	case viewLogin:
		a.login, cmd = a.login.Update(msg)
	}

	return a, cmd
}

func (a App) isEditing() bool {
	switch a.view {
	case viewLogin:
		return true
	case viewShop:
		return a.shop.searching
	case viewCart:
		return a.cart.checkingOut
	case viewProfile:
		return a.profile.editing
	case viewAdmin:
		return a.admin.editing()
	}
	return false
}

func (a App) View() string {
	logo := renderShimmerLogo(a.frame)

	// Identity line below the logo
	identity := ""
	if me := a.svc.Session.User(); me != nil {
		parts := []string{me.Email}
		if me.IsAdmin() {
			parts = append(parts, adminStyle.Render("admin"))
		}
		if exp, ok := a.svc.Session.ExpiryHint(); ok {
			parts = append(parts, "session until "+exp.Format("15:04"))
		}
		identity = metaStyle.Render(strings.Join(parts, " · "))
	} else if a.svc.Session.State() == session.StateResolving || a.svc.Session.State() == session.StateUnresolved {
		identity = metaStyle.Render("checking session...")
	} else {
		identity = metaStyle.Render("not logged in · press L to log in")
	}

	header := centerLine(logo, a.width) + "\n" + centerLine(identity, a.width)

	// Tab bar: 5 equal-width columns
	type tabEntry struct {
		key  string
		name string
		v    view
	}
	tabs := []tabEntry{
		{"1", "Shop", viewShop},
		{"2", "Cart", viewCart},
		{"3", "Orders", viewOrders},
		{"4", "Profile", viewProfile},
		{"5", "Admin", viewAdmin},
	}

	colWidth := a.width / len(tabs)
	var tabBar strings.Builder
	for _, t := range tabs {
		var label string
		switch {
		case t.v == a.view:
			label = accentStyle.Render(t.key) + " " + selectedStyle.Underline(true).Render(t.name)
		case t.v == viewAdmin && !a.svc.Session.User().IsAdmin():
			label = metaStyle.Render(t.key + " " + t.name)
		default:
			label = metaStyle.Render(t.key) + " " + dimStyle.Render(t.name)
		}
		if t.v == viewCart && a.cart.itemCount() > 0 {
			label += " " + accentStyle.Render(fmt.Sprintf("(%d)", a.cart.itemCount()))
		}
		labelWidth := lipgloss.Width(label)
		leftPad := (colWidth - labelWidth) / 2
		if leftPad < 0 {
			leftPad = 0
		}
		rightPad := colWidth - labelWidth - leftPad
		if rightPad < 0 {
			rightPad = 0
		}
		tabBar.WriteString(strings.Repeat(" ", leftPad) + label + strings.Repeat(" ", rightPad))
	}

	var body string
	var help string
	switch a.view {
	case viewShop:
		body = a.shop.View()
		help = " " + a.shop.helpKeys()
	case viewCart:
		body = a.cart.View()
		help = " " + a.cart.helpKeys()
	case viewOrders:
		body = a.orders.View()
		help = " " + helpEntry("1-5", "tabs") + "  " + helpEntry("j/k", "nav") + "  " + helpEntry("enter", "detail") + "  " + helpEntry("q", "quit")
	case viewProfile:
		body = a.profile.View()
		help = " " + a.profile.helpKeys()
	case viewAdmin:
		body = a.admin.View()
		help = " " + a.admin.helpKeys()
	case viewLogin:
		body = a.login.View()
		help = " " + helpEntry("tab", "next field") + "  " + helpEntry("enter", "submit") + "  " + helpEntry("ctrl+s", "switch login/signup") + "  " + helpEntry("esc", "back")
	}

	if a.helpOpen {
		body = helpView()
		help = " " + helpEntry("esc", "close") + "  " + helpEntry("q", "quit")
	}

	statusLine := ""
	if a.status != "" {
		if a.statusOK {
			statusLine = " " + okStyle.Render(a.status)
		} else {
			statusLine = " " + errStyle.Render(a.status)
		}
	}

	chrome := 5
	body = strings.TrimRight(truncateToHeight(body, a.height-chrome), "\n")

	return fmt.Sprintf("%s\n%s\n%s\n%s\n%s", header, tabBar.String(), body, statusLine, help)
}

// centerLine pads s to the horizontal center of width columns.
func centerLine(s string, width int) string {
	pad := (width - lipgloss.Width(s)) / 2
	if pad < 0 {
		pad = 0
	}
	return strings.Repeat(" ", pad) + s
}
