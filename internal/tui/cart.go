package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/connectify/connectify/internal/facade"
	"github.com/connectify/connectify/pkg/domain"
)

type cartLoadedMsg struct {
	cart    *domain.Cart
	errText string
}

type itemsRemovedMsg struct {
	ok      bool
	message string
}

// checkoutClearedMsg follows a successful checkout: the purchased
// lines have been removed (or not) and the cart reloaded.
type checkoutClearedMsg struct {
	cart       *domain.Cart
	loadErr    string
	orderRef   string
	cleanupErr string
}

// orderPlacedMsg carries the checkout outcome plus the cart lines that
// were purchased and should now be removed.
type orderPlacedMsg struct {
	ok        bool
	message   string
	invoice   *domain.Invoice
	purchased []uuid.UUID
}

type checkoutField int

const (
	coAddress checkoutField = iota
	coPayment
	coNote
	numCheckoutFields
)

type cartModel struct {
	svc *Services

	cart     *domain.Cart
	cursor   int
	selected map[uuid.UUID]bool

	checkingOut bool
	fields      [numCheckoutFields]string
	focus       checkoutField
	submitting  bool

	loading bool
	errText string
	width   int
	height  int
}

func newCartModel(svc *Services) cartModel {
	return cartModel{
		svc:      svc,
		selected: map[uuid.UUID]bool{},
		loading:  true,
	}
}

func (m cartModel) Init() tea.Cmd {
	return m.load()
}

func (m cartModel) load() tea.Cmd {
	svc := m.svc
	return func() tea.Msg {
		res := svc.Cart.Get(context.Background())
		if !res.OK {
			return cartLoadedMsg{errText: res.Message}
		}
		return cartLoadedMsg{cart: res.Data}
	}
}

// itemCount totals the quantities in the loaded cart for the tab badge.
func (m cartModel) itemCount() int {
	if m.cart == nil {
		return 0
	}
	n := 0
	for _, it := range m.cart.Items {
		n += it.Quantity
	}
	return n
}

func (m cartModel) selectedItems() []domain.CartItem {
	if m.cart == nil {
		return nil
	}
	return domain.SelectedItems(m.cart.Items, m.selected)
}

func (m cartModel) Update(msg tea.Msg) (cartModel, tea.Cmd) {
	switch msg := msg.(type) {
	case cartLoadedMsg:
		m.loading = false
		m.errText = msg.errText
		if msg.errText == "" && msg.cart != nil {
			m.cart = msg.cart
			// Drop selections for lines that no longer exist.
			present := map[uuid.UUID]bool{}
			for _, it := range m.cart.Items {
				present[it.CartItemID] = true
			}
			for id := range m.selected {
				if !present[id] {
					delete(m.selected, id)
				}
			}
			if m.cursor >= len(m.cart.Items) {
				m.cursor = len(m.cart.Items) - 1
			}
			if m.cursor < 0 {
				m.cursor = 0
			}
		}
		return m, nil

	case itemsRemovedMsg:
		if !msg.ok {
			return m, func() tea.Msg { return flashMsg{text: msg.message, isErr: true} }
		}
		m.loading = true
		return m, m.load()

	case orderPlacedMsg:
		m.submitting = false
		if !msg.ok {
			return m, func() tea.Msg { return flashMsg{text: msg.message, isErr: true} }
		}
		m.checkingOut = false
		m.fields = [numCheckoutFields]string{}
		m.focus = coAddress
		for _, id := range msg.purchased {
			delete(m.selected, id)
		}
		svc := m.svc
		purchased := msg.purchased
		short := msg.invoice.ID.String()
		if len(short) > 8 {
			short = short[:8]
		}
		return m, func() tea.Msg {
			// Purchased lines leave the cart, then it reloads.
			out := checkoutClearedMsg{orderRef: short}
			if res := svc.Cart.RemoveItems(context.Background(), purchased); !res.OK {
				out.cleanupErr = res.Message
			}
			if res := svc.Cart.Get(context.Background()); res.OK {
				out.cart = res.Data
			} else {
				out.loadErr = res.Message
			}
			return out
		}

	case checkoutClearedMsg:
		m, _ = m.Update(cartLoadedMsg{cart: msg.cart, errText: msg.loadErr})
		if msg.cleanupErr != "" {
			return m, func() tea.Msg {
				return flashMsg{text: "order placed: " + msg.orderRef + ", but the cart could not be cleared: " + msg.cleanupErr, isErr: true}
			}
		}
		return m, func() tea.Msg { return flashMsg{text: "order placed: " + msg.orderRef} }

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		return m.updateKeys(msg)
	}
	return m, nil
}

func (m cartModel) updateKeys(msg tea.KeyMsg) (cartModel, tea.Cmd) {
	key := msg.String()

	if m.checkingOut {
		return m.updateCheckoutKeys(key)
	}
	if m.cart == nil || len(m.cart.Items) == 0 {
		if key == "r" {
			m.loading = true
			return m, m.load()
		}
		return m, nil
	}

	switch key {
	case "j", "down":
		if m.cursor < len(m.cart.Items)-1 {
			m.cursor++
		}
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
	case " ":
		id := m.cart.Items[m.cursor].CartItemID
		m.selected[id] = !m.selected[id]
	case "A":
		all := len(m.selectedItems()) == len(m.cart.Items)
		for _, it := range m.cart.Items {
			m.selected[it.CartItemID] = !all
		}
	case "d":
		sel := m.selectedItems()
		if len(sel) == 0 {
			sel = []domain.CartItem{m.cart.Items[m.cursor]}
		}
		ids := make([]uuid.UUID, 0, len(sel))
		for _, it := range sel {
			ids = append(ids, it.CartItemID)
		}
		svc := m.svc
		return m, func() tea.Msg {
			res := svc.Cart.RemoveItems(context.Background(), ids)
			if !res.OK {
				return itemsRemovedMsg{message: res.Message}
			}
			return itemsRemovedMsg{ok: true}
		}
	case "r":
		m.loading = true
		return m, m.load()
	case "enter":
		if len(m.selectedItems()) > 0 {
			m.checkingOut = true
			m.focus = coAddress
			m.fields[coPayment] = domain.PaymentOnDelivery
		}
	}
	return m, nil
}

func (m cartModel) updateCheckoutKeys(key string) (cartModel, tea.Cmd) {
	switch key {
	case "esc":
		m.checkingOut = false
	case "tab", "down":
		m.focus = (m.focus + 1) % numCheckoutFields
	case "shift+tab", "up":
		m.focus = (m.focus - 1 + numCheckoutFields) % numCheckoutFields
	case "ctrl+s", "enter":
		return m.submitOrder()
	default:
		if m.focus == coPayment {
			// Toggle between the two payment methods.
			if key == "h" || key == "l" || key == " " {
				if m.fields[coPayment] == domain.PaymentOnDelivery {
					m.fields[coPayment] = domain.PaymentTransfer
				} else {
					m.fields[coPayment] = domain.PaymentOnDelivery
				}
			}
			return m, nil
		}
		m.fields[m.focus] = editRune(m.fields[m.focus], key)
	}
	return m, nil
}

func (m cartModel) submitOrder() (cartModel, tea.Cmd) {
	if m.submitting {
		return m, nil
	}
	items := m.selectedItems()
	if len(items) == 0 {
		m.checkingOut = false
		return m, nil
	}
	if strings.TrimSpace(m.fields[coAddress]) == "" {
		return m, func() tea.Msg { return flashMsg{text: "delivery address is required", isErr: true} }
	}

	m.submitting = true
	svc := m.svc
	in := facade.CheckoutInput{
		Address:       m.fields[coAddress],
		PaymentMethod: m.fields[coPayment],
		Note:          m.fields[coNote],
		Items:         items,
	}

	return m, func() tea.Msg {
		res := svc.Orders.Checkout(context.Background(), in)
		if !res.OK {
			return orderPlacedMsg{message: res.Message}
		}
		ids := make([]uuid.UUID, 0, len(in.Items))
		for _, it := range in.Items {
			ids = append(ids, it.CartItemID)
		}
		return orderPlacedMsg{ok: true, invoice: res.Data, purchased: ids}
	}
}

func (m cartModel) helpKeys() string {
	if m.checkingOut {
		return helpEntry("tab", "next") + "  " + helpEntry("h/l", "payment") + "  " + helpEntry("ctrl+s", "place order") + "  " + helpEntry("esc", "cancel")
	}
	return helpEntry("1-5", "tabs") + "  " + helpEntry("space", "select") + "  " + helpEntry("A", "all") + "  " + helpEntry("d", "remove") + "  " + helpEntry("enter", "checkout") + "  " + helpEntry("q", "quit")
}

func (m cartModel) View() string {
	if m.loading && m.cart == nil {
		return " " + dimStyle.Render("loading your cart...")
	}
	if m.errText != "" {
		return " " + errStyle.Render(m.errText)
	}
	if m.checkingOut {
		return m.checkoutView()
	}
	if m.cart == nil || len(m.cart.Items) == 0 {
		return " " + dimStyle.Render("your cart is empty")
	}

	var sb strings.Builder
	for i, it := range m.cart.Items {
		cursor := "  "
		nameStyle := normalStyle
		if i == m.cursor {
			cursor = accentStyle.Render("> ")
			nameStyle = selectedStyle
		}
		mark := metaStyle.Render("[ ]")
		if m.selected[it.CartItemID] {
			mark = okStyle.Render("[x]")
		}
		line := priceStyle.Render(formatPrice(it.Electronic.Price * int64(it.Quantity)))
		sb.WriteString(fmt.Sprintf(" %s%s %s ×%d  %s\n",
			cursor, mark,
			nameStyle.Render(truncStr(it.Electronic.Name, 40)),
			it.Quantity, line))
	}

	sb.WriteString("\n " + metaStyle.Render("cart total") + "   " + priceStyle.Render(formatPrice(m.cart.Subtotal())) + "\n")
	if sel := m.selectedItems(); len(sel) > 0 {
		sb.WriteString(" " + metaStyle.Render("selected") + "     " +
			okStyle.Render(formatPrice(domain.SelectionTotal(m.cart.Items, m.selected))) +
			dimStyle.Render(fmt.Sprintf("  (%d lines)", len(sel))) + "\n")
	}
	return sb.String()
}

func (m cartModel) checkoutView() string {
	var sb strings.Builder
	sb.WriteString(" " + selectedStyle.Render("Checkout") + "\n\n")

	labels := [numCheckoutFields]string{"address", "payment", "note"}
	for i := checkoutField(0); i < numCheckoutFields; i++ {
		cursor := " "
		style := metaStyle
		if i == m.focus {
			cursor = ">"
			style = selectedStyle
		}
		value := m.fields[i]
		if i == coPayment {
			fmt.Fprintf(&sb, " %s %s: %s  %s\n", cursor, style.Render(labels[i]),
				accentStyle.Render(value), dimStyle.Render("(h/l to switch)"))
			continue
		}
		if i == m.focus {
			value += "█"
		}
		fmt.Fprintf(&sb, " %s %s: %s\n", cursor, style.Render(labels[i]), value)
	}

	sb.WriteString("\n " + metaStyle.Render("order total") + "  " +
		priceStyle.Render(formatPrice(domain.SelectionTotal(m.cart.Items, m.selected))) + "\n")
	if m.submitting {
		sb.WriteString("\n " + dimStyle.Render("placing order...") + "\n")
	}
	return sb.String()
}
