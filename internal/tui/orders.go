package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/connectify/connectify/pkg/domain"
)

type ordersLoadedMsg struct {
	invoices []domain.Invoice
	errText  string
}

type ordersModel struct {
	svc *Services

	invoices []domain.Invoice
	cursor   int
	detail   bool

	loading bool
	errText string
	width   int
	height  int
}

func newOrdersModel(svc *Services) ordersModel {
	return ordersModel{svc: svc, loading: true}
}

func (m ordersModel) Init() tea.Cmd {
	return m.load()
}

func (m ordersModel) load() tea.Cmd {
	svc := m.svc
	return func() tea.Msg {
		res := svc.Orders.History(context.Background())
		if !res.OK {
			return ordersLoadedMsg{errText: res.Message}
		}
		return ordersLoadedMsg{invoices: res.Data}
	}
}

func (m ordersModel) Update(msg tea.Msg) (ordersModel, tea.Cmd) {
	switch msg := msg.(type) {
	case ordersLoadedMsg:
		m.loading = false
		m.errText = msg.errText
		if msg.errText == "" {
			m.invoices = msg.invoices
			if m.cursor >= len(m.invoices) {
				m.cursor = 0
			}
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		switch msg.String() {
		case "j", "down":
			if !m.detail && m.cursor < len(m.invoices)-1 {
				m.cursor++
			}
		case "k", "up":
			if !m.detail && m.cursor > 0 {
				m.cursor--
			}
		case "enter":
			if len(m.invoices) > 0 {
				m.detail = true
			}
		case "esc":
			m.detail = false
		case "r":
			m.loading = true
			return m, m.load()
		}
	}
	return m, nil
}

func (m ordersModel) View() string {
	if m.loading && len(m.invoices) == 0 {
		return " " + dimStyle.Render("loading your orders...")
	}
	if m.errText != "" {
		return " " + errStyle.Render(m.errText)
	}
	if len(m.invoices) == 0 {
		return " " + dimStyle.Render("no orders yet")
	}

	if m.detail && m.cursor < len(m.invoices) {
		return renderInvoiceDetail(m.invoices[m.cursor])
	}

	var sb strings.Builder
	for i, inv := range m.invoices {
		cursor := "  "
		style := normalStyle
		if i == m.cursor {
			cursor = accentStyle.Render("> ")
			style = selectedStyle
		}
		short := inv.ID.String()
		if len(short) > 8 {
			short = short[:8]
		}
		sb.WriteString(fmt.Sprintf(" %s%s  %s  %s  %s\n",
			cursor,
			style.Render(short),
			StatusStyle(inv.Status).Render(inv.Status),
			priceStyle.Render(formatPrice(inv.TotalPrice)),
			metaStyle.Render(formatTime(inv.CreatedAt))))
	}
	return sb.String()
}

// renderInvoiceDetail is shared by the order history and the admin
// order console.
func renderInvoiceDetail(inv domain.Invoice) string {
	var sb strings.Builder
	sb.WriteString(" " + selectedStyle.Render("Order "+inv.ID.String()) + "\n\n")
	sb.WriteString(" " + metaStyle.Render("status") + "    " + StatusStyle(inv.Status).Render(inv.Status) + "\n")
	sb.WriteString(" " + metaStyle.Render("address") + "   " + normalStyle.Render(inv.Address) + "\n")
	sb.WriteString(" " + metaStyle.Render("payment") + "   " + normalStyle.Render(inv.PaymentMethod) + "\n")
	if inv.Note != "" {
		sb.WriteString(" " + metaStyle.Render("note") + "      " + dimStyle.Render(inv.Note) + "\n")
	}
	sb.WriteString("\n")
	for _, it := range inv.PurchasedItems {
		sb.WriteString(fmt.Sprintf("   %s ×%d  %s\n",
			normalStyle.Render(truncStr(it.Name, 40)),
			it.Quantity,
			priceStyle.Render(formatPrice(it.Price*int64(it.Quantity)))))
	}
	sb.WriteString("\n " + metaStyle.Render("total") + "     " + priceStyle.Render(formatPrice(inv.TotalPrice)) + "\n")
	return sb.String()
}
