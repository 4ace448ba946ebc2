package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/connectify/connectify/internal/browser"
	"github.com/connectify/connectify/pkg/domain"
)

// sortModes is the cycle order for the s key.
var sortModes = []string{domain.SortNewest, domain.SortPriceAsc, domain.SortPriceDesc, domain.SortName}

// shopLoadedMsg carries the catalog plus the filter dimensions.
type shopLoadedMsg struct {
	products   []domain.Electronic
	brands     []domain.Brand
	categories []domain.Category
	errText    string
}

// cartAddedMsg carries the outcome of an add-to-cart.
type cartAddedMsg struct {
	ok      bool
	message string
	count   int
}

type shopModel struct {
	svc *Services

	products   []domain.Electronic
	brands     []domain.Brand
	categories []domain.Category

	visible []domain.Electronic // after search/filter/sort
	cursor  int
	detail  bool
	qty     int

	searching bool
	query     string
	catIdx    int // 0 = all, otherwise categories[catIdx-1]
	brandIdx  int // 0 = all, otherwise brands[brandIdx-1]
	sortIdx   int // index into sortModes

	loading bool
	errText string
	width   int
	height  int
}

func newShopModel(svc *Services) shopModel {
	return shopModel{svc: svc, qty: 1, loading: true}
}

func (m shopModel) Init() tea.Cmd {
	return m.load()
}

func (m shopModel) load() tea.Cmd {
	svc := m.svc
	return func() tea.Msg {
		ctx := context.Background()
		msg := shopLoadedMsg{}

		if res := svc.Catalog.List(ctx); res.OK {
			msg.products = res.Data
		} else {
			msg.errText = res.Message
			return msg
		}
		if res := svc.Brands.List(ctx); res.OK {
			msg.brands = res.Data
		}
		if res := svc.Categories.List(ctx); res.OK {
			msg.categories = res.Data
		}
		return msg
	}
}

// refilter recomputes the visible slice from the full catalog.
func (m shopModel) refilter() shopModel {
	items := m.products
	if m.catIdx > 0 && m.catIdx <= len(m.categories) {
		items = domain.FilterByCategory(items, m.categories[m.catIdx-1].ID)
	}
	if m.brandIdx > 0 && m.brandIdx <= len(m.brands) {
		items = domain.FilterByBrand(items, m.brands[m.brandIdx-1].ID)
	}
	if m.query != "" {
		items = domain.SearchElectronics(items, m.query)
	}
	m.visible = domain.SortElectronics(items, sortModes[m.sortIdx])
	if m.cursor >= len(m.visible) {
		m.cursor = len(m.visible) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	return m
}

func (m shopModel) Update(msg tea.Msg) (shopModel, tea.Cmd) {
	switch msg := msg.(type) {
	case shopLoadedMsg:
		m.loading = false
		m.errText = msg.errText
		if msg.errText == "" {
			m.products = msg.products
			m.brands = msg.brands
			m.categories = msg.categories
			m = m.refilter()
		}
		return m, nil

	case cartAddedMsg:
		if msg.ok {
			return m, func() tea.Msg {
				return flashMsg{text: fmt.Sprintf("added to cart (%d items)", msg.count)}
			}
		}
		return m, func() tea.Msg {
			return flashMsg{text: msg.message, isErr: true}
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		return m.updateKeys(msg)
	}
	return m, nil
}

func (m shopModel) updateKeys(msg tea.KeyMsg) (shopModel, tea.Cmd) {
	key := msg.String()

	if m.searching {
		switch key {
		case "enter", "esc":
			m.searching = false
		default:
			m.query = editRune(m.query, key)
			m = m.refilter()
		}
		return m, nil
	}

	if m.detail {
		return m.updateDetailKeys(key)
	}

	switch key {
	case "j", "down":
		if m.cursor < len(m.visible)-1 {
			m.cursor++
		}
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
	case "/":
		m.searching = true
		m.query = ""
		m = m.refilter()
	case "f":
		m.catIdx = (m.catIdx + 1) % (len(m.categories) + 1)
		m = m.refilter()
	case "b":
		m.brandIdx = (m.brandIdx + 1) % (len(m.brands) + 1)
		m = m.refilter()
	case "s":
		m.sortIdx = (m.sortIdx + 1) % len(sortModes)
		m = m.refilter()
	case "r":
		m.loading = true
		return m, m.load()
	case "enter":
		if len(m.visible) > 0 {
			m.detail = true
			m.qty = 1
		}
	case "a":
		if len(m.visible) > 0 {
			return m, m.addToCart(m.visible[m.cursor].ID, 1)
		}
	}
	return m, nil
}

func (m shopModel) updateDetailKeys(key string) (shopModel, tea.Cmd) {
	// A reload can empty the visible slice while detail is open.
	if m.cursor >= len(m.visible) {
		m.detail = false
		return m, nil
	}
	p := m.visible[m.cursor]
	switch key {
	case "esc":
		m.detail = false
	case "+", "l":
		if m.qty < p.Stock {
			m.qty++
		}
	case "-", "h":
		if m.qty > 1 {
			m.qty--
		}
	case "a", "enter":
		return m, m.addToCart(p.ID, m.qty)
	case "c":
		clipboard.WriteAll(p.Name) //nolint:errcheck // best-effort copy
		return m, func() tea.Msg {
			return flashMsg{text: "product name copied"}
		}
	case "o":
		if p.Image != "" {
			browser.Open(p.Image) //nolint:errcheck // best-effort browser open
		}
	}
	return m, nil
}

func (m shopModel) addToCart(id uuid.UUID, qty int) tea.Cmd {
	svc := m.svc
	return func() tea.Msg {
		res := svc.Cart.Add(context.Background(), id, qty)
		if !res.OK {
			return cartAddedMsg{message: res.Message}
		}
		count := 0
		for _, it := range res.Data.Items {
			count += it.Quantity
		}
		return cartAddedMsg{ok: true, count: count}
	}
}

func (m shopModel) helpKeys() string {
	if m.searching {
		return helpEntry("type", "search") + "  " + helpEntry("enter", "done") + "  " + helpEntry("esc", "cancel")
	}
	if m.detail {
		return helpEntry("+/-", "qty") + "  " + helpEntry("a", "add to cart") + "  " + helpEntry("c", "copy") + "  " + helpEntry("o", "image") + "  " + helpEntry("esc", "back")
	}
	return helpEntry("1-5", "tabs") + "  " + helpEntry("j/k", "nav") + "  " + helpEntry("/", "search") + "  " + helpEntry("f", "category") + "  " + helpEntry("b", "brand") + "  " + helpEntry("s", "sort") + "  " + helpEntry("a", "add") + "  " + helpEntry("enter", "detail") + "  " + helpEntry("q", "quit")
}

func (m shopModel) sortLabel() string {
	switch sortModes[m.sortIdx] {
	case domain.SortPriceAsc:
		return "price ↑"
	case domain.SortPriceDesc:
		return "price ↓"
	case domain.SortName:
		return "name"
	default:
		return "newest"
	}
}

func (m shopModel) View() string {
	if m.loading && len(m.products) == 0 {
		return " " + dimStyle.Render("loading products...")
	}
	if m.errText != "" {
		return " " + errStyle.Render("error: "+m.errText)
	}

	if m.detail && m.cursor < len(m.visible) {
		return m.detailView()
	}

	var sb strings.Builder

	// Filter line: search box, category, sort
	search := ""
	if m.searching {
		search = searchStyle.Render("/"+m.query) + accentStyle.Render("█")
	} else if m.query != "" {
		search = searchStyle.Render("/" + m.query)
	} else {
		search = metaStyle.Render("/ to search")
	}
	cat := "all"
	if m.catIdx > 0 && m.catIdx <= len(m.categories) {
		cat = m.categories[m.catIdx-1].Name
	}
	brand := "all"
	if m.brandIdx > 0 && m.brandIdx <= len(m.brands) {
		brand = m.brands[m.brandIdx-1].Name
	}
	sb.WriteString(" " + search +
		"   " + metaStyle.Render("category:") + " " + categoryStyle.Render(cat) +
		"   " + metaStyle.Render("brand:") + " " + brandStyle.Render(brand) +
		"   " + metaStyle.Render("sort:") + " " + normalStyle.Render(m.sortLabel()) + "\n\n")

	if len(m.visible) == 0 {
		sb.WriteString(" " + dimStyle.Render("no products match"))
		return sb.String()
	}

	maxRows := m.height - 4
	if maxRows < 5 {
		maxRows = 10
	}
	start := 0
	if m.cursor >= maxRows {
		start = m.cursor - maxRows + 1
	}

	for i := start; i < len(m.visible) && i-start < maxRows; i++ {
		p := m.visible[i]
		cursor := "  "
		nameStyle := normalStyle
		if i == m.cursor {
			cursor = accentStyle.Render("> ")
			nameStyle = selectedStyle
		}

		stock := dimStyle.Render(fmt.Sprintf("%d in stock", p.Stock))
		if p.Stock == 0 {
			stock = stockLowStyle.Render("out of stock")
		} else if p.Stock <= domain.DefaultLowStockThreshold {
			stock = stockLowStyle.Render(fmt.Sprintf("only %d left", p.Stock))
		}

		brand := ""
		if p.Brand != nil {
			brand = brandStyle.Render(p.Brand.Name) + " "
		}

		sb.WriteString(fmt.Sprintf(" %s%s  %s  %s%s\n",
			cursor,
			nameStyle.Render(truncStr(p.Name, 40)),
			priceStyle.Render(formatPrice(p.Price)),
			brand,
			stock))
	}

	return sb.String()
}

func (m shopModel) detailView() string {
	p := m.visible[m.cursor]
	var sb strings.Builder

	sb.WriteString(" " + selectedStyle.Render(p.Name) + "\n\n")
	sb.WriteString(" " + metaStyle.Render("price") + "     " + priceStyle.Render(formatPrice(p.Price)) + "\n")
	if p.Brand != nil {
		sb.WriteString(" " + metaStyle.Render("brand") + "     " + brandStyle.Render(p.Brand.Name) + "\n")
	}
	if p.Category != nil {
		sb.WriteString(" " + metaStyle.Render("category") + "  " + categoryStyle.Render(p.Category.Name) + "\n")
	}
	sb.WriteString(" " + metaStyle.Render("stock") + "     " + normalStyle.Render(fmt.Sprintf("%d", p.Stock)) + "\n")
	if p.Description != "" {
		sb.WriteString("\n " + dimStyle.Render(truncStr(p.Description, 400)) + "\n")
	}
	sb.WriteString("\n " + metaStyle.Render("quantity") + "  " + selectedStyle.Render(fmt.Sprintf("%d", m.qty)) + dimStyle.Render("  (+/- to change, a to add)") + "\n")

	return sb.String()
}
