package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/connectify/connectify/internal/facade"
	"github.com/connectify/connectify/pkg/domain"
)

type adminSection int

const (
	secDashboard adminSection = iota
	secProducts
	secBrands
	secCategories
	secOrders
	secUsers
)

var sectionNames = map[adminSection]string{
	secDashboard:  "dashboard",
	secProducts:   "products",
	secBrands:     "brands",
	secCategories: "categories",
	secOrders:     "orders",
	secUsers:      "users",
}

type adminLoadedMsg struct {
	products   []domain.Electronic
	brands     []domain.Brand
	categories []domain.Category
	invoices   []domain.Invoice
	users      []domain.User
	errText    string
}

// adminActionMsg carries the outcome of any admin write.
type adminActionMsg struct {
	ok      bool
	message string
}

// formField is one line of an admin edit form. Cycle fields flip
// through options with h/l instead of free text.
type formField struct {
	label   string
	value   string
	secret  bool
	options []string // non-nil makes this a cycle field
}

func (f formField) cycle(dir int) formField {
	if len(f.options) == 0 {
		return f
	}
	idx := 0
	for i, o := range f.options {
		if o == f.value {
			idx = i
			break
		}
	}
	idx = (idx + dir + len(f.options)) % len(f.options)
	f.value = f.options[idx]
	return f
}

type adminModel struct {
	svc *Services

	section adminSection
	cursor  map[adminSection]int
	detail  bool // order detail open

	searching bool // query applies to brands and users sections
	query     string
	statusIdx int // 0 = all, otherwise InvoiceStatuses[statusIdx-1]

	products   []domain.Electronic
	brands     []domain.Brand
	categories []domain.Category
	invoices   []domain.Invoice
	users      []domain.User

	// form state; formOpen implies fields is populated
	formOpen   bool
	formTitle  string
	fields     []formField
	focus      int
	editID     uuid.UUID // nil for create
	submitting bool

	loading bool
	errText string
	width   int
	height  int
}

func newAdminModel(svc *Services) adminModel {
	return adminModel{
		svc:     svc,
		cursor:  map[adminSection]int{},
		loading: true,
	}
}

func (m adminModel) editing() bool {
	return m.formOpen || m.searching
}

// visibleBrands and visibleUsers apply the section search query;
// visibleInvoices applies the status filter. Every row operation
// goes through these so the cursor always indexes what is shown.
func (m adminModel) visibleBrands() []domain.Brand {
	return domain.SearchBrands(m.brands, m.query)
}

func (m adminModel) visibleUsers() []domain.User {
	return domain.SearchUsers(m.users, m.query)
}

func (m adminModel) statusFilter() string {
	if m.statusIdx > 0 && m.statusIdx <= len(domain.InvoiceStatuses) {
		return domain.InvoiceStatuses[m.statusIdx-1]
	}
	return ""
}

func (m adminModel) visibleInvoices() []domain.Invoice {
	return domain.FilterInvoicesByStatus(m.invoices, m.statusFilter())
}

func (m adminModel) Init() tea.Cmd {
	return m.load()
}

func (m adminModel) load() tea.Cmd {
	svc := m.svc
	return func() tea.Msg {
		ctx := context.Background()
		msg := adminLoadedMsg{}

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
		if res := svc.Orders.ListAll(ctx); res.OK {
			msg.invoices = res.Data
		} else {
			msg.errText = res.Message
			return msg
		}
		if res := svc.Users.List(ctx); res.OK {
			msg.users = res.Data
		}
		return msg
	}
}

func (m adminModel) Update(msg tea.Msg) (adminModel, tea.Cmd) {
	switch msg := msg.(type) {
	case adminLoadedMsg:
		m.loading = false
		m.errText = msg.errText
		if msg.errText == "" {
			m.products = msg.products
			m.brands = msg.brands
			m.categories = msg.categories
			m.invoices = msg.invoices
			m.users = msg.users
		}
		return m, nil

	case adminActionMsg:
		m.submitting = false
		if !msg.ok {
			return m, func() tea.Msg { return flashMsg{text: msg.message, isErr: true} }
		}
		m.formOpen = false
		m.loading = true
		return m, tea.Batch(m.load(), func() tea.Msg { return flashMsg{text: "saved"} })

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		return m.updateKeys(msg)
	}
	return m, nil
}

func (m adminModel) rowCount() int {
	switch m.section {
	case secProducts:
		return len(m.products)
	case secBrands:
		return len(m.visibleBrands())
	case secCategories:
		return len(m.categories)
	case secOrders:
		return len(m.visibleInvoices())
	case secUsers:
		return len(m.visibleUsers())
	}
	return 0
}

func (m adminModel) clampCursor() adminModel {
	if n := m.rowCount(); m.cursor[m.section] >= n {
		if n == 0 {
			m.cursor[m.section] = 0
		} else {
			m.cursor[m.section] = n - 1
		}
	}
	return m
}

func (m adminModel) updateKeys(msg tea.KeyMsg) (adminModel, tea.Cmd) {
	key := msg.String()

	if m.formOpen {
		return m.updateFormKeys(key)
	}
	if m.searching {
		switch key {
		case "enter", "esc":
			m.searching = false
		default:
			m.query = editRune(m.query, key)
			m = m.clampCursor()
		}
		return m, nil
	}
	if m.detail {
		if key == "esc" {
			m.detail = false
		}
		if key == "s" {
			return m.advanceOrderStatus()
		}
		return m, nil
	}

	switch key {
	case "tab", "]":
		m.section = (m.section + 1) % 6
		m.query = ""
	case "shift+tab", "[":
		m.section = (m.section + 5) % 6
		m.query = ""
	case "j", "down":
		if m.cursor[m.section] < m.rowCount()-1 {
			m.cursor[m.section]++
		}
	case "k", "up":
		if m.cursor[m.section] > 0 {
			m.cursor[m.section]--
		}
	case "/":
		if m.section == secBrands || m.section == secUsers {
			m.searching = true
			m.query = ""
		}
	case "f":
		if m.section == secOrders {
			m.statusIdx = (m.statusIdx + 1) % (len(domain.InvoiceStatuses) + 1)
			m = m.clampCursor()
		}
	case "r":
		m.loading = true
		return m, m.load()
	case "n":
		return m.openCreateForm(), nil
	case "e":
		return m.openEditForm(), nil
	case "d":
		return m.deleteCurrent()
	case "s":
		if m.section == secOrders {
			return m.advanceOrderStatus()
		}
	case "enter":
		if m.section == secOrders && len(m.visibleInvoices()) > 0 {
			m.detail = true
		}
	}
	return m, nil
}

func (m adminModel) updateFormKeys(key string) (adminModel, tea.Cmd) {
	switch key {
	case "esc":
		m.formOpen = false
	case "tab", "down":
		m.focus = (m.focus + 1) % len(m.fields)
	case "shift+tab", "up":
		m.focus = (m.focus - 1 + len(m.fields)) % len(m.fields)
	case "ctrl+s":
		return m.submitForm()
	case "enter":
		if m.focus < len(m.fields)-1 {
			m.focus++
			return m, nil
		}
		return m.submitForm()
	default:
		f := m.fields[m.focus]
		if len(f.options) > 0 {
			switch key {
			case "l", " ":
				m.fields[m.focus] = f.cycle(1)
			case "h":
				m.fields[m.focus] = f.cycle(-1)
			}
			return m, nil
		}
		m.fields[m.focus].value = editRune(f.value, key)
	}
	return m, nil
}

func brandNames(brands []domain.Brand) []string {
	out := make([]string, len(brands))
	for i, b := range brands {
		out[i] = b.Name
	}
	return out
}

func categoryNames(cats []domain.Category) []string {
	out := make([]string, len(cats))
	for i, c := range cats {
		out[i] = c.Name
	}
	return out
}

func (m adminModel) openCreateForm() adminModel {
	m.editID = uuid.Nil
	m.focus = 0
	switch m.section {
	case secProducts:
		if len(m.brands) == 0 || len(m.categories) == 0 {
			return m
		}
		m.formTitle = "New product"
		m.fields = []formField{
			{label: "name"},
			{label: "price"},
			{label: "stock"},
			{label: "image"},
			{label: "description"},
			{label: "brand", value: m.brands[0].Name, options: brandNames(m.brands)},
			{label: "category", value: m.categories[0].Name, options: categoryNames(m.categories)},
		}
	case secBrands:
		m.formTitle = "New brand"
		m.fields = []formField{{label: "name"}, {label: "image"}}
	case secCategories:
		m.formTitle = "New category"
		m.fields = []formField{{label: "name"}}
	case secUsers:
		m.formTitle = "New user"
		m.fields = []formField{
			{label: "email"},
			{label: "fullname"},
			{label: "phone"},
			{label: "type", value: domain.TypeUser, options: []string{domain.TypeUser, domain.TypeAdmin}},
			{label: "password", secret: true},
		}
	default:
		return m
	}
	m.formOpen = true
	return m
}

func (m adminModel) openEditForm() adminModel {
	i := m.cursor[m.section]
	m.focus = 0
	switch m.section {
	case secProducts:
		if i >= len(m.products) || len(m.brands) == 0 || len(m.categories) == 0 {
			return m
		}
		p := m.products[i]
		brand := p.BrandID
		brandName := m.brands[0].Name
		for _, b := range m.brands {
			if b.ID == brand {
				brandName = b.Name
			}
		}
		catName := m.categories[0].Name
		for _, c := range m.categories {
			if c.ID == p.CategoryID {
				catName = c.Name
			}
		}
		m.formTitle = "Edit product"
		m.editID = p.ID
		m.fields = []formField{
			{label: "name", value: p.Name},
			{label: "price", value: strconv.FormatInt(p.Price, 10)},
			{label: "stock", value: strconv.Itoa(p.Stock)},
			{label: "image", value: p.Image},
			{label: "description", value: p.Description},
			{label: "brand", value: brandName, options: brandNames(m.brands)},
			{label: "category", value: catName, options: categoryNames(m.categories)},
		}
	case secBrands:
		brands := m.visibleBrands()
		if i >= len(brands) {
			return m
		}
		b := brands[i]
		m.formTitle = "Edit brand"
		m.editID = b.ID
		m.fields = []formField{{label: "name", value: b.Name}, {label: "image", value: b.Image}}
	case secCategories:
		if i >= len(m.categories) {
			return m
		}
		c := m.categories[i]
		m.formTitle = "Edit category"
		m.editID = c.ID
		m.fields = []formField{{label: "name", value: c.Name}}
	case secUsers:
		users := m.visibleUsers()
		if i >= len(users) {
			return m
		}
		u := users[i]
		m.formTitle = "Edit user"
		m.editID = u.UserID
		m.fields = []formField{
			{label: "email", value: u.Email},
			{label: "fullname", value: u.Fullname},
			{label: "phone", value: u.Phonenumber},
			{label: "type", value: u.Type, options: []string{domain.TypeUser, domain.TypeAdmin}},
			{label: "password", secret: true},
		}
	default:
		return m
	}
	m.formOpen = true
	return m
}

func (m adminModel) fieldValue(label string) string {
	for _, f := range m.fields {
		if f.label == label {
			return strings.TrimSpace(f.value)
		}
	}
	return ""
}

func (m adminModel) submitForm() (adminModel, tea.Cmd) {
	if m.submitting {
		return m, nil
	}
	m.submitting = true
	svc := m.svc
	editID := m.editID

	switch m.section {
	case secProducts:
		price, _ := strconv.ParseInt(m.fieldValue("price"), 10, 64)
		stock, _ := strconv.Atoi(m.fieldValue("stock"))
		var brandID, catID uuid.UUID
		for _, b := range m.brands {
			if b.Name == m.fieldValue("brand") {
				brandID = b.ID
			}
		}
		if c := domain.CategoryByName(m.categories, m.fieldValue("category")); c != nil {
			catID = c.ID
		}
		in := facade.ProductInput{
			Name:        m.fieldValue("name"),
			Price:       price,
			Stock:       stock,
			Image:       m.fieldValue("image"),
			Description: m.fieldValue("description"),
			BrandID:     brandID,
			CategoryID:  catID,
		}
		return m, func() tea.Msg {
			if editID == uuid.Nil {
				return toActionMsg(resultMessage(svc.Catalog.Create(context.Background(), in)))
			}
			return toActionMsg(resultMessage(svc.Catalog.Update(context.Background(), editID, in)))
		}

	case secBrands:
		in := facade.BrandInput{Name: m.fieldValue("name"), Image: m.fieldValue("image")}
		return m, func() tea.Msg {
			if editID == uuid.Nil {
				return toActionMsg(resultMessage(svc.Brands.Create(context.Background(), in)))
			}
			return toActionMsg(resultMessage(svc.Brands.Update(context.Background(), editID, in)))
		}

	case secCategories:
		name := m.fieldValue("name")
		return m, func() tea.Msg {
			if editID == uuid.Nil {
				return toActionMsg(resultMessage(svc.Categories.Create(context.Background(), name)))
			}
			return toActionMsg(resultMessage(svc.Categories.Update(context.Background(), editID, name)))
		}

	case secUsers:
		in := facade.UserInput{
			Email:       m.fieldValue("email"),
			Fullname:    m.fieldValue("fullname"),
			Phonenumber: m.fieldValue("phone"),
			Type:        m.fieldValue("type"),
			Password:    m.fieldValue("password"),
		}
		return m, func() tea.Msg {
			if editID == uuid.Nil {
				return toActionMsg(resultMessage(svc.Users.Create(context.Background(), in)))
			}
			return toActionMsg(resultMessage(svc.Users.Update(context.Background(), editID, in)))
		}
	}

	m.submitting = false
	return m, nil
}

// resultMessage flattens a Result into (ok, message) for adminActionMsg.
func resultMessage[T any](res facade.Result[T]) (bool, string) {
	return res.OK, res.Message
}

func toActionMsg(ok bool, message string) adminActionMsg {
	return adminActionMsg{ok: ok, message: message}
}

func (m adminModel) deleteCurrent() (adminModel, tea.Cmd) {
	svc := m.svc
	i := m.cursor[m.section]
	var id uuid.UUID
	var do func(context.Context, uuid.UUID) facade.Result[facade.Done]

	switch m.section {
	case secProducts:
		if i >= len(m.products) {
			return m, nil
		}
		id, do = m.products[i].ID, svc.Catalog.Delete
	case secBrands:
		brands := m.visibleBrands()
		if i >= len(brands) {
			return m, nil
		}
		id, do = brands[i].ID, svc.Brands.Delete
	case secCategories:
		if i >= len(m.categories) {
			return m, nil
		}
		id, do = m.categories[i].ID, svc.Categories.Delete
	case secUsers:
		users := m.visibleUsers()
		if i >= len(users) {
			return m, nil
		}
		id, do = users[i].UserID, svc.Users.Delete
	default:
		return m, nil
	}

	return m, func() tea.Msg {
		return toActionMsg(resultMessage(do(context.Background(), id)))
	}
}

// advanceOrderStatus moves the selected order to the next status in
// the lifecycle, wrapping back to pending after cancelled.
func (m adminModel) advanceOrderStatus() (adminModel, tea.Cmd) {
	i := m.cursor[secOrders]
	visible := m.visibleInvoices()
	if i >= len(visible) {
		return m, nil
	}
	inv := visible[i]
	next := domain.InvoiceStatuses[0]
	for j, s := range domain.InvoiceStatuses {
		if s == inv.Status {
			next = domain.InvoiceStatuses[(j+1)%len(domain.InvoiceStatuses)]
			break
		}
	}
	svc := m.svc
	return m, func() tea.Msg {
		return toActionMsg(resultMessage(svc.Orders.SetStatus(context.Background(), inv.ID, next)))
	}
}

func (m adminModel) helpKeys() string {
	if m.formOpen {
		return helpEntry("tab", "next") + "  " + helpEntry("h/l", "cycle") + "  " + helpEntry("ctrl+s", "save") + "  " + helpEntry("esc", "cancel")
	}
	if m.detail {
		return helpEntry("s", "next status") + "  " + helpEntry("esc", "back")
	}
	if m.searching {
		return helpEntry("type", "search") + "  " + helpEntry("enter", "done") + "  " + helpEntry("esc", "cancel")
	}
	switch m.section {
	case secOrders:
		return helpEntry("[/]", "section") + "  " + helpEntry("j/k", "nav") + "  " + helpEntry("f", "filter") + "  " + helpEntry("s", "next status") + "  " + helpEntry("enter", "detail") + "  " + helpEntry("q", "quit")
	case secDashboard:
		return helpEntry("1-5", "tabs") + "  " + helpEntry("[/]", "section") + "  " + helpEntry("r", "reload") + "  " + helpEntry("q", "quit")
	case secBrands, secUsers:
		return helpEntry("[/]", "section") + "  " + helpEntry("j/k", "nav") + "  " + helpEntry("/", "search") + "  " + helpEntry("n", "new") + "  " + helpEntry("e", "edit") + "  " + helpEntry("d", "delete") + "  " + helpEntry("q", "quit")
	default:
		return helpEntry("[/]", "section") + "  " + helpEntry("j/k", "nav") + "  " + helpEntry("n", "new") + "  " + helpEntry("e", "edit") + "  " + helpEntry("d", "delete") + "  " + helpEntry("q", "quit")
	}
}

func (m adminModel) View() string {
	if m.loading && len(m.products) == 0 && len(m.invoices) == 0 {
		return " " + dimStyle.Render("loading admin console...")
	}
	if m.errText != "" {
		return " " + errStyle.Render(m.errText)
	}

	var sb strings.Builder

	// Section bar
	var bar []string
	for s := secDashboard; s <= secUsers; s++ {
		name := sectionNames[s]
		if s == m.section {
			bar = append(bar, selectedStyle.Underline(true).Render(name))
		} else {
			bar = append(bar, dimStyle.Render(name))
		}
	}
	sb.WriteString(" " + strings.Join(bar, "  ") + "\n\n")

	if m.formOpen {
		sb.WriteString(m.formView())
		return sb.String()
	}
	if m.detail && m.cursor[secOrders] < len(m.visibleInvoices()) {
		sb.WriteString(renderInvoiceDetail(m.visibleInvoices()[m.cursor[secOrders]]))
		return sb.String()
	}

	switch m.section {
	case secDashboard:
		sb.WriteString(m.dashboardView())
	case secProducts:
		sb.WriteString(m.productsView())
	case secBrands:
		sb.WriteString(m.searchLine())
		for i, b := range m.visibleBrands() {
			sb.WriteString(m.row(i, brandStyle.Render(b.Name)))
		}
	case secCategories:
		for i, c := range m.categories {
			sb.WriteString(m.row(i, categoryStyle.Render(c.Name)))
		}
	case secOrders:
		sb.WriteString(m.ordersView())
	case secUsers:
		sb.WriteString(m.usersView())
	}
	return sb.String()
}

func (m adminModel) searchLine() string {
	if m.searching {
		return " " + searchStyle.Render("/"+m.query) + accentStyle.Render("█") + "\n\n"
	}
	if m.query != "" {
		return " " + searchStyle.Render("/"+m.query) + "\n\n"
	}
	return ""
}

func (m adminModel) row(i int, body string) string {
	cursor := "  "
	if i == m.cursor[m.section] {
		cursor = accentStyle.Render("> ")
	}
	return " " + cursor + body + "\n"
}

func (m adminModel) dashboardView() string {
	var sb strings.Builder
	now := time.Now()

	revenue := domain.RevenueForMonth(m.invoices, now.Year(), now.Month())
	tally := domain.StatusTally(m.invoices)
	low := domain.LowStock(m.products, domain.DefaultLowStockThreshold)

	sb.WriteString(" " + metaStyle.Render("products") + "    " + normalStyle.Render(strconv.Itoa(len(m.products))) + "\n")
	sb.WriteString(" " + metaStyle.Render("users") + "       " + normalStyle.Render(strconv.Itoa(len(m.users))) + "\n")
	sb.WriteString(" " + metaStyle.Render("orders") + "      " + normalStyle.Render(strconv.Itoa(len(m.invoices))) + "\n")
	sb.WriteString(" " + metaStyle.Render("revenue") + "     " + priceStyle.Render(formatPrice(revenue)) +
		dimStyle.Render("  (delivered, "+now.Format("Jan 2006")+")") + "\n\n")

	var parts []string
	for _, s := range domain.InvoiceStatuses {
		if tally[s] > 0 {
			parts = append(parts, StatusStyle(s).Render(fmt.Sprintf("%s %d", s, tally[s])))
		}
	}
	if len(parts) > 0 {
		sb.WriteString(" " + strings.Join(parts, "   ") + "\n\n")
	}

	if len(low) > 0 {
		sb.WriteString(" " + stockLowStyle.Render("low stock") + "\n")
		for _, p := range low {
			sb.WriteString(fmt.Sprintf("   %s  %s\n",
				normalStyle.Render(truncStr(p.Name, 40)),
				stockLowStyle.Render(fmt.Sprintf("%d left", p.Stock))))
		}
	}
	return sb.String()
}

func (m adminModel) productsView() string {
	var sb strings.Builder
	for i, p := range m.products {
		stock := dimStyle.Render(strconv.Itoa(p.Stock))
		if p.Stock <= domain.DefaultLowStockThreshold {
			stock = stockLowStyle.Render(strconv.Itoa(p.Stock))
		}
		sb.WriteString(m.row(i, fmt.Sprintf("%s  %s  %s",
			normalStyle.Render(truncStr(p.Name, 36)),
			priceStyle.Render(formatPrice(p.Price)),
			stock)))
	}
	return sb.String()
}

func (m adminModel) ordersView() string {
	var sb strings.Builder

	filter := "all"
	if s := m.statusFilter(); s != "" {
		filter = s
	}
	visible := m.visibleInvoices()
	sb.WriteString(" " + metaStyle.Render("status:") + " " + StatusStyle(filter).Render(filter) + "\n\n")

	for i, inv := range visible {
		short := inv.ID.String()
		if len(short) > 8 {
			short = short[:8]
		}
		sb.WriteString(m.row(i, fmt.Sprintf("%s  %s  %s  %s",
			normalStyle.Render(short),
			StatusStyle(inv.Status).Render(fmt.Sprintf("%-10s", inv.Status)),
			priceStyle.Render(formatPrice(inv.TotalPrice)),
			metaStyle.Render(formatTime(inv.CreatedAt)))))
	}
	if len(visible) == 0 {
		sb.WriteString(" " + dimStyle.Render("no orders match") + "\n")
		return sb.String()
	}
	sb.WriteString("\n " + metaStyle.Render("total") + "  " + priceStyle.Render(formatPrice(domain.InvoicesTotal(visible))) + "\n")
	return sb.String()
}

func (m adminModel) usersView() string {
	var sb strings.Builder
	sb.WriteString(m.searchLine())
	for i, u := range m.visibleUsers() {
		role := dimStyle.Render(u.Type)
		if u.IsAdmin() {
			role = adminStyle.Render(u.Type)
		}
		sb.WriteString(m.row(i, fmt.Sprintf("%s  %s  %s",
			normalStyle.Render(truncStr(u.Email, 30)),
			dimStyle.Render(truncStr(u.Fullname, 24)),
			role)))
	}
	return sb.String()
}

func (m adminModel) formView() string {
	var sb strings.Builder
	sb.WriteString(" " + selectedStyle.Render(m.formTitle) + "\n\n")
	for i, f := range m.fields {
		cursor := " "
		style := metaStyle
		if i == m.focus {
			cursor = ">"
			style = selectedStyle
		}
		value := f.value
		if f.secret {
			value = strings.Repeat("*", len(value))
		}
		if len(f.options) > 0 {
			fmt.Fprintf(&sb, " %s %s: %s  %s\n", cursor, style.Render(f.label),
				accentStyle.Render(value), dimStyle.Render("(h/l to cycle)"))
			continue
		}
		if i == m.focus {
			value += "█"
		}
		fmt.Fprintf(&sb, " %s %s: %s\n", cursor, style.Render(f.label), value)
	}
	if m.submitting {
		sb.WriteString("\n " + dimStyle.Render("saving...") + "\n")
	}
	return sb.String()
}
