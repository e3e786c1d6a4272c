// Package tui renders the interactive storefront: a search field wired to
// the debouncer, a product list, and one-key add-to-cart.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"qkart-cli/internal/client/api"
	"qkart-cli/internal/client/models"
	"qkart-cli/internal/client/search"
	"qkart-cli/internal/client/services"
	"qkart-cli/internal/logging"
)

// Catalog is the slice of the catalog service the view needs.
type Catalog interface {
	FetchAll(ctx context.Context) ([]models.Product, error)
	Search(ctx context.Context, query string) ([]models.Product, error)
}

// Cart is the slice of the cart controller the view needs.
type Cart interface {
	AddOrUpdate(ctx context.Context, session models.Session, productID string, quantity int, isNewAdd bool) error
}

// Deps wires the view to the application services.
type Deps struct {
	Catalog Catalog
	Cart    Cart
	Session models.Session
	Window  time.Duration
	Log     logging.Logger
}

type queryMsg string

type resultsMsg struct {
	query    string
	products []models.Product
	err      error
}

type cartStatusMsg struct {
	name string
	err  error
}

// Model is the bubbletea model for the browse view. Keystrokes feed the
// debouncer; settled queries come back through the queries channel as
// queryMsg and turn into search commands.
type Model struct {
	deps    Deps
	ctx     context.Context
	input   textinput.Model
	deb     *search.Debouncer
	queries chan string

	products []models.Product
	cursor   int
	status   string
	loading  bool
	width    int
	height   int
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10")).Padding(0, 1)
	cursorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	faintStyle  = lipgloss.NewStyle().Faint(true)
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
)

func newModel(ctx context.Context, deps Deps) Model {
	ti := textinput.New()
	ti.Placeholder = "Search for items/categories"
	ti.CharLimit = 64
	ti.Width = 40
	ti.Focus()

	queries := make(chan string, 8)
	deb := search.NewDebouncer(deps.Window, func(q string) {
		queries <- q
	})

	return Model{
		deps:    deps,
		ctx:     ctx,
		input:   ti,
		deb:     deb,
		queries: queries,
	}
}

// Run opens the browse view and blocks until the user leaves it. The
// view's context is cancelled on return so the query-wait command stops
// blocking on the channel.
func Run(ctx context.Context, deps Deps) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	p := tea.NewProgram(newModel(ctx, deps), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.waitForQuery(), m.loadAll())
}

// waitForQuery delivers the next settled query from the debouncer, or
// nothing once the view's context is cancelled.
func (m Model) waitForQuery() tea.Cmd {
	return func() tea.Msg {
		select {
		case q := <-m.queries:
			return queryMsg(q)
		case <-m.ctx.Done():
			return nil
		}
	}
}

func (m Model) loadAll() tea.Cmd {
	return func() tea.Msg {
		products, err := m.deps.Catalog.FetchAll(m.ctx)
		return resultsMsg{products: products, err: err}
	}
}

func (m Model) searchCmd(query string) tea.Cmd {
	return func() tea.Msg {
		products, err := m.deps.Catalog.Search(m.ctx, query)
		return resultsMsg{query: query, products: products, err: err}
	}
}

func (m Model) addCmd(p models.Product) tea.Cmd {
	return func() tea.Msg {
		err := m.deps.Cart.AddOrUpdate(m.ctx, m.deps.Session, p.ID, 1, true)
		return cartStatusMsg{name: p.Name, err: err}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "ctrl+c":
			m.deb.Cancel()
			return m, tea.Quit

		case "up":
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil

		case "down":
			if m.cursor < len(m.products)-1 {
				m.cursor++
			}
			return m, nil

		case "enter":
			if len(m.products) == 0 {
				return m, nil
			}
			return m, m.addCmd(m.products[m.cursor])

		default:
			before := m.input.Value()
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			if m.input.Value() != before {
				m.deb.Keystroke(m.input.Value())
			}
			return m, cmd
		}

	case queryMsg:
		m.loading = true
		return m, tea.Batch(m.searchCmd(string(msg)), m.waitForQuery())

	case resultsMsg:
		m.loading = false
		if msg.err != nil {
			if errors.Is(msg.err, services.ErrStaleResult) {
				// A newer response already applied; nothing to show.
				return m, nil
			}
			m.products = nil
			m.cursor = 0
			m.status = failureMessage(msg.err)
			return m, nil
		}
		m.products = msg.products
		m.status = ""
		if m.cursor >= len(m.products) {
			m.cursor = 0
		}
		return m, nil

	case cartStatusMsg:
		m.status = cartMessage(msg)
		return m, nil
	}

	return m, nil
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("QKart"))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	switch {
	case m.loading:
		b.WriteString(faintStyle.Render("Loading products ..."))
		b.WriteString("\n")
	case len(m.products) == 0:
		b.WriteString(faintStyle.Render("No products found"))
		b.WriteString("\n")
	default:
		rows := m.visibleRows()
		start := 0
		if m.cursor >= rows {
			start = m.cursor - rows + 1
		}
		for i, p := range m.products[start : start+rows] {
			line := fmt.Sprintf("%-30s %-12s $%-8s %s",
				truncate(p.Name, 30), p.Category, p.Cost.String(), stars(p.Rating))
			if start+i == m.cursor {
				b.WriteString(cursorStyle.Render("> " + line))
			} else {
				b.WriteString("  " + line)
			}
			b.WriteString("\n")
		}
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(faintStyle.Render("up/down select · enter add to cart · esc back"))
	b.WriteString("\n")
	return b.String()
}

// visibleRows caps the list so the view fits the terminal.
func (m Model) visibleRows() int {
	rows := len(m.products)
	if m.height > 8 && rows > m.height-8 {
		rows = m.height - 8
	}
	return rows
}

// stars renders a 0..5 rating; anything outside the range is clamped so a
// malformed rating from the backend cannot break rendering.
func stars(rating int) string {
	if rating < 0 {
		rating = 0
	}
	if rating > 5 {
		rating = 5
	}
	return strings.Repeat("*", rating)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}

func failureMessage(err error) string {
	if errors.Is(err, api.ErrUnavailable) {
		return "Could not fetch products. Check that the backend is running."
	}
	return err.Error()
}

func cartMessage(msg cartStatusMsg) string {
	switch {
	case msg.err == nil:
		return fmt.Sprintf("Added %q to cart", msg.name)
	case errors.Is(msg.err, api.ErrDuplicateItem):
		return "Item already in cart. Update it from the cart view instead."
	case errors.Is(msg.err, api.ErrUnauthorized):
		return "Login to add an item to the cart"
	default:
		return failureMessage(msg.err)
	}
}
