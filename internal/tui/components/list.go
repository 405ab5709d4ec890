package components

import (
	"fmt"
	"strings"

	"github.com/Veraticus/parceiro/internal/listview"
	"github.com/Veraticus/parceiro/internal/report"
	"github.com/Veraticus/parceiro/internal/tui/themes"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ListModel renders one filterable list page over any record type.
type ListModel[T listview.Record] struct {
	theme       themes.Theme
	exportLabel string
	emptyAction string
	kind        report.Kind
	result      listview.Result[T]
	view        listview.View[T]
	summary     func([]T) []SummaryCard
	search      textinput.Model
	table       table.Model
	width       int
	height      int
	searching   bool
}

// dimensionKeys binds a key to each filter dimension. The upper case key
// cycles backwards.
var dimensionKeys = []struct {
	dim  listview.Dimension
	key  string
	back string
}{
	{dim: listview.DimensionStatus, key: "s", back: "S"},
	{dim: listview.DimensionType, key: "t", back: "T"},
	{dim: listview.DimensionPeriod, key: "p", back: "P"},
}

// NewListModel creates a list page for a definition.
func NewListModel[T listview.Record](def listview.Definition[T], records []T, kind report.Kind, theme themes.Theme) ListModel[T] {
	t := table.New(
		table.WithFocused(true),
		table.WithHeight(10),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(theme.Border).
		BorderBottom(true).
		Bold(true)
	s.Selected = theme.Selected
	t.SetStyles(s)

	search := textinput.New()
	search.Placeholder = def.SearchPlaceholder
	search.CharLimit = 80
	search.Prompt = "🔍 "

	m := ListModel[T]{
		theme:       theme,
		kind:        kind,
		exportLabel: "Baixar Relatório",
		view:        listview.NewView(def, records),
		table:       t,
		search:      search,
		width:       80,
		height:      24,
	}
	m.updateColumnWidths()
	m.refresh()
	return m
}

// WithExportLabel sets the label of the export action.
func (m ListModel[T]) WithExportLabel(label string) ListModel[T] {
	m.exportLabel = label
	return m
}

// WithEmptyAction offers copying the referral link from the empty state.
func (m ListModel[T]) WithEmptyAction(label string) ListModel[T] {
	m.emptyAction = label
	return m
}

// WithSummary shows cards above the filters. fn receives every record of
// the page, not only the filtered ones.
func (m ListModel[T]) WithSummary(fn func([]T) []SummaryCard) ListModel[T] {
	m.summary = fn
	m.Resize(m.width, m.height)
	return m
}

// Summary returns the cards shown above the filters.
func (m ListModel[T]) Summary() []SummaryCard {
	if m.summary == nil {
		return nil
	}
	return m.summary(m.view.Records())
}

// Activate replaces the records and resets every filter.
func (m *ListModel[T]) Activate(records []T) {
	m.view.Activate(records)
	m.search.SetValue("")
	m.search.Blur()
	m.searching = false
	m.table.SetCursor(0)
	m.refresh()
}

// Result returns what is currently on screen.
func (m ListModel[T]) Result() listview.Result[T] {
	return m.result
}

// State returns the current filter state.
func (m ListModel[T]) State() listview.State {
	return m.view.State()
}

// Searching reports whether the search input has focus.
func (m ListModel[T]) Searching() bool {
	return m.searching
}

// Selected returns the record under the cursor.
func (m ListModel[T]) Selected() (T, bool) {
	var zero T
	if m.result.Branch != listview.BranchTable {
		return zero, false
	}
	i := m.table.Cursor()
	if i < 0 || i >= len(m.result.Records) {
		return zero, false
	}
	return m.result.Records[i], true
}

// Update handles messages.
func (m ListModel[T]) Update(msg tea.Msg) (ListModel[T], tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.searching {
			return m, m.handleSearchMode(msg)
		}
		if cmd, handled := m.handleNormalMode(msg); handled {
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.Resize(msg.Width, msg.Height)
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// handleNormalMode handles the page keys. It reports false for keys the
// table should see.
func (m *ListModel[T]) handleNormalMode(msg tea.KeyMsg) (tea.Cmd, bool) {
	key := msg.String()

	for _, dk := range dimensionKeys {
		if key != dk.key && key != dk.back {
			continue
		}
		if _, ok := m.view.Definition().Dimension(dk.dim); !ok {
			return nil, false
		}
		delta := 1
		if key == dk.back {
			delta = -1
		}
		m.view.Cycle(dk.dim, delta)
		m.refresh()
		return nil, true
	}

	switch key {
	case "/":
		if !m.view.Definition().Searchable {
			return nil, false
		}
		m.searching = true
		return m.search.Focus(), true

	case "r":
		m.view.Reset()
		m.search.SetValue("")
		m.refresh()
		return nil, true

	case "e":
		msg := ExportRequestMsg{
			Kind:  m.kind,
			Table: listview.Render(m.result.Records, m.view.Definition().Columns),
		}
		return func() tea.Msg { return msg }, true

	case "c":
		if m.result.Branch != listview.BranchEmpty || m.emptyAction == "" {
			return nil, false
		}
		return func() tea.Msg { return CopyLinkRequestMsg{} }, true
	}

	return nil, false
}

// handleSearchMode filters while the query is typed.
func (m *ListModel[T]) handleSearchMode(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "enter":
		m.searching = false
		m.search.Blur()
		return nil

	case "esc":
		m.searching = false
		m.search.Blur()
		m.search.SetValue("")
		m.view.SetQuery("")
		m.refresh()
		return nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.view.SetQuery(m.search.Value())
	m.refresh()
	return cmd
}

// refresh recomputes the result and the table rows.
func (m *ListModel[T]) refresh() {
	m.result = m.view.Result()
	rows := tableRows(m.result.Table)
	m.table.SetRows(rows)

	// The table parks its cursor at -1 while it has no rows.
	switch c := m.table.Cursor(); {
	case len(rows) == 0:
	case c < 0:
		m.table.SetCursor(0)
	case c >= len(rows):
		m.table.SetCursor(len(rows) - 1)
	}
}

// View renders the page.
func (m ListModel[T]) View() string {
	def := m.view.Definition()

	sections := []string{
		m.theme.Title.Render(def.Title),
		m.theme.Subtitle.Render(def.Subtitle),
	}
	if cards := m.Summary(); len(cards) > 0 {
		sections = append(sections, renderCards(m.theme, cards, m.width))
	}
	sections = append(sections, m.renderFilters())

	if m.result.Branch == listview.BranchEmpty {
		sections = append(sections, m.renderEmpty())
	} else {
		sections = append(sections, m.table.View())
	}

	sections = append(sections, m.renderFooter())
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m ListModel[T]) renderFilters() string {
	def := m.view.Definition()
	state := m.view.State()

	var parts []string
	if def.Searchable {
		parts = append(parts, m.search.View())
	}
	for _, spec := range def.Dimensions {
		label := lipgloss.NewStyle().Foreground(m.theme.Muted).Render(spec.Label + ":")
		value := lipgloss.NewStyle().Foreground(m.theme.Primary).Bold(true).Render(state.Selection(spec.Dimension))
		parts = append(parts, label+" "+value)
	}
	return strings.Join(parts, "   ")
}

func (m ListModel[T]) renderEmpty() string {
	lines := []string{m.theme.Italic.Render(m.result.Message)}
	if m.emptyAction != "" {
		hint := lipgloss.NewStyle().Foreground(m.theme.Primary).Render("[c] " + m.emptyAction)
		lines = append(lines, "", hint)
	}

	return m.theme.RoundedBox.
		Width(max(20, m.width-4)).
		Align(lipgloss.Center).
		Render(lipgloss.JoinVertical(lipgloss.Center, lines...))
}

func (m ListModel[T]) renderFooter() string {
	def := m.view.Definition()

	count := fmt.Sprintf("%d de %d", len(m.result.Records), len(m.view.Records()))
	hints := []string{count}

	if m.searching {
		hints = append(hints, "[Enter] Confirmar", "[Esc] Limpar")
		return lipgloss.NewStyle().Foreground(m.theme.Muted).Render(strings.Join(hints, "  "))
	}

	hints = append(hints, "[↑↓] Navegar")
	if def.Searchable {
		hints = append(hints, "[/] Buscar")
	}
	for _, dk := range dimensionKeys {
		if spec, ok := def.Dimension(dk.dim); ok {
			hints = append(hints, fmt.Sprintf("[%s] %s", dk.key, spec.Label))
		}
	}
	hints = append(hints, "[e] "+m.exportLabel, "[r] Limpar filtros")

	return lipgloss.NewStyle().Foreground(m.theme.Muted).Render(strings.Join(hints, "  "))
}

// Resize updates the component size.
func (m *ListModel[T]) Resize(width, height int) {
	m.width = width
	m.height = height

	// Title, subtitle, filters, footer and the table header.
	reserved := 9
	if m.summary != nil {
		reserved += summaryHeight
	}
	m.table.SetHeight(max(3, height-reserved))
	m.table.SetWidth(max(20, width-2))
	m.updateColumnWidths()
}

func (m *ListModel[T]) updateColumnWidths() {
	cols := m.view.Definition().Columns
	weights := make([]float64, len(cols))
	mins := make([]int, len(cols))
	for i, c := range cols {
		weights[i] = c.Weight
		mins[i] = c.MinWidth
	}

	widths := ColumnWidths(weights, mins, m.width-4)
	columns := make([]table.Column, len(cols))
	for i, c := range cols {
		columns[i] = table.Column{Title: c.Header, Width: widths[i]}
	}

	// Rows must never be wider than the columns.
	m.table.SetRows(nil)
	m.table.SetColumns(columns)
	m.table.SetRows(tableRows(m.result.Table))
}

// ColumnWidths shares the available width among columns by weight. No
// column is narrower than its minimum, so the total may exceed width on
// small terminals.
func ColumnWidths(weights []float64, mins []int, width int) []int {
	var total float64
	for _, w := range weights {
		total += max(w, 0)
	}

	// Each column is followed by one space of padding on both sides.
	avail := width - 2*len(weights)
	widths := make([]int, len(weights))
	for i, w := range weights {
		share := 0
		if total > 0 && avail > 0 {
			share = int(float64(avail) * max(w, 0) / total)
		}
		widths[i] = max(share, mins[i], 1)
	}
	return widths
}

func tableRows(t listview.Table) []table.Row {
	rows := make([]table.Row, 0, len(t.Rows))
	for _, r := range t.Rows {
		row := make(table.Row, len(r.Cells))
		for i, c := range r.Cells {
			if c.Badge {
				row[i] = BadgeGlyph(c.Category) + " " + c.Text
				continue
			}
			row[i] = c.Text
		}
		rows = append(rows, row)
	}
	return rows
}

// BadgeGlyph returns the marker drawn before a status badge.
func BadgeGlyph(c listview.Category) string {
	switch c {
	case listview.CategoryPositive:
		return "✔"
	case listview.CategoryNegative:
		return "✖"
	case listview.CategoryWarning:
		return "◐"
	case listview.CategoryInfo:
		return "●"
	case listview.CategoryAccent:
		return "◆"
	default:
		return "○"
	}
}
