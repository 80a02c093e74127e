package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/mindplan/internal/cli/formatter"
	"github.com/alexanderramin/mindplan/internal/domain"
	"github.com/alexanderramin/mindplan/internal/export"
	"github.com/alexanderramin/mindplan/internal/service"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

const maxColumnWidth = 40

// Table columns, in display order.
const (
	colTitle = iota
	colStart
	colDue
	colElapsed
	colInvested
	colAssignee
	colStatus
)

var tableHeaders = []string{"Title", "Start", "Due", "Elapsed", "Invested", "Assignee", "Status"}

type planTableKeys struct {
	Depth     key.Binding
	AllDepths key.Binding
	PrevCol   key.Binding
	NextCol   key.Binding
	Edit      key.Binding
	MoveUp    key.Binding
	MoveDown  key.Binding
	Quit      key.Binding
}

func defaultPlanTableKeys() planTableKeys {
	return planTableKeys{
		Depth:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next depth")),
		AllDepths: key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "all depths")),
		PrevCol:   key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/→", "column")),
		NextCol:   key.NewBinding(key.WithKeys("right", "l")),
		Edit:      key.NewBinding(key.WithKeys("enter", "e"), key.WithHelp("e", "edit")),
		MoveUp:    key.NewBinding(key.WithKeys("K", "shift+up"), key.WithHelp("K/J", "move")),
		MoveDown:  key.NewBinding(key.WithKeys("J", "shift+down")),
		Quit:      key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// tableEditor writes cell edits and moves back through the services.
type tableEditor struct {
	ctx     context.Context
	app     *App
	mapID   string
	exclude bool
}

// planTableModel shows a map's flattened plan rows with a depth filter.
// With an editor attached, cells can be edited in place and nodes moved
// among their siblings.
type planTableModel struct {
	title    string
	all      []export.Row
	depth    *int
	maxDepth int
	col      int
	table    table.Model
	keys     planTableKeys

	editor  *tableEditor
	editing bool
	input   textinput.Model
	notice  string
	failed  bool
}

func newPlanTableModel(title string, rows []export.Row, depth *int) *planTableModel {
	m := &planTableModel{
		title: title,
		depth: depth,
		keys:  defaultPlanTableKeys(),
	}

	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		Foreground(formatter.ColorHeader).
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(formatter.ColorDim).
		BorderBottom(true).
		Bold(true)
	styles.Selected = styles.Selected.
		Foreground(formatter.ColorFg).
		Background(formatter.ColorDim).
		Bold(false)

	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = 200

	m.input = ti
	m.table = table.New(table.WithFocused(true), table.WithHeight(15), table.WithStyles(styles))
	m.setRows(rows)
	return m
}

// editable attaches an editor so that edits and moves are saved to mapID.
func (m *planTableModel) editable(ctx context.Context, app *App, mapID string, exclude bool) *planTableModel {
	m.editor = &tableEditor{ctx: ctx, app: app, mapID: mapID, exclude: exclude}
	return m
}

func (m *planTableModel) setRows(rows []export.Row) {
	m.all = rows
	m.maxDepth = 0
	for _, r := range rows {
		m.maxDepth = max(m.maxDepth, r.Depth)
	}
	m.refresh()
}

// visible returns the rows that pass the depth filter.
func (m *planTableModel) visible() []export.Row {
	if m.depth == nil {
		return m.all
	}
	var out []export.Row
	for _, r := range m.all {
		if r.Depth == *m.depth {
			out = append(out, r)
		}
	}
	return out
}

func (m *planTableModel) refresh() {
	var rows []table.Row
	for _, r := range m.visible() {
		title := r.Title
		if m.depth == nil {
			title = strings.Repeat("  ", r.Depth) + title
		}
		rows = append(rows, table.Row{
			title,
			orDash(r.StartDate),
			orDash(r.DueDate),
			intOrDash(r.ElapsedTimeDays),
			hoursOrDash(r.InvestedTimeHours),
			orDash(r.Assignee),
			orDash(r.Status),
		})
	}

	cols := make([]table.Column, len(tableHeaders))
	for i, h := range tableHeaders {
		if i == m.col {
			h = "›" + h
		}
		w := lipgloss.Width(h)
		for _, row := range rows {
			w = max(w, lipgloss.Width(row[i]))
		}
		cols[i] = table.Column{Title: h, Width: min(w, maxColumnWidth)}
	}
	m.table.SetColumns(cols)
	m.table.SetRows(rows)
	if n := len(rows); n > 0 && m.table.Cursor() >= n {
		m.table.SetCursor(n - 1)
	}
}

// nextDepth cycles all -> 0 -> 1 ... -> maxDepth -> all.
func (m *planTableModel) nextDepth() {
	switch {
	case m.depth == nil:
		d := 0
		m.depth = &d
	case *m.depth >= m.maxDepth:
		m.depth = nil
	default:
		d := *m.depth + 1
		m.depth = &d
	}
	m.refresh()
	if len(m.table.Rows()) > 0 {
		m.table.GotoTop()
	}
}

func (m *planTableModel) selected() (export.Row, bool) {
	rows := m.visible()
	i := m.table.Cursor()
	if i < 0 || i >= len(rows) {
		return export.Row{}, false
	}
	return rows[i], true
}

func (m *planTableModel) selectID(id string) {
	for i, r := range m.visible() {
		if r.ID == id {
			m.table.SetCursor(i)
			return
		}
	}
}

func (m *planTableModel) setNotice(err error, msg string) {
	m.failed = err != nil
	if err != nil {
		msg = err.Error()
	}
	m.notice = msg
}

func (m *planTableModel) startEdit() tea.Cmd {
	row, ok := m.selected()
	switch {
	case m.editor == nil:
		m.setNotice(nil, "read-only view")
		return nil
	case !ok:
		return nil
	}
	m.editing = true
	m.notice = ""
	m.input.SetValue(cellValue(row, m.col))
	m.input.CursorEnd()
	return m.input.Focus()
}

func (m *planTableModel) stopEdit() {
	m.editing = false
	m.input.Blur()
	m.input.Reset()
}

func (m *planTableModel) commitEdit() {
	value := strings.TrimSpace(m.input.Value())
	col := m.col
	m.stopEdit()
	row, ok := m.selected()
	if !ok {
		return
	}
	changed, err := m.editor.apply(row, col, value)
	if err != nil {
		m.setNotice(err, "")
		return
	}
	if !changed {
		return
	}
	m.setNotice(m.reload(row.ID), "Saved "+row.Title)
}

func (m *planTableModel) move(delta int) {
	row, ok := m.selected()
	switch {
	case m.editor == nil:
		m.setNotice(nil, "read-only view")
		return
	case !ok:
		return
	}
	moved, err := m.editor.move(row.ID, delta)
	if err != nil {
		m.setNotice(err, "")
		return
	}
	if moved {
		m.setNotice(m.reload(row.ID), "Moved "+row.Title)
	}
}

// reload fetches the rows again and keeps id selected.
func (m *planTableModel) reload(id string) error {
	rows, err := m.editor.app.Exports.Rows(m.editor.ctx, m.editor.mapID, nil)
	if err != nil {
		return err
	}
	if len(rows) > 0 {
		m.title = rows[0].Title
	}
	m.setRows(rows)
	m.selectID(id)
	return nil
}

func (m *planTableModel) Init() tea.Cmd { return nil }

func (m *planTableModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.editing {
		if msg, ok := msg.(tea.KeyMsg); ok {
			switch msg.Type {
			case tea.KeyEnter:
				m.commitEdit()
				return m, nil
			case tea.KeyEsc:
				m.stopEdit()
				return m, nil
			case tea.KeyCtrlC:
				return m, tea.Quit
			}
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.table.SetHeight(max(msg.Height-8, 3))
		m.input.Width = max(msg.Width-20, 10)
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Depth):
			m.nextDepth()
			return m, nil
		case key.Matches(msg, m.keys.AllDepths):
			m.depth = nil
			m.refresh()
			return m, nil
		case key.Matches(msg, m.keys.PrevCol):
			m.col = (m.col + len(tableHeaders) - 1) % len(tableHeaders)
			m.refresh()
			return m, nil
		case key.Matches(msg, m.keys.NextCol):
			m.col = (m.col + 1) % len(tableHeaders)
			m.refresh()
			return m, nil
		case key.Matches(msg, m.keys.Edit):
			return m, m.startEdit()
		case key.Matches(msg, m.keys.MoveUp):
			m.move(-1)
			return m, nil
		case key.Matches(msg, m.keys.MoveDown):
			m.move(1)
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m *planTableModel) View() string {
	filter := "all depths"
	if m.depth != nil {
		filter = fmt.Sprintf("depth %d", *m.depth)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s  %s\n\n%s\n\n",
		formatter.StyleHeader.Render(strings.ToUpper(m.title)),
		formatter.Dim(fmt.Sprintf("%s · %d rows", filter, len(m.visible()))),
		m.table.View(),
	)

	switch {
	case m.editing:
		fmt.Fprintf(&b, "%s %s\n", formatter.StyleYellowBold.Render(tableHeaders[m.col]+":"), m.input.View())
		b.WriteString(formatter.Dim("enter save · esc cancel · blank clears") + "\n")
		return b.String()
	case m.notice != "" && m.failed:
		b.WriteString(formatter.StyleRed.Render(m.notice) + "\n")
	case m.notice != "":
		b.WriteString(formatter.StyleGreen.Render(m.notice) + "\n")
	}

	var help []string
	for _, k := range []key.Binding{m.keys.Depth, m.keys.AllDepths, m.keys.PrevCol, m.keys.Edit, m.keys.MoveUp, m.keys.Quit} {
		h := k.Help()
		help = append(help, h.Key+" "+h.Desc)
	}
	b.WriteString(formatter.Dim(strings.Join(help, " · ")) + "\n")
	return b.String()
}

// apply saves value into one cell of row. It reports whether anything
// changed.
func (e *tableEditor) apply(row export.Row, col int, value string) (bool, error) {
	if col == colTitle {
		if value == row.Title {
			return false, nil
		}
		return true, e.app.Maps.RenameNode(e.ctx, e.mapID, row.ID, value)
	}

	before := planFormValuesOfRow(row)
	after := before
	field := after.column(col)
	if col == colStatus && value != "" {
		value = string(parseStatus(value))
	}
	*field = value

	patch, err := planFormPatch(before, after)
	if err != nil {
		return false, err
	}
	if len(patch.Set) == 0 {
		return false, nil
	}
	_, err = e.app.Plans.EditPlan(e.ctx, e.mapID, row.ID, service.PlanEdit{Patch: patch, ExcludeWeekends: e.exclude})
	return err == nil, err
}

// move shifts a node delta places among its siblings. It reports false when
// the node is already at that end.
func (e *tableEditor) move(id string, delta int) (bool, error) {
	m, err := e.app.Maps.Get(e.ctx, e.mapID)
	if err != nil {
		return false, err
	}
	_, parent := domain.FindWithParent(m.Root, id)
	if parent == nil {
		return false, errors.New("the root node cannot be moved")
	}
	idx := -1
	for i, c := range parent.Children {
		if c.ID == id {
			idx = i
		}
	}
	target := idx + delta
	if target < 0 || target >= len(parent.Children) {
		return false, nil
	}
	return true, e.app.Maps.MoveNode(e.ctx, e.mapID, id, target)
}

// planFormValuesOfRow is planFormValuesOf for an exported row.
func planFormValuesOfRow(r export.Row) planFormValues {
	v := planFormValues{
		Start:    deref(r.StartDate),
		Due:      deref(r.DueDate),
		Assignee: deref(r.Assignee),
		Status:   deref(r.Status),
	}
	if r.ElapsedTimeDays != nil {
		v.Elapsed = strconv.Itoa(*r.ElapsedTimeDays)
	}
	if r.InvestedTimeHours != nil {
		v.Invested = strconv.FormatFloat(*r.InvestedTimeHours, 'f', -1, 64)
	}
	return v
}

// column returns the form value edited by table column col.
func (v *planFormValues) column(col int) *string {
	switch col {
	case colStart:
		return &v.Start
	case colDue:
		return &v.Due
	case colElapsed:
		return &v.Elapsed
	case colInvested:
		return &v.Invested
	case colAssignee:
		return &v.Assignee
	default:
		return &v.Status
	}
}

func cellValue(r export.Row, col int) string {
	if col == colTitle {
		return r.Title
	}
	v := planFormValuesOfRow(r)
	return *v.column(col)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func orDash(s *string) string {
	if s == nil || *s == "" {
		return formatter.Placeholder
	}
	return *s
}

func intOrDash(v *int) string {
	if v == nil {
		return formatter.Placeholder
	}
	return strconv.Itoa(*v)
}

func hoursOrDash(v *float64) string {
	if v == nil {
		return formatter.Placeholder
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func newTableCmd(app *App) *cobra.Command {
	var depth int

	cmd := &cobra.Command{
		Use:   "table MAP",
		Short: "Browse and edit a map's plan as an interactive table",
		Long: `Shows every node of the map as a row. Pick a column with the arrow keys
and press e to edit the selected cell; dates are re-derived the same way as
'plan set'. K and J move the selected node among its siblings.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.interactive() {
				return fmt.Errorf("table: %w (use 'export csv')", errNotInteractive)
			}
			excl, err := excludeWeekends(cmd, app)
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			m, err := resolveMap(ctx, app, args[0])
			if err != nil {
				return err
			}
			rows, err := app.Exports.Rows(ctx, m.ID, nil)
			if err != nil {
				return err
			}
			var filter *int
			if cmd.Flags().Changed("depth") && depth >= 0 {
				filter = &depth
			}
			model := newPlanTableModel(m.Title, rows, filter).editable(ctx, app, m.ID, excl)
			_, err = tea.NewProgram(model, tea.WithAltScreen()).Run()
			return err
		},
	}

	cmd.Flags().IntVar(&depth, "depth", -1, "show only rows at this depth")

	return cmd
}
