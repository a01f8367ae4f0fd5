package components

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/listkit/listkit/listview"
	"github.com/listkit/listkit/tui/styles"
)

// ListPageKeyMap defines the key bindings of the list page.
type ListPageKeyMap struct {
	Search       key.Binding
	Clear        key.Binding
	NextPage     key.Binding
	PrevPage     key.Binding
	FirstPage    key.Binding
	LastPage     key.Binding
	CycleSort    key.Binding
	ReverseSort  key.Binding
	CycleView    key.Binding
	ToggleSelect key.Binding
	Accept       key.Binding
	Refresh      key.Binding
	Palette      key.Binding
	Help         key.Binding
}

// DefaultListPageKeyMap returns the default key bindings.
func DefaultListPageKeyMap() ListPageKeyMap {
	return ListPageKeyMap{
		Search:       newListBinding([]string{"/"}, "search", "/"),
		Clear:        newListBinding([]string{"esc"}, "clear search/filters", "esc"),
		NextPage:     newListBinding([]string{"n", "right"}, "next page", "n/→"),
		PrevPage:     newListBinding([]string{"p", "left"}, "prev page", "p/←"),
		FirstPage:    newListBinding([]string{"home"}, "first page", "home"),
		LastPage:     newListBinding([]string{"end"}, "last page", "end"),
		CycleSort:    newListBinding([]string{"s"}, "next sort field", "s"),
		ReverseSort:  newListBinding([]string{"d"}, "reverse sort", "d"),
		CycleView:    newListBinding([]string{"v"}, "switch view", "v"),
		ToggleSelect: newListBinding([]string{" "}, "toggle selection", "space"),
		Accept:       newListBinding([]string{"enter"}, "open", "enter"),
		Refresh:      newListBinding([]string{"r"}, "refresh", "r"),
		Palette:      newListBinding([]string{"ctrl+k"}, "actions", "ctrl+k"),
		Help:         newListBinding([]string{"?"}, "help", "?"),
	}
}

func newListBinding(keys []string, help, display string) key.Binding {
	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(display, help),
	)
}

// pageFilter is the mode-independent filter shape the page renders.
type pageFilter struct {
	Key     string
	Label   string
	Options []listview.FilterOption
	Render  listview.FilterRender
}

// ListPage drives one list view through bubbletea: it resolves rows, renders
// the active presentation mode, and translates key input into state changes.
type ListPage[T any] struct {
	ctx  context.Context
	view *listview.ListView[T]

	table   table.Model
	search  textinput.Model
	loader  spinner.Model
	grid    CardGrid[T]
	graph   BarGraph[T]
	palette ActionPalette
	confirm *ConfirmDialog
	status  StatusBar
	help    KeyboardShortcuts

	keyMap ListPageKeyMap
	width  int
	height int

	result    listview.Result[T]
	cursor    int
	searching bool
	loading   bool
	err       error

	// searchApplied wakes the single pending waiter when a debounced search
	// lands; keystrokes that supersede a pending search reuse the same waiter.
	searchApplied chan struct{}
	searchWaiting bool
}

// Page messages.
type (
	// RowsLoadedMsg delivers a resolved result set.
	RowsLoadedMsg[T any] struct{ Result listview.Result[T] }
	// LoadFailedMsg reports a data source failure.
	LoadFailedMsg struct{ Err error }
	// ActionFinishedMsg reports the outcome of a dispatched action.
	ActionFinishedMsg struct {
		Key string
		Err error
	}
	// RowChosenMsg reports enter on a row without a primary action.
	RowChosenMsg[T any] struct{ Row T }
	// RefreshMsg asks the page to re-resolve its rows.
	RefreshMsg struct{}

	searchAppliedMsg struct{}
)

// NewListPage creates a page over an already constructed list view.
func NewListPage[T any](ctx context.Context, view *listview.ListView[T]) *ListPage[T] {
	search := textinput.New()
	search.Placeholder = "Type to search..."

	loader := spinner.New()
	loader.Spinner = spinner.Dot
	loader.Style = lipgloss.NewStyle().Foreground(styles.Primary)

	lp := &ListPage[T]{
		ctx:           ctx,
		view:          view,
		search:        search,
		loader:        loader,
		table:         newListTableModel(view.Fields()),
		palette:       NewActionPalette(),
		status:        NewStatusBar(0),
		help:          NewKeyboardShortcuts(),
		keyMap:        DefaultListPageKeyMap(),
		searchApplied: make(chan struct{}, 1),
	}
	lp.grid = CardGrid[T]{
		Render:   view.CardRender(),
		Fields:   view.Fields(),
		Selected: func(row T) bool { return view.State().Selected.Has(view.RowID(row)) },
	}
	lp.graph = BarGraph[T]{
		Value: view.GraphValue(),
		Label: func(row T) string { return fmt.Sprintf("%v", view.RowID(row)) },
	}
	lp.palette.SetCommands(lp.paletteCommands())
	return lp
}

func newListTableModel[T any](fields []listview.FieldSpec[T]) table.Model {
	t := table.New(
		table.WithColumns(tableColumns(fields, 0)),
		table.WithFocused(true),
		table.WithHeight(10),
	)
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(styles.Border).
		BorderBottom(true).
		Bold(true).
		Foreground(styles.Primary)
	s.Selected = s.Selected.
		Foreground(styles.Highlight).
		Background(styles.Surface).
		Bold(true)
	t.SetStyles(s)
	return t
}

func tableColumns[T any](fields []listview.FieldSpec[T], width int) []table.Column {
	columns := make([]table.Column, 0, len(fields))
	declared := 0
	flexible := 0
	for _, f := range fields {
		if f.Width > 0 {
			declared += f.Width
		} else {
			flexible++
		}
	}
	flexWidth := 12
	if width > 0 && flexible > 0 {
		flexWidth = max(6, (width-declared-2*len(fields))/flexible)
	}
	for _, f := range fields {
		w := f.Width
		if w == 0 {
			w = flexWidth
		}
		columns = append(columns, table.Column{Title: f.Title(), Width: w})
	}
	return columns
}

// Init starts the spinner and the first load.
func (lp *ListPage[T]) Init() tea.Cmd {
	return tea.Batch(lp.loader.Tick, lp.load())
}

// load re-resolves rows off the update loop.
func (lp *ListPage[T]) load() tea.Cmd {
	lp.loading = true
	view := lp.view
	ctx := lp.ctx
	return func() tea.Msg {
		res, err := view.Resolve(ctx)
		if err != nil {
			return LoadFailedMsg{Err: err}
		}
		return RowsLoadedMsg[T]{Result: res}
	}
}

// SetSize sets the page dimensions and re-resolves the view mode.
func (lp *ListPage[T]) SetSize(width, height int) {
	lp.width = width
	lp.height = height
	lp.table.SetColumns(tableColumns(lp.view.Fields(), width))
	lp.table.SetHeight(max(1, height-7))
	lp.grid.Width = width
	lp.graph.Width = width
	lp.search.Width = max(10, width-10)
	lp.status = lp.status.SetSize(width)
	lp.palette.SetSize(width, height)
	lp.help.SetSize(width, height)
	if lp.confirm != nil {
		lp.confirm.SetSize(width, height)
	}
}

// Mode returns the presentation mode resolved for the current width.
func (lp *ListPage[T]) Mode() listview.ViewMode {
	return lp.view.ViewMode(lp.width)
}

// Err returns the last load or action error.
func (lp *ListPage[T]) Err() error {
	return lp.err
}

// Update handles page messages.
func (lp *ListPage[T]) Update(msg tea.Msg) (*ListPage[T], tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		lp.SetSize(msg.Width, msg.Height)
		return lp, nil
	case spinner.TickMsg:
		// Keep ticking while idle so the spinner is live for the next load.
		var cmd tea.Cmd
		lp.loader, cmd = lp.loader.Update(msg)
		return lp, cmd
	case RowsLoadedMsg[T]:
		lp.loading = false
		lp.err = nil
		lp.result = msg.Result
		lp.syncRows()
		return lp, nil
	case LoadFailedMsg:
		lp.loading = false
		lp.err = msg.Err
		return lp, nil
	case searchAppliedMsg:
		lp.searchWaiting = false
		return lp, lp.load()
	case ConfirmResultMsg:
		lp.confirm = nil
		if msg.Confirmed {
			return lp, lp.runAction(msg.ActionKey)
		}
		return lp, nil
	case ActionFinishedMsg:
		if msg.Err != nil {
			lp.err = msg.Err
			return lp, nil
		}
		return lp, lp.load()
	case ExecuteCommandMsg:
		return lp, lp.handleCommand(msg.Command)
	case RefreshMsg:
		return lp, lp.load()
	case tea.KeyMsg:
		return lp.handleKey(msg)
	}
	return lp, nil
}

func (lp *ListPage[T]) handleKey(msg tea.KeyMsg) (*ListPage[T], tea.Cmd) {
	if lp.confirm != nil {
		return lp, lp.confirm.Update(msg)
	}
	if lp.help.Visible {
		lp.help.Update(msg)
		return lp, nil
	}
	if lp.palette.Visible {
		return lp, lp.palette.Update(msg)
	}
	if lp.searching {
		return lp.handleSearchKey(msg)
	}
	return lp.handleListKey(msg)
}

func (lp *ListPage[T]) handleSearchKey(msg tea.KeyMsg) (*ListPage[T], tea.Cmd) {
	switch msg.String() {
	case "esc":
		lp.searching = false
		lp.search.Blur()
		lp.view.SetSearch("")
		return lp, lp.load()
	case "enter":
		lp.searching = false
		lp.search.Blur()
		lp.view.SetSearch(lp.search.Value())
		return lp, lp.load()
	}
	var cmd tea.Cmd
	lp.search, cmd = lp.search.Update(msg)
	return lp, tea.Batch(cmd, lp.debouncedSearch(lp.search.Value()))
}

func (lp *ListPage[T]) debouncedSearch(query string) tea.Cmd {
	lp.view.SetSearchDebounced(query, func() {
		select {
		case lp.searchApplied <- struct{}{}:
		default:
		}
	})
	if lp.searchWaiting {
		return nil
	}
	lp.searchWaiting = true
	applied := lp.searchApplied
	return func() tea.Msg {
		<-applied
		return searchAppliedMsg{}
	}
}

func (lp *ListPage[T]) handleListKey(msg tea.KeyMsg) (*ListPage[T], tea.Cmd) {
	if n, ok := filterBindingIndex(msg.String()); ok {
		return lp, lp.cycleFilter(n)
	}
	switch {
	case key.Matches(msg, lp.keyMap.Search):
		lp.searching = true
		lp.search.SetValue(lp.view.State().Search)
		return lp, lp.search.Focus()
	case key.Matches(msg, lp.keyMap.Clear):
		return lp, lp.clearNarrowing()
	case key.Matches(msg, lp.keyMap.NextPage):
		return lp, lp.gotoPage(lp.view.State().Page + 1)
	case key.Matches(msg, lp.keyMap.PrevPage):
		return lp, lp.gotoPage(lp.view.State().Page - 1)
	case key.Matches(msg, lp.keyMap.FirstPage):
		return lp, lp.gotoPage(1)
	case key.Matches(msg, lp.keyMap.LastPage):
		return lp, lp.gotoPage(lp.totalPages())
	case key.Matches(msg, lp.keyMap.CycleSort):
		return lp, lp.cycleSort()
	case key.Matches(msg, lp.keyMap.ReverseSort):
		return lp, lp.reverseSort()
	case key.Matches(msg, lp.keyMap.CycleView):
		if _, err := lp.view.CycleViewMode(lp.width); err != nil {
			lp.err = err
		} else {
			lp.cursor = 0
		}
		return lp, nil
	case key.Matches(msg, lp.keyMap.ToggleSelect):
		lp.toggleSelection()
		return lp, nil
	case key.Matches(msg, lp.keyMap.Accept):
		return lp, lp.accept()
	case key.Matches(msg, lp.keyMap.Refresh):
		return lp, lp.load()
	case key.Matches(msg, lp.keyMap.Palette):
		lp.palette.SetCommands(lp.paletteCommands())
		lp.palette.Show()
		return lp, nil
	case key.Matches(msg, lp.keyMap.Help):
		lp.help.Toggle()
		return lp, nil
	}
	return lp, lp.moveCursor(msg)
}

// filterBindingIndex maps the numeric keys onto filter slots.
func filterBindingIndex(s string) (int, bool) {
	if len(s) == 1 && s[0] >= '1' && s[0] <= '9' {
		return int(s[0] - '1'), true
	}
	return 0, false
}

func (lp *ListPage[T]) moveCursor(msg tea.KeyMsg) tea.Cmd {
	if lp.Mode() == listview.ModeTable {
		var cmd tea.Cmd
		lp.table, cmd = lp.table.Update(msg)
		return cmd
	}
	switch msg.String() {
	case "up", "k":
		if lp.cursor > 0 {
			lp.cursor--
		}
	case "down", "j":
		if lp.cursor < len(lp.pageRows())-1 {
			lp.cursor++
		}
	}
	return nil
}

// clearNarrowing drops search first, then filters, mirroring how users back
// out of a narrowed list one layer at a time.
func (lp *ListPage[T]) clearNarrowing() tea.Cmd {
	switch {
	case lp.view.SearchActive():
		lp.view.SetSearch("")
	case lp.view.HasActiveFilters():
		lp.view.ClearFilters()
	default:
		return nil
	}
	return lp.load()
}

func (lp *ListPage[T]) gotoPage(page int) tea.Cmd {
	total := lp.totalPages()
	if page > total {
		page = total
	}
	if page < 1 {
		page = 1
	}
	if page == lp.view.State().Page {
		return nil
	}
	lp.view.SetPage(page)
	lp.cursor = 0
	return lp.load()
}

func (lp *ListPage[T]) cycleSort() tea.Cmd {
	options := lp.view.Sort().Cards.Options
	if len(options) == 0 {
		return nil
	}
	st := lp.view.State()
	next := 0
	for i, opt := range options {
		if opt.Value == st.SortKey {
			next = (i + 1) % len(options)
			break
		}
	}
	direction := options[next].Direction
	if direction == "" {
		direction = listview.SortAsc
	}
	lp.view.SetSort(options[next].Value, direction)
	return lp.load()
}

func (lp *ListPage[T]) reverseSort() tea.Cmd {
	st := lp.view.State()
	if st.SortKey == "" {
		return nil
	}
	direction := listview.SortAsc
	if st.SortDirection == listview.SortAsc {
		direction = listview.SortDesc
	}
	lp.view.SetSort(st.SortKey, direction)
	return lp.load()
}

// cycleFilter advances the nth visible filter to its next option; past the
// last option the filter clears.
func (lp *ListPage[T]) cycleFilter(n int) tea.Cmd {
	filters := lp.activeFilters()
	if n >= len(filters) {
		return nil
	}
	filter := filters[n]
	if len(filter.Options) == 0 {
		return nil
	}
	current := lp.view.State().Filters[filter.Key]
	next := ""
	if current == "" {
		next = filter.Options[0].Value
	} else {
		for i, opt := range filter.Options {
			if opt.Value == current && i+1 < len(filter.Options) {
				next = filter.Options[i+1].Value
			}
		}
	}
	lp.view.SetFilter(filter.Key, next)
	lp.cursor = 0
	return lp.load()
}

// activeFilters returns the compiled filters of the current mode.
func (lp *ListPage[T]) activeFilters() []pageFilter {
	compiled := lp.view.Filters()
	var out []pageFilter
	if lp.Mode() == listview.ModeTable {
		for _, f := range compiled.Table {
			out = append(out, pageFilter{
				Key: f.Key, Label: f.Label, Options: f.Options,
				Render: listview.RenderDropdown,
			})
		}
		return out
	}
	for _, f := range compiled.Cards {
		out = append(out, pageFilter{
			Key: f.Key, Label: f.Label, Options: f.Options, Render: f.Render,
		})
	}
	return out
}

func (lp *ListPage[T]) toggleSelection() {
	if !lp.view.Selectable() {
		return
	}
	row, ok := lp.currentRow()
	if !ok {
		return
	}
	lp.view.ToggleSelected(lp.view.RowID(row))
	lp.syncRows()
}

func (lp *ListPage[T]) accept() tea.Cmd {
	row, ok := lp.currentRow()
	if !ok {
		return nil
	}
	if key := lp.view.Actions().PrimaryKey; key != "" {
		return lp.requestAction(key)
	}
	return func() tea.Msg {
		return RowChosenMsg[T]{Row: row}
	}
}

// requestAction opens the confirmation dialog when the action declares one,
// otherwise dispatches immediately.
func (lp *ListPage[T]) requestAction(actionKey string) tea.Cmd {
	row, ok := lp.currentRow()
	if !ok {
		return nil
	}
	if action, found := lp.cardAction(actionKey); found && action.Confirm != nil {
		description := action.Confirm.Description
		if action.Confirm.DescriptionFn != nil {
			description = action.Confirm.DescriptionFn(row)
		}
		dialog := NewConfirmDialog(actionKey, action.Confirm.Title, description, action.Confirm.Variant)
		dialog.SetSize(lp.width, lp.height)
		lp.confirm = &dialog
		return nil
	}
	if action, found := lp.rowAction(actionKey); found && action.Confirm != nil {
		dialog := NewConfirmDialog(actionKey, action.Confirm.Title, action.Confirm.Description, action.Confirm.Variant)
		dialog.SetSize(lp.width, lp.height)
		lp.confirm = &dialog
		return nil
	}
	return lp.runAction(actionKey)
}

func (lp *ListPage[T]) cardAction(key string) (listview.CardAction[T], bool) {
	for _, a := range lp.view.Actions().CardActions {
		if a.Key == key {
			return a, true
		}
	}
	return listview.CardAction[T]{}, false
}

func (lp *ListPage[T]) rowAction(key string) (listview.RowAction[T], bool) {
	for _, a := range lp.view.Actions().RowActions {
		if a.Key == key {
			return a, true
		}
	}
	return listview.RowAction[T]{}, false
}

func (lp *ListPage[T]) runAction(actionKey string) tea.Cmd {
	row, ok := lp.currentRow()
	if !ok {
		return nil
	}
	view := lp.view
	ctx := lp.ctx
	return func() tea.Msg {
		return ActionFinishedMsg{Key: actionKey, Err: view.RunAction(ctx, actionKey, row)}
	}
}

func (lp *ListPage[T]) handleCommand(cmd Command) tea.Cmd {
	switch cmd.ID {
	case "refresh":
		return lp.load()
	case "clear-filters":
		lp.view.ClearFilters()
		return lp.load()
	case "reset":
		lp.view.Reset()
		return lp.load()
	case "shortcuts":
		lp.help.Toggle()
		return nil
	}
	return lp.requestAction(cmd.ID)
}

// paletteCommands builds the palette entries: page commands first, then the
// visible actions of the current row.
func (lp *ListPage[T]) paletteCommands() []Command {
	commands := []Command{
		{ID: "refresh", Name: "Refresh", Description: "Reload rows from the data source", Category: "Page", Shortcut: "r"},
		{ID: "clear-filters", Name: "Clear Filters", Description: "Remove every active filter", Category: "Page"},
		{ID: "reset", Name: "Reset View", Description: "Restore the default list state", Category: "Page"},
		{ID: "shortcuts", Name: "Keyboard Shortcuts", Description: "Show the shortcut reference", Category: "Page", Shortcut: "?"},
	}
	row, ok := lp.currentRow()
	for _, a := range lp.view.Actions().CardActions {
		if ok && a.Hidden != nil && a.Hidden(row) {
			continue
		}
		commands = append(commands, Command{
			ID:       a.Key,
			Name:     a.Label,
			Category: "Actions",
		})
	}
	return commands
}

// pageRows returns the rows of the current page. Client-side sources return
// the full filtered set, so the page slices it; remote sources already
// return one page.
func (lp *ListPage[T]) pageRows() []T {
	rows := lp.result.Rows
	if lp.result.Strategy != listview.StrategyItems {
		return rows
	}
	st := lp.view.State()
	start := (st.Page - 1) * st.PageSize
	if start >= len(rows) {
		return nil
	}
	return rows[start:min(start+st.PageSize, len(rows))]
}

func (lp *ListPage[T]) totalPages() int {
	st := lp.view.State()
	if st.PageSize <= 0 || lp.result.Total == 0 {
		return 1
	}
	return (lp.result.Total + st.PageSize - 1) / st.PageSize
}

func (lp *ListPage[T]) currentRow() (T, bool) {
	rows := lp.pageRows()
	i := lp.cursor
	if lp.Mode() == listview.ModeTable {
		i = lp.table.Cursor()
	}
	if i < 0 || i >= len(rows) {
		var zero T
		return zero, false
	}
	return rows[i], true
}

// syncRows projects the current page into the table model and clamps the
// cursor.
func (lp *ListPage[T]) syncRows() {
	rows := lp.pageRows()
	fields := lp.view.Fields()
	tableRows := make([]table.Row, len(rows))
	for i, row := range rows {
		cells := make(table.Row, len(fields))
		for j, f := range fields {
			if f.Value != nil {
				cells[j] = fmt.Sprintf("%v", f.Value(row))
			}
		}
		tableRows[i] = cells
	}
	lp.table.SetRows(tableRows)
	if lp.cursor >= len(rows) {
		lp.cursor = max(0, len(rows)-1)
	}
}

// View renders the page.
func (lp *ListPage[T]) View() string {
	if lp.width <= 0 || lp.height <= 0 {
		return ""
	}
	if lp.help.Visible {
		return lp.help.View()
	}
	if lp.palette.Visible {
		return lp.palette.View()
	}
	if lp.confirm != nil {
		return lp.confirm.View()
	}

	sections := []string{lp.renderHeader()}
	if filterBar := lp.renderFilterBar(); filterBar != "" {
		sections = append(sections, filterBar)
	}
	if lp.searching {
		sections = append(sections, lp.search.View())
	}
	if lp.err != nil {
		sections = append(sections, styles.ErrorStyle.Render("Error: "+lp.err.Error()))
	}
	sections = append(sections, lp.renderBody(), lp.renderPagination(), lp.renderStatus())
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (lp *ListPage[T]) renderHeader() string {
	st := lp.view.State()
	var parts []string
	if st.SortKey != "" {
		parts = append(parts, styles.InfoStyle.Render(fmt.Sprintf("Sort: %s %s", st.SortKey, st.SortDirection)))
	}
	if st.Search != "" {
		parts = append(parts, styles.WarningStyle.Render(fmt.Sprintf("Search: %s", st.Search)))
	}
	parts = append(parts, styles.HelpStyle.Render(fmt.Sprintf("Total: %d", lp.result.Total)))
	return strings.Join(parts, " • ")
}

// renderFilterBar renders the compiled filters of the active mode: button
// groups show every option inline, dropdowns show the selected value only.
func (lp *ListPage[T]) renderFilterBar() string {
	filters := lp.activeFilters()
	if len(filters) == 0 {
		return ""
	}
	st := lp.view.State()
	parts := make([]string, 0, len(filters))
	for i, filter := range filters {
		label := filter.Label
		if label == "" {
			label = filter.Key
		}
		prefix := styles.HelpStyle.Render(fmt.Sprintf("[%d] %s:", i+1, label))
		if filter.Render == listview.RenderButtons {
			parts = append(parts, prefix+" "+renderButtonGroup(filter.Options, st.Filters[filter.Key]))
			continue
		}
		value := st.Filters[filter.Key]
		if value == "" {
			value = "all"
		}
		parts = append(parts, prefix+" "+styles.FilterActiveStyle.Render(value)+styles.HelpStyle.Render(" ▾"))
	}
	return strings.Join(parts, "   ")
}

func renderButtonGroup(options []listview.FilterOption, active string) string {
	parts := make([]string, 0, len(options))
	for _, opt := range options {
		label := opt.Label
		if label == "" {
			label = opt.Value
		}
		if opt.Icon != "" {
			label = opt.Icon + " " + label
		}
		if opt.Value == active {
			parts = append(parts, styles.SelectedRowStyle.Render(" "+label+" "))
		} else {
			parts = append(parts, styles.HelpStyle.Render(" "+label+" "))
		}
	}
	return strings.Join(parts, "")
}

func (lp *ListPage[T]) renderBody() string {
	if lp.loading {
		return lp.loader.View() + " Loading..."
	}
	rows := lp.pageRows()
	if len(rows) == 0 {
		return lp.renderEmpty()
	}
	switch lp.Mode() {
	case listview.ModeCards:
		return lp.grid.View(rows, lp.cursor)
	case listview.ModeGraph:
		return lp.graph.View(rows, lp.cursor)
	default:
		return lp.table.View()
	}
}

func (lp *ListPage[T]) renderEmpty() string {
	switch lp.view.EmptyState(lp.result) {
	case listview.EmptyNoMatches:
		return styles.HelpStyle.Render("No results match the current filters. Press esc to clear.")
	case listview.EmptyNoData:
		return styles.HelpStyle.Render("Nothing here yet.")
	}
	return ""
}

func (lp *ListPage[T]) renderPagination() string {
	st := lp.view.State()
	if lp.result.Total == 0 {
		return styles.PaginationStyle.Render("No items")
	}
	start := (st.Page-1)*st.PageSize + 1
	end := min(start+st.PageSize-1, lp.result.Total)
	return styles.PaginationStyle.Render(fmt.Sprintf(
		"Page %d of %d • Items %d-%d of %d",
		st.Page, lp.totalPages(), start, end, lp.result.Total,
	))
}

func (lp *ListPage[T]) renderStatus() string {
	st := lp.view.State()
	lp.status.Mode = string(lp.Mode())
	lp.status.Selected = st.Selected.Len()
	lp.status.Filters = len(st.Filters)
	lp.status.Searching = st.Search != ""
	lp.status.Loading = lp.loading
	return lp.status.View()
}
