package listview

import (
	"context"
	"fmt"
	"time"
)

// PaginationMode selects who owns pagination: the engine's internal state
// over a full client-side row set, or an external offset-based source.
type PaginationMode string

const (
	PaginationInternal PaginationMode = "internal"
	PaginationOffset   PaginationMode = "offset"
)

// EmptyKind classifies an empty result for user-facing messaging.
type EmptyKind string

const (
	// EmptyNone means the view has rows or is still loading.
	EmptyNone EmptyKind = ""
	// EmptyNoData means the underlying collection has nothing at all.
	EmptyNoData EmptyKind = "no_data"
	// EmptyNoMatches means active filters or search excluded every row.
	EmptyNoMatches EmptyKind = "no_matches"
)

// Definition is the single declarative configuration object of one list
// view.
type Definition[T any] struct {
	// Source supplies rows; exactly one strategy should be set.
	Source DataSource[T]
	// Fields are the column/field definitions.
	Fields []FieldSpec[T]
	// ID derives the row identity used for selection.
	ID func(T) RowID

	// Unified configs and their legacy counterparts.
	Actions           UnifiedActions[T]
	LegacyRowActions  []RowAction[T]
	LegacyCardActions []CardAction[T]
	Filters           UnifiedFilters
	LegacyCardFilters []CardFilter
	Sort              UnifiedSort[T]

	Pagination PaginationMode
	Selectable bool
	ViewMode   ViewModeOptions
	// State declares state ownership; see ReconcilerOptions.
	State ReconcilerOptions
	// QueryInput maps list state to the input handed to remote strategies;
	// nil passes the state snapshot through verbatim.
	QueryInput func(ListState) any

	// CardRender renders one card body; its presence satisfies the
	// card-mode diagnostic even without field definitions.
	CardRender func(T) string
	// GraphValue supplies the numeric value graph mode plots.
	GraphValue func(T) float64

	// Navigate receives resolved action URLs.
	Navigate func(url string)
	// OnError receives action handler and mutation failures.
	OnError func(error)

	SearchDebounce time.Duration
	// Dev enables the advisory configuration diagnostics.
	Dev bool
}

// ListView composes the resolver, reconciler, compilers, and pipeline into
// the single read/write surface consumed by the presentation layer.
type ListView[T any] struct {
	def        Definition[T]
	reconciler *Reconciler
	modes      *ViewModeResolver
	pipeline   Pipeline[T]
	actions    CompiledActions[T]
	filters    CompiledFilters
	sort       CompiledSort[T]
	debouncer  *Debouncer
}

// New validates the definition and builds the list view. A definition with
// no data-source strategy and no loading flag is a fatal configuration
// error.
func New[T any](ctx context.Context, def Definition[T]) (*ListView[T], error) {
	if err := def.Source.Validate(); err != nil {
		return nil, fmt.Errorf("invalid list view definition: %w", err)
	}
	pipeline := NewPipeline(def.Fields)
	lv := &ListView[T]{
		def:       def,
		pipeline:  pipeline,
		actions:   CompileActions(def.Actions, def.LegacyRowActions, def.LegacyCardActions),
		filters:   CompileFilters(def.Filters, def.LegacyCardFilters),
		sort:      CompileSort(def.Sort, pipeline),
		modes:     NewViewModeResolver(def.ViewMode),
		debouncer: NewDebouncer(def.SearchDebounce),
	}
	stateOpts := def.State
	stateOpts.DefaultState = lv.seedDefaults(stateOpts.DefaultState)
	lv.reconciler = NewReconciler(stateOpts)
	if def.Dev {
		lv.warnDeprecatedConfigs(ctx)
	}
	return lv, nil
}

// seedDefaults fills the default state's sort and filters from the compiled
// configuration without mutating the caller's struct.
func (lv *ListView[T]) seedDefaults(defaults *ListState) *ListState {
	seeded := ListState{}
	if defaults != nil {
		seeded = defaults.clone()
	}
	if seeded.SortKey == "" && lv.sort.Table.Key != "" {
		seeded.SortKey = lv.sort.Table.Key
		seeded.SortDirection = lv.sort.Table.Direction
	}
	if len(seeded.Filters) == 0 {
		if def := DefaultFilterValues(lv.def.Filters); len(def) > 0 {
			seeded.Filters = def
		}
	}
	return &seeded
}

// State returns the authoritative list state.
func (lv *ListView[T]) State() ListState {
	return lv.reconciler.State()
}

// Snapshot returns the serializable state projection.
func (lv *ListView[T]) Snapshot() Snapshot {
	return lv.reconciler.Snapshot()
}

// Resolve selects the data source and normalizes its output. In items mode
// the client-side pipeline shapes rows and the post-filter count becomes the
// total.
func (lv *ListView[T]) Resolve(ctx context.Context) (Result[T], error) {
	st := lv.State()
	var input any = SnapshotOf(st)
	if lv.def.QueryInput != nil {
		input = lv.def.QueryInput(st)
	}
	res, err := lv.def.Source.Resolve(ctx, input)
	if err != nil {
		return Result[T]{}, err
	}
	if res.Strategy == StrategyItems {
		res.Rows = lv.pipeline.Apply(res.Rows, st)
		res.Total = len(res.Rows)
	}
	return res, nil
}

// EmptyState classifies an empty result: no data at all versus no results
// under active filters or search.
func (lv *ListView[T]) EmptyState(res Result[T]) EmptyKind {
	if res.IsLoading || len(res.Rows) > 0 {
		return EmptyNone
	}
	if lv.SearchActive() || lv.HasActiveFilters() {
		return EmptyNoMatches
	}
	return EmptyNoData
}

// HasActiveFilters reports whether any filter key is set.
func (lv *ListView[T]) HasActiveFilters() bool {
	return len(lv.State().Filters) > 0
}

// SearchActive reports whether search text is present.
func (lv *ListView[T]) SearchActive() bool {
	return lv.State().Search != ""
}

// Actions returns the compiled per-mode action configuration.
func (lv *ListView[T]) Actions() CompiledActions[T] {
	return lv.actions
}

// Filters returns the compiled per-mode filter configuration.
func (lv *ListView[T]) Filters() CompiledFilters {
	return lv.filters
}

// Sort returns the compiled sort configuration.
func (lv *ListView[T]) Sort() CompiledSort[T] {
	return lv.sort
}

// Fields returns the field definitions.
func (lv *ListView[T]) Fields() []FieldSpec[T] {
	return lv.def.Fields
}

// RowID derives the identity of one row.
func (lv *ListView[T]) RowID(row T) RowID {
	if lv.def.ID != nil {
		return lv.def.ID(row)
	}
	return stringify(row)
}

// Selectable reports whether selection is enabled.
func (lv *ListView[T]) Selectable() bool {
	return lv.def.Selectable
}

// CardRender returns the configured card body renderer, if any.
func (lv *ListView[T]) CardRender() func(T) string {
	return lv.def.CardRender
}

// GraphValue returns the configured graph value function, if any.
func (lv *ListView[T]) GraphValue() func(T) float64 {
	return lv.def.GraphValue
}

// ViewMode resolves the active presentation mode for a viewport width.
func (lv *ListView[T]) ViewMode(width int) ViewMode {
	return lv.modes.Resolve(width)
}

// SetViewMode records an explicit user mode selection.
func (lv *ListView[T]) SetViewMode(mode ViewMode) error {
	return lv.modes.SetUserMode(mode)
}

// CycleViewMode advances the user mode selection.
func (lv *ListView[T]) CycleViewMode(width int) (ViewMode, error) {
	return lv.modes.Cycle(width, lv.def.GraphValue != nil)
}

// SetPage navigates to the requested page.
func (lv *ListView[T]) SetPage(page int) { lv.reconciler.SetPage(page) }

// SetPageSize changes the page size, resetting to page 1.
func (lv *ListView[T]) SetPageSize(size int) { lv.reconciler.SetPageSize(size) }

// SetSort changes the sort key and direction.
func (lv *ListView[T]) SetSort(key string, direction SortDirection) {
	lv.reconciler.SetSort(key, direction)
}

// SetFilter sets one filter value, resetting to page 1.
func (lv *ListView[T]) SetFilter(key, value string) { lv.reconciler.SetFilter(key, value) }

// SetFilters replaces the filter mapping, resetting to page 1.
func (lv *ListView[T]) SetFilters(filters map[string]string) { lv.reconciler.SetFilters(filters) }

// ClearFilters removes every filter, resetting to page 1.
func (lv *ListView[T]) ClearFilters() { lv.reconciler.ClearFilters() }

// SetSearch applies search text immediately, resetting to page 1. Any
// pending debounced search is cancelled so an older keystroke cannot land
// after the explicit value.
func (lv *ListView[T]) SetSearch(query string) {
	lv.debouncer.Stop()
	lv.reconciler.SetSearch(query)
}

// SetSearchDebounced applies search text after the configured quiet period;
// the latest call supersedes a pending one. onApplied, when non-nil, runs
// after the state transition.
func (lv *ListView[T]) SetSearchDebounced(query string, onApplied func()) {
	lv.debouncer.Trigger(func() {
		lv.reconciler.SetSearch(query)
		if onApplied != nil {
			onApplied()
		}
	})
}

// SetSelectedIDs replaces the selection.
func (lv *ListView[T]) SetSelectedIDs(ids []RowID) { lv.reconciler.SetSelectedIDs(ids) }

// ToggleSelected flips one row's selection.
func (lv *ListView[T]) ToggleSelected(id RowID) { lv.reconciler.ToggleSelected(id) }

// Reset restores the default state, cancelling any pending debounced search.
func (lv *ListView[T]) Reset() {
	lv.debouncer.Stop()
	lv.reconciler.Reset()
}

// Close releases engine resources (the pending search debounce).
func (lv *ListView[T]) Close() {
	lv.debouncer.Stop()
}

// RunAction dispatches one action against one row: navigation targets go to
// the Navigate callback, click handlers and mutations run synchronously.
// Failures are surfaced to OnError and returned; list state is never rolled
// back or retried.
func (lv *ListView[T]) RunAction(ctx context.Context, key string, row T) error {
	action, ok := lv.findAction(key)
	if !ok {
		return fmt.Errorf("unknown action %q", key)
	}
	if action.Disabled != nil && action.Disabled(row) {
		return nil
	}
	err := lv.dispatch(ctx, action, row)
	if err != nil {
		err = fmt.Errorf("action %q failed: %w", key, err)
		if lv.def.OnError != nil {
			lv.def.OnError(err)
		}
	}
	return err
}

func (lv *ListView[T]) findAction(key string) (CardAction[T], bool) {
	for _, a := range lv.actions.CardActions {
		if a.Key == key {
			return a, true
		}
	}
	for _, a := range lv.actions.RowActions {
		if a.Key == key {
			return CardAction[T]{
				Key:         a.Key,
				Label:       a.Label,
				Icon:        a.Icon,
				NavigateTo:  a.NavigateTo,
				OnClick:     a.OnClick,
				Mutation:    a.Mutation,
				Hidden:      a.Hidden,
				Disabled:    a.Disabled,
				Destructive: a.Destructive,
			}, true
		}
	}
	return CardAction[T]{}, false
}

func (lv *ListView[T]) dispatch(ctx context.Context, action CardAction[T], row T) error {
	switch {
	case action.NavigateTo != nil:
		if lv.def.Navigate != nil {
			lv.def.Navigate(action.NavigateTo(row))
		}
		return nil
	case action.OnClick != nil:
		return action.OnClick(ctx, row)
	case action.Mutation != nil:
		var input any = row
		if action.Mutation.Input != nil {
			input = action.Mutation.Input(row)
		}
		return action.Mutation.Run(ctx, input)
	}
	return fmt.Errorf("action %q has no navigation target, handler, or mutation", action.Key)
}
