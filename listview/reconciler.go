package listview

import (
	"sync"

	"dario.cat/mergo"
)

// ReconcilerOptions declares where list state lives. Three granularities are
// supported, most to least specific: per-field external control, one external
// state object, and internal fallback state. A per-field value overrides the
// state object for that field when both are supplied.
type ReconcilerOptions struct {
	// DefaultState seeds internal state and is restored by Reset. Zero
	// fields are filled from package defaults (page 1, page size 10,
	// ascending sort).
	DefaultState *ListState

	// State makes the reconciler fully controlled: every field is read from
	// this snapshot and every mutation is reported through OnStateChange.
	State         *Snapshot
	OnStateChange func(Snapshot, []Field)

	// Granular controls. A field is externally owned when its value pointer
	// is non-nil; the matching callback receives every mutation of that
	// field.
	Page              *int
	OnPageChange      func(int)
	PageSize          *int
	OnPageSizeChange  func(int)
	Sort              *SortState
	OnSortChange      func(SortState)
	Filters           *map[string]string
	OnFiltersChange   func(map[string]string)
	Search            *string
	OnSearchChange    func(string)
	Selection         *Selection
	OnSelectionChange func(Selection)
}

// Reconciler merges the possible state sources into one authoritative
// snapshot and routes every mutation back to whichever source owns the
// mutated field. Methods are safe for concurrent use: debounced search
// commits land on a timer goroutine while the host keeps reading state.
type Reconciler struct {
	mu       sync.Mutex
	opts     ReconcilerOptions
	internal ListState
	defaults ListState
}

const (
	defaultPage     = 1
	defaultPageSize = 10
)

func baseDefaults() ListState {
	return ListState{
		Page:          defaultPage,
		PageSize:      defaultPageSize,
		SortDirection: SortAsc,
		Filters:       map[string]string{},
	}
}

// NewReconciler builds a reconciler. The caller-supplied default state is
// never mutated.
func NewReconciler(opts ReconcilerOptions) *Reconciler {
	defaults := baseDefaults()
	if opts.DefaultState != nil {
		seeded := SnapshotOf(*opts.DefaultState)
		// Fill unset fields from the baseline; merge on the snapshot
		// projection so only exported state takes part.
		if err := mergo.Merge(&seeded, SnapshotOf(defaults)); err == nil {
			defaults = StateOf(seeded)
		} else {
			defaults = opts.DefaultState.clone()
		}
	}
	return &Reconciler{
		opts:     opts,
		internal: defaults.clone(),
		defaults: defaults.clone(),
	}
}

// State returns the authoritative merged state: internal fallback, overridden
// by the full external state object, overridden per-field by granular
// controls. The result is a fresh copy.
func (r *Reconciler) State() ListState {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.stateLocked()
}

func (r *Reconciler) stateLocked() ListState {
	st := r.internal.clone()
	if r.opts.State != nil {
		st = StateOf(*r.opts.State)
	}
	if r.opts.Page != nil {
		st.Page = *r.opts.Page
	}
	if r.opts.PageSize != nil {
		st.PageSize = *r.opts.PageSize
	}
	if r.opts.Sort != nil {
		st.SortKey = r.opts.Sort.Key
		st.SortDirection = r.opts.Sort.Direction
	}
	if r.opts.Filters != nil {
		st.Filters = cloneFilters(*r.opts.Filters)
	}
	if r.opts.Search != nil {
		st.Search = *r.opts.Search
	}
	if r.opts.Selection != nil {
		st.Selected = *r.opts.Selection
	}
	if st.Filters == nil {
		st.Filters = map[string]string{}
	}
	return st
}

// Snapshot returns the serializable projection of the current state.
func (r *Reconciler) Snapshot() Snapshot {
	return SnapshotOf(r.State())
}

// SetPage navigates to the requested page without any side effect on other
// fields.
func (r *Reconciler) SetPage(page int) {
	if page < 1 {
		page = 1
	}
	r.mutate([]Field{FieldPage}, func(next *ListState) {
		next.Page = page
	})
}

// SetPageSize changes the page size and resets the page to 1.
func (r *Reconciler) SetPageSize(size int) {
	if size < 1 {
		size = 1
	}
	r.mutate([]Field{FieldPageSize, FieldPage}, func(next *ListState) {
		next.PageSize = size
		next.Page = 1
	})
}

// SetSort changes the sort key and direction.
func (r *Reconciler) SetSort(key string, direction SortDirection) {
	if direction != SortDesc {
		direction = SortAsc
	}
	r.mutate([]Field{FieldSortKey, FieldSortDirection}, func(next *ListState) {
		next.SortKey = key
		next.SortDirection = direction
	})
}

// SetFilter sets one filter value and resets the page to 1. An empty value
// removes the key entirely: absent key means no filter applied.
func (r *Reconciler) SetFilter(key, value string) {
	r.mutate([]Field{FieldFilters, FieldPage}, func(next *ListState) {
		if value == "" {
			delete(next.Filters, key)
		} else {
			next.Filters[key] = value
		}
		next.Page = 1
	})
}

// SetFilters replaces the whole filter mapping and resets the page to 1.
func (r *Reconciler) SetFilters(filters map[string]string) {
	r.mutate([]Field{FieldFilters, FieldPage}, func(next *ListState) {
		next.Filters = cloneFilters(filters)
		next.Page = 1
	})
}

// ClearFilters removes every filter and resets the page to 1.
func (r *Reconciler) ClearFilters() {
	r.SetFilters(map[string]string{})
}

// SetSearch changes the search text and resets the page to 1.
func (r *Reconciler) SetSearch(query string) {
	r.mutate([]Field{FieldSearch, FieldPage}, func(next *ListState) {
		next.Search = query
		next.Page = 1
	})
}

// SetSelectedIDs replaces the selection.
func (r *Reconciler) SetSelectedIDs(ids []RowID) {
	r.mutate([]Field{FieldSelection}, func(next *ListState) {
		next.Selected = NewSelection(ids...)
	})
}

// ToggleSelected flips the selection state of one row identity.
func (r *Reconciler) ToggleSelected(id RowID) {
	r.mutate([]Field{FieldSelection}, func(next *ListState) {
		next.Selected = next.Selected.Toggle(id)
	})
}

// Reset restores the default state and reports all seven fields as changed.
func (r *Reconciler) Reset() {
	r.mu.Lock()
	notify := r.commitLocked(r.defaults.clone(), append([]Field(nil), allFields...))
	r.mu.Unlock()
	notify()
}

// mutate applies one read-modify-write transition under the lock, then
// delivers owner callbacks after releasing it so owners may re-enter the
// reconciler.
func (r *Reconciler) mutate(fields []Field, apply func(*ListState)) {
	r.mu.Lock()
	next := r.stateLocked()
	apply(&next)
	notify := r.commitLocked(next, fields)
	r.mu.Unlock()
	notify()
}

// commitLocked routes one atomic state transition to the owners of the
// changed fields. Unowned fields are written to internal state under the
// lock; granular owner callbacks and OnStateChange are collected and returned
// for the caller to invoke once the lock is released.
func (r *Reconciler) commitLocked(next ListState, fields []Field) func() {
	fullOwned := false
	sortNotified := false
	var notifiers []func()
	for _, f := range fields {
		switch {
		case r.granularOwned(f):
			if f == FieldSortKey || f == FieldSortDirection {
				if sortNotified {
					continue
				}
				sortNotified = true
			}
			if fn := r.granularNotifier(f, next); fn != nil {
				notifiers = append(notifiers, fn)
			}
		case r.opts.State != nil:
			fullOwned = true
		default:
			r.applyInternal(f, next)
		}
	}
	if fullOwned && r.opts.OnStateChange != nil {
		snap := SnapshotOf(next)
		manifest := append([]Field(nil), fields...)
		notifiers = append(notifiers, func() { r.opts.OnStateChange(snap, manifest) })
	}
	return func() {
		for _, fn := range notifiers {
			fn()
		}
	}
}

func (r *Reconciler) granularOwned(f Field) bool {
	switch f {
	case FieldPage:
		return r.opts.Page != nil
	case FieldPageSize:
		return r.opts.PageSize != nil
	case FieldSortKey, FieldSortDirection:
		return r.opts.Sort != nil
	case FieldFilters:
		return r.opts.Filters != nil
	case FieldSearch:
		return r.opts.Search != nil
	case FieldSelection:
		return r.opts.Selection != nil
	}
	return false
}

func (r *Reconciler) granularNotifier(f Field, next ListState) func() {
	switch f {
	case FieldPage:
		if r.opts.OnPageChange != nil {
			page := next.Page
			return func() { r.opts.OnPageChange(page) }
		}
	case FieldPageSize:
		if r.opts.OnPageSizeChange != nil {
			size := next.PageSize
			return func() { r.opts.OnPageSizeChange(size) }
		}
	case FieldSortKey, FieldSortDirection:
		if r.opts.OnSortChange != nil {
			sort := next.Sort()
			return func() { r.opts.OnSortChange(sort) }
		}
	case FieldFilters:
		if r.opts.OnFiltersChange != nil {
			filters := cloneFilters(next.Filters)
			return func() { r.opts.OnFiltersChange(filters) }
		}
	case FieldSearch:
		if r.opts.OnSearchChange != nil {
			query := next.Search
			return func() { r.opts.OnSearchChange(query) }
		}
	case FieldSelection:
		if r.opts.OnSelectionChange != nil {
			selected := next.Selected
			return func() { r.opts.OnSelectionChange(selected) }
		}
	}
	return nil
}

func (r *Reconciler) applyInternal(f Field, next ListState) {
	switch f {
	case FieldPage:
		r.internal.Page = next.Page
	case FieldPageSize:
		r.internal.PageSize = next.PageSize
	case FieldSortKey:
		r.internal.SortKey = next.SortKey
	case FieldSortDirection:
		r.internal.SortDirection = next.SortDirection
	case FieldFilters:
		r.internal.Filters = cloneFilters(next.Filters)
	case FieldSearch:
		r.internal.Search = next.Search
	case FieldSelection:
		r.internal.Selected = next.Selected
	}
}
