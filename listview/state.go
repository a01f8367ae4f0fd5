// Package listview implements the state and configuration resolution engine
// behind listkit's list pages: data-source selection, controlled/uncontrolled
// state ownership, unified action/filter/sort compilation, and view-mode
// resolution. The package is presentation-free; rendering lives in
// tui/components.
package listview

// SortDirection is the direction of a column or field sort.
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// RowID identifies one row. String and numeric identities are both accepted;
// values must be comparable so they can key the selection set.
type RowID = any

// Field names one mutable field of ListState, used in change manifests.
type Field string

const (
	FieldPage          Field = "page"
	FieldPageSize      Field = "pageSize"
	FieldSortKey       Field = "sortKey"
	FieldSortDirection Field = "sortDirection"
	FieldFilters       Field = "filters"
	FieldSearch        Field = "search"
	FieldSelection     Field = "selectedIds"
)

// allFields is the manifest reported by Reset.
var allFields = []Field{
	FieldPage,
	FieldPageSize,
	FieldSortKey,
	FieldSortDirection,
	FieldFilters,
	FieldSearch,
	FieldSelection,
}

// SortState pairs a sort key with its direction. An empty Key means no sort
// is active.
type SortState struct {
	Key       string        `json:"key"`
	Direction SortDirection `json:"direction"`
}

// Selection is an ordered set of row identities with copy-on-write mutation.
// The zero value is an empty selection. Mutating operations return a new
// Selection and never alias the receiver's backing storage.
type Selection struct {
	ids   []RowID
	index map[RowID]struct{}
}

// NewSelection builds a selection from ids, dropping duplicates while
// preserving first-seen order.
func NewSelection(ids ...RowID) Selection {
	s := Selection{}
	for _, id := range ids {
		s = s.Add(id)
	}
	return s
}

// Len returns the number of selected identities.
func (s Selection) Len() int {
	return len(s.ids)
}

// Has reports whether id is selected.
func (s Selection) Has(id RowID) bool {
	_, ok := s.index[id]
	return ok
}

// IDs returns the selected identities in insertion order. The returned slice
// is a copy.
func (s Selection) IDs() []RowID {
	out := make([]RowID, len(s.ids))
	copy(out, s.ids)
	return out
}

// Add returns a selection containing id. Adding an already selected id
// returns an equivalent selection.
func (s Selection) Add(id RowID) Selection {
	if s.Has(id) {
		return s
	}
	next := s.clone()
	next.ids = append(next.ids, id)
	next.index[id] = struct{}{}
	return next
}

// Remove returns a selection without id.
func (s Selection) Remove(id RowID) Selection {
	if !s.Has(id) {
		return s
	}
	next := Selection{
		ids:   make([]RowID, 0, len(s.ids)-1),
		index: make(map[RowID]struct{}, len(s.ids)-1),
	}
	for _, existing := range s.ids {
		if existing == id {
			continue
		}
		next.ids = append(next.ids, existing)
		next.index[existing] = struct{}{}
	}
	return next
}

// Toggle returns a selection with id added when absent or removed when
// present.
func (s Selection) Toggle(id RowID) Selection {
	if s.Has(id) {
		return s.Remove(id)
	}
	return s.Add(id)
}

// Equal reports whether two selections hold the same identities in the same
// order.
func (s Selection) Equal(other Selection) bool {
	if len(s.ids) != len(other.ids) {
		return false
	}
	for i := range s.ids {
		if s.ids[i] != other.ids[i] {
			return false
		}
	}
	return true
}

func (s Selection) clone() Selection {
	next := Selection{
		ids:   make([]RowID, len(s.ids), len(s.ids)+1),
		index: make(map[RowID]struct{}, len(s.ids)+1),
	}
	copy(next.ids, s.ids)
	for id := range s.index {
		next.index[id] = struct{}{}
	}
	return next
}

// ListState is the authoritative runtime state of one list view.
type ListState struct {
	Page          int
	PageSize      int
	SortKey       string
	SortDirection SortDirection
	Filters       map[string]string
	Search        string
	Selected      Selection
}

// Sort returns the current sort key and direction as one value.
func (s ListState) Sort() SortState {
	return SortState{Key: s.SortKey, Direction: s.SortDirection}
}

// clone returns a deep copy so that transitions never alias filter maps or
// selection storage across snapshots.
func (s ListState) clone() ListState {
	next := s
	next.Filters = cloneFilters(s.Filters)
	return next
}

func cloneFilters(filters map[string]string) map[string]string {
	out := make(map[string]string, len(filters))
	for k, v := range filters {
		out[k] = v
	}
	return out
}

// Snapshot is the serialization-safe projection of ListState used when state
// ownership is external. SelectedIDs is an ordered list rather than a set.
// Snapshots are constructed on demand and never mutated in place.
type Snapshot struct {
	Page          int               `json:"page"`
	PageSize      int               `json:"pageSize"`
	SortKey       string            `json:"sortKey,omitempty"`
	SortDirection SortDirection     `json:"sortDirection"`
	Filters       map[string]string `json:"filters"`
	Search        string            `json:"search"`
	SelectedIDs   []RowID           `json:"selectedIds"`
}

// SnapshotOf projects a ListState into its serializable form.
func SnapshotOf(s ListState) Snapshot {
	return Snapshot{
		Page:          s.Page,
		PageSize:      s.PageSize,
		SortKey:       s.SortKey,
		SortDirection: s.SortDirection,
		Filters:       cloneFilters(s.Filters),
		Search:        s.Search,
		SelectedIDs:   s.Selected.IDs(),
	}
}

// StateOf rebuilds a ListState from a snapshot.
func StateOf(snap Snapshot) ListState {
	return ListState{
		Page:          snap.Page,
		PageSize:      snap.PageSize,
		SortKey:       snap.SortKey,
		SortDirection: snap.SortDirection,
		Filters:       cloneFilters(snap.Filters),
		Search:        snap.Search,
		Selected:      NewSelection(snap.SelectedIDs...),
	}
}
