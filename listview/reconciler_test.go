package listview

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReconcilerUncontrolled(t *testing.T) {
	t.Run("Should seed defaults when nothing is supplied", func(t *testing.T) {
		r := NewReconciler(ReconcilerOptions{})
		st := r.State()
		assert.Equal(t, 1, st.Page)
		assert.Equal(t, 10, st.PageSize)
		assert.Equal(t, SortAsc, st.SortDirection)
		assert.Empty(t, st.Filters)
	})

	t.Run("Should fill zero fields of the default state", func(t *testing.T) {
		r := NewReconciler(ReconcilerOptions{
			DefaultState: &ListState{PageSize: 25, SortKey: "name"},
		})
		st := r.State()
		assert.Equal(t, 1, st.Page)
		assert.Equal(t, 25, st.PageSize)
		assert.Equal(t, "name", st.SortKey)
	})

	t.Run("Should never mutate the caller-supplied default state", func(t *testing.T) {
		defaults := &ListState{Filters: map[string]string{"status": "open"}}
		r := NewReconciler(ReconcilerOptions{DefaultState: defaults})

		r.SetFilter("status", "closed")
		r.SetFilter("role", "admin")

		assert.Equal(t, map[string]string{"status": "open"}, defaults.Filters)
	})

	t.Run("Should update internal state through setters", func(t *testing.T) {
		r := NewReconciler(ReconcilerOptions{})
		r.SetSort("name", SortDesc)
		r.SetSearch("bob")
		st := r.State()
		assert.Equal(t, "name", st.SortKey)
		assert.Equal(t, SortDesc, st.SortDirection)
		assert.Equal(t, "bob", st.Search)
	})

	t.Run("Should reset the page when page size changes", func(t *testing.T) {
		// Scenario: pageSize 10 -> 25 while page = 3.
		r := NewReconciler(ReconcilerOptions{})
		r.SetPage(3)
		require.Equal(t, 3, r.State().Page)

		r.SetPageSize(25)

		st := r.State()
		assert.Equal(t, 1, st.Page)
		assert.Equal(t, 25, st.PageSize)
	})

	t.Run("Should reset the page on filter and search changes", func(t *testing.T) {
		r := NewReconciler(ReconcilerOptions{})

		r.SetPage(4)
		r.SetFilter("role", "admin")
		assert.Equal(t, 1, r.State().Page)

		r.SetPage(4)
		r.SetSearch("x")
		assert.Equal(t, 1, r.State().Page)

		r.SetPage(4)
		r.ClearFilters()
		assert.Equal(t, 1, r.State().Page)
	})

	t.Run("Should keep the exact requested page for pure navigation", func(t *testing.T) {
		r := NewReconciler(ReconcilerOptions{})
		r.SetPage(7)
		assert.Equal(t, 7, r.State().Page)
	})

	t.Run("Should remove a filter key when set to empty", func(t *testing.T) {
		r := NewReconciler(ReconcilerOptions{})
		r.SetFilter("role", "admin")
		r.SetFilter("role", "")
		_, present := r.State().Filters["role"]
		assert.False(t, present)
	})

	t.Run("Should be idempotent for repeated setter calls", func(t *testing.T) {
		r := NewReconciler(ReconcilerOptions{})
		r.SetFilter("role", "admin")
		once := r.Snapshot()
		r.SetFilter("role", "admin")
		twice := r.Snapshot()
		assert.Equal(t, once, twice)

		r.SetPage(5)
		first := r.Snapshot()
		r.SetPage(5)
		assert.Equal(t, first, r.Snapshot())
	})

	t.Run("Should restore defaults on reset and report all fields", func(t *testing.T) {
		r := NewReconciler(ReconcilerOptions{
			DefaultState: &ListState{PageSize: 20, SortKey: "created"},
		})
		r.SetPage(9)
		r.SetSearch("abc")
		r.SetSelectedIDs([]RowID{"a", "b"})

		r.Reset()

		st := r.State()
		assert.Equal(t, 1, st.Page)
		assert.Equal(t, 20, st.PageSize)
		assert.Equal(t, "created", st.SortKey)
		assert.Empty(t, st.Search)
		assert.Zero(t, st.Selected.Len())
	})
}

func TestReconcilerFullyControlled(t *testing.T) {
	t.Run("Should report filter change with manifest and not touch internal state", func(t *testing.T) {
		external := SnapshotOf(baseDefaults())
		var gotSnap Snapshot
		var gotFields []Field
		calls := 0
		r := NewReconciler(ReconcilerOptions{
			State: &external,
			OnStateChange: func(s Snapshot, fields []Field) {
				gotSnap = s
				gotFields = fields
				calls++
			},
		})

		r.SetFilter("role", "admin")

		require.Equal(t, 1, calls)
		assert.Equal(t, map[string]string{"role": "admin"}, gotSnap.Filters)
		assert.Equal(t, 1, gotSnap.Page)
		assert.Equal(t, []Field{FieldFilters, FieldPage}, gotFields)
		// The external owner has not applied the change yet.
		assert.Empty(t, r.State().Filters)
		assert.Empty(t, r.internal.Filters)
	})

	t.Run("Should read every field from the external snapshot", func(t *testing.T) {
		external := Snapshot{
			Page:          3,
			PageSize:      50,
			SortKey:       "name",
			SortDirection: SortDesc,
			Filters:       map[string]string{"status": "active"},
			Search:        "ann",
			SelectedIDs:   []RowID{"id-1"},
		}
		r := NewReconciler(ReconcilerOptions{State: &external})
		st := r.State()
		assert.Equal(t, 3, st.Page)
		assert.Equal(t, 50, st.PageSize)
		assert.Equal(t, "name", st.SortKey)
		assert.Equal(t, SortDesc, st.SortDirection)
		assert.Equal(t, "ann", st.Search)
		assert.True(t, st.Selected.Has("id-1"))
	})

	t.Run("Should report all seven fields on reset", func(t *testing.T) {
		external := SnapshotOf(baseDefaults())
		var gotFields []Field
		r := NewReconciler(ReconcilerOptions{
			State:         &external,
			OnStateChange: func(_ Snapshot, fields []Field) { gotFields = fields },
		})

		r.Reset()

		assert.ElementsMatch(t, []Field{
			FieldPage, FieldPageSize, FieldSortKey, FieldSortDirection,
			FieldFilters, FieldSearch, FieldSelection,
		}, gotFields)
	})
}

func TestReconcilerGranular(t *testing.T) {
	t.Run("Should route page changes to the page callback only", func(t *testing.T) {
		page := 2
		var gotPage int
		r := NewReconciler(ReconcilerOptions{
			Page:         &page,
			OnPageChange: func(p int) { gotPage = p },
		})

		r.SetPage(5)

		assert.Equal(t, 5, gotPage)
		// The external value is authoritative until its owner updates it.
		assert.Equal(t, 2, r.State().Page)
	})

	t.Run("Should fall back to internal state for unsupplied fields", func(t *testing.T) {
		page := 2
		r := NewReconciler(ReconcilerOptions{Page: &page})

		r.SetSearch("query")

		st := r.State()
		assert.Equal(t, "query", st.Search)
		assert.Equal(t, 2, st.Page)
	})

	t.Run("Should notify sort owner once per sort change", func(t *testing.T) {
		sort := SortState{Key: "name", Direction: SortAsc}
		calls := 0
		r := NewReconciler(ReconcilerOptions{
			Sort:         &sort,
			OnSortChange: func(SortState) { calls++ },
		})

		r.SetSort("created", SortDesc)

		assert.Equal(t, 1, calls)
	})

	t.Run("Should override the full state object per field", func(t *testing.T) {
		external := Snapshot{Page: 3, PageSize: 10}
		page := 8
		r := NewReconciler(ReconcilerOptions{State: &external, Page: &page})
		assert.Equal(t, 8, r.State().Page)
		assert.Equal(t, 10, r.State().PageSize)
	})

	t.Run("Should split a mixed transition between owners", func(t *testing.T) {
		external := SnapshotOf(baseDefaults())
		page := 3
		var gotPage int
		var gotFields []Field
		stateCalls := 0
		r := NewReconciler(ReconcilerOptions{
			State:        &external,
			Page:         &page,
			OnPageChange: func(p int) { gotPage = p },
			OnStateChange: func(_ Snapshot, fields []Field) {
				stateCalls++
				gotFields = fields
			},
		})

		r.SetPageSize(25)

		assert.Equal(t, 1, gotPage)
		assert.Equal(t, 1, stateCalls)
		assert.Equal(t, []Field{FieldPageSize, FieldPage}, gotFields)
	})

	t.Run("Should route selection changes to the selection callback", func(t *testing.T) {
		sel := NewSelection("a")
		var got Selection
		r := NewReconciler(ReconcilerOptions{
			Selection:         &sel,
			OnSelectionChange: func(s Selection) { got = s },
		})

		r.ToggleSelected("b")

		assert.True(t, got.Has("a"))
		assert.True(t, got.Has("b"))
		// External value untouched.
		assert.False(t, sel.Has("b"))
	})
}

func TestSelection(t *testing.T) {
	t.Run("Should preserve insertion order and drop duplicates", func(t *testing.T) {
		s := NewSelection("b", "a", "b", 3)
		assert.Equal(t, []RowID{"b", "a", 3}, s.IDs())
	})

	t.Run("Should copy on write", func(t *testing.T) {
		orig := NewSelection("a")
		grown := orig.Add("b")
		assert.False(t, orig.Has("b"))
		assert.True(t, grown.Has("b"))

		shrunk := grown.Remove("a")
		assert.True(t, grown.Has("a"))
		assert.False(t, shrunk.Has("a"))
	})

	t.Run("Should toggle membership", func(t *testing.T) {
		s := NewSelection()
		s = s.Toggle("x")
		assert.True(t, s.Has("x"))
		s = s.Toggle("x")
		assert.False(t, s.Has("x"))
	})

	t.Run("Should round-trip through snapshots", func(t *testing.T) {
		st := baseDefaults()
		st.Selected = NewSelection("a", "b")
		snap := SnapshotOf(st)
		assert.Equal(t, []RowID{"a", "b"}, snap.SelectedIDs)

		back := StateOf(snap)
		assert.True(t, back.Selected.Equal(st.Selected))
	})
}

func TestReconcilerConcurrency(t *testing.T) {
	t.Run("Should serve reads while writes land on other goroutines", func(t *testing.T) {
		r := NewReconciler(ReconcilerOptions{})
		var wg sync.WaitGroup
		for i := 0; i < 4; i++ {
			wg.Add(1)
			go func(n int) {
				defer wg.Done()
				for j := 0; j < 50; j++ {
					r.SetSearch(fmt.Sprintf("q%d-%d", n, j))
					r.SetFilter("role", "user")
					_ = r.State()
					_ = r.Snapshot()
				}
			}(i)
		}
		wg.Wait()

		st := r.State()
		assert.NotEmpty(t, st.Search)
		assert.Equal(t, "user", st.Filters["role"])
	})
}
