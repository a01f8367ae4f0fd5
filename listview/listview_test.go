package listview

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func employeeDefinition() Definition[employee] {
	return Definition[employee]{
		Source: DataSource[employee]{Items: sampleEmployees()},
		Fields: employeeFields(),
		ID:     func(e employee) RowID { return e.Name },
	}
}

func TestNewListView(t *testing.T) {
	t.Run("Should fail fast without any data source", func(t *testing.T) {
		_, err := New(t.Context(), Definition[employee]{Fields: employeeFields()})
		assert.ErrorIs(t, err, ErrNoDataSource)
	})

	t.Run("Should accept a loading-only definition", func(t *testing.T) {
		lv, err := New(t.Context(), Definition[employee]{
			Source: DataSource[employee]{Loading: true},
			Fields: employeeFields(),
		})
		require.NoError(t, err)
		res, err := lv.Resolve(t.Context())
		require.NoError(t, err)
		assert.True(t, res.IsLoading)
	})

	t.Run("Should seed default sort and filters from the compiled config", func(t *testing.T) {
		def := employeeDefinition()
		def.Sort = UnifiedSort[employee]{
			Options: []SortOption[employee]{{Value: "age", Direction: SortDesc}},
			Default: "age",
		}
		def.Filters = UnifiedFilters{{Key: "role", Default: "user"}}
		lv, err := New(t.Context(), def)
		require.NoError(t, err)

		st := lv.State()
		assert.Equal(t, "age", st.SortKey)
		assert.Equal(t, SortDesc, st.SortDirection)
		assert.Equal(t, map[string]string{"role": "user"}, st.Filters)
	})

	t.Run("Should let an explicit default state win over compiled seeds", func(t *testing.T) {
		def := employeeDefinition()
		def.Sort = UnifiedSort[employee]{Default: "age"}
		def.State.DefaultState = &ListState{SortKey: "name"}
		lv, err := New(t.Context(), def)
		require.NoError(t, err)
		assert.Equal(t, "name", lv.State().SortKey)
	})
}

func TestListViewResolve(t *testing.T) {
	t.Run("Should shape direct items through the client pipeline", func(t *testing.T) {
		lv, err := New(t.Context(), employeeDefinition())
		require.NoError(t, err)

		lv.SetFilter("role", "user")
		lv.SetSort("name", SortAsc)

		res, err := lv.Resolve(t.Context())
		require.NoError(t, err)
		assert.Equal(t, []string{"Bob", "carol"}, names(res.Rows))
		assert.Equal(t, 2, res.Total)
	})

	t.Run("Should pass state verbatim to remote strategies by default", func(t *testing.T) {
		var got any
		def := Definition[employee]{
			Source: DataSource[employee]{
				Query: func(_ context.Context, input any) QueryOutcome {
					got = input
					return QueryOutcome{Data: []employee{}}
				},
			},
			Fields: employeeFields(),
		}
		lv, err := New(t.Context(), def)
		require.NoError(t, err)
		lv.SetPage(2)

		_, err = lv.Resolve(t.Context())
		require.NoError(t, err)

		snap, ok := got.(Snapshot)
		require.True(t, ok)
		assert.Equal(t, 2, snap.Page)
	})

	t.Run("Should apply the caller's query input mapping", func(t *testing.T) {
		var got any
		def := Definition[employee]{
			Source: DataSource[employee]{
				Query: func(_ context.Context, input any) QueryOutcome {
					got = input
					return QueryOutcome{Data: []employee{}}
				},
			},
			Fields:     employeeFields(),
			QueryInput: func(st ListState) any { return map[string]int{"offset": (st.Page - 1) * st.PageSize} },
		}
		lv, err := New(t.Context(), def)
		require.NoError(t, err)
		lv.SetPage(3)

		_, err = lv.Resolve(t.Context())
		require.NoError(t, err)
		assert.Equal(t, map[string]int{"offset": 20}, got)
	})

	t.Run("Should not client-filter remote rows", func(t *testing.T) {
		def := Definition[employee]{
			Source: DataSource[employee]{
				Query: func(context.Context, any) QueryOutcome {
					return QueryOutcome{Data: sampleEmployees()}
				},
			},
			Fields: employeeFields(),
		}
		lv, err := New(t.Context(), def)
		require.NoError(t, err)
		lv.SetFilter("role", "user")

		res, err := lv.Resolve(t.Context())
		require.NoError(t, err)
		assert.Len(t, res.Rows, 3)
	})
}

func TestListViewEmptyState(t *testing.T) {
	lv, err := New(context.Background(), employeeDefinition())
	require.NoError(t, err)

	t.Run("Should classify populated results as non-empty", func(t *testing.T) {
		res, err := lv.Resolve(context.Background())
		require.NoError(t, err)
		assert.Equal(t, EmptyNone, lv.EmptyState(res))
	})

	t.Run("Should classify loading results as non-empty", func(t *testing.T) {
		assert.Equal(t, EmptyNone, lv.EmptyState(Result[employee]{IsLoading: true}))
	})

	t.Run("Should distinguish no matches from no data", func(t *testing.T) {
		lv.SetSearch("zzz")
		res, err := lv.Resolve(context.Background())
		require.NoError(t, err)
		assert.Equal(t, EmptyNoMatches, lv.EmptyState(res))
		lv.SetSearch("")

		empty, err := New(context.Background(), Definition[employee]{
			Source: DataSource[employee]{Items: []employee{}},
			Fields: employeeFields(),
		})
		require.NoError(t, err)
		res, err = empty.Resolve(context.Background())
		require.NoError(t, err)
		assert.Equal(t, EmptyNoData, empty.EmptyState(res))
	})
}

func TestListViewRunAction(t *testing.T) {
	t.Run("Should route navigation targets to the navigate callback", func(t *testing.T) {
		var gotURL string
		def := employeeDefinition()
		def.Actions = UnifiedActions[employee]{
			{Key: "view", NavigateTo: func(e employee) string { return "/employees/" + e.Name }},
		}
		def.Navigate = func(url string) { gotURL = url }
		lv, err := New(t.Context(), def)
		require.NoError(t, err)

		require.NoError(t, lv.RunAction(t.Context(), "view", employee{Name: "alice"}))
		assert.Equal(t, "/employees/alice", gotURL)
	})

	t.Run("Should run mutations with derived input", func(t *testing.T) {
		var gotInput any
		def := employeeDefinition()
		def.Actions = UnifiedActions[employee]{
			{Key: "promote", Mutation: &Mutation[employee]{
				Input: func(e employee) any { return e.Name },
				Run: func(_ context.Context, input any) error {
					gotInput = input
					return nil
				},
			}},
		}
		lv, err := New(t.Context(), def)
		require.NoError(t, err)

		require.NoError(t, lv.RunAction(t.Context(), "promote", employee{Name: "Bob"}))
		assert.Equal(t, "Bob", gotInput)
	})

	t.Run("Should surface failures to the error callback without touching state", func(t *testing.T) {
		boom := errors.New("boom")
		var reported error
		def := employeeDefinition()
		def.Actions = UnifiedActions[employee]{
			{Key: "fail", OnClick: func(context.Context, employee) error { return boom }},
		}
		def.OnError = func(err error) { reported = err }
		lv, err := New(t.Context(), def)
		require.NoError(t, err)
		lv.SetPage(4)
		before := lv.Snapshot()

		err = lv.RunAction(t.Context(), "fail", employee{})
		assert.ErrorIs(t, err, boom)
		assert.ErrorIs(t, reported, boom)
		assert.Equal(t, before, lv.Snapshot())
	})

	t.Run("Should skip disabled actions", func(t *testing.T) {
		ran := false
		def := employeeDefinition()
		def.Actions = UnifiedActions[employee]{
			{
				Key:      "guarded",
				OnClick:  func(context.Context, employee) error { ran = true; return nil },
				Disabled: func(e employee) bool { return e.Role == "admin" },
			},
		}
		lv, err := New(t.Context(), def)
		require.NoError(t, err)

		require.NoError(t, lv.RunAction(t.Context(), "guarded", employee{Role: "admin"}))
		assert.False(t, ran)
	})

	t.Run("Should reject unknown action keys", func(t *testing.T) {
		lv, err := New(t.Context(), employeeDefinition())
		require.NoError(t, err)
		assert.Error(t, lv.RunAction(t.Context(), "nope", employee{}))
	})
}

func TestListViewVerify(t *testing.T) {
	t.Run("Should warn when table mode has no columns", func(t *testing.T) {
		lv, err := New(t.Context(), Definition[employee]{
			Source:   DataSource[employee]{Items: sampleEmployees()},
			ViewMode: ViewModeOptions{Requested: ModeTable},
		})
		require.NoError(t, err)
		warnings := lv.Verify(t.Context(), 1000)
		require.Len(t, warnings, 1)
		assert.Contains(t, warnings[0], "column definitions")
	})

	t.Run("Should warn when graph mode has no value function", func(t *testing.T) {
		lv, err := New(t.Context(), Definition[employee]{
			Source:   DataSource[employee]{Items: sampleEmployees()},
			Fields:   employeeFields(),
			ViewMode: ViewModeOptions{Requested: ModeGraph},
		})
		require.NoError(t, err)
		warnings := lv.Verify(t.Context(), 1000)
		require.Len(t, warnings, 1)
		assert.Contains(t, warnings[0], "graph")
	})

	t.Run("Should check every toggled mode", func(t *testing.T) {
		lv, err := New(t.Context(), Definition[employee]{
			Source:   DataSource[employee]{Items: sampleEmployees()},
			ViewMode: ViewModeOptions{Requested: ModeTable, EnableToggle: true},
		})
		require.NoError(t, err)
		warnings := lv.Verify(t.Context(), 1000)
		assert.Len(t, warnings, 2)
	})

	t.Run("Should accept a card renderer in place of fields", func(t *testing.T) {
		lv, err := New(t.Context(), Definition[employee]{
			Source:     DataSource[employee]{Items: sampleEmployees()},
			CardRender: func(e employee) string { return e.Name },
			ViewMode:   ViewModeOptions{Requested: ModeCards},
		})
		require.NoError(t, err)
		assert.Empty(t, lv.Verify(t.Context(), 1000))
	})
}

func TestListViewDebouncedSearch(t *testing.T) {
	t.Run("Should apply only the latest search text", func(t *testing.T) {
		def := employeeDefinition()
		def.SearchDebounce = 20 * time.Millisecond
		lv, err := New(t.Context(), def)
		require.NoError(t, err)
		defer lv.Close()

		var mu sync.Mutex
		applied := make(chan struct{}, 1)
		lv.SetSearchDebounced("a", nil)
		lv.SetSearchDebounced("al", nil)
		lv.SetSearchDebounced("ali", func() {
			mu.Lock()
			defer mu.Unlock()
			applied <- struct{}{}
		})

		select {
		case <-applied:
		case <-time.After(time.Second):
			t.Fatal("debounced search was never applied")
		}
		assert.Equal(t, "ali", lv.State().Search)
		assert.Equal(t, 1, lv.State().Page)
	})

	t.Run("Should keep state readable while a debounced search commits", func(t *testing.T) {
		def := employeeDefinition()
		def.SearchDebounce = 5 * time.Millisecond
		lv, err := New(t.Context(), def)
		require.NoError(t, err)
		defer lv.Close()

		stop := make(chan struct{})
		var wg sync.WaitGroup
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-stop:
					return
				default:
					_ = lv.State()
					_ = lv.Snapshot()
				}
			}
		}()

		applied := make(chan struct{})
		lv.SetSearchDebounced("bob", func() { close(applied) })
		select {
		case <-applied:
		case <-time.After(time.Second):
			t.Fatal("debounced search was never applied")
		}
		close(stop)
		wg.Wait()
		assert.Equal(t, "bob", lv.State().Search)
	})

	t.Run("Should cancel a pending debounce on an immediate search", func(t *testing.T) {
		def := employeeDefinition()
		def.SearchDebounce = 15 * time.Millisecond
		lv, err := New(t.Context(), def)
		require.NoError(t, err)
		defer lv.Close()

		lv.SetSearchDebounced("stale", nil)
		lv.SetSearch("")
		time.Sleep(60 * time.Millisecond)
		assert.Equal(t, "", lv.State().Search)
	})

	t.Run("Should cancel a pending debounce on reset", func(t *testing.T) {
		def := employeeDefinition()
		def.SearchDebounce = 15 * time.Millisecond
		lv, err := New(t.Context(), def)
		require.NoError(t, err)
		defer lv.Close()

		lv.SetSearchDebounced("stale", nil)
		lv.Reset()
		time.Sleep(60 * time.Millisecond)
		assert.Equal(t, "", lv.State().Search)
	})
}

func TestDebouncer(t *testing.T) {
	t.Run("Should supersede pending triggers", func(t *testing.T) {
		d := NewDebouncer(15 * time.Millisecond)
		defer d.Stop()

		var mu sync.Mutex
		var got []string
		done := make(chan struct{})
		d.Trigger(func() {
			mu.Lock()
			got = append(got, "first")
			mu.Unlock()
		})
		d.Trigger(func() {
			mu.Lock()
			got = append(got, "second")
			mu.Unlock()
			close(done)
		})

		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("debouncer never fired")
		}
		mu.Lock()
		defer mu.Unlock()
		assert.Equal(t, []string{"second"}, got)
	})

	t.Run("Should not fire after Stop", func(t *testing.T) {
		d := NewDebouncer(10 * time.Millisecond)
		fired := false
		d.Trigger(func() { fired = true })
		d.Stop()
		time.Sleep(40 * time.Millisecond)
		assert.False(t, fired)
	})
}
