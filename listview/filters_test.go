package listview

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func statusOptions(n int) []FilterOption {
	opts := make([]FilterOption, n)
	values := []string{"a", "b", "c", "d", "e", "f"}
	for i := range opts {
		opts[i] = FilterOption{Value: values[i], Label: values[i]}
	}
	return opts
}

func TestCompileFiltersRendering(t *testing.T) {
	t.Run("Should render few options as a button group", func(t *testing.T) {
		out := CompileFilters(UnifiedFilters{
			{Key: "status", Options: statusOptions(3)},
		}, nil)
		require.Len(t, out.Cards, 1)
		assert.Equal(t, RenderButtons, out.Cards[0].Render)
	})

	t.Run("Should render many options as a dropdown", func(t *testing.T) {
		out := CompileFilters(UnifiedFilters{
			{Key: "status", Options: statusOptions(5)},
		}, nil)
		assert.Equal(t, RenderDropdown, out.Cards[0].Render)
	})

	t.Run("Should keep an explicit rendering hint", func(t *testing.T) {
		out := CompileFilters(UnifiedFilters{
			{Key: "status", Options: statusOptions(2), Render: RenderDropdown},
		}, nil)
		assert.Equal(t, RenderDropdown, out.Cards[0].Render)
	})

	t.Run("Should treat exactly four options as a button group", func(t *testing.T) {
		out := CompileFilters(UnifiedFilters{
			{Key: "status", Options: statusOptions(4)},
		}, nil)
		assert.Equal(t, RenderButtons, out.Cards[0].Render)
	})
}

func TestCompileFiltersScope(t *testing.T) {
	out := CompileFilters(UnifiedFilters{
		{Key: "both", Options: statusOptions(2)},
		{Key: "tableonly", Options: statusOptions(2), Scope: ScopeTable},
		{Key: "cardonly", Options: statusOptions(2), Scope: ScopeCards},
	}, nil)

	t.Run("Should show unscoped filters in both modes", func(t *testing.T) {
		assert.Len(t, out.Table, 2)
		assert.Len(t, out.Cards, 2)
	})

	t.Run("Should respect per-filter visibility", func(t *testing.T) {
		assert.Equal(t, "tableonly", out.Table[1].Key)
		assert.Equal(t, "cardonly", out.Cards[1].Key)
	})
}

func TestCompileFiltersLegacyPrecedence(t *testing.T) {
	t.Run("Should let legacy card filters win on key collision", func(t *testing.T) {
		out := CompileFilters(
			UnifiedFilters{{Key: "status", Label: "Status", Options: statusOptions(3)}},
			[]CardFilter{{Key: "status", Label: "Legacy Status", Options: statusOptions(5)}},
		)
		require.Len(t, out.Cards, 1)
		assert.Equal(t, "Legacy Status", out.Cards[0].Label)
		assert.Equal(t, RenderDropdown, out.Cards[0].Render)
	})

	t.Run("Should append non-colliding legacy filters", func(t *testing.T) {
		out := CompileFilters(
			UnifiedFilters{{Key: "status", Options: statusOptions(2)}},
			[]CardFilter{{Key: "region", Options: statusOptions(2)}},
		)
		assert.Len(t, out.Cards, 2)
	})

	t.Run("Should not let legacy filters leak into the table set", func(t *testing.T) {
		out := CompileFilters(nil, []CardFilter{{Key: "region"}})
		assert.Empty(t, out.Table)
		assert.Len(t, out.Cards, 1)
	})
}

func TestFiltersFromMap(t *testing.T) {
	t.Run("Should normalize the keyed-mapping variant deterministically", func(t *testing.T) {
		out := FiltersFromMap(map[string]Filter{
			"role":   {Options: statusOptions(2)},
			"status": {Key: "status", Options: statusOptions(2)},
		})
		require.Len(t, out, 2)
		assert.Equal(t, "role", out[0].Key)
		assert.Equal(t, "status", out[1].Key)
	})
}

func TestDefaultFilterValues(t *testing.T) {
	t.Run("Should collect declared defaults only", func(t *testing.T) {
		defaults := DefaultFilterValues(UnifiedFilters{
			{Key: "status", Default: "active"},
			{Key: "role"},
		})
		assert.Equal(t, map[string]string{"status": "active"}, defaults)
	})
}

func TestCompileSortDirections(t *testing.T) {
	fields := employeeFields()
	pipeline := NewPipeline(fields)

	t.Run("Should prefer the option's own declared direction", func(t *testing.T) {
		out := CompileSort(UnifiedSort[employee]{
			Options:          []SortOption[employee]{{Value: "name", Direction: SortDesc}},
			Default:          "name",
			DefaultDirection: SortAsc,
		}, pipeline)
		assert.Equal(t, SortState{Key: "name", Direction: SortDesc}, out.Table)
	})

	t.Run("Should fall back to the config-level direction", func(t *testing.T) {
		out := CompileSort(UnifiedSort[employee]{
			Options:          []SortOption[employee]{{Value: "name"}},
			Default:          "name",
			DefaultDirection: SortDesc,
		}, pipeline)
		assert.Equal(t, SortDesc, out.Table.Direction)
	})

	t.Run("Should default to ascending", func(t *testing.T) {
		out := CompileSort(UnifiedSort[employee]{
			Options: []SortOption[employee]{{Value: "name"}},
			Default: "name",
		}, pipeline)
		assert.Equal(t, SortAsc, out.Table.Direction)
	})

	t.Run("Should mirror the default into the card descriptor", func(t *testing.T) {
		out := CompileSort(UnifiedSort[employee]{
			Options: []SortOption[employee]{{Value: "age"}},
			Default: "age",
		}, pipeline)
		assert.Equal(t, out.Table, out.Cards.Default)
		assert.Len(t, out.Cards.Options, 1)
	})
}

func TestCardSortCompareFor(t *testing.T) {
	pipeline := NewPipeline(employeeFields())

	t.Run("Should prefer a custom option comparator", func(t *testing.T) {
		out := CompileSort(UnifiedSort[employee]{
			Options: []SortOption[employee]{{
				Value:   "name",
				Compare: func(a, b employee) int { return -compareValues(a.Name, b.Name) },
			}},
			Default: "name",
		}, pipeline)
		cmp := out.Cards.CompareFor("name")
		require.NotNil(t, cmp)
		assert.Positive(t, cmp(employee{Name: "a"}, employee{Name: "b"}))
	})

	t.Run("Should fall back to inferred comparison", func(t *testing.T) {
		out := CompileSort(UnifiedSort[employee]{
			Options: []SortOption[employee]{{Value: "age"}},
			Default: "age",
		}, pipeline)
		cmp := out.Cards.CompareFor("age")
		require.NotNil(t, cmp)
		assert.Negative(t, cmp(employee{Age: 1}, employee{Age: 2}))
	})

	t.Run("Should return nil for unknown keys", func(t *testing.T) {
		out := CompileSort(UnifiedSort[employee]{}, pipeline)
		assert.Nil(t, out.Cards.CompareFor("missing"))
	})
}
