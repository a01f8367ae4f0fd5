package listview

import "sort"

// FilterOption is one selectable value of a filter.
type FilterOption struct {
	Value string
	Label string
	Icon  string
}

// FilterRender hints how a card-mode filter is rendered.
type FilterRender string

const (
	RenderAuto     FilterRender = ""
	RenderButtons  FilterRender = "buttons"
	RenderDropdown FilterRender = "dropdown"
)

// buttonGroupMaxOptions is the option count at or below which card filters
// default to a button group instead of a dropdown.
const buttonGroupMaxOptions = 4

// Filter is one entry of the unified filter configuration.
type Filter struct {
	Key     string
	Label   string
	Options []FilterOption
	// Default selects an option on initialization; empty means no filter.
	Default string
	// Render overrides the automatic button-group/dropdown choice.
	Render FilterRender
	// Scope restricts which presentation modes show the filter.
	Scope ViewScope
}

// UnifiedFilters is the ordered unified filter configuration.
type UnifiedFilters []Filter

// FiltersFromMap normalizes the keyed-mapping input variant into the ordered
// array form, sorted by key for determinism. An entry's Key field, when
// empty, is taken from its map key.
func FiltersFromMap(m map[string]Filter) UnifiedFilters {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	out := make(UnifiedFilters, 0, len(m))
	for _, key := range keys {
		f := m[key]
		if f.Key == "" {
			f.Key = key
		}
		out = append(out, f)
	}
	return out
}

// TableFilter is the tabular-mode representation of a filter.
type TableFilter struct {
	Key     string
	Label   string
	Options []FilterOption
	Default string
}

// CardFilter is the card-mode representation; Render is always resolved,
// never RenderAuto.
type CardFilter struct {
	Key     string
	Label   string
	Options []FilterOption
	Default string
	Render  FilterRender
}

// CompiledFilters is the canonical output of the filter compiler.
type CompiledFilters struct {
	Table []TableFilter
	Cards []CardFilter
}

// CompileFilters splits unified filters into table and card sets per their
// scope and resolves the card rendering hint. Legacy card filters, when
// supplied alongside unified ones, take precedence on key collision.
func CompileFilters(unified UnifiedFilters, legacyCard []CardFilter) CompiledFilters {
	var out CompiledFilters
	for _, f := range unified {
		if f.Scope != ScopeCards {
			out.Table = append(out.Table, TableFilter{
				Key:     f.Key,
				Label:   f.Label,
				Options: f.Options,
				Default: f.Default,
			})
		}
		if f.Scope != ScopeTable {
			out.Cards = append(out.Cards, CardFilter{
				Key:     f.Key,
				Label:   f.Label,
				Options: f.Options,
				Default: f.Default,
				Render:  resolveRender(f.Render, len(f.Options)),
			})
		}
	}
	for _, legacy := range legacyCard {
		legacy.Render = resolveRender(legacy.Render, len(legacy.Options))
		if i := cardFilterIndex(out.Cards, legacy.Key); i >= 0 {
			out.Cards[i] = legacy
		} else {
			out.Cards = append(out.Cards, legacy)
		}
	}
	return out
}

func resolveRender(render FilterRender, optionCount int) FilterRender {
	if render != RenderAuto {
		return render
	}
	if optionCount <= buttonGroupMaxOptions {
		return RenderButtons
	}
	return RenderDropdown
}

func cardFilterIndex(filters []CardFilter, key string) int {
	for i := range filters {
		if filters[i].Key == key {
			return i
		}
	}
	return -1
}

// DefaultFilterValues collects the declared default option of every filter,
// used to seed initial list state.
func DefaultFilterValues(unified UnifiedFilters) map[string]string {
	out := map[string]string{}
	for _, f := range unified {
		if f.Default != "" {
			out[f.Key] = f.Default
		}
	}
	return out
}
