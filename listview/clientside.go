package listview

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// FieldSpec declares one addressable field of a row: how to read its value
// and, optionally, how to compare two rows by it. Field specs double as
// column definitions for tabular rendering and as card field definitions.
type FieldSpec[T any] struct {
	// Key addresses the field in filters and sort state.
	Key string
	// Label is the display title. Falls back to Key when empty.
	Label string
	// Value reads the field from a row.
	Value func(T) any
	// Compare overrides the inferred comparison for this field. Negative
	// means a sorts before b.
	Compare func(a, b T) int
	// Searchable marks the field as a target for substring search.
	Searchable bool
	// Width is a rendering hint for tabular mode.
	Width int
}

// Title returns the display label for the field.
func (f FieldSpec[T]) Title() string {
	if f.Label != "" {
		return f.Label
	}
	return f.Key
}

// Pipeline performs in-memory search, filtering and sorting over a directly
// supplied row slice. It is recomputed synchronously whenever rows or state
// change; there is no caching.
type Pipeline[T any] struct {
	fields map[string]FieldSpec[T]
	order  []string
}

// NewPipeline builds a pipeline over the given field specs.
func NewPipeline[T any](fields []FieldSpec[T]) Pipeline[T] {
	p := Pipeline[T]{fields: make(map[string]FieldSpec[T], len(fields))}
	for _, f := range fields {
		if _, dup := p.fields[f.Key]; dup {
			continue
		}
		p.fields[f.Key] = f
		p.order = append(p.order, f.Key)
	}
	return p
}

// Apply runs search, per-key equality filters, then sort, returning a new
// slice. The input slice is never reordered.
func (p Pipeline[T]) Apply(rows []T, st ListState) []T {
	out := make([]T, 0, len(rows))
	for _, row := range rows {
		if !p.matchesSearch(row, st.Search) {
			continue
		}
		if !p.matchesFilters(row, st.Filters) {
			continue
		}
		out = append(out, row)
	}
	p.sortRows(out, st.SortKey, st.SortDirection)
	return out
}

func (p Pipeline[T]) matchesSearch(row T, query string) bool {
	if query == "" {
		return true
	}
	needle := strings.ToLower(query)
	for _, key := range p.order {
		f := p.fields[key]
		if !f.Searchable || f.Value == nil {
			continue
		}
		haystack := strings.ToLower(stringify(f.Value(row)))
		if strings.Contains(haystack, needle) {
			return true
		}
	}
	return false
}

func (p Pipeline[T]) matchesFilters(row T, filters map[string]string) bool {
	for key, want := range filters {
		f, ok := p.fields[key]
		if !ok || f.Value == nil {
			continue
		}
		if stringify(f.Value(row)) != want {
			return false
		}
	}
	return true
}

func (p Pipeline[T]) sortRows(rows []T, key string, direction SortDirection) {
	if key == "" {
		return
	}
	cmp := p.CompareFor(key)
	if cmp == nil {
		return
	}
	sort.SliceStable(rows, func(i, j int) bool {
		c := cmp(rows[i], rows[j])
		if direction == SortDesc {
			return c > 0
		}
		return c < 0
	})
}

// CompareFor returns the comparator for one field key: the field's custom
// comparator when declared, otherwise the inferred default. Unknown keys
// yield nil.
func (p Pipeline[T]) CompareFor(key string) func(a, b T) int {
	f, ok := p.fields[key]
	if !ok {
		return nil
	}
	if f.Compare != nil {
		return f.Compare
	}
	if f.Value == nil {
		return nil
	}
	value := f.Value
	return func(a, b T) int {
		return compareValues(value(a), value(b))
	}
}

// compareValues implements the default comparison rules: nils sort last,
// strings compare case-folded (chronologically when both parse as dates),
// numerics compare numerically, time.Time chronologically, anything else by
// derived string.
func compareValues(a, b any) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	}
	if ta, ok := a.(time.Time); ok {
		if tb, ok := b.(time.Time); ok {
			return ta.Compare(tb)
		}
	}
	if fa, ok := toFloat(a); ok {
		if fb, ok := toFloat(b); ok {
			switch {
			case fa < fb:
				return -1
			case fa > fb:
				return 1
			default:
				return 0
			}
		}
	}
	if sa, ok := a.(string); ok {
		if sb, ok := b.(string); ok {
			if ta, err := parseDate(sa); err == nil {
				if tb, err := parseDate(sb); err == nil {
					return ta.Compare(tb)
				}
			}
			return strings.Compare(strings.ToLower(sa), strings.ToLower(sb))
		}
	}
	return strings.Compare(
		strings.ToLower(stringify(a)),
		strings.ToLower(stringify(b)),
	)
}

var dateLayouts = []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"}

func parseDate(s string) (time.Time, error) {
	var lastErr error
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}

func stringify(v any) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}
