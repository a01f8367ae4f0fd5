package listview

import (
	"context"
	"errors"
)

// ErrNoDataSource is the fatal configuration error raised when a list view
// is constructed without any data-supply strategy and no loading indicator.
var ErrNoDataSource = errors.New("listview: no data source strategy supplied")

// Strategy identifies which data-supply strategy the resolver selected.
type Strategy string

const (
	StrategyNone      Strategy = ""
	StrategyItems     Strategy = "items"
	StrategyQuery     Strategy = "query"
	StrategyProcedure Strategy = "procedure"
	StrategyResult    Strategy = "result"
)

// QueryOutcome is the shape every remote strategy yields: the raw payload
// plus its loading flag. The engine performs no fetching of its own; these
// values come from caller-owned query machinery.
type QueryOutcome struct {
	Data      any
	IsLoading bool
}

// DataSource declares up to four candidate strategies. Callers should supply
// at most one; when several are present the resolver picks the
// highest-precedence one (items > query > procedure > result) without
// suppressing the others.
type DataSource[T any] struct {
	// Items supplies rows directly; client-side filter/sort/search applies.
	Items []T
	// Query is a parameterized query factory invoked with the resolved
	// input for the current state.
	Query func(ctx context.Context, input any) QueryOutcome
	// Procedure is a named remote-procedure reference invoked the same way.
	Procedure func(ctx context.Context, input any) QueryOutcome
	// Result is a pre-executed query result.
	Result *QueryOutcome
	// Loading marks the view as loading while no strategy is supplied yet,
	// suppressing the fatal configuration error.
	Loading bool

	// ExtractRows pulls rows out of a remote payload. Defaults to asserting
	// the payload to []T.
	ExtractRows func(data any) []T
	// ExtractTotal pulls the total row count out of a remote payload.
	// Defaults to a "total"/"count" key for map payloads, a TotalCount
	// method when implemented, else len(rows).
	ExtractTotal func(data any) int
}

// Active returns the strategy the precedence ladder selects.
func (ds DataSource[T]) Active() Strategy {
	switch {
	case ds.Items != nil:
		return StrategyItems
	case ds.Query != nil:
		return StrategyQuery
	case ds.Procedure != nil:
		return StrategyProcedure
	case ds.Result != nil:
		return StrategyResult
	}
	return StrategyNone
}

// Validate reports the fatal configuration error when no strategy and no
// loading flag are supplied.
func (ds DataSource[T]) Validate() error {
	if ds.Active() == StrategyNone && !ds.Loading {
		return ErrNoDataSource
	}
	return nil
}

// Result is the uniform output shape of the resolver.
type Result[T any] struct {
	Rows      []T
	Total     int
	IsLoading bool
	Raw       any
	Strategy  Strategy
}

// TotalCounter lets payload types report their own total.
type TotalCounter interface {
	TotalCount() int
}

// Resolve selects the active strategy, invokes it when it is an invocable
// one, and normalizes its output. For the items strategy the rows are
// returned verbatim; client-side shaping is the orchestrator's concern.
func (ds DataSource[T]) Resolve(ctx context.Context, input any) (Result[T], error) {
	switch ds.Active() {
	case StrategyItems:
		return Result[T]{
			Rows:     ds.Items,
			Total:    len(ds.Items),
			Strategy: StrategyItems,
		}, nil
	case StrategyQuery:
		return ds.normalize(ds.Query(ctx, input), StrategyQuery), nil
	case StrategyProcedure:
		return ds.normalize(ds.Procedure(ctx, input), StrategyProcedure), nil
	case StrategyResult:
		return ds.normalize(*ds.Result, StrategyResult), nil
	}
	if ds.Loading {
		return Result[T]{IsLoading: true, Strategy: StrategyNone}, nil
	}
	return Result[T]{}, ErrNoDataSource
}

func (ds DataSource[T]) normalize(out QueryOutcome, strategy Strategy) Result[T] {
	rows := ds.rowsOf(out.Data)
	return Result[T]{
		Rows:      rows,
		Total:     ds.totalOf(out.Data, rows),
		IsLoading: out.IsLoading,
		Raw:       out.Data,
		Strategy:  strategy,
	}
}

func (ds DataSource[T]) rowsOf(data any) []T {
	if ds.ExtractRows != nil {
		return ds.ExtractRows(data)
	}
	if rows, ok := data.([]T); ok {
		return rows
	}
	return nil
}

func (ds DataSource[T]) totalOf(data any, rows []T) int {
	if ds.ExtractTotal != nil {
		return ds.ExtractTotal(data)
	}
	if counter, ok := data.(TotalCounter); ok {
		return counter.TotalCount()
	}
	if m, ok := data.(map[string]any); ok {
		for _, key := range []string{"total", "count"} {
			if n, ok := intValue(m[key]); ok {
				return n
			}
		}
	}
	return len(rows)
}

func intValue(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		return int(n), true
	}
	return 0, false
}
