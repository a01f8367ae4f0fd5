package listview

// SortOption is one sortable field descriptor of the unified sort
// configuration.
type SortOption[T any] struct {
	// Value is the field key the option sorts by.
	Value string
	Label string
	// Direction is the option's own declared default direction.
	Direction SortDirection
	// Compare overrides the inferred comparison for this option.
	Compare func(a, b T) int
}

// UnifiedSort declares the sortable fields and the designated default.
type UnifiedSort[T any] struct {
	Options []SortOption[T]
	// Default is the field key sorted by initially.
	Default string
	// DefaultDirection applies when the default option declares none.
	DefaultDirection SortDirection
}

// CardSort is the card-mode sort descriptor.
type CardSort[T any] struct {
	Options []SortOption[T]
	Default SortState
	// CompareFor returns the comparator for a sort key: the option's custom
	// comparator when declared, else the default inference rules.
	CompareFor func(key string) func(a, b T) int
}

// CompiledSort is the canonical output of the sort compiler.
type CompiledSort[T any] struct {
	Table SortState
	Cards CardSort[T]
}

// CompileSort resolves the default sort key's direction from, in order, the
// option's own declared direction, the config-level default direction, then
// ascending. The pipeline supplies inferred comparators for options without
// a custom one.
func CompileSort[T any](cfg UnifiedSort[T], pipeline Pipeline[T]) CompiledSort[T] {
	direction := SortAsc
	if cfg.DefaultDirection == SortDesc {
		direction = SortDesc
	}
	for _, opt := range cfg.Options {
		if opt.Value == cfg.Default && opt.Direction != "" {
			direction = opt.Direction
			break
		}
	}
	def := SortState{Key: cfg.Default, Direction: direction}
	options := cfg.Options
	return CompiledSort[T]{
		Table: def,
		Cards: CardSort[T]{
			Options: options,
			Default: def,
			CompareFor: func(key string) func(a, b T) int {
				for _, opt := range options {
					if opt.Value == key && opt.Compare != nil {
						return opt.Compare
					}
				}
				return pipeline.CompareFor(key)
			},
		},
	}
}
