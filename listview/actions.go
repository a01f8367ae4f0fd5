package listview

import "context"

// ViewScope restricts an action or filter to one presentation mode. The zero
// value shows it in both.
type ViewScope string

const (
	ScopeBoth  ViewScope = ""
	ScopeTable ViewScope = "table"
	ScopeCards ViewScope = "cards"
)

// ConfirmVariant selects the confirmation dialog styling.
type ConfirmVariant string

const (
	VariantDefault ConfirmVariant = ""
	VariantDanger  ConfirmVariant = "danger"
)

// ConfirmSpec describes a confirmation requirement. Description is static
// text; DescriptionFn derives per-row text and takes precedence where the
// target format supports it.
type ConfirmSpec[T any] struct {
	Title         string
	Description   string
	DescriptionFn func(T) string
	Variant       ConfirmVariant
}

// Mutation is an async mutation descriptor: how to derive the input from a
// row and the operation to run with it.
type Mutation[T any] struct {
	Input func(T) any
	Run   func(ctx context.Context, input any) error
}

// Action is one entry of the unified action configuration. Exactly one of
// NavigateTo, OnClick, or Mutation should be set.
type Action[T any] struct {
	// Key names the action (edit, delete, ...).
	Key   string
	Label string
	Icon  string

	NavigateTo func(T) string
	OnClick    func(ctx context.Context, row T) error
	Mutation   *Mutation[T]

	Confirm  *ConfirmSpec[T]
	Hidden   func(T) bool
	Disabled func(T) bool

	// Scope restricts which presentation modes show the action.
	Scope ViewScope
	// Primary flags the default action driving card click.
	Primary bool
	// NotPrimary excludes the action from fallback primary selection.
	NotPrimary bool
	// Destructive actions are never selected as primary.
	Destructive bool
}

// UnifiedActions is the ordered unified action configuration.
type UnifiedActions[T any] []Action[T]

// RowConfirm is the static confirmation shape row actions receive: text is
// resolved at compile time, not per row.
type RowConfirm struct {
	Title       string
	Description string
	Variant     ConfirmVariant
}

// RowAction is the tabular-mode representation of an action.
type RowAction[T any] struct {
	Key   string
	Label string
	Icon  string

	NavigateTo func(T) string
	OnClick    func(ctx context.Context, row T) error
	Mutation   *Mutation[T]

	Confirm     *RowConfirm
	Hidden      func(T) bool
	Disabled    func(T) bool
	Destructive bool
}

// CardAction is the card-mode representation of an action; confirmation
// descriptors keep their per-row dynamic text.
type CardAction[T any] struct {
	Key   string
	Label string
	Icon  string

	NavigateTo func(T) string
	OnClick    func(ctx context.Context, row T) error
	Mutation   *Mutation[T]

	Confirm     *ConfirmSpec[T]
	Hidden      func(T) bool
	Disabled    func(T) bool
	Destructive bool
}

// CompiledActions is the canonical output of the action compiler regardless
// of which configuration variant was supplied.
type CompiledActions[T any] struct {
	RowActions  []RowAction[T]
	CardActions []CardAction[T]
	Primary     *CardAction[T]
	PrimaryKey  string
	IsUnified   bool
}

// CompileActions turns the unified configuration into per-mode action sets.
// Without unified input the legacy configs pass through unchanged.
func CompileActions[T any](
	unified UnifiedActions[T],
	legacyRow []RowAction[T],
	legacyCard []CardAction[T],
) CompiledActions[T] {
	if unified == nil {
		return CompiledActions[T]{
			RowActions:  legacyRow,
			CardActions: legacyCard,
			IsUnified:   false,
		}
	}
	out := CompiledActions[T]{IsUnified: true}
	for _, a := range unified {
		if a.Scope != ScopeCards {
			out.RowActions = append(out.RowActions, a.toRow())
		}
		if a.Scope != ScopeTable {
			out.CardActions = append(out.CardActions, a.toCard())
		}
	}
	out.Primary, out.PrimaryKey = selectPrimary(unified)
	return out
}

func (a Action[T]) toRow() RowAction[T] {
	row := RowAction[T]{
		Key:         a.Key,
		Label:       a.Label,
		Icon:        a.Icon,
		NavigateTo:  a.NavigateTo,
		OnClick:     a.OnClick,
		Mutation:    a.Mutation,
		Hidden:      a.Hidden,
		Disabled:    a.Disabled,
		Destructive: a.Destructive,
	}
	if a.Confirm != nil {
		row.Confirm = &RowConfirm{
			Title:       a.Confirm.Title,
			Description: a.Confirm.Description,
			Variant:     a.Confirm.Variant,
		}
	}
	return row
}

func (a Action[T]) toCard() CardAction[T] {
	return CardAction[T]{
		Key:         a.Key,
		Label:       a.Label,
		Icon:        a.Icon,
		NavigateTo:  a.NavigateTo,
		OnClick:     a.OnClick,
		Mutation:    a.Mutation,
		Confirm:     a.Confirm,
		Hidden:      a.Hidden,
		Disabled:    a.Disabled,
		Destructive: a.Destructive,
	}
}

// selectPrimary picks the action driving card click: first an explicit
// primary flag (never destructive), then the first navigable action that is
// not excluded, not destructive, and not table-only. No match leaves cards
// non-clickable.
func selectPrimary[T any](unified UnifiedActions[T]) (*CardAction[T], string) {
	for _, a := range unified {
		if a.Primary && !a.Destructive {
			card := a.toCard()
			return &card, a.Key
		}
	}
	for _, a := range unified {
		if a.NavigateTo == nil || a.NotPrimary || a.Destructive || a.Scope == ScopeTable {
			continue
		}
		card := a.toCard()
		return &card, a.Key
	}
	return nil, ""
}
