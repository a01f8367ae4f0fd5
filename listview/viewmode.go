package listview

import (
	"fmt"

	"github.com/listkit/listkit/persist"
)

// ViewMode is a presentation mode. ModeAuto is only ever a requested mode;
// resolution always yields one of table, cards, or graph.
type ViewMode string

const (
	ModeAuto  ViewMode = "auto"
	ModeTable ViewMode = "table"
	ModeCards ViewMode = "cards"
	ModeGraph ViewMode = "graph"
)

// resolvedModes is the closed set a resolved mode belongs to; persisted
// values outside it are discarded.
func isResolvedMode(m ViewMode) bool {
	return m == ModeTable || m == ModeCards || m == ModeGraph
}

const (
	// DefaultBreakpoint is the viewport width below which auto mode prefers
	// the mobile mode.
	DefaultBreakpoint = 768
	// DefaultPersistKey stores the preference when the caller requests
	// persistence without naming a key.
	DefaultPersistKey = "listkit.viewmode"
)

// ViewModeOptions configures view-mode resolution.
type ViewModeOptions struct {
	// Requested is the declared mode; empty is treated as auto.
	Requested ViewMode
	// Breakpoint is the auto-mode width threshold; 0 means
	// DefaultBreakpoint.
	Breakpoint int
	// MobileMode is resolved below the breakpoint in auto mode; empty means
	// cards.
	MobileMode ViewMode
	// EnableToggle lets the last explicit user selection override both the
	// requested mode and the viewport.
	EnableToggle bool
	// Persist stores user selections under PersistKey (or the default key)
	// in Store. Only meaningful with EnableToggle.
	Persist    bool
	PersistKey string
	Store      persist.Store
}

// ViewModeResolver decides which presentation mode is active. It is
// re-evaluated on every relevant input change for the life of the list view.
type ViewModeResolver struct {
	opts       ViewModeOptions
	userChoice ViewMode
}

// NewViewModeResolver builds a resolver, reading back a persisted preference
// once to seed the initial user choice. Stored values outside the closed
// mode set are discarded in favor of the configured default.
func NewViewModeResolver(opts ViewModeOptions) *ViewModeResolver {
	if opts.Requested == "" {
		opts.Requested = ModeAuto
	}
	if opts.Breakpoint <= 0 {
		opts.Breakpoint = DefaultBreakpoint
	}
	if opts.MobileMode == "" {
		opts.MobileMode = ModeCards
	}
	r := &ViewModeResolver{opts: opts}
	if opts.EnableToggle && opts.Persist && opts.Store != nil {
		stored, err := opts.Store.Get(r.persistKey())
		if err == nil && isResolvedMode(ViewMode(stored)) {
			r.userChoice = ViewMode(stored)
		}
	}
	return r
}

func (r *ViewModeResolver) persistKey() string {
	if r.opts.PersistKey != "" {
		return r.opts.PersistKey
	}
	return DefaultPersistKey
}

// Resolve returns the active mode for the given viewport width. The sentinel
// auto is never returned.
func (r *ViewModeResolver) Resolve(viewportWidth int) ViewMode {
	if r.opts.EnableToggle && r.userChoice != "" {
		return r.userChoice
	}
	switch r.opts.Requested {
	case ModeGraph:
		return ModeGraph
	case ModeAuto:
		if viewportWidth < r.opts.Breakpoint {
			return r.opts.MobileMode
		}
		return ModeTable
	default:
		if isResolvedMode(r.opts.Requested) {
			return r.opts.Requested
		}
		return ModeTable
	}
}

// SetUserMode records an explicit user selection and persists it when
// configured. Selections outside the closed mode set are rejected.
func (r *ViewModeResolver) SetUserMode(mode ViewMode) error {
	if !isResolvedMode(mode) {
		return fmt.Errorf("invalid view mode %q", mode)
	}
	if !r.opts.EnableToggle {
		return fmt.Errorf("view mode toggle is not enabled")
	}
	r.userChoice = mode
	if r.opts.Persist && r.opts.Store != nil {
		if err := r.opts.Store.Set(r.persistKey(), string(mode)); err != nil {
			return fmt.Errorf("failed to persist view mode: %w", err)
		}
	}
	return nil
}

// UserMode returns the last explicit user selection, empty when none.
func (r *ViewModeResolver) UserMode() ViewMode {
	return r.userChoice
}

// Cycle advances the user selection through the resolved modes that the
// given set allows, starting from the mode currently resolved at width.
func (r *ViewModeResolver) Cycle(width int, allowGraph bool) (ViewMode, error) {
	order := []ViewMode{ModeTable, ModeCards}
	if allowGraph {
		order = append(order, ModeGraph)
	}
	current := r.Resolve(width)
	next := order[0]
	for i, m := range order {
		if m == current {
			next = order[(i+1)%len(order)]
			break
		}
	}
	if err := r.SetUserMode(next); err != nil {
		return current, err
	}
	return next, nil
}
