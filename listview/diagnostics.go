package listview

import (
	"context"

	"github.com/listkit/listkit/pkg/logger"
)

// Verify runs the development-time consistency pass over the resolved view
// mode and the supplied configuration. The returned warnings are advisory
// only: they are logged in dev mode and never alter resolved state.
func (lv *ListView[T]) Verify(ctx context.Context, width int) []string {
	var warnings []string
	modes := []ViewMode{lv.ViewMode(width)}
	if lv.def.ViewMode.EnableToggle {
		modes = []ViewMode{ModeTable, ModeCards}
		if lv.def.GraphValue != nil {
			modes = append(modes, ModeGraph)
		}
	}
	for _, mode := range modes {
		warnings = append(warnings, lv.verifyMode(mode)...)
	}
	if lv.def.Dev {
		log := logger.FromContext(ctx)
		for _, w := range warnings {
			log.Warn("list view configuration", "warning", w)
		}
	}
	return warnings
}

func (lv *ListView[T]) verifyMode(mode ViewMode) []string {
	var warnings []string
	switch mode {
	case ModeTable:
		if len(lv.def.Fields) == 0 {
			warnings = append(warnings, "table mode requires column definitions")
		}
	case ModeCards:
		if lv.def.CardRender == nil && len(lv.def.Fields) == 0 {
			warnings = append(warnings,
				"card mode requires a card renderer or field definitions")
		}
	case ModeGraph:
		if lv.def.GraphValue == nil {
			warnings = append(warnings, "graph mode requires a graph value function")
		}
	}
	return warnings
}

// warnDeprecatedConfigs reports legacy configuration shapes supplied
// alongside their unified replacements.
func (lv *ListView[T]) warnDeprecatedConfigs(ctx context.Context) {
	log := logger.FromContext(ctx)
	if lv.def.Actions != nil && (lv.def.LegacyRowActions != nil || lv.def.LegacyCardActions != nil) {
		log.Warn("legacy action configs are deprecated; unified actions replace them")
	}
	if lv.def.Filters != nil && lv.def.LegacyCardFilters != nil {
		log.Warn("legacy card filters are deprecated; they override unified filters on key collision")
	}
}
