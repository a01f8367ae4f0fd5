package listview

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompileActionsLegacy(t *testing.T) {
	t.Run("Should pass legacy configs through unchanged without unified input", func(t *testing.T) {
		legacyRow := []RowAction[employee]{{Key: "edit", Label: "Edit"}}
		legacyCard := []CardAction[employee]{{Key: "open", Label: "Open"}}

		out := CompileActions[employee](nil, legacyRow, legacyCard)

		assert.False(t, out.IsUnified)
		assert.Equal(t, legacyRow, out.RowActions)
		assert.Equal(t, legacyCard, out.CardActions)
		assert.Nil(t, out.Primary)
	})
}

func TestCompileActionsPartition(t *testing.T) {
	unified := UnifiedActions[employee]{
		{Key: "view", Label: "View", NavigateTo: func(e employee) string { return "/emp/" + e.Name }},
		{Key: "audit", Label: "Audit", Scope: ScopeTable},
		{Key: "share", Label: "Share", Scope: ScopeCards},
		{Key: "delete", Label: "Delete", Destructive: true},
	}
	out := CompileActions(unified, nil, nil)

	t.Run("Should mark the output as unified", func(t *testing.T) {
		assert.True(t, out.IsUnified)
	})

	t.Run("Should drop card-only actions from the row set", func(t *testing.T) {
		keys := make([]string, 0, len(out.RowActions))
		for _, a := range out.RowActions {
			keys = append(keys, a.Key)
		}
		assert.Equal(t, []string{"view", "audit", "delete"}, keys)
	})

	t.Run("Should drop table-only actions from the card set", func(t *testing.T) {
		keys := make([]string, 0, len(out.CardActions))
		for _, a := range out.CardActions {
			keys = append(keys, a.Key)
		}
		assert.Equal(t, []string{"view", "share", "delete"}, keys)
	})
}

func TestCompileActionsConfirm(t *testing.T) {
	unified := UnifiedActions[employee]{
		{
			Key:   "delete",
			Label: "Delete",
			Confirm: &ConfirmSpec[employee]{
				Title:         "Delete employee",
				Description:   "This cannot be undone.",
				DescriptionFn: func(e employee) string { return "Delete " + e.Name + "?" },
				Variant:       VariantDanger,
			},
			Destructive: true,
		},
	}
	out := CompileActions(unified, nil, nil)

	t.Run("Should give row actions eagerly evaluated static confirmation text", func(t *testing.T) {
		require.Len(t, out.RowActions, 1)
		confirm := out.RowActions[0].Confirm
		require.NotNil(t, confirm)
		assert.Equal(t, "Delete employee", confirm.Title)
		assert.Equal(t, "This cannot be undone.", confirm.Description)
		assert.Equal(t, VariantDanger, confirm.Variant)
	})

	t.Run("Should preserve per-row dynamic confirmation for card actions", func(t *testing.T) {
		require.Len(t, out.CardActions, 1)
		confirm := out.CardActions[0].Confirm
		require.NotNil(t, confirm)
		require.NotNil(t, confirm.DescriptionFn)
		assert.Equal(t, "Delete alice?", confirm.DescriptionFn(employee{Name: "alice"}))
	})
}

func TestPrimaryActionSelection(t *testing.T) {
	nav := func(e employee) string { return "/emp/" + e.Name }

	t.Run("Should select the explicitly flagged primary action", func(t *testing.T) {
		out := CompileActions(UnifiedActions[employee]{
			{Key: "view", NavigateTo: nav},
			{Key: "open", NavigateTo: nav, Primary: true},
		}, nil, nil)
		assert.Equal(t, "open", out.PrimaryKey)
	})

	t.Run("Should never select a destructive action as primary", func(t *testing.T) {
		out := CompileActions(UnifiedActions[employee]{
			{Key: "delete", NavigateTo: nav, Primary: true, Destructive: true},
			{Key: "view", NavigateTo: nav},
		}, nil, nil)
		assert.Equal(t, "view", out.PrimaryKey)
	})

	t.Run("Should fall back to the first eligible navigable action", func(t *testing.T) {
		out := CompileActions(UnifiedActions[employee]{
			{Key: "run", OnClick: func(context.Context, employee) error { return nil }},
			{Key: "skip", NavigateTo: nav, NotPrimary: true},
			{Key: "hidden", NavigateTo: nav, Scope: ScopeTable},
			{Key: "view", NavigateTo: nav},
		}, nil, nil)
		assert.Equal(t, "view", out.PrimaryKey)
		require.NotNil(t, out.Primary)
		assert.Equal(t, "/emp/bob", out.Primary.NavigateTo(employee{Name: "bob"}))
	})

	t.Run("Should leave cards non-clickable when nothing matches", func(t *testing.T) {
		out := CompileActions(UnifiedActions[employee]{
			{Key: "delete", NavigateTo: nav, Destructive: true},
			{Key: "run", OnClick: func(context.Context, employee) error { return nil }},
		}, nil, nil)
		assert.Nil(t, out.Primary)
		assert.Empty(t, out.PrimaryKey)
	})
}
