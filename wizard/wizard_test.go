package wizard

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/listkit/listkit/form"
)

func TestNewWizard(t *testing.T) {
	t.Run("Should reject empty flows", func(t *testing.T) {
		_, err := New(context.Background(), "Setup", nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no steps")
	})

	t.Run("Should surface step configuration errors with the step name", func(t *testing.T) {
		_, err := New(context.Background(), "Setup", []Step{
			{Name: "Identity", Fields: []form.Field{{Key: "name"}}},
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), `step "Identity"`)
	})

	t.Run("Should start at the first step", func(t *testing.T) {
		name := ""
		w, err := New(context.Background(), "Setup", []Step{
			{Name: "Identity", Fields: []form.Field{{Key: "name", Value: &name}}},
			{Name: "Review", Fields: []form.Field{{Key: "notes", Value: &name}}},
		})
		require.NoError(t, err)
		assert.Equal(t, 0, w.Index())
		assert.Equal(t, "Step 1 of 2: Identity", w.Progress())
		assert.False(t, w.IsDone())
		assert.False(t, w.IsCanceled())
		assert.NotNil(t, w.Form(1))
	})
}
