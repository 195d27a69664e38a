//go:build unit

package ticket_test

import (
	"testing"
	"time"

	"havenmart/internal/domain/ticket"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecideEdit(t *testing.T) {
	base := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	t.Run("rejects an edit inside the window", func(t *testing.T) {
		decision := ticket.DecideEdit(base.Add(23*time.Hour+59*time.Minute), base)

		require.False(t, decision.Allowed)
		assert.Equal(t, base.Add(24*time.Hour), decision.NextAllowedAt)
	})

	t.Run("allows an edit exactly at the boundary", func(t *testing.T) {
		decision := ticket.DecideEdit(base.Add(24*time.Hour), base)

		assert.True(t, decision.Allowed)
	})

	t.Run("allows an edit after the window", func(t *testing.T) {
		decision := ticket.DecideEdit(base.Add(25*time.Hour), base)

		assert.True(t, decision.Allowed)
	})

	t.Run("rejects immediately after the baseline", func(t *testing.T) {
		decision := ticket.DecideEdit(base.Add(time.Second), base)

		require.False(t, decision.Allowed)
		assert.Equal(t, base.Add(ticket.EditCooldown), decision.NextAllowedAt)
	})

	t.Run("next allowed instant tracks the last accepted edit, not creation", func(t *testing.T) {
		lastEdit := base.Add(48 * time.Hour)
		decision := ticket.DecideEdit(lastEdit.Add(time.Hour), lastEdit)

		require.False(t, decision.Allowed)
		assert.Equal(t, lastEdit.Add(24*time.Hour), decision.NextAllowedAt)
	})
}
