package order_test

import (
	"testing"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scheduledAt() time.Time {
	return time.Date(2026, 3, 14, 19, 30, 0, 0, time.UTC)
}

func TestNewOrder(t *testing.T) {
	t.Run("valid_order", func(t *testing.T) {
		id := kernel.NewUUID()
		point, _ := kernel.NewGeoPoint(48.8566, 2.3522)

		o, err := order.NewOrder(id, "A-117", "12 Rue de la Paix", &point, scheduledAt())

		require.NoError(t, err)
		assert.True(t, o.ID().IsEqual(id))
		assert.Equal(t, "A-117", o.Number())
		assert.Equal(t, order.Pending, o.Status())
		assert.True(t, o.IsUnassigned())
		assert.Nil(t, o.SuggestedRoundID())
	})

	t.Run("coordinates_may_be_nil", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), "A-118", "3 Main St", nil, scheduledAt())

		require.NoError(t, err)
		assert.Nil(t, o.Coordinates())
	})

	t.Run("missing_number", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), "", "3 Main St", nil, scheduledAt())

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("missing_address", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), "A-119", "", nil, scheduledAt())

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("zero_scheduled_time", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), "A-120", "3 Main St", nil, time.Time{})

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("restores_linkage", func(t *testing.T) {
		roundID := kernel.NewUUID()

		o, err := order.RestoreOrder(
			kernel.NewUUID(), "A-121", "3 Main St", nil, scheduledAt(),
			order.Ready, &roundID, nil,
		)

		require.NoError(t, err)
		assert.False(t, o.IsUnassigned())
		assert.True(t, o.DeliveryRoundID().IsEqual(roundID))
		assert.True(t, o.Status().IsReady())
	})

	t.Run("claimed_order_cannot_keep_suggestion_reference", func(t *testing.T) {
		roundID := kernel.NewUUID()
		suggestionID := kernel.NewUUID()

		_, err := order.RestoreOrder(
			kernel.NewUUID(), "A-122", "3 Main St", nil, scheduledAt(),
			order.Ready, &roundID, &suggestionID,
		)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("invalid_status", func(t *testing.T) {
		_, err := order.RestoreOrder(
			kernel.NewUUID(), "A-123", "3 Main St", nil, scheduledAt(),
			order.Unknown, nil, nil,
		)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestOrder_AssignToRound(t *testing.T) {
	t.Run("assigns_and_clears_suggestion", func(t *testing.T) {
		suggestionID := kernel.NewUUID()
		o, err := order.RestoreOrder(
			kernel.NewUUID(), "A-124", "3 Main St", nil, scheduledAt(),
			order.Ready, nil, &suggestionID,
		)
		require.NoError(t, err)

		roundID := kernel.NewUUID()
		require.NoError(t, o.AssignToRound(roundID))

		assert.True(t, o.DeliveryRoundID().IsEqual(roundID))
		assert.Nil(t, o.SuggestedRoundID())
	})

	t.Run("rejects_double_assignment", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), "A-125", "3 Main St", nil, scheduledAt())
		require.NoError(t, err)
		require.NoError(t, o.AssignToRound(kernel.NewUUID()))

		err = o.AssignToRound(kernel.NewUUID())

		require.Error(t, err)
		require.ErrorIs(t, err, order.ErrOrderAlreadyAssigned)
	})
}

func TestOrder_Release(t *testing.T) {
	t.Run("release_without_suggestion", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), "A-126", "3 Main St", nil, scheduledAt())
		require.NoError(t, err)
		require.NoError(t, o.AssignToRound(kernel.NewUUID()))

		require.NoError(t, o.Release(nil))

		assert.True(t, o.IsUnassigned())
		assert.Nil(t, o.SuggestedRoundID())
	})

	t.Run("release_restores_suggestion_membership", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), "A-127", "3 Main St", nil, scheduledAt())
		require.NoError(t, err)
		require.NoError(t, o.AssignToRound(kernel.NewUUID()))

		suggestionID := kernel.NewUUID()
		require.NoError(t, o.Release(&suggestionID))

		assert.True(t, o.IsUnassigned())
		assert.True(t, o.SuggestedRoundID().IsEqual(suggestionID))
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("zero_value_is_invalid", func(t *testing.T) {
		var o order.Order

		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})
}

func TestStatus(t *testing.T) {
	t.Run("strings", func(t *testing.T) {
		assert.Equal(t, "Ready", order.Ready.String())
		assert.Equal(t, "Cancelled", order.Cancelled.String())
		assert.Equal(t, "Unknown", order.Status(42).String())
	})

	t.Run("validate", func(t *testing.T) {
		require.NoError(t, order.Preparing.Validate())
		require.Error(t, order.Unknown.Validate())
		require.Error(t, order.Status(42).Validate())
	})

	t.Run("terminal_states", func(t *testing.T) {
		assert.True(t, order.Completed.IsTerminal())
		assert.True(t, order.Cancelled.IsTerminal())
		assert.False(t, order.Ready.IsTerminal())
	})
}
