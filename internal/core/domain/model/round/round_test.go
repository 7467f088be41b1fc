package round_test

import (
	"testing"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/round"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const maxStops = 3

var baseTime = time.Date(2026, 3, 14, 18, 0, 0, 0, time.UTC)

func makeStop(t *testing.T, sequence int) *round.Stop {
	t.Helper()
	eta := baseTime.Add(time.Duration(sequence) * 15 * time.Minute)
	stop, err := round.NewStop(
		kernel.NewUUID(), kernel.NewUUID(), sequence,
		"12 Rue des Acacias", nil, nil, &eta,
	)
	require.NoError(t, err)
	return stop
}

func makeRound(t *testing.T, stopCount int) *round.Round {
	t.Helper()
	r, err := round.NewRound(kernel.NewUUID(), kernel.NewUUID(), nil, nil)
	require.NoError(t, err)
	for i := 1; i <= stopCount; i++ {
		require.NoError(t, r.AddStop(makeStop(t, i), maxStops))
	}
	return r
}

func TestNewRound(t *testing.T) {
	t.Run("valid_round", func(t *testing.T) {
		driverID := kernel.NewUUID()

		r, err := round.NewRound(kernel.NewUUID(), driverID, nil, nil)

		require.NoError(t, err)
		assert.Equal(t, round.Ready, r.Status())
		assert.True(t, r.DriverID().IsEqual(driverID))
		assert.Nil(t, r.SuggestionID())
		assert.Equal(t, 0, r.TotalStops())
	})

	t.Run("round_from_suggestion", func(t *testing.T) {
		suggestionID := kernel.NewUUID()
		departure := baseTime.Add(20 * time.Minute)

		r, err := round.NewRound(kernel.NewUUID(), kernel.NewUUID(), &suggestionID, &departure)

		require.NoError(t, err)
		assert.True(t, r.SuggestionID().IsEqual(suggestionID))
		assert.Equal(t, departure, *r.PlannedDeparture())
	})

	t.Run("empty_driver_id_rejected", func(t *testing.T) {
		_, err := round.NewRound(kernel.NewUUID(), kernel.UUID{}, nil, nil)

		require.Error(t, err)
	})

	t.Run("uninitialized_round_fails_validation", func(t *testing.T) {
		var r round.Round

		require.ErrorIs(t, r.Validate(), round.ErrRoundIsNotConstructed)
	})
}

func TestRestoreRound(t *testing.T) {
	t.Run("stops_are_sorted_by_sequence", func(t *testing.T) {
		s1 := makeStop(t, 1)
		s2 := makeStop(t, 2)
		s3 := makeStop(t, 3)

		r, err := round.RestoreRound(
			kernel.NewUUID(), kernel.NewUUID(), nil,
			round.Ready, nil, nil,
			[]*round.Stop{s3, s1, s2},
		)

		require.NoError(t, err)
		for i, stop := range r.Stops() {
			assert.Equal(t, i+1, stop.Sequence())
		}
	})

	t.Run("gapped_sequence_rejected", func(t *testing.T) {
		_, err := round.RestoreRound(
			kernel.NewUUID(), kernel.NewUUID(), nil,
			round.Ready, nil, nil,
			[]*round.Stop{makeStop(t, 1), makeStop(t, 3)},
		)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("duplicate_sequence_rejected", func(t *testing.T) {
		_, err := round.RestoreRound(
			kernel.NewUUID(), kernel.NewUUID(), nil,
			round.Ready, nil, nil,
			[]*round.Stop{makeStop(t, 1), makeStop(t, 1)},
		)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("invalid_status_rejected", func(t *testing.T) {
		_, err := round.RestoreRound(
			kernel.NewUUID(), kernel.NewUUID(), nil,
			round.Unknown, nil, nil,
			[]*round.Stop{makeStop(t, 1)},
		)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestRound_AddStop(t *testing.T) {
	t.Run("appends_in_sequence", func(t *testing.T) {
		r := makeRound(t, 2)

		assert.Equal(t, 2, r.TotalStops())
		assert.True(t, r.IsGrouped())
	})

	t.Run("capacity_exceeded_leaves_round_unchanged", func(t *testing.T) {
		r := makeRound(t, maxStops)

		err := r.AddStop(makeStop(t, 4), maxStops)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrCapacityExceeded)
		assert.Equal(t, maxStops, r.TotalStops())
	})

	t.Run("wrong_sequence_rejected", func(t *testing.T) {
		r := makeRound(t, 1)

		err := r.AddStop(makeStop(t, 3), maxStops)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("duplicate_order_rejected", func(t *testing.T) {
		r := makeRound(t, 0)
		first := makeStop(t, 1)
		require.NoError(t, r.AddStop(first, maxStops))

		dup, err := round.NewStop(kernel.NewUUID(), first.OrderID(), 2, "12 Rue des Acacias", nil, nil, nil)
		require.NoError(t, err)
		err = r.AddStop(dup, maxStops)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrResourceConflict)
	})

	t.Run("started_round_rejects_new_stops", func(t *testing.T) {
		r := makeRound(t, 1)
		require.NoError(t, r.Start(baseTime))

		err := r.AddStop(makeStop(t, 2), maxStops)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrPreconditionFailed)
	})
}

func TestRound_Start(t *testing.T) {
	t.Run("ready_round_starts", func(t *testing.T) {
		r := makeRound(t, 1)

		require.NoError(t, r.Start(baseTime))

		assert.Equal(t, round.InProgress, r.Status())
		assert.Equal(t, baseTime, *r.ActualDeparture())
	})

	t.Run("double_start_rejected", func(t *testing.T) {
		r := makeRound(t, 1)
		require.NoError(t, r.Start(baseTime))

		err := r.Start(baseTime.Add(time.Minute))

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrPreconditionFailed)
	})
}

func TestRound_MarkStopDelivered(t *testing.T) {
	deliveredAt := baseTime.Add(25 * time.Minute)

	t.Run("first_stop_delivers", func(t *testing.T) {
		r := makeRound(t, 2)
		require.NoError(t, r.Start(baseTime))

		require.NoError(t, r.MarkStopDelivered(r.Stops()[0].ID(), deliveredAt))

		assert.True(t, r.Stops()[0].IsDelivered())
		assert.Equal(t, deliveredAt, *r.Stops()[0].ActualArrival())
		assert.Equal(t, round.InProgress, r.Status())
	})

	t.Run("out_of_order_delivery_rejected", func(t *testing.T) {
		r := makeRound(t, 2)
		require.NoError(t, r.Start(baseTime))

		err := r.MarkStopDelivered(r.Stops()[1].ID(), deliveredAt)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrPreconditionFailed)
		assert.False(t, r.Stops()[1].IsDelivered())
	})

	t.Run("last_delivery_completes_round", func(t *testing.T) {
		r := makeRound(t, 2)
		require.NoError(t, r.Start(baseTime))

		require.NoError(t, r.MarkStopDelivered(r.Stops()[0].ID(), deliveredAt))
		require.NoError(t, r.MarkStopDelivered(r.Stops()[1].ID(), deliveredAt.Add(10*time.Minute)))

		assert.Equal(t, round.Completed, r.Status())
		assert.Nil(t, r.NextStop())
	})

	t.Run("delivery_on_ready_round_rejected", func(t *testing.T) {
		r := makeRound(t, 1)

		err := r.MarkStopDelivered(r.Stops()[0].ID(), deliveredAt)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrPreconditionFailed)
	})

	t.Run("unknown_stop_not_found", func(t *testing.T) {
		r := makeRound(t, 1)
		require.NoError(t, r.Start(baseTime))

		err := r.MarkStopDelivered(kernel.NewUUID(), deliveredAt)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("already_delivered_stop_rejected", func(t *testing.T) {
		r := makeRound(t, 2)
		require.NoError(t, r.Start(baseTime))
		require.NoError(t, r.MarkStopDelivered(r.Stops()[0].ID(), deliveredAt))

		err := r.MarkStopDelivered(r.Stops()[0].ID(), deliveredAt)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrPreconditionFailed)
	})
}

func TestRound_Release(t *testing.T) {
	t.Run("single_stop_ready_round_can_release_stop", func(t *testing.T) {
		r := makeRound(t, 1)

		require.NoError(t, r.CanReleaseStop())
	})

	t.Run("grouped_round_cannot_release_single_stop", func(t *testing.T) {
		r := makeRound(t, 2)

		err := r.CanReleaseStop()

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrPreconditionFailed)
	})

	t.Run("started_round_cannot_be_released", func(t *testing.T) {
		r := makeRound(t, 1)
		require.NoError(t, r.Start(baseTime))

		require.Error(t, r.CanReleaseStop())
		require.Error(t, r.CanRelease())
	})

	t.Run("ready_round_can_be_released_whole", func(t *testing.T) {
		r := makeRound(t, 3)

		require.NoError(t, r.CanRelease())
	})
}

func TestStatus(t *testing.T) {
	t.Run("strings", func(t *testing.T) {
		assert.Equal(t, "Ready", round.Ready.String())
		assert.Equal(t, "InProgress", round.InProgress.String())
		assert.Equal(t, "Unknown", round.Status(42).String())
	})

	t.Run("transitions", func(t *testing.T) {
		next, err := round.Ready.Start()
		require.NoError(t, err)
		assert.Equal(t, round.InProgress, next)

		next, err = round.InProgress.Complete()
		require.NoError(t, err)
		assert.Equal(t, round.Completed, next)

		_, err = round.Completed.Start()
		require.Error(t, err)
		_, err = round.Ready.Complete()
		require.Error(t, err)
	})
}

func TestStop(t *testing.T) {
	t.Run("restore_delivered_requires_arrival", func(t *testing.T) {
		_, err := round.RestoreStop(
			kernel.NewUUID(), kernel.NewUUID(), 1,
			"12 Rue des Acacias", nil,
			round.StopDelivered, nil, nil, nil,
		)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("restore_delivered_with_arrival", func(t *testing.T) {
		arrival := baseTime.Add(30 * time.Minute)

		stop, err := round.RestoreStop(
			kernel.NewUUID(), kernel.NewUUID(), 1,
			"12 Rue des Acacias", nil,
			round.StopDelivered, nil, nil, &arrival,
		)

		require.NoError(t, err)
		assert.True(t, stop.IsDelivered())
		assert.Equal(t, arrival, *stop.ActualArrival())
	})

	t.Run("empty_address_rejected", func(t *testing.T) {
		_, err := round.NewStop(kernel.NewUUID(), kernel.NewUUID(), 1, "", nil, nil, nil)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("zero_sequence_rejected", func(t *testing.T) {
		_, err := round.NewStop(kernel.NewUUID(), kernel.NewUUID(), 0, "12 Rue des Acacias", nil, nil, nil)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}
