package commands_test

import (
	"testing"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/round"
	"dispatch/internal/core/domain/model/suggestion"

	"github.com/stretchr/testify/require"
)

const testMaxStops = 3

var testTime = time.Date(2026, 3, 14, 18, 0, 0, 0, time.UTC)

func fixedClock() time.Time {
	return testTime
}

func makeTestOrder(t *testing.T, status order.Status) *order.Order {
	t.Helper()
	o, err := order.RestoreOrder(
		kernel.NewUUID(), "D-205", "3 Quai de la Loire", nil,
		testTime.Add(time.Hour), status, nil, nil,
	)
	require.NoError(t, err)
	return o
}

func makeTestRound(t *testing.T, driverID kernel.UUID, stopCount int) *round.Round {
	t.Helper()
	r, err := round.NewRound(kernel.NewUUID(), driverID, nil, nil)
	require.NoError(t, err)
	for i := 1; i <= stopCount; i++ {
		eta := testTime.Add(time.Duration(i) * 15 * time.Minute)
		stop, stopErr := round.NewStop(
			kernel.NewUUID(), kernel.NewUUID(), i,
			"3 Quai de la Loire", nil, nil, &eta,
		)
		require.NoError(t, stopErr)
		require.NoError(t, r.AddStop(stop, testMaxStops))
	}
	return r
}

func makeTestSuggestion(t *testing.T, orders []*order.Order) *suggestion.Suggestion {
	t.Helper()
	members := make([]suggestion.Member, 0, len(orders))
	for i, o := range orders {
		m, err := suggestion.NewMember(o.ID(), i+1, testTime.Add(time.Duration(i+1)*15*time.Minute))
		require.NoError(t, err)
		members = append(members, m)
	}

	s, err := suggestion.RestoreSuggestion(
		kernel.NewUUID(), suggestion.Accepted,
		testTime.Add(-20*time.Minute), testTime.Add(10*time.Minute), testTime.Add(time.Hour),
		nil, nil, members,
	)
	require.NoError(t, err)
	return s
}
