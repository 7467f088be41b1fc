package kernel_test

import (
	"testing"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGeoPoint(t *testing.T) {
	t.Run("valid_coordinates", func(t *testing.T) {
		point, err := kernel.NewGeoPoint(48.8566, 2.3522)

		require.NoError(t, err)
		assert.InDelta(t, 48.8566, point.Latitude(), 0.0001)
		assert.InDelta(t, 2.3522, point.Longitude(), 0.0001)
		require.NoError(t, point.Validate())
	})

	t.Run("boundary_coordinates", func(t *testing.T) {
		_, err := kernel.NewGeoPoint(kernel.GeoPointMinLatitude, kernel.GeoPointMaxLongitude)
		require.NoError(t, err)

		_, err = kernel.NewGeoPoint(kernel.GeoPointMaxLatitude, kernel.GeoPointMinLongitude)
		require.NoError(t, err)
	})

	t.Run("latitude_out_of_range", func(t *testing.T) {
		_, err := kernel.NewGeoPoint(95, 2.3522)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("longitude_out_of_range", func(t *testing.T) {
		_, err := kernel.NewGeoPoint(48.8566, -181)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("both_out_of_range_joins_errors", func(t *testing.T) {
		_, err := kernel.NewGeoPoint(-91, 181)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

func TestGeoPoint_Validate(t *testing.T) {
	t.Run("zero_value_is_invalid", func(t *testing.T) {
		var point kernel.GeoPoint

		err := point.Validate()

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestGeoPoint_IsEqual(t *testing.T) {
	a, err := kernel.NewGeoPoint(48.8566, 2.3522)
	require.NoError(t, err)
	b, err := kernel.NewGeoPoint(48.8566, 2.3522)
	require.NoError(t, err)
	c, err := kernel.NewGeoPoint(48.8566, 2.3523)
	require.NoError(t, err)

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
}
