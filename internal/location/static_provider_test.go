package location_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trip-planner-service/internal/domain"
	"github.com/trip-planner-service/internal/location"
)

func TestStaticProvider(t *testing.T) {
	ctx := context.Background()

	t.Run("fresh provider has no location", func(t *testing.T) {
		provider := location.NewStaticProvider()

		assert.Nil(t, provider.CurrentLocation(ctx))
		assert.Equal(t, domain.LocationAuthNotDetermined, provider.AuthorizationStatus())
	})

	t.Run("provider created at a position is authorized", func(t *testing.T) {
		provider := location.NewStaticProviderAt(41.9028, 12.4964)

		loc := provider.CurrentLocation(ctx)
		require.NotNil(t, loc)
		assert.InDelta(t, 41.9028, loc.Lat, 1e-9)
		assert.InDelta(t, 12.4964, loc.Lon, 1e-9)
		assert.Equal(t, domain.LocationAuthAuthorized, provider.AuthorizationStatus())
	})

	t.Run("set location authorizes access", func(t *testing.T) {
		provider := location.NewStaticProvider()
		provider.SetLocation(48.8566, 2.3522)

		loc := provider.CurrentLocation(ctx)
		require.NotNil(t, loc)
		assert.InDelta(t, 48.8566, loc.Lat, 1e-9)
		assert.Equal(t, domain.LocationAuthAuthorized, provider.AuthorizationStatus())
	})

	t.Run("clear location denies access", func(t *testing.T) {
		provider := location.NewStaticProviderAt(48.8566, 2.3522)
		provider.ClearLocation()

		assert.Nil(t, provider.CurrentLocation(ctx))
		assert.Equal(t, domain.LocationAuthDenied, provider.AuthorizationStatus())
	})

	t.Run("returned location is a copy", func(t *testing.T) {
		provider := location.NewStaticProviderAt(10, 20)

		loc := provider.CurrentLocation(ctx)
		require.NotNil(t, loc)
		loc.Lat = 99

		fresh := provider.CurrentLocation(ctx)
		require.NotNil(t, fresh)
		assert.InDelta(t, 10.0, fresh.Lat, 1e-9)
	})
}
