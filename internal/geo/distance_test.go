package geo

import (
	"testing"

	"github.com/mmrzaf/bizgen/internal/random"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGreatCircleKnownPairs(t *testing.T) {
	sp, ok := Lookup("São Paulo")
	require.True(t, ok)
	rj, ok := Lookup("Rio de Janeiro")
	require.True(t, ok)

	d := GreatCircleKM(sp.Latitude, sp.Longitude, rj.Latitude, rj.Longitude)
	assert.InDelta(t, 360, d, 10, "São Paulo - Rio de Janeiro")

	back := GreatCircleKM(rj.Latitude, rj.Longitude, sp.Latitude, sp.Longitude)
	assert.InDelta(t, d, back, 1e-9, "distance must be symmetric")

	assert.Zero(t, GreatCircleKM(sp.Latitude, sp.Longitude, sp.Latitude, sp.Longitude))
}

func TestDistanceKMFallsBackForUnknownCity(t *testing.T) {
	src := random.New(1)
	for i := 0; i < 200; i++ {
		d, known := DistanceKM(src, "São Paulo", "Atlântida")
		require.False(t, known)
		require.GreaterOrEqual(t, d, 100.0)
		require.Less(t, d, 2000.0)
	}

	d, known := DistanceKM(src, "Porto Alegre", "Manaus")
	require.True(t, known)
	assert.InDelta(t, 3130, d, 60)
}

func TestPickRouteAlwaysDistinct(t *testing.T) {
	src := random.New(2)
	origins := map[string]bool{}
	destinations := map[string]bool{}
	for i := 0; i < 5000; i++ {
		o, d := PickRoute(src)
		require.NotEqual(t, o.Name, d.Name)
		origins[o.Name] = true
		destinations[d.Name] = true
	}
	assert.Len(t, origins, Len())
	assert.Len(t, destinations, Len())
}

func TestTableHasDistinctCoordinates(t *testing.T) {
	seen := map[[2]float64]string{}
	for _, c := range Cities() {
		key := [2]float64{c.Latitude, c.Longitude}
		if other, dup := seen[key]; dup {
			t.Fatalf("%s and %s share coordinates", c.Name, other)
		}
		seen[key] = c.Name
	}
	require.Equal(t, 25, Len())
}
