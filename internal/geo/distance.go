package geo

import (
	"math"

	"github.com/mmrzaf/bizgen/internal/domain"
	"github.com/mmrzaf/bizgen/internal/random"
)

const (
	earthRadiusKM = 6371.0

	fallbackMinKM = 100.0
	fallbackMaxKM = 2000.0
)

// GreatCircleKM returns the haversine distance between two coordinates.
func GreatCircleKM(lat1, lon1, lat2, lon2 float64) float64 {
	phi1 := lat1 * math.Pi / 180
	phi2 := lat2 * math.Pi / 180
	dPhi := (lat2 - lat1) * math.Pi / 180
	dLambda := (lon2 - lon1) * math.Pi / 180

	a := math.Sin(dPhi/2)*math.Sin(dPhi/2) + math.Cos(phi1)*math.Cos(phi2)*math.Sin(dLambda/2)*math.Sin(dLambda/2)
	return 2 * earthRadiusKM * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}

// DistanceKM returns the great-circle distance between two named cities.
// When either name is missing from the table a distance is drawn from
// U(100, 2000) instead, and known is false.
func DistanceKM(src *random.Source, origin, destination string) (km float64, known bool) {
	a, okA := Lookup(origin)
	b, okB := Lookup(destination)
	if !okA || !okB {
		return src.Float(fallbackMinKM, fallbackMaxKM), false
	}
	return GreatCircleKM(a.Latitude, a.Longitude, b.Latitude, b.Longitude), true
}

// PickRoute draws two distinct cities uniformly from the table.
func PickRoute(src *random.Source) (origin, destination domain.City) {
	i := src.Rand().Intn(len(cities))
	j := src.Rand().Intn(len(cities) - 1)
	if j >= i {
		j++
	}
	return cities[i], cities[j]
}

// PickCity draws one city uniformly from the table.
func PickCity(src *random.Source) domain.City {
	return random.Pick(src, cities)
}
