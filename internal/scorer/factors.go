package scorer

import (
	"math"

	"github.com/vijay-prabhu/roommate-match/internal/profile"
)

// EarthRadiusMiles is the sphere radius used by the haversine distance
const EarthRadiusMiles = 3959

// NeutralTagScore is returned when neither profile lists any tags in a category
const NeutralTagScore = 50

// Location tiers
const (
	sameNeighborhoodScore = 100
	sameCityScore         = 80
)

// distanceBands maps an upper distance bound in miles to a location score.
// Anything farther than the last band scores farScore.
var distanceBands = []struct {
	maxMiles float64
	score    int
}{
	{5, 70},
	{10, 50},
	{20, 30},
}

const farScore = 10

// round rounds half away from zero and converts to int
func round(x float64) int {
	return int(math.Round(x))
}

// BudgetScore compares two rent ranges by overlap over combined span (0-100)
func BudgetScore(a, b profile.Budget) int {
	overlap := a.Overlap(b)
	if overlap <= 0 {
		return 0
	}

	span := a.Span(b)
	if span == 0 {
		return 100
	}

	return round(float64(overlap) / float64(span) * 100)
}

// LocationScore compares two locations by neighborhood, city, then distance (0-100)
func LocationScore(a, b profile.Location) int {
	if a.Neighborhood == b.Neighborhood {
		return sameNeighborhoodScore
	}
	if a.City == b.City {
		return sameCityScore
	}
	return distanceScore(Distance(a.Coordinates, b.Coordinates))
}

func distanceScore(miles float64) int {
	for _, band := range distanceBands {
		if miles <= band.maxMiles {
			return band.score
		}
	}
	return farScore
}

// TagScore is the share of distinct tags both sets have in common (0-100).
// Two empty sets score NeutralTagScore.
func TagScore(a, b profile.Tags) int {
	if len(a) == 0 && len(b) == 0 {
		return NeutralTagScore
	}

	common := len(a.Intersect(b))
	total := a.UnionLen(b)

	return round(float64(common) / float64(total) * 100)
}

// Distance returns the great-circle distance between two points in miles
func Distance(a, b profile.Coordinates) float64 {
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLon := (b.Lon - a.Lon) * math.Pi / 180
	lat1 := a.Lat * math.Pi / 180
	lat2 := b.Lat * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return EarthRadiusMiles * c
}
