package provider

import (
	"math"
	"sort"

	"stilrandevu/models"
)

// UnknownDistanceKm is assigned to providers without coordinates so they sort
// after every provider with a real distance.
const UnknownDistanceKm = 9999

// DistanceKm computes the great-circle distance in kilometres between two
// lat/lon points using the haversine formula, rounded to one decimal place.
func DistanceKm(lat1, lon1, lat2, lon2 float64) float64 {
	const earthRadiusKm = 6371

	dLat := (lat2 - lat1) * math.Pi / 180
	dLon := (lon2 - lon1) * math.Pi / 180
	lat1Rad := lat1 * math.Pi / 180
	lat2Rad := lat2 * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return math.Round(earthRadiusKm*c*10) / 10
}

// ProviderDistance is a provider annotated with its distance from the user.
type ProviderDistance struct {
	models.Provider
	DistanceKm float64 `json:"distanceKm"`
}

// AnnotateAndSort attaches a distance to every provider and orders the result
// ascending by it. Providers without coordinates get UnknownDistanceKm and
// end up last.
func AnnotateAndSort(providers []models.Provider, lat, lon float64) []ProviderDistance {
	annotated := make([]ProviderDistance, 0, len(providers))
	for _, p := range providers {
		dist := float64(UnknownDistanceKm)
		if p.LocationGeo != nil {
			pLat, pLon := p.LocationGeo.LatLon()
			dist = DistanceKm(lat, lon, pLat, pLon)
		}
		annotated = append(annotated, ProviderDistance{Provider: p, DistanceKm: dist})
	}

	sort.SliceStable(annotated, func(i, j int) bool {
		return annotated[i].DistanceKm < annotated[j].DistanceKm
	})
	return annotated
}
