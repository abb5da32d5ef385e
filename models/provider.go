package models

import (
	"math"
	"time"
)

// GeoPoint represents a GeoJSON Point.
type GeoPoint struct {
	Type        string    `bson:"type" json:"type"`               // Always "Point"
	Coordinates []float64 `bson:"coordinates" json:"coordinates"` // [longitude, latitude]
}

// NewGeoPoint builds a GeoJSON point from latitude/longitude degrees.
func NewGeoPoint(lat, lon float64) *GeoPoint {
	return &GeoPoint{Type: "Point", Coordinates: []float64{lon, lat}}
}

// LatLon returns the point as (latitude, longitude).
func (g *GeoPoint) LatLon() (float64, float64) {
	if g == nil || len(g.Coordinates) < 2 {
		return 0, 0
	}
	return g.Coordinates[1], g.Coordinates[0]
}

// Service is a single bookable service owned by exactly one provider.
type Service struct {
	ID          string  `bson:"id" json:"id"`
	Name        string  `bson:"name" json:"name"`
	Price       float64 `bson:"price" json:"price"`
	DurationMin int     `bson:"durationMin" json:"durationMin"`
}

// Provider represents a barber shop users book appointments with.
// Rating is the weighted mean of every vote ever applied through the rating
// aggregator; TotalVotes only grows. Services are embedded so deleting a
// provider removes its catalogue with it.
type Provider struct {
	ID          string    `bson:"id" json:"id"`
	Name        string    `bson:"name" json:"name"`
	Location    string    `bson:"location" json:"location"`
	Rating      float64   `bson:"rating" json:"rating"`
	TotalVotes  int       `bson:"totalVotes" json:"totalVotes"`
	Image       string    `bson:"image,omitempty" json:"image,omitempty"`
	LocationGeo *GeoPoint `bson:"locationGeo,omitempty" json:"locationGeo,omitempty"`
	Services    []Service `bson:"services,omitempty" json:"services,omitempty"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt,omitzero"`
	UpdatedAt   time.Time `bson:"updatedAt" json:"updatedAt,omitzero"`
}

// ServiceByID looks a service up in the provider's catalogue.
func (p *Provider) ServiceByID(serviceID string) (Service, bool) {
	for _, svc := range p.Services {
		if svc.ID == serviceID {
			return svc, true
		}
	}
	return Service{}, false
}

// RatingResult is the provider aggregate after one vote has been applied.
type RatingResult struct {
	Rating     float64 `json:"rating"`
	TotalVotes int     `json:"totalVotes"`
}

// NextAggregate folds one new star value into an existing rating aggregate.
// A provider with no votes takes the star value directly; otherwise the
// weighted mean over all votes is recomputed. The result is rounded to one
// decimal place.
func NextAggregate(rating float64, totalVotes, stars int) (float64, int) {
	votes := totalVotes + 1
	next := float64(stars)
	if totalVotes > 0 {
		next = (rating*float64(totalVotes) + float64(stars)) / float64(votes)
	}
	return math.Round(next*10) / 10, votes
}
