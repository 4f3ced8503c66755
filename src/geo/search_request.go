package geo

import "errors"

// SearchMode distinguishes the two geo query variants a caller may submit.
type SearchMode int

const (
	SearchByRadius SearchMode = iota
	SearchByRectangle
)

var ErrIncompleteQuery = errors.New(
	"either latitude, longitude and radius_km, or all four rectangle bounds must be provided")

// SearchRequest is the request body for the geo search endpoints. Exactly one
// variant must be complete: center plus radius, or all four rectangle bounds.
type SearchRequest struct {
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
	RadiusKm  *float64 `json:"radius_km,omitempty"`

	MinLat *float64 `json:"min_lat,omitempty"`
	MaxLat *float64 `json:"max_lat,omitempty"`
	MinLng *float64 `json:"min_lng,omitempty"`
	MaxLng *float64 `json:"max_lng,omitempty"`
}

func (r SearchRequest) Mode() (SearchMode, error) {
	if r.RadiusKm != nil && r.Latitude != nil && r.Longitude != nil {
		if *r.RadiusKm < 0 {
			return 0, errors.New("radius_km must not be negative")
		}
		return SearchByRadius, nil
	}
	if r.MinLat != nil && r.MaxLat != nil && r.MinLng != nil && r.MaxLng != nil {
		return SearchByRectangle, nil
	}
	return 0, ErrIncompleteQuery
}

func (r SearchRequest) Center() Point {
	return Point{Latitude: *r.Latitude, Longitude: *r.Longitude}
}

func (r SearchRequest) Rectangle() Rect {
	return Rect{MinLat: *r.MinLat, MaxLat: *r.MaxLat, MinLng: *r.MinLng, MaxLng: *r.MaxLng}
}
