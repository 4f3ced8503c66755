// Package geo holds the pure great-circle math behind the building search:
// a conservative bounding-box pre-filter and the exact haversine distance.
package geo

import "math"

const (
	// EarthRadiusKm is the mean Earth radius used by the haversine formula.
	EarthRadiusKm = 6371.0

	// kmPerDegreeLat is an upper bound on the length of one degree of
	// latitude, which keeps the bounding box a superset of the true circle.
	kmPerDegreeLat = 111.0

	// poleEpsilon guards the longitude-delta division near the poles, where
	// cos(latitude) approaches zero and a degree of longitude loses meaning.
	poleEpsilon = 1e-10
)

type Point struct {
	Latitude  float64
	Longitude float64
}

type Rect struct {
	MinLat float64
	MaxLat float64
	MinLng float64
	MaxLng float64
}

func (r Rect) Contains(p Point) bool {
	return p.Latitude >= r.MinLat && p.Latitude <= r.MaxLat &&
		p.Longitude >= r.MinLng && p.Longitude <= r.MaxLng
}

// BoundingBox computes the axis-aligned rectangle guaranteed to contain
// every point within radiusKm of center. It may include points outside the
// radius (near the corners), never the other way around. At the poles the
// longitude band degenerates, so the full -180..180 range is used there.
func BoundingBox(center Point, radiusKm float64) Rect {
	latDelta := radiusKm / kmPerDegreeLat

	cosLat := math.Abs(math.Cos(center.Latitude * math.Pi / 180))
	minLng, maxLng := -180.0, 180.0
	if cosLat >= poleEpsilon {
		lngDelta := radiusKm / (kmPerDegreeLat * cosLat)
		minLng = center.Longitude - lngDelta
		maxLng = center.Longitude + lngDelta
	}

	return Rect{
		MinLat: center.Latitude - latDelta,
		MaxLat: center.Latitude + latDelta,
		MinLng: minLng,
		MaxLng: maxLng,
	}
}

// Haversine returns the great-circle distance between two points in
// kilometers.
func Haversine(a, b Point) float64 {
	lat1 := a.Latitude * math.Pi / 180
	lng1 := a.Longitude * math.Pi / 180
	lat2 := b.Latitude * math.Pi / 180
	lng2 := b.Longitude * math.Pi / 180

	dLat := lat2 - lat1
	dLng := lng2 - lng1

	h := math.Pow(math.Sin(dLat/2), 2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Pow(math.Sin(dLng/2), 2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return EarthRadiusKm * c
}

func WithinRadius(center Point, radiusKm float64, p Point) bool {
	return Haversine(center, p) <= radiusKm
}
