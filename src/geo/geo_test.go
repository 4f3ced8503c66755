package geo_test

import (
	"math"
	"testing"

	"directory-api/src/geo"

	"github.com/stretchr/testify/assert"
)

var moscowCenter = geo.Point{Latitude: 55.7558, Longitude: 37.6173}

func TestHaversineZeroDistance(t *testing.T) {
	d := geo.Haversine(moscowCenter, moscowCenter)
	assert.InDelta(t, 0.0, d, 1e-9)
}

func TestHaversineKnownDistance(t *testing.T) {
	// Moscow to Saint Petersburg, roughly 634 km great-circle.
	spb := geo.Point{Latitude: 59.9343, Longitude: 30.3351}
	d := geo.Haversine(moscowCenter, spb)
	assert.InDelta(t, 634.0, d, 5.0)
}

func TestHaversineSymmetry(t *testing.T) {
	a := geo.Point{Latitude: 55.7558, Longitude: 37.6173}
	b := geo.Point{Latitude: 55.7600, Longitude: 37.6000}
	assert.InDelta(t, geo.Haversine(a, b), geo.Haversine(b, a), 1e-12)
}

func TestWithinRadius(t *testing.T) {
	tests := []struct {
		name     string
		point    geo.Point
		radiusKm float64
		want     bool
	}{
		{
			name:     "Center itself is always inside",
			point:    moscowCenter,
			radiusKm: 0.001,
			want:     true,
		},
		{
			name:     "Point about 1.2 km away inside 2 km",
			point:    geo.Point{Latitude: 55.7600, Longitude: 37.6000},
			radiusKm: 2.0,
			want:     true,
		},
		{
			name:     "Point about 1.2 km away outside 1 km",
			point:    geo.Point{Latitude: 55.7600, Longitude: 37.6000},
			radiusKm: 1.0,
			want:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, geo.WithinRadius(moscowCenter, tt.radiusKm, tt.point))
		})
	}
}

func TestBoundingBoxContainsCircle(t *testing.T) {
	// The box must be a superset of the circle: sample points on the circle
	// boundary in all directions and verify every one falls inside the box.
	radiusKm := 5.0
	box := geo.BoundingBox(moscowCenter, radiusKm)

	for deg := 0; deg < 360; deg += 15 {
		bearing := float64(deg) * math.Pi / 180

		latDelta := (radiusKm / 111.0) * math.Cos(bearing)
		lngDelta := (radiusKm / (111.0 * math.Cos(moscowCenter.Latitude*math.Pi/180))) * math.Sin(bearing)
		p := geo.Point{
			Latitude:  moscowCenter.Latitude + latDelta,
			Longitude: moscowCenter.Longitude + lngDelta,
		}

		if geo.WithinRadius(moscowCenter, radiusKm, p) {
			assert.True(t, box.Contains(p), "point at bearing %d inside radius but outside box", deg)
		}
	}
}

func TestBoundingBoxAtPole(t *testing.T) {
	pole := geo.Point{Latitude: 90.0, Longitude: 0.0}
	box := geo.BoundingBox(pole, 10.0)

	assert.Equal(t, -180.0, box.MinLng)
	assert.Equal(t, 180.0, box.MaxLng)
}

func TestRectContains(t *testing.T) {
	rect := geo.Rect{MinLat: 55.0, MaxLat: 56.0, MinLng: 37.0, MaxLng: 38.0}

	assert.True(t, rect.Contains(moscowCenter))
	assert.True(t, rect.Contains(geo.Point{Latitude: 55.0, Longitude: 37.0}), "boundary is inclusive")
	assert.False(t, rect.Contains(geo.Point{Latitude: 54.9999, Longitude: 37.5}))
}

func TestSearchRequestMode(t *testing.T) {
	f := func(v float64) *float64 { return &v }

	t.Run("Radius variant", func(t *testing.T) {
		req := geo.SearchRequest{Latitude: f(55.75), Longitude: f(37.61), RadiusKm: f(2)}
		mode, err := req.Mode()
		assert.NoError(t, err)
		assert.Equal(t, geo.SearchByRadius, mode)
	})

	t.Run("Rectangle variant", func(t *testing.T) {
		req := geo.SearchRequest{MinLat: f(55), MaxLat: f(56), MinLng: f(37), MaxLng: f(38)}
		mode, err := req.Mode()
		assert.NoError(t, err)
		assert.Equal(t, geo.SearchByRectangle, mode)
	})

	t.Run("Negative radius rejected", func(t *testing.T) {
		req := geo.SearchRequest{Latitude: f(55.75), Longitude: f(37.61), RadiusKm: f(-1)}
		_, err := req.Mode()
		assert.Error(t, err)
	})

	t.Run("Incomplete query rejected", func(t *testing.T) {
		req := geo.SearchRequest{Latitude: f(55.75), MinLat: f(55)}
		_, err := req.Mode()
		assert.ErrorIs(t, err, geo.ErrIncompleteQuery)
	})

	t.Run("Empty body rejected", func(t *testing.T) {
		_, err := geo.SearchRequest{}.Mode()
		assert.ErrorIs(t, err, geo.ErrIncompleteQuery)
	})
}
