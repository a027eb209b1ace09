package geo

import "math"

// earthRadiusKm is the mean radius used for great-circle distance.
const earthRadiusKm = 6371.0

// Coordinates is a WGS84 lat/lng pair.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// DistanceKm returns the haversine distance between two points in kilometers,
// rounded to one decimal place. The result is never negative.
func DistanceKm(from, to Coordinates) float64 {
	lat1 := from.Lat * math.Pi / 180
	lat2 := to.Lat * math.Pi / 180
	dLat := (to.Lat - from.Lat) * math.Pi / 180
	dLng := (to.Lng - from.Lng) * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return math.Round(earthRadiusKm*c*10) / 10
}

// FormatPriceRange converts a Places price level (0..4) to a display string.
// Unknown levels are reported as unavailable rather than guessed.
func FormatPriceRange(priceLevel *int) string {
	if priceLevel == nil {
		return "Price not available"
	}
	switch *priceLevel {
	case 0:
		return "Free"
	case 1:
		return "$"
	case 2:
		return "$$"
	case 3:
		return "$$$"
	case 4:
		return "$$$$"
	default:
		return "Price not available"
	}
}
