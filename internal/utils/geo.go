package utils

import "math"

// DistanceKm approximates the distance between two coordinates in kilometers
// using a flat-earth projection (1 degree ~ 111 km). Good enough for
// same-city proximity ranking; not a routing distance.
func DistanceKm(lat1, lng1, lat2, lng2 float64) float64 {
	latDiff := lat1 - lat2
	lngDiff := lng1 - lng2
	return math.Sqrt(latDiff*latDiff+lngDiff*lngDiff) * 111
}

// Round2 rounds a monetary amount to two decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
