package importer

import "math"

const mlPerOz = 29.5735

// MlToOz converts milliliters to ounces, rounded to one decimal place.
func MlToOz(ml float64) float64 {
	return math.Round(ml/mlPerOz*10) / 10
}

// OzToMl converts ounces to milliliters, rounded to a whole number.
// The two roundings are lossy in opposite directions: round-trips are only
// guaranteed within +-1 ml / +-0.02 oz, never exact equality.
func OzToMl(oz float64) float64 {
	return math.Round(oz * mlPerOz)
}
