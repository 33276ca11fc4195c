package weather

import "math"

var compassPoints = [16]string{
	"N", "NNE", "NE", "ENE",
	"E", "ESE", "SE", "SSE",
	"S", "SSW", "SW", "WSW",
	"W", "WNW", "NW", "NNW",
}

// CompassDirection maps wind degrees to a 16-point compass label. Each label
// covers a 22.5 degree bucket centred on its heading, so 348.75-11.25 is N.
func CompassDirection(degrees float64) string {
	if math.IsNaN(degrees) || math.IsInf(degrees, 0) {
		return ""
	}

	d := math.Mod(degrees, 360)
	if d < 0 {
		d += 360
	}

	index := int(d/22.5+.5) % 16 // .5 for rounding
	return compassPoints[index]
}
