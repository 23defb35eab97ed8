// Package angles wraps angles into the conventions used on the sphere and
// bundles the degree-based trig helpers shared by latlon and orthodrome.
package angles

import "math"

// ToAzimuth wraps x into the azimuth convention (0,360], degrees clockwise
// from north. A full turn reads 360, never 0.
func ToAzimuth(x float64) float64 {
	a := math.Mod(x, 360)
	if a < 0 {
		a += 360
	}
	if a == 0 {
		a = 360
	}
	return a
}

// ToLongitude wraps x into [-180,180).
func ToLongitude(x float64) float64 {
	l := ToAzimuth(x)
	if l >= 180 {
		l -= 360
	}
	return l
}

// ToLatitude wraps x into [-90,90]. Excess latitude continues over the pole
// and down the far side, so 110 becomes 70.
func ToLatitude(x float64) float64 {
	l := ToLongitude(x)
	if math.Abs(l) <= 90 {
		return l
	}
	return math.Copysign(180, l) - l
}

// SinCosD returns the sine and cosine of an angle given in degrees.
func SinCosD(deg float64) (sin, cos float64) {
	return math.Sincos(deg * math.Pi / 180)
}

// Atan2D is the quadrant-correct arctangent of y/x, in degrees.
func Atan2D(y, x float64) float64 {
	return math.Atan2(y, x) * 180 / math.Pi
}

// SinCosAtan2 resolves an unnormalized (y,x) pair into the sine and cosine
// of its angle together with the angle itself in degrees, saving the
// redundant trig calls of computing them separately.
func SinCosAtan2(y, x float64) (sin, cos, deg float64) {
	h := math.Hypot(x, y)
	if h == 0 {
		return 0, 1, 0
	}
	return y / h, x / h, Atan2D(y, x)
}

// DegreeMinutes splits an angle into whole degrees, truncated toward zero,
// and the positive decimal minutes of the remainder.
func DegreeMinutes(deg float64) (int, float64) {
	d := math.Trunc(deg)
	return int(d), math.Abs(deg-d) * 60
}

// DegreeSeconds splits an angle into whole degrees, whole minutes and
// decimal seconds. Only the degrees carry the sign.
func DegreeSeconds(deg float64) (int, int, float64) {
	d, m := DegreeMinutes(deg)
	w := math.Trunc(m)
	return d, int(w), (m - w) * 60
}
