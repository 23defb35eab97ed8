// Package latlon provides the validated coordinate value type the rest of
// the toolkit is built on.
package latlon

import (
	"errors"
	"fmt"
	"math"

	"github.com/a-bouts/orthodrome/angles"
	"github.com/a-bouts/orthodrome/tol"
)

// ErrLatitudeRange is returned by New when the latitude lies outside
// [-90,90].
var ErrLatitudeRange = errors.New("latlon: latitude out of range [-90,90]")

// LatLon is a point on the sphere, in degrees north and east. Longitude is
// held in [-180,180). Build values with New so the invariants hold.
type LatLon struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

var (
	NorthPole = LatLon{Lat: 90}
	SouthPole = LatLon{Lat: -90}
	Origin    = LatLon{}
)

// New validates the latitude and normalizes the longitude. Any real
// longitude is accepted, wrap-around included.
func New(lat, lon float64) (LatLon, error) {
	if math.Abs(lat) > 90 {
		return LatLon{}, fmt.Errorf("%w: %g", ErrLatitudeRange, lat)
	}
	return LatLon{Lat: lat, Lon: angles.ToLongitude(lon)}, nil
}

// IsPole reports whether the point lies within tolerance of either pole.
func (ll LatLon) IsPole() bool {
	return tol.IsCloseTo(math.Abs(ll.Lat), 90)
}

// Antipode returns the diametrically opposite point.
func (ll LatLon) Antipode() LatLon {
	return LatLon{Lat: -ll.Lat, Lon: angles.ToLongitude(ll.Lon + 180)}
}

// IsCloseTo reports whether both values name the same point. Poles compare
// on latitude alone: their longitude carries no information.
func (ll LatLon) IsCloseTo(other LatLon) bool {
	if !tol.AreClose(ll.Lat, other.Lat) {
		return false
	}
	if ll.IsPole() || other.IsPole() {
		return true
	}
	return tol.IsCloseTo(angles.ToLongitude(ll.Lon-other.Lon), 0)
}

// IsAntipodalTo reports whether other is the point opposite ll.
func (ll LatLon) IsAntipodalTo(other LatLon) bool {
	return other.IsCloseTo(ll.Antipode())
}

// String renders the point with two decimals, e.g. "33.00° S, 71.60° W".
func (ll LatLon) String() string {
	return ll.Format(2)
}

// Format renders the point with the given number of decimals.
func (ll LatLon) Format(decimals int) string {
	return fmt.Sprintf("%.*f° %s, %.*f° %s",
		decimals, math.Abs(ll.Lat), hemisphere(ll.Lat, "N", "S"),
		decimals, math.Abs(ll.Lon), hemisphere(ll.Lon, "E", "W"))
}

// FormatDMS renders the point in degree-minute-second notation,
// e.g. `48°51'24.1" N, 2°21'02.9" E`.
func (ll LatLon) FormatDMS() string {
	latD, latM, latS := angles.DegreeSeconds(ll.Lat)
	lonD, lonM, lonS := angles.DegreeSeconds(ll.Lon)
	return fmt.Sprintf(`%d°%02d'%04.1f" %s, %d°%02d'%04.1f" %s`,
		abs(latD), latM, latS, hemisphere(ll.Lat, "N", "S"),
		abs(lonD), lonM, lonS, hemisphere(ll.Lon, "E", "W"))
}

func hemisphere(v float64, pos, neg string) string {
	if v < 0 {
		return neg
	}
	return pos
}

func abs(d int) int {
	if d < 0 {
		return -d
	}
	return d
}
