// Package orthodrome models directed great-circle paths through their
// ascending node. Once the node of a path is known, any point on it is
// parameterized by a single central angle, so displacement and meridian
// queries reduce to one atan2 each instead of a full law-of-cosines solve.
package orthodrome

import (
	"errors"
	"fmt"
	"math"

	"github.com/a-bouts/orthodrome/angles"
	"github.com/a-bouts/orthodrome/latlon"
	"github.com/a-bouts/orthodrome/tol"
)

// ErrUnsupported is returned for paths the ascending-node decomposition
// cannot represent: polar start points, meridional headings, and antipodal
// or meridionally aligned endpoints.
var ErrUnsupported = errors.New("orthodrome: path not supported")

// Path is the great circle through Start heading Azimuth, degrees clockwise
// from north in (0,360]. The node parameters are fixed at construction; a
// Path is fully determined by (Start, Azimuth) and never mutated.
type Path struct {
	Start   latlon.LatLon
	Azimuth float64

	nodeAzimuth   float64
	nodeLongitude float64
	nodeAngle     float64 // central angle from the ascending node to Start

	sinNodeAzi float64
	cosNodeAzi float64
	tanNodeAzi float64
}

// New builds the path leaving start at the given azimuth. Polar start points
// and meridional azimuths (0, 180 or 360) have no ascending node and are
// rejected.
func New(start latlon.LatLon, azimuth float64) (Path, error) {
	if start.IsPole() {
		return Path{}, fmt.Errorf("%w: start %v is a pole", ErrUnsupported, start)
	}
	azimuth = angles.ToAzimuth(azimuth)
	if tol.IsCloseTo(azimuth, 0) || tol.IsCloseTo(azimuth, 180) || tol.IsCloseTo(azimuth, 360) {
		return Path{}, fmt.Errorf("%w: azimuth %g is meridional", ErrUnsupported, azimuth)
	}

	p := Path{Start: start, Azimuth: azimuth}

	sinAzi, cosAzi := angles.SinCosD(azimuth)
	sinLat, cosLat := angles.SinCosD(start.Lat)

	// Clairaut: the sine of the azimuth at the equator crossing is conserved
	// along the whole circle.
	p.sinNodeAzi = sinAzi * cosLat
	p.cosNodeAzi = math.Sqrt(1 - p.sinNodeAzi*p.sinNodeAzi)
	p.tanNodeAzi = p.sinNodeAzi / p.cosNodeAzi
	p.nodeAzimuth = angles.ToAzimuth(angles.Atan2D(p.sinNodeAzi, p.cosNodeAzi))

	sinNode, cosNode, nodeAngle := angles.SinCosAtan2(sinLat/cosLat, cosAzi)
	p.nodeAngle = nodeAngle
	p.nodeLongitude = start.Lon - angles.Atan2D(p.sinNodeAzi*sinNode, cosNode)

	return p, nil
}

// Between solves the great circle connecting from and to. It returns the
// path leaving from together with the central angle to reach to.
func Between(from, to latlon.LatLon) (Path, float64, error) {
	if from.IsPole() || to.IsPole() {
		return Path{}, 0, fmt.Errorf("%w: polar endpoint", ErrUnsupported)
	}
	if from.IsAntipodalTo(to) {
		return Path{}, 0, fmt.Errorf("%w: %v and %v are antipodal", ErrUnsupported, from, to)
	}
	Δλ := to.Lon - from.Lon
	if m := math.Abs(math.Mod(Δλ, 180)); tol.IsCloseTo(m, 0) || tol.IsCloseTo(m, 180) {
		return Path{}, 0, fmt.Errorf("%w: %v and %v are meridionally aligned", ErrUnsupported, from, to)
	}

	sinφ1, cosφ1 := angles.SinCosD(from.Lat)
	sinφ2, cosφ2 := angles.SinCosD(to.Lat)
	sinΔλ, cosΔλ := angles.SinCosD(Δλ)

	// initial bearing, see www.movable-type.co.uk/scripts/latlong.html
	y := cosφ2 * sinΔλ
	x := cosφ1*sinφ2 - sinφ1*cosφ2*cosΔλ
	azimuth := angles.Atan2D(y, x)

	angle := angles.Atan2D(math.Sqrt(y*y+x*x), sinφ1*sinφ2+cosφ1*cosφ2*cosΔλ)

	p, err := New(from, azimuth)
	if err != nil {
		return Path{}, 0, err
	}
	return p, angle, nil
}

// Displace returns the point a central angle away from Start along the path,
// with the local azimuth there in (-180,180].
func (p Path) Displace(angle float64) (latlon.LatLon, float64) {
	sinδ, cosδ := angles.SinCosD(angle + p.nodeAngle)
	return p.at(sinδ, cosδ, angles.Atan2D(p.sinNodeAzi*sinδ, cosδ)+p.nodeLongitude)
}

// AtLongitude returns the point where the path crosses the given meridian,
// with the local azimuth there. Every non-meridional great circle crosses
// each meridian exactly once.
func (p Path) AtLongitude(lon float64) (latlon.LatLon, float64) {
	sinΔλ, cosΔλ := angles.SinCosD(lon - p.nodeLongitude)
	sinδ, cosδ, _ := angles.SinCosAtan2(sinΔλ/p.sinNodeAzi, cosΔλ)
	return p.at(sinδ, cosδ, lon)
}

func (p Path) at(sinδ, cosδ, lon float64) (latlon.LatLon, float64) {
	sinLat := p.cosNodeAzi * sinδ
	lat := angles.Atan2D(sinLat, math.Sqrt(1-sinLat*sinLat))
	azi := angles.Atan2D(p.tanNodeAzi, cosδ)
	return latlon.LatLon{Lat: lat, Lon: angles.ToLongitude(lon)}, azi
}

// NodeAzimuth is the heading at the ascending node, in (0,360].
func (p Path) NodeAzimuth() float64 { return p.nodeAzimuth }

// NodeLongitude is the longitude of the ascending node. It is kept
// unwrapped so displaced longitudes stay continuous before normalization.
func (p Path) NodeLongitude() float64 { return p.nodeLongitude }

// NodeAngle is the central angle from the ascending node to Start.
func (p Path) NodeAngle() float64 { return p.nodeAngle }

// String renders the path with two decimals, e.g. "33.00° S, 71.60° W; 265.59°".
func (p Path) String() string {
	return p.Format(2)
}

// Format renders the path with the given number of decimals.
func (p Path) Format(decimals int) string {
	return fmt.Sprintf("%s; %.*f°", p.Start.Format(decimals), decimals, p.Azimuth)
}
