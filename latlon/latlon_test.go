package latlon

import (
	"errors"
	"math"
	"testing"
)

func TestNewNormalizesLongitude(t *testing.T) {
	cases := []struct {
		lon  float64
		want float64
	}{
		{0, 0},
		{70, 70},
		{180, -180},
		{-180, -180},
		{190, -170},
		{-190, 170},
		{539, 179},
		{720, 0},
	}
	for _, c := range cases {
		ll, err := New(10, c.lon)
		if err != nil {
			t.Fatalf("New(10, %f) failed: %v", c.lon, err)
		}
		if ll.Lon != c.want {
			t.Errorf("New(10, %f).Lon = %f; want %f", c.lon, ll.Lon, c.want)
		}
	}
}

func TestNewKeepsLongitudeCongruent(t *testing.T) {
	for _, lon := range []float64{12.34, -500, 1234.5, -180, 359.99} {
		ll, err := New(0, lon)
		if err != nil {
			t.Fatalf("New(0, %f) failed: %v", lon, err)
		}
		if ll.Lon < -180 || ll.Lon >= 180 {
			t.Errorf("New(0, %f).Lon = %f; want value in [-180,180)", lon, ll.Lon)
		}
		if d := math.Abs(math.Remainder(ll.Lon-lon, 360)); d > 1e-9 {
			t.Errorf("New(0, %f).Lon = %f; not congruent modulo 360", lon, ll.Lon)
		}
	}
}

func TestNewRejectsLatitude(t *testing.T) {
	for _, lat := range []float64{90.5, -91, 181, -12345} {
		if _, err := New(lat, 0); !errors.Is(err, ErrLatitudeRange) {
			t.Errorf("New(%f, 0) err = %v; want ErrLatitudeRange", lat, err)
		}
	}
}

func TestIsPole(t *testing.T) {
	for _, lon := range []float64{0, 42, -170} {
		if p := (LatLon{Lat: 90, Lon: lon}); !p.IsPole() {
			t.Errorf("{90,%f}.IsPole() = false; want true", lon)
		}
		if p := (LatLon{Lat: -90, Lon: lon}); !p.IsPole() {
			t.Errorf("{-90,%f}.IsPole() = false; want true", lon)
		}
	}
	if Origin.IsPole() {
		t.Error("Origin.IsPole() = true; want false")
	}
	if p := (LatLon{Lat: 89.9}); p.IsPole() {
		t.Error("{89.9,0}.IsPole() = true; want false")
	}
}

func TestAntipode(t *testing.T) {
	ll := LatLon{Lat: 10, Lon: 70}
	a := ll.Antipode()
	if a.Lat != -10 || a.Lon != -110 {
		t.Errorf("{10,70}.Antipode() = %v; want {-10,-110}", a)
	}

	for _, ll := range []LatLon{Origin, {Lat: 10, Lon: 70}, {Lat: -33, Lon: -71.6}, {Lat: 48.85, Lon: 2.35}} {
		if r := ll.Antipode().Antipode(); !r.IsCloseTo(ll) {
			t.Errorf("%v.Antipode().Antipode() = %v; want the original point", ll, r)
		}
	}
}

func TestIsCloseTo(t *testing.T) {
	if !(LatLon{Lat: 10, Lon: 70}).IsCloseTo(LatLon{Lat: 10, Lon: 70.0000000001}) {
		t.Error("{10,70}.IsCloseTo({10,70+1e-10}) = false; want true")
	}
	if (LatLon{Lat: 10, Lon: 70}).IsCloseTo(LatLon{Lat: 10, Lon: 70.1}) {
		t.Error("{10,70}.IsCloseTo({10,70.1}) = true; want false")
	}

	// two points either side of the date line
	if !(LatLon{Lat: 0, Lon: -180}).IsCloseTo(LatLon{Lat: 0, Lon: 179.9999999999}) {
		t.Error("{0,-180}.IsCloseTo({0,~180}) = false; want true")
	}

	// poles compare regardless of longitude
	if !(LatLon{Lat: 90, Lon: 13}).IsCloseTo(LatLon{Lat: 90, Lon: -120}) {
		t.Error("{90,13}.IsCloseTo({90,-120}) = false; want true")
	}
	if (LatLon{Lat: 90}).IsCloseTo(LatLon{Lat: -90}) {
		t.Error("{90,0}.IsCloseTo({-90,0}) = true; want false")
	}
}

func TestIsAntipodalTo(t *testing.T) {
	if !NorthPole.IsAntipodalTo(SouthPole) {
		t.Error("NorthPole.IsAntipodalTo(SouthPole) = false; want true")
	}
	if !Origin.IsAntipodalTo(LatLon{Lat: 0, Lon: 180}) {
		t.Error("Origin.IsAntipodalTo({0,180}) = false; want true")
	}
	if Origin.IsAntipodalTo(LatLon{Lat: 0, Lon: 90}) {
		t.Error("Origin.IsAntipodalTo({0,90}) = true; want false")
	}
}
