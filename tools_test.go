package orbitalmech

import (
	"math"
	"testing"

	"github.com/gonum/floats"
)

func TestHohmann(t *testing.T) {
	// LEO parking orbit to GEO.
	rI := 6678.0
	rF := 42164.0
	vI := math.Sqrt(Earth.GM() / rI)
	vF := math.Sqrt(Earth.GM() / rF)
	vDeparture, vArrival, tof := Hohmann(rI, vI, rF, vF, Earth)
	if !floats.EqualWithinRel(vDeparture, 10.1516, 1e-4) {
		t.Fatalf("vDeparture=%f", vDeparture)
	}
	if !floats.EqualWithinRel(vArrival, 1.6078, 1e-4) {
		t.Fatalf("vArrival=%f", vArrival)
	}
	if !floats.EqualWithinRel(tof.Seconds(), 18990, 1e-3) {
		t.Fatalf("tof=%s", tof)
	}
	// Both burns are prograde.
	if vDeparture <= vI || vArrival >= vF {
		t.Fatal("unexpected burn directions")
	}
}

func TestRadii2ae(t *testing.T) {
	a, e := Radii2ae(4, 2)
	if a != 3 {
		t.Fatalf("a=%f", a)
	}
	if !floats.EqualWithinRel(e, 1/3., 1e-12) {
		t.Fatalf("e=%f", e)
	}
	assertPanic(t, func() {
		Radii2ae(1, 2)
	})
}
