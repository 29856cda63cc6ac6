package orbitalmech

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/gonum/floats"
)

const (
	eccentricityε = 5e-5                         // 0.00005
	angleε        = (5e-3 / 360) * (2 * math.Pi) // 0.005 degrees
	distanceε     = 2e1                          // 20 km
	// parabolicε decides whether 1/a is zero, i.e. whether the orbit is parabolic.
	parabolicε = 1e-12
)

// ClassicalElements defines a Kepler orbit via its classical orbital elements.
// Angles are stored in radians. For a parabolic orbit the semi-major axis is
// undefined and a holds the negative radius at periapsis instead; together with
// e = 1 this uniquely identifies the parabolic case.
type ClassicalElements struct {
	a, e, i, Ω, ω float64
	anom          Anomaly
}

// NewElements returns an element set with a true anomaly. All angles in radians.
// The supported regimes are circular (e = 0), elliptic (0 < e < 1, a > 0),
// parabolic (e = 1, a = -rp) and hyperbolic (e > 1, a < 0).
func NewElements(a, e, i, Ω, ω, ν float64) ClassicalElements {
	return ClassicalElements{a, e, i, Ω, ω, Anomaly{TrueAnomaly, ν}}
}

// NewParabolicElements returns the element set of a parabolic orbit from its
// radius at periapsis. The stored semi-major axis is -rp.
func NewParabolicElements(rp, i, Ω, ω, ν float64) ClassicalElements {
	return ClassicalElements{-rp, 1, i, Ω, ω, Anomaly{TrueAnomaly, ν}}
}

// NewRectilinearElements returns the element set of a rectilinear elliptic
// orbit (e = 1, a > 0). The position along the line is fixed by the eccentric
// anomaly, not the true anomaly, which is undefined here.
func NewRectilinearElements(a, i, Ω, ω, Ecc float64) ClassicalElements {
	return ClassicalElements{a, 1, i, Ω, ω, Anomaly{EccentricAnomalyRectilinear, Ecc}}
}

// Elements returns all the orbital elements.
func (el ClassicalElements) Elements() (a, e, i, Ω, ω float64, anom Anomaly) {
	return el.a, el.e, el.i, el.Ω, el.ω, el.anom
}

// SemiParameter returns the semi-latus rectum.
func (el ClassicalElements) SemiParameter() float64 {
	if el.e == 1 && el.a < 0 {
		return -2 * el.a // a stores -rp for a parabola
	}
	return el.a * (1 - el.e*el.e)
}

// Apoapsis returns the radius at apoapsis.
func (el ClassicalElements) Apoapsis() float64 {
	return el.a * (1 + el.e)
}

// Periapsis returns the radius at periapsis.
func (el ClassicalElements) Periapsis() float64 {
	return el.a * (1 - el.e)
}

// Energyξ returns the specific mechanical energy ξ for the given gravitational parameter.
func (el ClassicalElements) Energyξ(μ float64) float64 {
	return -μ / (2 * el.a)
}

// Period returns the orbital period for the given gravitational parameter.
// Only meaningful for closed orbits.
func (el ClassicalElements) Period(μ float64) time.Duration {
	// The time package does not trivially handle fractions of a second, so let's
	// compute this in a convoluted way...
	seconds := 2 * math.Pi * math.Sqrt(math.Pow(el.a, 3)/μ)
	duration, _ := time.ParseDuration(fmt.Sprintf("%.6fs", seconds))
	return duration
}

// String implements the Stringer interface.
func (el ClassicalElements) String() string {
	return fmt.Sprintf("a=%.1f e=%.4f i=%.3f Ω=%.3f ω=%.3f %s=%.3f",
		el.a, el.e, Rad2deg(el.i), Rad2deg(el.Ω), Rad2deg(el.ω), el.anom.Kind, Rad2deg(el.anom.Angle))
}

// Equals returns whether both element sets describe the same orbit, with free
// anomaly. Use StrictlyEquals to also check the anomaly. The circular and
// rectilinear node/periapsis directions are conventions, so ω is only compared
// for non-circular orbits.
func (el ClassicalElements) Equals(el1 ClassicalElements) (bool, error) {
	if !floats.EqualWithinAbs(el.a, el1.a, distanceε) {
		return false, errors.New("semi major axis invalid")
	}
	if !floats.EqualWithinAbs(el.e, el1.e, eccentricityε) {
		return false, errors.New("eccentricity invalid")
	}
	if !floats.EqualWithinAbs(el.i, el1.i, angleε) {
		return false, errors.New("inclination invalid")
	}
	if ok, _ := anglesEqualRad(el.Ω, el1.Ω); !ok {
		return false, errors.New("RAAN invalid")
	}
	if el.e > eccentricityε {
		if ok, _ := anglesEqualRad(el.ω, el1.ω); !ok {
			return false, errors.New("argument of periapsis invalid")
		}
	}
	return true, nil
}

// StrictlyEquals returns whether both element sets are identical, anomaly included.
func (el ClassicalElements) StrictlyEquals(el1 ClassicalElements) (bool, error) {
	if el.anom.Kind != el1.anom.Kind {
		return false, errors.New("anomaly kind differs")
	}
	if el.e > eccentricityε {
		if ok, _ := anglesEqualRad(el.anom.Angle, el1.anom.Angle); !ok {
			return false, errors.New("anomaly invalid")
		}
	}
	return el.Equals(el1)
}

// anglesEqualRad returns whether two angles in radians are equal modulo 2π.
func anglesEqualRad(a, b float64) (bool, error) {
	diff := math.Mod(math.Abs(a-b), 2*math.Pi)
	if diff > math.Pi {
		diff = 2*math.Pi - diff
	}
	if diff < angleε {
		return true, nil
	}
	return false, fmt.Errorf("difference of %3.10f degrees", Rad2deg(diff))
}

// RV returns the inertial position and velocity vectors (km, km/s) of this
// element set about a body of gravitational parameter μ (km^3/s^2).
//
// The regime is dispatched on exact (e, a) tests:
//
//	circular:       e = 0   a > 0
//	elliptic-2D:    0<e<1   a > 0
//	rectilinear:    e = 1   a > 0   (anomaly is the eccentric anomaly)
//	parabolic:      e = 1   a = -rp
//	hyperbolic:     e > 1   a < 0
func (el ClassicalElements) RV(μ float64) (R, V []float64) {
	if el.e == 1 && el.a > 0 {
		// Rectilinear elliptic orbit: the orientation angles collapse to a single
		// line and the velocity direction flips with the motion branch.
		Ecc := el.anom.Angle
		r := el.a * (1 - el.e*math.Cos(Ecc))
		v := math.Sqrt(2*μ/r - μ/el.a)
		sΩ, cΩ := math.Sincos(el.Ω)
		sω, cω := math.Sincos(el.ω)
		si, ci := math.Sincos(el.i)
		ir := []float64{
			cΩ*cω - sΩ*sω*ci,
			sΩ*cω + cΩ*sω*ci,
			sω * si,
		}
		R = mult(r, ir)
		if math.Sin(Ecc) > 0 {
			V = mult(-v, ir)
		} else {
			V = mult(v, ir)
		}
		return
	}

	var p float64
	if el.e == 1 && el.a < 0 {
		rp := -el.a
		p = 2 * rp
	} else {
		p = el.a * (1 - el.e*el.e)
	}

	f := el.anom.Angle
	r := p / (1 + el.e*math.Cos(f))
	θ := el.ω + f
	h := math.Sqrt(μ * p)
	sΩ, cΩ := math.Sincos(el.Ω)
	sθ, cθ := math.Sincos(θ)
	si, ci := math.Sincos(el.i)
	sω, cω := math.Sincos(el.ω)

	R = []float64{
		r * (cΩ*cθ - sΩ*sθ*ci),
		r * (sΩ*cθ + cΩ*sθ*ci),
		r * sθ * si,
	}
	V = []float64{
		-μ / h * (cΩ*(sθ+el.e*sω) + sΩ*(cθ+el.e*cω)*ci),
		-μ / h * (sΩ*(sθ+el.e*sω) - cΩ*(cθ+el.e*cω)*ci),
		-μ / h * (-(cθ + el.e*cω) * si),
	}
	return
}

// ElementsFromRV returns the classical orbital elements matching the provided
// inertial position (km) and velocity (km/s) vectors about a body of
// gravitational parameter μ (km^3/s^2).
//
// For a parabolic orbit -rp is returned in place of the undefined semi-major
// axis. For a circular orbit the periapsis direction is undefined and the
// eccentricity direction is set to the radial unit vector; for a rectilinear
// orbit the orbit plane is undefined and a perpendicular pair is picked from
// the larger of two candidate cross products. These conventions carry no
// physical meaning but make the transformation reproducible.
func ElementsFromRV(μ float64, rVec, vVec []float64) ClassicalElements {
	var el ClassicalElements

	r := norm(rVec)
	ir := mult(1/r, rVec)

	hVec := cross(rVec, vVec)
	h := norm(hVec)

	// Eccentricity vector, scaled by μ.
	cVec := add(cross(vVec, hVec), mult(-μ/r, rVec))
	el.e = norm(cVec) / μ

	// Semi-major axis from the energy equation.
	ai := 2/r - dot(vVec, vVec)/μ
	if math.Abs(ai) > parabolicε {
		el.a = 1 / ai
	} else {
		p := h * h / μ
		el.a = -p / 2 // a is not defined for a parabola, return -rp instead
		el.e = 1
	}

	var ih, ie, ip []float64
	if h < parabolicε {
		// Rectilinear motion: ip and ih are arbitrary. Build them from whichever
		// reference axis is further from the radial direction to avoid a
		// near-zero cross product.
		ie = dup(ir)
		ih = cross(ie, []float64{0, 0, 1})
		ip = cross(ie, []float64{0, 1, 0})
		if norm(ih) > norm(ip) {
			ih = mult(1/norm(ih), ih)
		} else {
			ih = mult(1/norm(ip), ip)
		}
		ip = cross(ih, ie)
	} else {
		ih = mult(1/h, hVec)
		if math.Abs(el.e) > parabolicε {
			ie = mult(1/(μ*el.e), cVec)
		} else {
			// Circular orbit: ie and ip are arbitrary as long as they are
			// perpendicular to ih.
			ie = dup(ir)
		}
		ip = cross(ih, ie)
	}

	// 3-1-3 orbit plane orientation angles.
	el.Ω = math.Atan2(ih[0], -ih[1])
	el.i = math.Acos(ih[2])
	el.ω = math.Atan2(ie[2], ip[2])

	if h < parabolicε {
		// Rectilinear motion: the true anomaly is undefined, return the eccentric
		// or hyperbolic anomaly folded into [0, 2π) by the motion branch.
		if ai > 0 {
			Ecc := math.Acos(1 - r*ai)
			if dot(rVec, vVec) > 0 {
				Ecc = 2*math.Pi - Ecc
			}
			el.anom = Anomaly{EccentricAnomalyRectilinear, Ecc}
		} else {
			H := math.Acosh(r*ai + 1)
			if dot(rVec, vVec) < 0 {
				H = 2*math.Pi - H
			}
			el.anom = Anomaly{HyperbolicAnomalyRectilinear, H}
		}
	} else {
		el.anom = Anomaly{TrueAnomaly, math.Atan2(dot(cross(ie, ir), ih), dot(ie, ir))}
	}

	return el
}
