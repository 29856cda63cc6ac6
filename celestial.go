package orbitalmech

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/soniakeys/meeus/julian"
	"github.com/soniakeys/meeus/planetposition"
	"github.com/soniakeys/meeus/pluto"
)

const (
	// AU is one astronomical unit in kilometers.
	AU = 1.49597870700e8
)

// CelestialObject defines a celestial object.
// Note: the planet position pointer may be nil; does not support satellites yet.
type CelestialObject struct {
	Name   string
	Radius float64
	a      float64
	μ      float64
	tilt   float64 // Axial tilt
	incl   float64 // Ecliptic inclination
	SOI    float64 // With respect to the Sun
	J2     float64
	J3     float64
	J4     float64
	J5     float64
	J6     float64
	PP     *planetposition.V87Planet
}

// GM returns μ (which is unexported because it's a lowercase letter)
func (c CelestialObject) GM() float64 {
	return c.μ
}

// J returns the zonal J_n coefficient for the provided n, for 2 <= n <= 6.
func (c CelestialObject) J(n int) float64 {
	switch n {
	case 2:
		return c.J2
	case 3:
		return c.J3
	case 4:
		return c.J4
	case 5:
		return c.J5
	case 6:
		return c.J6
	default:
		return 0.0
	}
}

// String implements the Stringer interface.
func (c CelestialObject) String() string {
	return c.Name + " body"
}

// Equals returns whether the provided celestial object is the same.
func (c *CelestialObject) Equals(b CelestialObject) bool {
	return c.Name == b.Name && c.Radius == b.Radius && c.a == b.a && c.μ == b.μ && c.SOI == b.SOI && c.J2 == b.J2
}

// HelioRV returns the heliocentric position (km) and velocity (km/s) of this
// planet at a given time in equatorial coordinates, from the VSOP87 ephemerides.
// Note that the whole ephemerides file is loaded on first use.
// Panics if the VSOP87 directory is not configured or the body is unknown.
func (c *CelestialObject) HelioRV(dt time.Time) (R, V []float64) {
	if c.Name == "Sun" {
		return []float64{0, 0, 0}, []float64{0, 0, 0}
	}
	var lRad, bRad, r float64
	if c.Name == "Pluto" {
		// Special case in Sonia Keys' Meeus
		l, b, rAU := pluto.Heliocentric(julian.TimeToJD(dt))
		lRad, bRad, r = l.Rad(), b.Rad(), rAU*AU
	} else {
		if c.PP == nil {
			var vsopPosition int
			switch c.Name {
			case "Venus":
				vsopPosition = 2
			case "Earth":
				vsopPosition = 3
			case "Mars":
				vsopPosition = 4
			case "Jupiter":
				vsopPosition = 5
			default:
				panic(fmt.Errorf("unknown object: %s", c.Name))
			}
			planet, err := planetposition.LoadPlanetPath(vsopPosition-1, config().VSOP87Dir)
			if err != nil {
				panic(fmt.Errorf("could not load planet number %d: %s", vsopPosition, err))
			}
			c.PP = planet
		}
		l, b, rAU := c.PP.Position2000(julian.TimeToJD(dt))
		lRad, bRad, r = l.Rad(), b.Rad(), rAU*AU
	}
	v := math.Sqrt(2*Sun.μ/r - Sun.μ/c.a)
	// Get the Cartesian coordinates from L,B,R.
	R, V = make([]float64, 3), make([]float64, 3)
	sB, cB := math.Sincos(bRad)
	sL, cL := math.Sincos(lRad)
	R[0] = r * cB * cL
	R[1] = r * cB * sL
	R[2] = r * sB
	// Let's find the direction of the velocity vector.
	vDir := cross(R, []float64{0, 0, -1})
	for i := 0; i < 3; i++ {
		V[i] = v * vDir[i] / norm(vDir)
	}
	return R, V
}

// SunVectorAU returns the position vector from the Sun to this planet at the
// given time, in astronomical units, as consumed by SolarRad.
func (c *CelestialObject) SunVectorAU(dt time.Time) []float64 {
	R, _ := c.HelioRV(dt)
	return mult(1/AU, R)
}

// CelestialObjectFromString returns the object from its name
func CelestialObjectFromString(name string) (CelestialObject, error) {
	switch strings.ToLower(name) {
	case "sun":
		return Sun, nil
	case "venus":
		return Venus, nil
	case "earth":
		return Earth, nil
	case "mars":
		return Mars, nil
	case "jupiter":
		return Jupiter, nil
	case "saturn":
		return Saturn, nil
	case "uranus":
		return Uranus, nil
	case "pluto":
		return Pluto, nil
	default:
		return CelestialObject{}, fmt.Errorf("undefined planet '%s'", name)
	}
}

/* Definitions */

// Sun is our closest star.
var Sun = CelestialObject{"Sun", 695700, -1, 1.32712440017987e11, 0.0, 0.0, -1, 0, 0, 0, 0, 0, nil}

// Venus is poisonous.
var Venus = CelestialObject{"Venus", 6051.8, 108208601, 3.24858599e5, 117.36, 3.39458, 0.616e6, 0.000027, 0, 0, 0, 0, nil}

// Earth is home. The zonal coefficients are carried through J6 for the zonal
// gravity perturbation model.
var Earth = CelestialObject{"Earth", 6378.1363, 149598023, 3.98600433e5, 23.4, 0.00005, 924645.0, 1082.6269e-6, -2.5324e-6, -1.6204e-6, -0.2273e-6, 0.5407e-6, nil}

// Mars is the vacation place.
var Mars = CelestialObject{"Mars", 3396.19, 227939282.5616, 4.28283100e4, 25.19, 1.85, 576000, 1964e-6, 36e-6, -18e-6, 0, 0, nil}

// Jupiter is big.
var Jupiter = CelestialObject{"Jupiter", 71492.0, 778298361, 1.266865361e8, 3.13, 1.30326966, 48.2e6, 0.01475, 0, -0.00058, 0, 0, nil}

// Saturn floats and that's really cool.
// TODO: SOI
var Saturn = CelestialObject{"Saturn", 60268.0, 1429394133, 3.7931208e7, 0.93, 2.485, 0, 0.01645, 0, -0.001, 0, 0, nil}

// Uranus is no joke.
// TODO: SOI
var Uranus = CelestialObject{"Uranus", 25559.0, 2875038615, 5.7939513e6, 1.02, 0.773, 0, 0.012, 0, 0, 0, 0, nil}

// Pluto is not a planet and had that down ranking coming. It should have stayed in its lane.
// WARNING: Pluto SOI is not defined.
var Pluto = CelestialObject{"Pluto", 1151.0, 5915799000, 9. * 1e2, 118.0, 17.14216667, 1, 0, 0, 0, 0, 0, nil}
