package orbitalmech

import (
	"math"
	"time"
)

// AtmosphericDensity returns the atmospheric density (kg/m^3) at the provided
// altitude (km) above the Earth, from a curve fit of the U.S. Standard
// Atmosphere 1976 data. The fit is built for altitudes between 100 km and
// 1000 km and extrapolates silently outside that range.
// Note: Earth only.
func AtmosphericDensity(alt float64) float64 {
	// Smooth exponential drop-off after 1000 km.
	if alt > 1000 {
		return math.Pow(10, -7e-05*alt-14.464)
	}
	// Scaled 6th order polynomial fit to the log of density.
	val := (alt - 526.8000) / 292.8563
	logdensity := 0.34047*math.Pow(val, 6) - 0.5889*math.Pow(val, 5) - 0.5269*math.Pow(val, 4) +
		1.0036*math.Pow(val, 3) + 0.60713*math.Pow(val, 2) - 2.3024*val - 12.575
	return math.Pow(10, logdensity)
}

// AtmosphericDrag returns the inertial drag acceleration (km/s^2) acting on a
// spacecraft of drag coefficient Cd, cross-sectional area A (m^2) and mass m
// (kg) at the provided inertial position (km) and velocity (km/s). A position
// inside the Earth returns a NaN-filled vector and a DomainError.
// Note: Earth only, and only meaningful below 1000 km of altitude.
func AtmosphericDrag(Cd, A, m float64, rVec, vVec []float64) ([]float64, error) {
	r := norm(rVec)
	v := norm(vVec)
	alt := r - Earth.Radius
	if alt <= 0 {
		nan := math.NaN()
		return []float64{nan, nan, nan}, domainError("AtmosphericDrag", "altitude", alt, "(0, +inf)")
	}
	density := AtmosphericDensity(alt)
	// Drag magnitude, with the km/s to m/s unit conversion folded in.
	ad := (-0.5 * density * (Cd * A / m) * math.Pow(v*1000, 2)) / 1000
	return mult(ad/v, vVec), nil
}

// JPerturb returns the total zonal gravity perturbation acceleration (km/s^2)
// at the provided inertial position (km), accumulating the closed-form J2
// through Jnum terms. num must lie in [2, 6]; anything else returns a
// NaN-filled vector and a DomainError. The terms are additive: JPerturb(R, 3)
// is JPerturb(R, 2) plus the J3 term.
// Note: Earth only.
func JPerturb(rVec []float64, num int) ([]float64, error) {
	if num < 2 || num > 6 {
		nan := math.NaN()
		return []float64{nan, nan, nan}, domainError("JPerturb", "num", float64(num), "[2, 6]")
	}
	μ := Earth.μ
	req := Earth.Radius
	x := rVec[0]
	y := rVec[1]
	z := rVec[2]
	r := norm(rVec)
	zr := z / r

	ajtot := mult(-3./2.*Earth.J2*(μ/(r*r))*math.Pow(req/r, 2), []float64{
		(1 - 5*math.Pow(zr, 2)) * (x / r),
		(1 - 5*math.Pow(zr, 2)) * (y / r),
		(3 - 5*math.Pow(zr, 2)) * zr})
	if num >= 3 {
		ajtot = add(ajtot, mult(1./2.*Earth.J3*(μ/(r*r))*math.Pow(req/r, 3), []float64{
			5 * (7*math.Pow(zr, 3) - 3*zr) * (x / r),
			5 * (7*math.Pow(zr, 3) - 3*zr) * (y / r),
			-3 * (10*math.Pow(zr, 2) - (35./3.)*math.Pow(zr, 4) - 1)}))
	}
	if num >= 4 {
		ajtot = add(ajtot, mult(5./8.*Earth.J4*(μ/(r*r))*math.Pow(req/r, 4), []float64{
			(3 - 42*math.Pow(zr, 2) + 63*math.Pow(zr, 4)) * (x / r),
			(3 - 42*math.Pow(zr, 2) + 63*math.Pow(zr, 4)) * (y / r),
			(15 - 70*math.Pow(zr, 2) + 63*math.Pow(zr, 4)) * zr}))
	}
	if num >= 5 {
		ajtot = add(ajtot, mult(1./8.*Earth.J5*(μ/(r*r))*math.Pow(req/r, 5), []float64{
			3 * (35*zr - 210*math.Pow(zr, 3) + 231*math.Pow(zr, 5)) * (x / r),
			3 * (35*zr - 210*math.Pow(zr, 3) + 231*math.Pow(zr, 5)) * (y / r),
			-(15 - 315*math.Pow(zr, 2) + 945*math.Pow(zr, 4) - 693*math.Pow(zr, 6))}))
	}
	if num >= 6 {
		ajtot = add(ajtot, mult(-1./16.*Earth.J6*(μ/(r*r))*math.Pow(req/r, 6), []float64{
			(35 - 945*math.Pow(zr, 2) + 3465*math.Pow(zr, 4) - 3003*math.Pow(zr, 6)) * (x / r),
			(35 - 945*math.Pow(zr, 2) + 3465*math.Pow(zr, 4) - 3003*math.Pow(zr, 6)) * (y / r),
			-(3003*math.Pow(zr, 6) - 4851*math.Pow(zr, 4) + 2205*math.Pow(zr, 2) - 245) * zr}))
	}
	return ajtot, nil
}

// SolarRad returns the inertial solar radiation pressure acceleration (km/s^2)
// on a spacecraft of sun-facing cross-sectional area A (m^2) and mass m (kg).
// sunVec is the position vector from the Sun to the orbiting planet in AU
// (Earth sits at 1 AU); the pressure falls off quadratically with sun distance.
// Solar radiation equations obtained from Earth Space and Planets Journal
// Vol. 51, 1999 pp. 979-986.
func SolarRad(A, m float64, sunVec []float64) []float64 {
	flux := 1372.5398 // W/m^2
	c := 2.997e8      // m/s
	Cr := 1.3         // radiation pressure coefficient
	sundist := norm(sunVec)
	return mult((-Cr*A*flux)/(m*c*math.Pow(sundist, 3))/1000., sunVec)
}

// debyeAltitudes and debyeLengths tabulate the Debye length (m) against
// altitude (km). Values above 1000 km are HIGHLY speculative.
var debyeAltitudes = []float64{200, 250, 300, 350, 400, 450, 500, 550,
	600, 650, 700, 750, 800, 850, 900, 950, 1000, 1050, 1100, 1150,
	1200, 1250, 1300, 1350, 1400, 1450, 1500, 1550, 1600, 1650, 1700,
	1750, 1800, 1850, 1900, 1950, 2000}

var debyeLengths = []float64{5.64e-03, 3.92e-03, 3.24e-03, 3.59e-03,
	4.04e-03, 4.28e-03, 4.54e-03, 5.30e-03, 6.55e-03, 7.30e-03, 8.31e-03,
	8.38e-03, 8.45e-03, 9.84e-03, 1.22e-02, 1.37e-02, 1.59e-02, 1.75e-02,
	1.95e-02, 2.09e-02, 2.25e-02, 2.25e-02, 2.25e-02, 2.47e-02, 2.76e-02,
	2.76e-02, 2.76e-02, 2.76e-02, 2.76e-02, 2.76e-02, 2.76e-02, 3.21e-02,
	3.96e-02, 3.96e-02, 3.96e-02, 3.96e-02, 3.96e-02}

// Debye returns the Debye length (m) at the provided altitude (km), valid from
// 200 km up to GEO (35000 km). The tabulated data is interpolated linearly up
// to 2000 km, held flat up to 30000 km, and extrapolated linearly beyond.
func Debye(alt float64) (float64, error) {
	if alt > 2000 && alt <= 30000 {
		// Flat Debye length in this whole band.
		alt = 2000
	} else if alt > 30000 && alt <= 35000 {
		return 0.1*alt - 2999.7, nil
	} else if alt < 200 || alt > 35000 {
		return math.NaN(), domainError("Debye", "alt", alt, "[200, 35000]")
	}
	// Upper bound stops at the last segment so that alt = 2000 lands on its end point.
	var i int
	for i = 0; i < len(debyeAltitudes)-2; i++ {
		if debyeAltitudes[i+1] > alt {
			break
		}
	}
	a := (alt - debyeAltitudes[i]) / (debyeAltitudes[i+1] - debyeAltitudes[i])
	return debyeLengths[i] + a*(debyeLengths[i+1]-debyeLengths[i]), nil
}

// DragSpec configures the atmospheric drag model of a Perturbations set.
type DragSpec struct {
	Cd   float64 // drag coefficient
	Area float64 // cross-sectional area, m^2
	Mass float64 // kg
}

// SRPSpec configures the solar radiation pressure model of a Perturbations set.
// If SunVecAU is nil, the Sun vector is computed from the VSOP87 ephemerides of
// the Earth at the call time.
type SRPSpec struct {
	Area     float64 // sun-facing cross-sectional area, m^2
	Mass     float64 // kg
	SunVecAU []float64
}

// Perturbations defines which perturbing accelerations to account for.
type Perturbations struct {
	Jn        int                            // zonal harmonics degree to use, 0 or 1 disables
	Drag      *DragSpec                      // atmospheric drag, nil disables
	SRP       *SRPSpec                       // solar radiation pressure, nil disables
	Arbitrary func(R, V []float64) []float64 // additional arbitrary perturbation
}

func (p Perturbations) isEmpty() bool {
	return p.Jn <= 1 && p.Drag == nil && p.SRP == nil && p.Arbitrary == nil
}

// Accel returns the total perturbing acceleration (km/s^2) for the provided
// inertial position and velocity at time dt. Models whose inputs are out of
// range contribute nothing rather than poisoning the sum with NaNs; callers
// needing to distinguish use the individual model functions.
func (p Perturbations) Accel(R, V []float64, dt time.Time) []float64 {
	pert := make([]float64, 3)
	if p.isEmpty() {
		return pert
	}
	if p.Jn >= 2 {
		if aj, err := JPerturb(R, p.Jn); err == nil {
			pert = add(pert, aj)
		}
	}
	if p.Drag != nil {
		if ad, err := AtmosphericDrag(p.Drag.Cd, p.Drag.Area, p.Drag.Mass, R, V); err == nil {
			pert = add(pert, ad)
		}
	}
	if p.SRP != nil {
		sunVec := p.SRP.SunVecAU
		if sunVec == nil {
			sunVec = Earth.SunVectorAU(dt)
		}
		pert = add(pert, SolarRad(p.SRP.Area, p.SRP.Mass, sunVec))
	}
	if p.Arbitrary != nil {
		pert = add(pert, p.Arbitrary(R, V))
	}
	return pert
}
