package orbitalmech

import "math"

const (
	// keplerε is the convergence tolerance of the inverse Kepler solvers.
	keplerε = 1e-13
	// keplerMaxIt caps the Newton-Raphson iterations. Hitting the cap returns the
	// current estimate along with a NonConvergenceError.
	keplerMaxIt = 200
)

// AnomalyKind discriminates which angle an Anomaly carries. Rectilinear orbits
// have no defined true anomaly, so ElementsFromRV returns the eccentric or
// hyperbolic anomaly there instead of silently reusing the same field.
type AnomalyKind uint8

const (
	// TrueAnomaly is the angle from periapsis along the orbit.
	TrueAnomaly AnomalyKind = iota
	// EccentricAnomalyRectilinear marks the eccentric anomaly of a rectilinear elliptic orbit.
	EccentricAnomalyRectilinear
	// HyperbolicAnomalyRectilinear marks the hyperbolic anomaly of a rectilinear hyperbolic orbit.
	HyperbolicAnomalyRectilinear
)

func (k AnomalyKind) String() string {
	switch k {
	case TrueAnomaly:
		return "true anomaly"
	case EccentricAnomalyRectilinear:
		return "eccentric anomaly (rectilinear)"
	case HyperbolicAnomalyRectilinear:
		return "hyperbolic anomaly (rectilinear)"
	default:
		return "unknown anomaly"
	}
}

// Anomaly is an angle along the orbit tagged with its interpretation.
type Anomaly struct {
	Kind  AnomalyKind
	Angle float64 // radians
}

// E2f maps an eccentric anomaly to the true anomaly. Valid for 0 <= e < 1
// (circular or non-rectilinear elliptic orbits).
func E2f(Ecc, e float64) (float64, error) {
	if e < 0 || e >= 1 {
		return math.NaN(), domainError("E2f", "e", e, "[0, 1)")
	}
	sE, cE := math.Sincos(Ecc / 2)
	return 2 * math.Atan2(math.Sqrt(1+e)*sE, math.Sqrt(1-e)*cE), nil
}

// f2E maps a true anomaly to the eccentric anomaly. Valid for 0 <= e < 1.
func f2E(f, e float64) (float64, error) {
	if e < 0 || e >= 1 {
		return math.NaN(), domainError("f2E", "e", e, "[0, 1)")
	}
	sf, cf := math.Sincos(f / 2)
	return 2 * math.Atan2(math.Sqrt(1-e)*sf, math.Sqrt(1+e)*cf), nil
}

// E2M maps an eccentric anomaly to the mean elliptic anomaly via Kepler's
// equation M = E - e sin E. Valid for 0 <= e < 1.
func E2M(Ecc, e float64) (float64, error) {
	if e < 0 || e >= 1 {
		return math.NaN(), domainError("E2M", "e", e, "[0, 1)")
	}
	return Ecc - e*math.Sin(Ecc), nil
}

// M2E inverts Kepler's equation with Newton-Raphson, seeded at E0 = M. The seed
// guarantees convergence to the single root for moderate eccentricities. If the
// cap is hit (e.g. e very close to 1), the current estimate is returned along
// with a NonConvergenceError.
func M2E(M, e float64) (float64, error) {
	if e < 0 || e >= 1 {
		return math.NaN(), domainError("M2E", "e", e, "[0, 1)")
	}
	E := M
	for it := 0; ; it++ {
		dE := (E - e*math.Sin(E) - M) / (1 - e*math.Cos(E))
		E -= dE
		if math.Abs(dE) < keplerε {
			return E, nil
		}
		if it >= keplerMaxIt {
			err := NonConvergenceError{Func: "M2E", Iterations: it, LastDelta: dE}
			diag.Log("severity", "warning", "func", "M2E", "err", err.Error(), "M", M, "e", e)
			return E, err
		}
	}
}

// f2H maps a true anomaly to the hyperbolic anomaly. Valid for e > 1.
func f2H(f, e float64) (float64, error) {
	if e <= 1 {
		return math.NaN(), domainError("f2H", "e", e, "(1, +inf)")
	}
	return 2 * math.Atanh(math.Sqrt((e-1)/(e+1))*math.Tan(f/2)), nil
}

// H2f maps a hyperbolic anomaly to the true anomaly. Valid for e > 1.
func H2f(H, e float64) (float64, error) {
	if e <= 1 {
		return math.NaN(), domainError("H2f", "e", e, "(1, +inf)")
	}
	return 2 * math.Atan(math.Sqrt((e+1)/(e-1))*math.Tanh(H/2)), nil
}

// H2N maps a hyperbolic anomaly to the mean hyperbolic anomaly via the
// hyperbolic Kepler equation N = e sinh H - H. Valid for e > 1.
func H2N(H, e float64) (float64, error) {
	if e <= 1 {
		return math.NaN(), domainError("H2N", "e", e, "(1, +inf)")
	}
	return e*math.Sinh(H) - H, nil
}

// N2H inverts the hyperbolic Kepler equation with Newton-Raphson, seeded at
// H0 = N. Same cap behavior as M2E.
func N2H(N, e float64) (float64, error) {
	if e <= 1 {
		return math.NaN(), domainError("N2H", "e", e, "(1, +inf)")
	}
	H := N
	for it := 0; ; it++ {
		dH := (e*math.Sinh(H) - H - N) / (e*math.Cosh(H) - 1)
		H -= dH
		if math.Abs(dH) < keplerε {
			return H, nil
		}
		if it >= keplerMaxIt {
			err := NonConvergenceError{Func: "N2H", Iterations: it, LastDelta: dH}
			diag.Log("severity", "warning", "func", "N2H", "err", err.Error(), "N", N, "e", e)
			return H, err
		}
	}
}
