package orbitalmech

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/gonum/floats"
)

func TestAtmosphericDensity(t *testing.T) {
	// At the center of the fit the polynomial reduces to its constant term.
	if ρ := AtmosphericDensity(526.8); !floats.EqualWithinRel(ρ, math.Pow(10, -12.575), 1e-12) {
		t.Fatalf("ρ(526.8)=%g", ρ)
	}
	// Above 1000 km the exponential branch takes over.
	if ρ := AtmosphericDensity(1500); !floats.EqualWithinRel(ρ, math.Pow(10, -0.105-14.464), 1e-12) {
		t.Fatalf("ρ(1500)=%g", ρ)
	}
	// Order of magnitude at ISS-like altitudes.
	if ρ := AtmosphericDensity(400); ρ < 1e-12 || ρ > 1e-11 {
		t.Fatalf("ρ(400)=%g out of the expected decade", ρ)
	}
	if AtmosphericDensity(200) < AtmosphericDensity(800) {
		t.Fatal("density should drop with altitude")
	}
}

func TestAtmosphericDrag(t *testing.T) {
	R := []float64{Earth.Radius + 400, 0, 0}
	V := []float64{0, 7.7, 0}
	drag, err := AtmosphericDrag(2.2, 4, 100, R, V)
	if err != nil {
		t.Fatal(err)
	}
	// Drag opposes the velocity.
	if drag[0] != 0 || drag[1] >= 0 || drag[2] != 0 {
		t.Fatalf("drag=%+v not anti-parallel to V", drag)
	}
	ρ := AtmosphericDensity(400)
	exp := 0.5 * ρ * (2.2 * 4 / 100.) * math.Pow(7.7*1000, 2) / 1000
	if !floats.EqualWithinRel(norm(drag), exp, 1e-12) {
		t.Fatalf("‖drag‖=%g, expected %g", norm(drag), exp)
	}
	// Doubling the mass halves the acceleration.
	half, _ := AtmosphericDrag(2.2, 4, 200, R, V)
	if !floats.EqualWithinRel(norm(half), 0.5*norm(drag), 1e-12) {
		t.Fatal("drag does not scale with 1/m")
	}
	// Below the surface there is no atmosphere model.
	bad, err := AtmosphericDrag(2.2, 4, 100, []float64{6000, 0, 0}, V)
	for i := 0; i < 3; i++ {
		if !math.IsNaN(bad[i]) {
			t.Fatalf("drag[%d]=%f, expected NaN", i, bad[i])
		}
	}
	var dErr DomainError
	if !errors.As(err, &dErr) || dErr.Param != "altitude" {
		t.Fatalf("expected an altitude DomainError, got %v", err)
	}
}

func TestJPerturb(t *testing.T) {
	for _, num := range []int{0, 1, 7} {
		aj, err := JPerturb([]float64{7000, 0, 0}, num)
		for i := 0; i < 3; i++ {
			if !math.IsNaN(aj[i]) {
				t.Fatalf("num=%d: aj[%d]=%f, expected NaN", num, i, aj[i])
			}
		}
		var dErr DomainError
		if !errors.As(err, &dErr) || dErr.Param != "num" {
			t.Fatalf("num=%d: expected a num DomainError, got %v", num, err)
		}
	}
	// On the equator the J2 pull is purely radial, at a hand-computed magnitude.
	aj2, err := JPerturb([]float64{7000, 0, 0}, 2)
	if err != nil {
		t.Fatal(err)
	}
	if !floats.EqualWithinRel(aj2[0], -1.0967e-5, 1e-3) || aj2[1] != 0 || aj2[2] != 0 {
		t.Fatalf("J2 acceleration %+v", aj2)
	}
	// J3 introduces the north-south asymmetry even on the equator.
	aj3, _ := JPerturb([]float64{7000, 0, 0}, 3)
	if aj3[2] == 0 {
		t.Fatal("J3 term should perturb out of the equatorial plane")
	}
	// Each higher degree adds its own term on a generic position.
	R := []float64{7000, 1000, 2000}
	prev, _ := JPerturb(R, 2)
	for num := 3; num <= 6; num++ {
		cur, err := JPerturb(R, num)
		if err != nil {
			t.Fatal(err)
		}
		if vectorsEqualWithin(cur, prev, 1e-12) {
			t.Fatalf("J%d added nothing", num)
		}
		prev = cur
	}
}

func TestSolarRad(t *testing.T) {
	at1AU := SolarRad(1, 1, []float64{1, 0, 0})
	if !floats.EqualWithinRel(at1AU[0], -5.9536e-9, 1e-4) || at1AU[1] != 0 || at1AU[2] != 0 {
		t.Fatalf("SRP at 1 AU: %+v", at1AU)
	}
	// Inverse square falloff with sun distance.
	at2AU := SolarRad(1, 1, []float64{2, 0, 0})
	if !floats.EqualWithinRel(4*norm(at2AU), norm(at1AU), 1e-12) {
		t.Fatal("SRP does not fall off with the square of the distance")
	}
	// And linear scaling with the area to mass ratio.
	if !floats.EqualWithinRel(norm(SolarRad(10, 2, []float64{1, 0, 0})), 5*norm(at1AU), 1e-12) {
		t.Fatal("SRP does not scale with A/m")
	}
}

func TestDebye(t *testing.T) {
	cases := []struct {
		alt, exp float64
	}{
		{200, 5.64e-3},   // first table entry
		{225, 4.78e-3},   // linear interpolation
		{2000, 3.96e-2},  // last table entry
		{15000, 3.96e-2}, // flat band up to 30000 km
		{32000, 200.3},   // linear extension to GEO
	}
	for _, tc := range cases {
		λ, err := Debye(tc.alt)
		if err != nil {
			t.Fatalf("Debye(%f): %s", tc.alt, err)
		}
		if !floats.EqualWithinRel(λ, tc.exp, 1e-10) {
			t.Fatalf("Debye(%f)=%g, expected %g", tc.alt, λ, tc.exp)
		}
	}
	for _, alt := range []float64{100, 40000} {
		λ, err := Debye(alt)
		if !math.IsNaN(λ) {
			t.Fatalf("Debye(%f)=%g, expected NaN", alt, λ)
		}
		var dErr DomainError
		if !errors.As(err, &dErr) || dErr.Param != "alt" {
			t.Fatalf("Debye(%f): expected an alt DomainError, got %v", alt, err)
		}
	}
}

func TestPerturbationsAccel(t *testing.T) {
	dt := time.Date(2018, 3, 21, 12, 0, 0, 0, time.UTC)
	R := []float64{Earth.Radius + 400, 0, 0}
	V := []float64{0, 7.7, 0}
	var none Perturbations
	if !floats.Equal(none.Accel(R, V, dt), []float64{0, 0, 0}) {
		t.Fatal("empty perturbations should not perturb")
	}
	sunVec := []float64{0.5, 0.8, 0.1}
	extra := func(R, V []float64) []float64 { return []float64{1e-9, 0, 0} }
	p := Perturbations{
		Jn:        4,
		Drag:      &DragSpec{Cd: 2.2, Area: 4, Mass: 100},
		SRP:       &SRPSpec{Area: 4, Mass: 100, SunVecAU: sunVec},
		Arbitrary: extra,
	}
	aj, _ := JPerturb(R, 4)
	ad, _ := AtmosphericDrag(2.2, 4, 100, R, V)
	exp := add(add(add(aj, ad), SolarRad(4, 100, sunVec)), extra(R, V))
	if got := p.Accel(R, V, dt); !vectorsEqualWithin(got, exp, 1e-12) {
		t.Fatalf("Accel=%+v, expected the sum of the models %+v", got, exp)
	}
	// A model whose inputs are out of range is skipped, not propagated as NaNs.
	inside := []float64{6000, 0, 0}
	got := Perturbations{Drag: &DragSpec{Cd: 2.2, Area: 4, Mass: 100}}.Accel(inside, V, dt)
	if !floats.Equal(got, []float64{0, 0, 0}) {
		t.Fatalf("out-of-range drag should contribute nothing, got %+v", got)
	}
}
