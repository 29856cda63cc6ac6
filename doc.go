// Package orbitalmech converts between the anomaly representations of a Kepler
// orbit, transforms classical orbital elements to and from inertial Cartesian
// state vectors across all orbit geometries (circular, elliptic, rectilinear,
// parabolic, hyperbolic), and models a small set of perturbing accelerations
// (atmospheric drag, J2 through J6 zonal harmonics, solar radiation pressure).
//
// The transformation and perturbation functions are pure and safe for
// concurrent use; the ephemerides-backed functions load the VSOP87 data files
// on first use (see HelioRV). Distances are in km,
// velocities in km/s, angles in radians, and gravitational parameters in
// km^3/s^2 unless noted otherwise.
package orbitalmech
