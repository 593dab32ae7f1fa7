package core

import "math"

// DefaultRayMin is the lower bound used by NewRay, keeping primary rays off the camera origin
const DefaultRayMin = 0.0001

// Ray represents a ray with an origin, direction and valid interval (Min, Max)
type Ray struct {
	Origin    Vec3
	Direction Vec3
	Min       float64
	Max       float64
}

// NewRay creates a ray covering (DefaultRayMin, MaxFloat64)
func NewRay(origin, direction Vec3) Ray {
	return Ray{Origin: origin, Direction: direction, Min: DefaultRayMin, Max: math.MaxFloat64}
}

// NewRayInterval creates a ray with an explicit parametric interval
func NewRayInterval(origin, direction Vec3, tMin, tMax float64) Ray {
	return Ray{Origin: origin, Direction: direction, Min: tMin, Max: tMax}
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float64) Vec3 {
	return r.Origin.Add(r.Direction.Multiply(t))
}

// Contains reports whether t lies strictly inside the ray's interval.
// NaN is never contained.
func (r Ray) Contains(t float64) bool {
	return t > r.Min && t < r.Max
}
