package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Sphere represents a sphere shape
type Sphere struct {
	Origin        core.Vec3
	Radius        float64
	MaterialIndex int
}

// NewSphere creates a new sphere
func NewSphere(origin core.Vec3, radius float64, materialIndex int) Sphere {
	return Sphere{
		Origin:        origin,
		Radius:        radius,
		MaterialIndex: materialIndex,
	}
}

// Hit tests the ray against the sphere and returns the near intersection.
//
// Only the near root is considered. When it falls outside the ray's
// interval the sphere is reported as missed, even if the far root would
// be valid (a ray starting inside the sphere never hits it).
func (s Sphere) Hit(ray core.Ray) (core.HitRecord, bool) {
	t, ok := s.nearRoot(ray)
	if !ok {
		return core.HitRecord{}, false
	}

	point := ray.At(t)
	return core.HitRecord{
		DidHit:        true,
		Origin:        point,
		Normal:        point.Subtract(s.Origin).Normalize(),
		T:             t,
		MaterialIndex: s.MaterialIndex,
	}, true
}

// DoesHit reports whether the ray hits the sphere
func (s Sphere) DoesHit(ray core.Ray) bool {
	_, ok := s.nearRoot(ray)
	return ok
}

// nearRoot solves |O + tD - C|² = r² for the smaller t
func (s Sphere) nearRoot(ray core.Ray) (float64, bool) {
	oc := ray.Origin.Subtract(s.Origin)
	b := 2 * ray.Direction.Dot(oc)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := b*b - 4*c
	if discriminant <= 0 {
		return 0, false
	}

	t := (-b - math.Sqrt(discriminant)) * 0.5
	if !ray.Contains(t) {
		return 0, false
	}
	return t, true
}
