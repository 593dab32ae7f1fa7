package geometry

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Plane represents an infinite plane defined by a point and normal
type Plane struct {
	Origin        core.Vec3 // A point on the plane
	Normal        core.Vec3 // Unit normal
	MaterialIndex int
}

// NewPlane creates a new plane
func NewPlane(origin, normal core.Vec3, materialIndex int) Plane {
	return Plane{
		Origin:        origin,
		Normal:        normal.Normalize(),
		MaterialIndex: materialIndex,
	}
}

// Hit tests if a ray intersects with the plane.
// Only rays travelling against the normal can hit; the back side is invisible.
func (p Plane) Hit(ray core.Ray) (core.HitRecord, bool) {
	t, ok := p.intersect(ray)
	if !ok {
		return core.HitRecord{}, false
	}

	return core.HitRecord{
		DidHit:        true,
		Origin:        ray.At(t),
		Normal:        p.Normal,
		T:             t,
		MaterialIndex: p.MaterialIndex,
	}, true
}

// DoesHit reports whether the ray hits the plane
func (p Plane) DoesHit(ray core.Ray) bool {
	_, ok := p.intersect(ray)
	return ok
}

func (p Plane) intersect(ray core.Ray) (float64, bool) {
	denominator := ray.Direction.Dot(p.Normal)

	// Parallel or approaching from behind
	if denominator >= 0 {
		return 0, false
	}

	t := p.Origin.Subtract(ray.Origin).Dot(p.Normal) / denominator
	if !ray.Contains(t) {
		return 0, false
	}
	return t, true
}
