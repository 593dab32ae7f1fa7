package geometry

import (
	"fmt"
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// CullMode decides which side of a triangle can be hit
type CullMode int

const (
	// FrontFaceCulling hides faces whose normal points toward the ray origin
	FrontFaceCulling CullMode = iota
	// BackFaceCulling hides faces whose normal points away from the ray origin
	BackFaceCulling
	// NoCulling keeps both sides, dropping only edge-on faces
	NoCulling
)

func (c CullMode) String() string {
	switch c {
	case FrontFaceCulling:
		return "front"
	case BackFaceCulling:
		return "back"
	case NoCulling:
		return "none"
	default:
		return fmt.Sprintf("CullMode(%d)", int(c))
	}
}

// Triangle represents a single triangle with a flat, precomputed normal
type Triangle struct {
	V0, V1, V2    core.Vec3
	Normal        core.Vec3
	CullMode      CullMode
	MaterialIndex int
}

// NewTriangle creates a triangle and computes its normal from the winding order
func NewTriangle(v0, v1, v2 core.Vec3, cullMode CullMode, materialIndex int) Triangle {
	return Triangle{
		V0:            v0,
		V1:            v1,
		V2:            v2,
		Normal:        FlatNormal(v0, v1, v2),
		CullMode:      cullMode,
		MaterialIndex: materialIndex,
	}
}

// FlatNormal returns normalize((v1-v0) × (v2-v0)).
// Zero-area triangles yield a NaN normal; it is not replaced.
func FlatNormal(v0, v1, v2 core.Vec3) core.Vec3 {
	return v1.Subtract(v0).Cross(v2.Subtract(v0)).Normalize()
}

// Hit tests the ray against the triangle using Möller–Trumbore
func (t *Triangle) Hit(ray core.Ray) (core.HitRecord, bool) {
	return HitTestTriangle(t.V0, t.V1, t.V2, t.Normal, t.CullMode, t.MaterialIndex, ray, false)
}

// DoesHit is the shadow-ray form of Hit: culling is evaluated from the light's side
func (t *Triangle) DoesHit(ray core.Ray) bool {
	_, ok := HitTestTriangle(t.V0, t.V1, t.V2, t.Normal, t.CullMode, t.MaterialIndex, ray, true)
	return ok
}

// HitPlaneProjection tests the ray by intersecting the supporting plane and
// checking the point against each edge. It agrees with Hit up to rounding.
func (t *Triangle) HitPlaneProjection(ray core.Ray) (core.HitRecord, bool) {
	return t.hitPlaneProjection(ray, false)
}

// DoesHitPlaneProjection is the shadow-ray form of HitPlaneProjection
func (t *Triangle) DoesHitPlaneProjection(ray core.Ray) bool {
	_, ok := t.hitPlaneProjection(ray, true)
	return ok
}

func (t *Triangle) hitPlaneProjection(ray core.Ray, shadow bool) (core.HitRecord, bool) {
	if culled(t.Normal, ray.Direction, t.CullMode, shadow) {
		return core.HitRecord{}, false
	}

	tHit := t.V0.Subtract(ray.Origin).Dot(t.Normal) / ray.Direction.Dot(t.Normal)
	if !ray.Contains(tHit) {
		return core.HitRecord{}, false
	}

	point := ray.At(tHit)

	// Inside test: the point must lie left of every edge, seen along the normal
	vertices := [3]core.Vec3{t.V0, t.V1, t.V2}
	for i := range vertices {
		edge := vertices[(i+1)%3].Subtract(vertices[i])
		toPoint := point.Subtract(vertices[i])
		if edge.Cross(toPoint).Dot(t.Normal) < 0 {
			return core.HitRecord{}, false
		}
	}

	return core.HitRecord{
		DidHit:        true,
		Origin:        point,
		Normal:        t.Normal,
		T:             tHit,
		MaterialIndex: t.MaterialIndex,
	}, true
}

// HitTestTriangle runs the Möller–Trumbore test on raw triangle data so that
// meshes can test their faces without building a Triangle per face.
// shadow flips the culling side for rays cast from a surface toward a light.
func HitTestTriangle(v0, v1, v2, normal core.Vec3, cullMode CullMode, materialIndex int, ray core.Ray, shadow bool) (core.HitRecord, bool) {
	if culled(normal, ray.Direction, cullMode, shadow) {
		return core.HitRecord{}, false
	}

	edge1 := v1.Subtract(v0)
	edge2 := v2.Subtract(v0)

	pVec := ray.Direction.Cross(edge2)
	det := edge1.Dot(pVec)

	// Ray lies in the plane of the triangle
	if math.Abs(det) < epsilon {
		return core.HitRecord{}, false
	}

	invDet := 1 / det
	tVec := ray.Origin.Subtract(v0)

	u := tVec.Dot(pVec) * invDet
	if u < 0 || u > 1 {
		return core.HitRecord{}, false
	}

	qVec := tVec.Cross(edge1)
	v := ray.Direction.Dot(qVec) * invDet
	if v < 0 || u+v > 1 {
		return core.HitRecord{}, false
	}

	t := edge2.Dot(qVec) * invDet
	if !ray.Contains(t) {
		return core.HitRecord{}, false
	}

	return core.HitRecord{
		DidHit:        true,
		Origin:        v0.Multiply(1 - u - v).Add(v1.Multiply(u)).Add(v2.Multiply(v)),
		Normal:        normal,
		T:             t,
		MaterialIndex: materialIndex,
	}, true
}

// culled applies the cull-mode policy to normal·direction
func culled(normal, direction core.Vec3, cullMode CullMode, shadow bool) bool {
	normalViewDot := normal.Dot(direction)
	if shadow {
		normalViewDot = -normalViewDot
	}

	switch cullMode {
	case FrontFaceCulling:
		return normalViewDot <= 0
	case BackFaceCulling:
		return normalViewDot >= 0
	default:
		return math.Abs(normalViewDot) < epsilon
	}
}
