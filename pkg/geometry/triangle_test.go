package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// xyTriangle lies in the z=0 plane with its normal facing -Z (toward a camera at z<0)
func xyTriangle(cullMode CullMode) Triangle {
	return NewTriangle(
		core.NewVec3(0, 0, 0),
		core.NewVec3(0, 1, 0),
		core.NewVec3(1, 0, 0),
		cullMode, 7)
}

func TestTriangle_Normal(t *testing.T) {
	tri := xyTriangle(NoCulling)
	if tri.Normal.Subtract(core.NewVec3(0, 0, -1)).Length() > 1e-12 {
		t.Errorf("Expected normal (0,0,-1), got %v", tri.Normal)
	}

	degenerate := NewTriangle(core.NewVec3(0, 0, 0), core.NewVec3(1, 1, 1), core.NewVec3(2, 2, 2), NoCulling, 0)
	if degenerate.Normal.IsFinite() {
		t.Errorf("Expected non-finite normal for a zero-area triangle, got %v", degenerate.Normal)
	}
}

func TestTriangle_Hit(t *testing.T) {
	tests := []struct {
		name      string
		ray       core.Ray
		shouldHit bool
		expectedT float64
	}{
		{
			name:      "Ray hits triangle interior",
			ray:       core.NewRay(core.NewVec3(0.25, 0.25, -1), core.NewVec3(0, 0, 1)),
			shouldHit: true,
			expectedT: 1.0,
		},
		{
			name:      "Ray hits triangle edge",
			ray:       core.NewRay(core.NewVec3(0.5, 0, -1), core.NewVec3(0, 0, 1)),
			shouldHit: true,
			expectedT: 1.0,
		},
		{
			name:      "Ray misses triangle",
			ray:       core.NewRay(core.NewVec3(1, 1, -1), core.NewVec3(0, 0, 1)),
			shouldHit: false,
		},
		{
			name:      "Ray parallel to triangle",
			ray:       core.NewRay(core.NewVec3(0.25, 0.25, 0), core.NewVec3(1, 0, 0)),
			shouldHit: false,
		},
		{
			name:      "Triangle behind ray",
			ray:       core.NewRay(core.NewVec3(0.25, 0.25, -1), core.NewVec3(0, 0, -1)),
			shouldHit: false,
		},
		{
			name:      "Triangle beyond max",
			ray:       core.NewRayInterval(core.NewVec3(0.25, 0.25, -1), core.NewVec3(0, 0, 1), 0.001, 0.5),
			shouldHit: false,
		},
	}

	triangle := xyTriangle(NoCulling)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, isHit := triangle.Hit(tt.ray)

			if isHit != tt.shouldHit {
				t.Fatalf("Expected hit=%v, got hit=%v", tt.shouldHit, isHit)
			}
			if triangle.DoesHit(tt.ray) != tt.shouldHit {
				t.Errorf("DoesHit disagrees with Hit")
			}
			if !tt.shouldHit {
				return
			}

			if math.Abs(hit.T-tt.expectedT) > 1e-9 {
				t.Errorf("Expected t=%f, got t=%f", tt.expectedT, hit.T)
			}

			// Barycentric hit point must match the ray's own point
			expectedPoint := tt.ray.At(hit.T)
			if expectedPoint.Subtract(hit.Origin).Length() > 1e-9 {
				t.Errorf("Hit point mismatch: expected %v, got %v", expectedPoint, hit.Origin)
			}
			if hit.Normal != triangle.Normal {
				t.Errorf("Expected flat normal %v, got %v", triangle.Normal, hit.Normal)
			}
			if hit.MaterialIndex != 7 {
				t.Errorf("Expected material 7, got %d", hit.MaterialIndex)
			}
		})
	}
}

func TestTriangle_CullModes(t *testing.T) {
	// Camera side: travelling against the normal (normal faces -Z, ray goes +Z)
	front := core.NewRay(core.NewVec3(0.25, 0.25, -1), core.NewVec3(0, 0, 1))
	// Far side: travelling along the normal
	back := core.NewRay(core.NewVec3(0.25, 0.25, 1), core.NewVec3(0, 0, -1))

	tests := []struct {
		cullMode                   CullMode
		frontHit, backHit          bool
		frontShadowHit, backShadow bool
	}{
		{FrontFaceCulling, false, true, true, false},
		{BackFaceCulling, true, false, false, true},
		{NoCulling, true, true, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.cullMode.String(), func(t *testing.T) {
			tri := xyTriangle(tt.cullMode)

			if _, ok := tri.Hit(front); ok != tt.frontHit {
				t.Errorf("front primary: expected %v, got %v", tt.frontHit, ok)
			}
			if _, ok := tri.Hit(back); ok != tt.backHit {
				t.Errorf("back primary: expected %v, got %v", tt.backHit, ok)
			}

			// Shadow rays flip the culling side
			if ok := tri.DoesHit(front); ok != tt.frontShadowHit {
				t.Errorf("front shadow: expected %v, got %v", tt.frontShadowHit, ok)
			}
			if ok := tri.DoesHit(back); ok != tt.backShadow {
				t.Errorf("back shadow: expected %v, got %v", tt.backShadow, ok)
			}
		})
	}
}

func TestTriangle_CentroidBarycentric(t *testing.T) {
	triangles := []Triangle{
		xyTriangle(NoCulling),
		NewTriangle(core.NewVec3(-1, 0, 2), core.NewVec3(3, 1, 4), core.NewVec3(0, 4, 1), NoCulling, 0),
		NewTriangle(core.NewVec3(5, 5, 5), core.NewVec3(6, 5, 4), core.NewVec3(5, 7, 6), NoCulling, 0),
	}

	for i, tri := range triangles {
		centroid := tri.V0.Add(tri.V1).Add(tri.V2).Multiply(1.0 / 3.0)
		origin := centroid.Add(tri.Normal.Multiply(2))
		ray := core.NewRay(origin, tri.Normal.Negate())

		hit, ok := tri.Hit(ray)
		if !ok {
			t.Fatalf("triangle %d: expected centroid hit", i)
		}

		// Recover barycentric weights from the hit point
		u, v, w := barycentric(tri, hit.Origin)
		for _, weight := range []float64{u, v, w} {
			if weight < -1e-9 || weight > 1+1e-9 {
				t.Errorf("triangle %d: weight %f outside [0,1]", i, weight)
			}
		}
		if math.Abs(u+v+w-1) > 1e-9 {
			t.Errorf("triangle %d: weights sum to %f", i, u+v+w)
		}
		if hit.Origin.Subtract(centroid).Length() > 1e-9 {
			t.Errorf("triangle %d: expected centroid %v, got %v", i, centroid, hit.Origin)
		}
	}
}

func TestTriangle_PlaneProjectionMatchesMollerTrumbore(t *testing.T) {
	tri := NewTriangle(core.NewVec3(-1, 0, 2), core.NewVec3(3, 1, 4), core.NewVec3(0, 4, 1), NoCulling, 0)
	origin := core.NewVec3(0.5, 1, -4)

	for x := -1.0; x <= 3.0; x += 0.25 {
		for y := -0.5; y <= 4.0; y += 0.25 {
			target := core.NewVec3(x, y, 2.5)
			ray := core.NewRay(origin, target.Subtract(origin).Normalize())

			mt, mtOK := tri.Hit(ray)
			pp, ppOK := tri.HitPlaneProjection(ray)

			// Rays grazing an edge may legitimately differ by rounding
			if mtOK != ppOK {
				u, v, w := barycentric(tri, ray.At(tri.V0.Subtract(ray.Origin).Dot(tri.Normal)/ray.Direction.Dot(tri.Normal)))
				if min(u, v, w) > 1e-6 {
					t.Errorf("ray toward %v: moller=%v projection=%v", target, mtOK, ppOK)
				}
				continue
			}
			if mtOK && math.Abs(mt.T-pp.T) > 1e-9 {
				t.Errorf("ray toward %v: t differs, %f vs %f", target, mt.T, pp.T)
			}
			if tri.DoesHitPlaneProjection(ray) != ppOK {
				t.Errorf("ray toward %v: DoesHitPlaneProjection disagrees", target)
			}
		}
	}
}

// barycentric returns the weights of p relative to the triangle's vertices
func barycentric(tri Triangle, p core.Vec3) (float64, float64, float64) {
	area := tri.V1.Subtract(tri.V0).Cross(tri.V2.Subtract(tri.V0)).Dot(tri.Normal)
	w0 := tri.V1.Subtract(p).Cross(tri.V2.Subtract(p)).Dot(tri.Normal) / area
	w1 := tri.V2.Subtract(p).Cross(tri.V0.Subtract(p)).Dot(tri.Normal) / area
	w2 := tri.V0.Subtract(p).Cross(tri.V1.Subtract(p)).Dot(tri.Normal) / area
	return w0, w1, w2
}
