package scene

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

var (
	_ geometry.Primitive = geometry.Sphere{}
	_ geometry.Primitive = geometry.Plane{}
	_ geometry.Primitive = (*geometry.Triangle)(nil)
	_ geometry.Primitive = (*geometry.TriangleMesh)(nil)
)

// Scene owns the primitives, lights, materials and camera of one world and
// answers ray queries against them. Primitives are tested in storage order:
// spheres, planes, triangles, then meshes, whatever order they were added in.
//
// Add primitives through the Add* methods; appending to the slices directly
// bypasses the query order cache.
type Scene struct {
	Camera    *geometry.Camera
	Spheres   []geometry.Sphere
	Planes    []geometry.Plane
	Triangles []geometry.Triangle
	Meshes    []*geometry.TriangleMesh
	Lights    []lights.Light
	Materials []material.Material

	ordered []geometry.Primitive // nil until the next query
}

// New creates an empty scene. Material 0 is a solid red fallback so that
// primitives created without a material stand out.
func New(camera *geometry.Camera) *Scene {
	return &Scene{
		Camera:    camera,
		Materials: []material.Material{material.NewSolidColor(core.NewVec3(1, 0, 0))},
	}
}

// AddMaterial appends a material and returns its index
func (s *Scene) AddMaterial(m material.Material) int {
	s.Materials = append(s.Materials, m)
	return len(s.Materials) - 1
}

// AddSphere adds a sphere
func (s *Scene) AddSphere(origin core.Vec3, radius float64, materialIndex int) {
	s.Spheres = append(s.Spheres, geometry.NewSphere(origin, radius, materialIndex))
	s.ordered = nil
}

// AddPlane adds an infinite plane
func (s *Scene) AddPlane(origin, normal core.Vec3, materialIndex int) {
	s.Planes = append(s.Planes, geometry.NewPlane(origin, normal, materialIndex))
	s.ordered = nil
}

// AddTriangle adds a single triangle
func (s *Scene) AddTriangle(triangle geometry.Triangle) {
	s.Triangles = append(s.Triangles, triangle)
	s.ordered = nil
}

// AddTriangleMesh adds a mesh. The scene keeps the pointer so later transform updates are visible.
func (s *Scene) AddTriangleMesh(mesh *geometry.TriangleMesh) {
	s.Meshes = append(s.Meshes, mesh)
	s.ordered = nil
}

// AddPointLight adds a point light
func (s *Scene) AddPointLight(origin core.Vec3, intensity float64, color core.Vec3) {
	s.Lights = append(s.Lights, lights.NewPointLight(origin, intensity, color))
}

// AddDirectionalLight adds a directional light
func (s *Scene) AddDirectionalLight(direction core.Vec3, intensity float64, color core.Vec3) {
	s.Lights = append(s.Lights, lights.NewDirectionalLight(direction, intensity, color))
}

// GetCamera returns the scene camera
func (s *Scene) GetCamera() *geometry.Camera { return s.Camera }

// GetMaterials returns the material table indexed by HitRecord.MaterialIndex
func (s *Scene) GetMaterials() []material.Material { return s.Materials }

// GetLights returns the lights
func (s *Scene) GetLights() []lights.Light { return s.Lights }

// primitives returns every primitive in query order, rebuilding the list
// after an Add*. Triangles are referenced in place.
func (s *Scene) primitives() []geometry.Primitive {
	if s.ordered != nil {
		return s.ordered
	}

	ordered := make([]geometry.Primitive, 0, len(s.Spheres)+len(s.Planes)+len(s.Triangles)+len(s.Meshes))
	for _, sphere := range s.Spheres {
		ordered = append(ordered, sphere)
	}
	for _, plane := range s.Planes {
		ordered = append(ordered, plane)
	}
	for i := range s.Triangles {
		ordered = append(ordered, &s.Triangles[i])
	}
	for _, mesh := range s.Meshes {
		ordered = append(ordered, mesh)
	}

	s.ordered = ordered
	return ordered
}

// GetClosestHit returns the nearest hit along the ray.
// A later primitive replaces the best so far only when strictly nearer.
func (s *Scene) GetClosestHit(ray core.Ray) core.HitRecord {
	best := core.NewHitRecord()
	for _, p := range s.primitives() {
		if hit, ok := p.Hit(ray); ok {
			best = best.Closer(hit)
		}
	}
	return best
}

// DoesHit reports whether anything blocks the ray, stopping at the first hit.
// It is meant for shadow rays and builds no hit record.
func (s *Scene) DoesHit(ray core.Ray) bool {
	for _, p := range s.primitives() {
		if p.DoesHit(ray) {
			return true
		}
	}
	return false
}

// Update poses the animated meshes for the given time in seconds.
// Meshes swing back and forth around the Y axis over a full turn.
func (s *Scene) Update(totalSeconds float64) {
	yaw := (math.Cos(totalSeconds) + 1) / 2 * 2 * math.Pi
	for _, mesh := range s.Meshes {
		mesh.RotateY(yaw)
		mesh.UpdateTransforms()
	}
}

// PrimitiveCount returns the number of primitives, counting each mesh face
func (s *Scene) PrimitiveCount() int {
	count := len(s.Spheres) + len(s.Planes) + len(s.Triangles)
	for _, mesh := range s.Meshes {
		count += mesh.TriangleCount()
	}
	return count
}
