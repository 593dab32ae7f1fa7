package scene

import (
	"fmt"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/loaders"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// NewUnitSphereScene is a single unit sphere at the origin seen from z=-5,
// lit by a directional light shining straight down
func NewUnitSphereScene() *Scene {
	s := New(geometry.NewCamera(core.NewVec3(0, 0, -5), 45))

	white := s.AddMaterial(material.NewLambert(core.NewVec3(1, 1, 1), 1))
	s.AddSphere(core.NewVec3(0, 0, 0), 1, white)
	s.AddDirectionalLight(core.NewVec3(0, -1, 0), 1, core.White)

	return s
}

// addRoom adds the five walls shared by the reference scenes
func addRoom(s *Scene, materialIndex int) {
	s.AddPlane(core.NewVec3(0, 0, 10), core.NewVec3(0, 0, -1), materialIndex) // back
	s.AddPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), materialIndex)   // bottom
	s.AddPlane(core.NewVec3(0, 10, 0), core.NewVec3(0, -1, 0), materialIndex) // top
	s.AddPlane(core.NewVec3(5, 0, 0), core.NewVec3(-1, 0, 0), materialIndex)  // right
	s.AddPlane(core.NewVec3(-5, 0, 0), core.NewVec3(1, 0, 0), materialIndex)  // left
}

// addThreePointLights adds the warm key, fill and cool back lights
func addThreePointLights(s *Scene) {
	s.AddPointLight(core.NewVec3(0, 5, 5), 50, core.NewVec3(1, 0.61, 0.45))
	s.AddPointLight(core.NewVec3(-2.5, 5, -5), 70, core.NewVec3(1, 0.8, 0.45))
	s.AddPointLight(core.NewVec3(2.5, 2.5, -5), 50, core.NewVec3(0.34, 0.47, 0.68))
}

// NewSpheresScene is two rows of three spheres inside a box of planes
func NewSpheresScene() *Scene {
	s := New(geometry.NewCamera(core.NewVec3(0, 3, -9), 45))

	grayBlue := s.AddMaterial(material.NewLambert(core.NewVec3(0.49, 0.57, 0.57), 1))
	red := s.AddMaterial(material.NewLambertPhong(core.NewVec3(0.75, 0.1, 0.1), 0.6, 0.4, 60))
	green := s.AddMaterial(material.NewLambertPhong(core.NewVec3(0.1, 0.6, 0.2), 0.8, 0.2, 20))
	blue := s.AddMaterial(material.NewSolidColor(core.NewVec3(0.2, 0.3, 0.9)))

	addRoom(s, grayBlue)

	s.AddSphere(core.NewVec3(-1.75, 1, 0), 0.75, red)
	s.AddSphere(core.NewVec3(0, 1, 0), 0.75, green)
	s.AddSphere(core.NewVec3(1.75, 1, 0), 0.75, blue)
	s.AddSphere(core.NewVec3(-1.75, 3, 0), 0.75, blue)
	s.AddSphere(core.NewVec3(0, 3, 0), 0.75, red)
	s.AddSphere(core.NewVec3(1.75, 3, 0), 0.75, green)

	addThreePointLights(s)

	return s
}

// NewTrianglesScene shows one triangle mesh per cull mode, side by side
func NewTrianglesScene() (*Scene, error) {
	s := New(geometry.NewCamera(core.NewVec3(0, 1, -5), 45))

	grayBlue := s.AddMaterial(material.NewLambert(core.NewVec3(0.49, 0.57, 0.57), 1))
	white := s.AddMaterial(material.NewLambert(core.NewVec3(1, 1, 1), 1))

	addRoom(s, grayBlue)

	positions := []core.Vec3{
		core.NewVec3(-0.75, -1, 0),
		core.NewVec3(-0.75, 1, 0),
		core.NewVec3(0.75, 1, 1),
		core.NewVec3(0.75, -1, 0),
	}
	indices := []int{
		0, 1, 2,
		0, 2, 3,
	}

	placements := []struct {
		cullMode geometry.CullMode
		x        float64
	}{
		{geometry.BackFaceCulling, -1.75},
		{geometry.FrontFaceCulling, 0},
		{geometry.NoCulling, 1.75},
	}
	for _, p := range placements {
		mesh, err := geometry.NewTriangleMesh(positions, indices, nil, p.cullMode, white)
		if err != nil {
			return nil, fmt.Errorf("failed to build %v mesh: %w", p.cullMode, err)
		}
		mesh.Translate(core.NewVec3(p.x, 1.25, 0))
		mesh.UpdateTransforms()
		s.AddTriangleMesh(mesh)
	}

	// A lone triangle on the floor exercises the non-mesh path
	s.AddTriangle(geometry.NewTriangle(
		core.NewVec3(-1, 0.01, 1),
		core.NewVec3(0, 0.01, 2.5),
		core.NewVec3(1, 0.01, 1),
		geometry.BackFaceCulling, white))

	addThreePointLights(s)

	return s, nil
}

// NewMeshScene loads a mesh file and places it in the room
func NewMeshScene(meshPath string) (*Scene, error) {
	data, err := loaders.LoadOBJ(meshPath)
	if err != nil {
		return nil, err
	}

	s := New(geometry.NewCamera(core.NewVec3(0, 3, -9), 45))

	grayBlue := s.AddMaterial(material.NewLambert(core.NewVec3(0.49, 0.57, 0.57), 1))
	white := s.AddMaterial(material.NewLambertPhong(core.NewVec3(1, 1, 1), 0.7, 0.3, 25))

	addRoom(s, grayBlue)

	mesh, err := data.Mesh(geometry.BackFaceCulling, white)
	if err != nil {
		return nil, fmt.Errorf("failed to build mesh from %s: %w", meshPath, err)
	}
	mesh.Scale(core.NewVec3(2, 2, 2))
	mesh.Translate(core.NewVec3(0, 0.01, 0))
	mesh.UpdateTransforms()
	s.AddTriangleMesh(mesh)

	addThreePointLights(s)

	return s, nil
}
