package geometry

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Face is a view of one mesh triangle: three position indices and the index of its flat normal
type Face struct {
	Vertices [3]int
	Normal   int
}

// TriangleMesh is an indexed triangle list tested face by face behind a single
// world-space bounding box. There is no finer acceleration structure.
type TriangleMesh struct {
	Positions     []core.Vec3 // Object-space vertex positions
	Normals       []core.Vec3 // Object-space flat normals, one per face
	Faces         []Face
	CullMode      CullMode
	MaterialIndex int

	TransformedPositions []core.Vec3
	TransformedNormals   []core.Vec3
	TransformedMinAABB   core.Vec3
	TransformedMaxAABB   core.Vec3

	translation mgl64.Mat4
	rotation    mgl64.Mat4
	scale       mgl64.Mat4
}

// NewTriangleMesh builds a mesh from a flat stride-3 index list.
// normals holds one flat normal per triangle; pass nil to compute them from the winding.
// Index bounds are not checked.
func NewTriangleMesh(positions []core.Vec3, indices []int, normals []core.Vec3, cullMode CullMode, materialIndex int) (*TriangleMesh, error) {
	if len(indices)%3 != 0 {
		return nil, fmt.Errorf("index count %d is not a multiple of 3", len(indices))
	}

	faceCount := len(indices) / 3
	faces := make([]Face, faceCount)
	for i := range faces {
		faces[i] = Face{
			Vertices: [3]int{indices[i*3], indices[i*3+1], indices[i*3+2]},
			Normal:   i,
		}
	}

	if normals == nil {
		normals = make([]core.Vec3, faceCount)
		for i, f := range faces {
			normals[i] = FlatNormal(positions[f.Vertices[0]], positions[f.Vertices[1]], positions[f.Vertices[2]])
		}
	}
	if len(normals) != faceCount {
		return nil, fmt.Errorf("got %d normals for %d triangles", len(normals), faceCount)
	}

	mesh := &TriangleMesh{
		Positions:     positions,
		Normals:       normals,
		Faces:         faces,
		CullMode:      cullMode,
		MaterialIndex: materialIndex,
		translation:   mgl64.Ident4(),
		rotation:      mgl64.Ident4(),
		scale:         mgl64.Ident4(),
	}
	mesh.UpdateTransforms()

	return mesh, nil
}

// Translate sets the mesh translation. Call UpdateTransforms to apply.
func (m *TriangleMesh) Translate(offset core.Vec3) {
	m.translation = mgl64.Translate3D(offset.X, offset.Y, offset.Z)
}

// RotateY sets the rotation around the Y axis in radians. Call UpdateTransforms to apply.
func (m *TriangleMesh) RotateY(yaw float64) {
	m.rotation = mgl64.HomogRotate3DY(yaw)
}

// Scale sets the per-axis scale. Call UpdateTransforms to apply.
func (m *TriangleMesh) Scale(s core.Vec3) {
	m.scale = mgl64.Scale3D(s.X, s.Y, s.Z)
}

// Transform returns the object-to-world matrix: scale, then rotate, then translate
func (m *TriangleMesh) Transform() mgl64.Mat4 {
	return m.translation.Mul4(m.rotation).Mul4(m.scale)
}

// UpdateTransforms recomputes the world-space positions, normals and bounding box
func (m *TriangleMesh) UpdateTransforms() {
	transform := m.Transform()
	normalMatrix := transform.Inv().Transpose()

	if len(m.TransformedPositions) != len(m.Positions) {
		m.TransformedPositions = make([]core.Vec3, len(m.Positions))
	}
	for i, p := range m.Positions {
		m.TransformedPositions[i] = core.TransformPoint(transform, p)
	}

	if len(m.TransformedNormals) != len(m.Normals) {
		m.TransformedNormals = make([]core.Vec3, len(m.Normals))
	}
	for i, n := range m.Normals {
		m.TransformedNormals[i] = core.TransformVector(normalMatrix, n).Normalize()
	}

	bounds := core.NewAABBFromPoints(m.TransformedPositions...)
	m.TransformedMinAABB = bounds.Min
	m.TransformedMaxAABB = bounds.Max
}

// BoundingBox returns the world-space bounding box
func (m *TriangleMesh) BoundingBox() core.AABB {
	return core.NewAABB(m.TransformedMinAABB, m.TransformedMaxAABB)
}

// Hit returns the nearest face hit, or false when the box or every face is missed
func (m *TriangleMesh) Hit(ray core.Ray) (core.HitRecord, bool) {
	if !m.BoundingBox().SlabTest(ray) {
		return core.HitRecord{}, false
	}

	best := core.NewHitRecord()
	for _, f := range m.Faces {
		if hit, ok := m.hitFace(f, ray, false); ok {
			best = best.Closer(hit)
		}
	}
	return best, best.DidHit
}

// DoesHit returns on the first face hit
func (m *TriangleMesh) DoesHit(ray core.Ray) bool {
	if !m.BoundingBox().SlabTest(ray) {
		return false
	}

	for _, f := range m.Faces {
		if _, ok := m.hitFace(f, ray, true); ok {
			return true
		}
	}
	return false
}

// TriangleCount returns the number of faces
func (m *TriangleMesh) TriangleCount() int {
	return len(m.Faces)
}

func (m *TriangleMesh) hitFace(f Face, ray core.Ray, shadow bool) (core.HitRecord, bool) {
	return HitTestTriangle(
		m.TransformedPositions[f.Vertices[0]],
		m.TransformedPositions[f.Vertices[1]],
		m.TransformedPositions[f.Vertices[2]],
		m.TransformedNormals[f.Normal],
		m.CullMode, m.MaterialIndex, ray, shadow)
}
