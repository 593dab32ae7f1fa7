package geometry

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Camera is a pinhole camera looking down its local +Z axis
type Camera struct {
	Origin     core.Vec3
	FOVAngle   float64 // Vertical field of view in degrees
	TotalPitch float64 // Radians around the local X axis
	TotalYaw   float64 // Radians around the world Y axis
}

// NewCamera creates a camera at origin looking down +Z
func NewCamera(origin core.Vec3, fovAngle float64) *Camera {
	return &Camera{
		Origin:   origin,
		FOVAngle: fovAngle,
	}
}

// FOVScale returns tan(fov/2), the half-height of the image plane at distance 1
func (c *Camera) FOVScale() float64 {
	return math.Tan(mgl64.DegToRad(c.FOVAngle) / 2)
}

// rotation is yaw around world Y applied after pitch around the local X axis
func (c *Camera) rotation() mgl64.Mat4 {
	return mgl64.HomogRotate3DY(c.TotalYaw).Mul4(mgl64.HomogRotate3DX(c.TotalPitch))
}

// Forward returns the unit viewing direction
func (c *Camera) Forward() core.Vec3 {
	return core.TransformVector(c.rotation(), core.NewVec3(0, 0, 1))
}

// CameraToWorld builds the camera-to-world matrix.
// Columns are right, up, forward and the origin. Right stays horizontal for
// any pitch, so looking straight up or down is still well defined.
func (c *Camera) CameraToWorld() mgl64.Mat4 {
	return mgl64.Translate3D(c.Origin.X, c.Origin.Y, c.Origin.Z).Mul4(c.rotation())
}
