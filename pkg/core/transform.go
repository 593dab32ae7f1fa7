package core

import "github.com/go-gl/mathgl/mgl64"

// TransformPoint applies m to a position (w = 1)
func TransformPoint(m mgl64.Mat4, p Vec3) Vec3 {
	return FromMgl(m.Mul4x1(p.ToMgl().Vec4(1)).Vec3())
}

// TransformVector applies m to a direction (w = 0), ignoring translation
func TransformVector(m mgl64.Mat4, v Vec3) Vec3 {
	return FromMgl(m.Mul4x1(v.ToMgl().Vec4(0)).Vec3())
}
