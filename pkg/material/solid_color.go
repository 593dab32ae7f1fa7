package material

import "github.com/df07/go-whitted-raytracer/pkg/core"

// SolidColor shades every hit with one colour and has no BRDF
type SolidColor struct {
	Color core.Vec3
}

// NewSolidColor creates a solid colour material
func NewSolidColor(color core.Vec3) *SolidColor {
	return &SolidColor{Color: color}
}

// Shade returns the colour
func (s *SolidColor) Shade() core.Vec3 {
	return s.Color
}
