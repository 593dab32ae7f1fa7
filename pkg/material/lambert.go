package material

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Lambert is a perfectly diffuse material
type Lambert struct {
	DiffuseColor       core.Vec3
	DiffuseReflectance float64 // kd in [0,1]
}

// NewLambert creates a lambertian material
func NewLambert(diffuseColor core.Vec3, diffuseReflectance float64) *Lambert {
	return &Lambert{DiffuseColor: diffuseColor, DiffuseReflectance: diffuseReflectance}
}

// Shade returns the diffuse albedo
func (l *Lambert) Shade() core.Vec3 {
	return l.DiffuseColor.Multiply(l.DiffuseReflectance)
}

// ShadeBRDF returns kd·cd/π, independent of direction
func (l *Lambert) ShadeBRDF(hit core.HitRecord, lightDir, viewDir core.Vec3) core.Vec3 {
	return l.DiffuseColor.Multiply(l.DiffuseReflectance / math.Pi)
}

// LambertPhong adds a Phong specular lobe to a lambertian base
type LambertPhong struct {
	Lambert
	SpecularReflectance float64 // ks
	PhongExponent       float64
}

// NewLambertPhong creates a lambert material with a phong highlight.
// kd and ks should sum to at most 1.
func NewLambertPhong(diffuseColor core.Vec3, kd, ks, exponent float64) *LambertPhong {
	return &LambertPhong{
		Lambert:             Lambert{DiffuseColor: diffuseColor, DiffuseReflectance: kd},
		SpecularReflectance: ks,
		PhongExponent:       exponent,
	}
}

// ShadeBRDF adds ks·cos(α)^exp, α being the angle between the mirrored light and the view
func (p *LambertPhong) ShadeBRDF(hit core.HitRecord, lightDir, viewDir core.Vec3) core.Vec3 {
	diffuse := p.Lambert.ShadeBRDF(hit, lightDir, viewDir)

	reflected := hit.Normal.Multiply(2 * hit.Normal.Dot(lightDir)).Subtract(lightDir)
	cosAlpha := reflected.Dot(viewDir)
	if cosAlpha <= 0 {
		return diffuse
	}

	specular := p.SpecularReflectance * math.Pow(cosAlpha, p.PhongExponent)
	return diffuse.Add(core.NewVec3(specular, specular, specular))
}
