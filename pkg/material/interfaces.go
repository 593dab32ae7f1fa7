package material

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Material is the shading object a HitRecord's MaterialIndex points at
type Material interface {
	// Shade returns the material's base colour
	Shade() core.Vec3
}

// BRDF is implemented by materials that can evaluate reflectance for a
// light/view pair. lightDir points from the hit toward the light, viewDir
// from the hit toward the viewer; both are unit length.
type BRDF interface {
	ShadeBRDF(hit core.HitRecord, lightDir, viewDir core.Vec3) core.Vec3
}
