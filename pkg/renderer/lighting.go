package renderer

import (
	"fmt"
	"strings"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// LightingMode selects which term of the lighting equation is visualised
type LightingMode int

const (
	ObservedArea LightingMode = iota // Lambert cosine only
	Radiance                         // Incoming light only
	BRDF                             // Material reflectance only
	Combined                         // Radiance times the cosine term

	numLightingModes = 4
)

func (m LightingMode) String() string {
	switch m {
	case ObservedArea:
		return "observed-area"
	case Radiance:
		return "radiance"
	case BRDF:
		return "brdf"
	case Combined:
		return "combined"
	default:
		return fmt.Sprintf("LightingMode(%d)", int(m))
	}
}

// Next returns the following mode, wrapping from Combined back to ObservedArea
func (m LightingMode) Next() LightingMode {
	return LightingMode((int(m) + 1) % numLightingModes)
}

// ParseLightingMode accepts the names produced by String, case-insensitively
func ParseLightingMode(s string) (LightingMode, error) {
	for m := ObservedArea; m < numLightingModes; m++ {
		if strings.EqualFold(s, m.String()) {
			return m, nil
		}
	}
	return ObservedArea, fmt.Errorf("unknown lighting mode %q", s)
}

// skipsBackLights reports whether lights behind the surface are ignored entirely
func (m LightingMode) skipsBackLights() bool {
	return m == ObservedArea || m == Combined
}

// seedColor is the colour a hit starts from before any light is added
func seedColor(mode LightingMode, mat material.Material) core.Vec3 {
	switch mode {
	case ObservedArea:
		return core.White
	case Radiance:
		if mat == nil {
			return core.Vec3{}
		}
		return mat.Shade()
	default:
		return core.Vec3{}
	}
}

// LightSample carries what each mode needs to shade one light at one hit
type LightSample struct {
	Hit      core.HitRecord
	Light    lights.Light
	LightDir core.Vec3 // unit vector from the hit toward the light
	ViewDir  core.Vec3 // unit vector from the hit toward the viewer
	Cos      float64   // LightDir · Hit.Normal
	Material material.Material
}

// shadeObservedArea is the cosine term in white
func shadeObservedArea(s LightSample) core.Vec3 {
	return core.White.Multiply(s.Cos)
}

// shadeRadiance is the light's radiance at the hit
func shadeRadiance(s LightSample) core.Vec3 {
	return lights.Radiance(s.Light, s.Hit.Origin)
}

// shadeBRDF evaluates the material reflectance alone, zero for materials
// without one. It is not weighted by radiance or the cosine term, so the
// frame shows the reflectance itself; Combined is the weighted view. Lights
// behind the surface are still shadow-tested since only ObservedArea and
// Combined skip them.
func shadeBRDF(s LightSample) core.Vec3 {
	brdf, ok := s.Material.(material.BRDF)
	if !ok {
		return core.Vec3{}
	}
	return brdf.ShadeBRDF(s.Hit, s.LightDir, s.ViewDir)
}

// shadeCombined is radiance scaled by the cosine term
func shadeCombined(s LightSample) core.Vec3 {
	return lights.Radiance(s.Light, s.Hit.Origin).Multiply(s.Cos)
}

// Shade returns the contribution of one light under the given mode
func Shade(mode LightingMode, s LightSample) core.Vec3 {
	switch mode {
	case ObservedArea:
		return shadeObservedArea(s)
	case Radiance:
		return shadeRadiance(s)
	case BRDF:
		return shadeBRDF(s)
	case Combined:
		return shadeCombined(s)
	default:
		return core.Vec3{}
	}
}
