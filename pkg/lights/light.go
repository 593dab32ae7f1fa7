package lights

import (
	"fmt"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// LightType identifies how a light falls off with distance
type LightType int

const (
	// Point lights radiate from Origin with inverse-square falloff
	Point LightType = iota
	// Directional lights shine along Direction with constant radiance
	Directional
)

func (t LightType) String() string {
	switch t {
	case Point:
		return "point"
	case Directional:
		return "directional"
	default:
		return fmt.Sprintf("LightType(%d)", int(t))
	}
}

// DirectionalLightDistance stands in for "infinitely far" when building
// shadow rays toward a directional light
const DirectionalLightDistance = 1e6

// ShadowBias offsets shadow rays off the surface and trims both ends of their interval
const ShadowBias = 1e-4

// Light is a point or directional light owned by the scene
type Light struct {
	Type      LightType
	Origin    core.Vec3 // Position of a point light
	Direction core.Vec3 // Unit direction a directional light shines along
	Color     core.Vec3
	Intensity float64
}

// NewPointLight creates a point light
func NewPointLight(origin core.Vec3, intensity float64, color core.Vec3) Light {
	return Light{Type: Point, Origin: origin, Color: color, Intensity: intensity}
}

// NewDirectionalLight creates a directional light shining along direction
func NewDirectionalLight(direction core.Vec3, intensity float64, color core.Vec3) Light {
	return Light{Type: Directional, Direction: direction.Normalize(), Color: color, Intensity: intensity}
}

// DirectionToLight returns the unnormalised vector from point to the light.
// Directional lights are placed DirectionalLightDistance away, against their direction.
func DirectionToLight(light Light, point core.Vec3) core.Vec3 {
	if light.Type == Directional {
		return light.Direction.Negate().Multiply(DirectionalLightDistance)
	}
	return light.Origin.Subtract(point)
}

// Radiance returns the light arriving at point, ignoring occlusion
func Radiance(light Light, point core.Vec3) core.Vec3 {
	switch light.Type {
	case Point:
		return light.Color.Multiply(light.Intensity / light.Origin.Subtract(point).LengthSquared())
	case Directional:
		return light.Color.Multiply(light.Intensity)
	default:
		return core.Vec3{}
	}
}

// ShadowRay builds the occlusion ray from a hit toward the light.
// The origin is pushed off the surface along the normal and the interval
// stops short of the light so neither end can self-intersect.
func ShadowRay(light Light, hit core.HitRecord) core.Ray {
	toLight := DirectionToLight(light, hit.Origin)
	distance := toLight.Length()

	return core.NewRayInterval(
		hit.Origin.Add(hit.Normal.Multiply(ShadowBias)),
		toLight.Multiply(1/distance),
		ShadowBias,
		distance-ShadowBias,
	)
}
