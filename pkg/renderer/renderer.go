package renderer

import (
	"image"
	"image/color"
	"math"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// ShadowFactor scales the accumulated colour each time a light is occluded
const ShadowFactor = 0.5

// Scene is the world the renderer queries
type Scene interface {
	GetCamera() *geometry.Camera
	GetMaterials() []material.Material
	GetLights() []lights.Light
	GetClosestHit(ray core.Ray) core.HitRecord
	DoesHit(ray core.Ray) bool
}

// Config holds the per-frame render settings
type Config struct {
	Width   int
	Height  int
	Mode    LightingMode
	Shadows bool
}

// DefaultConfig returns sensible default render settings
func DefaultConfig() Config {
	return Config{
		Width:   640,
		Height:  480,
		Mode:    Combined,
		Shadows: true,
	}
}

// FrameStats counts the work done for a frame or part of one
type FrameStats struct {
	Pixels     int
	Hits       int
	ShadowRays int
	Occluded   int
}

// Renderer turns a scene into an RGBA frame, one primary ray per pixel,
// scanning rows top to bottom on the calling goroutine
type Renderer struct {
	scene  Scene
	config Config
}

// NewRenderer creates a renderer for the scene
func NewRenderer(scene Scene, config Config) *Renderer {
	return &Renderer{scene: scene, config: config}
}

// Config returns the current settings
func (r *Renderer) Config() Config {
	return r.config
}

// ToggleShadows flips shadow testing and returns the new state
func (r *Renderer) ToggleShadows() bool {
	r.config.Shadows = !r.config.Shadows
	return r.config.Shadows
}

// CycleLightingMode advances to the next lighting mode and returns it
func (r *Renderer) CycleLightingMode() LightingMode {
	r.config.Mode = r.config.Mode.Next()
	return r.config.Mode
}

// Render draws one full frame. Settings are captured at the start of the frame.
func (r *Renderer) Render() (*image.RGBA, FrameStats) {
	start := time.Now()
	config := r.config
	img := image.NewRGBA(image.Rect(0, 0, config.Width, config.Height))

	stats := r.renderBounds(img.Bounds(), img, config)

	core.Logger().Debug("frame rendered",
		"width", config.Width,
		"height", config.Height,
		"mode", config.Mode.String(),
		"shadows", config.Shadows,
		"hits", stats.Hits,
		"occluded", stats.Occluded,
		"elapsed", time.Since(start))

	return img, stats
}

// renderBounds renders the pixels inside bounds into img
func (r *Renderer) renderBounds(bounds image.Rectangle, img *image.RGBA, config Config) FrameStats {
	camera := r.scene.GetCamera()
	cameraToWorld := camera.CameraToWorld()
	fov := camera.FOVScale()
	aspect := float64(config.Width) / float64(config.Height)

	var stats FrameStats
	for py := bounds.Min.Y; py < bounds.Max.Y; py++ {
		for px := bounds.Min.X; px < bounds.Max.X; px++ {
			x := (2*(float64(px)+0.5)/float64(config.Width) - 1) * aspect * fov
			y := (1 - 2*(float64(py)+0.5)/float64(config.Height)) * fov
			direction := core.TransformVector(cameraToWorld, core.NewVec3(x, y, 1)).Normalize()

			c := r.shadePixel(core.NewRay(camera.Origin, direction), config, &stats)
			img.SetRGBA(px, py, toRGBA(c))
			stats.Pixels++
		}
	}
	return stats
}

// shadePixel traces one primary ray and accumulates every light's contribution
func (r *Renderer) shadePixel(ray core.Ray, config Config, stats *FrameStats) core.Vec3 {
	hit := r.scene.GetClosestHit(ray)
	if !hit.DidHit {
		return core.Vec3{}
	}
	stats.Hits++

	var mat material.Material
	if materials := r.scene.GetMaterials(); hit.MaterialIndex >= 0 && hit.MaterialIndex < len(materials) {
		mat = materials[hit.MaterialIndex]
	}

	finalColor := seedColor(config.Mode, mat)
	viewDir := ray.Direction.Negate()

	for _, light := range r.scene.GetLights() {
		lightDir := lights.DirectionToLight(light, hit.Origin).Normalize()
		cos := lightDir.Dot(hit.Normal)
		if config.Mode.skipsBackLights() && cos <= 0 {
			continue
		}

		finalColor = finalColor.Add(Shade(config.Mode, LightSample{
			Hit:      hit,
			Light:    light,
			LightDir: lightDir,
			ViewDir:  viewDir,
			Cos:      cos,
			Material: mat,
		}))

		if config.Shadows {
			stats.ShadowRays++
			if r.scene.DoesHit(lights.ShadowRay(light, hit)) {
				stats.Occluded++
				finalColor = finalColor.Multiply(ShadowFactor)
			}
		}
	}

	return finalColor.MaxToOne()
}

// toRGBA converts a colour in [0,1] to an opaque 8-bit pixel
func toRGBA(c core.Vec3) color.RGBA {
	return color.RGBA{
		R: toByte(c.X),
		G: toByte(c.Y),
		B: toByte(c.Z),
		A: 255,
	}
}

func toByte(v float64) uint8 {
	if !(v > 0) { // also catches NaN
		return 0
	}
	return uint8(math.Min(v, 1) * 255)
}
