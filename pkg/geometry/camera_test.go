package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

func TestCamera_Forward(t *testing.T) {
	tests := []struct {
		name     string
		pitch    float64
		yaw      float64
		expected core.Vec3
	}{
		{"default looks down +Z", 0, 0, core.NewVec3(0, 0, 1)},
		{"quarter yaw looks down +X", 0, math.Pi / 2, core.NewVec3(1, 0, 0)},
		{"half yaw looks down -Z", 0, math.Pi, core.NewVec3(0, 0, -1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			camera := NewCamera(core.NewVec3(0, 0, 0), 45)
			camera.TotalPitch = tt.pitch
			camera.TotalYaw = tt.yaw

			forward := camera.Forward()
			if forward.Subtract(tt.expected).Length() > 1e-9 {
				t.Errorf("Expected forward %v, got %v", tt.expected, forward)
			}
		})
	}
}

func TestCamera_CameraToWorld(t *testing.T) {
	camera := NewCamera(core.NewVec3(1, 2, -5), 90)
	m := camera.CameraToWorld()

	// Axis-aligned camera: directions pass through unchanged
	for _, d := range []core.Vec3{core.NewVec3(1, 0, 0), core.NewVec3(0, 1, 0), core.NewVec3(0, 0, 1)} {
		got := core.TransformVector(m, d)
		if got.Subtract(d).Length() > 1e-12 {
			t.Errorf("Expected %v, got %v", d, got)
		}
	}

	// Points are offset by the origin
	if got := core.TransformPoint(m, core.NewVec3(0, 0, 0)); got != camera.Origin {
		t.Errorf("Expected origin %v, got %v", camera.Origin, got)
	}

	if math.Abs(camera.FOVScale()-1) > 1e-12 {
		t.Errorf("Expected tan(45°)=1, got %f", camera.FOVScale())
	}
}

func TestCamera_CameraToWorld_Yawed(t *testing.T) {
	camera := NewCamera(core.NewVec3(0, 0, 0), 60)
	camera.TotalYaw = math.Pi / 2

	m := camera.CameraToWorld()

	// Camera +Z maps to world +X, camera +X (right) maps to world -Z
	if got := core.TransformVector(m, core.NewVec3(0, 0, 1)); got.Subtract(core.NewVec3(1, 0, 0)).Length() > 1e-9 {
		t.Errorf("Expected forward (1,0,0), got %v", got)
	}
	if got := core.TransformVector(m, core.NewVec3(1, 0, 0)); got.Subtract(core.NewVec3(0, 0, -1)).Length() > 1e-9 {
		t.Errorf("Expected right (0,0,-1), got %v", got)
	}
}

func TestCamera_CameraToWorld_Vertical(t *testing.T) {
	tests := []struct {
		name    string
		pitch   float64
		forward core.Vec3
	}{
		{"straight down", math.Pi / 2, core.NewVec3(0, -1, 0)},
		{"straight up", -math.Pi / 2, core.NewVec3(0, 1, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			camera := NewCamera(core.NewVec3(0, 3, 0), 45)
			camera.TotalPitch = tt.pitch
			camera.TotalYaw = 0.3

			m := camera.CameraToWorld()
			forward := core.TransformVector(m, core.NewVec3(0, 0, 1))
			right := core.TransformVector(m, core.NewVec3(1, 0, 0))
			up := core.TransformVector(m, core.NewVec3(0, 1, 0))

			for _, v := range []core.Vec3{forward, right, up} {
				if !v.IsFinite() || math.Abs(v.Length()-1) > 1e-9 {
					t.Fatalf("Expected finite unit basis, got forward %v right %v up %v", forward, right, up)
				}
			}
			if forward.Subtract(tt.forward).Length() > 1e-9 {
				t.Errorf("Expected forward %v, got %v", tt.forward, forward)
			}
			if math.Abs(right.Y) > 1e-12 {
				t.Errorf("Expected a horizontal right vector, got %v", right)
			}
			if math.Abs(right.Dot(forward)) > 1e-9 || math.Abs(up.Dot(forward)) > 1e-9 {
				t.Errorf("Expected an orthogonal basis, got forward %v right %v up %v", forward, right, up)
			}
			if got := core.TransformPoint(m, core.NewVec3(0, 0, 0)); got.Subtract(camera.Origin).Length() > 1e-12 {
				t.Errorf("Expected origin %v, got %v", camera.Origin, got)
			}
		})
	}
}
