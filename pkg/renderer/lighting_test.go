package renderer

import (
	"math"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

func TestLightingMode_Next(t *testing.T) {
	want := []LightingMode{Radiance, BRDF, Combined, ObservedArea}

	mode := ObservedArea
	for i, expected := range want {
		mode = mode.Next()
		if mode != expected {
			t.Errorf("Step %d: expected %v, got %v", i+1, expected, mode)
		}
	}
}

func TestParseLightingMode(t *testing.T) {
	tests := []struct {
		input   string
		want    LightingMode
		wantErr bool
	}{
		{"observed-area", ObservedArea, false},
		{"Radiance", Radiance, false},
		{"BRDF", BRDF, false},
		{"combined", Combined, false},
		{"phong", ObservedArea, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLightingMode(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLightingMode(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseLightingMode(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestSeedColor(t *testing.T) {
	red := material.NewSolidColor(core.NewVec3(1, 0, 0))

	tests := []struct {
		mode LightingMode
		want core.Vec3
	}{
		{ObservedArea, core.White},
		{Radiance, core.NewVec3(1, 0, 0)},
		{BRDF, core.Vec3{}},
		{Combined, core.Vec3{}},
	}

	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			if got := seedColor(tt.mode, red); got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestShade(t *testing.T) {
	hit := core.HitRecord{
		DidHit: true,
		Origin: core.NewVec3(0, 0, 0),
		Normal: core.NewVec3(0, 1, 0),
	}
	// Radiance 2 at the hit: intensity 8 over distance squared 4
	light := lights.NewPointLight(core.NewVec3(0, 2, 0), 8, core.White)
	lambert := material.NewLambert(core.NewVec3(1, 1, 1), 1)

	sample := LightSample{
		Hit:      hit,
		Light:    light,
		LightDir: core.NewVec3(0, 1, 0),
		ViewDir:  core.NewVec3(0, 1, 0),
		Cos:      0.5,
		Material: lambert,
	}

	tests := []struct {
		name   string
		mode   LightingMode
		sample LightSample
		want   float64 // expected red channel
	}{
		{"observed area is the cosine", ObservedArea, sample, 0.5},
		{"radiance ignores the cosine", Radiance, sample, 2},
		{"brdf ignores radiance and cosine", BRDF, sample, 1 / math.Pi},
		{"combined is radiance times cosine", Combined, sample, 1},
		{"brdf is zero without a brdf material", BRDF, LightSample{Material: material.NewSolidColor(core.White)}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Shade(tt.mode, tt.sample)
			if math.Abs(got.X-tt.want) > 1e-9 {
				t.Errorf("Expected %f, got %f", tt.want, got.X)
			}
		})
	}
}
