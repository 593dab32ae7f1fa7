package scene

import (
	"fmt"
	"sort"
)

// DefaultMeshPath is the mesh used by the "mesh" scene when none is given
const DefaultMeshPath = "resources/pyramid.obj"

// Options tune how a named scene is built
type Options struct {
	MeshPath string  // Source file for the "mesh" scene
	Time     float64 // Seconds of animation applied to meshes; 0 keeps the rest pose
}

// SceneInfo describes a built-in scene
type SceneInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

var builtinScenes = map[string]SceneInfo{
	"unit-sphere": {Name: "unit-sphere", Description: "Unit sphere under a directional light"},
	"spheres":     {Name: "spheres", Description: "Six spheres in a room with three point lights"},
	"triangles":   {Name: "triangles", Description: "One mesh per cull mode plus a floor triangle"},
	"mesh":        {Name: "mesh", Description: "A mesh loaded from a vertex/face file"},
}

// List returns the built-in scenes sorted by name
func List() []SceneInfo {
	scenes := make([]SceneInfo, 0, len(builtinScenes))
	for _, info := range builtinScenes {
		scenes = append(scenes, info)
	}
	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].Name < scenes[j].Name
	})
	return scenes
}

// Create builds a built-in scene by name
func Create(name string, opts Options) (*Scene, error) {
	var (
		s   *Scene
		err error
	)

	switch name {
	case "unit-sphere":
		s = NewUnitSphereScene()
	case "spheres":
		s = NewSpheresScene()
	case "triangles":
		s, err = NewTrianglesScene()
	case "mesh":
		meshPath := opts.MeshPath
		if meshPath == "" {
			meshPath = DefaultMeshPath
		}
		s, err = NewMeshScene(meshPath)
	default:
		return nil, fmt.Errorf("unknown scene %q", name)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create scene %q: %w", name, err)
	}

	if opts.Time != 0 {
		s.Update(opts.Time)
	}
	return s, nil
}

// Names returns the built-in scene names in sorted order
func Names() []string {
	scenes := List()
	names := make([]string, len(scenes))
	for i, info := range scenes {
		names[i] = info.Name
	}
	return names
}
