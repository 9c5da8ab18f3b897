package scene

import (
	"fmt"
	"sort"
)

// SceneInfo describes a built-in scene
type SceneInfo struct {
	Name        string // Name passed to Create
	Description string
	Seeded      bool // Whether the seed changes the scene
}

type builder struct {
	info  SceneInfo
	build func(seed int64) (*Scene, error)
}

var builders = map[string]builder{
	"default": {
		info:  SceneInfo{Name: "default", Description: "Diffuse, metal and glass spheres incl. a hollow glass bubble"},
		build: func(int64) (*Scene, error) { return NewDefaultScene() },
	},
	"random": {
		info:  SceneInfo{Name: "random", Description: "Cover scene: three large spheres in a field of random small ones", Seeded: true},
		build: NewRandomScene,
	},
	"normals": {
		info:  SceneInfo{Name: "normals", Description: "Single sphere at (0, 0, -1) for normal shading"},
		build: func(int64) (*Scene, error) { return NewNormalsScene() },
	},
	"spheregrid": {
		info:  SceneInfo{Name: "spheregrid", Description: "20x20 grid of colored metal spheres"},
		build: func(int64) (*Scene, error) { return NewSphereGridScene(20) },
	},
}

// List returns every built-in scene sorted by name
func List() []SceneInfo {
	scenes := make([]SceneInfo, 0, len(builders))
	for _, b := range builders {
		scenes = append(scenes, b.info)
	}
	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].Name < scenes[j].Name
	})
	return scenes
}

// Create builds the named scene. The seed only affects seeded scenes.
func Create(name string, seed int64) (*Scene, error) {
	b, ok := builders[name]
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrUnknownScene)
	}
	return b.build(seed)
}
