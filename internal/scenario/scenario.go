// Package scenario loads demo entity descriptions from TOML or YAML files.
package scenario

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"

	"github.com/plus3/bundlecs/ecs"
	"github.com/plus3/bundlecs/internal/demo"
)

var ErrUnsupportedFormat = eris.New("unsupported scenario format")

// File is the on-disk scenario layout.
//
//	[[entity]]
//	position = { x = 3, y = 4 }
//
//	[[entity]]
//	name = "Label"
type File struct {
	Entities []EntitySpec `toml:"entity" yaml:"entities"`
}

// EntitySpec describes one entity. Omitted components are absent.
type EntitySpec struct {
	Position *PositionSpec `toml:"position" yaml:"position"`
	Name     *string       `toml:"name" yaml:"name"`
}

type PositionSpec struct {
	X int `toml:"x" yaml:"x"`
	Y int `toml:"y" yaml:"y"`
}

// Load reads a scenario; the format is chosen by extension
// (.toml, .yaml or .yml).
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "read scenario %s", path)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		return ParseTOML(data)
	case ".yaml", ".yml":
		return ParseYAML(data)
	default:
		return nil, eris.Wrapf(ErrUnsupportedFormat, "extension %q", ext)
	}
}

// ParseTOML decodes a TOML scenario.
func ParseTOML(data []byte) (*File, error) {
	var f File
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, eris.Wrap(err, "parse toml scenario")
	}
	return &f, nil
}

// ParseYAML decodes a YAML scenario.
func ParseYAML(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, eris.Wrap(err, "parse yaml scenario")
	}
	return &f, nil
}

// Bundle builds the demo bundle described by spec.
func (spec EntitySpec) Bundle() demo.Bundle {
	bundle := demo.NewBundle()
	if spec.Position != nil {
		bundle = bundle.WithPosition(demo.Position{X: spec.Position.X, Y: spec.Position.Y})
	}
	if spec.Name != nil {
		bundle = bundle.WithName(demo.Name(*spec.Name))
	}
	return bundle
}

// Spawn spawns every entity of the scenario, in file order, and returns their ids.
func (f *File) Spawn(world *ecs.World[demo.Bundle]) []ecs.EntityId {
	ids := make([]ecs.EntityId, 0, len(f.Entities))
	for _, spec := range f.Entities {
		ids = append(ids, world.SpawnBundle(spec.Bundle()))
	}
	return ids
}
