// Package level loads yaml level documents: the solid geometry, the player
// spawn, and the parallax background layers.
package level

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/pthm-cable/substep/components"
)

//go:embed default.yaml
var defaultLevelYAML []byte

// Level is a parsed level document.
type Level struct {
	Name     string      `yaml:"name"`
	Player   PlayerSpawn `yaml:"player"`
	Solids   []SolidDef  `yaml:"solids"`
	Parallax []LayerDef  `yaml:"parallax"`
}

// PlayerSpawn is the player actor's starting position.
type PlayerSpawn struct {
	X float32 `yaml:"x"`
	Y float32 `yaml:"y"`
}

// SolidDef places one static collision box, given by center and half-extents.
type SolidDef struct {
	X     float32 `yaml:"x"`
	Y     float32 `yaml:"y"`
	HalfW float32 `yaml:"half_w"`
	HalfH float32 `yaml:"half_h"`
}

// Collider builds the solid's collider. Half-extents were validated at load.
func (s SolidDef) Collider() components.Collider {
	return components.Collider{HalfW: s.HalfW, HalfH: s.HalfH}
}

// LayerDef is one parallax background band.
type LayerDef struct {
	Factor float32 `yaml:"factor"` // camera travel multiplier, 0 = static
	Y      float32 `yaml:"y"`      // band top in world units
	Height float32 `yaml:"height"`
	Color  RGB     `yaml:"color"`
}

// RGB is a color parsed from a "#rrggbb" yaml string.
type RGB struct {
	R, G, B uint8
}

// UnmarshalYAML parses the "#rrggbb" form.
func (c *RGB) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	if len(s) != 7 || s[0] != '#' {
		return fmt.Errorf("color must be #rrggbb, got %q", s)
	}
	var r, g, b uint8
	if _, err := fmt.Sscanf(s[1:], "%02x%02x%02x", &r, &g, &b); err != nil {
		return fmt.Errorf("parsing color %q: %w", s, err)
	}
	c.R, c.G, c.B = r, g, b
	return nil
}

// Load reads and validates a level file. An empty path loads the embedded
// default level.
func Load(path string) (*Level, error) {
	data := defaultLevelYAML
	if path != "" {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading level file: %w", err)
		}
	}

	var lvl Level
	if err := yaml.Unmarshal(data, &lvl); err != nil {
		return nil, fmt.Errorf("parsing level: %w", err)
	}
	if err := lvl.validate(); err != nil {
		return nil, err
	}
	return &lvl, nil
}

// validate rejects geometry the sweep assumes is well-formed.
func (l *Level) validate() error {
	for i, s := range l.Solids {
		if _, err := components.NewCollider(0, 0, s.HalfW, s.HalfH); err != nil {
			return fmt.Errorf("solid %d: %w", i, err)
		}
	}
	for i, layer := range l.Parallax {
		if layer.Factor < 0 {
			return fmt.Errorf("parallax layer %d: factor must be non-negative, got %g", i, layer.Factor)
		}
	}
	return nil
}
