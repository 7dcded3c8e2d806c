// Package decor manages reusable decorative composites: named arrangements
// of basic shapes (trees, ornaments, gift boxes) that cards reference by
// name and customize with position, scale, rotation, and color palettes.
//
// A Library holds composite definitions. It starts with the builtin set and
// can load more from YAML files. Libraries are explicit values handed to the
// renderer, not process globals, so tests and callers can run different
// libraries side by side.
package decor

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/printfold/cardkit"
)

// ShapeDef is one child shape inside a composite definition, in the same
// field layout the scene format uses. Coordinates are in inches relative to
// the composite's own origin, before instance scaling. Color fields may hold
// a "{role}" placeholder to be resolved from the palette.
type ShapeDef struct {
	Type string `yaml:"type"`

	FillColor   string   `yaml:"fill_color"`
	StrokeColor string   `yaml:"stroke_color"`
	StrokeWidth float64  `yaml:"stroke_width"`
	Opacity     *float64 `yaml:"opacity"`
	Rotation    float64  `yaml:"rotation"`
	ZIndex      *int     `yaml:"z_index"`

	// rectangle
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`

	// circle, star
	CenterX     float64 `yaml:"center_x"`
	CenterY     float64 `yaml:"center_y"`
	Radius      float64 `yaml:"radius"`
	OuterRadius float64 `yaml:"outer_radius"`
	InnerRadius float64 `yaml:"inner_radius"`
	Points      int     `yaml:"points"`

	// triangle
	X1 float64 `yaml:"x1"`
	Y1 float64 `yaml:"y1"`
	X2 float64 `yaml:"x2"`
	Y2 float64 `yaml:"y2"`
	X3 float64 `yaml:"x3"`
	Y3 float64 `yaml:"y3"`

	// line
	StartX float64 `yaml:"start_x"`
	StartY float64 `yaml:"start_y"`
	EndX   float64 `yaml:"end_x"`
	EndY   float64 `yaml:"end_y"`
}

// Definition is one named composite: its natural size, default color roles,
// and ordered child shapes.
type Definition struct {
	Name          string            `yaml:"name"`
	Description   string            `yaml:"description"`
	DefaultWidth  float64           `yaml:"default_width"`
	DefaultHeight float64           `yaml:"default_height"`
	ColorRoles    map[string]string `yaml:"color_roles"`
	Shapes        []ShapeDef        `yaml:"shapes"`
}

// Library is a set of composite definitions keyed by name.
type Library struct {
	defs map[string]Definition
}

// NewLibrary returns a library preloaded with the builtin composites.
func NewLibrary() *Library {
	lib := &Library{defs: make(map[string]Definition)}
	for _, def := range builtinDefinitions() {
		lib.defs[def.Name] = def
	}
	return lib
}

// LibraryDir returns the composite search directory: the CARDKIT_DECOR_PATH
// environment variable when set, otherwise "decorative_elements" under the
// working directory.
func LibraryDir() string {
	if dir := os.Getenv("CARDKIT_DECOR_PATH"); dir != "" {
		return dir
	}
	return "decorative_elements"
}

// Load reads every YAML definition under dir, recursively, into the
// library. Files that fail to parse are skipped with a warning. Definitions
// replace builtins of the same name. An empty dir argument uses LibraryDir.
func (l *Library) Load(dir string) error {
	if dir == "" {
		dir = LibraryDir()
	}
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return nil
	}
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".yaml") {
			return nil
		}
		def, err := readDefinition(path)
		if err != nil {
			cardkit.Logger().Warn("skipping decorative element file", "path", path, "err", err)
			return nil
		}
		l.defs[def.Name] = def
		return nil
	})
}

// Register adds or replaces a definition.
func (l *Library) Register(def Definition) error {
	if def.Name == "" {
		return fmt.Errorf("decor: definition has no name")
	}
	l.defs[def.Name] = def
	return nil
}

// Definition returns the named composite. The error lists the available
// names to make scene typos easy to spot.
func (l *Library) Definition(name string) (Definition, error) {
	def, ok := l.defs[name]
	if !ok {
		return Definition{}, fmt.Errorf("decor: element %q not found, available: %s",
			name, strings.Join(l.Names(), ", "))
	}
	return def, nil
}

// Names returns the defined composite names in sorted order.
func (l *Library) Names() []string {
	names := make([]string, 0, len(l.defs))
	for name := range l.defs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func readDefinition(path string) (Definition, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Definition{}, err
	}
	var def Definition
	if err := yaml.Unmarshal(raw, &def); err != nil {
		return Definition{}, err
	}
	if def.Name == "" {
		return Definition{}, fmt.Errorf("definition in %s has no name", filepath.Base(path))
	}
	return def, nil
}
