package cardkit

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Occasion classifies templates and themes by the event they are for.
type Occasion string

const (
	OccasionChristmas    Occasion = "christmas"
	OccasionHanukkah     Occasion = "hanukkah"
	OccasionBirthday     Occasion = "birthday"
	OccasionGeneric      Occasion = "generic"
	OccasionNewYear      Occasion = "new_year"
	OccasionThanksgiving Occasion = "thanksgiving"
)

// ErrThemeNotFound is returned when no theme with the requested ID exists.
var ErrThemeNotFound = errors.New("cardkit: theme not found")

// Theme is a coordinated color set for card styling.
type Theme struct {
	ID          string   `yaml:"id"`
	Name        string   `yaml:"name"`
	Occasion    Occasion `yaml:"occasion"`
	Primary     Color    `yaml:"primary"`
	Secondary   Color    `yaml:"secondary"`
	Background  Color    `yaml:"background"`
	Text        Color    `yaml:"text"`
	Accent      *Color   `yaml:"accent"`
	Description string   `yaml:"description"`
}

// themeFile is a YAML theme file: either a single theme document or a
// "themes:" list of them.
type themeFile struct {
	Themes []themeDoc `yaml:"themes"`
	themeDoc
}

type themeDoc struct {
	ID          string   `yaml:"id"`
	Name        string   `yaml:"name"`
	Occasion    Occasion `yaml:"occasion"`
	Primary     *Color   `yaml:"primary"`
	Secondary   *Color   `yaml:"secondary"`
	Background  *Color   `yaml:"background"`
	Text        *Color   `yaml:"text"`
	Accent      *Color   `yaml:"accent"`
	Description string   `yaml:"description"`
}

func (d themeDoc) toTheme() Theme {
	t := Theme{
		ID:          d.ID,
		Name:        d.Name,
		Occasion:    d.Occasion,
		Background:  White,
		Text:        Black,
		Accent:      d.Accent,
		Description: d.Description,
	}
	if t.Occasion == "" {
		t.Occasion = OccasionGeneric
	}
	if d.Primary != nil {
		t.Primary = *d.Primary
	}
	if d.Secondary != nil {
		t.Secondary = *d.Secondary
	}
	if d.Background != nil {
		t.Background = *d.Background
	}
	if d.Text != nil {
		t.Text = *d.Text
	}
	return t
}

// ThemesDir returns the theme search directory: the CARDKIT_THEMES
// environment variable when set, otherwise "themes" under the working
// directory.
func ThemesDir() string {
	if dir := os.Getenv("CARDKIT_THEMES"); dir != "" {
		return dir
	}
	return "themes"
}

// DiscoverThemes lists every theme found in dir's YAML files. Invalid files
// are skipped with a warning rather than failing the scan. An empty dir
// argument uses ThemesDir.
func DiscoverThemes(dir string) ([]Theme, error) {
	if dir == "" {
		dir = ThemesDir()
	}
	paths, err := filepath.Glob(filepath.Join(dir, "*.yaml"))
	if err != nil {
		return nil, err
	}
	var themes []Theme
	for _, path := range paths {
		docs, err := readThemeFile(path)
		if err != nil {
			Logger().Warn("skipping invalid theme file", "path", path, "err", err)
			continue
		}
		themes = append(themes, docs...)
	}
	return themes, nil
}

// LoadTheme loads a theme by ID from dir. An empty dir argument uses
// ThemesDir.
func LoadTheme(id, dir string) (Theme, error) {
	if dir == "" {
		dir = ThemesDir()
	}
	paths, err := filepath.Glob(filepath.Join(dir, "*.yaml"))
	if err != nil {
		return Theme{}, err
	}
	for _, path := range paths {
		docs, err := readThemeFile(path)
		if err != nil {
			Logger().Debug("skipping theme file during search", "path", path, "err", err)
			continue
		}
		for _, t := range docs {
			if t.ID == id {
				return t, nil
			}
		}
	}
	for _, t := range BuiltinThemes() {
		if t.ID == id {
			return t, nil
		}
	}
	return Theme{}, fmt.Errorf("%w: %s", ErrThemeNotFound, id)
}

func readThemeFile(path string) ([]Theme, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var file themeFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, err
	}
	docs := file.Themes
	if len(docs) == 0 {
		if file.ID == "" {
			return nil, fmt.Errorf("no themes in %s", filepath.Base(path))
		}
		docs = []themeDoc{file.themeDoc}
	}
	themes := make([]Theme, 0, len(docs))
	for _, d := range docs {
		if d.ID == "" {
			return nil, fmt.Errorf("theme missing id in %s", filepath.Base(path))
		}
		themes = append(themes, d.toTheme())
	}
	return themes, nil
}

// BuiltinThemes returns the themes shipped with the library, usable without
// any theme files on disk.
func BuiltinThemes() []Theme {
	return []Theme{
		{
			ID:          "christmas-red-green",
			Name:        "Classic Christmas",
			Occasion:    OccasionChristmas,
			Primary:     Red,
			Secondary:   Green,
			Background:  White,
			Text:        Black,
			Accent:      &Gold,
			Description: "Traditional red and green with gold accents",
		},
		{
			ID:          "winter-blue-silver",
			Name:        "Winter Frost",
			Occasion:    OccasionGeneric,
			Primary:     Blue,
			Secondary:   Silver,
			Background:  White,
			Text:        Color{R: 0.1, G: 0.1, B: 0.3},
			Description: "Cool blues and silver for a wintry look",
		},
		{
			ID:          "birthday-bright",
			Name:        "Birthday Brights",
			Occasion:    OccasionBirthday,
			Primary:     Color{R: 0.95, G: 0.4, B: 0.1},
			Secondary:   Color{R: 0.2, G: 0.6, B: 0.9},
			Background:  White,
			Text:        Black,
			Description: "Bold festive colors for birthdays",
		},
	}
}
