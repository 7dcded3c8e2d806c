package cardkit

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeThemeFile(t *testing.T, name, content string) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return dir
}

func TestLoadThemeFromFile(t *testing.T) {
	dir := writeThemeFile(t, "autumn.yaml", `
id: autumn-harvest
name: Autumn Harvest
occasion: thanksgiving
primary: "#b35a1f"
secondary: "#6b4226"
text: "#33261a"
`)
	theme, err := LoadTheme("autumn-harvest", dir)
	if err != nil {
		t.Fatal(err)
	}
	if theme.Name != "Autumn Harvest" || theme.Occasion != OccasionThanksgiving {
		t.Errorf("theme = %+v", theme)
	}
	if theme.Primary.Hex() != "#b35a1f" {
		t.Errorf("primary = %s", theme.Primary.Hex())
	}
	// Unset fields fall back to readable defaults.
	if theme.Background != White {
		t.Errorf("background = %v, want white", theme.Background)
	}
	if theme.Accent != nil {
		t.Errorf("accent = %v, want nil", theme.Accent)
	}
}

func TestLoadThemeFromList(t *testing.T) {
	dir := writeThemeFile(t, "pack.yaml", `
themes:
  - id: one
    name: One
    primary: "#101010"
  - id: two
    name: Two
    primary: "#202020"
`)
	theme, err := LoadTheme("two", dir)
	if err != nil {
		t.Fatal(err)
	}
	if theme.Name != "Two" || theme.Occasion != OccasionGeneric {
		t.Errorf("theme = %+v", theme)
	}
}

func TestLoadThemeFallsBackToBuiltins(t *testing.T) {
	theme, err := LoadTheme("christmas-red-green", t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if theme.Occasion != OccasionChristmas || theme.Accent == nil {
		t.Errorf("builtin theme = %+v", theme)
	}
}

func TestLoadThemeNotFound(t *testing.T) {
	_, err := LoadTheme("no-such-theme", t.TempDir())
	if !errors.Is(err, ErrThemeNotFound) {
		t.Errorf("err = %v, want ErrThemeNotFound", err)
	}
}

func TestDiscoverThemesSkipsInvalidFiles(t *testing.T) {
	dir := writeThemeFile(t, "good.yaml", "id: good\nname: Good\n")
	if err := os.WriteFile(filepath.Join(dir, "bad.yaml"), []byte("id: [broken"), 0o644); err != nil {
		t.Fatal(err)
	}
	themes, err := DiscoverThemes(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(themes) != 1 || themes[0].ID != "good" {
		t.Errorf("themes = %+v", themes)
	}
}

func TestBuiltinThemesAreWellFormed(t *testing.T) {
	seen := map[string]bool{}
	for _, theme := range BuiltinThemes() {
		if theme.ID == "" || theme.Name == "" {
			t.Errorf("theme missing id or name: %+v", theme)
		}
		if seen[theme.ID] {
			t.Errorf("duplicate theme id %s", theme.ID)
		}
		seen[theme.ID] = true
		for _, c := range []Color{theme.Primary, theme.Secondary, theme.Background, theme.Text} {
			if !c.Valid() {
				t.Errorf("theme %s has out-of-range color %v", theme.ID, c)
			}
		}
	}
}
