// Package config persists text-layer editor defaults between sessions.
//
// The on-disk format is a single JSON file holding the session defaults
// (alignment, font scale bounds, background mode, styles) plus the color
// palette offered by the picker. A missing file is not an error; it loads
// as the built-in defaults.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"

	"github.com/calder/textlayer/internal/color"
	"github.com/calder/textlayer/internal/colormode"
	"github.com/calder/textlayer/internal/session"
	"github.com/calder/textlayer/internal/style"
)

// ErrInvalidFormat is returned when the settings file is not valid JSON.
var ErrInvalidFormat = errors.New("config: invalid settings format")

// Settings bundles everything the editor persists.
type Settings struct {
	// Session holds the defaults used to start new editing sessions.
	Session session.Config

	// Palette is the color list offered by the picker.
	Palette []color.Color
}

// Default returns the built-in settings.
func Default() Settings {
	return Settings{
		Session: session.DefaultConfig(),
		Palette: DefaultPalette(),
	}
}

// DefaultPalette returns the built-in picker colors.
func DefaultPalette() []color.Color {
	return []color.Color{
		color.White,
		color.Black,
		color.FromRGB(255, 59, 48),  // red
		color.FromRGB(255, 204, 0),  // yellow
		color.FromRGB(52, 199, 89),  // green
		color.FromRGB(0, 122, 255),  // blue
		color.FromRGB(175, 82, 222), // purple
	}
}

// Load reads settings from path. A missing file returns the defaults with
// no error, matching how the editor behaves on first run.
func Load(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return Settings{}, fmt.Errorf("config: reading %s: %w", path, err)
	}
	return LoadBytes(data)
}

// LoadBytes parses settings from raw JSON. Absent fields keep their
// default values, so partial files are fine.
func LoadBytes(data []byte) (Settings, error) {
	if !gjson.ValidBytes(data) {
		return Settings{}, ErrInvalidFormat
	}

	s := Default()

	if v := gjson.GetBytes(data, "alignment"); v.Exists() {
		s.Session.InitialAlignment = parseAlignment(v.String())
	}
	if v := gjson.GetBytes(data, "background_mode"); v.Exists() {
		s.Session.InitialBackgroundMode = parseMode(v.String())
	}
	if v := gjson.GetBytes(data, "font.init_scale"); v.Exists() {
		s.Session.InitFontScale = v.Float()
	}
	if v := gjson.GetBytes(data, "font.min_scale"); v.Exists() {
		s.Session.MinFontScale = v.Float()
	}
	if v := gjson.GetBytes(data, "font.max_scale"); v.Exists() {
		s.Session.MaxFontScale = v.Float()
	}
	if v := gjson.GetBytes(data, "font.base_size"); v.Exists() {
		s.Session.InitFontSize = v.Float()
	}
	if v := gjson.GetBytes(data, "controls.alignment"); v.Exists() {
		s.Session.CanToggleAlignment = v.Bool()
	}
	if v := gjson.GetBytes(data, "controls.font_scale"); v.Exists() {
		s.Session.CanChangeFontScale = v.Bool()
	}
	if v := gjson.GetBytes(data, "controls.background_mode"); v.Exists() {
		s.Session.CanToggleBackgroundMode = v.Bool()
	}

	if v := gjson.GetBytes(data, "styles"); v.IsArray() {
		var styles style.List
		v.ForEach(func(_, entry gjson.Result) bool {
			styles = append(styles, style.Style{
				Name:       entry.Get("name").String(),
				Attributes: style.Attribute(entry.Get("attributes").Uint()),
			})
			return true
		})
		if len(styles) > 0 {
			s.Session.AvailableStyles = styles
		}
	}

	if v := gjson.GetBytes(data, "palette"); v.IsArray() {
		var palette []color.Color
		var bad error
		v.ForEach(func(_, entry gjson.Result) bool {
			c, err := color.FromHex(entry.String())
			if err != nil {
				bad = err
				return false
			}
			palette = append(palette, c)
			return true
		})
		if bad != nil {
			return Settings{}, fmt.Errorf("config: palette: %w", bad)
		}
		if len(palette) > 0 {
			s.Palette = palette
		}
	}

	return s, nil
}

// Save writes settings to path as formatted JSON.
func Save(path string, s Settings) error {
	data, err := Marshal(s)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("config: writing %s: %w", path, err)
	}
	return nil
}

// Marshal renders settings as formatted JSON.
func Marshal(s Settings) ([]byte, error) {
	data := []byte("{}")
	var err error

	set := func(path string, value any) {
		if err != nil {
			return
		}
		data, err = sjson.SetBytes(data, path, value)
	}

	set("alignment", s.Session.InitialAlignment.String())
	set("background_mode", s.Session.InitialBackgroundMode.String())
	set("font.init_scale", s.Session.InitFontScale)
	set("font.min_scale", s.Session.MinFontScale)
	set("font.max_scale", s.Session.MaxFontScale)
	set("font.base_size", s.Session.InitFontSize)
	set("controls.alignment", s.Session.CanToggleAlignment)
	set("controls.font_scale", s.Session.CanChangeFontScale)
	set("controls.background_mode", s.Session.CanToggleBackgroundMode)

	for i, st := range s.Session.AvailableStyles {
		set(fmt.Sprintf("styles.%d.name", i), st.Name)
		set(fmt.Sprintf("styles.%d.attributes", i), uint64(st.Attributes))
	}
	for i, c := range s.Palette {
		set(fmt.Sprintf("palette.%d", i), c.Hex())
	}

	if err != nil {
		return nil, fmt.Errorf("config: encoding settings: %w", err)
	}
	return pretty.Pretty(data), nil
}

// parseAlignment maps a stored alignment name to its value. Unknown names
// fall back to the default alignment.
func parseAlignment(name string) session.Alignment {
	switch name {
	case "left":
		return session.AlignLeft
	case "center":
		return session.AlignCenter
	case "right":
		return session.AlignRight
	default:
		return session.DefaultConfig().InitialAlignment
	}
}

// parseMode maps a stored mode name to its value. Unknown names fall back
// to only-color.
func parseMode(name string) colormode.Mode {
	for _, m := range []colormode.Mode{
		colormode.OnlyColor,
		colormode.Background,
		colormode.BackgroundAndColor,
		colormode.BackgroundAndColorWithOpacity,
	} {
		if m.String() == name {
			return m
		}
	}
	return colormode.OnlyColor
}
