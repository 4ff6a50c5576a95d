package session

import (
	"github.com/calder/textlayer/internal/color"
	"github.com/calder/textlayer/internal/colormode"
	"github.com/calder/textlayer/internal/style"
)

// Config carries the host-supplied settings for a new session.
// The session trusts its collaborator: MinFontScale <= MaxFontScale is a
// precondition, not a runtime check.
type Config struct {
	// InitialAlignment is used when no seed layer is present.
	InitialAlignment Alignment

	// InitFontScale is the starting scale when no seed layer is present.
	InitFontScale float64

	// MinFontScale and MaxFontScale bound the scale adjustment control.
	MinFontScale float64
	MaxFontScale float64

	// InitialBackgroundMode is used when no seed layer is present.
	InitialBackgroundMode colormode.Mode

	// InitFontSize is the base font size in pixels at scale 1.0.
	InitFontSize float64

	// AvailableStyles is the list the style toggle cycles through.
	AvailableStyles style.List

	// Capability flags for the presentation layer. They control which
	// adjustment controls the host shows; the session itself does not
	// gate mutators on them.
	CanToggleAlignment      bool
	CanChangeFontScale      bool
	CanToggleBackgroundMode bool
}

// DefaultConfig returns the settings used when the host configures
// nothing.
func DefaultConfig() Config {
	return Config{
		InitialAlignment:        AlignCenter,
		InitFontScale:           1.0,
		MinFontScale:            0.5,
		MaxFontScale:            3.0,
		InitialBackgroundMode:   colormode.OnlyColor,
		InitFontSize:            24,
		AvailableStyles:         style.DefaultList(),
		CanToggleAlignment:      true,
		CanChangeFontScale:      true,
		CanToggleBackgroundMode: true,
	}
}

// Layer is a previously committed layer used to seed a re-editing
// session. When supplied via WithSeed, its fields override every session
// default.
type Layer struct {
	Text           string
	Alignment      Alignment
	FontScale      float64
	Mode           colormode.Mode
	Color          color.Color
	PickerPosition float64
	Style          style.Style
}
