// Package colormode defines the background-rendering modes of a text layer
// and the derivation of effective text and background colors from the
// user's single chosen color.
package colormode

import "github.com/calder/textlayer/internal/color"

// Mode selects how the chosen color is split between text and background.
type Mode int

const (
	// OnlyColor renders colored text with no background fill.
	OnlyColor Mode = iota

	// Background renders a colored fill with contrasting text.
	Background

	// BackgroundAndColor renders colored text on a contrasting fill.
	BackgroundAndColor

	// BackgroundAndColorWithOpacity renders colored text on a
	// half-transparent contrasting fill.
	BackgroundAndColorWithOpacity
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case OnlyColor:
		return "only-color"
	case Background:
		return "background"
	case BackgroundAndColor:
		return "background-and-color"
	case BackgroundAndColorWithOpacity:
		return "background-and-color-with-opacity"
	default:
		return "unknown"
	}
}

// successor holds the toggle order the editor steps through. The order is
// part of the observed contract and does not follow declaration order, so
// it is kept as an explicit table rather than index arithmetic.
var successor = map[Mode]Mode{
	OnlyColor:                     BackgroundAndColor,
	BackgroundAndColor:            Background,
	Background:                    BackgroundAndColorWithOpacity,
	BackgroundAndColorWithOpacity: OnlyColor,
}

// Next returns the mode that follows m in the toggle cycle. Every mode has
// a successor; unknown values restart at OnlyColor.
func (m Mode) Next() Mode {
	if next, ok := successor[m]; ok {
		return next
	}
	return OnlyColor
}

// Resolve derives the effective text and background colors for the given
// mode from the user's chosen primary color. Pure function.
func Resolve(m Mode, primary color.Color) (text, background color.Color) {
	switch m {
	case Background:
		return primary.Contrast(), primary
	case BackgroundAndColor:
		return primary, primary.Contrast()
	case BackgroundAndColorWithOpacity:
		return primary, primary.Contrast().WithOpacity(0.5)
	default: // OnlyColor
		return primary, color.Transparent
	}
}
