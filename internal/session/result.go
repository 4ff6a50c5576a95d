package session

import (
	"github.com/calder/textlayer/internal/color"
	"github.com/calder/textlayer/internal/colormode"
	"github.com/calder/textlayer/internal/style"
)

// Result is the immutable layer descriptor produced by a committed
// session. Text is trimmed and guaranteed non-empty; Color and Background
// are resolved from the final mode and primary color at commit time.
type Result struct {
	Text           string
	Color          color.Color
	Background     color.Color
	Alignment      Alignment
	FontScale      float64
	Mode           colormode.Mode
	PickerPosition float64
	Style          style.Style
}

// Layer returns the seed form of the result, for re-editing the layer in
// a later session.
func (r *Result) Layer() Layer {
	primary := r.Color
	if r.Mode == colormode.Background {
		// In fill mode the chosen color is the background.
		primary = r.Background
	}
	return Layer{
		Text:           r.Text,
		Alignment:      r.Alignment,
		FontScale:      r.FontScale,
		Mode:           r.Mode,
		Color:          primary,
		PickerPosition: r.PickerPosition,
		Style:          r.Style,
	}
}
