package colormode

import (
	"testing"

	"github.com/calder/textlayer/internal/color"
)

func TestNext_Cycle(t *testing.T) {
	// The toggle order is a fixed contract.
	order := []Mode{OnlyColor, BackgroundAndColor, Background, BackgroundAndColorWithOpacity}
	for i, m := range order {
		want := order[(i+1)%len(order)]
		if got := m.Next(); got != want {
			t.Errorf("%v.Next() = %v, want %v", m, got, want)
		}
	}
}

func TestNext_FullCycleReturnsToStart(t *testing.T) {
	for _, start := range []Mode{OnlyColor, Background, BackgroundAndColor, BackgroundAndColorWithOpacity} {
		m := start
		for i := 0; i < 4; i++ {
			m = m.Next()
		}
		if m != start {
			t.Errorf("four steps from %v ended at %v", start, m)
		}
	}
}

func TestNext_FromBackground(t *testing.T) {
	if got := Background.Next(); got != BackgroundAndColorWithOpacity {
		t.Errorf("Background.Next() = %v, want BackgroundAndColorWithOpacity", got)
	}
}

func TestResolve(t *testing.T) {
	red := color.FromRGB(255, 0, 0)      // dark enough for white contrast
	yellow := color.FromRGB(255, 255, 0) // light, black contrast

	tests := []struct {
		name     string
		mode     Mode
		primary  color.Color
		wantText color.Color
		wantBg   color.Color
	}{
		{"only color", OnlyColor, red, red, color.Transparent},
		{"background dark primary", Background, red, color.White, red},
		{"background light primary", Background, yellow, color.Black, yellow},
		{"background and color", BackgroundAndColor, red, red, color.White},
		{"with opacity", BackgroundAndColorWithOpacity, yellow, yellow, color.Black.WithOpacity(0.5)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text, bg := Resolve(tt.mode, tt.primary)
			if text != tt.wantText {
				t.Errorf("text = %v, want %v", text, tt.wantText)
			}
			if bg != tt.wantBg {
				t.Errorf("background = %v, want %v", bg, tt.wantBg)
			}
		})
	}
}

func TestResolve_OnlyColorIdentity(t *testing.T) {
	for _, c := range []color.Color{color.Black, color.White, color.FromARGB(42, 1, 2, 3)} {
		text, bg := Resolve(OnlyColor, c)
		if text != c {
			t.Errorf("Resolve(OnlyColor, %v) text = %v", c, text)
		}
		if !bg.IsTransparent() {
			t.Errorf("Resolve(OnlyColor, %v) background = %v, want transparent", c, bg)
		}
	}
}

func TestString(t *testing.T) {
	if got := BackgroundAndColorWithOpacity.String(); got != "background-and-color-with-opacity" {
		t.Errorf("String() = %q", got)
	}
	if got := Mode(99).String(); got != "unknown" {
		t.Errorf("Mode(99).String() = %q", got)
	}
}
