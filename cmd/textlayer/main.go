// Package main is a terminal front end for one text-layer editing
// session. It exists to exercise the session interactively: type text,
// cycle alignment and background modes, pick colors, adjust the scale,
// then commit or cancel.
//
// Keys: Tab cycles alignment, F2 cycles the background mode, F3 cycles
// the text style, Ctrl+P picks the next palette color, + and - adjust the
// font scale, Enter inserts a newline, Ctrl+D commits, Esc cancels.
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"

	"github.com/calder/textlayer/internal/color"
	"github.com/calder/textlayer/internal/config"
	"github.com/calder/textlayer/internal/session"
	"github.com/calder/textlayer/internal/style"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "path to settings file")
	flag.Parse()

	settings := config.Default()
	if *configPath != "" {
		var err error
		settings, err = config.Load(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: loading settings: %v\n", err)
			return 1
		}
	}

	var result *session.Result
	sess := session.New(settings.Session, session.WithCompletion(func(r *session.Result) {
		result = r
	}))

	if err := runEditor(sess, settings.Palette); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	if result == nil {
		fmt.Println("cancelled")
		return 0
	}
	fmt.Printf("committed layer: %q\n", result.Text)
	fmt.Printf("  color %v on %v, %s aligned, scale %.1f, mode %v, style %s\n",
		result.Color, result.Background, result.Alignment,
		result.FontScale, result.Mode, result.Style.Name)
	return 0
}

// runEditor owns the terminal for the lifetime of the session.
func runEditor(sess *session.Session, palette []color.Color) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initializing screen: %w", err)
	}
	defer screen.Fini()

	dirty := true
	cancelRebuild := sess.OnRebuild(func() { dirty = true })
	defer cancelRebuild()

	paletteIdx := 0

	for sess.State() == session.StateEditing {
		if dirty {
			draw(screen, sess)
			dirty = false
		}

		ev := screen.PollEvent()
		switch ev := ev.(type) {
		case *tcell.EventResize:
			screen.Sync()
			dirty = true

		case *tcell.EventKey:
			switch ev.Key() {
			case tcell.KeyEscape:
				sess.Close()

			case tcell.KeyCtrlD:
				sess.Done()

			case tcell.KeyEnter:
				sess.SetText(sess.Text() + "\n")

			case tcell.KeyTab:
				if sess.Config().CanToggleAlignment {
					sess.CycleAlignment()
				}

			case tcell.KeyF2:
				if sess.Config().CanToggleBackgroundMode {
					sess.CycleBackgroundMode()
				}

			case tcell.KeyF3:
				sess.CycleTextStyle()

			case tcell.KeyCtrlP:
				if len(palette) > 0 {
					paletteIdx = (paletteIdx + 1) % len(palette)
					pos := 0.0
					if len(palette) > 1 {
						pos = float64(paletteIdx) / float64(len(palette)-1)
					}
					sess.SetColorPickerPosition(pos)
					sess.SetColor(palette[paletteIdx])
				}

			case tcell.KeyBackspace, tcell.KeyBackspace2:
				if text := sess.Text(); text != "" {
					_, size := utf8.DecodeLastRuneInString(text)
					sess.SetText(text[:len(text)-size])
				}

			case tcell.KeyRune:
				switch r := ev.Rune(); r {
				case '+':
					if sess.Config().CanChangeFontScale {
						sess.SetFontScale(clampScale(sess, stepScale(sess.FontScale(), 1)))
					}
				case '-':
					if sess.Config().CanChangeFontScale {
						sess.SetFontScale(clampScale(sess, stepScale(sess.FontScale(), -1)))
					}
				default:
					sess.SetText(sess.Text() + string(r))
				}
			}
		}
	}
	return nil
}

// stepScale moves the scale by whole tenths, re-deriving the value from
// rounded tenths so repeated steps do not drift past the ceiling
// quantizer.
func stepScale(scale float64, tenths int) float64 {
	return math.Round(scale*10+float64(tenths)) / 10
}

// clampScale keeps slider adjustments inside the configured bounds. The
// bounds live with the control, not the session.
func clampScale(sess *session.Session, v float64) float64 {
	cfg := sess.Config()
	if v < cfg.MinFontScale {
		return cfg.MinFontScale
	}
	if v > cfg.MaxFontScale {
		return cfg.MaxFontScale
	}
	return v
}

// draw renders the layer preview and a status line.
func draw(screen tcell.Screen, sess *session.Session) {
	screen.Clear()
	width, height := screen.Size()

	fg, bg := sess.ResolvedColors()
	st := tcell.StyleDefault.Foreground(toTcell(fg))
	if !bg.IsTransparent() {
		st = st.Background(toTcell(bg))
	}
	st = st.Bold(sess.TextStyle().Attributes.Has(style.AttrBold)).
		Italic(sess.TextStyle().Attributes.Has(style.AttrItalic)).
		Underline(sess.TextStyle().Attributes.Has(style.AttrUnderline))

	metrics := sess.Metrics()
	boxWidth := metrics.MaxWidth
	if boxWidth < 1 {
		boxWidth = 1
	}
	top := (height - metrics.Lines) / 2
	if top < 0 {
		top = 0
	}

	y := top
	for _, line := range splitLines(sess.Text()) {
		x := startColumn(sess.Alignment(), width, boxWidth, len([]rune(line)))
		for _, r := range line {
			if x >= 0 && x < width && y >= 0 && y < height-1 {
				screen.SetContent(x, y, r, nil, st)
			}
			x++
		}
		y++
	}

	status := fmt.Sprintf(" %s | %s | scale %.1f | %s | Tab/F2/F3 cycle, Ctrl+P color, Ctrl+D done, Esc cancel ",
		sess.Alignment(), sess.BackgroundMode(), sess.FontScale(), sess.TextStyle().Name)
	statusStyle := tcell.StyleDefault.Reverse(true)
	for i, r := range status {
		if i < width {
			screen.SetContent(i, height-1, r, nil, statusStyle)
		}
	}

	screen.Show()
}

// startColumn positions a line inside the centered layer box.
func startColumn(a session.Alignment, screenWidth, boxWidth, lineLen int) int {
	left := (screenWidth - boxWidth) / 2
	switch a {
	case session.AlignLeft:
		return left
	case session.AlignRight:
		return left + boxWidth - lineLen
	default:
		return left + (boxWidth-lineLen)/2
	}
}

func splitLines(text string) []string {
	lines := []string{""}
	for _, r := range text {
		if r == '\n' {
			lines = append(lines, "")
			continue
		}
		lines[len(lines)-1] += string(r)
	}
	return lines
}

func toTcell(c color.Color) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
