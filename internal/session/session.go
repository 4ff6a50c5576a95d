package session

import (
	"strings"

	"github.com/calder/textlayer/internal/color"
	"github.com/calder/textlayer/internal/colormode"
	"github.com/calder/textlayer/internal/event"
	"github.com/calder/textlayer/internal/fontscale"
	"github.com/calder/textlayer/internal/style"
	"github.com/calder/textlayer/internal/textmetrics"
)

// State is the lifecycle state of a session.
type State int

const (
	// StateEditing accepts mutations.
	StateEditing State = iota

	// StateCommitted is terminal; a Result was produced.
	StateCommitted

	// StateCancelled is terminal; the draft was discarded.
	StateCancelled
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateEditing:
		return "editing"
	case StateCommitted:
		return "committed"
	case StateCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Session holds the mutable draft for one text layer edit.
// It is single-threaded: mutators run to completion, including derived
// recomputation and notification, before returning.
type Session struct {
	cfg     Config
	bus     *event.Bus
	rebuild *event.Rebuilder
	scale   *fontscale.Controller

	onComplete func(*Result)

	state     State
	text      string
	metrics   textmetrics.Metrics
	alignment Alignment
	mode      colormode.Mode
	primary   color.Color
	pickerPos float64
	textStyle style.Style
}

// Option configures a new session.
type Option func(*Session)

// WithSeed starts the session from a previously committed layer instead
// of the configured defaults.
func WithSeed(layer Layer) Option {
	return func(s *Session) {
		s.text = layer.Text
		s.alignment = layer.Alignment
		s.mode = layer.Mode
		s.primary = layer.Color
		s.pickerPos = layer.PickerPosition
		s.textStyle = layer.Style
		s.scale = fontscale.New(s.cfg.MinFontScale, s.cfg.MaxFontScale, s.cfg.InitFontSize, layer.FontScale)
	}
}

// WithCompletion registers the callback that receives the session outcome:
// the committed Result, or nil on cancel.
func WithCompletion(fn func(*Result)) Option {
	return func(s *Session) {
		s.onComplete = fn
	}
}

// New creates a session in the editing state.
func New(cfg Config, opts ...Option) *Session {
	s := &Session{
		cfg:       cfg,
		bus:       event.NewBus(),
		rebuild:   event.NewRebuilder(),
		state:     StateEditing,
		alignment: cfg.InitialAlignment,
		mode:      cfg.InitialBackgroundMode,
		primary:   color.Black,
		scale:     fontscale.New(cfg.MinFontScale, cfg.MaxFontScale, cfg.InitFontSize, cfg.InitFontScale),
		textStyle: style.Default(),
	}
	if len(cfg.AvailableStyles) > 0 {
		s.textStyle = cfg.AvailableStyles[0]
	}

	for _, opt := range opts {
		opt(s)
	}

	// The scale change notification carries the caller's raw value.
	s.scale.OnChange(func(raw float64) {
		s.bus.Publish(event.TopicScaleChanged, raw)
	})

	s.metrics = textmetrics.Measure(s.text)
	return s
}

// Bus returns the typed-event channel for this session.
func (s *Session) Bus() *event.Bus {
	return s.bus
}

// OnRebuild subscribes a zero-payload rebuild observer and returns a
// cancel function.
func (s *Session) OnRebuild(fn func()) (cancel func()) {
	return s.rebuild.Subscribe(fn)
}

// Config returns the session configuration.
func (s *Session) Config() Config {
	return s.cfg
}

// State returns the lifecycle state.
func (s *Session) State() State {
	return s.state
}

// Draft accessors.

// Text returns the raw, untrimmed draft text.
func (s *Session) Text() string { return s.text }

// Alignment returns the current text alignment.
func (s *Session) Alignment() Alignment { return s.alignment }

// BackgroundMode returns the current background-rendering mode.
func (s *Session) BackgroundMode() colormode.Mode { return s.mode }

// Color returns the current primary color.
func (s *Session) Color() color.Color { return s.primary }

// FontScale returns the current quantized font scale.
func (s *Session) FontScale() float64 { return s.scale.Scale() }

// PixelFontSize returns the effective font size in pixels.
func (s *Session) PixelFontSize() float64 { return s.scale.PixelSize() }

// ColorPickerPosition returns the normalized picker cursor offset.
func (s *Session) ColorPickerPosition() float64 { return s.pickerPos }

// TextStyle returns the current text style handle.
func (s *Session) TextStyle() style.Style { return s.textStyle }

// LineCount returns the current line count, at least 1. It is recomputed
// synchronously on every text change and is never stale.
func (s *Session) LineCount() int { return s.metrics.Lines }

// Metrics returns the derived sizing metrics for the current text.
func (s *Session) Metrics() textmetrics.Metrics { return s.metrics }

// ResolvedColors returns the effective text and background colors for the
// current mode and primary color.
func (s *Session) ResolvedColors() (text, background color.Color) {
	return colormode.Resolve(s.mode, s.primary)
}

// Mutators. Each one applies its change, recomputes derived state, and
// notifies before returning.

// SetText replaces the draft text. The text is kept raw; trimming happens
// only at commit.
func (s *Session) SetText(text string) error {
	if s.state != StateEditing {
		return ErrSessionClosed
	}
	s.text = text
	s.metrics = textmetrics.Measure(text)
	s.bus.Publish(event.TopicTextChanged, text)
	s.rebuild.Notify()
	return nil
}

// CycleAlignment steps to the next alignment: left, center, right, left.
func (s *Session) CycleAlignment() error {
	if s.state != StateEditing {
		return ErrSessionClosed
	}
	s.alignment = s.alignment.Next()
	s.bus.Publish(event.TopicAlignmentChanged, s.alignment)
	s.rebuild.Notify()
	return nil
}

// CycleBackgroundMode steps to the next background mode in the fixed
// toggle order.
func (s *Session) CycleBackgroundMode() error {
	if s.state != StateEditing {
		return ErrSessionClosed
	}
	s.mode = s.mode.Next()
	s.bus.Publish(event.TopicModeChanged, s.mode)
	s.rebuild.Notify()
	return nil
}

// SetColor replaces the primary color. The change event carries the
// packed ARGB form.
func (s *Session) SetColor(c color.Color) error {
	if s.state != StateEditing {
		return ErrSessionClosed
	}
	s.primary = c
	s.bus.Publish(event.TopicColorChanged, c.Packed())
	s.rebuild.Notify()
	return nil
}

// SetFontScale replaces the font scale with the quantized form of value.
// The scale-changed event carries the raw value.
func (s *Session) SetFontScale(value float64) error {
	if s.state != StateEditing {
		return ErrSessionClosed
	}
	s.scale.Set(value)
	s.rebuild.Notify()
	return nil
}

// SetTextStyle replaces the text style handle.
func (s *Session) SetTextStyle(st style.Style) error {
	if s.state != StateEditing {
		return ErrSessionClosed
	}
	s.textStyle = st
	s.bus.Publish(event.TopicStyleChanged, st)
	s.rebuild.Notify()
	return nil
}

// CycleTextStyle steps to the next style in the configured list.
func (s *Session) CycleTextStyle() error {
	return s.SetTextStyle(s.cfg.AvailableStyles.Next(s.textStyle))
}

// SetColorPickerPosition records the picker cursor offset. Position
// tracking is passive bookkeeping for the picker collaborator: unlike
// every other mutator it notifies no one. This asymmetry is part of the
// observed contract.
func (s *Session) SetColorPickerPosition(pos float64) error {
	if s.state != StateEditing {
		return ErrSessionClosed
	}
	s.pickerPos = pos
	return nil
}

// Done attempts to commit the session. If the trimmed text is non-empty
// it produces the immutable Result, publishes it on the done topic, and
// reports it to the completion callback. Whitespace-only text silently
// takes the cancel path instead; an empty layer is never produced.
func (s *Session) Done() (*Result, bool) {
	if s.state != StateEditing {
		return nil, false
	}

	trimmed := strings.TrimSpace(s.text)
	if trimmed == "" {
		s.cancel()
		return nil, false
	}

	text, background := colormode.Resolve(s.mode, s.primary)
	result := &Result{
		Text:           trimmed,
		Color:          text,
		Background:     background,
		Alignment:      s.alignment,
		FontScale:      s.scale.Scale(),
		Mode:           s.mode,
		PickerPosition: s.pickerPos,
		Style:          s.textStyle,
	}

	s.state = StateCommitted
	s.bus.Publish(event.TopicDone, result)
	if s.onComplete != nil {
		s.onComplete(result)
	}
	return result, true
}

// Close cancels the session, discarding the draft. Safe to call from any
// state; after the first terminal transition it does nothing.
func (s *Session) Close() {
	if s.state != StateEditing {
		return
	}
	s.cancel()
}

// cancel performs the terminal cancel transition.
func (s *Session) cancel() {
	s.state = StateCancelled
	s.bus.Publish(event.TopicEditorClosed, nil)
	if s.onComplete != nil {
		s.onComplete(nil)
	}
}
