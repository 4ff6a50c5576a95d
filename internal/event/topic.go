package event

// Topic identifies a class of session events.
type Topic string

// TopicAll matches every topic when subscribing.
const TopicAll Topic = "*"

// Session event topics.
const (
	// TopicTextChanged is published after the layer text is replaced.
	// Payload: the new raw text (string).
	TopicTextChanged Topic = "layer.text.changed"

	// TopicAlignmentChanged is published after the alignment cycles.
	// Payload: the new alignment.
	TopicAlignmentChanged Topic = "layer.alignment.changed"

	// TopicModeChanged is published after the background mode cycles.
	// Payload: the new mode.
	TopicModeChanged Topic = "layer.mode.changed"

	// TopicScaleChanged is published after a font-scale adjustment.
	// Payload: the caller's raw pre-quantization value (float64).
	TopicScaleChanged Topic = "layer.scale.changed"

	// TopicColorChanged is published after the primary color is replaced.
	// Payload: the packed ARGB form of the new color (uint32).
	TopicColorChanged Topic = "layer.color.changed"

	// TopicStyleChanged is published after the text style is replaced.
	// Payload: the new style.
	TopicStyleChanged Topic = "layer.style.changed"

	// TopicDone is published when the session commits. Payload: the
	// committed result.
	TopicDone Topic = "layer.done"

	// TopicEditorClosed is published when the session ends without a
	// result. No payload.
	TopicEditorClosed Topic = "layer.editor.closed"
)

// matches reports whether a subscription pattern accepts the topic.
func (t Topic) matches(pattern Topic) bool {
	return pattern == TopicAll || pattern == t
}
