package textmetrics

import "testing"

func TestCountLines(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{"empty", "", 1},
		{"single line", "hello", 1},
		{"three lines", "a\nb\nc", 3},
		{"trailing newline", "a\n", 2},
		{"only newlines", "\n\n", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CountLines(tt.text); got != tt.want {
				t.Errorf("CountLines(%q) = %d, want %d", tt.text, got, tt.want)
			}
		})
	}
}

func TestMaxLineWidth(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{"empty", "", 0},
		{"ascii", "hello", 5},
		{"widest of several", "ab\nabcd\nc", 4},
		{"wide runes", "日本", 4},
		{"combining mark", "é", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MaxLineWidth(tt.text); got != tt.want {
				t.Errorf("MaxLineWidth(%q) = %d, want %d", tt.text, got, tt.want)
			}
		})
	}
}

func TestMeasure(t *testing.T) {
	m := Measure("ab\nabcd\nc")
	if m.Lines != 3 {
		t.Errorf("Lines = %d, want 3", m.Lines)
	}
	if m.MaxWidth != 4 {
		t.Errorf("MaxWidth = %d, want 4", m.MaxWidth)
	}
}
