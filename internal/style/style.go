// Package style defines the selectable text styles for a layer.
//
// A Style is an opaque handle from the host's configured list; the session
// stores and cycles it without interpreting the rendering details.
package style

// Attribute represents text attributes (bold, italic, etc.).
type Attribute uint16

// Text attribute flags.
const (
	AttrNone      Attribute = 0
	AttrBold      Attribute = 1 << iota
	AttrItalic              // Italic text
	AttrUnderline           // Underlined text
	AttrOutline             // Outlined glyphs
	AttrShadow              // Drop shadow
)

// Has returns true if the attribute set contains the given attribute.
func (a Attribute) Has(attr Attribute) bool {
	return a&attr != 0
}

// With returns a new attribute set with the given attribute added.
func (a Attribute) With(attr Attribute) Attribute {
	return a | attr
}

// Without returns a new attribute set with the given attribute removed.
func (a Attribute) Without(attr Attribute) Attribute {
	return a &^ attr
}

// Style identifies one selectable text style.
type Style struct {
	// Name identifies the style to the host's renderer, typically a
	// font-family key.
	Name string

	// Attributes are the rendering flags applied on top of the family.
	Attributes Attribute
}

// Default returns the plain style.
func Default() Style {
	return Style{Name: "regular", Attributes: AttrNone}
}

// WithAttributes returns a copy of the style with attributes replaced.
func (s Style) WithAttributes(attrs Attribute) Style {
	s.Attributes = attrs
	return s
}

// Bold returns a copy of the style with the bold attribute added.
func (s Style) Bold() Style {
	s.Attributes |= AttrBold
	return s
}

// Italic returns a copy of the style with the italic attribute added.
func (s Style) Italic() Style {
	s.Attributes |= AttrItalic
	return s
}

// Equals returns true if two styles are identical.
func (s Style) Equals(other Style) bool {
	return s.Name == other.Name && s.Attributes == other.Attributes
}

// List is an ordered set of selectable styles.
type List []Style

// DefaultList returns the styles offered when the host configures none.
func DefaultList() List {
	return List{
		Default(),
		{Name: "serif"},
		{Name: "mono"},
		Default().Bold(),
	}
}

// Next returns the style after current in the list, wrapping at the end.
// If current is not in the list (or the list is empty), the first style is
// returned so cycling always lands on a selectable entry.
func (l List) Next(current Style) Style {
	if len(l) == 0 {
		return Default()
	}
	for i, s := range l {
		if s.Equals(current) {
			return l[(i+1)%len(l)]
		}
	}
	return l[0]
}

// Contains returns true if the list holds the given style.
func (l List) Contains(s Style) bool {
	for _, entry := range l {
		if entry.Equals(s) {
			return true
		}
	}
	return false
}
