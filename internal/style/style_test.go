package style

import "testing"

func TestAttribute(t *testing.T) {
	a := AttrNone.With(AttrBold).With(AttrItalic)
	if !a.Has(AttrBold) || !a.Has(AttrItalic) {
		t.Errorf("attribute set %b missing added flags", a)
	}
	if a.Has(AttrUnderline) {
		t.Error("attribute set reports flag that was never added")
	}
	if a.Without(AttrBold).Has(AttrBold) {
		t.Error("Without did not remove flag")
	}
}

func TestStyleBuilders(t *testing.T) {
	s := Default().Bold()
	if !s.Attributes.Has(AttrBold) {
		t.Error("Bold() did not set bold attribute")
	}
	// Builders return copies.
	if Default().Attributes != AttrNone {
		t.Error("Default() mutated by builder")
	}
}

func TestList_Next(t *testing.T) {
	l := List{{Name: "a"}, {Name: "b"}, {Name: "c"}}

	if got := l.Next(Style{Name: "a"}); got.Name != "b" {
		t.Errorf("Next(a) = %q, want b", got.Name)
	}
	if got := l.Next(Style{Name: "c"}); got.Name != "a" {
		t.Errorf("Next(c) = %q, want a (wrap)", got.Name)
	}
	// Unknown style lands on the first entry.
	if got := l.Next(Style{Name: "zzz"}); got.Name != "a" {
		t.Errorf("Next(unknown) = %q, want a", got.Name)
	}
}

func TestList_NextEmpty(t *testing.T) {
	var l List
	if got := l.Next(Style{Name: "x"}); !got.Equals(Default()) {
		t.Errorf("empty List.Next() = %v, want default", got)
	}
}

func TestList_Contains(t *testing.T) {
	l := DefaultList()
	if !l.Contains(Default()) {
		t.Error("DefaultList should contain the default style")
	}
	if l.Contains(Style{Name: "nope"}) {
		t.Error("Contains reported a missing style")
	}
}
