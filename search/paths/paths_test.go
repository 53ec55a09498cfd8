package paths

import "testing"

func TestPath_zeroValueIsInvalid(t *testing.T) {
	var p Path[int]

	if p.Valid() {
		t.Errorf("zero Path should be invalid")
	}
	if p.Length() != 0 {
		t.Errorf("Length(): want 0, got %d", p.Length())
	}
}

func TestPath_singleNodeIsValid(t *testing.T) {
	p := New([]int{5}, 0)

	if !p.Valid() {
		t.Errorf("single node path should be valid")
	}
	if p.Source() != 5 || p.Destination() != 5 {
		t.Errorf("Source(), Destination(): want 5, 5, got %d, %d", p.Source(), p.Destination())
	}
	if got := p.String(); got != "5" {
		t.Errorf("String(): want %q, got %q", "5", got)
	}
}

func TestNew_panicsOnEmptyNodes(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("New(nil) should panic")
		}
	}()
	New[int](nil, 0)
}
