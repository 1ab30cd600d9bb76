package listid

import "testing"

func TestRegistry(t *testing.T) {
	r := newRegistry()

	a := r.next()
	b := r.next()
	if a != 1 || b != 2 {
		t.Errorf("expected ids 1 and 2, got %d and %d", a, b)
		return
	}

	if !r.retire(a) {
		t.Error("first retire must succeed")
	}
	if r.retire(a) {
		t.Error("second retire of the same id must fail")
	}
	if !r.retired(a) {
		t.Error("id must be reported as retired")
	}
	if r.retired(b) {
		t.Error("id must be alive")
	}
	if r.retire(100) {
		t.Error("id that was never issued cannot be retired")
	}
	if r.retire(0) {
		t.Error("zero id cannot be retired")
	}

	if c := r.next(); c != 3 {
		t.Errorf("ids must not be reused, got %d", c)
	}
}

func TestGlobalMonotonic(t *testing.T) {
	prev := Next()
	for i := 0; i < 10; i++ {
		cur := Next()
		if cur <= prev {
			t.Errorf("id %d is not greater than previous %d", cur, prev)
			return
		}
		prev = cur
	}

	if Last() != prev {
		t.Errorf("last id mismatch: %d != %d", Last(), prev)
	}
}
