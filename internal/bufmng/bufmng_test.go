package bufmng

import "testing"

func TestBufferManager(t *testing.T) {
	b := New(4)

	first := b.Get(3)
	if len(first) != 3 || b.Grows() != 0 {
		t.Errorf("buffer of capacity 4 must serve 3 bytes without growing, got len=%d grows=%d", len(first), b.Grows())
	}

	if len(b.Get(10)) != 10 || b.Grows() != 1 {
		t.Errorf("growth expected, got grows=%d", b.Grows())
	}

	if len(b.Get(5)) != 5 || b.Grows() != 1 {
		t.Errorf("grown buffer must be reused, got grows=%d", b.Grows())
	}

	if b.MaxLen() != 10 {
		t.Errorf("max length 10 expected, got %d", b.MaxLen())
	}
}
