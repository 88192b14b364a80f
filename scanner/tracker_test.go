package scanner

import (
	"testing"
)

func TestTrackerTransitions(t *testing.T) {
	tr := NewTracker()

	if s := tr.State('a'); s != Unseen {
		t.Fatalf("initial state = %s, want %s", s, Unseen)
	}
	if tr.Track('a') {
		t.Fatal("first occurrence must not report")
	}
	if s := tr.State('a'); s != Seen {
		t.Fatalf("state after first occurrence = %s, want %s", s, Seen)
	}
	if !tr.Track('a') {
		t.Fatal("second occurrence must report")
	}
	if s := tr.State('a'); s != Reported {
		t.Fatalf("state after second occurrence = %s, want %s", s, Reported)
	}
	if tr.Track('a') {
		t.Fatal("third occurrence must not report again")
	}
	if n := tr.Count(); n != 1 {
		t.Fatalf("Count() = %d, want 1", n)
	}
}

func TestTrackerRangeBoundaries(t *testing.T) {
	tr := NewTracker()

	// ' ' (32) and '~' (126) are both inside the tracked range
	for _, c := range []byte{MinVisible, MaxVisible} {
		if tr.Track(c) {
			t.Fatalf("%q: first occurrence reported", c)
		}
		if !tr.Track(c) {
			t.Fatalf("%q: second occurrence not reported", c)
		}
	}
	if n := tr.Count(); n != 2 {
		t.Fatalf("Count() = %d, want 2", n)
	}
}

func TestTrackerInvisible(t *testing.T) {
	tr := NewTracker()

	for _, c := range []byte{0, '\t', '\n', '\r', 31, 127, 128, 200, 255} {
		if tr.Track(c) || tr.Track(c) || tr.Track(c) {
			t.Fatalf("invisible byte %d reported as duplicate", c)
		}
		if s := tr.State(c); s != Unseen {
			t.Fatalf("invisible byte %d tracked state %s", c, s)
		}
	}
	if n := tr.Count(); n != 0 {
		t.Fatalf("Count() = %d, want 0", n)
	}
}

func TestTrackerNoCrosstalk(t *testing.T) {
	tr := NewTracker()

	// an invisible byte between two occurrences must not disturb them,
	// and distinct visible characters never share a flag pair
	tr.Track('a')
	tr.Track(0x1F)
	tr.Track(0x7F)
	if !tr.Track('a') {
		t.Fatal("'a' second occurrence lost")
	}
	for c := byte(MinVisible); c <= MaxVisible; c++ {
		if c == 'a' {
			continue
		}
		if s := tr.State(c); s != Unseen {
			t.Fatalf("%q affected by other characters, state %s", c, s)
		}
	}
}

func TestTrackerFullAlphabet(t *testing.T) {
	tr := NewTracker()

	for c := byte(MinVisible); c <= MaxVisible; c++ {
		if tr.Track(c) {
			t.Fatalf("%q reported on first occurrence", c)
		}
	}
	for c := byte(MinVisible); c <= MaxVisible; c++ {
		if !tr.Track(c) {
			t.Fatalf("%q not reported on second occurrence", c)
		}
	}
	if n := tr.Count(); n != AlphabetSize {
		t.Fatalf("Count() = %d, want %d", n, AlphabetSize)
	}
}

func TestTrackerReset(t *testing.T) {
	tr := NewTracker()

	tr.Track('x')
	tr.Track('x')
	tr.Reset()

	if n := tr.Count(); n != 0 {
		t.Fatalf("Count() after Reset = %d, want 0", n)
	}
	if s := tr.State('x'); s != Unseen {
		t.Fatalf("state after Reset = %s, want %s", s, Unseen)
	}
	if tr.Track('x') {
		t.Fatal("first occurrence after Reset reported")
	}
}
