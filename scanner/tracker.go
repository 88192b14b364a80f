package scanner

import (
	"github.com/bits-and-blooms/bitset"
)

// Tracker holds the per-character state for one scan.
// Two fixed 95-bit sets, one bit pair per visible character,
// indexed by codepoint-MinVisible.
type Tracker struct {
	seen     *bitset.BitSet
	reported *bitset.BitSet
}

func NewTracker() *Tracker {
	return &Tracker{
		seen:     bitset.New(AlphabetSize),
		reported: bitset.New(AlphabetSize),
	}
}

// Track advances the state machine for c and reports whether this is
// the character's second occurrence, i.e. the moment it becomes a
// duplicate. Third and later occurrences return false, the character
// was already reported once. Characters outside the visible range are
// ignored entirely and never return true.
func (t *Tracker) Track(c byte) bool {
	if !Visible(c) {
		return false
	}
	slot := uint(c - MinVisible)
	if !t.seen.Test(slot) {
		t.seen.Set(slot)
		return false
	}
	if t.reported.Test(slot) {
		return false
	}
	t.reported.Set(slot)
	return true
}

func (t *Tracker) State(c byte) State {
	if !Visible(c) {
		return Unseen
	}
	slot := uint(c - MinVisible)
	switch {
	case t.reported.Test(slot):
		return Reported
	case t.seen.Test(slot):
		return Seen
	}
	return Unseen
}

// Count the number of characters reported as duplicates so far.
func (t *Tracker) Count() int {
	return int(t.reported.Count())
}

func (t *Tracker) Reset() {
	t.seen.ClearAll()
	t.reported.ClearAll()
}
