package scanner

// State The tracking state of a single character within one scan.
// Transitions are monotonic: Unseen -> Seen -> Reported, never backwards.
type State uint8

const (
	Unseen State = iota
	Seen
	Reported
)

var stateName = [3]string{"Unseen", "Seen", "Reported"}

func (s State) String() string {
	return stateName[s]
}

// Visible ASCII range tracked by the scanner, ' ' (32) to '~' (126).
const (
	MinVisible = 0x20
	MaxVisible = 0x7E

	// AlphabetSize distinct trackable characters
	AlphabetSize = MaxVisible - MinVisible + 1
)

// Visible reports whether c is inside the tracked range.
// Everything else is invisible to the scanner.
func Visible(c byte) bool {
	return c >= MinVisible && c <= MaxVisible
}
