package scanner

// Duplicate a character together with the input offset of its second
// occurrence, the position where it was detected.
type Duplicate struct {
	Char   byte
	Offset int
}

type Collector interface {
	Collect(c byte, offset int)
}

type CollectorFunc func(c byte, offset int)

func (c CollectorFunc) Collect(char byte, offset int) {
	c(char, offset)
}

type SliceCollector struct {
	Results []Duplicate
}

func (c *SliceCollector) Collect(char byte, offset int) {
	c.Results = append(c.Results, Duplicate{Char: char, Offset: offset})
}

func NewSliceCollector(initialCapacity int) *SliceCollector {
	return &SliceCollector{
		Results: make([]Duplicate, 0, initialCapacity),
	}
}
