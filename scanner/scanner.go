package scanner

import (
	"io"
)

const defScanBufferSize = 1 << 16

// Scanner finds duplicated visible ASCII characters in a byte stream.
// A single forward pass, each byte visited once, auxiliary state bounded
// by the 95-character alphabet regardless of input length.
type Scanner struct {
	tracker *Tracker
	bufSize int
}

func NewScanner() *Scanner {
	return NewScannerBuffer(defScanBufferSize)
}

func NewScannerBuffer(bufSize int) *Scanner {
	if bufSize < 1 {
		bufSize = 1
	}
	return &Scanner{
		tracker: NewTracker(),
		bufSize: bufSize,
	}
}

// Scan consumes reader to the end and returns the duplicated characters
// in detection order, the order of each character's second occurrence.
func (s *Scanner) Scan(reader io.Reader) []byte {
	collector := NewSliceCollector(AlphabetSize)
	s.ScanCollector(reader, collector)

	results := make([]byte, len(collector.Results))
	for i, dup := range collector.Results {
		results[i] = dup.Char
	}
	return results
}

// ScanCollector consumes reader to the end, handing each newly detected
// duplicate to collector. The tracker is reinitialized on every call, so
// repeated scans over the same input produce identical results.
func (s *Scanner) ScanCollector(reader io.Reader, collector Collector) {
	if closer, ok := reader.(io.Closer); ok {
		defer closer.Close()
	}

	s.tracker.Reset()

	chunk := getChunk(s.bufSize)
	defer freeChunk(chunk)

	offset := 0
	for {
		n := s.read(reader, chunk)
		for i := 0; i < n; i++ {
			if s.tracker.Track(chunk[i]) {
				collector.Collect(chunk[i], offset+i)
			}
		}
		offset += n
		if n < s.bufSize {
			break
		}
	}
}

// Tracker exposes the state table of the most recent scan.
func (s *Scanner) Tracker() *Tracker {
	return s.tracker
}

func (s *Scanner) read(reader io.Reader, buf []byte) (n int) {
	if len(buf) == 0 {
		return
	}
	var err error
	var l = len(buf)
	for n < l && err == nil {
		var nn int
		nn, err = reader.Read(buf[n:])
		n += nn
	}
	return
}
