package dupscan

import (
	"bufio"
	"bytes"
	"errors"
	"io"

	"dupscan/scanner"
	"dupscan/utils"
)

// defResultBufferSize staging buffer for the formatted report.
// Large enough that the worst case, all 95 visible characters
// duplicated, flushes only a handful of times.
const defResultBufferSize = 256

// ErrEmptyInput the input sequence was nil or empty.
var ErrEmptyInput = errors.New("input string is null or empty")

const emptyInputMessage = "Input string is null or empty\n"

// Reporter scans an input sequence for duplicated visible ASCII
// characters and writes a formatted report to its output channel,
// e.g. "{a, b}\n". Output is staged through a bounded buffer that is
// flushed whenever the next write would not fit; the emitted bytes do
// not depend on the buffer size.
type Reporter struct {
	w       io.Writer
	bufSize int
}

func NewReporter(w io.Writer) *Reporter {
	return NewReporterSize(w, defResultBufferSize)
}

func NewReporterSize(w io.Writer, bufSize int) *Reporter {
	if bufSize < 1 {
		bufSize = defResultBufferSize
	}
	return &Reporter{
		w:       w,
		bufSize: bufSize,
	}
}

// Report scans input and emits the duplicate report.
//
// A nil or empty input writes a fixed diagnostic to the output channel
// and fails with ErrEmptyInput. A write that does not succeed aborts
// the scan and is returned as-is; bytes flushed before the failure
// remain on the channel.
func (r *Reporter) Report(input []byte) error {
	if len(input) == 0 {
		if _, err := io.WriteString(r.w, emptyInputMessage); err != nil {
			return err
		}
		return ErrEmptyInput
	}

	// bufio.Writer write-through: pending bytes are flushed as soon as
	// an append would exceed capacity, and its first error is sticky,
	// every later write is a no-op reporting the same error.
	bw := bufio.NewWriterSize(r.w, r.bufSize)
	_ = bw.WriteByte('{')

	first := true
	scan := scanner.NewScanner()
	scan.ScanCollector(bytes.NewReader(input), scanner.CollectorFunc(func(c byte, _ int) {
		if !first {
			_, _ = bw.WriteString(", ")
		}
		_ = bw.WriteByte(c)
		first = false
	}))

	_ = bw.WriteByte('}')
	_ = bw.WriteByte('\n')
	return bw.Flush()
}

// ReportString Report over a string without copying it.
func (r *Reporter) ReportString(s string) error {
	return r.Report(utils.StringToBytes(s))
}

// Report scans input and writes the duplicate report to w using the
// default buffer size.
func Report(w io.Writer, input []byte) error {
	return NewReporter(w).Report(input)
}

func ReportString(w io.Writer, s string) error {
	return NewReporter(w).ReportString(s)
}

// Find returns the duplicated visible ASCII characters of input in
// detection order, without formatting. A character occurring three or
// more times still appears once.
func Find(input []byte) []byte {
	if len(input) == 0 {
		return nil
	}
	return scanner.NewScanner().Scan(bytes.NewReader(input))
}

func FindString(s string) []byte {
	return Find(utils.StringToBytes(s))
}
