package main

import (
	"fmt"
	"os"

	"dupscan"

	"github.com/spf13/pflag"
)

var (
	// Basic flags (Global switches)
	scanText   string
	scanFile   string
	runDemo    bool
	bufferSize int
)

func init() {
	pflag.StringVarP(&scanText, "text", "t", "", "scan the given text for duplicate characters")
	pflag.StringVarP(&scanFile, "file", "f", "", "scan the contents of a file")
	pflag.BoolVarP(&runDemo, "demo", "d", false, "scan a sample where every visible character appears twice")
	pflag.IntVar(&bufferSize, "buffer", 0, "output buffer size in bytes")

	// Execute the parsing
	pflag.Parse()
}

func main() {
	switch {
	case pflag.CommandLine.Changed("text"):
		displayReport([]byte(scanText))
		checkError(report([]byte(scanText)))
	case scanFile != "":
		m, err := dupscan.OpenMapped(scanFile)
		checkError(err)
		displayReport(m.Data())
		err = report(m.Data())
		_ = m.Close()
		checkError(err)
	case runDemo:
		input := demoInput()
		displayReport(input)
		checkError(report(input))
	default:
		runConsole()
	}
}

func report(input []byte) error {
	if bufferSize > 0 {
		return dupscan.NewReporterSize(os.Stdout, bufferSize).Report(input)
	}
	return dupscan.Report(os.Stdout, input)
}

// demoInput every visible ASCII character twice, ascending.
func demoInput() []byte {
	input := make([]byte, 0, 190)
	for c := byte(' '); c <= '~'; c++ {
		input = append(input, c, c)
	}
	return input
}

func checkError(err error) {
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}
