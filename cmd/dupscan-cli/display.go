package main

import (
	"bytes"
	"fmt"

	"dupscan/scanner"

	"github.com/fatih/color"
)

func displayReport(input []byte) {
	if len(input) == 0 {
		return
	}

	collector := scanner.NewSliceCollector(scanner.AlphabetSize)
	scanner.NewScanner().ScanCollector(bytes.NewReader(input), collector)
	displayDuplicates(collector.Results)
}

func displayDuplicates(duplicates []scanner.Duplicate) {
	var (
		paddingCode   int
		paddingOffset int
	)

	for _, dup := range duplicates {
		code := fmt.Sprint(dup.Char)
		offset := fmt.Sprint(dup.Offset)
		if n := len(code); n > paddingCode {
			paddingCode = n
		}
		if n := len(offset); n > paddingOffset {
			paddingOffset = n
		}
	}

	for _, dup := range duplicates {
		_, _ = fmt.Print(fmt.Sprintf("%s %*d %s %*d",
			color.CyanString("%q", dup.Char),
			paddingCode, dup.Char,
			color.YellowString("@"),
			paddingOffset, dup.Offset,
		))
		fmt.Println()
	}
}
