package main

import (
	"bytes"
	"fmt"
	"os"
	"os/signal"

	"dupscan"
	"dupscan/scanner"

	"github.com/fatih/color"
	"github.com/manifoldco/promptui"
)

const (
	ConsoleStepSelectAction = iota
	ConsoleStepEnterText
	ConsoleStepEnterFile
	ConsoleStepDemo
	ConsoleExit
)

var (
	colorLabel     = color.New(color.FgYellow)
	colorHighlight = color.New(color.FgGreen)
)

type Console struct {
	step      uint8
	scanCount int
	lastFound int
	quit      chan os.Signal
}

func (console *Console) Run() {
Loop:
	for {
		switch console.step {
		case ConsoleStepSelectAction:
			console.selectAction()
		case ConsoleStepEnterText:
			console.enterText()
		case ConsoleStepEnterFile:
			console.enterFile()
		case ConsoleStepDemo:
			console.demo()
		default:
			break Loop
		}
	}
	close(console.quit)
}

func (console *Console) label() string {
	var help string
	label := colorLabel.Sprintf("<DUPSCAN>")
	switch console.step {
	case ConsoleStepSelectAction:
		if console.scanCount == 0 {
			help = "Press [J] [K] to navigate"
		} else {
			help = fmt.Sprintf("Scan #%d, Duplicates %d", console.scanCount, console.lastFound)
		}
	case ConsoleStepEnterText:
		help = "Enter text to scan"
		label = colorLabel.Sprintf("<SCAN TEXT>")
	case ConsoleStepEnterFile:
		help = "Enter a file path"
		label = colorLabel.Sprintf("<SCAN FILE>")
	}
	return fmt.Sprintf("%s [%s]", label, help)
}

func (console *Console) selectAction() {
	templates := &promptui.SelectTemplates{
		Label:    "{{ . }}",
		Active:   "> {{ . | green }}",
		Inactive: "  {{ . }}",
	}

	items := []string{"Scan Text", "Scan File", "Demo", "Quit"}

	prompt := promptui.Select{
		Label:     console.label(),
		Items:     items,
		Templates: templates,
		Size:      4,
	}
	prompt.HideHelp = true

	i, _, err := prompt.RunCursorAt(0, 0)
	console.checkError(err)

	fmt.Print("[1A[2K")

	switch i {
	case 0:
		console.step = ConsoleStepEnterText
	case 1:
		console.step = ConsoleStepEnterFile
	case 2:
		console.step = ConsoleStepDemo
	default:
		console.step = ConsoleExit
	}
}

func (console *Console) enterText() {
	prompt := promptui.Prompt{
		Label: console.label(),
	}
	input, err := prompt.Run()
	console.checkError(err)

	console.scan([]byte(input))
	console.step = ConsoleStepSelectAction
}

func (console *Console) enterFile() {
	prompt := promptui.Prompt{
		Label: console.label(),
		Validate: func(path string) error {
			if _, err := os.Stat(path); err != nil {
				return fmt.Errorf("cannot open %q", path)
			}
			return nil
		},
	}
	path, err := prompt.Run()
	console.checkError(err)

	m, err := dupscan.OpenMapped(path)
	console.checkError(err)

	console.scan(m.Data())
	_ = m.Close()
	console.step = ConsoleStepSelectAction
}

func (console *Console) demo() {
	console.scan(demoInput())
	console.step = ConsoleStepSelectAction
}

func (console *Console) scan(input []byte) {
	console.scanCount++

	collector := scanner.NewSliceCollector(scanner.AlphabetSize)
	if len(input) > 0 {
		scanner.NewScanner().ScanCollector(bytes.NewReader(input), collector)
	}
	console.lastFound = len(collector.Results)

	if console.lastFound > 0 {
		_, _ = colorHighlight.Printf("%d duplicated of %d visible characters\n", console.lastFound, scanner.AlphabetSize)
	}
	displayDuplicates(collector.Results)

	if err := report(input); err != nil && err != dupscan.ErrEmptyInput {
		console.checkError(err)
	}
}

func (console *Console) checkError(err error) {
	if err != nil {
		if err != promptui.ErrInterrupt && err != promptui.ErrEOF {
			color.Red("ERROR: %v", err)
		}
		os.Exit(1)
	}
}

func runConsole() {
	console := &Console{
		quit: make(chan os.Signal, 1),
	}

	signal.Notify(console.quit, os.Interrupt)
	go console.Run()
	<-console.quit
}
