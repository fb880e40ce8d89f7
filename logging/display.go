package logging

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pterm/pterm"
)

var (
	successFG = pterm.FgLightGreen
	successBG = pterm.NewStyle(pterm.BgLightGreen, pterm.FgBlack)
	warnFG    = pterm.FgYellow
	warnBG    = pterm.NewStyle(pterm.BgYellow, pterm.FgBlack)
	errorFG   = pterm.FgRed
	errorBG   = pterm.NewStyle(pterm.BgRed, pterm.FgWhite)
	infoFG    = successFG
)

// PrintErrorMessage prints a tagged Go error to stderr.
func PrintErrorMessage(tag string, err error) {
	errorBG.Print(tag)
	errorFG.Println(" " + err.Error())
}

func (ce *ConfigError) display() {
	errorBG.Print(ce.Kind + " Error")
	errorFG.Println(" " + ce.Message)
}

func (cm *CompileMessage) display() {
	cm.displayBanner()
	fmt.Println(cm.Message)

	if cm.Position != nil {
		cm.displayCodeSelection()
	}
}

func (cm *CompileMessage) displayBanner() {
	fmt.Print("\n-- ")
	kindStr := compileMsgStrings[cm.Kind]
	kindLen := len(kindStr)
	if cm.isError() {
		errorBG.Print(kindStr + " Error")
		kindLen += 7
	} else {
		warnBG.Print(kindStr + " Warning")
		kindLen += 9
	}
	fmt.Print(" ")

	fileName := ""
	if cm.Context != nil {
		fileName = filepath.Base(cm.Context.FilePath)
	}

	bannerLen := pterm.GetTerminalWidth() / 2
	if bannerLen > 50 {
		bannerLen = 50
	}
	dashCount := bannerLen - len(fileName) - kindLen - 1
	if dashCount < 0 {
		dashCount = 0
	}

	fmt.Print(strings.Repeat("-", dashCount) + " ")
	infoFG.Println(fileName)
}

// displayCodeSelection prints the offending source lines with caret
// underlines beneath the selected column range.
func (cm *CompileMessage) displayCodeSelection() {
	fmt.Println()

	f, err := os.Open(cm.Context.FilePath)
	if err != nil {
		return
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	sc.Split(bufio.ScanLines)
	lines := make([]string, cm.Position.EndLn-cm.Position.StartLn+1)
	for lineNumber := 1; sc.Scan(); lineNumber++ {
		if lineNumber >= cm.Position.StartLn && lineNumber <= cm.Position.EndLn {
			lines[lineNumber-cm.Position.StartLn] = sc.Text()
		}
	}

	minWhitespace := -1
	for _, line := range lines {
		leading := 0
		for _, c := range line {
			if c == ' ' {
				leading++
			} else if c == '\t' {
				leading += 4
			} else {
				break
			}
		}
		if minWhitespace == -1 || minWhitespace > leading {
			minWhitespace = leading
		}
	}
	if minWhitespace < 0 {
		minWhitespace = 0
	}

	maxLineNumberWidth := len(strconv.Itoa(cm.Position.EndLn)) + 1
	lineNumberFmt := "%-" + strconv.Itoa(maxLineNumberWidth) + "v"

	for i, line := range lines {
		infoFG.Print(fmt.Sprintf(lineNumberFmt, i+cm.Position.StartLn))
		fmt.Print("|  ")
		trimmed := strings.ReplaceAll(line, "\t", "    ")
		if minWhitespace <= len(trimmed) {
			trimmed = trimmed[minWhitespace:]
		}
		fmt.Println(trimmed)

		fmt.Print(strings.Repeat(" ", maxLineNumberWidth), "|  ")
		switch {
		case i == 0 && i == len(lines)-1:
			fmt.Print(strings.Repeat(" ", max0(cm.Position.StartCol-minWhitespace)))
			errorFG.Println(strings.Repeat("^", max0(cm.Position.EndCol-cm.Position.StartCol)))
		case i == 0:
			fmt.Print(strings.Repeat(" ", max0(cm.Position.StartCol-minWhitespace)))
			errorFG.Println(strings.Repeat("^", max0(len(line)-cm.Position.StartCol-minWhitespace)))
		case i == len(lines)-1:
			errorFG.Println(strings.Repeat("^", max0(cm.Position.EndCol-minWhitespace)))
		default:
			errorFG.Println(strings.Repeat("^", max0(len(line)-minWhitespace)))
		}
	}

	fmt.Println()
}

func max0(n int) int {
	if n < 0 {
		return 0
	}
	return n
}

const fatalPostlude = "This is likely a bug in the compiler driver itself, not your Fray code."

// LogFatal prints a driver-internal error (an external pass broke its
// contract) and terminates the process. Unlike compile/config errors, a
// fatal is never accumulated into a module's NumErrors — the driver itself
// is in an unrecoverable state.
func LogFatal(message string) {
	fmt.Print("\n")
	errorBG.Print("Fatal Error ")
	errorFG.Println(message)
	infoFG.Println(fatalPostlude)
	os.Exit(2)
}

// PrintVerboseLine prints one right-padded pass-timing line, serialized
// against diagnostic output.
func PrintVerboseLine(line string) {
	writeLine(func() {
		fmt.Fprintln(os.Stderr, line)
	})
}

// PrintSummary prints the closing summary line: N errors, M warnings.
func PrintSummary(errorCount, warnCount int) {
	writeLine(func() {
		if errorCount == 0 {
			successFG.Print("All done! ")
		} else {
			errorFG.Print("Oh no! ")
		}

		fmt.Print("(")
		printCount(errorCount, "error", "errors", errorFG)
		fmt.Print(", ")
		printCount(warnCount, "warning", "warnings", warnFG)
		fmt.Println(")")
	})
}

func printCount(n int, singular, plural string, fg pterm.Color) {
	if n == 0 {
		successFG.Print(0)
		fmt.Print(" " + plural)
		return
	}
	fg.Print(n)
	if n == 1 {
		fmt.Print(" " + singular)
	} else {
		fmt.Print(" " + plural)
	}
}
