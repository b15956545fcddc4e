package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/wordwrap"
	"golang.org/x/term"
	"pkt.systems/idcase"
)

const (
	defaultWidth     = 80
	minWidth         = 40
	styleDescIndent  = 4
	styleExampleText = "myHTTPServer2Go"
)

// printStyles lists every style with its description wrapped to width and an
// example conversion.
func printStyles(w io.Writer, width int) {
	width = max(width, minWidth)
	for _, name := range idcase.AvailableStyles() {
		style, _ := idcase.StyleByName(name)
		example := idcase.Convert(styleExampleText, style, defaultSettings)
		fmt.Fprintf(w, "%s\t%s -> %s\n", name, styleExampleText, example)
		desc := wordwrap.String(style.Describe(), width-styleDescIndent)
		fmt.Fprintln(w, indent.String(desc, styleDescIndent))
	}
}

func terminalWidth(f *os.File, fallback int) int {
	fd := int(f.Fd())
	if term.IsTerminal(fd) {
		if w, _, err := term.GetSize(fd); err == nil && w > 0 {
			return w
		}
	}
	if value := strings.TrimSpace(os.Getenv("COLUMNS")); value != "" {
		if w, err := strconv.Atoi(value); err == nil && w > 0 {
			return w
		}
	}
	return fallback
}
