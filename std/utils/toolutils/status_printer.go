package toolutils

import (
	"fmt"
	"io"
	"strings"
)

// StatusPrinter prints aligned key=value lines.
type StatusPrinter struct {
	File    io.Writer
	Padding int
}

// Print writes one key=value line, left-padding the key to Padding.
func (s StatusPrinter) Print(key string, value any) {
	pad := max(s.Padding-len(key), 0)
	fmt.Fprintf(s.File, "%s%s=%v\n", strings.Repeat(" ", pad), key, value)
}

// Section writes a heading for the lines that follow.
func (s StatusPrinter) Section(title string) {
	fmt.Fprintf(s.File, "%s:\n", title)
}
