package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/danieljhkim/p/internal/aliases"
)

var (
	// fatih/color disables itself when stdout is not a TTY
	successColor = color.New(color.FgGreen, color.Bold)
	errorColor   = color.New(color.FgRed, color.Bold)
	infoColor    = color.New(color.FgCyan)
	headerColor  = color.New(color.FgBlue, color.Bold)
	nameColor    = color.New(color.FgWhite, color.Bold)
	dimColor     = color.New(color.FgHiBlack)
)

// Printer writes human-readable output to a command's streams.
type Printer struct {
	out io.Writer
	err io.Writer
}

// NewPrinter creates a Printer writing normal output to out and errors to errOut.
func NewPrinter(out, errOut io.Writer) *Printer {
	return &Printer{out: out, err: errOut}
}

// Section prints a header over a rule of width dashes, preceded by a blank
// line.
func (p *Printer) Section(title string, width int) {
	fmt.Fprintln(p.out)
	_, _ = headerColor.Fprintln(p.out, title)
	fmt.Fprintln(p.out, strings.Repeat("-", width))
}

// Success prints a success message with a checkmark.
func (p *Printer) Success(msg string) {
	_, _ = successColor.Fprintf(p.out, "✓ %s\n", msg)
}

// Error prints an error message to stderr.
func (p *Printer) Error(msg string) {
	_, _ = errorColor.Fprintf(p.err, "✗ %s\n", msg)
}

// Info prints a plain informational line.
func (p *Printer) Info(msg string) {
	fmt.Fprintln(p.out, msg)
}

// Hint prints a dimmed line to stderr.
func (p *Printer) Hint(msg string) {
	_, _ = dimColor.Fprintf(p.err, "  %s\n", msg)
}

// Path prints a bare path. Never colored: wrapper scripts read it.
func (p *Printer) Path(path string) {
	fmt.Fprintln(p.out, path)
}

// Prompt prints a prompt without a trailing newline.
func (p *Printer) Prompt(msg string) {
	_, _ = infoColor.Fprint(p.out, msg)
}

// EmptyState prints a message when there's no data to show.
func (p *Printer) EmptyState(msg string) {
	fmt.Fprintln(p.out, msg)
}

// Entries prints aliases as two left-aligned columns. Names are padded to
// at least width so paths line up.
func (p *Printer) Entries(entries []aliases.Entry, width int) {
	for _, e := range entries {
		_, _ = nameColor.Fprintf(p.out, "%-*s", width, e.Name)
		fmt.Fprintf(p.out, "  %s\n", e.Path)
	}
	fmt.Fprintln(p.out)
}
