package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

var stderr io.Writer = os.Stderr

// Printer writes command output, coloured only on terminals.
type Printer struct {
	out   *termenv.Output
	w     io.Writer
	color bool
}

// NewPrinter creates a printer for w.
func NewPrinter(w io.Writer) *Printer {
	color := false
	if f, ok := w.(*os.File); ok {
		color = term.IsTerminal(int(f.Fd()))
	}
	if !color {
		return &Printer{out: termenv.NewOutput(w, termenv.WithProfile(termenv.Ascii)), w: w}
	}
	return &Printer{out: termenv.NewOutput(w), w: w, color: true}
}

func (p *Printer) styled(text, color string) string {
	if !p.color {
		return text
	}
	return p.out.String(text).Foreground(p.out.Color(color)).String()
}

// OK prints a success line.
func (p *Printer) OK(format string, args ...any) {
	fmt.Fprintf(p.w, "%s %s\n", p.styled("✓", "2"), fmt.Sprintf(format, args...))
}

// Fail prints a failure line.
func (p *Printer) Fail(format string, args ...any) {
	fmt.Fprintf(p.w, "%s %s\n", p.styled("✗", "1"), fmt.Sprintf(format, args...))
}

// Warn prints a warning line.
func (p *Printer) Warn(format string, args ...any) {
	fmt.Fprintf(p.w, "%s %s\n", p.styled("!", "3"), fmt.Sprintf(format, args...))
}

// System prints a standardized system message.
func (p *Printer) System(format string, args ...any) {
	fmt.Fprintf(p.w, "%s %s\n", p.styled(">>>", "8"), fmt.Sprintf(format, args...))
}

// Println prints plain text.
func (p *Printer) Println(args ...any) {
	fmt.Fprintln(p.w, args...)
}

// Writer exposes the underlying writer.
func (p *Printer) Writer() io.Writer {
	return p.w
}
