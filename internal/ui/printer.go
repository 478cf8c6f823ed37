package ui

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// ListItem is one row of a plain list. Dim rows are printed muted.
type ListItem struct {
	Text   string
	Indent int
	Dim    bool
}

// Printer provides methods for printing UI components to a writer.
// Subcommands use it for all styled output.
type Printer struct {
	out    io.Writer
	width  int
	styles Styles
}

// NewPrinter creates a new Printer that writes to the given writer.
// If w is nil, os.Stdout is used.
func NewPrinter(w io.Writer, colors Colors) *Printer {
	if w == nil {
		w = os.Stdout
	}
	return &Printer{
		out:    w,
		width:  GetTerminalWidth(),
		styles: NewStyles(colors),
	}
}

// SetWidth overrides the detected terminal width.
func (p *Printer) SetWidth(width int) *Printer {
	p.width = clampWidth(width)
	return p
}

// Width returns the current terminal width used by this printer
func (p *Printer) Width() int {
	return p.width
}

// Print writes content to the output
func (p *Printer) Print(content string) {
	_, _ = fmt.Fprint(p.out, content)
}

// Println writes content with a newline
func (p *Printer) Println(content string) {
	_, _ = fmt.Fprintln(p.out, content)
}

// Newline prints an empty line
func (p *Printer) Newline() {
	_, _ = fmt.Fprintln(p.out)
}

// PrintHeader prints a command header box
func (p *Printer) PrintHeader(h Header) {
	p.Println(h.Render(p.styles, p.width))
}

// PrintSuccess prints a success result box
func (p *Printer) PrintSuccess(title string, details []Field) {
	p.Println(RenderSuccessBox(p.styles, title, details, p.width))
}

// PrintError prints an error result box with troubleshooting tips
func (p *Printer) PrintError(title string, err error, hints []string) {
	p.Println(RenderErrorBox(p.styles, title, err, hints, p.width))
}

// PrintWarning prints a warning result box
func (p *Printer) PrintWarning(title string, details []Field) {
	p.Println(RenderWarningBox(p.styles, title, details, p.width))
}

// PrintFields prints aligned key/value lines without a box.
func (p *Printer) PrintFields(fields []Field) {
	p.Println(renderFields(p.styles, fields, 2))
}

// PrintList prints rows indented by two spaces per level.
func (p *Printer) PrintList(items []ListItem) {
	for _, item := range items {
		line := strings.Repeat("  ", item.Indent+1) + item.Text
		if item.Dim {
			line = p.styles.Muted.Render(line)
		} else {
			line = p.styles.Value.Render(line)
		}
		p.Println(line)
	}
}
