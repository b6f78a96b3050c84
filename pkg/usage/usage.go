// Package usage renders help text for an argparse.Parser.
package usage

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/rickgorman/argparse/pkg/argparse"
)

var (
	bold = color.New(color.Bold).SprintFunc()
	cyan = color.New(color.FgCyan).SprintFunc()
)

// Render writes the usage line, author, description and the positional and
// optional argument tables for p. Arguments appear in registration order.
func Render(w io.Writer, p *argparse.Parser) error {
	specs := p.Specs()
	width := columnWidth(specs)

	var positional, optional []string
	for _, s := range specs {
		if s.Importance == argparse.Positional {
			positional = append(positional, s.Name)
		} else {
			optional = append(optional, "[--"+s.Name+"]")
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s %s\n", bold("usage:"), p.ExecName(), strings.Join(positional, " "))
	if len(optional) > 0 {
		fmt.Fprintf(&b, "%s\n", strings.Join(optional, " "))
	}
	b.WriteString("\n")

	if p.Author() != "" {
		fmt.Fprintf(&b, " Author      : %s\n", p.Author())
	}
	if p.Description() != "" {
		fmt.Fprintf(&b, " Description : %s\n", p.Description())
	}

	fmt.Fprintf(&b, "\n%s\n", bold("positional arguments:"))
	for _, s := range specs {
		if s.Importance == argparse.Positional {
			writeRow(&b, s.Name, s.Help, width)
		}
	}

	fmt.Fprintf(&b, "\n%s\n", bold("optional arguments:"))
	for _, s := range specs {
		if s.Importance == argparse.Optional {
			writeRow(&b, optionLabel(s), s.Help, width)
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func writeRow(b *strings.Builder, label, help string, width int) {
	cell := "  " + label
	pad := width - len(cell)
	if pad < 1 {
		pad = 1
	}
	fmt.Fprintf(b, "  %s%s%s\n", cyan(label), strings.Repeat(" ", pad), help)
}

// optionLabel is "--name NAME", or just "--name" for flags.
func optionLabel(s argparse.ArgumentSpec) string {
	if s.Type.IsFlag() {
		return "--" + s.Name
	}
	return "--" + s.Name + " " + strings.ToUpper(s.Name)
}

func columnWidth(specs []argparse.ArgumentSpec) int {
	width := 0
	for _, s := range specs {
		if w := 2*len(s.Name) + 7; w > width {
			width = w
		}
	}
	return width
}
