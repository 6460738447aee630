// Package formatter renders parse diagnostics for terminals. Output is
// grouped per file, with the offending source line and a caret pointing at
// the reported column.
package formatter

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/strucware/strut/internal/types"
)

const tabWidth = 8

var (
	errorStyle   = color.New(color.FgRed, color.Bold)
	warningStyle = color.New(color.FgHiYellow, color.Bold)
	codeStyle    = color.New(color.FgYellow, color.Bold)
	fileStyle    = color.New(color.FgCyan, color.Bold)
	lineStyle    = color.New(color.FgHiBlue, color.Bold)
	messageStyle = color.New(color.FgWhite)
)

// SourceCode stores the lines of one input file for snippet rendering.
type SourceCode struct {
	Lines []string
}

// NewSourceCode splits raw file content into lines.
func NewSourceCode(content string) *SourceCode {
	return &SourceCode{Lines: strings.Split(content, "\n")}
}

// Format renders diagnostics with source snippets and caret markers.
func Format(diags []types.Diagnostic, source *SourceCode) string {
	var builder strings.Builder
	for _, d := range diags {
		builder.WriteString(formatOne(d, source))
	}
	return builder.String()
}

func formatOne(d types.Diagnostic, source *SourceCode) string {
	var builder strings.Builder

	severity := warningStyle
	if d.Severity == types.SeverityError {
		severity = errorStyle
	}

	builder.WriteString(severity.Sprintf("%s", d.Severity))
	builder.WriteString(codeStyle.Sprintf(" [%s]", d.Code))
	builder.WriteString(messageStyle.Sprintf(": %s\n", d.Message))
	builder.WriteString(fileStyle.Sprintf(" --> %s:%d:%d\n", d.Filename, d.Line, d.Column))

	if source == nil || d.Line < 1 || d.Line > len(source.Lines) {
		builder.WriteString("\n")
		return builder.String()
	}

	line := expandTabs(source.Lines[d.Line-1])
	builder.WriteString("  |\n")
	builder.WriteString(lineStyle.Sprintf("%d", d.Line))
	builder.WriteString(fmt.Sprintf(" | %s\n", line))
	builder.WriteString("  | ")
	builder.WriteString(strings.Repeat(" ", visualColumn(source.Lines[d.Line-1], d.Column)))
	builder.WriteString(severity.Sprint("^"))
	builder.WriteString("\n\n")

	return builder.String()
}

// expandTabs replaces tab characters with spaces at a fixed tab width so
// caret placement lines up.
func expandTabs(line string) string {
	var expanded strings.Builder
	column := 0
	for _, ch := range line {
		if ch == '\t' {
			spaceCount := tabWidth - (column % tabWidth)
			for i := 0; i < spaceCount; i++ {
				expanded.WriteByte(' ')
				column++
			}
		} else {
			expanded.WriteRune(ch)
			column++
		}
	}
	return expanded.String()
}

// visualColumn maps a 0-based character column onto its on-screen column
// after tab expansion.
func visualColumn(line string, column int) int {
	visual := 0
	for i, ch := range line {
		if i >= column {
			break
		}
		if ch == '\t' {
			visual += tabWidth - (visual % tabWidth)
		} else {
			visual++
		}
	}
	return visual
}
