// Package compileerr renders pipeline failures with source context and a
// caret, and implements the one-line user-visible format:
// "<stage>: <kind> at token <N>: <hint>".
package compileerr

import (
	"fmt"
	"strings"
)

// Stage names the pipeline phase that produced an error.
type Stage string

const (
	Scan  Stage = "scan"
	Parse Stage = "parse"
	Lower Stage = "lower"
)

// Error is a single pipeline failure: which stage produced it, which
// token index it points at, a short machine-stable kind, and a
// human-readable hint.
type Error struct {
	Stage     Stage
	Kind      string
	TokenIdx  int
	Hint      string
	Line, Col int
	Source    string
	File      string
}

func (e *Error) Error() string { return e.Brief() }

// Brief renders the one-line format.
func (e *Error) Brief() string {
	return fmt.Sprintf("%s: %s at token %d: %s", e.Stage, e.Kind, e.TokenIdx, e.Hint)
}

// Format renders the error with a source line and caret for CLI output.
func (e *Error) Format() string {
	var sb strings.Builder

	if e.File != "" {
		fmt.Fprintf(&sb, "%s in %s:%d:%d\n", e.Stage, e.File, e.Line, e.Col)
	} else {
		fmt.Fprintf(&sb, "%s error at %d:%d\n", e.Stage, e.Line, e.Col)
	}

	if line := sourceLine(e.Source, e.Line); line != "" {
		prefix := fmt.Sprintf("%4d | ", e.Line)
		sb.WriteString(prefix)
		sb.WriteString(line)
		sb.WriteString("\n")
		col := e.Col - 1
		if col < 0 {
			col = 0
		}
		sb.WriteString(strings.Repeat(" ", len(prefix)+col))
		sb.WriteString("^\n")
	}

	sb.WriteString(e.Hint)
	return sb.String()
}

func sourceLine(source string, n int) string {
	if source == "" || n < 1 {
		return ""
	}
	lines := strings.Split(source, "\n")
	if n > len(lines) {
		return ""
	}
	return lines[n-1]
}
