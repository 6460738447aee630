package types

import "fmt"

// Severity indicates how serious a diagnostic is.
type Severity int

const (
	SeverityWarning Severity = iota
	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// Diagnostic codes emitted by the lexer and the extractor.
const (
	CodeUnrecognizedChar = "unrecognized-char"
	CodeShortRecord      = "short-record"
	CodeDescendingRange  = "descending-range"
)

// Diagnostic describes a recoverable problem found while scanning or
// extracting a structural input file. The pipeline never fails on malformed
// input; it records a diagnostic and moves on.
type Diagnostic struct {
	Code     string
	Severity Severity
	Filename string
	Line     int // 1-based
	Column   int // 0-based
	Offset   int // absolute character offset
	Message  string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s:%d:%d: %s: %s", d.Filename, d.Line, d.Column, d.Code, d.Message)
}

// Sink receives diagnostics as they are produced. Components take a Sink
// instead of writing to a log stream so callers decide the transport.
type Sink func(Diagnostic)

// Collect returns a Sink that appends into the given slice.
func Collect(dst *[]Diagnostic) Sink {
	return func(d Diagnostic) {
		*dst = append(*dst, d)
	}
}
