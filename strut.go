// Package strut parses STAAD-style structural input text into an in-memory
// model of nodes, members and supports. The pipeline is a single-pass lexer
// followed by a section-aware extractor; both are deliberately permissive
// and report problems as diagnostics instead of failing.
package strut

import (
	"fmt"
	"os"

	"github.com/strucware/strut/internal/extract"
	"github.com/strucware/strut/internal/lexer"
	"github.com/strucware/strut/internal/model"
	"github.com/strucware/strut/internal/types"
)

// Structure is the parsed structural model.
type Structure = model.Structure

// Diagnostic is a recoverable problem recorded while parsing.
type Diagnostic = types.Diagnostic

// Stats reports what extraction produced and dropped.
type Stats = extract.Result

// Parse tokenizes src and extracts its structural records. It never fails:
// malformed stretches of input are skipped and described in the returned
// diagnostics. Callers wanting strict behavior should inspect the
// diagnostics and the dropped count.
func Parse(src string) (*Structure, []Diagnostic, Stats) {
	var diags []types.Diagnostic
	sink := types.Collect(&diags)

	tokens := lexer.New(src, lexer.WithDiagnosticSink(sink)).Tokenize()

	st := model.New()
	stats := extract.New(extract.WithDiagnosticSink(sink)).Extract(tokens, st)

	return st, diags, stats
}

// ParseFile reads path and parses its content. The file is assumed to be
// decoded text already; encoding detection is the caller's concern.
func ParseFile(path string) (*Structure, []Diagnostic, Stats, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, Stats{}, fmt.Errorf("reading %s: %w", path, err)
	}

	st, diags, stats := Parse(string(content))
	for i := range diags {
		diags[i].Filename = path
	}
	return st, diags, stats, nil
}
