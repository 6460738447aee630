// Package extract walks a token list produced by the lexer and appends
// structural records to a caller-owned model. Bare numeric rows mean
// different things depending on the active section, so extraction is driven
// by an explicit state machine keyed on section headers.
package extract

import (
	"fmt"
	"strconv"

	"github.com/strucware/strut/internal/model"
	"github.com/strucware/strut/internal/token"
	"github.com/strucware/strut/internal/types"
)

// Minimum numeric values per record for each section kind.
const (
	jointRecordLen  = 4 // id, x, y, z
	memberRecordLen = 3 // id, start node, end node
)

// Result reports what one extraction pass did. Dropped counts runs that were
// too short or malformed; each dropped run also produced a diagnostic.
type Result struct {
	Joints   int
	Members  int
	Supports int
	Dropped  int
}

// Extractor performs one left-to-right pass over a token list. An instance
// holds the transient section state for that pass and is not reusable across
// concurrent callers; construct one per extraction.
type Extractor struct {
	state        sectionState
	sink         types.Sink
	expandRanges bool
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithDiagnosticSink routes dropped-record diagnostics to the given sink.
func WithDiagnosticSink(sink types.Sink) Option {
	return func(e *Extractor) {
		e.sink = sink
	}
}

// WithRangeExpansion controls whether "a TO b" in a support list expands to
// every ID in the inclusive range. Enabled by default.
func WithRangeExpansion(enabled bool) Option {
	return func(e *Extractor) {
		e.expandRanges = enabled
	}
}

// New returns an Extractor in the neutral state.
func New(opts ...Option) *Extractor {
	e := &Extractor{
		state:        stateNeutral,
		expandRanges: true,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// run is a contiguous stretch of NUMBER/FLOAT/TO/COMMA tokens. TO and COMMA
// act as separators; only numeric tokens contribute values.
type run struct {
	values []float64
	ranged []bool // ranged[i]: values[i] was preceded by TO
	first  token.Token
	span   int // tokens consumed, including separators
}

// Extract traverses the token list once, appending joint, member and support
// records to st according to the active section. It never fails; malformed
// stretches are dropped with a diagnostic.
func (e *Extractor) Extract(tokens []token.Token, st *model.Structure) Result {
	var res Result
	e.state = stateNeutral

	cursor := 0
	for cursor < len(tokens) {
		if next, span, ok := transition(tokens, cursor); ok {
			e.state = next
			cursor += span
			continue
		}

		tok := tokens[cursor]
		if !tok.Kind.IsNumeric() {
			cursor++
			continue
		}

		switch e.state {
		case stateJointCoordinates:
			r := collectRun(tokens, cursor)
			e.emitJoints(r, st, &res)
			cursor += r.span

		case stateMemberIncidences:
			r := collectRun(tokens, cursor)
			e.emitMembers(r, st, &res)
			cursor += r.span

		case stateSupportDefinition:
			r := collectRun(tokens, cursor)
			cursor += r.span
			// A support list is only meaningful with a trailing fixity word.
			if cursor < len(tokens) && isFixity(tokens[cursor].Kind) {
				e.emitSupports(r, tokens[cursor].Kind, st, &res)
				cursor++
			} else {
				e.drop(r, "support list without FIXED or PINNED", &res)
			}

		default:
			// Numbers inside load/property bodies or outside any section
			// carry no extractable record.
			cursor++
		}
	}

	return res
}

// collectRun greedily gathers the contiguous NUMBER/FLOAT/TO/COMMA stretch
// starting at cursor. The caller guarantees tokens[cursor] is numeric.
func collectRun(tokens []token.Token, cursor int) run {
	r := run{first: tokens[cursor]}
	pendingRange := false

	i := cursor
	for i < len(tokens) {
		switch tok := tokens[i]; tok.Kind {
		case token.NUMBER, token.FLOAT:
			v, err := strconv.ParseFloat(tok.Text, 64)
			if err != nil {
				// The lexer only classifies well-formed literals; an
				// unparsable one would be a lexer defect, skip the value.
				i++
				continue
			}
			r.values = append(r.values, v)
			r.ranged = append(r.ranged, pendingRange)
			pendingRange = false
		case token.TO:
			pendingRange = true
		case token.COMMA:
			// separator only
		default:
			r.span = i - cursor
			return r
		}
		i++
	}
	r.span = i - cursor
	return r
}

// emitJoints chunks the run into (id, x, y, z) records. A trailing remainder
// shorter than a full record is dropped with a diagnostic.
func (e *Extractor) emitJoints(r run, st *model.Structure, res *Result) {
	full := len(r.values) / jointRecordLen * jointRecordLen
	for i := 0; i < full; i += jointRecordLen {
		st.AddNode(model.Node{
			ID: int(r.values[i]),
			X:  r.values[i+1],
			Y:  r.values[i+2],
			Z:  r.values[i+3],
		})
		res.Joints++
	}
	if rest := len(r.values) - full; rest > 0 {
		e.drop(r, fmt.Sprintf("joint row has %d of %d required values", rest, jointRecordLen), res)
	}
}

// emitMembers chunks the run into (id, start, end) records.
func (e *Extractor) emitMembers(r run, st *model.Structure, res *Result) {
	full := len(r.values) / memberRecordLen * memberRecordLen
	for i := 0; i < full; i += memberRecordLen {
		st.AddMember(model.Member{
			ID:        int(r.values[i]),
			StartNode: int(r.values[i+1]),
			EndNode:   int(r.values[i+2]),
		})
		res.Members++
	}
	if rest := len(r.values) - full; rest > 0 {
		e.drop(r, fmt.Sprintf("member row has %d of %d required values", rest, memberRecordLen), res)
	}
}

// emitSupports turns a support list into one record per node ID, expanding
// "a TO b" ranges inclusively when enabled.
func (e *Extractor) emitSupports(r run, fixityKind token.Kind, st *model.Structure, res *Result) {
	fixity := model.FixityFixed
	if fixityKind == token.PINNED {
		fixity = model.FixityPinned
	}

	add := func(id int) {
		st.AddSupport(model.Support{NodeID: id, Fixity: fixity})
		res.Supports++
	}

	for i := 0; i < len(r.values); i++ {
		id := int(r.values[i])
		if e.expandRanges && r.ranged[i] && i > 0 {
			prev := int(r.values[i-1])
			switch {
			case id > prev:
				for next := prev + 1; next <= id; next++ {
					add(next)
				}
			case id == prev:
				// "n TO n" is just node n, already added.
			default:
				// A descending range has no expansion; keep the endpoint and
				// flag the range so it never vanishes silently.
				e.warnDescendingRange(r, prev, id)
				add(id)
			}
			continue
		}
		add(id)
	}
}

func (e *Extractor) warnDescendingRange(r run, from, to int) {
	if e.sink == nil {
		return
	}
	e.sink(types.Diagnostic{
		Code:     types.CodeDescendingRange,
		Severity: types.SeverityWarning,
		Line:     r.first.Line,
		Column:   r.first.Column,
		Offset:   r.first.Start,
		Message:  fmt.Sprintf("support range %d TO %d is descending and was not expanded", from, to),
	})
}

func (e *Extractor) drop(r run, reason string, res *Result) {
	res.Dropped++
	if e.sink == nil {
		return
	}
	e.sink(types.Diagnostic{
		Code:     types.CodeShortRecord,
		Severity: types.SeverityWarning,
		Line:     r.first.Line,
		Column:   r.first.Column,
		Offset:   r.first.Start,
		Message: fmt.Sprintf("dropped %s run of %d value(s) starting at %q: %s",
			e.state, len(r.values), r.first.Text, reason),
	})
}

func isFixity(k token.Kind) bool {
	return k == token.FIXED || k == token.PINNED
}
