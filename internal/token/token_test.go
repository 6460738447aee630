package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookup(t *testing.T) {
	t.Parallel()
	tests := []struct {
		word     string
		expected Kind
		matched  bool
	}{
		{"JOINT", JOINT, true},
		{"COORDINATES", COORDINATES, true},
		{"MEMBER", MEMBER, true},
		{"INCIDENCES", INCIDENCES, true},
		{"TO", TO, true},
		{"FIXED", FIXED, true},
		{"FY", FY, true},
		{"UNI", UNI, true},
		{"PERFORM", PERFORM, true},
		{"STEEL", IDENT, false},
		{"", IDENT, false},
	}

	for _, tc := range tests {
		kind, ok := Lookup(tc.word)
		assert.Equal(t, tc.expected, kind, "word %q", tc.word)
		assert.Equal(t, tc.matched, ok, "word %q", tc.word)
	}
}

func TestKindString(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "JOINT", JOINT.String())
	assert.Equal(t, "EOF", EOF.String())
	assert.Equal(t, ",", COMMA.String())
	assert.Equal(t, "UNKNOWN", Kind(-1).String())
}

func TestKindIsNumeric(t *testing.T) {
	t.Parallel()
	assert.True(t, NUMBER.IsNumeric())
	assert.True(t, FLOAT.IsNumeric())
	assert.False(t, IDENT.IsNumeric())
	assert.False(t, COMMENT.IsNumeric())
}

func TestTokenString(t *testing.T) {
	t.Parallel()
	tok := Token{Kind: NUMBER, Text: "42"}
	assert.Equal(t, "NUMBER(42)", tok.String())
}
