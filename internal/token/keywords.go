package token

// keywords is the fixed vocabulary recognized by the lexer. It is built once
// at startup and never modified; lookups expect the candidate word to be
// uppercased already.
var keywords = map[string]Kind{
	"JOINT":       JOINT,
	"COORDINATES": COORDINATES,
	"MEMBER":      MEMBER,
	"INCIDENCES":  INCIDENCES,
	"PROPERTY":    PROPERTY,
	"CONSTANTS":   CONSTANTS,
	"SUPPORTS":    SUPPORTS,
	"LOAD":        LOAD,
	"ELEMENT":     ELEMENT,
	"TO":          TO,
	"PRISMATIC":   PRISMATIC,
	"SECTION":     SECTION,
	"MATERIAL":    MATERIAL,
	"FIXED":       FIXED,
	"PINNED":      PINNED,

	"FX": FX,
	"FY": FY,
	"FZ": FZ,
	"MX": MX,
	"MY": MY,
	"MZ": MZ,

	"UNI": UNI,
	"GX":  GX,
	"GY":  GY,
	"GZ":  GZ,

	"UNIT":     UNIT,
	"PERFORM":  PERFORM,
	"ANALYSIS": ANALYSIS,
	"FINISH":   FINISH,
	"END":      END,
}

// Lookup returns the keyword kind for an uppercased word, or IDENT when the
// word is not part of the vocabulary.
func Lookup(upper string) (Kind, bool) {
	kind, ok := keywords[upper]
	if !ok {
		return IDENT, false
	}
	return kind, true
}
