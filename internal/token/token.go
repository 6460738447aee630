package token

// Kind classifies a lexical token scanned from a structural input file.
type Kind int

const (
	EOF Kind = iota
	NEWLINE
	COMMENT

	// Literals
	NUMBER // 12, -3
	FLOAT  // 12.5, 1.2e-3
	IDENT  // unclassified word, original casing preserved

	// Punctuation
	COMMA  // ','
	EQUALS // '='
	LPAREN // '('
	RPAREN // ')'

	// Structural keywords
	JOINT
	COORDINATES
	MEMBER
	INCIDENCES
	PROPERTY
	CONSTANTS
	SUPPORTS
	LOAD
	ELEMENT
	TO
	PRISMATIC
	SECTION
	MATERIAL
	FIXED
	PINNED

	// Force and moment axis codes
	FX
	FY
	FZ
	MX
	MY
	MZ

	// Load and direction codes
	UNI
	GX
	GY
	GZ

	// Control keywords
	UNIT
	PERFORM
	ANALYSIS
	FINISH
	END
)

var kindNames = map[Kind]string{
	EOF:     "EOF",
	NEWLINE: "NEWLINE",
	COMMENT: "COMMENT",
	NUMBER:  "NUMBER",
	FLOAT:   "FLOAT",
	IDENT:   "IDENT",
	COMMA:   ",",
	EQUALS:  "=",
	LPAREN:  "(",
	RPAREN:  ")",

	JOINT:       "JOINT",
	COORDINATES: "COORDINATES",
	MEMBER:      "MEMBER",
	INCIDENCES:  "INCIDENCES",
	PROPERTY:    "PROPERTY",
	CONSTANTS:   "CONSTANTS",
	SUPPORTS:    "SUPPORTS",
	LOAD:        "LOAD",
	ELEMENT:     "ELEMENT",
	TO:          "TO",
	PRISMATIC:   "PRISMATIC",
	SECTION:     "SECTION",
	MATERIAL:    "MATERIAL",
	FIXED:       "FIXED",
	PINNED:      "PINNED",

	FX: "FX", FY: "FY", FZ: "FZ",
	MX: "MX", MY: "MY", MZ: "MZ",

	UNI: "UNI", GX: "GX", GY: "GY", GZ: "GZ",

	UNIT:     "UNIT",
	PERFORM:  "PERFORM",
	ANALYSIS: "ANALYSIS",
	FINISH:   "FINISH",
	END:      "END",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "UNKNOWN"
}

// IsNumeric reports whether the kind carries a numeric value.
func (k Kind) IsNumeric() bool {
	return k == NUMBER || k == FLOAT
}

// Token is a classified, positioned fragment of source text. Tokens are
// created once by the lexer and never mutated afterwards.
type Token struct {
	Kind   Kind
	Text   string
	Line   int // 1-based line of the first character
	Column int // 0-based column of the first character
	Start  int // absolute offset of the first character, inclusive
	Stop   int // absolute offset of the last character, inclusive
}

func (t Token) String() string {
	return t.Kind.String() + "(" + t.Text + ")"
}
