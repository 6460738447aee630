package extract

import "github.com/strucware/strut/internal/token"

// sectionState is the structural-data block the extractor is currently
// inside. Exactly one state is active at any cursor position, and a state
// set by a section header persists across every data row of that section
// until another header or a section boundary replaces it.
type sectionState int

const (
	stateNeutral sectionState = iota
	stateJointCoordinates
	stateMemberIncidences
	stateLoadDefinition
	statePropertyDefinition
	stateSupportDefinition
)

func (s sectionState) String() string {
	switch s {
	case stateNeutral:
		return "neutral"
	case stateJointCoordinates:
		return "joint coordinates"
	case stateMemberIncidences:
		return "member incidences"
	case stateLoadDefinition:
		return "load definition"
	case statePropertyDefinition:
		return "property definition"
	case stateSupportDefinition:
		return "support definition"
	default:
		return "unknown"
	}
}

// transition inspects the next one or two tokens at the cursor and reports
// whether they form a section header or boundary. It returns the state the
// header selects and how many tokens it spans; ok is false when the tokens
// at the cursor do not change the state.
func transition(tokens []token.Token, cursor int) (next sectionState, span int, ok bool) {
	if cursor >= len(tokens) {
		return 0, 0, false
	}

	peek := func(offset int) token.Kind {
		if cursor+offset >= len(tokens) {
			return token.EOF
		}
		return tokens[cursor+offset].Kind
	}

	switch tokens[cursor].Kind {
	case token.JOINT:
		if peek(1) == token.COORDINATES {
			return stateJointCoordinates, 2, true
		}
	case token.MEMBER:
		if peek(1) == token.INCIDENCES {
			return stateMemberIncidences, 2, true
		}
		if peek(1) == token.PROPERTY {
			return statePropertyDefinition, 2, true
		}
	case token.SUPPORTS:
		return stateSupportDefinition, 1, true
	case token.LOAD:
		return stateLoadDefinition, 1, true
	case token.UNIT, token.PERFORM, token.FINISH, token.END:
		// Section boundaries return the machine to neutral.
		return stateNeutral, 1, true
	}
	return 0, 0, false
}
