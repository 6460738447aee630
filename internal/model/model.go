package model

import "fmt"

// Node is a labeled point in 3D space referenced by member records.
// STAAD convention: Y is the vertical axis.
type Node struct {
	ID int
	X  float64
	Y  float64
	Z  float64
}

// Member is a directed connectivity record linking a member ID to its start
// and end node IDs. Endpoint validity is not checked here; dangling
// references are a downstream validator's concern.
type Member struct {
	ID        int
	StartNode int
	EndNode   int
}

// Fixity classifies a support condition.
type Fixity int

const (
	FixityFixed Fixity = iota
	FixityPinned
)

func (f Fixity) String() string {
	switch f {
	case FixityFixed:
		return "FIXED"
	case FixityPinned:
		return "PINNED"
	default:
		return "UNKNOWN"
	}
}

// Support records a support condition at a node.
type Support struct {
	NodeID int
	Fixity Fixity
}

// Structure is the accumulator the extractor appends records into. The
// caller owns its lifecycle; the extractor only ever appends.
type Structure struct {
	Nodes    []Node
	Members  []Member
	Supports []Support
}

// New returns an empty Structure.
func New() *Structure {
	return &Structure{}
}

func (s *Structure) AddNode(n Node) {
	s.Nodes = append(s.Nodes, n)
}

func (s *Structure) AddMember(m Member) {
	s.Members = append(s.Members, m)
}

func (s *Structure) AddSupport(sp Support) {
	s.Supports = append(s.Supports, sp)
}

// NodeByID returns the first node with the given ID.
func (s *Structure) NodeByID(id int) (Node, bool) {
	for _, n := range s.Nodes {
		if n.ID == id {
			return n, true
		}
	}
	return Node{}, false
}

func (s *Structure) String() string {
	return fmt.Sprintf("structure{nodes: %d, members: %d, supports: %d}",
		len(s.Nodes), len(s.Members), len(s.Supports))
}
