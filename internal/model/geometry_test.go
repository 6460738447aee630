package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// portalFrame is a single-bay, single-storey frame: two columns 3.0 high and
// one 5.0 beam across the top.
func portalFrame() *Structure {
	st := New()
	st.AddNode(Node{ID: 1, X: 0, Y: 0, Z: 0})
	st.AddNode(Node{ID: 2, X: 0, Y: 3, Z: 0})
	st.AddNode(Node{ID: 3, X: 5, Y: 3, Z: 0})
	st.AddNode(Node{ID: 4, X: 5, Y: 0, Z: 0})
	st.AddMember(Member{ID: 1, StartNode: 1, EndNode: 2})
	st.AddMember(Member{ID: 2, StartNode: 2, EndNode: 3})
	st.AddMember(Member{ID: 3, StartNode: 3, EndNode: 4})
	return st
}

func TestBounds(t *testing.T) {
	t.Parallel()

	b := portalFrame().Bounds()
	assert.Equal(t, 5.0, b.Width())
	assert.Equal(t, 3.0, b.Height())
	assert.Equal(t, 0.0, b.Depth())

	assert.Equal(t, BoundingBox{}, New().Bounds())
}

func TestFloorLevels(t *testing.T) {
	t.Parallel()

	levels := portalFrame().FloorLevels()
	assert.Equal(t, []float64{0, 3}, levels)
}

func TestFloorLevelsClusterWithinTolerance(t *testing.T) {
	t.Parallel()

	st := New()
	st.AddNode(Node{ID: 1, Y: 0})
	st.AddNode(Node{ID: 2, Y: 0.2}) // same level as node 1
	st.AddNode(Node{ID: 3, Y: 3.0})
	assert.Equal(t, []float64{0, 3.0}, st.FloorLevels())
}

func TestMemberLength(t *testing.T) {
	t.Parallel()

	st := portalFrame()
	assert.InDelta(t, 3.0, st.MemberLength(st.Members[0]), 1e-9)
	assert.InDelta(t, 5.0, st.MemberLength(st.Members[1]), 1e-9)

	// dangling endpoint
	assert.Equal(t, 0.0, st.MemberLength(Member{ID: 9, StartNode: 1, EndNode: 42}))
}

func TestConnectedMembers(t *testing.T) {
	t.Parallel()

	st := portalFrame()
	assert.Equal(t, 2, st.ConnectedMembers(2))
	assert.Equal(t, 1, st.ConnectedMembers(1))
	assert.Equal(t, 0, st.ConnectedMembers(42))
}

func TestSummarize(t *testing.T) {
	t.Parallel()

	summary := portalFrame().Summarize()
	assert.Equal(t, 2, summary.FloorCount)
	assert.InDelta(t, 5.0, summary.MaxSpan, 1e-9)
	assert.InDelta(t, 5.0, summary.TypicalSpan, 1e-9)
	assert.Equal(t, 3.0, summary.Bounds.Height())
}

func TestSummarizeEmptyStructure(t *testing.T) {
	t.Parallel()

	summary := New().Summarize()
	assert.Equal(t, 0, summary.FloorCount)
	assert.Equal(t, 0.0, summary.MaxSpan)
	require.Empty(t, summary.FloorLevels)
}
