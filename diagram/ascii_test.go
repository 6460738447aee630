package diagram

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/strucware/strut/internal/model"
)

func twoStoreyFrame() *model.Structure {
	st := model.New()
	st.AddNode(model.Node{ID: 1, X: 0, Y: 0})
	st.AddNode(model.Node{ID: 2, X: 5, Y: 0})
	st.AddNode(model.Node{ID: 3, X: 0, Y: 3})
	st.AddNode(model.Node{ID: 4, X: 5, Y: 3})
	st.AddNode(model.Node{ID: 5, X: 0, Y: 6})
	st.AddNode(model.Node{ID: 6, X: 5, Y: 6})
	st.AddMember(model.Member{ID: 1, StartNode: 1, EndNode: 3})
	st.AddMember(model.Member{ID: 2, StartNode: 3, EndNode: 5})
	st.AddMember(model.Member{ID: 3, StartNode: 3, EndNode: 4})
	st.AddSupport(model.Support{NodeID: 1, Fixity: model.FixityFixed})
	return st
}

func TestElevationProfile(t *testing.T) {
	t.Parallel()

	out := ElevationProfile(twoStoreyFrame())
	assert.Contains(t, out, "nodes per floor level")
	assert.Contains(t, out, "level 1: elevation 0.00, 2 node(s)")
	assert.Contains(t, out, "level 2: elevation 3.00, 2 node(s)")
	assert.Contains(t, out, "level 3: elevation 6.00, 2 node(s)")
}

func TestElevationProfileClustersWithinTolerance(t *testing.T) {
	t.Parallel()

	st := model.New()
	st.AddNode(model.Node{ID: 1, Y: 0})
	st.AddNode(model.Node{ID: 2, Y: model.FloorTolerance - 0.1})
	st.AddNode(model.Node{ID: 3, Y: 3})

	out := ElevationProfile(st)
	assert.Contains(t, out, "level 1: elevation 0.00, 2 node(s)")
	assert.Contains(t, out, "level 2: elevation 3.00, 1 node(s)")
}

func TestElevationProfileEmpty(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "  (no nodes)\n", ElevationProfile(model.New()))
}

func TestSummaryBox(t *testing.T) {
	t.Parallel()

	out := SummaryBox("frame.std", []string{"Floors: 3"})
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 5)
	assert.Contains(t, lines[1], "frame.std")
	assert.Contains(t, lines[3], "Floors: 3")
}

func TestGeometryLines(t *testing.T) {
	t.Parallel()

	lines := GeometryLines(twoStoreyFrame().Summarize())
	assert.Len(t, lines, 4)
	assert.Contains(t, lines[0], "Y: 6.00")
	assert.Contains(t, lines[1], "Floors: 3")
	assert.Contains(t, lines[2], "Max span: 5.00")
}
