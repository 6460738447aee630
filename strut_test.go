package strut

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const warehouseInput = `* WAREHOUSE FRAME, UNITS METER KN
UNIT METER KN
JOINT COORDINATES
1 0.0 0.0 0.0
2 0.0 4.0 0.0
3 6.0 4.0 0.0
4 6.0 0.0 0.0
5 12.0 4.0 0.0
6 12.0 0.0 0.0
MEMBER INCIDENCES
1 1 2
2 2 3
3 3 4
4 3 5
5 5 6
MEMBER PROPERTY
1 TO 5 PRISMATIC
SUPPORTS
1 4 6 FIXED
LOAD 1
MEMBER LOAD
2 4 UNI GY -10.5
PERFORM ANALYSIS
FINISH
`

func TestParse(t *testing.T) {
	t.Parallel()

	st, diags, stats := Parse(warehouseInput)

	assert.Empty(t, diags)
	assert.Equal(t, 0, stats.Dropped)
	assert.Equal(t, 6, stats.Joints)
	assert.Equal(t, 5, stats.Members)
	assert.Equal(t, 3, stats.Supports)

	require.Len(t, st.Nodes, 6)
	assert.Equal(t, 4.0, st.Nodes[1].Y)
	require.Len(t, st.Members, 5)
	assert.Equal(t, 3, st.Members[3].StartNode)
	assert.Equal(t, 5, st.Members[3].EndNode)

	summary := st.Summarize()
	assert.Equal(t, 2, summary.FloorCount)
	assert.InDelta(t, 6.0, summary.MaxSpan, 1e-9)
}

func TestParseMalformedInputStillReturns(t *testing.T) {
	t.Parallel()

	st, diags, stats := Parse("JOINT COORDINATES\n1 0 0 0 $\n2 2")

	assert.Len(t, st.Nodes, 1)
	assert.Equal(t, 1, stats.Joints)
	assert.Equal(t, 1, stats.Dropped)
	assert.Len(t, diags, 2)
}

func TestParseEmptyInput(t *testing.T) {
	t.Parallel()

	st, diags, stats := Parse("")
	assert.Empty(t, st.Nodes)
	assert.Empty(t, diags)
	assert.Equal(t, Stats{}, stats)
}

func TestParseFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "warehouse.std")
	require.NoError(t, os.WriteFile(path, []byte("JOINT COORDINATES\n1 0 0 0 ?\n"), 0o644))

	st, diags, stats, err := ParseFile(path)
	require.NoError(t, err)
	assert.Len(t, st.Nodes, 1)
	assert.Equal(t, 1, stats.Joints)
	require.Len(t, diags, 1)
	assert.Equal(t, path, diags[0].Filename)
}

func TestParseFileMissing(t *testing.T) {
	t.Parallel()

	_, _, _, err := ParseFile("no-such-file.std")
	assert.Error(t, err)
}
