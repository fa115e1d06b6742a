package workload_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/dynaforest/workload"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFile_OK(t *testing.T) {
	src := `con 5
c this is a comment

i 0 1
i 1 2
p 0 2
d 0 1
p 0 2
`
	n, items, err := workload.ParseFile(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, 5, n)
	require.Len(t, items, 5)
	assert.Equal(t, workload.Item{Type: workload.Link, A: 0, B: 1, C: -1}, items[0])
	assert.Equal(t, workload.Item{Type: workload.Path, A: 0, B: 2, C: -1}, items[2])
	assert.Equal(t, workload.Item{Type: workload.Cut, A: 0, B: 1, C: -1}, items[3])
}

func TestParseFile_CutFromParent(t *testing.T) {
	n, items, err := workload.ParseFile(strings.NewReader("lca 3\nd 1\na 0 2\n"))
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	require.Len(t, items, 2)
	assert.Equal(t, workload.CutFromParent, items[0].Type)
	assert.Equal(t, 1, items[0].A)
	assert.Equal(t, workload.LCA, items[1].Type)
}

func TestParseFile_RepeatedHeader(t *testing.T) {
	_, _, err := workload.ParseFile(strings.NewReader("queries 3\nqueries 4\n"))
	require.Error(t, err)
	assert.ErrorIs(t, err, workload.ErrParse)
}

func TestParseFile_MissingHeader(t *testing.T) {
	_, _, err := workload.ParseFile(strings.NewReader("i 0 1\n"))
	require.Error(t, err)
	assert.ErrorIs(t, err, workload.ErrParse)
}

func TestParseFile_BadLine(t *testing.T) {
	_, _, err := workload.ParseFile(strings.NewReader("con 3\nx 0 1\n"))
	require.Error(t, err)
	assert.ErrorIs(t, err, workload.ErrParse)
}

func TestParseFile_NoHeaderAtAll(t *testing.T) {
	_, _, err := workload.ParseFile(strings.NewReader("c only a comment\n"))
	require.Error(t, err)
	assert.ErrorIs(t, err, workload.ErrParse)
}
