package weight

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTfIdfWeightExplain(t *testing.T) {
	w, err := NewTfIdfWeightFromNormals("ltn")
	require.NoError(t, err)
	w.Init(corpusStats(), 0.5)

	exp := w.Explain(4, 50, 20)
	assert.Equal(t, w.ScoreTerm(4, 50, 20), exp.Value())
	assert.True(t, exp.IsMatch())
	require.Len(t, exp.Details(), 3)
	assert.Equal(t, w.wdfNorm.normalize(4, 50, 20, 0, 0.2, 1.0), exp.Details()[0].Value())
	assert.Equal(t, w.idfn, exp.Details()[1].Value())
	require.Len(t, exp.Details()[1].Details(), 2)
	assert.Equal(t, 10.0, exp.Details()[1].Details()[0].Value())
	assert.Equal(t, 1000.0, exp.Details()[1].Details()[1].Value())
	assert.Equal(t, 1.0, exp.Details()[2].Value())

	lines := strings.Split(strings.TrimSuffix(exp.String(), "\n"), "\n")
	require.Len(t, lines, 6)
	assert.True(t, strings.HasPrefix(lines[1], "  "))
	assert.True(t, strings.HasPrefix(lines[3], "    "))
	assert.Contains(t, lines[0], "TfIdfWeight(ltn")
}

func TestTfIdfWeightExplainFreqIdfSkipsCollectionSize(t *testing.T) {
	w, err := NewTfIdfWeightFromNormals("nfn")
	require.NoError(t, err)
	w.Init(corpusStats(), 1.0)
	exp := w.Explain(2, 10, 5)
	require.Len(t, exp.Details()[1].Details(), 1)
	assert.Equal(t, "termfreq", exp.Details()[1].Details()[0].Description())
}

func TestTfIdfWeightExplainNoMatch(t *testing.T) {
	w := NewTfIdfWeight()
	w.Init(corpusStats(), 1.0)
	assert.False(t, w.Explain(0, 10, 5).IsMatch())
}
