package weight

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withMetrics(t *testing.T) *Metrics {
	t.Helper()
	m := NewMetrics()
	require.NoError(t, m.Register(prometheus.NewRegistry()))
	SetMetrics(m)
	t.Cleanup(func() { SetMetrics(nil) })
	return m
}

func TestLoadWeight(t *testing.T) {
	m := withMetrics(t)
	for _, name := range []string{TfIdfWeightName, TfIdfWeightShortName} {
		w, err := LoadWeight(name)
		require.NoError(t, err)
		assert.Equal(t, TfIdfWeightName, w.Name())
		assert.Equal(t, NewTfIdfWeight().Serialize(), w.Serialize())
	}
	assert.Equal(t, 2.0, testutil.ToFloat64(m.created.WithLabelValues("tfidf", SourceLoad)))
}

func TestLoadWeightReturnsIndependentClones(t *testing.T) {
	a, err := LoadWeight("tfidf")
	require.NoError(t, err)
	b, err := LoadWeight("tfidf")
	require.NoError(t, err)
	a.Init(corpusStats(), 1.0)
	assert.NotZero(t, a.ScoreTerm(2, 10, 5))
	assert.Zero(t, b.ScoreTerm(2, 10, 5))
}

func TestLoadWeightUnknown(t *testing.T) {
	m := withMetrics(t)
	w, err := LoadWeight("bm25")
	assert.Nil(t, w)
	var unknown *UnknownWeightError
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, "bm25", unknown.Name)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.errors.WithLabelValues("bm25", ErrorUnknownScheme)))
}

func TestCreateWeight(t *testing.T) {
	m := withMetrics(t)
	w, err := CreateWeight("tfidf", "Ltn 0.3 0.7")
	require.NoError(t, err)
	assert.Equal(t, "Ltn", w.(*TfIdfWeight).Normals())
	assert.Equal(t, 1.0, testutil.ToFloat64(m.created.WithLabelValues("tfidf", SourceParameters)))

	_, err = CreateWeight("tfidf", "Lt")
	var invalid *InvalidArgumentError
	assert.True(t, errors.As(err, &invalid))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.errors.WithLabelValues("tfidf", ErrorInvalidArgument)))
}

func TestDeserializeWeight(t *testing.T) {
	m := withMetrics(t)
	src, err := NewTfIdfWeightFromNormalsWithParams("bPn", 0.6, 0.25)
	require.NoError(t, err)

	w, err := DeserializeWeight(src.Name(), src.Serialize())
	require.NoError(t, err)
	assert.Equal(t, src.Serialize(), w.Serialize())
	assert.Equal(t, 1.0, testutil.ToFloat64(m.created.WithLabelValues("tfidf", SourceDeserialize)))

	_, err = DeserializeWeight(src.Name(), src.Serialize()[:5])
	var serr *SerializationError
	assert.True(t, errors.As(err, &serr))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.errors.WithLabelValues("tfidf", ErrorSerialization)))
}

func TestAvailableWeights(t *testing.T) {
	assert.Contains(t, AvailableWeights(), TfIdfWeightName)
	assert.NotContains(t, AvailableWeights(), TfIdfWeightShortName)
}

func TestMetricsNilIsNoop(t *testing.T) {
	var m *Metrics
	m.IncCreated("tfidf", SourceLoad)
	m.IncErrors("tfidf", ErrorSerialization)
}

func TestMetricsCollectors(t *testing.T) {
	m := NewMetrics()
	assert.Len(t, m.Collectors(), 2)
	reg := prometheus.NewRegistry()
	require.NoError(t, m.Register(reg))
	assert.Error(t, m.Register(reg), "registering twice must fail")
}
