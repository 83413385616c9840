package weight

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Fails the test when a statistic outside need is read.
type strictStats struct {
	*Statistics
	t    *testing.T
	need StatFlags
}

func (s *strictStats) check(flag StatFlags, name string) {
	if !s.need.Has(flag) {
		s.t.Errorf("%v read although only %v was declared", name, s.need)
	}
}

func (s *strictStats) CollectionSize() DocCount {
	s.check(StatCollectionSize, "CollectionSize")
	return s.Statistics.CollectionSize()
}

func (s *strictStats) TermFreq() DocCount {
	s.check(StatTermFreq, "TermFreq")
	return s.Statistics.TermFreq()
}

func (s *strictStats) Wqf() TermCount {
	s.check(StatWqf, "Wqf")
	return s.Statistics.Wqf()
}

func (s *strictStats) WdfUpperBound() TermCount {
	s.check(StatWdfMax, "WdfUpperBound")
	return s.Statistics.WdfUpperBound()
}

func (s *strictStats) DocLengthLowerBound() TermCount {
	s.check(StatDocLengthMin, "DocLengthLowerBound")
	return s.Statistics.DocLengthLowerBound()
}

func (s *strictStats) DocLengthUpperBound() TermCount {
	s.check(StatDocLengthMax, "DocLengthUpperBound")
	return s.Statistics.DocLengthUpperBound()
}

func (s *strictStats) AverageLength() float64 {
	s.check(StatAverageLength, "AverageLength")
	return s.Statistics.AverageLength()
}

func TestSnapshotCopiesDeclaredOnly(t *testing.T) {
	need := StatTermFreq | StatWqf | StatDocLengthMin
	src := &strictStats{t: t, need: need, Statistics: corpusStats()}
	got := Snapshot(src, need)
	assert.Equal(t, &Statistics{DocFreq: 10, QueryFreq: 2, MinLength: 5}, got)
}

func TestSnapshotMatchesFullStatistics(t *testing.T) {
	for _, w := range everyTfIdfWeight(t, DefaultSlope, DefaultDelta) {
		full := w.Clone().(*TfIdfWeight)
		full.Init(corpusStats(), 1.0)
		w.Init(Snapshot(corpusStats(), w.Need()), 1.0)
		assert.Equal(t, full.MaxContribution(), w.MaxContribution(), w.Normals())
		for _, wdf := range []TermCount{0, 1, 4, 20} {
			assert.Equal(t, full.ScoreTerm(wdf, 90, 40), w.ScoreTerm(wdf, 90, 40), w.Normals())
		}
	}
}

func TestStatFlagsString(t *testing.T) {
	assert.Equal(t, "NONE", StatFlags(0).String())
	assert.Equal(t, "COLLECTION_SIZE|TERMFREQ", (StatTermFreq | StatCollectionSize).String())
	assert.Equal(t, "COLLECTION_SIZE|TERMFREQ|WDF|WDF_MAX|WQF", NewTfIdfWeight().Need().String())
}
