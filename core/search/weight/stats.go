package weight

import (
	"strings"
)

type (
	// Count of documents, e.g. collection size or term frequency.
	DocCount = uint32
	// Count of term occurrences, e.g. wdf or document length.
	TermCount = uint32
)

// Set of statistics a weighting scheme reads. The query executor
// consults it and may skip gathering any statistic not in the set;
// such statistics read as zero.
type StatFlags uint32

const (
	StatCollectionSize StatFlags = 1 << iota
	StatTermFreq
	StatWdf
	StatWdfMax
	StatWqf
	StatAverageLength
	StatDocLength
	StatDocLengthMin
	StatDocLengthMax
	StatUniqueTerms
)

var statNames = []struct {
	flag StatFlags
	name string
}{
	{StatCollectionSize, "COLLECTION_SIZE"},
	{StatTermFreq, "TERMFREQ"},
	{StatWdf, "WDF"},
	{StatWdfMax, "WDF_MAX"},
	{StatWqf, "WQF"},
	{StatAverageLength, "AVERAGE_LENGTH"},
	{StatDocLength, "DOC_LENGTH"},
	{StatDocLengthMin, "DOC_LENGTH_MIN"},
	{StatDocLengthMax, "DOC_LENGTH_MAX"},
	{StatUniqueTerms, "UNIQUE_TERMS"},
}

// Has reports whether every statistic in s is in the set.
func (f StatFlags) Has(s StatFlags) bool {
	return f&s == s
}

func (f StatFlags) String() string {
	if f == 0 {
		return "NONE"
	}
	var parts []string
	for _, v := range statNames {
		if f.Has(v.flag) {
			parts = append(parts, v.name)
		}
	}
	return strings.Join(parts, "|")
}

/*
Corpus and query statistics for one query term, supplied by the query
executor before Weight.Init().

Per-document statistics (wdf, document length, unique terms) are not
part of it; they are passed to each Weight.ScoreTerm() call instead.
*/
type Stats interface {
	// Number of documents in the collection.
	CollectionSize() DocCount
	// Number of documents indexed by the term.
	TermFreq() DocCount
	// Number of times the term occurs in the query.
	Wqf() TermCount
	// Upper bound on the wdf of the term in any document.
	WdfUpperBound() TermCount
	// Lower bound on the length of any document.
	DocLengthLowerBound() TermCount
	// Upper bound on the length of any document.
	DocLengthUpperBound() TermCount
	// Average document length in the collection.
	AverageLength() float64
}

// A plain value implementation of Stats.
type Statistics struct {
	Docs      DocCount
	DocFreq   DocCount
	QueryFreq TermCount
	MaxWdf    TermCount
	MinLength TermCount
	MaxLength TermCount
	AvgLength float64
}

func (s *Statistics) CollectionSize() DocCount       { return s.Docs }
func (s *Statistics) TermFreq() DocCount             { return s.DocFreq }
func (s *Statistics) Wqf() TermCount                 { return s.QueryFreq }
func (s *Statistics) WdfUpperBound() TermCount       { return s.MaxWdf }
func (s *Statistics) DocLengthLowerBound() TermCount { return s.MinLength }
func (s *Statistics) DocLengthUpperBound() TermCount { return s.MaxLength }
func (s *Statistics) AverageLength() float64         { return s.AvgLength }

/*
Copies the statistics named in need out of src. Statistics outside need
are left zero and src is not asked for them, as an executor which skips
undeclared statistics would do.
*/
func Snapshot(src Stats, need StatFlags) *Statistics {
	ans := &Statistics{}
	if need.Has(StatCollectionSize) {
		ans.Docs = src.CollectionSize()
	}
	if need.Has(StatTermFreq) {
		ans.DocFreq = src.TermFreq()
	}
	if need.Has(StatWqf) {
		ans.QueryFreq = src.Wqf()
	}
	if need.Has(StatWdfMax) {
		ans.MaxWdf = src.WdfUpperBound()
	}
	if need.Has(StatDocLengthMin) {
		ans.MinLength = src.DocLengthLowerBound()
	}
	if need.Has(StatDocLengthMax) {
		ans.MaxLength = src.DocLengthUpperBound()
	}
	if need.Has(StatAverageLength) {
		ans.AvgLength = src.AverageLength()
	}
	return ans
}
