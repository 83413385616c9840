package weight

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

const (
	DefaultNormals = "ntn"
	DefaultSlope   = 0.2
	DefaultDelta   = 1.0

	TfIdfWeightName      = "goweight.TfIdfWeight"
	TfIdfWeightShortName = "tfidf"
)

/*
TfIdfWeight implements the family of TF-IDF weighting schemes selected
by a three character normalization string:

	[wdf][idf][wt]

	wdf: n (none), b (boolean), s (square), l (log), P (pivoted),
	     L (log average)
	idf: n (none), t (tfidf), p (prob), f (freq), s (square),
	     P (pivoted)
	wt:  n (none)

The score of a document is

	wtn(wdfn(wdf, doclen, uniqterms) * idfn) * wqf * factor

slope and delta only affect the pivoted wdf normalization.
*/
type TfIdfWeight struct {
	wdfNorm WdfNorm
	idfNorm IdfNorm
	wtNorm  WtNorm
	slope   float64
	delta   float64
	need    StatFlags

	// runtime state, written once by Init()
	stats     Stats
	idfn      float64
	wqfFactor float64
	avgLength float64
}

// Returns the default "ntn" scheme.
func NewTfIdfWeight() *TfIdfWeight {
	ans, err := NewTfIdfWeightFromNorms(WdfNormNone, IdfNormTfIdf, WtNormNone)
	assertTrue(err == nil)
	return ans
}

func NewTfIdfWeightFromNormals(normals string) (*TfIdfWeight, error) {
	return NewTfIdfWeightFromNormalsWithParams(normals, DefaultSlope, DefaultDelta)
}

func NewTfIdfWeightFromNormalsWithParams(normals string, slope, delta float64) (*TfIdfWeight, error) {
	if len(normals) != 3 {
		return nil, newInvalidArgumentError("Normalization string is invalid: %q", normals)
	}
	wdf, ok1 := parseWdfNorm(normals[0])
	idf, ok2 := parseIdfNorm(normals[1])
	wt, ok3 := parseWtNorm(normals[2])
	if !ok1 || !ok2 || !ok3 {
		return nil, newInvalidArgumentError("Normalization string is invalid: %q", normals)
	}
	return NewTfIdfWeightFromNormsWithParams(wdf, idf, wt, slope, delta)
}

func NewTfIdfWeightFromNorms(wdf WdfNorm, idf IdfNorm, wt WtNorm) (*TfIdfWeight, error) {
	return NewTfIdfWeightFromNormsWithParams(wdf, idf, wt, DefaultSlope, DefaultDelta)
}

func NewTfIdfWeightFromNormsWithParams(wdf WdfNorm, idf IdfNorm, wt WtNorm,
	slope, delta float64) (*TfIdfWeight, error) {

	if !wdf.Valid() || !idf.Valid() || !wt.Valid() {
		return nil, newInvalidArgumentError(
			"Normalization is invalid: wdf=%d idf=%d wt=%d", wdf, idf, wt)
	}
	// written so that NaN is rejected too
	if !(slope > 0) {
		return nil, newInvalidArgumentError("Parameter slope is invalid: %v", slope)
	}
	if !(delta > 0) {
		return nil, newInvalidArgumentError("Parameter delta is invalid: %v", delta)
	}
	return &TfIdfWeight{
		wdfNorm: wdf,
		idfNorm: idf,
		wtNorm:  wt,
		slope:   slope,
		delta:   delta,
		need:    needFor(wdf, idf),
	}, nil
}

func needFor(wdf WdfNorm, idf IdfNorm) StatFlags {
	var need StatFlags
	if idf != IdfNormNone {
		need |= StatTermFreq | StatCollectionSize
	}
	need |= StatWdf | StatWdfMax | StatWqf
	if wdf == WdfNormPivoted || idf == IdfNormPivoted {
		need |= StatAverageLength | StatDocLength | StatDocLengthMin
	}
	if wdf == WdfNormLogAverage {
		need |= StatDocLength | StatDocLengthMin | StatDocLengthMax | StatUniqueTerms
	}
	return need
}

func (w *TfIdfWeight) Name() string      { return TfIdfWeightName }
func (w *TfIdfWeight) ShortName() string { return TfIdfWeightShortName }
func (w *TfIdfWeight) Need() StatFlags   { return w.need }

func (w *TfIdfWeight) Norms() (WdfNorm, IdfNorm, WtNorm) {
	return w.wdfNorm, w.idfNorm, w.wtNorm
}

func (w *TfIdfWeight) Params() (slope, delta float64) {
	return w.slope, w.delta
}

// Normalization string equivalent to the configured variants.
func (w *TfIdfWeight) Normals() string {
	return string([]byte{w.wdfNorm.Code(), w.idfNorm.Code(), w.wtNorm.Code()})
}

func (w *TfIdfWeight) Clone() Weight {
	ans := *w
	ans.stats = nil
	ans.idfn, ans.wqfFactor, ans.avgLength = 0, 0, 0
	return &ans
}

func (w *TfIdfWeight) Init(stats Stats, factor float64) {
	w.stats = stats
	if factor == 0.0 {
		// There is no term-independent contribution in this scheme.
		return
	}
	w.wqfFactor = float64(stats.Wqf()) * factor
	w.idfn = w.computeIdf()
	if w.wdfNorm == WdfNormPivoted {
		w.avgLength = stats.AverageLength()
	}
}

func (w *TfIdfWeight) computeIdf() float64 {
	if w.idfNorm == IdfNormNone {
		return w.idfNorm.normalize(1, 1)
	}
	termfreq := float64(w.stats.TermFreq())
	N := 1.0
	if w.idfNorm.usesCollectionSize() {
		N = float64(w.stats.CollectionSize())
	}
	return w.idfNorm.normalize(termfreq, N)
}

func (w *TfIdfWeight) ScoreTerm(wdf, doclen, uniqterms TermCount) float64 {
	if w.wqfFactor == 0 {
		return 0
	}
	wdfn := w.wdfNorm.normalize(wdf, doclen, uniqterms, w.avgLength, w.slope, w.delta)
	return w.wtNorm.normalize(wdfn*w.idfn) * w.wqfFactor
}

/*
Every wdf normalization grows with wdf and none grows with document
length, so the bound is the score of a document holding the term
WdfUpperBound() times while being DocLengthLowerBound() long.

LogAverage is bounded by an average wdf of one. The caller must
guarantee that no document is shorter than its number of unique terms,
which fails for engines indexing terms with a wdf of zero.

With slope > 1 the pivoted length normalization passes through zero
for short documents and the score is unbounded in either sign, so the
bound is +Inf. Otherwise a non-positive multiplier (the prob idf of a
very common term) flips the order around: a wdf of zero scores zero
and nothing scores higher.
*/
func (w *TfIdfWeight) MaxContribution() float64 {
	if w.wqfFactor == 0 {
		return 0
	}
	wdfMax := w.stats.WdfUpperBound()
	var lenMin TermCount
	if w.need.Has(StatDocLengthMin) {
		lenMin = w.stats.DocLengthLowerBound()
	}
	if w.wdfNorm == WdfNormPivoted && wdfMax > 0 {
		den := 1 - w.slope + w.slope*(float64(lenMin)/w.avgLength)
		if !(den > 0) {
			return math.Inf(1)
		}
	}
	if !(w.idfn*w.wqfFactor > 0) {
		return 0
	}
	wdfn := w.wdfNorm.normalize(wdfMax, lenMin, lenMin, w.avgLength, w.slope, w.delta)
	return w.wtNorm.normalize(wdfn*w.idfn) * w.wqfFactor
}

func (w *TfIdfWeight) ExtraContribution(doclen, uniqterms TermCount) float64 {
	return 0
}

func (w *TfIdfWeight) MaxExtraContribution() float64 {
	return 0
}

/*
Parses "" (the default scheme) or a normalization string optionally
followed by slope and delta, separated by whitespace:

	"Ptn"
	"Ptn 0.3"
	"Ptn 0.3 0.5"
*/
func (w *TfIdfWeight) CreateFromParameters(params string) (Weight, error) {
	fields := strings.Fields(params)
	if len(fields) == 0 {
		return NewTfIdfWeight(), nil
	}
	if len(fields) > 3 {
		return nil, newInvalidArgumentError("Extra data in parameters: %q", params)
	}
	nums := []float64{DefaultSlope, DefaultDelta}
	for i, s := range fields[1:] {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, newInvalidArgumentError("Parameter %q is not a number", s)
		}
		nums[i] = v
	}
	ans, err := NewTfIdfWeightFromNormalsWithParams(fields[0], nums[0], nums[1])
	if err != nil {
		return nil, err
	}
	return ans, nil
}

func (w *TfIdfWeight) String() string {
	return fmt.Sprintf("TfIdfWeight(%v, slope=%v, delta=%v)", w.Normals(), w.slope, w.delta)
}
