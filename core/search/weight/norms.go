package weight

import (
	"math"
)

// Normalization applied to the within-document frequency.
type WdfNorm byte

const (
	WdfNormNone WdfNorm = iota + 1
	WdfNormBoolean
	WdfNormSquare
	WdfNormLog
	WdfNormPivoted
	WdfNormLogAverage
)

// Normalization turning the term frequency into an idf factor.
type IdfNorm byte

const (
	IdfNormNone IdfNorm = iota + 1
	IdfNormTfIdf
	IdfNormSquare
	IdfNormFreq
	IdfNormProb
	IdfNormPivoted
)

// Normalization applied to the product of wdf and idf factors. Only
// the identity is defined so far.
type WtNorm byte

const (
	WtNormNone WtNorm = iota + 1
)

// The normalization tables below are the single source of truth for
// the code characters, the names and, through the enum values, the
// serialized tags. Index 0 is unused so the zero value is invalid.
type normInfo struct {
	code byte
	name string
}

var wdfNorms = [...]normInfo{
	WdfNormNone:       {'n', "NONE"},
	WdfNormBoolean:    {'b', "BOOLEAN"},
	WdfNormSquare:     {'s', "SQUARE"},
	WdfNormLog:        {'l', "LOG"},
	WdfNormPivoted:    {'P', "PIVOTED"},
	WdfNormLogAverage: {'L', "LOG_AVERAGE"},
}

var idfNorms = [...]normInfo{
	IdfNormNone:    {'n', "NONE"},
	IdfNormTfIdf:   {'t', "TFIDF"},
	IdfNormSquare:  {'s', "SQUARE"},
	IdfNormFreq:    {'f', "FREQ"},
	IdfNormProb:    {'p', "PROB"},
	IdfNormPivoted: {'P', "PIVOTED"},
}

var wtNorms = [...]normInfo{
	WtNormNone: {'n', "NONE"},
}

func (n WdfNorm) Valid() bool { return n >= WdfNormNone && int(n) < len(wdfNorms) }
func (n IdfNorm) Valid() bool { return n >= IdfNormNone && int(n) < len(idfNorms) }
func (n WtNorm) Valid() bool  { return n >= WtNormNone && int(n) < len(wtNorms) }

// Code character used in normalization strings.
func (n WdfNorm) Code() byte { return wdfNorms[n].code }
func (n IdfNorm) Code() byte { return idfNorms[n].code }
func (n WtNorm) Code() byte  { return wtNorms[n].code }

func (n WdfNorm) String() string {
	if !n.Valid() {
		return "INVALID"
	}
	return wdfNorms[n].name
}

func (n IdfNorm) String() string {
	if !n.Valid() {
		return "INVALID"
	}
	return idfNorms[n].name
}

func (n WtNorm) String() string {
	if !n.Valid() {
		return "INVALID"
	}
	return wtNorms[n].name
}

func parseWdfNorm(c byte) (WdfNorm, bool) {
	for i := WdfNormNone; i.Valid(); i++ {
		if wdfNorms[i].code == c {
			return i, true
		}
	}
	return 0, false
}

func parseIdfNorm(c byte) (IdfNorm, bool) {
	for i := IdfNormNone; i.Valid(); i++ {
		if idfNorms[i].code == c {
			return i, true
		}
	}
	return 0, false
}

func parseWtNorm(c byte) (WtNorm, bool) {
	for i := WtNormNone; i.Valid(); i++ {
		if wtNorms[i].code == c {
			return i, true
		}
	}
	return 0, false
}

/*
Normalizes a within-document frequency.

avgLength, slope and delta are only read by WdfNormPivoted. A zero wdf
maps to zero for every variant.
*/
func (n WdfNorm) normalize(wdf, doclen, uniqterms TermCount, avgLength, slope, delta float64) float64 {
	switch n {
	case WdfNormBoolean:
		if wdf == 0 {
			return 0
		}
		return 1.0
	case WdfNormSquare:
		return float64(wdf) * float64(wdf)
	case WdfNormLog:
		if wdf == 0 {
			return 0
		}
		return 1 + math.Log(float64(wdf))
	case WdfNormPivoted:
		if wdf == 0 {
			return 0
		}
		normlen := float64(doclen) / avgLength
		normFactor := 1 / (1 - slope + (slope * normlen))
		return (1+math.Log(1+math.Log(float64(wdf))))*normFactor + delta
	case WdfNormLogAverage:
		if wdf == 0 {
			return 0
		}
		wdfAvg := 1.0
		if doclen != 0 && uniqterms != 0 {
			wdfAvg = float64(doclen) / float64(uniqterms)
		}
		num := 1 + math.Log(float64(wdf))
		den := 1 + math.Log(wdfAvg)
		return num / den
	default:
		return float64(wdf)
	}
}

/*
Computes the idf factor from the number of documents indexed by the
term (termfreq) and the collection size (N).

IdfNormNone ignores both; IdfNormFreq ignores N. IdfNormProb is zero
when every document contains the term, and negative when most do.
*/
func (n IdfNorm) normalize(termfreq, N float64) float64 {
	switch n {
	case IdfNormNone:
		return 1.0
	case IdfNormProb:
		if N == termfreq {
			return 0
		}
		return math.Log((N - termfreq) / termfreq)
	case IdfNormFreq:
		return 1.0 / termfreq
	case IdfNormSquare:
		return math.Pow(math.Log(N/termfreq), 2.0)
	case IdfNormPivoted:
		return math.Log((N + 1) / termfreq)
	default:
		return math.Log(N / termfreq)
	}
}

// Identity for WtNormNone, the only variant.
func (n WtNorm) normalize(wt float64) float64 {
	return wt
}

// Whether the variant reads the collection size.
func (n IdfNorm) usesCollectionSize() bool {
	return n != IdfNormNone && n != IdfNormFreq
}
