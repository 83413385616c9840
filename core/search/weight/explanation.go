package weight

import (
	"bytes"
	"fmt"
)

// Describes how a score was computed, as a tree of values.
type Explanation struct {
	value       float64        // the value of this node
	description string         // what it represents
	details     []*Explanation // sub-explanations
}

func newExplanation(value float64, description string) *Explanation {
	return &Explanation{value: value, description: description}
}

// Indicate whether or not this Explanation models a good match.
// By default, an Explanation represents a "match" if the value is positive.
func (exp *Explanation) IsMatch() bool {
	return exp.value > 0.0
}

func (exp *Explanation) Value() float64      { return exp.value }
func (exp *Explanation) Description() string { return exp.description }

// A short one line summary which should contain all high level information
// about this Explanation, without the Details.
func (exp *Explanation) Summary() string {
	return fmt.Sprintf("%v = %v", exp.value, exp.description)
}

// The sub-nodes of this explanation node.
func (exp *Explanation) Details() []*Explanation {
	return exp.details
}

func (exp *Explanation) addDetail(detail *Explanation) {
	exp.details = append(exp.details, detail)
}

// Render an explanation as text.
func (exp *Explanation) String() string {
	return explanationToString(exp, 0)
}

func explanationToString(exp *Explanation, depth int) string {
	assertTrue(depth <= 1000) // potential dead loop
	var buf bytes.Buffer
	for i := 0; i < depth; i++ {
		buf.WriteString("  ")
	}
	buf.WriteString(exp.Summary())
	buf.WriteString("\n")

	for _, v := range exp.details {
		buf.WriteString(explanationToString(v, depth+1))
	}

	return buf.String()
}

// Explains ScoreTerm() for one document. The root value is exactly
// what ScoreTerm() returns for the same arguments.
func (w *TfIdfWeight) Explain(wdf, doclen, uniqterms TermCount) *Explanation {
	ans := newExplanation(w.ScoreTerm(wdf, doclen, uniqterms),
		fmt.Sprintf("%v(wdf=%v doclen=%v uniqterms=%v), product of:",
			w, wdf, doclen, uniqterms))

	wdfn := w.wdfNorm.normalize(wdf, doclen, uniqterms, w.avgLength, w.slope, w.delta)
	ans.addDetail(newExplanation(wdfn,
		fmt.Sprintf("wdfn, %v normalization of wdf=%v", w.wdfNorm, wdf)))

	idf := newExplanation(w.idfn, fmt.Sprintf("idfn, %v normalization", w.idfNorm))
	if w.idfNorm != IdfNormNone && w.stats != nil {
		idf.addDetail(newExplanation(float64(w.stats.TermFreq()), "termfreq"))
		if w.idfNorm.usesCollectionSize() {
			idf.addDetail(newExplanation(float64(w.stats.CollectionSize()), "collection size"))
		}
	}
	ans.addDetail(idf)

	ans.addDetail(newExplanation(w.wqfFactor, "wqf * query factor"))
	return ans
}
