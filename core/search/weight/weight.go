/*
Package weight holds the document weighting schemes used to score
query terms against documents.

A Weight is used in the following way:

	1. The query executor obtains a Weight for each query term, either
	by constructing it or by cloning/loading a configured prototype.
	2. The executor reads Need() and gathers only the statistics named
	there.
	3. Init() is called once with those statistics and the query-level
	normalization factor.
	4. ScoreTerm() is called for each document in the term's posting
	list; MaxContribution() is called once so top-k pruning can skip
	documents which cannot enter the result set.

A Weight is written once by Init() and only read afterwards, so an
initialized Weight may be shared by goroutines scoring the same term.
Use Clone() to get an independent, uninitialized copy.
*/
package weight

// Weight is the contract between a weighting scheme and the query
// executor.
type Weight interface {
	// Fully qualified scheme name, used as the registry and wire key.
	Name() string
	// Short name used in configuration files and on the command line.
	ShortName() string
	// Statistics read by this scheme. Fixed at construction.
	Need() StatFlags
	// Copy of the configuration with fresh runtime state.
	Clone() Weight
	/*
		Prepares the scheme for scoring one query term.

		factor is the query-level normalization multiplier. A zero factor
		means the instance only models the term-independent part of the
		score, in which case ScoreTerm() returns zero.
	*/
	Init(stats Stats, factor float64)
	// Contribution of the term to the score of one document.
	ScoreTerm(wdf, doclen, uniqterms TermCount) float64
	// An upper bound on ScoreTerm() for any document in the collection.
	MaxContribution() float64
	// Term-independent contribution of a document.
	ExtraContribution(doclen, uniqterms TermCount) float64
	// An upper bound on ExtraContribution().
	MaxExtraContribution() float64
	// Deterministic encoding of the scheme parameters.
	Serialize() []byte
	// Builds a new scheme of the same kind from Serialize() output.
	Deserialize(data []byte) (Weight, error)
	// Builds a new scheme of the same kind from a parameter string.
	CreateFromParameters(params string) (Weight, error)
}
