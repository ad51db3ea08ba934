package hfst

import (
	"os"
	"sort"
)

// Transducer is an immutable, decoded HFST optimized-lookup transducer.
// It is safe to share read-only across goroutines; each concurrent
// Lookup call must use its own lookupState, which Lookup always
// allocates fresh.
type Transducer struct {
	Header     Header
	Alphabet   *Alphabet
	Index      *IndexTable
	Transition *TransitionTable

	trie *symbolTrie
}

// Open reads and decodes the transducer stored at path.
func Open(path string) (*Transducer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return decodeTransducer(data)
}

// decodeTransducer parses a complete in-memory transducer image: header,
// alphabet, index table, transition table, in that order.
func decodeTransducer(data []byte) (*Transducer, error) {
	c := newByteCursor(data)

	header, err := decodeHeader(c)
	if err != nil {
		return nil, err
	}
	alphabet, err := decodeAlphabet(c, int(header.TotalSymbolCount))
	if err != nil {
		return nil, err
	}
	index, err := decodeIndexTable(c, header.IndexTableLen)
	if err != nil {
		return nil, err
	}
	transition, err := decodeTransitionTable(c, header.TransitionTableLen, header.Weighted)
	if err != nil {
		return nil, err
	}

	t := &Transducer{
		Header:     header,
		Alphabet:   alphabet,
		Index:      index,
		Transition: transition,
		trie:       newSymbolTrie(alphabet.KeyTable, int(header.InputSymbolCount)),
	}
	return t, nil
}

// LookupOption adjusts post-processing of a Lookup call's result set.
// Options never change which paths the engine explores or their
// traversal order; they only filter the materialized results.
type LookupOption func(*lookupOptions)

type lookupOptions struct {
	maxResults int
	maxWeight  float32
	hasMaxW    bool
}

// WithMaxResults keeps only the first n results in traversal order.
// n <= 0 is treated as "no limit".
func WithMaxResults(n int) LookupOption {
	return func(o *lookupOptions) { o.maxResults = n }
}

// WithMaxWeight drops results whose weight exceeds max. It has no effect
// on unweighted transducers, whose results are always weight 1.0.
func WithMaxWeight(max float32) LookupOption {
	return func(o *lookupOptions) { o.maxWeight = max; o.hasMaxW = true }
}

// Lookup tokenizes input, walks the transducer, and returns every
// accepted (output, weight) analysis in depth-first traversal order.
// It returns an empty slice, never an error, for inputs the transducer
// does not accept or cannot tokenize at their first character.
func (t *Transducer) Lookup(input string, opts ...LookupOption) []Analysis {
	ids := tokenize(t.trie, input)
	if len(input) > 0 && ids[0] == noSymbol {
		return nil
	}

	st := newLookupState(ids, t.Alphabet.FeatureCount)
	t.getAnalyses(0, st)

	results := st.results
	var o lookupOptions
	for _, opt := range opts {
		opt(&o)
	}
	if o.hasMaxW && t.Header.Weighted {
		filtered := results[:0]
		for _, r := range results {
			if r.Weight <= o.maxWeight {
				filtered = append(filtered, r)
			}
		}
		results = filtered
	}
	if o.maxResults > 0 && len(results) > o.maxResults {
		results = results[:o.maxResults]
	}
	return results
}

// BestAnalysis returns the lowest-weight analysis for input (HFST
// weights are costs: lower is better) and reports whether any analysis
// exists. Ties keep the first in traversal order.
func (t *Transducer) BestAnalysis(input string) (Analysis, bool) {
	results := t.Lookup(input)
	if len(results) == 0 {
		return Analysis{}, false
	}
	best := results[0]
	for _, r := range results[1:] {
		if r.Weight < best.Weight {
			best = r
		}
	}
	return best, true
}

// SortByWeight orders analyses ascending by weight, stable on ties so
// the original traversal order is preserved among equal weights. It is
// a helper for callers that want ranked output rather than traversal
// order; Lookup itself never reorders.
func SortByWeight(results []Analysis) {
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Weight < results[j].Weight
	})
}
