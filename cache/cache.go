// Package cache provides an optional per-input memoization wrapper
// around an hfst.Transducer's Lookup. It is not part of the transducer
// runtime itself: the runtime's lookup is pure and reading an
// already-decoded Transducer is cheap, so memoization is a convenience
// for callers that repeatedly look up the same strings (e.g. a CLI or
// batch pipeline processing a corpus with repeated tokens), not a
// correctness requirement.
package cache

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/Rootroo-ltd/pyhfst"
)

// Lookuper is the subset of *hfst.Transducer (or *hfst.MultiTransducer)
// that Cache wraps.
type Lookuper interface {
	Lookup(input string, opts ...hfst.LookupOption) []hfst.Analysis
}

// Cache memoizes Lookup results for a fixed set of LookupOptions, keyed
// on the raw input string. It preserves Lookup's result order and
// weights exactly: a cache hit replays the first call's slice, a miss
// computes and stores it.
//
// Cache is safe for concurrent use; the underlying LRU is internally
// locked.
type Cache struct {
	src   Lookuper
	opts  []hfst.LookupOption
	cache *lru.Cache[string, []hfst.Analysis]
}

// New wraps src with an LRU cache holding up to size entries. opts are
// applied to every Lookup call this Cache makes, including on a miss.
func New(src Lookuper, size int, opts ...hfst.LookupOption) (*Cache, error) {
	c, err := lru.New[string, []hfst.Analysis](size)
	if err != nil {
		return nil, err
	}
	return &Cache{src: src, opts: opts, cache: c}, nil
}

// Lookup returns the memoized result for input, computing and storing it
// on a miss.
func (c *Cache) Lookup(input string) []hfst.Analysis {
	if results, ok := c.cache.Get(input); ok {
		return results
	}
	results := c.src.Lookup(input, c.opts...)
	c.cache.Add(input, results)
	return results
}

// Len reports the number of memoized entries.
func (c *Cache) Len() int { return c.cache.Len() }

// Purge clears every memoized entry.
func (c *Cache) Purge() { c.cache.Purge() }
