package hfst

// MultiTransducer composes a primary transducer with an optional
// fallback (commonly a guesser or error-tolerant transducer in HFST
// tooling) that is only consulted when the primary accepts nothing. It
// does not merge or reorder results across the two transducers; it
// either returns the primary's results or, if empty, the fallback's.
type MultiTransducer struct {
	Primary  *Transducer
	Fallback *Transducer
}

// NewMultiTransducer pairs a primary transducer with a fallback. The
// fallback may be nil, in which case Lookup behaves exactly like
// Primary.Lookup.
func NewMultiTransducer(primary, fallback *Transducer) *MultiTransducer {
	return &MultiTransducer{Primary: primary, Fallback: fallback}
}

// Lookup tries Primary first; if it returns no analyses and a Fallback
// is configured, it tries Fallback instead.
func (m *MultiTransducer) Lookup(input string, opts ...LookupOption) []Analysis {
	results := m.Primary.Lookup(input, opts...)
	if len(results) > 0 || m.Fallback == nil {
		return results
	}
	return m.Fallback.Lookup(input, opts...)
}
