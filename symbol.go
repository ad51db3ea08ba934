package hfst

// SymbolId identifies a symbol in a transducer's alphabet.
type SymbolId uint16

// TableIndex addresses a position within the partitioned index/transition
// address space (see transitionTargetTableStart).
type TableIndex uint32

const (
	// epsilonSymbol is the empty symbol: arcs labelled with it consume or
	// emit nothing.
	epsilonSymbol SymbolId = 0

	// noSymbol (USHRT_MAX) marks an unused table slot and the tokenizer's
	// "unrecognized character" sentinel.
	noSymbol SymbolId = 0xFFFF

	// noTableIndex (UINT_MAX) marks an index-table slot with no target.
	noTableIndex TableIndex = 0xFFFFFFFF

	// transitionTargetTableStart partitions the raw target address space:
	// a target at or above this value names a transition-table position
	// (subtract to recover it); below it names an index-table position
	// directly.
	transitionTargetTableStart TableIndex = 1 << 31
)

// pivot decodes a raw target into a same-table-relative position.
func pivot(raw TableIndex) TableIndex {
	if raw >= transitionTargetTableStart {
		return raw - transitionTargetTableStart
	}
	return raw
}

// isTransitionTarget reports whether a raw target names a transition-table
// position rather than an index-table one.
func isTransitionTarget(raw TableIndex) bool {
	return raw >= transitionTargetTableStart
}

// FlagOperator is the operator half of a flag-diacritic symbol
// "@OP.FEATURE[.VALUE]@".
type FlagOperator uint8

const (
	// FlagPositiveSet (P) unconditionally sets a feature to a value.
	FlagPositiveSet FlagOperator = iota
	// FlagNegativeSet (N) unconditionally sets a feature to the negation
	// of a value.
	FlagNegativeSet
	// FlagRequire (R) blocks the arc unless a feature already holds a
	// value (or, with an empty value, holds any non-neutral value).
	FlagRequire
	// FlagDisallow (D) blocks the arc if a feature holds a value (or,
	// with an empty value, holds any non-neutral value).
	FlagDisallow
	// FlagClear (C) unconditionally resets a feature to neutral.
	FlagClear
	// FlagUnify (U) succeeds and assigns a value if the feature is
	// neutral, already equal to the value, or was previously negatively
	// set to a different value; otherwise blocks the arc.
	FlagUnify
)

// flagOperatorCodes maps the single-letter operator codes found in
// "@OP.FEATURE.VALUE@" symbols to their FlagOperator. A code not present
// here means the symbol is syntactically flag-shaped but demoted to a
// plain, display-empty non-flag symbol (see decodeAlphabet).
var flagOperatorCodes = map[string]FlagOperator{
	"P": FlagPositiveSet,
	"N": FlagNegativeSet,
	"R": FlagRequire,
	"D": FlagDisallow,
	"C": FlagClear,
	"U": FlagUnify,
}

// FlagOperation is a decoded flag diacritic: an operator acting on a
// feature, optionally parameterized by a value. Feature and value ids are
// assigned in order of first appearance across the alphabet; value 0 is
// the pre-registered neutral/unset value.
type FlagOperation struct {
	Op      FlagOperator
	Feature uint16
	Value   int32
}
