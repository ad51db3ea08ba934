package hfst

import "math"

// fstBuilder assembles small, hand-verified transducers directly as decoded
// structs, bypassing the byte format entirely. Each fixture function below
// documents, in its own comment, the traversal it exists to exercise.
type fstBuilder struct {
	symbolCount int
	weighted    bool
	index       IndexTable
	transition  TransitionTable
}

func newFSTBuilder(symbolCount int, weighted bool) *fstBuilder {
	return &fstBuilder{symbolCount: symbolCount, weighted: weighted}
}

// newState appends a fresh state block: one final-marker slot followed by
// one dispatch slot per symbol id (including epsilon), and returns the
// block's base index (the final-marker slot's own position).
func (b *fstBuilder) newState(final bool, finalWeight float32) TableIndex {
	base := TableIndex(len(b.index.Input))
	for i := 0; i < 1+b.symbolCount; i++ {
		b.index.Input = append(b.index.Input, noSymbol)
		b.index.Target = append(b.index.Target, noTableIndex)
	}
	if final {
		var target TableIndex
		if b.weighted {
			target = TableIndex(math.Float32bits(finalWeight))
		}
		b.index.Target[base] = target
	}
	return base
}

type arcSpec struct {
	Output SymbolId
	Weight float32
	Target TableIndex
}

func (b *fstBuilder) appendRun(input SymbolId, arcs []arcSpec) TableIndex {
	rowStart := TableIndex(len(b.transition.Input))
	for _, a := range arcs {
		b.transition.Input = append(b.transition.Input, input)
		b.transition.Output = append(b.transition.Output, a.Output)
		b.transition.Target = append(b.transition.Target, a.Target)
		if b.weighted {
			b.transition.Weight = append(b.transition.Weight, a.Weight)
		}
	}
	b.transition.Input = append(b.transition.Input, noSymbol)
	b.transition.Output = append(b.transition.Output, noSymbol)
	b.transition.Target = append(b.transition.Target, 0)
	if b.weighted {
		b.transition.Weight = append(b.transition.Weight, 0)
	}
	return rowStart
}

// addArcs appends one contiguous transition-table run (one row per arc
// plus a trailing sentinel) for a literal, input-consuming symbol, and
// points state's direct-addressed dispatch slot for that symbol at the
// run's first row.
func (b *fstBuilder) addArcs(state TableIndex, symbol SymbolId, arcs []arcSpec) {
	rowStart := b.appendRun(symbol, arcs)
	slot := state + 1 + TableIndex(symbol)
	b.index.Input[slot] = symbol
	b.index.Target[slot] = transitionTargetTableStart + rowStart
}

func (b *fstBuilder) addArc(state TableIndex, symbol, output SymbolId, weight float32, target TableIndex) {
	b.addArcs(state, symbol, []arcSpec{{Output: output, Weight: weight, Target: target}})
}

// addEpsilonRun appends a single epsilon- or flag-diacritic-labelled
// transition (transitionInput is the row's own Input label, which for a
// flag is that flag's symbol id, never epsilon) and wires it through
// state's dedicated epsilon-dispatch slot (the s=0 slot, which tryEpsilonIndices
// checks regardless of what the routed-to row is actually labelled with).
func (b *fstBuilder) addEpsilonRun(state TableIndex, transitionInput, output SymbolId, target TableIndex) {
	rowStart := b.appendRun(transitionInput, []arcSpec{{Output: output, Target: target}})
	slot := state + 1
	b.index.Input[slot] = epsilonSymbol
	b.index.Target[slot] = transitionTargetTableStart + rowStart
}

func (b *fstBuilder) build(keyTable []string, ops map[SymbolId]FlagOperation, featureCount int) *Transducer {
	b.transition.Weighted = b.weighted
	if ops == nil {
		ops = make(map[SymbolId]FlagOperation)
	}
	alphabet := &Alphabet{KeyTable: keyTable, Operations: ops, FeatureCount: featureCount}
	header := Header{
		InputSymbolCount:   uint16(len(keyTable)),
		TotalSymbolCount:   uint16(len(keyTable)),
		IndexTableLen:      uint32(len(b.index.Input)),
		TransitionTableLen: uint32(len(b.transition.Input)),
		Weighted:           b.weighted,
	}
	idx := b.index
	trans := b.transition
	return &Transducer{
		Header:     header,
		Alphabet:   alphabet,
		Index:      &idx,
		Transition: &trans,
		trie:       newSymbolTrie(keyTable, len(keyTable)),
	}
}

// buildIdentityAStar builds an unweighted transducer over {a, b} accepting
// a* as an identity relation: state 0 is final and loops to itself on 'a',
// with no arc at all for 'b'.
func buildIdentityAStar() *Transducer {
	b := newFSTBuilder(3, false) // epsilon, a, b
	root := b.newState(true, 0)
	b.addArc(root, 1, 1, 0, root)
	return b.build([]string{"", "a", "b"}, nil, 0)
}

// buildKissaTwoPath builds a weighted identity transducer for the single
// string "kissa" with two parallel arcs on the first symbol carrying
// different weights (0.5 and 1.25), reconverging onto a shared suffix
// chain. Exercises transition-table branching, weight accumulation and
// unwinding, and traversal-order result emission.
func buildKissaTwoPath() *Transducer {
	b := newFSTBuilder(5, true) // epsilon, k, i, s, a
	a := b.newState(false, 0)
	s1 := b.newState(false, 0)
	s2 := b.newState(false, 0)
	s3 := b.newState(false, 0)
	s4 := b.newState(false, 0)
	f := b.newState(true, 0)

	b.addArcs(a, 1, []arcSpec{
		{Output: 1, Weight: 0.5, Target: s1},
		{Output: 1, Weight: 1.25, Target: s1},
	})
	b.addArc(s1, 2, 2, 0, s2)
	b.addArc(s2, 3, 3, 0, s3)
	b.addArc(s3, 3, 3, 0, s4)
	b.addArc(s4, 4, 4, 0, f)

	return b.build([]string{"", "k", "i", "s", "a"}, nil, 0)
}

// buildEpsilonLoop builds an unweighted transducer whose start state has an
// unproductive self-loop on true epsilon (never final along that branch) in
// addition to a real arc on 'x' leading to a final state. Exercises that
// tryEpsilonTransitions recursion is bounded and contributes no spurious
// results.
func buildEpsilonLoop() *Transducer {
	b := newFSTBuilder(2, false) // epsilon, x
	root := b.newState(false, 0)
	final := b.newState(true, 0)
	b.addEpsilonRun(root, epsilonSymbol, epsilonSymbol, root)
	b.addArc(root, 1, 1, 0, final)
	return b.build([]string{"", "x"}, nil, 0)
}

// flagShape is the common skeleton for the three flag-diacritic fixtures
// below: root --(before, optional)--> guard1 --x--> guard2 --(after)--> final.
// beforeOp == nil means that hop is plain epsilon (no flag at all), used to
// build the "guard never satisfied" scenario.
func flagShape(beforeOp *FlagOperation, beforeSym SymbolId, afterOp FlagOperation, afterSym SymbolId, featureCount int) *Transducer {
	b := newFSTBuilder(4, false) // epsilon, x, beforeFlag, afterFlag
	root := b.newState(false, 0)
	guard1 := b.newState(false, 0)
	guard2 := b.newState(false, 0)
	final := b.newState(true, 0)

	if beforeOp != nil {
		b.addEpsilonRun(root, beforeSym, epsilonSymbol, guard1)
	} else {
		b.addEpsilonRun(root, epsilonSymbol, epsilonSymbol, guard1)
	}
	b.addArc(guard1, 1, 1, 0, guard2)
	b.addEpsilonRun(guard2, afterSym, epsilonSymbol, final)

	ops := map[SymbolId]FlagOperation{afterSym: afterOp}
	if beforeOp != nil {
		ops[beforeSym] = *beforeOp
	}
	return b.build([]string{"", "x", "", ""}, ops, featureCount)
}

// buildFlagGuardSatisfied builds a transducer where a P.CASE.NOM arc
// precedes the literal 'x' and an R.CASE.NOM arc follows it: the require
// succeeds because the preceding positive-set already holds CASE=NOM.
func buildFlagGuardSatisfied() *Transducer {
	before := FlagOperation{Op: FlagPositiveSet, Feature: 0, Value: 1}
	after := FlagOperation{Op: FlagRequire, Feature: 0, Value: 1}
	return flagShape(&before, 2, after, 3, 1)
}

// buildFlagGuardUnsatisfied builds the same shape with no preceding
// positive-set: the R.CASE.NOM arc blocks because CASE is still neutral.
func buildFlagGuardUnsatisfied() *Transducer {
	after := FlagOperation{Op: FlagRequire, Feature: 0, Value: 1}
	return flagShape(nil, 2, after, 3, 1)
}

// buildUnifyConflict builds a transducer with U.NUM.SG before 'x' and
// U.NUM.PL after it: the first unify sets NUM=SG, and the second blocks
// because NUM already holds a different positive value.
func buildUnifyConflict() *Transducer {
	before := FlagOperation{Op: FlagUnify, Feature: 0, Value: 1}
	after := FlagOperation{Op: FlagUnify, Feature: 0, Value: 2}
	return flagShape(&before, 2, after, 3, 1)
}

// buildMultiCharGeneration builds an unweighted transducer whose alphabet
// includes multi-character symbols ("+N", "+Pl") alongside single letters,
// consuming the literal token sequence k-o-i-r-a-"+N"-"+Pl" and emitting a
// surface form "koirat". Exercises longest-match tokenization over a mixed
// single/multi-character alphabet feeding the engine end to end.
func buildMultiCharGeneration() *Transducer {
	keyTable := []string{"", "k", "o", "i", "r", "a", "+N", "+Pl", "t"}
	tokens := []SymbolId{1, 2, 3, 4, 5, 6, 7} // k o i r a +N +Pl
	outputs := []SymbolId{1, 2, 3, 4, 5, 0, 8}

	b := newFSTBuilder(len(keyTable), false)
	states := make([]TableIndex, len(tokens)+1)
	states[0] = b.newState(false, 0)
	for i := 1; i < len(states); i++ {
		states[i] = b.newState(i == len(states)-1, 0)
	}
	for i, tok := range tokens {
		b.addArc(states[i], tok, outputs[i], 0, states[i+1])
	}
	return b.build(keyTable, nil, 0)
}
