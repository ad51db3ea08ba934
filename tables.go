package hfst

import "math"

// IndexTable is the transducer's first packed array: for each index i,
// Input[i] labels the arc (or 0 for a dedicated epsilon-dispatch slot)
// and Target[i] addresses where it leads, in the same partitioned space
// as TransitionTable targets.
type IndexTable struct {
	Input  []SymbolId
	Target []TableIndex
}

// IsFinal reports whether index-table position i is an accepting state:
// a slot with no input symbol but a real target.
func (t *IndexTable) IsFinal(i TableIndex) bool {
	return t.Input[i] == noSymbol && t.Target[i] != noTableIndex
}

// FinalWeight reinterprets a final index-table slot's target bits as an
// IEEE-754 float32, bitwise (never a numeric conversion).
func (t *IndexTable) FinalWeight(i TableIndex) float32 {
	return math.Float32frombits(uint32(t.Target[i]))
}

// decodeIndexTable reads n (input uint16, target uint32) records.
func decodeIndexTable(c *byteCursor, n uint32) (*IndexTable, error) {
	t := &IndexTable{
		Input:  make([]SymbolId, n),
		Target: make([]TableIndex, n),
	}
	for i := uint32(0); i < n; i++ {
		t.Input[i] = SymbolId(c.u16LE())
		t.Target[i] = TableIndex(c.u32LE())
	}
	if c.err != nil {
		return nil, decodeErrorf("index table", c.err)
	}
	return t, nil
}

// TransitionTable is the transducer's second packed array: for each
// position i, Input[i]/Output[i] label the arc, Target[i] addresses
// where it leads, and Weight[i] (when Weighted) is its weight.
// Transitions sharing an input symbol from the same state are laid out
// contiguously.
type TransitionTable struct {
	Input    []SymbolId
	Output   []SymbolId
	Target   []TableIndex
	Weight   []float32
	Weighted bool
}

// IsFinal reports whether transition-table position i is an accepting
// arc: no input, no output, and a target of exactly 1.
func (t *TransitionTable) IsFinal(i TableIndex) bool {
	return t.Input[i] == noSymbol && t.Output[i] == noSymbol && t.Target[i] == 1
}

// FinalWeight returns the weight of a final transition-table slot.
// Calling it on an unweighted table is a programmer error.
func (t *TransitionTable) FinalWeight(i TableIndex) float32 {
	if !t.Weighted {
		panic(ErrUnweighted)
	}
	return t.Weight[i]
}

func (t *TransitionTable) Len() TableIndex { return TableIndex(len(t.Input)) }

// decodeTransitionTable reads n records, each (input uint16, output
// uint16, target uint32[, weight float32]) — 12 bytes if weighted, 8
// otherwise.
func decodeTransitionTable(c *byteCursor, n uint32, weighted bool) (*TransitionTable, error) {
	t := &TransitionTable{
		Input:    make([]SymbolId, n),
		Output:   make([]SymbolId, n),
		Target:   make([]TableIndex, n),
		Weighted: weighted,
	}
	if weighted {
		t.Weight = make([]float32, n)
	}
	for i := uint32(0); i < n; i++ {
		t.Input[i] = SymbolId(c.u16LE())
		t.Output[i] = SymbolId(c.u16LE())
		t.Target[i] = TableIndex(c.u32LE())
		if weighted {
			t.Weight[i] = c.f32LE()
		}
	}
	if c.err != nil {
		return nil, decodeErrorf("transition table", c.err)
	}
	return t, nil
}
