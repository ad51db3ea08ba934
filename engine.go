package hfst

// This file is the recursive two-table walker: getAnalyses,
// tryEpsilonIndices, tryEpsilonTransitions, findIndex, findTransitions,
// and pushState, each a small dedicated method on *Transducer taking an
// explicit *lookupState rather than one monolithic loop.

// getAnalyses is the entry point into either table for a given raw
// target. It explores epsilon moves first, then either emits a result
// (if input is exhausted) or consumes one input symbol and recurses.
func (t *Transducer) getAnalyses(raw TableIndex, st *lookupState) {
	st.depth++
	defer func() { st.depth-- }()
	if st.depth > maxRecursionDepth {
		return
	}

	idx := pivot(raw)
	transition := isTransitionTarget(raw)

	if transition {
		t.tryEpsilonTransitions(idx+1, st)
	} else {
		t.tryEpsilonIndices(idx+1, st)
	}

	if st.inputSymbols[st.inputPointer] == noSymbol {
		st.writeOutputSentinel()
		if final, weight := t.finalAt(idx, transition); final {
			if t.Header.Weighted {
				st.currentWeight += weight
			}
			t.noteAnalysis(st)
			if t.Header.Weighted {
				st.currentWeight -= weight
			}
		}
		return
	}

	st.inputPointer++
	if transition {
		t.findTransitions(idx+1, st)
	} else {
		t.findIndex(idx+1, st)
	}
	st.inputPointer--
	st.writeOutputSentinel()
}

// finalAt reports whether the node at idx (in the transition table if
// transition is true, else the index table) is an accepting state, and
// its final weight if so.
func (t *Transducer) finalAt(idx TableIndex, transition bool) (bool, float32) {
	if transition {
		if idx >= t.Transition.Len() || !t.Transition.IsFinal(idx) {
			return false, 0
		}
		if !t.Header.Weighted {
			return true, 0
		}
		return true, t.Transition.FinalWeight(idx)
	}
	if !t.Index.IsFinal(idx) {
		return false, 0
	}
	if !t.Header.Weighted {
		return true, 0
	}
	return true, t.Index.FinalWeight(idx)
}

// tryEpsilonIndices follows an index-table's dedicated epsilon-dispatch
// slot, if it has one, into the transition table.
func (t *Transducer) tryEpsilonIndices(i TableIndex, st *lookupState) {
	if t.Index.Input[i] == epsilonSymbol {
		t.tryEpsilonTransitions(pivot(t.Index.Target[i]), st)
	}
}

// tryEpsilonTransitions walks a contiguous run of epsilon and
// flag-diacritic transitions starting at i, recursing through each one
// that is not blocked by a flag-diacritic guard.
func (t *Transducer) tryEpsilonTransitions(i TableIndex, st *lookupState) {
	for {
		in := t.Transition.Input[i]

		if op, isFlag := t.Alphabet.Operations[in]; isFlag {
			if !t.pushState(op, st) {
				i++
				continue
			}
			t.emitAndRecurse(i, st)
			st.popFlags()
			i++
			continue
		}

		if in == epsilonSymbol {
			t.emitAndRecurse(i, st)
			i++
			continue
		}

		return
	}
}

// findIndex looks up the arc labelled with the most recently consumed
// input symbol from an index-table state, using direct addressing: the
// arc for symbol s from the state beginning at i lives at slot i+s.
func (t *Transducer) findIndex(i TableIndex, st *lookupState) {
	s := st.inputSymbols[st.inputPointer-1]
	slot := i + TableIndex(s)
	if t.Index.Input[slot] == s {
		t.findTransitions(pivot(t.Index.Target[slot]), st)
	}
}

// findTransitions scans the contiguous run of transitions starting at i
// for the one labelled with the most recently consumed input symbol.
// Transitions sharing an input are laid out contiguously and the table
// is terminated by a noSymbol sentinel, so a mismatch ends the search.
func (t *Transducer) findTransitions(i TableIndex, st *lookupState) {
	s := st.inputSymbols[st.inputPointer-1]
	for t.Transition.Input[i] != noSymbol {
		if t.Transition.Input[i] != s {
			return
		}
		t.emitAndRecurse(i, st)
		i++
	}
}

// emitAndRecurse emits transition i's output symbol, accumulates its
// weight, recurses into its target, then undoes both.
func (t *Transducer) emitAndRecurse(i TableIndex, st *lookupState) {
	st.emitOutput(t.Transition.Output[i])
	if t.Header.Weighted {
		st.currentWeight += t.Transition.Weight[i]
	}
	t.getAnalyses(t.Transition.Target[i], st)
	if t.Header.Weighted {
		st.currentWeight -= t.Transition.Weight[i]
	}
	st.undoOutput()
}

// noteAnalysis materializes a result from the current output tape:
// flag-diacritic and epsilon symbols contribute the empty string
// (keyTable already stores "" for them), so they vanish on
// concatenation.
func (t *Transducer) noteAnalysis(st *lookupState) {
	var out []byte
	for k := 0; k < st.outputPointer; k++ {
		sym := st.outputSymbols[k]
		if sym == noSymbol {
			continue
		}
		out = append(out, t.Alphabet.KeyTable[sym]...)
	}
	weight := float32(1.0)
	if t.Header.Weighted {
		weight = st.currentWeight
	}
	st.results = append(st.results, Analysis{Output: string(out), Weight: weight})
}

// pushState applies a flag-diacritic operation to the active feature
// vector. It returns false (without mutating the flag stack) when the
// operation blocks the arc; the caller must not emit, recurse, or pop in
// that case.
func (t *Transducer) pushState(op FlagOperation, st *lookupState) bool {
	top := st.topFlags()
	cur := top[op.Feature]

	switch op.Op {
	case FlagPositiveSet:
		top[op.Feature] = op.Value
		st.pushFlags(top)
		return true

	case FlagNegativeSet:
		top[op.Feature] = -op.Value
		st.pushFlags(top)
		return true

	case FlagRequire:
		if op.Value == 0 {
			if cur == 0 {
				return false
			}
		} else if cur != op.Value {
			return false
		}
		st.pushFlags(top)
		return true

	case FlagDisallow:
		if op.Value == 0 {
			if cur != 0 {
				return false
			}
		} else if cur == op.Value {
			return false
		}
		st.pushFlags(top)
		return true

	case FlagClear:
		top[op.Feature] = 0
		st.pushFlags(top)
		return true

	case FlagUnify:
		if cur == 0 || cur == op.Value || (cur < 0 && cur != op.Value) {
			top[op.Feature] = op.Value
			st.pushFlags(top)
			return true
		}
		return false
	}
	return false
}
