package hfst

// maxRecursionDepth bounds getAnalyses recursion. It stands in for an
// explicit work-stack reification (spec's other sanctioned option):
// deep inputs or epsilon cycles stop producing new branches once this
// many nested get_analyses calls are outstanding, instead of growing
// the Go call stack (or the result set) without bound.
const maxRecursionDepth = 4096

// Analysis is one accepted (output, weight) pair from a Lookup call.
type Analysis struct {
	Output string
	Weight float32
}

// lookupState is the per-query working memory described in spec §3. It
// is created fresh for every Lookup call and never shared.
type lookupState struct {
	inputSymbols  []SymbolId
	inputPointer  int
	outputSymbols []SymbolId
	outputPointer int
	currentWeight float32
	flagStack     [][]int32
	results       []Analysis
	depth         int
}

func newLookupState(inputSymbols []SymbolId, featureCount int) *lookupState {
	return &lookupState{
		inputSymbols:  inputSymbols,
		outputSymbols: make([]SymbolId, 0, len(inputSymbols)+1),
		flagStack:     [][]int32{make([]int32, featureCount)},
	}
}

// emitOutput writes sym at the current output position, growing the
// buffer if needed, and advances the position.
func (s *lookupState) emitOutput(sym SymbolId) {
	if s.outputPointer == len(s.outputSymbols) {
		s.outputSymbols = append(s.outputSymbols, sym)
	} else {
		s.outputSymbols[s.outputPointer] = sym
	}
	s.outputPointer++
}

// undoOutput reverses one emitOutput: step back and blank the slot.
func (s *lookupState) undoOutput() {
	s.outputPointer--
	s.writeOutputSentinel()
}

// writeOutputSentinel writes noSymbol at the current output position
// without moving the position, growing the buffer if needed.
func (s *lookupState) writeOutputSentinel() {
	if s.outputPointer == len(s.outputSymbols) {
		s.outputSymbols = append(s.outputSymbols, noSymbol)
	} else {
		s.outputSymbols[s.outputPointer] = noSymbol
	}
}

// topFlags returns a copy of the active feature-state vector.
func (s *lookupState) topFlags() []int32 {
	top := s.flagStack[len(s.flagStack)-1]
	cp := make([]int32, len(top))
	copy(cp, top)
	return cp
}

func (s *lookupState) pushFlags(v []int32) {
	s.flagStack = append(s.flagStack, v)
}

func (s *lookupState) popFlags() {
	s.flagStack = s.flagStack[:len(s.flagStack)-1]
}
