package hfst

// headerSize is the size in bytes of the fixed transducer header: two
// uint16 counts, four uint32 counts, and nine uint32-valued booleans.
const headerSize = 56

// hfst3Magic is the optional preamble marker. When a transducer file
// begins with it, a little-endian uint16 length followed by that many
// bytes of opaque metadata precede the fixed header.
var hfst3Magic = [5]byte{'H', 'F', 'S', 'T', 0}

// Header describes a transducer's shape: symbol and table sizes plus a
// set of descriptive flags. Only InputSymbolCount, TotalSymbolCount,
// IndexTableLen, TransitionTableLen, and Weighted are consulted by the
// rest of the runtime; the remaining fields are advisory.
type Header struct {
	InputSymbolCount    uint16
	TotalSymbolCount    uint16
	IndexTableLen       uint32
	TransitionTableLen  uint32
	StateCount          uint32
	TransitionCount     uint32
	Weighted            bool
	Deterministic       bool
	InputDeterministic  bool
	Minimized           bool
	Cyclic              bool
	EpsilonEpsilonArcs  bool
	InputEpsilonArcs    bool
	InputEpsilonCycles  bool
	UnweightedInputEpsilonCycles bool
}

// decodeHeader reads the optional HFST3 preamble (if present) and the
// fixed 56-byte header that follows it.
func decodeHeader(c *byteCursor) (Header, error) {
	prefix := c.take(5)
	if c.err != nil {
		return Header{}, decodeErrorf("header", c.err)
	}
	var prefixArr [5]byte
	copy(prefixArr[:], prefix)

	var raw [headerSize]byte
	if prefixArr == hfst3Magic {
		length := int(c.u16LE())
		c.skip(length)
		fixed := c.take(headerSize)
		if c.err != nil {
			return Header{}, decodeErrorf("header", c.err)
		}
		copy(raw[:], fixed)
	} else {
		copy(raw[:5], prefix)
		rest := c.take(headerSize - 5)
		if c.err != nil {
			return Header{}, decodeErrorf("header", c.err)
		}
		copy(raw[5:], rest)
	}

	hc := newByteCursor(raw[:])
	h := Header{
		InputSymbolCount:             hc.u16LE(),
		TotalSymbolCount:             hc.u16LE(),
		IndexTableLen:                hc.u32LE(),
		TransitionTableLen:           hc.u32LE(),
		StateCount:                   hc.u32LE(),
		TransitionCount:              hc.u32LE(),
		Weighted:                     hc.boolU32(),
		Deterministic:                hc.boolU32(),
		InputDeterministic:           hc.boolU32(),
		Minimized:                    hc.boolU32(),
		Cyclic:                       hc.boolU32(),
		EpsilonEpsilonArcs:           hc.boolU32(),
		InputEpsilonArcs:             hc.boolU32(),
		InputEpsilonCycles:           hc.boolU32(),
		UnweightedInputEpsilonCycles: hc.boolU32(),
	}
	if hc.err != nil {
		return Header{}, decodeErrorf("header", ErrMalformedHeader)
	}
	return h, nil
}
