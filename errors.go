package hfst

import "errors"

// Decode errors. All of them are fatal and surface from Open; a
// well-formed transducer never produces them from Lookup.
var (
	// ErrTruncated means the file ended before a fixed-size record or
	// declared table was fully read.
	ErrTruncated = errors.New("hfst: unexpected end of transducer data")

	// ErrMalformedHeader means the 56-byte fixed header (or its optional
	// HFST3 preamble) could not be parsed.
	ErrMalformedHeader = errors.New("hfst: malformed transducer header")

	// ErrMalformedSymbol means an alphabet entry was not valid UTF-8.
	ErrMalformedSymbol = errors.New("hfst: malformed alphabet symbol")
)

// ErrUnweighted is the value TransitionTable.FinalWeight panics with when
// a weight is requested from an unweighted transition table. Only a
// direct misuse of that method raises it; Lookup never triggers it.
var ErrUnweighted = errors.New("hfst: weight requested from unweighted transition table")

// DecodeError wraps a lower-level sentinel with the decode stage that
// produced it.
type DecodeError struct {
	Stage string
	Err   error
}

func (e *DecodeError) Error() string {
	return "hfst: " + e.Stage + ": " + e.Err.Error()
}

func (e *DecodeError) Unwrap() error { return e.Err }

func decodeErrorf(stage string, err error) error {
	return &DecodeError{Stage: stage, Err: err}
}
