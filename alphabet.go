package hfst

import "unicode/utf8"

// Alphabet is the decoded symbol table: a display string per symbol id,
// a partial map of symbol ids to flag-diacritic operations, and the
// number of distinct features those operations reference.
type Alphabet struct {
	KeyTable     []string
	Operations   map[SymbolId]FlagOperation
	FeatureCount int
}

// decodeAlphabet reads totalSymbolCount NUL-terminated UTF-8 strings and
// classifies each as a flag diacritic ("@OP.FEATURE[.VALUE]@") or a plain
// display symbol.
func decodeAlphabet(c *byteCursor, totalSymbolCount int) (*Alphabet, error) {
	a := &Alphabet{
		KeyTable:   make([]string, 0, totalSymbolCount),
		Operations: make(map[SymbolId]FlagOperation),
	}
	featureBucket := make(map[string]uint16)
	valueBucket := map[string]int32{"": 0}
	nextValue := int32(1)

	for i := 0; i < totalSymbolCount; i++ {
		s, err := readCString(c)
		if err != nil {
			return nil, decodeErrorf("alphabet", err)
		}

		op, feature, value, recognized, flagShaped := parseFlagDiacritic(s, featureBucket, valueBucket, &nextValue, &a.FeatureCount)
		if recognized {
			a.Operations[SymbolId(i)] = FlagOperation{Op: op, Feature: feature, Value: value}
			a.KeyTable = append(a.KeyTable, "")
			continue
		}
		if flagShaped {
			// "@OP.FEATURE[.VALUE]@" with an operator code outside P/N/R/D/C/U:
			// not a usable operation, but still not a symbol anyone should see.
			a.KeyTable = append(a.KeyTable, "")
			continue
		}
		a.KeyTable = append(a.KeyTable, s)
	}
	if len(a.KeyTable) > 0 {
		a.KeyTable[0] = "" // epsilon never prints
	}
	return a, nil
}

// readCString reads bytes up to and including a NUL terminator and
// returns the preceding bytes decoded as UTF-8.
func readCString(c *byteCursor) (string, error) {
	start := c.pos
	for {
		b := c.u8()
		if c.err != nil {
			return "", c.err
		}
		if b == 0 {
			break
		}
	}
	raw := c.buf[start : c.pos-1]
	if !utf8.Valid(raw) {
		return "", ErrMalformedSymbol
	}
	return string(raw), nil
}

// parseFlagDiacritic recognizes and decodes a symbol of the shape
// "@OP.FEATURE[.VALUE]@". recognized is true only when OP is one of
// P/N/R/D/C/U. flagShaped is true whenever the symbol has the "@...@"
// shape at all, even with an unrecognized operator code — callers use it
// to demote such symbols to plain, display-empty ones rather than
// treating them as a decode error.
func parseFlagDiacritic(s string, featureBucket map[string]uint16, valueBucket map[string]int32, nextValue *int32, featureCount *int) (op FlagOperator, feature uint16, value int32, recognized, flagShaped bool) {
	if len(s) <= 5 || s[0] != '@' || s[len(s)-1] != '@' || s[2] != '.' {
		return 0, 0, 0, false, false
	}
	interior := s[1 : len(s)-1]
	parts := splitDot(interior)
	if len(parts) < 2 {
		return 0, 0, 0, false, false
	}
	opCode, featName := parts[0], parts[1]
	valName := ""
	if len(parts) >= 3 {
		valName = parts[2]
	}

	operator, known := flagOperatorCodes[opCode]
	if !known {
		return 0, 0, 0, false, true
	}

	featID, seen := featureBucket[featName]
	if !seen {
		featID = uint16(*featureCount)
		featureBucket[featName] = featID
		*featureCount++
	}
	valID, seen := valueBucket[valName]
	if !seen {
		valID = *nextValue
		valueBucket[valName] = valID
		*nextValue++
	}
	return operator, featID, valID, true, true
}

// splitDot splits s on every '.', keeping empty parts. The shape check in
// parseFlagDiacritic guarantees at least two parts; it does not rule out
// empty parts or more than three, and parseFlagDiacritic ignores any part
// after the third.
func splitDot(s string) []string {
	var parts []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '.' {
			parts = append(parts, s[start:i])
			start = i + 1
		}
	}
	parts = append(parts, s[start:])
	return parts
}
