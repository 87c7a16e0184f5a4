package aebgroup

import (
	"math/big"
	"strconv"
)

// aebMode is the MakerNotes:BracketMode value Canon writes for Auto
// Exposure Bracketing shots.
const aebMode = "AEB"

// Bracket is one file's exposure-bracket classification. Offset and
// Exposure are exact rationals; nil means the field was absent or
// unparseable. Callers check AEB before relying on either value, but
// classify never assumes the keys exist.
type Bracket struct {
	// AEB reports whether the file was shot in AEB mode.
	AEB bool
	// Offset is the signed bracket value in EV, e.g. -1/3.
	Offset *big.Rat
	// Exposure is the exposure time in seconds, e.g. 1/8.
	Exposure *big.Rat
}

// classify inspects md for the AEB marker and bracket values. A
// missing or non-"AEB" BracketMode means not bracketed; no error is
// ever surfaced.
func classify(md MetadataMap) Bracket {
	b := Bracket{}
	if mode, ok := md.GetString(keyBracketMode); ok && mode == aebMode {
		b.AEB = true
	}
	b.Offset = ratValue(md, keyBracketValue)
	b.Exposure = ratValue(md, keyExposureTime)
	return b
}

func ratValue(md MetadataMap, key string) *big.Rat {
	v, ok := md[key]
	if !ok || v == nil {
		return nil
	}
	return parseRat(v)
}

// parseRat converts an exiftool value into an exact rational.
// Exiftool reports bracket and exposure values as "n/d" strings
// ("1/8", "-2/3") or as JSON numbers (0.3, 12). Floats are formatted
// with minimal precision first so 0.3 becomes 3/10, not the nearest
// binary float.
func parseRat(v any) *big.Rat {
	var s string
	switch x := v.(type) {
	case string:
		s = x
	case float64:
		s = strconv.FormatFloat(x, 'f', -1, 64)
	case int:
		s = strconv.Itoa(x)
	case int64:
		s = strconv.FormatInt(x, 10)
	default:
		return nil
	}

	r, ok := new(big.Rat).SetString(s)
	if !ok {
		return nil
	}
	return r
}
