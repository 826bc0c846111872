package ospell

import (
	"bufio"
	"fmt"
)

// FlagOp is one of the six flag-diacritic operators.
type FlagOp int

const (
	FlagP FlagOp = iota
	FlagN
	FlagR
	FlagD
	FlagC
	FlagU
)

// FlagDiacriticOperation is the parsed form of a symbol written
// @op.feature[.value]@ in the alphabet.
type FlagDiacriticOperation struct {
	Op      FlagOp
	Feature uint16
	Value   int16
}

// Alphabet maps symbol numbers to UTF-8 strings and back, classifies flag
// diacritics, and records the designated "other" symbol.
type Alphabet struct {
	KeyTable       []string // symbol -> string, empty for epsilon/flags/other
	StringToSymbol map[string]Symbol
	Operations     map[Symbol]FlagDiacriticOperation
	OtherSymbol    Symbol // NoSymbol if absent
	FlagStateSize  int    // number of distinct features seen
}

func newAlphabet(symbolCount int) *Alphabet {
	return &Alphabet{
		KeyTable:       make([]string, symbolCount),
		StringToSymbol: make(map[string]Symbol, symbolCount),
		Operations:     make(map[Symbol]FlagDiacriticOperation),
		OtherSymbol:    NoSymbol,
	}
}

// IsFlag reports whether sym is a flag-diacritic symbol.
func (a *Alphabet) IsFlag(sym Symbol) bool {
	_, ok := a.Operations[sym]
	return ok
}

var flagOpByByte = map[byte]FlagOp{
	'P': FlagP,
	'N': FlagN,
	'R': FlagR,
	'D': FlagD,
	'C': FlagC,
	'U': FlagU,
}

// readAlphabet reads symbolCount NUL-terminated strings from r and builds
// an Alphabet per spec section 4.2.
func readAlphabet(r *bufio.Reader, symbolCount int) (*Alphabet, error) {
	alpha := newAlphabet(symbolCount)
	featureIDs := map[string]uint16{}
	valueIDs := map[string]int16{"": 0}
	nextFeature := uint16(0) // feature ids are 0-based, indexing FlagState directly
	nextValue := int16(1)

	for sym := 0; sym < symbolCount; sym++ {
		s, err := readNULString(r)
		if err != nil {
			return nil, newLoadError(ErrAlphabetParse, fmt.Errorf("symbol %d: %w", sym, err))
		}
		if sym == 0 {
			// Symbol 0 is forced empty (epsilon), regardless of what was
			// on disk.
			alpha.StringToSymbol[""] = 0
			continue
		}

		if op, feature, value, ok := parseFlagDiacritic(s); ok {
			featureID, ok := featureIDs[feature]
			if !ok {
				featureID = nextFeature
				featureIDs[feature] = featureID
				nextFeature++
			}
			valueID, ok := valueIDs[value]
			if !ok {
				valueID = nextValue
				valueIDs[value] = valueID
				nextValue++
			}
			alpha.Operations[Symbol(sym)] = FlagDiacriticOperation{
				Op:      op,
				Feature: featureID,
				Value:   valueID,
			}
			continue // key table entry stays empty
		}

		if s == "@_UNKNOWN_SYMBOL_@" || s == "@?@" {
			alpha.OtherSymbol = Symbol(sym)
			continue // key table entry stays empty
		}

		if len(s) >= 2 && s[0] == '@' && s[len(s)-1] == '@' {
			// Other @...@ strings (e.g. unsupported flag forms) are
			// silently ignored: key table entry stays empty.
			continue
		}

		alpha.KeyTable[sym] = s
		alpha.StringToSymbol[s] = Symbol(sym)
	}

	alpha.FlagStateSize = int(nextFeature)
	return alpha, nil
}

// parseFlagDiacritic recognizes @op.feature[.value]@ strings.
func parseFlagDiacritic(s string) (op FlagOp, feature, value string, ok bool) {
	if len(s) < 5 || s[0] != '@' || s[len(s)-1] != '@' || s[2] != '.' {
		return 0, "", "", false
	}
	opByte := s[1]
	fop, known := flagOpByByte[opByte]
	if !known {
		return 0, "", "", false
	}
	body := s[3 : len(s)-1] // feature[.value]
	for i := 0; i < len(body); i++ {
		if body[i] == '.' {
			return fop, body[:i], body[i+1:], true
		}
	}
	return fop, body, "", true
}

func readNULString(r *bufio.Reader) (string, error) {
	b, err := r.ReadBytes(0)
	if err != nil {
		return "", err
	}
	return string(b[:len(b)-1]), nil
}
