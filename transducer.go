package ospell

import (
	"bufio"
	"io"
)

// Transducer is the in-memory form of one loaded OL blob: header,
// alphabet, tokenizer, and the flat index/transition tables, wired
// together behind the traversal protocol described in spec section 4.4.
type Transducer struct {
	Header      *Header
	Alphabet    *Alphabet
	Encoder     *Encoder
	Indices     []TransitionIndex
	Transitions []Transition
}

// LoadTransducer reads one OL transducer from r. It fails with a
// *LoadError if the header, alphabet, or tables are malformed, or if the
// transducer is unweighted (spec invariant 5).
func LoadTransducer(r io.Reader) (*Transducer, error) {
	br := bufio.NewReader(r)

	header, err := readHeader(br)
	if err != nil {
		return nil, err
	}
	if !header.Weighted {
		return nil, newLoadError(ErrUnweighted, nil)
	}

	alpha, err := readAlphabet(br, int(header.SymbolCount))
	if err != nil {
		return nil, err
	}

	indices, err := readIndexTable(br, header.IndexTableSize)
	if err != nil {
		return nil, err
	}
	transitions, err := readTransitionTable(br, header.TransitionTableSize)
	if err != nil {
		return nil, err
	}

	return &Transducer{
		Header:      header,
		Alphabet:    alpha,
		Encoder:     newEncoder(alpha, int(header.InputSymbolCount)),
		Indices:     indices,
		Transitions: transitions,
	}, nil
}

// sTransition is a "symbol + taken transition" pair returned by the
// take* probes: Symbol == NoSymbol signals "no matching transition here".
type sTransition struct {
	Symbol Symbol
	Target uint32
	Weight Weight
}

var noSTransition = sTransition{Symbol: NoSymbol}

// next resolves, from state i having just matched symbol, the plain
// (already TargetTable-subtracted) index into t.Transitions at which to
// begin scanning candidate transitions.
func (t *Transducer) next(i uint32, symbol Symbol) uint32 {
	if i >= TargetTable {
		return i - TargetTable + 1
	}
	return t.Indices[i+1+uint32(symbol)].Target - TargetTable
}

// hasTransitions reports whether state+1 (the caller always passes
// state+1) holds a transition on symbol.
func (t *Transducer) hasTransitions(statePlusOne uint32, symbol Symbol) bool {
	if symbol == NoSymbol {
		return false
	}
	if statePlusOne >= TargetTable {
		i := statePlusOne - TargetTable
		return i < uint32(len(t.Transitions)) && t.Transitions[i].InputSymbol == symbol
	}
	i := statePlusOne + uint32(symbol)
	return i < uint32(len(t.Indices)) && t.Indices[i].InputSymbol == symbol
}

// hasEpsilonsOrFlags reports whether state+1 holds an epsilon or
// flag-diacritic transition. Only meaningful on the lexicon side.
func (t *Transducer) hasEpsilonsOrFlags(statePlusOne uint32) bool {
	if statePlusOne >= TargetTable {
		i := statePlusOne - TargetTable
		if i >= uint32(len(t.Transitions)) {
			return false
		}
		sym := t.Transitions[i].InputSymbol
		return sym == 0 || t.Alphabet.IsFlag(sym)
	}
	if statePlusOne >= uint32(len(t.Indices)) {
		return false
	}
	return t.Indices[statePlusOne].InputSymbol == 0
}

// takeEpsilons, takeEpsilonsAndFlags and takeNonEpsilons all treat an
// out-of-range slot as "run ended" rather than panicking: a contiguous
// same-symbol run is only ever followed by either another state's data or
// the physical end of the transition table, and a caller scanning forward
// past its own run must see that as a mismatch, not a crash.
func (t *Transducer) takeEpsilons(i uint32) sTransition {
	if i >= uint32(len(t.Transitions)) {
		return noSTransition
	}
	tr := t.Transitions[i]
	if tr.InputSymbol != 0 {
		return noSTransition
	}
	return sTransition{Symbol: tr.OutputSymbol, Target: tr.Target, Weight: tr.Weight}
}

func (t *Transducer) takeEpsilonsAndFlags(i uint32) sTransition {
	if i >= uint32(len(t.Transitions)) {
		return noSTransition
	}
	tr := t.Transitions[i]
	if tr.InputSymbol != 0 && !t.Alphabet.IsFlag(tr.InputSymbol) {
		return noSTransition
	}
	return sTransition{Symbol: tr.OutputSymbol, Target: tr.Target, Weight: tr.Weight}
}

func (t *Transducer) takeNonEpsilons(i uint32, symbol Symbol) sTransition {
	if i >= uint32(len(t.Transitions)) {
		return noSTransition
	}
	tr := t.Transitions[i]
	if tr.InputSymbol != symbol {
		return noSTransition
	}
	return sTransition{Symbol: tr.OutputSymbol, Target: tr.Target, Weight: tr.Weight}
}

// isFinal reports whether state i (a raw table-space index, not +1) is an
// accepting state.
func (t *Transducer) isFinal(i uint32) bool {
	if i >= TargetTable {
		j := i - TargetTable
		return j < uint32(len(t.Transitions)) && t.Transitions[j].Final()
	}
	return i < uint32(len(t.Indices)) && t.Indices[i].Final()
}

func (t *Transducer) finalWeight(i uint32) Weight {
	if i >= TargetTable {
		return t.Transitions[i-TargetTable].Weight
	}
	return t.Indices[i].FinalWeight()
}

// inputSymbolAt returns the input symbol of the current transitions-array
// slot i, used by callers to tell which transition's output is an actual
// epsilon (input symbol 0) versus a flag diacritic.
func (t *Transducer) inputSymbolAt(i uint32) Symbol {
	return t.Transitions[i].InputSymbol
}

// Stringify renders a sequence of output symbols to a UTF-8 string,
// skipping empty key-table entries (epsilon, flags, and any @...@ symbol
// the alphabet carries no surface form for).
func (t *Transducer) Stringify(syms []Symbol) string {
	var out []byte
	for _, s := range syms {
		if int(s) >= len(t.Alphabet.KeyTable) {
			continue
		}
		out = append(out, t.Alphabet.KeyTable[s]...)
	}
	return string(out)
}
