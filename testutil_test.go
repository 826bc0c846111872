package ospell

import "math"

// Shared scaffolding for hand-building small OL-shaped transducers in
// tests, per the "use a small handcrafted pair of transducers" guidance.
// All states here live in index-table space; transitions live in a flat
// transition table. Each state occupies a fixed-width block of index
// slots: slot 0 is the state's own final-check entry, and slot 1+symbol
// is the per-symbol probe entry (shared by epsilon and every flag symbol,
// which must therefore be stored as one contiguous run).

type testBuilder struct {
	alpha       *Alphabet
	blockWidth  uint32 // 1 + symbolCount
	indices     []TransitionIndex
	transitions []Transition
}

func newTestBuilder(alpha *Alphabet) *testBuilder {
	return &testBuilder{
		alpha:      alpha,
		blockWidth: uint32(len(alpha.KeyTable)) + 1,
	}
}

// newState reserves a fresh block of index slots and returns its offset
// (the state's table-space identifier).
func (b *testBuilder) newState() uint32 {
	state := uint32(len(b.indices))
	block := make([]TransitionIndex, b.blockWidth)
	for i := range block {
		block[i] = TransitionIndex{InputSymbol: NoSymbol, Target: NoTableIndex}
	}
	b.indices = append(b.indices, block...)
	return state
}

func (b *testBuilder) setFinal(state uint32, weight Weight) {
	b.indices[state] = TransitionIndex{InputSymbol: NoSymbol, Target: float32bitsToU32(weight)}
}

// addSymbolTransition adds a single ordinary (non-epsilon, non-flag)
// transition out of state, consuming input and producing output.
func (b *testBuilder) addSymbolTransition(state uint32, input, output Symbol, target uint32, weight Weight) {
	off := uint32(len(b.transitions))
	b.transitions = append(b.transitions, Transition{
		InputSymbol:  input,
		OutputSymbol: output,
		Target:       target,
		Weight:       weight,
	})
	b.indices[state+1+uint32(input)] = TransitionIndex{InputSymbol: input, Target: TargetTable + off}
}

// epsilonOrFlagEntry is one member of a state's contiguous epsilon/flag
// transition run.
type epsilonOrFlagEntry struct {
	Input  Symbol // 0 for plain epsilon, or a flag symbol
	Output Symbol
	Target uint32
	Weight Weight
}

// addEpsilonOrFlagGroup installs a contiguous run of epsilon/flag
// transitions out of state, addressed by the single epsilon probe slot.
func (b *testBuilder) addEpsilonOrFlagGroup(state uint32, entries []epsilonOrFlagEntry) {
	off := uint32(len(b.transitions))
	for _, e := range entries {
		b.transitions = append(b.transitions, Transition{
			InputSymbol:  e.Input,
			OutputSymbol: e.Output,
			Target:       e.Target,
			Weight:       e.Weight,
		})
	}
	b.indices[state+1+0] = TransitionIndex{InputSymbol: 0, Target: TargetTable + off}
}

// build finalizes the transducer. A sentinel transition with no matching
// input symbol is appended so that a scan over the last contiguous
// same-symbol run in the table always terminates by mismatch, the way a
// real compiled transition table's trailing data would, rather than
// running off the end of the slice.
func (b *testBuilder) build() *Transducer {
	b.transitions = append(b.transitions, Transition{InputSymbol: NoSymbol, OutputSymbol: NoSymbol, Target: NoTableIndex})
	return &Transducer{
		Header: &Header{
			Weighted:    true,
			SymbolCount: uint16(len(b.alpha.KeyTable)),
		},
		Alphabet:    b.alpha,
		Encoder:     newEncoder(b.alpha, len(b.alpha.KeyTable)),
		Indices:     b.indices,
		Transitions: b.transitions,
	}
}

func float32bitsToU32(w Weight) uint32 {
	return math.Float32bits(w)
}

// newTestAlphabet builds an Alphabet whose symbol 0 is epsilon, symbols
// 1..len(letters) are the given single-byte strings in order, and whose
// remaining symbols (up to extra) are reserved for flags/other, to be
// filled in by the caller.
func newTestAlphabet(letters []string, extra int) *Alphabet {
	total := 1 + len(letters) + extra
	a := newAlphabet(total)
	a.StringToSymbol[""] = 0
	for i, s := range letters {
		sym := Symbol(1 + i)
		a.KeyTable[sym] = s
		a.StringToSymbol[s] = sym
	}
	return a
}

func (a *Alphabet) addFlag(sym Symbol, op FlagOp, feature uint16, value int16) {
	a.Operations[sym] = FlagDiacriticOperation{Op: op, Feature: feature, Value: value}
	if int(feature) >= a.FlagStateSize {
		a.FlagStateSize = int(feature) + 1
	}
}

func (a *Alphabet) setOther(sym Symbol) {
	a.OtherSymbol = sym
}
