package ospell

import (
	"bytes"
	"encoding/binary"
	"math"
	"testing"
)

// encodeOLFile serializes a minimal, wrapper-free OL file: a two-state,
// one-transition acceptor for the single symbol "x" at weight 0 with a
// final weight of 2.5. It is a round-trip check that LoadTransducer can
// parse what the on-disk layout of section 6.1 actually describes, as
// opposed to the handcrafted in-memory fixtures used elsewhere.
func encodeOLFile(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer

	symbols := []string{"", "x"}
	// One state block (width 1+2=3) at offset 0: slot 0 = non-final,
	// slot 1 (epsilon) unused, slot 2 (symbol 'x') points into the
	// transition table. One more block for the final state.
	indices := []TransitionIndex{
		{InputSymbol: NoSymbol, Target: NoTableIndex}, // state 0: not final
		{InputSymbol: NoSymbol, Target: NoTableIndex}, // epsilon slot: none
		{InputSymbol: 1, Target: TargetTable + 0},     // 'x' slot -> transitions[0]
		{InputSymbol: NoSymbol, Target: math.Float32bits(2.5)}, // state 1 (block offset 3): final, weight 2.5
		{InputSymbol: NoSymbol, Target: NoTableIndex},
		{InputSymbol: NoSymbol, Target: NoTableIndex},
	}
	transitions := []Transition{
		{InputSymbol: 1, OutputSymbol: 1, Target: 3, Weight: 0},
	}

	fixed := struct {
		InputSymbolCount    uint16
		SymbolCount         uint16
		IndexTableSize      uint32
		TransitionTableSize uint32
		NumberOfStates      uint32
		NumberOfTransitions uint32
	}{2, 2, uint32(len(indices)), uint32(len(transitions)), 2, 1}
	binary.Write(&buf, binary.LittleEndian, fixed)
	props := [9]uint32{1} // Weighted = true
	binary.Write(&buf, binary.LittleEndian, props)

	for _, s := range symbols {
		buf.WriteString(s)
		buf.WriteByte(0)
	}
	for _, idx := range indices {
		binary.Write(&buf, binary.LittleEndian, idx.InputSymbol)
		binary.Write(&buf, binary.LittleEndian, idx.Target)
	}
	for _, tr := range transitions {
		binary.Write(&buf, binary.LittleEndian, tr.InputSymbol)
		binary.Write(&buf, binary.LittleEndian, tr.OutputSymbol)
		binary.Write(&buf, binary.LittleEndian, tr.Target)
		binary.Write(&buf, binary.LittleEndian, tr.Weight)
	}
	return buf.Bytes()
}

func TestLoadTransducerRoundTrip(t *testing.T) {
	raw := encodeOLFile(t)
	tr, err := LoadTransducer(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tr.Header.SymbolCount != 2 || !tr.Header.Weighted {
		t.Fatalf("unexpected header: %+v", tr.Header)
	}
	if tr.Alphabet.KeyTable[1] != "x" {
		t.Fatalf("unexpected alphabet: %v", tr.Alphabet.KeyTable)
	}

	input, ok := tokenize(tr.Encoder, "x", NoSymbol)
	if !ok || len(input) != 1 || input[0] != 1 {
		t.Fatalf("unexpected tokenization: %v, %v", input, ok)
	}
	if !runCheck(tr, input) {
		t.Fatalf("expected \"x\" to be accepted")
	}
	results := runAnalyse(tr, input, DefaultOptions())
	if len(results) != 1 || results[0].Output != "x" || results[0].Weight != 2.5 {
		t.Fatalf("unexpected analyse results: %v", results)
	}
}
