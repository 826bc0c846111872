package ospell

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"strings"
)

// Header is the mandatory OL preamble, optionally preceded by a versioned
// "HFST3" wrapper carrying a type= properties string.
type Header struct {
	InputSymbolCount           uint16
	SymbolCount                uint16
	IndexTableSize             uint32
	TransitionTableSize        uint32
	NumberOfStates             uint32
	NumberOfTransitions        uint32
	Weighted                   bool
	Deterministic              bool
	InputDeterministic         bool
	Minimized                  bool
	Cyclic                     bool
	HasEpsilonEpsilon          bool
	HasInputEpsilon            bool
	HasInputEpsilonCycles      bool
	HasUnweightedEpsilonCycles bool
}

const hfst3Wrapper = "HFST\x00"

// readHeader consumes the optional HFST3 wrapper (if present) and then the
// mandatory preamble from r. r must support peeking at the wrapper's
// five-byte magic without consuming it, which bufio.Reader provides.
func readHeader(r *bufio.Reader) (*Header, error) {
	if err := skipHFST3Wrapper(r); err != nil {
		return nil, newLoadError(ErrHeaderParse, err)
	}

	var fixed struct {
		InputSymbolCount    uint16
		SymbolCount         uint16
		IndexTableSize      uint32
		TransitionTableSize uint32
		NumberOfStates      uint32
		NumberOfTransitions uint32
	}
	if err := binary.Read(r, binary.LittleEndian, &fixed); err != nil {
		return nil, newLoadError(ErrHeaderParse, fmt.Errorf("reading preamble: %w", err))
	}

	props, err := readBoolProps(r)
	if err != nil {
		return nil, newLoadError(ErrHeaderParse, err)
	}

	return &Header{
		InputSymbolCount:           fixed.InputSymbolCount,
		SymbolCount:                fixed.SymbolCount,
		IndexTableSize:             fixed.IndexTableSize,
		TransitionTableSize:        fixed.TransitionTableSize,
		NumberOfStates:             fixed.NumberOfStates,
		NumberOfTransitions:        fixed.NumberOfTransitions,
		Weighted:                   props[0],
		Deterministic:              props[1],
		InputDeterministic:         props[2],
		Minimized:                  props[3],
		Cyclic:                     props[4],
		HasEpsilonEpsilon:          props[5],
		HasInputEpsilon:            props[6],
		HasInputEpsilonCycles:      props[7],
		HasUnweightedEpsilonCycles: props[8],
	}, nil
}

func readBoolProps(r io.Reader) ([9]bool, error) {
	var out [9]bool
	var raw [9]uint32
	if err := binary.Read(r, binary.LittleEndian, &raw); err != nil {
		return out, fmt.Errorf("reading property flags: %w", err)
	}
	for i, v := range raw {
		out[i] = v != 0
	}
	return out, nil
}

// skipHFST3Wrapper peeks for the "HFST\0" magic. If present, it consumes the
// wrapper (remaining length + properties string) and validates the type=
// field. If absent, it leaves r untouched so the caller reads the mandatory
// preamble from the true start of the stream.
func skipHFST3Wrapper(r *bufio.Reader) error {
	magic, err := r.Peek(len(hfst3Wrapper))
	if err != nil || string(magic) != hfst3Wrapper {
		// Either a short read (too small to ever hold the wrapper) or no
		// match: the wrapper is optional, proceed from the true start.
		return nil
	}
	if _, err := r.Discard(len(hfst3Wrapper)); err != nil {
		return err
	}

	var remaining uint16
	if err := binary.Read(r, binary.LittleEndian, &remaining); err != nil {
		return fmt.Errorf("reading HFST3 wrapper length: %w", err)
	}
	buf := make([]byte, remaining)
	if _, err := io.ReadFull(r, buf); err != nil {
		return fmt.Errorf("reading HFST3 properties string: %w", err)
	}
	props := string(buf)
	if idx := strings.IndexByte(props, 0); idx >= 0 {
		props = props[:idx]
	}
	if !strings.Contains(props, "type=HFST_OL") && !strings.Contains(props, "type=HFST_OLW") {
		return fmt.Errorf("unrecognized HFST3 wrapper type in %q", props)
	}
	return nil
}
