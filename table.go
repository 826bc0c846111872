package ospell

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

// TransitionIndex is a 6-byte on-disk record: {input_symbol, first_transition}.
type TransitionIndex struct {
	InputSymbol Symbol
	Target      uint32
}

const transitionIndexSize = 6

// Final reports whether idx is a final index-table slot.
func (idx TransitionIndex) Final() bool {
	return idx.InputSymbol == NoSymbol && idx.Target != NoTableIndex
}

// FinalWeight reinterprets Target bit-for-bit as the state's final weight.
// Only meaningful when Final() is true.
func (idx TransitionIndex) FinalWeight() Weight {
	return math.Float32frombits(idx.Target)
}

// Transition is a 12-byte on-disk record:
// {input_symbol, output_symbol, target_index, weight}.
type Transition struct {
	InputSymbol  Symbol
	OutputSymbol Symbol
	Target       uint32
	Weight       Weight
}

const transitionSize = 12

// Final reports whether t is a final transition. The target field is
// conventionally 1 in that case but must not be relied upon.
func (t Transition) Final() bool {
	return t.InputSymbol == NoSymbol && t.OutputSymbol == NoSymbol
}

func readIndexTable(r io.Reader, count uint32) ([]TransitionIndex, error) {
	buf := make([]byte, int(count)*transitionIndexSize)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, newLoadError(ErrIndexTableRead, fmt.Errorf("reading %d index records: %w", count, err))
	}
	out := make([]TransitionIndex, count)
	for i := range out {
		off := i * transitionIndexSize
		out[i] = TransitionIndex{
			InputSymbol: Symbol(binary.LittleEndian.Uint16(buf[off:])),
			Target:      binary.LittleEndian.Uint32(buf[off+2:]),
		}
	}
	return out, nil
}

func readTransitionTable(r io.Reader, count uint32) ([]Transition, error) {
	buf := make([]byte, int(count)*transitionSize)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, newLoadError(ErrTransitionTableRead, fmt.Errorf("reading %d transition records: %w", count, err))
	}
	out := make([]Transition, count)
	for i := range out {
		off := i * transitionSize
		out[i] = Transition{
			InputSymbol:  Symbol(binary.LittleEndian.Uint16(buf[off:])),
			OutputSymbol: Symbol(binary.LittleEndian.Uint16(buf[off+2:])),
			Target:       binary.LittleEndian.Uint32(buf[off+4:]),
			Weight:       math.Float32frombits(binary.LittleEndian.Uint32(buf[off+8:])),
		}
	}
	return out, nil
}
