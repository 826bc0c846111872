package ospell

// Symbol is an index into a transducer's alphabet. Symbol 0 is epsilon.
type Symbol uint16

// NoSymbol marks the absence of a symbol (e.g. a translator miss, or an
// index-table slot that holds no transition for its probed symbol).
const NoSymbol Symbol = 0xFFFF

// Weight is an IEEE-754 float interpreted in the tropical semiring: costs
// add along a path, and the minimum wins across paths.
type Weight = float32

// TargetTable is the address-space boundary between the index table and
// the transition table: a TransitionTableIndex less than this value
// addresses the index table, anything else addresses the transition table
// at offset i-TargetTable.
const TargetTable uint32 = 1 << 31

// NoTableIndex marks an index-table slot with no further transitions.
const NoTableIndex uint32 = 0xFFFFFFFF
