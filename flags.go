package ospell

// FlagState is the per-branch feature-value vector consulted and mutated
// by flag-diacritic operations. Index f holds the current value for
// feature f; 0 means unset.
type FlagState []int16

// clone copies the vector so a child branch can mutate it without
// affecting its siblings.
func (f FlagState) clone() FlagState {
	out := make(FlagState, len(f))
	copy(out, f)
	return out
}

// apply evaluates op against flags in place and reports whether the
// branch may proceed. See spec section 4.5 for the operator table.
func (f FlagState) apply(op FlagDiacriticOperation) bool {
	feat := op.Feature
	switch op.Op {
	case FlagP:
		f[feat] = op.Value
		return true
	case FlagN:
		f[feat] = -op.Value
		return true
	case FlagR:
		if op.Value == 0 {
			return f[feat] != 0
		}
		return f[feat] == op.Value
	case FlagD:
		if op.Value == 0 {
			return f[feat] == 0
		}
		return f[feat] != op.Value
	case FlagC:
		f[feat] = 0
		return true
	case FlagU:
		cur := f[feat]
		ok := cur == 0 || cur == op.Value || (cur < 0 && -cur != op.Value)
		if ok {
			f[feat] = op.Value
		}
		return ok
	default:
		return false
	}
}
