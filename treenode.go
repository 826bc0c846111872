package ospell

// TreeNode is one element of the search frontier: a partially-traversed
// point in the product of (mutator, lexicon), the output accumulated so
// far, and the branch's flag-diacritic state.
type TreeNode struct {
	Output       []Symbol
	InputPos     int
	MutatorState uint32
	LexiconState uint32
	Flags        FlagState
	Weight       Weight
}

func startNode(flagStateSize int) TreeNode {
	return TreeNode{
		Flags: make(FlagState, flagStateSize),
	}
}

// withOutput returns a copy of n.Output with sym appended; callers never
// mutate a parent's Output slice in place, since siblings share it.
func (n *TreeNode) withOutput(sym Symbol) []Symbol {
	out := make([]Symbol, len(n.Output)+1)
	copy(out, n.Output)
	out[len(n.Output)] = sym
	return out
}

// updateLexicon advances the lexicon side only, used by lexicon_epsilons.
func (n *TreeNode) updateLexicon(outputSymbol Symbol, nextLexicon uint32, weight Weight) TreeNode {
	return TreeNode{
		Output:       n.withOutput(outputSymbol),
		InputPos:     n.InputPos,
		MutatorState: n.MutatorState,
		LexiconState: nextLexicon,
		Flags:        n.Flags,
		Weight:       n.Weight + weight,
	}
}

// updateMutator advances the mutator side only, used by mutator_epsilons
// on a pure-epsilon mutator transition.
func (n *TreeNode) updateMutator(outputSymbol Symbol, nextMutator uint32, weight Weight) TreeNode {
	return TreeNode{
		Output:       n.withOutput(outputSymbol),
		InputPos:     n.InputPos,
		MutatorState: nextMutator,
		LexiconState: n.LexiconState,
		Flags:        n.Flags,
		Weight:       n.Weight + weight,
	}
}

// updateBoth advances both sides and the input position, used by
// consume_input and by the lexicon-only consume step of check/analyse.
func (n *TreeNode) updateBoth(outputSymbol Symbol, nextInput int, nextMutator, nextLexicon uint32, weight Weight) TreeNode {
	return TreeNode{
		Output:       n.withOutput(outputSymbol),
		InputPos:     nextInput,
		MutatorState: nextMutator,
		LexiconState: nextLexicon,
		Flags:        n.Flags,
		Weight:       n.Weight + weight,
	}
}

// updateStates advances both transducer states without consuming input,
// used by the mutator_epsilons branch that matches a lexicon transition.
func (n *TreeNode) updateStates(outputSymbol Symbol, nextMutator, nextLexicon uint32, weight Weight) TreeNode {
	return TreeNode{
		Output:       n.withOutput(outputSymbol),
		InputPos:     n.InputPos,
		MutatorState: nextMutator,
		LexiconState: nextLexicon,
		Flags:        n.Flags,
		Weight:       n.Weight + weight,
	}
}

// tryCompatibleWith evaluates op against a clone of n's flag state and
// returns that clone with ok reporting whether op succeeded; n.Flags is
// left unchanged. When ok is false the branch must be abandoned.
func (n *TreeNode) tryCompatibleWith(op FlagDiacriticOperation) (FlagState, bool) {
	flags := n.Flags.clone()
	ok := flags.apply(op)
	return flags, ok
}
