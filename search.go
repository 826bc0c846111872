package ospell

import "time"

// Options tunes a single suggest/analyse call. Zero value means
// unlimited/disabled for every field except the defaults below, matching
// spec section 6.3's opts contract.
type Options struct {
	Nbest       int     // 0 = unlimited
	MaxWeight   Weight  // <0 = no limit
	Beam        Weight  // <0 = no limit
	TimeCutoffS float64 // 0 = no limit
}

// DefaultOptions returns the "no limits" tuning.
func DefaultOptions() Options {
	return Options{MaxWeight: -1, Beam: -1}
}

// pruner holds the four independent, combinable limits from spec section
// 4.6.5, evaluated at pop time before a node is expanded; max-weight and
// beam are applied once more to the final results by filter.
type pruner struct {
	opts     Options
	nbest    *nbestHeap
	best     Weight // smallest final weight seen so far, for beam
	haveBest bool
	deadline time.Time
	timed    bool
}

func newPruner(opts Options) *pruner {
	p := &pruner{opts: opts}
	if opts.Nbest > 0 {
		p.nbest = newNbestHeap(opts.Nbest)
	}
	if opts.TimeCutoffS > 0 {
		p.timed = true
		p.deadline = time.Now().Add(time.Duration(opts.TimeCutoffS * float64(time.Second)))
	}
	return p
}

func (p *pruner) expired() bool {
	return p.timed && time.Now().After(p.deadline)
}

// reject reports whether a popped node's running weight can be pruned
// without being expanded further.
func (p *pruner) reject(w Weight) bool {
	if p.opts.MaxWeight >= 0 && w >= p.opts.MaxWeight {
		return true
	}
	if p.opts.Beam >= 0 && p.haveBest && w >= p.best+p.opts.Beam {
		return true
	}
	if p.nbest != nil && p.nbest.Full() && w >= p.nbest.Worst() {
		return true
	}
	return false
}

// noteFinal records a just-emitted final weight for beam/nbest bookkeeping.
func (p *pruner) noteFinal(w Weight) {
	if !p.haveBest || w < p.best {
		p.best = w
		p.haveBest = true
	}
	if p.nbest != nil {
		p.nbest.Consider(w)
	}
}

// filter drops results whose final weight is at or above the max weight,
// or at or above the best final weight of the whole search plus the beam.
func (p *pruner) filter(results []Result) []Result {
	out := results[:0]
	for _, r := range results {
		if p.opts.MaxWeight >= 0 && r.Weight >= p.opts.MaxWeight {
			continue
		}
		if p.opts.Beam >= 0 && p.haveBest && r.Weight >= p.best+p.opts.Beam {
			continue
		}
		out = append(out, r)
	}
	return out
}

// lexiconEpsilons expands the epsilon and flag-diacritic transitions out
// of n.LexiconState, pushing children onto frontier. Grounded on
// Speller::lexicon_epsilons.
func lexiconEpsilons(lex *Transducer, n TreeNode, frontier []TreeNode) []TreeNode {
	if !lex.hasEpsilonsOrFlags(n.LexiconState + 1) {
		return frontier
	}
	next := lex.next(n.LexiconState, 0)
	for {
		st := lex.takeEpsilonsAndFlags(next)
		if st.Symbol == NoSymbol {
			break
		}
		if lex.inputSymbolAt(next) == 0 {
			frontier = append(frontier, n.updateLexicon(st.Symbol, st.Target, st.Weight))
		} else {
			op := lex.Alphabet.Operations[lex.inputSymbolAt(next)]
			if flags, ok := n.tryCompatibleWith(op); ok {
				child := n.updateLexicon(st.Symbol, st.Target, st.Weight)
				child.Flags = flags
				frontier = append(frontier, child)
			}
		}
		next++
	}
	return frontier
}

// lexiconConsume advances the lexicon directly on the next input symbol,
// used only by check (no mutator involved).
func lexiconConsume(lex *Transducer, input InputString, n TreeNode, frontier []TreeNode) []TreeNode {
	if n.InputPos >= len(input) {
		return frontier
	}
	symbol := input[n.InputPos]
	if !lex.hasTransitions(n.LexiconState+1, symbol) {
		return frontier
	}
	next := lex.next(n.LexiconState, symbol)
	for {
		st := lex.takeNonEpsilons(next, symbol)
		if st.Symbol == NoSymbol {
			break
		}
		frontier = append(frontier, n.updateBoth(st.Symbol, n.InputPos+1, n.MutatorState, st.Target, st.Weight))
		next++
	}
	return frontier
}

// mutatorEpsilons expands epsilon transitions out of n.MutatorState,
// translating non-deletion outputs through the alphabet translator and
// matching them against the lexicon. Grounded on Speller::mutator_epsilons.
func mutatorEpsilons(mut, lex *Transducer, translator []Symbol, n TreeNode, frontier []TreeNode) []TreeNode {
	if !mut.hasTransitions(n.MutatorState+1, 0) {
		return frontier
	}
	nextM := mut.next(n.MutatorState, 0)
	for {
		mst := mut.takeEpsilons(nextM)
		if mst.Symbol == NoSymbol {
			break
		}
		if mst.Symbol == 0 {
			frontier = append(frontier, n.updateMutator(mst.Symbol, mst.Target, mst.Weight))
		} else {
			translated := translator[mst.Symbol]
			if lex.hasTransitions(n.LexiconState+1, translated) {
				nextL := lex.next(n.LexiconState, translated)
				for {
					lst := lex.takeNonEpsilons(nextL, translated)
					if lst.Symbol == NoSymbol {
						break
					}
					frontier = append(frontier, n.updateStates(lst.Symbol, mst.Target, lst.Target, mst.Weight+lst.Weight))
					nextL++
				}
			}
		}
		nextM++
	}
	return frontier
}

// consumeInput advances the mutator on the next input symbol, translating
// non-deletion outputs and matching them against the lexicon. Grounded on
// Speller::consume_input.
func consumeInput(mut, lex *Transducer, translator []Symbol, input InputString, n TreeNode, frontier []TreeNode) []TreeNode {
	if n.InputPos >= len(input) {
		return frontier
	}
	symbol := input[n.InputPos]
	if !mut.hasTransitions(n.MutatorState+1, symbol) {
		return frontier
	}
	nextM := mut.next(n.MutatorState, symbol)
	for {
		mst := mut.takeNonEpsilons(nextM, symbol)
		if mst.Symbol == NoSymbol {
			break
		}
		if mst.Symbol == 0 {
			frontier = append(frontier, n.updateBoth(0, n.InputPos+1, mst.Target, n.LexiconState, mst.Weight))
		} else {
			translated := translator[mst.Symbol]
			if lex.hasTransitions(n.LexiconState+1, translated) {
				nextL := lex.next(n.LexiconState, translated)
				for {
					lst := lex.takeNonEpsilons(nextL, translated)
					if lst.Symbol == NoSymbol {
						break
					}
					frontier = append(frontier, n.updateBoth(lst.Symbol, n.InputPos+1, mst.Target, lst.Target, mst.Weight+lst.Weight))
					nextL++
				}
			}
		}
		nextM++
	}
	return frontier
}

// runCheck runs an exhaustive (unpruned) search using only the lexicon.
func runCheck(lex *Transducer, input InputString) bool {
	frontier := []TreeNode{startNode(lex.Alphabet.FlagStateSize)}
	for len(frontier) > 0 {
		n := frontier[len(frontier)-1]
		frontier = frontier[:len(frontier)-1]

		if n.InputPos == len(input) && lex.isFinal(n.LexiconState) {
			return true
		}
		frontier = lexiconEpsilons(lex, n, frontier)
		frontier = lexiconConsume(lex, input, n, frontier)
	}
	return false
}

// runAnalyse runs a pruned two-tape lookup on a single transducer, used
// for analyse().
func runAnalyse(lex *Transducer, input InputString, opts Options) []Result {
	queue := NewResultQueue()
	p := newPruner(opts)
	frontier := []TreeNode{startNode(lex.Alphabet.FlagStateSize)}
	for len(frontier) > 0 {
		if p.expired() {
			break
		}
		n := frontier[len(frontier)-1]
		frontier = frontier[:len(frontier)-1]
		if p.reject(n.Weight) {
			continue
		}

		if n.InputPos == len(input) && lex.isFinal(n.LexiconState) {
			w := n.Weight + lex.finalWeight(n.LexiconState)
			queue.Add(lex.Stringify(n.Output), w)
			p.noteFinal(w)
		}
		frontier = lexiconEpsilons(lex, n, frontier)
		frontier = lexiconConsume(lex, input, n, frontier)
	}
	return p.filter(queue.Results(opts.Nbest))
}

// runCorrect runs the full synchronous mutator x lexicon search that
// implements suggest()/correct().
func runCorrect(mut, lex *Transducer, translator []Symbol, input InputString, opts Options) []Result {
	queue := NewResultQueue()
	p := newPruner(opts)
	frontier := []TreeNode{startNode(lex.Alphabet.FlagStateSize)}
	for len(frontier) > 0 {
		if p.expired() {
			break
		}
		n := frontier[len(frontier)-1]
		frontier = frontier[:len(frontier)-1]
		if p.reject(n.Weight) {
			continue
		}

		if n.InputPos == len(input) && lex.isFinal(n.LexiconState) && mut.isFinal(n.MutatorState) {
			w := n.Weight + lex.finalWeight(n.LexiconState) + mut.finalWeight(n.MutatorState)
			queue.Add(lex.Stringify(n.Output), w)
			p.noteFinal(w)
		}
		frontier = lexiconEpsilons(lex, n, frontier)
		frontier = mutatorEpsilons(mut, lex, translator, n, frontier)
		frontier = consumeInput(mut, lex, translator, input, n, frontier)
	}
	return p.filter(queue.Results(opts.Nbest))
}
