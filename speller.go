package ospell

import (
	"github.com/golang/glog"
	"github.com/kho/easy"
)

// Speller is the façade over a mutator (error model) and lexicon
// (acceptor), the alphabet translator bridging them, and per-instance
// tuning. Not safe for concurrent use; construct one Speller per
// goroutine over shared, immutable *Transducer values (spec section 5).
type Speller struct {
	Mutator    *Transducer // nil for lexicon-only use (analyse-only speller)
	Lexicon    *Transducer
	translator []Symbol // mutator symbol -> lexicon symbol, NoSymbol if none

	SuggestionsMax int
	MaxWeight      Weight
	Beam           Weight
	TimeCutoffS    float64
}

// NewSpeller builds a Speller over an already-loaded error model and
// lexicon. mutator may be nil, in which case Suggest/SuggestAnalyses are
// unavailable and only Check/Analyse work.
func NewSpeller(mutator, lexicon *Transducer) *Speller {
	s := &Speller{
		Mutator:   mutator,
		Lexicon:   lexicon,
		MaxWeight: -1,
		Beam:      -1,
	}
	if mutator != nil {
		s.translator = buildAlphabetTranslator(mutator, lexicon)
	}
	return s
}

// LoadLegacyFiles opens two raw OL files directly (the non-ZHFST path) and
// builds a Speller over them. errmodelPath is the mutator, lexiconPath is
// the acceptor -- this order is deliberate (see DESIGN.md open question 3).
// Both are opened through easy.Open so a gzip-compressed errmodel or
// lexicon (a common way these files are distributed) is transparently
// decompressed, the same way kho-fslm opens its model files.
func LoadLegacyFiles(errmodelPath, lexiconPath string) (*Speller, error) {
	errmodelFile, err := easy.Open(errmodelPath)
	if err != nil {
		return nil, err
	}
	defer errmodelFile.Close()
	mutator, err := LoadTransducer(errmodelFile)
	if err != nil {
		return nil, err
	}

	lexiconFile, err := easy.Open(lexiconPath)
	if err != nil {
		return nil, err
	}
	defer lexiconFile.Close()
	lexicon, err := LoadTransducer(lexiconFile)
	if err != nil {
		return nil, err
	}

	return NewSpeller(mutator, lexicon), nil
}

// buildAlphabetTranslator implements spec invariant 6: translator[i] maps
// mutator symbol i to the lexicon's symbol for the same UTF-8 string; it
// is NoSymbol for flags, for the mutator's "other" symbol, and for any
// symbol absent from the lexicon (a non-fatal, logged condition).
func buildAlphabetTranslator(mutator, lexicon *Transducer) []Symbol {
	out := make([]Symbol, len(mutator.Alphabet.KeyTable))
	for i := range out {
		sym := Symbol(i)
		switch {
		case sym == 0:
			out[i] = 0
		case mutator.Alphabet.IsFlag(sym), sym == mutator.Alphabet.OtherSymbol:
			out[i] = NoSymbol
		default:
			s := mutator.Alphabet.KeyTable[i]
			if lexSym, ok := lexicon.Alphabet.StringToSymbol[s]; ok {
				out[i] = lexSym
			} else {
				glog.Warningf("ospell: mutator symbol %q has no counterpart in lexicon alphabet", s)
				out[i] = NoSymbol
			}
		}
	}
	return out
}

func (s *Speller) options() Options {
	return Options{
		Nbest:       s.SuggestionsMax,
		MaxWeight:   s.MaxWeight,
		Beam:        s.Beam,
		TimeCutoffS: s.TimeCutoffS,
	}
}

// Check tokenizes word against the lexicon's own encoder (tokenization
// failure counts as "not accepted") and runs an exhaustive check search.
func (s *Speller) Check(word string) bool {
	input, ok := tokenize(s.Lexicon.Encoder, word, NoSymbol)
	if !ok {
		return false
	}
	return runCheck(s.Lexicon, input)
}

// Suggest tokenizes word against the mutator's encoder (falling back to its
// "other" symbol) and runs the pruned correct search.
func (s *Speller) Suggest(word string) []Result {
	if s.Mutator == nil {
		return nil
	}
	input, ok := tokenize(s.Mutator.Encoder, word, s.Mutator.Alphabet.OtherSymbol)
	if !ok {
		return nil
	}
	return runCorrect(s.Mutator, s.Lexicon, s.translator, input, s.options())
}

// Analyse runs a two-tape lookup on the lexicon, or on the mutator when
// useSugger is true and a mutator is present; the chosen transducer's own
// encoder and "other" symbol are used for tokenization.
func (s *Speller) Analyse(word string, useSugger bool) []Result {
	t := s.Lexicon
	if useSugger && s.Mutator != nil {
		t = s.Mutator
	}
	input, ok := tokenize(t.Encoder, word, t.Alphabet.OtherSymbol)
	if !ok {
		return nil
	}
	return runAnalyse(t, input, s.options())
}

// AnalysisCorrection pairs one suggested correction with its analyses.
type AnalysisCorrection struct {
	Correction Result
	Analyses   []Result
}

// SuggestAnalyses computes the cartesian product of Suggest(word) and
// Analyse(correction, true) for each correction, per spec section 4.7.
func (s *Speller) SuggestAnalyses(word string) []AnalysisCorrection {
	corrections := s.Suggest(word)
	out := make([]AnalysisCorrection, 0, len(corrections))
	for _, c := range corrections {
		out = append(out, AnalysisCorrection{
			Correction: c,
			Analyses:   s.Analyse(c.Output, true),
		})
	}
	return out
}
