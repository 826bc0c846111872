package ospell

import "testing"

func simpleAlphabetForTokenizer() *Alphabet {
	a := newTestAlphabet([]string{"c", "a", "t", "sch"}, 1)
	a.setOther(Symbol(len(a.KeyTable) - 1))
	return a
}

func TestTokenizeLongestMatch(t *testing.T) {
	a := simpleAlphabetForTokenizer()
	enc := newEncoder(a, len(a.KeyTable))
	out, ok := tokenize(enc, "cat", a.OtherSymbol)
	if !ok {
		t.Fatalf("expected successful tokenization")
	}
	want := InputString{1, 2, 3} // c, a, t
	if len(out) != len(want) {
		t.Fatalf("tokenize(%q) = %v; want %v", "cat", out, want)
	}
	for i := range want {
		if out[i] != want[i] {
			t.Fatalf("tokenize(%q) = %v; want %v", "cat", out, want)
		}
	}
}

func TestTokenizeMultibyteLongestMatch(t *testing.T) {
	a := simpleAlphabetForTokenizer()
	enc := newEncoder(a, len(a.KeyTable))
	out, ok := tokenize(enc, "sch", a.OtherSymbol)
	if !ok || len(out) != 1 || out[0] != 4 {
		t.Fatalf("tokenize(%q) = %v, %v; want single symbol 4", "sch", out, ok)
	}
}

func TestTokenizeOtherFallback(t *testing.T) {
	a := simpleAlphabetForTokenizer()
	enc := newEncoder(a, len(a.KeyTable))
	out, ok := tokenize(enc, "café", a.OtherSymbol)
	if !ok {
		t.Fatalf("expected tokenization with fallback to succeed")
	}
	if out[len(out)-1] != a.OtherSymbol {
		t.Fatalf("expected the unknown code point to map to the other symbol; got %v", out)
	}
}

func TestTokenizeFailsWithoutOtherSymbol(t *testing.T) {
	a := newTestAlphabet([]string{"c", "a", "t"}, 0)
	enc := newEncoder(a, len(a.KeyTable))
	if _, ok := tokenize(enc, "café", NoSymbol); ok {
		t.Fatalf("expected tokenization to fail when no other symbol is configured")
	}
}

func TestTokenizeEmptyInput(t *testing.T) {
	a := simpleAlphabetForTokenizer()
	enc := newEncoder(a, len(a.KeyTable))
	out, ok := tokenize(enc, "", a.OtherSymbol)
	if !ok || len(out) != 0 {
		t.Fatalf("tokenize(\"\") = %v, %v; want empty, true", out, ok)
	}
}
