package analyzer

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestWordTokenizer_Tokenize(t *testing.T) {
	tok := NewWordTokenizer()

	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty", "", nil},
		{"whitespace only", " \n\t ", nil},
		{"plain words", "hello world", []string{"hello", "world"}},
		{"final period", "It works.", []string{"It", "works", "."}},
		{"brackets", "processing (NLP) is", []string{"processing", "(", "NLP", ")", "is"}},
		{"commas", "understand, interpret, and generate", []string{"understand", ",", "interpret", ",", "and", "generate"}},
		{"contraction", "don't stop", []string{"do", "n't", "stop"}},
		{"possessive", "John's book", []string{"John", "'s", "book"}},
		{"plural possessive", "the dogs' toys", []string{"the", "dogs", "'", "toys"}},
		{"quoted final period", `He said "hi."`, []string{"He", "said", `"`, "hi", ".", `"`}},
		{"inner period kept", "see etc. and more.", []string{"see", "etc.", "and", "more", "."}},
		{"ellipsis", "Wait... what", []string{"Wait", "...", "what"}},
		{"trailing ellipsis", "and so on...", []string{"and", "so", "on", "..."}},
		{"numbers", "1,000 people: 10:30", []string{"1,000", "people", ":", "10:30"}},
		{"hyphen kept", "well-known fact", []string{"well-known", "fact"}},
		{"abbreviation at end", "in the U.S.", []string{"in", "the", "U.S", "."}},
		{"question", "Why?", []string{"Why", "?"}},
		{"cannot", "I cannot go", []string{"I", "can", "not", "go"}},
		{"cannot keeps case", "Cannot stop.", []string{"Can", "not", "stop", "."}},
		{"gonna", "gonna win", []string{"gon", "na", "win"}},
		{"gotta wanna", "gotta wanna", []string{"got", "ta", "wan", "na"}},
		{"gimme lemme", "gimme lemme", []string{"gim", "me", "lem", "me"}},
		{"more'n", "more'n enough", []string{"more", "'n", "enough"}},
		{"d'ye", "d'ye see", []string{"d", "'ye", "see"}},
		{"'tis", "'Tis true", []string{"'T", "is", "true"}},
		{"'twas", "'twas night.", []string{"'t", "was", "night", "."}},
		{"contraction before clitic", "cannot's", []string{"can", "not", "'s"}},
		{"contraction before final period", "I wanna.", []string{"I", "wan", "na", "."}},
		{"'tis before final period", "so 'tis.", []string{"so", "'t", "is", "."}},
		{"contraction inside word kept", "gonnabe cannots", []string{"gonnabe", "cannots"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tok.Tokenize(tt.input)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Tokenize(%q) mismatch (-want +got):\n%s", tt.input, diff)
			}
		})
	}
}

func TestWordTokenizer_AlphaWords(t *testing.T) {
	tok := NewWordTokenizer()

	tests := []struct {
		input string
		want  []string
	}{
		{"", nil},
		{"Natural language processing (NLP).", []string{"natural", "language", "processing", "nlp"}},
		{"don't", []string{"don", "t"}},
		{"well-known 42 facts", []string{"well", "known", "facts"}},
		{"café", []string{"caf"}},
	}

	for _, tt := range tests {
		got := tok.AlphaWords(tt.input)
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("AlphaWords(%q) mismatch (-want +got):\n%s", tt.input, diff)
		}
	}
}

func TestWordTokenizer_PassesDisagreeOnContractions(t *testing.T) {
	tok := NewWordTokenizer()

	alpha := tok.AlphaWords("Don't")
	raw := tok.Tokenize("don't")

	if cmp.Equal(alpha, raw) {
		t.Fatalf("expected the stripped and raw passes to differ, both gave %v", alpha)
	}
	if raw[0] != "do" {
		t.Errorf("expected raw pass to start with %q, got %v", "do", raw)
	}
	if alpha[0] != "don" {
		t.Errorf("expected stripped pass to start with %q, got %v", "don", alpha)
	}
}
