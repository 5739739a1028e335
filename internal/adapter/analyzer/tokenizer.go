package analyzer

import (
	"strings"
	"unicode"
)

// splitAlways holds punctuation that is always a token of its own.
const splitAlways = "?!;@#$%&()[]{}<>\""

// clitics are split off the end of a word, Penn Treebank style.
var clitics = []string{"n't", "'s", "'re", "'ve", "'ll", "'d", "'m"}

// contractions are whole words split in two, keyed by lowercase form with
// the length of the first part.
var contractions = map[string]int{
	"cannot": 3,
	"d'ye":   1,
	"gimme":  3,
	"gonna":  3,
	"gotta":  3,
	"lemme":  3,
	"more'n": 4,
	"wanna":  3,
	"'tis":   2,
	"'twas":  2,
}

// WordTokenizer splits text into word-level tokens following the Penn Treebank
// conventions: brackets, quotes and most punctuation become separate tokens,
// clitics such as "n't" and "'s" are split off, contractions such as
// "cannot" and "gonna" become two tokens, and only the final period of the
// input is separated from its word.
type WordTokenizer struct{}

// NewWordTokenizer creates a new WordTokenizer.
func NewWordTokenizer() *WordTokenizer {
	return &WordTokenizer{}
}

// Tokenize splits text into tokens. Case is preserved.
func (t *WordTokenizer) Tokenize(text string) []string {
	var tokens []string
	for _, field := range strings.Fields(text) {
		tokens = appendFieldTokens(tokens, field)
	}
	return splitFinalPeriod(tokens)
}

// AlphaWords lowercases text, blanks every character outside a-z and
// tokenizes what is left.
func (t *WordTokenizer) AlphaWords(text string) []string {
	stripped := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z':
			return r
		case r >= 'A' && r <= 'Z':
			return unicode.ToLower(r)
		default:
			return ' '
		}
	}, text)
	return t.Tokenize(stripped)
}

// appendFieldTokens tokenizes one whitespace-delimited field.
func appendFieldTokens(tokens []string, field string) []string {
	runes := []rune(field)
	var current strings.Builder

	flush := func() {
		if current.Len() > 0 {
			tokens = appendWord(tokens, current.String())
			current.Reset()
		}
	}

	for i := 0; i < len(runes); i++ {
		r := runes[i]
		switch {
		case r == '.' && i+2 < len(runes) && runes[i+1] == '.' && runes[i+2] == '.':
			flush()
			tokens = append(tokens, "...")
			i += 2
		case strings.ContainsRune(splitAlways, r):
			flush()
			tokens = append(tokens, string(r))
		case r == ',' || r == ':':
			// 1,000 and 10:30 stay whole
			if current.Len() > 0 && i+1 < len(runes) && unicode.IsDigit(runes[i+1]) {
				current.WriteRune(r)
				continue
			}
			flush()
			tokens = append(tokens, string(r))
		default:
			current.WriteRune(r)
		}
	}
	flush()

	return tokens
}

// appendWord splits surrounding single quotes, a trailing clitic and a
// contraction off word.
func appendWord(tokens []string, word string) []string {
	// 'tis and 'twas start with a quote that belongs to the word
	if first, rest, ok := splitContraction(word); ok {
		return append(tokens, first, rest)
	}

	for len(word) > 1 && isQuote(word[0]) && !isClitic(word) {
		tokens = append(tokens, word[:1])
		word = word[1:]
	}

	var trailing []string
	for len(word) > 1 && isQuote(word[len(word)-1]) {
		trailing = append(trailing, word[len(word)-1:])
		word = word[:len(word)-1]
	}

	if stem, clitic, ok := splitClitic(word); ok {
		tokens = appendStem(tokens, stem)
		tokens = append(tokens, clitic)
	} else {
		tokens = appendStem(tokens, word)
	}

	for i := len(trailing) - 1; i >= 0; i-- {
		tokens = append(tokens, trailing[i])
	}
	return tokens
}

func appendStem(tokens []string, word string) []string {
	if first, rest, ok := splitContraction(word); ok {
		return append(tokens, first, rest)
	}
	return append(tokens, word)
}

// splitContraction splits a contraction, keeping a trailing period on the
// second part so the final period split still sees it.
func splitContraction(word string) (string, string, bool) {
	cut, ok := contractions[strings.ToLower(strings.TrimSuffix(word, "."))]
	if !ok {
		return "", "", false
	}
	return word[:cut], word[cut:], true
}

func splitClitic(word string) (string, string, bool) {
	for _, c := range clitics {
		if len(word) > len(c) && strings.EqualFold(word[len(word)-len(c):], c) {
			cut := len(word) - len(c)
			return word[:cut], word[cut:], true
		}
	}
	return "", "", false
}

func isClitic(word string) bool {
	for _, c := range clitics {
		if strings.EqualFold(word, c) {
			return true
		}
	}
	return false
}

func isQuote(b byte) bool {
	return b == '\'' || b == '`'
}

// splitFinalPeriod separates the period ending the input from the word it is
// attached to, skipping over trailing brackets and quotes. Ellipses and
// periods inside the text are left alone.
func splitFinalPeriod(tokens []string) []string {
	j := len(tokens) - 1
	for j >= 0 && isCloser(tokens[j]) {
		j--
	}
	if j < 0 {
		return tokens
	}

	tok := tokens[j]
	if len(tok) < 2 || tok[len(tok)-1] != '.' || tok[len(tok)-2] == '.' {
		return tokens
	}

	out := make([]string, 0, len(tokens)+1)
	out = append(out, tokens[:j]...)
	out = append(out, tok[:len(tok)-1], ".")
	out = append(out, tokens[j+1:]...)
	return out
}

func isCloser(tok string) bool {
	switch tok {
	case ")", "]", "}", ">", "\"", "'", "`":
		return true
	}
	return false
}
