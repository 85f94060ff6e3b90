// Package tokenizer normalizes free-form text and ticker symbols into the
// token sequences the matching engine operates on. It provides three
// configurations: a symbol parser (used for ticker-symbol columns and the
// literal-mention pass over a query), a document parser (used for company
// names and the body of a query), and a verbatim parser (whitespace split
// only, used where callers need unmodified words).
package tokenizer

import "strings"

// Token is a string produced by a Tokenizer: uppercased and stripped of
// punctuation under the symbol and document configurations, left as the
// raw whitespace-separated word under the verbatim one.
type Token = string

// TokenVector is a token re-expressed as its sequence of Unicode code
// points, a fixed-width form that needs no UTF-8 boundary bookkeeping. The
// registry itself keys on the Token string, not on this form.
type TokenVector []rune

// ToTokenVector converts a token into its code-point vector.
func ToTokenVector(tok Token) TokenVector {
	return TokenVector([]rune(tok))
}

// FromTokenVector converts a code-point vector back into a token string.
func FromTokenVector(v TokenVector) Token {
	return string(v)
}

// ToTokenVectors converts a slice of tokens into their code-point vectors.
func ToTokenVectors(toks []Token) []TokenVector {
	out := make([]TokenVector, len(toks))
	for i, tok := range toks {
		out[i] = ToTokenVector(tok)
	}
	return out
}

// FromTokenVectors converts code-point vectors back into token strings.
func FromTokenVectors(vs []TokenVector) []Token {
	out := make([]Token, len(vs))
	for i, v := range vs {
		out[i] = FromTokenVector(v)
	}
	return out
}

// Config describes one tokenizer configuration. Use the SymbolTokenizer,
// DocumentTokenizer, or VerbatimTokenizer constructors rather than building
// a Config directly.
type Config struct {
	verbatim bool

	// requireMinUppercaseRatio gates on minUppercaseRatio when true.
	requireMinUppercaseRatio bool
	minUppercaseRatio        float64

	// requireCapsOrNumeric drops tokens with no uppercase letter that
	// aren't purely numeric — this is what keeps a common noun like
	// "apple" from matching the company "Apple" without capitalization.
	requireCapsOrNumeric bool

	filterStopWords bool
}

// Tokenizer turns raw text into a sequence of normalized Tokens under one
// fixed Config. A Tokenizer is stateless and safe for concurrent use.
type Tokenizer struct {
	cfg Config
}

// SymbolTokenizer returns the configuration used for ticker-symbol columns
// in the corpus and the literal-mention pass over a query. It requires a
// minimum uppercase ratio of 0.9 and is not stop-word filtered.
func SymbolTokenizer() *Tokenizer {
	return &Tokenizer{cfg: Config{
		requireMinUppercaseRatio: true,
		minUppercaseRatio:        0.9,
		requireCapsOrNumeric:     true,
	}}
}

// DocumentTokenizer returns the configuration used for company names and
// the body of a query. It applies stop-word filtering and drops tokens
// that never show a capital letter and aren't purely numeric.
func DocumentTokenizer() *Tokenizer {
	return &Tokenizer{cfg: Config{
		requireCapsOrNumeric: true,
		filterStopWords:      true,
	}}
}

// VerbatimTokenizer returns a whitespace-split-only configuration, used
// where callers need unmodified words.
func VerbatimTokenizer() *Tokenizer {
	return &Tokenizer{cfg: Config{verbatim: true}}
}

var normalizer = strings.NewReplacer(
	"-\n", "",
	"\n", " ",
	"\r", " ",
	"--", " ",
	",", " ",
)

// Tokenize splits text into normalized tokens under the receiver's
// configuration. Identical inputs always yield identical outputs; the two
// non-verbatim configurations never cross-contaminate a shared input.
func (t *Tokenizer) Tokenize(text string) []Token {
	if t.cfg.verbatim {
		return strings.Fields(text)
	}

	var tokens []Token
	for _, word := range strings.Fields(normalizer.Replace(text)) {
		stripped := filterAlnum(stripPossessive(word))
		if !t.passesCapsFilter(stripped) {
			continue
		}

		for _, part := range hyphenSplit(stripped) {
			upper := strings.ToUpper(filterAlnum(part))
			if upper == "" {
				continue
			}
			if t.cfg.filterStopWords && isStopWord(upper) {
				continue
			}
			tokens = append(tokens, upper)
		}
	}
	return tokens
}

// TokenizeToTokenVectors tokenizes text and converts each resulting token
// into its code-point vector.
func (t *Tokenizer) TokenizeToTokenVectors(text string) []TokenVector {
	return ToTokenVectors(t.Tokenize(text))
}

func (t *Tokenizer) passesCapsFilter(word string) bool {
	if word == "" {
		return false
	}
	if t.cfg.requireMinUppercaseRatio && uppercaseRatio(word) < t.cfg.minUppercaseRatio {
		return false
	}
	if !t.cfg.requireCapsOrNumeric {
		return true
	}
	return hasUppercaseLetter(word) || isAllNumeric(word)
}

func stripPossessive(word string) string {
	word = strings.ReplaceAll(word, "'s", "")
	word = strings.ReplaceAll(word, "s'", "")
	return word
}

func filterAlnum(word string) string {
	var b strings.Builder
	b.Grow(len(word))
	for _, r := range word {
		if isAlnumRune(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// hyphenSplit splits hyphenated compounds into parts, but only when doing
// so yields more than one non-empty part — otherwise the whole word is
// kept. By the time a word reaches here, filterAlnum has already stripped
// any hyphens, so in practice this always returns a single part; the split
// is kept so a caller supplying pre-hyphenated tokens still behaves as the
// reference tokenizer's pipeline documents.
func hyphenSplit(word string) []string {
	raw := strings.Split(word, "-")
	var parts []string
	for _, p := range raw {
		if p == "" {
			continue
		}
		parts = append(parts, filterAlnum(p))
	}
	if len(parts) > 1 {
		return parts
	}
	return []string{strings.ReplaceAll(word, "-", "")}
}

func uppercaseRatio(word string) float64 {
	total := 0
	upper := 0
	for _, r := range word {
		total++
		if isUpperRune(r) {
			upper++
		}
	}
	if total == 0 {
		return 0
	}
	return float64(upper) / float64(total)
}

func hasUppercaseLetter(word string) bool {
	for _, r := range word {
		if isUpperRune(r) {
			return true
		}
	}
	return false
}

func isAllNumeric(word string) bool {
	if word == "" {
		return false
	}
	for _, r := range word {
		if !isDigitRune(r) {
			return false
		}
	}
	return true
}
