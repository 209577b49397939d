// Package preprocess turns raw text lines into normalized token sequences:
// symbol stripping, stop-word removal and lemmatization.
package preprocess

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// punctuation and possessive 's removed before splitting
var symbol = regexp.MustCompile(`\.|,|\(|\)|"|\?|!|'s*|&|;|:`)

// Tokenizer handles text tokenization and normalization
type Tokenizer struct {
	stopwords map[string]struct{}
	minLen    int
	lemmatize bool
	lower     cases.Caser
}

// Option configures a Tokenizer.
type Option func(*Tokenizer)

// WithMinLen drops tokens with fewer than n runes. The default is 2.
func WithMinLen(n int) Option {
	return func(t *Tokenizer) {
		t.minLen = n
	}
}

// WithLemmatize switches dictionary lemmatization on or off. It is on by
// default.
func WithLemmatize(on bool) Option {
	return func(t *Tokenizer) {
		t.lemmatize = on
	}
}

// NewTokenizer creates a new tokenizer with the given stopword list.
// A nil list selects DefaultStopwords; an empty list disables stop-word
// removal.
func NewTokenizer(stopwords []string, opts ...Option) *Tokenizer {
	if stopwords == nil {
		stopwords = DefaultStopwords
	}
	lower := cases.Lower(language.English)
	stops := make(map[string]struct{}, len(stopwords))
	for _, w := range stopwords {
		stops[lower.String(w)] = struct{}{}
	}
	t := &Tokenizer{
		stopwords: stops,
		minLen:    2,
		lemmatize: true,
		lower:     lower,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// IsStop checks if a token is a stopword
func (t *Tokenizer) IsStop(token string) bool {
	_, ok := t.stopwords[token]
	return ok
}

// Tokenize splits one line of text into normalized tokens, removing
// symbols, short tokens and stopwords, then lemmatizing what is left.
func (t *Tokenizer) Tokenize(text string) []string {
	text = norm.NFC.String(text)
	text = t.lower.String(text)
	text = symbol.ReplaceAllString(text, "")

	var tokens []string
	for _, word := range strings.Fields(text) {
		if utf8.RuneCountInString(word) < t.minLen {
			continue
		}
		if t.IsStop(word) {
			continue
		}
		if t.lemmatize {
			word = Lemmatize(word)
		}
		tokens = append(tokens, word)
	}
	return tokens
}
