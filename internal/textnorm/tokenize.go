// Package textnorm normalizes free text into a canonical stemmed token stream.
//
// The same normalization is applied to resume text, job-description text
// and the matching vocabularies, so every comparison in the matcher
// happens in one shared token space.
package textnorm

import (
	"regexp"
	"strings"

	"github.com/kljensen/snowball/english"
)

// Stemmer reduces a word to its root form (e.g. "managing" -> "manag").
type Stemmer interface {
	Stem(word string) string
}

// SnowballStemmer stems English words with the Porter2 (Snowball) algorithm.
type SnowballStemmer struct{}

// Stem returns the Porter2 stem of word.
func (SnowballStemmer) Stem(word string) string {
	return english.Stem(word, false)
}

// wordPattern matches alphanumeric runs; everything else is a separator.
var wordPattern = regexp.MustCompile(`[a-z0-9]+`)

// Tokenizer turns free text into an ordered stream of stemmed, lowercase
// word tokens. It is pure and total: empty input yields an empty stream.
type Tokenizer struct {
	stemmer Stemmer
}

// NewTokenizer creates a Tokenizer. A nil stemmer selects the Snowball default.
func NewTokenizer(stemmer Stemmer) *Tokenizer {
	if stemmer == nil {
		stemmer = SnowballStemmer{}
	}
	return &Tokenizer{stemmer: stemmer}
}

// Tokenize lowercases text, splits it into alphanumeric runs and stems
// each token.
func (t *Tokenizer) Tokenize(text string) []string {
	words := wordPattern.FindAllString(strings.ToLower(text), -1)
	tokens := make([]string, 0, len(words))
	for _, word := range words {
		tokens = append(tokens, t.stemmer.Stem(word))
	}
	return tokens
}

// NormalizeTerm normalizes a single- or multi-word term into the token
// space: lowercase, stemmed, space-joined ("Cloud Computing" -> "cloud comput").
func (t *Tokenizer) NormalizeTerm(term string) string {
	return strings.Join(t.Tokenize(term), " ")
}
