// Package match scores lexical overlap between a candidate token stream
// and a list of target terms using four weighted tiers: exact, synonym,
// fuzzy and substring.
package match

import (
	"sort"
	"strings"

	"github.com/jonathan/ats-scorer/internal/textnorm"
	"github.com/xrash/smetrics"
)

const (
	// Tier weights. An exact match short-circuits the remaining tiers
	// for that term; synonym, fuzzy and substring credits stack, which
	// deliberately favors recall over precision.
	weightExact     = 1.0
	weightSynonym   = 0.85
	weightFuzzy     = 0.75
	weightSubstring = 0.5

	// fuzzyThreshold is the minimum normalized similarity for fuzzy credit.
	fuzzyThreshold = 0.88
)

// Similarity scores how alike two strings are, in [0, 1].
type Similarity func(a, b string) float64

// JaroWinkler is the default Similarity implementation.
func JaroWinkler(a, b string) float64 {
	return smetrics.JaroWinkler(a, b, 0.7, 4)
}

// synonymEntry is a precomputed vocabulary row in the normalized token space.
type synonymEntry struct {
	canonical string
	phrases   map[string]bool // normalized canonical + synonym phrases, for term identity
	tokens    map[string]bool // individual stemmed tokens, for candidate lookup
}

// Matcher runs the four-tier weighted matching against a fixed vocabulary.
// It is safe for concurrent use: all state is read-only after construction.
type Matcher struct {
	tokenizer  *textnorm.Tokenizer
	similarity Similarity
	entries    []synonymEntry
	softSkills []string
	industry   []string
}

// New creates a Matcher for the given vocabulary. A nil similarity
// selects Jaro-Winkler. The synonym table is normalized into the shared
// token space once, here, so per-request matching stays allocation-light.
func New(vocab *Vocabulary, tokenizer *textnorm.Tokenizer, similarity Similarity) *Matcher {
	if similarity == nil {
		similarity = JaroWinkler
	}

	canonicals := make([]string, 0, len(vocab.Synonyms))
	for canonical := range vocab.Synonyms {
		canonicals = append(canonicals, canonical)
	}
	sort.Strings(canonicals)

	entries := make([]synonymEntry, 0, len(canonicals))
	for _, canonical := range canonicals {
		entry := synonymEntry{
			canonical: tokenizer.NormalizeTerm(canonical),
			phrases:   make(map[string]bool),
			tokens:    make(map[string]bool),
		}
		entry.phrases[entry.canonical] = true
		for _, token := range tokenizer.Tokenize(canonical) {
			entry.tokens[token] = true
		}
		for _, synonym := range vocab.Synonyms[canonical] {
			entry.phrases[tokenizer.NormalizeTerm(synonym)] = true
			for _, token := range tokenizer.Tokenize(synonym) {
				entry.tokens[token] = true
			}
		}
		entries = append(entries, entry)
	}

	return &Matcher{
		tokenizer:  tokenizer,
		similarity: similarity,
		entries:    entries,
		softSkills: vocab.SoftSkills,
		industry:   vocab.IndustryTerms,
	}
}

// CountMatches returns the accumulated weighted match count of
// targetTerms against candidateTokens. A single term can earn credit from
// several tiers at once; only an exact match stops further tiers for that
// term.
func (m *Matcher) CountMatches(candidateTokens []string, targetTerms []string) float64 {
	candidateSet := make(map[string]bool, len(candidateTokens))
	for _, token := range candidateTokens {
		candidateSet[token] = true
	}

	total := 0.0
	for _, term := range targetTerms {
		stemmed := m.tokenizer.NormalizeTerm(term)
		if stemmed == "" {
			continue
		}

		if candidateSet[stemmed] {
			total += weightExact
			continue
		}

		for _, entry := range m.entries {
			if !entry.phrases[stemmed] {
				continue
			}
			if intersects(candidateSet, entry.tokens) {
				total += weightSynonym
				break
			}
		}

		for _, token := range candidateTokens {
			if m.similarity(token, stemmed) >= fuzzyThreshold {
				total += weightFuzzy
				break
			}
		}

		for _, token := range candidateTokens {
			if strings.Contains(token, stemmed) {
				total += weightSubstring
				break
			}
		}
	}

	return total
}

// MatchPercent returns the weighted match count as a percentage of the
// target list size. The result is unbounded above 100 by design; clamping
// belongs to the aggregator.
func (m *Matcher) MatchPercent(candidateTokens []string, targetTerms []string) float64 {
	if len(targetTerms) == 0 {
		return 0
	}
	return m.CountMatches(candidateTokens, targetTerms) / float64(len(targetTerms)) * 100
}

// SoftSkillsPercent scores candidateTokens against the soft-skills vocabulary.
func (m *Matcher) SoftSkillsPercent(candidateTokens []string) float64 {
	return m.MatchPercent(candidateTokens, m.softSkills)
}

// IndustryTermsPercent scores candidateTokens against the industry-terms vocabulary.
func (m *Matcher) IndustryTermsPercent(candidateTokens []string) float64 {
	return m.MatchPercent(candidateTokens, m.industry)
}

// intersects reports whether any key of want is present in have.
func intersects(have, want map[string]bool) bool {
	for token := range want {
		if have[token] {
			return true
		}
	}
	return false
}
