package summarize

import (
	"strings"
	"unicode/utf8"

	"fidel-summary/internal/script"
)

// minTokenRunes is the exclusive lower bound on cleaned token length; tokens
// of 2 runes or fewer carry too little signal and are excluded from frequency
// and overlap computation.
const minTokenRunes = 2

// FrequencyTable maps a cleaned token to its occurrence count across the
// whole input text. Built once per invocation and never mutated afterwards.
type FrequencyTable map[string]int

// LexicalModel tokenizes sentences and scores them against a frequency table.
// The zero value is not usable; construct with NewLexicalModel.
type LexicalModel struct {
	script script.Script
}

// NewLexicalModel creates a lexical model bound to the target script.
func NewLexicalModel(s script.Script) LexicalModel {
	return LexicalModel{script: s}
}

// Tokens splits text on whitespace, lowercases, strips every rune that is
// neither an ASCII word character nor a letter of the target script, and
// drops tokens of minTokenRunes runes or fewer.
func (m LexicalModel) Tokens(text string) []string {
	fields := strings.Fields(text)
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		tok := m.cleanToken(f)
		if utf8.RuneCountInString(tok) > minTokenRunes {
			tokens = append(tokens, tok)
		}
	}
	return tokens
}

// cleanToken lowercases w and removes every rune outside the word-character
// set of the target script.
func (m LexicalModel) cleanToken(w string) string {
	lowered := strings.ToLower(w)
	return strings.Map(func(r rune) rune {
		if m.script.IsWordRune(r) {
			return r
		}
		return -1
	}, lowered)
}

// BuildFrequency builds the token frequency table across all sentences.
// Counts accumulate over the entire input, not per sentence.
func (m LexicalModel) BuildFrequency(sentences []Sentence) FrequencyTable {
	table := make(FrequencyTable)
	for _, s := range sentences {
		for _, tok := range m.Tokens(s.Text) {
			table[tok]++
		}
	}
	return table
}

// RawScore sums the frequency counts of a sentence's tokens without length
// normalization. Used by strategies that fold their bonuses in before
// dividing by word count.
func (m LexicalModel) RawScore(s Sentence, table FrequencyTable) float64 {
	var sum float64
	for _, tok := range m.Tokens(s.Text) {
		sum += float64(table[tok])
	}
	return sum
}

// ScoreSentence is RawScore divided by the sentence's raw whitespace-split
// word count. The raw count (not the cleaned token count) is the denominator:
// it normalizes for sentence length while still rewarding frequent
// vocabulary. A degenerate sentence with zero words scores 0.
func (m LexicalModel) ScoreSentence(s Sentence, table FrequencyTable) float64 {
	if s.WordCount == 0 {
		return 0
	}
	return m.RawScore(s, table) / float64(s.WordCount)
}

// tokenSet returns the distinct cleaned tokens of a sentence.
func (m LexicalModel) tokenSet(s Sentence) map[string]struct{} {
	set := make(map[string]struct{})
	for _, tok := range m.Tokens(s.Text) {
		set[tok] = struct{}{}
	}
	return set
}
