package summarize

import (
	"errors"
	"math"
	"sort"
	"strings"
	"unicode"
)

// ErrNoContent is returned when the input text contains nothing to summarize:
// it is empty or whitespace-only after cleaning. Strategies never fail for
// any other reason; all numeric edge cases inside them resolve to
// zero-contribution semantics.
var ErrNoContent = errors.New("no extractable content in text")

// Engine evaluates the four summarization strategies. It is stateless per
// invocation and safe for concurrent use; all tunables come from the Config
// captured at construction.
type Engine struct {
	cfg Config
	seg *Segmenter
	lex LexicalModel
}

// NewEngine creates an engine with the given configuration.
func NewEngine(cfg Config) *Engine {
	return &Engine{
		cfg: cfg,
		seg: NewSegmenter(cfg.Script),
		lex: NewLexicalModel(cfg.Script),
	}
}

// Simple summarizes by pure token frequency. Inputs of at most
// ShortCircuit sentences are returned as cleaned text.
func (e *Engine) Simple(text string) (string, error) {
	p := e.cfg.Simple
	sentences, err := e.segment(text)
	if err != nil {
		return "", err
	}
	if len(sentences) <= p.ShortCircuit {
		return e.seg.Clean(text), nil
	}

	table := e.lex.BuildFrequency(sentences)
	scores := make([]float64, len(sentences))
	for i, s := range sentences {
		score := e.lex.ScoreSentence(s, table)
		if s.Index == 0 {
			score += p.LeadBonus
		}
		scores[i] = score
	}
	return selectTop(sentences, scores, p.Fraction, p.MinSentences), nil
}

// Advanced summarizes by frequency plus position, length, keyword and
// numeric-content bonuses, all normalized by the sentence's raw word count.
// Inputs of at most ShortCircuit sentences are returned as cleaned text.
func (e *Engine) Advanced(text string) (string, error) {
	p := e.cfg.Advanced
	sentences, err := e.segment(text)
	if err != nil {
		return "", err
	}
	if len(sentences) <= p.ShortCircuit {
		return e.seg.Clean(text), nil
	}

	table := e.lex.BuildFrequency(sentences)
	last := len(sentences) - 1
	scores := make([]float64, len(sentences))
	for i, s := range sentences {
		score := e.lex.RawScore(s, table)

		switch {
		case s.Index == 0:
			score += p.FirstBonus
		case s.Index == last:
			score += p.LastBonus
		}
		if s.Index < 3 && s.Index != 0 {
			score += p.EarlyBonus
		}

		switch {
		case s.WordCount >= 8 && s.WordCount <= 30:
			score += p.IdealLengthBonus
		case s.WordCount >= 5 && s.WordCount <= 40:
			score += p.OKLengthBonus
		}

		for _, kw := range p.Keywords {
			if strings.Contains(s.Text, kw) {
				score += p.KeywordBonus
			}
		}

		if containsDigit(s.Text) {
			score += p.NumericBonus
		}

		if s.WordCount == 0 {
			scores[i] = 0
			continue
		}
		scores[i] = score / float64(s.WordCount)
	}
	return selectTop(sentences, scores, p.Fraction, p.MinSentences), nil
}

// TextRank summarizes by graph ranking over the sentence similarity matrix.
// Inputs of at most ShortCircuit sentences are returned as the original,
// unmodified text.
func (e *Engine) TextRank(text string) (string, error) {
	p := e.cfg.TextRank
	sentences, err := e.segment(text)
	if err != nil {
		return "", err
	}
	if len(sentences) <= p.ShortCircuit {
		return text, nil
	}

	matrix := BuildSimilarity(e.lex, sentences)
	scores := Rank(matrix, p.Damping, p.Iterations)
	return selectTop(sentences, scores, p.Fraction, p.MinSentences), nil
}

// Hybrid summarizes by a weighted blend of graph rank and lexical frequency,
// with small position bonuses. Inputs of at most ShortCircuit sentences are
// returned as the original, unmodified text.
func (e *Engine) Hybrid(text string) (string, error) {
	p := e.cfg.Hybrid
	sentences, err := e.segment(text)
	if err != nil {
		return "", err
	}
	if len(sentences) <= p.ShortCircuit {
		return text, nil
	}

	matrix := BuildSimilarity(e.lex, sentences)
	rankScores := Rank(matrix, p.Damping, p.Iterations)
	table := e.lex.BuildFrequency(sentences)

	last := len(sentences) - 1
	scores := make([]float64, len(sentences))
	for i, s := range sentences {
		score := p.RankWeight*rankScores[i] + p.FreqWeight*e.lex.ScoreSentence(s, table)

		switch {
		case s.Index == 0:
			score += p.FirstBonus
		case s.Index == last:
			score += p.LastBonus
		}
		if s.Index < 3 && s.Index != 0 {
			score += p.EarlyBonus
		}
		scores[i] = score
	}
	return selectTop(sentences, scores, p.Fraction, p.MinSentences), nil
}

// segment runs the shared segmenter and maps empty input to ErrNoContent.
func (e *Engine) segment(text string) ([]Sentence, error) {
	sentences := e.seg.Segment(text)
	if len(sentences) == 0 {
		return nil, ErrNoContent
	}
	return sentences, nil
}

// selectTop takes the highest-scoring sentences, restores original order and
// joins them with single spaces. The selection size is
// max(minCount, ceil(fraction*n)), clamped to n. Ties break on ascending
// index so output is deterministic.
func selectTop(sentences []Sentence, scores []float64, fraction float64, minCount int) string {
	n := len(sentences)

	count := int(math.Ceil(fraction * float64(n)))
	if count < minCount {
		count = minCount
	}
	if count > n {
		count = n
	}

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool {
		i, j := order[a], order[b]
		if scores[i] != scores[j] {
			return scores[i] > scores[j]
		}
		return i < j
	})

	selected := append([]int(nil), order[:count]...)
	sort.Ints(selected)

	parts := make([]string, 0, count)
	for _, idx := range selected {
		parts = append(parts, sentences[idx].Text)
	}
	return strings.Join(parts, " ")
}

func containsDigit(s string) bool {
	for _, r := range s {
		if unicode.IsDigit(r) {
			return true
		}
	}
	return false
}
