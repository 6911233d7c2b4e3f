package summarize

import (
	"regexp"
	"strings"

	"fidel-summary/internal/script"
)

// Sentence is one segmented sentence of the input text. Index is the 0-based
// position in segmentation order and is the sole ordering key used when a
// selection is reassembled into a summary. WordCount is the raw
// whitespace-split word count of the sentence, before any token cleaning.
type Sentence struct {
	Index     int
	Text      string
	WordCount int
}

var whitespaceRun = regexp.MustCompile(`\s+`)

// Segmenter splits raw text into ordered sentences at terminal punctuation
// boundaries. Every strategy uses the same Segmenter instance so their
// sentence views of the same input are identical.
type Segmenter struct {
	script script.Script
}

// NewSegmenter creates a segmenter for the given target script.
func NewSegmenter(s script.Script) *Segmenter {
	return &Segmenter{script: s}
}

// Clean collapses all whitespace runs to single spaces and trims the result.
func (g *Segmenter) Clean(text string) string {
	return strings.TrimSpace(whitespaceRun.ReplaceAllString(text, " "))
}

// Segment splits text into sentences at runs of terminal punctuation
// (the script's sentence-final mark plus ASCII '.', '!', '?'). The text is
// whitespace-normalized first. If no boundary produces a sentence, the whole
// cleaned text is returned as a single sentence, so any non-empty input
// yields at least one sentence.
func (g *Segmenter) Segment(text string) []Sentence {
	cleaned := g.Clean(text)
	if cleaned == "" {
		return nil
	}

	var sentences []Sentence
	var current strings.Builder
	flush := func() {
		s := strings.TrimSpace(current.String())
		current.Reset()
		if s == "" {
			return
		}
		sentences = append(sentences, Sentence{
			Index:     len(sentences),
			Text:      s,
			WordCount: len(strings.Fields(s)),
		})
	}

	for _, r := range cleaned {
		if g.script.IsTerminal(r) {
			flush()
			continue
		}
		current.WriteRune(r)
	}
	flush()

	if len(sentences) == 0 {
		// Terminal-only input, e.g. "...". Fall back to the cleaned text.
		return []Sentence{{Index: 0, Text: cleaned, WordCount: len(strings.Fields(cleaned))}}
	}
	return sentences
}
