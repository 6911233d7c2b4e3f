package summarize

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// scenarioA is the canonical 10-sentence input. Tokens "s1" through "s9" are
// two runes and fall to the short-token filter; only "s10" reaches the
// frequency table, which isolates the position bonuses and tie-breaking.
const scenarioA = "S1. S2. S3. S4. S5. S6. S7. S8. S9. S10."

// amharicArticle is a realistic multi-sentence Amharic input used for the
// order-preservation and bound properties.
const amharicArticle = "የኢትዮጵያ ኢኮኖሚ ባለፈው ዓመት በስድስት በመቶ አድጓል። " +
	"የእርሻ ምርት በተለይ በቡና እና በሰሊጥ ዘርፍ ከፍተኛ ጭማሪ አሳይቷል። " +
	"መንግሥት አዳዲስ የመሠረተ ልማት ፕሮጀክቶችን በክልል ከተሞች ጀምሯል። " +
	"የዋጋ ንረት ግን አሁንም ከፍተኛ ፈተና ሆኖ ቀጥሏል። " +
	"ባለሙያዎች የውጭ ምንዛሪ እጥረት መፍትሄ እንደሚያስፈልገው ይናገራሉ። " +
	"የሥራ አጥነት ቁጥር በከተሞች አካባቢ እየጨመረ መጥቷል። " +
	"አዲሱ የበጀት ዓመት ለትምህርት እና ለጤና ዘርፍ ተጨማሪ ገንዘብ መድቧል። " +
	"የኤክስፖርት ገቢ በቀጣዩ ዓመት እንደሚያድግ ይጠበቃል።"

func newTestEngine() *Engine {
	return NewEngine(DefaultConfig())
}

func TestScenarioA_SelectionCounts(t *testing.T) {
	e := newTestEngine()

	tests := []struct {
		name string
		run  func(string) (string, error)
		want string
	}{
		// ceil(10×0.25) = 3 sentences; the lead bonus pulls sentence 0,
		// sentence 10 carries the lone frequency score via "s10", and the
		// last slot goes to the lowest zero-score index.
		{"simple", e.Simple, "S1 S2 S10"},
		// ceil(10×0.35) = 4: first (+8), early (+3), last (+5) dominate.
		{"advanced", e.Advanced, "S1 S2 S3 S10"},
		// ceil(10×0.45) = 5: the zero graph ranks all equally, ties
		// resolve to the first five indices.
		{"textrank", e.TextRank, "S1 S2 S3 S4 S5"},
		// ceil(10×0.40) = 4: equal rank plus position bonuses.
		{"hybrid", e.Hybrid, "S1 S2 S3 S10"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.run(scenarioA)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestScenarioB_TwoSentences(t *testing.T) {
	e := newTestEngine()
	const input = "S1. S2."

	// Simple short-circuits at ≤2 and returns the cleaned text; the other
	// three short-circuit at ≤3. TextRank and Hybrid return the original
	// text, Simple and Advanced the cleaned text. For an already-clean
	// input all four are identical.
	for name, run := range map[string]func(string) (string, error){
		"simple":   e.Simple,
		"advanced": e.Advanced,
		"textrank": e.TextRank,
		"hybrid":   e.Hybrid,
	} {
		t.Run(name, func(t *testing.T) {
			got, err := run(input)
			require.NoError(t, err)
			require.Equal(t, input, got)
		})
	}
}

func TestShortCircuit_CleaningAsymmetry(t *testing.T) {
	e := newTestEngine()
	const messy = "  ሰላም   ዓለም ።\n ሁለተኛ  ዓረፍተ ነገር ። "
	const cleaned = "ሰላም ዓለም ። ሁለተኛ ዓረፍተ ነገር ።"

	// Frequency strategies return whitespace-normalized text on
	// short-circuit; graph strategies return the original bytes.
	got, err := e.Simple(messy)
	require.NoError(t, err)
	require.Equal(t, cleaned, got)

	got, err = e.Advanced(messy)
	require.NoError(t, err)
	require.Equal(t, cleaned, got)

	got, err = e.TextRank(messy)
	require.NoError(t, err)
	require.Equal(t, messy, got)

	got, err = e.Hybrid(messy)
	require.NoError(t, err)
	require.Equal(t, messy, got)
}

func TestScenarioC_SingleSentence(t *testing.T) {
	e := newTestEngine()
	const input = "ሰላም ዓለም።"

	for name, run := range map[string]func(string) (string, error){
		"simple":   e.Simple,
		"advanced": e.Advanced,
		"textrank": e.TextRank,
		"hybrid":   e.Hybrid,
	} {
		t.Run(name, func(t *testing.T) {
			got, err := run(input)
			require.NoError(t, err)
			require.Equal(t, input, got)
		})
	}
}

// subsequenceIndices proves out is the space-joined concatenation of an
// in-order subset of sentences and returns the indices of that subset.
// Summaries carry no terminal marks, so re-segmenting them is not possible;
// matching against the input sentences is.
func subsequenceIndices(t *testing.T, out string, sentences []Sentence) []int {
	t.Helper()

	var indices []int
	remaining := out
	for _, s := range sentences {
		if !strings.HasPrefix(remaining, s.Text) {
			continue
		}
		indices = append(indices, s.Index)
		remaining = strings.TrimPrefix(remaining, s.Text)
		remaining = strings.TrimPrefix(remaining, " ")
	}
	require.Emptyf(t, remaining,
		"summary %q is not an in-order subsequence of the input sentences", out)
	return indices
}

func TestStrategies_PreserveOriginalOrder(t *testing.T) {
	e := newTestEngine()
	seg := NewSegmenter(DefaultConfig().Script)
	inputSentences := seg.Segment(amharicArticle)

	for name, run := range map[string]func(string) (string, error){
		"simple":   e.Simple,
		"advanced": e.Advanced,
		"textrank": e.TextRank,
		"hybrid":   e.Hybrid,
	} {
		t.Run(name, func(t *testing.T) {
			out, err := run(amharicArticle)
			require.NoError(t, err)
			require.NotEmpty(t, out)

			indices := subsequenceIndices(t, out, inputSentences)
			require.LessOrEqual(t, len(indices), len(inputSentences))
			for i := 1; i < len(indices); i++ {
				require.Greater(t, indices[i], indices[i-1])
			}
		})
	}
}

func TestStrategies_SelectionBounds(t *testing.T) {
	e := newTestEngine()
	seg := NewSegmenter(DefaultConfig().Script)
	inputSentences := seg.Segment(amharicArticle) // 8 sentences

	tests := []struct {
		name string
		run  func(string) (string, error)
		want int
	}{
		{"simple ceil(8×0.25)=2", e.Simple, 2},
		{"advanced ceil(8×0.35)=3", e.Advanced, 3},
		{"textrank ceil(8×0.45)=4", e.TextRank, 4},
		{"hybrid ceil(8×0.40)=4", e.Hybrid, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := tt.run(amharicArticle)
			require.NoError(t, err)

			got := len(subsequenceIndices(t, out, inputSentences))
			require.Equal(t, tt.want, got)
		})
	}
}

func TestStrategies_EmptyInput(t *testing.T) {
	e := newTestEngine()

	for name, run := range map[string]func(string) (string, error){
		"simple":   e.Simple,
		"advanced": e.Advanced,
		"textrank": e.TextRank,
		"hybrid":   e.Hybrid,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := run("   \n\t  ")
			require.Error(t, err)
			require.True(t, errors.Is(err, ErrNoContent))
		})
	}
}

func TestAdvanced_KeywordBonusInfluencesSelection(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Advanced.Keywords = []string{"ኢኮኖሚ"}
	e := NewEngine(cfg)

	out, err := e.Advanced(amharicArticle)
	require.NoError(t, err)
	require.Truef(t, strings.Contains(out, "ኢኮኖሚ"),
		"expected keyword-bearing sentence in summary, got %q", out)
}

func TestStrategies_Deterministic(t *testing.T) {
	e := newTestEngine()

	for name, run := range map[string]func(string) (string, error){
		"simple":   e.Simple,
		"advanced": e.Advanced,
		"textrank": e.TextRank,
		"hybrid":   e.Hybrid,
	} {
		t.Run(name, func(t *testing.T) {
			first, err := run(amharicArticle)
			require.NoError(t, err)
			second, err := run(amharicArticle)
			require.NoError(t, err)
			require.Equal(t, first, second)
		})
	}
}
