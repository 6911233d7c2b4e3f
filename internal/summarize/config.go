package summarize

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"fidel-summary/internal/script"
)

// SimpleParams tunes the Simple strategy: plain frequency scoring with a
// lead-sentence bonus.
type SimpleParams struct {
	// ShortCircuit is the sentence count at or below which the strategy
	// returns the cleaned text unmodified.
	ShortCircuit int `yaml:"short_circuit"`

	// Fraction of sentences to select, rounded up.
	Fraction float64 `yaml:"fraction"`

	// MinSentences is the selection floor once the short-circuit threshold
	// is exceeded.
	MinSentences int `yaml:"min_sentences"`

	// LeadBonus is added to the first sentence's normalized score.
	LeadBonus float64 `yaml:"lead_bonus"`
}

// AdvancedParams tunes the Advanced strategy: frequency scoring plus
// position, length, keyword and numeric-content bonuses, all normalized by
// word count.
type AdvancedParams struct {
	ShortCircuit int     `yaml:"short_circuit"`
	Fraction     float64 `yaml:"fraction"`
	MinSentences int     `yaml:"min_sentences"`

	FirstBonus float64 `yaml:"first_bonus"`
	LastBonus  float64 `yaml:"last_bonus"`
	EarlyBonus float64 `yaml:"early_bonus"` // applied to the first three sentences

	IdealLengthBonus float64 `yaml:"ideal_length_bonus"` // 8-30 words
	OKLengthBonus    float64 `yaml:"ok_length_bonus"`    // 5-40 words

	KeywordBonus float64 `yaml:"keyword_bonus"` // per matched domain keyword
	NumericBonus float64 `yaml:"numeric_bonus"` // sentence contains a digit

	// Keywords is the domain keyword list the keyword bonus matches against.
	Keywords []string `yaml:"keywords"`
}

// TextRankParams tunes the TextRank strategy: pure graph ranking.
type TextRankParams struct {
	ShortCircuit int     `yaml:"short_circuit"`
	Fraction     float64 `yaml:"fraction"`
	MinSentences int     `yaml:"min_sentences"`
	Damping      float64 `yaml:"damping"`
	Iterations   int     `yaml:"iterations"`
}

// HybridParams tunes the Hybrid strategy: a weighted blend of graph rank and
// lexical frequency with small position bonuses.
type HybridParams struct {
	ShortCircuit int     `yaml:"short_circuit"`
	Fraction     float64 `yaml:"fraction"`
	MinSentences int     `yaml:"min_sentences"`
	Damping      float64 `yaml:"damping"`
	Iterations   int     `yaml:"iterations"`
	RankWeight   float64 `yaml:"rank_weight"`
	FreqWeight   float64 `yaml:"freq_weight"`
	FirstBonus   float64 `yaml:"first_bonus"`
	LastBonus    float64 `yaml:"last_bonus"`
	EarlyBonus   float64 `yaml:"early_bonus"`
}

// Config carries every tunable of the summarization core. All algorithm
// constants live here rather than inline in the strategies, so they can be
// tuned and tested independently. DefaultConfig returns the production
// values; identical config plus identical input always produces identical
// output.
type Config struct {
	Script   script.Script  `yaml:"-"`
	Simple   SimpleParams   `yaml:"simple"`
	Advanced AdvancedParams `yaml:"advanced"`
	TextRank TextRankParams `yaml:"textrank"`
	Hybrid   HybridParams   `yaml:"hybrid"`
}

// DefaultKeywords is the default Amharic news-domain keyword list used by the
// Advanced strategy's keyword bonus.
func DefaultKeywords() []string {
	return []string{
		"መንግሥት", // government
		"ኢትዮጵያ", // Ethiopia
		"ኢኮኖሚ",  // economy
		"ሚኒስትር", // minister
		"ክልል",   // region
		"ልማት",   // development
		"ምርጫ",   // election
		"ስምምነት", // agreement
		"ብር",    // birr
		"በመቶ",   // percent
	}
}

// DefaultConfig returns the standard strategy parameters for the Ethiopic
// target script.
func DefaultConfig() Config {
	return Config{
		Script: script.Ethiopic(),
		Simple: SimpleParams{
			ShortCircuit: 2,
			Fraction:     0.25,
			MinSentences: 2,
			LeadBonus:    3,
		},
		Advanced: AdvancedParams{
			ShortCircuit:     3,
			Fraction:         0.35,
			MinSentences:     3,
			FirstBonus:       8,
			LastBonus:        5,
			EarlyBonus:       3,
			IdealLengthBonus: 5,
			OKLengthBonus:    2,
			KeywordBonus:     4,
			NumericBonus:     2,
			Keywords:         DefaultKeywords(),
		},
		TextRank: TextRankParams{
			ShortCircuit: 3,
			Fraction:     0.45,
			MinSentences: 3,
			Damping:      0.85,
			Iterations:   50,
		},
		Hybrid: HybridParams{
			ShortCircuit: 3,
			Fraction:     0.40,
			MinSentences: 3,
			Damping:      0.85,
			Iterations:   30,
			RankWeight:   0.6,
			FreqWeight:   0.4,
			FirstBonus:   0.3,
			LastBonus:    0.15,
			EarlyBonus:   0.1,
		},
	}
}

// LoadConfigFile overlays YAML overrides from path onto the defaults.
// Fields absent from the file keep their default values. Used for deployment
// tuning of the keyword list and strategy parameters.
func LoadConfigFile(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read summarize config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse summarize config: %w", err)
	}
	return cfg, nil
}
