package summarize

// Variant identifies a summarization strategy. Matching is case-sensitive.
type Variant string

const (
	VariantSimple   Variant = "simple"
	VariantAdvanced Variant = "advanced"
	VariantTextRank Variant = "textrank"
	VariantHybrid   Variant = "hybrid"
)

// Variants lists the recognized variant identifiers.
func Variants() []Variant {
	return []Variant{VariantSimple, VariantAdvanced, VariantTextRank, VariantHybrid}
}

// ParseVariant maps a free-form identifier to a Variant. Unrecognized values
// (including the empty string) resolve to VariantAdvanced with ok=false so
// the caller can emit a diagnostic; the fallback itself is deliberate
// behavior and never an error.
func ParseVariant(s string) (v Variant, ok bool) {
	switch Variant(s) {
	case VariantSimple, VariantAdvanced, VariantTextRank, VariantHybrid:
		return Variant(s), true
	default:
		return VariantAdvanced, false
	}
}

// Summarize dispatches text to the strategy named by variant. The returned
// Variant is the strategy actually used, which differs from the request only
// when the fallback applied.
func (e *Engine) Summarize(text string, variant Variant) (summary string, used Variant, err error) {
	used, _ = ParseVariant(string(variant))
	switch used {
	case VariantSimple:
		summary, err = e.Simple(text)
	case VariantAdvanced:
		summary, err = e.Advanced(text)
	case VariantTextRank:
		summary, err = e.TextRank(text)
	case VariantHybrid:
		summary, err = e.Hybrid(text)
	}
	return summary, used, err
}
