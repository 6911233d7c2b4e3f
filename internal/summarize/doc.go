// Package summarize implements extractive sentence summarization for
// script-gated text. It offers four interchangeable strategies of increasing
// sophistication: a frequency-based Simple strategy, a bonus-weighted Advanced
// strategy, a graph-ranking TextRank strategy, and a Hybrid strategy combining
// graph rank with lexical frequency.
//
// All strategies share the same segmentation, tokenization and selection
// machinery, are pure functions of their input text and configuration, and
// emit selected sentences in original order joined by single spaces. The
// package performs no I/O and holds no mutable state between invocations, so
// an Engine is safe for concurrent use.
package summarize
