// Package script defines the writing systems the summarizer operates on and
// the validity gate that decides whether a text belongs to a target script.
package script

import "unicode"

// Script describes a target writing system: its Unicode ranges and the
// sentence-final punctuation mark it uses in addition to the ASCII terminals.
type Script struct {
	// Name is a stable identifier, e.g. "ethiopic".
	Name string

	// Ranges is the Unicode range table covering the script's code points.
	Ranges *unicode.RangeTable

	// TerminalMark is the script's own sentence-final punctuation mark
	// (e.g. the Ethiopic full stop '።'). ASCII '.', '!' and '?' are always
	// treated as terminals in addition to this mark.
	TerminalMark rune
}

// Ethiopic is the default target script: the Ge'ez (Ethiopic) syllabary used
// by Amharic, with '።' (U+1362) as the sentence-final mark.
func Ethiopic() Script {
	return Script{
		Name:         "ethiopic",
		Ranges:       unicode.Ethiopic,
		TerminalMark: '።',
	}
}

// Contains reports whether r is a code point of the script.
func (s Script) Contains(r rune) bool {
	if s.Ranges == nil {
		return false
	}
	return unicode.Is(s.Ranges, r)
}

// IsTerminal reports whether r ends a sentence in this script.
// ASCII terminals apply to every script.
func (s Script) IsTerminal(r rune) bool {
	return r == s.TerminalMark || r == '.' || r == '!' || r == '?'
}

// IsWordRune reports whether r survives token cleaning: ASCII word characters
// plus any non-punctuation code point in the script's Unicode ranges. The
// punctuation check matters because some script blocks (Ethiopic included)
// carry their own punctuation marks inside the block.
func (s Script) IsWordRune(r rune) bool {
	if r >= '0' && r <= '9' {
		return true
	}
	if r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' {
		return true
	}
	if r == '_' {
		return true
	}
	return s.Contains(r) && !unicode.IsPunct(r)
}
