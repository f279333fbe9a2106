package text

import (
	"unicode"
)

// Direction represents the writing direction of text.
type Direction int

const (
	// LTR (Left-to-Right) for Latin, Cyrillic, CJK, etc.
	LTR Direction = iota
	// RTL (Right-to-Left) for Arabic, Hebrew, etc.
	RTL
	// Neutral for numbers, punctuation, etc.
	Neutral
)

// String returns the value used by the HTML dir attribute ("ltr", "rtl"),
// or "auto" for Neutral.
func (d Direction) String() string {
	switch d {
	case LTR:
		return "ltr"
	case RTL:
		return "rtl"
	case Neutral:
		return "auto"
	default:
		return "unknown"
	}
}

// rtlScripts lists the right-to-left scripts recognised by CharDirection.
var rtlScripts = []*unicode.RangeTable{
	unicode.Arabic,
	unicode.Hebrew,
	unicode.Syriac,
	unicode.Thaana,
	unicode.Nko,
	unicode.Samaritan,
	unicode.Mandaic,
}

// CharDirection returns the inherent direction of a single character.
// Digits, punctuation, whitespace, symbols and marks are Neutral; RTL scripts
// return RTL; every other letter returns LTR.
func CharDirection(r rune) Direction {
	if unicode.IsDigit(r) || unicode.IsPunct(r) || unicode.IsSpace(r) ||
		unicode.IsSymbol(r) || unicode.IsMark(r) || unicode.IsControl(r) {
		return Neutral
	}
	if unicode.IsOneOf(rtlScripts, r) {
		return RTL
	}
	return LTR
}

// DetectDirection returns the dominant direction of s, or Neutral if s has
// no strong directional characters.
func DetectDirection(s string) Direction {
	var c Counter
	c.Add(s)
	return c.Direction()
}

// Counter accumulates strong directional characters across strings.
// The zero value is ready to use.
type Counter struct {
	ltr, rtl int
}

// Add counts the strong characters of s.
func (c *Counter) Add(s string) {
	for _, r := range s {
		switch CharDirection(r) {
		case LTR:
			c.ltr++
		case RTL:
			c.rtl++
		}
	}
}

// Direction returns the dominant direction counted so far. Ties go to LTR.
func (c *Counter) Direction() Direction {
	switch {
	case c.ltr == 0 && c.rtl == 0:
		return Neutral
	case c.rtl > c.ltr:
		return RTL
	default:
		return LTR
	}
}
