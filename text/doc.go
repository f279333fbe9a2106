// Package text provides script-level helpers for extracted text.
//
// # Direction
//
// [DetectDirection] reports the dominant writing direction of a string by
// counting strong left-to-right and right-to-left characters. Digits,
// punctuation, whitespace and symbols are neutral:
//
//	text.DetectDirection("שלום, world") // RTL
//
// A [Counter] does the same over many strings, as when deciding the
// direction of a whole book from its paragraphs.
package text
