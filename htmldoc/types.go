// Package htmldoc extracts candidate text fragments, the document title and
// embedded stylesheets from one XHTML/HTML content document.
package htmldoc

import (
	"github.com/tsawler/bilingual/classify"
)

// RawFragment is one candidate element, in document order. It lives only
// until it has been classified.
type RawFragment struct {
	Tag   string
	Text  string
	Class string
	ID    string
	Style string

	// Containers lists the element's ancestors below <body>, nearest first.
	Containers []classify.Container
}

// Candidate converts the fragment to classifier input.
func (f RawFragment) Candidate() classify.Candidate {
	return classify.Candidate{
		Tag:        f.Tag,
		Class:      f.Class,
		ID:         f.ID,
		Text:       f.Text,
		Containers: f.Containers,
	}
}

// Document is the extraction result of one content document.
type Document struct {
	Name      string
	Title     string
	Styles    string
	Fragments []RawFragment

	// Err is set when the markup could not be parsed; the document then
	// contributes nothing.
	Err error
}
