package model

import (
	"fmt"
	"strconv"
)

// ContentType is the semantic role of a content item in the reading flow.
type ContentType string

const (
	// Heading marks a structural heading; it starts a chapter.
	Heading ContentType = "heading"
	// Paragraph marks running text.
	Paragraph ContentType = "paragraph"
)

// Valid reports whether t is a known content type.
func (t ContentType) Valid() bool {
	return t == Heading || t == Paragraph
}

// UnmarshalText rejects unknown content types.
func (t *ContentType) UnmarshalText(b []byte) error {
	ct := ContentType(b)
	if !ct.Valid() {
		return fmt.Errorf("model: unknown content type %q", string(b))
	}
	*t = ct
	return nil
}

// IDPrefix prefixes every content item id.
const IDPrefix = "content-"

// ContentID formats the id of the n-th emitted item (1-based).
func ContentID(n int) string {
	return IDPrefix + strconv.Itoa(n)
}

// ContentItem is one classified, deduplicated fragment of the book.
type ContentItem struct {
	ID          string      `json:"id"`
	Type        ContentType `json:"type"`
	Content     string      `json:"content"`
	ClassName   string      `json:"className,omitempty"`
	TagName     string      `json:"tagName,omitempty"`
	InlineStyle string      `json:"styles,omitempty"`
}

// Result is the output of extracting one archive.
type Result struct {
	Title  string `json:"title"`
	Author string `json:"author"`
	Styles string `json:"styles"`
	// Direction is the dominant writing direction of the content, "ltr" or
	// "rtl"; empty when the content has no letters.
	Direction string        `json:"direction,omitempty"`
	Content   []ContentItem `json:"content"`
}

// Texts returns the content strings of items in order, the input expected
// by a translator.
func Texts(items []ContentItem) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.Content
	}
	return out
}

// HeadingCount returns the number of heading items.
func (r *Result) HeadingCount() int {
	n := 0
	for _, item := range r.Content {
		if item.Type == Heading {
			n++
		}
	}
	return n
}
