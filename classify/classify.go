// Package classify decides whether a candidate markup element carries
// narrative content and, if so, whether it is a heading or running text.
//
// Classification is a pure function of the element's tag, attributes,
// enclosing containers and text; it never fails, it only includes or
// excludes.
package classify

import (
	"strings"
	"unicode/utf8"

	"github.com/tsawler/bilingual/model"
)

// Length thresholds, in runes.
const (
	// MinTextLength is the shortest text kept.
	MinTextLength = 2
	// ShortTextLimit bounds the navigation and legal keyword check.
	ShortTextLimit = 50
	// LongTextLimit bounds the copyright notice check.
	LongTextLimit = 300
)

// Container describes an ancestor of a candidate element.
type Container struct {
	Tag   string
	Class string
	ID    string
	// TopLevel is true for direct children of <body>, or of a div or main
	// wrapper that is the body's only structural child.
	TopLevel bool
}

// Candidate is the classifier input for one element.
type Candidate struct {
	Tag   string
	Class string
	ID    string
	Text  string
	// Containers lists ancestors, nearest first, excluding <body>.
	Containers []Container
}

// Reason explains a rejection.
type Reason int

const (
	ReasonNone Reason = iota
	ReasonTooShort
	ReasonChrome
	ReasonContainerChrome
	ReasonNavigation
	ReasonLegal
	ReasonCopyright
)

func (r Reason) String() string {
	switch r {
	case ReasonNone:
		return "none"
	case ReasonTooShort:
		return "too short"
	case ReasonChrome:
		return "structural chrome"
	case ReasonContainerChrome:
		return "inside structural chrome"
	case ReasonNavigation:
		return "navigation text"
	case ReasonLegal:
		return "legal text"
	case ReasonCopyright:
		return "copyright notice"
	default:
		return "unknown"
	}
}

// Decision is the outcome of classifying one candidate.
type Decision struct {
	Keep bool
	Type model.ContentType
	// Reason and Keyword explain a rejection.
	Reason  Reason
	Keyword string
}

func reject(r Reason, keyword string) Decision {
	return Decision{Reason: r, Keyword: keyword}
}

// Classify applies, in order: the minimum length, structural chrome on the
// element and its containers, short navigation/legal text, and long
// copyright notices. Survivors are typed heading for h1-h6 and paragraph
// otherwise.
func Classify(c Candidate) Decision {
	text := strings.TrimSpace(c.Text)
	n := utf8.RuneCountInString(text)
	if n < MinTextLength {
		return reject(ReasonTooShort, "")
	}

	tag := strings.ToLower(c.Tag)
	heading := IsHeadingTag(tag)

	if kw, ok := chrome(tag, c.Class, c.ID, true); ok {
		return reject(ReasonChrome, kw)
	}
	for _, ct := range c.Containers {
		if kw, ok := chrome(strings.ToLower(ct.Tag), ct.Class, ct.ID, ct.TopLevel); ok {
			return reject(ReasonContainerChrome, kw)
		}
	}

	lower := strings.ToLower(text)

	if n < ShortTextLimit {
		if kw, ok := legalSet.find(lower); ok {
			return reject(ReasonLegal, kw)
		}
		if heading {
			if kw, ok := headingNavSet.find(lower); ok {
				return reject(ReasonNavigation, kw)
			}
			if kw, ok := navigationSet.equals(strings.TrimRight(lower, " .:")); ok {
				return reject(ReasonNavigation, kw)
			}
		} else if kw, ok := navigationSet.find(lower); ok {
			return reject(ReasonNavigation, kw)
		}
	}

	if n < LongTextLimit {
		if kw, ok := copyrightSet.find(lower); ok {
			return reject(ReasonCopyright, kw)
		}
	}

	if heading {
		return Decision{Keep: true, Type: model.Heading}
	}
	return Decision{Keep: true, Type: model.Paragraph}
}

// chrome reports whether an element is structural chrome by tag or by a
// class/id keyword. header and footer tags only count when topLevel.
func chrome(tag, class, id string, topLevel bool) (string, bool) {
	switch tag {
	case "script", "style", "nav", "aside":
		return tag, true
	case "header", "footer":
		if topLevel {
			return tag, true
		}
	}
	if kw, ok := chromeSet.find(strings.ToLower(class)); ok {
		return kw, true
	}
	if kw, ok := chromeSet.find(strings.ToLower(id)); ok {
		return kw, true
	}
	return "", false
}

// IsHeadingTag reports whether tag is h1 through h6.
func IsHeadingTag(tag string) bool {
	return len(tag) == 2 && (tag[0] == 'h' || tag[0] == 'H') && tag[1] >= '1' && tag[1] <= '6'
}

// IsMeaningfulClass reports whether a class attribute marks a block
// container as narrative content (letters, verse, dialogue, ...).
func IsMeaningfulClass(class string) bool {
	_, ok := meaningfulSet.find(strings.ToLower(class))
	return ok
}
