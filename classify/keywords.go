package classify

import (
	"strings"

	ahocorasick "github.com/cloudflare/ahocorasick"
)

// The keyword tables are matched as case-insensitive substrings. They are
// English-only; no localization is attempted.
var (
	// MeaningfulClassKeywords mark block containers (div, section, ...)
	// that carry narrative text such as letters or verse.
	MeaningfulClassKeywords = []string{
		"letter", "telegram", "note", "message", "quote", "dialogue",
		"poem", "verse", "monologue", "speech",
		"letter-head", "letter-body", "letter-signature",
		"letter-salutation", "letter-closing",
	}

	// NavigationKeywords flag short navigation text such as "Next page".
	NavigationKeywords = []string{
		"contents", "chapter", "section",
		"previous", "next", "back", "forward", "home",
		"page", "pg.", "cover", "title page", "index",
	}

	// HeadingKeywords are navigation words that also open ordinary
	// headings ("Chapter One", "Section 3"). A heading containing one is
	// kept unless it consists of the word alone.
	HeadingKeywords = []string{"chapter", "section"}

	// LegalKeywords flag short copyright and imprint text.
	LegalKeywords = []string{
		"copyright", "©", "rights reserved", "license", "legal",
		"disclaimer", "imprint", "impressum", "publisher",
	}

	// CopyrightKeywords flag copyright notices up to LongTextLimit runes.
	CopyrightKeywords = []string{"copyright", "©", "all rights reserved"}

	// ChromeKeywords flag class or id attributes of structural chrome.
	ChromeKeywords = []string{
		"nav", "navigation", "toc", "table-of-contents", "menu", "sidebar",
		"copyright", "license", "legal", "disclaimer", "footer", "header",
		"breadcrumb", "pagination", "prev", "next", "index", "cover",
	}
)

// keywordSet matches a fixed list of lower-case keywords in one pass.
type keywordSet struct {
	words   []string
	matcher *ahocorasick.Matcher
}

func newKeywordSet(words ...[]string) *keywordSet {
	ks := &keywordSet{}
	for _, list := range words {
		for _, w := range list {
			ks.words = append(ks.words, strings.ToLower(w))
		}
	}
	ks.matcher = ahocorasick.NewStringMatcher(ks.words)
	return ks
}

// find returns the first keyword (in table order) contained in s. s must
// already be lower-cased.
func (ks *keywordSet) find(s string) (string, bool) {
	if s == "" {
		return "", false
	}
	hits := ks.matcher.MatchThreadSafe([]byte(s))
	if len(hits) == 0 {
		return "", false
	}
	first := hits[0]
	for _, h := range hits[1:] {
		if h < first {
			first = h
		}
	}
	return ks.words[first], true
}

// equals reports whether s is exactly one of the keywords.
func (ks *keywordSet) equals(s string) (string, bool) {
	for _, w := range ks.words {
		if s == w {
			return w, true
		}
	}
	return "", false
}

var (
	meaningfulSet = newKeywordSet(MeaningfulClassKeywords)
	legalSet      = newKeywordSet(LegalKeywords)
	navigationSet = newKeywordSet(NavigationKeywords)
	headingNavSet = newKeywordSet(without(NavigationKeywords, HeadingKeywords))
	copyrightSet  = newKeywordSet(CopyrightKeywords)
	chromeSet     = newKeywordSet(ChromeKeywords)
)

// without returns the words of list that are not in drop.
func without(list, drop []string) []string {
	out := make([]string, 0, len(list))
	for _, w := range list {
		skip := false
		for _, d := range drop {
			if w == d {
				skip = true
				break
			}
		}
		if !skip {
			out = append(out, w)
		}
	}
	return out
}
