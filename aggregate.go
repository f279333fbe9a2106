package bilingual

import (
	"errors"
	"strings"

	"github.com/tsawler/bilingual/classify"
	"github.com/tsawler/bilingual/epubdoc"
	"github.com/tsawler/bilingual/htmldoc"
	"github.com/tsawler/bilingual/model"
	"github.com/tsawler/bilingual/text"
)

// ErrNoContent reports an extraction that produced no content items.
// Extract itself returns the empty result; see RequireContent.
var ErrNoContent = errors.New("no readable content found in archive")

// Accumulator folds classified documents into one result. Documents must be
// absorbed in reading order: ids and deduplication depend on it.
type Accumulator struct {
	seen   map[string]struct{}
	nextID int
	title  string
	styles []string
	items  []model.ContentItem
	dir    text.Counter

	// Rejected counts fragments dropped by the classifier, keyed by reason.
	Rejected map[classify.Reason]int
	// Duplicates counts fragments dropped because their text was already emitted.
	Duplicates int
}

// NewAccumulator returns an empty Accumulator.
func NewAccumulator() *Accumulator {
	return &Accumulator{
		seen:     make(map[string]struct{}),
		nextID:   1,
		Rejected: make(map[classify.Reason]int),
	}
}

// Absorb classifies the fragments of doc and appends the survivors. A
// document with a parse error contributes nothing.
func (a *Accumulator) Absorb(doc *htmldoc.Document) {
	if doc == nil || doc.Err != nil {
		return
	}

	if a.title == "" && doc.Title != "" {
		a.title = doc.Title
	}
	if doc.Styles != "" {
		a.styles = append(a.styles, doc.Styles)
	}

	for _, frag := range doc.Fragments {
		d := classify.Classify(frag.Candidate())
		if !d.Keep {
			a.Rejected[d.Reason]++
			continue
		}

		content := strings.TrimSpace(frag.Text)
		if _, dup := a.seen[content]; dup {
			a.Duplicates++
			continue
		}
		a.seen[content] = struct{}{}
		a.dir.Add(content)

		a.items = append(a.items, model.ContentItem{
			ID:          model.ContentID(a.nextID),
			Type:        d.Type,
			Content:     content,
			ClassName:   frag.Class,
			TagName:     strings.ToLower(frag.Tag),
			InlineStyle: frag.Style,
		})
		a.nextID++
	}
}

// Len returns the number of items emitted so far.
func (a *Accumulator) Len() int {
	return len(a.items)
}

// Result finalizes the accumulated items. The title is the first document
// title absorbed, then the package title, then epubdoc.UnknownTitle.
func (a *Accumulator) Result(res *epubdoc.Resolution) *model.Result {
	out := &model.Result{
		Title:   a.title,
		Author:  epubdoc.UnknownAuthor,
		Styles:  strings.Join(a.styles, "\n"),
		Content: make([]model.ContentItem, len(a.items)),
	}
	copy(out.Content, a.items)

	if dir := a.dir.Direction(); dir != text.Neutral {
		out.Direction = dir.String()
	}

	if res != nil {
		out.Author = res.Author
		if out.Title == "" {
			out.Title = res.Title
		}
	}
	if out.Title == "" {
		out.Title = epubdoc.UnknownTitle
	}

	return out
}

// RequireContent turns an empty result into ErrNoContent.
//
// Example:
//
//	result, _, err := bilingual.RequireContent(bilingual.Open("book.epub").Extract(ctx))
func RequireContent(result *model.Result, warnings []Warning, err error) (*model.Result, []Warning, error) {
	if err != nil {
		return result, warnings, err
	}
	if result == nil || len(result.Content) == 0 {
		return result, warnings, ErrNoContent
	}
	return result, warnings, nil
}
