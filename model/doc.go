// Package model defines the extraction result of a bilingual e-book
// conversion and the derived views consumed downstream.
//
// # Content
//
// A [Result] holds the book title, author, the aggregate stylesheet text and
// an ordered sequence of [ContentItem] values. Items carry a stable id of the
// form "content-N", a [ContentType] and the presentation hints (tag, class,
// inline style) needed to reproduce the original typography:
//
//	for _, item := range result.Content {
//	    fmt.Println(item.ID, item.Type, item.Content)
//	}
//
// # Chapters
//
// Chapters are not stored; they are derived. Every heading item starts a new
// chapter, numbered from 1 in emission order. Items that precede the first
// heading belong to chapter 0, the title page:
//
//	for _, ch := range model.Chapters(result.Content) {
//	    items := result.Content[ch.Start:ch.End]
//	}
//
// [Placements] pairs every item with its order index and chapter number, the
// keys a persistence layer needs.
//
// # Bilingual view
//
// [Bilingual] zips items with an index-aligned list of translations into the
// {id, original, translated, type, className, tagName, styles} shape served
// to reading clients. [ChapterSlice] answers chapter-scoped requests.
package model
