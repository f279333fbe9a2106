package model

// Chapter is a contiguous run of items started by a heading.
type Chapter struct {
	// Number is 0 for the items preceding the first heading, then 1, 2, ...
	Number int `json:"chapterNumber"`
	// Title is the heading text; empty for chapter 0.
	Title string `json:"title"`
	// Start and End delimit the chapter's items as a half-open index range.
	Start int `json:"start"`
	End   int `json:"end"`
}

// Len returns the number of items in the chapter.
func (c Chapter) Len() int {
	return c.End - c.Start
}

// Placement locates one item for storage.
type Placement struct {
	ItemID     string `json:"id"`
	OrderIndex int    `json:"order_index"`
	Chapter    int    `json:"chapter_number"`
}

// Chapters groups items into chapters. Chapter 0 is only present when at
// least one item precedes the first heading.
func Chapters(items []ContentItem) []Chapter {
	var chapters []Chapter
	number := 0

	for i, item := range items {
		switch {
		case item.Type == Heading:
			if len(chapters) > 0 {
				chapters[len(chapters)-1].End = i
			}
			number++
			chapters = append(chapters, Chapter{Number: number, Title: item.Content, Start: i})
		case len(chapters) == 0:
			chapters = append(chapters, Chapter{Number: 0, Start: i})
		}
	}

	if len(chapters) > 0 {
		chapters[len(chapters)-1].End = len(items)
	}

	return chapters
}

// Placements returns the order index and chapter number of every item.
func Placements(items []ContentItem) []Placement {
	out := make([]Placement, len(items))
	number := 0
	for i, item := range items {
		if item.Type == Heading {
			number++
		}
		out[i] = Placement{ItemID: item.ID, OrderIndex: i, Chapter: number}
	}
	return out
}

// ChapterSlice returns the items of chapter n, or nil when there is no such
// chapter.
func ChapterSlice(items []ContentItem, n int) []ContentItem {
	for _, ch := range Chapters(items) {
		if ch.Number == n {
			return items[ch.Start:ch.End]
		}
	}
	return nil
}
