package model

import (
	"errors"
	"fmt"
)

// ErrLengthMismatch is returned when translations are not index-aligned
// with the items they translate.
var ErrLengthMismatch = errors.New("model: translations not aligned with content")

// BilingualItem is the serving shape of one item.
type BilingualItem struct {
	ID         string      `json:"id"`
	Original   string      `json:"original"`
	Translated string      `json:"translated"`
	Type       ContentType `json:"type"`
	ClassName  string      `json:"className,omitempty"`
	TagName    string      `json:"tagName,omitempty"`
	Styles     string      `json:"styles,omitempty"`
}

// Bilingual pairs items with translations by index.
func Bilingual(items []ContentItem, translations []string) ([]BilingualItem, error) {
	if len(items) != len(translations) {
		return nil, fmt.Errorf("%w: %d items, %d translations", ErrLengthMismatch, len(items), len(translations))
	}

	out := make([]BilingualItem, len(items))
	for i, item := range items {
		out[i] = BilingualItem{
			ID:         item.ID,
			Original:   item.Content,
			Translated: translations[i],
			Type:       item.Type,
			ClassName:  item.ClassName,
			TagName:    item.TagName,
			Styles:     item.InlineStyle,
		}
	}
	return out, nil
}
