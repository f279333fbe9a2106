// Package translate is the boundary to a translation service. It does not
// translate anything itself; it keeps the output of any Translator
// index-aligned with the extracted content it was given.
package translate

import (
	"context"
)

// Options carries the language pair of a request.
type Options struct {
	SourceLanguage string
	TargetLanguage string
}

// Translator translates a batch of texts. Implementations should return one
// translation per input, in input order.
type Translator interface {
	Translate(ctx context.Context, texts []string, opts Options) ([]string, error)
}

// Func adapts a function to the Translator interface.
type Func func(ctx context.Context, texts []string, opts Options) ([]string, error)

// Translate calls f.
func (f Func) Translate(ctx context.Context, texts []string, opts Options) ([]string, error) {
	return f(ctx, texts, opts)
}

// Echo returns its input unchanged. It stands in for a real service in
// offline runs and tests.
type Echo struct{}

// Translate returns a copy of texts.
func (Echo) Translate(ctx context.Context, texts []string, _ Options) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]string, len(texts))
	copy(out, texts)
	return out, nil
}

// Placeholder is the translation recorded for a text the service failed to
// translate.
func Placeholder(original string) string {
	return "[Translation failed: " + original + "]"
}
