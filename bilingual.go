// Package bilingual extracts the readable text of an EPUB archive as an
// ordered, deduplicated sequence of headings and paragraphs, ready to be
// paired with a translation.
//
// Basic usage:
//
//	result, warnings, err := bilingual.Open("book.epub").Extract(ctx)
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", bilingual.FormatWarnings(warnings))
//	}
//
// With options:
//
//	result, _, err := bilingual.FromBytes(data).
//	    Logger(log).
//	    ExcludeNonLinear().
//	    Extract(ctx)
//
// The lower-level archive, epubdoc, htmldoc and classify packages are also
// available for callers that need a single stage.
package bilingual

import "errors"

// ErrNoFilename is recorded by Open when given an empty filename.
var ErrNoFilename = errors.New("no filename specified")

// Open returns an Extractor for the archive stored at filename. The file is
// read when a terminal operation runs.
//
// Example:
//
//	result, warnings, err := bilingual.Open("book.epub").Extract(ctx)
func Open(filename string) *Extractor {
	e := &Extractor{
		filename: filename,
		options:  defaultOptions(),
	}
	if filename == "" {
		e.err = ErrNoFilename
	}
	return e
}

// FromBytes returns an Extractor for an archive already held in memory.
// The Extractor does not copy data; the caller must not modify it while
// extraction runs.
//
// Example:
//
//	result, _, err := bilingual.FromBytes(data).Extract(ctx)
func FromBytes(data []byte) *Extractor {
	return &Extractor{
		data:    data,
		loaded:  true,
		options: defaultOptions(),
	}
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	chapters := bilingual.Must(bilingual.Open("book.epub").Chapters(ctx))
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// MustExtract is a helper that wraps a call to Extract and panics if the
// error is non-nil. It discards warnings and returns just the value.
//
// Example:
//
//	result := bilingual.MustExtract(bilingual.Open("book.epub").Extract(ctx))
func MustExtract[T any](val T, _ []Warning, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
