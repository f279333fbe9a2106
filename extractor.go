package bilingual

import (
	"context"
	"fmt"
	"os"

	"github.com/tsawler/bilingual/archive"
	"github.com/tsawler/bilingual/epubdoc"
	"github.com/tsawler/bilingual/format"
	"github.com/tsawler/bilingual/htmldoc"
	"github.com/tsawler/bilingual/logger"
	"github.com/tsawler/bilingual/model"
)

// Extractor provides a fluent interface for extracting content from EPUB
// archives. Each configuration method returns a new Extractor instance,
// making it safe for concurrent use and allowing method chaining.
type Extractor struct {
	// Source
	filename string
	data     []byte
	loaded   bool

	log logger.Logger

	// Configuration
	options ExtractOptions

	// Accumulated error (fail-fast)
	err error
}

// clone creates a shallow copy of the Extractor with a deep copy of options.
// This ensures immutability - each chain method returns a new instance.
func (e *Extractor) clone() *Extractor {
	return &Extractor{
		filename: e.filename,
		data:     e.data,
		loaded:   e.loaded,
		log:      e.log,
		options:  e.options.clone(),
		err:      e.err,
	}
}

// load returns the archive bytes, reading the file on first use.
func (e *Extractor) load() ([]byte, []Warning, error) {
	if e.loaded {
		return e.data, nil, nil
	}
	var warnings []Warning
	if format.Detect(e.filename) == format.Unknown {
		warnings = append(warnings, Warning{
			Source:  e.filename,
			Message: "file extension is neither .epub nor .zip",
		})
	}

	data, err := os.ReadFile(e.filename)
	if err != nil {
		return nil, nil, fmt.Errorf("reading %s: %w", e.filename, err)
	}
	return data, warnings, nil
}

func (e *Extractor) logger() logger.Logger {
	if e.log == nil {
		return logger.NewNop()
	}
	return e.log
}

// ============================================================================
// Configuration Methods (return new Extractor instance)
// ============================================================================

// Logger attaches a logger. Without one the Extractor is silent.
//
// Example:
//
//	result, _, err := bilingual.Open("book.epub").Logger(log).Extract(ctx)
func (e *Extractor) Logger(l logger.Logger) *Extractor {
	newExt := e.clone()
	newExt.log = l
	return newExt
}

// ExcludeNonLinear drops spine items marked linear="no", such as pop-up
// notes and answer keys.
//
// Example:
//
//	result, _, err := bilingual.Open("book.epub").ExcludeNonLinear().Extract(ctx)
func (e *Extractor) ExcludeNonLinear() *Extractor {
	newExt := e.clone()
	newExt.options.excludeNonLinear = true
	return newExt
}

// FallbackOrder ignores the spine and orders content documents by the
// numbers in their entry names. Useful for archives whose spine is known
// to be wrong.
//
// Example:
//
//	result, _, err := bilingual.Open("book.epub").FallbackOrder().Extract(ctx)
func (e *Extractor) FallbackOrder() *Extractor {
	newExt := e.clone()
	newExt.options.forceFallback = true
	return newExt
}

// Documents restricts extraction to the named content documents. The
// reading order is unchanged. Multiple calls are cumulative. An empty name
// is recorded as an error returned by the terminal operation.
//
// Example:
//
//	result, _, err := bilingual.Open("book.epub").Documents("OEBPS/ch1.xhtml").Extract(ctx)
func (e *Extractor) Documents(names ...string) *Extractor {
	newExt := e.clone()
	if newExt.options.documents == nil {
		newExt.options.documents = []string{}
	}
	for _, name := range names {
		if name == "" {
			if newExt.err == nil {
				newExt.err = fmt.Errorf("documents: empty document name")
			}
			continue
		}
		newExt.options.documents = append(newExt.options.documents, name)
	}
	return newExt
}

// ============================================================================
// Terminal Operations
// ============================================================================

// ReadingOrder resolves the content documents of the archive in reading
// order without extracting them.
//
// Example:
//
//	paths, _, err := bilingual.Open("book.epub").ReadingOrder()
func (e *Extractor) ReadingOrder() ([]string, []Warning, error) {
	if e.err != nil {
		return nil, nil, e.err
	}

	data, warnings, err := e.load()
	if err != nil {
		return nil, nil, err
	}

	ar, err := archive.Open(data)
	if err != nil {
		return nil, nil, err
	}

	res := epubdoc.Resolve(ar, e.resolveOptions())
	warnings = append(warnings, resolutionWarnings(data, res, e.options.forceFallback)...)

	return res.Paths, warnings, nil
}

// Extract runs the whole pipeline and returns the book's content. It returns
// an error only when the archive cannot be read at all or ctx is cancelled;
// problems with the package document or with single content documents are
// reported as warnings and extraction continues. No partial result is
// returned on cancellation.
//
// An archive without readable text yields an empty, non-nil result. Wrap the
// call in RequireContent to treat that as ErrNoContent.
//
// Example:
//
//	result, warnings, err := bilingual.Open("book.epub").Extract(ctx)
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", bilingual.FormatWarnings(warnings))
//	}
func (e *Extractor) Extract(ctx context.Context) (*model.Result, []Warning, error) {
	if e.err != nil {
		return nil, nil, e.err
	}
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	log := e.logger()

	data, warnings, err := e.load()
	if err != nil {
		return nil, nil, err
	}

	ar, err := archive.Open(data)
	if err != nil {
		log.Error("Failed to open archive", logger.String("file", e.filename), logger.Error(err))
		return nil, nil, err
	}

	res := epubdoc.Resolve(ar, e.resolveOptions())
	warnings = append(warnings, resolutionWarnings(data, res, e.options.forceFallback)...)
	log.Debug("Resolved reading order",
		logger.String("title", res.Title),
		logger.Int("documents", len(res.Paths)),
		logger.Bool("fallback", res.Fallback),
	)

	acc := NewAccumulator()
	for _, name := range res.Paths {
		if err := ctx.Err(); err != nil {
			return nil, nil, err
		}
		if !e.options.wants(name) {
			log.Debug("Skipping document", logger.String("document", name))
			continue
		}

		markup, err := ar.ReadText(name)
		if err != nil {
			log.Warn("Failed to read document", logger.String("document", name), logger.Error(err))
			warnings = append(warnings, Warning{Source: name, Message: err.Error()})
			continue
		}

		doc := htmldoc.Extract(name, markup)
		if doc.Err != nil {
			log.Warn("Failed to parse document", logger.String("document", name), logger.Error(doc.Err))
			warnings = append(warnings, Warning{Source: name, Message: doc.Err.Error()})
		}

		before := acc.Len()
		acc.Absorb(doc)
		log.Debug("Absorbed document",
			logger.String("document", name),
			logger.Int("fragments", len(doc.Fragments)),
			logger.Int("items", acc.Len()-before),
		)
	}

	result := acc.Result(res)
	log.Info("Extraction complete",
		logger.String("title", result.Title),
		logger.Int("items", len(result.Content)),
		logger.Int("duplicates", acc.Duplicates),
		logger.Int("warnings", len(warnings)),
	)

	return result, warnings, nil
}

// Chapters extracts the archive and groups its content into chapters, each
// starting at a heading.
//
// Example:
//
//	chapters, err := bilingual.Open("book.epub").Chapters(ctx)
func (e *Extractor) Chapters(ctx context.Context) ([]model.Chapter, error) {
	result, _, err := e.Extract(ctx)
	if err != nil {
		return nil, err
	}
	return model.Chapters(result.Content), nil
}

func (e *Extractor) resolveOptions() epubdoc.Options {
	return epubdoc.Options{
		ExcludeNonLinear: e.options.excludeNonLinear,
		ForceFallback:    e.options.forceFallback,
	}
}

// resolutionWarnings converts resolver warnings, flags a container that does
// not declare the EPUB mimetype and reports an unplanned fallback ordering.
func resolutionWarnings(data []byte, res *epubdoc.Resolution, forced bool) []Warning {
	var warnings []Warning
	if format.DetectFromMagic(data) == format.ZIP {
		warnings = append(warnings, Warning{
			Source:  "mimetype",
			Message: "missing or not " + format.EPUBMimetype,
		})
	}
	for _, msg := range res.Warnings {
		warnings = append(warnings, Warning{Message: msg})
	}
	if res.Fallback && res.Package != nil && !forced {
		warnings = append(warnings, Warning{
			Source:  res.Package.Path,
			Message: "spine lists no content documents, ordering by entry name",
		})
	}
	return warnings
}
