// Package epubdoc resolves the reading order of an EPUB archive from its
// package document (OPF), falling back to a positional ordering of markup
// entries when the package document is missing or unusable.
package epubdoc

// Default metadata values used when the package document does not supply them.
const (
	UnknownTitle  = "Unknown Title"
	UnknownAuthor = "Unknown Author"
)

// Entries is the read access the resolver needs from an archive.
type Entries interface {
	Names() []string
	Has(name string) bool
	ReadBytes(name string) ([]byte, error)
}

// Package represents the parsed OPF document.
type Package struct {
	Path     string // archive path of the OPF file
	BaseDir  string // directory of the OPF file, "" at the archive root
	Version  string // "2.0" or "3.0"
	Metadata Metadata
	Manifest map[string]ManifestItem // keyed by ID
	Spine    []SpineItem
}

// Metadata contains the Dublin Core fields surfaced to callers.
type Metadata struct {
	Title      string
	Creator    []string
	Language   string
	Identifier string
	Publisher  string
}

// ManifestItem declares one file of the publication.
type ManifestItem struct {
	ID         string
	Href       string
	MediaType  string
	Properties []string
}

// SpineItem is an ordered reference to a manifest item.
type SpineItem struct {
	IDRef  string
	Linear bool
}

// Resolution is the outcome of resolving an archive's reading order.
type Resolution struct {
	Title  string
	Author string

	// Paths lists content documents in reading order.
	Paths []string

	// Fallback is true when Paths came from FallbackOrder rather than the spine.
	Fallback bool

	// Package is nil when no package document could be located or parsed.
	Package *Package

	// Warnings describe non-fatal problems found while resolving.
	Warnings []string
}

// Options configures resolution.
type Options struct {
	// ExcludeNonLinear drops spine items marked linear="no".
	ExcludeNonLinear bool

	// ForceFallback ignores the spine and always uses FallbackOrder.
	ForceFallback bool
}
