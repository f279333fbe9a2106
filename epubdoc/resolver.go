package epubdoc

import (
	"fmt"
	"net/url"
	"path"
	"strings"

	"github.com/tsawler/bilingual/format"
)

// Resolve determines title, author and reading order for an archive. It
// never fails: problems with the package document degrade to the default
// metadata and FallbackOrder, and are described in Resolution.Warnings.
func Resolve(e Entries, opts Options) *Resolution {
	res := &Resolution{
		Title:  UnknownTitle,
		Author: UnknownAuthor,
	}

	if reason := detectDRM(e); reason != "" {
		res.Warnings = append(res.Warnings, reason)
	}

	opfPath, err := locatePackage(e)
	if err != nil {
		res.Warnings = append(res.Warnings, err.Error())
	} else if pkg, err := parseOPF(e, opfPath); err != nil {
		res.Warnings = append(res.Warnings, fmt.Sprintf("%s: %v", opfPath, err))
	} else {
		res.Package = pkg
		if pkg.Metadata.Title != "" {
			res.Title = pkg.Metadata.Title
		}
		if len(pkg.Metadata.Creator) > 0 {
			res.Author = pkg.Metadata.Creator[0]
		}
		if !opts.ForceFallback {
			res.Paths = spineOrder(e, pkg, opts, res)
		}
	}

	if len(res.Paths) == 0 {
		res.Paths = FallbackOrder(e.Names())
		res.Fallback = true
	}

	return res
}

// spineOrder walks the spine and resolves each reference to an archive path.
// References to unknown ids, non-content media types and duplicate paths are
// skipped; paths missing from the archive are reported.
func spineOrder(e Entries, pkg *Package, opts Options, res *Resolution) []string {
	paths := make([]string, 0, len(pkg.Spine))
	seen := make(map[string]bool, len(pkg.Spine))

	for _, ref := range pkg.Spine {
		if opts.ExcludeNonLinear && !ref.Linear {
			continue
		}

		item, ok := pkg.Manifest[ref.IDRef]
		if !ok || !format.IsContentMediaType(item.MediaType) {
			continue
		}

		p := ResolveHref(pkg.BaseDir, item.Href)
		if p == "" || seen[p] {
			continue
		}
		seen[p] = true

		if !e.Has(p) {
			res.Warnings = append(res.Warnings,
				fmt.Sprintf("spine item %q resolves to %q which is not in the archive", ref.IDRef, p))
			continue
		}

		paths = append(paths, p)
	}

	return paths
}

// ResolveHref turns a manifest href into an archive path. Fragments are
// dropped and percent-encoding is decoded. Hrefs starting with "/" are
// archive-absolute; all others are joined to baseDir.
func ResolveHref(baseDir, href string) string {
	if i := strings.IndexByte(href, '#'); i >= 0 {
		href = href[:i]
	}
	if decoded, err := url.PathUnescape(href); err == nil {
		href = decoded
	}
	href = strings.TrimSpace(href)
	if href == "" {
		return ""
	}

	if strings.HasPrefix(href, "/") {
		return strings.TrimLeft(path.Clean(href), "/")
	}
	if baseDir == "" {
		return path.Clean(href)
	}
	return path.Join(baseDir, href)
}
