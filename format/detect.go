// Package format provides format detection and name/media-type predicates
// for e-book archives and the entries inside them.
package format

import (
	"archive/zip"
	"bytes"
	"path"
	"regexp"
	"strings"
)

// Format represents a recognized input format.
type Format int

const (
	// Unknown indicates an unrecognized format.
	Unknown Format = iota
	// EPUB indicates an OCF container carrying the EPUB mimetype.
	EPUB
	// ZIP indicates a plain ZIP archive without the EPUB mimetype entry.
	// Such archives are still processed, relying on fallback ordering when
	// no package document is present.
	ZIP
)

// EPUBMimetype is the content of the mimetype entry of an EPUB container.
const EPUBMimetype = "application/epub+zip"

// PackageMediaType is the media type of the package document (OPF).
const PackageMediaType = "application/oebps-package+xml"

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case EPUB:
		return "EPUB"
	case ZIP:
		return "ZIP"
	default:
		return "Unknown"
	}
}

// Extension returns the typical file extension for the format.
func (f Format) Extension() string {
	switch f {
	case EPUB:
		return ".epub"
	case ZIP:
		return ".zip"
	default:
		return ""
	}
}

// Detect determines the format from a filename extension.
func Detect(filename string) Format {
	switch strings.ToLower(path.Ext(filename)) {
	case ".epub":
		return EPUB
	case ".zip":
		return ZIP
	default:
		return Unknown
	}
}

// DetectFromMagic inspects the leading bytes and, for ZIP containers, the
// mimetype entry.
func DetectFromMagic(data []byte) Format {
	if len(data) < 4 || data[0] != 0x50 || data[1] != 0x4B || data[2] != 0x03 || data[3] != 0x04 {
		return Unknown
	}

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return Unknown
	}

	for _, f := range zr.File {
		if f.Name != "mimetype" {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			break
		}
		buf := make([]byte, 64)
		n, _ := rc.Read(buf)
		rc.Close()
		if strings.TrimSpace(string(buf[:n])) == EPUBMimetype {
			return EPUB
		}
		break
	}

	return ZIP
}

var markupName = regexp.MustCompile(`(?i)\.x?html?$`)

// IsMarkupName reports whether an entry name looks like an HTML or XHTML
// content document (.htm, .html, .xhtm, .xhtml).
func IsMarkupName(name string) bool {
	return markupName.MatchString(name)
}

// IsPackageName reports whether an entry name is a package document.
func IsPackageName(name string) bool {
	return strings.HasSuffix(strings.ToLower(name), ".opf")
}

// IsContentMediaType reports whether a manifest media type identifies a
// content document. Images, stylesheets, fonts and navigation files
// (NCX) are not content documents.
func IsContentMediaType(mediaType string) bool {
	mt := strings.ToLower(strings.TrimSpace(mediaType))
	if i := strings.IndexByte(mt, ';'); i >= 0 {
		mt = strings.TrimSpace(mt[:i])
	}
	switch mt {
	case "application/xhtml+xml", "text/html", "application/x-dtbook+xml":
		return true
	}
	return false
}
