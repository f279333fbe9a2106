// Package archive opens an in-memory OCF container and exposes its entries
// by name, decompressing and decoding them on demand.
package archive

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"

	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
)

// Archive errors.
var (
	ErrArchiveFormat = errors.New("archive: invalid or corrupted container")
	ErrEntryNotFound = errors.New("archive: entry not found")
)

// Archive provides read access to the entries of a ZIP container.
type Archive struct {
	zr     *zip.Reader
	names  []string
	byName map[string]*zip.File
	folded map[string]*zip.File // lower-cased name -> first matching entry
}

// Open wraps data as a ZIP container. Directory entries are not listed.
func Open(data []byte) (*Archive, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrArchiveFormat, err)
	}

	a := &Archive{
		zr:     zr,
		names:  make([]string, 0, len(zr.File)),
		byName: make(map[string]*zip.File, len(zr.File)),
		folded: make(map[string]*zip.File, len(zr.File)),
	}

	for _, f := range zr.File {
		if f.FileInfo().IsDir() || strings.HasSuffix(f.Name, "/") {
			continue
		}
		if _, dup := a.byName[f.Name]; dup {
			continue
		}
		a.names = append(a.names, f.Name)
		a.byName[f.Name] = f
		lower := strings.ToLower(f.Name)
		if _, ok := a.folded[lower]; !ok {
			a.folded[lower] = f
		}
	}

	return a, nil
}

// Names returns the entry names in archive order.
func (a *Archive) Names() []string {
	out := make([]string, len(a.names))
	copy(out, a.names)
	return out
}

// Len returns the number of file entries.
func (a *Archive) Len() int {
	return len(a.names)
}

// Has reports whether an entry exists, matching case-insensitively when no
// exact match is present.
func (a *Archive) Has(name string) bool {
	return a.lookup(name) != nil
}

func (a *Archive) lookup(name string) *zip.File {
	name = strings.TrimPrefix(name, "/")
	if f, ok := a.byName[name]; ok {
		return f
	}
	return a.folded[strings.ToLower(name)]
}

// ReadBytes decompresses an entry.
func (a *Archive) ReadBytes(name string) ([]byte, error) {
	f := a.lookup(name)
	if f == nil {
		return nil, fmt.Errorf("%w: %s", ErrEntryNotFound, name)
	}

	rc, err := f.Open()
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", name, err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}
	return data, nil
}

// ReadText decompresses an entry and decodes it to UTF-8.
func (a *Archive) ReadText(name string) (string, error) {
	data, err := a.ReadBytes(name)
	if err != nil {
		return "", err
	}
	return DecodeText(data), nil
}

var xmlEncodingDecl = regexp.MustCompile(`^\s*<\?xml[^>]*\bencoding\s*=\s*["']([A-Za-z0-9._:-]+)["']`)

// DecodeText converts markup bytes to a UTF-8 string. The encoding is taken
// from a byte order mark, then the XML declaration, then a <meta> charset
// prescan. Input that is already valid UTF-8 without any declaration is
// returned unchanged; undecodable input is returned as-is.
func DecodeText(data []byte) string {
	if bytes.HasPrefix(data, []byte{0xEF, 0xBB, 0xBF}) {
		return string(data[3:])
	}

	var enc encoding.Encoding
	if m := xmlEncodingDecl.FindSubmatch(data); m != nil {
		if e, err := htmlindex.Get(string(m[1])); err == nil {
			enc = e
		}
	}
	if enc == nil {
		e, name, _ := charset.DetermineEncoding(data, "")
		if name == "utf-8" {
			return string(data)
		}
		enc = e
	}

	if enc == unicode.UTF8 || enc == encoding.Nop {
		return string(data)
	}

	out, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		return string(data)
	}
	return string(out)
}
