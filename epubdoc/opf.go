package epubdoc

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"path"
	"strings"

	"golang.org/x/net/html/charset"
)

// ErrInvalidOPF is returned when the package document is not well-formed.
var ErrInvalidOPF = errors.New("epub: invalid package document")

type opfPackage struct {
	XMLName  xml.Name    `xml:"package"`
	Version  string      `xml:"version,attr"`
	Metadata opfMetadata `xml:"metadata"`
	Manifest opfManifest `xml:"manifest"`
	Spine    opfSpine    `xml:"spine"`
}

type opfMetadata struct {
	Title      []dcElement `xml:"title"`
	Creator    []dcElement `xml:"creator"`
	Language   []dcElement `xml:"language"`
	Identifier []dcElement `xml:"identifier"`
	Publisher  []dcElement `xml:"publisher"`
}

type dcElement struct {
	Content string `xml:",chardata"`
}

type opfManifest struct {
	Items []opfItem `xml:"item"`
}

type opfItem struct {
	ID         string `xml:"id,attr"`
	Href       string `xml:"href,attr"`
	MediaType  string `xml:"media-type,attr"`
	Properties string `xml:"properties,attr"`
}

type opfSpine struct {
	ItemRefs []opfItemRef `xml:"itemref"`
}

type opfItemRef struct {
	IDRef  string `xml:"idref,attr"`
	Linear string `xml:"linear,attr"`
}

// parseOPF reads and parses the package document at opfPath.
func parseOPF(e Entries, opfPath string) (*Package, error) {
	data, err := e.ReadBytes(opfPath)
	if err != nil {
		return nil, err
	}

	var opf opfPackage
	dec := xml.NewDecoder(bytes.NewReader(data))
	dec.CharsetReader = charset.NewReaderLabel
	dec.Strict = false
	if err := dec.Decode(&opf); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidOPF, err)
	}

	baseDir := path.Dir(opfPath)
	if baseDir == "." || baseDir == "/" {
		baseDir = ""
	}

	return &Package{
		Path:     opfPath,
		BaseDir:  baseDir,
		Version:  opf.Version,
		Metadata: convertMetadata(&opf.Metadata),
		Manifest: convertManifest(&opf.Manifest),
		Spine:    convertSpine(&opf.Spine),
	}, nil
}

func firstText(elems []dcElement) string {
	for _, el := range elems {
		if s := strings.TrimSpace(el.Content); s != "" {
			return s
		}
	}
	return ""
}

func convertMetadata(m *opfMetadata) Metadata {
	meta := Metadata{
		Title:      firstText(m.Title),
		Language:   firstText(m.Language),
		Identifier: firstText(m.Identifier),
		Publisher:  firstText(m.Publisher),
	}

	for _, c := range m.Creator {
		if s := strings.TrimSpace(c.Content); s != "" {
			meta.Creator = append(meta.Creator, s)
		}
	}

	return meta
}

func convertManifest(m *opfManifest) map[string]ManifestItem {
	manifest := make(map[string]ManifestItem, len(m.Items))

	for _, item := range m.Items {
		if item.ID == "" {
			continue
		}
		// first declaration wins on duplicate ids
		if _, ok := manifest[item.ID]; ok {
			continue
		}
		manifest[item.ID] = ManifestItem{
			ID:         item.ID,
			Href:       item.Href,
			MediaType:  item.MediaType,
			Properties: strings.Fields(item.Properties),
		}
	}

	return manifest
}

func convertSpine(s *opfSpine) []SpineItem {
	spine := make([]SpineItem, 0, len(s.ItemRefs))

	for _, ref := range s.ItemRefs {
		spine = append(spine, SpineItem{
			IDRef:  ref.IDRef,
			Linear: ref.Linear != "no",
		})
	}

	return spine
}
