package epubdoc

import (
	"encoding/xml"
	"errors"

	"github.com/tsawler/bilingual/format"
)

// Package location errors.
var (
	ErrNoContainer      = errors.New("epub: missing META-INF/container.xml")
	ErrInvalidContainer = errors.New("epub: invalid container.xml")
	ErrNoRootfile       = errors.New("epub: no rootfile found in container.xml")
	ErrNoOPF            = errors.New("epub: missing package document (OPF)")
)

const containerPath = "META-INF/container.xml"

type containerXML struct {
	XMLName   xml.Name `xml:"container"`
	Rootfiles []struct {
		FullPath  string `xml:"full-path,attr"`
		MediaType string `xml:"media-type,attr"`
	} `xml:"rootfiles>rootfile"`
}

// parseContainer returns the OPF path declared by META-INF/container.xml.
func parseContainer(e Entries) (string, error) {
	if !e.Has(containerPath) {
		return "", ErrNoContainer
	}

	data, err := e.ReadBytes(containerPath)
	if err != nil {
		return "", err
	}

	var container containerXML
	if err := xml.Unmarshal(data, &container); err != nil {
		return "", ErrInvalidContainer
	}

	for _, rf := range container.Rootfiles {
		if rf.FullPath != "" && (rf.MediaType == format.PackageMediaType || rf.MediaType == "") {
			return rf.FullPath, nil
		}
	}
	for _, rf := range container.Rootfiles {
		if rf.FullPath != "" {
			return rf.FullPath, nil
		}
	}

	return "", ErrNoRootfile
}

// locatePackage finds the OPF entry: the container's rootfile when it exists
// in the archive, otherwise the first entry with an .opf extension.
func locatePackage(e Entries) (string, error) {
	if p, err := parseContainer(e); err == nil && e.Has(p) {
		return p, nil
	}

	for _, name := range e.Names() {
		if format.IsPackageName(name) {
			return name, nil
		}
	}

	return "", ErrNoOPF
}
