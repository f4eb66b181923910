package epubdoc

import (
	"archive/zip"
	"encoding/xml"
	"errors"
	"fmt"
	"net/url"
	"path"
	"strings"

	"github.com/tsawler/quizdoc/model"
)

// Package document errors.
var (
	ErrNoOPF      = errors.New("epub: missing package document (OPF)")
	ErrInvalidOPF = errors.New("epub: invalid package document")
	ErrEmptySpine = errors.New("epub: no content in spine")
)

// opfPackage is the package document: Dublin Core metadata, the manifest
// of files, and the spine giving reading order.
type opfPackage struct {
	XMLName  xml.Name `xml:"package"`
	Version  string   `xml:"version,attr"`
	Metadata struct {
		Title       []string `xml:"title"`
		Creator     []string `xml:"creator"`
		Language    []string `xml:"language"`
		Description []string `xml:"description"`
		Subject     []string `xml:"subject"`
		Date        []string `xml:"date"`
		Meta        []struct {
			Property string `xml:"property,attr"`
			Value    string `xml:",chardata"`
		} `xml:"meta"`
	} `xml:"metadata"`
	Manifest []struct {
		ID        string `xml:"id,attr"`
		Href      string `xml:"href,attr"`
		MediaType string `xml:"media-type,attr"`
	} `xml:"manifest>item"`
	Spine []struct {
		IDRef  string `xml:"idref,attr"`
		Linear string `xml:"linear,attr"`
	} `xml:"spine>itemref"`
}

// spineDoc is one content document in reading order.
type spineDoc struct {
	ID   string
	Href string // archive path, resolved against the package directory
}

// readPackage parses the package document at opfPath and returns its
// metadata and the linear spine documents.
func readPackage(zr *zip.Reader, opfPath string) (model.Metadata, []spineDoc, error) {
	data, err := readMember(zr, opfPath)
	if errors.Is(err, errMemberNotFound) {
		return model.Metadata{}, nil, ErrNoOPF
	}
	if err != nil {
		return model.Metadata{}, nil, err
	}

	var opf opfPackage
	if err := xml.Unmarshal(data, &opf); err != nil {
		return model.Metadata{}, nil, fmt.Errorf("%w: %v", ErrInvalidOPF, err)
	}

	baseDir := path.Dir(opfPath)
	hrefs := make(map[string]string, len(opf.Manifest))
	for _, item := range opf.Manifest {
		hrefs[item.ID] = resolveHref(baseDir, item.Href)
	}

	var docs []spineDoc
	for _, ref := range opf.Spine {
		// Non-linear items are notes and pop-ups outside the reading order.
		if ref.Linear == "no" {
			continue
		}
		if href, ok := hrefs[ref.IDRef]; ok {
			docs = append(docs, spineDoc{ID: ref.IDRef, Href: href})
		}
	}
	if len(docs) == 0 {
		return model.Metadata{}, nil, ErrEmptySpine
	}

	m := opf.Metadata
	meta := model.Metadata{
		Title:  first(m.Title),
		Author: strings.Join(trimAll(m.Creator), ", "),
		Custom: map[string]string{"epub_version": opf.Version},
	}
	subjects := trimAll(m.Subject)
	meta.Subject = strings.Join(subjects, ", ")
	meta.Keywords = subjects
	if lang := first(m.Language); lang != "" {
		meta.Custom["language"] = lang
	}
	if desc := first(m.Description); desc != "" {
		meta.Custom["description"] = desc
	}
	meta.CreationDate = model.ParseDate(first(m.Date))
	for _, pm := range m.Meta {
		if pm.Property == "dcterms:modified" {
			meta.ModDate = model.ParseDate(pm.Value)
		}
	}
	return meta, docs, nil
}

// resolveHref resolves a manifest href, which is URL encoded and relative
// to the package document.
func resolveHref(baseDir, href string) string {
	if decoded, err := url.PathUnescape(href); err == nil {
		href = decoded
	}
	if baseDir == "." || baseDir == "" {
		return href
	}
	return path.Join(baseDir, href)
}

func first(values []string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}

func trimAll(values []string) []string {
	var out []string
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
