package odt

import "encoding/xml"

// ODF XML namespaces
const (
	nsOffice = "urn:oasis:names:tc:opendocument:xmlns:office:1.0"
	nsText   = "urn:oasis:names:tc:opendocument:xmlns:text:1.0"
)

// odtMimeType is the content of the mimetype member of an ODF text document.
const odtMimeType = "application/vnd.oasis.opendocument.text"

// metaXML represents the structure of meta.xml
type metaXML struct {
	XMLName xml.Name     `xml:"document-meta"`
	Meta    *metaInfoXML `xml:"meta"`
}

// metaInfoXML represents the office:meta element.
type metaInfoXML struct {
	Title          string   `xml:"title"`
	Description    string   `xml:"description"`
	Subject        string   `xml:"subject"`
	Keywords       []string `xml:"keyword"`
	InitialCreator string   `xml:"initial-creator"`
	Creator        string   `xml:"creator"`
	Generator      string   `xml:"generator"`
	Language       string   `xml:"language"`
	CreationDate   string   `xml:"creation-date"`
	Date           string   `xml:"date"`
}

// skippedElements are body elements whose text never belongs to the
// paragraph flow: tables, footnotes, comments, change tracking and
// declarations.
var skippedElements = map[string]bool{
	"table":            true,
	"note":             true,
	"annotation":       true,
	"tracked-changes":  true,
	"sequence-decls":   true,
	"variable-decls":   true,
	"user-field-decls": true,
	"forms":            true,
	"frame":            true,
}
