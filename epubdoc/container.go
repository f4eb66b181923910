package epubdoc

import (
	"archive/zip"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
)

// Container-related errors.
var (
	ErrNoContainer      = errors.New("epub: missing META-INF/container.xml")
	ErrInvalidContainer = errors.New("epub: invalid container.xml")
	ErrNoRootfile       = errors.New("epub: no rootfile found in container.xml")
)

const packageMediaType = "application/oebps-package+xml"

// containerXML is META-INF/container.xml.
type containerXML struct {
	XMLName   xml.Name `xml:"container"`
	Rootfiles []struct {
		FullPath  string `xml:"full-path,attr"`
		MediaType string `xml:"media-type,attr"`
	} `xml:"rootfiles>rootfile"`
}

// packagePath returns the path of the package document named by the
// container. A rootfile without a media type is accepted.
func packagePath(zr *zip.Reader) (string, error) {
	data, err := readMember(zr, "META-INF/container.xml")
	if errors.Is(err, errMemberNotFound) {
		return "", ErrNoContainer
	}
	if err != nil {
		return "", err
	}

	var c containerXML
	if err := xml.Unmarshal(data, &c); err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidContainer, err)
	}
	for _, rf := range c.Rootfiles {
		if rf.FullPath != "" && (rf.MediaType == packageMediaType || rf.MediaType == "") {
			return rf.FullPath, nil
		}
	}
	if len(c.Rootfiles) > 0 && c.Rootfiles[0].FullPath != "" {
		return c.Rootfiles[0].FullPath, nil
	}
	return "", ErrNoRootfile
}

var errMemberNotFound = errors.New("epub: member not found")

// readMember reads one member of the archive.
func readMember(zr *zip.Reader, name string) ([]byte, error) {
	for _, f := range zr.File {
		if f.Name != name {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("opening %s: %w", name, err)
		}
		defer rc.Close()
		return io.ReadAll(rc)
	}
	return nil, fmt.Errorf("%w: %s", errMemberNotFound, name)
}
