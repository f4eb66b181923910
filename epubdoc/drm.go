package epubdoc

import (
	"archive/zip"
	"encoding/xml"
	"errors"
	"path"
	"strings"
)

// ErrDRMProtected is returned for publications whose text is encrypted.
var ErrDRMProtected = errors.New("epub: DRM-protected content cannot be processed")

// encryptionXML is META-INF/encryption.xml.
type encryptionXML struct {
	XMLName xml.Name `xml:"encryption"`
	Data    []struct {
		Method struct {
			Algorithm string `xml:"Algorithm,attr"`
		} `xml:"EncryptionMethod"`
		Reference struct {
			URI string `xml:"URI,attr"`
		} `xml:"CipherData>CipherReference"`
	} `xml:"EncryptedData"`
}

// checkDRM rejects Adobe ADEPT rights files and encrypted content
// documents. Obfuscated fonts are allowed.
func checkDRM(zr *zip.Reader) error {
	if _, err := readMember(zr, "META-INF/rights.xml"); err == nil {
		return ErrDRMProtected
	}

	data, err := readMember(zr, "META-INF/encryption.xml")
	if errors.Is(err, errMemberNotFound) {
		return nil
	}
	if err != nil {
		return ErrDRMProtected
	}

	var enc encryptionXML
	if err := xml.Unmarshal(data, &enc); err != nil {
		return ErrDRMProtected
	}
	for _, d := range enc.Data {
		if isFontObfuscation(d.Method.Algorithm) {
			continue
		}
		if isContentFile(d.Reference.URI) {
			return ErrDRMProtected
		}
	}
	return nil
}

// isFontObfuscation reports the IDPF and Adobe font mangling algorithms.
func isFontObfuscation(algorithm string) bool {
	algorithm = strings.ToLower(algorithm)
	return strings.Contains(algorithm, "obfuscation") &&
		(strings.Contains(algorithm, "idpf.org") || strings.Contains(algorithm, "adobe.com"))
}

func isContentFile(uri string) bool {
	switch strings.ToLower(path.Ext(uri)) {
	case ".xhtml", ".html", ".htm", ".xml", ".css":
		return true
	}
	return false
}
