package epubdoc

import (
	"encoding/xml"
	"strings"
)

type encryptionXML struct {
	XMLName       xml.Name `xml:"encryption"`
	EncryptedData []struct {
		Method struct {
			Algorithm string `xml:"Algorithm,attr"`
		} `xml:"EncryptionMethod"`
		Cipher struct {
			Reference struct {
				URI string `xml:"URI,attr"`
			} `xml:"CipherReference"`
		} `xml:"CipherData"`
	} `xml:"EncryptedData"`
}

// detectDRM reports why the archive appears to carry encrypted content, or
// "" when it does not. Font obfuscation is not DRM.
func detectDRM(e Entries) string {
	if e.Has("META-INF/rights.xml") {
		return "META-INF/rights.xml present; content may be DRM-protected"
	}

	if !e.Has("META-INF/encryption.xml") {
		return ""
	}

	data, err := e.ReadBytes("META-INF/encryption.xml")
	if err != nil {
		return ""
	}

	var enc encryptionXML
	if err := xml.Unmarshal(data, &enc); err != nil {
		return "META-INF/encryption.xml is unreadable; content may be encrypted"
	}

	for _, ed := range enc.EncryptedData {
		if isFontObfuscation(ed.Method.Algorithm) {
			continue
		}
		if uri := ed.Cipher.Reference.URI; isContentFile(uri) {
			return "encrypted content document: " + uri
		}
	}

	return ""
}

func isFontObfuscation(algorithm string) bool {
	if !strings.Contains(algorithm, "obfuscation") {
		return false
	}
	return strings.Contains(algorithm, "adobe.com") || strings.Contains(algorithm, "idpf.org")
}

func isContentFile(uri string) bool {
	uri = strings.ToLower(uri)
	for _, ext := range []string{".xhtml", ".html", ".htm", ".xml", ".css"} {
		if strings.HasSuffix(uri, ext) {
			return true
		}
	}
	return false
}
