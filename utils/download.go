package utils

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
)

// maxFontSize caps the size of a font file loaded from disk or from the network.
const maxFontSize = 32 << 20

// DownloadFont downloads a TrueType or OpenType font and returns its content.
func DownloadFont(uri string) ([]byte, error) {
	res, err := http.Get(uri)
	if err != nil {
		return nil, fmt.Errorf("unable to download font file from URI: %s: %w", uri, err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unable to download font file from URI: %s, status %v", uri, res.Status)
	}
	data, err := io.ReadAll(io.LimitReader(res.Body, maxFontSize))
	if err != nil {
		return nil, fmt.Errorf("unable to read response body: %w", err)
	}
	if ctype := DetectContentType(data); !IsFontType(ctype) {
		return nil, fmt.Errorf("the downloaded file is not a valid font type: %s", ctype)
	}
	return data, nil
}

// LoadFont reads a TrueType or OpenType font file from disk.
func LoadFont(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("unable to open the font file: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxFontSize))
	if err != nil {
		return nil, fmt.Errorf("unable to read the font file: %w", err)
	}
	if ctype := DetectContentType(data); !IsFontType(ctype) {
		return nil, fmt.Errorf("%s is not a valid font type: %s", path, ctype)
	}
	return data, nil
}

// IsValidUrl tests a string to determine if it is a well-structured url or not.
func IsValidUrl(uri string) bool {
	_, err := url.ParseRequestURI(uri)
	if err != nil {
		return false
	}

	u, err := url.Parse(uri)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return false
	}

	return true
}

// DetectContentType detects the MIME type of the data.
func DetectContentType(data []byte) string {
	// Only the first 512 bytes are used to sniff the content type.
	if len(data) > 512 {
		data = data[:512]
	}
	// Always returns a valid content-type and "application/octet-stream" if no others seemed to match.
	return http.DetectContentType(data)
}

// IsFontType reports whether the MIME type is one of the font types Dear ImGui can rasterise.
func IsFontType(ctype string) bool {
	return strings.HasPrefix(ctype, "font/ttf") ||
		strings.HasPrefix(ctype, "font/otf") ||
		strings.HasPrefix(ctype, "font/collection")
}
