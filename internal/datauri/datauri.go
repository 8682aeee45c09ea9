// Package datauri encodes and decodes base64 data-URIs of the form
// data:<mime>;base64,<payload>.
package datauri

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

const (
	scheme       = "data:"
	base64Marker = ";base64"
)

// ErrMalformed is returned by Parse for strings that are not base64 data-URIs.
var ErrMalformed = errors.New("malformed data-URI")

// Encode returns data as a base64 data-URI. An empty mimeType is replaced by
// the type sniffed from the content.
func Encode(mimeType string, data []byte) string {
	if mimeType == "" {
		mimeType = Detect(data)
	}
	var b strings.Builder
	b.Grow(len(scheme) + len(mimeType) + len(base64Marker) + 1 + base64.StdEncoding.EncodedLen(len(data)))
	b.WriteString(scheme)
	b.WriteString(mimeType)
	b.WriteString(base64Marker)
	b.WriteByte(',')
	b.WriteString(base64.StdEncoding.EncodeToString(data))
	return b.String()
}

// Parse splits a base64 data-URI into its declared MIME type and decoded bytes.
// Media type parameters other than base64 (e.g. charset) are dropped.
func Parse(uri string) (string, []byte, error) {
	if !strings.HasPrefix(uri, scheme) {
		return "", nil, fmt.Errorf("%w: missing %q prefix", ErrMalformed, scheme)
	}
	header, payload, ok := strings.Cut(uri[len(scheme):], ",")
	if !ok {
		return "", nil, fmt.Errorf("%w: missing payload separator", ErrMalformed)
	}
	if !strings.HasSuffix(header, base64Marker) {
		return "", nil, fmt.Errorf("%w: only base64 payloads are supported", ErrMalformed)
	}

	mimeType, _, _ := strings.Cut(strings.TrimSuffix(header, base64Marker), ";")
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return mimeType, data, nil
}

// Detect sniffs the MIME type of data, without parameters.
func Detect(data []byte) string {
	mt := mimetype.Detect(data).String()
	base, _, _ := strings.Cut(mt, ";")
	return base
}
