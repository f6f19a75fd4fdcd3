//go:build unit

package capture_test

import (
	"testing"

	"hooklens/internal/domain/capture"

	"github.com/stretchr/testify/assert"
)

func TestBucketForMethod(t *testing.T) {
	cases := []struct {
		method string
		want   capture.MethodBucket
	}{
		{"GET", capture.MethodGet},
		{"get", capture.MethodGet},
		{"POST", capture.MethodPost},
		{"PUT", capture.MethodPut},
		{"PATCH", capture.MethodPatch},
		{"DELETE", capture.MethodDelete},
		{"HEAD", capture.MethodOther},
		{"OPTIONS", capture.MethodOther},
		{"PROPFIND", capture.MethodOther},
		{"", capture.MethodOther},
	}
	for _, tc := range cases {
		t.Run(tc.method, func(t *testing.T) {
			assert.Equal(t, tc.want, capture.BucketForMethod(tc.method))
		})
	}
}

func TestFamilyForContentType(t *testing.T) {
	cases := []struct {
		name        string
		contentType string
		want        capture.ContentFamily
	}{
		{"plain json", "application/json", capture.ContentJSON},
		{"vendored json", "application/vnd.github+json", capture.ContentJSON},
		{"xml", "application/xml", capture.ContentXML},
		{"text xml", "text/xml", capture.ContentXML},
		{"form", "application/x-www-form-urlencoded", capture.ContentForm},
		{"multipart form", "multipart/form-data; boundary=x", capture.ContentForm},
		{"text", "text/plain", capture.ContentText},
		{"binary", "application/octet-stream", capture.ContentOther},
		{"empty", "", capture.ContentOther},
		{"uppercase", "APPLICATION/JSON", capture.ContentJSON},

		// Priority order when several tokens appear: json beats xml,
		// xml beats text.
		{"json wins over xml", "application/json+xml", capture.ContentJSON},
		{"xml wins over text", "text/xml", capture.ContentXML},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, capture.FamilyForContentType(tc.contentType))
		})
	}
}
