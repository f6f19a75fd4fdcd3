package capture

import (
	"fmt"
	"net"
	"net/http"
	"strconv"
	"strings"
	"unicode/utf8"
)

// FlattenHeaders collapses the transport header map into a single-valued,
// canonically cased map. Multi-valued headers are joined with ", ".
// Content-Length is merged in as a header entry even though Go strips it
// from Request.Header, so the stored record shows what was on the wire.
func FlattenHeaders(h http.Header, contentLength int64) map[string]string {
	headers := make(map[string]string, len(h)+1)
	for key, values := range h {
		headers[http.CanonicalHeaderKey(key)] = strings.Join(values, ", ")
	}
	if contentLength > 0 {
		if _, ok := headers["Content-Length"]; !ok {
			headers["Content-Length"] = strconv.FormatInt(contentLength, 10)
		}
	}
	return headers
}

// DecodeBody returns the body as text. Payloads that are not valid UTF-8
// are recorded as a deterministic placeholder instead of failing the
// capture.
func DecodeBody(raw []byte) string {
	if len(raw) == 0 {
		return ""
	}
	if !utf8.Valid(raw) {
		return fmt.Sprintf("[Binary data: %d bytes]", len(raw))
	}
	return string(raw)
}

// ClientIP prefers the first entry of X-Forwarded-For, falling back to
// the direct peer address.
func ClientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		first, _, _ := strings.Cut(forwarded, ",")
		return strings.TrimSpace(first)
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
