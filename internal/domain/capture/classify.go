package capture

import (
	"net/http"
	"strings"
)

// MethodBucket is the analytics histogram bucket for an HTTP method.
type MethodBucket string

const (
	MethodGet    MethodBucket = "get"
	MethodPost   MethodBucket = "post"
	MethodPut    MethodBucket = "put"
	MethodPatch  MethodBucket = "patch"
	MethodDelete MethodBucket = "delete"
	MethodOther  MethodBucket = "other"
)

// ContentFamily is the analytics histogram bucket for a content type.
type ContentFamily string

const (
	ContentJSON  ContentFamily = "json"
	ContentXML   ContentFamily = "xml"
	ContentForm  ContentFamily = "form"
	ContentText  ContentFamily = "text"
	ContentOther ContentFamily = "other"
)

// contentFamilies is checked in order; first substring match wins. The
// fixed order keeps classification deterministic for types that carry
// more than one token (e.g. "application/json+xml" counts as json).
var contentFamilies = []struct {
	token  string
	family ContentFamily
}{
	{"json", ContentJSON},
	{"xml", ContentXML},
	{"form", ContentForm},
	{"text", ContentText},
}

func BucketForMethod(method string) MethodBucket {
	switch strings.ToUpper(method) {
	case http.MethodGet:
		return MethodGet
	case http.MethodPost:
		return MethodPost
	case http.MethodPut:
		return MethodPut
	case http.MethodPatch:
		return MethodPatch
	case http.MethodDelete:
		return MethodDelete
	default:
		return MethodOther
	}
}

func FamilyForContentType(contentType string) ContentFamily {
	ct := strings.ToLower(contentType)
	for _, c := range contentFamilies {
		if strings.Contains(ct, c.token) {
			return c.family
		}
	}
	return ContentOther
}
