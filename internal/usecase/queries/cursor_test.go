//go:build unit

package queries_test

import (
	"encoding/base64"
	"testing"
	"time"

	"hooklens/internal/usecase/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCursorRoundTrip(t *testing.T) {
	// Microsecond precision matches what the store hands back.
	at := time.Date(2025, 3, 14, 9, 26, 53, 589793000, time.UTC)
	encoded := queries.EncodeAfterCursor(at, 42)

	gotTime, gotID, err := queries.DecodeAfterCursor(encoded)
	require.NoError(t, err)
	assert.True(t, at.Equal(gotTime), "want %v, got %v", at, gotTime)
	assert.Equal(t, int64(42), gotID)
}

func TestDecodeAfterCursor_Invalid(t *testing.T) {
	cases := []struct {
		name   string
		cursor string
	}{
		{name: "empty", cursor: ""},
		{name: "not base64url", cursor: "!!!"},
		{name: "missing version", cursor: base64.URLEncoding.EncodeToString([]byte("1234-5"))},
		{name: "wrong version", cursor: base64.URLEncoding.EncodeToString([]byte("v2:1234-5"))},
		{name: "missing separator", cursor: base64.URLEncoding.EncodeToString([]byte("v1:1234"))},
		{name: "garbage timestamp", cursor: base64.URLEncoding.EncodeToString([]byte("v1:abc-5"))},
		{name: "garbage id", cursor: base64.URLEncoding.EncodeToString([]byte("v1:1234-xyz"))},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := queries.DecodeAfterCursor(tc.cursor)
			assert.Error(t, err)
		})
	}
}

func TestValidateLimit(t *testing.T) {
	assert.Equal(t, 20, queries.ValidateLimit(0))
	assert.Equal(t, 20, queries.ValidateLimit(-5))
	assert.Equal(t, 1, queries.ValidateLimit(1))
	assert.Equal(t, queries.MaxListLimit, queries.ValidateLimit(queries.MaxListLimit))
	assert.Equal(t, queries.MaxListLimit, queries.ValidateLimit(queries.MaxListLimit+1))
}
