package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseContentKey(t *testing.T) {
	for _, raw := range []string{"all", "products", "siteContent", "howItWorks"} {
		key, err := ParseContentKey(raw)
		require.NoError(t, err, raw)
		assert.Equal(t, raw, key.String())
	}

	for _, raw := range []string{"", "Products", "orders", "site_content"} {
		_, err := ParseContentKey(raw)
		assert.ErrorIs(t, err, ErrUnknownKey, raw)
	}
}

func TestSectionKeys(t *testing.T) {
	keys := SectionKeys()
	assert.Len(t, keys, 10)
	assert.NotContains(t, keys, KeyAll)

	keys[0] = "mutated"
	assert.Equal(t, KeyProducts, SectionKeys()[0])
}

func TestCacheEntry_EncodeDecode(t *testing.T) {
	ts := time.UnixMilli(1_700_000_000_123)
	entry := CacheEntry{Data: json.RawMessage(`[{"id":1}]`), Timestamp: ts}

	raw, err := entry.Encode()
	require.NoError(t, err)
	assert.JSONEq(t, `{"data":[{"id":1}],"timestamp":1700000000123}`, string(raw))

	decoded, err := DecodeCacheEntry(raw)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":1}]`, string(decoded.Data))
	assert.True(t, ts.Equal(decoded.Timestamp))
}

func TestDecodeCacheEntry_Rejects(t *testing.T) {
	for _, raw := range []string{`not json`, `{"timestamp":1}`, `[]`} {
		_, err := DecodeCacheEntry([]byte(raw))
		assert.Error(t, err, raw)
	}
}

func TestCacheEntry_Fresh(t *testing.T) {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	entry := CacheEntry{Data: json.RawMessage(`1`), Timestamp: base}
	ttl := 5 * time.Minute

	assert.True(t, entry.Fresh(base, ttl))
	assert.True(t, entry.Fresh(base.Add(4*time.Minute), ttl))
	assert.False(t, entry.Fresh(base.Add(5*time.Minute), ttl))
	assert.False(t, entry.Fresh(base.Add(6*time.Minute), ttl))

	assert.Equal(t, 2*time.Minute, entry.Remaining(base.Add(3*time.Minute), ttl))
}

func TestResolution_Found(t *testing.T) {
	assert.False(t, Resolution{Source: SourceNone}.Found())
	assert.False(t, Resolution{Source: SourceRemote}.Found())
	assert.True(t, Resolution{Source: SourceMemory, Data: json.RawMessage(`[1]`)}.Found())
}

func TestRemoteError(t *testing.T) {
	cause := errors.New("connection refused")
	err := fmt.Errorf("resolve: %w", &RemoteError{
		Key:     KeyProducts,
		Kind:    KindNetwork,
		Message: cause.Error(),
		Err:     cause,
	})

	assert.ErrorIs(t, err, ErrRemote)
	assert.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, ErrCacheMiss)

	var remoteErr *RemoteError
	require.True(t, errors.As(err, &remoteErr))
	assert.Equal(t, "fetch products (network): connection refused", remoteErr.Error())
}

func TestFallbackDataIsValid(t *testing.T) {
	all := FallbackAll()
	require.NoError(t, validator.New().Struct(all))

	assert.Len(t, all.Products, 16)
	assert.Equal(t, "VND", all.SiteConfig.Currency)
	assert.NotEmpty(t, all.SiteContent)

	// Each call returns a fresh copy.
	all.Products[0].Name = "changed"
	assert.NotEqual(t, "changed", FallbackProducts()[0].Name)
}
