package domain

import (
	"encoding/json"
	"fmt"
	"time"
)

// ContentKey names one fetchable content resource. The fetcher treats it as
// an opaque string; the constants below are the resources the storefront
// knows how to render.
type ContentKey string

const (
	KeyAll          ContentKey = "all"
	KeyProducts     ContentKey = "products"
	KeyCategories   ContentKey = "categories"
	KeyTestimonials ContentKey = "testimonials"
	KeyFeatures     ContentKey = "features"
	KeySiteContent  ContentKey = "siteContent"
	KeySiteConfig   ContentKey = "siteConfig"
	KeyBestsellers  ContentKey = "bestsellers"
	KeyInstagram    ContentKey = "instagram"
	KeyAbout        ContentKey = "about"
	KeyHowItWorks   ContentKey = "howItWorks"
)

var knownKeys = []ContentKey{
	KeyProducts,
	KeyCategories,
	KeyTestimonials,
	KeyFeatures,
	KeySiteContent,
	KeySiteConfig,
	KeyBestsellers,
	KeyInstagram,
	KeyAbout,
	KeyHowItWorks,
}

// SectionKeys returns every per-section key, without the bulk "all" key.
func SectionKeys() []ContentKey {
	keys := make([]ContentKey, len(knownKeys))
	copy(keys, knownKeys)
	return keys
}

// ParseContentKey accepts any known key, including "all".
func ParseContentKey(raw string) (ContentKey, error) {
	key := ContentKey(raw)
	if key == KeyAll {
		return key, nil
	}
	for _, k := range knownKeys {
		if k == key {
			return key, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKey, raw)
}

func (k ContentKey) String() string {
	return string(k)
}

// CacheEntry is a content blob together with the moment it was fetched.
type CacheEntry struct {
	Data      json.RawMessage
	Timestamp time.Time
}

type cacheEntryWire struct {
	Data      json.RawMessage `json:"data"`
	Timestamp int64           `json:"timestamp"`
}

// Fresh reports whether the entry is still inside its ttl window at now.
func (e CacheEntry) Fresh(now time.Time, ttl time.Duration) bool {
	return now.Sub(e.Timestamp) < ttl
}

// Remaining is the time left before the entry goes stale.
func (e CacheEntry) Remaining(now time.Time, ttl time.Duration) time.Duration {
	return ttl - now.Sub(e.Timestamp)
}

// Encode serializes the entry as {"data":...,"timestamp":<unix ms>}.
func (e CacheEntry) Encode() ([]byte, error) {
	return json.Marshal(cacheEntryWire{
		Data:      e.Data,
		Timestamp: e.Timestamp.UnixMilli(),
	})
}

func DecodeCacheEntry(raw []byte) (CacheEntry, error) {
	var wire cacheEntryWire
	if err := json.Unmarshal(raw, &wire); err != nil {
		return CacheEntry{}, fmt.Errorf("decode cache entry: %w", err)
	}
	if len(wire.Data) == 0 {
		return CacheEntry{}, fmt.Errorf("decode cache entry: missing data")
	}
	return CacheEntry{
		Data:      wire.Data,
		Timestamp: time.UnixMilli(wire.Timestamp),
	}, nil
}

// Source tells where a resolved value came from.
type Source string

const (
	SourceNone    Source = "none"
	SourceMemory  Source = "memory"
	SourceDurable Source = "durable"
	SourceRemote  Source = "remote"
)

// Resolution is the outcome of resolving a content key. A resolution with
// SourceNone carries no data: the caller keeps whatever value it already has.
type Resolution struct {
	Key       ContentKey
	Data      json.RawMessage
	Source    Source
	FetchedAt time.Time
}

func (r Resolution) Found() bool {
	return r.Source != SourceNone && len(r.Data) > 0
}
