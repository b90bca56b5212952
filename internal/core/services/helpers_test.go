package services

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/natnat/flowershop_content_microservice/internal/core/domain"

	"github.com/gin-gonic/gin"
)

type nopLogger struct{}

func (nopLogger) Info(string, map[string]interface{})  {}
func (nopLogger) Error(string, map[string]interface{}) {}
func (nopLogger) Debug(string, map[string]interface{}) {}
func (nopLogger) Warn(string, map[string]interface{})  {}

type lookupKey struct {
	tier   string
	result string
}

type recordingMetrics struct {
	mu      sync.Mutex
	lookups map[lookupKey]int
	fetches map[string]int
}

func newRecordingMetrics() *recordingMetrics {
	return &recordingMetrics{
		lookups: make(map[lookupKey]int),
		fetches: make(map[string]int),
	}
}

func (m *recordingMetrics) IncrementCounter(string, map[string]string)               {}
func (m *recordingMetrics) RecordDuration(string, time.Duration, map[string]string) {}
func (m *recordingMetrics) RecordMetrics(*gin.Context, time.Time)                   {}

func (m *recordingMetrics) RecordCacheLookup(tier, result string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lookups[lookupKey{tier, result}]++
}

func (m *recordingMetrics) RecordRemoteFetch(outcome string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.fetches[outcome]++
}

func (m *recordingMetrics) lookupCount(tier, result string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lookups[lookupKey{tier, result}]
}

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2026, 3, 8, 9, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// fakeSource counts network calls and answers with whatever respond returns.
type fakeSource struct {
	mu         sync.Mutex
	calls      map[domain.ContentKey]int
	configured bool
	respond    func(key domain.ContentKey) (json.RawMessage, bool, error)
	// respondCtx, when set, takes precedence and sees the fetch context.
	respondCtx func(ctx context.Context, key domain.ContentKey) (json.RawMessage, bool, error)
}

func newFakeSource(respond func(key domain.ContentKey) (json.RawMessage, bool, error)) *fakeSource {
	return &fakeSource{
		calls:      make(map[domain.ContentKey]int),
		configured: true,
		respond:    respond,
	}
}

func staticSource(payload string) *fakeSource {
	return newFakeSource(func(domain.ContentKey) (json.RawMessage, bool, error) {
		return json.RawMessage(payload), true, nil
	})
}

func (s *fakeSource) Configured() bool {
	return s.configured
}

func (s *fakeSource) Fetch(ctx context.Context, key domain.ContentKey) (json.RawMessage, bool, error) {
	s.mu.Lock()
	s.calls[key]++
	s.mu.Unlock()
	if s.respondCtx != nil {
		return s.respondCtx(ctx, key)
	}
	return s.respond(key)
}

func (s *fakeSource) Calls(key domain.ContentKey) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[key]
}

// failingCache accepts reads as misses and rejects every write.
type failingCache struct{}

func (failingCache) Get(context.Context, string) ([]byte, error) {
	return nil, domain.ErrCacheMiss
}

func (failingCache) Set(context.Context, string, []byte, time.Duration) error {
	return errors.New("quota exceeded")
}

func (failingCache) Delete(context.Context, string) error { return nil }

func (failingCache) Clear(context.Context) error {
	return errors.New("storage unavailable")
}

const fourProducts = `[
	{"id":1,"name":"Hoa Hồng Đỏ","price":130000,"image":"/a.png","images":[],"category":"promo","stock":15},
	{"id":2,"name":"Hoa Tulip Hà Lan","price":80000,"image":"/b.png","images":[],"category":"promo","stock":20},
	{"id":3,"name":"Hoa Lily Trắng","price":150000,"image":"/c.png","images":[],"category":"promo","stock":8},
	{"id":4,"name":"Hoa Hướng Dương","price":100000,"image":"/d.png","images":[],"category":"promo","stock":25}
]`
