package services

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/natnat/flowershop_content_microservice/internal/adapter/memory"
	"github.com/natnat/flowershop_content_microservice/internal/adapter/sheets"
	"github.com/natnat/flowershop_content_microservice/internal/core/domain"
	"github.com/natnat/flowershop_content_microservice/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	clock   *fakeClock
	memory  *memory.Store
	durable *memory.Store
	metrics *recordingMetrics
	svc     *ContentService
}

func newFixture(t *testing.T, source ports.ContentSource) *fixture {
	t.Helper()
	clock := newFakeClock()
	f := &fixture{
		clock:   clock,
		memory:  memory.New(memory.WithClock(clock.Now)),
		durable: memory.New(memory.WithClock(clock.Now)),
		metrics: newRecordingMetrics(),
	}
	f.svc = f.service(source, f.memory)
	return f
}

// service builds another ContentService over the same durable tier, as a
// restarted process would.
func (f *fixture) service(source ports.ContentSource, mem ports.CachePort) *ContentService {
	return NewContentService(source, mem, f.durable, nopLogger{}, f.metrics, ContentConfig{
		UseAPI: true,
		TTL:    5 * time.Minute,
		Now:    f.clock.Now,
	})
}

func TestResolve_ProductsScenario(t *testing.T) {
	source := staticSource(fourProducts)
	f := newFixture(t, source)
	ctx := context.Background()

	res, err := f.svc.Resolve(ctx, domain.KeyProducts)
	require.NoError(t, err)
	assert.Equal(t, domain.SourceRemote, res.Source)
	assert.JSONEq(t, fourProducts, string(res.Data))
	assert.Equal(t, 1, source.Calls(domain.KeyProducts))
	assert.Equal(t, 1, f.memory.Len())
	assert.Equal(t, 1, f.durable.Len())

	f.clock.Advance(time.Minute)
	res, err = f.svc.Resolve(ctx, domain.KeyProducts)
	require.NoError(t, err)
	assert.Equal(t, domain.SourceMemory, res.Source)
	assert.JSONEq(t, fourProducts, string(res.Data))
	assert.Equal(t, 1, source.Calls(domain.KeyProducts), "cache hit must not reach the network")

	f.clock.Advance(5 * time.Minute)
	res, err = f.svc.Resolve(ctx, domain.KeyProducts)
	require.NoError(t, err)
	assert.Equal(t, domain.SourceRemote, res.Source)
	assert.Equal(t, 2, source.Calls(domain.KeyProducts))
}

func TestResolve_ExpiresExactlyAtTTL(t *testing.T) {
	source := staticSource(`{"currency":"VND"}`)
	f := newFixture(t, source)
	ctx := context.Background()

	_, err := f.svc.Resolve(ctx, domain.KeySiteConfig)
	require.NoError(t, err)

	f.clock.Advance(5*time.Minute - time.Millisecond)
	res, err := f.svc.Resolve(ctx, domain.KeySiteConfig)
	require.NoError(t, err)
	assert.Equal(t, domain.SourceMemory, res.Source)

	f.clock.Advance(time.Millisecond)
	res, err = f.svc.Resolve(ctx, domain.KeySiteConfig)
	require.NoError(t, err)
	assert.Equal(t, domain.SourceRemote, res.Source)
	assert.Equal(t, 2, source.Calls(domain.KeySiteConfig))
}

func TestResolve_KeysAreIndependent(t *testing.T) {
	source := staticSource(`[{"id":1}]`)
	f := newFixture(t, source)
	ctx := context.Background()

	for _, key := range []domain.ContentKey{domain.KeyProducts, domain.KeyFeatures, domain.KeyProducts, domain.KeyFeatures} {
		_, err := f.svc.Resolve(ctx, key)
		require.NoError(t, err)
	}
	assert.Equal(t, 1, source.Calls(domain.KeyProducts))
	assert.Equal(t, 1, source.Calls(domain.KeyFeatures))
}

func TestClearAll_ForcesNetworkCall(t *testing.T) {
	source := staticSource(fourProducts)
	f := newFixture(t, source)
	ctx := context.Background()

	_, err := f.svc.Resolve(ctx, domain.KeyProducts)
	require.NoError(t, err)

	f.svc.ClearAll(ctx)
	assert.Equal(t, 0, f.memory.Len())
	assert.Equal(t, 0, f.durable.Len())

	res, err := f.svc.Resolve(ctx, domain.KeyProducts)
	require.NoError(t, err)
	assert.Equal(t, domain.SourceRemote, res.Source)
	assert.Equal(t, 2, source.Calls(domain.KeyProducts))
}

func TestClearAll_IdempotentAndSwallowsDurableErrors(t *testing.T) {
	clock := newFakeClock()
	svc := NewContentService(staticSource(`[1]`), memory.New(), failingCache{}, nopLogger{}, newRecordingMetrics(), ContentConfig{
		UseAPI: true,
		Now:    clock.Now,
	})

	assert.NotPanics(t, func() {
		svc.ClearAll(context.Background())
		svc.ClearAll(context.Background())
	})
}

func TestResolve_OfflineModeNeverCallsNetwork(t *testing.T) {
	tests := []struct {
		name       string
		useAPI     bool
		configured bool
	}{
		{name: "feature flag off", useAPI: false, configured: true},
		{name: "no endpoint url", useAPI: true, configured: false},
		{name: "both off", useAPI: false, configured: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			source := staticSource(fourProducts)
			source.configured = tt.configured
			svc := NewContentService(source, memory.New(), memory.New(), nopLogger{}, newRecordingMetrics(), ContentConfig{
				UseAPI: tt.useAPI,
			})

			assert.False(t, svc.Enabled())
			for _, key := range append(domain.SectionKeys(), domain.KeyAll) {
				res, err := svc.Resolve(context.Background(), key)
				require.NoError(t, err)
				assert.False(t, res.Found())
				assert.Equal(t, domain.SourceNone, res.Source)
				assert.Zero(t, source.Calls(key))
			}
		})
	}
}

func TestResolve_NilSourceIsOffline(t *testing.T) {
	svc := NewContentService(nil, memory.New(), nil, nopLogger{}, newRecordingMetrics(), ContentConfig{UseAPI: true})

	res, err := svc.Resolve(context.Background(), domain.KeyProducts)
	require.NoError(t, err)
	assert.Equal(t, domain.SourceNone, res.Source)
}

func TestResolve_DurableRoundTripAfterRestart(t *testing.T) {
	source := staticSource(fourProducts)
	f := newFixture(t, source)
	ctx := context.Background()

	_, err := f.svc.Resolve(ctx, domain.KeyProducts)
	require.NoError(t, err)

	// Restart: fresh memory tier, same durable tier.
	f.clock.Advance(2 * time.Minute)
	restartedMemory := memory.New(memory.WithClock(f.clock.Now))
	restarted := f.service(source, restartedMemory)

	res, err := restarted.Resolve(ctx, domain.KeyProducts)
	require.NoError(t, err)
	assert.Equal(t, domain.SourceDurable, res.Source)
	assert.JSONEq(t, fourProducts, string(res.Data))
	assert.Equal(t, 1, source.Calls(domain.KeyProducts))
	assert.Equal(t, 1, restartedMemory.Len(), "durable hit must be promoted")

	res, err = restarted.Resolve(ctx, domain.KeyProducts)
	require.NoError(t, err)
	assert.Equal(t, domain.SourceMemory, res.Source)
	assert.Equal(t, 1, source.Calls(domain.KeyProducts))
}

func TestResolve_PromotedEntryKeepsOriginalTimestamp(t *testing.T) {
	source := staticSource(fourProducts)
	f := newFixture(t, source)
	ctx := context.Background()

	first, err := f.svc.Resolve(ctx, domain.KeyProducts)
	require.NoError(t, err)

	f.clock.Advance(4 * time.Minute)
	restarted := f.service(source, memory.New(memory.WithClock(f.clock.Now)))
	res, err := restarted.Resolve(ctx, domain.KeyProducts)
	require.NoError(t, err)
	assert.Equal(t, domain.SourceDurable, res.Source)
	assert.True(t, first.FetchedAt.Equal(res.FetchedAt))

	// One more minute and the promoted copy is as stale as the original.
	f.clock.Advance(time.Minute)
	res, err = restarted.Resolve(ctx, domain.KeyProducts)
	require.NoError(t, err)
	assert.Equal(t, domain.SourceRemote, res.Source)
	assert.Equal(t, 2, source.Calls(domain.KeyProducts))
}

func TestResolve_ExpiredDurableEntryIsEvicted(t *testing.T) {
	source := staticSource(fourProducts)
	f := newFixture(t, source)
	ctx := context.Background()

	stale, err := domain.CacheEntry{
		Data:      json.RawMessage(`[{"id":9}]`),
		Timestamp: f.clock.Now().Add(-10 * time.Minute),
	}.Encode()
	require.NoError(t, err)
	require.NoError(t, f.durable.Set(ctx, domain.KeyProducts.String(), stale, 0))

	res, err := f.svc.Resolve(ctx, domain.KeyProducts)
	require.NoError(t, err)
	assert.Equal(t, domain.SourceRemote, res.Source)
	assert.Equal(t, 1, f.metrics.lookupCount(tierDurable, "expired"))
	assert.Equal(t, 1, source.Calls(domain.KeyProducts))
}

func TestResolve_UnreadableDurableEntryIsTreatedAsMiss(t *testing.T) {
	source := staticSource(fourProducts)
	f := newFixture(t, source)
	ctx := context.Background()

	require.NoError(t, f.durable.Set(ctx, domain.KeyProducts.String(), []byte("not json"), 0))

	res, err := f.svc.Resolve(ctx, domain.KeyProducts)
	require.NoError(t, err)
	assert.Equal(t, domain.SourceRemote, res.Source)
	assert.Equal(t, 1, f.metrics.lookupCount(tierDurable, "error"))
}

func TestResolve_StatusErrorIsNotCached(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	f := newFixture(t, sheets.NewClient(server.URL, time.Second))
	ctx := context.Background()

	_, err := f.svc.Resolve(ctx, domain.KeyProducts)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrRemote))

	var remoteErr *domain.RemoteError
	require.True(t, errors.As(err, &remoteErr))
	assert.Equal(t, domain.KindStatus, remoteErr.Kind)
	assert.Equal(t, http.StatusInternalServerError, remoteErr.StatusCode)

	assert.Equal(t, 0, f.memory.Len())
	assert.Equal(t, 0, f.durable.Len())
}

func TestResolve_NoNegativeCaching(t *testing.T) {
	var mu sync.Mutex
	fail := true
	source := newFakeSource(func(key domain.ContentKey) (json.RawMessage, bool, error) {
		mu.Lock()
		defer mu.Unlock()
		if fail {
			return nil, false, &domain.RemoteError{Key: key, Kind: domain.KindStatus, StatusCode: 500, Message: "HTTP error! status: 500"}
		}
		return json.RawMessage(fourProducts), true, nil
	})
	f := newFixture(t, source)
	ctx := context.Background()

	_, err := f.svc.Resolve(ctx, domain.KeyProducts)
	require.Error(t, err)

	mu.Lock()
	fail = false
	mu.Unlock()

	res, err := f.svc.Resolve(ctx, domain.KeyProducts)
	require.NoError(t, err)
	assert.Equal(t, domain.SourceRemote, res.Source)
	assert.Equal(t, 2, source.Calls(domain.KeyProducts))
}

func TestResolve_SuccessFalseCarriesMessageVerbatim(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":false,"error":"quota exceeded"}`))
	}))
	defer server.Close()

	f := newFixture(t, sheets.NewClient(server.URL, time.Second))

	_, err := f.svc.Resolve(context.Background(), domain.KeyTestimonials)
	require.Error(t, err)

	var remoteErr *domain.RemoteError
	require.True(t, errors.As(err, &remoteErr))
	assert.Equal(t, "quota exceeded", remoteErr.Message)
	assert.Equal(t, domain.KindProtocol, remoteErr.Kind)
	assert.Equal(t, 0, f.memory.Len())
	assert.Equal(t, 0, f.durable.Len())
}

func TestResolve_MissingDataIsNoUpdate(t *testing.T) {
	source := newFakeSource(func(domain.ContentKey) (json.RawMessage, bool, error) {
		return nil, false, nil
	})
	f := newFixture(t, source)

	res, err := f.svc.Resolve(context.Background(), domain.KeyAbout)
	require.NoError(t, err)
	assert.False(t, res.Found())
	assert.Equal(t, 0, f.memory.Len())
	assert.Equal(t, 0, f.durable.Len())

	_, err = f.svc.Resolve(context.Background(), domain.KeyAbout)
	require.NoError(t, err)
	assert.Equal(t, 2, source.Calls(domain.KeyAbout))
}

func TestResolve_DurableWriteFailureIsSwallowed(t *testing.T) {
	clock := newFakeClock()
	mem := memory.New(memory.WithClock(clock.Now))
	source := staticSource(fourProducts)
	svc := NewContentService(source, mem, failingCache{}, nopLogger{}, newRecordingMetrics(), ContentConfig{
		UseAPI: true,
		Now:    clock.Now,
	})

	res, err := svc.Resolve(context.Background(), domain.KeyProducts)
	require.NoError(t, err)
	assert.Equal(t, domain.SourceRemote, res.Source)
	assert.Equal(t, 1, mem.Len())
}

func TestResolve_ConcurrentMissesShareOneRequest(t *testing.T) {
	release := make(chan struct{})
	source := newFakeSource(func(domain.ContentKey) (json.RawMessage, bool, error) {
		<-release
		return json.RawMessage(fourProducts), true, nil
	})
	f := newFixture(t, source)

	const callers = 8
	var wg sync.WaitGroup
	results := make([]domain.Resolution, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			res, err := f.svc.Resolve(context.Background(), domain.KeyProducts)
			assert.NoError(t, err)
			results[i] = res
		}(i)
	}

	time.Sleep(20 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.Equal(t, 1, source.Calls(domain.KeyProducts))
	for _, res := range results {
		assert.True(t, res.Found())
		assert.JSONEq(t, fourProducts, string(res.Data))
	}
}

func TestResolve_CancelledCallerDoesNotFailSharedFetch(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	source := newFakeSource(nil)
	source.respondCtx = func(ctx context.Context, _ domain.ContentKey) (json.RawMessage, bool, error) {
		close(started)
		select {
		case <-release:
			return json.RawMessage(fourProducts), true, nil
		case <-ctx.Done():
			return nil, false, &domain.RemoteError{Key: domain.KeyProducts, Kind: domain.KindNetwork, Message: ctx.Err().Error(), Err: ctx.Err()}
		}
	}
	f := newFixture(t, source)

	firstCtx, cancel := context.WithCancel(context.Background())
	go func() {
		_, _ = f.svc.Resolve(firstCtx, domain.KeyProducts)
	}()
	<-started

	type outcome struct {
		res domain.Resolution
		err error
	}
	second := make(chan outcome, 1)
	go func() {
		res, err := f.svc.Resolve(context.Background(), domain.KeyProducts)
		second <- outcome{res, err}
	}()

	time.Sleep(20 * time.Millisecond)
	cancel()
	time.Sleep(20 * time.Millisecond)
	close(release)

	got := <-second
	require.NoError(t, got.err)
	assert.True(t, got.res.Found())
	assert.JSONEq(t, fourProducts, string(got.res.Data))
	assert.Equal(t, 1, source.Calls(domain.KeyProducts))
}

func TestNewContentService_DefaultTTL(t *testing.T) {
	svc := NewContentService(staticSource(`[]`), memory.New(), nil, nopLogger{}, newRecordingMetrics(), ContentConfig{UseAPI: true})
	assert.Equal(t, DefaultTTL, svc.TTL())
}
