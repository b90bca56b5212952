package services

import (
	"context"
	"encoding/json"
	"fmt"
	"reflect"
	"sync"

	"github.com/natnat/flowershop_content_microservice/internal/core/domain"
	"github.com/natnat/flowershop_content_microservice/internal/core/ports"

	"github.com/go-playground/validator/v10"
)

// Snapshot is the state a binding exposes to its consumer.
type Snapshot[T any] struct {
	Data    T
	Loading bool
	Err     error
}

// ContentBinding is the key-erased view of a Binding used by the HTTP layer.
type ContentBinding interface {
	Key() domain.ContentKey
	Refetch(ctx context.Context) error
	Current() Snapshot[any]
}

// Binding holds the best known value for one content key. It starts with a
// caller-supplied default and only replaces it with a decoded, valid,
// non-empty remote value. Errors never overwrite data.
type Binding[T any] struct {
	content  ports.ContentService
	key      domain.ContentKey
	validate *validator.Validate
	logger   ports.LoggerPort

	mu      sync.RWMutex
	data    T
	loading bool
	err     error
}

func NewBinding[T any](
	content ports.ContentService,
	key domain.ContentKey,
	fallback T,
	validate *validator.Validate,
	logger ports.LoggerPort,
) *Binding[T] {
	return &Binding[T]{
		content:  content,
		key:      key,
		validate: validate,
		logger:   logger,
		data:     fallback,
		loading:  true,
	}
}

func (b *Binding[T]) Key() domain.ContentKey {
	return b.key
}

func (b *Binding[T]) Snapshot() Snapshot[T] {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return Snapshot[T]{Data: b.data, Loading: b.loading, Err: b.err}
}

func (b *Binding[T]) Current() Snapshot[any] {
	s := b.Snapshot()
	return Snapshot[any]{Data: s.Data, Loading: s.Loading, Err: s.Err}
}

// Refetch resolves the key again and updates the binding. The returned error
// is also recorded in the snapshot.
func (b *Binding[T]) Refetch(ctx context.Context) error {
	if !b.content.Enabled() {
		b.mu.Lock()
		b.loading = false
		b.mu.Unlock()
		return nil
	}

	b.mu.Lock()
	b.loading = true
	b.err = nil
	b.mu.Unlock()

	value, ok, err := b.load(ctx)

	b.mu.Lock()
	defer b.mu.Unlock()
	b.loading = false
	if err != nil {
		b.err = err
		b.logger.Warn("Keeping current content after failed fetch", map[string]interface{}{
			"key":   b.key.String(),
			"error": err.Error(),
		})
		return err
	}
	if ok {
		b.data = value
	}
	return nil
}

func (b *Binding[T]) load(ctx context.Context) (T, bool, error) {
	const op = "Binding.Refetch"
	var zero T

	res, err := b.content.Resolve(ctx, b.key)
	if err != nil {
		return zero, false, err
	}
	if !res.Found() || !hasData(res.Data) {
		return zero, false, nil
	}

	var value T
	if err := json.Unmarshal(res.Data, &value); err != nil {
		return zero, false, fmt.Errorf("%s: decode %s: %w", op, b.key, err)
	}
	if err := b.check(value); err != nil {
		return zero, false, fmt.Errorf("%s: validate %s: %w", op, b.key, err)
	}
	return value, true, nil
}

// check runs struct validation on a struct value or on every struct element
// of a slice.
func (b *Binding[T]) check(value T) error {
	if b.validate == nil {
		return nil
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Struct:
		return b.validate.Struct(value)
	case reflect.Slice:
		for i := 0; i < rv.Len(); i++ {
			elem := rv.Index(i)
			if elem.Kind() == reflect.Struct {
				if err := b.validate.Struct(elem.Interface()); err != nil {
					return fmt.Errorf("item %d: %w", i, err)
				}
			}
		}
	}
	return nil
}

// hasData is true for a non-empty JSON array or object.
func hasData(raw json.RawMessage) bool {
	var v interface{}
	if err := json.Unmarshal(raw, &v); err != nil {
		return false
	}
	switch t := v.(type) {
	case []interface{}:
		return len(t) > 0
	case map[string]interface{}:
		return len(t) > 0
	default:
		return false
	}
}
