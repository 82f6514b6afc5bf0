package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeCache struct {
	store  map[string]string
	setErr error
}

func (f *fakeCache) Set(_ context.Context, key string, value string, _ time.Duration) error {
	if f.setErr != nil {
		return f.setErr
	}
	f.store[key] = value
	return nil
}

func (f *fakeCache) Get(_ context.Context, key string, out *string) error {
	value, ok := f.store[key]
	if !ok {
		return errors.New("cache miss")
	}
	*out = value
	return nil
}

type fakeCollector struct {
	latencies map[string]int
	counts    map[string]int
}

func newFakeCollector() *fakeCollector {
	return &fakeCollector{latencies: map[string]int{}, counts: map[string]int{}}
}

func (f *fakeCollector) ObserveLatency(operation string, _ time.Duration) {
	f.latencies[operation]++
}

func (f *fakeCollector) IncrementCounter(operation, result string) {
	f.counts[operation+"/"+result]++
}

func TestMetricsDecorator_SetAndGet(t *testing.T) {
	inner := &fakeCache{store: map[string]string{}}
	collector := newFakeCollector()

	dec := NewMetricsDecorator[string](inner, collector)
	ctx := context.Background()

	assert.NoError(t, dec.Set(ctx, "key", "value", time.Minute))
	assert.Equal(t, 1, collector.counts["cache_set/ok"])
	assert.Equal(t, 1, collector.latencies["cache_set"])

	var got string
	assert.NoError(t, dec.Get(ctx, "key", &got))
	assert.Equal(t, "value", got)
	assert.Equal(t, 1, collector.counts["cache_get/hit"])
	assert.Equal(t, 1, collector.latencies["cache_get"])
}

func TestMetricsDecorator_MissAndError(t *testing.T) {
	inner := &fakeCache{store: map[string]string{}, setErr: errors.New("redis down")}
	collector := newFakeCollector()

	dec := NewMetricsDecorator[string](inner, collector)
	ctx := context.Background()

	assert.Error(t, dec.Set(ctx, "key", "value", time.Minute))
	assert.Equal(t, 1, collector.counts["cache_set/error"])

	var got string
	assert.Error(t, dec.Get(ctx, "absent", &got))
	assert.Equal(t, 1, collector.counts["cache_get/miss"])
}
