package service

import (
	"context"
	"encoding/json"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/bornholm/readings/internal/adapter/memory"
	"github.com/bornholm/readings/internal/catalog"
	"github.com/bornholm/readings/internal/core/model"
	"github.com/bornholm/readings/internal/core/port"
	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"
)

func TestReadingsManagerGetReadings(t *testing.T) {
	ctx := context.Background()

	manager, store := newTestReadingsManager(t)

	result, err := manager.GetReadings(ctx, "Frozen Onion")
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	t.Logf("result: %s", spew.Sdump(result))

	if e, g := model.ItemName("Frozen Onion"), result.Item; e != g {
		t.Errorf("result.Item: expected %s, got %s", e, g)
	}

	if e, g := 3, result.Count; e != g {
		t.Errorf("result.Count: expected %d, got %d", e, g)
	}

	if e, g := result.Count, len(result.Readings); e != g {
		t.Errorf("len(result.Readings): expected %d, got %d", e, g)
	}

	expectedIDs := []model.ReadingID{"b1", "b2", "b3"}
	for i, r := range result.Readings {
		if e, g := expectedIDs[i], r.ID(); e != g {
			t.Errorf("result.Readings[%d].ID(): expected %s, got %s", i, e, g)
		}
	}

	if e, g := int64(1), store.queries.Load(); e != g {
		t.Errorf("store.queries: expected %d, got %d", e, g)
	}
}

func TestReadingsManagerUnknownItem(t *testing.T) {
	ctx := context.Background()

	manager, store := newTestReadingsManager(t)

	_, err := manager.GetReadings(ctx, "Banana")
	if !errors.Is(err, port.ErrNotFound) {
		t.Fatalf("err: expected %v, got %v", port.ErrNotFound, err)
	}

	if !strings.Contains(err.Error(), "Banana") {
		t.Errorf("err.Error(): expected message to contain 'Banana', got '%s'", err.Error())
	}

	if e, g := int64(0), store.queries.Load(); e != g {
		t.Errorf("store.queries: expected %d, got %d", e, g)
	}
}

func TestReadingsManagerEmptyItem(t *testing.T) {
	ctx := context.Background()

	manager, store := newTestReadingsManager(t)

	_, err := manager.GetReadings(ctx, "")
	if !errors.Is(err, ErrInvalidItem) {
		t.Fatalf("err: expected %v, got %v", ErrInvalidItem, err)
	}

	if e, g := int64(0), store.queries.Load(); e != g {
		t.Errorf("store.queries: expected %d, got %d", e, g)
	}
}

func TestReadingsManagerStoreFailure(t *testing.T) {
	ctx := context.Background()

	items, err := catalog.New(catalog.Entry{Name: "Frozen Onion", Range: model.IdentifierRange{Start: "b0", End: "b9"}})
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	storeErr := errors.New("connection refused")
	manager := NewReadingsManager(items, &failingStore{err: storeErr})

	_, err = manager.GetReadings(ctx, "Frozen Onion")
	if !errors.Is(err, storeErr) {
		t.Fatalf("err: expected %v, got %v", storeErr, err)
	}

	if errors.Is(err, port.ErrNotFound) {
		t.Errorf("store failure should not be reported as not found")
	}
}

func TestReadingsManagerIdempotence(t *testing.T) {
	ctx := context.Background()

	manager, _ := newTestReadingsManager(t)

	first, err := manager.GetReadings(ctx, "Ice Gel Bag")
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	second, err := manager.GetReadings(ctx, "Ice Gel Bag")
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	firstJSON, err := json.Marshal(first)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	secondJSON, err := json.Marshal(second)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := string(firstJSON), string(secondJSON); e != g {
		t.Errorf("second result: expected %s, got %s", e, g)
	}
}

type countingStore struct {
	port.ReadingStore
	queries atomic.Int64
}

func (s *countingStore) QueryRange(ctx context.Context, rng model.IdentifierRange) ([]*model.Reading, error) {
	s.queries.Add(1)
	return s.ReadingStore.QueryRange(ctx, rng)
}

type failingStore struct {
	err error
}

func (s *failingStore) QueryRange(ctx context.Context, rng model.IdentifierRange) ([]*model.Reading, error) {
	return nil, s.err
}

func (s *failingStore) ValidateRange(rng model.IdentifierRange) error {
	return nil
}

func (s *failingStore) Ping(ctx context.Context) error {
	return s.err
}

func newTestReadingsManager(t *testing.T) (*ReadingsManager, *countingStore) {
	items, err := catalog.New(
		catalog.Entry{Name: "Ice Gel Bag", Range: model.IdentifierRange{Start: "a1", End: "a2"}},
		catalog.Entry{Name: "Frozen Onion", Range: model.IdentifierRange{Start: "b1", End: "b3"}},
	)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	readings := []*model.Reading{}
	for _, id := range []model.ReadingID{"b3", "a1", "b0", "a2", "b1", "c1", "b2", "b4"} {
		readings = append(readings, model.NewReading(id, model.Fields{
			{Key: "temperature", Value: -18.0},
		}))
	}

	store := &countingStore{
		ReadingStore: memory.NewReadingStore(readings...),
	}

	return NewReadingsManager(items, store), store
}
