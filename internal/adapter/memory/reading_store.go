package memory

import (
	"context"
	"slices"
	"strings"
	"sync"

	"github.com/bornholm/readings/internal/core/model"
	"github.com/bornholm/readings/internal/core/port"
	"github.com/pkg/errors"
	"github.com/rs/xid"
)

// ReadingStore keeps readings in memory, ordered by identifier. Identifiers
// are compared as strings.
type ReadingStore struct {
	mutex    sync.RWMutex
	readings []*model.Reading
}

// Insert stores the given documents and returns their generated identifiers,
// in insertion order.
func (s *ReadingStore) Insert(ctx context.Context, docs ...model.Fields) []model.ReadingID {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	ids := make([]model.ReadingID, 0, len(docs))
	for _, fields := range docs {
		id := model.ReadingID(xid.New().String())
		s.insert(model.NewReading(id, fields))
		ids = append(ids, id)
	}

	return ids
}

// Put stores readings with caller provided identifiers.
func (s *ReadingStore) Put(ctx context.Context, readings ...*model.Reading) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	for _, r := range readings {
		s.insert(r)
	}
}

func (s *ReadingStore) insert(r *model.Reading) {
	idx, found := slices.BinarySearchFunc(s.readings, r.ID(), compareReadingID)
	if found {
		s.readings[idx] = r
		return
	}

	s.readings = slices.Insert(s.readings, idx, r)
}

// QueryRange implements port.ReadingStore.
func (s *ReadingStore) QueryRange(ctx context.Context, rng model.IdentifierRange) ([]*model.Reading, error) {
	if err := s.ValidateRange(rng); err != nil {
		return nil, errors.WithStack(err)
	}

	s.mutex.RLock()
	defer s.mutex.RUnlock()

	start, _ := slices.BinarySearchFunc(s.readings, rng.Start, compareReadingID)

	readings := make([]*model.Reading, 0)
	for _, r := range s.readings[start:] {
		if r.ID() > rng.End {
			break
		}
		readings = append(readings, r)
	}

	return readings, nil
}

// ValidateRange implements port.ReadingStore.
func (s *ReadingStore) ValidateRange(rng model.IdentifierRange) error {
	if rng.Start == "" || rng.End == "" {
		return errors.Wrap(port.ErrInvalidRange, "empty bound")
	}

	if rng.Start > rng.End {
		return errors.Wrapf(port.ErrInvalidRange, "start '%s' is greater than end '%s'", rng.Start, rng.End)
	}

	return nil
}

// Ping implements port.ReadingStore.
func (s *ReadingStore) Ping(ctx context.Context) error {
	return nil
}

func compareReadingID(r *model.Reading, id model.ReadingID) int {
	return strings.Compare(string(r.ID()), string(id))
}

func NewReadingStore(readings ...*model.Reading) *ReadingStore {
	s := &ReadingStore{
		readings: make([]*model.Reading, 0, len(readings)),
	}

	for _, r := range readings {
		s.insert(r)
	}

	return s
}

var _ port.ReadingStore = &ReadingStore{}
