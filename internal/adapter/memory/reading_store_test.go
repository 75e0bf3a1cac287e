package memory

import (
	"context"
	"testing"

	"github.com/bornholm/readings/internal/core/model"
	"github.com/bornholm/readings/internal/core/port"
	"github.com/bornholm/readings/internal/core/port/testsuite"
)

func TestReadingStore(t *testing.T) {
	testsuite.TestReadingStore(t, func(t *testing.T, seeds []model.Fields) (port.ReadingStore, []model.ReadingID, error) {
		store := NewReadingStore()
		ids := store.Insert(context.Background(), seeds...)
		return store, ids, nil
	})
}
