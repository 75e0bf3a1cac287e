package testsuite

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/bornholm/readings/internal/core/model"
	"github.com/bornholm/readings/internal/core/port"
	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"
)

// ReadingStoreFactory creates a store seeded with the given documents, in order.
// It must return the identifiers assigned to the seeded documents, in
// ascending store order.
type ReadingStoreFactory func(t *testing.T, seeds []model.Fields) (port.ReadingStore, []model.ReadingID, error)

func TestReadingStore(t *testing.T, factory ReadingStoreFactory) {
	type testCase struct {
		Name string
		Run  func(t *testing.T, ctx context.Context, store port.ReadingStore, ids []model.ReadingID) error
	}

	var testCases []testCase = []testCase{
		{
			Name: "InclusiveRange",
			Run: func(t *testing.T, ctx context.Context, store port.ReadingStore, ids []model.ReadingID) error {
				readings, err := store.QueryRange(ctx, model.IdentifierRange{Start: ids[1], End: ids[3]})
				if err != nil {
					return errors.WithStack(err)
				}

				t.Logf("readings: %s", spew.Sdump(readings))

				if e, g := 3, len(readings); e != g {
					t.Fatalf("len(readings): expected %d, got %d", e, g)
				}

				for i, r := range readings {
					if e, g := ids[i+1], r.ID(); e != g {
						t.Errorf("readings[%d].ID(): expected %s, got %s", i, e, g)
					}
				}

				return nil
			},
		},
		{
			Name: "SingleIdentifierRange",
			Run: func(t *testing.T, ctx context.Context, store port.ReadingStore, ids []model.ReadingID) error {
				readings, err := store.QueryRange(ctx, model.IdentifierRange{Start: ids[2], End: ids[2]})
				if err != nil {
					return errors.WithStack(err)
				}

				if e, g := 1, len(readings); e != g {
					t.Fatalf("len(readings): expected %d, got %d", e, g)
				}

				if e, g := ids[2], readings[0].ID(); e != g {
					t.Errorf("readings[0].ID(): expected %s, got %s", e, g)
				}

				return nil
			},
		},
		{
			Name: "AscendingOrder",
			Run: func(t *testing.T, ctx context.Context, store port.ReadingStore, ids []model.ReadingID) error {
				readings, err := store.QueryRange(ctx, model.IdentifierRange{Start: ids[0], End: ids[len(ids)-1]})
				if err != nil {
					return errors.WithStack(err)
				}

				if e, g := len(ids), len(readings); e != g {
					t.Fatalf("len(readings): expected %d, got %d", e, g)
				}

				for i, r := range readings {
					if e, g := ids[i], r.ID(); e != g {
						t.Errorf("readings[%d].ID(): expected %s, got %s", i, e, g)
					}
				}

				return nil
			},
		},
		{
			Name: "StringIdentifiers",
			Run: func(t *testing.T, ctx context.Context, store port.ReadingStore, ids []model.ReadingID) error {
				readings, err := store.QueryRange(ctx, model.IdentifierRange{Start: ids[0], End: ids[len(ids)-1]})
				if err != nil {
					return errors.WithStack(err)
				}

				for i, r := range readings {
					rawID, exists := r.Fields().Get(model.FieldID)
					if !exists {
						t.Errorf("readings[%d]: missing %s field", i, model.FieldID)
						continue
					}

					id, ok := rawID.(string)
					if !ok {
						t.Errorf("readings[%d].%s: expected string, got %T", i, model.FieldID, rawID)
						continue
					}

					if e, g := string(r.ID()), id; e != g {
						t.Errorf("readings[%d].%s: expected %s, got %s", i, model.FieldID, e, g)
					}
				}

				return nil
			},
		},
		{
			Name: "FieldsPassThrough",
			Run: func(t *testing.T, ctx context.Context, store port.ReadingStore, ids []model.ReadingID) error {
				readings, err := store.QueryRange(ctx, model.IdentifierRange{Start: ids[0], End: ids[0]})
				if err != nil {
					return errors.WithStack(err)
				}

				if e, g := 1, len(readings); e != g {
					t.Fatalf("len(readings): expected %d, got %d", e, g)
				}

				fields := readings[0].Fields()

				temperature, exists := fields.Get("temperature")
				if !exists {
					t.Fatalf("missing temperature field")
				}

				if e, g := float64(-18), temperature; e != g {
					t.Errorf("temperature: expected %v, got %v", e, g)
				}

				sensor, exists := fields.Get("sensor")
				if !exists {
					t.Fatalf("missing sensor field")
				}

				if e, g := "probe-0", sensor; e != g {
					t.Errorf("sensor: expected %v, got %v", e, g)
				}

				if e, g := model.FieldID, fields[0].Key; e != g {
					t.Errorf("fields[0].Key: expected %s, got %s", e, g)
				}

				return nil
			},
		},
		{
			Name: "Idempotence",
			Run: func(t *testing.T, ctx context.Context, store port.ReadingStore, ids []model.ReadingID) error {
				rng := model.IdentifierRange{Start: ids[1], End: ids[3]}

				first, err := store.QueryRange(ctx, rng)
				if err != nil {
					return errors.WithStack(err)
				}

				second, err := store.QueryRange(ctx, rng)
				if err != nil {
					return errors.WithStack(err)
				}

				firstJSON, err := json.Marshal(first)
				if err != nil {
					return errors.WithStack(err)
				}

				secondJSON, err := json.Marshal(second)
				if err != nil {
					return errors.WithStack(err)
				}

				if e, g := string(firstJSON), string(secondJSON); e != g {
					t.Errorf("second query: expected %s, got %s", e, g)
				}

				return nil
			},
		},
		{
			Name: "ValidateRange",
			Run: func(t *testing.T, ctx context.Context, store port.ReadingStore, ids []model.ReadingID) error {
				if err := store.ValidateRange(model.IdentifierRange{Start: ids[1], End: ids[3]}); err != nil {
					t.Errorf("unexpected error: %+v", errors.WithStack(err))
				}

				if err := store.ValidateRange(model.IdentifierRange{Start: ids[2], End: ids[2]}); err != nil {
					t.Errorf("unexpected error: %+v", errors.WithStack(err))
				}

				err := store.ValidateRange(model.IdentifierRange{Start: ids[3], End: ids[1]})
				if !errors.Is(err, port.ErrInvalidRange) {
					t.Errorf("err: expected %v, got %v", port.ErrInvalidRange, err)
				}

				return nil
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			ctx := context.Background()

			store, ids, err := factory(t, newSeeds(5))
			if err != nil {
				t.Fatalf("could not create store: %+v", errors.WithStack(err))
			}

			if e, g := 5, len(ids); e != g {
				t.Fatalf("len(ids): expected %d, got %d", e, g)
			}

			if err := tc.Run(t, ctx, store, ids); err != nil {
				t.Fatalf("could not run test: %+v", errors.WithStack(err))
			}
		})
	}
}

func newSeeds(total int) []model.Fields {
	seeds := make([]model.Fields, 0, total)
	for i := range total {
		seeds = append(seeds, model.Fields{
			{Key: "temperature", Value: float64(-18 + i)},
			{Key: "sensor", Value: fmt.Sprintf("probe-%d", i)},
		})
	}
	return seeds
}
