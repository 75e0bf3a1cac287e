package mongo

import (
	"context"
	"log/slog"
	"time"

	"github.com/bornholm/readings/internal/core/model"
	"github.com/bornholm/readings/internal/core/port"
	"github.com/bornholm/readings/internal/metrics"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

type ReadingStore struct {
	collection *mongo.Collection
}

// QueryRange implements port.ReadingStore.
func (s *ReadingStore) QueryRange(ctx context.Context, rng model.IdentifierRange) ([]*model.Reading, error) {
	start, end, err := parseRange(rng)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	filter := bson.D{
		{Key: model.FieldID, Value: bson.D{
			{Key: "$gte", Value: start},
			{Key: "$lte", Value: end},
		}},
	}

	opts := options.Find().SetSort(bson.D{{Key: model.FieldID, Value: 1}})

	slog.DebugContext(ctx, "querying readings", slog.String("collection", s.collection.Name()), slog.String("range", rng.String()))

	begin := time.Now()
	defer func() {
		metrics.QueryDuration.Observe(time.Since(begin).Seconds())
	}()

	cursor, err := s.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, errors.Wrap(err, "could not execute range query")
	}

	defer func() {
		if err := cursor.Close(ctx); err != nil {
			slog.ErrorContext(ctx, "could not close cursor", slog.Any("error", errors.WithStack(err)))
		}
	}()

	readings := make([]*model.Reading, 0)

	for cursor.Next(ctx) {
		var doc bson.D
		if err := cursor.Decode(&doc); err != nil {
			return nil, errors.Wrap(err, "could not decode document")
		}

		reading, err := toReading(doc)
		if err != nil {
			return nil, errors.WithStack(err)
		}

		readings = append(readings, reading)
	}

	if err := cursor.Err(); err != nil {
		return nil, errors.Wrap(err, "could not iterate over documents")
	}

	return readings, nil
}

// ValidateRange implements port.ReadingStore.
func (s *ReadingStore) ValidateRange(rng model.IdentifierRange) error {
	if _, _, err := parseRange(rng); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// Ping implements port.ReadingStore.
func (s *ReadingStore) Ping(ctx context.Context) error {
	if err := s.collection.Database().Client().Ping(ctx, readpref.Primary()); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

func NewReadingStore(collection *mongo.Collection) *ReadingStore {
	return &ReadingStore{
		collection: collection,
	}
}

var _ port.ReadingStore = &ReadingStore{}
