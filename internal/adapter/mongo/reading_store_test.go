package mongo

import (
	"context"
	"fmt"
	"testing"

	"github.com/bornholm/readings/internal/core/model"
	"github.com/bornholm/readings/internal/core/port"
	"github.com/bornholm/readings/internal/core/port/testsuite"
	"github.com/pkg/errors"
	"github.com/rs/xid"
	"github.com/testcontainers/testcontainers-go"
	testmongodb "github.com/testcontainers/testcontainers-go/modules/mongodb"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func TestReadingStore(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping mongodb container test in short mode")
	}

	ctx := context.Background()

	mongodbContainer, err := testmongodb.Run(ctx, "mongo:7")
	defer func() {
		if err := testcontainers.TerminateContainer(mongodbContainer); err != nil {
			t.Fatalf("failed to terminate container: %+v", errors.WithStack(err))
		}
	}()
	if err != nil {
		t.Fatalf("failed to start container: %+v", errors.WithStack(err))
	}

	uri, err := mongodbContainer.ConnectionString(ctx)
	if err != nil {
		t.Fatalf("could not retrieve connection string: %+v", errors.WithStack(err))
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		t.Fatalf("could not connect to mongodb: %+v", errors.WithStack(err))
	}

	defer func() {
		if err := client.Disconnect(ctx); err != nil {
			t.Errorf("could not disconnect from mongodb: %+v", errors.WithStack(err))
		}
	}()

	database := client.Database("readings")

	testsuite.TestReadingStore(t, func(t *testing.T, seeds []model.Fields) (port.ReadingStore, []model.ReadingID, error) {
		collection := database.Collection(fmt.Sprintf("readings_%s", xid.New().String()))

		// Documents outside of the seeded identifiers, before and after
		outside := []any{
			bson.D{{Key: "_id", Value: primitive.NewObjectID()}, {Key: "sensor", Value: "outside-before"}},
		}

		docs := make([]any, 0, len(seeds))
		ids := make([]model.ReadingID, 0, len(seeds))

		for _, fields := range seeds {
			oid := primitive.NewObjectID()
			doc := append(bson.D{{Key: "_id", Value: oid}}, fromFields(fields)...)
			docs = append(docs, doc)
			ids = append(ids, model.ReadingID(oid.Hex()))
		}

		outside = append(outside, bson.D{{Key: "_id", Value: primitive.NewObjectID()}, {Key: "sensor", Value: "outside-after"}})

		// Insert in reverse order to make sure ordering comes from the query
		all := append(outside, docs...)
		for i, j := 0, len(all)-1; i < j; i, j = i+1, j-1 {
			all[i], all[j] = all[j], all[i]
		}

		if _, err := collection.InsertMany(ctx, all); err != nil {
			return nil, nil, errors.WithStack(err)
		}

		return NewReadingStore(collection), ids, nil
	})
}

func fromFields(fields model.Fields) bson.D {
	doc := make(bson.D, 0, len(fields))
	for _, f := range fields {
		value := f.Value
		if nested, ok := value.(model.Fields); ok {
			value = fromFields(nested)
		}
		doc = append(doc, bson.E{Key: f.Key, Value: value})
	}
	return doc
}
