package mongo

import (
	"encoding/json"
	"testing"

	"github.com/bornholm/readings/internal/core/model"
	"github.com/bornholm/readings/internal/core/port"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestToReading(t *testing.T) {
	oid, err := primitive.ObjectIDFromHex("6922a6742ac4169f239852e4")
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	doc := bson.D{
		{Key: "_id", Value: oid},
		{Key: "temperature", Value: -17.5},
		{Key: "probe", Value: bson.D{
			{Key: "name", Value: "p1"},
			{Key: "location", Value: "top"},
		}},
		{Key: "tags", Value: bson.A{"cold", bson.M{"b": 2, "a": 1}}},
	}

	reading, err := toReading(doc)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := model.ReadingID("6922a6742ac4169f239852e4"), reading.ID(); e != g {
		t.Errorf("reading.ID(): expected %s, got %s", e, g)
	}

	data, err := json.Marshal(reading)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	expected := `{"_id":"6922a6742ac4169f239852e4","temperature":-17.5,"probe":{"name":"p1","location":"top"},"tags":["cold",{"a":1,"b":2}]}`
	if e, g := expected, string(data); e != g {
		t.Errorf("json.Marshal(reading): expected %s, got %s", e, g)
	}
}

func TestToReadingStringIdentifier(t *testing.T) {
	reading, err := toReading(bson.D{{Key: "_id", Value: "reading-42"}, {Key: "value", Value: 1}})
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := model.ReadingID("reading-42"), reading.ID(); e != g {
		t.Errorf("reading.ID(): expected %s, got %s", e, g)
	}
}

func TestToReadingMissingIdentifier(t *testing.T) {
	if _, err := toReading(bson.D{{Key: "value", Value: 1}}); err == nil {
		t.Errorf("expected an error, got nil")
	}
}

func TestParseRange(t *testing.T) {
	type testCase struct {
		Name    string
		Range   model.IdentifierRange
		Invalid bool
	}

	testCases := []testCase{
		{
			Name:  "ObjectIDs",
			Range: model.IdentifierRange{Start: "692217a74bf378bf90fcc039", End: "69222f454bf378bf90fcc294"},
		},
		{
			Name:  "SameObjectID",
			Range: model.IdentifierRange{Start: "692217a74bf378bf90fcc039", End: "692217a74bf378bf90fcc039"},
		},
		{
			Name:  "Strings",
			Range: model.IdentifierRange{Start: "a", End: "b"},
		},
		{
			Name:    "InvertedObjectIDs",
			Range:   model.IdentifierRange{Start: "69222f454bf378bf90fcc294", End: "692217a74bf378bf90fcc039"},
			Invalid: true,
		},
		{
			Name:    "InvertedStrings",
			Range:   model.IdentifierRange{Start: "b", End: "a"},
			Invalid: true,
		},
		{
			Name:    "MixedKinds",
			Range:   model.IdentifierRange{Start: "692217a74bf378bf90fcc039", End: "z"},
			Invalid: true,
		},
		{
			Name:    "EmptyBound",
			Range:   model.IdentifierRange{Start: "", End: "692217a74bf378bf90fcc039"},
			Invalid: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			_, _, err := parseRange(tc.Range)

			if tc.Invalid {
				if !errors.Is(err, port.ErrInvalidRange) {
					t.Errorf("err: expected %v, got %v", port.ErrInvalidRange, err)
				}
				return
			}

			if err != nil {
				t.Errorf("unexpected error: %+v", errors.WithStack(err))
			}
		})
	}
}
