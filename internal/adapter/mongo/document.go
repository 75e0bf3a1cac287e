package mongo

import (
	"maps"
	"slices"

	"github.com/bornholm/readings/internal/core/model"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
)

func toReading(doc bson.D) (*model.Reading, error) {
	var (
		rawID  any
		exists bool
	)

	for _, e := range doc {
		if e.Key == model.FieldID {
			rawID = e.Value
			exists = true
			break
		}
	}

	if !exists {
		return nil, errors.Errorf("document has no '%s' field", model.FieldID)
	}

	return model.NewReading(formatIdentifier(rawID), toFields(doc)), nil
}

func toFields(doc bson.D) model.Fields {
	fields := make(model.Fields, 0, len(doc))
	for _, e := range doc {
		fields = append(fields, model.Field{Key: e.Key, Value: toValue(e.Value)})
	}
	return fields
}

// toValue converts embedded documents so that they keep their field order
// once encoded. Scalars are returned as is.
func toValue(raw any) any {
	switch v := raw.(type) {
	case bson.D:
		return toFields(v)
	case bson.M:
		fields := make(model.Fields, 0, len(v))
		for _, key := range slices.Sorted(maps.Keys(v)) {
			fields = append(fields, model.Field{Key: key, Value: toValue(v[key])})
		}
		return fields
	case bson.A:
		values := make([]any, 0, len(v))
		for _, value := range v {
			values = append(values, toValue(value))
		}
		return values
	default:
		return v
	}
}
