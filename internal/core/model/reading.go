package model

import (
	"bytes"
	"encoding/json"

	"github.com/pkg/errors"
)

const FieldID = "_id"

type Field struct {
	Key   string
	Value any
}

// Fields is an ordered key/value bag. It is encoded as a JSON object
// keeping the original field order.
type Fields []Field

func (f Fields) Get(key string) (any, bool) {
	for _, field := range f {
		if field.Key == key {
			return field.Value, true
		}
	}

	return nil, false
}

// MarshalJSON implements json.Marshaler.
func (f Fields) MarshalJSON() ([]byte, error) {
	var buff bytes.Buffer

	buff.WriteByte('{')

	for i, field := range f {
		if i > 0 {
			buff.WriteByte(',')
		}

		key, err := json.Marshal(field.Key)
		if err != nil {
			return nil, errors.WithStack(err)
		}

		value, err := json.Marshal(field.Value)
		if err != nil {
			return nil, errors.Wrapf(err, "could not marshal field '%s'", field.Key)
		}

		buff.Write(key)
		buff.WriteByte(':')
		buff.Write(value)
	}

	buff.WriteByte('}')

	return buff.Bytes(), nil
}

var _ json.Marshaler = Fields{}

// Reading is one stored sensor observation. Only its identifier is known
// to the service, every other field is passed through untouched.
type Reading struct {
	id     ReadingID
	fields Fields
}

func (r *Reading) ID() ReadingID {
	return r.id
}

func (r *Reading) Fields() Fields {
	return r.fields
}

// MarshalJSON implements json.Marshaler.
func (r *Reading) MarshalJSON() ([]byte, error) {
	return r.fields.MarshalJSON()
}

// NewReading creates a reading from the given fields, replacing the
// identifier field value with its string form.
func NewReading(id ReadingID, fields Fields) *Reading {
	normalized := make(Fields, 0, len(fields)+1)
	hasID := false

	for _, f := range fields {
		if f.Key == FieldID {
			if hasID {
				continue
			}
			f.Value = string(id)
			hasID = true
		}
		normalized = append(normalized, f)
	}

	if !hasID {
		normalized = append(Fields{{Key: FieldID, Value: string(id)}}, normalized...)
	}

	return &Reading{
		id:     id,
		fields: normalized,
	}
}

var _ json.Marshaler = &Reading{}

type ReadingsResult struct {
	Item     ItemName   `json:"item"`
	Count    int        `json:"count"`
	Readings []*Reading `json:"readings"`
}

func NewReadingsResult(item ItemName, readings []*Reading) *ReadingsResult {
	if readings == nil {
		readings = []*Reading{}
	}

	return &ReadingsResult{
		Item:     item,
		Count:    len(readings),
		Readings: readings,
	}
}
