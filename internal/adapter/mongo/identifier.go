package mongo

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/bornholm/readings/internal/core/model"
	"github.com/bornholm/readings/internal/core/port"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// parseIdentifier returns the store native form of the given identifier.
// Valid hexadecimal object ids are parsed as such, anything else is
// treated as a plain string identifier.
func parseIdentifier(id model.ReadingID) any {
	if primitive.IsValidObjectID(string(id)) {
		oid, err := primitive.ObjectIDFromHex(string(id))
		if err == nil {
			return oid
		}
	}

	return string(id)
}

func parseRange(rng model.IdentifierRange) (any, any, error) {
	if rng.Start == "" || rng.End == "" {
		return nil, nil, errors.Wrap(port.ErrInvalidRange, "empty bound")
	}

	start := parseIdentifier(rng.Start)
	end := parseIdentifier(rng.End)

	switch s := start.(type) {
	case primitive.ObjectID:
		e, ok := end.(primitive.ObjectID)
		if !ok {
			return nil, nil, errors.Wrapf(port.ErrInvalidRange, "bounds '%s' and '%s' are not of the same kind", rng.Start, rng.End)
		}

		if bytes.Compare(s[:], e[:]) > 0 {
			return nil, nil, errors.Wrapf(port.ErrInvalidRange, "start '%s' is greater than end '%s'", rng.Start, rng.End)
		}

	case string:
		e, ok := end.(string)
		if !ok {
			return nil, nil, errors.Wrapf(port.ErrInvalidRange, "bounds '%s' and '%s' are not of the same kind", rng.Start, rng.End)
		}

		if strings.Compare(s, e) > 0 {
			return nil, nil, errors.Wrapf(port.ErrInvalidRange, "start '%s' is greater than end '%s'", rng.Start, rng.End)
		}
	}

	return start, end, nil
}

func formatIdentifier(raw any) model.ReadingID {
	switch v := raw.(type) {
	case primitive.ObjectID:
		return model.ReadingID(v.Hex())
	case string:
		return model.ReadingID(v)
	case fmt.Stringer:
		return model.ReadingID(v.String())
	default:
		return model.ReadingID(fmt.Sprintf("%v", v))
	}
}
