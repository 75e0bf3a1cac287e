package client

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/pkg/errors"
)

type GetReadingsRequest struct {
	Item string `json:"item"`
}

type ReadingsResponse struct {
	Item  string `json:"item"`
	Count int    `json:"count"`
	// Readings are kept as received, field order included
	Readings []json.RawMessage `json:"readings"`
}

// GetReadings retrieves every reading of the given item. Unknown items
// return an error matching ErrNotFound.
func (c *Client) GetReadings(ctx context.Context, item string) (*ReadingsResponse, error) {
	var res ReadingsResponse

	if err := c.jsonRequest(ctx, http.MethodPost, "/get-readings", &GetReadingsRequest{Item: item}, &res); err != nil {
		return nil, errors.WithStack(err)
	}

	return &res, nil
}
