package model

import "fmt"

type ItemName string

type ReadingID string

// IdentifierRange bounds the readings of one item, both ends included.
type IdentifierRange struct {
	Start ReadingID
	End   ReadingID
}

func (r IdentifierRange) String() string {
	return fmt.Sprintf("[%s, %s]", r.Start, r.End)
}
