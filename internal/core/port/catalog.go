package port

import "github.com/bornholm/readings/internal/core/model"

type Catalog interface {
	Lookup(name model.ItemName) (model.IdentifierRange, bool)
}
