package catalog

import "errors"

// ErrNotFound reports that no object matches a lookup or neighbor query.
// Any other error from a Store is a retrieval failure: the caller reports it
// and keeps its prior state.
var ErrNotFound = errors.New("object not found")

// Store is the external catalog backing the search screens. Neighbor queries
// are ordered numerically by designation within one catalog.
type Store interface {
	// Lookup returns the object with exactly this designation.
	Lookup(code string, designation int) (Object, error)
	// Next returns the object with the smallest designation strictly
	// greater than after.
	Next(code string, after int) (Object, error)
	// Prev returns the object with the largest designation strictly less
	// than before.
	Prev(code string, before int) (Object, error)
}
