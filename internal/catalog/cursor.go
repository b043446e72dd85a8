package catalog

import (
	"fmt"
	"strconv"
)

// Direction selects neighbor ordering for Cursor.Neighbor.
type Direction int

const (
	Forward  Direction = 1
	Backward Direction = -1
)

// Cursor resolves typed designator keys against a Store for a configured set
// of catalogs, one of which is active at a time.
type Cursor struct {
	store    Store
	catalogs []Catalog
	index    int
}

// NewCursor wraps a store with the configured catalog set. The set must be
// non-empty; the first catalog starts active.
func NewCursor(store Store, catalogs []Catalog) *Cursor {
	return &Cursor{store: store, catalogs: catalogs}
}

// Active returns the currently selected catalog.
func (c *Cursor) Active() Catalog {
	return c.catalogs[c.index]
}

// CycleCatalog advances to the next configured catalog, wrapping at the end,
// and returns it.
func (c *Cursor) CycleCatalog() Catalog {
	c.index = (c.index + 1) % len(c.catalogs)
	return c.catalogs[c.index]
}

// Lookup resolves a normalized designator key to an object in the active
// catalog. An empty key matches nothing.
func (c *Cursor) Lookup(key string) (Object, error) {
	if key == "" {
		return Object{}, ErrNotFound
	}
	designation, err := strconv.Atoi(key)
	if err != nil {
		return Object{}, fmt.Errorf("bad designator key %q: %w", key, err)
	}
	return c.store.Lookup(c.Active().Code, designation)
}

// Neighbor returns the nearest object strictly beyond the key in the given
// direction, ordered numerically by designation. An empty key scans forward
// from the start of the catalog and matches nothing going backward.
func (c *Cursor) Neighbor(key string, dir Direction) (Object, error) {
	if key == "" {
		if dir == Backward {
			return Object{}, ErrNotFound
		}
		return c.store.Next(c.Active().Code, 0)
	}
	designation, err := strconv.Atoi(key)
	if err != nil {
		return Object{}, fmt.Errorf("bad designator key %q: %w", key, err)
	}
	if dir == Backward {
		return c.store.Prev(c.Active().Code, designation)
	}
	return c.store.Next(c.Active().Code, designation)
}
