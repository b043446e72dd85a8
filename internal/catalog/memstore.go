package catalog

import (
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// MemStore is an in-memory Store keeping designation-sorted slices per
// catalog. It backs the binary's default wiring and the test suites.
type MemStore struct {
	byCatalog map[string][]Object
}

// NewMemStore builds a store from a flat object set. Input order does not
// matter; objects are sorted by designation within each catalog.
func NewMemStore(objects []Object) *MemStore {
	s := &MemStore{byCatalog: make(map[string][]Object)}
	for _, obj := range objects {
		s.byCatalog[obj.CatalogCode] = append(s.byCatalog[obj.CatalogCode], obj)
	}
	for code := range s.byCatalog {
		objs := s.byCatalog[code]
		sort.Slice(objs, func(i, j int) bool { return objs[i].Designation < objs[j].Designation })
	}
	return s
}

// LoadObjects reads a YAML object file, a flat list of Object records.
func LoadObjects(path string) ([]Object, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var objects []Object
	if err := yaml.Unmarshal(data, &objects); err != nil {
		return nil, err
	}
	return objects, nil
}

func (s *MemStore) Lookup(code string, designation int) (Object, error) {
	objs := s.byCatalog[code]
	i := sort.Search(len(objs), func(i int) bool { return objs[i].Designation >= designation })
	if i < len(objs) && objs[i].Designation == designation {
		return objs[i], nil
	}
	return Object{}, ErrNotFound
}

func (s *MemStore) Next(code string, after int) (Object, error) {
	objs := s.byCatalog[code]
	i := sort.Search(len(objs), func(i int) bool { return objs[i].Designation > after })
	if i < len(objs) {
		return objs[i], nil
	}
	return Object{}, ErrNotFound
}

func (s *MemStore) Prev(code string, before int) (Object, error) {
	objs := s.byCatalog[code]
	i := sort.Search(len(objs), func(i int) bool { return objs[i].Designation >= before })
	if i > 0 {
		return objs[i-1], nil
	}
	return Object{}, ErrNotFound
}
