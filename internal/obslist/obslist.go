// Package obslist persists target lists as JSON files under a configurable
// directory. Entries store object identity only; loading re-resolves each
// entry against the catalog store, so a list survives catalog upgrades and
// simply skips entries that no longer exist.
package obslist

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/charlievieth/fastwalk"
	"github.com/sirupsen/logrus"

	"github.com/sightline/sightline/internal/catalog"
)

const fileExt = ".json"

// ErrNotFound reports that no saved list exists under the requested name.
var ErrNotFound = errors.New("list not found")

// Entry is one saved reference: catalog code plus designation.
type Entry struct {
	Catalog     string `json:"catalog"`
	Designation int    `json:"designation"`
}

// File is the on-disk list format.
type File struct {
	Name    string    `json:"name"`
	SavedAt time.Time `json:"saved_at"`
	Entries []Entry   `json:"entries"`
}

// LoadResult reports how a load went: Parsed entries were present in the
// file, Objects are the ones that still resolve against the store.
type LoadResult struct {
	Objects []catalog.Object
	Parsed  int
}

// Store reads and writes saved lists under Dir.
type Store struct {
	Dir string
}

func NewStore(dir string) *Store {
	return &Store{Dir: dir}
}

// WriteList serializes the objects under the given name.
func (s *Store) WriteList(objects []catalog.Object, name string) error {
	logrus.Debugf("writing list %q (%d objects) to %s", name, len(objects), s.Dir)
	if err := os.MkdirAll(s.Dir, 0o700); err != nil {
		return err
	}

	f := File{Name: name, SavedAt: time.Now().UTC(), Entries: make([]Entry, 0, len(objects))}
	for _, obj := range objects {
		f.Entries = append(f.Entries, Entry{Catalog: obj.CatalogCode, Designation: obj.Designation})
	}

	data, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path(name), data, 0o600)
}

// ReadList loads a saved list and resolves each entry against the catalog
// store. Entries that fail to resolve are skipped, not errors; the result
// carries both counts so the caller can report "loaded X of Y".
func (s *Store) ReadList(cat catalog.Store, name string) (LoadResult, error) {
	data, err := os.ReadFile(s.path(name))
	if err != nil {
		if os.IsNotExist(err) {
			return LoadResult{}, ErrNotFound
		}
		return LoadResult{}, err
	}

	var f File
	if err := json.Unmarshal(data, &f); err != nil {
		return LoadResult{}, err
	}

	result := LoadResult{Parsed: len(f.Entries)}
	for _, entry := range f.Entries {
		obj, err := cat.Lookup(entry.Catalog, entry.Designation)
		if err != nil {
			if errors.Is(err, catalog.ErrNotFound) {
				logrus.Debugf("list %q: skipping unresolvable entry %s%d", name, entry.Catalog, entry.Designation)
				continue
			}
			return LoadResult{}, err
		}
		result.Objects = append(result.Objects, obj)
	}
	return result, nil
}

// ListNames enumerates saved list names, sorted. A missing directory is an
// empty result, not an error.
func (s *Store) ListNames() ([]string, error) {
	if _, err := os.Stat(s.Dir); os.IsNotExist(err) {
		return nil, nil
	}

	var names []string
	conf := fastwalk.DefaultConfig
	err := fastwalk.Walk(&conf, s.Dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil // Skip unreadable entries.
		}
		if d.IsDir() {
			return nil
		}
		if strings.HasSuffix(d.Name(), fileExt) {
			names = append(names, strings.TrimSuffix(d.Name(), fileExt))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(names)
	return names, nil
}

func (s *Store) path(name string) string {
	return filepath.Join(s.Dir, name+fileExt)
}
