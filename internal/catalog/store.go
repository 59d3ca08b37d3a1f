package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path"

	"chiavi/internal/fsio"
)

// ErrNotFound is returned by Load when a namespace file is absent.
var ErrNotFound = errors.New("catalog file not found")

// Store loads and saves namespace catalogs for one locale. The filesystem
// is injected so tests run against fsio.Mem; the real tools pass an
// fsio.Dir rooted at the locales directory.
type Store struct {
	fsys   fsio.ReadWriter
	locale string
}

// NewStore returns a Store for the given locale, e.g. "en".
func NewStore(fsys fsio.ReadWriter, locale string) *Store {
	return &Store{fsys: fsys, locale: locale}
}

// Locale returns the store's locale code.
func (s *Store) Locale() string { return s.locale }

// Path returns the catalog file path for ns, relative to the locales dir.
func (s *Store) Path(ns Namespace) string {
	return path.Join(s.locale, ns.File())
}

// Load reads and decodes the catalog for ns. A missing file yields
// ErrNotFound; malformed JSON is a hard error.
func (s *Store) Load(ns Namespace) (Catalog, error) {
	data, err := s.fsys.ReadFile(s.Path(ns))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, s.Path(ns))
		}
		return nil, fmt.Errorf("read %s: %w", s.Path(ns), err)
	}
	var cat Catalog
	if err := json.Unmarshal(data, &cat); err != nil {
		return nil, fmt.Errorf("parse %s: %w", s.Path(ns), err)
	}
	return cat, nil
}

// LoadOrEmpty reads the catalog for ns, returning an empty catalog when
// the file does not exist yet.
func (s *Store) LoadOrEmpty(ns Namespace) (Catalog, error) {
	cat, err := s.Load(ns)
	if errors.Is(err, ErrNotFound) {
		return make(Catalog), nil
	}
	return cat, err
}

// LoadAll reads every known namespace. Absent files are simply skipped:
// keys resolving to a skipped namespace fail validation with a
// namespace-does-not-exist reason. Malformed JSON aborts the run.
func (s *Store) LoadAll() (map[Namespace]Catalog, error) {
	catalogs := make(map[Namespace]Catalog)
	for _, ns := range All() {
		cat, err := s.Load(ns)
		if errors.Is(err, ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		catalogs[ns] = cat
	}
	return catalogs, nil
}

// Save writes the catalog for ns as pretty-printed, newline-terminated JSON.
func (s *Store) Save(ns Namespace, cat Catalog) error {
	data, err := json.MarshalIndent(cat, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", s.Path(ns), err)
	}
	data = append(data, '\n')
	if err := s.fsys.WriteFile(s.Path(ns), data); err != nil {
		return fmt.Errorf("write %s: %w", s.Path(ns), err)
	}
	return nil
}
