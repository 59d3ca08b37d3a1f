// Package fsio defines the filesystem ports used by the translation tools.
//
// All analysis code reads and writes whole files through these interfaces so
// tests can run against the in-memory implementation without touching disk.
// Paths are slash-separated and relative to the implementation's root;
// absolute paths are used as given.
package fsio

import (
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

// Ports for file access.
type (
	// Reader reads a whole file.
	Reader interface {
		ReadFile(name string) ([]byte, error)
	}

	// Writer persists a whole file, creating parent directories as needed.
	Writer interface {
		WriteFile(name string, data []byte) error
	}

	// DirLister lists the immediate subdirectories of a directory.
	DirLister interface {
		Dirs(name string) ([]string, error)
	}

	// ReadWriter combines Reader and Writer.
	ReadWriter interface {
		Reader
		Writer
	}
)

// Dir is the OS-backed implementation rooted at a base directory.
type Dir struct {
	base string
}

// NewDir returns a Dir rooted at base.
func NewDir(base string) Dir {
	return Dir{base: base}
}

func (d Dir) join(name string) string {
	name = filepath.FromSlash(name)
	// Absolute names bypass the base: overrides like an absolute report
	// path must land where the caller asked.
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(d.base, name)
}

// ReadFile reads the named file relative to the base directory.
func (d Dir) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(d.join(name))
}

// WriteFile writes the named file relative to the base directory,
// creating parent directories as needed.
func (d Dir) WriteFile(name string, data []byte) error {
	full := d.join(name)
	if dir := filepath.Dir(full); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return os.WriteFile(full, data, 0644)
}

// Dirs lists the immediate subdirectories of name, sorted.
func (d Dir) Dirs(name string) ([]string, error) {
	entries, err := os.ReadDir(d.join(name))
	if err != nil {
		return nil, err
	}
	var out []string
	for _, e := range entries {
		if e.IsDir() {
			out = append(out, e.Name())
		}
	}
	sort.Strings(out)
	return out, nil
}

// Mem is an in-memory implementation for tests.
type Mem struct {
	mu    sync.Mutex
	files map[string][]byte
}

// NewMem returns an empty in-memory filesystem.
func NewMem() *Mem {
	return &Mem{files: make(map[string][]byte)}
}

// ReadFile returns the stored content of name, or fs.ErrNotExist.
func (m *Mem) ReadFile(name string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.files[path.Clean(name)]
	if !ok {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

// WriteFile stores a copy of data under name.
func (m *Mem) WriteFile(name string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := make([]byte, len(data))
	copy(cp, data)
	m.files[path.Clean(name)] = cp
	return nil
}

// Dirs lists the immediate subdirectories of name derived from stored paths.
func (m *Mem) Dirs(name string) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	name = path.Clean(name)
	seen := map[string]struct{}{}
	var out []string
	for p := range m.files {
		dir := path.Dir(p)
		if dir == "." || dir == "" {
			continue
		}
		var first string
		if name == "." {
			first = strings.SplitN(dir, "/", 2)[0]
		} else {
			rel := strings.TrimPrefix(dir, name+"/")
			if rel == dir {
				continue
			}
			first = strings.SplitN(rel, "/", 2)[0]
		}
		if _, ok := seen[first]; ok {
			continue
		}
		seen[first] = struct{}{}
		out = append(out, first)
	}
	sort.Strings(out)
	return out, nil
}

// Files returns the sorted list of stored paths.
func (m *Mem) Files() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, 0, len(m.files))
	for p := range m.files {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}
