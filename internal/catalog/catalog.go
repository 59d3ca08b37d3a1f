// Package catalog models the translation catalogs shipped by the web app:
// one nested JSON object per namespace under public/locales/<locale>/.
package catalog

import (
	"fmt"
	"strings"
)

// Namespace is one of the fixed translation buckets.
type Namespace string

const (
	Common   Namespace = "common"
	Finance  Namespace = "finance"
	Settings Namespace = "settings"
	Auth     Namespace = "auth"
	Shared   Namespace = "shared"
)

// All returns every known namespace.
func All() []Namespace {
	return []Namespace{Common, Finance, Settings, Auth, Shared}
}

// Known reports whether name is a known namespace.
func Known(name string) bool {
	switch Namespace(name) {
	case Common, Finance, Settings, Auth, Shared:
		return true
	}
	return false
}

// Parse converts name into a Namespace.
func Parse(name string) (Namespace, error) {
	if !Known(name) {
		return "", fmt.Errorf("unknown namespace %q", name)
	}
	return Namespace(name), nil
}

func (n Namespace) String() string { return string(n) }

// File returns the catalog file name for the namespace.
func (n Namespace) File() string { return string(n) + ".json" }

// Catalog is the decoded JSON content of one namespace file. Values are
// either string leaves or nested objects keyed by dot-path segments.
type Catalog map[string]any

// Has reports whether dotPath resolves to an entry. Every intermediate
// segment must be an object; the final segment must exist, any value type.
func (c Catalog) Has(dotPath string) bool {
	segments := strings.Split(dotPath, ".")
	current := map[string]any(c)
	for i, seg := range segments {
		value, ok := current[seg]
		if !ok {
			return false
		}
		if i == len(segments)-1 {
			return true
		}
		next, ok := value.(map[string]any)
		if !ok {
			return false
		}
		current = next
	}
	return false
}

// Get returns the string leaf at dotPath, if present.
func (c Catalog) Get(dotPath string) (string, bool) {
	segments := strings.Split(dotPath, ".")
	current := map[string]any(c)
	for i, seg := range segments {
		value, ok := current[seg]
		if !ok {
			return "", false
		}
		if i == len(segments)-1 {
			s, ok := value.(string)
			return s, ok
		}
		next, ok := value.(map[string]any)
		if !ok {
			return "", false
		}
		current = next
	}
	return "", false
}

// Set writes value at dotPath, creating intermediate objects as needed.
// A non-object intermediate is replaced by an object.
func (c Catalog) Set(dotPath, value string) {
	segments := strings.Split(dotPath, ".")
	current := map[string]any(c)
	for _, seg := range segments[:len(segments)-1] {
		next, ok := current[seg].(map[string]any)
		if !ok {
			next = make(map[string]any)
			current[seg] = next
		}
		current = next
	}
	current[segments[len(segments)-1]] = value
}

// Flatten returns every leaf as a dotted key. Non-string leaves are
// rendered with fmt.Sprint so plural arrays and counts still show up.
func (c Catalog) Flatten() map[string]string {
	out := make(map[string]string)
	flattenInto(map[string]any(c), "", out)
	return out
}

func flattenInto(m map[string]any, prefix string, out map[string]string) {
	for key, value := range m {
		full := key
		if prefix != "" {
			full = prefix + "." + key
		}
		if nested, ok := value.(map[string]any); ok {
			flattenInto(nested, full, out)
			continue
		}
		out[full] = fmt.Sprint(value)
	}
}
