package validate

import (
	"strings"

	"chiavi/internal/catalog"
)

// Resolved is a reference pinned to a namespace and a catalog dot-path.
type Resolved struct {
	Namespace string
	Key       string
}

// FullKey renders the namespace-qualified key used in reports.
func (r Resolved) FullKey() string {
	return r.Namespace + ":" + r.Key
}

// Resolve applies the namespace-resolution rules to one reference.
//
// Explicit "ns:" prefixes always win, even when unknown, so that the
// validation step can report them. For bare keys the first dot-segment is
// consulted: a known namespace name overrides the file default, and a
// segment equal to the file default is stripped as redundant.
func Resolve(ref Reference, fileDefault string) Resolved {
	if ref.Namespace != "" {
		return Resolved{Namespace: ref.Namespace, Key: ref.Key}
	}

	head, rest, found := strings.Cut(ref.Key, ".")
	if found && rest != "" {
		if catalog.Known(head) {
			return Resolved{Namespace: head, Key: rest}
		}
		if head == fileDefault {
			return Resolved{Namespace: fileDefault, Key: rest}
		}
	}
	return Resolved{Namespace: fileDefault, Key: ref.Key}
}

// DefaultNamespace picks the file's default namespace: the first
// useTranslation('ns') argument when present, otherwise the fallback.
func DefaultNamespace(content, fallback string) string {
	if ns := FileNamespace(content); ns != "" {
		return ns
	}
	return fallback
}
