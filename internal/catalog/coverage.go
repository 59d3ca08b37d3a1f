package catalog

import (
	"sort"

	"golang.org/x/text/language"

	"chiavi/internal/fsio"
)

// Coverage summarizes how a secondary locale tracks the base locale for
// one namespace.
type Coverage struct {
	Namespace Namespace
	// Missing keys exist in the base locale but not in the other one.
	Missing []string
	// Stale keys exist in the other locale but no longer in the base.
	Stale []string
}

// Compare flattens both catalogs and diffs their key sets.
func Compare(ns Namespace, base, other Catalog) Coverage {
	baseKeys := base.Flatten()
	otherKeys := other.Flatten()

	cov := Coverage{Namespace: ns}
	for key := range baseKeys {
		if _, ok := otherKeys[key]; !ok {
			cov.Missing = append(cov.Missing, key)
		}
	}
	for key := range otherKeys {
		if _, ok := baseKeys[key]; !ok {
			cov.Stale = append(cov.Stale, key)
		}
	}
	sort.Strings(cov.Missing)
	sort.Strings(cov.Stale)
	return cov
}

// Locales lists the locale directories under the locales root, excluding
// base. Directory names that do not parse as BCP 47 tags are ignored so
// stray folders never break a run.
func Locales(lister fsio.DirLister, base string) ([]string, error) {
	dirs, err := lister.Dirs(".")
	if err != nil {
		return nil, err
	}
	var out []string
	for _, dir := range dirs {
		if dir == base {
			continue
		}
		if _, err := language.Parse(dir); err != nil {
			continue
		}
		out = append(out, dir)
	}
	return out, nil
}
