package extract

import (
	"strings"

	"chiavi/internal/catalog"
)

// financeDirs are the feature directories whose strings belong to the
// finance namespace.
var financeDirs = map[string]bool{
	"finance":       true,
	"transactions":  true,
	"accounts":      true,
	"budgets":       true,
	"goals":         true,
	"subscriptions": true,
	"invoices":      true,
	"splitwise":     true,
}

var authDirs = map[string]bool{
	"auth":     true,
	"login":    true,
	"register": true,
}

// NamespaceForPath derives the target namespace from the file's relative
// path. The mapping is a heuristic over the app's feature layout;
// unmatched paths fall back to common.
func NamespaceForPath(relPath string) catalog.Namespace {
	for _, seg := range strings.Split(strings.ToLower(relPath), "/") {
		switch {
		case financeDirs[seg]:
			return catalog.Finance
		case seg == "settings":
			return catalog.Settings
		case authDirs[seg]:
			return catalog.Auth
		case seg == "shared":
			return catalog.Shared
		}
	}
	return catalog.Common
}
