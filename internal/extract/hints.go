package extract

import (
	"regexp"
	"strings"
	"unicode"
)

// hintNames flag a nearby literal as user-facing text.
var hintNames = map[string]bool{
	"label":        true,
	"title":        true,
	"subtitle":     true,
	"heading":      true,
	"placeholder":  true,
	"description":  true,
	"message":      true,
	"text":         true,
	"tooltip":      true,
	"alt":          true,
	"caption":      true,
	"error":        true,
	"errormessage": true,
	"success":      true,
	"hint":         true,
	"helpertext":   true,
	"emptymessage": true,
	"name":         true, // object props and variables only, see hinted
}

// hintSuffixes extend the allow-list to compound names like confirmText.
var hintSuffixes = []string{
	"label", "title", "text", "message", "description",
	"placeholder", "tooltip", "heading",
}

// deniedNames coincide with hint names or carry machine-readable values.
var deniedNames = map[string]bool{
	"classname":   true,
	"id":          true,
	"key":         true,
	"type":        true,
	"href":        true,
	"src":         true,
	"to":          true,
	"path":        true,
	"value":       true,
	"variant":     true,
	"size":        true,
	"color":       true,
	"testid":      true,
	"data-testid": true,
}

// callSinks are fully-qualified callee names whose string arguments are
// shown to the user.
var callSinks = map[string]bool{
	"alert":          true,
	"confirm":        true,
	"notify":         true,
	"window.alert":   true,
	"window.confirm": true,
	"toast.success":  true,
	"toast.error":    true,
	"toast.info":     true,
	"toast.warning":  true,
	"toast.loading":  true,
	"notify.success": true,
	"notify.error":   true,
}

// hinted reports whether the attribute/property/variable name suggests a
// user-facing literal. name is checked case-insensitively.
func hinted(name string, kind Kind) bool {
	n := strings.ToLower(name)
	if deniedNames[n] {
		return false
	}
	// name="" on form inputs is machine-readable; as an object property or
	// variable it usually holds display text.
	if n == "name" && kind == KindJSXAttr {
		return false
	}
	if hintNames[n] {
		return true
	}
	for _, suffix := range hintSuffixes {
		if strings.HasSuffix(n, suffix) && len(n) > len(suffix) {
			return true
		}
	}
	return false
}

var (
	reNamespacedKey = regexp.MustCompile(`^[a-z][\w-]*:[A-Za-z0-9_-]+(\.[A-Za-z0-9_-]+)*$`)
	reDottedKey     = regexp.MustCompile(`^[A-Za-z0-9_-]+(\.[A-Za-z0-9_-]+)+$`)
)

// userFacing is the predicate deciding whether a literal is worth
// translating at all.
func userFacing(text string) bool {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return false
	}
	if len([]rune(trimmed)) == 1 && !unicode.IsLetter([]rune(trimmed)[0]) {
		return false
	}
	// Already shaped like a translation key.
	if reNamespacedKey.MatchString(trimmed) || reDottedKey.MatchString(trimmed) {
		return false
	}
	// Must contain at least one letter.
	for _, r := range trimmed {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}
