package extract

import (
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"path"
	"regexp"
	"strings"

	"chiavi/internal/catalog"
)

var reNonAlnum = regexp.MustCompile(`[^A-Za-z0-9]+`)

// GenerateKey builds the dotted key for a candidate:
// auto.<path-segments>.<snippet>_<line>_<hash>. The hash covers
// text:relPath:line:kind, so re-running on unchanged source reproduces
// the same key.
func GenerateKey(text, relPath string, line int, kind Kind) string {
	segments := pathSegments(relPath)
	parts := append([]string{"auto"}, segments...)
	parts = append(parts, fmt.Sprintf("%s_%d_%s", snippet(text), line, hash6(text, relPath, line, kind)))
	return strings.Join(parts, ".")
}

// pathSegments sanitizes the relative path into key levels: directories
// plus the file name with its extension stripped.
func pathSegments(relPath string) []string {
	relPath = strings.TrimSuffix(relPath, path.Ext(relPath))
	var out []string
	for _, seg := range strings.Split(relPath, "/") {
		clean := strings.Trim(reNonAlnum.ReplaceAllString(seg, "_"), "_")
		if clean != "" {
			out = append(out, clean)
		}
	}
	return out
}

// snippet is the first four whitespace tokens of the lower-cased text,
// stripped to alphanumerics.
func snippet(text string) string {
	words := strings.Fields(strings.ToLower(text))
	if len(words) > 4 {
		words = words[:4]
	}
	var out []string
	for _, w := range words {
		w = reNonAlnum.ReplaceAllString(w, "")
		if w != "" {
			out = append(out, w)
		}
	}
	if len(out) == 0 {
		return "text"
	}
	return strings.Join(out, "_")
}

// hash6 is a 6-hex-character content hash for collision avoidance, not
// cryptography.
func hash6(text, relPath string, line int, kind Kind) string {
	sum := sha1.Sum([]byte(fmt.Sprintf("%s:%s:%d:%s", text, relPath, line, kind)))
	return hex.EncodeToString(sum[:3])
}

// Assign places text under baseKey in the catalog. If the key already
// holds the same text the candidate is existing; a different occupant
// pushes the key to the next free numeric suffix.
func Assign(cat catalog.Catalog, baseKey, text string) (key string, existing bool) {
	key = baseKey
	for n := 2; ; n++ {
		if current, ok := cat.Get(key); ok {
			if current == text {
				return key, true
			}
			key = fmt.Sprintf("%s_%d", baseKey, n)
			continue
		}
		if cat.Has(key) {
			// occupied by a nested object
			key = fmt.Sprintf("%s_%d", baseKey, n)
			continue
		}
		cat.Set(key, text)
		return key, false
	}
}
