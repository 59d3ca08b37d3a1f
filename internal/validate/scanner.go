// Package validate detects translation-key references in source files and
// checks them against the loaded catalogs.
//
// Extraction is regex-based and deliberately approximate: a call named t()
// cannot be told apart from an unrelated function with the same name. The
// discard heuristics below keep the false-positive rate acceptable.
package validate

import (
	"regexp"
	"strings"

	"chiavi/internal/source"
)

// Reference is one apparent translation-key usage found in a source file.
type Reference struct {
	// Key is the dot-path, without any explicit namespace prefix.
	Key string
	// Namespace is the explicit namespace, or "" when the key had none.
	Namespace string
	// Line is the 1-based line of the match.
	Line int
	// Pattern is the matched source text, for the report.
	Pattern string
}

var (
	// Pass A: t('key') / t("ns:key.path")
	reCall = regexp.MustCompile(`\bt\(\s*['"]([^'"]+)['"]`)

	// Pass B: fooKey="ns:key.path" or fooKey: 'ns:key.path'
	reNamespacedProp = regexp.MustCompile(`([A-Za-z_][\w]*Key)\s*[:=]\s*\{?\s*['"]([A-Za-z_][\w]*):([A-Za-z0-9_][\w.]*)['"]`)

	// Pass C: fooKey="dot.path" (no colon)
	rePlainProp = regexp.MustCompile(`([A-Za-z_][\w]*Key)\s*[:=]\s*\{?\s*['"]([^'"]+)['"]`)

	// rePathShape is the dot-path shape pass C values must have.
	rePathShape = regexp.MustCompile(`^[A-Za-z0-9_][\w.]*$`)

	reUseTranslation = regexp.MustCompile(`useTranslation\(\s*['"]([\w-]+)['"]`)
)

// ignoredProps end in "Key" but never carry translation keys. They exempt
// pass C matches only: an explicit namespace prefix marks a deliberate
// reference even on these names.
var ignoredProps = map[string]bool{
	"accessorKey": true,
	"queryKey":    true,
	"mutationKey": true,
	"rowKey":      true,
	"colorKey":    true,
	"sortKey":     true,
	"cacheKey":    true,
	"storageKey":  true,
}

const maxKeyLength = 100

// ScanFile runs the three extraction passes over the raw file content.
func ScanFile(content string) []Reference {
	var refs []Reference
	refs = append(refs, scanCalls(content)...)
	refs = append(refs, scanNamespacedProps(content)...)
	refs = append(refs, scanPlainProps(content)...)
	return refs
}

// scanCalls is pass A: translation-call literals.
func scanCalls(content string) []Reference {
	var refs []Reference
	for _, m := range reCall.FindAllStringSubmatchIndex(content, -1) {
		literal := content[m[2]:m[3]]
		if strings.Contains(literal, "{{") || strings.Contains(literal, "))") || len(literal) > maxKeyLength {
			continue
		}
		ref := Reference{
			Line:    source.Line(content, m[0]),
			Pattern: content[m[0]:m[1]],
		}
		if idx := strings.Index(literal, ":"); idx >= 0 {
			ref.Namespace = literal[:idx]
			ref.Key = literal[idx+1:]
		} else {
			ref.Key = literal
		}
		refs = append(refs, ref)
	}
	return refs
}

// scanNamespacedProps is pass B: *Key props with an explicit namespace.
func scanNamespacedProps(content string) []Reference {
	var refs []Reference
	for _, m := range reNamespacedProp.FindAllStringSubmatchIndex(content, -1) {
		refs = append(refs, Reference{
			Namespace: content[m[4]:m[5]],
			Key:       content[m[6]:m[7]],
			Line:      source.Line(content, m[0]),
			Pattern:   content[m[0]:m[1]],
		})
	}
	return refs
}

// scanPlainProps is pass C: *Key props without a namespace. Values with a
// colon already matched pass B and are skipped here.
func scanPlainProps(content string) []Reference {
	var refs []Reference
	for _, m := range rePlainProp.FindAllStringSubmatchIndex(content, -1) {
		prop := content[m[2]:m[3]]
		value := content[m[4]:m[5]]
		// A colon means pass B already claimed this literal.
		if ignoredProps[prop] || strings.Contains(value, ":") || !rePathShape.MatchString(value) {
			continue
		}
		refs = append(refs, Reference{
			Key:     value,
			Line:    source.Line(content, m[0]),
			Pattern: content[m[0]:m[1]],
		})
	}
	return refs
}

// FileNamespace returns the namespace of the first useTranslation call in
// the file, or "" when there is none.
func FileNamespace(content string) string {
	m := reUseTranslation.FindStringSubmatch(content)
	if m == nil {
		return ""
	}
	return m[1]
}
