// Package extract discovers user-facing string literals in the source
// tree, synthesizes translation keys for them and merges them into the
// catalogs.
package extract

// Kind classifies the syntactic context a candidate was found in.
type Kind string

const (
	KindJSXText    Kind = "jsx-text"
	KindJSXAttr    Kind = "jsx-attr"
	KindObjectProp Kind = "object-prop"
	KindVariable   Kind = "variable"
	KindCallArg    Kind = "call-arg"
)

// Candidate is a literal string that might need to become a translation.
type Candidate struct {
	File string `json:"file"`
	Line int    `json:"line"`
	Text string `json:"text"`
	Kind Kind   `json:"kind"`
	// Attribute is the hint that flagged the literal: the JSX attribute,
	// object property, variable name or callee, depending on Kind.
	Attribute string `json:"attribute,omitempty"`
	Namespace string `json:"namespace"`
	Key       string `json:"key,omitempty"`
	// Status is "added" or "existing" after the catalog merge.
	Status string `json:"status,omitempty"`
}
