package validate

import (
	"fmt"
	"io/fs"

	"chiavi/internal/catalog"
	"chiavi/internal/log"
	"chiavi/internal/source"
)

// Finding is one key reference that failed validation.
type Finding struct {
	File      string
	Line      int
	Namespace string
	Key       string
	Pattern   string
	Reason    string
}

// FullKey renders the namespace-qualified key used for aggregation.
func (f Finding) FullKey() string {
	return f.Namespace + ":" + f.Key
}

// Result is the outcome of one validation run.
type Result struct {
	FilesScanned int
	Valid        int
	Missing      []Finding
}

// OK reports whether the run found no missing keys.
func (r *Result) OK() bool { return len(r.Missing) == 0 }

// Validator checks every key reference in the source tree against the
// loaded catalogs.
type Validator struct {
	Source           fs.FS
	Catalogs         map[catalog.Namespace]catalog.Catalog
	DefaultNamespace string
	Log              *log.Logger
}

// Run scans the tree and validates each resolved reference. The error
// return covers I/O problems only; missing keys land in the Result.
func (v *Validator) Run() (*Result, error) {
	files, err := source.Walker{FS: v.Source}.Collect()
	if err != nil {
		return nil, fmt.Errorf("collect source files: %w", err)
	}

	res := &Result{}
	for _, file := range files {
		data, err := fs.ReadFile(v.Source, file)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", file, err)
		}
		content := string(data)
		fileDefault := DefaultNamespace(content, v.DefaultNamespace)

		for _, ref := range ScanFile(content) {
			resolved := Resolve(ref, fileDefault)
			if reason := v.check(resolved); reason != "" {
				v.Log.Debug("missing key reference", log.NewFields().
					WithOperation(log.OpValidate).
					WithFile(file).
					WithLine(ref.Line).
					WithKey(resolved.Namespace, resolved.Key).
					WithReason(reason).
					ToSlice()...)
				res.Missing = append(res.Missing, Finding{
					File:      file,
					Line:      ref.Line,
					Namespace: resolved.Namespace,
					Key:       resolved.Key,
					Pattern:   ref.Pattern,
					Reason:    reason,
				})
				continue
			}
			res.Valid++
		}
		res.FilesScanned++
	}

	v.Log.Debug("validation finished",
		log.FieldCount, res.FilesScanned,
		"valid", res.Valid,
		"missing", len(res.Missing))
	return res, nil
}

// check returns an empty string for a valid reference, or the failure
// reason otherwise.
func (v *Validator) check(r Resolved) string {
	cat, ok := v.Catalogs[catalog.Namespace(r.Namespace)]
	if !ok {
		return fmt.Sprintf("Namespace %q does not exist", r.Namespace)
	}
	if !cat.Has(r.Key) {
		return fmt.Sprintf("Key not found in %s.json", r.Namespace)
	}
	return ""
}
