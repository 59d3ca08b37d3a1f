package extract

import (
	"encoding/json"
	"fmt"
	"io"
	"io/fs"
	"time"

	"chiavi/internal/catalog"
	"chiavi/internal/fsio"
	"chiavi/internal/log"
	"chiavi/internal/source"
)

// Options are the per-run extractor settings.
type Options struct {
	// Write persists the merged catalogs; otherwise the run is a dry pass.
	Write bool
	// Verbose prints per-file candidate counts.
	Verbose bool
	// ForceNamespace routes every candidate into one namespace,
	// overriding the path heuristics.
	ForceNamespace catalog.Namespace
}

// NamespaceStats counts the merge outcome for one namespace.
type NamespaceStats struct {
	Total    int `json:"total"`
	Added    int `json:"added"`
	Existing int `json:"existing"`
}

// Report is the JSON document written after every run.
type Report struct {
	GeneratedAt  time.Time                 `json:"generatedAt"`
	TotalEntries int                       `json:"totalEntries"`
	Namespaces   map[string]NamespaceStats `json:"namespaces"`
	Entries      []Candidate               `json:"entries"`
}

// Extractor scans the source tree for user-facing literals and merges
// them into the translation catalogs.
type Extractor struct {
	Source     fs.FS          // rooted at the source directory
	Store      *catalog.Store // rooted at the locales directory
	Reports    fsio.Writer    // destination for the JSON report
	ReportPath string
	Out        io.Writer // human-readable progress and summary
	Log        *log.Logger
	Now        func() time.Time // defaults to time.Now
}

// Run executes one extraction pass. A file that fails to scan is logged
// and skipped; anything else is fatal.
func (e *Extractor) Run(opts Options) (*Report, error) {
	files, err := source.Walker{FS: e.Source}.Collect()
	if err != nil {
		return nil, fmt.Errorf("collect source files: %w", err)
	}

	var candidates []Candidate
	for _, file := range files {
		data, err := fs.ReadFile(e.Source, file)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", file, err)
		}
		found, err := ScanFile(string(data))
		if err != nil {
			e.Log.Warn("skipping file that failed to scan", log.NewFields().
				WithOperation(log.OpScan).
				WithFile(file).
				WithError(err).
				ToSlice()...)
			continue
		}
		for i := range found {
			found[i].File = file
			if opts.ForceNamespace != "" {
				found[i].Namespace = string(opts.ForceNamespace)
			} else {
				found[i].Namespace = string(NamespaceForPath(file))
			}
		}
		if opts.Verbose {
			fmt.Fprintf(e.Out, "%s: %d candidates\n", file, len(found))
		}
		candidates = append(candidates, found...)
	}

	report := &Report{
		GeneratedAt: e.now(),
		Namespaces:  make(map[string]NamespaceStats),
	}

	// Merge per namespace in a fixed order so re-runs are deterministic.
	catalogs := make(map[catalog.Namespace]catalog.Catalog)
	for _, ns := range catalog.All() {
		stats := NamespaceStats{}
		for i := range candidates {
			if candidates[i].Namespace != string(ns) {
				continue
			}
			cat, ok := catalogs[ns]
			if !ok {
				cat, err = e.Store.LoadOrEmpty(ns)
				if err != nil {
					return nil, err
				}
				catalogs[ns] = cat
			}
			c := &candidates[i]
			base := GenerateKey(c.Text, c.File, c.Line, c.Kind)
			key, existing := Assign(cat, base, c.Text)
			c.Key = key
			if existing {
				c.Status = "existing"
				stats.Existing++
			} else {
				c.Status = "added"
				stats.Added++
			}
			stats.Total++
		}
		if stats.Total > 0 {
			report.Namespaces[string(ns)] = stats
		}
	}
	report.Entries = candidates
	report.TotalEntries = len(candidates)

	if opts.Write {
		for ns, cat := range catalogs {
			if err := e.Store.Save(ns, cat); err != nil {
				return nil, err
			}
		}
	}

	if err := e.writeReport(report); err != nil {
		return nil, err
	}

	e.printSummary(report, opts)
	return report, nil
}

func (e *Extractor) now() time.Time {
	if e.Now != nil {
		return e.Now()
	}
	return time.Now()
}

func (e *Extractor) writeReport(report *Report) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	data = append(data, '\n')
	if err := e.Reports.WriteFile(e.ReportPath, data); err != nil {
		return fmt.Errorf("write report %s: %w", e.ReportPath, err)
	}
	return nil
}

func (e *Extractor) printSummary(report *Report, opts Options) {
	fmt.Fprintf(e.Out, "\n%d candidate strings found\n", report.TotalEntries)
	for _, ns := range catalog.All() {
		stats, ok := report.Namespaces[string(ns)]
		if !ok {
			continue
		}
		fmt.Fprintf(e.Out, "  %-10s %3d total, %3d added, %3d existing\n",
			ns, stats.Total, stats.Added, stats.Existing)
	}
	if opts.Write {
		fmt.Fprintf(e.Out, "catalogs updated under %s/\n", e.Store.Locale())
	} else {
		fmt.Fprintln(e.Out, "dry run: pass --write to persist catalog changes")
	}
	fmt.Fprintf(e.Out, "report written to %s\n", e.ReportPath)
}
