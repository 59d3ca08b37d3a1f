package validate

import (
	"fmt"
	"io"
	"path"
	"sort"

	"github.com/fatih/color"

	"chiavi/internal/catalog"
)

// Reporter renders validation results for the console.
type Reporter struct {
	Out        io.Writer
	LocalesDir string
	Locale     string
}

var (
	green  = color.New(color.FgGreen)
	red    = color.New(color.FgRed)
	yellow = color.New(color.FgYellow)
	bold   = color.New(color.Bold)
)

// Print writes the colorized pass/fail report.
func (rp Reporter) Print(res *Result) {
	fmt.Fprintf(rp.Out, "Scanned %d source files\n\n", res.FilesScanned)
	green.Fprintf(rp.Out, "✓ %d valid key references\n", res.Valid)

	if res.OK() {
		green.Fprintln(rp.Out, "✓ no missing keys")
		return
	}

	red.Fprintf(rp.Out, "✗ %d missing key references\n\n", len(res.Missing))
	rp.printByFile(res.Missing)
	rp.printSuggestions(res.Missing)
}

// printByFile groups findings per file with line, full key, the matched
// source text and the failure reason.
func (rp Reporter) printByFile(missing []Finding) {
	byFile := make(map[string][]Finding)
	for _, f := range missing {
		byFile[f.File] = append(byFile[f.File], f)
	}
	files := make([]string, 0, len(byFile))
	for file := range byFile {
		files = append(files, file)
	}
	sort.Strings(files)

	for _, file := range files {
		bold.Fprintf(rp.Out, "%s\n", file)
		findings := byFile[file]
		sort.Slice(findings, func(i, j int) bool { return findings[i].Line < findings[j].Line })
		for _, f := range findings {
			fmt.Fprintf(rp.Out, "  line %d: %s\n", f.Line, f.FullKey())
			fmt.Fprintf(rp.Out, "    matched: %s\n", f.Pattern)
			red.Fprintf(rp.Out, "    %s\n", f.Reason)
		}
		fmt.Fprintln(rp.Out)
	}
}

// printSuggestions aggregates missing keys across files and names the
// catalog file each one belongs in.
func (rp Reporter) printSuggestions(missing []Finding) {
	type entry struct {
		finding Finding
		count   int
	}
	agg := make(map[string]*entry)
	for _, f := range missing {
		full := f.FullKey()
		if e, ok := agg[full]; ok {
			e.count++
			continue
		}
		agg[full] = &entry{finding: f, count: 1}
	}
	keys := make([]string, 0, len(agg))
	for full := range agg {
		keys = append(keys, full)
	}
	sort.Strings(keys)

	bold.Fprintf(rp.Out, "%d distinct missing keys:\n", len(keys))
	for _, full := range keys {
		e := agg[full]
		target := path.Join(rp.LocalesDir, rp.Locale, e.finding.Namespace+".json")
		fmt.Fprintf(rp.Out, "  %s (%d reference", full, e.count)
		if e.count != 1 {
			fmt.Fprint(rp.Out, "s")
		}
		fmt.Fprintf(rp.Out, ") -> add to %s\n", target)
	}
}

// PrintCoverage writes the per-locale coverage summary. Gaps are warnings
// only and never affect the exit code.
func (rp Reporter) PrintCoverage(locale string, covs []catalog.Coverage) {
	missing, stale := 0, 0
	for _, cov := range covs {
		missing += len(cov.Missing)
		stale += len(cov.Stale)
	}
	if missing == 0 && stale == 0 {
		green.Fprintf(rp.Out, "locale %s: in sync with %s\n", locale, rp.Locale)
		return
	}
	yellow.Fprintf(rp.Out, "locale %s: %d missing, %d stale translations\n", locale, missing, stale)
	for _, cov := range covs {
		for _, key := range cov.Missing {
			fmt.Fprintf(rp.Out, "  missing %s:%s\n", cov.Namespace, key)
		}
		for _, key := range cov.Stale {
			fmt.Fprintf(rp.Out, "  stale   %s:%s\n", cov.Namespace, key)
		}
	}
}
