// Package source walks the application source tree and selects the files
// the translation tools care about.
package source

import (
	"io/fs"
	"path"
)

// Extensions lists the file extensions that are scanned.
var Extensions = []string{".ts", ".tsx", ".js", ".jsx"}

// skipDirs are build and vendor directories never worth scanning.
var skipDirs = map[string]bool{
	"node_modules": true,
	".git":         true,
	"dist":         true,
	"build":        true,
	"coverage":     true,
}

// Walker collects source files from an injected filesystem rooted at the
// source directory.
type Walker struct {
	FS fs.FS
}

// Collect returns the relative, slash-separated paths of every scannable
// file, in the deterministic order fs.WalkDir yields.
func (w Walker) Collect() ([]string, error) {
	var files []string
	err := fs.WalkDir(w.FS, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if skipDirs[d.Name()] {
				return fs.SkipDir
			}
			return nil
		}
		if hasScanExt(p) {
			files = append(files, p)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}

func hasScanExt(p string) bool {
	ext := path.Ext(p)
	for _, e := range Extensions {
		if ext == e {
			return true
		}
	}
	return false
}

// Line returns the 1-based line number of byte offset in content.
func Line(content string, offset int) int {
	line := 1
	for i := 0; i < offset && i < len(content); i++ {
		if content[i] == '\n' {
			line++
		}
	}
	return line
}
