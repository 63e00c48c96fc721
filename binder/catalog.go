package binder

import (
	"path/filepath"
	"sort"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pkg/errors"
)

var (
	// ErrNoPDFs means the input directory contains no *.pdf files at all.
	ErrNoPDFs = errors.New("no PDF files found")

	// ErrNoReadablePDFs means files matched the glob but none could be opened.
	ErrNoReadablePDFs = errors.New("no readable PDFs to merge")
)

// CatalogEntry describes one source document in merge order.
//
// StartPage is the 1-based page number among the source documents only.
// It deliberately ignores the cover and TOC pages that will be inserted in
// front of them: it is the number printed in the TOC, not the absolute page
// in the final file.
type CatalogEntry struct {
	Path      string // full path to the source file
	Name      string // base name, extension retained
	StartPage int
	PageCount int
}

// SkipWarning records a source file that was excluded from the catalog.
type SkipWarning struct {
	Path string
	Err  error
}

// PageCounter reports the number of pages in the PDF at path.
type PageCounter func(path string) (int, error)

// CountPages is the production PageCounter, backed by pdfcpu. Opening the
// file and counting its pages doubles as the readability check.
func CountPages(path string) (int, error) {
	return api.PageCountFile(path)
}

// ScanDirectory lists the PDF files directly inside dir, sorted
// lexicographically by full path. The *.pdf match is case-sensitive and the
// scan is not recursive.
func ScanDirectory(dir string) ([]string, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.pdf"))
	if err != nil {
		return nil, errors.Wrapf(err, "scanning %s", dir)
	}
	if len(paths) == 0 {
		return nil, ErrNoPDFs
	}
	sort.Strings(paths)
	return paths, nil
}

// BuildCatalog probes each path with count and records its page count and
// start page, preserving the given order. Unreadable files are excluded and
// returned as skip warnings; they do not advance the page cursor.
func BuildCatalog(paths []string, count PageCounter) ([]CatalogEntry, []SkipWarning) {
	var entries []CatalogEntry
	var skips []SkipWarning

	cursor := 0 // pages accumulated before cover and TOC are inserted
	for _, p := range paths {
		n, err := count(p)
		if err != nil {
			skips = append(skips, SkipWarning{Path: p, Err: err})
			continue
		}
		entries = append(entries, CatalogEntry{
			Path:      p,
			Name:      filepath.Base(p),
			StartPage: cursor + 1,
			PageCount: n,
		})
		cursor += n
	}

	return entries, skips
}

// DisplayName converts a source file name to the label used in the TOC and
// in bookmarks: a trailing ".pdf" is dropped and underscores become spaces.
func DisplayName(name string) string {
	name = strings.TrimSuffix(name, ".pdf")
	return strings.ReplaceAll(name, "_", " ")
}
