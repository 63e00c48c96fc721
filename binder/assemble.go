package binder

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pkg/errors"
)

// BuildCollection merges the given source PDFs (already sorted) into
// outputPath, prefixed by a cover page and a table of contents, and adds one
// top-level bookmark per section.
//
// Unreadable sources are skipped with a warning during cataloging. A source
// that cataloged fine but fails again during the merge is a fatal error, as
// is any failure to write the output.
func BuildCollection(outputPath string, inputPaths []string, coverImagePath string) error {
	entries, skips := BuildCatalog(inputPaths, CountPages)
	for _, s := range skips {
		fmt.Printf("Warning: skipping '%s' (%v)\n", s.Path, s.Err)
	}
	if len(entries) == 0 {
		return ErrNoReadablePDFs
	}

	cover := RenderCover(coverImagePath)
	coverPages := cover.PageCount()

	toc := RenderTOC(entries)
	tocPages := toc.PageCount()

	tempDir, err := os.MkdirTemp("", "pdfbind_*")
	if err != nil {
		return errors.Wrap(err, "failed to create temp directory")
	}
	defer os.RemoveAll(tempDir)

	coverPath := filepath.Join(tempDir, "cover.pdf")
	if err := cover.OutputFileAndClose(coverPath); err != nil {
		return errors.Wrap(err, "failed to write cover page")
	}

	tocPath := filepath.Join(tempDir, "toc.pdf")
	if err := toc.OutputFileAndClose(tocPath); err != nil {
		return errors.Wrap(err, "failed to write table of contents")
	}

	mergeList := make([]string, 0, len(entries)+2)
	mergeList = append(mergeList, coverPath, tocPath)
	for _, e := range entries {
		mergeList = append(mergeList, e.Path)
	}

	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	conf.CreateBookmarks = false

	if err := api.MergeCreateFile(mergeList, outputPath, false, conf); err != nil {
		return errors.Wrap(err, "failed to merge PDFs")
	}

	bms := buildBookmarks(coverPages, tocPages, entries)
	if err := api.AddBookmarksFile(outputPath, outputPath, bms, true, conf); err != nil {
		return errors.Wrap(err, "failed to add bookmarks")
	}

	return nil
}

// buildBookmarks lays out the outline targets. pdfcpu bookmarks address
// 1-based pages in the merged document: the cover is page 1, the TOC starts
// right after it, and each source document starts after everything appended
// before it.
func buildBookmarks(coverPages, tocPages int, entries []CatalogEntry) []pdfcpu.Bookmark {
	bms := make([]pdfcpu.Bookmark, 0, len(entries)+2)
	bms = append(bms,
		pdfcpu.Bookmark{Title: "Cover", PageFrom: 1},
		pdfcpu.Bookmark{Title: "Table of Contents", PageFrom: coverPages + 1},
	)

	next := coverPages + tocPages + 1
	for _, e := range entries {
		bms = append(bms, pdfcpu.Bookmark{Title: DisplayName(e.Name), PageFrom: next})
		next += e.PageCount
	}
	return bms
}
