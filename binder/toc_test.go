package binder

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tocEntries(n int) []CatalogEntry {
	entries := make([]CatalogEntry, n)
	page := 1
	for i := range entries {
		entries[i] = CatalogEntry{
			Name:      fmt.Sprintf("doc_%03d.pdf", i),
			StartPage: page,
			PageCount: 1,
		}
		page++
	}
	return entries
}

func TestRenderTOCSinglePage(t *testing.T) {
	pdf := RenderTOC(tocEntries(3))
	require.False(t, pdf.Err(), "fpdf error: %v", pdf.Error())
	assert.Equal(t, 1, pdf.PageCount())
}

func TestRenderTOCPagination(t *testing.T) {
	// With the letter layout constants, 25 rows fit the first page and
	// continuation pages hold 26 rows each.
	assert.Equal(t, 1, RenderTOC(tocEntries(25)).PageCount())
	assert.Equal(t, 2, RenderTOC(tocEntries(26)).PageCount())
	assert.Equal(t, 2, RenderTOC(tocEntries(51)).PageCount())
	assert.Equal(t, 3, RenderTOC(tocEntries(52)).PageCount())
}

func TestRenderTOCLongNameOmitsLeader(t *testing.T) {
	entries := []CatalogEntry{{
		Name:      "a_very_long_document_name_that_certainly_runs_past_the_leader_region_of_the_row_and_then_some.pdf",
		StartPage: 1,
		PageCount: 1,
	}}
	pdf := RenderTOC(entries)
	require.False(t, pdf.Err(), "fpdf error: %v", pdf.Error())
	assert.Equal(t, 1, pdf.PageCount())
}

func TestRenderTOCWritesValidPDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "toc.pdf")

	pdf := RenderTOC(tocEntries(30))
	require.NoError(t, pdf.OutputFileAndClose(path))

	n, err := CountPages(path)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}
