package binder

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePNG(t *testing.T, path string, w, h int) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		img.Set(x, 0, color.RGBA{R: 200, A: 255})
	}
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
}

func TestProbeImage(t *testing.T) {
	dir := t.TempDir()

	missing := ProbeImage(filepath.Join(dir, "nope.png"))
	assert.True(t, missing.Missing)
	assert.NoError(t, missing.Err)

	path := filepath.Join(dir, "ok.png")
	writePNG(t, path, 64, 48)
	probe := ProbeImage(path)
	require.NoError(t, probe.Err)
	assert.False(t, probe.Missing)
	assert.Equal(t, 64, probe.Width)
	assert.Equal(t, 48, probe.Height)

	corrupt := filepath.Join(dir, "bad.png")
	require.NoError(t, os.WriteFile(corrupt, []byte("not an image"), 0644))
	probe = ProbeImage(corrupt)
	assert.False(t, probe.Missing)
	assert.Error(t, probe.Err)
}

func TestRenderCoverMissingImage(t *testing.T) {
	pdf := RenderCover(filepath.Join(t.TempDir(), "cover.png"))
	require.False(t, pdf.Err(), "fpdf error: %v", pdf.Error())
	assert.Equal(t, 1, pdf.PageCount())
}

func TestRenderCoverWithImage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cover.png")
	writePNG(t, path, 320, 200)

	pdf := RenderCover(path)
	require.False(t, pdf.Err(), "fpdf error: %v", pdf.Error())
	assert.Equal(t, 1, pdf.PageCount())
}

func TestRenderCoverCorruptImage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cover.png")
	require.NoError(t, os.WriteFile(path, []byte("garbage"), 0644))

	// A broken image falls back to the title page instead of failing.
	pdf := RenderCover(path)
	require.False(t, pdf.Err(), "fpdf error: %v", pdf.Error())
	assert.Equal(t, 1, pdf.PageCount())
}

func TestRenderCoverDownsamplesLargeImage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cover.png")
	writePNG(t, path, maxCoverPixels+200, 300)

	pdf := RenderCover(path)
	require.False(t, pdf.Err(), "fpdf error: %v", pdf.Error())
	assert.Equal(t, 1, pdf.PageCount())
}
