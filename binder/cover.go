package binder

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"math"
	"os"

	"codeberg.org/go-pdf/fpdf"
	"github.com/nfnt/resize"
	"github.com/pkg/errors"
)

// Cover images larger than this on their longest side are downsampled
// before embedding to keep the output file size reasonable.
const maxCoverPixels = 2200

// RenderCover produces the single cover page. When the image at imagePath
// exists and decodes, it is scaled to fit the letter page without cropping
// and centered. A missing file is the normal fallback case and renders a
// plain title page silently; decode or drawing failures fall back too, but
// with a warning.
func RenderCover(imagePath string) *fpdf.Fpdf {
	probe := ProbeImage(imagePath)
	switch {
	case probe.Missing:
		return renderFallbackCover()
	case probe.Err != nil:
		fmt.Printf("Warning: Could not add cover image: %v\n", probe.Err)
		return renderFallbackCover()
	}

	pdf, err := renderImageCover(imagePath, probe.Width, probe.Height)
	if err != nil {
		fmt.Printf("Warning: Could not add cover image: %v\n", err)
		return renderFallbackCover()
	}
	return pdf
}

func renderImageCover(imagePath string, imgW, imgH int) (*fpdf.Fpdf, error) {
	pdf := fpdf.New("P", "pt", "Letter", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	// Largest scale that keeps the whole image on the page.
	scale := math.Min(pageWidth/float64(imgW), pageHeight/float64(imgH))
	w := float64(imgW) * scale
	h := float64(imgH) * scale
	x := (pageWidth - w) / 2
	y := (pageHeight - h) / 2

	name := imagePath
	opt := fpdf.ImageOptions{ReadDpi: false}
	if imgW > maxCoverPixels || imgH > maxCoverPixels {
		buf, err := downsampleImage(imagePath)
		if err != nil {
			return nil, err
		}
		name = "cover"
		opt.ImageType = "PNG"
		pdf.RegisterImageOptionsReader(name, opt, buf)
	}
	pdf.ImageOptions(name, x, y, w, h, false, opt, 0, "")

	if pdf.Err() {
		return nil, pdf.Error()
	}
	return pdf, nil
}

func renderFallbackCover() *fpdf.Fpdf {
	pdf := fpdf.New("P", "pt", "Letter", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()
	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Helvetica", "B", 36)
	title := "Document Collection"
	textAt(pdf, pageWidth/2-pdf.GetStringWidth(title)/2, pageHeight/2, title)
	return pdf
}

// downsampleImage shrinks the image so its longest side is maxCoverPixels
// and returns it re-encoded as PNG.
func downsampleImage(path string) (*bytes.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, errors.Wrap(err, "decoding cover image")
	}

	bounds := img.Bounds()
	var resized image.Image
	if bounds.Dx() >= bounds.Dy() {
		resized = resize.Resize(maxCoverPixels, 0, img, resize.Lanczos3)
	} else {
		resized = resize.Resize(0, maxCoverPixels, img, resize.Lanczos3)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, resized); err != nil {
		return nil, errors.Wrap(err, "encoding resized cover image")
	}
	return &buf, nil
}
