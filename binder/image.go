package binder

import (
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
)

// ImageProbe is the result of inspecting an image file: valid pixel
// dimensions, a missing file, or a decode failure.
type ImageProbe struct {
	Width   int
	Height  int
	Missing bool
	Err     error
}

// ProbeImage inspects the image at path and reports its pixel dimensions.
// A nonexistent file is reported as Missing rather than as an error.
func ProbeImage(path string) ImageProbe {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return ImageProbe{Missing: true}
		}
		return ImageProbe{Err: err}
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return ImageProbe{Err: err}
	}

	return ImageProbe{Width: cfg.Width, Height: cfg.Height}
}
