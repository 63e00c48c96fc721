package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	flag "github.com/ogier/pflag"

	"github.com/juruen/pdfbind/binder"
)

const usage = "Usage: pdfbind [--cover IMAGE] OUTPUT.pdf INPUT_DIR"

func main() {
	coverPath := flag.String("cover", "", "cover image path (default: static/cover.png next to the executable)")
	flag.Parse()

	args := flag.Args()
	if len(args) != 2 {
		fmt.Println(usage)
		os.Exit(1)
	}

	outPath := args[0]
	inDir := args[1]

	info, err := os.Stat(inDir)
	if err != nil || !info.IsDir() {
		fmt.Printf("Error: '%s' is not a directory\n", inDir)
		os.Exit(1)
	}

	pdfs, err := binder.ScanDirectory(inDir)
	if err != nil {
		if errors.Is(err, binder.ErrNoPDFs) {
			fmt.Printf("No PDFs found in %s\n", inDir)
		} else {
			fmt.Printf("Error: %v\n", err)
		}
		os.Exit(1)
	}

	if *coverPath == "" {
		*coverPath = defaultCoverPath()
	}

	fmt.Printf("Merging %d PDFs from '%s' -> '%s'\n", len(pdfs), inDir, outPath)
	fmt.Println("Adding cover page and table of contents...")

	if err := binder.BuildCollection(outPath, pdfs, *coverPath); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Done. Merged PDF is ready.")
}

// defaultCoverPath points at static/cover.png next to the executable, which
// is where a release archive places the bundled cover art.
func defaultCoverPath() string {
	exe, err := os.Executable()
	if err != nil {
		return filepath.Join("static", "cover.png")
	}
	return filepath.Join(filepath.Dir(exe), "static", "cover.png")
}
