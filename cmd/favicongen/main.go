package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"favicons/favicon"
)

func main() {
	var params favicon.Params
	flag.StringVar(&params.Name, "name", "", "app name (default \"My App\")")
	flag.StringVar(&params.ShortName, "short-name", "", "short app name (default \"App\")")
	flag.StringVar(&params.ThemeColor, "theme-color", "", "theme color (default \"#ffffff\")")
	flag.StringVar(&params.BackgroundColor, "background-color", "", "background color (default \"#ffffff\")")
	flag.StringVar(&params.TileColor, "tile-color", "", "Windows tile color (default: theme color)")
	outDir := flag.String("o", ".", "output directory for the ZIP archive")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] <image>\n\n", filepath.Base(os.Args[0]))
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}

	path, err := run(flag.Arg(0), *outDir, params)
	if err != nil {
		log.Fatalf("Failed to generate favicons: %v", err)
	}

	fmt.Println(path)
}

func run(imagePath, outDir string, params favicon.Params) (string, error) {
	in, err := os.Open(imagePath)
	if err != nil {
		return "", fmt.Errorf("failed to open image: %w", err)
	}
	defer in.Close()

	img, format, err := favicon.Decode(in)
	if err != nil {
		return "", err
	}

	result, err := favicon.Generate(img, params)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(outDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	outPath := filepath.Join(outDir, result.Name)
	out, err := os.Create(outPath)
	if err != nil {
		return "", fmt.Errorf("failed to create archive: %w", err)
	}

	if err := result.WriteArchive(out); err != nil {
		out.Close()
		os.Remove(outPath)
		return "", err
	}
	if err := out.Close(); err != nil {
		return "", fmt.Errorf("failed to close archive: %w", err)
	}

	log.Printf("Generated %d files from %s image %s", len(result.Files), format, imagePath)
	return outPath, nil
}
