//go:build ignore

// Builds the dist/ tree served in production: every template and static
// asset minified, directory layout preserved. Run with `go run build.go`.
package main

import (
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/css"
	"github.com/tdewolff/minify/v2/html"
	"github.com/tdewolff/minify/v2/js"
)

var mediaTypes = map[string]string{
	".html": "text/html",
	".css":  "text/css",
	".js":   "application/javascript",
}

func main() {
	m := minify.New()
	m.AddFunc("text/html", html.Minify)
	m.AddFunc("text/css", css.Minify)
	m.AddFunc("application/javascript", js.Minify)

	total := 0
	for _, root := range []string{"templates", "static"} {
		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil || d.IsDir() {
				return err
			}
			mediaType, ok := mediaTypes[strings.ToLower(filepath.Ext(path))]
			if !ok {
				return copyFile(path, filepath.Join("dist", path))
			}
			if err := minifyFile(m, path, filepath.Join("dist", path), mediaType); err != nil {
				return fmt.Errorf("minify %s: %w", path, err)
			}
			total++
			return nil
		})
		if err != nil {
			log.Fatalf("Building dist/%s failed: %v", root, err)
		}
	}
	fmt.Printf("Minified %d files into dist/\n", total)
}

func minifyFile(m *minify.M, srcPath, dstPath, mediaType string) error {
	src, err := os.ReadFile(srcPath)
	if err != nil {
		return err
	}
	minified, err := m.Bytes(mediaType, src)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(dstPath), 0755); err != nil {
		return err
	}
	if err := os.WriteFile(dstPath, minified, 0644); err != nil {
		return err
	}
	fmt.Printf("%s: %d -> %d bytes\n", srcPath, len(src), len(minified))
	return nil
}

// copyFile carries assets the minifier has no handler for (images, fonts)
// into dist/ unchanged.
func copyFile(srcPath, dstPath string) error {
	src, err := os.ReadFile(srcPath)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(dstPath), 0755); err != nil {
		return err
	}
	return os.WriteFile(dstPath, src, 0644)
}
