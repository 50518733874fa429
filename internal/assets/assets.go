// Package assets copies static files into the output tree, optionally
// re-encoding PNG images along the way.
package assets

import (
	"fmt"
	"image/png"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/otiai10/copy"
)

// Sync copies every file under srcDir into dstDir. With optimizeImages set,
// PNG files are re-encoded at best compression, which also drops ancillary
// chunks (text metadata, timestamps) from the original encode.
//
// A missing source directory is not an error: a site without static assets
// is a valid site.
func Sync(srcDir, dstDir string, optimizeImages bool) error {
	if _, err := os.Stat(srcDir); os.IsNotExist(err) {
		return nil
	}

	if err := copy.Copy(srcDir, dstDir); err != nil {
		return fmt.Errorf("copying static assets: %w", err)
	}

	if !optimizeImages {
		return nil
	}
	return optimizePNGs(dstDir, srcDir)
}

// optimizePNGs re-encodes every .png under dir whose relative path exists
// in srcDir, leaving unrelated output files (rendered pages, the
// stylesheet) untouched.
func optimizePNGs(dir, srcDir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.EqualFold(filepath.Ext(path), ".png") {
			return nil
		}

		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		if _, err := os.Stat(filepath.Join(srcDir, rel)); err != nil {
			return nil
		}

		return reencodePNG(path)
	})
}

// reencodePNG decodes and rewrites one PNG file in place.
func reencodePNG(path string) error {
	f, err := os.Open(path) // #nosec G304 -- path comes from walking the output dir
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}

	img, err := png.Decode(f)
	closeErr := f.Close()
	if err != nil {
		return fmt.Errorf("decoding %s: %w", path, err)
	}
	if closeErr != nil {
		return fmt.Errorf("closing %s: %w", path, closeErr)
	}

	out, err := os.Create(path) // #nosec G304
	if err != nil {
		return fmt.Errorf("rewriting %s: %w", path, err)
	}

	encoder := png.Encoder{CompressionLevel: png.BestCompression}
	if err := encoder.Encode(out, img); err != nil {
		_ = out.Close()
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	return out.Close()
}
