// Package imaging provides content-sniffed image probing and the natural
// alphanumeric ordering used to enumerate an image stack from disk.
package imaging

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	// Register the decoders image.DecodeConfig sniffs against. Detection is
	// driven by file content, never by extension.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"imageplane/internal/models"
)

// IsImageFile reports whether the file at path holds image data in a
// recognized format, judged by its content rather than its name.
func IsImageFile(path string) bool {
	width, height := Dimensions(path)
	return width != -1 && height != -1
}

// Dimensions returns the pixel width and height of the image at path.
// It returns (-1, -1) if the file cannot be read or is not a recognized
// image format.
func Dimensions(path string) (int, int) {
	f, err := os.Open(path)
	if err != nil {
		return -1, -1
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return -1, -1
	}
	return cfg.Width, cfg.Height
}

// NewStackFromLocation builds an image stack from location, which may be a
// directory of images or a single image file.
//
// For a directory, entries are filtered by content sniffing and ordered by
// natural alphanumeric sort so that "img2.png" precedes "img10.png". A single
// recognized image file becomes a 1-frame stack. The stack's pixel dimensions
// are probed from the first frame; all frames are assumed to share them.
func NewStackFromLocation(location string) (*models.ImageStack, error) {
	info, err := os.Stat(location)
	if err != nil {
		return nil, fmt.Errorf("stat image set location: %w", err)
	}

	var paths []string
	if info.IsDir() {
		entries, err := os.ReadDir(location)
		if err != nil {
			return nil, fmt.Errorf("read image set directory: %w", err)
		}
		names := make([]string, 0, len(entries))
		for _, entry := range entries {
			if !entry.IsDir() {
				names = append(names, entry.Name())
			}
		}
		SortNatural(names)
		for _, name := range names {
			candidate := filepath.Join(location, name)
			if IsImageFile(candidate) {
				paths = append(paths, candidate)
			}
		}
	} else if IsImageFile(location) {
		paths = append(paths, location)
	} else {
		return nil, fmt.Errorf("%s is not a recognized image file", location)
	}

	if len(paths) == 0 {
		return nil, fmt.Errorf("no recognizable images at %s", location)
	}

	stack := &models.ImageStack{Paths: paths}
	stack.Width, stack.Height = Dimensions(paths[0])
	return stack, nil
}
