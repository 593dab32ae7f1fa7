package renderer

import (
	"fmt"
	"image"
	"os"

	"golang.org/x/image/bmp"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// DefaultSnapshotPath is where a frame is written when no path is given
const DefaultSnapshotPath = "RayTracing_Buffer.bmp"

// SaveBufferToImage writes the frame buffer as a BMP file
func SaveBufferToImage(img image.Image, filename string) error {
	if filename == "" {
		filename = DefaultSnapshotPath
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", filename, err)
	}

	if err := bmp.Encode(file, img); err != nil {
		file.Close()
		return fmt.Errorf("failed to encode %s: %w", filename, err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", filename, err)
	}

	core.Logger().Info("snapshot saved", "path", filename)
	return nil
}
