package services

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
)

const thumbMaxWidth = 320

// MakeThumbnail writes a resized copy of the image at srcPath next to it
// with a _thumb suffix and returns the thumbnail path. Images already at or
// below the target width are copied unscaled.
func MakeThumbnail(srcPath string) (string, error) {
	img, err := imaging.Open(srcPath)
	if err != nil {
		return "", fmt.Errorf("open image: %w", err)
	}

	if img.Bounds().Dx() > thumbMaxWidth {
		img = imaging.Resize(img, thumbMaxWidth, 0, imaging.Lanczos)
	}

	ext := filepath.Ext(srcPath)
	dst := strings.TrimSuffix(srcPath, ext) + "_thumb" + ext
	if err := imaging.Save(img, dst); err != nil {
		return "", fmt.Errorf("save thumbnail: %w", err)
	}
	return dst, nil
}
