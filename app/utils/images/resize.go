package images

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"golang.org/x/image/draw"
)

const (
	MaxUploadBytes = 2 << 20 // 2MB
	MaxDimension   = 800
)

var (
	ErrImageTooLarge    = errors.New("image exceeds upload size limit")
	ErrUnsupportedImage = errors.New("unsupported image type")
)

var allowedMime = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
}

// SaveResized validates an uploaded raster image, scales it to fit inside
// MaxDimension×MaxDimension and writes a JPEG derivative under destDir.
// It returns the path of the stored derivative.
func SaveResized(file io.ReadSeeker, size int64, destDir string) (string, error) {
	if size <= 0 || size > MaxUploadBytes {
		return "", fmt.Errorf("%w: %d bytes (max %d)", ErrImageTooLarge, size, MaxUploadBytes)
	}

	head := make([]byte, 512)
	n, _ := file.Read(head)
	contentType := http.DetectContentType(head[:n])
	if !allowedMime[contentType] {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedImage, contentType)
	}
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return "", err
	}

	src, _, err := image.Decode(file)
	if err != nil {
		return "", fmt.Errorf("invalid image: %w", err)
	}

	dst := Fit(src, MaxDimension)

	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create image dir: %w", err)
	}

	path := filepath.Join(destDir, uuid.New().String()+".jpg")
	out, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create image file: %w", err)
	}
	defer out.Close()

	if err := jpeg.Encode(out, dst, &jpeg.Options{Quality: 85}); err != nil {
		return "", fmt.Errorf("failed to encode image: %w", err)
	}

	return path, nil
}

// Fit scales the image down so neither side exceeds max, keeping the aspect
// ratio. Images already inside the bound are returned as-is.
func Fit(src image.Image, max int) image.Image {
	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= max && h <= max {
		return src
	}

	var dw, dh int
	if w >= h {
		dw = max
		dh = h * max / w
	} else {
		dh = max
		dw = w * max / h
	}
	if dw < 1 {
		dw = 1
	}
	if dh < 1 {
		dh = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, dw, dh))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, draw.Over, nil)
	return dst
}
