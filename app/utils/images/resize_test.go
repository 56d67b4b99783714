package images

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 128, A: 255})
		}
	}

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestFitLeavesSmallImagesAlone(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 200, 100))
	dst := Fit(src, MaxDimension)
	assert.Equal(t, src.Bounds(), dst.Bounds())
}

func TestFitScalesLandscape(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 1600, 800))
	dst := Fit(src, MaxDimension)
	assert.Equal(t, 800, dst.Bounds().Dx())
	assert.Equal(t, 400, dst.Bounds().Dy())
}

func TestFitScalesPortrait(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 600, 2400))
	dst := Fit(src, MaxDimension)
	assert.Equal(t, 200, dst.Bounds().Dx())
	assert.Equal(t, 800, dst.Bounds().Dy())
}

func TestSaveResizedWritesJPEGDerivative(t *testing.T) {
	dir := t.TempDir()
	data := pngBytes(t, 1200, 900)

	path, err := SaveResized(bytes.NewReader(data), int64(len(data)), dir)
	require.NoError(t, err)
	assert.Equal(t, ".jpg", filepath.Ext(path))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	img, err := jpeg.Decode(f)
	require.NoError(t, err)
	assert.LessOrEqual(t, img.Bounds().Dx(), MaxDimension)
	assert.LessOrEqual(t, img.Bounds().Dy(), MaxDimension)
}

func TestSaveResizedRejectsOversizedUploads(t *testing.T) {
	data := pngBytes(t, 10, 10)

	_, err := SaveResized(bytes.NewReader(data), MaxUploadBytes+1, t.TempDir())
	assert.ErrorIs(t, err, ErrImageTooLarge)

	_, err = SaveResized(bytes.NewReader(data), 0, t.TempDir())
	assert.ErrorIs(t, err, ErrImageTooLarge)
}

func TestSaveResizedRejectsNonImages(t *testing.T) {
	data := []byte("definitely not an image")

	_, err := SaveResized(bytes.NewReader(data), int64(len(data)), t.TempDir())
	assert.ErrorIs(t, err, ErrUnsupportedImage)
}
