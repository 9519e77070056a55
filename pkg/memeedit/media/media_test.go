package media

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shinya/memeedit/pkg/memeedit/editor"
)

func testImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 8, 6))
	img.Set(1, 1, color.RGBA{255, 0, 0, 255})
	return img
}

func encodePNG(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, testImage()))
	return buf.Bytes()
}

func TestDecodeImage(t *testing.T) {
	var jpg bytes.Buffer
	require.NoError(t, jpeg.Encode(&jpg, testImage(), nil))

	tests := []struct {
		name       string
		data       []byte
		wantFormat string
	}{
		{name: "png", data: encodePNG(t), wantFormat: "png"},
		{name: "jpeg", data: jpg.Bytes(), wantFormat: "jpeg"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img, format, err := DecodeImage(tt.data)
			require.NoError(t, err)
			assert.Equal(t, tt.wantFormat, format)
			assert.Equal(t, image.Rect(0, 0, 8, 6), img.Bounds())
		})
	}
}

func TestDecodeImage_Unsupported(t *testing.T) {
	_, _, err := DecodeImage([]byte("just some text"))
	require.ErrorIs(t, err, ErrUnsupportedImage)
}

func TestDecodeImage_Corrupt(t *testing.T) {
	data := encodePNG(t)
	_, _, err := DecodeImage(data[:20])
	require.Error(t, err)
}

func TestLoadImage_Missing(t *testing.T) {
	_, err := LoadImage(filepath.Join(t.TempDir(), "nope.png"))
	require.Error(t, err)
}

func TestFileSource(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "photo.png")
	require.NoError(t, os.WriteFile(path, encodePNG(t), 0o644))

	src := NewFileSource(nil)
	assert.True(t, src.Available(editor.SourceLibrary))
	assert.False(t, src.Available(editor.SourceCamera))

	var got editor.Acquisition
	src.Select(path)
	src.RequestImage(editor.SourceLibrary, func(a editor.Acquisition) { got = a })
	assert.False(t, got.Cancelled)
	require.NotNil(t, got.Image)
	assert.NoError(t, src.Err())

	// 選択は1回で消費される
	src.RequestImage(editor.SourceLibrary, func(a editor.Acquisition) { got = a })
	assert.True(t, got.Cancelled)

	src.Select(path)
	src.RequestImage(editor.SourceCamera, func(a editor.Acquisition) { got = a })
	assert.True(t, got.Cancelled)
}

func TestFileSource_BadFileIsCancellation(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("hello"), 0o644))

	src := NewFileSource(nil)
	src.Select(path)

	var got editor.Acquisition
	src.RequestImage(editor.SourceLibrary, func(a editor.Acquisition) { got = a })
	assert.True(t, got.Cancelled)
	require.ErrorIs(t, src.Err(), ErrUnsupportedImage)
}

func TestFileShare(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	share := NewFileShare(dir, nil)

	var ok bool
	share.PresentShare(testImage(), func(succeeded bool) { ok = succeeded })
	require.True(t, ok)
	require.NoError(t, share.Err())

	path := share.LastPath()
	assert.Equal(t, dir, filepath.Dir(path))
	assert.True(t, strings.HasPrefix(filepath.Base(path), "meme-"))

	img, err := LoadImage(path)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 8, 6), img.Bounds())
}

func TestFileShare_Failure(t *testing.T) {
	base := t.TempDir()
	blocker := filepath.Join(base, "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	share := NewFileShare(filepath.Join(blocker, "out"), nil)
	ok := true
	share.PresentShare(testImage(), func(succeeded bool) { ok = succeeded })
	assert.False(t, ok)
	assert.Error(t, share.Err())
	assert.Empty(t, share.LastPath())

	share = NewFileShare(base, nil)
	share.PresentShare(nil, func(succeeded bool) { ok = succeeded })
	assert.False(t, ok)
}
