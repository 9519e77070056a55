package renderer

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shinya/memeedit/pkg/memeedit/caption"
	"github.com/shinya/memeedit/pkg/memeedit/font"
)

func solid(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func newScene(chrome bool) Scene {
	attrs := caption.ComputeAttributes(font.DefaultFamily, nil)
	return Scene{
		Image:         solid(320, 480, color.RGBA{0, 0, 255, 255}),
		Top:           CaptionLayer{Text: "TOP", Attributes: attrs},
		Bottom:        CaptionLayer{Text: "BOTTOM", Attributes: attrs},
		ChromeVisible: chrome,
	}
}

func TestRenderView_Size(t *testing.T) {
	black := color.RGBA{0, 0, 0, 255}
	r := New(Options{Width: 640, Height: 960, Background: &black}, font.NewManager(nil), nil)

	img, err := r.RenderView(newScene(false))
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 640, 960), img.Bounds())

	w, h := r.Size()
	assert.Equal(t, 640, w)
	assert.Equal(t, 960, h)
}

func TestRenderView_Chrome(t *testing.T) {
	black := color.RGBA{0, 0, 0, 255}
	r := New(Options{Width: 640, Height: 960, Background: &black}, font.NewManager(nil), nil)

	// ツールバー領域の中央付近（キャプションと重ならない位置）
	probeX, probeY := 5, 5

	withChrome, err := r.RenderView(newScene(true))
	require.NoError(t, err)
	assert.Equal(t, DefaultChromeColor, color.RGBAModel.Convert(withChrome.At(probeX, probeY)))
	assert.Equal(t, DefaultChromeColor, color.RGBAModel.Convert(withChrome.At(probeX, 960-probeY)))

	without, err := r.RenderView(newScene(false))
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{0, 0, 255, 255}, color.RGBAModel.Convert(without.At(probeX, probeY)))
}

func TestRenderView_CustomChromeColor(t *testing.T) {
	red := color.RGBA{255, 0, 0, 255}
	r := New(Options{Width: 640, Height: 960, ChromeColor: red}, font.NewManager(nil), nil)

	img, err := r.RenderView(newScene(true))
	require.NoError(t, err)
	assert.Equal(t, red, color.RGBAModel.Convert(img.At(1, 1)))
}

func TestRenderView_EmptyScene(t *testing.T) {
	r := New(Options{Width: 640, Height: 960}, font.NewManager(nil), nil)
	img, err := r.RenderView(Scene{})
	require.NoError(t, err)
	_, _, _, a := img.At(320, 480).RGBA()
	assert.Zero(t, a)
}

func TestRenderView_InvalidSize(t *testing.T) {
	r := New(Options{Width: 0, Height: 0}, font.NewManager(nil), nil)
	_, err := r.RenderView(newScene(false))
	require.Error(t, err)
}

func TestRenderView_MissingFaces(t *testing.T) {
	r := New(Options{Width: 640, Height: 960}, nil, nil)
	_, err := r.RenderView(newScene(false))
	require.Error(t, err)
}
