package raster

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	"image/png"
)

// FrameBuffer は画像の描画バッファを表します
type FrameBuffer struct {
	img        *image.RGBA
	background *color.RGBA
}

// NewFrameBuffer は新しいフレームバッファを作成します。backgroundがnilなら透過です
func NewFrameBuffer(width, height int, background *color.RGBA) *FrameBuffer {
	img := image.NewRGBA(image.Rect(0, 0, width, height))

	if background != nil {
		draw.Draw(img, img.Bounds(), image.NewUniform(*background), image.Point{}, draw.Src)
	}

	return &FrameBuffer{
		img:        img,
		background: background,
	}
}

// GetPixel は指定された座標のピクセルを取得します
func (fb *FrameBuffer) GetPixel(x, y int) color.Color {
	if image.Pt(x, y).In(fb.img.Bounds()) {
		return fb.img.At(x, y)
	}
	return color.Transparent
}

// Bounds はフレームバッファの境界を返します
func (fb *FrameBuffer) Bounds() image.Rectangle {
	return fb.img.Bounds()
}

// EncodePNG はフレームバッファをPNG形式でエンコードします
func (fb *FrameBuffer) EncodePNG() ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, fb.img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Image は内部の画像を返します
func (fb *FrameBuffer) Image() *image.RGBA {
	return fb.img
}
