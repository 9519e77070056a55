package raster

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/fogleman/gg"
	xfont "golang.org/x/image/font"

	"github.com/shinya/memeedit/internal/logger"
	"github.com/shinya/memeedit/pkg/memeedit/caption"
	"github.com/shinya/memeedit/pkg/memeedit/viewport"
)

// minFontSize はキャプションを縮小する際の下限です
const minFontSize = 10.0

// FaceSource はファミリとサイズからフェイスを供給します
type FaceSource interface {
	Face(family string, size float64) (xfont.Face, error)
}

// Context は描画コンテキストを表します
type Context struct {
	fb    *FrameBuffer
	dc    *gg.Context
	faces FaceSource
	log   *logger.Logger
}

// NewContext は新しい描画コンテキストを作成します
func NewContext(fb *FrameBuffer, faces FaceSource, log *logger.Logger) *Context {
	return &Context{
		fb:    fb,
		dc:    gg.NewContextForRGBA(fb.Image()),
		faces: faces,
		log:   log,
	}
}

// DrawImageFit は画像を指定矩形に拡大縮小して描画します
func (c *Context) DrawImageFit(img image.Image, r viewport.Rect) {
	if img == nil || r.Width <= 0 || r.Height <= 0 {
		return
	}
	b := img.Bounds()

	c.dc.Push()
	defer c.dc.Pop()
	c.dc.Translate(r.X, r.Y)
	c.dc.Scale(r.Width/float64(b.Dx()), r.Height/float64(b.Dy()))
	c.dc.DrawImage(img, -b.Min.X, -b.Min.Y)
}

// FillRect は矩形を塗りつぶします
func (c *Context) FillRect(r viewport.Rect, col color.Color) {
	c.dc.DrawRectangle(r.X, r.Y, r.Width, r.Height)
	c.dc.SetColor(col)
	c.dc.Fill()
}

// DrawCaption は縁取り付きのキャプションを矩形の中央に1行で描画します。
// 幅に収まらない場合はフォントを縮小します
func (c *Context) DrawCaption(text string, attrs caption.Attributes, r viewport.Rect) error {
	if text == "" {
		return nil
	}
	if c.faces == nil {
		return fmt.Errorf("no font source")
	}

	size := attrs.Font.Size
	face, err := c.faces.Face(attrs.Font.Family, size)
	if err != nil {
		return fmt.Errorf("failed to load face %s: %w", attrs.Font.Family, err)
	}
	c.dc.SetFontFace(face)

	if w, _ := c.dc.MeasureString(text); w > r.Width && w > 0 {
		size = math.Max(minFontSize, math.Floor(size*r.Width/w))
		if face, err = c.faces.Face(attrs.Font.Family, size); err != nil {
			return fmt.Errorf("failed to load face %s: %w", attrs.Font.Family, err)
		}
		c.dc.SetFontFace(face)
		c.log.WithFields(map[string]any{"text": text, "size": size}).Debug("caption shrunk to fit")
	}

	cx, cy := r.Center()
	scaled := attrs
	scaled.Font.Size = size
	outline := scaled.OutlinePixels(1)

	// 縁取り: 半径outlineの円内にずらして縁取り色で描く
	if outline > 0 {
		c.dc.SetColor(attrs.StrokeColor)
		ri := int(math.Ceil(outline))
		for dy := -ri; dy <= ri; dy++ {
			for dx := -ri; dx <= ri; dx++ {
				if dx == 0 && dy == 0 {
					continue
				}
				if float64(dx*dx+dy*dy) > outline*outline+0.5 {
					continue
				}
				c.dc.DrawStringAnchored(text, cx+float64(dx), cy+float64(dy), 0.5, 0.5)
			}
		}
	}

	if attrs.Filled() {
		c.dc.SetColor(attrs.FillColor)
		c.dc.DrawStringAnchored(text, cx, cy, 0.5, 0.5)
	}
	return nil
}
