// Package viewport は編集画面の配置を解決します
package viewport

import (
	"fmt"
	"image"
)

const (
	// ToolbarHeight は上下ツールバーの高さです
	ToolbarHeight = 44.0
	// CaptionHeight はキャプション欄の高さです
	CaptionHeight = 60.0
	// CaptionMargin はキャプション欄とツールバーの間隔です
	CaptionMargin = 16.0
)

// Rect は浮動小数点の矩形を表します
type Rect struct {
	X, Y, Width, Height float64
}

// Center は矩形の中心を返します
func (r Rect) Center() (x, y float64) {
	return r.X + r.Width/2, r.Y + r.Height/2
}

// Contains は点が矩形内にあるかを返します
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Layout は解決された画面配置を表します
type Layout struct {
	Width, Height float64
	Image         Rect // アスペクト比を保ったまま中央に収めた画像領域
	TopBar        Rect
	BottomBar     Rect
	TopCaption    Rect
	BottomCaption Rect
}

// Resolve は画面サイズと画像サイズから配置を解決します
func Resolve(width, height int, img image.Rectangle) (*Layout, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid view size: %dx%d", width, height)
	}
	w, h := float64(width), float64(height)
	if h < 2*(ToolbarHeight+CaptionMargin+CaptionHeight) {
		return nil, fmt.Errorf("view height %d too small for captions", height)
	}

	l := &Layout{
		Width:     w,
		Height:    h,
		Image:     aspectFit(w, h, img),
		TopBar:    Rect{X: 0, Y: 0, Width: w, Height: ToolbarHeight},
		BottomBar: Rect{X: 0, Y: h - ToolbarHeight, Width: w, Height: ToolbarHeight},
	}
	l.TopCaption = Rect{X: 0, Y: ToolbarHeight + CaptionMargin, Width: w, Height: CaptionHeight}
	l.BottomCaption = Rect{X: 0, Y: h - ToolbarHeight - CaptionMargin - CaptionHeight, Width: w, Height: CaptionHeight}
	return l, nil
}

// aspectFit は画像を画面内に収める矩形を返します
func aspectFit(w, h float64, img image.Rectangle) Rect {
	iw, ih := float64(img.Dx()), float64(img.Dy())
	if iw <= 0 || ih <= 0 {
		return Rect{}
	}

	scale := w / iw
	if s := h / ih; s < scale {
		scale = s
	}
	fw, fh := iw*scale, ih*scale
	return Rect{X: (w - fw) / 2, Y: (h - fh) / 2, Width: fw, Height: fh}
}

// Scale は画像領域の拡大率を返します
func (l *Layout) Scale(img image.Rectangle) float64 {
	if img.Dx() == 0 {
		return 0
	}
	return l.Image.Width / float64(img.Dx())
}
