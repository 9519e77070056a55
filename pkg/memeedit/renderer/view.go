package renderer

import (
	"fmt"
	"image"
	"image/color"

	"github.com/shinya/memeedit/internal/logger"
	"github.com/shinya/memeedit/pkg/memeedit/caption"
	"github.com/shinya/memeedit/pkg/memeedit/raster"
	"github.com/shinya/memeedit/pkg/memeedit/viewport"
)

// CaptionLayer はキャプション1行分の表示状態です
type CaptionLayer struct {
	Text       string
	Attributes caption.Attributes
}

// Scene は編集画面の現在の表示状態です
type Scene struct {
	Image         image.Image
	Top           CaptionLayer
	Bottom        CaptionLayer
	ChromeVisible bool // ツールバーを描画するか
}

// Options はレンダリングオプションを表します
type Options struct {
	Width, Height int
	Background    *color.RGBA // nilで透過
	ChromeColor   color.Color // 既定は薄いグレー
}

// Renderer は表示状態を1枚の画像に平坦化します
type Renderer struct {
	opts  Options
	faces raster.FaceSource
	log   *logger.Logger
}

// DefaultChromeColor はツールバーの既定色です
var DefaultChromeColor = color.RGBA{R: 247, G: 247, B: 247, A: 255}

// New は新しいレンダラーを作成します
func New(opts Options, faces raster.FaceSource, log *logger.Logger) *Renderer {
	if opts.ChromeColor == nil {
		opts.ChromeColor = DefaultChromeColor
	}
	return &Renderer{opts: opts, faces: faces, log: log}
}

// Size は出力画像のサイズを返します
func (r *Renderer) Size() (width, height int) {
	return r.opts.Width, r.opts.Height
}

// RenderView は画像・キャプション・ツールバーを順に描画し、平坦化した画像を返します
func (r *Renderer) RenderView(scene Scene) (image.Image, error) {
	var bounds image.Rectangle
	if scene.Image != nil {
		bounds = scene.Image.Bounds()
	}

	layout, err := viewport.Resolve(r.opts.Width, r.opts.Height, bounds)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve layout: %w", err)
	}

	fb := raster.NewFrameBuffer(r.opts.Width, r.opts.Height, r.opts.Background)
	rc := raster.NewContext(fb, r.faces, r.log)

	r.log.WithFields(map[string]any{
		"width":  r.opts.Width,
		"height": r.opts.Height,
		"chrome": scene.ChromeVisible,
	}).Debug("rendering view")

	rc.DrawImageFit(scene.Image, layout.Image)

	if err := rc.DrawCaption(scene.Top.Text, scene.Top.Attributes, layout.TopCaption); err != nil {
		return nil, fmt.Errorf("failed to draw top caption: %w", err)
	}
	if err := rc.DrawCaption(scene.Bottom.Text, scene.Bottom.Attributes, layout.BottomCaption); err != nil {
		return nil, fmt.Errorf("failed to draw bottom caption: %w", err)
	}

	// ツールバーは最前面
	if scene.ChromeVisible {
		rc.FillRect(layout.TopBar, r.opts.ChromeColor)
		rc.FillRect(layout.BottomBar, r.opts.ChromeColor)
	}

	return fb.Image(), nil
}
