// Package memeedit は画像に2行のキャプションを重ねてミーム画像を作るエディタです
package memeedit

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"

	"github.com/shinya/memeedit/internal/logger"
	"github.com/shinya/memeedit/pkg/memeedit/editor"
	"github.com/shinya/memeedit/pkg/memeedit/font"
	"github.com/shinya/memeedit/pkg/memeedit/meme"
	"github.com/shinya/memeedit/pkg/memeedit/renderer"
)

// FontSource はフォントの供給源を表します
type FontSource = font.FontSource

// Options はエディタの構成オプションを表します
type Options struct {
	Width, Height  int         // 合成画像のサイズ
	Background     *color.RGBA // nilで透過
	FontDirs       []string    // 追加のフォントディレクトリ
	SystemFontScan bool        // trueでシステムフォントをスキャン
	Logger         *logger.Logger
}

// Collaborators はControllerに渡す外部コンポーネントです
type Collaborators struct {
	Source editor.ImageSource
	Share  editor.ShareSurface
	OnSave editor.SaveFunc
}

// グローバルフォントマネージャー
var globalFontManager = font.NewManager(nil)

// RegisterFonts はフォントを登録します
func RegisterFonts(fonts ...FontSource) error {
	return globalFontManager.RegisterFonts(fonts...)
}

// ClearFontCache は生成済みフェイスを破棄します
func ClearFontCache() {
	globalFontManager.ClearCache()
}

// Fonts はオプションに従ってフォントを読み込み、カタログを返します
func Fonts(opts Options) *font.Catalog {
	loadFonts(opts)
	return font.NewCatalog(globalFontManager)
}

func loadFonts(opts Options) {
	if len(opts.FontDirs) > 0 {
		_ = globalFontManager.ScanDirs(opts.FontDirs...)
	}
	if opts.SystemFontScan {
		_ = globalFontManager.ScanSystemFonts()
	}
}

func withDefaults(opts Options) Options {
	if opts.Width == 0 {
		opts.Width = 640
	}
	if opts.Height == 0 {
		opts.Height = 960
	}
	return opts
}

// NewController はレンダラーとフォントカタログを組み込んだControllerを作成します
func NewController(opts Options, collab Collaborators) (*editor.Controller, error) {
	opts = withDefaults(opts)
	catalog := Fonts(opts)

	r := renderer.New(renderer.Options{
		Width:      opts.Width,
		Height:     opts.Height,
		Background: opts.Background,
	}, globalFontManager, opts.Logger)

	return editor.NewController(editor.Options{
		Catalog:  catalog,
		Resolver: globalFontManager,
		Surface:  r,
		Source:   collab.Source,
		Share:    collab.Share,
		OnSave:   collab.OnSave,
		Logger:   opts.Logger,
	})
}

// RenderMeme は画像とキャプションから1枚のミームを合成します。
// 空のキャプションはプレースホルダーのまま、空のフォント名は既定フォントを使います
func RenderMeme(img image.Image, top, bottom, fontName string, opts Options) (meme.Record, error) {
	if img == nil {
		return meme.Record{}, editor.ErrNoImage
	}

	c, err := NewController(opts, Collaborators{})
	if err != nil {
		return meme.Record{}, err
	}

	c.LoadImage(img)
	if fontName != "" {
		c.SelectFont(fontName)
	}
	c.EditCaption(editor.FieldTop, top)
	c.EditCaption(editor.FieldBottom, bottom)
	c.Return()

	rec, err := c.Composite()
	if err != nil {
		return meme.Record{}, fmt.Errorf("render meme: %w", err)
	}
	return rec, nil
}

// EncodePNG は画像をPNG形式でエンコードします
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
