package editor

import (
	"image"

	"github.com/shinya/memeedit/pkg/memeedit/meme"
	"github.com/shinya/memeedit/pkg/memeedit/renderer"
)

// SourceKind は画像の取得元を表します
type SourceKind int

const (
	SourceLibrary SourceKind = iota
	SourceCamera
)

func (k SourceKind) String() string {
	switch k {
	case SourceCamera:
		return "camera"
	case SourceLibrary:
		return "library"
	default:
		return "unknown"
	}
}

// Acquisition は画像取得の結果です。Cancelledがtrueの場合Imageは無視されます
type Acquisition struct {
	Image     image.Image
	Cancelled bool
}

// ImageSource は画像の取得を行う外部コンポーネントです
type ImageSource interface {
	Available(kind SourceKind) bool
	RequestImage(kind SourceKind, done func(Acquisition))
}

// ShareSurface は合成画像を共有する外部コンポーネントです
type ShareSurface interface {
	PresentShare(img image.Image, done func(succeeded bool))
}

// RenderSurface は現在の表示状態を1枚の画像に平坦化します
type RenderSurface interface {
	RenderView(scene renderer.Scene) (image.Image, error)
}

// SaveFunc は共有成功後に呼ばれる保存フックです
type SaveFunc func(rec meme.Record)
