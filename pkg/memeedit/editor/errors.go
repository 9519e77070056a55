package editor

import "errors"

var (
	// ErrNoImage は画像未読み込みで合成・共有しようとした場合に返されます
	ErrNoImage = errors.New("no image loaded")
	// ErrNoMeme は合成前のRecordを共有しようとした場合に返されます
	ErrNoMeme = errors.New("meme has not been composited")
	// ErrSourceUnavailable は取得元が利用できない場合に返されます
	ErrSourceUnavailable = errors.New("image source unavailable")
	// ErrNoShareSurface は共有先が設定されていない場合に返されます
	ErrNoShareSurface = errors.New("no share surface configured")
)
