// Package media は画像の取得元と共有先の実装を提供します
package media

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // GIF デコーダ登録
	_ "image/jpeg" // JPEG デコーダ登録
	_ "image/png"  // PNG デコーダ登録
	"os"

	"github.com/gabriel-vasile/mimetype"
	_ "golang.org/x/image/bmp"  // BMP デコーダ登録
	_ "golang.org/x/image/tiff" // TIFF デコーダ登録
	_ "golang.org/x/image/webp" // WebP デコーダ登録
)

// ErrUnsupportedImage は対応していない形式のデータに対して返されます
var ErrUnsupportedImage = errors.New("unsupported image format")

// supportedTypes はデコード可能なMIMEタイプです
var supportedTypes = []string{
	"image/png",
	"image/jpeg",
	"image/gif",
	"image/webp",
	"image/bmp",
	"image/tiff",
}

// DecodeImage はMIMEタイプを判定してから画像をデコードします
func DecodeImage(data []byte) (image.Image, string, error) {
	mt := mimetype.Detect(data)
	if !supported(mt) {
		return nil, "", fmt.Errorf("%w: %s", ErrUnsupportedImage, mt.String())
	}

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, "", fmt.Errorf("failed to decode %s: %w", mt.String(), err)
	}
	return img, format, nil
}

// LoadImage はファイルから画像を読み込みます
func LoadImage(path string) (image.Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read image %s: %w", path, err)
	}
	img, _, err := DecodeImage(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return img, nil
}

func supported(mt *mimetype.MIME) bool {
	for _, t := range supportedTypes {
		if mt.Is(t) {
			return true
		}
	}
	return false
}
