// Package caption はキャプションの描画属性を計算します
package caption

import (
	"image/color"

	"github.com/shinya/memeedit/pkg/memeedit/font"
)

const (
	// FontSize はキャプションのフォントサイズ（ポイント）です
	FontSize = 40
	// StrokeWidth はフォントサイズに対する縁取り幅（%）です。負値は塗り＋縁取りを表します
	StrokeWidth = -2
)

// Resolver はフォント名をインストール済みファミリに解決します
type Resolver interface {
	Resolve(name string) (family string, ok bool)
}

// FontSpec は解決済みのフォント指定を表します
type FontSpec struct {
	Requested string  // 要求されたフォント名
	Family    string  // 実際に使うファミリ
	Size      float64 // ポイント
	Fallback  bool    // 要求名が解決できず既定ファミリを使う場合true
}

// Attributes はキャプションの描画属性です
type Attributes struct {
	StrokeColor color.Color
	FillColor   color.Color
	Font        FontSpec
	StrokeWidth float64
}

// ComputeAttributes はフォント名から新しい属性値を計算します。
// 解決できないフォント名は既定ファミリに置き換えます
func ComputeAttributes(fontName string, r Resolver) Attributes {
	family, ok := font.DefaultFamily, false
	if r != nil {
		family, ok = r.Resolve(fontName)
	}
	if family == "" {
		family, ok = font.DefaultFamily, false
	}

	return Attributes{
		StrokeColor: color.Black,
		FillColor:   color.White,
		Font: FontSpec{
			Requested: fontName,
			Family:    family,
			Size:      FontSize,
			Fallback:  !ok,
		},
		StrokeWidth: StrokeWidth,
	}
}

// Filled は文字本体を塗るかどうかを返します（縁取りのみの場合false）
func (a Attributes) Filled() bool {
	return a.StrokeWidth <= 0
}

// OutlinePixels は縁取りの太さをピクセルで返します（最低1px）
func (a Attributes) OutlinePixels(scale float64) float64 {
	w := a.StrokeWidth
	if w < 0 {
		w = -w
	}
	px := w / 100 * a.Font.Size * scale
	if w != 0 && px < 1 {
		return 1
	}
	return px
}
