// Package meme は合成済みミームの値を表します
package meme

import "image"

// Record は2つのキャプションと元画像・合成画像をまとめた不変の値です
type Record struct {
	topText       string
	bottomText    string
	originalImage image.Image
	memedImage    image.Image
}

// New は新しいRecordを作成します
func New(topText, bottomText string, originalImage, memedImage image.Image) Record {
	return Record{
		topText:       topText,
		bottomText:    bottomText,
		originalImage: originalImage,
		memedImage:    memedImage,
	}
}

// TopText は上部キャプションを返します
func (r Record) TopText() string { return r.topText }

// BottomText は下部キャプションを返します
func (r Record) BottomText() string { return r.bottomText }

// OriginalImage は合成前の画像を返します
func (r Record) OriginalImage() image.Image { return r.originalImage }

// MemedImage は合成後の平坦化画像を返します
func (r Record) MemedImage() image.Image { return r.memedImage }

// IsZero はRecordが未作成かどうかを返します
func (r Record) IsZero() bool {
	return r.memedImage == nil && r.originalImage == nil
}
