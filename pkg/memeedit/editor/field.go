package editor

import "github.com/shinya/memeedit/pkg/memeedit/caption"

// Field はキャプション欄を表します
type Field int

const (
	FieldNone Field = iota
	FieldTop
	FieldBottom
)

func (f Field) String() string {
	switch f {
	case FieldTop:
		return "top"
	case FieldBottom:
		return "bottom"
	default:
		return "none"
	}
}

const (
	TopPlaceholder    = "TOP"
	BottomPlaceholder = "BOTTOM"
)

// CaptionField は1つのキャプション欄の状態です
type CaptionField struct {
	placeholder string
	text        string
	focused     bool
	attrs       caption.Attributes
}

func newCaptionField(placeholder string) *CaptionField {
	return &CaptionField{placeholder: placeholder, text: placeholder}
}

func (f *CaptionField) Text() string { return f.text }
func (f *CaptionField) Placeholder() string { return f.placeholder }
func (f *CaptionField) Focused() bool { return f.focused }
func (f *CaptionField) Attributes() caption.Attributes { return f.attrs }

// ShowsPlaceholder はプレースホルダーを表示中かどうかを返します
func (f *CaptionField) ShowsPlaceholder() bool {
	return f.text == f.placeholder
}

// focus はプレースホルダーを消して編集を開始します
func (f *CaptionField) focus() {
	f.focused = true
	if f.text == f.placeholder {
		f.text = ""
	}
}

// blur は編集を終了し、空ならプレースホルダーを戻します
func (f *CaptionField) blur() {
	f.focused = false
	if f.text == "" {
		f.text = f.placeholder
	}
}

func (f *CaptionField) reset() {
	f.text = f.placeholder
}
