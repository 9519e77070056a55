// Package editor は画像の読み込み、キャプション編集、フォント選択、合成、共有、リセットを統括します。
//
// Controllerは単一のイベントループから呼び出される前提で、並行利用には対応しません。
// 外部コンポーネント（画像取得・共有）は完了コールバックでControllerに結果を返します。
package editor

import (
	"fmt"
	"image"

	"github.com/shinya/memeedit/internal/logger"
	"github.com/shinya/memeedit/pkg/memeedit/caption"
	"github.com/shinya/memeedit/pkg/memeedit/font"
	"github.com/shinya/memeedit/pkg/memeedit/meme"
	"github.com/shinya/memeedit/pkg/memeedit/renderer"
)

// State はエディタのライフサイクル状態です
type State int

const (
	StateEmpty State = iota
	StateEditing
)

func (s State) String() string {
	if s == StateEditing {
		return "editing"
	}
	return "empty"
}

const (
	fontButtonText = "Font"
	doneButtonText = "Done"
)

// Options はControllerの依存コンポーネントです
type Options struct {
	Catalog  *font.Catalog
	Resolver caption.Resolver
	Surface  RenderSurface
	Source   ImageSource
	Share    ShareSurface
	OnSave   SaveFunc // nilなら保存しない
	Logger   *logger.Logger
}

// Controller はエディタ画面の唯一の状態保持者です
type Controller struct {
	catalog  *font.Catalog
	resolver caption.Resolver
	surface  RenderSurface
	source   ImageSource
	share    ShareSurface
	onSave   SaveFunc
	log      *logger.Logger

	state         State
	image         image.Image
	top           *CaptionField
	bottom        *CaptionField
	active        Field
	fontName      string
	fontIndex     int
	pickerVisible bool
	chrome        chrome
	keyboard      KeyboardAvoidance
	latest        meme.Record
	sharing       bool
}

// NewController は既定フォントを選択済みのControllerを作成します
func NewController(opts Options) (*Controller, error) {
	if opts.Surface == nil {
		return nil, fmt.Errorf("render surface is required")
	}
	catalog := opts.Catalog
	if catalog == nil {
		catalog = font.NewCatalog(nil)
	}

	c := &Controller{
		catalog:  catalog,
		resolver: opts.Resolver,
		surface:  opts.Surface,
		source:   opts.Source,
		share:    opts.Share,
		onSave:   opts.OnSave,
		log:      opts.Logger,
		top:      newCaptionField(TopPlaceholder),
		bottom:   newCaptionField(BottomPlaceholder),
	}

	// Impactがなくても名前だけは"Impact"を使い、ピッカーは未選択のままにする
	c.fontName, c.fontIndex, _ = catalog.DefaultFont()
	c.applyTextAttributes()

	return c, nil
}

// State は現在の状態を返します
func (c *Controller) State() State { return c.state }

// Image は読み込み済みの画像を返します
func (c *Controller) Image() image.Image { return c.image }

// CanShare は合成・共有が可能かどうかを返します
func (c *Controller) CanShare() bool {
	return c.state == StateEditing && c.image != nil
}

// Caption は指定欄の状態を返します
func (c *Controller) Caption(f Field) *CaptionField {
	switch f {
	case FieldTop:
		return c.top
	case FieldBottom:
		return c.bottom
	default:
		return nil
	}
}

// Fonts はピッカー用のフォントカタログを返します
func (c *Controller) Fonts() *font.Catalog { return c.catalog }

// FontName は選択中のフォント名を返します
func (c *Controller) FontName() string { return c.fontName }

// FontIndex はピッカー上の選択位置を返します。未選択なら-1
func (c *Controller) FontIndex() int { return c.fontIndex }

// ---- image acquisition ----

// CameraAvailable はカメラから取得できるかどうかを返します
func (c *Controller) CameraAvailable() bool {
	return c.source != nil && c.source.Available(SourceCamera)
}

// PickImage は画像取得を要求します。結果は完了コールバックで反映されます
func (c *Controller) PickImage(kind SourceKind) error {
	if c.source == nil || !c.source.Available(kind) {
		c.log.WithFields(map[string]any{"source": kind.String()}).Debug("image source unavailable")
		return fmt.Errorf("%w: %s", ErrSourceUnavailable, kind)
	}
	c.source.RequestImage(kind, c.imagePicked)
	return nil
}

// imagePicked は画像取得の完了ハンドラです
func (c *Controller) imagePicked(result Acquisition) {
	if result.Cancelled || result.Image == nil {
		c.log.Debug("image acquisition cancelled")
		return
	}
	c.LoadImage(result.Image)
}

// LoadImage は画像を設定し編集状態に移ります
func (c *Controller) LoadImage(img image.Image) {
	if img == nil {
		return
	}
	c.image = img
	c.state = StateEditing

	b := img.Bounds()
	c.log.WithFields(map[string]any{"width": b.Dx(), "height": b.Dy()}).Info("image loaded")
}

// ---- fonts ----

// SelectFont はフォントを選択し、両キャプションに属性を再適用します
func (c *Controller) SelectFont(name string) {
	c.fontName = name
	c.fontIndex = c.catalog.IndexOf(name)
	c.applyTextAttributes()

	c.log.WithFields(map[string]any{"font": name, "fallback": c.top.attrs.Font.Fallback}).Debug("font selected")
}

// SelectFontIndex はピッカーのindex番目のフォントを選択します
func (c *Controller) SelectFontIndex(index int) bool {
	name, ok := c.catalog.At(index)
	if !ok {
		return false
	}
	c.SelectFont(name)
	return true
}

// ToggleFontPicker はフォントピッカーの表示を切り替えます
func (c *Controller) ToggleFontPicker() {
	c.pickerVisible = !c.pickerVisible
}

// FontPickerVisible はフォントピッカーが表示中かどうかを返します
func (c *Controller) FontPickerVisible() bool { return c.pickerVisible }

// FontButtonTitle はフォントボタンの表示文字列を返します
func (c *Controller) FontButtonTitle() string {
	if c.pickerVisible {
		return doneButtonText
	}
	return fontButtonText
}

func (c *Controller) applyTextAttributes() {
	c.top.attrs = caption.ComputeAttributes(c.fontName, c.resolver)
	c.bottom.attrs = caption.ComputeAttributes(c.fontName, c.resolver)
}

// ---- caption editing ----

// ActiveField は編集中の欄を返します
func (c *Controller) ActiveField() Field { return c.active }

// BeginEditing は欄の編集を開始します。他の欄が編集中なら先に終了します
func (c *Controller) BeginEditing(f Field) {
	field := c.Caption(f)
	if field == nil {
		return
	}
	if c.active != FieldNone && c.active != f {
		c.EndEditing(c.active)
	}
	field.focus()
	c.active = f
}

// EditCaption は欄の文字列を置き換え、属性を再適用します
func (c *Controller) EditCaption(f Field, text string) {
	field := c.Caption(f)
	if field == nil {
		return
	}
	if !field.focused {
		c.BeginEditing(f)
	}
	field.text = text
	field.attrs = caption.ComputeAttributes(c.fontName, c.resolver)
}

// EndEditing は欄の編集を終了します。空ならプレースホルダーに戻します
func (c *Controller) EndEditing(f Field) {
	field := c.Caption(f)
	if field == nil || !field.focused {
		return
	}
	field.blur()
	if c.active == f {
		c.active = FieldNone
	}
}

// Return は編集中の欄の編集を終了します（改行キー相当）
func (c *Controller) Return() {
	c.EndEditing(c.active)
}

// ---- keyboard avoidance ----

// OnKeyboardShow はキーボード表示通知のハンドラです
func (c *Controller) OnKeyboardShow(height float64) {
	if c.keyboard.Show(height, c.active == FieldBottom) {
		c.log.WithFields(map[string]any{"offset": height}).Debug("view shifted for keyboard")
	}
}

// OnKeyboardHide はキーボード非表示通知のハンドラです
func (c *Controller) OnKeyboardHide(height float64) {
	if c.keyboard.Hide(height, c.active == FieldBottom) {
		c.log.WithFields(map[string]any{"offset": c.keyboard.Offset()}).Debug("view restored after keyboard")
	}
}

// ViewOffset は画面の上方向のずれを返します
func (c *Controller) ViewOffset() float64 { return c.keyboard.Offset() }

// ---- compositing ----

// ChromeVisible はツールバーが表示中かどうかを返します
func (c *Controller) ChromeVisible() bool { return !c.chrome.hidden }

// Scene は現在の表示状態を返します
func (c *Controller) Scene() renderer.Scene {
	return renderer.Scene{
		Image:         c.image,
		Top:           renderer.CaptionLayer{Text: c.top.text, Attributes: c.top.attrs},
		Bottom:        renderer.CaptionLayer{Text: c.bottom.text, Attributes: c.bottom.attrs},
		ChromeVisible: !c.chrome.hidden,
	}
}

// Composite は現在の表示状態を平坦化しRecordを作成します。
// ツールバーは描画中のみ隠し、失敗時も元の表示状態に戻します
func (c *Controller) Composite() (meme.Record, error) {
	if !c.CanShare() {
		return meme.Record{}, ErrNoImage
	}

	flattened, err := c.renderWithoutChrome()
	if err != nil {
		c.log.Error(err, "composite failed")
		return meme.Record{}, fmt.Errorf("composite: %w", err)
	}

	rec := meme.New(c.top.text, c.bottom.text, c.image, flattened)
	c.latest = rec
	c.log.WithFields(map[string]any{"top": rec.TopText(), "bottom": rec.BottomText()}).Info("meme composited")
	return rec, nil
}

func (c *Controller) renderWithoutChrome() (image.Image, error) {
	restore := c.chrome.hide()
	defer restore()

	return c.surface.RenderView(c.Scene())
}

// LatestMeme は最後に合成したRecordを返します
func (c *Controller) LatestMeme() (meme.Record, bool) {
	return c.latest, !c.latest.IsZero()
}

// ---- sharing ----

// Sharing は共有画面が表示中かどうかを返します
func (c *Controller) Sharing() bool { return c.sharing }

// Share は合成画像を共有画面に渡します。成功時のみ保存フックを呼びます
func (c *Controller) Share(rec meme.Record) error {
	if rec.IsZero() {
		return ErrNoMeme
	}
	if c.share == nil {
		return ErrNoShareSurface
	}

	c.sharing = true
	c.share.PresentShare(rec.MemedImage(), func(succeeded bool) {
		c.shareCompleted(rec, succeeded)
	})
	return nil
}

// ShareMeme は合成してから共有します
func (c *Controller) ShareMeme() error {
	rec, err := c.Composite()
	if err != nil {
		return err
	}
	return c.Share(rec)
}

func (c *Controller) shareCompleted(rec meme.Record, succeeded bool) {
	// いずれの結果でも共有画面は閉じる
	c.sharing = false
	if !succeeded {
		c.log.Debug("share cancelled")
		return
	}
	c.saveMeme(rec)
}

// saveMeme は保存フックを呼びます。フック未設定時は何もしません
func (c *Controller) saveMeme(rec meme.Record) {
	if c.onSave == nil {
		return
	}
	c.onSave(rec)
}

// ---- reset ----

// Reset は画像とキャプションを初期状態に戻します
func (c *Controller) Reset() {
	c.image = nil
	c.state = StateEmpty
	c.latest = meme.Record{}
	c.top.reset()
	c.bottom.reset()

	c.log.Debug("editor reset")
}
