package font

// ImpactFamily は既定で選択されるフォント名です
const ImpactFamily = "Impact"

// Enumerator は利用可能なフォントファミリを列挙します
type Enumerator interface {
	SystemFonts() []string
}

// Catalog はピッカー表示用の順序付きフォント一覧です
type Catalog struct {
	fonts []string
}

// NewCatalog は列挙結果からカタログを作成します。列挙順を保持します
func NewCatalog(e Enumerator) *Catalog {
	var fonts []string
	if e != nil {
		fonts = e.SystemFonts()
	}
	return &Catalog{fonts: fonts}
}

// ListFonts はフォント名の一覧を返します
func (c *Catalog) ListFonts() []string {
	out := make([]string, len(c.fonts))
	copy(out, c.fonts)
	return out
}

// Len はフォント数を返します
func (c *Catalog) Len() int {
	return len(c.fonts)
}

// At はindex番目のフォント名を返します
func (c *Catalog) At(index int) (string, bool) {
	if index < 0 || index >= len(c.fonts) {
		return "", false
	}
	return c.fonts[index], true
}

// IndexOf はフォント名の位置を返します（大文字小文字を区別）。見つからない場合は-1
func (c *Catalog) IndexOf(name string) int {
	for i, f := range c.fonts {
		if f == name {
			return i
		}
	}
	return -1
}

// DefaultFont は既定フォントを返します。
// Impactが一覧にない場合も名前は"Impact"のまま返し、index=-1, ok=falseとします
func (c *Catalog) DefaultFont() (name string, index int, ok bool) {
	if i := c.IndexOf(ImpactFamily); i >= 0 {
		return c.fonts[i], i, true
	}
	return ImpactFamily, -1, false
}
