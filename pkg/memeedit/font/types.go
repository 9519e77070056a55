package font

// FontSource はフォントの供給源を表します
type FontSource struct {
	Family string // ファミリ名（空の場合はnameテーブルから取得）
	Style  string // "Regular","Italic","Bold","BoldItalic"
	Data   []byte // TTF/OTF (メモリ登録用)
	Path   string // ファイル登録用（Data or Path のいずれか）
}

// DefaultFamily は常に登録される組み込みフォントのファミリ名です
const DefaultFamily = "Go"
