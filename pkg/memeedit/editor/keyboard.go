package editor

// KeyboardAvoidance は下部キャプション編集中にキーボードで隠れないよう画面をずらします。
// 同じ通知が繰り返し届いても二重にずらしません
type KeyboardAvoidance struct {
	offset float64
}

// Show はキーボード表示時に呼ばれます。ずらした場合trueを返します
func (k *KeyboardAvoidance) Show(height float64, bottomActive bool) bool {
	if !bottomActive || k.offset != 0 || height <= 0 {
		return false
	}
	k.offset = height
	return true
}

// Hide はキーボード非表示時に呼ばれます。戻した場合trueを返します
func (k *KeyboardAvoidance) Hide(height float64, bottomActive bool) bool {
	if !bottomActive || k.offset == 0 {
		return false
	}
	k.offset -= height
	if k.offset < 0 {
		k.offset = 0
	}
	return true
}

// Offset は現在の上方向のずれを返します
func (k *KeyboardAvoidance) Offset() float64 {
	return k.offset
}
