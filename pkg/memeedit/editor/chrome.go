package editor

// chrome はツールバーの表示状態です
type chrome struct {
	hidden bool
}

// hide はツールバーを隠し、呼び出し前の状態に戻す関数を返します
func (c *chrome) hide() (restore func()) {
	prev := c.hidden
	c.hidden = true
	return func() { c.hidden = prev }
}
