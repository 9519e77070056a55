package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Open    key.Binding
	Camera  key.Binding
	Top     key.Binding
	Bottom  key.Binding
	Font    key.Binding
	Share   key.Binding
	Reset   key.Binding
	Up      key.Binding
	Down    key.Binding
	Confirm key.Binding
	Cancel  key.Binding
	Quit    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Open:    key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "album")),
		Camera:  key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "camera")),
		Top:     key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "top")),
		Bottom:  key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "bottom")),
		Font:    key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "font")),
		Share:   key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "share")),
		Reset:   key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "cancel")),
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Confirm: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "done")),
		Cancel:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp はヘルプ行に表示するキーを返します
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Open, k.Camera, k.Top, k.Bottom, k.Font, k.Share, k.Reset, k.Quit}
}

// FullHelp は展開時のヘルプを返します
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Open, k.Camera, k.Share, k.Reset},
		{k.Top, k.Bottom, k.Font},
		{k.Up, k.Down, k.Confirm, k.Cancel, k.Quit},
	}
}
