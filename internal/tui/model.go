// Package tui は端末上でミームを編集する対話型フロントエンドです
package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/shinya/memeedit/pkg/memeedit/editor"
	"github.com/shinya/memeedit/pkg/memeedit/media"
)

// inputPanelHeight は入力欄が占める行数です。キーボードの高さとして扱います
const inputPanelHeight = 3

type mode int

const (
	modeBrowse mode = iota
	modeOpen
	modeCaption
	modeFonts
)

// Model はエディタ画面のBubbletea状態です。編集状態そのものはControllerが保持します
type Model struct {
	ctrl   *editor.Controller
	source *media.FileSource
	share  *media.FileShare

	keys  keyMap
	help  help.Model
	input textinput.Model

	mode    mode
	editing editor.Field
	cursor  int

	status   string
	failed   bool
	width    int
	height   int
	quitting bool
}

// New はControllerと画像取得元・共有先からModelを作成します
func New(ctrl *editor.Controller, source *media.FileSource, share *media.FileShare) Model {
	ti := textinput.New()
	ti.CharLimit = 120
	ti.Width = 40

	return Model{
		ctrl:   ctrl,
		source: source,
		share:  share,
		keys:   defaultKeyMap(),
		help:   help.New(),
		input:  ti,
		width:  80,
		height: 24,
	}
}

// Init はBubbletea起動時のコマンドを返します
func (m Model) Init() tea.Cmd {
	return nil
}

// Controller は編集状態を保持するControllerを返します
func (m Model) Controller() *editor.Controller {
	return m.ctrl
}

// Status は直前の操作結果を返します
func (m Model) Status() string {
	return m.status
}

// Quitting は終了要求済みかどうかを返します
func (m Model) Quitting() bool {
	return m.quitting
}

func (m *Model) setStatus(msg string) {
	m.status = msg
	m.failed = false
}

func (m *Model) setError(msg string) {
	m.status = msg
	m.failed = true
}
