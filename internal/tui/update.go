package tui

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/shinya/memeedit/pkg/memeedit/editor"
)

// Update はBubbleteaのメッセージを処理します
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		switch m.mode {
		case modeOpen:
			return m.updateOpen(msg)
		case modeCaption:
			return m.updateCaption(msg)
		case modeFonts:
			return m.updateFonts(msg)
		default:
			return m.updateBrowse(msg)
		}
	}
	return m, nil
}

func (m Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Open):
		m.mode = modeOpen
		m.input.Placeholder = "path/to/image.png"
		m.input.SetValue("")
		return m, m.input.Focus()
	case key.Matches(msg, m.keys.Camera):
		if err := m.ctrl.PickImage(editor.SourceCamera); err != nil {
			m.setError("camera is not available")
		}
		return m, nil
	case key.Matches(msg, m.keys.Top):
		return m.beginCaption(editor.FieldTop)
	case key.Matches(msg, m.keys.Bottom):
		return m.beginCaption(editor.FieldBottom)
	case key.Matches(msg, m.keys.Font):
		m.ctrl.ToggleFontPicker()
		m.mode = modeFonts
		m.cursor = max(m.ctrl.FontIndex(), 0)
		return m, nil
	case key.Matches(msg, m.keys.Share):
		m.shareMeme()
		return m, nil
	case key.Matches(msg, m.keys.Reset):
		m.ctrl.Reset()
		m.setStatus("editor reset")
		return m, nil
	}
	return m, nil
}

func (m Model) updateOpen(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.closeInput()
		m.setStatus("open cancelled")
		return m, nil
	case key.Matches(msg, m.keys.Confirm):
		path := m.input.Value()
		m.closeInput()
		m.openImage(path)
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) openImage(path string) {
	m.source.Select(path)
	if err := m.ctrl.PickImage(editor.SourceLibrary); err != nil {
		m.setError(err.Error())
		return
	}
	if err := m.source.Err(); err != nil {
		m.setError(fmt.Sprintf("could not open %s: %v", path, err))
		return
	}
	if path == "" {
		m.setStatus("open cancelled")
		return
	}
	m.setStatus("opened " + path)
}

func (m Model) beginCaption(f editor.Field) (tea.Model, tea.Cmd) {
	m.ctrl.BeginEditing(f)
	m.ctrl.OnKeyboardShow(inputPanelHeight)

	m.mode = modeCaption
	m.editing = f
	m.input.Placeholder = ""
	m.input.SetValue(m.ctrl.Caption(f).Text())
	m.input.CursorEnd()
	return m, m.input.Focus()
}

func (m Model) updateCaption(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Confirm) || key.Matches(msg, m.keys.Cancel) {
		// 下段がアクティブな間に非表示を通知する
		m.ctrl.OnKeyboardHide(inputPanelHeight)
		m.ctrl.Return()
		m.closeInput()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.ctrl.EditCaption(m.editing, m.input.Value())
	return m, cmd
}

func (m Model) updateFonts(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	n := m.ctrl.Fonts().Len()
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < n-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Confirm):
		if m.ctrl.SelectFontIndex(m.cursor) {
			m.setStatus("font: " + m.ctrl.FontName())
		}
		m.closeFonts()
	case key.Matches(msg, m.keys.Font), key.Matches(msg, m.keys.Cancel):
		m.closeFonts()
	}
	return m, nil
}

func (m *Model) closeFonts() {
	if m.ctrl.FontPickerVisible() {
		m.ctrl.ToggleFontPicker()
	}
	m.mode = modeBrowse
}

func (m *Model) closeInput() {
	m.input.Blur()
	m.input.SetValue("")
	m.mode = modeBrowse
	m.editing = editor.FieldNone
}

func (m *Model) shareMeme() {
	if !m.ctrl.CanShare() {
		m.setError("open an image first")
		return
	}
	if err := m.ctrl.ShareMeme(); err != nil {
		if errors.Is(err, editor.ErrNoShareSurface) {
			m.setError("sharing is not configured")
			return
		}
		m.setError(err.Error())
		return
	}
	if err := m.share.Err(); err != nil {
		m.setError(fmt.Sprintf("share failed: %v", err))
		return
	}
	m.setStatus("saved " + m.share.LastPath())
}
