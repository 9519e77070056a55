package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/shinya/memeedit/pkg/memeedit/editor"
)

const previewRows = 9

// View は画面を描画します
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("memeedit"))
	b.WriteString("\n")

	if m.ctrl.ChromeVisible() {
		b.WriteString(m.topToolbar())
		b.WriteString("\n")
	}

	b.WriteString(m.preview())
	b.WriteString("\n")

	if m.ctrl.ChromeVisible() {
		b.WriteString(m.bottomToolbar())
		b.WriteString("\n")
	}

	if m.ctrl.FontPickerVisible() {
		b.WriteString(m.fontPicker())
		b.WriteString("\n")
	}

	switch m.mode {
	case modeOpen:
		b.WriteString("Open image: ")
		b.WriteString(m.input.View())
		b.WriteString("\n")
	case modeCaption:
		fmt.Fprintf(&b, "%s caption: %s\n", m.editing, m.input.View())
	}

	if m.status != "" {
		style := statusStyle
		if m.failed {
			style = errorStyle
		}
		b.WriteString(style.Render(m.status))
		b.WriteString("\n")
	}

	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m Model) topToolbar() string {
	share := "Share"
	if !m.ctrl.CanShare() {
		share = disabledStyle.Render(share)
	}
	return toolbarStyle.Render(share + "   " + "Cancel")
}

func (m Model) bottomToolbar() string {
	camera := "Camera"
	if !m.ctrl.CameraAvailable() {
		camera = disabledStyle.Render(camera)
	}
	return toolbarStyle.Render(strings.Join([]string{camera, "Album", m.ctrl.FontButtonTitle()}, "   "))
}

// preview は画像とキャプションの配置を文字で表します。キーボード分だけ上にずらします
func (m Model) preview() string {
	width := max(m.width-6, 20)

	rows := make([]string, previewRows)
	rows[0] = m.captionRow(editor.FieldTop, width)
	rows[previewRows-1] = m.captionRow(editor.FieldBottom, width)

	center := "no image"
	if img := m.ctrl.Image(); img != nil {
		sz := img.Bounds().Size()
		center = fmt.Sprintf("image %dx%d", sz.X, sz.Y)
	}
	rows[previewRows/2] = lipgloss.PlaceHorizontal(width, lipgloss.Center, hintStyle.Render(center))

	offset := min(int(m.ctrl.ViewOffset()), previewRows-1)
	return canvasStyle.Render(strings.Join(rows[offset:], "\n"))
}

func (m Model) captionRow(f editor.Field, width int) string {
	field := m.ctrl.Caption(f)
	text := field.Text()
	style := captionStyle
	if field.ShowsPlaceholder() {
		style = hintStyle
	}
	if field.Focused() {
		text += "▏"
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(text))
}

func (m Model) fontPicker() string {
	var b strings.Builder
	for i, name := range m.ctrl.Fonts().ListFonts() {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		line := cursor + name
		if name == m.ctrl.FontName() {
			line = selectedStyle.Render(line + " ✓")
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return strings.TrimSuffix(b.String(), "\n")
}
