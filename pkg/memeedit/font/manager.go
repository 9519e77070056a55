package font

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"

	"github.com/shinya/memeedit/internal/logger"
)

// FontInfo は登録済みフォントの情報を表します
type FontInfo struct {
	Family string
	Style  string
	Path   string
	Font   *opentype.Font
}

// Manager はフォントの登録・列挙・解決を行います
type Manager struct {
	fonts map[string]map[string]*FontInfo // family -> style -> FontInfo
	order []string                        // 登録順のファミリ名
	faces map[string]xfont.Face
	log   *logger.Logger
	mu    sync.RWMutex
}

// NewManager は組み込みフォントを登録済みの新しいマネージャーを作成します
func NewManager(log *logger.Logger) *Manager {
	m := &Manager{
		fonts: make(map[string]map[string]*FontInfo),
		faces: make(map[string]xfont.Face),
		log:   log,
	}
	m.registerDefaults()
	return m
}

func (m *Manager) registerDefaults() {
	// 組み込みフォントのパースに失敗することはない
	_ = m.RegisterFonts(
		FontSource{Family: DefaultFamily, Style: "Regular", Data: goregular.TTF},
		FontSource{Family: DefaultFamily, Style: "Bold", Data: gobold.TTF},
	)
}

// RegisterFonts はフォントを登録します
func (m *Manager) RegisterFonts(fonts ...FontSource) error {
	for _, src := range fonts {
		data := src.Data
		if data == nil {
			if src.Path == "" {
				return fmt.Errorf("no font data or path provided")
			}
			b, err := os.ReadFile(src.Path)
			if err != nil {
				return fmt.Errorf("failed to read font file %s: %w", src.Path, err)
			}
			data = b
		}

		parsed, err := opentype.Parse(data)
		if err != nil {
			return fmt.Errorf("failed to parse font %s: %w", describe(src), err)
		}

		family, style := src.Family, src.Style
		if family == "" {
			family, style = nameTableInfo(parsed, src.Path)
		}
		m.add(&FontInfo{Family: family, Style: normalizeStyle(style), Path: src.Path, Font: parsed})
	}
	return nil
}

func (m *Manager) add(info *FontInfo) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.fonts[info.Family] == nil {
		m.fonts[info.Family] = make(map[string]*FontInfo)
		m.order = append(m.order, info.Family)
	}
	if _, exists := m.fonts[info.Family][info.Style]; exists {
		return
	}
	m.fonts[info.Family][info.Style] = info

	m.log.WithFields(map[string]any{"family": info.Family, "style": info.Style, "path": info.Path}).Debug("font registered")
}

// SystemFonts は登録順のファミリ名一覧を返します
func (m *Manager) SystemFonts() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]string, len(m.order))
	copy(out, m.order)
	return out
}

// HasFamily はファミリが登録済みかどうかを返します（大文字小文字を区別）
func (m *Manager) HasFamily(family string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.fonts[family]
	return ok
}

// Resolve はファミリ名を解決します。未登録の場合は既定ファミリとfalseを返します
func (m *Manager) Resolve(family string) (string, bool) {
	if m.HasFamily(family) {
		return family, true
	}
	return DefaultFamily, false
}

// Face は指定ファミリ・サイズのフェイスを返します。未登録のファミリは既定ファミリで代替します
func (m *Manager) Face(family string, size float64) (xfont.Face, error) {
	resolved, _ := m.Resolve(family)
	key := fmt.Sprintf("%s-%.2f", resolved, size)

	m.mu.Lock()
	defer m.mu.Unlock()

	if face, ok := m.faces[key]; ok {
		return face, nil
	}

	info := pickStyle(m.fonts[resolved])
	if info == nil {
		return nil, fmt.Errorf("font not found: %s", family)
	}

	// ポイント=ピクセルとして扱う
	face, err := opentype.NewFace(info.Font, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: xfont.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create face for %s: %w", resolved, err)
	}
	m.faces[key] = face
	return face, nil
}

// pickStyle はRegularを優先してスタイルを選びます
func pickStyle(styles map[string]*FontInfo) *FontInfo {
	for _, s := range []string{"Regular", "Bold", "Italic", "BoldItalic"} {
		if info, ok := styles[s]; ok {
			return info
		}
	}
	return nil
}

// ClearCache は生成済みフェイスを破棄します
func (m *Manager) ClearCache() {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, face := range m.faces {
		_ = face.Close()
	}
	m.faces = make(map[string]xfont.Face)
}

// ScanSystemFonts はプラットフォームのフォントディレクトリをスキャンします
func (m *Manager) ScanSystemFonts() error {
	return m.ScanDirs(getSystemFontPaths()...)
}

// ScanDirs は指定ディレクトリ内のフォントを登録します
func (m *Manager) ScanDirs(dirs ...string) error {
	m.log.WithFields(map[string]any{"dirs": dirs}).Debug("scanning font directories")

	for _, dir := range dirs {
		if err := m.scanDirectory(dir); err != nil {
			// 警告として記録するが、処理は続行
			m.log.WithFields(map[string]any{"dir": dir}).Error(err, "failed to scan font directory")
		}
	}

	m.log.WithFields(map[string]any{"families": len(m.SystemFonts())}).Info("font scan completed")
	return nil
}

// scanDirectory は指定されたディレクトリ内のフォントをスキャンします
func (m *Manager) scanDirectory(dir string) error {
	return filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}

		switch strings.ToLower(filepath.Ext(path)) {
		case ".ttf", ".otf":
			if err := m.RegisterFonts(FontSource{Path: path}); err != nil {
				m.log.WithFields(map[string]any{"path": path}).Warn("skipping font: " + err.Error())
			}
		case ".ttc", ".otc":
			m.registerCollection(path)
		}
		return nil // 個別フォントのエラーでスキャンを止めない
	})
}

// registerCollection はフォントコレクション内の全フォントを登録します
func (m *Manager) registerCollection(path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		m.log.WithFields(map[string]any{"path": path}).Warn("skipping collection: " + err.Error())
		return
	}
	coll, err := opentype.ParseCollection(data)
	if err != nil {
		m.log.WithFields(map[string]any{"path": path}).Warn("skipping collection: " + err.Error())
		return
	}
	for i := 0; i < coll.NumFonts(); i++ {
		f, err := coll.Font(i)
		if err != nil {
			continue
		}
		family, style := nameTableInfo(f, path)
		m.add(&FontInfo{Family: family, Style: normalizeStyle(style), Path: path, Font: f})
	}
}

// getSystemFontPaths はプラットフォーム別のフォントパスを返します
func getSystemFontPaths() []string {
	switch runtime.GOOS {
	case "linux":
		return []string{
			"/usr/share/fonts",
			"/usr/local/share/fonts",
			filepath.Join(os.Getenv("HOME"), ".local/share/fonts"),
		}
	case "darwin":
		return []string{
			"/System/Library/Fonts",
			"/Library/Fonts",
			filepath.Join(os.Getenv("HOME"), "Library/Fonts"),
		}
	case "windows":
		return []string{
			filepath.Join(os.Getenv("WINDIR"), "Fonts"),
		}
	default:
		return []string{}
	}
}

// normalizeStyle はスタイル名を正規化します
func normalizeStyle(style string) string {
	style = strings.ToLower(style)

	switch {
	case strings.Contains(style, "bold") && (strings.Contains(style, "italic") || strings.Contains(style, "oblique")):
		return "BoldItalic"
	case strings.Contains(style, "bold"):
		return "Bold"
	case strings.Contains(style, "italic") || strings.Contains(style, "oblique"):
		return "Italic"
	default:
		return "Regular"
	}
}

// nameTableInfo はnameテーブルからファミリとサブファミリを読み取ります
func nameTableInfo(f *opentype.Font, path string) (family, style string) {
	var buf sfnt.Buffer
	family, err := f.Name(&buf, sfnt.NameIDTypographicFamily)
	if err != nil || family == "" {
		family, err = f.Name(&buf, sfnt.NameIDFamily)
	}
	if err != nil || family == "" {
		return guessFontInfo(path)
	}
	style, err = f.Name(&buf, sfnt.NameIDTypographicSubfamily)
	if err != nil || style == "" {
		style, _ = f.Name(&buf, sfnt.NameIDSubfamily)
	}
	return family, style
}

// guessFontInfo はファイル名からファミリとスタイルを推測します
func guessFontInfo(path string) (family, style string) {
	filename := filepath.Base(path)
	name := strings.TrimSuffix(filename, filepath.Ext(filename))
	style = normalizeStyle(name)

	// スタイル文字列を除去
	family = name
	for _, suffix := range []string{"Bold Italic", "BoldItalic", "Bold", "Italic", "Oblique", "Regular"} {
		idx := strings.Index(strings.ToLower(family), strings.ToLower(suffix))
		if idx >= 0 {
			family = family[:idx] + family[idx+len(suffix):]
		}
	}
	family = strings.Trim(strings.TrimSpace(family), "-_")
	family = strings.Join(strings.Fields(family), " ")

	if family == "" {
		family = "Unknown"
	}
	return family, style
}

func describe(src FontSource) string {
	if src.Path != "" {
		return src.Path
	}
	if src.Family != "" {
		return src.Family
	}
	return "<memory>"
}
