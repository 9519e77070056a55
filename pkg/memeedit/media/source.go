package media

import (
	"github.com/shinya/memeedit/internal/logger"
	"github.com/shinya/memeedit/pkg/memeedit/editor"
)

// FileSource はファイルパスで指定された画像をライブラリとして提供します。
// カメラは利用できません
type FileSource struct {
	path    string
	lastErr error
	log     *logger.Logger
}

// NewFileSource は新しいFileSourceを作成します
func NewFileSource(log *logger.Logger) *FileSource {
	return &FileSource{log: log}
}

// Select は次の要求で読み込むファイルを指定します。空文字は取り消しを意味します
func (s *FileSource) Select(path string) {
	s.path = path
}

// Available は取得元が利用可能かどうかを返します
func (s *FileSource) Available(kind editor.SourceKind) bool {
	return kind == editor.SourceLibrary
}

// RequestImage は選択済みのファイルを読み込み、結果をdoneに渡します。
// 未選択・読み込み失敗はいずれも取り消しとして扱います
func (s *FileSource) RequestImage(kind editor.SourceKind, done func(editor.Acquisition)) {
	path := s.path
	s.path = ""
	s.lastErr = nil

	if kind != editor.SourceLibrary || path == "" {
		done(editor.Acquisition{Cancelled: true})
		return
	}

	img, err := LoadImage(path)
	if err != nil {
		s.lastErr = err
		s.log.WithFields(map[string]any{"path": path}).Error(err, "failed to load image")
		done(editor.Acquisition{Cancelled: true})
		return
	}

	s.log.WithFields(map[string]any{"path": path}).Debug("image selected")
	done(editor.Acquisition{Image: img})
}

// Err は直前の読み込みエラーを返します
func (s *FileSource) Err() error {
	return s.lastErr
}

var _ editor.ImageSource = (*FileSource)(nil)
