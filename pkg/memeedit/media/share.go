package media

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/shinya/memeedit/internal/logger"
	"github.com/shinya/memeedit/pkg/memeedit/editor"
)

// FileShare は合成画像をPNGとしてディレクトリに書き出す共有先です
type FileShare struct {
	dir      string
	lastPath string
	lastErr  error
	log      *logger.Logger
}

// NewFileShare は新しいFileShareを作成します
func NewFileShare(dir string, log *logger.Logger) *FileShare {
	return &FileShare{dir: dir, log: log}
}

// PresentShare は画像を書き出し、成否をdoneに渡します
func (s *FileShare) PresentShare(img image.Image, done func(succeeded bool)) {
	path, err := s.write(img)
	s.lastErr = err
	if err != nil {
		s.log.WithFields(map[string]any{"dir": s.dir}).Error(err, "share failed")
		done(false)
		return
	}

	s.lastPath = path
	s.log.WithFields(map[string]any{"path": path}).Info("meme shared")
	done(true)
}

func (s *FileShare) write(img image.Image) (string, error) {
	if img == nil {
		return "", fmt.Errorf("no image to share")
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	path := filepath.Join(s.dir, fmt.Sprintf("meme-%s.png", uuid.NewString()))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		os.Remove(path)
		return "", fmt.Errorf("failed to encode %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("failed to close %s: %w", path, err)
	}
	return path, nil
}

// LastPath は直前に書き出したファイルのパスを返します
func (s *FileShare) LastPath() string {
	return s.lastPath
}

// Err は直前の共有エラーを返します
func (s *FileShare) Err() error {
	return s.lastErr
}

var _ editor.ShareSurface = (*FileShare)(nil)
