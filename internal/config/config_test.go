package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "memeedit.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	require.NoError(t, cfg.Validate())
}

func TestLoad_Overrides(t *testing.T) {
	path := writeConfig(t, `
log:
  level: debug
canvas:
  width: 800
  background: "#202020"
fonts:
  dirs: [/opt/fonts]
  system_scan: false
  default: Anton
share:
  output_dir: /tmp/memes
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.True(t, cfg.Log.Human, "unset keys keep defaults")
	assert.Equal(t, 800, cfg.Canvas.Width)
	assert.Equal(t, 960, cfg.Canvas.Height)
	assert.Equal(t, "#202020", cfg.Canvas.Background)
	assert.Equal(t, []string{"/opt/fonts"}, cfg.Fonts.Dirs)
	assert.False(t, cfg.Fonts.SystemScan)
	assert.Equal(t, "Anton", cfg.Fonts.Default)
	assert.Equal(t, "/tmp/memes", cfg.Share.OutputDir)
}

func TestLoad_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		field   string
	}{
		{name: "level", content: "log:\n  level: loud\n", field: "Config.Log.Level"},
		{name: "width", content: "canvas:\n  width: 10\n", field: "Config.Canvas.Width"},
		{name: "height", content: "canvas:\n  height: 100\n", field: "Config.Canvas.Height"},
		{name: "background", content: "canvas:\n  background: plaid\n", field: "Config.Canvas.Background"},
		{name: "output", content: "share:\n  output_dir: \"\"\n", field: "Config.Share.OutputDir"},
		{name: "font dir", content: "fonts:\n  dirs: [\"\"]\n", field: "Config.Fonts.Dirs[0]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			require.Error(t, err)

			var verr *ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, tt.field, verr.Field)
			assert.Contains(t, err.Error(), "validation error")
		})
	}
}

func TestLoad_ParseError(t *testing.T) {
	_, err := Load(writeConfig(t, "log:\n  level: [unclosed\n"))
	require.Error(t, err)

	var perr *ParseError
	require.True(t, errors.As(err, &perr))
	assert.Contains(t, err.Error(), "parse error")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestErrorFormatting(t *testing.T) {
	assert.Equal(t, "parse error: a.yaml:3: bad", (&ParseError{Path: "a.yaml", Line: 3, Message: "bad"}).Error())
	assert.Equal(t, "parse error: a.yaml: bad", (&ParseError{Path: "a.yaml", Message: "bad"}).Error())
	assert.Equal(t, "validation error: bad", (&ValidationError{Message: "bad"}).Error())

	var nilParse *ParseError
	assert.Empty(t, nilParse.Error())
	assert.Nil(t, nilParse.Unwrap())
}
