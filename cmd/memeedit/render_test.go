package main

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// writeConfig はシステムフォントを走査しない設定ファイルを作成します
func writeConfig(t *testing.T, outDir string) string {
	t.Helper()
	body := "log:\n  level: error\n  human: false\n" +
		"canvas:\n  width: 320\n  height: 480\n  background: white\n" +
		"fonts:\n  system_scan: false\n" +
		"share:\n  output_dir: " + outDir + "\n"
	path := filepath.Join(t.TempDir(), "memeedit.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func writeImage(t *testing.T) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 64, 48))
	for y := 0; y < 48; y++ {
		for x := 0; x < 64; x++ {
			img.Set(x, y, color.RGBA{10, 160, 90, 255})
		}
	}
	path := filepath.Join(t.TempDir(), "cat.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, img))
	require.NoError(t, f.Close())
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	out := &bytes.Buffer{}
	root.SetOut(out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestRenderCommandWritesMeme(t *testing.T) {
	outDir := t.TempDir()
	cfg := writeConfig(t, outDir)

	output, err := execute(t, "render", "--config", cfg, "--image", writeImage(t), "--top", "HELLO", "--bottom", "WORLD")
	require.NoError(t, err)

	path := strings.TrimSpace(output)
	require.Equal(t, outDir, filepath.Dir(path))
	require.True(t, strings.HasPrefix(filepath.Base(path), "meme-"))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	cfgImg, err := png.DecodeConfig(f)
	require.NoError(t, err)
	require.Equal(t, 320, cfgImg.Width)
	require.Equal(t, 480, cfgImg.Height)
}

func TestRenderCommandOutOverridesConfig(t *testing.T) {
	cfg := writeConfig(t, t.TempDir())
	outDir := filepath.Join(t.TempDir(), "nested")

	output, err := execute(t, "render", "--config", cfg, "-i", writeImage(t), "-o", outDir)
	require.NoError(t, err)
	require.Equal(t, outDir, filepath.Dir(strings.TrimSpace(output)))
}

func TestRenderCommandMissingImage(t *testing.T) {
	outDir := t.TempDir()
	cfg := writeConfig(t, outDir)

	_, err := execute(t, "render", "--config", cfg, "--image", filepath.Join(t.TempDir(), "missing.png"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "load image")

	entries, readErr := os.ReadDir(outDir)
	require.NoError(t, readErr)
	require.Empty(t, entries)
}

func TestRenderCommandRequiresImageFlag(t *testing.T) {
	_, err := execute(t, "render", "--top", "A")
	require.Error(t, err)
}

func TestRenderCommandInvalidLogLevel(t *testing.T) {
	cfg := writeConfig(t, t.TempDir())
	_, err := execute(t, "render", "--config", cfg, "--log-level", "loud", "--image", writeImage(t))
	require.Error(t, err)
}
