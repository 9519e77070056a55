// Package config はYAML設定ファイルを読み込みます
package config

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strconv"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config はアプリケーション設定です
type Config struct {
	Log    LogConfig    `yaml:"log"`
	Canvas CanvasConfig `yaml:"canvas"`
	Fonts  FontsConfig  `yaml:"fonts"`
	Share  ShareConfig  `yaml:"share"`
}

// LogConfig はログ出力の設定です
type LogConfig struct {
	Level string `yaml:"level" validate:"omitempty,oneof=trace debug info warn error"`
	Human bool   `yaml:"human"`
}

// CanvasConfig は合成画像のサイズと背景です
type CanvasConfig struct {
	Width      int    `yaml:"width" validate:"gte=64,lte=8192"`
	Height     int    `yaml:"height" validate:"gte=240,lte=8192"`
	Background string `yaml:"background" validate:"color"`
}

// FontsConfig はフォントの読み込み元です
type FontsConfig struct {
	Dirs       []string `yaml:"dirs" validate:"dive,required"`
	SystemScan bool     `yaml:"system_scan"`
	Default    string   `yaml:"default"`
}

// ShareConfig は共有先の設定です
type ShareConfig struct {
	OutputDir string `yaml:"output_dir" validate:"required"`
}

// Default は既定の設定を返します
func Default() *Config {
	return &Config{
		Log:    LogConfig{Level: "info", Human: true},
		Canvas: CanvasConfig{Width: 640, Height: 960, Background: "black"},
		Fonts:  FontsConfig{SystemScan: true, Default: "Impact"},
		Share:  ShareConfig{OutputDir: "."},
	}
}

var yamlLinePattern = regexp.MustCompile(`line (\d+)`)

// Load は設定ファイルを読み込みます。pathが空なら既定値を返します
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ParseError{Path: path, Message: err.Error(), Err: err}
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, &ParseError{Path: path, Line: errorLine(err), Message: err.Error(), Err: err}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate は設定値を検証します
func (c *Config) Validate() error {
	err := validatorInstance().Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return &ValidationError{
			Field:   fe.Namespace(),
			Message: fmt.Sprintf("failed on %q (value %v)", fe.Tag(), fe.Value()),
			Err:     err,
		}
	}
	return &ValidationError{Message: err.Error(), Err: err}
}

func errorLine(err error) int {
	m := yamlLinePattern.FindStringSubmatch(err.Error())
	if len(m) != 2 {
		return 0
	}
	n, _ := strconv.Atoi(m[1])
	return n
}
