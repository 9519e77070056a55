package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/shinya/memeedit/internal/config"
	"github.com/shinya/memeedit/internal/logger"
	"github.com/shinya/memeedit/pkg/memeedit"
	"github.com/shinya/memeedit/pkg/memeedit/raster"
)

type rootFlags struct {
	configPath string
	logLevel   string
}

// appEnv は起動時に読み込む設定とロガーです
type appEnv struct {
	cfg *config.Config
	log *logger.Logger
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "memeedit",
		Short:         "Caption a picture with top and bottom text and share the result",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "Path to a YAML config file")
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "Override the configured log level")

	cmd.AddCommand(newEditCmd(flags))
	cmd.AddCommand(newRenderCmd(flags))
	cmd.AddCommand(newFontsCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// load は設定を読み込み、ロガーを作成します。logOutがnilなら標準エラーに出力します
func (f *rootFlags) load(logOut io.Writer) (*appEnv, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return nil, err
	}
	if f.logLevel != "" {
		cfg.Log.Level = f.logLevel
	}

	log, err := logger.New(logger.Options{
		Level:         cfg.Log.Level,
		HumanReadable: cfg.Log.Human,
		Writer:        logOut,
	})
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}
	return &appEnv{cfg: cfg, log: log}, nil
}

func (e *appEnv) editorOptions() (memeedit.Options, error) {
	bg, err := raster.ParseBackground(e.cfg.Canvas.Background)
	if err != nil {
		return memeedit.Options{}, err
	}
	return memeedit.Options{
		Width:          e.cfg.Canvas.Width,
		Height:         e.cfg.Canvas.Height,
		Background:     bg,
		FontDirs:       e.cfg.Fonts.Dirs,
		SystemFontScan: e.cfg.Fonts.SystemScan,
		Logger:         e.log,
	}, nil
}

// preferredFont はフラグ、設定の順で使うフォント名を返します
func (e *appEnv) preferredFont(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return e.cfg.Fonts.Default
}
