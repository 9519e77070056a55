package main

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/shinya/memeedit/internal/tui"
	"github.com/shinya/memeedit/pkg/memeedit"
	"github.com/shinya/memeedit/pkg/memeedit/editor"
	"github.com/shinya/memeedit/pkg/memeedit/media"
)

type editOptions struct {
	image   string
	logFile string
}

func newEditCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &editOptions{}

	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Open the interactive meme editor",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEdit(cmd, rootFlags, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.image, "image", "i", "", "Image to open on start")
	cmd.Flags().StringVar(&opts.logFile, "log-file", "", "Write logs to this file while the editor is open")

	return cmd
}

func runEdit(cmd *cobra.Command, rootFlags *rootFlags, opts *editOptions) error {
	// 画面を乱さないよう既定ではログを捨てる
	var logOut io.Writer = io.Discard
	if opts.logFile != "" {
		f, err := os.OpenFile(opts.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		logOut = f
	}

	env, err := rootFlags.load(logOut)
	if err != nil {
		return err
	}
	editorOpts, err := env.editorOptions()
	if err != nil {
		return err
	}

	source := media.NewFileSource(env.log)
	share := media.NewFileShare(env.cfg.Share.OutputDir, env.log)
	ctrl, err := memeedit.NewController(editorOpts, memeedit.Collaborators{Source: source, Share: share})
	if err != nil {
		return err
	}
	if name := env.preferredFont(""); name != "" && name != ctrl.FontName() {
		ctrl.SelectFont(name)
	}
	if opts.image != "" {
		source.Select(opts.image)
		if err := ctrl.PickImage(editor.SourceLibrary); err != nil {
			return err
		}
		if err := source.Err(); err != nil {
			return fmt.Errorf("load image %s: %w", opts.image, err)
		}
	}

	p := tea.NewProgram(tui.New(ctrl, source, share), tea.WithAltScreen(), tea.WithInput(cmd.InOrStdin()), tea.WithOutput(cmd.OutOrStdout()))
	_, err = p.Run()
	return err
}
