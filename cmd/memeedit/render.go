package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shinya/memeedit/pkg/memeedit"
	"github.com/shinya/memeedit/pkg/memeedit/editor"
	"github.com/shinya/memeedit/pkg/memeedit/media"
	"github.com/shinya/memeedit/pkg/memeedit/meme"
)

type renderOptions struct {
	image  string
	top    string
	bottom string
	font   string
	outDir string
}

func newRenderCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Compose a meme without the interactive editor and write it as PNG",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, rootFlags, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.image, "image", "i", "", "Source image (png, jpeg, gif, bmp, tiff, webp)")
	cmd.Flags().StringVarP(&opts.top, "top", "t", "", "Top caption (empty keeps the placeholder)")
	cmd.Flags().StringVarP(&opts.bottom, "bottom", "b", "", "Bottom caption (empty keeps the placeholder)")
	cmd.Flags().StringVarP(&opts.font, "font", "f", "", "Caption font family")
	cmd.Flags().StringVarP(&opts.outDir, "out", "o", "", "Output directory (defaults to share.output_dir)")
	_ = cmd.MarkFlagRequired("image")

	return cmd
}

func runRender(cmd *cobra.Command, rootFlags *rootFlags, opts *renderOptions) error {
	env, err := rootFlags.load(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	editorOpts, err := env.editorOptions()
	if err != nil {
		return err
	}

	outDir := opts.outDir
	if outDir == "" {
		outDir = env.cfg.Share.OutputDir
	}

	source := media.NewFileSource(env.log)
	share := media.NewFileShare(outDir, env.log)

	saved := false
	ctrl, err := memeedit.NewController(editorOpts, memeedit.Collaborators{
		Source: source,
		Share:  share,
		OnSave: func(meme.Record) { saved = true },
	})
	if err != nil {
		return err
	}

	source.Select(opts.image)
	if err := ctrl.PickImage(editor.SourceLibrary); err != nil {
		return err
	}
	if ctrl.State() != editor.StateEditing {
		return fmt.Errorf("load image %s: %w", opts.image, source.Err())
	}

	if name := env.preferredFont(opts.font); name != "" && name != ctrl.FontName() {
		ctrl.SelectFont(name)
	}
	ctrl.EditCaption(editor.FieldTop, opts.top)
	ctrl.EditCaption(editor.FieldBottom, opts.bottom)
	ctrl.Return()

	if err := ctrl.ShareMeme(); err != nil {
		return err
	}
	if !saved {
		return fmt.Errorf("share meme: %w", share.Err())
	}

	fmt.Fprintln(cmd.OutOrStdout(), share.LastPath())
	return nil
}
