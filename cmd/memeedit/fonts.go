package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shinya/memeedit/pkg/memeedit"
)

func newFontsCmd(rootFlags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "fonts",
		Short: "List caption fonts in picker order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := rootFlags.load(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			opts, err := env.editorOptions()
			if err != nil {
				return err
			}

			catalog := memeedit.Fonts(opts)
			name, index, ok := catalog.DefaultFont()

			out := cmd.OutOrStdout()
			for i, family := range catalog.ListFonts() {
				marker := "  "
				if i == index {
					marker = "* "
				}
				fmt.Fprintf(out, "%s%s\n", marker, family)
			}
			if !ok {
				fmt.Fprintf(out, "\n%s is not installed; captions fall back to the default family\n", name)
			}
			return nil
		},
	}
}
