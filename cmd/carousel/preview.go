package main

import (
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/lixenwraith/carousel/media"
)

func newPreviewCmd() *cobra.Command {
	var cols int
	cmd := &cobra.Command{
		Use:   "preview <image>",
		Short: "Print an image the way the strip renders it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return errors.Wrap(err, "read image")
			}
			img := media.FromBytes(args[0], data, media.Size{Cols: cols})
			if err := img.Decode(); err != nil {
				return err
			}
			return img.Glyphs().WriteANSI(cmd.OutOrStdout())
		},
	}
	cmd.Flags().IntVar(&cols, "cols", media.DefaultCols, "width in cells")
	return cmd
}
