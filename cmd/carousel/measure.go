package main

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/lixenwraith/carousel/carousel"
	"github.com/lixenwraith/carousel/config"
	"github.com/lixenwraith/carousel/engine"
)

func newMeasureCmd(root *rootOptions) *cobra.Command {
	var width int
	cmd := &cobra.Command{
		Use:   "measure",
		Short: "Print the loop geometry for a viewport width",
		Long: `measure waits for every image, measures one loop and seeds clones the same
way the interactive strip does, then prints the result without touching the terminal.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if logFile := setupLogging(root.debug); logFile != nil {
				defer logFile.Close()
			}
			cfg, err := config.Load(root.configPath)
			if err != nil {
				return err
			}
			return runMeasure(commandContext(cmd), cmd.OutOrStdout(), cfg, width)
		},
	}
	cmd.Flags().IntVarP(&width, "width", "w", 80, "viewport width in cells")
	return cmd
}

func runMeasure(ctx context.Context, out io.Writer, cfg *config.Config, width int) error {
	if width < 0 {
		return errors.Errorf("width %d is negative", width)
	}
	// Build subtracts the margins from the screen width
	container := engine.Build(cfg, width+2*cfg.Margin, 1)
	c, err := carousel.New(container, carousel.Options{Speed: cfg.Speed, ReducedMotion: true})
	if errors.Is(err, carousel.ErrNoContainer) {
		fmt.Fprintln(out, "no items")
		return nil
	}
	if err != nil {
		return err
	}
	if err := c.Start(ctx, carousel.NewManualScheduler()); err != nil {
		return err
	}

	track := container.Track()
	st := c.State()
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "viewport\t%d\n", container.Width())
	fmt.Fprintf(tw, "loop width\t%.0f\n", st.LoopWidth)
	fmt.Fprintf(tw, "target width\t%.0f\n", carousel.TargetWidth(st.LoopWidth, container.Width()))
	fmt.Fprintf(tw, "scroll width\t%d\n", track.ScrollWidth())
	fmt.Fprintf(tw, "items\t%d base, %d total\n", len(track.Base()), track.Len())
	fmt.Fprintf(tw, "height\t%d\n", track.Height())
	fmt.Fprintf(tw, "speed\t%.1f cells/s\n", c.Speed())
	return tw.Flush()
}
