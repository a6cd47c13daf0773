package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/lixenwraith/carousel/audio"
	"github.com/lixenwraith/carousel/carousel"
	"github.com/lixenwraith/carousel/config"
	"github.com/lixenwraith/carousel/engine"
)

// Version is set at build time via ldflags
var Version = "dev"

type rootOptions struct {
	configPath    string
	speed         float64
	fps           int
	reducedMotion bool
	status        bool
	chime         bool
	debug         bool
}

func newRootCmd() *cobra.Command {
	return buildRootCmd(&rootOptions{})
}

func buildRootCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "carousel",
		Short: "Endlessly scrolling strip of labels and images",
		Long: `carousel scrolls a strip of text labels and images across the terminal
in a seamless loop. Hovering the strip or focusing an item pauses it; the
strip also rests while the terminal is unfocused or the strip is off screen.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCarousel(cmd, opts)
		},
	}
	cmd.Version = Version
	cmd.SetVersionTemplate("carousel version {{.Version}}\n")

	pf := cmd.PersistentFlags()
	pf.StringVarP(&opts.configPath, "config", "c", "", "TOML or YAML config file (demo strip when empty)")
	pf.BoolVar(&opts.debug, "debug", false, "write logs to "+logDir+"/"+logFileName)

	f := cmd.Flags()
	f.Float64Var(&opts.speed, "speed", config.DefaultSpeed, "scroll speed in cells per second")
	f.IntVar(&opts.fps, "fps", config.DefaultFPS, "frames per second")
	f.BoolVar(&opts.reducedMotion, "reduced-motion", false, "keep the strip still")
	f.BoolVar(&opts.status, "status", false, "show the metrics line")
	f.BoolVar(&opts.chime, "chime", false, "play a chime on every completed cycle")

	cmd.AddCommand(newMeasureCmd(opts), newPreviewCmd())
	return cmd
}

// loadConfig reads the config file and applies flags the user set explicitly
func loadConfig(cmd *cobra.Command, opts *rootOptions) (*config.Config, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, err
	}
	flags := cmd.Flags()
	if flags.Changed("speed") {
		cfg.Speed = opts.speed
	}
	if flags.Changed("fps") {
		cfg.FPS = opts.fps
	}
	if flags.Changed("status") {
		cfg.ShowStatus = opts.status
	}
	if flags.Changed("chime") {
		cfg.Chime = opts.chime
	}
	cfg.ReducedMotion = cfg.ReducedMotion || opts.reducedMotion || config.ReducedMotionFromEnv(os.Getenv)
	cfg.Normalize()
	return cfg, nil
}

func runCarousel(cmd *cobra.Command, opts *rootOptions) error {
	if logFile := setupLogging(opts.debug); logFile != nil {
		defer logFile.Close()
	}

	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		return err
	}
	// Nothing to animate: leave the terminal untouched
	if len(cfg.Items) == 0 {
		log.Printf("carousel: nothing to show")
		return nil
	}
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("stdout is not a terminal, use `carousel measure` for headless output")
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return errors.Wrap(err, "create screen")
	}
	if err := screen.Init(); err != nil {
		return errors.Wrap(err, "init screen")
	}
	// Restore the terminal even when the loop panics
	defer func() {
		r := recover()
		screen.Fini()
		if r != nil {
			fmt.Fprintf(os.Stderr, "\n\x1b[31mCAROUSEL CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	var onWrap func()
	if cfg.Chime {
		chime := audio.NewChime()
		if err := chime.Initialize(); err != nil {
			log.Printf("audio: %v (continuing without chime)", err)
		} else {
			defer chime.Close()
			onWrap = chime.Play
		}
	}

	app, err := engine.NewApp(screen, cfg, onWrap)
	if errors.Is(err, carousel.ErrNoContainer) {
		log.Printf("carousel: nothing to show")
		return nil
	}
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(commandContext(cmd), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return app.Run(ctx)
}

// commandContext returns the command context or Background when run outside Execute
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
