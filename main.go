package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

type options struct {
	levelsDir string
	assetsDir string
	level     int
	seed      uint64
	dbPath    string
	debug     bool
	watch     bool
	blast     bool
}

func main() {
	var opts options
	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true})

	root := &cobra.Command{
		Use:           "platformer",
		Short:         "Side-scrolling shooter",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if opts.debug {
				logger.SetLevel(log.DebugLevel)
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlay(opts, logger)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.levelsDir, "levels", "", "directory of levelN_data.csv files (embedded levels when empty)")
	flags.StringVar(&opts.assetsDir, "assets", "", "image directory laid out as <type>/<animation>/<i>.png")
	flags.IntVar(&opts.level, "level", 1, "level to start on")
	flags.Uint64Var(&opts.seed, "seed", 0, "random seed for hostile behaviour (0 uses game.yaml)")
	flags.StringVar(&opts.dbPath, "db", "~/.platformer/runs.db", "run history database (empty disables)")
	flags.BoolVar(&opts.debug, "debug", false, "debug logging and collision boxes")
	flags.BoolVar(&opts.watch, "watch", false, "reload prefab specs when they change on disk")
	flags.BoolVar(&opts.blast, "blast", false, "explosives detonate with area damage when their timer runs out")

	root.AddCommand(
		newPlayCmd(&opts, logger),
		newSimCmd(&opts, logger),
		newValidateCmd(&opts, logger),
		newScoresCmd(&opts, logger),
	)

	if err := root.Execute(); err != nil {
		logger.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func newPlayCmd(opts *options, logger *log.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Open the game window",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlay(*opts, logger)
		},
	}
}
