// Package cli implements the flipflop command line.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// CLI holds the command tree and the options shared by all commands.
type CLI struct {
	version     string
	verbose     bool
	silent      bool
	configPath  string
	cfg         Config
	initialized bool
	rootCmd     *cobra.Command
}

// New creates a CLI reporting the given version.
func New(version string) *CLI {
	c := &CLI{version: version, cfg: DefaultConfig()}
	c.setupCommands()
	return c
}

func (c *CLI) setupCommands() {
	c.rootCmd = &cobra.Command{
		Use:           "flipflop",
		Short:         "Flip-flop log-partition and decoding kernels",
		Version:       c.version,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			c.initLogging()
			return c.resolveConfig(cmd)
		},
		Run: func(cmd *cobra.Command, args []string) {
			_ = cmd.Help()
		},
	}

	pf := c.rootCmd.PersistentFlags()
	pf.BoolVarP(&c.verbose, "verbose", "v", false, "Enable debug logging")
	pf.BoolVarP(&c.silent, "silent", "s", false, "Suppress all logging")
	pf.StringVar(&c.configPath, "config", "", "YAML file with defaults for the flags below")
	pf.IntVar(&c.cfg.NBase, "nbase", c.cfg.NBase, "Number of bases")
	pf.IntVar(&c.cfg.NBlock, "nblock", c.cfg.NBlock, "Blocks per synthetic read")
	pf.IntVar(&c.cfg.Reads, "reads", c.cfg.Reads, "Number of synthetic reads")
	pf.Uint64Var(&c.cfg.Seed, "seed", c.cfg.Seed, "Seed of the first read")
	pf.Float64Var(&c.cfg.Scale, "scale", c.cfg.Scale, "Standard deviation of synthetic scores")
	pf.StringVar(&c.cfg.Alphabet, "alphabet", c.cfg.Alphabet, "Base symbols, one per base")
	pf.IntVar(&c.cfg.Workers, "workers", c.cfg.Workers, "Reads evaluated at once (0 = one per CPU)")
	pf.Float64Var(&c.cfg.Tolerance, "tolerance", c.cfg.Tolerance, "Relative forward/backward tolerance")

	c.rootCmd.AddCommand(c.newVersionCommand())
	c.rootCmd.AddCommand(c.newCheckCommand())
	c.rootCmd.AddCommand(c.newDecodeCommand())
}

// Run executes the CLI with os.Args.
func (c *CLI) Run() error {
	return c.rootCmd.Execute()
}

// initLogging installs the default slog handler once.
func (c *CLI) initLogging() {
	if c.initialized {
		return
	}
	c.initialized = true

	level := slog.LevelInfo
	if c.verbose {
		level = slog.LevelDebug
	}
	if c.silent {
		level = slog.Level(100)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})))
}

// resolveConfig layers flags over the config file over defaults.
func (c *CLI) resolveConfig(cmd *cobra.Command) error {
	if c.configPath != "" {
		fileCfg, err := LoadConfig(c.configPath)
		if err != nil {
			return err
		}
		flags := cmd.Flags()
		merge := func(name string, apply func()) {
			if !flags.Changed(name) {
				apply()
			}
		}
		merge("nbase", func() { c.cfg.NBase = fileCfg.NBase })
		merge("nblock", func() { c.cfg.NBlock = fileCfg.NBlock })
		merge("reads", func() { c.cfg.Reads = fileCfg.Reads })
		merge("seed", func() { c.cfg.Seed = fileCfg.Seed })
		merge("scale", func() { c.cfg.Scale = fileCfg.Scale })
		merge("alphabet", func() { c.cfg.Alphabet = fileCfg.Alphabet })
		merge("workers", func() { c.cfg.Workers = fileCfg.Workers })
		merge("tolerance", func() { c.cfg.Tolerance = fileCfg.Tolerance })
		slog.Debug("Loaded config", "path", c.configPath)
	}
	if err := c.cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

func (c *CLI) newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "flipflop %s\n", c.version)
		},
	}
}
