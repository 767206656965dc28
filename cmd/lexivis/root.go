package main

import (
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/cognicore/lexivis/internal/logging"
	"github.com/cognicore/lexivis/pkg/lexivis/config"
)

// commandContext carries the resolved configuration between cobra hooks
// and subcommands.
type commandContext struct {
	configPath string
	envFile    string
	cfg        config.Config
	logger     *slog.Logger
}

func newRootCommand() *cobra.Command {
	ctx := &commandContext{}

	rootCmd := &cobra.Command{
		Use:           "lexivis",
		Short:         "Chapter vocabulary statistics for word visualizations",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return ctx.resolve(cmd.Flags())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&ctx.configPath, "config", "c", "", "Configuration file (.yaml or .toml)")
	pf.StringVar(&ctx.envFile, "env-file", ".env", "Optional .env file with LEXIVIS_* overrides")
	pf.String("log-level", "", "Log level: debug, info, warn, error")
	pf.String("log-format", "", "Log format: json or text (default: text on a terminal)")
	pf.String("stoplist", "", "YAML stoplist file replacing the English base set")
	pf.Bool("snowball", false, "Also filter the snowball English stopword list")

	rootCmd.AddCommand(newGenerateCommand(ctx))
	rootCmd.AddCommand(newStopwordsCommand(ctx))

	return rootCmd
}

// resolve loads .env, the config file and environment, then applies any
// flags the user set explicitly.
func (c *commandContext) resolve(flags *pflag.FlagSet) error {
	if err := config.LoadDotEnv(c.envFile); err != nil {
		return err
	}
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return err
	}

	if flags.Changed("log-level") {
		cfg.LogLevel, _ = flags.GetString("log-level")
	}
	if flags.Changed("log-format") {
		cfg.LogFormat, _ = flags.GetString("log-format")
	}
	if flags.Changed("stoplist") {
		cfg.Stoplist, _ = flags.GetString("stoplist")
	}
	if flags.Changed("snowball") {
		cfg.Snowball, _ = flags.GetBool("snowball")
	}
	if flags.Changed("outfile") {
		cfg.Outfile, _ = flags.GetString("outfile")
	}
	if flags.Changed("words") {
		cfg.WordCount, _ = flags.GetInt("words")
	}
	if flags.Changed("selection") {
		cfg.Selection, _ = flags.GetString("selection")
	}
	if flags.Changed("workers") {
		cfg.Workers, _ = flags.GetInt("workers")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	c.cfg = cfg
	c.logger = logging.New(logging.Config{Format: cfg.LogFormat, Level: cfg.LogLevel})
	slog.SetDefault(c.logger)
	return nil
}
