package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"whynosound/internal/config"
	"whynosound/internal/diagnose"
	"whynosound/internal/logging"
	"whynosound/internal/probes"
	"whynosound/internal/toolexec"
)

// errIssuesFound signals the unhealthy-but-successfully-diagnosed exit path.
var errIssuesFound = errors.New("audio issues detected")

type rootFlags struct {
	configPath string
	jsonOutput bool
	debug      bool
	timeout    int
	noColor    bool
	logLevel   string
}

func newRootCommand() *cobra.Command {
	flags := &rootFlags{}

	rootCmd := &cobra.Command{
		Use:   "whynosound",
		Short: "Diagnose why Linux audio isn't working",
		Long: "whynosound probes the Linux audio subsystem (audio server, devices,\n" +
			"default sink, mute state, stream routing, Bluetooth profile) and\n" +
			"reports the most probable root cause with suggested fixes.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDiagnosis(cmd, flags)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Configuration file path")
	rootCmd.Flags().BoolVar(&flags.jsonOutput, "json", false, "Output the report as JSON")
	rootCmd.Flags().BoolVar(&flags.debug, "debug", false, "Include raw command transcripts")
	rootCmd.Flags().IntVar(&flags.timeout, "timeout", 0, "Per-command timeout in seconds (overrides config)")
	rootCmd.Flags().BoolVar(&flags.noColor, "no-color", false, "Disable colored output")
	rootCmd.Flags().StringVar(&flags.logLevel, "log-level", "", "Log level on stderr: debug, info, warn, error")

	rootCmd.AddCommand(newChecksCommand())
	rootCmd.AddCommand(newConfigCommand(&flags.configPath))

	return rootCmd
}

func runDiagnosis(cmd *cobra.Command, flags *rootFlags) error {
	cfg, _, _, err := config.Load(flags.configPath)
	if err != nil {
		return err
	}
	applyFlagOverrides(cfg, flags)

	logger, err := logging.New(logging.Options{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Writer: cmd.ErrOrStderr(),
	})
	if err != nil {
		return err
	}

	commands := toolexec.NewRunner(cfg.CommandTimeout(), logger)
	tools := probes.Detect(cfg)
	runner := diagnose.NewRunner(probes.All(commands, tools), logger)

	findings, err := runner.RunAll(cmd.Context())
	if err != nil {
		return err
	}
	report, err := diagnose.Aggregate(findings)
	if err != nil {
		return fmt.Errorf("internal fault: %w", err)
	}
	if !cfg.Output.Debug {
		report = report.WithoutEvidence()
	}

	if cfg.Output.Format == "json" {
		if err := writeJSON(cmd, report); err != nil {
			return err
		}
	} else {
		renderHuman(cmd.OutOrStdout(), report, renderOptions{
			Debug:    cfg.Output.Debug,
			Colorize: resolveColor(cfg.Output.Color, cmd),
		})
	}

	if !report.Healthy {
		return errIssuesFound
	}
	return nil
}

func applyFlagOverrides(cfg *config.Config, flags *rootFlags) {
	if flags.jsonOutput {
		cfg.Output.Format = "json"
	}
	if flags.debug {
		cfg.Output.Debug = true
	}
	if flags.noColor {
		cfg.Output.Color = "never"
	}
	if flags.timeout > 0 {
		cfg.Tools.CommandTimeout = flags.timeout
	}
	if flags.logLevel != "" {
		cfg.Logging.Level = flags.logLevel
	}
}

func resolveColor(mode string, cmd *cobra.Command) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default:
		return shouldColorize(cmd.OutOrStdout())
	}
}
