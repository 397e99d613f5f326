// Package cli provides the Cobra commands of the careproc-validator
// tool: validating a plugin project and printing tool information.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/careproc/validator/internal/config"
	"github.com/careproc/validator/pkg/logger"
)

// Version is the tool version, overridable at build time.
var Version = "0.1.0"

var (
	cfgFile string
	cfg     *config.Configuration
)

var rootCmd = &cobra.Command{
	Use:   "careproc-validator",
	Short: "validate process plugin projects",
	Long: `careproc-validator checks a process plugin project before release:
process definitions, clinical-resource templates, vocabularies and the
implementation classes they reference. Every check result, passing or
failing, ends up in a JSON report.`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(cfgFile)
		if err != nil {
			return err
		}
		applyFlags(cmd)
		logger.SetLevel(logLevel(cfg.LogLevel))
		return nil
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", ".careproc/config.json", "path to config file")
	rootCmd.PersistentFlags().String("project-root", "", "project root (default: discovered from a marker file)")
	rootCmd.PersistentFlags().String("log-level", "", "log level: debug, info, warn, error, none")
}

// applyFlags lets explicitly set flags override the loaded
// configuration.
func applyFlags(cmd *cobra.Command) {
	if f := cmd.Flags().Lookup("project-root"); f != nil && f.Changed {
		cfg.ProjectRoot = f.Value.String()
	}
	if f := cmd.Flags().Lookup("log-level"); f != nil && f.Changed {
		cfg.LogLevel = f.Value.String()
	}
}

func logLevel(name string) logger.Level {
	switch name {
	case "debug":
		return logger.LevelDebug
	case "warn":
		return logger.LevelWarn
	case "error":
		return logger.LevelError
	case "none":
		return logger.LevelNone
	default:
		return logger.LevelInfo
	}
}
