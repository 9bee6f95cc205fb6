// Package cli implements the command-line interface.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/quickrefs/internal/config"
	"github.com/aidanlsb/quickrefs/internal/ui"
)

var (
	// Global flags
	configPath string

	// Resolved values
	cfg *config.Config
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "qri",
	Short: "Quickrefs - an index and jumplist tool for quick-reference trees",
	Long: `Quickrefs indexes a tree of reStructuredText quick-reference files:
section headings, cross-references, deadlines and todos, persisted to a
queryable index file.

The jumplist commands print tab-separated (label, file, line) listings for
piping into an editor or a line-oriented selector.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if configPath != "" {
			cfg, err = config.LoadFrom(configPath)
		} else {
			cfg, err = config.Load()
		}
		if err != nil {
			loadErr := fmt.Errorf("failed to load config: %w", err)
			if isJSONOutput() {
				// Emit the envelope here; the command body must not run
				// without a config, so still abort with the error and
				// keep cobra from printing it a second time.
				outputError(ErrConfigInvalid, loadErr.Error(), "Fix or remove the config file")
				cmd.Root().SilenceErrors = true
			}
			return loadErr
		}
		if cfg == nil {
			cfg = &config.Config{}
		}
		ui.ConfigureAccent(cfg.UI.Accent)
		return nil
	},
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format (for agent/script use)")
}

// getConfig returns the loaded config.
func getConfig() *config.Config {
	return cfg
}

// resolveIndexFile returns the index file to use: the flag value when set,
// otherwise the configured default.
func resolveIndexFile(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return getConfig().ResolvedIndexFile()
}
