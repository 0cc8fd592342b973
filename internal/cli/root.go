// Package cli implements the codemend command line interface.
package cli

import (
	"fmt"
	"os"

	"github.com/codemend/codemend/internal/analyzer"
	"github.com/codemend/codemend/internal/config"
	"github.com/codemend/codemend/internal/rules"
	"github.com/codemend/codemend/internal/syntax"
	"github.com/codemend/codemend/internal/syntax/pythonchecker"
	"github.com/spf13/cobra"
)

var cfgFile string

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "codemend",
	Short: "Codemend - detect probable defects in source code and suggest line fixes",
	Long: `Codemend scans source code for probable defects using per-language
pattern rules and, for Python, a structural checker built on a parse tree.

Findings are heuristic suggestions: each one points at a line and proposes a
replacement. Fixes can be applied individually or in one batch, with the
original file kept as a one-shot backup.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: codemend.yaml if present)")

	rootCmd.AddCommand(versionCmd)
}

// loadConfig resolves the effective configuration. A missing default config
// file is not an error; an unreadable explicit one is.
func loadConfig() (*config.Config, error) {
	if cfgFile != "" {
		return config.Load(cfgFile)
	}
	if _, err := os.Stat("codemend.yaml"); err == nil {
		return config.Load("codemend.yaml")
	}
	return config.Default(), nil
}

// buildEngine assembles the catalog and checkers the way main wires a
// process: built-in rules, config extras, and the python checker.
func buildEngine(cfg *config.Config) (*analyzer.Engine, *rules.Catalog, error) {
	catalog := rules.Builtin()

	extra, err := cfg.ExtraRules()
	if err != nil {
		return nil, nil, fmt.Errorf("loading extra rules: %w", err)
	}
	if extra != nil {
		catalog, err = catalog.WithExtra(extra)
		if err != nil {
			return nil, nil, fmt.Errorf("compiling extra rules: %w", err)
		}
	}

	checkers := syntax.NewRegistry()
	checkers.Register(pythonchecker.New())

	return analyzer.New(catalog, checkers), catalog, nil
}
