package cli

import (
	"fmt"

	"github.com/codemend/codemend/internal/findings"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// rulesCmd represents the rules command
var rulesCmd = &cobra.Command{
	Use:   "rules [language]",
	Short: "List the detection rules in the catalog",
	Long: `Rules prints every detection rule registered for a language, in the
order the scanner applies them. Without an argument, all languages are
listed. Extra rules from the config file appear after the built-in ones.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRules,
}

func init() {
	rootCmd.AddCommand(rulesCmd)
}

func runRules(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	_, catalog, err := buildEngine(cfg)
	if err != nil {
		return err
	}

	languages := catalog.Languages()
	if len(args) == 1 {
		lang, ok := findings.ParseLanguage(args[0])
		if !ok {
			return fmt.Errorf("unknown language %q", args[0])
		}
		languages = []findings.Language{lang}
	}

	for _, lang := range languages {
		color.New(color.Bold).Printf("%s\n", lang)
		for i, r := range catalog.Rules(lang) {
			fmt.Printf("  %2d. [%s] %s\n", i+1, categoryColor(r.Category()).Sprint(r.Category()), r.Message())
			fmt.Printf("      pattern: %s\n", r.Pattern())
			fmt.Printf("      fix:     %s\n", r.FixTemplate())
		}
	}
	return nil
}
