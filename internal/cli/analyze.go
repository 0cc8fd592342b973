package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/codemend/codemend/internal/config"
	"github.com/codemend/codemend/internal/findings"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	analyzeLang string
	analyzeJSON bool
)

// analyzeCmd represents the analyze command
var analyzeCmd = &cobra.Command{
	Use:   "analyze <file>",
	Short: "Detect probable defects in a source file",
	Long: `Analyze scans a source file line by line against the rule catalog for its
language and, for Python, runs the structural checker on the parse tree.

Example:
  codemend analyze script.py
  codemend analyze Main.java --json
  codemend analyze build.txt --lang python`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().StringVar(&analyzeLang, "lang", "", "language override (default: from file extension)")
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "print the report as JSON")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	eng, _, err := buildEngine(cfg)
	if err != nil {
		return err
	}

	path := args[0]
	src, lang, err := readSource(cfg, path, analyzeLang)
	if err != nil {
		return err
	}

	report := eng.Analyze(src, lang)

	if analyzeJSON {
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	}

	printReport(path, report)
	return nil
}

// readSource loads a file and resolves its language, either from an explicit
// override or from the extension mapping.
func readSource(cfg *config.Config, path, langOverride string) (string, findings.Language, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", "", fmt.Errorf("reading %s: %w", path, err)
	}

	if langOverride != "" {
		lang, ok := findings.ParseLanguage(langOverride)
		if !ok {
			return "", "", fmt.Errorf("unknown language %q", langOverride)
		}
		return string(data), lang, nil
	}

	lang, ok := cfg.LanguageForFile(filepath.Ext(path))
	if !ok {
		return "", "", fmt.Errorf("cannot detect language of %s; use --lang", path)
	}
	return string(data), lang, nil
}

// printReport renders findings for a terminal, one block per finding.
func printReport(path string, report findings.Report) {
	if report.Count == 0 {
		color.Green("✓ No bugs detected in %s", path)
		return
	}

	color.Red("⚠ Bugs detected in %s: %d\n", path, report.Count)
	for i, f := range report.Findings {
		fmt.Printf("#%d %s line %d: %s\n", i+1, categoryColor(f.Category).Sprint(f.Category), f.Line, f.Message)
		if f.Original != "" {
			fmt.Printf("   original: %s\n", f.Original)
		}
		fmt.Printf("   fix:      %s\n", f.Fix)
	}
}

func categoryColor(cat findings.Category) *color.Color {
	switch cat {
	case findings.SyntaxError, findings.LogicError:
		return color.New(color.FgRed, color.Bold)
	case findings.LogicWarning, findings.StyleWarning:
		return color.New(color.FgYellow)
	case findings.DeprecationWarning:
		return color.New(color.FgCyan)
	default:
		return color.New()
	}
}
