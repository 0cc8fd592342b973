package cli

import (
	"fmt"
	"log"
	"os"

	"github.com/codemend/codemend/internal/backup"
	"github.com/codemend/codemend/internal/findings"
	"github.com/codemend/codemend/internal/rectify"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	fixLang   string
	fixStep   bool
	fixDryRun bool
)

// fixCmd represents the fix command
var fixCmd = &cobra.Command{
	Use:   "fix <file>",
	Short: "Apply suggested fixes to a source file",
	Long: `Fix analyzes a source file and rewrites the flagged lines with their
suggested fixes. The original file is copied to a backup before the first
write; the backup is never overwritten by later runs.

By default all fixes are applied in one batch. With --step they are applied
one finding at a time, the way the interactive workflow steps through bugs.
After fixing, the file is re-analyzed and remaining findings are reported.

Example:
  codemend fix script.py
  codemend fix script.py --step
  codemend fix script.py --dry-run`,
	Args: cobra.ExactArgs(1),
	RunE: runFix,
}

func init() {
	rootCmd.AddCommand(fixCmd)

	fixCmd.Flags().StringVar(&fixLang, "lang", "", "language override (default: from file extension)")
	fixCmd.Flags().BoolVar(&fixStep, "step", false, "apply fixes one finding at a time")
	fixCmd.Flags().BoolVar(&fixDryRun, "dry-run", false, "print the fixed code instead of writing the file")
}

func runFix(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	eng, _, err := buildEngine(cfg)
	if err != nil {
		return err
	}

	path := args[0]
	src, lang, err := readSource(cfg, path, fixLang)
	if err != nil {
		return err
	}

	report := eng.Analyze(src, lang)
	if report.Count == 0 {
		color.Green("✓ No bugs detected in %s", path)
		return nil
	}

	var fixed string
	if fixStep {
		fixed = applyStepwise(src, report.Findings)
	} else {
		fixed = rectify.All(src, report.Findings)
	}

	if fixDryRun {
		fmt.Print(fixed)
		return nil
	}

	backupPath, created, err := backup.Ensure(path, cfg.Backup.Suffix)
	if err != nil {
		return err
	}
	if created {
		log.Printf("[fix] backed up %s to %s", path, backupPath)
	}

	if err := os.WriteFile(path, []byte(fixed), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	fmt.Printf("Applied %d fix(es) to %s\n", report.Count, path)

	// Findings are stale once the document changes; re-run detection to see
	// what remains.
	remaining := eng.Analyze(fixed, lang)
	if remaining.Count == 0 {
		color.Green("✓ No bugs remain")
		return nil
	}
	printReport(path, remaining)
	return nil
}

// applyStepwise replaces flagged lines one finding at a time, driving a
// worklist cursor the way the interactive flow rectifies the current bug and
// moves on. All edits are same-line replacements, so the remaining entries
// stay valid while the list shrinks.
func applyStepwise(src string, ff []findings.Finding) string {
	work := rectify.NewWorklist(ff)
	for {
		f, ok := work.Current()
		if !ok {
			return src
		}
		next, _, applied := rectify.One(src, f)
		if applied {
			src = next
			log.Printf("[fix] fixed line %d (%s)", f.Line, f.Category)
		} else {
			log.Printf("[fix] skipped line %d: out of range", f.Line)
		}
		work.RemoveCurrent()
	}
}
