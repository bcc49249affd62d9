package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/spendview-dev/spendview/internal/config"
	"github.com/spendview-dev/spendview/internal/gitops"
	"github.com/spendview-dev/spendview/internal/history"
	"github.com/spendview-dev/spendview/internal/importer"
	"github.com/spendview-dev/spendview/internal/rules"
	"github.com/spendview-dev/spendview/internal/runlog"
	"github.com/spendview-dev/spendview/internal/summary"
	"github.com/spendview-dev/spendview/internal/window"
)

func newRunCommand() *cobra.Command {
	var root string
	var file string
	var asOf string
	var keep bool

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Aggregate the last full month of an export into the history tables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			absRoot, err := filepath.Abs(root)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			ref := time.Now()
			if asOf != "" {
				ref, err = time.Parse("2006-01-02", asOf)
				if err != nil {
					return fmt.Errorf("parsing --as-of %q: %w", asOf, err)
				}
			}

			return runPipeline(absRoot, file, ref, keep)
		},
	}

	cmd.Flags().StringVar(&root, "root", ".", "project directory")
	cmd.Flags().StringVar(&file, "file", "", "transaction export to process (default: newest CSV in import/)")
	cmd.Flags().StringVar(&asOf, "as-of", "", "reference date YYYY-MM-DD (default: today)")
	cmd.Flags().BoolVar(&keep, "keep", false, "leave the export in import/ instead of moving it to processed/")

	return cmd
}

func runPipeline(root, file string, ref time.Time, keep bool) error {
	cfg, err := loadConfig(root)
	if err != nil {
		return err
	}

	fromImportDir := false
	if file == "" {
		files, err := importer.Scan(root)
		if err != nil {
			return err
		}
		newest := importer.Newest(files)
		if newest == nil {
			return fmt.Errorf("no transaction export found in %s", filepath.Join(root, "import"))
		}
		file = newest.Path
		fromImportDir = true
	}

	parser := importer.DefaultRegistry().Get("mint")
	f, err := os.Open(file)
	if err != nil {
		return fmt.Errorf("opening export: %w", err)
	}
	txns, err := parser.Parse(f)
	f.Close()
	if err != nil {
		return fmt.Errorf("parsing %s: %w", file, err)
	}
	loaded := len(txns)

	txns = rules.ExcludeTransfers(txns, cfg.Transfers.Markers)
	excluded := loaded - len(txns)

	txns = rules.DefaultTable().Normalize(txns)
	if err := rules.ValidateTaxonomy(txns); err != nil {
		logRun(root, file, "", loaded, excluded, 0, "failed: "+err.Error())
		return err
	}

	windowed := window.Filter(txns, ref)

	spendRow, incExpRow, err := summary.Summarize(windowed)
	if errors.Is(err, summary.ErrEmptyWindow) {
		logRun(root, file, "", loaded, excluded, 0, "failed: "+err.Error())
		return fmt.Errorf("%w (reference date %s)", err, ref.Format("2006-01-02"))
	}
	if err != nil {
		return err
	}

	store := history.NewStore(root, cfg.History.SpendingFile, cfg.History.IncomeExpensesFile)

	spendRows, err := store.LoadSpend()
	if err != nil {
		return err
	}
	incExpRows, err := store.LoadIncomeExpense()
	if err != nil {
		return err
	}

	spendRows, spendAdded := history.MergeSpend(spendRows, spendRow)
	incExpRows, incExpAdded := history.MergeIncomeExpense(incExpRows, incExpRow)

	if err := store.SaveSpend(spendRows); err != nil {
		return err
	}
	if err := store.SaveIncomeExpense(incExpRows); err != nil {
		return err
	}

	outcome := "skipped"
	if spendAdded || incExpAdded {
		outcome = "merged"
	}
	logRun(root, file, spendRow.Month, loaded, excluded, len(windowed), outcome)

	if outcome == "merged" && cfg.Git.AutoCommit && gitops.IsRepo(root) {
		msg := "history: merge " + spendRow.Month
		hash, err := gitops.CommitPaths(root, msg, cfg.Git.AuthorName, cfg.Git.AuthorEmail,
			[]string{cfg.History.SpendingFile, cfg.History.IncomeExpensesFile})
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: auto-commit failed: %v\n", err)
		} else {
			fmt.Printf("Committed history update (%s)\n", hash)
		}
	}

	if fromImportDir && !keep {
		if err := importer.MarkProcessed(root, filepath.Base(file)); err != nil {
			fmt.Fprintf(os.Stderr, "warning: %v\n", err)
		}
	}

	switch outcome {
	case "merged":
		fmt.Printf("Merged %s: %d transactions, net income %s\n",
			spendRow.Month, len(windowed), incExpRow.NetIncome.StringFixed(2))
	case "skipped":
		fmt.Printf("%s already present in history, nothing changed\n", spendRow.Month)
	}
	return nil
}

// loadConfig reads spendview.yaml, falling back to defaults when the project
// has no config file.
func loadConfig(root string) (*config.Config, error) {
	path := filepath.Join(root, config.FileName)
	cfg, err := config.Load(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return config.Default(), nil
		}
		return nil, err
	}
	return cfg, nil
}

// logRun appends a run-log entry; the run log is best-effort and never fails
// the pipeline.
func logRun(root, source, month string, loaded, excluded, windowed int, outcome string) {
	entry := runlog.Entry{
		Timestamp: time.Now(),
		Source:    filepath.Base(source),
		Month:     month,
		Loaded:    loaded,
		Excluded:  excluded,
		Windowed:  windowed,
		Outcome:   outcome,
	}
	if err := runlog.Append(root, []runlog.Entry{entry}); err != nil {
		fmt.Fprintf(os.Stderr, "warning: writing run log: %v\n", err)
	}
}
