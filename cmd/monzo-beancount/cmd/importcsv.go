package cmd

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/quarryforge/monzo-beancount/pkg/csvimport"
)

// importCmd represents the import command.
var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Convert pot CSV files into include fragments",
	Long: `Convert each CSV file in the import directory into a Beancount
fragment in the include directory. The next generate run picks the
fragments up via include directives.

Expected CSV columns:
  date,description,amount,local_currency,local_amount,category

Example:
  monzo-beancount import`,
	RunE: runImport,
}

func runImport(cmd *cobra.Command, args []string) error {
	_, paths, settings, err := loadEnvironment()
	if err != nil {
		return err
	}

	importer := csvimport.New(settings, paths)
	results, errs := importer.ImportAll()

	for _, err := range errs {
		slog.Error("Import failed", "error", err)
	}

	for _, result := range results {
		for _, skip := range result.SkippedRows {
			slog.Warn("Row skipped", "source", result.Source, "row", skip.Row, "error", skip.Err)
		}
		slog.Info("Imported file",
			"source", result.Source,
			"fragment", result.Fragment,
			"records", result.Records,
		)
	}

	return nil
}
