package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tally-dev/tally/internal/importer"
	"github.com/tally-dev/tally/internal/ledger"
	"github.com/tally-dev/tally/internal/model"
)

func newImportCommand() *cobra.Command {
	var file, account, format string

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import a bank CSV as income/expense transactions",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, _ := cmd.Flags().GetString("dir")
			a, err := openApp(dir)
			if err != nil {
				return err
			}
			defer a.close()

			registry := importer.DefaultRegistry()
			parser := registry.Get(format)
			if parser == nil {
				return fmt.Errorf("unknown format %q (have: %s)",
					format, strings.Join(registry.Formats(), ", "))
			}

			f, err := os.Open(file)
			if err != nil {
				return fmt.Errorf("opening %s: %w", file, err)
			}
			defer f.Close()

			rows, err := parser.Parse(f)
			if err != nil {
				return fmt.Errorf("parsing %s: %w", file, err)
			}

			imported := 0
			for _, row := range rows {
				mainType := model.MainExpense
				if row.Amount.IsPositive() {
					mainType = model.MainIncome
				}
				txn, err := a.ledger.AddTransaction(ledger.TransactionInput{
					Date:        row.Date,
					Amount:      row.Amount,
					AccountID:   account,
					Category:    row.Category,
					Description: row.Description,
					MainType:    mainType,
				})
				if err != nil {
					return err
				}
				if txn == nil {
					return fmt.Errorf("no account %s", account)
				}
				imported++
			}

			a.record("import", fmt.Sprintf("%s (%d rows)", file, imported), account)
			fmt.Printf("Imported %d transactions into account %s\n", imported, account)
			return nil
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "CSV file to import (required)")
	_ = cmd.MarkFlagRequired("file")
	cmd.Flags().StringVar(&account, "account", "", "target account id (required)")
	_ = cmd.MarkFlagRequired("account")
	cmd.Flags().StringVar(&format, "format", "generic", "statement format")
	addDirFlag(cmd)

	return cmd
}
