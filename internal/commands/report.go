package commands

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/tally-dev/tally/internal/model"
)

func newReportCommand() *cobra.Command {
	reportCmd := &cobra.Command{
		Use:   "report",
		Short: "Derived views over the ledger",
	}
	reportCmd.AddCommand(newReportNetWorthCommand())
	reportCmd.AddCommand(newReportMonthlyCommand())
	reportCmd.AddCommand(newReportCategoriesCommand())
	reportCmd.AddCommand(newReportDebtsCommand())
	return reportCmd
}

func newReportNetWorthCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "networth",
		Short: "Assets, liabilities, and net worth",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, _ := cmd.Flags().GetString("dir")
			a, err := openApp(dir)
			if err != nil {
				return err
			}
			defer a.close()

			nw := a.ledger.NetWorth()
			currency := a.ledger.User().BaseCurrency
			fmt.Printf("Assets:       %12s %s\n", nw.Assets.StringFixed(2), currency)
			fmt.Printf("Liabilities:  %12s %s\n", nw.Liabilities.StringFixed(2), currency)
			fmt.Printf("Net worth:    %12s %s\n", nw.NetWorth.StringFixed(2), currency)
			fmt.Printf("Receivables:  %12s %s\n", nw.Receivables.StringFixed(2), currency)
			fmt.Printf("Payables:     %12s %s\n", nw.Payables.StringFixed(2), currency)
			return nil
		},
	}
	addDirFlag(cmd)
	return cmd
}

func newReportMonthlyCommand() *cobra.Command {
	var month string

	cmd := &cobra.Command{
		Use:   "monthly",
		Short: "Income and expense for a month",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, _ := cmd.Flags().GetString("dir")
			a, err := openApp(dir)
			if err != nil {
				return err
			}
			defer a.close()

			if month == "" {
				month = model.Today().MonthKey()
			}

			data := a.ledger.Monthly(month)
			fmt.Printf("Month:    %s\n", month)
			fmt.Printf("Income:   %12s\n", data.Income.StringFixed(2))
			fmt.Printf("Expense:  %12s\n", data.Expense.StringFixed(2))
			fmt.Printf("Balance:  %12s\n", data.Balance.StringFixed(2))
			return nil
		},
	}

	cmd.Flags().StringVar(&month, "month", "", "month (2006-01, default current)")
	addDirFlag(cmd)
	return cmd
}

func newReportCategoriesCommand() *cobra.Command {
	var month string
	var all bool

	cmd := &cobra.Command{
		Use:   "categories",
		Short: "Expense breakdown by category for a month",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, _ := cmd.Flags().GetString("dir")
			a, err := openApp(dir)
			if err != nil {
				return err
			}
			defer a.close()

			if month == "" {
				month = model.Today().MonthKey()
			}

			totals := a.ledger.MonthlyCategories(month)
			names := make([]string, 0, len(totals))
			for c := range totals {
				names = append(names, string(c))
			}
			sort.Strings(names)

			for _, name := range names {
				total := totals[model.Category(name)]
				if total.IsZero() && !all {
					continue
				}
				fmt.Printf("%-16s  %12s\n", name, total.StringFixed(2))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&month, "month", "", "month (2006-01, default current)")
	cmd.Flags().BoolVar(&all, "all", false, "include categories with zero spend")
	addDirFlag(cmd)
	return cmd
}

func newReportDebtsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "debts",
		Short: "Receivable and payable totals",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, _ := cmd.Flags().GetString("dir")
			a, err := openApp(dir)
			if err != nil {
				return err
			}
			defer a.close()

			receivable := a.ledger.ReceivableSummary()
			payable := a.ledger.PayableSummary()
			fmt.Printf("Owed to you:  %12s across %d people\n", receivable.Total.StringFixed(2), receivable.Count)
			fmt.Printf("You owe:      %12s across %d people\n", payable.Total.StringFixed(2), payable.Count)
			return nil
		},
	}
	addDirFlag(cmd)
	return cmd
}
