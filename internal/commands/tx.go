package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tally-dev/tally/internal/ledger"
	"github.com/tally-dev/tally/internal/model"
)

func newTxCommand() *cobra.Command {
	txCmd := &cobra.Command{
		Use:   "tx",
		Short: "Manage transactions",
	}
	txCmd.AddCommand(newTxAddCommand())
	txCmd.AddCommand(newTxTransferCommand())
	txCmd.AddCommand(newTxDebtCommand())
	txCmd.AddCommand(newTxRepayCommand())
	txCmd.AddCommand(newTxPayCardCommand())
	txCmd.AddCommand(newTxInvestCommand())
	txCmd.AddCommand(newTxDeleteCommand())
	txCmd.AddCommand(newTxListCommand())
	return txCmd
}

func newTxAddCommand() *cobra.Command {
	var account, txType, amount, category, date, desc string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record an income or expense",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, _ := cmd.Flags().GetString("dir")
			a, err := openApp(dir)
			if err != nil {
				return err
			}
			defer a.close()

			value, err := parseAmount(amount)
			if err != nil {
				return err
			}
			when, err := parseDateFlag(date)
			if err != nil {
				return err
			}

			mainType := model.MainExpense
			if txType == "income" {
				mainType = model.MainIncome
			}

			txn, err := a.ledger.AddTransaction(ledger.TransactionInput{
				Date:        when,
				Amount:      value,
				AccountID:   account,
				Category:    model.Category(category),
				Description: desc,
				MainType:    mainType,
			})
			if err != nil {
				return err
			}
			if txn == nil {
				fmt.Printf("No account %s\n", account)
				return nil
			}

			a.record("tx.add", desc, txn.ID)
			fmt.Printf("Recorded %s %s (%s)\n", txType, txn.Amount.Abs().StringFixed(2), txn.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&account, "account", "", "account id (required)")
	_ = cmd.MarkFlagRequired("account")
	cmd.Flags().StringVar(&txType, "type", "expense", "income or expense")
	cmd.Flags().StringVar(&amount, "amount", "", "amount (required)")
	_ = cmd.MarkFlagRequired("amount")
	cmd.Flags().StringVar(&category, "category", string(model.CategoryOther), "transaction category")
	cmd.Flags().StringVar(&date, "date", "", "date (2006-01-02, default today)")
	cmd.Flags().StringVar(&desc, "desc", "", "description")
	addDirFlag(cmd)

	return cmd
}

func newTxTransferCommand() *cobra.Command {
	var from, to, amount, date, desc string

	cmd := &cobra.Command{
		Use:   "transfer",
		Short: "Move money between two of your accounts",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, _ := cmd.Flags().GetString("dir")
			a, err := openApp(dir)
			if err != nil {
				return err
			}
			defer a.close()

			value, err := parseAmount(amount)
			if err != nil {
				return err
			}
			when, err := parseDateFlag(date)
			if err != nil {
				return err
			}

			txn, err := a.ledger.AddTransaction(ledger.TransactionInput{
				Date:                 when,
				Amount:               value,
				AccountID:            from,
				Category:             model.CategoryOther,
				Description:          desc,
				MainType:             model.MainTransfer,
				SubType:              model.SubInternalTransfer,
				CounterpartAccountID: to,
			})
			if err != nil {
				return err
			}
			if txn == nil {
				fmt.Printf("No account %s\n", from)
				return nil
			}

			a.record("tx.transfer", desc, txn.ID)
			fmt.Printf("Transferred %s from %s to %s\n", value.Abs().StringFixed(2), from, to)
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "source account id (required)")
	_ = cmd.MarkFlagRequired("from")
	cmd.Flags().StringVar(&to, "to", "", "target account id (required)")
	_ = cmd.MarkFlagRequired("to")
	cmd.Flags().StringVar(&amount, "amount", "", "amount (required)")
	_ = cmd.MarkFlagRequired("amount")
	cmd.Flags().StringVar(&date, "date", "", "date (2006-01-02, default today)")
	cmd.Flags().StringVar(&desc, "desc", "", "description")
	addDirFlag(cmd)

	return cmd
}

// Debt amounts follow cash flow: lending sends money out (negative),
// borrowing brings it in (positive).
func newTxDebtCommand() *cobra.Command {
	var account, person, amount, direction, date, desc string

	cmd := &cobra.Command{
		Use:   "debt",
		Short: "Record money lent to or borrowed from a person",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, _ := cmd.Flags().GetString("dir")
			a, err := openApp(dir)
			if err != nil {
				return err
			}
			defer a.close()

			value, err := parseAmount(amount)
			if err != nil {
				return err
			}
			when, err := parseDateFlag(date)
			if err != nil {
				return err
			}

			signed := value.Abs()
			if direction == "lent" {
				signed = signed.Neg()
			}

			txn, err := a.ledger.AddTransaction(ledger.TransactionInput{
				Date:           when,
				Amount:         signed,
				AccountID:      account,
				Category:       model.CategoryOther,
				Description:    desc,
				MainType:       model.MainTransfer,
				SubType:        model.SubDebt,
				LinkedPersonID: person,
			})
			if err != nil {
				return err
			}
			if txn == nil {
				fmt.Printf("No account %s\n", account)
				return nil
			}

			a.record("tx.debt", desc, txn.ID)
			fmt.Printf("Recorded debt (%s) of %s\n", direction, value.Abs().StringFixed(2))
			return nil
		},
	}

	cmd.Flags().StringVar(&account, "account", "", "account id (required)")
	_ = cmd.MarkFlagRequired("account")
	cmd.Flags().StringVar(&person, "person", "", "person id (required)")
	_ = cmd.MarkFlagRequired("person")
	cmd.Flags().StringVar(&amount, "amount", "", "amount (required)")
	_ = cmd.MarkFlagRequired("amount")
	cmd.Flags().StringVar(&direction, "direction", "lent", "lent or borrowed")
	cmd.Flags().StringVar(&date, "date", "", "date (2006-01-02, default today)")
	cmd.Flags().StringVar(&desc, "desc", "", "description")
	addDirFlag(cmd)

	return cmd
}

// Repayment amounts encode the running-balance movement: a repayment
// received shrinks what the person owes, a repayment paid shrinks what the
// owner owes.
func newTxRepayCommand() *cobra.Command {
	var account, person, amount, direction, date, desc string

	cmd := &cobra.Command{
		Use:   "repay",
		Short: "Record a debt repayment",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, _ := cmd.Flags().GetString("dir")
			a, err := openApp(dir)
			if err != nil {
				return err
			}
			defer a.close()

			value, err := parseAmount(amount)
			if err != nil {
				return err
			}
			when, err := parseDateFlag(date)
			if err != nil {
				return err
			}

			signed := value.Abs()
			if direction == "received" {
				signed = signed.Neg()
			}

			txn, err := a.ledger.AddTransaction(ledger.TransactionInput{
				Date:           when,
				Amount:         signed,
				AccountID:      account,
				Category:       model.CategoryOther,
				Description:    desc,
				MainType:       model.MainTransfer,
				SubType:        model.SubRepayment,
				LinkedPersonID: person,
			})
			if err != nil {
				return err
			}
			if txn == nil {
				fmt.Printf("No account %s\n", account)
				return nil
			}

			a.record("tx.repay", desc, txn.ID)
			fmt.Printf("Recorded repayment (%s) of %s\n", direction, value.Abs().StringFixed(2))
			return nil
		},
	}

	cmd.Flags().StringVar(&account, "account", "", "account id (required)")
	_ = cmd.MarkFlagRequired("account")
	cmd.Flags().StringVar(&person, "person", "", "person id (required)")
	_ = cmd.MarkFlagRequired("person")
	cmd.Flags().StringVar(&amount, "amount", "", "amount (required)")
	_ = cmd.MarkFlagRequired("amount")
	cmd.Flags().StringVar(&direction, "direction", "received", "received or paid")
	cmd.Flags().StringVar(&date, "date", "", "date (2006-01-02, default today)")
	cmd.Flags().StringVar(&desc, "desc", "", "description")
	addDirFlag(cmd)

	return cmd
}

func newTxPayCardCommand() *cobra.Command {
	var from, card, amount, date string

	cmd := &cobra.Command{
		Use:   "paycard",
		Short: "Pay a credit card from a bank account",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, _ := cmd.Flags().GetString("dir")
			a, err := openApp(dir)
			if err != nil {
				return err
			}
			defer a.close()

			value, err := parseAmount(amount)
			if err != nil {
				return err
			}
			when, err := parseDateFlag(date)
			if err != nil {
				return err
			}

			txn, err := a.ledger.AddTransaction(ledger.TransactionInput{
				Date:                 when,
				Amount:               value,
				AccountID:            from,
				Category:             model.CategoryOther,
				Description:          "Credit card payment",
				MainType:             model.MainCreditCardPayment,
				CounterpartAccountID: card,
			})
			if err != nil {
				return err
			}
			if txn == nil {
				fmt.Printf("No account %s\n", from)
				return nil
			}

			a.record("tx.paycard", "Credit card payment", txn.ID)
			fmt.Printf("Paid %s toward card %s\n", value.Abs().StringFixed(2), card)
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "paying account id (required)")
	_ = cmd.MarkFlagRequired("from")
	cmd.Flags().StringVar(&card, "card", "", "credit card account id (required)")
	_ = cmd.MarkFlagRequired("card")
	cmd.Flags().StringVar(&amount, "amount", "", "amount (required)")
	_ = cmd.MarkFlagRequired("amount")
	cmd.Flags().StringVar(&date, "date", "", "date (2006-01-02, default today)")
	addDirFlag(cmd)

	return cmd
}

// Investment amounts follow cash flow: a buy sends money out (negative), a
// sell brings proceeds in (positive).
func newTxInvestCommand() *cobra.Command {
	var account, asset, amount, action, date, desc string

	cmd := &cobra.Command{
		Use:   "invest",
		Short: "Record buying into or selling out of an investment",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, _ := cmd.Flags().GetString("dir")
			a, err := openApp(dir)
			if err != nil {
				return err
			}
			defer a.close()

			value, err := parseAmount(amount)
			if err != nil {
				return err
			}
			when, err := parseDateFlag(date)
			if err != nil {
				return err
			}

			subType := model.SubSell
			signed := value.Abs()
			if action == "buy" {
				subType = model.SubBuy
				signed = signed.Neg()
			}

			txn, err := a.ledger.AddTransaction(ledger.TransactionInput{
				Date:          when,
				Amount:        signed,
				AccountID:     account,
				Category:      "Investment",
				Description:   desc,
				MainType:      model.MainInvestment,
				SubType:       subType,
				LinkedAssetID: asset,
			})
			if err != nil {
				return err
			}
			if txn == nil {
				fmt.Printf("No account %s\n", account)
				return nil
			}

			a.record("tx.invest", desc, txn.ID)
			fmt.Printf("Recorded %s of %s\n", action, value.Abs().StringFixed(2))
			return nil
		},
	}

	cmd.Flags().StringVar(&account, "account", "", "account id (required)")
	_ = cmd.MarkFlagRequired("account")
	cmd.Flags().StringVar(&asset, "asset", "", "asset id (required)")
	_ = cmd.MarkFlagRequired("asset")
	cmd.Flags().StringVar(&amount, "amount", "", "amount (required)")
	_ = cmd.MarkFlagRequired("amount")
	cmd.Flags().StringVar(&action, "action", "buy", "buy or sell")
	cmd.Flags().StringVar(&date, "date", "", "date (2006-01-02, default today)")
	cmd.Flags().StringVar(&desc, "desc", "", "description")
	addDirFlag(cmd)

	return cmd
}

func newTxDeleteCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a transaction (and its paired leg, if any)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, _ := cmd.Flags().GetString("dir")
			a, err := openApp(dir)
			if err != nil {
				return err
			}
			defer a.close()

			deleted, err := a.ledger.DeleteTransaction(args[0])
			if err != nil {
				return err
			}
			if !deleted {
				fmt.Printf("No transaction %s\n", args[0])
				return nil
			}

			a.record("tx.delete", "", args[0])
			fmt.Printf("Deleted transaction %s\n", args[0])
			return nil
		},
	}
	addDirFlag(cmd)
	return cmd
}

func newTxListCommand() *cobra.Command {
	var month string
	var recent int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List transactions",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, _ := cmd.Flags().GetString("dir")
			a, err := openApp(dir)
			if err != nil {
				return err
			}
			defer a.close()

			var txns []model.Transaction
			switch {
			case month != "":
				txns = a.ledger.TransactionsByMonth(month)
			default:
				txns = a.ledger.RecentTransactions(recent)
			}

			for _, t := range txns {
				sub := ""
				if t.SubType != model.SubNone {
					sub = " / " + string(t.SubType)
				}
				fmt.Printf("%-36s  %s  %-28s  %12s  %s%s\n",
					t.ID, t.Date, t.Description, t.Amount.StringFixed(2), t.MainType, sub)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&month, "month", "", "filter by month (2006-01)")
	cmd.Flags().IntVar(&recent, "recent", 10, "number of recent transactions")
	addDirFlag(cmd)

	return cmd
}
