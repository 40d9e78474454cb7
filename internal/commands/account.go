package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tally-dev/tally/internal/ledger"
	"github.com/tally-dev/tally/internal/model"
)

func newAccountCommand() *cobra.Command {
	accountCmd := &cobra.Command{
		Use:   "account",
		Short: "Manage accounts",
	}
	accountCmd.AddCommand(newAccountAddCommand())
	accountCmd.AddCommand(newAccountListCommand())
	accountCmd.AddCommand(newAccountUpdateCommand())
	return accountCmd
}

func newAccountAddCommand() *cobra.Command {
	var name, accountType, opening, color, creditLimit, outstanding string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an account",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, _ := cmd.Flags().GetString("dir")
			a, err := openApp(dir)
			if err != nil {
				return err
			}
			defer a.close()

			openingBalance, err := parseAmount(opening)
			if err != nil {
				return err
			}

			in := ledger.AccountInput{
				Name:           name,
				Type:           model.AccountType(accountType),
				OpeningBalance: openingBalance,
				Color:          color,
			}

			var cc *ledger.CreditCardInput
			if in.Type == model.AccountTypeCreditCard {
				limit, err := parseAmount(creditLimit)
				if err != nil {
					return err
				}
				owed, err := parseAmount(outstanding)
				if err != nil {
					return err
				}
				cc = &ledger.CreditCardInput{CreditLimit: limit, CurrentOutstanding: owed}
			}

			acct, err := a.ledger.AddAccount(in, cc)
			if err != nil {
				return err
			}

			a.record("account.add", name, acct.ID)
			fmt.Printf("Added account %s (%s)\n", acct.Name, acct.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "account name (required)")
	_ = cmd.MarkFlagRequired("name")
	cmd.Flags().StringVar(&accountType, "type", string(model.AccountTypeBank), "Bank, Wallet, Cash, or Credit Card")
	cmd.Flags().StringVar(&opening, "opening", "0", "opening balance")
	cmd.Flags().StringVar(&color, "color", "", "display color")
	cmd.Flags().StringVar(&creditLimit, "credit-limit", "0", "credit limit (credit cards)")
	cmd.Flags().StringVar(&outstanding, "outstanding", "0", "current outstanding (credit cards)")
	addDirFlag(cmd)

	return cmd
}

func newAccountListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List accounts with balances",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, _ := cmd.Flags().GetString("dir")
			a, err := openApp(dir)
			if err != nil {
				return err
			}
			defer a.close()

			for _, acct := range a.ledger.Accounts() {
				line := fmt.Sprintf("%-36s  %-12s  %-20s  %12s",
					acct.ID, acct.Type, acct.Name, acct.Balance.StringFixed(2))
				if card, ok := a.ledger.CreditCardInfo(acct.ID); ok {
					line += fmt.Sprintf("  outstanding %s of %s",
						card.CurrentOutstanding.StringFixed(2), card.CreditLimit.StringFixed(2))
				}
				fmt.Println(line)
			}
			return nil
		},
	}
	addDirFlag(cmd)
	return cmd
}

func newAccountUpdateCommand() *cobra.Command {
	var name, color string

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update an account's name or color",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, _ := cmd.Flags().GetString("dir")
			a, err := openApp(dir)
			if err != nil {
				return err
			}
			defer a.close()

			acct, ok := a.ledger.GetAccount(args[0])
			if !ok {
				fmt.Printf("No account %s\n", args[0])
				return nil
			}
			if name != "" {
				acct.Name = name
			}
			if color != "" {
				acct.Color = color
			}

			updated, err := a.ledger.UpdateAccount(acct)
			if err != nil {
				return err
			}
			if updated {
				a.record("account.update", acct.Name, acct.ID)
				fmt.Printf("Updated account %s\n", acct.ID)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "new account name")
	cmd.Flags().StringVar(&color, "color", "", "new display color")
	addDirFlag(cmd)

	return cmd
}
