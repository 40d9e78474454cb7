package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tally-dev/tally/internal/ledger"
)

func newPersonCommand() *cobra.Command {
	personCmd := &cobra.Command{
		Use:   "person",
		Short: "Manage people you lend to or borrow from",
	}
	personCmd.AddCommand(newPersonAddCommand())
	personCmd.AddCommand(newPersonListCommand())
	return personCmd
}

func newPersonAddCommand() *cobra.Command {
	var name, phone, notes string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a person",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, _ := cmd.Flags().GetString("dir")
			a, err := openApp(dir)
			if err != nil {
				return err
			}
			defer a.close()

			person, err := a.ledger.AddPerson(ledger.PersonInput{Name: name, Phone: phone, Notes: notes})
			if err != nil {
				return err
			}

			a.record("person.add", name, person.ID)
			fmt.Printf("Added person %s (%s)\n", person.Name, person.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "person name (required)")
	_ = cmd.MarkFlagRequired("name")
	cmd.Flags().StringVar(&phone, "phone", "", "contact phone")
	cmd.Flags().StringVar(&notes, "notes", "", "free-form notes")
	addDirFlag(cmd)

	return cmd
}

func newPersonListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List people with running balances",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, _ := cmd.Flags().GetString("dir")
			a, err := openApp(dir)
			if err != nil {
				return err
			}
			defer a.close()

			for _, p := range a.ledger.People() {
				status := "settled"
				switch {
				case p.RunningBalance.IsPositive():
					status = "owes you"
				case p.RunningBalance.IsNegative():
					status = "you owe"
				}
				fmt.Printf("%-36s  %-20s  %12s  %s\n",
					p.ID, p.Name, p.RunningBalance.Abs().StringFixed(2), status)
			}
			return nil
		},
	}
	addDirFlag(cmd)
	return cmd
}
