package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tally-dev/tally/internal/model"
)

func newCategoryCommand() *cobra.Command {
	categoryCmd := &cobra.Command{
		Use:   "category",
		Short: "Manage custom categories",
	}
	categoryCmd.AddCommand(newCategoryAddCommand())
	categoryCmd.AddCommand(newCategoryRemoveCommand())
	categoryCmd.AddCommand(newCategoryListCommand())
	return categoryCmd
}

func newCategoryAddCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a custom category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, _ := cmd.Flags().GetString("dir")
			a, err := openApp(dir)
			if err != nil {
				return err
			}
			defer a.close()

			added, err := a.ledger.AddCategory(model.Category(args[0]))
			if err != nil {
				return err
			}
			if added {
				a.record("category.add", args[0], "")
			}
			return nil
		},
	}
	addDirFlag(cmd)
	return cmd
}

func newCategoryRemoveCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove <name>",
		Short: "Remove a custom category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, _ := cmd.Flags().GetString("dir")
			a, err := openApp(dir)
			if err != nil {
				return err
			}
			defer a.close()

			removed, err := a.ledger.RemoveCategory(model.Category(args[0]))
			if err != nil {
				return err
			}
			if removed {
				a.record("category.remove", args[0], "")
			}
			return nil
		},
	}
	addDirFlag(cmd)
	return cmd
}

func newCategoryListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List categories (defaults plus custom)",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, _ := cmd.Flags().GetString("dir")
			a, err := openApp(dir)
			if err != nil {
				return err
			}
			defer a.close()

			for _, c := range a.ledger.Categories() {
				marker := ""
				if !model.IsDefaultCategory(c) {
					marker = " (custom)"
				}
				fmt.Printf("%s%s\n", c, marker)
			}
			return nil
		},
	}
	addDirFlag(cmd)
	return cmd
}
