package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tally-dev/tally/internal/ledger"
	"github.com/tally-dev/tally/internal/model"
)

func newAssetCommand() *cobra.Command {
	assetCmd := &cobra.Command{
		Use:   "asset",
		Short: "Manage investments",
	}
	assetCmd.AddCommand(newAssetAddCommand())
	assetCmd.AddCommand(newAssetListCommand())
	return assetCmd
}

func newAssetAddCommand() *cobra.Command {
	var name, category, invested, value string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an investment",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, _ := cmd.Flags().GetString("dir")
			a, err := openApp(dir)
			if err != nil {
				return err
			}
			defer a.close()

			amountInvested, err := parseAmount(invested)
			if err != nil {
				return err
			}
			currentValue, err := parseAmount(value)
			if err != nil {
				return err
			}

			asset, err := a.ledger.AddAsset(ledger.AssetInput{
				Name:           name,
				Category:       model.AssetCategory(category),
				AmountInvested: amountInvested,
				CurrentValue:   currentValue,
			})
			if err != nil {
				return err
			}

			a.record("asset.add", name, asset.ID)
			fmt.Printf("Added asset %s (%s)\n", asset.Name, asset.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "asset name (required)")
	_ = cmd.MarkFlagRequired("name")
	cmd.Flags().StringVar(&category, "category", string(model.AssetOther), "asset category")
	cmd.Flags().StringVar(&invested, "invested", "0", "amount invested")
	cmd.Flags().StringVar(&value, "value", "0", "current value (defaults to amount invested)")
	addDirFlag(cmd)

	return cmd
}

func newAssetListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List investments",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, _ := cmd.Flags().GetString("dir")
			a, err := openApp(dir)
			if err != nil {
				return err
			}
			defer a.close()

			for _, asset := range a.ledger.Assets() {
				value := asset.CurrentValue
				if value.IsZero() {
					value = asset.AmountInvested
				}
				fmt.Printf("%-36s  %-16s  %-24s  invested %12s  worth %12s\n",
					asset.ID, asset.Category, asset.Name,
					asset.AmountInvested.StringFixed(2), value.StringFixed(2))
			}
			return nil
		},
	}
	addDirFlag(cmd)
	return cmd
}
