package ledger

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/tally-dev/tally/internal/id"
	"github.com/tally-dev/tally/internal/model"
)

// AssetInput holds the caller-supplied fields of a new asset.
type AssetInput struct {
	Name           string
	Category       model.AssetCategory
	AmountInvested decimal.Decimal
	CurrentValue   decimal.Decimal
}

// AddAsset creates an investment holding.
func (e *Engine) AddAsset(in AssetInput) (model.Asset, error) {
	asset := model.Asset{
		ID:             id.New(),
		OwnerID:        e.user.ID,
		Name:           in.Name,
		Category:       in.Category,
		AmountInvested: in.AmountInvested,
		CurrentValue:   in.CurrentValue,
	}
	e.assets = append(e.assets, asset)

	if err := e.persist(keyAssets); err != nil {
		return model.Asset{}, err
	}
	e.notify("Asset Added", fmt.Sprintf("%s has been added to your investments.", in.Name))
	return asset, nil
}
