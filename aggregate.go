package fuelcall

import (
	"slices"
)

// AssetAmount is the total amount required of one asset.
type AssetAmount struct {
	AssetID AssetID
	Amount  uint64
}

// CalculateRequiredAssetAmounts computes how much of each asset the calls
// need: each call contributes its forwarded (asset, amount) pair - falling
// back to the base asset when none is set, and contributing an entry even at
// amount 0 so the asset is tracked - plus all custom asset transfers, grouped
// by asset regardless of recipient. The result is sorted by asset id so the
// order is reproducible.
func CalculateRequiredAssetAmounts(calls []*ContractCall, baseAssetID AssetID) []AssetAmount {
	totals := make(map[AssetID]uint64)

	for _, call := range calls {
		totals[call.forwardedAssetID(baseAssetID)] += call.callParameters.Amount()

		for key, amount := range call.customAssets {
			totals[key.asset] += amount
		}
	}

	amounts := make([]AssetAmount, 0, len(totals))
	for asset, amount := range totals {
		amounts = append(amounts, AssetAmount{AssetID: asset, Amount: amount})
	}
	slices.SortFunc(amounts, func(a, b AssetAmount) int {
		return a.AssetID.Cmp(b.AssetID)
	})

	return amounts
}
