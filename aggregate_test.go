package fuelcall

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
)

func TestCalculateRequiredAssetAmountsCollatesAssets(t *testing.T) {
	assetX := common.HexToHash("0x01")
	assetY := common.HexToHash("0x02")

	pairs := []struct {
		asset  AssetID
		amount uint64
	}{
		{assetX, 100},
		{assetY, 200},
		{assetX, 300},
		{assetY, 400},
	}

	calls := make([]*ContractCall, len(pairs))
	for i, p := range pairs {
		calls[i] = NewContractCall(common.HexToHash("0xff"), nil, nil).
			WithCallParameters(DefaultCallParameters().WithAmount(p.amount).WithAssetID(p.asset))
	}

	got := CalculateRequiredAssetAmounts(calls, AssetID{})

	want := []AssetAmount{
		{AssetID: assetX, Amount: 400},
		{AssetID: assetY, Amount: 600},
	}
	if len(got) != len(want) {
		t.Fatalf("Expected %d amounts, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Amount %d: expected %+v, got %+v", i, want[i], got[i])
		}
	}
}

func TestCalculateRequiredAssetAmountsDefaultsToBaseAsset(t *testing.T) {
	base := common.HexToHash("0xaa")
	call := NewContractCall(common.HexToHash("0x01"), nil, nil).
		WithCallParameters(DefaultCallParameters().WithAmount(50))

	got := CalculateRequiredAssetAmounts([]*ContractCall{call}, base)

	if len(got) != 1 || got[0].AssetID != base || got[0].Amount != 50 {
		t.Errorf("Expected base asset amount 50, got %+v", got)
	}
}

func TestCalculateRequiredAssetAmountsTracksZeroAmounts(t *testing.T) {
	// A call forwarding nothing still registers its asset.
	base := common.HexToHash("0xaa")
	call := NewContractCall(common.HexToHash("0x01"), nil, nil)

	got := CalculateRequiredAssetAmounts([]*ContractCall{call}, base)

	if len(got) != 1 || got[0].AssetID != base || got[0].Amount != 0 {
		t.Errorf("Expected zero-amount base asset entry, got %+v", got)
	}
}

func TestCalculateRequiredAssetAmountsIncludesCustomAssets(t *testing.T) {
	base := common.HexToHash("0xaa")
	assetX := common.HexToHash("0x01")
	recipient := common.HexToHash("0xd1")

	// Custom amounts group by asset regardless of recipient.
	call := NewContractCall(common.HexToHash("0xff"), nil, nil).
		WithCustomAsset(assetX, 100, &recipient).
		WithCustomAsset(assetX, 25, nil)

	got := CalculateRequiredAssetAmounts([]*ContractCall{call}, base)

	want := []AssetAmount{
		{AssetID: assetX, Amount: 125},
		{AssetID: base, Amount: 0},
	}
	if len(got) != len(want) {
		t.Fatalf("Expected %d amounts, got %+v", len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Amount %d: expected %+v, got %+v", i, want[i], got[i])
		}
	}
}
