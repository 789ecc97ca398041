package fuelcall

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
)

func TestCallParametersAccessors(t *testing.T) {
	p := DefaultCallParameters()

	if _, ok := p.AssetID(); ok {
		t.Error("Expected no asset id by default")
	}
	if _, ok := p.GasForwarded(); ok {
		t.Error("Expected no forwarded gas by default")
	}

	asset := common.HexToHash("0x01")
	p = p.WithAmount(100).WithAssetID(asset).WithGasForwarded(5000)

	if p.Amount() != 100 {
		t.Errorf("Expected amount 100, got %d", p.Amount())
	}
	if got, ok := p.AssetID(); !ok || got != asset {
		t.Errorf("Expected asset %s, got %s (ok=%v)", asset.Hex(), got.Hex(), ok)
	}
	if got, ok := p.GasForwarded(); !ok || got != 5000 {
		t.Errorf("Expected gas 5000, got %d (ok=%v)", got, ok)
	}
}

func TestContractCallModifiersReturnNewInstances(t *testing.T) {
	original := NewContractCall(common.HexToHash("0x01"), nil, nil)

	modified := original.
		AppendVariableOutputs(2).
		AppendExternalContract(common.HexToHash("0x02")).
		WithPayable(true)

	if len(original.VariableOutputs()) != 0 {
		t.Error("Original call's variable outputs were mutated")
	}
	if len(original.ExternalContracts()) != 0 {
		t.Error("Original call's external contracts were mutated")
	}
	if original.IsPayable() {
		t.Error("Original call's payable flag was mutated")
	}

	if len(modified.VariableOutputs()) != 2 {
		t.Errorf("Expected 2 variable outputs, got %d", len(modified.VariableOutputs()))
	}
	if len(modified.ExternalContracts()) != 1 {
		t.Errorf("Expected 1 external contract, got %d", len(modified.ExternalContracts()))
	}
	if !modified.IsPayable() {
		t.Error("Expected the payable flag to be set")
	}
}

func TestAppendVariableOutputsAreZeroed(t *testing.T) {
	call := NewContractCall(common.HexToHash("0x01"), nil, nil).AppendVariableOutputs(3)

	for i, out := range call.VariableOutputs() {
		if out != (VariableOutput{}) {
			t.Errorf("Placeholder %d: expected zero value, got %+v", i, out)
		}
	}
}

func TestWithCustomAssetAccumulates(t *testing.T) {
	asset := common.HexToHash("0x01")
	recipient := common.HexToHash("0xd1")

	call := NewContractCall(common.HexToHash("0xff"), nil, nil).
		WithCustomAsset(asset, 100, &recipient).
		WithCustomAsset(asset, 300, &recipient)

	key := customAssetKey{asset: asset, hasRecipient: true, recipient: recipient}
	if got := call.customAssets[key]; got != 400 {
		t.Errorf("Expected accumulated amount 400, got %d", got)
	}
}

func TestWithCustomAssetSeparatesRecipients(t *testing.T) {
	asset := common.HexToHash("0x01")
	recipient := common.HexToHash("0xd1")

	call := NewContractCall(common.HexToHash("0xff"), nil, nil).
		WithCustomAsset(asset, 100, &recipient).
		WithCustomAsset(asset, 50, nil)

	if len(call.customAssets) != 2 {
		t.Errorf("Expected 2 custom asset entries, got %d", len(call.customAssets))
	}
}

func TestResolveArgsWithoutResolver(t *testing.T) {
	call := NewContractCall(common.HexToHash("0x01"), nil, nil)

	args, err := call.resolveArgs(0)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if args != nil {
		t.Errorf("Expected no argument bytes, got %v", args)
	}
}

func TestForwardedAssetID(t *testing.T) {
	base := common.HexToHash("0xaa")
	explicit := common.HexToHash("0x01")

	tests := []struct {
		name string
		call *ContractCall
		want AssetID
	}{
		{
			name: "defaults to base asset",
			call: NewContractCall(common.HexToHash("0xff"), nil, nil),
			want: base,
		},
		{
			name: "explicit asset wins",
			call: NewContractCall(common.HexToHash("0xff"), nil, nil).
				WithCallParameters(DefaultCallParameters().WithAssetID(explicit)),
			want: explicit,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.call.forwardedAssetID(base); got != tt.want {
				t.Errorf("Expected asset %s, got %s", tt.want.Hex(), got.Hex())
			}
		})
	}
}
