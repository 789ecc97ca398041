package fuelcall

import (
	"errors"
	"testing"

	"github.com/ethereum/go-ethereum/common"
)

func TestScriptTransactionBuilderChaining(t *testing.T) {
	script := []byte{1, 2, 3, 4}
	data := []byte{5, 6}

	tb := NewScriptTransactionBuilder().
		WithTxPolicies(TxPolicies{Tip: 7}).
		WithScript(script).
		WithScriptData(data).
		WithInputs([]Input{CoinInput{Amount: 10}}).
		WithOutputs([]Output{ChangeOutput{Amount: 0}}).
		AddWitness([]byte{0xaa})

	tx, err := tb.Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	if tx.Policies.Tip != 7 {
		t.Errorf("Expected tip 7, got %d", tx.Policies.Tip)
	}
	if len(tx.Script) != 4 || len(tx.ScriptData) != 2 {
		t.Error("Script or script data not carried over")
	}
	if len(tx.Inputs) != 1 || len(tx.Outputs) != 1 || len(tx.Witnesses) != 1 {
		t.Error("Inputs, outputs, or witnesses not carried over")
	}
}

func TestBuildCopiesSlices(t *testing.T) {
	script := []byte{1, 2, 3, 4}
	tb := NewScriptTransactionBuilder().WithScript(script)

	tx, err := tb.Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	script[0] = 0xff
	if tx.Script[0] == 0xff {
		t.Error("Built transaction aliases the builder's script slice")
	}
}

func TestBuildEnforcesContractOutputOrder(t *testing.T) {
	contractIn := ContractInput{ContractID: common.HexToHash("0x01")}

	tests := []struct {
		name    string
		inputs  []Input
		outputs []Output
	}{
		{
			name:    "contract output after other outputs",
			inputs:  []Input{contractIn},
			outputs: []Output{ChangeOutput{}, ContractOutput{}},
		},
		{
			name:    "missing contract output",
			inputs:  []Input{contractIn},
			outputs: []Output{ChangeOutput{}},
		},
		{
			name:    "contract output without contract input",
			inputs:  []Input{CoinInput{}},
			outputs: []Output{ContractOutput{}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewScriptTransactionBuilder().
				WithInputs(tt.inputs).
				WithOutputs(tt.outputs).
				Build()
			if !errors.Is(err, ErrContractOutputOrder) {
				t.Errorf("Expected ErrContractOutputOrder, got %v", err)
			}
		})
	}
}

func TestBuildAcceptsPairedContractOutputs(t *testing.T) {
	inputs := []Input{
		ContractInput{ContractID: common.HexToHash("0x01"), UtxoID: UtxoID{OutputIndex: 0}},
		ContractInput{ContractID: common.HexToHash("0x02"), UtxoID: UtxoID{OutputIndex: 1}},
		CoinInput{Amount: 100},
	}
	outputs := []Output{
		ContractOutput{InputIndex: 0},
		ContractOutput{InputIndex: 1},
		ChangeOutput{},
	}

	if _, err := NewScriptTransactionBuilder().WithInputs(inputs).WithOutputs(outputs).Build(); err != nil {
		t.Errorf("Expected a valid transaction, got %v", err)
	}
}

func TestNewVariableOutputs(t *testing.T) {
	outputs := NewVariableOutputs(3)
	if len(outputs) != 3 {
		t.Fatalf("Expected 3 outputs, got %d", len(outputs))
	}
	for i, out := range outputs {
		if out != (VariableOutput{}) {
			t.Errorf("Output %d: expected zero value, got %+v", i, out)
		}
	}
}
