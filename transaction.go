package fuelcall

import (
	"github.com/ethereum/go-ethereum/common"
)

// Input is a resource consumed by a transaction: a coin, a message, or a
// contract reference.
type Input interface {
	isInput()
}

// CoinInput spends one unspent coin.
type CoinInput struct {
	UtxoID       UtxoID
	Owner        Address
	Amount       uint64
	AssetID      AssetID
	WitnessIndex uint16
}

func (CoinInput) isInput() {}

// MessageInput spends a bridged message. Messages always carry the chain's
// base asset.
type MessageInput struct {
	Sender       Address
	Recipient    Address
	Amount       uint64
	Nonce        common.Hash
	WitnessIndex uint16
	Data         []byte
}

func (MessageInput) isInput() {}

// ContractInput references a contract the transaction may execute. The roots
// are placeholders the node fills in during execution, and the UtxoID is a
// synthetic reference whose output index must match the position of the
// corresponding ContractOutput.
type ContractInput struct {
	UtxoID      UtxoID
	BalanceRoot common.Hash
	StateRoot   common.Hash
	TxPointer   TxPointer
	ContractID  ContractID
}

func (ContractInput) isInput() {}

// Output is a resource produced by a transaction.
type Output interface {
	isOutput()
}

// CoinOutput pays an amount of an asset to an address.
type CoinOutput struct {
	To      Address
	Amount  uint64
	AssetID AssetID
}

func (CoinOutput) isOutput() {}

// ContractOutput records the post-execution state of the contract consumed by
// the input at InputIndex. Roots are zero at assembly time.
type ContractOutput struct {
	InputIndex  uint16
	BalanceRoot common.Hash
	StateRoot   common.Hash
}

func (ContractOutput) isOutput() {}

// ChangeOutput returns unspent input value of one asset to an address. The
// amount is always zero at assembly time; the node computes actual change.
type ChangeOutput struct {
	To      Address
	Amount  uint64
	AssetID AssetID
}

func (ChangeOutput) isOutput() {}

// VariableOutput is a placeholder whose recipient, amount, and asset are
// resolved during execution (e.g. by a transfer-to-address in the called
// contract).
type VariableOutput struct {
	To      Address
	Amount  uint64
	AssetID AssetID
}

func (VariableOutput) isOutput() {}

// NewVariableOutputs returns num zeroed variable-output placeholders.
func NewVariableOutputs(num uint64) []VariableOutput {
	return make([]VariableOutput, num)
}

// TxPolicies are the caller-chosen transaction limits. Nil pointer fields
// leave the corresponding policy unset.
type TxPolicies struct {
	Tip            uint64
	Maturity       uint32
	WitnessLimit   *uint64
	MaxFee         *uint64
	ScriptGasLimit *uint64
}

// ScriptTransactionBuilder accumulates the parts of a script transaction.
// The With* methods mutate the builder and return it for chaining. Fields are
// exported so accounts can adjust inputs and outputs during fee estimation.
type ScriptTransactionBuilder struct {
	Policies   TxPolicies
	Script     []byte
	ScriptData []byte
	Inputs     []Input
	Outputs    []Output
	Witnesses  [][]byte
}

// NewScriptTransactionBuilder returns an empty builder.
func NewScriptTransactionBuilder() *ScriptTransactionBuilder {
	return &ScriptTransactionBuilder{}
}

// WithTxPolicies sets the transaction policies.
func (b *ScriptTransactionBuilder) WithTxPolicies(policies TxPolicies) *ScriptTransactionBuilder {
	b.Policies = policies
	return b
}

// WithScript sets the script instruction bytes.
func (b *ScriptTransactionBuilder) WithScript(script []byte) *ScriptTransactionBuilder {
	b.Script = script
	return b
}

// WithScriptData sets the script-data bytes read by the script.
func (b *ScriptTransactionBuilder) WithScriptData(data []byte) *ScriptTransactionBuilder {
	b.ScriptData = data
	return b
}

// WithInputs sets the transaction inputs.
func (b *ScriptTransactionBuilder) WithInputs(inputs []Input) *ScriptTransactionBuilder {
	b.Inputs = inputs
	return b
}

// WithOutputs sets the transaction outputs.
func (b *ScriptTransactionBuilder) WithOutputs(outputs []Output) *ScriptTransactionBuilder {
	b.Outputs = outputs
	return b
}

// AddWitness appends one witness.
func (b *ScriptTransactionBuilder) AddWitness(witness []byte) *ScriptTransactionBuilder {
	b.Witnesses = append(b.Witnesses, witness)
	return b
}

// Build finalizes the builder into a submittable transaction. It checks the
// contract input/output pairing invariant: every contract input must point,
// through its synthetic UtxoID index, at a contract output in the same
// position, and contract outputs must precede all other outputs.
func (b *ScriptTransactionBuilder) Build() (*ScriptTransaction, error) {
	numContractInputs := 0
	for _, in := range b.Inputs {
		if _, ok := in.(ContractInput); ok {
			numContractInputs++
		}
	}
	for i, out := range b.Outputs {
		_, isContract := out.(ContractOutput)
		if isContract != (i < numContractInputs) {
			return nil, ErrContractOutputOrder
		}
	}

	return &ScriptTransaction{
		Policies:   b.Policies,
		Script:     append([]byte(nil), b.Script...),
		ScriptData: append([]byte(nil), b.ScriptData...),
		Inputs:     append([]Input(nil), b.Inputs...),
		Outputs:    append([]Output(nil), b.Outputs...),
		Witnesses:  append([][]byte(nil), b.Witnesses...),
	}, nil
}

// ScriptTransaction is a fully assembled script transaction, ready for
// simulation or submission through a Provider.
type ScriptTransaction struct {
	Policies   TxPolicies
	Script     []byte
	ScriptData []byte
	Inputs     []Input
	Outputs    []Output
	Witnesses  [][]byte
}
