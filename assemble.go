package fuelcall

import (
	"context"
)

// TransactionBuilderFromCalls assembles a transaction builder executing the
// calls: it aggregates the required asset amounts, asks the account for
// covering resources, lays out script data and instructions, and resolves the
// final inputs and outputs. Fees and witnesses are not attached; see
// BuildTxFromCalls.
func TransactionBuilderFromCalls(ctx context.Context, calls []*ContractCall, policies TxPolicies, account Account) (*ScriptTransactionBuilder, error) {
	for _, call := range calls {
		if call.callParameters.Amount() > 0 && !call.isPayable {
			return nil, ErrAmountOnNonPayable
		}
	}

	provider, err := account.Provider()
	if err != nil {
		return nil, err
	}
	params, err := provider.ConsensusParameters(ctx)
	if err != nil {
		return nil, err
	}

	dataOffset := CallScriptDataOffset(params, CallsInstructionsLen(calls))

	scriptData, paramOffsets, err := BuildScriptData(calls, dataOffset, params.BaseAssetID)
	if err != nil {
		return nil, err
	}
	script, err := CallInstructions(calls, paramOffsets)
	if err != nil {
		return nil, err
	}

	requiredAmounts := CalculateRequiredAssetAmounts(calls, params.BaseAssetID)

	var assetInputs []Input
	for _, required := range requiredAmounts {
		resources, err := account.ResourcesForAmount(ctx, required.AssetID, required.Amount)
		if err != nil {
			return nil, err
		}
		assetInputs = append(assetInputs, resources...)
	}

	inputs, outputs := TransactionInputsOutputs(calls, assetInputs, account.Address(), params.BaseAssetID)

	return NewScriptTransactionBuilder().
		WithTxPolicies(policies).
		WithScript(script).
		WithScriptData(scriptData).
		WithInputs(inputs).
		WithOutputs(outputs), nil
}

// BuildTxFromCalls assembles, signs, and finalizes a submittable transaction
// from the calls. The account attaches its witnesses and adjusts the inputs
// and outputs for the estimated fee; the base-asset amount the calls already
// consume is handed over so the account need not re-derive it.
func BuildTxFromCalls(ctx context.Context, calls []*ContractCall, policies TxPolicies, account Account) (*ScriptTransaction, error) {
	tb, err := TransactionBuilderFromCalls(ctx, calls, policies, account)
	if err != nil {
		return nil, err
	}

	provider, err := account.Provider()
	if err != nil {
		return nil, err
	}
	params, err := provider.ConsensusParameters(ctx)
	if err != nil {
		return nil, err
	}

	usedBaseAmount := uint64(0)
	for _, required := range CalculateRequiredAssetAmounts(calls, params.BaseAssetID) {
		if required.AssetID == params.BaseAssetID {
			usedBaseAmount = required.Amount
			break
		}
	}

	if err := account.AddWitnesses(tb); err != nil {
		return nil, err
	}
	if err := account.AdjustForFee(ctx, tb, usedBaseAmount); err != nil {
		return nil, err
	}

	return tb.Build()
}
