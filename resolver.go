package fuelcall

import (
	"slices"

	"github.com/ethereum/go-ethereum/common"
)

// TransactionInputsOutputs resolves the final input and output lists for a
// transaction executing the calls: the contracts it consumes and updates, the
// externally selected asset inputs, change back to the refund address, custom
// transfer payouts, and variable-output placeholders.
//
// Contract outputs come first among the outputs because each contract input
// references its paired output by index; the node uses that index to look up
// the post-execution roots. The pairing is one-to-one and order-preserving.
func TransactionInputsOutputs(calls []*ContractCall, assetInputs []Input, refundAddress Address, baseAssetID AssetID) ([]Input, []Output) {
	contractIDs := uniqueContractIDs(calls)

	inputs := make([]Input, 0, len(contractIDs)+len(assetInputs))
	inputs = append(inputs, contractInputs(contractIDs)...)
	inputs = append(inputs, assetInputs...)

	outputs := contractOutputs(len(contractIDs))
	outputs = append(outputs, changeOutputs(assetInputs, refundAddress, baseAssetID)...)
	outputs = append(outputs, customOutputs(calls)...)
	outputs = append(outputs, variableOutputs(calls)...)

	return inputs, outputs
}

// uniqueContractIDs deduplicates every contract referenced by the calls,
// primary targets and external dependencies alike, keeping first-appearance
// order.
func uniqueContractIDs(calls []*ContractCall) []ContractID {
	seen := make(map[ContractID]struct{})
	var ids []ContractID

	add := func(id ContractID) {
		if _, ok := seen[id]; ok {
			return
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}

	for _, call := range calls {
		add(call.contractID)
		for _, id := range call.externalContracts {
			add(id)
		}
	}

	return ids
}

// contractInputs builds one input per contract id. Roots are zeroed
// placeholders and the synthetic UtxoID's output index is the position of the
// paired contract output.
func contractInputs(ids []ContractID) []Input {
	inputs := make([]Input, len(ids))
	for i, id := range ids {
		inputs[i] = ContractInput{
			UtxoID:     UtxoID{TxID: common.Hash{}, OutputIndex: uint16(i)},
			ContractID: id,
		}
	}
	return inputs
}

// contractOutputs builds one zero-rooted output per contract input, in the
// same order.
func contractOutputs(num int) []Output {
	outputs := make([]Output, 0, num)
	for i := 0; i < num; i++ {
		outputs = append(outputs, ContractOutput{InputIndex: uint16(i)})
	}
	return outputs
}

// changeOutputs emits exactly one zero-amount change output per distinct
// asset among the supplied asset inputs, sorted by asset id. Message inputs
// carry the base asset.
func changeOutputs(assetInputs []Input, refundAddress Address, baseAssetID AssetID) []Output {
	seen := make(map[AssetID]struct{})
	var assets []AssetID

	for _, in := range assetInputs {
		var asset AssetID
		switch in := in.(type) {
		case CoinInput:
			asset = in.AssetID
		case MessageInput:
			asset = baseAssetID
		default:
			continue
		}
		if _, ok := seen[asset]; !ok {
			seen[asset] = struct{}{}
			assets = append(assets, asset)
		}
	}
	slices.SortFunc(assets, func(a, b AssetID) int { return a.Cmp(b) })

	outputs := make([]Output, len(assets))
	for i, asset := range assets {
		outputs[i] = ChangeOutput{To: refundAddress, Amount: 0, AssetID: asset}
	}
	return outputs
}

// customOutputs emits one coin output per distinct (asset, recipient) pair
// among the calls' custom transfers, with amounts summed across calls.
// Transfers without a recipient are covered by existing balance and produce
// no payout.
func customOutputs(calls []*ContractCall) []Output {
	totals := make(map[customAssetKey]uint64)
	for _, call := range calls {
		for key, amount := range call.customAssets {
			totals[key] += amount
		}
	}

	keys := make([]customAssetKey, 0, len(totals))
	for key := range totals {
		if key.hasRecipient {
			keys = append(keys, key)
		}
	}
	slices.SortFunc(keys, func(a, b customAssetKey) int {
		if c := a.asset.Cmp(b.asset); c != 0 {
			return c
		}
		return a.recipient.Cmp(b.recipient)
	})

	outputs := make([]Output, len(keys))
	for i, key := range keys {
		outputs[i] = CoinOutput{To: key.recipient, Amount: totals[key], AssetID: key.asset}
	}
	return outputs
}

// variableOutputs concatenates every call's pre-declared placeholders in call
// order.
func variableOutputs(calls []*ContractCall) []Output {
	var outputs []Output
	for _, call := range calls {
		for _, v := range call.variableOutputs {
			outputs = append(outputs, v)
		}
	}
	return outputs
}
