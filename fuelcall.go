// Package fuelcall assembles executable script transactions for the FuelVM
// from high-level contract call descriptions.
//
// A contract call names a target contract, an encoded method selector, and a
// lazily resolved encoded-argument buffer. The package lays the calls out in a
// single script-data segment, generates the fixed instruction sequence that
// invokes each contract, and resolves the minimal set of transaction inputs
// and outputs (deduplicated contract references, externally selected asset
// inputs, change, custom transfers, and variable-output placeholders).
//
// # Basic Usage
//
// Build a call, wrap it in a handler, and let the handler assemble and repair
// the transaction:
//
//	call := fuelcall.NewContractCall(contractID, selector, args).
//		WithCallParameters(fuelcall.DefaultCallParameters().WithAmount(100))
//
//	handler := fuelcall.NewCallHandler(call, account)
//
//	// Simulate and resolve missing dependencies, then build.
//	handler, err := handler.EstimateTxDependencies(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	tx, err := handler.BuildTx(ctx)
//
// # Dependency Resolution
//
// Under-specified transactions fail simulation in two recoverable ways: a
// revert carrying the chain's failed-transfer-to-address signal (a variable
// output is missing) or a panic with reason "contract not in inputs" (an
// external contract dependency is missing). EstimateTxDependencies simulates
// the transaction, patches the call set, and retries up to a bounded number of
// attempts. Any other failure is returned unchanged.
//
// # Wire Format
//
// Script data is laid out per call, byte-exact, as
//
//	amount:u64be | asset_id:32B | contract_id:32B |
//	selector_offset:u64be | args_offset:u64be | selector | args | [gas:u64be]?
//
// and the script itself is the fixed MOVI/LW/CALL sequence per call followed
// by a single RET. The generated instructions read the fields above at the
// recorded absolute offsets, so the layout must not drift.
//
// # Collaborators
//
// Network transport, signing, fee estimation, and ABI argument encoding are
// external. The package consumes them through the narrow Provider, Account,
// and ArgsResolver interfaces.
package fuelcall
