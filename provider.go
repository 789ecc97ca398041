package fuelcall

import (
	"context"
)

// ConsensusParameters are the chain constants assembly depends on.
type ConsensusParameters struct {
	// ChainID distinguishes networks when signing.
	ChainID uint64

	// BaseAssetID is the asset used for fees and as the default forwarded
	// asset.
	BaseAssetID AssetID

	// TxScriptOffset is the byte offset of the script section within a
	// serialized script transaction, i.e. the size of the fixed transaction
	// header preceding it.
	TxScriptOffset uint64
}

// Provider is a handle to a chain node. Implementations do the actual RPC;
// this package only needs consensus parameters, dry-run execution, and
// spendable-resource queries.
//
// DryRun executes the transaction without committing it. A revert surfaces as
// a *RevertError carrying the execution receipts.
type Provider interface {
	ConsensusParameters(ctx context.Context) (ConsensusParameters, error)
	DryRun(ctx context.Context, tx *ScriptTransaction) ([]Receipt, error)
	SpendableResources(ctx context.Context, owner Address, asset AssetID, amount uint64) ([]Input, error)
}

// Account selects resources, signs, and pays fees. Wallet and signing logic
// live entirely behind this interface.
type Account interface {
	// Address is the account's address, used for change outputs.
	Address() Address

	// Provider returns the network handle, or ErrNoProvider when the account
	// is offline.
	Provider() (Provider, error)

	// ResourcesForAmount selects spendable inputs covering amount of asset.
	// A shortfall is reported as *InsufficientBalanceError.
	ResourcesForAmount(ctx context.Context, asset AssetID, amount uint64) ([]Input, error)

	// AddWitnesses attaches the account's signing witnesses to the builder.
	AddWitnesses(tb *ScriptTransactionBuilder) error

	// AdjustForFee extends the builder's inputs/outputs to cover the
	// estimated fee. usedBaseAmount is the base-asset amount the calls
	// already require, so the account need not re-derive it.
	AdjustForFee(ctx context.Context, tb *ScriptTransactionBuilder, usedBaseAmount uint64) error
}
