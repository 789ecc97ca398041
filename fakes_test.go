package fuelcall

import (
	"context"
	"encoding/binary"

	"github.com/ethereum/go-ethereum/common"
)

// fakeProvider serves canned consensus parameters and a scripted sequence of
// dry-run outcomes. Once the script is exhausted, dry runs succeed.
type fakeProvider struct {
	params      ConsensusParameters
	dryRunQueue []error
	dryRunCalls int
	lastTx      *ScriptTransaction
}

func newFakeProvider() *fakeProvider {
	return &fakeProvider{
		params: ConsensusParameters{
			BaseAssetID:    common.HexToHash("0xba5e"),
			TxScriptOffset: 160,
		},
	}
}

func (p *fakeProvider) ConsensusParameters(context.Context) (ConsensusParameters, error) {
	return p.params, nil
}

func (p *fakeProvider) DryRun(_ context.Context, tx *ScriptTransaction) ([]Receipt, error) {
	p.dryRunCalls++
	p.lastTx = tx
	if len(p.dryRunQueue) == 0 {
		return []Receipt{{Type: ReceiptScriptResult}}, nil
	}
	err := p.dryRunQueue[0]
	p.dryRunQueue = p.dryRunQueue[1:]
	if err != nil {
		return nil, err
	}
	return []Receipt{{Type: ReceiptScriptResult}}, nil
}

func (p *fakeProvider) SpendableResources(_ context.Context, owner Address, asset AssetID, amount uint64) ([]Input, error) {
	return []Input{CoinInput{Owner: owner, Amount: amount, AssetID: asset}}, nil
}

// fakeAccount selects one coin per request and records every interaction.
type fakeAccount struct {
	address      Address
	provider     *fakeProvider
	resourceErr  error
	requested    []AssetAmount
	witnessCalls int
	adjustedWith []uint64
	nextUtxo     uint16
}

func newFakeAccount(provider *fakeProvider) *fakeAccount {
	return &fakeAccount{
		address:  common.HexToHash("0xacc0"),
		provider: provider,
	}
}

func (a *fakeAccount) Address() Address {
	return a.address
}

func (a *fakeAccount) Provider() (Provider, error) {
	if a.provider == nil {
		return nil, ErrNoProvider
	}
	return a.provider, nil
}

func (a *fakeAccount) ResourcesForAmount(_ context.Context, asset AssetID, amount uint64) ([]Input, error) {
	if a.resourceErr != nil {
		return nil, a.resourceErr
	}
	a.requested = append(a.requested, AssetAmount{AssetID: asset, Amount: amount})
	if amount == 0 {
		return nil, nil
	}

	a.nextUtxo++
	var txID common.Hash
	binary.BigEndian.PutUint16(txID[30:], a.nextUtxo)
	return []Input{CoinInput{
		UtxoID:  UtxoID{TxID: txID},
		Owner:   a.address,
		Amount:  amount,
		AssetID: asset,
	}}, nil
}

func (a *fakeAccount) AddWitnesses(tb *ScriptTransactionBuilder) error {
	a.witnessCalls++
	tb.AddWitness([]byte("signature"))
	return nil
}

func (a *fakeAccount) AdjustForFee(_ context.Context, tb *ScriptTransactionBuilder, usedBaseAmount uint64) error {
	a.adjustedWith = append(a.adjustedWith, usedBaseAmount)
	return nil
}
