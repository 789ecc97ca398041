package fuelcall

// ArgsResolver produces the final encoded argument bytes for a call. It
// receives the absolute script-data offset at which the arguments will live,
// since some encodings embed pointers relative to the transaction.
type ArgsResolver func(offset uint64) ([]byte, error)

// OutputType classifies the logical shape of a call's declared return value.
// It only decides whether the generated instruction sequence needs extra
// instructions; values are never decoded here.
type OutputType uint8

const (
	// OutputTypeUnit is a call returning nothing.
	OutputTypeUnit OutputType = iota

	// OutputTypeValue is a call returning a statically sized value.
	OutputTypeValue

	// OutputTypeHeap is a call returning heap-allocated data.
	OutputTypeHeap
)

// CallParameters carries the forwarded amount, optional asset id, and
// optional forwarded gas of one call. The zero value forwards nothing.
// CallParameters is immutable - modifier methods return new instances.
type CallParameters struct {
	amount       uint64
	assetID      *AssetID
	gasForwarded *uint64
}

// DefaultCallParameters returns parameters forwarding no assets and no gas.
func DefaultCallParameters() CallParameters {
	return CallParameters{}
}

// Amount returns the forwarded amount.
func (p CallParameters) Amount() uint64 {
	return p.amount
}

// AssetID returns the explicit forwarded asset id, if one was set.
func (p CallParameters) AssetID() (AssetID, bool) {
	if p.assetID == nil {
		return AssetID{}, false
	}
	return *p.assetID, true
}

// GasForwarded returns the forwarded gas limit, if one was set.
func (p CallParameters) GasForwarded() (uint64, bool) {
	if p.gasForwarded == nil {
		return 0, false
	}
	return *p.gasForwarded, true
}

// WithAmount returns parameters forwarding the given amount.
func (p CallParameters) WithAmount(amount uint64) CallParameters {
	p.amount = amount
	return p
}

// WithAssetID returns parameters forwarding the given asset instead of the
// chain's base asset.
func (p CallParameters) WithAssetID(assetID AssetID) CallParameters {
	p.assetID = &assetID
	return p
}

// WithGasForwarded returns parameters forwarding the given gas limit.
func (p CallParameters) WithGasForwarded(gas uint64) CallParameters {
	p.gasForwarded = &gas
	return p
}

// customAssetKey groups custom transfers by asset and optional recipient.
type customAssetKey struct {
	asset        AssetID
	hasRecipient bool
	recipient    Address
}

// ContractCall describes one logical contract invocation prior to binary
// assembly: the target, the encoded selector and arguments, call parameters,
// and the declared outputs and dependencies of the call.
//
// ContractCall is immutable - modifier methods return new instances. The
// assembler never mutates a call; dependency patching produces new call lists.
type ContractCall struct {
	contractID        ContractID
	encodedSelector   []byte
	encodedArgs       ArgsResolver
	callParameters    CallParameters
	outputType        OutputType
	externalContracts []ContractID
	variableOutputs   []VariableOutput
	customAssets      map[customAssetKey]uint64
	isPayable         bool
}

// NewContractCall creates a call against the given contract. The selector is
// the already-encoded method discriminator; args resolves the encoded
// argument buffer once its final offset is known.
func NewContractCall(contractID ContractID, encodedSelector []byte, args ArgsResolver) *ContractCall {
	return &ContractCall{
		contractID:      contractID,
		encodedSelector: encodedSelector,
		encodedArgs:     args,
	}
}

// ContractID returns the primary target contract.
func (c *ContractCall) ContractID() ContractID {
	return c.contractID
}

// EncodedSelector returns the encoded method selector bytes.
func (c *ContractCall) EncodedSelector() []byte {
	return c.encodedSelector
}

// CallParameters returns the call's forwarded amount, asset, and gas.
func (c *ContractCall) CallParameters() CallParameters {
	return c.callParameters
}

// OutputType returns the declared logical type of the call's return value.
func (c *ContractCall) OutputType() OutputType {
	return c.outputType
}

// ExternalContracts returns the contract ids this call may touch beyond its
// primary target.
func (c *ContractCall) ExternalContracts() []ContractID {
	return c.externalContracts
}

// VariableOutputs returns the call's pre-declared variable-output
// placeholders.
func (c *ContractCall) VariableOutputs() []VariableOutput {
	return c.variableOutputs
}

// IsPayable reports whether the target method accepts forwarded assets.
func (c *ContractCall) IsPayable() bool {
	return c.isPayable
}

// WithContractID returns a new call targeting the given contract.
func (c *ContractCall) WithContractID(id ContractID) *ContractCall {
	clone := c.clone()
	clone.contractID = id
	return clone
}

// WithCallParameters returns a new call with the given parameters.
func (c *ContractCall) WithCallParameters(params CallParameters) *ContractCall {
	clone := c.clone()
	clone.callParameters = params
	return clone
}

// WithOutputType returns a new call declaring the given return value shape.
func (c *ContractCall) WithOutputType(t OutputType) *ContractCall {
	clone := c.clone()
	clone.outputType = t
	return clone
}

// WithExternalContracts returns a new call with the given external contract
// dependencies, replacing any previous set.
func (c *ContractCall) WithExternalContracts(ids ...ContractID) *ContractCall {
	clone := c.clone()
	clone.externalContracts = append([]ContractID(nil), ids...)
	return clone
}

// AppendExternalContract returns a new call with one additional external
// contract dependency.
func (c *ContractCall) AppendExternalContract(id ContractID) *ContractCall {
	clone := c.clone()
	clone.externalContracts = append(clone.externalContracts, id)
	return clone
}

// WithVariableOutputs returns a new call with the given variable-output
// placeholders, replacing any previous set.
func (c *ContractCall) WithVariableOutputs(outputs ...VariableOutput) *ContractCall {
	clone := c.clone()
	clone.variableOutputs = append([]VariableOutput(nil), outputs...)
	return clone
}

// AppendVariableOutputs returns a new call with num additional zeroed
// variable-output placeholders.
func (c *ContractCall) AppendVariableOutputs(num uint64) *ContractCall {
	clone := c.clone()
	clone.variableOutputs = append(clone.variableOutputs, NewVariableOutputs(num)...)
	return clone
}

// WithCustomAsset returns a new call transferring amount of the given asset,
// optionally to a recipient. Amounts accumulate: adding the same
// (asset, recipient) pair twice sums the amounts. Transfers without a
// recipient reserve the amount but produce no payment output.
func (c *ContractCall) WithCustomAsset(asset AssetID, amount uint64, to *Address) *ContractCall {
	key := customAssetKey{asset: asset}
	if to != nil {
		key.hasRecipient = true
		key.recipient = *to
	}

	clone := c.clone()
	clone.customAssets[key] += amount
	return clone
}

// WithPayable returns a new call with the payable flag set.
func (c *ContractCall) WithPayable(payable bool) *ContractCall {
	clone := c.clone()
	clone.isPayable = payable
	return clone
}

// clone creates a copy of the call with its own slices and map.
func (c *ContractCall) clone() *ContractCall {
	clone := *c
	clone.externalContracts = append([]ContractID(nil), c.externalContracts...)
	clone.variableOutputs = append([]VariableOutput(nil), c.variableOutputs...)
	clone.customAssets = make(map[customAssetKey]uint64, len(c.customAssets))
	for k, v := range c.customAssets {
		clone.customAssets[k] = v
	}
	return &clone
}

// resolveArgs runs the external encoder for the argument buffer that will
// live at the given absolute script-data offset.
func (c *ContractCall) resolveArgs(offset uint64) ([]byte, error) {
	if c.encodedArgs == nil {
		return nil, nil
	}
	args, err := c.encodedArgs(offset)
	if err != nil {
		return nil, &CodecError{Err: err}
	}
	return args, nil
}

// forwardedAssetID returns the call's explicit asset id or the chain's base
// asset.
func (c *ContractCall) forwardedAssetID(baseAssetID AssetID) AssetID {
	if asset, ok := c.callParameters.AssetID(); ok {
		return asset
	}
	return baseAssetID
}
