package fuelcall

// ReceiptType discriminates the effects recorded during execution.
type ReceiptType uint8

const (
	ReceiptCall ReceiptType = iota
	ReceiptReturn
	ReceiptReturnData
	ReceiptPanic
	ReceiptRevert
	ReceiptLog
	ReceiptLogData
	ReceiptTransfer
	ReceiptTransferOut
	ReceiptScriptResult
	ReceiptMessageOut
)

// PanicReason is the VM's reason code for a panic receipt.
type PanicReason uint8

// Panic reasons this package inspects. Values match the VM's wire encoding.
const (
	// PanicContractNotInInputs: a contract was called without a matching
	// contract input. Panic receipts with this reason always carry the
	// offending contract id.
	PanicContractNotInInputs PanicReason = 0x16
)

// FailedTransferToAddressSignal is the well-known revert word the standard
// library emits when a transfer to an address fails, typically because the
// transaction lacks a variable output to receive it.
const FailedTransferToAddressSignal uint64 = 0xffff_ffff_ffff_0001

// Receipt records one effect of a dry-run or committed execution. Which
// fields are meaningful depends on Type; unused fields are zero.
type Receipt struct {
	Type ReceiptType

	// ContractID is the executing contract, where applicable. Panic receipts
	// caused by a missing contract input carry the missing contract's id.
	ContractID *ContractID

	// To is the callee (call receipts) or recipient contract (transfers).
	To *ContractID

	// Amount and AssetID describe transferred value.
	Amount  uint64
	AssetID AssetID

	// RA holds the first register argument; for revert receipts it is the
	// revert signal word.
	RA uint64

	// Reason is set on panic receipts.
	Reason PanicReason

	// Result and GasUsed are set on script-result receipts.
	Result  uint64
	GasUsed uint64
}

// IsMissingOutputVariables reports whether the receipts contain a revert
// carrying the failed-transfer-to-address signal, meaning the transaction
// needs more variable outputs.
func IsMissingOutputVariables(receipts []Receipt) bool {
	for _, r := range receipts {
		if r.Type == ReceiptRevert && r.RA == FailedTransferToAddressSignal {
			return true
		}
	}
	return false
}

// MissingContractID extracts the contract id of the first panic receipt with
// reason PanicContractNotInInputs, if any. The VM guarantees such receipts
// carry the id, so a nil id here is a malformed receipt stream.
func MissingContractID(receipts []Receipt) (ContractID, bool) {
	for _, r := range receipts {
		if r.Type != ReceiptPanic || r.Reason != PanicContractNotInInputs {
			continue
		}
		if r.ContractID == nil {
			panic("fuelcall: panic caused by a contract not in inputs must have a contract id")
		}
		return *r.ContractID, true
	}
	return ContractID{}, false
}
