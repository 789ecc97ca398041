package fuelcall

import (
	"errors"
	"fmt"
)

// Sentinel errors for common failure conditions.
var (
	// ErrOffsetOutOfRange indicates a script-data offset exceeds the 18-bit
	// immediate operand of MOVI. Offsets are bounded by the script-data size,
	// so hitting this is a configuration error, not a runtime condition.
	ErrOffsetOutOfRange = errors.New("fuelcall: script data offset exceeds immediate operand range")

	// ErrNoProvider indicates the account has no network provider attached.
	ErrNoProvider = errors.New("fuelcall: account is not connected to a provider")

	// ErrAmountOnNonPayable indicates call parameters forward an amount to a
	// method that is not payable.
	ErrAmountOnNonPayable = errors.New("fuelcall: assets forwarded to a non-payable method")

	// ErrMismatchedOffsets indicates the opcode generator received a different
	// number of offset records than calls.
	ErrMismatchedOffsets = errors.New("fuelcall: offset records do not match call count")

	// ErrContractOutputOrder indicates the contract outputs of a transaction do
	// not pair one-to-one, in order, with its contract inputs.
	ErrContractOutputOrder = errors.New("fuelcall: contract outputs must come first and match contract inputs")

	// ErrNoCalls indicates a multi-call handler has an empty call list.
	ErrNoCalls = errors.New("fuelcall: no calls specified")
)

// CodecError indicates the external encoder failed to resolve a call's
// argument buffer. It is fatal; assembly is never retried on codec failures.
type CodecError struct {
	Err error
}

func (e *CodecError) Error() string {
	return fmt.Sprintf("fuelcall: cannot encode contract call arguments: %v", e.Err)
}

func (e *CodecError) Unwrap() error {
	return e.Err
}

// RevertError is returned by a provider when a simulated or submitted
// transaction reverts. It carries the execution receipts so callers can
// distinguish recoverable dependency failures from genuine reverts.
type RevertError struct {
	Reason   string
	RevertID uint64
	Receipts []Receipt
}

func (e *RevertError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("fuelcall: transaction reverted: %s (id 0x%x)", e.Reason, e.RevertID)
	}
	return fmt.Sprintf("fuelcall: transaction reverted (id 0x%x)", e.RevertID)
}

// InsufficientBalanceError indicates resource selection could not cover a
// required asset amount. The assembler propagates it unchanged; retrying is a
// caller-level decision.
type InsufficientBalanceError struct {
	AssetID   AssetID
	Requested uint64
	Available uint64
}

func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("fuelcall: insufficient balance for asset %s: requested %d, available %d",
		e.AssetID.Hex(), e.Requested, e.Available)
}
