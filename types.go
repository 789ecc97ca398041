package fuelcall

import (
	"github.com/ethereum/go-ethereum/common"
)

// Fuel uses 32-byte values for contract ids, asset ids, account addresses, and
// Merkle roots alike. They all alias common.Hash so the usual hex helpers
// (common.HexToHash, Hash.Hex, Hash.Cmp) apply.
type (
	// ContractID identifies a deployed contract.
	ContractID = common.Hash

	// AssetID identifies a native asset.
	AssetID = common.Hash

	// Address is an account address.
	Address = common.Hash
)

// Byte widths of the on-chain binary format.
const (
	// WordSize is the FuelVM native word width in bytes.
	WordSize = 8

	// ContractIDLen is the serialized length of a contract id.
	ContractIDLen = common.HashLength

	// AssetIDLen is the serialized length of an asset id.
	AssetIDLen = common.HashLength
)

// UtxoID points at one output of a previous transaction.
type UtxoID struct {
	TxID        common.Hash
	OutputIndex uint16
}

// TxPointer locates a transaction within a block. Contract inputs carry a
// zero pointer; the node fills in the real one.
type TxPointer struct {
	BlockHeight uint32
	TxIndex     uint16
}
