package fuelcall

import (
	"encoding/binary"
)

// FuelVM instruction encoding. Every instruction is one 32-bit big-endian
// word: an 8-bit opcode followed by operand fields. Register operands are
// 6 bits wide; MOVI carries an 18-bit immediate and LW a 12-bit immediate.

// InstructionSize is the serialized length of one instruction in bytes.
const InstructionSize = 4

// RegID is a 6-bit FuelVM register identifier.
type RegID uint8

// Reserved registers referenced by generated code.
const (
	// RegOne always holds 1. RET $one signals success.
	RegOne RegID = 0x01

	// RegCGAS holds the gas remaining in the current call context. CALL uses
	// it when no explicit forwarded gas was set.
	RegCGAS RegID = 0x0a
)

// Scratch registers used by the generated call sequence. Any register above
// the reserved range (0x00-0x0f) would do; these are fixed so the emitted
// bytecode is reproducible.
const (
	regCallData RegID = 0x10
	regAmount   RegID = 0x11
	regAssetID  RegID = 0x12
	regGas      RegID = 0x13
)

// Opcodes of the instructions the generator emits.
const (
	opRET  uint32 = 0x24
	opCALL uint32 = 0x2d
	opLW   uint32 = 0x5d
	opMOVI uint32 = 0x72
)

// maxImm18 bounds the MOVI immediate operand.
const maxImm18 = 1<<18 - 1

// instruction is one packed FuelVM instruction word.
type instruction uint32

// movi encodes MOVI dst, imm: set dst to an 18-bit immediate.
func movi(dst RegID, imm uint32) instruction {
	return instruction(opMOVI<<24 | uint32(dst&0x3f)<<18 | imm&0x3ffff)
}

// lw encodes LW dst, src, imm: load the word at $src + imm*8 into dst.
func lw(dst, src RegID, imm uint16) instruction {
	return instruction(opLW<<24 | uint32(dst&0x3f)<<18 | uint32(src&0x3f)<<12 | uint32(imm&0xfff))
}

// callContract encodes CALL ra, rb, rc, rd: call the contract whose call
// frame starts at $ra, forwarding $rb coins of asset *$rc with $rd gas.
func callContract(ra, rb, rc, rd RegID) instruction {
	return instruction(opCALL<<24 |
		uint32(ra&0x3f)<<18 |
		uint32(rb&0x3f)<<12 |
		uint32(rc&0x3f)<<6 |
		uint32(rd&0x3f))
}

// ret encodes RET reg: return from the script with $reg as the result.
func ret(reg RegID) instruction {
	return instruction(opRET<<24 | uint32(reg&0x3f)<<18)
}

// appendInstructions serializes instructions big-endian onto buf.
func appendInstructions(buf []byte, instructions ...instruction) []byte {
	for _, ins := range instructions {
		buf = binary.BigEndian.AppendUint32(buf, uint32(ins))
	}
	return buf
}
