package fuelcall

import (
	"encoding/binary"
)

// CallOpcodeParamsOffset records where one call's CALL parameters live inside
// the script-data buffer, so the generated instructions can load them into
// registers. All offsets are absolute within the whole buffer.
type CallOpcodeParamsOffset struct {
	CallDataOffset     uint64
	AmountOffset       uint64
	AssetIDOffset      uint64
	GasForwardedOffset uint64
	HasGasForwarded    bool
}

// BuildScriptData lays the calls out sequentially in one contiguous buffer
// starting at dataOffset and returns the buffer plus one offset record per
// call, in call order.
//
// Each call's segment holds, in order:
//  1. amount to forward (one word)
//  2. asset id to forward (32 bytes)
//  3. contract id (32 bytes)
//  4. encoded selector offset (one word, absolute)
//  5. encoded arguments offset (one word, absolute)
//  6. encoded selector bytes
//  7. encoded argument bytes
//  8. gas to forward (one word) - only if the call sets forwarded gas
//
// The generated instructions read these fields at the recorded offsets via
// MOVI/LW, so the layout is part of the wire contract with the VM.
func BuildScriptData(calls []*ContractCall, dataOffset uint64, baseAssetID AssetID) ([]byte, []CallOpcodeParamsOffset, error) {
	var scriptData []byte
	paramOffsets := make([]CallOpcodeParamsOffset, 0, len(calls))

	// Each call's segment begins where the previous one ended.
	segmentOffset := dataOffset

	for _, call := range calls {
		amountOffset := segmentOffset
		assetIDOffset := amountOffset + WordSize
		callDataOffset := assetIDOffset + AssetIDLen
		selectorOffset := callDataOffset + ContractIDLen + 2*WordSize
		argsOffset := selectorOffset + uint64(len(call.encodedSelector))

		scriptData = binary.BigEndian.AppendUint64(scriptData, call.callParameters.Amount())

		assetID := call.forwardedAssetID(baseAssetID)
		scriptData = append(scriptData, assetID[:]...)
		scriptData = append(scriptData, call.contractID[:]...)
		scriptData = binary.BigEndian.AppendUint64(scriptData, selectorOffset)
		scriptData = binary.BigEndian.AppendUint64(scriptData, argsOffset)
		scriptData = append(scriptData, call.encodedSelector...)

		args, err := call.resolveArgs(argsOffset)
		if err != nil {
			return nil, nil, err
		}
		scriptData = append(scriptData, args...)

		offset := CallOpcodeParamsOffset{
			CallDataOffset: callDataOffset,
			AmountOffset:   amountOffset,
			AssetIDOffset:  assetIDOffset,
		}

		if gas, ok := call.callParameters.GasForwarded(); ok {
			offset.GasForwardedOffset = argsOffset + uint64(len(args))
			offset.HasGasForwarded = true
			scriptData = binary.BigEndian.AppendUint64(scriptData, gas)
		}

		paramOffsets = append(paramOffsets, offset)

		segmentOffset = dataOffset + uint64(len(scriptData))
	}

	return scriptData, paramOffsets, nil
}

// CallInstructions emits the instruction sequence invoking every call in
// order, terminated by a single RET $one. Offsets must be the records
// produced by BuildScriptData for the same call list.
func CallInstructions(calls []*ContractCall, offsets []CallOpcodeParamsOffset) ([]byte, error) {
	if len(calls) != len(offsets) {
		return nil, ErrMismatchedOffsets
	}

	var script []byte
	for i, call := range calls {
		instructions, err := singleCallInstructions(offsets[i], call.outputType)
		if err != nil {
			return nil, err
		}
		script = append(script, instructions...)
	}

	return appendInstructions(script, ret(RegOne)), nil
}

// singleCallInstructions emits the fixed sequence invoking one contract:
//
//	MOVI $0x10, call_data_offset
//	MOVI $0x11, amount_offset
//	LW   $0x11, $0x11, 0
//	MOVI $0x12, asset_id_offset
//	[MOVI $0x13, gas_offset; LW $0x13, $0x13, 0]
//	CALL $0x10, $0x11, $0x12, {$0x13 | $cgas}
//
// The sequence depends only on whether gas is forwarded, never on argument
// values. The output type needs no extra instructions for any shape the
// current VM supports; it is threaded through so a future instruction set
// revision changes exactly one place.
func singleCallInstructions(offset CallOpcodeParamsOffset, _ OutputType) ([]byte, error) {
	callDataOffset, err := immediateOffset(offset.CallDataOffset)
	if err != nil {
		return nil, err
	}
	amountOffset, err := immediateOffset(offset.AmountOffset)
	if err != nil {
		return nil, err
	}
	assetIDOffset, err := immediateOffset(offset.AssetIDOffset)
	if err != nil {
		return nil, err
	}

	instructions := []instruction{
		movi(regCallData, callDataOffset),
		movi(regAmount, amountOffset),
		lw(regAmount, regAmount, 0),
		movi(regAssetID, assetIDOffset),
	}

	if offset.HasGasForwarded {
		gasOffset, err := immediateOffset(offset.GasForwardedOffset)
		if err != nil {
			return nil, err
		}
		instructions = append(instructions,
			movi(regGas, gasOffset),
			lw(regGas, regGas, 0),
			callContract(regCallData, regAmount, regAssetID, regGas),
		)
	} else {
		instructions = append(instructions,
			callContract(regCallData, regAmount, regAssetID, RegCGAS),
		)
	}

	return appendInstructions(nil, instructions...), nil
}

// CallsInstructionsLen computes the byte length of the instructions
// CallInstructions will emit for the calls, excluding the final RET. The
// length depends only on each call's gas-forwarded flag, so it is computable
// before any offsets or argument buffers exist.
func CallsInstructionsLen(calls []*ContractCall) int {
	total := 0
	for _, call := range calls {
		// MOVI, MOVI, LW, MOVI + CALL.
		n := 5
		if _, ok := call.callParameters.GasForwarded(); ok {
			// MOVI + LW for the forwarded gas.
			n += 2
		}
		total += n * InstructionSize
	}
	return total
}

// immediateOffset narrows a script-data offset to a MOVI immediate.
func immediateOffset(offset uint64) (uint32, error) {
	if offset > maxImm18 {
		return 0, ErrOffsetOutOfRange
	}
	return uint32(offset), nil
}
