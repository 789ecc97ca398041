package fuelcall

// CallScriptDataOffset computes the absolute byte offset at which the
// script-data segment begins within the serialized transaction: the fixed
// script section offset from the consensus parameters plus the word-aligned
// script length. One InstructionSize is added to the estimated calls length
// for the terminating RET.
func CallScriptDataOffset(params ConsensusParameters, callsInstructionsLen int) uint64 {
	scriptLen := uint64(callsInstructionsLen + InstructionSize)
	return params.TxScriptOffset + padToWord(scriptLen)
}

// padToWord rounds n up to the next word boundary.
func padToWord(n uint64) uint64 {
	return (n + WordSize - 1) / WordSize * WordSize
}
