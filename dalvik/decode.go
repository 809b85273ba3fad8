package dalvik

// Instruction is a single decoded Dalvik instruction: the opcode plus
// its operands in the uniform vA/vB/vC/Arg shape used throughout the
// pipeline, regardless of the instruction's original format.
type Instruction struct {
	Opcode Opcode

	VA uint32
	VB uint32 // also carries sign-extended literals/branch offsets
	VC uint32

	// Arg holds the explicit register list for format 35c (filled-new-array,
	// invoke-kind) instructions; for format 3rc (range) instructions Arg[0]
	// is the first register of the contiguous vC..vC+vA-1 range.
	Arg [5]uint32

	WideLit uint64 // 64-bit literal for const-wide (format 51l); const-wide/32 carries its literal in VB
}

// Decode reads one instruction from code starting at unit index pc. It
// returns the decoded instruction and its width in code units.
func Decode(code []uint16, pc int) (Instruction, int, error) {
	if pc < 0 || pc >= len(code) {
		return Instruction{}, 0, ErrTooShortBuffer
	}

	op := Opcode(code[pc] & 0xff)
	width := Width(op)
	if pc+width > len(code) {
		return Instruction{}, 0, ErrTooShortBuffer
	}

	insn := Instruction{Opcode: op}
	hi8 := byte(code[pc] >> 8)

	switch op.Format() {
	case Fmt10x:
		// no operands

	case Fmt12x:
		insn.VA = uint32(hi8 & 0x0f)
		insn.VB = uint32(hi8 >> 4)

	case Fmt11n:
		insn.VA = uint32(hi8 & 0x0f)
		insn.VB = uint32(int32(int8(hi8&0xf0)) >> 4)

	case Fmt11x:
		insn.VA = uint32(hi8)

	case Fmt10t:
		insn.VB = uint32(int32(int8(hi8)))

	case Fmt20t:
		insn.VB = uint32(int32(int16(code[pc+1])))

	case Fmt22x:
		insn.VA = uint32(hi8)
		insn.VB = uint32(code[pc+1])

	case Fmt21t:
		insn.VA = uint32(hi8)
		insn.VB = uint32(int32(int16(code[pc+1])))

	case Fmt21s:
		insn.VA = uint32(hi8)
		insn.VB = uint32(int32(int16(code[pc+1])))

	case Fmt21h:
		insn.VA = uint32(hi8)
		insn.VB = uint32(int32(int16(code[pc+1])))

	case Fmt21c:
		insn.VA = uint32(hi8)
		insn.VB = uint32(code[pc+1])

	case Fmt23x:
		insn.VA = uint32(hi8)
		insn.VB = uint32(code[pc+1] & 0xff)
		insn.VC = uint32(code[pc+1] >> 8)

	case Fmt22b:
		insn.VA = uint32(hi8)
		insn.VB = uint32(code[pc+1] & 0xff)
		insn.VC = uint32(int32(int8(code[pc+1] >> 8)))

	case Fmt22t:
		insn.VA = uint32(hi8 & 0x0f)
		insn.VB = uint32(hi8 >> 4)
		insn.VC = uint32(int32(int16(code[pc+1])))

	case Fmt22s:
		insn.VA = uint32(hi8 & 0x0f)
		insn.VB = uint32(hi8 >> 4)
		insn.VC = uint32(int32(int16(code[pc+1])))

	case Fmt22c:
		insn.VA = uint32(hi8 & 0x0f)
		insn.VB = uint32(hi8 >> 4)
		insn.VC = uint32(code[pc+1])

	case Fmt30t:
		insn.VB = uint32(int32(code[pc+1]) | int32(code[pc+2])<<16)

	case Fmt32x:
		insn.VA = uint32(code[pc+1])
		insn.VB = uint32(code[pc+2])

	case Fmt31i:
		insn.VA = uint32(hi8)
		insn.VB = uint32(code[pc+1]) | uint32(code[pc+2])<<16

	case Fmt31t:
		insn.VA = uint32(hi8)
		insn.VB = uint32(code[pc+1]) | uint32(code[pc+2])<<16

	case Fmt31c:
		insn.VA = uint32(hi8)
		insn.VB = uint32(code[pc+1]) | uint32(code[pc+2])<<16

	case Fmt35c:
		argCount := uint32(hi8 >> 4)
		insn.VA = argCount
		insn.VB = uint32(code[pc+1])
		gFEDC := code[pc+2]
		regs := [5]uint32{
			uint32(gFEDC & 0xf),
			uint32((gFEDC >> 4) & 0xf),
			uint32((gFEDC >> 8) & 0xf),
			uint32((gFEDC >> 12) & 0xf),
			uint32(hi8 & 0xf),
		}
		insn.Arg = regs

	case Fmt3rc:
		insn.VA = uint32(hi8)
		insn.VB = uint32(code[pc+1])
		insn.VC = uint32(code[pc+2])
		insn.Arg[0] = insn.VC

	case Fmt51l:
		lo := uint64(code[pc+1]) | uint64(code[pc+2])<<16
		hi := uint64(code[pc+3]) | uint64(code[pc+4])<<16
		insn.VA = uint32(hi8)
		insn.WideLit = lo | hi<<32
	}

	return insn, width, nil
}
