// Package block carves a method's raw instruction stream into basic
// blocks by a forward leader scan and decodes each block's
// instructions. Block-local def/use and type analysis is done by
// package liveness.
package block

import (
	"io/ioutil"
	"log"
	"os"

	"github.com/dex2c/dtcjit/dalvik"
)

var PrintDebugInfo = false

var logger *log.Logger

func init() {
	w := ioutil.Discard
	if PrintDebugInfo {
		w = os.Stderr
	}
	logger = log.New(w, "block: ", log.Lshortfile)
}

// Flag bits classify each instruction-stream offset during the leader
// scan. An offset with any of the low 5 bits set begins a new block.
type Flag uint8

const (
	StartFlag          Flag = 0x01
	BranchTargetFlag   Flag = 0x02
	BranchNotTakenFlag Flag = 0x04
	ExceptionCatchFlag Flag = 0x08
	ExceptionTryFlag   Flag = 0x10
	SwitchFlag         Flag = 0x20
	OpcodeFlag         Flag = 0x40
	ReturnFlag         Flag = 0x80

	leaderMask Flag = 0x1f
)

func (f Flag) isLeader() bool { return f&leaderMask != 0 }
func (f Flag) isOpcode() bool { return f&OpcodeFlag != 0 }
func (f Flag) isReturn() bool { return f&ReturnFlag != 0 }

// ctrlData records, for each instruction address that transfers
// control, the set of addresses control can pass to from it (branch
// targets and a conditional branch's not-taken successor). Block
// carving adds the missing fall-through edges to it; ConnectGraph
// reads it to wire block successors.
type ctrlData map[uint32]map[uint32]bool

func (c ctrlData) insert(from, to uint32) {
	s, ok := c[from]
	if !ok {
		s = make(map[uint32]bool)
		c[from] = s
	}
	s[to] = true
}

func branchOffset8(insns []uint16, i uint32) int32 {
	return int32(int8(insns[i] >> 8))
}

func branchOffset16(insns []uint16, i uint32) int32 {
	return int32(int16(insns[i]))
}

func branchOffset32(insns []uint16, i uint32) int32 {
	return int32(uint32(insns[i]) | uint32(insns[i+1])<<16)
}

func operand16(insns []uint16, i uint32) uint16 {
	return insns[i]
}

// scanLeaders performs the single forward pass over insns classifying
// every offset, returning the per-offset flag vector and the
// fallthrough/branch control-data table used by the splitting pass
// below. A malformed switch-table identity word causes a nil flags
// return, signalling RESOLVE_BASIC_BLOCKS per the error-handling
// contract.
func scanLeaders(code *dalvik.Code) ([]Flag, ctrlData, error) {
	insns := code.Insns
	size := code.InsnsSize

	flags := make([]Flag, size)
	ctrl := make(ctrlData)

	for _, t := range code.Tries {
		target := t.StartAddr + t.InsnCount
		flags[t.StartAddr] |= ExceptionTryFlag
		if target < size {
			flags[target] |= ExceptionCatchFlag
		}
	}

	if size > 0 {
		flags[0] |= StartFlag
	}

	checkBranchTarget := func(base uint32, offset int32) {
		target := uint32(int64(base) + int64(offset))
		if target >= size {
			return
		}
		flags[target] |= BranchTargetFlag
		ctrl.insert(base, target)
	}
	checkBranchNotTaken := func(base uint32, offset int32) {
		target := base + uint32(offset)
		if target >= size {
			return
		}
		flags[target] |= BranchNotTakenFlag
		ctrl.insert(base, target)
	}

	var i uint32
	for i < size {
		flags[i] |= OpcodeFlag

		op := dalvik.Opcode(insns[i] & 0xff)

		switch op {
		case dalvik.OpIfEq, dalvik.OpIfNe, dalvik.OpIfLt, dalvik.OpIfGe, dalvik.OpIfGt, dalvik.OpIfLe,
			dalvik.OpIfEqz, dalvik.OpIfNez, dalvik.OpIfLtz, dalvik.OpIfGez, dalvik.OpIfGtz, dalvik.OpIfLez:
			checkBranchNotTaken(i, 2)
			checkBranchTarget(i, branchOffset16(insns, i+1))
			i += 2

		case dalvik.OpGoto:
			checkBranchTarget(i, branchOffset8(insns, i))
			i++

		case dalvik.OpGoto16:
			checkBranchTarget(i, branchOffset16(insns, i+1))
			i += 2

		case dalvik.OpGoto32:
			checkBranchTarget(i, branchOffset32(insns, i+1))
			i += 3

		case dalvik.OpPackedSwitch:
			flags[i] |= SwitchFlag
			tableIndex := uint32(int64(i) + int64(branchOffset32(insns, i+1)))
			if tableIndex >= size || operand16(insns, tableIndex) != 0x0100 {
				return nil, nil, dalvik.Wrap("ResolveBasicBlocks", dalvik.KindResolveBasicBlocks, dalvik.ErrInvalidSwitchTable)
			}
			tableIndex++
			tableSize := operand16(insns, tableIndex)
			tableIndex++
			tableIndex += 2 // skip first key (32-bit)
			for j := uint16(0); j < tableSize; j++ {
				checkBranchTarget(i, branchOffset32(insns, tableIndex))
				tableIndex += 2
			}
			i += uint32(dalvik.OpPackedSwitch.Format().Width())

		case dalvik.OpSparseSwitch:
			flags[i] |= SwitchFlag
			tableIndex := uint32(int64(i) + int64(branchOffset32(insns, i+1)))
			if tableIndex >= size || operand16(insns, tableIndex) != 0x0200 {
				return nil, nil, dalvik.Wrap("ResolveBasicBlocks", dalvik.KindResolveBasicBlocks, dalvik.ErrInvalidSwitchTable)
			}
			tableIndex++
			tableSize := operand16(insns, tableIndex)
			tableIndex++
			tableIndex += uint32(tableSize) * 2 // skip keys
			for j := uint16(0); j < tableSize; j++ {
				checkBranchTarget(i, branchOffset32(insns, tableIndex))
				tableIndex += 2
			}
			i += uint32(dalvik.OpSparseSwitch.Format().Width())

		case dalvik.OpReturn, dalvik.OpReturnVoid, dalvik.OpReturnWide, dalvik.OpReturnObject, dalvik.OpReturnVoidBarrier:
			flags[i] |= ReturnFlag
			i += uint32(dalvik.Width(op))

		default:
			i += uint32(dalvik.Width(op))
		}
	}

	return flags, ctrl, nil
}
