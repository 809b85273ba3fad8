package block

import (
	"fmt"

	"github.com/dex2c/dtcjit/dalvik"
)

// BasicBlock is a maximal run of instructions between two leaders: no
// instruction inside it other than the first is itself a leader.
type BasicBlock struct {
	StartAddr uint32
	EndAddr   uint32 // address (code-unit offset) of the block's last instruction

	Records []*InstructionRecord

	// SuccBlocks/PredBlocks are populated only by ConnectGraph; the core
	// pipeline (BuildIR/Translate) never touches them.
	SuccBlocks []*BasicBlock
	PredBlocks []*BasicBlock
}

// ResolveDexcodes decodes every instruction in [StartAddr, EndAddr]
// from insns, populating Records. It returns the number of records
// produced.
func (b *BasicBlock) ResolveDexcodes(insns []uint16) (int, error) {
	b.Records = nil
	addr := b.StartAddr
	for addr <= b.EndAddr {
		insn, width, err := dalvik.Decode(insns, int(addr))
		if err != nil {
			return len(b.Records), dalvik.Wrap("ResolveDexcodes", dalvik.KindResolveDexcodes, err)
		}
		b.Records = append(b.Records, &InstructionRecord{Insn: insn, InsnAddr: addr})
		addr += uint32(width)
	}
	return len(b.Records), nil
}

func (b *BasicBlock) String() string {
	return fmt.Sprintf(".L%08X", b.StartAddr)
}

// BuildBlocks performs the leader scan over code and carves the result
// into an address-ordered slice of basic blocks whose union of address
// ranges exactly covers [0, code.InsnsSize) with no overlap (P1).
// Blocks are decoded (ResolveDexcodes) before being returned.
func BuildBlocks(code *dalvik.Code) ([]*BasicBlock, error) {
	if code == nil {
		return nil, dalvik.Wrap("ResolveBasicBlocks", dalvik.KindInvalidParameter, dalvik.ErrInvalidParameter)
	}

	size := code.InsnsSize
	if size == 0 {
		return nil, nil
	}

	flags, ctrl, err := scanLeaders(code)
	if err != nil {
		return nil, err
	}

	var order []uint32
	blocks := make(map[uint32]*BasicBlock)

	spc := uint32(0)
	prevpc := uint32(0)

	for i := uint32(1); i < size; i++ {
		if flags[i].isLeader() {
			if _, ok := ctrl[prevpc]; !ok && !flags[prevpc].isReturn() {
				ctrl.insert(prevpc, i)
			}

			epc := i - 1
			blocks[spc] = &BasicBlock{StartAddr: spc, EndAddr: epc}
			order = append(order, spc)
			spc = i
		}

		if flags[i].isOpcode() {
			prevpc = i
		}
	}

	blocks[spc] = &BasicBlock{StartAddr: spc, EndAddr: size - 1}
	order = append(order, spc)

	result := make([]*BasicBlock, 0, len(order))
	for _, addr := range order {
		b := blocks[addr]
		if _, err := b.ResolveDexcodes(code.Insns); err != nil {
			return nil, err
		}
		result = append(result, b)
	}

	logger.Printf("BuildBlocks: %d blocks for %d code units", len(result), size)
	return result, nil
}
