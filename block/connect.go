package block

import "github.com/dex2c/dtcjit/dalvik"

// Connect appends other as a successor of b and b as a predecessor of
// other, mirroring DtcNode::Connect's symmetric AppendSuccNode/
// AppendPredNode pair.
func (b *BasicBlock) Connect(other *BasicBlock) {
	b.SuccBlocks = append(b.SuccBlocks, other)
	other.PredBlocks = append(other.PredBlocks, b)
}

// ConnectGraph derives the control-flow edges between an already-carved
// block slice and wires them via Connect. It reruns the leader scan
// for its branch table (ctrlData), which BuildBlocks otherwise
// consults only transiently and discards once blocks are carved, and
// adds the plain fall-through edge into the next block for a block
// whose last instruction neither branches nor returns. This is the deprecated CFG builder's surviving form: an
// optional, pipeline-detached utility for callers that want successor/
// predecessor edges (e.g. a disassembler annotating control flow).
// Neither BuildIR nor Translate calls it; liveness and lowering are
// block-local and never need the graph.
func ConnectGraph(blocks []*BasicBlock, code *dalvik.Code) error {
	if code == nil {
		return dalvik.Wrap("ConnectGraph", dalvik.KindInvalidParameter, dalvik.ErrInvalidParameter)
	}

	flags, ctrl, err := scanLeaders(code)
	if err != nil {
		return err
	}

	byStart := make(map[uint32]*BasicBlock, len(blocks))
	for _, b := range blocks {
		byStart[b.StartAddr] = b
	}

	for _, b := range blocks {
		if len(b.Records) == 0 {
			continue
		}
		last := b.Records[len(b.Records)-1]
		targets, ok := ctrl[last.InsnAddr]
		if !ok {
			// No branch out of the block: it falls through into the
			// next block unless it ends in a return, as in BuildBlocks.
			if next, ok := byStart[b.EndAddr+1]; ok && !flags[last.InsnAddr].isReturn() {
				b.Connect(next)
			}
			continue
		}
		for target := range targets {
			if succ, ok := byStart[target]; ok {
				b.Connect(succ)
			}
		}
	}

	return nil
}
