package liveness

import (
	"github.com/dex2c/dtcjit/block"
	"github.com/dex2c/dtcjit/dalvik"
	"github.com/dex2c/dtcjit/debuginfo"
	"github.com/dex2c/dtcjit/web"
)

// webTable is the block-scoped cache of live webs created during one
// block's analysis; it is discarded once the block is done (liveness
// is block-local, never whole-method, per the concurrency model).
type webTable map[uint16]*web.LiveWeb

// lookup resolves reg to a live web: the method-global local-variable
// table wins first, then the block-scoped table, else a fresh web is
// created and cached in the block-scoped table.
func lookup(locals debuginfo.Table, blockWebs webTable, reg uint16) *web.LiveWeb {
	if locals != nil {
		if w, ok := locals[reg]; ok {
			return w
		}
	}
	if w, ok := blockWebs[reg]; ok {
		return w
	}
	w := web.New(reg)
	blockWebs[reg] = w
	return w
}

// Analyse assigns def/use webs and infers per-instruction types for
// every record in b, in source order, per §4.3/§4.4. Each record is
// type-inferred immediately after its webs are attached, matching the
// pipeline's "webs then type inference per record" sequencing.
func Analyse(b *block.BasicBlock, locals debuginfo.Table) error {
	blockWebs := make(webTable)

	var prev *block.InstructionRecord

	for _, rec := range b.Records {
		op := rec.Insn.Opcode
		sh, ok := shapeTable[op]
		if !ok {
			return dalvik.Wrap("AnalyseLiveness", dalvik.KindAnalyseLiveness, dalvik.ErrUnknownOpcode)
		}

		reg := func(n uint32) uint16 { return uint16(n) }

		switch sh {
		case shapeNone:
			// no def/use

		case shapeUnaryMoveDef:
			rec.AppendUse(lookup(locals, blockWebs, reg(rec.Insn.VB)))
			rec.AppendDef(lookup(locals, blockWebs, reg(rec.Insn.VA)))

		case shapeDefOnly:
			rec.AppendDef(lookup(locals, blockWebs, reg(rec.Insn.VA)))

		case shapeMoveResult:
			rec.AppendUse(lookup(locals, blockWebs, reg(rec.Insn.VA)))
			if prev != nil {
				prev.AppendDef(lookup(locals, blockWebs, reg(rec.Insn.VA)))
			}

		case shapeUseOnlyA:
			rec.AppendUse(lookup(locals, blockWebs, reg(rec.Insn.VA)))

		case shapeInvoke:
			for i := uint32(0); i < rec.Insn.VA && i < uint32(len(rec.Insn.Arg)); i++ {
				rec.AppendUse(lookup(locals, blockWebs, reg(rec.Insn.Arg[i])))
			}

		case shapeInvokeRange:
			for i := uint32(0); i < rec.Insn.VA; i++ {
				rec.AppendUse(lookup(locals, blockWebs, reg(rec.Insn.VC+i)))
			}

		case shapeThreeOperand:
			rec.AppendUse(lookup(locals, blockWebs, reg(rec.Insn.VB)))
			rec.AppendUse(lookup(locals, blockWebs, reg(rec.Insn.VC)))
			rec.AppendDef(lookup(locals, blockWebs, reg(rec.Insn.VA)))

		case shape2AddrBinary:
			rec.AppendUse(lookup(locals, blockWebs, reg(rec.Insn.VA)))
			rec.AppendUse(lookup(locals, blockWebs, reg(rec.Insn.VB)))
			// A fresh web is always created for the def side of a
			// 2addr binary op: the destination register is reused,
			// but its value (and so its identity as a web) changes.
			newDef := web.New(reg(rec.Insn.VA))
			blockWebs[reg(rec.Insn.VA)] = newDef
			rec.AppendDef(newDef)

		case shapeTwoRegNoDef:
			rec.AppendUse(lookup(locals, blockWebs, reg(rec.Insn.VA)))
			rec.AppendUse(lookup(locals, blockWebs, reg(rec.Insn.VB)))

		case shapeAput:
			rec.AppendUse(lookup(locals, blockWebs, reg(rec.Insn.VA)))
			rec.AppendUse(lookup(locals, blockWebs, reg(rec.Insn.VB)))
			rec.AppendUse(lookup(locals, blockWebs, reg(rec.Insn.VC)))
		}

		if err := ResolveDataTypes(rec); err != nil {
			return dalvik.Wrap("AnalyseLiveness", dalvik.KindAnalyseLiveness, err)
		}

		prev = rec
	}

	return nil
}
