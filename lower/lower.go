// Package lower dispatches each decoded instruction record to a C-IR
// statement, per the opcode-to-shape table fixed by the host
// interface. Dispatch is data-driven: one table maps an opcode to the
// closure that builds its statement, rather than a per-opcode switch.
package lower

import (
	"github.com/dex2c/dtcjit/block"
	"github.com/dex2c/dtcjit/cir"
	"github.com/dex2c/dtcjit/dalvik"
	"github.com/dex2c/dtcjit/web"
)

type lowerFunc func(rec *block.InstructionRecord, addr uint32, symtab *cir.SymbolTable) cir.Stmt

func defVar(rec *block.InstructionRecord, i int, symtab *cir.SymbolTable) *cir.Id {
	w := rec.DefWeb(i)
	if w == nil {
		return nil
	}
	return symtab.InternVar(w)
}

func useVar(rec *block.InstructionRecord, i int, symtab *cir.SymbolTable) *cir.Id {
	w := rec.UseWeb(i)
	if w == nil {
		return nil
	}
	return symtab.InternVar(w)
}

func defType(rec *block.InstructionRecord, i int) web.DataType {
	if w := rec.DefWeb(i); w != nil {
		return w.DataType
	}
	return web.Unknown
}

func lowerConstWide16(rec *block.InstructionRecord, addr uint32, symtab *cir.SymbolTable) cir.Stmt {
	return &cir.Assign{
		Lhs: defVar(rec, 0, symtab),
		Rhs: cir.NewConst(defType(rec, 0), 0, rec.Insn.VB),
	}
}

func lowerIntToDouble(rec *block.InstructionRecord, addr uint32, symtab *cir.SymbolTable) cir.Stmt {
	return &cir.Assign{
		Lhs: defVar(rec, 0, symtab),
		Rhs: &cir.Unary{Op: cir.UnaryI2D, Operand: useVar(rec, 0, symtab)},
	}
}

func lowerBinary(op cir.BinaryOp) lowerFunc {
	return func(rec *block.InstructionRecord, addr uint32, symtab *cir.SymbolTable) cir.Stmt {
		return &cir.Assign{
			Lhs: defVar(rec, 0, symtab),
			Rhs: &cir.Binary{Op: op, Lhs: useVar(rec, 0, symtab), Rhs: useVar(rec, 1, symtab)},
		}
	}
}

func lowerCmpgDouble(rec *block.InstructionRecord, addr uint32, symtab *cir.SymbolTable) cir.Stmt {
	fn := symtab.InternFunc("cmpg_double")
	return &cir.Assign{
		Lhs: defVar(rec, 0, symtab),
		Rhs: &cir.Call{Func: fn, Args: []cir.Expr{useVar(rec, 0, symtab), useVar(rec, 1, symtab)}},
	}
}

func lowerIfGez(rec *block.InstructionRecord, addr uint32, symtab *cir.SymbolTable) cir.Stmt {
	target := addr + uint32(int32(rec.Insn.VB))
	return &cir.Branch{
		Cond:   &cir.Binary{Op: cir.BinaryGe, Lhs: useVar(rec, 0, symtab), Rhs: cir.NewConst(web.Int, 0, 0)},
		Target: cir.NewLabel(target),
	}
}

func lowerNewInstance(rec *block.InstructionRecord, addr uint32, symtab *cir.SymbolTable) cir.Stmt {
	fn := symtab.InternFunc("new_instance")
	return &cir.Assign{
		Lhs: defVar(rec, 0, symtab),
		Rhs: &cir.Call{Func: fn, Args: []cir.Expr{cir.NewConst(web.Int, 0, rec.Insn.VB)}},
	}
}

func lowerInvokeDirect(rec *block.InstructionRecord, addr uint32, symtab *cir.SymbolTable) cir.Stmt {
	fn := symtab.InternFunc("invoke_direct")
	args := make([]cir.Expr, 0, 1+len(rec.UseWebs))
	args = append(args, cir.NewConst(web.Int, 0, rec.Insn.VB))
	for i := range rec.UseWebs {
		args = append(args, useVar(rec, i, symtab))
	}
	return &cir.Assign{
		Lhs: defVar(rec, 0, symtab),
		Rhs: &cir.Call{Func: fn, Args: args},
	}
}

var lowerTable = map[dalvik.Opcode]lowerFunc{
	dalvik.OpConstWide16: lowerConstWide16,
	dalvik.OpIntToDouble: lowerIntToDouble,

	dalvik.OpAddInt:    lowerBinary(cir.BinaryAdd),
	dalvik.OpSubInt:    lowerBinary(cir.BinarySub),
	dalvik.OpMulInt:    lowerBinary(cir.BinaryMul),
	dalvik.OpDivInt:    lowerBinary(cir.BinaryDiv),
	dalvik.OpRemInt:    lowerBinary(cir.BinaryRem),
	dalvik.OpAddLong:   lowerBinary(cir.BinaryAdd),
	dalvik.OpSubLong:   lowerBinary(cir.BinarySub),
	dalvik.OpMulLong:   lowerBinary(cir.BinaryMul),
	dalvik.OpDivLong:   lowerBinary(cir.BinaryDiv),
	dalvik.OpRemLong:   lowerBinary(cir.BinaryRem),
	dalvik.OpAddFloat:  lowerBinary(cir.BinaryAdd),
	dalvik.OpSubFloat:  lowerBinary(cir.BinarySub),
	dalvik.OpMulFloat:  lowerBinary(cir.BinaryMul),
	dalvik.OpDivFloat:  lowerBinary(cir.BinaryDiv),
	dalvik.OpRemFloat:  lowerBinary(cir.BinaryRem),
	dalvik.OpAddDouble: lowerBinary(cir.BinaryAdd),
	dalvik.OpSubDouble: lowerBinary(cir.BinarySub),
	dalvik.OpMulDouble: lowerBinary(cir.BinaryMul),
	dalvik.OpDivDouble: lowerBinary(cir.BinaryDiv),
	dalvik.OpRemDouble: lowerBinary(cir.BinaryRem),

	dalvik.OpAndInt:  lowerBinary(cir.BinaryAnd),
	dalvik.OpOrInt:   lowerBinary(cir.BinaryOr),
	dalvik.OpXorInt:  lowerBinary(cir.BinaryXor),
	dalvik.OpShlInt:  lowerBinary(cir.BinaryShl),
	dalvik.OpShrInt:  lowerBinary(cir.BinaryShr),
	dalvik.OpUshrInt: lowerBinary(cir.BinaryUshr),
	dalvik.OpAndLong: lowerBinary(cir.BinaryAnd),
	dalvik.OpOrLong:  lowerBinary(cir.BinaryOr),
	dalvik.OpXorLong: lowerBinary(cir.BinaryXor),
	dalvik.OpShlLong: lowerBinary(cir.BinaryShl),
	dalvik.OpShrLong: lowerBinary(cir.BinaryShr),
	dalvik.OpUshrLong: lowerBinary(cir.BinaryUshr),

	dalvik.OpCmpgDouble: lowerCmpgDouble,

	dalvik.OpIfGez: lowerIfGez,

	dalvik.OpNewInstance: lowerNewInstance,

	dalvik.OpInvokeDirect: lowerInvokeDirect,
}

// LowerBlock dispatches every record in b to its statement, in
// instruction order. An opcode absent from the dispatch table stops
// lowering for the rest of the block; this is not an error (§9): the
// partial block is returned as-is.
func LowerBlock(b *block.BasicBlock, symtab *cir.SymbolTable) *cir.Block {
	out := &cir.Block{Addr: b.StartAddr}

	for _, rec := range b.Records {
		fn, ok := lowerTable[rec.Insn.Opcode]
		if !ok {
			break
		}
		if stmt := fn(rec, rec.InsnAddr, symtab); stmt != nil {
			out.Stmts = append(out.Stmts, stmt)
		}
	}

	return out
}
