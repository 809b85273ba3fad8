package lower_test

import (
	"testing"

	"github.com/dex2c/dtcjit/block"
	"github.com/dex2c/dtcjit/cir"
	"github.com/dex2c/dtcjit/dalvik"
	"github.com/dex2c/dtcjit/lower"
	"github.com/dex2c/dtcjit/web"
)

func typedWeb(reg uint16, t web.DataType) *web.LiveWeb {
	w := web.New(reg)
	w.SetDataType(t)
	return w
}

func TestLowerBlockAddIntRendersBinaryAssign(t *testing.T) {
	rec := &block.InstructionRecord{
		Insn:    dalvik.Instruction{Opcode: dalvik.OpAddInt, VA: 2, VB: 0, VC: 1},
		DefWebs: []*web.LiveWeb{typedWeb(2, web.Int)},
		UseWebs: []*web.LiveWeb{typedWeb(0, web.Int), typedWeb(1, web.Int)},
	}
	b := &block.BasicBlock{Records: []*block.InstructionRecord{rec}}

	out := lower.LowerBlock(b, cir.NewSymbolTable())
	if len(out.Stmts) != 1 {
		t.Fatalf("len(Stmts) = %d, want 1", len(out.Stmts))
	}
	if got, want := out.Stmts[0].String(), "    vi2 = vi0 + vi1;\n"; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}

func TestLowerBlockConstWide16(t *testing.T) {
	rec := &block.InstructionRecord{
		Insn:    dalvik.Instruction{Opcode: dalvik.OpConstWide16, VA: 0, VB: 5},
		DefWebs: []*web.LiveWeb{typedWeb(0, web.Long)},
	}
	b := &block.BasicBlock{Records: []*block.InstructionRecord{rec}}

	out := lower.LowerBlock(b, cir.NewSymbolTable())
	if got, want := out.Stmts[0].String(), "    vl0 = (j_long)5;\n"; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}

func TestLowerBlockCmpgDouble(t *testing.T) {
	rec := &block.InstructionRecord{
		Insn:    dalvik.Instruction{Opcode: dalvik.OpCmpgDouble, VA: 4, VB: 0, VC: 2},
		DefWebs: []*web.LiveWeb{typedWeb(4, web.Int)},
		UseWebs: []*web.LiveWeb{typedWeb(0, web.Double), typedWeb(2, web.Double)},
	}
	b := &block.BasicBlock{Records: []*block.InstructionRecord{rec}}

	out := lower.LowerBlock(b, cir.NewSymbolTable())
	if got, want := out.Stmts[0].String(), "    vi4 = cmpg_double(vd0, vd2);\n"; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}

func TestLowerBlockIfGezBranchesToComputedTarget(t *testing.T) {
	rec := &block.InstructionRecord{
		Insn:     dalvik.Instruction{Opcode: dalvik.OpIfGez, VA: 0, VB: 4},
		InsnAddr: 0,
		UseWebs:  []*web.LiveWeb{typedWeb(0, web.Int)},
	}
	b := &block.BasicBlock{Records: []*block.InstructionRecord{rec}}

	out := lower.LowerBlock(b, cir.NewSymbolTable())
	if got, want := out.Stmts[0].String(), "    if(vi0 >= (j_int)0)\tgoto .L00000004;\n"; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}

// A record whose opcode is absent from the dispatch table stops
// lowering for the rest of the block without error: only the statement
// for the preceding, known record survives.
func TestLowerBlockStopsAtUnknownOpcode(t *testing.T) {
	known := &block.InstructionRecord{
		Insn:    dalvik.Instruction{Opcode: dalvik.OpAddInt, VA: 2, VB: 0, VC: 1},
		DefWebs: []*web.LiveWeb{typedWeb(2, web.Int)},
		UseWebs: []*web.LiveWeb{typedWeb(0, web.Int), typedWeb(1, web.Int)},
	}
	unknown := &block.InstructionRecord{
		Insn: dalvik.Instruction{Opcode: dalvik.OpNop},
	}
	trailing := &block.InstructionRecord{
		Insn:    dalvik.Instruction{Opcode: dalvik.OpAddInt, VA: 5, VB: 3, VC: 4},
		DefWebs: []*web.LiveWeb{typedWeb(5, web.Int)},
		UseWebs: []*web.LiveWeb{typedWeb(3, web.Int), typedWeb(4, web.Int)},
	}
	b := &block.BasicBlock{Records: []*block.InstructionRecord{known, unknown, trailing}}

	out := lower.LowerBlock(b, cir.NewSymbolTable())
	if len(out.Stmts) != 1 {
		t.Fatalf("len(Stmts) = %d, want 1 (lowering should stop at the unknown opcode)", len(out.Stmts))
	}
}

func TestLowerBlockInternsSharedSymbol(t *testing.T) {
	w0 := typedWeb(0, web.Int)
	rec1 := &block.InstructionRecord{
		Insn:    dalvik.Instruction{Opcode: dalvik.OpAddInt, VA: 2, VB: 0, VC: 1},
		DefWebs: []*web.LiveWeb{typedWeb(2, web.Int)},
		UseWebs: []*web.LiveWeb{w0, typedWeb(1, web.Int)},
	}
	rec2 := &block.InstructionRecord{
		Insn:    dalvik.Instruction{Opcode: dalvik.OpSubInt, VA: 3, VB: 0, VC: 1},
		DefWebs: []*web.LiveWeb{typedWeb(3, web.Int)},
		UseWebs: []*web.LiveWeb{w0, typedWeb(1, web.Int)},
	}
	b := &block.BasicBlock{Records: []*block.InstructionRecord{rec1, rec2}}

	symtab := cir.NewSymbolTable()
	out := lower.LowerBlock(b, symtab)
	if len(out.Stmts) != 2 {
		t.Fatalf("len(Stmts) = %d, want 2", len(out.Stmts))
	}

	a1, ok1 := out.Stmts[0].(*cir.Assign)
	a2, ok2 := out.Stmts[1].(*cir.Assign)
	if !ok1 || !ok2 {
		t.Fatal("both statements should be *cir.Assign")
	}
	use1 := a1.Rhs.(*cir.Binary).Lhs.(*cir.Id).Symbol
	use2 := a2.Rhs.(*cir.Binary).Lhs.(*cir.Id).Symbol
	if use1 != use2 {
		t.Fatal("both uses of register 0 should intern to the same symbol")
	}
}
