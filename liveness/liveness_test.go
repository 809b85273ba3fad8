package liveness_test

import (
	"errors"
	"testing"

	"github.com/dex2c/dtcjit/block"
	"github.com/dex2c/dtcjit/dalvik"
	"github.com/dex2c/dtcjit/liveness"
	"github.com/dex2c/dtcjit/web"
)

func rec(op dalvik.Opcode, va, vb, vc uint32) *block.InstructionRecord {
	return &block.InstructionRecord{Insn: dalvik.Instruction{Opcode: op, VA: va, VB: vb, VC: vc}}
}

func TestAnalyseThreeOperandAssignsWebsAndInfersIntType(t *testing.T) {
	b := &block.BasicBlock{Records: []*block.InstructionRecord{
		rec(dalvik.OpAddInt, 2, 0, 1),
	}}

	if err := liveness.Analyse(b, nil); err != nil {
		t.Fatalf("Analyse: %v", err)
	}

	r := b.Records[0]
	if len(r.DefWebs) != 1 || len(r.UseWebs) != 2 {
		t.Fatalf("def/use counts = %d/%d, want 1/2", len(r.DefWebs), len(r.UseWebs))
	}
	if r.DefWeb(0).DataType != web.Int {
		t.Fatalf("def type = %v, want Int", r.DefWeb(0).DataType)
	}
	if r.UseWeb(0).DataType != web.Int || r.UseWeb(1).DataType != web.Int {
		t.Fatalf("use types = %v,%v, want Int,Int", r.UseWeb(0).DataType, r.UseWeb(1).DataType)
	}
}

// const-wide/16 has no entry in the type-rule table (matching the
// original ResolveDataTypes, which never types OP_CONST_WIDE_16): its
// def web is created but left at the zero DataType.
func TestAnalyseConstWide16LeavesTypeUnset(t *testing.T) {
	b := &block.BasicBlock{Records: []*block.InstructionRecord{
		rec(dalvik.OpConstWide16, 0, 0, 0),
	}}

	if err := liveness.Analyse(b, nil); err != nil {
		t.Fatalf("Analyse: %v", err)
	}

	r := b.Records[0]
	if len(r.DefWebs) != 1 {
		t.Fatalf("len(DefWebs) = %d, want 1", len(r.DefWebs))
	}
	if r.DefWeb(0).DataType != web.Unknown {
		t.Fatalf("DataType = %v, want Unknown", r.DefWeb(0).DataType)
	}
}

func TestAnalyseMoveResultBackPatchesPreviousDef(t *testing.T) {
	b := &block.BasicBlock{Records: []*block.InstructionRecord{
		rec(dalvik.OpNop, 0, 0, 0),
		rec(dalvik.OpMoveResult, 1, 0, 0),
	}}

	if err := liveness.Analyse(b, nil); err != nil {
		t.Fatalf("Analyse: %v", err)
	}

	prev, cur := b.Records[0], b.Records[1]
	if len(prev.DefWebs) != 1 {
		t.Fatalf("prev.DefWebs = %d, want 1", len(prev.DefWebs))
	}
	if len(cur.UseWebs) != 1 {
		t.Fatalf("cur.UseWebs = %d, want 1", len(cur.UseWebs))
	}
	if prev.DefWeb(0) != cur.UseWeb(0) {
		t.Fatal("back-patched def web should be the same web as move-result's use web")
	}
}

func TestAnalyseCastRuleSetsUseAndDefTypes(t *testing.T) {
	b := &block.BasicBlock{Records: []*block.InstructionRecord{
		rec(dalvik.OpIntToDouble, 0, 1, 0), // use vB=1, def vA=0
	}}

	if err := liveness.Analyse(b, nil); err != nil {
		t.Fatalf("Analyse: %v", err)
	}

	r := b.Records[0]
	if r.UseWeb(0).DataType != web.Int {
		t.Fatalf("use type = %v, want Int", r.UseWeb(0).DataType)
	}
	if r.DefWeb(0).DataType != web.Double {
		t.Fatalf("def type = %v, want Double", r.DefWeb(0).DataType)
	}
}

func TestAnalyseCmpRuleTypesOperandsAndIntResult(t *testing.T) {
	b := &block.BasicBlock{Records: []*block.InstructionRecord{
		rec(dalvik.OpCmpgDouble, 4, 0, 2),
	}}

	if err := liveness.Analyse(b, nil); err != nil {
		t.Fatalf("Analyse: %v", err)
	}

	r := b.Records[0]
	if r.UseWeb(0).DataType != web.Double || r.UseWeb(1).DataType != web.Double {
		t.Fatalf("use types = %v,%v, want Double,Double", r.UseWeb(0).DataType, r.UseWeb(1).DataType)
	}
	if r.DefWeb(0).DataType != web.Int {
		t.Fatalf("def type = %v, want Int", r.DefWeb(0).DataType)
	}
}

func TestAnalyseUnknownOpcodeReturnsErrUnknownOpcode(t *testing.T) {
	// shr-int is deliberately absent from the shape table.
	b := &block.BasicBlock{Records: []*block.InstructionRecord{
		rec(dalvik.OpShrInt, 2, 0, 1),
	}}

	err := liveness.Analyse(b, nil)
	if !errors.Is(err, dalvik.ErrUnknownOpcode) {
		t.Fatalf("err = %v, want ErrUnknownOpcode", err)
	}
}

func TestAnalyseLocalsTableWinsOverBlockScopedWeb(t *testing.T) {
	seeded := web.NewWithRole(0, web.RoleLocalVar)
	seeded.DataType = web.Long
	locals := map[uint16]*web.LiveWeb{0: seeded}

	b := &block.BasicBlock{Records: []*block.InstructionRecord{
		rec(dalvik.OpMove, 1, 0, 0), // use vB=0, def vA=1
	}}

	if err := liveness.Analyse(b, locals); err != nil {
		t.Fatalf("Analyse: %v", err)
	}

	r := b.Records[0]
	if r.UseWeb(0) != seeded {
		t.Fatal("use web for register 0 should be the seeded local, not a fresh block-scoped web")
	}
	// OpMove is rulePropagate: def inherits use's type.
	if r.DefWeb(0).DataType != web.Long {
		t.Fatalf("def type = %v, want Long (propagated from seeded local)", r.DefWeb(0).DataType)
	}
}
