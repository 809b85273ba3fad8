package cir_test

import (
	"testing"

	"github.com/dex2c/dtcjit/cir"
	"github.com/dex2c/dtcjit/web"
)

func TestConstSymbolStringPerType(t *testing.T) {
	cases := []struct {
		name string
		sym  cir.ConstSymbol
		want string
	}{
		{"int", cir.ConstSymbol{Type: web.Int, Lo32: 0xFFFFFFFD}, "(j_int)-3"}, // -3 as int32
		{"long", cir.ConstSymbol{Type: web.Long, Hi32: 0, Lo32: 7}, "(j_long)7"},
		{"boolean", cir.ConstSymbol{Type: web.Boolean, Lo32: 1}, "(j_boolean)1"},
		// Float is a numeric cast of the raw low-32 literal, not an
		// IEEE-754 bit reinterpretation: 42 renders as 42.0, not the
		// denormal that Float32frombits(42) would produce.
		{"float", cir.ConstSymbol{Type: web.Float, Lo32: 42}, "(j_float)42.000000"},
		{"object", cir.ConstSymbol{Type: web.Object, Lo32: 0xdeadbeef}, "(j_object)0xDEADBEEF"},
		{"unknown", cir.ConstSymbol{Type: web.Unknown, Hi32: 1, Lo32: 2}, "(Unknown data type)0x0000000100000002"},
	}
	for _, c := range cases {
		if got := c.sym.String(); got != c.want {
			t.Errorf("%s: String() = %q, want %q", c.name, got, c.want)
		}
	}
}

func TestUnaryParenthesizesNonIdOperand(t *testing.T) {
	idOperand := &cir.Unary{Op: cir.UnaryNeg, Operand: &cir.Id{Symbol: &cir.VarSymbol{Web: webAt(0)}}}
	if got, want := idOperand.String(), "-vx0"; got != want {
		t.Errorf("id operand: String() = %q, want %q", got, want)
	}

	nested := &cir.Unary{Op: cir.UnaryNot, Operand: &cir.Binary{
		Op:  cir.BinaryAdd,
		Lhs: &cir.Id{Symbol: &cir.VarSymbol{Web: webAt(0)}},
		Rhs: &cir.Id{Symbol: &cir.VarSymbol{Web: webAt(1)}},
	}}
	if got, want := nested.String(), "!( vx0 + vx1 )"; got != want {
		t.Errorf("nested operand: String() = %q, want %q", got, want)
	}
}

func TestBinaryRendersSpaceSeparated(t *testing.T) {
	b := &cir.Binary{
		Op:  cir.BinaryAdd,
		Lhs: &cir.Id{Symbol: &cir.VarSymbol{Web: webAt(0)}},
		Rhs: &cir.Id{Symbol: &cir.VarSymbol{Web: webAt(1)}},
	}
	if got, want := b.String(), "vx0 + vx1"; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}

func TestCallRendersArgsCommaSeparated(t *testing.T) {
	fn := &cir.Id{Symbol: &cir.FuncSymbol{Name: "cmpg_double"}}
	call := &cir.Call{Func: fn, Args: []cir.Expr{
		&cir.Id{Symbol: &cir.VarSymbol{Web: webAt(0)}},
		&cir.Id{Symbol: &cir.VarSymbol{Web: webAt(1)}},
	}}
	if got, want := call.String(), "cmpg_double(vx0, vx1)"; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}

func TestAssignAndBranchRendering(t *testing.T) {
	lhs := &cir.Id{Symbol: &cir.VarSymbol{Web: webAt(2)}}
	rhs := &cir.Binary{
		Op:  cir.BinaryAdd,
		Lhs: &cir.Id{Symbol: &cir.VarSymbol{Web: webAt(0)}},
		Rhs: &cir.Id{Symbol: &cir.VarSymbol{Web: webAt(1)}},
	}
	assign := &cir.Assign{Lhs: lhs, Rhs: rhs}
	if got, want := assign.String(), "    vx2 = vx0 + vx1;\n"; got != want {
		t.Fatalf("Assign.String() = %q, want %q", got, want)
	}

	callOnly := &cir.Assign{Rhs: &cir.Call{Func: &cir.Id{Symbol: &cir.FuncSymbol{Name: "throw"}}}}
	if got, want := callOnly.String(), "    throw();\n"; got != want {
		t.Fatalf("Assign with nil Lhs: String() = %q, want %q", got, want)
	}

	branch := &cir.Branch{Cond: lhs, Target: cir.NewLabel(4)}
	if got, want := branch.String(), "    if(vx2)\tgoto .L00000004;\n"; got != want {
		t.Fatalf("Branch.String() = %q, want %q", got, want)
	}
}

func TestSymbolTableInternsVarsByRenderedName(t *testing.T) {
	tab := cir.NewSymbolTable()
	w1 := webAt(3)
	w2 := webAt(3) // distinct web, same register -> same rendered name

	id1 := tab.InternVar(w1)
	id2 := tab.InternVar(w2)

	if id1.Symbol != id2.Symbol {
		t.Fatal("two webs rendering the same name should intern to the same symbol")
	}

	fn1 := tab.InternFunc("new_instance")
	fn2 := tab.InternFunc("new_instance")
	if fn1.Symbol != fn2.Symbol {
		t.Fatal("interning the same function name twice should return the same symbol")
	}
}

func TestNewConstNotInterned(t *testing.T) {
	a := cir.NewConst(web.Int, 0, 1)
	b := cir.NewConst(web.Int, 0, 1)
	if a.Symbol == b.Symbol {
		t.Fatal("constants should not be interned: each call should allocate a fresh symbol")
	}
}

func webAt(reg uint16) *web.LiveWeb {
	return web.New(reg)
}
