package cir

import "github.com/dex2c/dtcjit/web"

// SymbolTable interns C-IR symbols for one method, keyed by their
// rendered name string (value equality, not pointer identity — two
// live webs that render the same name are the same symbol).
type SymbolTable struct {
	vars  map[string]*VarSymbol
	funcs map[string]*FuncSymbol
}

// NewSymbolTable returns an empty table ready for one method's lowering pass.
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{
		vars:  make(map[string]*VarSymbol),
		funcs: make(map[string]*FuncSymbol),
	}
}

// InternVar interns w's name, inserting a fresh VarSymbol on first
// sight, and returns an Id referencing the interned entry.
func (t *SymbolTable) InternVar(w *web.LiveWeb) *Id {
	name := w.Name()
	sym, ok := t.vars[name]
	if !ok {
		sym = &VarSymbol{Web: w}
		t.vars[name] = sym
	}
	return &Id{Symbol: sym}
}

// InternFunc interns a runtime helper function name and returns an Id
// referencing the interned entry.
func (t *SymbolTable) InternFunc(name string) *Id {
	sym, ok := t.funcs[name]
	if !ok {
		sym = &FuncSymbol{Name: name}
		t.funcs[name] = sym
	}
	return &Id{Symbol: sym}
}

// NewConst wraps a constant value as an Id over a fresh ConstSymbol.
// Constants are not interned: each use gets its own symbol, matching
// the source's per-use allocation.
func NewConst(t web.DataType, hi32, lo32 uint32) *Id {
	return &Id{Symbol: &ConstSymbol{Type: t, Hi32: hi32, Lo32: lo32}}
}

// NewLabel wraps a block address as an Id over a LabelSymbol.
func NewLabel(addr uint32) *Id {
	return &Id{Symbol: &LabelSymbol{Addr: addr}}
}
