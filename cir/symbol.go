// Package cir implements the C intermediate representation the
// lowering stage emits and the rendering stage turns into text:
// symbols, expressions and statements over a small deterministic
// grammar, matching the output format fixed by the host interface.
package cir

import (
	"fmt"

	"github.com/dex2c/dtcjit/web"
)

// Symbol is any interned name the IR can reference from an Id
// expression: a variable bound to a live web, a runtime function, a
// constant, or a block label.
type Symbol interface {
	fmt.Stringer
	isSymbol()
}

// VarSymbol binds a C-IR identifier to the live web whose Name()
// supplies its spelling.
type VarSymbol struct {
	Web *web.LiveWeb
}

func (s *VarSymbol) isSymbol() {}

func (s *VarSymbol) String() string { return s.Web.Name() }

// FuncSymbol names a runtime helper invoked by a Call expression, e.g.
// "new_instance" or "cmpg_double".
type FuncSymbol struct {
	Name string
}

func (s *FuncSymbol) isSymbol() {}

func (s *FuncSymbol) String() string { return s.Name }

// ConstSymbol is a typed literal. Wide types reconstruct their value
// as (hi32<<32)|lo32; object constants render as a hex pointer literal.
type ConstSymbol struct {
	Type web.DataType
	Hi32 uint32
	Lo32 uint32
}

func (s *ConstSymbol) isSymbol() {}

func (s *ConstSymbol) String() string {
	switch s.Type {
	case web.Boolean:
		return fmt.Sprintf("(j_boolean)%d", int32(s.Lo32))
	case web.Byte:
		return fmt.Sprintf("(j_byte)%d", int8(int32(s.Lo32)))
	case web.Char:
		return fmt.Sprintf("(j_char)%d", uint16(s.Lo32))
	case web.Short:
		return fmt.Sprintf("(j_short)%d", int16(int32(s.Lo32)))
	case web.Int:
		return fmt.Sprintf("(j_int)%d", int32(s.Lo32))
	case web.Long:
		return fmt.Sprintf("(j_long)%d", int64(uint64(s.Hi32)<<32|uint64(s.Lo32)))
	case web.Float:
		// Numeric cast, not a bit reinterpretation: the original casts
		// m_nLow32 straight to C's "float", it never reads it through
		// a float* the way J_DOUBLE does below.
		return fmt.Sprintf("(j_float)%f", float32(s.Lo32))
	case web.Double:
		return fmt.Sprintf("(j_double)%f", float64FromBits(s.Hi32, s.Lo32))
	case web.Object:
		return fmt.Sprintf("(j_object)0x%08X", s.Lo32)
	default:
		return fmt.Sprintf("(Unknown data type)0x%08X%08X", s.Hi32, s.Lo32)
	}
}

// LabelSymbol names a basic block by its start address.
type LabelSymbol struct {
	Addr uint32
}

func (s *LabelSymbol) isSymbol() {}

func (s *LabelSymbol) String() string { return fmt.Sprintf(".L%08X", s.Addr) }
