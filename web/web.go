// Package web implements the block-local live-web identity used by the
// liveness and type-inference stages: one LiveWeb represents a single
// definition-to-use occurrence of a Dalvik virtual register, tagged
// with the JVM type eventually assigned to it by inference.
package web

import "fmt"

// DataType is the inferred JVM type of a live web.
type DataType int

const (
	Unknown DataType = iota
	Boolean
	Byte
	Char
	Short
	Int
	Long
	Float
	Double
	Object

	numTypes
)

var typeChar = [numTypes]byte{
	Unknown: 'x',
	Boolean: 'z',
	Byte:    'b',
	Char:    'c',
	Short:   's',
	Int:     'i',
	Long:    'l',
	Float:   'f',
	Double:  'd',
	Object:  'o',
}

// typeCName is the C-IR cast token for each data type. The cir
// renderer spells its constant and cast tokens itself and does not
// read this table.
var typeCName = [numTypes]string{
	Unknown: "j_unknown",
	Boolean: "j_boolean",
	Byte:    "j_byte",
	Char:    "j_char",
	Short:   "j_short",
	Int:     "j_int",
	Long:    "j_long",
	Float:   "j_float",
	Double:  "j_double",
	Object:  "j_object",
}

// CName returns the C-IR cast spelling for the type, e.g. "j_int".
func (t DataType) CName() string {
	if t < 0 || t >= numTypes {
		return typeCName[Unknown]
	}
	return typeCName[t]
}

// Role flags describe why a web exists, independent of its inferred type.
type Role uint32

const (
	RoleNone     Role = 0
	RoleLocalVar Role = 1 << 0
	RoleFuncArg  Role = 1 << 1
)

// LiveWeb is the identity of one block-local virtual-register
// occurrence. Two instruction records that reference the "same" web
// share a pointer to one LiveWeb value; liveness analysis is
// responsible for deciding when a new LiveWeb is needed versus an
// existing one reused.
type LiveWeb struct {
	Regnum   uint16
	DataType DataType
	Role     Role
}

// New creates a fresh live web for regnum with no role flags and an
// unresolved data type.
func New(regnum uint16) *LiveWeb {
	return &LiveWeb{Regnum: regnum, DataType: Unknown}
}

// NewWithRole creates a fresh live web carrying the given role flags,
// used for webs seeded from the local-variable table (debug info) or
// synthesized for method arguments.
func NewWithRole(regnum uint16, role Role) *LiveWeb {
	return &LiveWeb{Regnum: regnum, DataType: Unknown, Role: role}
}

// IsLocal reports whether the web was seeded from the method's
// debug-info local variable table.
func (w *LiveWeb) IsLocal() bool { return w.Role&RoleLocalVar != 0 }

// IsArgument reports whether the web corresponds to a function argument.
func (w *LiveWeb) IsArgument() bool { return w.Role&RoleFuncArg != 0 }

// SetDataType updates the web's inferred type, refusing to overwrite a
// web known to be a declared local variable (debug-info types win).
func (w *LiveWeb) SetDataType(t DataType) {
	if w.IsLocal() {
		return
	}
	w.DataType = t
}

// Name renders the web's stable identity string, e.g. "vi3". Rendering
// is a pure function of Regnum and DataType so any two LiveWeb values
// describing the same occurrence (by value) render identically,
// matching the symbol table's string-equality key contract.
func (w *LiveWeb) Name() string {
	dt := w.DataType
	if dt < 0 || dt >= numTypes {
		dt = Unknown
	}
	return fmt.Sprintf("v%c%d", typeChar[dt], w.Regnum)
}

func (w *LiveWeb) String() string { return w.Name() }
