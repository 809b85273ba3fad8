// Package debuginfo adapts the host's callback-shaped debug-info
// decoder into the method-global local-variable table the liveness
// stage consults before falling back to a block-scoped web.
package debuginfo

import (
	"github.com/dex2c/dtcjit/dalvik"
	"github.com/dex2c/dtcjit/web"
)

// Table maps a virtual register number to the live web seeded for it
// by the method's debug-info local-variable stream.
type Table map[uint16]*web.LiveWeb

// descriptorType maps a JNI type descriptor's leading character to the
// data type recorded on the seeded web. Array and object descriptors
// ('[' and 'L') both resolve to Object; anything else is left Unknown.
func descriptorType(descriptor string) web.DataType {
	if descriptor == "" {
		return web.Unknown
	}
	switch descriptor[0] {
	case 'Z':
		return web.Boolean
	case 'B':
		return web.Byte
	case 'C':
		return web.Char
	case 'S':
		return web.Short
	case 'I':
		return web.Int
	case 'J':
		return web.Long
	case 'F':
		return web.Float
	case 'D':
		return web.Double
	case '[', 'L':
		return web.Object
	default:
		return web.Unknown
	}
}

// Resolve runs the host's debug-info decoder over m and builds the
// method-global local-variable table: one LiveWeb per distinct
// register mentioned, flagged RoleLocalVar always, and additionally
// RoleFuncArg when the entry's validity starts at address 0 (i.e. the
// variable is live on method entry, meaning it is a parameter).
func Resolve(m *dalvik.Method, decode dalvik.DecodeDebugInfo) (Table, error) {
	table := make(Table)
	if decode == nil {
		return table, nil
	}

	err := decode(m, func(reg uint16, startAddr, endAddr uint32, name, descriptor, signature string) {
		role := web.RoleLocalVar
		if startAddr == 0 {
			role |= web.RoleFuncArg
		}
		w := web.NewWithRole(reg, role)
		w.DataType = descriptorType(descriptor)
		table[reg] = w
	})
	if err != nil {
		return nil, dalvik.Wrap("ResolveLocalVariables", dalvik.KindResolveLocalVars, err)
	}
	return table, nil
}
