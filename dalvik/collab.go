package dalvik

// TryRegion is one exception try-block entry: the set of addresses
// [StartAddr, StartAddr+InsnCount) is protected by a handler, whose
// catch address is itself a leader.
type TryRegion struct {
	StartAddr uint32
	InsnCount uint32
}

// Code is the host-supplied raw bytecode for one method body: the
// decoded-unit stream plus its exception table. It mirrors the
// DexCode collaborator named in the external-interfaces contract.
type Code struct {
	Insns     []uint16
	InsnsSize uint32
	Tries     []TryRegion
}

// MethodID is an opaque handle into a DexFile's method-id pool.
type MethodID uint32

// DexFile is the minimal slice of a host dex-file reader the pipeline
// needs: resolving a method's name and descriptor strings.
type DexFile interface {
	GetMethodID(index uint32) MethodID
	StringByTypeIdx(idx uint32) string
	StringByID(idx uint32) string
	CopyDescriptorFromMethodID(id MethodID) string
}

// Method is the host-supplied handle to the method being translated.
type Method struct {
	ClassHandle     uint32
	DexFile         DexFile
	DexCode         *Code
	MethodIndex     uint32
	DexMethodIndex  uint32
	NameStr         string
	AccessFlags     uint32
}

// LocalVarCallback receives one local-variable entry decoded from a
// method's debug-info stream. Reg is the virtual register holding the
// variable for the address range [StartAddr, EndAddr).
type LocalVarCallback func(reg uint16, startAddr, endAddr uint32, name, descriptor, signature string)

// DecodeDebugInfo adapts the host's callback-shaped debug-info decoder:
// implementations walk a method's debug-info stream and invoke cb once
// per local-variable entry. The host owns the actual stream format; the
// pipeline only needs this shape to build its local-variable table.
type DecodeDebugInfo func(m *Method, cb LocalVarCallback) error
