package main

import "github.com/dex2c/dtcjit/dalvik"

// blobDexFile is a minimal DexFile stand-in for the CLI's raw
// instruction-blob input format, which carries no constant pool: string
// lookups ignore the requested index and return fixed placeholders
// ("method" for names, "()V" for descriptors, "" for type names).
type blobDexFile struct{}

func (blobDexFile) GetMethodID(index uint32) dalvik.MethodID { return dalvik.MethodID(index) }

func (blobDexFile) StringByTypeIdx(idx uint32) string { return "" }

func (blobDexFile) StringByID(idx uint32) string { return "method" }

func (blobDexFile) CopyDescriptorFromMethodID(id dalvik.MethodID) string { return "()V" }

// noDebugInfo supplies dalvik.DecodeDebugInfo for blobs that carry no
// local-variable stream: the method-global local-variable table is
// always empty.
func noDebugInfo(m *dalvik.Method, cb dalvik.LocalVarCallback) error { return nil }

// decodeBlob turns a raw little-endian byte blob into the uint16 code
// unit stream the pipeline expects.
func decodeBlob(data []byte) []uint16 {
	insns := make([]uint16, len(data)/2)
	for i := range insns {
		insns[i] = uint16(data[2*i]) | uint16(data[2*i+1])<<8
	}
	return insns
}

func methodFromBlob(data []byte) *dalvik.Method {
	insns := decodeBlob(data)
	return &dalvik.Method{
		DexFile: blobDexFile{},
		DexCode: &dalvik.Code{
			Insns:     insns,
			InsnsSize: uint32(len(insns)),
		},
		DexMethodIndex: 0,
	}
}
