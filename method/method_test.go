package method_test

import (
	"errors"
	"testing"

	"github.com/dex2c/dtcjit/dalvik"
	"github.com/dex2c/dtcjit/method"
)

type fakeDexFile struct{}

func (fakeDexFile) GetMethodID(index uint32) dalvik.MethodID { return dalvik.MethodID(index) }
func (fakeDexFile) StringByTypeIdx(idx uint32) string         { return "LFake;" }
func (fakeDexFile) StringByID(idx uint32) string              { return "fakeMethod" }
func (fakeDexFile) CopyDescriptorFromMethodID(id dalvik.MethodID) string {
	return "()I"
}

func TestNameAndDescriptorResolveThroughDexFile(t *testing.T) {
	m := method.New(&dalvik.Method{DexFile: fakeDexFile{}, DexMethodIndex: 0})
	if got, want := m.Name(), "fakeMethod"; got != want {
		t.Fatalf("Name() = %q, want %q", got, want)
	}
	if got, want := m.Descriptor(), "()I"; got != want {
		t.Fatalf("Descriptor() = %q, want %q", got, want)
	}
}

func TestNameEmptyWithoutDex(t *testing.T) {
	m := method.New(nil)
	if got := m.Name(); got != "" {
		t.Fatalf("Name() = %q, want empty", got)
	}
}

func TestBuildIRNilDexReturnsInvalidParameter(t *testing.T) {
	m := method.New(nil)
	err := m.BuildIR(nil)
	if !errors.Is(err, dalvik.ErrInvalidParameter) {
		t.Fatalf("err = %v, want ErrInvalidParameter", err)
	}
}

// add-int v2, v0, v1; return v2 — a linear method body with no
// branches, so BuildIR should succeed with one basic block.
func TestBuildIRSucceedsForLinearMethod(t *testing.T) {
	insns := []uint16{
		uint16(dalvik.OpAddInt) | 2<<8,
		1<<8 | 0,
		uint16(dalvik.OpReturn) | 2<<8,
	}
	dex := &dalvik.Method{
		DexFile: fakeDexFile{},
		DexCode: &dalvik.Code{Insns: insns, InsnsSize: uint32(len(insns))},
	}
	m := method.New(dex)

	if err := m.BuildIR(nil); err != nil {
		t.Fatalf("BuildIR: %v", err)
	}
	if len(m.Blocks) != 1 {
		t.Fatalf("len(Blocks) = %d, want 1", len(m.Blocks))
	}
	if len(m.Blocks[0].Records) != 2 {
		t.Fatalf("len(Records) = %d, want 2", len(m.Blocks[0].Records))
	}
	if m.Blocks[0].Records[0].DefWeb(0) == nil {
		t.Fatal("add-int's def web should be populated by AnalyseLiveness")
	}
}

// shr-int is deliberately absent from the liveness shape table, so
// BuildIR should abort at the liveness stage with ErrUnknownOpcode.
func TestBuildIRPropagatesUnknownOpcodeFromLiveness(t *testing.T) {
	insns := []uint16{
		uint16(dalvik.OpShrInt) | 2<<8,
		1<<8 | 0,
	}
	dex := &dalvik.Method{
		DexFile: fakeDexFile{},
		DexCode: &dalvik.Code{Insns: insns, InsnsSize: uint32(len(insns))},
	}
	m := method.New(dex)

	err := m.BuildIR(nil)
	if !errors.Is(err, dalvik.ErrUnknownOpcode) {
		t.Fatalf("err = %v, want ErrUnknownOpcode", err)
	}
}
