package translate_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/dex2c/dtcjit/dalvik"
	"github.com/dex2c/dtcjit/translate"
)

type fakeDexFile struct{ name string }

func (f fakeDexFile) GetMethodID(index uint32) dalvik.MethodID { return dalvik.MethodID(index) }
func (f fakeDexFile) StringByTypeIdx(idx uint32) string         { return "LFake;" }
func (f fakeDexFile) StringByID(idx uint32) string              { return f.name }
func (f fakeDexFile) CopyDescriptorFromMethodID(id dalvik.MethodID) string {
	return "(II)I"
}

// add-int v2, v0, v1; return v2. Lowering stops after the add (return
// has no dispatch-table entry), so the rendered body is exactly the
// one binary-assign statement.
func TestTranslateRendersPrologueBodyEpilogue(t *testing.T) {
	insns := []uint16{
		uint16(dalvik.OpAddInt) | 2<<8,
		1<<8 | 0,
		uint16(dalvik.OpReturn) | 2<<8,
	}
	dex := &dalvik.Method{
		DexFile: fakeDexFile{name: "add"},
		DexCode: &dalvik.Code{Insns: insns, InsnsSize: uint32(len(insns))},
	}

	m, err := translate.Translate(dex, nil)
	if err != nil {
		t.Fatalf("Translate: %v", err)
	}

	want := "Method Prologue [add] -------------\n" +
		".L00000000:\n" +
		"    vi2 = vi0 + vi1;\n" +
		"Method Epilogue -----------------------------\n"
	if got := m.String(); got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}

func TestTranslatePropagatesPipelineError(t *testing.T) {
	insns := []uint16{
		uint16(dalvik.OpShrInt) | 2<<8,
		1<<8 | 0,
	}
	dex := &dalvik.Method{
		DexFile: fakeDexFile{name: "bad"},
		DexCode: &dalvik.Code{Insns: insns, InsnsSize: uint32(len(insns))},
	}

	if _, err := translate.Translate(dex, nil); err == nil {
		t.Fatal("Translate should fail for a method using an unsupported opcode")
	}
}

func TestDumpWritesRenderedText(t *testing.T) {
	insns := []uint16{
		uint16(dalvik.OpAddInt) | 2<<8,
		1<<8 | 0,
		uint16(dalvik.OpReturn) | 2<<8,
	}
	dex := &dalvik.Method{
		DexFile: fakeDexFile{name: "add"},
		DexCode: &dalvik.Code{Insns: insns, InsnsSize: uint32(len(insns))},
	}
	m, err := translate.Translate(dex, nil)
	if err != nil {
		t.Fatalf("Translate: %v", err)
	}

	out := filepath.Join(t.TempDir(), "rendered.c")
	if err := translate.Dump(m, out); err != nil {
		t.Fatalf("Dump: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(data) != m.String() {
		t.Fatalf("dumped file contents differ from m.String()")
	}
}

// scenario 6: const-wide/16 has no type-rule entry of its own, so the
// destination register must already carry a type from the method's
// local-variable table for the rendered constant to show it.
func TestTranslateConstWide16UsesDebugInfoSeededType(t *testing.T) {
	insns := []uint16{
		uint16(dalvik.OpConstWide16) | 0<<8, // const-wide/16 v0, #5
		5,
	}
	dex := &dalvik.Method{
		DexFile: fakeDexFile{name: "wide"},
		DexCode: &dalvik.Code{Insns: insns, InsnsSize: uint32(len(insns))},
	}

	decode := func(m *dalvik.Method, cb dalvik.LocalVarCallback) error {
		cb(0, 0, uint32(len(insns)), "x", "J", "")
		return nil
	}

	m, err := translate.Translate(dex, decode)
	if err != nil {
		t.Fatalf("Translate: %v", err)
	}

	want := "Method Prologue [wide] -------------\n" +
		".L00000000:\n" +
		"    vl0 = (j_long)5;\n" +
		"Method Epilogue -----------------------------\n"
	if got := m.String(); got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}
