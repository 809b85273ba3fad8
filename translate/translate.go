// Package translate is the top-level entry point: it drives one
// dalvik.Method through the full pipeline and renders the resulting
// C-IR, bracketed by a prologue/epilogue banner.
package translate

import (
	"fmt"
	"io/ioutil"

	"github.com/dex2c/dtcjit/cir"
	"github.com/dex2c/dtcjit/dalvik"
	"github.com/dex2c/dtcjit/lower"
	"github.com/dex2c/dtcjit/method"
)

// DefaultDumpPath is the CLI dump entry's default output file.
const DefaultDumpPath = "./dtcjit.out.tmp"

// Method is the rendered translation unit for one method: its C-IR
// blocks, bracketed by a named prologue and a fixed epilogue banner.
type Method struct {
	Name string
	CIR  *cir.Method
}

// RenderPrologue returns the banner line preceding the method's blocks.
func (m *Method) RenderPrologue() string {
	return fmt.Sprintf("Method Prologue [%s] -------------\n", m.Name)
}

// RenderEpilogue returns the fixed banner line following the method's blocks.
func (m *Method) RenderEpilogue() string {
	return "Method Epilogue -----------------------------\n"
}

// String renders the full prologue/body/epilogue text.
func (m *Method) String() string {
	return m.RenderPrologue() + m.CIR.String() + m.RenderEpilogue()
}

// Translate runs dex through the pipeline (local-variable resolution,
// leader scan, block decoding, liveness and type inference, lowering)
// and renders its C-IR. On the first sub-stage error the pipeline
// aborts and no partial output is returned.
func Translate(dex *dalvik.Method, decode dalvik.DecodeDebugInfo) (*Method, error) {
	m := method.New(dex)

	if err := m.BuildIR(decode); err != nil {
		return nil, err
	}

	symtab := cir.NewSymbolTable()
	out := &cir.Method{}
	for _, b := range m.Blocks {
		out.Blocks = append(out.Blocks, lower.LowerBlock(b, symtab))
	}

	return &Method{Name: m.Name(), CIR: out}, nil
}

// Dump renders m and writes it to path, or to DefaultDumpPath if path
// is empty.
func Dump(m *Method, path string) error {
	if path == "" {
		path = DefaultDumpPath
	}
	return ioutil.WriteFile(path, []byte(m.String()), 0644)
}
