// Package method wires the per-method front half of the translation
// pipeline: local variable resolution, leader scan, block decoding,
// and liveness and type inference, in strict stage order. Lowering and
// rendering are done by package translate.
package method

import (
	"io/ioutil"
	"log"

	"github.com/dex2c/dtcjit/block"
	"github.com/dex2c/dtcjit/dalvik"
	"github.com/dex2c/dtcjit/debuginfo"
	"github.com/dex2c/dtcjit/liveness"
)

// PrintDebugInfo holds the last value passed to SetDebugMode.
// Assigning it directly does not change where the logger writes.
var PrintDebugInfo = false

var logger = log.New(ioutil.Discard, "method: ", log.LstdFlags)

// SetDebugMode enables or disables tracing output for this package.
func SetDebugMode(on bool) {
	PrintDebugInfo = on
	if on {
		logger.SetOutput(log.Writer())
	} else {
		logger.SetOutput(ioutil.Discard)
	}
}

// Method wraps the host-supplied dalvik.Method with the state built up
// across the pipeline's stages.
type Method struct {
	Dex *dalvik.Method

	Locals debuginfo.Table
	Blocks []*block.BasicBlock
}

// New wraps a host method for translation.
func New(m *dalvik.Method) *Method {
	return &Method{Dex: m}
}

// Name returns the method's name, resolved through its owning dex file.
func (m *Method) Name() string {
	if m.Dex == nil || m.Dex.DexFile == nil {
		return ""
	}
	id := m.Dex.DexFile.GetMethodID(m.Dex.DexMethodIndex)
	return m.Dex.DexFile.StringByID(uint32(id))
}

// Descriptor returns the method's type descriptor, resolved through
// its owning dex file.
func (m *Method) Descriptor() string {
	if m.Dex == nil || m.Dex.DexFile == nil {
		return ""
	}
	id := m.Dex.DexFile.GetMethodID(m.Dex.DexMethodIndex)
	return m.Dex.DexFile.CopyDescriptorFromMethodID(id)
}

// ResolveLocalVariables invokes the host's debug-info decoder and
// builds the method-wide local-variable web table.
func (m *Method) ResolveLocalVariables(decode dalvik.DecodeDebugInfo) error {
	locals, err := debuginfo.Resolve(m.Dex, decode)
	if err != nil {
		return err
	}
	m.Locals = locals
	logger.Printf("%s: resolved %d local variables", m.Name(), len(locals))
	return nil
}

// ResolveBasicBlocks runs the leader scan and carves the method's
// basic blocks, decoding each one.
func (m *Method) ResolveBasicBlocks() error {
	blocks, err := block.BuildBlocks(m.Dex.DexCode)
	if err != nil {
		return err
	}
	m.Blocks = blocks
	return nil
}

// AnalyseLiveness runs block-local def/use and type inference over
// every block, in ascending start-address order.
func (m *Method) AnalyseLiveness() error {
	for _, b := range m.Blocks {
		if err := liveness.Analyse(b, m.Locals); err != nil {
			return err
		}
	}
	return nil
}

// BuildIR runs the pipeline through liveness analysis: local-variable
// resolution, leader scan plus block decoding, then block liveness and
// type inference. It aborts on the first sub-stage error and returns
// it; Locals and Blocks set by stages that completed before the
// failure are left in place.
func (m *Method) BuildIR(decode dalvik.DecodeDebugInfo) error {
	if m.Dex == nil {
		return dalvik.Wrap("BuildIR", dalvik.KindInvalidParameter, dalvik.ErrInvalidParameter)
	}

	logger.Printf("BuildIR invoked for %s", m.Name())

	if err := m.ResolveLocalVariables(decode); err != nil {
		return err
	}

	if err := m.ResolveBasicBlocks(); err != nil {
		return err
	}

	if err := m.AnalyseLiveness(); err != nil {
		return err
	}

	return nil
}
