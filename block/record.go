package block

import (
	"github.com/dex2c/dtcjit/dalvik"
	"github.com/dex2c/dtcjit/web"
)

// InstructionRecord pairs one decoded instruction with the method-wide
// address it starts at and the def/use live webs liveness analysis
// assigns to it. Records never point back at their owning block.
type InstructionRecord struct {
	Insn     dalvik.Instruction
	InsnAddr uint32

	DefWebs []*web.LiveWeb
	UseWebs []*web.LiveWeb
}

// DefWeb returns the def web at index, or nil if out of range.
func (r *InstructionRecord) DefWeb(index int) *web.LiveWeb {
	if index < 0 || index >= len(r.DefWebs) {
		return nil
	}
	return r.DefWebs[index]
}

// UseWeb returns the use web at index, or nil if out of range.
func (r *InstructionRecord) UseWeb(index int) *web.LiveWeb {
	if index < 0 || index >= len(r.UseWebs) {
		return nil
	}
	return r.UseWebs[index]
}

// AppendDef appends w as an additional def web, e.g. for
// shapeMoveResult's back-patch of the previous record.
func (r *InstructionRecord) AppendDef(w *web.LiveWeb) { r.DefWebs = append(r.DefWebs, w) }

// AppendUse appends w as an additional use web.
func (r *InstructionRecord) AppendUse(w *web.LiveWeb) { r.UseWebs = append(r.UseWebs, w) }
