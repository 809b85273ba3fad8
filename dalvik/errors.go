package dalvik

import (
	"errors"
	"fmt"
)

// ErrorKind mirrors the stages of the original DtcError_t enumeration:
// callers that need to distinguish failure classes (e.g. to decide
// whether a method can be retried) recover it with errors.As into an
// *Error and read its Kind field.
type ErrorKind int

const (
	KindUnknown ErrorKind = iota
	KindTooShortBuffer
	KindMemoryAlloc
	KindUnknownOpcode
	KindInvalidParameter
	KindInvalidDexCode
	KindInvalidDexMethod
	KindInvalidDexMethodType
	KindInvalidClassData
	KindInvalidDebugInfoStream
	KindInvalidDefWeb
	KindInvalidUseWeb
	KindResolveDexcodes
	KindResolveLocalVars
	KindResolveBasicBlocks
	KindBuildControlFlowGraph
	KindAnalyseLiveness
	KindDex2CTranslation
)

func (k ErrorKind) String() string {
	switch k {
	case KindTooShortBuffer:
		return "too short buffer"
	case KindMemoryAlloc:
		return "memory allocation failure"
	case KindUnknownOpcode:
		return "unknown opcode"
	case KindInvalidParameter:
		return "invalid parameter"
	case KindInvalidDexCode:
		return "invalid dex code"
	case KindInvalidDexMethod:
		return "invalid dex method"
	case KindInvalidDexMethodType:
		return "invalid dex method type"
	case KindInvalidClassData:
		return "invalid class data"
	case KindInvalidDebugInfoStream:
		return "invalid debug info stream"
	case KindInvalidDefWeb:
		return "invalid def web"
	case KindInvalidUseWeb:
		return "invalid use web"
	case KindResolveDexcodes:
		return "failed to resolve dexcodes"
	case KindResolveLocalVars:
		return "failed to resolve local variables"
	case KindResolveBasicBlocks:
		return "failed to resolve basic blocks"
	case KindBuildControlFlowGraph:
		return "failed to build control flow graph"
	case KindAnalyseLiveness:
		return "failed to analyse liveness"
	case KindDex2CTranslation:
		return "dex2c translation failure"
	default:
		return "unknown error"
	}
}

// Error is the typed error carried through the translation pipeline.
// Stages that fail wrap the underlying cause with the stage's Kind so
// that top-level callers can classify the failure the way the source
// DtcError_t enumeration let them, without losing the Go error chain.
type Error struct {
	Kind ErrorKind
	Op   string // stage that produced the error, e.g. "ResolveBasicBlocks"
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Kind, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Kind)
}

func (e *Error) Unwrap() error { return e.Err }

// Wrap builds an *Error tagging err with kind at the named pipeline
// stage. Returns nil if err is nil.
func Wrap(op string, kind ErrorKind, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, Op: op, Err: err}
}

// ErrUnknownOpcode is returned by the liveness classifier for an
// instruction whose opcode is not present in its table. The C-IR
// lowering dispatcher does not return it: it stops lowering the block
// without an error.
var ErrUnknownOpcode = errors.New("dalvik: unknown opcode")

// ErrTooShortBuffer is returned by the instruction decoder when fewer
// code units remain than the opcode's format requires.
var ErrTooShortBuffer = errors.New("dalvik: too short buffer")

// ErrInvalidParameter is returned when a pipeline stage is invoked
// with a required collaborator left nil (e.g. a null Method or Code).
var ErrInvalidParameter = errors.New("dalvik: invalid parameter")

// ErrInvalidSwitchTable is returned when a packed-switch/sparse-switch
// instruction's inline data table does not begin with the expected
// identity word (0x0100 / 0x0200 respectively).
var ErrInvalidSwitchTable = errors.New("dalvik: invalid switch table identity word")

// InvalidWebIndexError describes a def/use web requested by an
// out-of-range positional index. No pipeline stage returns it: the
// record accessors return nil for such an index, and type inference
// skips a missing def/use slot without an error.
type InvalidWebIndexError struct {
	Index int
	Len   int
}

func (e InvalidWebIndexError) Error() string {
	return fmt.Sprintf("web index %d out of range (have %d)", e.Index, e.Len)
}

// InvalidDebugInfoError reports a malformed debug-info stream
// encountered while resolving local variables.
type InvalidDebugInfoError struct {
	Reason string
}

func (e InvalidDebugInfoError) Error() string {
	return fmt.Sprintf("invalid debug info stream: %s", e.Reason)
}
