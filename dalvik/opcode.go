package dalvik

// Opcode identifies a single Dalvik instruction opcode (the low byte of
// the first code unit of an instruction).
type Opcode byte

// Format identifies the instruction's operand layout, which in turn
// determines its width in 16-bit code units. Named after the Dalvik
// "kFmt..." format identifiers.
type Format int

const (
	Fmt10x Format = iota // no operands, 1 unit
	Fmt12x               // vA, vB (nibble packed), 1 unit
	Fmt11n               // vA, signed 4-bit literal, 1 unit
	Fmt11x               // vAA, 1 unit
	Fmt10t               // vAA signed branch offset, 1 unit
	Fmt20t               // signed 16-bit branch offset, 2 units
	Fmt22x               // vAA, vBBBB, 2 units
	Fmt21t               // vAA, signed 16-bit branch offset, 2 units
	Fmt21s               // vAA, signed 16-bit literal, 2 units
	Fmt21h               // vAA, signed 16-bit literal (high-order), 2 units
	Fmt21c               // vAA, const pool index, 2 units
	Fmt23x               // vAA, vBB, vCC, 2 units
	Fmt22b               // vAA, vBB, signed 8-bit literal, 2 units
	Fmt22t               // vA, vB, signed 16-bit branch offset, 2 units
	Fmt22s               // vA, vB, signed 16-bit literal, 2 units
	Fmt22c               // vA, vB, const pool index, 2 units
	Fmt30t               // signed 32-bit branch offset, 3 units
	Fmt32x               // vAAAA, vBBBB, 3 units
	Fmt31i               // vAA, signed 32-bit literal, 3 units
	Fmt31t               // vAA, signed 32-bit branch offset/table offset, 3 units
	Fmt31c               // vAA, const pool index (32-bit), 3 units
	Fmt35c               // {vC..vG}, const pool index, 3 units
	Fmt3rc               // {vCCCC .. vNNNN}, const pool index, 3 units
	Fmt51l               // vAA, signed 64-bit literal, 5 units
)

// Width returns the instruction's length in 16-bit code units.
func (f Format) Width() int {
	switch f {
	case Fmt10x, Fmt12x, Fmt11n, Fmt11x, Fmt10t:
		return 1
	case Fmt20t, Fmt22x, Fmt21t, Fmt21s, Fmt21h, Fmt21c, Fmt23x, Fmt22b, Fmt22t, Fmt22s, Fmt22c:
		return 2
	case Fmt30t, Fmt32x, Fmt31i, Fmt31t, Fmt31c, Fmt35c, Fmt3rc:
		return 3
	case Fmt51l:
		return 5
	default:
		return 1
	}
}

// Opcode constants. Values match the standard Dalvik bytecode
// enumeration so that a real dex file's code stream decodes correctly.
const (
	OpNop                   Opcode = 0x00
	OpMove                  Opcode = 0x01
	OpMoveFrom16            Opcode = 0x02
	OpMove16                Opcode = 0x03
	OpMoveWide              Opcode = 0x04
	OpMoveWideFrom16        Opcode = 0x05
	OpMoveWide16            Opcode = 0x06
	OpMoveObject            Opcode = 0x07
	OpMoveObjectFrom16      Opcode = 0x08
	OpMoveObject16          Opcode = 0x09
	OpMoveResult            Opcode = 0x0a
	OpMoveResultWide        Opcode = 0x0b
	OpMoveResultObject      Opcode = 0x0c
	OpMoveException         Opcode = 0x0d
	OpReturnVoid            Opcode = 0x0e
	OpReturn                Opcode = 0x0f
	OpReturnWide            Opcode = 0x10
	OpReturnObject          Opcode = 0x11
	OpConst4                Opcode = 0x12
	OpConst16               Opcode = 0x13
	OpConst                 Opcode = 0x14
	OpConstHigh16           Opcode = 0x15
	OpConstWide16           Opcode = 0x16
	OpConstWide32           Opcode = 0x17
	OpConstWide             Opcode = 0x18
	OpConstWideHigh16       Opcode = 0x19
	OpConstString           Opcode = 0x1a
	OpConstStringJumbo      Opcode = 0x1b
	OpConstClass            Opcode = 0x1c
	OpMonitorEnter          Opcode = 0x1d
	OpMonitorExit           Opcode = 0x1e
	OpCheckCast             Opcode = 0x1f
	OpInstanceOf            Opcode = 0x20
	OpArrayLength           Opcode = 0x21
	OpNewInstance           Opcode = 0x22
	OpNewArray              Opcode = 0x23
	OpFilledNewArray        Opcode = 0x24
	OpFilledNewArrayRange   Opcode = 0x25
	OpFillArrayData         Opcode = 0x26
	OpThrow                 Opcode = 0x27
	OpGoto                  Opcode = 0x28
	OpGoto16                Opcode = 0x29
	OpGoto32                Opcode = 0x2a
	OpPackedSwitch          Opcode = 0x2b
	OpSparseSwitch          Opcode = 0x2c
	OpCmplFloat             Opcode = 0x2d
	OpCmpgFloat             Opcode = 0x2e
	OpCmplDouble            Opcode = 0x2f
	OpCmpgDouble            Opcode = 0x30
	OpCmpLong               Opcode = 0x31
	OpIfEq                  Opcode = 0x32
	OpIfNe                  Opcode = 0x33
	OpIfLt                  Opcode = 0x34
	OpIfGe                  Opcode = 0x35
	OpIfGt                  Opcode = 0x36
	OpIfLe                  Opcode = 0x37
	OpIfEqz                 Opcode = 0x38
	OpIfNez                 Opcode = 0x39
	OpIfLtz                 Opcode = 0x3a
	OpIfGez                 Opcode = 0x3b
	OpIfGtz                 Opcode = 0x3c
	OpIfLez                 Opcode = 0x3d
	OpAget                  Opcode = 0x44
	OpAgetWide              Opcode = 0x45
	OpAgetObject            Opcode = 0x46
	OpAgetBoolean           Opcode = 0x47
	OpAgetByte              Opcode = 0x48
	OpAgetChar              Opcode = 0x49
	OpAgetShort             Opcode = 0x4a
	OpAput                  Opcode = 0x4b
	OpAputWide              Opcode = 0x4c
	OpAputObject            Opcode = 0x4d
	OpAputBoolean           Opcode = 0x4e
	OpAputByte              Opcode = 0x4f
	OpAputChar              Opcode = 0x50
	OpAputShort             Opcode = 0x51
	OpIget                  Opcode = 0x52
	OpIgetWide              Opcode = 0x53
	OpIgetObject            Opcode = 0x54
	OpIgetBoolean           Opcode = 0x55
	OpIgetByte              Opcode = 0x56
	OpIgetChar              Opcode = 0x57
	OpIgetShort             Opcode = 0x58
	OpIput                  Opcode = 0x59
	OpIputWide              Opcode = 0x5a
	OpIputObject            Opcode = 0x5b
	OpIputBoolean           Opcode = 0x5c
	OpIputByte              Opcode = 0x5d
	OpIputChar              Opcode = 0x5e
	OpIputShort             Opcode = 0x5f
	OpSget                  Opcode = 0x60
	OpSgetWide              Opcode = 0x61
	OpSgetObject            Opcode = 0x62
	OpSgetBoolean           Opcode = 0x63
	OpSgetByte              Opcode = 0x64
	OpSgetChar              Opcode = 0x65
	OpSgetShort             Opcode = 0x66
	OpSput                  Opcode = 0x67
	OpSputWide              Opcode = 0x68
	OpSputObject            Opcode = 0x69
	OpSputBoolean           Opcode = 0x6a
	OpSputByte              Opcode = 0x6b
	OpSputChar              Opcode = 0x6c
	OpSputShort             Opcode = 0x6d
	OpInvokeVirtual         Opcode = 0x6e
	OpInvokeSuper           Opcode = 0x6f
	OpInvokeDirect          Opcode = 0x70
	OpInvokeStatic          Opcode = 0x71
	OpInvokeInterface       Opcode = 0x72
	OpReturnVoidBarrier     Opcode = 0x73
	OpInvokeVirtualRange    Opcode = 0x74
	OpInvokeSuperRange      Opcode = 0x75
	OpInvokeDirectRange     Opcode = 0x76
	OpInvokeStaticRange     Opcode = 0x77
	OpInvokeInterfaceRange  Opcode = 0x78
	OpNegInt                Opcode = 0x7b
	OpNotInt                Opcode = 0x7c
	OpNegLong               Opcode = 0x7d
	OpNotLong               Opcode = 0x7e
	OpNegFloat              Opcode = 0x7f
	OpNegDouble             Opcode = 0x80
	OpIntToLong             Opcode = 0x81
	OpIntToFloat            Opcode = 0x82
	OpIntToDouble           Opcode = 0x83
	OpLongToInt             Opcode = 0x84
	OpLongToFloat           Opcode = 0x85
	OpLongToDouble          Opcode = 0x86
	OpFloatToInt            Opcode = 0x87
	OpFloatToLong           Opcode = 0x88
	OpFloatToDouble         Opcode = 0x89
	OpDoubleToInt           Opcode = 0x8a
	OpDoubleToLong          Opcode = 0x8b
	OpDoubleToFloat         Opcode = 0x8c
	OpIntToByte             Opcode = 0x8d
	OpIntToChar             Opcode = 0x8e
	OpIntToShort            Opcode = 0x8f
	OpAddInt                Opcode = 0x90
	OpSubInt                Opcode = 0x91
	OpMulInt                Opcode = 0x92
	OpDivInt                Opcode = 0x93
	OpRemInt                Opcode = 0x94
	OpAndInt                Opcode = 0x95
	OpOrInt                 Opcode = 0x96
	OpXorInt                Opcode = 0x97
	OpShlInt                Opcode = 0x98
	OpShrInt                Opcode = 0x99
	OpUshrInt               Opcode = 0x9a
	OpAddLong               Opcode = 0x9b
	OpSubLong               Opcode = 0x9c
	OpMulLong               Opcode = 0x9d
	OpDivLong               Opcode = 0x9e
	OpRemLong               Opcode = 0x9f
	OpAndLong               Opcode = 0xa0
	OpOrLong                Opcode = 0xa1
	OpXorLong               Opcode = 0xa2
	OpShlLong               Opcode = 0xa3
	OpShrLong               Opcode = 0xa4
	OpUshrLong              Opcode = 0xa5
	OpAddFloat              Opcode = 0xa6
	OpSubFloat              Opcode = 0xa7
	OpMulFloat              Opcode = 0xa8
	OpDivFloat              Opcode = 0xa9
	OpRemFloat              Opcode = 0xaa
	OpAddDouble             Opcode = 0xab
	OpSubDouble             Opcode = 0xac
	OpMulDouble             Opcode = 0xad
	OpDivDouble             Opcode = 0xae
	OpRemDouble             Opcode = 0xaf
	OpAddInt2Addr           Opcode = 0xb0
	OpSubInt2Addr           Opcode = 0xb1
	OpMulInt2Addr           Opcode = 0xb2
	OpDivInt2Addr           Opcode = 0xb3
	OpRemInt2Addr           Opcode = 0xb4
	OpAndInt2Addr           Opcode = 0xb5
	OpOrInt2Addr            Opcode = 0xb6
	OpXorInt2Addr           Opcode = 0xb7
	OpShlInt2Addr           Opcode = 0xb8
	OpShrInt2Addr           Opcode = 0xb9
	OpUshrInt2Addr          Opcode = 0xba
	OpAddLong2Addr          Opcode = 0xbb
	OpSubLong2Addr          Opcode = 0xbc
	OpMulLong2Addr          Opcode = 0xbd
	OpDivLong2Addr          Opcode = 0xbe
	OpRemLong2Addr          Opcode = 0xbf
	OpAndLong2Addr          Opcode = 0xc0
	OpOrLong2Addr           Opcode = 0xc1
	OpXorLong2Addr          Opcode = 0xc2
	OpShlLong2Addr          Opcode = 0xc3
	OpShrLong2Addr          Opcode = 0xc4
	OpUshrLong2Addr         Opcode = 0xc5
	OpAddFloat2Addr         Opcode = 0xc6
	OpSubFloat2Addr         Opcode = 0xc7
	OpMulFloat2Addr         Opcode = 0xc8
	OpDivFloat2Addr         Opcode = 0xc9
	OpRemFloat2Addr         Opcode = 0xca
	OpAddDouble2Addr        Opcode = 0xcb
	OpSubDouble2Addr        Opcode = 0xcc
	OpMulDouble2Addr        Opcode = 0xcd
	OpDivDouble2Addr        Opcode = 0xce
	OpRemDouble2Addr        Opcode = 0xcf
	OpAddIntLit16           Opcode = 0xd0
	OpRsubInt               Opcode = 0xd1
	OpMulIntLit16           Opcode = 0xd2
	OpDivIntLit16           Opcode = 0xd3
	OpRemIntLit16           Opcode = 0xd4
	OpAndIntLit16           Opcode = 0xd5
	OpOrIntLit16            Opcode = 0xd6
	OpXorIntLit16           Opcode = 0xd7
	OpAddIntLit8            Opcode = 0xd8
	OpRsubIntLit8           Opcode = 0xd9
	OpMulIntLit8            Opcode = 0xda
	OpDivIntLit8            Opcode = 0xdb
	OpRemIntLit8            Opcode = 0xdc
	OpAndIntLit8            Opcode = 0xdd
	OpOrIntLit8             Opcode = 0xde
	OpXorIntLit8            Opcode = 0xdf
	OpShlIntLit8            Opcode = 0xe0
	OpShrIntLit8            Opcode = 0xe1
	OpUshrIntLit8           Opcode = 0xe2
)

type opcodeInfo struct {
	name   string
	format Format
}

// opcodeTable is the single data-driven source of truth for opcode
// names and operand widths, in place of the macro-heavy per-opcode
// case fan-out the original translator used for the same purpose.
var opcodeTable = map[Opcode]opcodeInfo{
	OpNop:                  {"nop", Fmt10x},
	OpMove:                 {"move", Fmt12x},
	OpMoveFrom16:           {"move/from16", Fmt22x},
	OpMove16:               {"move/16", Fmt32x},
	OpMoveWide:             {"move-wide", Fmt12x},
	OpMoveWideFrom16:       {"move-wide/from16", Fmt22x},
	OpMoveWide16:           {"move-wide/16", Fmt32x},
	OpMoveObject:           {"move-object", Fmt12x},
	OpMoveObjectFrom16:     {"move-object/from16", Fmt22x},
	OpMoveObject16:         {"move-object/16", Fmt32x},
	OpMoveResult:           {"move-result", Fmt11x},
	OpMoveResultWide:       {"move-result-wide", Fmt11x},
	OpMoveResultObject:     {"move-result-object", Fmt11x},
	OpMoveException:        {"move-exception", Fmt11x},
	OpReturnVoid:           {"return-void", Fmt10x},
	OpReturn:               {"return", Fmt11x},
	OpReturnWide:           {"return-wide", Fmt11x},
	OpReturnObject:         {"return-object", Fmt11x},
	OpConst4:               {"const/4", Fmt11n},
	OpConst16:              {"const/16", Fmt21s},
	OpConst:                {"const", Fmt31i},
	OpConstHigh16:          {"const/high16", Fmt21h},
	OpConstWide16:          {"const-wide/16", Fmt21s},
	OpConstWide32:          {"const-wide/32", Fmt31i},
	OpConstWide:            {"const-wide", Fmt51l},
	OpConstWideHigh16:      {"const-wide/high16", Fmt21h},
	OpConstString:          {"const-string", Fmt21c},
	OpConstStringJumbo:     {"const-string/jumbo", Fmt31c},
	OpConstClass:           {"const-class", Fmt21c},
	OpMonitorEnter:         {"monitor-enter", Fmt11x},
	OpMonitorExit:          {"monitor-exit", Fmt11x},
	OpCheckCast:            {"check-cast", Fmt21c},
	OpInstanceOf:           {"instance-of", Fmt22c},
	OpArrayLength:          {"array-length", Fmt12x},
	OpNewInstance:          {"new-instance", Fmt21c},
	OpNewArray:             {"new-array", Fmt22c},
	OpFilledNewArray:       {"filled-new-array", Fmt35c},
	OpFilledNewArrayRange:  {"filled-new-array/range", Fmt3rc},
	OpFillArrayData:        {"fill-array-data", Fmt31t},
	OpThrow:                {"throw", Fmt11x},
	OpGoto:                 {"goto", Fmt10t},
	OpGoto16:               {"goto/16", Fmt20t},
	OpGoto32:               {"goto/32", Fmt30t},
	OpPackedSwitch:         {"packed-switch", Fmt31t},
	OpSparseSwitch:         {"sparse-switch", Fmt31t},
	OpCmplFloat:            {"cmpl-float", Fmt23x},
	OpCmpgFloat:            {"cmpg-float", Fmt23x},
	OpCmplDouble:           {"cmpl-double", Fmt23x},
	OpCmpgDouble:           {"cmpg-double", Fmt23x},
	OpCmpLong:              {"cmp-long", Fmt23x},
	OpIfEq:                 {"if-eq", Fmt22t},
	OpIfNe:                 {"if-ne", Fmt22t},
	OpIfLt:                 {"if-lt", Fmt22t},
	OpIfGe:                 {"if-ge", Fmt22t},
	OpIfGt:                 {"if-gt", Fmt22t},
	OpIfLe:                 {"if-le", Fmt22t},
	OpIfEqz:                {"if-eqz", Fmt21t},
	OpIfNez:                {"if-nez", Fmt21t},
	OpIfLtz:                {"if-ltz", Fmt21t},
	OpIfGez:                {"if-gez", Fmt21t},
	OpIfGtz:                {"if-gtz", Fmt21t},
	OpIfLez:                {"if-lez", Fmt21t},
	OpAget:                 {"aget", Fmt23x},
	OpAgetWide:             {"aget-wide", Fmt23x},
	OpAgetObject:           {"aget-object", Fmt23x},
	OpAgetBoolean:          {"aget-boolean", Fmt23x},
	OpAgetByte:             {"aget-byte", Fmt23x},
	OpAgetChar:             {"aget-char", Fmt23x},
	OpAgetShort:            {"aget-short", Fmt23x},
	OpAput:                 {"aput", Fmt23x},
	OpAputWide:             {"aput-wide", Fmt23x},
	OpAputObject:           {"aput-object", Fmt23x},
	OpAputBoolean:          {"aput-boolean", Fmt23x},
	OpAputByte:             {"aput-byte", Fmt23x},
	OpAputChar:             {"aput-char", Fmt23x},
	OpAputShort:            {"aput-short", Fmt23x},
	OpIget:                 {"iget", Fmt22c},
	OpIgetWide:             {"iget-wide", Fmt22c},
	OpIgetObject:           {"iget-object", Fmt22c},
	OpIgetBoolean:          {"iget-boolean", Fmt22c},
	OpIgetByte:             {"iget-byte", Fmt22c},
	OpIgetChar:             {"iget-char", Fmt22c},
	OpIgetShort:            {"iget-short", Fmt22c},
	OpIput:                 {"iput", Fmt22c},
	OpIputWide:             {"iput-wide", Fmt22c},
	OpIputObject:           {"iput-object", Fmt22c},
	OpIputBoolean:          {"iput-boolean", Fmt22c},
	OpIputByte:             {"iput-byte", Fmt22c},
	OpIputChar:             {"iput-char", Fmt22c},
	OpIputShort:            {"iput-short", Fmt22c},
	OpSget:                 {"sget", Fmt21c},
	OpSgetWide:             {"sget-wide", Fmt21c},
	OpSgetObject:           {"sget-object", Fmt21c},
	OpSgetBoolean:          {"sget-boolean", Fmt21c},
	OpSgetByte:             {"sget-byte", Fmt21c},
	OpSgetChar:             {"sget-char", Fmt21c},
	OpSgetShort:            {"sget-short", Fmt21c},
	OpSput:                 {"sput", Fmt21c},
	OpSputWide:             {"sput-wide", Fmt21c},
	OpSputObject:           {"sput-object", Fmt21c},
	OpSputBoolean:          {"sput-boolean", Fmt21c},
	OpSputByte:             {"sput-byte", Fmt21c},
	OpSputChar:             {"sput-char", Fmt21c},
	OpSputShort:            {"sput-short", Fmt21c},
	OpInvokeVirtual:        {"invoke-virtual", Fmt35c},
	OpInvokeSuper:          {"invoke-super", Fmt35c},
	OpInvokeDirect:         {"invoke-direct", Fmt35c},
	OpInvokeStatic:         {"invoke-static", Fmt35c},
	OpInvokeInterface:      {"invoke-interface", Fmt35c},
	OpReturnVoidBarrier:    {"return-void-barrier", Fmt10x},
	OpInvokeVirtualRange:   {"invoke-virtual/range", Fmt3rc},
	OpInvokeSuperRange:     {"invoke-super/range", Fmt3rc},
	OpInvokeDirectRange:    {"invoke-direct/range", Fmt3rc},
	OpInvokeStaticRange:    {"invoke-static/range", Fmt3rc},
	OpInvokeInterfaceRange: {"invoke-interface/range", Fmt3rc},
	OpNegInt:               {"neg-int", Fmt12x},
	OpNotInt:               {"not-int", Fmt12x},
	OpNegLong:              {"neg-long", Fmt12x},
	OpNotLong:              {"not-long", Fmt12x},
	OpNegFloat:             {"neg-float", Fmt12x},
	OpNegDouble:            {"neg-double", Fmt12x},
	OpIntToLong:            {"int-to-long", Fmt12x},
	OpIntToFloat:           {"int-to-float", Fmt12x},
	OpIntToDouble:          {"int-to-double", Fmt12x},
	OpLongToInt:            {"long-to-int", Fmt12x},
	OpLongToFloat:          {"long-to-float", Fmt12x},
	OpLongToDouble:         {"long-to-double", Fmt12x},
	OpFloatToInt:           {"float-to-int", Fmt12x},
	OpFloatToLong:          {"float-to-long", Fmt12x},
	OpFloatToDouble:        {"float-to-double", Fmt12x},
	OpDoubleToInt:          {"double-to-int", Fmt12x},
	OpDoubleToLong:         {"double-to-long", Fmt12x},
	OpDoubleToFloat:        {"double-to-float", Fmt12x},
	OpIntToByte:            {"int-to-byte", Fmt12x},
	OpIntToChar:            {"int-to-char", Fmt12x},
	OpIntToShort:           {"int-to-short", Fmt12x},
	OpAddInt:               {"add-int", Fmt23x},
	OpSubInt:               {"sub-int", Fmt23x},
	OpMulInt:               {"mul-int", Fmt23x},
	OpDivInt:               {"div-int", Fmt23x},
	OpRemInt:               {"rem-int", Fmt23x},
	OpAndInt:               {"and-int", Fmt23x},
	OpOrInt:                {"or-int", Fmt23x},
	OpXorInt:               {"xor-int", Fmt23x},
	OpShlInt:               {"shl-int", Fmt23x},
	OpShrInt:               {"shr-int", Fmt23x},
	OpUshrInt:              {"ushr-int", Fmt23x},
	OpAddLong:              {"add-long", Fmt23x},
	OpSubLong:              {"sub-long", Fmt23x},
	OpMulLong:              {"mul-long", Fmt23x},
	OpDivLong:              {"div-long", Fmt23x},
	OpRemLong:              {"rem-long", Fmt23x},
	OpAndLong:              {"and-long", Fmt23x},
	OpOrLong:               {"or-long", Fmt23x},
	OpXorLong:              {"xor-long", Fmt23x},
	OpShlLong:              {"shl-long", Fmt23x},
	OpShrLong:              {"shr-long", Fmt23x},
	OpUshrLong:             {"ushr-long", Fmt23x},
	OpAddFloat:             {"add-float", Fmt23x},
	OpSubFloat:             {"sub-float", Fmt23x},
	OpMulFloat:             {"mul-float", Fmt23x},
	OpDivFloat:             {"div-float", Fmt23x},
	OpRemFloat:             {"rem-float", Fmt23x},
	OpAddDouble:            {"add-double", Fmt23x},
	OpSubDouble:            {"sub-double", Fmt23x},
	OpMulDouble:            {"mul-double", Fmt23x},
	OpDivDouble:            {"div-double", Fmt23x},
	OpRemDouble:            {"rem-double", Fmt23x},
	OpAddInt2Addr:          {"add-int/2addr", Fmt12x},
	OpSubInt2Addr:          {"sub-int/2addr", Fmt12x},
	OpMulInt2Addr:          {"mul-int/2addr", Fmt12x},
	OpDivInt2Addr:          {"div-int/2addr", Fmt12x},
	OpRemInt2Addr:          {"rem-int/2addr", Fmt12x},
	OpAndInt2Addr:          {"and-int/2addr", Fmt12x},
	OpOrInt2Addr:           {"or-int/2addr", Fmt12x},
	OpXorInt2Addr:          {"xor-int/2addr", Fmt12x},
	OpShlInt2Addr:          {"shl-int/2addr", Fmt12x},
	OpShrInt2Addr:          {"shr-int/2addr", Fmt12x},
	OpUshrInt2Addr:         {"ushr-int/2addr", Fmt12x},
	OpAddLong2Addr:         {"add-long/2addr", Fmt12x},
	OpSubLong2Addr:         {"sub-long/2addr", Fmt12x},
	OpMulLong2Addr:         {"mul-long/2addr", Fmt12x},
	OpDivLong2Addr:         {"div-long/2addr", Fmt12x},
	OpRemLong2Addr:         {"rem-long/2addr", Fmt12x},
	OpAndLong2Addr:         {"and-long/2addr", Fmt12x},
	OpOrLong2Addr:          {"or-long/2addr", Fmt12x},
	OpXorLong2Addr:         {"xor-long/2addr", Fmt12x},
	OpShlLong2Addr:         {"shl-long/2addr", Fmt12x},
	OpShrLong2Addr:         {"shr-long/2addr", Fmt12x},
	OpUshrLong2Addr:        {"ushr-long/2addr", Fmt12x},
	OpAddFloat2Addr:        {"add-float/2addr", Fmt12x},
	OpSubFloat2Addr:        {"sub-float/2addr", Fmt12x},
	OpMulFloat2Addr:        {"mul-float/2addr", Fmt12x},
	OpDivFloat2Addr:        {"div-float/2addr", Fmt12x},
	OpRemFloat2Addr:        {"rem-float/2addr", Fmt12x},
	OpAddDouble2Addr:       {"add-double/2addr", Fmt12x},
	OpSubDouble2Addr:       {"sub-double/2addr", Fmt12x},
	OpMulDouble2Addr:       {"mul-double/2addr", Fmt12x},
	OpDivDouble2Addr:       {"div-double/2addr", Fmt12x},
	OpRemDouble2Addr:       {"rem-double/2addr", Fmt12x},
	OpAddIntLit16:          {"add-int/lit16", Fmt22s},
	OpRsubInt:              {"rsub-int", Fmt22s},
	OpMulIntLit16:          {"mul-int/lit16", Fmt22s},
	OpDivIntLit16:          {"div-int/lit16", Fmt22s},
	OpRemIntLit16:          {"rem-int/lit16", Fmt22s},
	OpAndIntLit16:          {"and-int/lit16", Fmt22s},
	OpOrIntLit16:           {"or-int/lit16", Fmt22s},
	OpXorIntLit16:          {"xor-int/lit16", Fmt22s},
	OpAddIntLit8:           {"add-int/lit8", Fmt22b},
	OpRsubIntLit8:          {"rsub-int/lit8", Fmt22b},
	OpMulIntLit8:           {"mul-int/lit8", Fmt22b},
	OpDivIntLit8:           {"div-int/lit8", Fmt22b},
	OpRemIntLit8:           {"rem-int/lit8", Fmt22b},
	OpAndIntLit8:           {"and-int/lit8", Fmt22b},
	OpOrIntLit8:            {"or-int/lit8", Fmt22b},
	OpXorIntLit8:           {"xor-int/lit8", Fmt22b},
	OpShlIntLit8:           {"shl-int/lit8", Fmt22b},
	OpShrIntLit8:           {"shr-int/lit8", Fmt22b},
	OpUshrIntLit8:          {"ushr-int/lit8", Fmt22b},
}

// Name returns the opcode's canonical mnemonic, or "unknown" if it is
// not present in the table.
func (op Opcode) Name() string {
	if info, ok := opcodeTable[op]; ok {
		return info.name
	}
	return "unknown"
}

// Format returns the opcode's instruction format, or Fmt10x (defaulting
// to a 1-unit width) if the opcode is not present in the table.
func (op Opcode) Format() Format {
	if info, ok := opcodeTable[op]; ok {
		return info.format
	}
	return Fmt10x
}

// Width returns the instruction's length in 16-bit code units.
func Width(op Opcode) int {
	return op.Format().Width()
}

// Known reports whether op appears in the opcode table.
func (op Opcode) Known() bool {
	_, ok := opcodeTable[op]
	return ok
}
