package liveness

import (
	"github.com/dex2c/dtcjit/block"
	"github.com/dex2c/dtcjit/dalvik"
	"github.com/dex2c/dtcjit/web"
)

type ruleKind int

const (
	ruleNone         ruleKind = iota // not in the table: tolerated, no type update
	rulePropagate                    // def[0] <- use[0]'s type
	ruleUseObj                       // use[0]: object
	ruleUseObjDefInt                 // use[0]: object; def[0]: int
	ruleDefObj                       // def[0]: object
	ruleUseIntDefObj                 // use[0]: int; def[0]: object
	ruleCmp                          // uses[0],uses[1]: t; def[0]: int
	ruleGetT                         // uses: object, int; def[0]: t
	rulePutT                         // uses: t, object, int
	ruleStaticT                      // def/use[0]: t
	ruleUntypedAccessor              // uses: object, int (def untouched)
	ruleUniform                      // every use and def: t
	ruleCast                         // use[0]: from; def[0]: to
)

type typeRule struct {
	kind ruleKind
	t    web.DataType // primary type operand for rules that need one
	from web.DataType // ruleCast only
}

var typeRuleTable = map[dalvik.Opcode]typeRule{
	dalvik.OpMove:             {kind: rulePropagate},
	dalvik.OpMoveFrom16:       {kind: rulePropagate},
	dalvik.OpMove16:           {kind: rulePropagate},
	dalvik.OpMoveWide:         {kind: rulePropagate},
	dalvik.OpMoveWideFrom16:   {kind: rulePropagate},
	dalvik.OpMoveWide16:       {kind: rulePropagate},

	dalvik.OpMoveObject:        {kind: ruleUseObj},
	dalvik.OpMoveObjectFrom16:  {kind: ruleUseObj},
	dalvik.OpMoveObject16:      {kind: ruleUseObj},
	dalvik.OpMoveResultObject:  {kind: ruleUseObj},
	dalvik.OpMoveException:     {kind: ruleUseObj},
	dalvik.OpReturnObject:      {kind: ruleUseObj},
	dalvik.OpConstString:       {kind: ruleUseObj},
	dalvik.OpConstStringJumbo:  {kind: ruleUseObj},
	dalvik.OpConstClass:        {kind: ruleUseObj},
	dalvik.OpMonitorEnter:      {kind: ruleUseObj},
	dalvik.OpMonitorExit:       {kind: ruleUseObj},
	dalvik.OpCheckCast:         {kind: ruleUseObj},
	dalvik.OpThrow:             {kind: ruleUseObj},

	dalvik.OpInstanceOf:  {kind: ruleUseObjDefInt},
	dalvik.OpArrayLength: {kind: ruleUseObjDefInt},

	dalvik.OpNewInstance: {kind: ruleDefObj},

	dalvik.OpNewArray: {kind: ruleUseIntDefObj},

	dalvik.OpCmplFloat:  {kind: ruleCmp, t: web.Float},
	dalvik.OpCmpgFloat:  {kind: ruleCmp, t: web.Float},
	dalvik.OpCmplDouble: {kind: ruleCmp, t: web.Double},
	dalvik.OpCmpgDouble: {kind: ruleCmp, t: web.Double},
	dalvik.OpCmpLong:    {kind: ruleCmp, t: web.Long},

	dalvik.OpAgetObject:  {kind: ruleGetT, t: web.Object},
	dalvik.OpAgetBoolean: {kind: ruleGetT, t: web.Boolean},
	dalvik.OpAgetByte:    {kind: ruleGetT, t: web.Byte},
	dalvik.OpAgetChar:    {kind: ruleGetT, t: web.Char},
	dalvik.OpAgetShort:   {kind: ruleGetT, t: web.Short},
	dalvik.OpIgetObject:  {kind: ruleGetT, t: web.Object},
	dalvik.OpIgetBoolean: {kind: ruleGetT, t: web.Boolean},
	dalvik.OpIgetByte:    {kind: ruleGetT, t: web.Byte},
	dalvik.OpIgetChar:    {kind: ruleGetT, t: web.Char},
	dalvik.OpIgetShort:   {kind: ruleGetT, t: web.Short},

	dalvik.OpAputObject:  {kind: rulePutT, t: web.Object},
	dalvik.OpAputBoolean: {kind: rulePutT, t: web.Boolean},
	dalvik.OpAputByte:    {kind: rulePutT, t: web.Byte},
	dalvik.OpAputChar:    {kind: rulePutT, t: web.Char},
	dalvik.OpAputShort:   {kind: rulePutT, t: web.Short},
	dalvik.OpIputObject:  {kind: rulePutT, t: web.Object},
	dalvik.OpIputBoolean: {kind: rulePutT, t: web.Boolean},
	dalvik.OpIputByte:    {kind: rulePutT, t: web.Byte},
	dalvik.OpIputChar:    {kind: rulePutT, t: web.Char},
	dalvik.OpIputShort:   {kind: rulePutT, t: web.Short},

	dalvik.OpSget:        {kind: ruleStaticT, t: web.Int},
	dalvik.OpSgetWide:    {kind: ruleStaticT, t: web.Long},
	dalvik.OpSgetObject:  {kind: ruleStaticT, t: web.Object},
	dalvik.OpSgetBoolean: {kind: ruleStaticT, t: web.Boolean},
	dalvik.OpSgetByte:    {kind: ruleStaticT, t: web.Byte},
	dalvik.OpSgetChar:    {kind: ruleStaticT, t: web.Char},
	dalvik.OpSgetShort:   {kind: ruleStaticT, t: web.Short},
	dalvik.OpSput:        {kind: ruleStaticT, t: web.Int},
	dalvik.OpSputWide:    {kind: ruleStaticT, t: web.Long},
	dalvik.OpSputObject:  {kind: ruleStaticT, t: web.Object},
	dalvik.OpSputBoolean: {kind: ruleStaticT, t: web.Boolean},
	dalvik.OpSputByte:    {kind: ruleStaticT, t: web.Byte},
	dalvik.OpSputChar:    {kind: ruleStaticT, t: web.Char},
	dalvik.OpSputShort:   {kind: ruleStaticT, t: web.Short},

	dalvik.OpAget:     {kind: ruleUntypedAccessor},
	dalvik.OpAgetWide: {kind: ruleUntypedAccessor},
	dalvik.OpAput:     {kind: ruleUntypedAccessor},
	dalvik.OpAputWide: {kind: ruleUntypedAccessor},
	dalvik.OpIget:     {kind: ruleUntypedAccessor},
	dalvik.OpIgetWide: {kind: ruleUntypedAccessor},
	dalvik.OpIput:     {kind: ruleUntypedAccessor},
	dalvik.OpIputWide: {kind: ruleUntypedAccessor},

	dalvik.OpNegInt: {kind: ruleUniform, t: web.Int},
	dalvik.OpNotInt: {kind: ruleUniform, t: web.Int},

	dalvik.OpNegLong: {kind: ruleUniform, t: web.Long},
	dalvik.OpNotLong: {kind: ruleUniform, t: web.Long},

	dalvik.OpNegFloat:  {kind: ruleUniform, t: web.Float},
	dalvik.OpNegDouble: {kind: ruleUniform, t: web.Double},

	dalvik.OpIntToLong: {kind: ruleCast, from: web.Int, t: web.Long},
	dalvik.OpIntToFloat: {kind: ruleCast, from: web.Int, t: web.Float},
	dalvik.OpIntToDouble: {kind: ruleCast, from: web.Int, t: web.Double},
	dalvik.OpLongToInt:    {kind: ruleCast, from: web.Long, t: web.Int},
	dalvik.OpLongToFloat:  {kind: ruleCast, from: web.Long, t: web.Float},
	dalvik.OpLongToDouble: {kind: ruleCast, from: web.Long, t: web.Double},
	dalvik.OpFloatToInt:    {kind: ruleCast, from: web.Float, t: web.Int},
	dalvik.OpFloatToLong:   {kind: ruleCast, from: web.Float, t: web.Long},
	dalvik.OpFloatToDouble: {kind: ruleCast, from: web.Float, t: web.Double},
	dalvik.OpDoubleToInt:    {kind: ruleCast, from: web.Double, t: web.Int},
	dalvik.OpDoubleToLong:   {kind: ruleCast, from: web.Double, t: web.Long},
	dalvik.OpDoubleToFloat:  {kind: ruleCast, from: web.Double, t: web.Float},
	dalvik.OpIntToByte:  {kind: ruleCast, from: web.Int, t: web.Byte},
	dalvik.OpIntToChar:  {kind: ruleCast, from: web.Int, t: web.Char},
	dalvik.OpIntToShort: {kind: ruleCast, from: web.Int, t: web.Short},
}

func init() {
	// Int binary: three-address, 2addr, lit16, lit8 — all operands int.
	for _, op := range []dalvik.Opcode{
		dalvik.OpAddInt, dalvik.OpSubInt, dalvik.OpMulInt, dalvik.OpDivInt, dalvik.OpRemInt,
		dalvik.OpAndInt, dalvik.OpOrInt, dalvik.OpXorInt, dalvik.OpShlInt, dalvik.OpUshrInt,
		dalvik.OpAddInt2Addr, dalvik.OpSubInt2Addr, dalvik.OpMulInt2Addr, dalvik.OpDivInt2Addr, dalvik.OpRemInt2Addr,
		dalvik.OpAndInt2Addr, dalvik.OpOrInt2Addr, dalvik.OpXorInt2Addr, dalvik.OpShlInt2Addr, dalvik.OpShrInt2Addr, dalvik.OpUshrInt2Addr,
		dalvik.OpAddIntLit16, dalvik.OpRsubInt, dalvik.OpMulIntLit16, dalvik.OpDivIntLit16, dalvik.OpRemIntLit16,
		dalvik.OpAndIntLit16, dalvik.OpOrIntLit16, dalvik.OpXorIntLit16,
		dalvik.OpAddIntLit8, dalvik.OpRsubIntLit8, dalvik.OpMulIntLit8, dalvik.OpDivIntLit8, dalvik.OpRemIntLit8,
		dalvik.OpAndIntLit8, dalvik.OpOrIntLit8, dalvik.OpXorIntLit8, dalvik.OpShlIntLit8, dalvik.OpShrIntLit8, dalvik.OpUshrIntLit8,
	} {
		typeRuleTable[op] = typeRule{kind: ruleUniform, t: web.Int}
	}

	for _, op := range []dalvik.Opcode{
		dalvik.OpAddLong, dalvik.OpSubLong, dalvik.OpMulLong, dalvik.OpDivLong, dalvik.OpRemLong,
		dalvik.OpAndLong, dalvik.OpOrLong, dalvik.OpXorLong, dalvik.OpShlLong, dalvik.OpShrLong, dalvik.OpUshrLong,
		dalvik.OpAddLong2Addr, dalvik.OpSubLong2Addr, dalvik.OpMulLong2Addr, dalvik.OpDivLong2Addr, dalvik.OpRemLong2Addr,
		dalvik.OpAndLong2Addr, dalvik.OpOrLong2Addr, dalvik.OpXorLong2Addr, dalvik.OpShlLong2Addr, dalvik.OpShrLong2Addr, dalvik.OpUshrLong2Addr,
	} {
		typeRuleTable[op] = typeRule{kind: ruleUniform, t: web.Long}
	}

	for _, op := range []dalvik.Opcode{
		dalvik.OpAddFloat, dalvik.OpSubFloat, dalvik.OpMulFloat, dalvik.OpDivFloat, dalvik.OpRemFloat,
		dalvik.OpAddFloat2Addr, dalvik.OpSubFloat2Addr, dalvik.OpMulFloat2Addr, dalvik.OpDivFloat2Addr, dalvik.OpRemFloat2Addr,
	} {
		typeRuleTable[op] = typeRule{kind: ruleUniform, t: web.Float}
	}

	for _, op := range []dalvik.Opcode{
		dalvik.OpAddDouble, dalvik.OpSubDouble, dalvik.OpMulDouble, dalvik.OpDivDouble, dalvik.OpRemDouble,
		dalvik.OpAddDouble2Addr, dalvik.OpSubDouble2Addr, dalvik.OpMulDouble2Addr, dalvik.OpDivDouble2Addr, dalvik.OpRemDouble2Addr,
	} {
		typeRuleTable[op] = typeRule{kind: ruleUniform, t: web.Double}
	}
}

func setUse(rec *block.InstructionRecord, i int, t web.DataType) {
	if w := rec.UseWeb(i); w != nil {
		w.SetDataType(t)
	}
}

func setDef(rec *block.InstructionRecord, i int, t web.DataType) {
	if w := rec.DefWeb(i); w != nil {
		w.SetDataType(t)
	}
}

// ResolveDataTypes applies §4.4's per-opcode-family type-propagation
// rule to rec's already-assigned def/use webs. Opcodes absent from the
// table are tolerated without any type update.
func ResolveDataTypes(rec *block.InstructionRecord) error {
	rule, ok := typeRuleTable[rec.Insn.Opcode]
	if !ok {
		return nil
	}

	switch rule.kind {
	case rulePropagate:
		if u := rec.UseWeb(0); u != nil {
			setDef(rec, 0, u.DataType)
		}
	case ruleUseObj:
		setUse(rec, 0, web.Object)
	case ruleUseObjDefInt:
		setUse(rec, 0, web.Object)
		setDef(rec, 0, web.Int)
	case ruleDefObj:
		setDef(rec, 0, web.Object)
	case ruleUseIntDefObj:
		setUse(rec, 0, web.Int)
		setDef(rec, 0, web.Object)
	case ruleCmp:
		setUse(rec, 0, rule.t)
		setUse(rec, 1, rule.t)
		setDef(rec, 0, web.Int)
	case ruleGetT:
		setUse(rec, 0, web.Object)
		setUse(rec, 1, web.Int)
		setDef(rec, 0, rule.t)
	case rulePutT:
		setUse(rec, 0, rule.t)
		setUse(rec, 1, web.Object)
		setUse(rec, 2, web.Int)
	case ruleStaticT:
		setUse(rec, 0, rule.t)
		setDef(rec, 0, rule.t)
	case ruleUntypedAccessor:
		setUse(rec, 0, web.Object)
		setUse(rec, 1, web.Int)
	case ruleUniform:
		for i := range rec.UseWebs {
			setUse(rec, i, rule.t)
		}
		for i := range rec.DefWebs {
			setDef(rec, i, rule.t)
		}
	case ruleCast:
		setUse(rec, 0, rule.from)
		setDef(rec, 0, rule.t)
	}

	return nil
}
