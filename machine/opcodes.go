// This file is part of ipp-proj.

package machine

// Opcode identifies one IPPcode23 instruction kind.
type Opcode int

// The closed set of IPPcode23 opcodes.
const (
	OpMove Opcode = iota
	OpCreateFrame
	OpPushFrame
	OpPopFrame
	OpDefVar
	OpCall
	OpReturn
	OpPushs
	OpPops
	OpAdd
	OpSub
	OpMul
	OpIdiv
	OpLt
	OpGt
	OpEq
	OpAnd
	OpOr
	OpNot
	OpInt2Char
	OpStri2Int
	OpRead
	OpWrite
	OpConcat
	OpStrlen
	OpGetChar
	OpSetChar
	OpType
	OpLabel
	OpJump
	OpJumpIfEq
	OpJumpIfNeq
	OpExit
	OpDprint
	OpBreak
)

// opcodeNames maps the canonical uppercase textual opcode to its Opcode and
// arity. Opcode matching is case-insensitive at load time (loader.Load
// upper-cases before lookup); this table, read through OpcodeArity, is the
// loader's single source of truth for opcode names and arities.
var opcodeNames = map[string]struct {
	Op    Opcode
	Arity int
}{
	"MOVE":         {OpMove, 2},
	"CREATEFRAME":  {OpCreateFrame, 0},
	"PUSHFRAME":    {OpPushFrame, 0},
	"POPFRAME":     {OpPopFrame, 0},
	"DEFVAR":       {OpDefVar, 1},
	"CALL":         {OpCall, 1},
	"RETURN":       {OpReturn, 0},
	"PUSHS":        {OpPushs, 1},
	"POPS":         {OpPops, 1},
	"ADD":          {OpAdd, 3},
	"SUB":          {OpSub, 3},
	"MUL":          {OpMul, 3},
	"IDIV":         {OpIdiv, 3},
	"LT":           {OpLt, 3},
	"GT":           {OpGt, 3},
	"EQ":           {OpEq, 3},
	"AND":          {OpAnd, 3},
	"OR":           {OpOr, 3},
	"NOT":          {OpNot, 2},
	"INT2CHAR":     {OpInt2Char, 2},
	"STRI2INT":     {OpStri2Int, 3},
	"READ":         {OpRead, 2},
	"WRITE":        {OpWrite, 1},
	"CONCAT":       {OpConcat, 3},
	"STRLEN":       {OpStrlen, 2},
	"GETCHAR":      {OpGetChar, 3},
	"SETCHAR":      {OpSetChar, 3},
	"TYPE":         {OpType, 2},
	"LABEL":        {OpLabel, 1},
	"JUMP":         {OpJump, 1},
	"JUMPIFEQ":     {OpJumpIfEq, 3},
	"JUMPIFNEQ":    {OpJumpIfNeq, 3},
	"EXIT":         {OpExit, 1},
	"DPRINT":       {OpDprint, 1},
	"BREAK":        {OpBreak, 0},
}

// OpcodeArity returns the arity and validity of a case-insensitively matched
// opcode name. name must already be upper-cased by the caller.
func OpcodeArity(name string) (Opcode, int, bool) {
	e, ok := opcodeNames[name]
	return e.Op, e.Arity, ok
}
