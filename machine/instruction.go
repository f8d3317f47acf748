// This file is part of ipp-proj.

package machine

// ArgType is the lexical kind of an instruction argument, as written in the
// XML source's type="..." attribute.
type ArgType uint8

// The seven argument lexical kinds.
const (
	ArgVar ArgType = iota
	ArgLabel
	ArgType_
	ArgNil
	ArgBool
	ArgInt
	ArgString
)

// Argument is one parsed instruction operand. Lexeme preserves the raw
// textual form (already whitespace-trimmed); value conversion happens at
// use time in the operand resolver.
type Argument struct {
	Type   ArgType
	Lexeme string
}

// Instruction is one fully parsed, type-checked program instruction.
type Instruction struct {
	Order  int
	Opcode Opcode
	Name   string // canonical upper-case opcode name, for diagnostics
	Args   [3]Argument
	Arity  int
}
