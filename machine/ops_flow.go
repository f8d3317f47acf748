// This file is part of ipp-proj.

package machine

// opLabel is a load-time marker only; it has no runtime effect (spec §4.3).
func (m *Instance) opLabel(ins Instruction) error {
	return nil
}

// jumpTo resolves a label argument to its instruction index and sets PC
// there, marking the jump as self-managed so the dispatcher does not also
// apply its normal post-step increment.
func (m *Instance) jumpTo(arg Argument) error {
	idx, ok := m.Labels[arg.Lexeme]
	if !ok {
		return newErr(ErrBadLabel, "undefined label %q", arg.Lexeme)
	}
	m.PC = idx
	m.jumped = true
	return nil
}

func (m *Instance) opJump(ins Instruction) error {
	return m.jumpTo(ins.Args[0])
}

// jumpIf implements JUMPIFEQ/JUMPIFNEQ: both share the tag-compatibility
// check, differing only in which comparison result triggers the jump.
func (m *Instance) jumpIf(ins Instruction, takeWhenEqual bool) error {
	a, err := m.resolve(ins.Args[1])
	if err != nil {
		return err
	}
	b, err := m.resolve(ins.Args[2])
	if err != nil {
		return err
	}
	if a.Tag != b.Tag && a.Tag != TagNil && b.Tag != TagNil {
		return newErr(ErrBadOperandType, "mismatched operand types")
	}
	eq := a.Equal(b)
	if eq == takeWhenEqual {
		return m.jumpTo(ins.Args[0])
	}
	return nil
}

func (m *Instance) opJumpIfEq(ins Instruction) error {
	return m.jumpIf(ins, true)
}

func (m *Instance) opJumpIfNeq(ins Instruction) error {
	return m.jumpIf(ins, false)
}

func (m *Instance) opCall(ins Instruction) error {
	idx, ok := m.Labels[ins.Args[0].Lexeme]
	if !ok {
		return newErr(ErrBadLabel, "undefined label %q", ins.Args[0].Lexeme)
	}
	m.callStack = append(m.callStack, m.PC)
	m.PC = idx
	m.jumped = true
	return nil
}

func (m *Instance) opReturn(ins Instruction) error {
	n := len(m.callStack)
	if n == 0 {
		return newErr(ErrMissingValue, "call stack is empty")
	}
	m.PC = m.callStack[n-1]
	m.callStack = m.callStack[:n-1]
	return nil
}
