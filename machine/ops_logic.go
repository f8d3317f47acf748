// This file is part of ipp-proj.

package machine

func (m *Instance) resolveBool(arg Argument) (bool, error) {
	v, err := m.resolve(arg)
	if err != nil {
		return false, err
	}
	if v.Tag != TagBool {
		return false, newErr(ErrBadOperandType, "AND/OR/NOT require bool operands")
	}
	return v.B, nil
}

func (m *Instance) opAnd(ins Instruction) error {
	a, err := m.resolveBool(ins.Args[1])
	if err != nil {
		return err
	}
	b, err := m.resolveBool(ins.Args[2])
	if err != nil {
		return err
	}
	return m.store(ins.Args[0], NewBool(a && b))
}

func (m *Instance) opOr(ins Instruction) error {
	a, err := m.resolveBool(ins.Args[1])
	if err != nil {
		return err
	}
	b, err := m.resolveBool(ins.Args[2])
	if err != nil {
		return err
	}
	return m.store(ins.Args[0], NewBool(a || b))
}

func (m *Instance) opNot(ins Instruction) error {
	a, err := m.resolveBool(ins.Args[1])
	if err != nil {
		return err
	}
	return m.store(ins.Args[0], NewBool(!a))
}
