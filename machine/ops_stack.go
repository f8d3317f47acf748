// This file is part of ipp-proj.

package machine

func (m *Instance) opPushs(ins Instruction) error {
	v, err := m.resolve(ins.Args[0])
	if err != nil {
		return err
	}
	m.dataStack = append(m.dataStack, v)
	return nil
}

func (m *Instance) opPops(ins Instruction) error {
	if len(m.dataStack) == 0 {
		return newErr(ErrMissingValue, "data stack is empty")
	}
	n := len(m.dataStack)
	v := m.dataStack[n-1]
	m.dataStack = m.dataStack[:n-1]
	return m.store(ins.Args[0], v)
}
