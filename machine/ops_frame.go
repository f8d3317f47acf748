// This file is part of ipp-proj.

package machine

func (m *Instance) opDefVar(ins Instruction) error {
	arg := ins.Args[0]
	frame, name := splitVar(arg.Lexeme)
	f := m.frameFor(frame)
	if f == nil {
		return newErr(ErrNoFrame, "frame %s does not exist", frame)
	}
	if _, ok := f[name]; ok {
		return newErr(ErrBadLabel, "variable %s already declared", arg.Lexeme)
	}
	f[name] = &slot{}
	return nil
}

func (m *Instance) opCreateFrame(ins Instruction) error {
	m.tf = newFrame()
	return nil
}

func (m *Instance) opPushFrame(ins Instruction) error {
	if m.tf == nil {
		return newErr(ErrNoFrame, "temporary frame does not exist")
	}
	m.frameStack = append(m.frameStack, m.tf)
	m.lf = m.tf
	m.tf = nil
	return nil
}

func (m *Instance) opPopFrame(ins Instruction) error {
	if m.lf == nil {
		return newErr(ErrNoFrame, "local frame does not exist")
	}
	n := len(m.frameStack)
	m.tf = m.frameStack[n-1]
	m.frameStack = m.frameStack[:n-1]
	if len(m.frameStack) > 0 {
		m.lf = m.frameStack[len(m.frameStack)-1]
	} else {
		m.lf = nil
	}
	return nil
}

func (m *Instance) opMove(ins Instruction) error {
	v, err := m.resolve(ins.Args[1])
	if err != nil {
		return err
	}
	return m.store(ins.Args[0], v)
}
