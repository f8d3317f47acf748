// This file is part of ipp-proj.

package machine

import "strings"

// splitVar splits a "FRAME@name" lexeme into its frame role and variable
// name. The loader's lexer already guarantees this shape, so this never
// fails on a well-formed Argument.
func splitVar(lexeme string) (FrameName, string) {
	i := strings.IndexByte(lexeme, '@')
	return FrameName(lexeme[:i]), lexeme[i+1:]
}

// lookupSlot returns the slot for a var argument, or an error if its frame is
// absent (55) or the name is not declared in that frame (54).
func (m *Instance) lookupSlot(arg Argument) (*slot, error) {
	frame, name := splitVar(arg.Lexeme)
	f := m.frameFor(frame)
	if f == nil {
		return nil, newErr(ErrNoFrame, "frame %s does not exist", frame)
	}
	s, ok := f[name]
	if !ok {
		return nil, newErr(ErrUndeclaredVar, "variable %s@%s is not declared", frame, name)
	}
	return s, nil
}

// resolve reads one symb argument, producing its tagged value. Var operands
// are read through the frame slots; literal operands are converted from
// their lexeme. label/type arguments are never valid symb operands.
func (m *Instance) resolve(arg Argument) (Value, error) {
	switch arg.Type {
	case ArgVar:
		s, err := m.lookupSlot(arg)
		if err != nil {
			return Value{}, err
		}
		if s.v == nil {
			return Value{}, newErr(ErrMissingValue, "variable %s is not initialised", arg.Lexeme)
		}
		return *s.v, nil
	case ArgInt:
		n, err := ParseInt(arg.Lexeme)
		if err != nil {
			return Value{}, newErr(ErrBadOperandType, "%s", err)
		}
		return NewInt(n), nil
	case ArgBool:
		return NewBool(strings.EqualFold(arg.Lexeme, "true")), nil
	case ArgString:
		s, err := DecodeEscapes(arg.Lexeme)
		if err != nil {
			return Value{}, newErr(ErrBadOperandType, "%s", err)
		}
		return NewString(s), nil
	case ArgNil:
		return Nil, nil
	default: // ArgLabel, ArgType_
		return Value{}, newErr(ErrBadOperandType, "argument of type %v is not a valid symbol operand", arg.Type)
	}
}

// resolveVar validates that arg is a var argument naming a declared slot
// (uninitialised is fine) and returns that slot for writing.
func (m *Instance) resolveVar(arg Argument) (*slot, error) {
	return m.lookupSlot(arg)
}

// store writes a tagged value into the slot named by a var argument.
func (m *Instance) store(arg Argument, v Value) error {
	s, err := m.resolveVar(arg)
	if err != nil {
		return err
	}
	vv := v
	s.v = &vv
	return nil
}
