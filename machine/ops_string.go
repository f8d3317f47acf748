// This file is part of ipp-proj.

package machine

import (
	"math/big"
	"unicode/utf8"
)

func (m *Instance) opInt2Char(ins Instruction) error {
	v, err := m.resolve(ins.Args[1])
	if err != nil {
		return err
	}
	if v.Tag != TagInt {
		return newErr(ErrBadOperandType, "INT2CHAR requires an int operand")
	}
	if !v.I.IsInt64() {
		return newErr(ErrBadStringOp, "%s is not a valid Unicode scalar value", v.I)
	}
	r := rune(v.I.Int64())
	if !utf8.ValidRune(r) {
		return newErr(ErrBadStringOp, "%d is not a valid Unicode scalar value", v.I)
	}
	return m.store(ins.Args[0], NewString(string(r)))
}

func (m *Instance) opStri2Int(ins Instruction) error {
	sv, err := m.resolve(ins.Args[1])
	if err != nil {
		return err
	}
	iv, err := m.resolve(ins.Args[2])
	if err != nil {
		return err
	}
	if sv.Tag != TagString || iv.Tag != TagInt {
		return newErr(ErrBadOperandType, "STRI2INT requires (string, int) operands")
	}
	rs := []rune(sv.S)
	idx, ok := smallIndex(iv.I, len(rs))
	if !ok {
		return newErr(ErrBadStringOp, "index %s out of range for string of length %d", iv.I, len(rs))
	}
	return m.store(ins.Args[0], NewInt(big.NewInt(int64(rs[idx]))))
}

func (m *Instance) opConcat(ins Instruction) error {
	a, err := m.resolve(ins.Args[1])
	if err != nil {
		return err
	}
	b, err := m.resolve(ins.Args[2])
	if err != nil {
		return err
	}
	if a.Tag != TagString || b.Tag != TagString {
		return newErr(ErrBadOperandType, "CONCAT requires string operands")
	}
	return m.store(ins.Args[0], NewString(a.S+b.S))
}

func (m *Instance) opStrlen(ins Instruction) error {
	v, err := m.resolve(ins.Args[1])
	if err != nil {
		return err
	}
	if v.Tag != TagString {
		return newErr(ErrBadOperandType, "STRLEN requires a string operand")
	}
	return m.store(ins.Args[0], NewInt(big.NewInt(int64(len([]rune(v.S))))))
}

func (m *Instance) opGetChar(ins Instruction) error {
	sv, err := m.resolve(ins.Args[1])
	if err != nil {
		return err
	}
	iv, err := m.resolve(ins.Args[2])
	if err != nil {
		return err
	}
	if sv.Tag != TagString || iv.Tag != TagInt {
		return newErr(ErrBadOperandType, "GETCHAR requires (string, int) operands")
	}
	rs := []rune(sv.S)
	idx, ok := smallIndex(iv.I, len(rs))
	if !ok {
		return newErr(ErrBadStringOp, "index %s out of range for string of length %d", iv.I, len(rs))
	}
	return m.store(ins.Args[0], NewString(string(rs[idx])))
}

func (m *Instance) opSetChar(ins Instruction) error {
	cur, err := m.resolve(ins.Args[0])
	if err != nil {
		return err
	}
	if cur.Tag != TagString {
		return newErr(ErrBadOperandType, "SETCHAR target must hold a string")
	}
	iv, err := m.resolve(ins.Args[1])
	if err != nil {
		return err
	}
	cv, err := m.resolve(ins.Args[2])
	if err != nil {
		return err
	}
	if iv.Tag != TagInt || cv.Tag != TagString {
		return newErr(ErrBadOperandType, "SETCHAR requires (int, string) operands")
	}
	rc := []rune(cv.S)
	if len(rc) == 0 {
		return newErr(ErrBadStringOp, "SETCHAR replacement string is empty")
	}
	rs := []rune(cur.S)
	idx, ok := smallIndex(iv.I, len(rs))
	if !ok {
		return newErr(ErrBadStringOp, "index %s out of range for string of length %d", iv.I, len(rs))
	}
	rs[idx] = rc[0]
	return m.store(ins.Args[0], NewString(string(rs)))
}

func (m *Instance) opType(ins Instruction) error {
	arg := ins.Args[1]
	var tag string
	switch arg.Type {
	case ArgVar:
		v, err := m.resolve(arg)
		if err != nil {
			if e, ok := err.(*Error); ok && e.Code == ErrMissingValue {
				tag = ""
				break
			}
			return err
		}
		tag = v.Tag.String()
	case ArgInt:
		tag = "int"
	case ArgBool:
		tag = "bool"
	case ArgString:
		tag = "string"
	case ArgNil:
		tag = "nil"
	default:
		return newErr(ErrBadOperandType, "TYPE does not accept label/type arguments")
	}
	return m.store(ins.Args[0], NewString(tag))
}

// smallIndex converts a big.Int index into an in-range int index for a
// string of the given length in code points.
func smallIndex(i *big.Int, length int) (int, bool) {
	if !i.IsInt64() {
		return 0, false
	}
	n := i.Int64()
	if n < 0 || n >= int64(length) {
		return 0, false
	}
	return int(n), true
}
