// This file is part of ipp-proj.

package machine

import "math/big"

// resolveInts resolves two symb operands and requires both to be int,
// returning the error taxonomy's 53 otherwise.
func (m *Instance) resolveInts(a, b Argument) (*big.Int, *big.Int, error) {
	va, err := m.resolve(a)
	if err != nil {
		return nil, nil, err
	}
	vb, err := m.resolve(b)
	if err != nil {
		return nil, nil, err
	}
	if va.Tag != TagInt || vb.Tag != TagInt {
		return nil, nil, newErr(ErrBadOperandType, "ADD/SUB/MUL/IDIV require int operands")
	}
	return va.I, vb.I, nil
}

func (m *Instance) opAdd(ins Instruction) error {
	a, b, err := m.resolveInts(ins.Args[1], ins.Args[2])
	if err != nil {
		return err
	}
	return m.store(ins.Args[0], NewInt(new(big.Int).Add(a, b)))
}

func (m *Instance) opSub(ins Instruction) error {
	a, b, err := m.resolveInts(ins.Args[1], ins.Args[2])
	if err != nil {
		return err
	}
	return m.store(ins.Args[0], NewInt(new(big.Int).Sub(a, b)))
}

func (m *Instance) opMul(ins Instruction) error {
	a, b, err := m.resolveInts(ins.Args[1], ins.Args[2])
	if err != nil {
		return err
	}
	return m.store(ins.Args[0], NewInt(new(big.Int).Mul(a, b)))
}

func (m *Instance) opIdiv(ins Instruction) error {
	a, b, err := m.resolveInts(ins.Args[1], ins.Args[2])
	if err != nil {
		return err
	}
	if b.Sign() == 0 {
		return newErr(ErrBadValue, "division by zero")
	}
	return m.store(ins.Args[0], NewInt(floorDiv(a, b)))
}

// floorDiv computes floor(a/b): integer division rounding toward negative
// infinity, as opposed to big.Int.Quo (toward zero) or big.Int.Div
// (Euclidean, remainder always non-negative).
func floorDiv(a, b *big.Int) *big.Int {
	q, r := new(big.Int), new(big.Int)
	q.QuoRem(a, b, r)
	if r.Sign() != 0 && (r.Sign() < 0) != (b.Sign() < 0) {
		q.Sub(q, big.NewInt(1))
	}
	return q
}

// resolveComparable resolves two symb operands for LT/GT: both must resolve,
// their tags must match, and unless allowNil is set neither may be nil. EQ
// does its own nil-tolerant check in opEq.
func (m *Instance) resolveComparable(a, b Argument, allowNil bool) (Value, Value, error) {
	va, err := m.resolve(a)
	if err != nil {
		return Value{}, Value{}, err
	}
	vb, err := m.resolve(b)
	if err != nil {
		return Value{}, Value{}, err
	}
	if !allowNil && (va.Tag == TagNil || vb.Tag == TagNil) {
		return Value{}, Value{}, newErr(ErrBadOperandType, "LT/GT do not accept nil operands")
	}
	if va.Tag != vb.Tag {
		return Value{}, Value{}, newErr(ErrBadOperandType, "mismatched operand types")
	}
	return va, vb, nil
}

func (m *Instance) opLt(ins Instruction) error {
	a, b, err := m.resolveComparable(ins.Args[1], ins.Args[2], false)
	if err != nil {
		return err
	}
	return m.store(ins.Args[0], NewBool(a.Less(b)))
}

func (m *Instance) opGt(ins Instruction) error {
	a, b, err := m.resolveComparable(ins.Args[1], ins.Args[2], false)
	if err != nil {
		return err
	}
	return m.store(ins.Args[0], NewBool(b.Less(a)))
}

func (m *Instance) opEq(ins Instruction) error {
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
	return m.store(ins.Args[0], NewBool(a.Equal(b)))
}
