// This file is part of ipp-proj.

package machine

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

func (m *Instance) opRead(ins Instruction) error {
	arg := ins.Args[0]
	typ := ins.Args[1].Lexeme

	line, ok := m.input.ReadLine()
	if !ok {
		return m.store(arg, Nil)
	}
	switch typ {
	case "int":
		n, err := ParseInt(strings.TrimSpace(line))
		if err != nil {
			return m.store(arg, Nil)
		}
		return m.store(arg, NewInt(n))
	case "bool":
		return m.store(arg, NewBool(strings.EqualFold(strings.TrimSpace(line), "true")))
	case "string":
		return m.store(arg, NewString(line))
	default:
		return newErr(ErrBadOperandType, "READ: unknown type %q", typ)
	}
}

func (m *Instance) opWrite(ins Instruction) error {
	v, err := m.resolve(ins.Args[0])
	if err != nil {
		return err
	}
	fmt.Fprint(m.stdout, formatValue(v))
	return nil
}

// formatValue renders a Value the way WRITE prints it: booleans as
// true/false, nil as the empty string, ints in decimal, strings with
// escapes already decoded (resolve has done that).
func formatValue(v Value) string {
	switch v.Tag {
	case TagBool:
		if v.B {
			return "true"
		}
		return "false"
	case TagNil:
		return ""
	case TagInt:
		return v.I.String()
	case TagString:
		return v.S
	}
	return ""
}

// writeDiag writes s to the diagnostic stream (DPRINT/BREAK). Once a write
// has failed, m.diagErr sticks and every later diagnostic is silently
// dropped instead of hitting the same broken stream (e.g. a closed stderr
// pipe) on every remaining instruction.
func (m *Instance) writeDiag(s string) {
	if m.diagErr != nil {
		return
	}
	if _, err := fmt.Fprint(m.stderr, s); err != nil {
		m.diagErr = errors.Wrap(err, "diagnostic write failed")
	}
}

func (m *Instance) opDprint(ins Instruction) error {
	m.writeDiag(ins.Args[0].Lexeme)
	return nil
}

func (m *Instance) opBreak(ins Instruction) error {
	var b strings.Builder
	fmt.Fprintf(&b, "Position in code: %d\n", m.PC)
	fmt.Fprintf(&b, "Global frame: %s\n", dumpFrame(m.gf))
	if m.lf != nil {
		fmt.Fprintf(&b, "Local frame: %s\n", dumpFrame(m.lf))
	} else {
		fmt.Fprintf(&b, "Local frame: <none>\n")
	}
	if m.tf != nil {
		fmt.Fprintf(&b, "Temporary frame: %s\n", dumpFrame(m.tf))
	} else {
		fmt.Fprintf(&b, "Temporary frame: <none>\n")
	}
	fmt.Fprintf(&b, "Instructions executed: %d\n", m.insCount)
	m.writeDiag(b.String())
	return nil
}

func dumpFrame(f Frame) string {
	if len(f) == 0 {
		return "{}"
	}
	var b strings.Builder
	b.WriteByte('{')
	first := true
	for name, s := range f {
		if !first {
			b.WriteString(", ")
		}
		first = false
		b.WriteString(name)
		b.WriteByte('=')
		if s.v == nil {
			b.WriteString("<uninitialised>")
		} else {
			b.WriteString(formatValue(*s.v))
		}
	}
	b.WriteByte('}')
	return b.String()
}

// exitSignal is panicked by EXIT and recovered by Run: it is the idiomatic
// rendering of "terminate the process from within the handler" without the
// library itself calling os.Exit.
type exitSignal struct{ code int }

func (m *Instance) opExit(ins Instruction) error {
	v, err := m.resolve(ins.Args[0])
	if err != nil {
		return err
	}
	if v.Tag != TagInt {
		return newErr(ErrBadOperandType, "EXIT requires an int operand")
	}
	if !v.I.IsInt64() {
		return newErr(ErrBadValue, "exit code %s out of range [0,49]", v.I)
	}
	code := v.I.Int64()
	if code < 0 || code > 49 {
		return newErr(ErrBadValue, "exit code %d out of range [0,49]", code)
	}
	panic(exitSignal{int(code)})
}
