// This file is part of ipp-proj.

package machine

// handler is the signature implemented by every opcode's execution logic.
type handler func(*Instance, Instruction) error

var handlers = map[Opcode]handler{
	OpMove:        (*Instance).opMove,
	OpCreateFrame: (*Instance).opCreateFrame,
	OpPushFrame:   (*Instance).opPushFrame,
	OpPopFrame:    (*Instance).opPopFrame,
	OpDefVar:      (*Instance).opDefVar,
	OpCall:        (*Instance).opCall,
	OpReturn:      (*Instance).opReturn,
	OpPushs:       (*Instance).opPushs,
	OpPops:        (*Instance).opPops,
	OpAdd:         (*Instance).opAdd,
	OpSub:         (*Instance).opSub,
	OpMul:         (*Instance).opMul,
	OpIdiv:        (*Instance).opIdiv,
	OpLt:          (*Instance).opLt,
	OpGt:          (*Instance).opGt,
	OpEq:          (*Instance).opEq,
	OpAnd:         (*Instance).opAnd,
	OpOr:          (*Instance).opOr,
	OpNot:         (*Instance).opNot,
	OpInt2Char:    (*Instance).opInt2Char,
	OpStri2Int:    (*Instance).opStri2Int,
	OpRead:        (*Instance).opRead,
	OpWrite:       (*Instance).opWrite,
	OpConcat:      (*Instance).opConcat,
	OpStrlen:      (*Instance).opStrlen,
	OpGetChar:     (*Instance).opGetChar,
	OpSetChar:     (*Instance).opSetChar,
	OpType:        (*Instance).opType,
	OpLabel:       (*Instance).opLabel,
	OpJump:        (*Instance).opJump,
	OpJumpIfEq:    (*Instance).opJumpIfEq,
	OpJumpIfNeq:   (*Instance).opJumpIfNeq,
	OpExit:        (*Instance).opExit,
	OpDprint:      (*Instance).opDprint,
	OpBreak:       (*Instance).opBreak,
}

// Run executes instructions in ascending PC order starting from the current
// PC until the program counter runs off the end of the instruction stream
// (normal exit, code 0), an EXIT instruction fires (exit with its operand),
// or a handler reports a numeric-taxonomy failure.
//
// Jumps and CALL set PC to the target LABEL's index themselves (see
// ops_flow.go); the step loop's ordinary PC++ is skipped for those by
// checking the jumped flag a handler leaves set, which is exactly equivalent
// to the jump target being PC-1 at the point the increment would otherwise
// apply (spec §4.4). RETURN restores the saved index of the CALL without
// setting the flag, so the ordinary PC++ moves execution past that CALL.
func (m *Instance) Run() (exitCode int, err error) {
	defer func() {
		if r := recover(); r != nil {
			if sig, ok := r.(exitSignal); ok {
				exitCode = sig.code
				err = nil
				return
			}
			panic(r)
		}
	}()

	m.insCount = 0
	for m.PC < len(m.Image) {
		ins := m.Image[m.PC]
		h, ok := handlers[ins.Opcode]
		if !ok {
			return 99, newErr(99, "unknown opcode %s", ins.Name)
		}
		m.jumped = false
		if herr := h(m, ins); herr != nil {
			e, ok := herr.(*Error)
			if !ok {
				e = newErr(99, "%s", herr)
			}
			e.Order = ins.Order
			e.Opcode = ins.Name
			return e.Code, e
		}
		m.insCount++
		if !m.jumped {
			m.PC++
		}
	}
	return 0, nil
}
