// This file is part of ipp-proj.

package loader

import (
	"encoding/xml"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/youruncle1/ipp-proj/machine"
)

// Error is a load-time (XML structure / label) failure: code 32 or 52.
// Code 31 (malformed XML) is raised by the caller when xml.Unmarshal itself
// fails, before Load is ever invoked — Load assumes a syntactically valid
// element tree (spec §4.1).
type Error struct {
	Code    int
	Message string
}

func (e *Error) Error() string { return fmt.Sprintf("error %d: %s", e.Code, e.Message) }

func fail32(format string, args ...interface{}) error {
	return &Error{Code: 32, Message: fmt.Sprintf(format, args...)}
}

func fail52(format string, args ...interface{}) error {
	return &Error{Code: 52, Message: fmt.Sprintf(format, args...)}
}

// XMLProgram is the generic element tree produced by decoding the program's
// XML document. It captures every child element (not just "instruction")
// and, per instruction, every child element (not just arg1..arg3) so that
// Load can reject unexpected structure explicitly instead of having
// encoding/xml silently ignore it.
type XMLProgram struct {
	XMLName  xml.Name   `xml:"program"`
	Language string     `xml:"language,attr"`
	Children []xmlElem `xml:",any"`
}

type xmlElem struct {
	XMLName xml.Name
	Order   string    `xml:"order,attr"`
	Opcode  string    `xml:"opcode,attr"`
	Type    string    `xml:"type,attr"`
	Text    string    `xml:",chardata"`
	Args    []xmlElem `xml:",any"`
}

// Load validates the header and every instruction element of an
// already-decoded XML program tree, returning the instruction stream sorted
// by ascending order and a label-name to instruction-index map.
func Load(root *XMLProgram) ([]machine.Instruction, map[string]int, error) {
	if root.XMLName.Local != "program" || root.Language != "IPPcode23" {
		return nil, nil, fail32("invalid program header: root=%q language=%q", root.XMLName.Local, root.Language)
	}

	var instrs []machine.Instruction
	orders := make(map[int]struct{})
	labels := make(map[string]int)

	for _, el := range root.Children {
		if el.XMLName.Local != "instruction" {
			return nil, nil, fail32("unexpected element %q inside <program>", el.XMLName.Local)
		}
		ins, err := parseInstruction(el)
		if err != nil {
			return nil, nil, err
		}
		if _, dup := orders[ins.Order]; dup {
			return nil, nil, fail32("duplicate instruction order %d", ins.Order)
		}
		orders[ins.Order] = struct{}{}
		instrs = append(instrs, ins)
	}

	sort.Slice(instrs, func(i, j int) bool { return instrs[i].Order < instrs[j].Order })

	for idx, ins := range instrs {
		if ins.Opcode == machine.OpLabel {
			name := ins.Args[0].Lexeme
			if _, dup := labels[name]; dup {
				return nil, nil, fail52("duplicate label %q at instruction order %d", name, ins.Order)
			}
			labels[name] = idx
		}
	}

	return instrs, labels, nil
}

func parseInstruction(el xmlElem) (machine.Instruction, error) {
	order, err := strconv.Atoi(el.Order)
	if err != nil || order < 1 {
		return machine.Instruction{}, fail32("invalid order attribute %q", el.Order)
	}

	name := strings.ToUpper(el.Opcode)
	op, arity, ok := machine.OpcodeArity(name)
	if !ok {
		return machine.Instruction{}, fail32("unknown opcode %q in instruction order %d", el.Opcode, order)
	}

	args, err := parseArgs(el.Args, arity, order)
	if err != nil {
		return machine.Instruction{}, err
	}

	return machine.Instruction{
		Order:  order,
		Opcode: op,
		Name:   name,
		Args:   args,
		Arity:  arity,
	}, nil
}

func parseArgs(children []xmlElem, arity, order int) ([3]machine.Argument, error) {
	var out [3]machine.Argument
	seen := make(map[int]xmlElem, arity)

	for _, c := range children {
		idx, ok := argIndex(c.XMLName.Local)
		if !ok {
			return out, fail32("unexpected argument tag %q in instruction order %d", c.XMLName.Local, order)
		}
		if _, dup := seen[idx]; dup {
			return out, fail32("duplicate argument tag %q in instruction order %d", c.XMLName.Local, order)
		}
		seen[idx] = c
	}

	if len(seen) != arity {
		return out, fail32("instruction order %d expects %d argument(s), got %d", order, arity, len(seen))
	}

	for i := 1; i <= arity; i++ {
		c, ok := seen[i]
		if !ok {
			return out, fail32("missing arg%d in instruction order %d", i, order)
		}
		text := strings.TrimSpace(c.Text)
		argType, ok := validateArg(c.Type, text)
		if !ok {
			return out, fail32("invalid argument type/value (type=%q value=%q) in instruction order %d", c.Type, text, order)
		}
		out[i-1] = machine.Argument{Type: argType, Lexeme: text}
	}

	return out, nil
}

// argIndex maps "arg1"/"arg2"/"arg3" to its 1-based position; anything else
// is not a valid argument tag.
func argIndex(tag string) (int, bool) {
	if len(tag) != 4 || tag[:3] != "arg" {
		return 0, false
	}
	switch tag[3] {
	case '1':
		return 1, true
	case '2':
		return 2, true
	case '3':
		return 3, true
	default:
		return 0, false
	}
}
