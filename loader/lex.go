// This file is part of ipp-proj.

// Package loader consumes an already-parsed XML program element tree and
// produces an ordered, type-checked instruction stream plus a label index,
// or a load-time error. It performs no execution-time semantic checks
// beyond label uniqueness; operand type errors are detected by package
// machine at use time.
package loader

import (
	"regexp"

	"github.com/youruncle1/ipp-proj/machine"
)

var argPatterns = map[string]*regexp.Regexp{
	"var":    regexp.MustCompile(`^(LF|TF|GF)@[A-Za-z_\-$&%*!?][A-Za-z0-9_\-$&%*!?]*$`),
	"type":   regexp.MustCompile(`^(bool|int|string)$`),
	"label":  regexp.MustCompile(`^[A-Za-z_\-$&%*!?][A-Za-z0-9_\-$&%*!?]*$`),
	"nil":    regexp.MustCompile(`^nil$`),
	"bool":   regexp.MustCompile(`^(true|false)$`),
	"int":    regexp.MustCompile(`^[+-]?(?:(?:0[oO]?[0-7]+(?:_[0-7]+)*)|(?:0[xX][0-9a-fA-F]+(?:_[0-9a-fA-F]+)*)|(?:0|[1-9][0-9]*(?:_[0-9]+)*))$`),
	"string": regexp.MustCompile(`^(?:[^\\]|\\[0-9]{3})*$`),
}

var argTypeTags = map[string]machine.ArgType{
	"var":    machine.ArgVar,
	"label":  machine.ArgLabel,
	"type":   machine.ArgType_,
	"nil":    machine.ArgNil,
	"bool":   machine.ArgBool,
	"int":    machine.ArgInt,
	"string": machine.ArgString,
}

// validateArg checks that typ is a known argument kind and text matches its
// lexical rule, returning the corresponding machine.ArgType on success.
func validateArg(typ, text string) (machine.ArgType, bool) {
	pat, ok := argPatterns[typ]
	if !ok {
		return 0, false
	}
	if !pat.MatchString(text) {
		return 0, false
	}
	return argTypeTags[typ], true
}
