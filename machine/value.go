// This file is part of ipp-proj.

package machine

import (
	"math/big"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Tag is the runtime type discriminant of a Value.
type Tag uint8

// The four IPPcode23 value tags.
const (
	TagNil Tag = iota
	TagInt
	TagBool
	TagString
)

// String returns the lower-case tag name, as written by TYPE.
func (t Tag) String() string {
	switch t {
	case TagNil:
		return "nil"
	case TagInt:
		return "int"
	case TagBool:
		return "bool"
	case TagString:
		return "string"
	default:
		return "?"
	}
}

// Value is a tagged IPPcode23 runtime value: int (arbitrary precision),
// bool, string (Unicode scalar values) or nil.
type Value struct {
	Tag Tag
	I   *big.Int
	B   bool
	S   string
}

// Nil is the single nil value.
var Nil = Value{Tag: TagNil}

// NewInt wraps an *big.Int as an int Value.
func NewInt(i *big.Int) Value { return Value{Tag: TagInt, I: i} }

// NewBool wraps a bool as a bool Value.
func NewBool(b bool) Value { return Value{Tag: TagBool, B: b} }

// NewString wraps a string as a string Value.
func NewString(s string) Value { return Value{Tag: TagString, S: s} }

// Equal reports whether two values are equal per IPPcode23 EQ semantics:
// values of different tags are never equal, nil equals only nil.
func (v Value) Equal(o Value) bool {
	if v.Tag != o.Tag {
		return false
	}
	switch v.Tag {
	case TagNil:
		return true
	case TagInt:
		return v.I.Cmp(o.I) == 0
	case TagBool:
		return v.B == o.B
	case TagString:
		return v.S == o.S
	}
	return false
}

// Less orders two same-tag, non-nil values: ints and strings in the usual
// way, booleans with false < true.
func (v Value) Less(o Value) bool {
	switch v.Tag {
	case TagInt:
		return v.I.Cmp(o.I) < 0
	case TagBool:
		return !v.B && o.B
	case TagString:
		return v.S < o.S
	}
	return false
}

// ParseInt parses an IPPcode23 int literal lexeme: optional sign, then
// decimal (no leading zero unless zero itself), octal with a 0, 0o or 0O
// prefix, or hex with 0x/0X prefix, underscore digit separators allowed but never
// doubled. The lexer in loader/lex.go already rejects malformed lexemes; this
// just performs the conversion.
func ParseInt(lexeme string) (*big.Int, error) {
	s := lexeme
	neg := false
	if len(s) > 0 && (s[0] == '+' || s[0] == '-') {
		neg = s[0] == '-'
		s = s[1:]
	}
	s = strings.ReplaceAll(s, "_", "")
	base := 10
	switch {
	case len(s) >= 2 && (s[0:2] == "0x" || s[0:2] == "0X"):
		base = 16
		s = s[2:]
	case len(s) >= 2 && (s[0:2] == "0o" || s[0:2] == "0O"):
		base = 8
		s = s[2:]
	case len(s) >= 1 && s[0] == '0' && len(s) > 1 && isOctalDigits(s[1:]):
		base = 8
		s = s[1:]
	}
	n, ok := new(big.Int).SetString(s, base)
	if !ok {
		return nil, errors.Errorf("invalid integer literal %q", lexeme)
	}
	if neg {
		n.Neg(n)
	}
	return n, nil
}

func isOctalDigits(s string) bool {
	for _, c := range s {
		if c < '0' || c > '7' {
			return false
		}
	}
	return true
}

// DecodeEscapes decodes \DDD (decimal, 0-999) escape sequences into the
// corresponding Unicode code points. The lexer guarantees every backslash is
// followed by exactly three decimal digits.
func DecodeEscapes(s string) (string, error) {
	if !strings.ContainsRune(s, '\\') {
		return s, nil
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] != '\\' {
			b.WriteByte(s[i])
			continue
		}
		if i+3 >= len(s) {
			return "", errors.Errorf("truncated escape sequence in %q", s)
		}
		n, err := strconv.Atoi(s[i+1 : i+4])
		if err != nil {
			return "", errors.Wrapf(err, "invalid escape sequence in %q", s)
		}
		b.WriteRune(rune(n))
		i += 3
	}
	return b.String(), nil
}
