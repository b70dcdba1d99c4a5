package cpu

import (
	"math"
	"strings"
)

// ParseLiteral parses the leading decimal integer of a token.
//
// Leading blanks and a single sign are accepted, and the scan stops at the
// first non-digit. A token without digits parses as 0. Values beyond the
// int64 range saturate.
func ParseLiteral(token string) (value int64) {
	token = strings.TrimLeft(token, " \t\n\v\f\r")

	negative := false
	if len(token) > 0 && (token[0] == '+' || token[0] == '-') {
		negative = token[0] == '-'
		token = token[1:]
	}

	for _, ch := range []byte(token) {
		if ch < '0' || ch > '9' {
			break
		}
		digit := int64(ch - '0')
		if value > (math.MaxInt64-digit)/10 {
			value = math.MaxInt64
			break
		}
		value = value*10 + digit
	}

	if negative {
		value = -value
	}

	return
}

// Word converts a parsed literal to a machine word, wrapping negative and
// oversized values.
func Word(value int64) uint32 {
	return uint32(value)
}

// Resolve returns the value of an operand: the current contents of the
// register it names, or its literal value.
func (cpu *Cpu) Resolve(operand Operand) uint32 {
	if operand.IsRegister {
		return cpu.Register[operand.Register]
	}
	return Word(ParseLiteral(operand.Token))
}
