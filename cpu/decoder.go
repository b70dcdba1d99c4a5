package cpu

import (
	"errors"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
)

const (
	COMMENT_MARKER    = '#' // Lines starting with this are skipped.
	DECODE_CACHE_SIZE = 128 // Default number of cached decoded lines.
)

// Decode splits one source line into its opcode and operand tokens.
//
// Comment lines return comment == true and no fields. Otherwise the line is
// split on single spaces into the opcode, arg1 and arg2 fields in that
// order; anything after the third field is ignored. Trailing line
// terminators are dropped first.
func Decode(line string) (fields Fields, comment bool, err error) {
	if len(line) > 0 && line[0] == COMMENT_MARKER {
		comment = true
		return
	}

	line = strings.TrimRight(line, "\r\n")

	words := strings.SplitN(line, " ", 4)
	out := [3](*string){&fields.Opcode, &fields.Arg1, &fields.Arg2}
	for n := range min(len(words), len(out)) {
		*out[n] = words[n]
	}

	if len(fields.Opcode) > OPCODE_LENGTH {
		err = errors.Join(ErrDecode, ErrOpcodeRange, ErrLength{Token: fields.Opcode, Limit: OPCODE_LENGTH})
		return
	}

	for _, arg := range []string{fields.Arg1, fields.Arg2} {
		if len(arg) > ARG_LENGTH {
			err = errors.Join(ErrDecode, ErrOperandRange, ErrLength{Token: arg, Limit: ARG_LENGTH})
			return
		}
	}

	return
}

// Decoder decodes source lines, remembering the fields of recently decoded
// lines.
type Decoder struct {
	cache *lru.Cache[string, Fields]
}

// NewDecoder creates a decoder caching up to size lines. If size is 0 the
// DECODE_CACHE_SIZE default is used; if negative, no cache is used.
func NewDecoder(size int) (dec *Decoder, err error) {
	if size == 0 {
		size = DECODE_CACHE_SIZE
	}

	dec = &Decoder{}
	if size > 0 {
		dec.cache, err = lru.New[string, Fields](size)
		if err != nil {
			return nil, err
		}
	}

	return
}

// Decode decodes a line as Decode does. Only successfully decoded
// instruction lines are cached.
func (dec *Decoder) Decode(line string) (fields Fields, comment bool, err error) {
	if dec.cache != nil {
		var ok bool
		fields, ok = dec.cache.Get(line)
		if ok {
			return
		}
	}

	fields, comment, err = Decode(line)
	if err != nil || comment || dec.cache == nil {
		return
	}

	dec.cache.Add(line, fields)
	return
}

// Purge empties the decode cache.
func (dec *Decoder) Purge() {
	if dec.cache != nil {
		dec.cache.Purge()
	}
}
