package cpu

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecode(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		line    string
		fields  Fields
		comment bool
	}){
		{"SET REGA 5", Fields{"SET", "REGA", "5"}, false},
		{"SET REGA 5\n", Fields{"SET", "REGA", "5"}, false},
		{"SET REGA 5\r\n", Fields{"SET", "REGA", "5"}, false},
		{"PRT REGA", Fields{"PRT", "REGA", ""}, false},
		{"NOP", Fields{"NOP", "", ""}, false},
		{"", Fields{}, false},
		{"ADD REGA 3 trailing words here", Fields{"ADD", "REGA", "3"}, false},
		{"SET  REGA", Fields{"SET", "", "REGA"}, false},
		{"# a comment", Fields{}, true},
		{"#SET REGA 5", Fields{}, true},
		{" # not a comment", Fields{"", "#", "not"}, false},
	}

	for _, entry := range table {
		fields, comment, err := Decode(entry.line)
		assert.NoError(err, entry.line)
		assert.Equal(entry.comment, comment, entry.line)
		assert.Equal(entry.fields, fields, entry.line)
	}
}

func TestDecodeRange(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		line string
		err  error
	}){
		{"NOPE", ErrOpcodeRange},
		{"SET REGAB 5", ErrOperandRange},
		{"SET REGA 12345", ErrOperandRange},
		{"JMP 10000", ErrOperandRange},
	}

	for _, entry := range table {
		_, _, err := Decode(entry.line)
		assert.ErrorIs(err, ErrDecode, entry.line)
		assert.ErrorIs(err, entry.err, entry.line)

		var el ErrLength
		assert.True(errors.As(err, &el), entry.line)
	}

	// Fields beyond arg2 are not bounds checked.
	_, _, err := Decode("SET REGA 5 overlong-trailer")
	assert.NoError(err)
}

func TestDecoderCache(t *testing.T) {
	assert := assert.New(t)

	dec, err := NewDecoder(0)
	assert.NoError(err)
	assert.NotNil(dec.cache)

	fields, comment, err := dec.Decode("ADD REGB 7")
	assert.NoError(err)
	assert.False(comment)
	assert.Equal(Fields{"ADD", "REGB", "7"}, fields)
	assert.True(dec.cache.Contains("ADD REGB 7"))

	fields, _, err = dec.Decode("ADD REGB 7")
	assert.NoError(err)
	assert.Equal(Fields{"ADD", "REGB", "7"}, fields)

	_, comment, err = dec.Decode("# note")
	assert.NoError(err)
	assert.True(comment)
	assert.False(dec.cache.Contains("# note"))

	_, _, err = dec.Decode("FOOD")
	assert.ErrorIs(err, ErrDecode)
	assert.False(dec.cache.Contains("FOOD"))

	dec.Purge()
	assert.Equal(0, dec.cache.Len())
}

func TestDecoderNoCache(t *testing.T) {
	assert := assert.New(t)

	dec, err := NewDecoder(-1)
	assert.NoError(err)
	assert.Nil(dec.cache)

	fields, _, err := dec.Decode("SHL REGC 2")
	assert.NoError(err)
	assert.Equal(Fields{"SHL", "REGC", "2"}, fields)

	dec.Purge()
}

func FuzzDecode(f *testing.F) {
	f.Add("SET REGA 5")
	f.Add("# comment")
	f.Add("JMP 0")
	f.Add("")

	f.Fuzz(func(t *testing.T, line string) {
		assert := assert.New(t)

		fields, comment, err := Decode(line)
		if comment {
			assert.Equal(Fields{}, fields)
			assert.NoError(err)
			return
		}
		if err != nil {
			assert.ErrorIs(err, ErrDecode)
			return
		}
		assert.LessOrEqual(len(fields.Opcode), OPCODE_LENGTH)
		assert.LessOrEqual(len(fields.Arg1), ARG_LENGTH)
		assert.LessOrEqual(len(fields.Arg2), ARG_LENGTH)
	})
}
