// Package isp holds the command opcode table of the ISP firmware interface.
//
// The table is immutable: it is generated into opcodes_generated.go and indexed
// once at package initialization, so lookups are safe from any goroutine.
package isp

//go:generate go run gen/gen_opcodes.go -fname opcodes_generated.go

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ansel1/merry"
)

type Opcode uint16

type Entry struct {
	Code Opcode
	Name string
}

var ErrUnknownOpcode = merry.New("unknown opcode")

var opcodeNames, opcodeCodes = indexEntries(opcodeEntries)

func indexEntries(entries []Entry) (map[Opcode]string, map[string]Opcode) {
	names := make(map[Opcode]string, len(entries))
	codes := make(map[string]Opcode, len(entries))
	for _, e := range entries {
		names[e.Code] = e.Name
		codes[e.Name] = e.Code
	}
	return names, codes
}

// LookupByCode returns the symbolic name of code.
// Codes missing from the table (reserved or newer firmware) are reported with ok=false.
func LookupByCode(code uint16) (string, bool) {
	name, ok := opcodeNames[Opcode(code)]
	return name, ok
}

func LookupByName(name string) (Opcode, bool) {
	code, ok := opcodeCodes[name]
	return code, ok
}

// Entries returns a copy of the whole table in declaration order.
func Entries() []Entry {
	res := make([]Entry, len(opcodeEntries))
	copy(res, opcodeEntries)
	return res
}

func Count() int {
	return len(opcodeEntries)
}

func (op Opcode) Known() bool {
	_, ok := opcodeNames[op]
	return ok
}

func (op Opcode) String() string {
	if name, ok := opcodeNames[op]; ok {
		return name
	}
	return fmt.Sprintf("UNKNOWN(0x%04x)", uint16(op))
}

// ParseOpcode accepts a registered name, a 0x-prefixed hex code or a decimal code.
func ParseOpcode(s string) (Opcode, error) {
	s = strings.TrimSpace(s)
	if code, ok := opcodeCodes[s]; ok {
		return code, nil
	}
	if s == "" || !(s[0] >= '0' && s[0] <= '9') {
		return 0, merry.Appendf(ErrUnknownOpcode, "name %q", s)
	}
	// explicit bases: no octal for leading zeros, no 0b/0o prefixes, no '_' separators
	var v uint64
	var err error
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		v, err = strconv.ParseUint(s[2:], 16, 16)
	} else {
		v, err = strconv.ParseUint(s, 10, 16)
	}
	if err != nil {
		return 0, merry.Prepend(err, "parse opcode")
	}
	op := Opcode(v)
	if !op.Known() {
		return op, merry.Appendf(ErrUnknownOpcode, "code 0x%04x", v)
	}
	return op, nil
}
