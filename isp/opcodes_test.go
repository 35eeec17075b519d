package isp

import (
	"os"
	"regexp"
	"strconv"
	"sync"
	"testing"

	"github.com/ansel1/merry"
)

func TestOpcodesUnique(t *testing.T) {
	names := make(map[string]Opcode)
	codes := make(map[Opcode]string)
	for _, e := range Entries() {
		if prev, ok := names[e.Name]; ok {
			t.Errorf("duplicate name %s: 0x%04x and 0x%04x", e.Name, uint16(prev), uint16(e.Code))
		}
		if prev, ok := codes[e.Code]; ok {
			t.Errorf("duplicate code 0x%04x: %s and %s", uint16(e.Code), prev, e.Name)
		}
		names[e.Name] = e.Code
		codes[e.Code] = e.Name
	}
	if len(opcodeNames) != Count() || len(opcodeCodes) != Count() {
		t.Errorf("index sizes %d/%d, expected %d", len(opcodeNames), len(opcodeCodes), Count())
	}
	if Count() != 63 {
		t.Errorf("Count() = %d, expected 63", Count())
	}
}

func TestOpcodesMatchGenerator(t *testing.T) {
	src, err := os.ReadFile("gen/gen_opcodes.go")
	if err != nil {
		t.Fatal(err)
	}
	defRe := regexp.MustCompile(`(?m)^\s*\{"(CISP_CMD_[A-Z0-9_]+)", 0x([0-9a-fA-F]+)\},$`)
	matches := defRe.FindAllStringSubmatch(string(src), -1)
	if len(matches) != Count() {
		t.Fatalf("generator lists %d opcodes, generated table has %d", len(matches), Count())
	}
	entries := Entries()
	for i, m := range matches {
		code, err := strconv.ParseUint(m[2], 16, 16)
		if err != nil {
			t.Fatalf("generator entry %s: %s", m[1], err)
		}
		exp := Entry{Opcode(code), m[1]}
		if entries[i] != exp {
			t.Errorf("entry #%d = {0x%04x %s}, generator has {0x%04x %s}",
				i, uint16(entries[i].Code), entries[i].Name, uint16(exp.Code), exp.Name)
		}
	}
}

func TestOpcodesRoundTrip(t *testing.T) {
	for _, e := range Entries() {
		code, ok := LookupByName(e.Name)
		if !ok || code != e.Code {
			t.Errorf("LookupByName(%s) = 0x%04x, %v, expected 0x%04x", e.Name, uint16(code), ok, uint16(e.Code))
		}
		name, ok := LookupByCode(uint16(code))
		if !ok || name != e.Name {
			t.Errorf("LookupByCode(0x%04x) = %s, %v, expected %s", uint16(code), name, ok, e.Name)
		}
		if e.Code.String() != e.Name {
			t.Errorf("Opcode(0x%04x).String() = %s, expected %s", uint16(e.Code), e.Code.String(), e.Name)
		}
	}
}

func TestLookupByCode(t *testing.T) {
	testOk := func(code uint16, expName string) {
		name, ok := LookupByCode(code)
		if !ok || name != expName {
			t.Errorf("LookupByCode(0x%04x) = %q, %v, expected %q", code, name, ok, expName)
		}
	}
	testUnknown := func(code uint16) {
		name, ok := LookupByCode(code)
		if ok || name != "" {
			t.Errorf("LookupByCode(0x%04x) = %q, %v, expected unknown", code, name, ok)
		}
	}
	testOk(0x0000, "CISP_CMD_START")
	testOk(0x0001, "CISP_CMD_STOP")
	testOk(0x0101, "CISP_CMD_CH_STOP")
	testOk(0x0b01, "CISP_CMD_CH_OUTPUT_CONFIG_SET")
	testOk(0x3204, "CISP_CMD_SET_DSID_CLR_REG_BASE2")
	testOk(0x8212, "CISP_CMD_APPLE_CH_AE_FLICKER_FREQ_UPDATE_CURRENT_SET")
	testOk(0xc113, "CISP_CMD_APPLE_CH_TEMPORAL_FILTER_ENABLE")
	testUnknown(0x0002)
	testUnknown(0x0102)
	testUnknown(0xc101)
	testUnknown(0xffff)
}

func TestLookupByName(t *testing.T) {
	testOk := func(name string, expCode Opcode) {
		code, ok := LookupByName(name)
		if !ok || code != expCode {
			t.Errorf("LookupByName(%q) = 0x%04x, %v, expected 0x%04x", name, uint16(code), ok, uint16(expCode))
		}
	}
	testUnknown := func(name string) {
		code, ok := LookupByName(name)
		if ok || code != 0 {
			t.Errorf("LookupByName(%q) = 0x%04x, %v, expected unknown", name, uint16(code), ok)
		}
	}
	testOk("CISP_CMD_STOP", 0x0001)
	testOk("CISP_CMD_CH_STOP", 0x0101)
	testOk("CISP_CMD_CH_OUTPUT_CONFIG_SET", CISP_CMD_CH_OUTPUT_CONFIG_SET)
	testOk("CISP_CMD_APPLE_CH_MOTION_HISTORY_START", 0xc102)
	testUnknown("DOES_NOT_EXIST")
	testUnknown("")
	testUnknown("cisp_cmd_stop")
	testUnknown(" CISP_CMD_STOP")
}

func TestEntriesDeterministic(t *testing.T) {
	a := Entries()
	b := Entries()
	if len(a) != len(b) || len(a) != Count() {
		t.Fatalf("Entries() lengths %d and %d, expected %d", len(a), len(b), Count())
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("Entries()[%d]: %v != %v", i, a[i], b[i])
		}
	}
	if a[0] != (Entry{CISP_CMD_START, "CISP_CMD_START"}) {
		t.Errorf("first entry: %v", a[0])
	}
	if a[len(a)-1] != (Entry{CISP_CMD_APPLE_CH_TEMPORAL_FILTER_ENABLE, "CISP_CMD_APPLE_CH_TEMPORAL_FILTER_ENABLE"}) {
		t.Errorf("last entry: %v", a[len(a)-1])
	}

	// callers must not be able to change the table
	a[0].Name = "CHANGED"
	if name, _ := LookupByCode(0); name != "CISP_CMD_START" {
		t.Errorf("table changed through Entries() result: %s", name)
	}
	if Entries()[0].Name != "CISP_CMD_START" {
		t.Errorf("Entries() changed: %v", Entries()[0])
	}
}

func TestOpcodeString(t *testing.T) {
	testOk := func(op Opcode, exp string) {
		if op.String() != exp {
			t.Errorf("Opcode(0x%04x).String() = %s, expected %s", uint16(op), op.String(), exp)
		}
	}
	testOk(CISP_CMD_CH_FID_START, "CISP_CMD_CH_FID_START")
	testOk(0x0002, "UNKNOWN(0x0002)")
	testOk(0xffff, "UNKNOWN(0xffff)")
	if Opcode(0xffff).Known() {
		t.Errorf("0xffff should not be known")
	}
	if !CISP_CMD_BUILDINFO.Known() {
		t.Errorf("CISP_CMD_BUILDINFO should be known")
	}
}

func TestParseOpcode(t *testing.T) {
	testOk := func(s string, exp Opcode) {
		op, err := ParseOpcode(s)
		if err != nil {
			t.Errorf("ParseOpcode(%q) failed: %s", s, err)
		} else if op != exp {
			t.Errorf("ParseOpcode(%q) = 0x%04x, expected 0x%04x", s, uint16(op), uint16(exp))
		}
	}
	testUnknown := func(s string) {
		_, err := ParseOpcode(s)
		if !merry.Is(err, ErrUnknownOpcode) {
			t.Errorf("ParseOpcode(%q) error = %v, expected ErrUnknownOpcode", s, err)
		}
	}
	testBad := func(s string) {
		_, err := ParseOpcode(s)
		if err == nil || merry.Is(err, ErrUnknownOpcode) {
			t.Errorf("ParseOpcode(%q) error = %v, expected parse error", s, err)
		}
	}
	testOk("CISP_CMD_CH_CROP_SET", CISP_CMD_CH_CROP_SET)
	testOk(" CISP_CMD_CH_CROP_SET\n", CISP_CMD_CH_CROP_SET)
	testOk("0x0b01", CISP_CMD_CH_OUTPUT_CONFIG_SET)
	testOk("0xB01", CISP_CMD_CH_OUTPUT_CONFIG_SET)
	testOk("0", CISP_CMD_START)
	testOk("257", CISP_CMD_CH_STOP)
	testOk("017", CISP_CMD_SET_ISP_PMU_BASE)
	testOk("0X0011", CISP_CMD_SET_ISP_PMU_BASE)
	testUnknown("DOES_NOT_EXIST")
	testUnknown("")
	testUnknown("0xffff")
	testUnknown("2")
	testUnknown("-1")
	testBad("0x10000")
	testBad("0xzz")
	testBad("12abc")
	testBad("0b1")
	testBad("0o17")
	testBad("1_7")
	testBad("0x1_1")
	testBad("0x")

	_, err := ParseOpcode("0xffff")
	if err == nil || err.Error() != "unknown opcode: code 0xffff" {
		t.Errorf("unexpected error message: %v", err)
	}
}

func TestLookupConcurrent(t *testing.T) {
	entries := Entries()
	wg := sync.WaitGroup{}
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				for _, e := range entries {
					if name, ok := LookupByCode(uint16(e.Code)); !ok || name != e.Name {
						t.Errorf("concurrent LookupByCode(0x%04x) = %s, %v", uint16(e.Code), name, ok)
						return
					}
				}
			}
		}()
	}
	wg.Wait()
}
