package isp

import (
	"os"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/ansel1/merry"
)

// FirmwareSet lists the opcodes some firmware build is expected to handle.
//
//	firmware = "isp 14.2"
//	opcodes = [0x0000, 0x0001, 0x0b01]
//	names = ["CISP_CMD_CH_START"]
type FirmwareSet struct {
	Firmware string   `toml:"firmware"`
	Opcodes  []int64  `toml:"opcodes"`
	Names    []string `toml:"names"`
}

type SetReport struct {
	Firmware     string
	Known        []Opcode
	Unknown      []uint16
	UnknownNames []string
	OutOfRange   []int64
	Missing      []Opcode
}

func (r *SetReport) OK() bool {
	return len(r.Unknown) == 0 && len(r.UnknownNames) == 0 && len(r.OutOfRange) == 0
}

func ParseFirmwareSet(data []byte) (*FirmwareSet, error) {
	set := &FirmwareSet{}
	meta, err := toml.Decode(string(data), set)
	if err != nil {
		return nil, merry.Prepend(err, "firmware set")
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, key := range undecoded {
			keys[i] = key.String()
		}
		return nil, merry.Errorf("firmware set: unexpected keys: %s", strings.Join(keys, ", "))
	}
	return set, nil
}

func LoadFirmwareSet(fpath string) (*FirmwareSet, error) {
	data, err := os.ReadFile(fpath)
	if err != nil {
		return nil, merry.Wrap(err)
	}
	set, err := ParseFirmwareSet(data)
	if err != nil {
		return nil, merry.Prepend(err, fpath)
	}
	return set, nil
}

// CheckFirmwareSet compares the set against the registry.
// Known and Missing follow the table declaration order, Unknown is sorted,
// UnknownNames and OutOfRange keep the manifest order. Repeated values are reported once.
func CheckFirmwareSet(set *FirmwareSet) *SetReport {
	report := &SetReport{Firmware: set.Firmware}
	mentioned := make(map[Opcode]bool, len(set.Opcodes)+len(set.Names))
	unknown := make(map[uint16]bool)
	unknownNames := make(map[string]bool)
	outOfRange := make(map[int64]bool)

	for _, v := range set.Opcodes {
		if v < 0 || v > 0xffff {
			if !outOfRange[v] {
				report.OutOfRange = append(report.OutOfRange, v)
				outOfRange[v] = true
			}
			continue
		}
		op := Opcode(v)
		if !op.Known() {
			unknown[uint16(v)] = true
			continue
		}
		mentioned[op] = true
	}
	for _, name := range set.Names {
		op, ok := LookupByName(name)
		if !ok {
			if !unknownNames[name] {
				report.UnknownNames = append(report.UnknownNames, name)
				unknownNames[name] = true
			}
			continue
		}
		mentioned[op] = true
	}

	for code := range unknown {
		report.Unknown = append(report.Unknown, code)
	}
	sort.Slice(report.Unknown, func(i, j int) bool { return report.Unknown[i] < report.Unknown[j] })

	for _, e := range opcodeEntries {
		if mentioned[e.Code] {
			report.Known = append(report.Known, e.Code)
		} else {
			report.Missing = append(report.Missing, e.Code)
		}
	}
	return report
}
