package main

import (
	"flag"
	"fmt"
	"ispcmd/isp"
	"ispcmd/utils"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/ansel1/merry"
)

func CMDList() error {
	flag.Parse()
	for _, e := range isp.Entries() {
		fmt.Printf("0x%04x %s\n", uint16(e.Code), e.Name)
	}
	return nil
}

func CMDLookup() error {
	flag.Parse()
	if flag.NArg() == 0 {
		return merry.New("at least one opcode name or code is required")
	}
	unknownCount := 0
	for _, arg := range flag.Args() {
		op, err := isp.ParseOpcode(arg)
		if merry.Is(err, isp.ErrUnknownOpcode) {
			fmt.Printf("%s: unknown opcode\n", arg)
			unknownCount += 1
			continue
		}
		if err != nil {
			return merry.Wrap(err)
		}
		fmt.Printf("0x%04x %s\n", uint16(op), op)
	}
	if unknownCount > 0 {
		return merry.Errorf("%d unknown opcode(s)", unknownCount)
	}
	return nil
}

func CMDCheckSet() error {
	setPath := flag.String("fw-set", "", "path to firmware opcode set .toml")
	showMissing := flag.Bool("missing", false, "also list registered opcodes absent from the set")
	flag.Parse()
	if *setPath == "" {
		return merry.New("-fw-set flag is required")
	}

	set, err := isp.LoadFirmwareSet(*setPath)
	if err != nil {
		return merry.Wrap(err)
	}
	report := isp.CheckFirmwareSet(set)

	fmt.Printf("firmware: %s\n", report.Firmware)
	fmt.Printf("known: %d, missing: %d, unknown: %d\n",
		len(report.Known), len(report.Missing), len(report.Unknown)+len(report.UnknownNames))
	for _, code := range report.Unknown {
		fmt.Printf("  unknown code: 0x%04x\n", code)
	}
	for _, name := range report.UnknownNames {
		fmt.Printf("  unknown name: %s\n", name)
	}
	for _, v := range report.OutOfRange {
		fmt.Printf("  out of range: %d\n", v)
	}
	if *showMissing {
		for _, op := range report.Missing {
			fmt.Printf("  missing: 0x%04x %s\n", uint16(op), op)
		}
	}
	if !report.OK() {
		return merry.Errorf("firmware set %s does not match the opcode table", *setPath)
	}
	return nil
}

func CMDTraceStats() error {
	dbPath := flag.String("db-path", "", "path to sqlite command trace")
	table := flag.String("table", "isp_cmd_trace", "trace table name")
	column := flag.String("column", "opcode", "opcode column name")
	flag.Parse()
	if *dbPath == "" {
		return merry.New("-db-path flag is required")
	}

	db, err := utils.OpenExistingSqlite3(*dbPath)
	if err != nil {
		return merry.Wrap(err)
	}
	defer db.Close()

	var rowsCount int64
	logPrint := utils.NewSyncInterval(10*time.Second, func() {
		log.Printf("TRACE: rows: %d", rowsCount)
	})
	stats, err := isp.CountOpcodesFromDB(db, *table, *column, func(count int64) {
		rowsCount = count
		logPrint.Trigger()
	})
	if err != nil {
		return merry.Wrap(err)
	}
	logPrint.Flush()

	unknownCount := 0
	for _, stat := range stats {
		fmt.Printf("%8d 0x%04x %s\n", stat.Count, uint16(stat.Code), stat.Name)
		if !stat.Known {
			unknownCount += 1
		}
	}
	if unknownCount > 0 {
		log.Printf("WARN: %d unknown opcode(s) in trace", unknownCount)
	}
	return nil
}

func CMDExportSqlite() error {
	dbPath := flag.String("db-path", utils.HomeDirOrEmpty(".ispcmd/isp_opcodes.sqlite"), "path to output sqlite file")
	flag.Parse()

	if err := os.MkdirAll(filepath.Dir(*dbPath), 0755); err != nil {
		return merry.Wrap(err)
	}
	db, err := utils.OpenSqlite3(*dbPath)
	if err != nil {
		return merry.Wrap(err)
	}
	defer db.Close()

	if err := isp.SaveOpcodesSqlite(db); err != nil {
		return merry.Wrap(err)
	}
	log.Printf("done, %d opcode(s) saved to %s", isp.Count(), *dbPath)
	return nil
}

func CMDSyncPG() error {
	chunkSize := flag.Int("chunk-size", 32, "opcodes per transaction")
	flag.Parse()

	db := utils.MakePGConnection()
	defer db.Close()

	if err := isp.SaveOpcodesPG(db, *chunkSize); err != nil {
		return merry.Wrap(err)
	}
	log.Printf("done, %d opcode(s) synced", isp.Count())
	return nil
}

var commands = map[string]func() error{
	"list":          CMDList,
	"lookup":        CMDLookup,
	"check-set":     CMDCheckSet,
	"trace-stats":   CMDTraceStats,
	"export-sqlite": CMDExportSqlite,
	"sync-pg":       CMDSyncPG,
}

func printUsage() {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)
	fmt.Printf("usage: %s [%s]\n", os.Args[0], strings.Join(names, "|"))
}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}
	if os.Args[1] == "-h" || os.Args[1] == "--help" {
		printUsage()
		os.Exit(2)
	}
	cmd, ok := commands[os.Args[1]]
	if !ok {
		printUsage()
		os.Exit(1)
	}

	os.Args = os.Args[1:]
	if err := cmd(); err != nil {
		println(merry.Details(err))
		os.Exit(1)
	}
}
