package isp

import (
	"database/sql"
	"regexp"
	"sort"

	"github.com/ansel1/merry"
)

type OpcodeStat struct {
	Code  Opcode
	Name  string
	Known bool
	Count int64
}

var identRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

type Scanner interface {
	Scan(dest ...interface{}) error
}

func opcodeFromRow(row Scanner) (Opcode, error) {
	var v int64
	if err := row.Scan(&v); err != nil {
		return 0, merry.Wrap(err)
	}
	if v < 0 || v > 0xffff {
		return 0, merry.Errorf("opcode value %d does not fit in 16 bits", v)
	}
	return Opcode(v), nil
}

// CountOpcodesFromDB counts opcodes stored in table.column of a captured command trace.
// Codes missing from the registry are counted too and marked with Known=false.
// progress (if not nil) is called after each row with the number of rows read so far.
func CountOpcodesFromDB(db *sql.DB, table, column string, progress func(int64)) ([]OpcodeStat, error) {
	if !identRe.MatchString(table) {
		return nil, merry.Errorf("wrong table name: %q", table)
	}
	if !identRe.MatchString(column) {
		return nil, merry.Errorf("wrong column name: %q", column)
	}

	rows, err := db.Query(`SELECT "` + column + `" FROM "` + table + `"`)
	if err != nil {
		return nil, merry.Wrap(err)
	}
	defer rows.Close()

	counts := make(map[Opcode]int64)
	var total int64
	for rows.Next() {
		op, err := opcodeFromRow(rows)
		if err != nil {
			return nil, merry.Prependf(err, "row #%d", total)
		}
		counts[op] += 1
		total += 1
		if progress != nil {
			progress(total)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, merry.Wrap(err)
	}

	stats := make([]OpcodeStat, 0, len(counts))
	for op, count := range counts {
		stats = append(stats, OpcodeStat{Code: op, Name: op.String(), Known: op.Known(), Count: count})
	}
	sort.Slice(stats, func(i, j int) bool {
		if stats[i].Count != stats[j].Count {
			return stats[i].Count > stats[j].Count
		}
		return stats[i].Code < stats[j].Code
	})
	return stats, nil
}
