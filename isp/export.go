package isp

import (
	"database/sql"
	"ispcmd/utils"
	"strconv"
	"strings"

	"github.com/ansel1/merry"
	"github.com/go-pg/pg/v10"
)

type execFunc func(query string, params ...interface{}) error

const sqliteUpsertQuery = `
	INSERT INTO isp_opcodes (code, name) VALUES (?, ?)
	ON CONFLICT (code) DO UPDATE SET
		name = EXCLUDED.name`

const pgUpsertQuery = `
	INSERT INTO isp_opcodes (code, name) VALUES (?, ?)
	ON CONFLICT (code) DO UPDATE SET
		name = EXCLUDED.name,
		updated_at = now()`

// syncOpcode makes isp_opcodes hold e. Both code and name are unique there,
// so rows holding e.Code under another name or e.Name under another code
// (moved or swapped opcodes of an older table) are removed before the upsert.
func syncOpcode(exec execFunc, upsertQuery string, e Entry) error {
	err := exec(`
		DELETE FROM isp_opcodes
		WHERE (code = ? AND name <> ?) OR (name = ? AND code <> ?)`,
		int(e.Code), e.Name, e.Name, int(e.Code))
	if err != nil {
		return merry.Prependf(err, "clear conflicts of %s", e.Name)
	}
	if err := exec(upsertQuery, int(e.Code), e.Name); err != nil {
		return merry.Prependf(err, "upsert %s", e.Name)
	}
	return nil
}

// deleteStaleQuery removes rows whose codes are not registered.
// The list is built from the table itself, never from input.
func deleteStaleQuery() string {
	codes := make([]string, len(opcodeEntries))
	for i, e := range opcodeEntries {
		codes[i] = strconv.Itoa(int(e.Code))
	}
	return `DELETE FROM isp_opcodes WHERE code NOT IN (` + strings.Join(codes, ", ") + `)`
}

// SaveOpcodesSqlite creates isp_opcodes if needed and brings it in line with the table.
func SaveOpcodesSqlite(db *sql.DB) error {
	tx, err := db.Begin()
	if err != nil {
		return merry.Wrap(err)
	}
	defer tx.Rollback()

	exec := func(query string, params ...interface{}) error {
		_, err := tx.Exec(query, params...)
		return merry.Wrap(err)
	}

	err = exec(`
		CREATE TABLE IF NOT EXISTS isp_opcodes (
			code INTEGER PRIMARY KEY,
			name TEXT NOT NULL UNIQUE
		)`)
	if err != nil {
		return err
	}
	for _, e := range opcodeEntries {
		if err := syncOpcode(exec, sqliteUpsertQuery, e); err != nil {
			return err
		}
	}
	if err := exec(deleteStaleQuery()); err != nil {
		return err
	}
	return merry.Wrap(tx.Commit())
}

// SaveOpcodesPG brings isp_opcodes (see migrations) in line with the table.
// Each chunk is its own transaction; every opcode's conflict cleanup and upsert
// share one, so an interrupted sync leaves a consistent subset and can be rerun.
func SaveOpcodesPG(db *pg.DB, chunkSize int) error {
	entriesChan := make(chan interface{}, len(opcodeEntries))
	for _, e := range opcodeEntries {
		entriesChan <- e
	}
	close(entriesChan)

	err := utils.SaveChunked(db, chunkSize, entriesChan, func(tx *pg.Tx, items []interface{}) error {
		exec := func(query string, params ...interface{}) error {
			_, err := tx.Exec(query, params...)
			return merry.Wrap(err)
		}
		for _, item := range items {
			if err := syncOpcode(exec, pgUpsertQuery, item.(Entry)); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return merry.Wrap(err)
	}

	_, err = db.Exec(deleteStaleQuery())
	return merry.Wrap(err)
}
