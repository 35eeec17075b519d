package utils

import (
	"context"
	"database/sql"
	"os"

	"github.com/ansel1/merry"
	"github.com/go-pg/pg/v10"
	_ "github.com/mattn/go-sqlite3"
)

func MakePGConnection() *pg.DB {
	db := pg.Connect(&pg.Options{User: "ispcmd", Password: "ispcmd", Database: "ispcmd_db"})
	// db.AddQueryHook(dbLogger{})
	return db
}

func OpenExistingSqlite3(fpath string) (*sql.DB, error) {
	if _, err := os.Stat(fpath); os.IsNotExist(err) {
		return nil, merry.Errorf("not found: %s", fpath)
	}
	return OpenSqlite3(fpath)
}

func OpenSqlite3(fpath string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", fpath)
	if err != nil {
		return nil, merry.Wrap(err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, merry.Prepend(err, fpath)
	}
	return db, nil
}

// SaveChunked reads items from channel until it is closed and passes them
// to handler in chunks of chunkSize, one transaction per chunk.
func SaveChunked(db *pg.DB, chunkSize int, channel chan interface{}, handler func(tx *pg.Tx, items []interface{}) error) error {
	if chunkSize <= 0 {
		return merry.Errorf("wrong chunk size: %d", chunkSize)
	}
	ctx := context.Background()
	items := make([]interface{}, 0, chunkSize)
	flush := func() error {
		return db.RunInTransaction(ctx, func(tx *pg.Tx) error {
			return merry.Wrap(handler(tx, items))
		})
	}
	for item := range channel {
		items = append(items, item)
		if len(items) >= chunkSize {
			if err := flush(); err != nil {
				return merry.Wrap(err)
			}
			items = items[:0]
		}
	}
	if len(items) > 0 {
		return merry.Wrap(flush())
	}
	return nil
}
