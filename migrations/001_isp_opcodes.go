package main

import "github.com/go-pg/migrations/v8"

func init() {
	migrations.MustRegisterTx(func(db migrations.DB) error {
		return execSome(db, `
			CREATE TABLE ispcmd.isp_opcodes (
				code int PRIMARY KEY,
				name text NOT NULL UNIQUE,
				CHECK (code >= 0 AND code <= 65535)
			);
			`)
	}, func(db migrations.DB) error {
		return execSome(db, `
			DROP TABLE ispcmd.isp_opcodes;
			`)
	})
}
