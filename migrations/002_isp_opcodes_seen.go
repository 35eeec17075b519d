package main

import "github.com/go-pg/migrations/v8"

func init() {
	migrations.MustRegisterTx(func(db migrations.DB) error {
		return execSome(db, `
			ALTER TABLE ispcmd.isp_opcodes ADD COLUMN first_seen_at timestamptz NOT NULL DEFAULT now();
			ALTER TABLE ispcmd.isp_opcodes ADD COLUMN updated_at timestamptz NOT NULL DEFAULT now();
			`)
	}, func(db migrations.DB) error {
		return execSome(db, `
			ALTER TABLE ispcmd.isp_opcodes DROP COLUMN updated_at;
			ALTER TABLE ispcmd.isp_opcodes DROP COLUMN first_seen_at;
			`)
	})
}
