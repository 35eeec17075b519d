package main

import (
	"flag"
	"fmt"
	"ispcmd/utils"
	"os"
	"strings"

	"github.com/ansel1/merry"
	"github.com/go-pg/migrations/v8"
)

const usageText = `This program runs command on the db. Supported commands are:
  - init - creates version info table in the database
  - up - runs all available migrations.
  - up [target] - runs available migrations up to the target one.
  - down - reverts last migration.
  - reset - reverts all migrations.
  - version - prints current db version.
  - set_version [version] - sets db version without running migrations.
Usage:
  go run ./migrations <command> [args]
`

func execSome(db migrations.DB, queries string) error {
	for _, query := range strings.Split(queries, ";") {
		if strings.TrimSpace(query) == "" {
			continue
		}
		if _, err := db.Exec(query); err != nil {
			return merry.Prepend(err, strings.TrimSpace(query))
		}
	}
	return nil
}

func main() {
	flag.Usage = func() {
		fmt.Print(usageText)
		flag.PrintDefaults()
		os.Exit(2)
	}
	flag.Parse()

	db := utils.MakePGConnection()
	defer db.Close()

	oldVersion, newVersion, err := migrations.Run(db, flag.Args()...)
	if err != nil {
		println(merry.Details(err))
		os.Exit(1)
	}
	if newVersion != oldVersion {
		fmt.Printf("migrated from version %d to %d\n", oldVersion, newVersion)
	} else {
		fmt.Printf("version is %d\n", oldVersion)
	}
}
