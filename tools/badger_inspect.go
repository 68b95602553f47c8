package main

import (
	"flag"
	"log"
	"os"

	"household-intranet/internal"

	"github.com/mama165/sdk-go/database"
)

func main() {
	dbPath := flag.String("db", database.DefaultPath, "Path to badger DB")
	// Index keys are skipped unless the prefix starts with "idx:"
	prefix := flag.String("prefix", "household:", "Prefix to scan (household:, member:, accounting:, fooditem:, foodgroup:, ...)")
	flag.Parse()

	db, err := internal.OpenReadOnly(*dbPath)
	if err != nil {
		log.Fatal("Error while opening Badger: ", err)
	}
	defer db.Close()

	rows, err := internal.Scan(db, *prefix, internal.DefaultMapper)
	if err != nil {
		log.Fatal(err)
	}
	internal.RenderRows(os.Stdout, rows)
}
