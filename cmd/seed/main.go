package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"household-intranet/internal"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
)

// Loads reference data (data providers, translation infos, accountings) from a JSON file.
func main() {
	// 1. Load config
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		log.Fatalf("Config error: %v", err)
	}
	if err := config.Validate(); err != nil {
		log.Fatal(err)
	}
	file := flag.String("file", "seed.json", "JSON seed file")
	flag.Parse()

	raw, err := os.ReadFile(*file)
	if err != nil {
		log.Fatalf("Cannot read %s: %v", *file, err)
	}
	var seed internal.Seed
	if err = json.Unmarshal(raw, &seed); err != nil {
		log.Fatalf("Cannot decode %s: %v", *file, err)
	}

	// 2. Open Badger
	db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).WithLoggingLevel(badger.WARNING))
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	// 3. Insert
	intranet, err := internal.NewIntranet(config, db, nil, time.Now, logs.GetLoggerFromString(config.LogLevel))
	if err != nil {
		log.Fatal(err)
	}
	rows, err := intranet.Seed(seed)
	internal.RenderRows(os.Stdout, rows)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Seeding stopped: %v\n", err)
		os.Exit(1)
	}
}
