package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"household-intranet/internal"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
)

var errRejected = errors.New("command rejected")

func main() {
	err := run()
	switch {
	case errors.Is(err, errRejected):
		os.Exit(2)
	case err != nil:
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run executes one command read from a JSON file and prints the response.
// A rejected command is printed as a classified error and ends with exit code 2.
func run() error {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	if err := config.Validate(); err != nil {
		return err
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	// 2. Flags
	command := flag.String("command", "", "Command to execute")
	file := flag.String("file", "", "JSON file holding the command, empty for a command without fields")
	token := flag.String("token", os.Getenv("INTRANET_TOKEN"), "JWT identifying the caller")
	flag.Parse()

	// 3. Database (BadgerDB)
	db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).
		WithLoggingLevel(badger.WARNING))
	if err != nil {
		return fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		log.Debug("Closing BadgerDB...")
		_ = db.Close()
	}()

	// 4. Handlers
	intranet, err := internal.NewIntranet(config, db, nil, time.Now, log)
	if err != nil {
		return err
	}
	if *command == "" {
		return fmt.Errorf("-command is required, one of: %s", strings.Join(intranet.Commands(), ", "))
	}

	var payload []byte
	if *file != "" {
		if payload, err = os.ReadFile(*file); err != nil {
			return fmt.Errorf("read command file: %w", err)
		}
	}

	// 5. Execute
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	response, err := intranet.Execute(ctx, *command, *token, payload)
	if err != nil {
		internal.RenderError(os.Stderr, err, config.Culture())
		return errRejected
	}
	internal.RenderResponse(os.Stdout, response)
	return nil
}
