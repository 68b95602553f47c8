package main

import (
	"flag"
	"fmt"
	"log"
	"strings"

	"household-intranet/internal"

	"github.com/Netflix/go-env"
	"github.com/joho/godotenv"
)

// Issues a token for local use of the command line: INTRANET_TOKEN=$(go run ./cmd/token -mail me@example.org)
func main() {
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		log.Fatalf("Config error: %v", err)
	}
	if err := config.Validate(); err != nil {
		log.Fatal(err)
	}

	mail := flag.String("mail", "", "Mail address of the household member")
	roles := flag.String("roles", "", "Comma separated roles")
	flag.Parse()
	if strings.TrimSpace(*mail) == "" {
		log.Fatal("-mail is required")
	}

	var roleList []string
	if *roles != "" {
		roleList = strings.Split(*roles, ",")
	}
	token, err := internal.NewTokenIssuer(config).Generate(*mail, roleList)
	if err != nil {
		log.Fatalf("Token generation failed: %v", err)
	}
	fmt.Println(token)
}
