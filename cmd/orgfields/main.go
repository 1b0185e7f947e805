package main

import (
	"bufio"
	"context"
	"flag"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"

	"ninjadmin/bulkupdate"
	"ninjadmin/config"
	"ninjadmin/ninja"
	"ninjadmin/secret"
)

func main() {
	cfgPath := flag.String("config", "", "path to config file")
	csvPath := flag.String("csv", "", "input CSV (header: organization,customfieldvalue)")
	field := flag.String("field", "", "custom field name to update")
	storeSecret := flag.Bool("store-secret", false, "read a client secret from stdin, write the encrypted blob, and exit")
	secretFile := flag.String("secret-file", "", "encrypted credential blob path (with -store-secret)")
	flag.Parse()

	if *storeSecret {
		if *secretFile == "" {
			log.Fatalf("-store-secret requires -secret-file")
		}
		line, err := bufio.NewReader(os.Stdin).ReadString('\n')
		if err != nil && line == "" {
			log.Fatalf("read secret from stdin: %v", err)
		}
		value := strings.TrimSpace(line)
		if value == "" {
			log.Fatalf("empty secret")
		}
		if err := secret.Save(*secretFile, secret.DefaultKeyPath(*secretFile), []byte(value)); err != nil {
			log.Fatalf("store secret: %v", err)
		}
		log.Infof("[SECRET] wrote %s", *secretFile)
		return
	}

	// Validation failures abort before any network call.
	if *csvPath == "" {
		log.Fatalf("-csv is required")
	}
	if *field == "" {
		log.Fatalf("-field is required")
	}
	f, err := os.Open(*csvPath)
	if err != nil {
		log.Fatalf("open csv: %v", err)
	}
	rows, err := bulkupdate.ReadRows(f)
	f.Close()
	if err != nil {
		log.Fatalf("parse csv: %v", err)
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	creds, err := cfg.Credentials()
	if err != nil {
		log.Fatalf("credentials: %v", err)
	}

	ctx := context.Background()
	client, err := ninja.NewClient(ctx, cfg.BaseURL(), creds, cfg.PageSize)
	if err != nil {
		log.Fatalf("authenticate: %v", err)
	}

	orgs, err := client.Organizations(ctx)
	if err != nil {
		log.Warnf("[UPDATE] organizations fetch incomplete, matching against %d: %v", len(orgs), err)
	}

	_, summary := bulkupdate.Run(ctx, client, orgs, *field, rows)
	summary.Print(os.Stdout)
}

// Usage:
//   go run ./cmd/orgfields -store-secret -secret-file ~/.config/ninjadmin/secret.blob < secret.txt
//   go run ./cmd/orgfields -csv orgs.csv -field licenseKey
// Each CSV row is matched case-insensitively against the fetched organization
// names; the fixed-format counter summary is printed whatever the outcome mix.
