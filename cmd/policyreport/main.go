package main

import (
	"context"
	"flag"
	"os"

	log "github.com/sirupsen/logrus"

	"ninjadmin/config"
	"ninjadmin/ninja"
	"ninjadmin/report"
)

func main() {
	cfgPath := flag.String("config", "", "path to config file")
	mode := flag.String("mode", "rows", "report mode: rows or columns")
	output := flag.String("output", "", "write CSV to this path instead of printing a table")
	flag.Parse()

	if *mode != "rows" && *mode != "columns" {
		log.Fatalf("invalid -mode %q, want rows or columns", *mode)
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

	orgs, err := client.OrganizationsDetailed(ctx)
	if err != nil {
		log.Warnf("[REPORT] organizations fetch incomplete, continuing with %d: %v", len(orgs), err)
	}
	policies, err := client.Policies(ctx)
	if err != nil {
		log.Warnf("[REPORT] policies fetch incomplete, continuing with %d: %v", len(policies), err)
	}
	roles, err := client.Roles(ctx)
	if err != nil {
		log.Warnf("[REPORT] roles fetch incomplete, continuing with %d: %v", len(roles), err)
	}

	policyNames := ninja.PolicyNames(policies)

	var headers []string
	var records [][]string
	if *mode == "rows" {
		rows := report.PolicyRows(orgs, ninja.RoleNames(roles), policyNames)
		headers = report.PolicyRowHeaders()
		records = report.PolicyRecords(rows)
	} else {
		pivot := report.PolicyPivot(orgs, roles, policyNames)
		headers = pivot.Headers()
		records = pivot.Records()
	}

	dest := *output
	if dest == "" {
		dest = cfg.Output
	}
	if dest != "" {
		f, err := os.Create(dest)
		if err != nil {
			log.Fatalf("create output: %v", err)
		}
		defer f.Close()
		if err := report.WriteCSV(f, headers, records); err != nil {
			log.Fatalf("write csv: %v", err)
		}
		log.Infof("[REPORT] wrote %d rows to %s", len(records), dest)
		return
	}
	if err := report.WriteTable(os.Stdout, headers, records); err != nil {
		log.Fatalf("write table: %v", err)
	}
}

// Usage:
//   go run ./cmd/policyreport -mode rows
//   go run ./cmd/policyreport -mode columns -output policies.csv
// Row mode emits one line per organization/role/policy assignment; column
// mode pivots to one line per organization with a column per node role.
