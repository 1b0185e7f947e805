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
	df := flag.String("df", "", "device filter expression passed to the API")
	output := flag.String("output", "", "write CSV to this path instead of printing a table")
	xlsx := flag.String("xlsx", "", "also write the report as an XLSX workbook")
	flag.Parse()

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

	filter := *df
	if filter == "" {
		filter = cfg.DeviceFilter
	}
	devices, err := client.Devices(ctx, filter)
	if err != nil {
		log.Warnf("[REPORT] devices fetch incomplete, continuing with %d: %v", len(devices), err)
	}
	orgs, err := client.Organizations(ctx)
	if err != nil {
		log.Warnf("[REPORT] organizations fetch incomplete, continuing with %d: %v", len(orgs), err)
	}
	locations, err := client.Locations(ctx)
	if err != nil {
		log.Warnf("[REPORT] locations fetch incomplete, continuing with %d: %v", len(locations), err)
	}

	rows := report.DeviceRows(devices, ninja.OrganizationNames(orgs), ninja.LocationNames(locations))
	headers := report.DeviceHeaders()

	if *xlsx != "" {
		if err := report.WriteXLSX(*xlsx, "Devices", headers, report.DeviceRecords(rows)); err != nil {
			log.Fatalf("write xlsx: %v", err)
		}
		log.Infof("[REPORT] wrote %d devices to %s", len(rows), *xlsx)
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
		if err := report.WriteCSV(f, headers, report.DeviceRecords(rows)); err != nil {
			log.Fatalf("write csv: %v", err)
		}
		log.Infof("[REPORT] wrote %d devices to %s", len(rows), dest)
		return
	}
	if *xlsx != "" {
		return
	}
	if err := report.WriteTable(os.Stdout, headers, report.DeviceConsoleRecords(rows)); err != nil {
		log.Fatalf("write table: %v", err)
	}
}

// Usage:
//   go run ./cmd/devicereport
//   go run ./cmd/devicereport -df 'status eq APPROVED' -output devices.csv
// The console table truncates organization/location names for legibility;
// CSV and XLSX exports keep the full values.
