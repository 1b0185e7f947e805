// Package bulkupdate drives the CSV-based organization custom-field updater.
// Each CSV row runs through a small state machine: skipped when a required
// value is blank, matched case-insensitively against the fetched organization
// names, then patched remotely. Nothing is mutated locally and a per-row
// failure never stops the loop.
package bulkupdate

import (
	"context"
	"fmt"
	"io"
	"strings"

	log "github.com/sirupsen/logrus"

	"ninjadmin/ninja"
)

// Outcome is the terminal state of one CSV row.
type Outcome int

const (
	Updated Outcome = iota
	NotFound
	Failed
	Skipped
)

func (o Outcome) String() string {
	switch o {
	case Updated:
		return "UPDATED"
	case NotFound:
		return "NOTFOUND"
	case Failed:
		return "FAILED"
	case Skipped:
		return "SKIPPED"
	}
	return "UNKNOWN"
}

// RowResult records what happened to one row.
type RowResult struct {
	Line         int // 1-based CSV line, header excluded
	Organization string
	Outcome      Outcome
	Reason       string
}

// Summary carries the running counters. Updated+NotFound+Failed+Skipped
// always equals Total.
type Summary struct {
	Updated  int
	NotFound int
	Failed   int
	Skipped  int
	Total    int
}

// Print emits the fixed-format summary, regardless of outcome mix.
func (s Summary) Print(w io.Writer) {
	fmt.Fprintf(w, "Updated:   %d\n", s.Updated)
	fmt.Fprintf(w, "Not found: %d\n", s.NotFound)
	fmt.Fprintf(w, "Failed:    %d\n", s.Failed)
	fmt.Fprintf(w, "Skipped:   %d\n", s.Skipped)
	fmt.Fprintf(w, "Total:     %d\n", s.Total)
}

// FieldPatcher issues the single-field update for one organization.
// *ninja.Client satisfies it.
type FieldPatcher interface {
	UpdateOrganizationCustomFields(ctx context.Context, orgID int, fields map[string]string) error
}

// Run processes every row and returns the per-row results plus the summary.
// Matching is exact and case-insensitive; a name shared by two organizations
// is ambiguous and marks the row FAILED rather than silently picking one.
func Run(ctx context.Context, patcher FieldPatcher, orgs []ninja.Organization, field string, rows []Row) ([]RowResult, Summary) {
	byName := make(map[string][]int, len(orgs))
	for _, o := range orgs {
		key := strings.ToLower(o.Name)
		byName[key] = append(byName[key], o.ID)
	}

	results := make([]RowResult, 0, len(rows))
	var sum Summary
	for i, row := range rows {
		res := RowResult{Line: row.Line, Organization: row.Organization}
		switch {
		case strings.TrimSpace(row.Organization) == "":
			res.Outcome = Skipped
			res.Reason = "missing organization name"
		case strings.TrimSpace(row.Value) == "":
			res.Outcome = Skipped
			res.Reason = "missing field value"
		default:
			ids := byName[strings.ToLower(strings.TrimSpace(row.Organization))]
			switch {
			case len(ids) == 0:
				res.Outcome = NotFound
			case len(ids) > 1:
				res.Outcome = Failed
				res.Reason = fmt.Sprintf("ambiguous organization name (%d matches)", len(ids))
			default:
				err := patcher.UpdateOrganizationCustomFields(ctx, ids[0], map[string]string{field: row.Value})
				if err != nil {
					res.Outcome = Failed
					res.Reason = err.Error()
				} else {
					res.Outcome = Updated
				}
			}
		}
		switch res.Outcome {
		case Updated:
			sum.Updated++
		case NotFound:
			sum.NotFound++
		case Failed:
			sum.Failed++
		case Skipped:
			sum.Skipped++
		}
		sum.Total++
		if res.Reason != "" {
			log.Infof("[UPDATE] [%d/%d] %s %q: %s", i+1, len(rows), res.Outcome, row.Organization, res.Reason)
		} else {
			log.Infof("[UPDATE] [%d/%d] %s %q", i+1, len(rows), res.Outcome, row.Organization)
		}
		results = append(results, res)
	}
	return results, sum
}
