package bulkupdate

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"ninjadmin/ninja"
)

type fakePatcher struct {
	calls []call
	fail  map[int]string // orgID -> error message
}

type call struct {
	orgID  int
	fields map[string]string
}

func (f *fakePatcher) UpdateOrganizationCustomFields(_ context.Context, orgID int, fields map[string]string) error {
	f.calls = append(f.calls, call{orgID: orgID, fields: fields})
	if msg, ok := f.fail[orgID]; ok {
		return fmt.Errorf("%s", msg)
	}
	return nil
}

func testOrgs() []ninja.Organization {
	return []ninja.Organization{
		{ID: 1, Name: "Example IT"},
		{ID: 2, Name: "Tech Corp"},
	}
}

func TestRunMixedOutcomes(t *testing.T) {
	rows := []Row{
		{Line: 1, Organization: "Example IT", Value: "ABC123"},
		{Line: 2, Organization: "", Value: "X"},
		{Line: 3, Organization: "Tech Corp", Value: ""},
	}
	p := &fakePatcher{}
	results, sum := Run(context.Background(), p, testOrgs(), "licenseKey", rows)

	require.Equal(t, Updated, results[0].Outcome)
	require.Equal(t, Skipped, results[1].Outcome)
	require.Equal(t, "missing organization name", results[1].Reason)
	require.Equal(t, Skipped, results[2].Outcome)
	require.Equal(t, "missing field value", results[2].Reason)

	require.Equal(t, Summary{Updated: 1, Skipped: 2, Total: 3}, sum)
	require.Len(t, p.calls, 1)
	require.Equal(t, 1, p.calls[0].orgID)
	require.Equal(t, map[string]string{"licenseKey": "ABC123"}, p.calls[0].fields)
}

func TestRunCaseInsensitiveMatch(t *testing.T) {
	rows := []Row{{Line: 1, Organization: "example it", Value: "v"}}
	p := &fakePatcher{}
	results, _ := Run(context.Background(), p, testOrgs(), "f", rows)
	require.Equal(t, Updated, results[0].Outcome)
	require.Equal(t, 1, p.calls[0].orgID)
}

func TestRunNotFound(t *testing.T) {
	rows := []Row{{Line: 1, Organization: "Nobody Inc", Value: "v"}}
	p := &fakePatcher{}
	results, sum := Run(context.Background(), p, testOrgs(), "f", rows)
	require.Equal(t, NotFound, results[0].Outcome)
	require.Equal(t, 1, sum.NotFound)
	require.Empty(t, p.calls)
}

func TestRunAmbiguousNameFails(t *testing.T) {
	orgs := append(testOrgs(), ninja.Organization{ID: 3, Name: "EXAMPLE IT"})
	rows := []Row{{Line: 1, Organization: "Example IT", Value: "v"}}
	p := &fakePatcher{}
	results, sum := Run(context.Background(), p, orgs, "f", rows)
	require.Equal(t, Failed, results[0].Outcome)
	require.Contains(t, results[0].Reason, "ambiguous")
	require.Equal(t, 1, sum.Failed)
	require.Empty(t, p.calls, "no update may be sent for an ambiguous match")
}

func TestRunUpstreamErrorMarksFailedAndContinues(t *testing.T) {
	rows := []Row{
		{Line: 1, Organization: "Example IT", Value: "a"},
		{Line: 2, Organization: "Tech Corp", Value: "b"},
	}
	p := &fakePatcher{fail: map[int]string{1: "status 422: unknown field"}}
	results, sum := Run(context.Background(), p, testOrgs(), "f", rows)
	require.Equal(t, Failed, results[0].Outcome)
	require.Contains(t, results[0].Reason, "unknown field")
	require.Equal(t, Updated, results[1].Outcome)
	require.Equal(t, Summary{Updated: 1, Failed: 1, Total: 2}, sum)
}

func TestRunCountersAlwaysSumToTotal(t *testing.T) {
	rows := []Row{
		{Line: 1, Organization: "Example IT", Value: "v"},
		{Line: 2, Organization: "", Value: "v"},
		{Line: 3, Organization: "ghost", Value: "v"},
		{Line: 4, Organization: "Tech Corp", Value: ""},
		{Line: 5, Organization: "Tech Corp", Value: "v"},
	}
	p := &fakePatcher{fail: map[int]string{2: "boom"}}
	_, sum := Run(context.Background(), p, testOrgs(), "f", rows)
	require.Equal(t, len(rows), sum.Total)
	require.Equal(t, sum.Total, sum.Updated+sum.NotFound+sum.Failed+sum.Skipped)
}

func TestSummaryPrintFixedFormat(t *testing.T) {
	var b strings.Builder
	Summary{Updated: 1, NotFound: 2, Failed: 3, Skipped: 4, Total: 10}.Print(&b)
	require.Equal(t, "Updated:   1\nNot found: 2\nFailed:    3\nSkipped:   4\nTotal:     10\n", b.String())
}
