// Package report joins fetched NinjaOne entities into flat or pivoted tabular
// rows and renders them to the console, CSV, or a workbook.
package report

import (
	"sort"
	"strconv"

	"ninjadmin/ninja"
)

// PolicyRow is one organization/role/policy assignment in row mode.
type PolicyRow struct {
	Organization string
	Role         string
	PolicyID     int
	Policy       string
}

// PolicyRows emits one row per organization per {nodeRoleId, policyId}
// assignment. Ids missing from the lookups render as empty strings. Rows are
// sorted by organization, then role name, then policy name, ties keeping
// their original order.
func PolicyRows(orgs []ninja.Organization, roleNames, policyNames map[int]string) []PolicyRow {
	var rows []PolicyRow
	for _, org := range orgs {
		for _, pa := range org.Policies {
			rows = append(rows, PolicyRow{
				Organization: org.Name,
				Role:         roleNames[pa.NodeRoleID],
				PolicyID:     pa.PolicyID,
				Policy:       policyNames[pa.PolicyID],
			})
		}
	}
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if a.Organization != b.Organization {
			return a.Organization < b.Organization
		}
		if a.Role != b.Role {
			return a.Role < b.Role
		}
		return a.Policy < b.Policy
	})
	return rows
}

// PolicyRowHeaders are the CSV/console column headers for row mode.
func PolicyRowHeaders() []string {
	return []string{"organization", "role", "policyId", "policy"}
}

// PolicyRecords flattens the rows for the CSV and table writers.
func PolicyRecords(rows []PolicyRow) [][]string {
	out := make([][]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, []string{r.Organization, r.Role, strconv.Itoa(r.PolicyID), r.Policy})
	}
	return out
}
