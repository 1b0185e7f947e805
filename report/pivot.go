package report

import (
	"sort"

	"ninjadmin/ninja"
)

// Pivot is the column-mode policy report: one row per organization, one
// column per distinct node-role name.
type Pivot struct {
	Columns []string // distinct role names, alphabetical
	Rows    []PivotRow
}

// PivotRow holds the resolved policy name per role column, empty when the
// organization has no assignment for that role.
type PivotRow struct {
	Organization string
	Cells        []string // aligned with Pivot.Columns
}

// PolicyPivot pivots the role/policy assignments. The column set comes from
// the full fetched role list, so a role nobody uses still gets its (empty)
// column. When an organization carries two assignments resolving to the same
// role name, the first one in fetch order wins.
func PolicyPivot(orgs []ninja.Organization, roles []ninja.NodeRole, policyNames map[int]string) Pivot {
	seen := make(map[string]struct{}, len(roles))
	var columns []string
	for _, r := range roles {
		if _, ok := seen[r.Name]; ok {
			continue
		}
		seen[r.Name] = struct{}{}
		columns = append(columns, r.Name)
	}
	sort.Strings(columns)

	roleNames := ninja.RoleNames(roles)
	rows := make([]PivotRow, 0, len(orgs))
	for _, org := range orgs {
		byRole := make(map[string]string)
		for _, pa := range org.Policies {
			name := roleNames[pa.NodeRoleID]
			if _, ok := byRole[name]; ok {
				continue
			}
			byRole[name] = policyNames[pa.PolicyID]
		}
		cells := make([]string, len(columns))
		for i, col := range columns {
			cells[i] = byRole[col]
		}
		rows = append(rows, PivotRow{Organization: org.Name, Cells: cells})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Organization < rows[j].Organization
	})
	return Pivot{Columns: columns, Rows: rows}
}

// Headers returns "organization" followed by the role columns.
func (p Pivot) Headers() []string {
	return append([]string{"organization"}, p.Columns...)
}

// Records flattens the pivot for the CSV and table writers.
func (p Pivot) Records() [][]string {
	out := make([][]string, 0, len(p.Rows))
	for _, r := range p.Rows {
		out = append(out, append([]string{r.Organization}, r.Cells...))
	}
	return out
}
