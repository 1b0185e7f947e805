package report

import (
	"testing"

	"github.com/stretchr/testify/require"

	"ninjadmin/ninja"
)

func sampleOrgs() []ninja.Organization {
	return []ninja.Organization{
		{ID: 2, Name: "Tech Corp", Policies: []ninja.PolicyAssignment{
			{NodeRoleID: 20, PolicyID: 200},
		}},
		{ID: 1, Name: "Example IT", Policies: []ninja.PolicyAssignment{
			{NodeRoleID: 20, PolicyID: 201},
			{NodeRoleID: 10, PolicyID: 200},
		}},
		{ID: 3, Name: "Empty Org"},
	}
}

func sampleRoleNames() map[int]string {
	return map[int]string{10: "Windows Server", 20: "Windows Desktop"}
}

func samplePolicyNames() map[int]string {
	return map[int]string{200: "Baseline", 201: "Strict"}
}

func TestPolicyRowsCountEqualsAssignments(t *testing.T) {
	orgs := sampleOrgs()
	rows := PolicyRows(orgs, sampleRoleNames(), samplePolicyNames())
	want := 0
	for _, o := range orgs {
		want += len(o.Policies)
	}
	require.Len(t, rows, want)
}

func TestPolicyRowsOrdering(t *testing.T) {
	rows := PolicyRows(sampleOrgs(), sampleRoleNames(), samplePolicyNames())
	require.Equal(t, []PolicyRow{
		{Organization: "Example IT", Role: "Windows Desktop", PolicyID: 201, Policy: "Strict"},
		{Organization: "Example IT", Role: "Windows Server", PolicyID: 200, Policy: "Baseline"},
		{Organization: "Tech Corp", Role: "Windows Desktop", PolicyID: 200, Policy: "Baseline"},
	}, rows)
}

func TestPolicyRowsUnresolvableIDsRenderEmpty(t *testing.T) {
	orgs := []ninja.Organization{{Name: "X", Policies: []ninja.PolicyAssignment{{NodeRoleID: 99, PolicyID: 98}}}}
	rows := PolicyRows(orgs, map[int]string{}, map[int]string{})
	require.Len(t, rows, 1)
	require.Empty(t, rows[0].Role)
	require.Empty(t, rows[0].Policy)
	require.Equal(t, 98, rows[0].PolicyID)
}
