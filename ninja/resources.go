package ninja

import (
	"context"
	"encoding/json"
	"net/url"

	log "github.com/sirupsen/logrus"
)

// PolicyAssignment maps a node role to the policy applied for it within one
// organization.
type PolicyAssignment struct {
	NodeRoleID int `json:"nodeRoleId"`
	PolicyID   int `json:"policyId"`
}

type Organization struct {
	ID       int                `json:"id"`
	Name     string             `json:"name"`
	Policies []PolicyAssignment `json:"policies,omitempty"`
}

type Policy struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type NodeRole struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type Location struct {
	ID             int    `json:"id"`
	Name           string `json:"name"`
	OrganizationID int    `json:"organizationId"`
}

// Device timestamps arrive as Unix epoch seconds (fractional).
type Device struct {
	ID             int     `json:"id"`
	SystemName     string  `json:"systemName"`
	OrganizationID int     `json:"organizationId"`
	LocationID     int     `json:"locationId"`
	ApprovalStatus string  `json:"approvalStatus"`
	Offline        bool    `json:"offline"`
	Created        float64 `json:"created"`
	LastContact    float64 `json:"lastContact"`
}

// Organizations lists the plain organization summaries.
func (c *Client) Organizations(ctx context.Context) ([]Organization, error) {
	raw, err := c.FetchAll(ctx, "/api/v2/organizations", nil)
	return decodeOrganizations(raw), err
}

// OrganizationsDetailed lists organizations including their role/policy
// assignments.
func (c *Client) OrganizationsDetailed(ctx context.Context) ([]Organization, error) {
	raw, err := c.FetchAll(ctx, "/api/v2/organizations-detailed", nil)
	return decodeOrganizations(raw), err
}

func decodeOrganizations(raw []json.RawMessage) []Organization {
	orgs := make([]Organization, 0, len(raw))
	for _, r := range raw {
		var o Organization
		if err := json.Unmarshal(r, &o); err != nil {
			log.Warnf("[NINJA] skip undecodable organization: %v", err)
			continue
		}
		orgs = append(orgs, o)
	}
	return orgs
}

func (c *Client) Policies(ctx context.Context) ([]Policy, error) {
	raw, err := c.FetchAll(ctx, "/api/v2/policies", nil)
	out := make([]Policy, 0, len(raw))
	for _, r := range raw {
		var p Policy
		if uerr := json.Unmarshal(r, &p); uerr != nil {
			log.Warnf("[NINJA] skip undecodable policy: %v", uerr)
			continue
		}
		out = append(out, p)
	}
	return out, err
}

func (c *Client) Roles(ctx context.Context) ([]NodeRole, error) {
	raw, err := c.FetchAll(ctx, "/api/v2/roles", nil)
	out := make([]NodeRole, 0, len(raw))
	for _, r := range raw {
		var nr NodeRole
		if uerr := json.Unmarshal(r, &nr); uerr != nil {
			log.Warnf("[NINJA] skip undecodable role: %v", uerr)
			continue
		}
		out = append(out, nr)
	}
	return out, err
}

func (c *Client) Locations(ctx context.Context) ([]Location, error) {
	raw, err := c.FetchAll(ctx, "/api/v2/locations", nil)
	out := make([]Location, 0, len(raw))
	for _, r := range raw {
		var l Location
		if uerr := json.Unmarshal(r, &l); uerr != nil {
			log.Warnf("[NINJA] skip undecodable location: %v", uerr)
			continue
		}
		out = append(out, l)
	}
	return out, err
}

// Devices lists devices, optionally narrowed by a device filter expression
// passed through as the df query parameter.
func (c *Client) Devices(ctx context.Context, filter string) ([]Device, error) {
	var params url.Values
	if filter != "" {
		params = url.Values{"df": {filter}}
	}
	raw, err := c.FetchAll(ctx, "/api/v2/devices", params)
	out := make([]Device, 0, len(raw))
	for _, r := range raw {
		var d Device
		if uerr := json.Unmarshal(r, &d); uerr != nil {
			log.Warnf("[NINJA] skip undecodable device: %v", uerr)
			continue
		}
		out = append(out, d)
	}
	return out, err
}
