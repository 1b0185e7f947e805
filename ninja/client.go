// Package ninja is a thin client for the NinjaOne RMM REST API. It covers the
// handful of list endpoints the admin scripts consume plus the organization
// custom-field update. Everything is sequential and blocking: one request in
// flight, no retries, no caching.
package ninja

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	log "github.com/sirupsen/logrus"
	"golang.org/x/oauth2/clientcredentials"
)

// DefaultPageSize is used when the caller does not configure one.
const DefaultPageSize = 100

// Credentials holds the OAuth2 client-credentials inputs.
type Credentials struct {
	ClientID     string
	ClientSecret string
	Scope        string
}

// Client talks to one NinjaOne tenant with a Bearer token obtained through
// the client-credentials grant.
type Client struct {
	baseURL  string
	pageSize int
	httpc    *http.Client
}

// NewClient performs the token grant eagerly so that a bad credential or an
// unreachable token endpoint aborts the run before any listing starts.
func NewClient(ctx context.Context, baseURL string, creds Credentials, pageSize int) (*Client, error) {
	if creds.ClientID == "" || creds.ClientSecret == "" {
		return nil, fmt.Errorf("client id and secret are required")
	}
	base := strings.TrimRight(baseURL, "/")
	cc := clientcredentials.Config{
		ClientID:     creds.ClientID,
		ClientSecret: creds.ClientSecret,
		TokenURL:     base + "/oauth/token",
		Scopes:       strings.Fields(creds.Scope),
	}
	if _, err := cc.Token(ctx); err != nil {
		return nil, fmt.Errorf("oauth token: %w", err)
	}
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	log.Debugf("[NINJA] authenticated against %s", base)
	return &Client{baseURL: base, pageSize: pageSize, httpc: cc.Client(ctx)}, nil
}

// getRaw issues one GET and returns the raw response body.
func (c *Client) getRaw(ctx context.Context, path string, params url.Values) ([]byte, error) {
	u := c.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("GET %s: status %s: %s", path, resp.Status, snippet(body))
	}
	return body, nil
}

// UpdateOrganizationCustomFields patches custom-field values on one
// organization. A non-2xx response is returned as an error carrying the
// upstream message.
func (c *Client) UpdateOrganizationCustomFields(ctx context.Context, orgID int, fields map[string]string) error {
	body, err := json.Marshal(fields)
	if err != nil {
		return err
	}
	u := fmt.Sprintf("%s/api/v2/organization/%d/custom-fields", c.baseURL, orgID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPatch, u, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.httpc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("update organization %d: status %s: %s", orgID, resp.Status, snippet(respBody))
	}
	return nil
}

// snippet trims an error body down to something printable in a diagnostic.
func snippet(body []byte) string {
	s := strings.TrimSpace(string(body))
	if len(s) > 200 {
		s = s[:200] + "..."
	}
	return s
}
