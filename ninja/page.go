package ninja

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
)

// The list endpoints answer in one of three envelope shapes:
//
//	{"results": [...], "cursor": ...}  cursor continuation
//	{"items": [...]}                   after-id continuation
//	[...]                              bare array, after-id continuation
//
// decodePage normalizes a response body into a page, and page.next applies
// one consistent termination rule for all three shapes.

type page struct {
	items  []json.RawMessage
	cursor string
}

func decodePage(body []byte) (page, error) {
	trimmed := bytes.TrimLeft(body, " \t\r\n")
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var arr []json.RawMessage
		if err := json.Unmarshal(body, &arr); err != nil {
			return page{}, err
		}
		return page{items: arr}, nil
	}
	var env struct {
		Results []json.RawMessage `json:"results"`
		Items   []json.RawMessage `json:"items"`
		Cursor  json.RawMessage   `json:"cursor"`
	}
	if err := json.Unmarshal(body, &env); err != nil {
		return page{}, err
	}
	if env.Results == nil && env.Items == nil {
		return page{}, fmt.Errorf("unrecognized list envelope")
	}
	p := page{items: env.Results}
	if env.Results == nil {
		p.items = env.Items
	}
	p.cursor = cursorToken(env.Cursor)
	return p, nil
}

// cursorToken accepts the token either as a plain string or wrapped in an
// object with a "name" field, as newer API versions return it.
func cursorToken(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var obj struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(raw, &obj); err == nil {
		return obj.Name
	}
	return ""
}

// next returns the continuation query parameter for the page after this one.
// The rule, applied uniformly to every shape: a cursor token always continues;
// without one, a page shorter than the requested size is final; a full page
// continues after the last item's id, and a last item without an id stops
// silently (malformed backends yield truncated results, not errors).
func (p page) next(requested int) (key, value string, ok bool) {
	if p.cursor != "" {
		return "cursor", p.cursor, true
	}
	if len(p.items) < requested {
		return "", "", false
	}
	id, idOK := lastItemID(p.items)
	if !idOK {
		return "", "", false
	}
	return "after", strconv.FormatInt(id, 10), true
}

func lastItemID(items []json.RawMessage) (int64, bool) {
	if len(items) == 0 {
		return 0, false
	}
	var probe struct {
		ID *int64 `json:"id"`
	}
	if err := json.Unmarshal(items[len(items)-1], &probe); err != nil || probe.ID == nil {
		return 0, false
	}
	return *probe.ID, true
}

// FetchAll walks a list endpoint page by page and returns the concatenation
// of all items in order. On a request or decode error mid-sequence it returns
// everything accumulated so far together with the error; callers keep the
// partial results and decide how loudly to complain.
func (c *Client) FetchAll(ctx context.Context, path string, params url.Values) ([]json.RawMessage, error) {
	q := url.Values{}
	for k, vs := range params {
		q[k] = vs
	}
	q.Set("pageSize", strconv.Itoa(c.pageSize))

	var all []json.RawMessage
	for {
		body, err := c.getRaw(ctx, path, q)
		if err != nil {
			return all, err
		}
		p, err := decodePage(body)
		if err != nil {
			return all, fmt.Errorf("decode %s page: %w", path, err)
		}
		all = append(all, p.items...)
		key, value, ok := p.next(c.pageSize)
		if !ok {
			return all, nil
		}
		q.Del("cursor")
		q.Del("after")
		q.Set(key, value)
	}
}
