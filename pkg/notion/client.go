package notion

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

const (
	baseURL    = "https://api.notion.com/v1"
	apiVersion = "2022-06-28"
)

type Client struct {
	token      string
	httpClient *http.Client
}

func NewClient(token string) *Client {
	return &Client{
		token:      token,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// Database is a child database block discovered on a page. Databases are
// bound to their meaning by position on the page; Title is informational.
type Database struct {
	ID    string
	Title string
}

// ChildDatabases lists the child databases of a page in the order Notion
// returns them, following pagination until exhaustion.
func (c *Client) ChildDatabases(pageID string) ([]Database, error) {
	var dbs []Database
	cursor := ""
	for {
		path := fmt.Sprintf("/blocks/%s/children?page_size=100", pageID)
		if cursor != "" {
			path += "&start_cursor=" + cursor
		}

		var page blockList
		if err := c.get(path, &page); err != nil {
			return nil, err
		}

		for _, b := range page.Results {
			if b.Type == "child_database" {
				dbs = append(dbs, Database{
					ID:    strings.ReplaceAll(b.ID, "-", ""),
					Title: b.ChildDatabase.Title,
				})
			}
		}

		if !page.HasMore {
			return dbs, nil
		}
		cursor = page.NextCursor
	}
}

// QueryByDate returns every row whose title column equals the given date
// string, following pagination until exhaustion.
func (c *Client) QueryByDate(dbID, col, date string) ([]Page, error) {
	body := queryRequest{
		Filter:   titleFilter{Property: col, Title: map[string]string{"equals": date}},
		PageSize: 100,
	}

	var rows []Page
	for {
		var page pageList
		if err := c.post("/databases/"+dbID+"/query", body, &page); err != nil {
			return nil, err
		}
		rows = append(rows, page.Results...)
		if !page.HasMore {
			return rows, nil
		}
		body.StartCursor = page.NextCursor
	}
}

// QueryByTitleContains returns up to limit rows whose title column contains
// the given substring. Used for tables whose title embeds a date inside a
// longer string, where an equality filter would never match.
func (c *Client) QueryByTitleContains(dbID, col, substr string, limit int) ([]Page, error) {
	body := queryRequest{
		Filter:   titleFilter{Property: col, Title: map[string]string{"contains": substr}},
		PageSize: limit,
	}

	var page pageList
	if err := c.post("/databases/"+dbID+"/query", body, &page); err != nil {
		return nil, err
	}
	return page.Results, nil
}

// QueryLatest returns the most recently created rows without any date
// filter, newest first.
func (c *Client) QueryLatest(dbID string, limit int) ([]Page, error) {
	body := queryRequest{
		Sorts:    []querySort{{Timestamp: "created_time", Direction: "descending"}},
		PageSize: limit,
	}

	var page pageList
	if err := c.post("/databases/"+dbID+"/query", body, &page); err != nil {
		return nil, err
	}
	return page.Results, nil
}

func (c *Client) get(path string, out any) error {
	req, err := http.NewRequest(http.MethodGet, baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("notion request: %w", err)
	}
	return c.do(req, out)
}

func (c *Client) post(path string, body any, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("notion encode: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("notion request: %w", err)
	}
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Notion-Version", apiVersion)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("notion fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("notion %s %s: %s", req.Method, req.URL.Path, resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("notion decode: %w", err)
	}
	return nil
}

type queryRequest struct {
	Filter      any         `json:"filter,omitempty"`
	Sorts       []querySort `json:"sorts,omitempty"`
	PageSize    int         `json:"page_size"`
	StartCursor string      `json:"start_cursor,omitempty"`
}

type titleFilter struct {
	Property string            `json:"property"`
	Title    map[string]string `json:"title"`
}

type querySort struct {
	Timestamp string `json:"timestamp"`
	Direction string `json:"direction"`
}

type blockList struct {
	Results    []block `json:"results"`
	HasMore    bool    `json:"has_more"`
	NextCursor string  `json:"next_cursor"`
}

type block struct {
	ID            string `json:"id"`
	Type          string `json:"type"`
	ChildDatabase struct {
		Title string `json:"title"`
	} `json:"child_database"`
}

type pageList struct {
	Results    []Page `json:"results"`
	HasMore    bool   `json:"has_more"`
	NextCursor string `json:"next_cursor"`
}
