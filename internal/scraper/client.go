package scraper

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/pscheid92/historymap/internal/domain"
)

const (
	// maxEntryTextLen bounds stored diary text, in runes.
	maxEntryTextLen = 500

	anonymousAuthor = "Аноним"
	dateLayout      = "02.01.2006"
)

// StatusError reports a non-2xx response from the upstream search API.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("upstream returned status %d", e.Code)
}

// Client fetches diary entries from the prozhito.org search API.
// It performs a single attempt per call; retries, circuit breaking and
// the mock fallback live in Source.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

type noteAuthor struct {
	Name string `json:"name"`
}

type note struct {
	ID     json.Number `json:"id"`
	Text   string      `json:"text"`
	Author *noteAuthor `json:"author"`
	Date   string      `json:"date"`
}

type searchResponse struct {
	Results []note `json:"results"`
}

// Fetch queries the upstream search endpoint for diary entries. A timeout
// is enforced via the underlying http.Client and surfaces as a transport
// error. The returned slice may be empty without error.
func (c *Client) Fetch(ctx context.Context, region string, year, limit int) ([]domain.DiaryEntry, error) {
	params := url.Values{}
	params.Set("page", "1")
	params.Set("page_size", strconv.Itoa(limit))
	params.Set("year", strconv.Itoa(year))
	params.Set("region", region)

	endpoint := fmt.Sprintf("%s/api/notes?%s", c.baseURL, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch notes: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, &StatusError{Code: resp.StatusCode}
	}

	var body searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	entries := make([]domain.DiaryEntry, 0, len(body.Results))
	for i, n := range body.Results {
		if i >= limit {
			break
		}
		entries = append(entries, c.toEntry(n))
	}
	return entries, nil
}

func (c *Client) toEntry(n note) domain.DiaryEntry {
	author := anonymousAuthor
	if n.Author != nil && n.Author.Name != "" {
		author = n.Author.Name
	}

	date := n.Date
	if date == "" {
		date = time.Now().Format(dateLayout)
	}

	return domain.DiaryEntry{
		Text:   truncateRunes(n.Text, maxEntryTextLen),
		Author: author,
		Date:   date,
		URL:    fmt.Sprintf("%s/n/%s", c.baseURL, n.ID.String()),
	}
}

func truncateRunes(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
