package registry

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/unitcheck/unitcheck/internal/domain"
)

// DefaultBaseURL is the public unit-details page of the national training
// register.
const DefaultBaseURL = "https://training.gov.au/Training/Details/"

// maxPageBytes bounds how much of a registry page is read. Unit pages are
// well under 2 MiB.
const maxPageBytes = 4 << 20

// Client fetches and parses unit-of-competency pages from training.gov.au.
// The request timeout lives here; callers never block longer than the
// configured timeout per lookup.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a registry client. Zero values select the public
// registry URL and a 15 second timeout.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

// Fetch retrieves and parses the registry page for a unit code.
func (c *Client) Fetch(code string) (*domain.UnitDefinition, error) {
	pageURL := c.baseURL + url.PathEscape(code)

	resp, err := c.http.Get(pageURL)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", code, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("%s: %w", code, domain.ErrUnitNotFound)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching %s: unexpected status %s", code, resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxPageBytes))
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", code, err)
	}

	def, err := ParseUnitPage(code, string(body))
	if err != nil {
		return nil, err
	}
	def.URL = pageURL
	def.Source = domain.SourceLive
	return def, nil
}
