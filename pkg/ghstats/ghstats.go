// Package ghstats fetches public GitHub profile counters for the home page
// widget.
package ghstats

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

// Defaults.
const (
	DefaultAPIBase = "https://api.github.com"
	DefaultTimeout = 10 * time.Second
	DefaultHeading = "My GitHub Stats"

	// Placeholder is rendered in place of the counters when the fetch fails.
	Placeholder = "GitHub stats are unavailable right now."

	maxBody = 1 << 20
)

// Sentinel errors.
var (
	ErrNoUser = errors.New("github user name is empty")
	ErrStatus = errors.New("unexpected github response")
)

// Stats are the public counters of one GitHub account.
type Stats struct {
	Login       string `json:"login"`
	Followers   int    `json:"followers"`
	Following   int    `json:"following"`
	PublicRepos int    `json:"public_repos"`
	PublicGists int    `json:"public_gists"`
}

// Item is one labelled counter.
type Item struct {
	Label string
	Value string
}

// Items returns the counters in display order.
func (s Stats) Items() []Item {
	return []Item{
		{Label: "Followers", Value: humanize.Comma(int64(s.Followers))},
		{Label: "Following", Value: humanize.Comma(int64(s.Following))},
		{Label: "Public Repos", Value: humanize.Comma(int64(s.PublicRepos))},
		{Label: "Public Gists", Value: humanize.Comma(int64(s.PublicGists))},
	}
}

// Client fetches user profiles from the GitHub REST API.
type Client struct {
	BaseURL string
	HTTP    *http.Client
	Timeout time.Duration
}

// NewClient returns a client for baseURL. An empty baseURL uses the public
// API and a non-positive timeout uses DefaultTimeout.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultAPIBase
	}

	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTP:    &http.Client{Timeout: timeout},
		Timeout: timeout,
	}
}

// Fetch retrieves the counters of user.
func (c *Client) Fetch(ctx context.Context, user string) (Stats, error) {
	if strings.TrimSpace(user) == "" {
		return Stats{}, ErrNoUser
	}

	ctx, cancel := context.WithTimeout(ctx, c.Timeout)
	defer cancel()

	endpoint := c.BaseURL + "/users/" + url.PathEscape(user)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, http.NoBody)
	if err != nil {
		return Stats{}, fmt.Errorf("build request: %w", err)
	}

	req.Header.Set("Accept", "application/vnd.github+json")

	httpClient := c.HTTP
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return Stats{}, fmt.Errorf("fetch %s: %w", endpoint, err)
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Stats{}, fmt.Errorf("%w: %s", ErrStatus, resp.Status)
	}

	var stats Stats

	err = json.NewDecoder(io.LimitReader(resp.Body, maxBody)).Decode(&stats)
	if err != nil {
		return Stats{}, fmt.Errorf("decode github profile: %w", err)
	}

	return stats, nil
}

var widgetTemplate = template.Must(template.New("github").Parse(
	`<section class="github-stats">
<h2>{{.Heading}}</h2>
{{- if .Err}}
<p class="placeholder">{{.Placeholder}}</p>
{{- else}}
<dl>
{{- range .Items}}
<dt>{{.Label}}</dt><dd>{{.Value}}</dd>
{{- end}}
</dl>
{{- end}}
</section>
`))

// Render writes the widget. A non-nil fetchErr renders the placeholder. A nil
// writer is a no-op.
func Render(w io.Writer, stats Stats, fetchErr error) error {
	if w == nil {
		return nil
	}

	err := widgetTemplate.Execute(w, struct {
		Heading     string
		Placeholder string
		Err         error
		Items       []Item
	}{
		Heading:     DefaultHeading,
		Placeholder: Placeholder,
		Err:         fetchErr,
		Items:       stats.Items(),
	})
	if err != nil {
		return fmt.Errorf("render github widget: %w", err)
	}

	return nil
}
