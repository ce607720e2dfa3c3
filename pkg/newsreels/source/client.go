// Package source loads reels items from the news REST API.
package source

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/newsai/newsreels/pkg/newsreels/deck"
)

const publishedStatus = "published"

// Client implements deck.Source over the news API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	category   string
	logger     *slog.Logger
}

// NewClient creates a client for the API at baseURL. When category is set the
// deck only holds that category.
func NewClient(httpClient *http.Client, baseURL, category string, logger *slog.Logger) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
		category:   category,
		logger:     logger,
	}
}

// BaseURL returns the API root, used to resolve uploaded image paths.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// flexibleID accepts both JSON numbers and strings.
type flexibleID string

func (id *flexibleID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = flexibleID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("id: %w", err)
	}
	*id = flexibleID(n.String())
	return nil
}

// newsDTO mirrors the API's news representation.
type newsDTO struct {
	ID       flexibleID `json:"id"`
	Title    string     `json:"title"`
	Spot     string     `json:"spot"`
	Content  string     `json:"content"`
	Category string     `json:"category"`
	Summary  string     `json:"summary"`
	Image    *string    `json:"image"`
	ImageURL string     `json:"imageUrl"`
	Status   string     `json:"status"`
}

func (d newsDTO) item() deck.Item {
	image := d.ImageURL
	if d.Image != nil && *d.Image != "" {
		image = *d.Image
	}
	return deck.Item{
		ID:       string(d.ID),
		Category: d.Category,
		Title:    d.Title,
		Spot:     d.Spot,
		Summary:  d.Summary,
		Content:  d.Content,
		Image:    image,
	}
}

// FetchItems lists the deck in API order. Unpublished and id-less entries are
// skipped.
func (c *Client) FetchItems(ctx context.Context) ([]deck.Item, error) {
	path := "/api/news"
	if c.category != "" {
		path = "/api/news/category/" + url.PathEscape(c.category)
	}

	var news []newsDTO
	if err := c.get(ctx, path, &news); err != nil {
		return nil, err
	}

	items := make([]deck.Item, 0, len(news))
	for _, n := range news {
		if n.ID == "" {
			c.logger.WarnContext(ctx, "Skipping news without id", "title", n.Title)
			continue
		}
		if n.Status != "" && n.Status != publishedStatus {
			continue
		}
		items = append(items, n.item())
	}

	c.logger.DebugContext(ctx, "Fetched reels", "count", len(items), "category", c.category)
	return items, nil
}

// FetchItem loads a single article.
func (c *Client) FetchItem(ctx context.Context, id string) (deck.Item, error) {
	var n newsDTO
	if err := c.get(ctx, "/api/news/"+url.PathEscape(id), &n); err != nil {
		return deck.Item{}, err
	}
	return n.item(), nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("http call: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: status %d: %s", ErrUpstream, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
