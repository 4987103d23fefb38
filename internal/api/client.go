package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/rs/zerolog"

	"github.com/thingibrowser/thingibrowser/internal/model"
)

// DefaultBaseURL is the production Thingiverse API endpoint.
const DefaultBaseURL = "https://api.thingiverse.com"

// UserAgent identifies the app on all API requests.
const UserAgent = "ThingiBrowser/1.0 (+https://github.com/thingibrowser/thingibrowser)"

const (
	defaultTimeout   = 30 * time.Second
	defaultPerPage   = 20
	defaultCacheSize = 64
)

// Client defines the operations the browse service needs from the platform.
type Client interface {
	Search(ctx context.Context, terms string, page int) ([]model.Thing, error)
	GetThing(ctx context.Context, thingID int) (*model.Thing, error)
	GetThingFiles(ctx context.Context, thingID int) ([]model.ThingFile, error)
	DownloadFile(ctx context.Context, fileID int) ([]byte, error)
}

// Config carries the knobs for a client instance.
type Config struct {
	BaseURL string
	Token   string
	PerPage int
	Timeout time.Duration
	Logger  zerolog.Logger
}

// client implements Client against the Thingiverse REST API.
type client struct {
	httpClient *http.Client
	baseURL    string
	token      string
	perPage    int
	logger     zerolog.Logger

	// Detail responses are cached per thing ID so flipping between search
	// results does not refetch. Searches and downloads are never cached.
	thingCache *lru.Cache[int, *model.Thing]
	filesCache *lru.Cache[int, []model.ThingFile]
}

// NewClient creates a new API client. Zero-value config fields fall back to
// the production endpoint and defaults.
func NewClient(cfg Config) Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	perPage := cfg.PerPage
	if perPage <= 0 {
		perPage = defaultPerPage
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	thingCache, _ := lru.New[int, *model.Thing](defaultCacheSize)
	filesCache, _ := lru.New[int, []model.ThingFile](defaultCacheSize)

	return &client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
		token:      cfg.Token,
		perPage:    perPage,
		logger:     cfg.Logger,
		thingCache: thingCache,
		filesCache: filesCache,
	}
}

// Search queries things matching the given terms, one page at a time.
func (c *client) Search(ctx context.Context, terms string, page int) ([]model.Thing, error) {
	if page < 1 {
		page = 1
	}

	query := url.Values{}
	query.Set("type", "things")
	query.Set("page", strconv.Itoa(page))
	query.Set("per_page", strconv.Itoa(c.perPage))
	endpoint := fmt.Sprintf("%s/search/%s?%s", c.baseURL, url.PathEscape(terms), query.Encode())

	c.logger.Debug().Str("terms", terms).Int("page", page).Msg("Searching things")

	var response struct {
		Total int           `json:"total"`
		Hits  []model.Thing `json:"hits"`
	}
	if err := c.getJSON(ctx, endpoint, &response); err != nil {
		return nil, err
	}
	return response.Hits, nil
}

// GetThing fetches the full details of a single thing.
func (c *client) GetThing(ctx context.Context, thingID int) (*model.Thing, error) {
	if thing, ok := c.thingCache.Get(thingID); ok {
		return thing, nil
	}

	endpoint := fmt.Sprintf("%s/things/%d", c.baseURL, thingID)

	var thing model.Thing
	if err := c.getJSON(ctx, endpoint, &thing); err != nil {
		return nil, err
	}
	c.thingCache.Add(thingID, &thing)
	return &thing, nil
}

// GetThingFiles fetches the list of files attached to a thing.
func (c *client) GetThingFiles(ctx context.Context, thingID int) ([]model.ThingFile, error) {
	if files, ok := c.filesCache.Get(thingID); ok {
		return files, nil
	}

	endpoint := fmt.Sprintf("%s/things/%d/files", c.baseURL, thingID)

	var files []model.ThingFile
	if err := c.getJSON(ctx, endpoint, &files); err != nil {
		return nil, err
	}
	c.filesCache.Add(thingID, files)
	return files, nil
}

// DownloadFile fetches the raw contents of a thing file. The API responds
// with a redirect to the storage backend, which the HTTP client follows.
func (c *client) DownloadFile(ctx context.Context, fileID int) ([]byte, error) {
	endpoint := fmt.Sprintf("%s/files/%d/download", c.baseURL, fileID)

	c.logger.Debug().Int("file_id", fileID).Msg("Downloading thing file")

	resp, err := c.do(ctx, endpoint)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading download body: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, newError(resp.StatusCode, body)
	}
	return body, nil
}

// getJSON performs a GET request and decodes a JSON response into out.
func (c *client) getJSON(ctx context.Context, endpoint string, out any) error {
	resp, err := c.do(ctx, endpoint)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response body: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return newError(resp.StatusCode, body)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return &Error{
			StatusCode: resp.StatusCode,
			Message:    "unexpected response from Thingiverse",
			Body:       string(body),
		}
	}
	return nil
}

// do issues an authenticated GET request.
func (c *client) do(ctx context.Context, endpoint string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("User-Agent", UserAgent)
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn().Err(err).Str("url", endpoint).Msg("Request failed")
		return nil, fmt.Errorf("requesting %s: %w", endpoint, err)
	}
	return resp, nil
}
