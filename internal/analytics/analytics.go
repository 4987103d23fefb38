package analytics

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Event names tracked across the app.
const (
	EventAppOpen       = "app_open"
	EventSearch        = "search"
	EventThingDetails  = "thing_details"
	EventFileDownload  = "file_download"
	EventImportSuccess = "import_success"
)

const postTimeout = 10 * time.Second

// Tracker records usage events.
type Tracker interface {
	TrackEvent(name string, params map[string]string)
}

// Client posts events to a collector endpoint. The client ID is a random
// UUID generated per install and persisted by the caller.
type Client struct {
	endpoint   string
	clientID   string
	httpClient *http.Client
	logger     zerolog.Logger
}

// NewClient creates a tracker posting to endpoint. An empty clientID gets a
// fresh UUID, which the caller should persist for the next run.
func NewClient(endpoint, clientID string, logger zerolog.Logger) *Client {
	if clientID == "" {
		clientID = uuid.NewString()
	}
	return &Client{
		endpoint:   endpoint,
		clientID:   clientID,
		httpClient: &http.Client{Timeout: postTimeout},
		logger:     logger,
	}
}

// ClientID returns the install identifier used on all events.
func (c *Client) ClientID() string {
	return c.clientID
}

// TrackEvent posts the event in the background.
func (c *Client) TrackEvent(name string, params map[string]string) {
	values := url.Values{}
	values.Set("event", name)
	values.Set("cid", c.clientID)
	for key, value := range params {
		values.Set(key, value)
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), postTimeout)
		defer cancel()

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint,
			strings.NewReader(values.Encode()))
		if err != nil {
			c.logger.Debug().Err(err).Msg("Building analytics request failed")
			return
		}
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			c.logger.Debug().Err(err).Str("event", name).Msg("Analytics post failed")
			return
		}
		resp.Body.Close()
	}()
}

// Noop is a Tracker that discards all events. Used when tracking is disabled
// and in tests.
type Noop struct{}

// TrackEvent discards the event.
func (Noop) TrackEvent(string, map[string]string) {}
