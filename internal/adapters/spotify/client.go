package spotify

import (
	"context"
	"net/http"
	"strings"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
	"golang.org/x/time/rate"

	"github.com/ewilliams-labs/moodmate/internal/core/domain"
	"github.com/ewilliams-labs/moodmate/internal/core/ports"
)

const (
	DefaultBaseURL  = "https://api.spotify.com/v1"
	DefaultTokenURL = "https://accounts.spotify.com/api/token"
	defaultTimeout  = 15 * time.Second
)

// Config configures a Client. Zero values select the defaults, except the
// credentials, which are required.
type Config struct {
	ClientID     string
	ClientSecret string
	BaseURL      string
	TokenURL     string
	Timeout      time.Duration
	MaxRetries   int
	RetryBackoff time.Duration
	// RequestsPerSecond paces outgoing calls; zero disables pacing.
	RequestsPerSecond float64
}

// Client is an HTTP client for the Spotify Web API.
type Client struct {
	httpClient  *http.Client
	baseURL     string
	maxRetries  int
	baseBackoff time.Duration
	limiter     *rate.Limiter
}

// compile-time interface assertion
var _ ports.Catalog = (*Client)(nil)

// NewClient builds a client that authenticates with the client-credentials
// flow. It returns domain.ErrMissingCredentials when either credential is empty.
func NewClient(cfg Config) (*Client, error) {
	if strings.TrimSpace(cfg.ClientID) == "" || strings.TrimSpace(cfg.ClientSecret) == "" {
		return nil, domain.ErrMissingCredentials
	}

	tokenURL := cfg.TokenURL
	if tokenURL == "" {
		tokenURL = DefaultTokenURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	// Token and API calls share one transport, so neither goes through a proxy.
	base := &http.Client{Transport: newTransport(), Timeout: timeout}
	ctx := context.WithValue(context.Background(), oauth2.HTTPClient, base)
	creds := &clientcredentials.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		TokenURL:     tokenURL,
	}
	httpClient := creds.Client(ctx)
	httpClient.Timeout = timeout

	c := NewClientWithBaseURL(httpClient, cfg.BaseURL)
	if cfg.MaxRetries > 0 {
		c.maxRetries = cfg.MaxRetries
	}
	if cfg.RetryBackoff > 0 {
		c.baseBackoff = cfg.RetryBackoff
	}
	if cfg.RequestsPerSecond > 0 {
		c.limiter = rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), 1)
	}
	return c, nil
}

// NewClientWithBaseURL wraps an already authenticated http.Client. Tests use it
// to point the adapter at an httptest server.
func NewClientWithBaseURL(httpClient *http.Client, baseURL string) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	baseURL = strings.TrimRight(baseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		httpClient:  httpClient,
		baseURL:     baseURL,
		maxRetries:  defaultMaxRetries,
		baseBackoff: defaultBackoff,
	}
}

// Factory returns a ports.CatalogFactory that builds a new Client from cfg on
// every call.
func Factory(cfg Config) ports.CatalogFactory {
	return func() (ports.Catalog, error) {
		c, err := NewClient(cfg)
		if err != nil {
			return nil, err
		}
		return c, nil
	}
}

func newTransport() *http.Transport {
	t := http.DefaultTransport.(*http.Transport).Clone()
	t.Proxy = nil
	return t
}
