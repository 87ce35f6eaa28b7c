package spotify

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"golang.org/x/time/rate"
)

func TestClientDoRequestWithRetry(t *testing.T) {
	tests := []struct {
		name             string
		statuses         []int
		maxRetries       int
		expectedStatus   int
		expectedAttempts int
		expectErr        bool
	}{
		{
			name:             "retries on 503 then succeeds",
			statuses:         []int{http.StatusServiceUnavailable, http.StatusServiceUnavailable, http.StatusOK},
			maxRetries:       3,
			expectedStatus:   http.StatusOK,
			expectedAttempts: 3,
		},
		{
			name:             "exhausts retries on 429",
			statuses:         []int{http.StatusTooManyRequests},
			maxRetries:       2,
			expectedAttempts: 3,
			expectErr:        true,
		},
		{
			name:             "retries 500 502 504",
			statuses:         []int{http.StatusInternalServerError, http.StatusBadGateway, http.StatusGatewayTimeout, http.StatusOK},
			maxRetries:       3,
			expectedStatus:   http.StatusOK,
			expectedAttempts: 4,
		},
		{
			name:             "404 is not retried",
			statuses:         []int{http.StatusNotFound},
			maxRetries:       3,
			expectedStatus:   http.StatusNotFound,
			expectedAttempts: 1,
		},
		{
			name:             "501 is not retried",
			statuses:         []int{http.StatusNotImplemented},
			maxRetries:       3,
			expectedStatus:   http.StatusNotImplemented,
			expectedAttempts: 1,
		},
		{
			name:             "zero retries means one attempt",
			statuses:         []int{http.StatusServiceUnavailable},
			maxRetries:       0,
			expectedAttempts: 1,
			expectErr:        true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			attempts := 0
			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				attempts++
				status := tt.statuses[len(tt.statuses)-1]
				if attempts <= len(tt.statuses) {
					status = tt.statuses[attempts-1]
				}
				w.WriteHeader(status)
			}))
			defer ts.Close()

			client := &Client{
				httpClient:  http.DefaultClient,
				baseURL:     ts.URL,
				maxRetries:  tt.maxRetries,
				baseBackoff: time.Millisecond,
			}

			req, err := http.NewRequest(http.MethodGet, ts.URL, nil)
			if err != nil {
				t.Fatalf("create request: %v", err)
			}

			resp, err := client.doRequestWithRetry(req)
			if (err != nil) != tt.expectErr {
				t.Fatalf("expected error: %v, got: %v", tt.expectErr, err)
			}
			if tt.expectErr {
				var serr *StatusError
				if !errors.As(err, &serr) || serr.StatusCode != tt.statuses[len(tt.statuses)-1] {
					t.Fatalf("expected wrapped *StatusError, got %v", err)
				}
			}
			if resp != nil {
				defer resp.Body.Close()
				if resp.StatusCode != tt.expectedStatus {
					t.Fatalf("status: got %d, want %d", resp.StatusCode, tt.expectedStatus)
				}
			}
			if attempts != tt.expectedAttempts {
				t.Fatalf("attempts: got %d, want %d", attempts, tt.expectedAttempts)
			}
		})
	}
}

func TestClientDoRequestWithRetry_HonoursRetryAfter(t *testing.T) {
	attempts := 0
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts == 1 {
			w.Header().Set("Retry-After", "1")
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	client := &Client{httpClient: http.DefaultClient, baseURL: ts.URL, maxRetries: 1, baseBackoff: time.Millisecond}
	req, _ := http.NewRequest(http.MethodGet, ts.URL, nil)

	start := time.Now()
	resp, err := client.doRequestWithRetry(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	resp.Body.Close()
	if elapsed := time.Since(start); elapsed < 900*time.Millisecond {
		t.Fatalf("expected to wait about 1s for Retry-After, waited %v", elapsed)
	}
}

func TestClientDoRequestWithRetry_TransportError(t *testing.T) {
	ts := httptest.NewServer(http.NotFoundHandler())
	url := ts.URL
	ts.Close()

	client := &Client{httpClient: http.DefaultClient, baseURL: url, maxRetries: 2, baseBackoff: time.Millisecond}
	req, _ := http.NewRequest(http.MethodGet, url, nil)
	if _, err := client.doRequestWithRetry(req); err == nil {
		t.Fatal("expected error from closed server")
	}
}

func TestClientDoRequestWithRetry_Canceled(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer ts.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := &Client{httpClient: http.DefaultClient, baseURL: ts.URL, maxRetries: 3, baseBackoff: time.Second}
	req, _ := http.NewRequestWithContext(ctx, http.MethodGet, ts.URL, nil)
	if _, err := client.doRequestWithRetry(req); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestClientDoRequestWithRetry_Limiter(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	client := &Client{
		httpClient: http.DefaultClient,
		baseURL:    ts.URL,
		limiter:    rate.NewLimiter(rate.Limit(10), 1),
	}

	start := time.Now()
	for i := 0; i < 3; i++ {
		req, _ := http.NewRequest(http.MethodGet, ts.URL, nil)
		resp, err := client.doRequestWithRetry(req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		resp.Body.Close()
	}
	if elapsed := time.Since(start); elapsed < 150*time.Millisecond {
		t.Fatalf("limiter did not pace requests: %v", elapsed)
	}
}

func TestParseRetryAfter(t *testing.T) {
	tests := []struct {
		header string
		want   time.Duration
	}{
		{header: "", want: 0},
		{header: "3", want: 3 * time.Second},
		{header: "-1", want: 0},
		{header: "soon", want: 0},
	}
	for _, tt := range tests {
		resp := &http.Response{Header: http.Header{}}
		if tt.header != "" {
			resp.Header.Set("Retry-After", tt.header)
		}
		if got := parseRetryAfter(resp); got != tt.want {
			t.Fatalf("Retry-After %q: got %v, want %v", tt.header, got, tt.want)
		}
	}
}

func TestNewTransport_NoProxy(t *testing.T) {
	if newTransport().Proxy != nil {
		t.Fatal("catalog transport must not consult proxy settings")
	}
	if http.DefaultTransport.(*http.Transport).Proxy == nil {
		t.Fatal("default transport was modified")
	}
}

func TestClientDoRequestWithRetry_TokenEndpoint(t *testing.T) {
	tests := []struct {
		name          string
		tokenStatuses []int
		wantTokenHits int
		wantAPIHits   int
		expectErr     bool
	}{
		{
			name:          "rejected credentials are not retried",
			tokenStatuses: []int{http.StatusBadRequest},
			wantTokenHits: 1,
			expectErr:     true,
		},
		{
			name:          "unavailable token endpoint is retried",
			tokenStatuses: []int{http.StatusServiceUnavailable, http.StatusOK},
			wantTokenHits: 2,
			wantAPIHits:   1,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			tokenHits, apiHits := 0, 0
			mux := http.NewServeMux()
			mux.HandleFunc("/token", func(w http.ResponseWriter, r *http.Request) {
				tokenHits++
				status := tt.tokenStatuses[len(tt.tokenStatuses)-1]
				if tokenHits <= len(tt.tokenStatuses) {
					status = tt.tokenStatuses[tokenHits-1]
				}
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(status)
				switch status {
				case http.StatusOK:
					_, _ = w.Write([]byte(`{"access_token":"tok","token_type":"Bearer","expires_in":3600}`))
				case http.StatusBadRequest:
					_, _ = w.Write([]byte(`{"error":"invalid_client"}`))
				}
			})
			mux.HandleFunc("/v1/search", func(w http.ResponseWriter, r *http.Request) {
				apiHits++
				_, _ = w.Write([]byte(`{"artists":{"items":[]}}`))
			})
			ts := httptest.NewServer(mux)
			defer ts.Close()

			client, err := NewClient(Config{
				ClientID:     "id",
				ClientSecret: "secret",
				BaseURL:      ts.URL + "/v1",
				TokenURL:     ts.URL + "/token",
				MaxRetries:   3,
				RetryBackoff: time.Millisecond,
			})
			if err != nil {
				t.Fatalf("new client: %v", err)
			}

			_, err = client.SearchArtists(context.Background(), "calm", 5)
			if (err != nil) != tt.expectErr {
				t.Fatalf("expected error: %v, got: %v", tt.expectErr, err)
			}
			if tokenHits != tt.wantTokenHits || apiHits != tt.wantAPIHits {
				t.Fatalf("token hits = %d, api hits = %d, want %d and %d", tokenHits, apiHits, tt.wantTokenHits, tt.wantAPIHits)
			}
		})
	}
}
