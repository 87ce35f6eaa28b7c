package spotify

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/goccy/go-json"

	"github.com/ewilliams-labs/moodmate/internal/logging"
)

// getJSON issues a GET for endpoint with query and decodes a 200 body into out.
// Other statuses come back as *StatusError.
func (c *Client) getJSON(ctx context.Context, endpoint string, query url.Values, out any) error {
	u, err := url.Parse(c.baseURL + endpoint)
	if err != nil {
		return fmt.Errorf("spotify adapter: invalid url for %s: %w", endpoint, err)
	}
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}

	logging.Ctx(ctx).Debug().Str("url", u.String()).Msg("spotify adapter: request")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return fmt.Errorf("spotify adapter: build %s request: %w", endpoint, err)
	}

	resp, err := c.doRequestWithRetry(req)
	if err != nil {
		return fmt.Errorf("spotify adapter: %s request failed: %w", endpoint, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("spotify adapter: read %s response: %w", endpoint, err)
	}

	if resp.StatusCode != http.StatusOK {
		serr := &StatusError{StatusCode: resp.StatusCode, Endpoint: endpoint}
		var apiErr errorResponse
		if json.Unmarshal(body, &apiErr) == nil && apiErr.Error != nil {
			serr.Message = apiErr.Error.Message
		}
		return serr
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("spotify adapter: %s decode error: %w", endpoint, err)
	}
	return nil
}
