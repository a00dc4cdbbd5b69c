package market

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/PaesslerAG/jsonpath"
)

// DefaultDataPath selects the asset array in the provider's envelope.
const DefaultDataPath = "$.data"

// Client retrieves the asset listing from a remote endpoint.
type Client struct {
	http     *http.Client
	url      string
	dataPath string
}

// NewClient returns a Client for url. An empty dataPath means DefaultDataPath
// and a zero timeout leaves the request bounded only by its context.
func NewClient(url, dataPath string, timeout time.Duration) *Client {
	if dataPath == "" {
		dataPath = DefaultDataPath
	}
	return &Client{
		http:     &http.Client{Timeout: timeout},
		url:      url,
		dataPath: dataPath,
	}
}

// FetchAssets issues a single GET without query parameters and decodes the
// asset array in server order.
func (c *Client) FetchAssets(ctx context.Context) ([]Asset, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("request build failed [%s]: %w", c.url, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("HTTP request failed [%s]: %w", c.url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("API error [%s]: %s - %s", c.url, resp.Status, string(bodyBytes))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("body read error [%s]: %w", c.url, err)
	}

	return decodeAssets(body, c.dataPath)
}

// decodeAssets pulls the array at path out of body and decodes it into
// assets.
func decodeAssets(body []byte, path string) ([]Asset, error) {
	var envelope interface{}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("JSON parse error: %w, Received Data: %s", err, string(body))
	}

	raw, err := jsonpath.Get(path, envelope)
	if err != nil {
		return nil, fmt.Errorf("asset path %q not found: %w", path, err)
	}
	list, ok := raw.([]interface{})
	if !ok {
		return nil, fmt.Errorf("asset path %q is %T, not an array", path, raw)
	}

	// Round-trip through encoding/json so struct tags drive the field mapping.
	buf, err := json.Marshal(list)
	if err != nil {
		return nil, fmt.Errorf("asset re-encode failed: %w", err)
	}
	assets := make([]Asset, 0, len(list))
	if err := json.Unmarshal(buf, &assets); err != nil {
		return nil, fmt.Errorf("asset decode failed: %w", err)
	}
	return assets, nil
}
