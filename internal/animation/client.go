// Package animation fetches and holds the Lottie descriptor shown on the home view.
// A failed fetch leaves the store empty and the home view simply omits the animation.
package animation

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// ErrInvalidDescriptor is returned when the fetched document is not a Lottie animation.
var ErrInvalidDescriptor = errors.New("invalid animation descriptor")

// maxDescriptorBytes caps the size of a downloaded descriptor.
const maxDescriptorBytes = 5 << 20

// Client downloads animation descriptors over HTTP.
type Client struct {
	httpClient *http.Client
}

func NewClient(timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// descriptor holds the fields every Lottie document carries.
type descriptor struct {
	Version string            `json:"v"`
	Layers  []json.RawMessage `json:"layers"`
}

// Fetch downloads and validates the descriptor at url.
func (c *Client) Fetch(ctx context.Context, url string) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "PersonalLibrary/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch animation: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxDescriptorBytes))
	if err != nil {
		return nil, fmt.Errorf("read animation: %w", err)
	}

	if err := Validate(body); err != nil {
		return nil, err
	}
	return json.RawMessage(body), nil
}

// Validate checks that data is a JSON object with a layers array.
func Validate(data []byte) error {
	var d descriptor
	if err := json.Unmarshal(data, &d); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidDescriptor, err)
	}
	if d.Layers == nil {
		return fmt.Errorf("%w: missing layers", ErrInvalidDescriptor)
	}
	return nil
}
