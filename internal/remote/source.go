package remote

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/dmitrijs2005/futurama-catalog/internal/models"
)

// DefaultEndpoint is the public collection the catalog is built from.
const DefaultEndpoint = "https://api.sampleapis.com/futurama/characters"

// Source fetches the raw character list.
type Source interface {
	Fetch(ctx context.Context) ([]models.RawCharacter, error)
}

// HTTPSource fetches characters with a single HTTP GET.
type HTTPSource struct {
	endpoint string
	client   *http.Client
}

// NewHTTPSource returns a source bound to endpoint. A zero timeout means the
// request is bounded only by the caller's context.
func NewHTTPSource(endpoint string, timeout time.Duration) *HTTPSource {
	return &HTTPSource{
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
	}
}

// Fetch implements Source.
func (s *HTTPSource) Fetch(ctx context.Context) ([]models.RawCharacter, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %v", ErrUnknown, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNetworkUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("%w: GET %s", ErrNotFound, s.endpoint)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("%w: unexpected status %d", ErrUnknown, resp.StatusCode)
	}

	var out []models.RawCharacter
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("%w: decode body: %v", ErrUnknown, err)
	}
	if out == nil {
		out = []models.RawCharacter{}
	}
	return out, nil
}
