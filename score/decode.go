package score

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// maxScoreBytes bounds how much of a response body Fetch will read.
// Scores are small; anything near this size is not a score.
const maxScoreBytes = 4 << 20

// Unmarshal parses and validates an interchange score from JSON.
func Unmarshal(data []byte) (*Score, error) {
	var s Score
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("score: decode: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Decode reads, parses, and validates an interchange score from r.
func Decode(r io.Reader) (*Score, error) {
	data, err := io.ReadAll(io.LimitReader(r, maxScoreBytes))
	if err != nil {
		return nil, fmt.Errorf("score: read: %w", err)
	}
	return Unmarshal(data)
}

// Fetch retrieves and decodes a score by URL. It is a single awaited
// call with no retry; any failure propagates to the caller unchanged in
// kind (network, status, decode, validation).
func Fetch(ctx context.Context, url string) (*Score, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("score: fetch %s: %w", url, err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("score: fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("score: fetch %s: unexpected status %s", url, resp.Status)
	}
	return Decode(resp.Body)
}
