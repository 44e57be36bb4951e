package puzzle

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"tagvorto/internal/game"
)

// ErrUnavailable marks a failed fetch from the external source. Callers may
// retry; nothing is stored on this path.
var ErrUnavailable = errors.New("puzzle source unavailable")

// Daily is the external source's answer for one date.
type Daily struct {
	ID              int    `json:"id"`
	Solution        string `json:"solution"`
	PrintDate       string `json:"print_date"`
	DaysSinceLaunch int    `json:"days_since_launch"`
}

// Source fetches the daily puzzle for a date.
type Source interface {
	FetchDaily(ctx context.Context, date string) (Daily, error)
}

// HTTPSource fetches daily puzzles from a JSON endpoint shaped
// <baseURL>/<YYYY-MM-DD>.json.
type HTTPSource struct {
	baseURL string
	client  *http.Client
}

// NewHTTPSource builds a source with the given request timeout.
func NewHTTPSource(baseURL string, timeout time.Duration) *HTTPSource {
	return &HTTPSource{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

func (s *HTTPSource) FetchDaily(ctx context.Context, date string) (Daily, error) {
	url := fmt.Sprintf("%s/%s.json", s.baseURL, date)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Daily{}, fmt.Errorf("build request: %w", err)
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return Daily{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Daily{}, fmt.Errorf("%w: status %d for %s", ErrUnavailable, resp.StatusCode, date)
	}

	var d Daily
	if err := json.NewDecoder(resp.Body).Decode(&d); err != nil {
		return Daily{}, fmt.Errorf("%w: decode: %v", ErrUnavailable, err)
	}

	solution := game.Normalize(d.Solution)
	if len(solution) != game.WordLength || !game.IsAlphabetic(solution) {
		return Daily{}, fmt.Errorf("%w: malformed solution for %s", ErrUnavailable, date)
	}
	d.Solution = solution
	return d, nil
}
