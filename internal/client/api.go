package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"tagvorto/internal/game"
)

// SubmitResponse mirrors the server's guess-submission reply.
type SubmitResponse struct {
	Feedback   []game.Feedback `json:"feedback"`
	IsCorrect  bool            `json:"isCorrect"`
	IsGameOver bool            `json:"isGameOver"`
}

// StateResponse mirrors the server's state-read reply.
type StateResponse struct {
	Guesses         []game.Guess `json:"guesses"`
	IsGameOver      bool         `json:"isGameOver"`
	PuzzleNumber    int          `json:"puzzleNumber"`
	DaysSinceLaunch int          `json:"daysSinceLaunch"`
}

// APIClient talks to the game server. The bearer token comes from the
// external auth collaborator.
type APIClient struct {
	baseURL string
	token   string
	client  *http.Client
}

// NewAPIClient builds a client with a request timeout.
func NewAPIClient(baseURL, token string, timeout time.Duration) *APIClient {
	return &APIClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		client:  &http.Client{Timeout: timeout},
	}
}

// SubmitGuess posts one guess for a date.
func (a *APIClient) SubmitGuess(ctx context.Context, date, guess string) (SubmitResponse, error) {
	body, err := json.Marshal(map[string]string{"date": date, "guess": guess})
	if err != nil {
		return SubmitResponse{}, fmt.Errorf("encode guess: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.baseURL+"/api/game/guess", bytes.NewReader(body))
	if err != nil {
		return SubmitResponse{}, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+a.token)

	var out SubmitResponse
	if err := a.do(req, &out); err != nil {
		return SubmitResponse{}, err
	}
	return out, nil
}

// FetchState loads the stored progress for a date.
func (a *APIClient) FetchState(ctx context.Context, date string) (StateResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.baseURL+"/api/game/state?date="+date, nil)
	if err != nil {
		return StateResponse{}, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+a.token)

	var out StateResponse
	if err := a.do(req, &out); err != nil {
		return StateResponse{}, err
	}
	return out, nil
}

func (a *APIClient) do(req *http.Request, out any) error {
	resp, err := a.client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var apiErr struct {
			Error string `json:"error"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err == nil && apiErr.Error != "" {
			return fmt.Errorf("%s", apiErr.Error)
		}
		return fmt.Errorf("server returned status %d", resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
