package handler

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"tagvorto/internal/middleware"
	"tagvorto/internal/service"
)

// GameHandler exposes the guess-submission and state-read operations.
type GameHandler struct {
	svc       *service.GuessService
	env       string
	startTime time.Time
}

// NewGameHandler builds the handler around the submission service.
func NewGameHandler(svc *service.GuessService, env string) *GameHandler {
	return &GameHandler{svc: svc, env: env, startTime: time.Now()}
}

type guessRequest struct {
	Date  string `json:"date" binding:"required"`
	Guess string `json:"guess" binding:"required"`
}

// SubmitGuess handles POST /api/game/guess.
func (h *GameHandler) SubmitGuess(c *gin.Context) {
	var req guessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date and guess are required"})
		return
	}

	result, err := h.svc.Submit(c.Request.Context(), middleware.UserID(c), req.Date, req.Guess)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetState handles GET /api/game/state?date=YYYY-MM-DD. An omitted date means
// today; the service's clock decides what today is.
func (h *GameHandler) GetState(c *gin.Context) {
	view, err := h.svc.State(c.Request.Context(), middleware.UserID(c), c.Query("date"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// Healthz returns a JSON health check with server stats.
func (h *GameHandler) Healthz(c *gin.Context) {
	uptime := time.Since(h.startTime)
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"env":       h.env,
		"uptime":    formatUptime(uptime),
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// writeError maps the service error taxonomy to HTTP statuses. Messages are
// already user-presentable.
func (h *GameHandler) writeError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, service.ErrUnauthenticated):
		status = http.StatusUnauthorized
	case errors.Is(err, service.ErrInvalidGuess),
		errors.Is(err, service.ErrWordNotAccepted),
		errors.Is(err, service.ErrDuplicateGuess),
		errors.Is(err, service.ErrInvalidDate):
		status = http.StatusBadRequest
	case errors.Is(err, service.ErrGameOver),
		errors.Is(err, service.ErrMaxGuesses):
		status = http.StatusConflict
	case errors.Is(err, service.ErrUpstreamFetch):
		status = http.StatusBadGateway
	case errors.Is(err, service.ErrPersistence):
		status = http.StatusInternalServerError
	}
	c.JSON(status, gin.H{"error": userMessage(err)})
}

// userMessage strips wrapped detail, keeping only the sentinel's text.
func userMessage(err error) string {
	for _, sentinel := range []error{
		service.ErrUnauthenticated,
		service.ErrInvalidGuess,
		service.ErrWordNotAccepted,
		service.ErrDuplicateGuess,
		service.ErrInvalidDate,
		service.ErrGameOver,
		service.ErrMaxGuesses,
		service.ErrUpstreamFetch,
		service.ErrPersistence,
	} {
		if errors.Is(err, sentinel) {
			return sentinel.Error()
		}
	}
	return "internal error"
}

// formatUptime returns a human-readable string for a duration.
func formatUptime(d time.Duration) string {
	seconds := int(d.Seconds()) % 60
	minutes := int(d.Minutes()) % 60
	hours := int(d.Hours())
	switch {
	case hours > 0:
		return fmt.Sprintf("%d hour%s, %d minute%s, %d second%s",
			hours, plural(hours),
			minutes, plural(minutes),
			seconds, plural(seconds))
	case minutes > 0:
		return fmt.Sprintf("%d minute%s, %d second%s",
			minutes, plural(minutes),
			seconds, plural(seconds))
	default:
		return fmt.Sprintf("%d second%s", seconds, plural(seconds))
	}
}

// plural returns "s" if n != 1, otherwise "".
func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
