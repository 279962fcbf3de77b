package handler

import (
	"context"       // context with timeout for DB calls
	"encoding/json" // snapshot serialization for the embedded payload
	"errors"        // sentinel error matching
	"fmt"           // error message formatting
	"net/http"      // HTTP status codes
	"time"          // timeouts and view timestamps

	"github.com/labstack/echo/v4" // Echo framework for HTTP routing

	"github.com/stackpoker/stackweb/internal/config"
	"github.com/stackpoker/stackweb/internal/model"
	"github.com/stackpoker/stackweb/internal/page"
	"github.com/stackpoker/stackweb/internal/queue"
	"github.com/stackpoker/stackweb/internal/repository"
	"github.com/stackpoker/stackweb/internal/replay"
	queue_publisher "github.com/stackpoker/stackweb/internal/service"
)

// ShareStore is the read surface the replay page needs from share records.
// *repository.ShareRepo satisfies it; tests substitute fakes.
type ShareStore interface {
	GetByID(ctx context.Context, shareID string) (*model.ShareRecord, error)
}

// HandStore fetches stored hand documents.
type HandStore interface {
	GetByID(ctx context.Context, handID string) (*model.HandLog, error)
}

// HandHandler serves the shareable hand-replay page.
type HandHandler struct {
	Cfg    config.Config
	Shares ShareStore
	Hands  HandStore
}

func NewHandHandler(cfg config.Config, s ShareStore, h HandStore) *HandHandler {
	return &HandHandler{Cfg: cfg, Shares: s, Hands: h}
}

// GetSharedHand renders the replay page for one share id. Error bodies are
// plain text because link previews and browsers hit this endpoint, not the
// app. Every store read happens exactly once; the view-count event is
// published fire-and-forget and can never affect the response.
func (h *HandHandler) GetSharedHand(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return c.String(http.StatusBadRequest, "Missing share ID")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	share, err := h.Shares.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return c.String(http.StatusNotFound, "Hand not found")
	}
	if err != nil {
		return c.String(http.StatusInternalServerError, fmt.Sprintf("Internal server error: %v", err))
	}

	hand, err := h.Hands.GetByID(ctx, share.HandID)
	if errors.Is(err, repository.ErrNotFound) {
		return c.String(http.StatusNotFound, "Hand data not found")
	}
	if err != nil {
		return c.String(http.StatusInternalServerError, fmt.Sprintf("Internal server error: %v", err))
	}

	// Best-effort view counter: publish and forget. Lost increments under
	// broker outages are acceptable.
	go func(shareID string) {
		pubCtx, pubCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer pubCancel()
		_ = queue_publisher.PublishHandViewed(pubCtx, queue.HandViewedEvent{
			ShareID:  shareID,
			ViewedAt: time.Now().UTC().Format(time.RFC3339),
		})
	}(id)

	snap := replay.Transform(hand, share)
	raw, err := json.Marshal(snap)
	if err != nil {
		return c.String(http.StatusInternalServerError, fmt.Sprintf("Internal server error: %v", err))
	}

	html, err := page.ReplayHTML(page.ReplayParams{
		ShareID:     id,
		Title:       "Hand shared by @" + share.SharerName + " on Stack",
		Description: replay.Describe(snap),
		OGImageURL:  h.Cfg.BaseURL + "/images/og-hand-share.png",
		BaseURL:     h.Cfg.BaseURL,
		ReplayJSON:  string(raw),
	})
	if err != nil {
		return c.String(http.StatusInternalServerError, fmt.Sprintf("Internal server error: %v", err))
	}

	// Let shared caches serve stale copies while revalidating for an hour.
	c.Response().Header().Set("Cache-Control", "s-maxage=3600, stale-while-revalidate")
	return c.HTML(http.StatusOK, html)
}
