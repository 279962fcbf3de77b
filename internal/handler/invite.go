package handler

import (
	"context"  // request-scoped DB timeouts
	"errors"   // sentinel error matching
	"fmt"      // error message formatting
	"net/http" // HTTP status codes
	"time"     // timeout durations

	"github.com/google/uuid"      // random invite tokens
	"github.com/labstack/echo/v4" // Echo framework for HTTP routing

	"github.com/stackpoker/stackweb/internal/config"
	"github.com/stackpoker/stackweb/internal/model"
	"github.com/stackpoker/stackweb/internal/page"
	"github.com/stackpoker/stackweb/internal/repository"
)

// InviteStore is the persistence surface of the referral flows.
// *repository.InviteRepo satisfies it; tests substitute fakes.
type InviteStore interface {
	CreatePending(ctx context.Context, token, inviterID, source string) error
	ClaimLatestWeb(ctx context.Context, userID string) (*model.PendingInvite, error)
	Redeem(ctx context.Context, userID, inviterID, source string) error
}

// InviteHandler owns the referral endpoints: token creation from the app,
// the web landing page, and the claim/redeem flows the app calls after
// install.
type InviteHandler struct {
	Cfg     config.Config
	Invites InviteStore
}

func NewInviteHandler(cfg config.Config, r InviteStore) *InviteHandler {
	return &InviteHandler{Cfg: cfg, Invites: r}
}

// createPendingInviteRequest is the body of POST /v1/invites.
type createPendingInviteRequest struct {
	InviterID string `json:"inviterId"`
}

// claimLatestInviteRequest is the body of POST /v1/invites/claim-latest.
// DeviceID is accepted for forward compatibility but unused.
type claimLatestInviteRequest struct {
	UserID   string `json:"userId"`
	DeviceID string `json:"deviceId"`
}

// redeemInviteRequest is the body of POST /v1/invites/redeem.
type redeemInviteRequest struct {
	UserID    string `json:"userId"`
	InviterID string `json:"inviterId"`
}

// CreatePendingInvite mints an app-sourced invite token for an inviter and
// returns it so the app can build a share link.
func (h *InviteHandler) CreatePendingInvite(c echo.Context) error {
	var req createPendingInviteRequest
	if err := c.Bind(&req); err != nil || req.InviterID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Missing inviterId"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	token := uuid.NewString()
	if err := h.Invites.CreatePending(ctx, token, req.InviterID, model.InviteSourceApp); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": fmt.Sprintf("Internal server error: %v", err)})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success":   true,
		"token":     token,
		"inviterId": req.InviterID,
	})
}

// InviteLandingPage serves GET /invite/:inviter. Opening the page mints a
// web-sourced pending invite so the app can pick it up after install via
// claim-latest. The response must never be cached: every open creates a
// fresh token.
func (h *InviteHandler) InviteLandingPage(c echo.Context) error {
	inviterID := c.Param("inviter")
	if inviterID == "" {
		return c.String(http.StatusBadRequest, "Missing inviter ID")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	token := uuid.NewString()
	if err := h.Invites.CreatePending(ctx, token, inviterID, model.InviteSourceWeb); err != nil {
		return c.String(http.StatusInternalServerError, fmt.Sprintf("Internal server error: %v", err))
	}

	html, err := page.InviteHTML(page.InviteParams{
		InviterID:   inviterID,
		Token:       token,
		Title:       "Join me on Stack Poker!",
		Description: "Your friend invited you to Stack Poker - the poker training app.",
		OGImageURL:  h.Cfg.BaseURL + "/images/og-invite.png",
		BaseURL:     h.Cfg.BaseURL,
	})
	if err != nil {
		return c.String(http.StatusInternalServerError, fmt.Sprintf("Internal server error: %v", err))
	}

	c.Response().Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
	return c.HTML(http.StatusOK, html)
}

// ClaimLatestInvite lets a freshly installed app claim the newest unredeemed
// web-sourced invite. Best-effort attribution: when several landing pages
// were opened, only the most recent token wins.
func (h *InviteHandler) ClaimLatestInvite(c echo.Context) error {
	var req claimLatestInviteRequest
	if err := c.Bind(&req); err != nil || req.UserID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Missing userId"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	inv, err := h.Invites.ClaimLatestWeb(ctx, req.UserID)
	if errors.Is(err, repository.ErrNotFound) {
		return c.JSON(http.StatusNotFound, echo.Map{
			"success": false,
			"message": "No pending invite found",
		})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": fmt.Sprintf("Internal server error: %v", err)})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success":   true,
		"inviterId": inv.InviterID,
		"token":     inv.Token,
	})
}

// RedeemInvite records a referral redemption. Each user may redeem once, and
// never their own invite; both rules live in the store and surface here as
// sentinel errors.
func (h *InviteHandler) RedeemInvite(c echo.Context) error {
	var req redeemInviteRequest
	if err := c.Bind(&req); err != nil || req.UserID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Missing userId"})
	}
	if req.InviterID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Missing inviterId"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	err := h.Invites.Redeem(ctx, req.UserID, req.InviterID, model.InviteSourceUniversalLink)
	if errors.Is(err, repository.ErrSelfInvite) {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"success": false,
			"message": "Cannot redeem your own invite",
		})
	}
	if errors.Is(err, repository.ErrAlreadyRedeemed) {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"success": false,
			"message": "User has already redeemed an invite",
		})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": fmt.Sprintf("Internal server error: %v", err)})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success":   true,
		"inviterId": req.InviterID,
	})
}
