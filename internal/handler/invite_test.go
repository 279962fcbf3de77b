package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/stackpoker/stackweb/internal/config"
	"github.com/stackpoker/stackweb/internal/model"
	"github.com/stackpoker/stackweb/internal/repository"
)

// fakeInviteStore records the last call per method and returns programmed
// errors, standing in for the MySQL-backed repo.
type fakeInviteStore struct {
	createErr error
	claimInv  *model.PendingInvite
	claimErr  error
	redeemErr error

	createdToken  string
	createdSource string
}

func (f *fakeInviteStore) CreatePending(ctx context.Context, token, inviterID, source string) error {
	f.createdToken = token
	f.createdSource = source
	return f.createErr
}

func (f *fakeInviteStore) ClaimLatestWeb(ctx context.Context, userID string) (*model.PendingInvite, error) {
	return f.claimInv, f.claimErr
}

func (f *fakeInviteStore) Redeem(ctx context.Context, userID, inviterID, source string) error {
	return f.redeemErr
}

func newInviteTestHandler(store InviteStore) *InviteHandler {
	return NewInviteHandler(config.Config{BaseURL: "https://stackpoker.gg"}, store)
}

func postJSON(target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var m map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &m); err != nil {
		t.Fatalf("invalid JSON body %q: %v", rec.Body.String(), err)
	}
	return m
}

func TestCreatePendingInviteRejectsMissingInviter(t *testing.T) {
	h := newInviteTestHandler(nil) // validation runs before any store access

	for _, body := range []string{`{}`, `{"inviterId":""}`, `not json`} {
		c, rec := postJSON("/v1/invites", body)
		if err := h.CreatePendingInvite(c); err != nil {
			t.Fatalf("body %q: unexpected error: %v", body, err)
		}
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("body %q: status = %d, want 400", body, rec.Code)
		}
		if got := decodeBody(t, rec)["error"]; got != "Missing inviterId" {
			t.Fatalf("body %q: error = %v", body, got)
		}
	}
}

func TestCreatePendingInviteMintsAppToken(t *testing.T) {
	store := &fakeInviteStore{}
	h := newInviteTestHandler(store)

	c, rec := postJSON("/v1/invites", `{"inviterId":"alice"}`)
	if err := h.CreatePendingInvite(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := decodeBody(t, rec)
	if body["success"] != true || body["inviterId"] != "alice" {
		t.Fatalf("body = %v", body)
	}
	if body["token"] != store.createdToken || store.createdToken == "" {
		t.Fatalf("token %v not the persisted one %q", body["token"], store.createdToken)
	}
	if store.createdSource != model.InviteSourceApp {
		t.Fatalf("source = %q, want %q", store.createdSource, model.InviteSourceApp)
	}
}

func TestClaimLatestInviteRejectsMissingUser(t *testing.T) {
	h := newInviteTestHandler(nil)

	c, rec := postJSON("/v1/invites/claim-latest", `{"deviceId":"d-1"}`)
	if err := h.ClaimLatestInvite(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if got := decodeBody(t, rec)["error"]; got != "Missing userId" {
		t.Fatalf("error = %v", got)
	}
}

func TestClaimLatestInviteNonePending(t *testing.T) {
	h := newInviteTestHandler(&fakeInviteStore{claimErr: repository.ErrNotFound})

	c, rec := postJSON("/v1/invites/claim-latest", `{"userId":"bob"}`)
	if err := h.ClaimLatestInvite(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	body := decodeBody(t, rec)
	if body["success"] != false || body["message"] != "No pending invite found" {
		t.Fatalf("body = %v", body)
	}
}

func TestClaimLatestInviteReturnsClaimedToken(t *testing.T) {
	h := newInviteTestHandler(&fakeInviteStore{
		claimInv: &model.PendingInvite{Token: "tok-1", InviterID: "alice"},
	})

	c, rec := postJSON("/v1/invites/claim-latest", `{"userId":"bob"}`)
	if err := h.ClaimLatestInvite(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := decodeBody(t, rec)
	if body["success"] != true || body["inviterId"] != "alice" || body["token"] != "tok-1" {
		t.Fatalf("body = %v", body)
	}
}

// Redemption failures share the 400 status but must keep their distinct
// bodies: field validation uses "error", business rejections use
// success=false plus a message.
func TestRedeemInviteRejections(t *testing.T) {
	cases := []struct {
		name    string
		body    string
		store   InviteStore
		wantKey string
		wantVal string
	}{
		{"missing user", `{"inviterId":"alice"}`, nil, "error", "Missing userId"},
		{"missing inviter", `{"userId":"bob"}`, nil, "error", "Missing inviterId"},
		{"self invite", `{"userId":"alice","inviterId":"alice"}`,
			&fakeInviteStore{redeemErr: repository.ErrSelfInvite},
			"message", "Cannot redeem your own invite"},
		{"already redeemed", `{"userId":"bob","inviterId":"alice"}`,
			&fakeInviteStore{redeemErr: repository.ErrAlreadyRedeemed},
			"message", "User has already redeemed an invite"},
	}
	for _, tc := range cases {
		h := newInviteTestHandler(tc.store)
		c, rec := postJSON("/v1/invites/redeem", tc.body)
		if err := h.RedeemInvite(c); err != nil {
			t.Fatalf("%s: unexpected error: %v", tc.name, err)
		}
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("%s: status = %d, want 400", tc.name, rec.Code)
		}
		if got := decodeBody(t, rec)[tc.wantKey]; got != tc.wantVal {
			t.Fatalf("%s: %s = %v, want %q", tc.name, tc.wantKey, got, tc.wantVal)
		}
	}
}

func TestRedeemInviteStoreFailure(t *testing.T) {
	h := newInviteTestHandler(&fakeInviteStore{redeemErr: errors.New("connection refused")})

	c, rec := postJSON("/v1/invites/redeem", `{"userId":"bob","inviterId":"alice"}`)
	if err := h.RedeemInvite(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	if got := decodeBody(t, rec)["error"]; got != "Internal server error: connection refused" {
		t.Fatalf("error = %v", got)
	}
}

func TestRedeemInviteSuccess(t *testing.T) {
	h := newInviteTestHandler(&fakeInviteStore{})

	c, rec := postJSON("/v1/invites/redeem", `{"userId":"bob","inviterId":"alice"}`)
	if err := h.RedeemInvite(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := decodeBody(t, rec)
	if body["success"] != true || body["inviterId"] != "alice" {
		t.Fatalf("body = %v", body)
	}
}

func TestInviteLandingPageRejectsMissingInviter(t *testing.T) {
	h := newInviteTestHandler(nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/invite/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/invite/:inviter")
	c.SetParamNames("inviter")
	c.SetParamValues("")

	if err := h.InviteLandingPage(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if rec.Body.String() != "Missing inviter ID" {
		t.Fatalf("body = %q", rec.Body.String())
	}
}

func TestInviteLandingPageMintsWebInvite(t *testing.T) {
	store := &fakeInviteStore{}
	h := newInviteTestHandler(store)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/invite/alice", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/invite/:inviter")
	c.SetParamNames("inviter")
	c.SetParamValues("alice")

	if err := h.InviteLandingPage(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if got := rec.Header().Get("Cache-Control"); got != "no-cache, no-store, must-revalidate" {
		t.Fatalf("Cache-Control = %q", got)
	}
	if store.createdSource != model.InviteSourceWeb {
		t.Fatalf("source = %q, want %q", store.createdSource, model.InviteSourceWeb)
	}
	if !strings.Contains(rec.Body.String(), store.createdToken) {
		t.Fatalf("minted token %q not embedded in page", store.createdToken)
	}
}
