package handler

import (
	"context"
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

type fakeShareStore struct {
	rec *model.ShareRecord
	err error
}

func (f *fakeShareStore) GetByID(ctx context.Context, shareID string) (*model.ShareRecord, error) {
	return f.rec, f.err
}

type fakeHandStore struct {
	hand *model.HandLog
	err  error
}

func (f *fakeHandStore) GetByID(ctx context.Context, handID string) (*model.HandLog, error) {
	return f.hand, f.err
}

func getSharedHand(t *testing.T, h *HandHandler, id string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/hands/"+id, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/hands/:id")
	c.SetParamNames("id")
	c.SetParamValues(id)
	if err := h.GetSharedHand(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return rec
}

func TestGetSharedHandRejectsMissingID(t *testing.T) {
	h := NewHandHandler(config.Config{BaseURL: "https://stackpoker.gg"}, nil, nil)

	rec := getSharedHand(t, h, "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if rec.Body.String() != "Missing share ID" {
		t.Fatalf("body = %q", rec.Body.String())
	}
}

// Missing records and store failures must map to distinct plain-text
// responses: 404 for either document being absent, 500 carrying the
// underlying message otherwise.
func TestGetSharedHandErrorTaxonomy(t *testing.T) {
	cases := []struct {
		name     string
		shares   ShareStore
		hands    HandStore
		wantCode int
		wantBody string
	}{
		{
			name:     "share missing",
			shares:   &fakeShareStore{err: repository.ErrNotFound},
			hands:    &fakeHandStore{},
			wantCode: http.StatusNotFound,
			wantBody: "Hand not found",
		},
		{
			name:     "hand missing",
			shares:   &fakeShareStore{rec: &model.ShareRecord{ShareID: "s1", HandID: "h1"}},
			hands:    &fakeHandStore{err: repository.ErrNotFound},
			wantCode: http.StatusNotFound,
			wantBody: "Hand data not found",
		},
		{
			name:     "share store failure",
			shares:   &fakeShareStore{err: errors.New("connection refused")},
			hands:    &fakeHandStore{},
			wantCode: http.StatusInternalServerError,
			wantBody: "Internal server error: connection refused",
		},
		{
			name:     "hand store failure",
			shares:   &fakeShareStore{rec: &model.ShareRecord{ShareID: "s1", HandID: "h1"}},
			hands:    &fakeHandStore{err: errors.New("malformed hand document h1")},
			wantCode: http.StatusInternalServerError,
			wantBody: "Internal server error: malformed hand document h1",
		},
	}
	for _, tc := range cases {
		h := NewHandHandler(config.Config{BaseURL: "https://stackpoker.gg"}, tc.shares, tc.hands)
		rec := getSharedHand(t, h, "s1")
		if rec.Code != tc.wantCode {
			t.Fatalf("%s: status = %d, want %d", tc.name, rec.Code, tc.wantCode)
		}
		if rec.Body.String() != tc.wantBody {
			t.Fatalf("%s: body = %q, want %q", tc.name, rec.Body.String(), tc.wantBody)
		}
	}
}

func TestGetSharedHandRendersReplayPage(t *testing.T) {
	shares := &fakeShareStore{rec: &model.ShareRecord{
		ShareID:    "s1",
		HandID:     "h1",
		UserID:     "hero",
		SharerName: "alice",
	}}
	hands := &fakeHandStore{hand: &model.HandLog{
		HandID: "h1",
		Seats: []model.HandSeat{
			{SeatIndex: 0, UserID: "hero", DisplayName: "Alice", StartingStack: 10000},
			{SeatIndex: 1, UserID: "bot", DisplayName: "Bot", StartingStack: 10000},
		},
		StackDeltas: map[string]int64{"0": 500, "1": -500},
	}}
	h := NewHandHandler(config.Config{BaseURL: "https://stackpoker.gg"}, shares, hands)

	rec := getSharedHand(t, h, "s1")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if got := rec.Header().Get("Cache-Control"); got != "s-maxage=3600, stale-while-revalidate" {
		t.Fatalf("Cache-Control = %q", got)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Hand shared by @alice on Stack") {
		t.Fatalf("title missing from body")
	}
	if !strings.Contains(body, `"handId":"h1"`) {
		t.Fatalf("snapshot missing from body")
	}
}
