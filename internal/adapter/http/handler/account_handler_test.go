package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/kindredhq/ledgerd/internal/adapter/http/dto"
	"github.com/kindredhq/ledgerd/internal/adapter/repository/memory"
	"github.com/kindredhq/ledgerd/internal/authz"
	"github.com/kindredhq/ledgerd/internal/usecase"
)

func newTestAccountHandler(t *testing.T) (*AccountHandler, *memory.Store) {
	t.Helper()

	store := memory.NewStore()
	uc := usecase.NewAccountUseCase(store, authz.AllowAll{}, &seqIDGen{})

	return NewAccountHandler(uc, nil), store
}

func TestAccountHandler_Create_Success(t *testing.T) {
	h, _ := newTestAccountHandler(t)

	body, _ := json.Marshal(dto.CreateAccountRequest{
		ID:             "1",
		OwnerID:        "alice@example.com",
		OpeningBalance: decimal.NewFromInt(10),
	})
	req := asPrincipal(httptest.NewRequest(http.MethodPost, "/accounts", bytes.NewReader(body)))
	rec := httptest.NewRecorder()

	h.Create(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp dto.AccountResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.ID != "1" || resp.OwnerID != "alice@example.com" || resp.Version != 0 {
		t.Fatalf("unexpected account response: %+v", resp)
	}
}

func TestAccountHandler_Create_Duplicate(t *testing.T) {
	h, store := newTestAccountHandler(t)
	seedAccount(t, store, "1", 10)

	body, _ := json.Marshal(dto.CreateAccountRequest{ID: "1", OwnerID: "alice@example.com"})
	req := asPrincipal(httptest.NewRequest(http.MethodPost, "/accounts", bytes.NewReader(body)))
	rec := httptest.NewRecorder()

	h.Create(rec, req)

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
}

func TestAccountHandler_Get_NotFound(t *testing.T) {
	h, _ := newTestAccountHandler(t)

	req := asPrincipal(httptest.NewRequest(http.MethodGet, "/accounts/missing", nil))
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", "missing")
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
	rec := httptest.NewRecorder()

	h.Get(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestAccountHandler_List(t *testing.T) {
	h, store := newTestAccountHandler(t)
	seedAccount(t, store, "1", 10)
	seedAccount(t, store, "2", 20)

	req := asPrincipal(httptest.NewRequest(http.MethodGet, "/accounts?limit=10", nil))
	rec := httptest.NewRecorder()

	h.List(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp []*dto.AccountResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp) != 2 {
		t.Fatalf("expected 2 accounts, got %d", len(resp))
	}
}
