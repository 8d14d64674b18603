package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"

	"github.com/kindredhq/ledgerd/internal/adapter/http/dto"
	"github.com/kindredhq/ledgerd/internal/adapter/http/middleware"
	"github.com/kindredhq/ledgerd/internal/adapter/repository/memory"
	"github.com/kindredhq/ledgerd/internal/authz"
	"github.com/kindredhq/ledgerd/internal/domain"
	"github.com/kindredhq/ledgerd/internal/infrastructure/metrics"
	"github.com/kindredhq/ledgerd/internal/usecase"
)

type seqIDGen struct {
	n int
}

func (g *seqIDGen) Generate() string {
	g.n++
	return "id-" + strconv.Itoa(g.n)
}

func newTestCoordinator(t *testing.T) (*usecase.Coordinator, *memory.Store) {
	t.Helper()

	store := memory.NewStore()
	idGen := &seqIDGen{}
	engine := usecase.NewEngine(idGen)

	return usecase.NewCoordinator(store, authz.AllowAll{}, engine, idGen), store
}

func seedAccount(t *testing.T, store *memory.Store, id string, balance int64) {
	t.Helper()

	now := time.Now().UTC()
	err := store.Create(context.Background(), &domain.Account{
		ID:        id,
		OwnerID:   "alice@example.com",
		Balance:   decimal.NewFromInt(balance),
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		t.Fatalf("seed account: %v", err)
	}
}

func asPrincipal(req *http.Request) *http.Request {
	ctx := context.WithValue(req.Context(), middleware.PrincipalContextKey, domain.Principal{
		ID:   "alice@example.com",
		Role: domain.RoleAdmin,
	})
	return req.WithContext(ctx)
}

func TestTransactionHandler_Debit_Committed(t *testing.T) {
	coordinator, store := newTestCoordinator(t)
	seedAccount(t, store, "1", 10)

	h := NewTransactionHandler(coordinator, nil)

	body, _ := json.Marshal(dto.DebitRequest{AccountID: "1", Amount: decimal.NewFromInt(10)})
	req := asPrincipal(httptest.NewRequest(http.MethodPost, "/transactions/debit", bytes.NewReader(body)))
	rec := httptest.NewRecorder()

	h.Debit(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp dto.ReceiptResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Status != string(domain.StatusCommitted) {
		t.Fatalf("expected committed receipt, got %s", resp.Status)
	}
	if len(resp.Events) != 1 || !resp.Events[0].NewBalance.IsZero() {
		t.Fatalf("expected one event ending at zero, got %+v", resp.Events)
	}
}

func TestTransactionHandler_Debit_InsufficientFunds(t *testing.T) {
	coordinator, store := newTestCoordinator(t)
	seedAccount(t, store, "1", 10)

	h := NewTransactionHandler(coordinator, nil)

	body, _ := json.Marshal(dto.DebitRequest{AccountID: "1", Amount: decimal.NewFromInt(1000)})
	req := asPrincipal(httptest.NewRequest(http.MethodPost, "/transactions/debit", bytes.NewReader(body)))
	rec := httptest.NewRecorder()

	h.Debit(rec, req)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d: %s", rec.Code, rec.Body.String())
	}

	// The rejection must not touch the balance.
	account, err := store.Read(context.Background(), "1")
	if err != nil {
		t.Fatalf("read account: %v", err)
	}
	if !account.Balance.Equal(decimal.NewFromInt(10)) {
		t.Fatalf("expected balance untouched, got %s", account.Balance)
	}
}

func TestTransactionHandler_Transfer_Committed(t *testing.T) {
	coordinator, store := newTestCoordinator(t)
	seedAccount(t, store, "1", 10)
	seedAccount(t, store, "2", 20)

	h := NewTransactionHandler(coordinator, nil)

	body, _ := json.Marshal(dto.TransferRequest{
		FromAccountID: "1",
		ToAccountID:   "2",
		Amount:        decimal.NewFromInt(5),
	})
	req := asPrincipal(httptest.NewRequest(http.MethodPost, "/transactions/transfer", bytes.NewReader(body)))
	rec := httptest.NewRecorder()

	h.Transfer(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp dto.ReceiptResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp.Events) != 2 {
		t.Fatalf("expected two events for a transfer, got %d", len(resp.Events))
	}
}

func TestTransactionHandler_Transfer_SameAccount(t *testing.T) {
	coordinator, store := newTestCoordinator(t)
	seedAccount(t, store, "1", 10)

	h := NewTransactionHandler(coordinator, nil)

	body, _ := json.Marshal(dto.TransferRequest{
		FromAccountID: "1",
		ToAccountID:   "1",
		Amount:        decimal.NewFromInt(5),
	})
	req := asPrincipal(httptest.NewRequest(http.MethodPost, "/transactions/transfer", bytes.NewReader(body)))
	rec := httptest.NewRecorder()

	h.Transfer(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestTransactionHandler_InvalidBody(t *testing.T) {
	coordinator, _ := newTestCoordinator(t)
	h := NewTransactionHandler(coordinator, nil)

	req := asPrincipal(httptest.NewRequest(http.MethodPost, "/transactions/credit", bytes.NewBufferString("{bad json")))
	rec := httptest.NewRecorder()

	h.Credit(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestTransactionHandler_MissingPrincipal(t *testing.T) {
	coordinator, _ := newTestCoordinator(t)
	h := NewTransactionHandler(coordinator, nil)

	body, _ := json.Marshal(dto.DebitRequest{AccountID: "1", Amount: decimal.NewFromInt(1)})
	req := httptest.NewRequest(http.MethodPost, "/transactions/debit", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	h.Debit(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestTransactionHandler_Transfer_RecordsMetrics(t *testing.T) {
	registry := prometheus.NewRegistry()
	prometheus.DefaultRegisterer = registry
	prometheus.DefaultGatherer = registry
	m := metrics.New()

	coordinator, store := newTestCoordinator(t)
	seedAccount(t, store, "1", 10)
	seedAccount(t, store, "2", 20)

	h := NewTransactionHandler(coordinator, m)

	body, _ := json.Marshal(dto.TransferRequest{FromAccountID: "1", ToAccountID: "2", Amount: decimal.NewFromInt(3)})
	req := asPrincipal(httptest.NewRequest(http.MethodPost, "/transactions/transfer", bytes.NewReader(body)))
	rec := httptest.NewRecorder()

	h.Transfer(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	if got := testutil.ToFloat64(m.TransactionKinds.WithLabelValues(string(domain.KindTransfer))); got != 1 {
		t.Errorf("expected 1 transfer counted, got %v", got)
	}
	if got := testutil.ToFloat64(m.SubmissionsTotal.WithLabelValues(string(domain.KindTransfer), string(domain.StatusCommitted))); got != 1 {
		t.Errorf("expected 1 committed submission counted, got %v", got)
	}
	// Transfers append one event per account.
	if got := testutil.ToFloat64(m.EventsAppended); got != 2 {
		t.Errorf("expected 2 appended events counted, got %v", got)
	}
}
