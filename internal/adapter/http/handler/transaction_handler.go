package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/kindredhq/ledgerd/internal/adapter/http/dto"
	"github.com/kindredhq/ledgerd/internal/adapter/http/middleware"
	"github.com/kindredhq/ledgerd/internal/domain"
	"github.com/kindredhq/ledgerd/internal/infrastructure/metrics"
	"github.com/kindredhq/ledgerd/internal/usecase"
)

// TransactionHandler handles transaction submission requests.
type TransactionHandler struct {
	coordinator *usecase.Coordinator
	metrics     *metrics.Metrics
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(coordinator *usecase.Coordinator, m *metrics.Metrics) *TransactionHandler {
	return &TransactionHandler{
		coordinator: coordinator,
		metrics:     m,
	}
}

// Debit submits a debit transaction.
func (h *TransactionHandler) Debit(w http.ResponseWriter, r *http.Request) {
	var req dto.DebitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	h.submit(w, r, domain.NewDebit(req.AccountID, req.Amount))
}

// Credit submits a credit transaction.
func (h *TransactionHandler) Credit(w http.ResponseWriter, r *http.Request) {
	var req dto.CreditRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	h.submit(w, r, domain.NewCredit(req.AccountID, req.Amount))
}

// Transfer submits a transfer transaction.
func (h *TransactionHandler) Transfer(w http.ResponseWriter, r *http.Request) {
	var req dto.TransferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	h.submit(w, r, domain.NewTransfer(req.FromAccountID, req.ToAccountID, req.Amount))
}

func (h *TransactionHandler) submit(w http.ResponseWriter, r *http.Request, tx domain.Transaction) {
	principal, ok := middleware.GetPrincipalFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "")
		return
	}

	start := time.Now()

	if h.metrics != nil {
		h.metrics.TransactionKinds.WithLabelValues(string(tx.Kind)).Inc()
	}

	receipt, err := h.coordinator.Submit(r.Context(), principal, tx)

	if h.metrics != nil && receipt != nil {
		h.metrics.SubmissionsTotal.WithLabelValues(string(tx.Kind), string(receipt.Status)).Inc()
		if receipt.Status == domain.StatusCommitted {
			h.metrics.CommitDuration.Observe(time.Since(start).Seconds())
			h.metrics.EventsAppended.Add(float64(len(receipt.Events)))
		}
		if receipt.Status == domain.StatusConflicted {
			h.metrics.ConflictsTotal.Inc()
		}
	}

	if err != nil {
		writeJSONReceiptError(w, receipt, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.ReceiptFromUseCase(receipt))
}

// writeJSONReceiptError reports a failed submission. The receipt rides along
// so callers can see the state the transaction terminated in.
func writeJSONReceiptError(w http.ResponseWriter, receipt *usecase.Receipt, err error) {
	status := mapDomainError(err)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(struct {
		dto.ErrorResponse
		Receipt *dto.ReceiptResponse `json:"receipt,omitempty"`
	}{
		ErrorResponse: dto.ErrorResponse{
			Error:   "transaction failed",
			Message: err.Error(),
		},
		Receipt: dto.ReceiptFromUseCase(receipt),
	})
}
