package ledger

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/rhasan/estatedesk/internal/ledger"
)

type Handler struct {
	svc *ledger.Service
}

func NewHandler(svc *ledger.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/inflows", h.recordInflow)
	r.Get("/inflows", h.listInflows)
	r.Get("/inflows/{id}", h.getInflow)
	r.Delete("/inflows/{id}", h.deleteInflow)

	r.Post("/outflows", h.recordOutflow)
	r.Get("/outflows", h.listOutflows)
	r.Get("/outflows/{id}", h.getOutflow)
}

type inflowRequest struct {
	ProjectID     uuid.UUID          `json:"project_id"`
	FlatID        uuid.UUID          `json:"flat_id"`
	CustomerID    uuid.UUID          `json:"customer_id"`
	Amount        int64              `json:"amount"`
	Date          time.Time          `json:"date"`
	PaymentType   ledger.PaymentType `json:"payment_type"`
	PaymentMethod string             `json:"payment_method"`
	ReceiptNo     string             `json:"receipt_no"`
	Reference     string             `json:"reference"`
}

func (h *Handler) recordInflow(w http.ResponseWriter, r *http.Request) {
	var req inflowRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	in, err := h.svc.RecordInflow(r.Context(), ledger.InflowParams{
		ProjectID:     req.ProjectID,
		FlatID:        req.FlatID,
		CustomerID:    req.CustomerID,
		Amount:        req.Amount,
		Date:          req.Date,
		PaymentType:   req.PaymentType,
		PaymentMethod: req.PaymentMethod,
		ReceiptNo:     req.ReceiptNo,
		Reference:     req.Reference,
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	writeJSON(w, http.StatusCreated, toInflowResponse(in))
}

func (h *Handler) listInflows(w http.ResponseWriter, r *http.Request) {
	filter := ledger.InflowFilter{}

	q := r.URL.Query()

	if s := q.Get("project_id"); s != "" {
		if id, err := uuid.Parse(s); err == nil {
			filter.ProjectID = new(id)
		}
	}

	if s := q.Get("customer_id"); s != "" {
		if id, err := uuid.Parse(s); err == nil {
			filter.CustomerID = new(id)
		}
	}

	if s := q.Get("flat_id"); s != "" {
		if id, err := uuid.Parse(s); err == nil {
			filter.FlatID = new(id)
		}
	}

	if s := q.Get("start_date"); s != "" {
		if t, err := time.Parse(time.DateOnly, s); err == nil {
			filter.StartDate = new(t)
		}
	}

	if s := q.Get("end_date"); s != "" {
		if t, err := time.Parse(time.DateOnly, s); err == nil {
			filter.EndDate = new(t)
		}
	}

	inflows, err := h.svc.ListInflows(r.Context(), filter)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, toInflowResponseList(inflows))
}

func (h *Handler) getInflow(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	in, err := h.svc.GetInflow(r.Context(), id)
	if err != nil {
		writeLedgerError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toInflowResponse(in))
}

func (h *Handler) deleteInflow(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.svc.DeleteInflow(r.Context(), id); err != nil {
		writeLedgerError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type outflowRequest struct {
	ProjectID     *uuid.UUID `json:"project_id,omitempty"`
	Amount        int64      `json:"amount"`
	Date          time.Time  `json:"date"`
	Category      string     `json:"category"`
	Vendor        string     `json:"vendor"`
	PaymentMethod string     `json:"payment_method"`
	Reference     string     `json:"reference"`
}

func (h *Handler) recordOutflow(w http.ResponseWriter, r *http.Request) {
	var req outflowRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	out, err := h.svc.RecordOutflow(r.Context(), ledger.OutflowParams{
		ProjectID:     req.ProjectID,
		Amount:        req.Amount,
		Date:          req.Date,
		Category:      req.Category,
		Vendor:        req.Vendor,
		PaymentMethod: req.PaymentMethod,
		Reference:     req.Reference,
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	writeJSON(w, http.StatusCreated, toOutflowResponse(out))
}

func (h *Handler) listOutflows(w http.ResponseWriter, r *http.Request) {
	filter := ledger.OutflowFilter{}

	q := r.URL.Query()

	if s := q.Get("project_id"); s != "" {
		if id, err := uuid.Parse(s); err == nil {
			filter.ProjectID = new(id)
		}
	}

	if s := q.Get("category"); s != "" {
		filter.Category = new(s)
	}

	if s := q.Get("start_date"); s != "" {
		if t, err := time.Parse(time.DateOnly, s); err == nil {
			filter.StartDate = new(t)
		}
	}

	if s := q.Get("end_date"); s != "" {
		if t, err := time.Parse(time.DateOnly, s); err == nil {
			filter.EndDate = new(t)
		}
	}

	outflows, err := h.svc.ListOutflows(r.Context(), filter)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, toOutflowResponseList(outflows))
}

func (h *Handler) getOutflow(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	out, err := h.svc.GetOutflow(r.Context(), id)
	if err != nil {
		writeLedgerError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toOutflowResponse(out))
}

func writeLedgerError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ledger.ErrNotFound):
		http.Error(w, "ledger entry not found", http.StatusNotFound)
	case errors.Is(err, ledger.ErrValidation):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ledger.ErrLinked):
		http.Error(w, "outflow is linked to an expense", http.StatusConflict)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
