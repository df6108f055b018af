package sale

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/rhasan/estatedesk/internal/project"
	"github.com/rhasan/estatedesk/internal/sale"
)

type Handler struct {
	svc *sale.Service
}

func NewHandler(svc *sale.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
	r.Put("/{id}", h.update)
	r.Delete("/{id}", h.delete)
}

type extraCostRequest struct {
	Purpose string `json:"purpose"`
	Amount  int64  `json:"amount"`
}

type saleRequest struct {
	ProjectID          uuid.UUID          `json:"project_id"`
	FlatID             uuid.UUID          `json:"flat_id"`
	CustomerID         uuid.UUID          `json:"customer_id"`
	BasePrice          int64              `json:"base_price"`
	ParkingCharge      int64              `json:"parking_charge"`
	UtilityCharge      int64              `json:"utility_charge"`
	ExtraCosts         []extraCostRequest `json:"extra_costs"`
	Downpayment        int64              `json:"downpayment"`
	MonthlyInstallment int64              `json:"monthly_installment"`
	SaleDate           time.Time          `json:"sale_date"`
	Note               string             `json:"note"`
	DeedLink           string             `json:"deed_link"`
	BookingMethod      string             `json:"booking_method"`
	BookingReceiptNo   string             `json:"booking_receipt_no"`
}

func (req saleRequest) toParams() sale.CreateParams {
	extras := make([]sale.ExtraCost, len(req.ExtraCosts))
	for i, e := range req.ExtraCosts {
		extras[i] = sale.ExtraCost{Purpose: e.Purpose, Amount: e.Amount}
	}

	return sale.CreateParams{
		ProjectID:          req.ProjectID,
		FlatID:             req.FlatID,
		CustomerID:         req.CustomerID,
		BasePrice:          req.BasePrice,
		ParkingCharge:      req.ParkingCharge,
		UtilityCharge:      req.UtilityCharge,
		ExtraCosts:         extras,
		Downpayment:        req.Downpayment,
		MonthlyInstallment: req.MonthlyInstallment,
		SaleDate:           req.SaleDate,
		Note:               req.Note,
		DeedLink:           req.DeedLink,
		BookingMethod:      req.BookingMethod,
		BookingReceiptNo:   req.BookingReceiptNo,
	}
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req saleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	s, err := h.svc.Create(r.Context(), req.toParams())
	if err != nil {
		writeSaleError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toResponse(s))
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	filter := sale.ListFilter{}

	if s := r.URL.Query().Get("project_id"); s != "" {
		if id, err := uuid.Parse(s); err == nil {
			filter.ProjectID = new(id)
		}
	}

	if s := r.URL.Query().Get("customer_id"); s != "" {
		if id, err := uuid.Parse(s); err == nil {
			filter.CustomerID = new(id)
		}
	}

	sales, err := h.svc.List(r.Context(), filter)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, toResponseList(sales))
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	s, err := h.svc.Get(r.Context(), id)
	if err != nil {
		writeSaleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toResponse(s))
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req saleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	s, err := h.svc.Update(r.Context(), id, req.toParams())
	if err != nil {
		writeSaleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toResponse(s))
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		writeSaleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func writeSaleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, sale.ErrNotFound):
		http.Error(w, "sale not found", http.StatusNotFound)
	case errors.Is(err, project.ErrFlatNotFound):
		http.Error(w, "flat not found", http.StatusNotFound)
	case errors.Is(err, sale.ErrValidation):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, sale.ErrFlatUnavailable):
		http.Error(w, "flat is not available for sale", http.StatusConflict)
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
