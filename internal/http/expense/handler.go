package expense

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/rhasan/estatedesk/internal/expense"
	"github.com/rhasan/estatedesk/internal/ledger"
)

type Handler struct {
	svc *expense.Service
}

func NewHandler(svc *expense.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
	r.Put("/{id}", h.update)
	r.Delete("/{id}", h.delete)
	r.Post("/{id}/payments", h.makePayment)
}

// PaymentRoutes are mounted separately: payment edits and deletes address
// the outflow row, not the expense.
func (h *Handler) PaymentRoutes(r chi.Router) {
	r.Patch("/{id}", h.editPayment)
	r.Delete("/{id}", h.deletePayment)
}

func (h *Handler) ItemRoutes(r chi.Router) {
	r.Get("/", h.listItems)
	r.Post("/", h.createItem)
}

type expenseRequest struct {
	ExpenseNo string    `json:"expense_no"`
	VendorID  uuid.UUID `json:"vendor_id"`
	ProjectID uuid.UUID `json:"project_id"`
	ItemID    uuid.UUID `json:"item_id"`
	Quantity  int64     `json:"quantity"`
	Price     int64     `json:"price"`
}

func (req expenseRequest) toParams() expense.CreateParams {
	return expense.CreateParams{
		ExpenseNo: req.ExpenseNo,
		VendorID:  req.VendorID,
		ProjectID: req.ProjectID,
		ItemID:    req.ItemID,
		Quantity:  req.Quantity,
		Price:     req.Price,
	}
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req expenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	e, err := h.svc.Create(r.Context(), req.toParams())
	if err != nil {
		writeExpenseError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toResponse(e))
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	filter := expense.ListFilter{}

	if s := r.URL.Query().Get("project_id"); s != "" {
		if id, err := uuid.Parse(s); err == nil {
			filter.ProjectID = new(id)
		}
	}

	if s := r.URL.Query().Get("vendor_id"); s != "" {
		if id, err := uuid.Parse(s); err == nil {
			filter.VendorID = new(id)
		}
	}

	if s := r.URL.Query().Get("status"); s != "" {
		filter.Status = new(expense.Status(s))
	}

	expenses, err := h.svc.List(r.Context(), filter)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, toResponseList(expenses))
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	e, err := h.svc.Get(r.Context(), id)
	if err != nil {
		writeExpenseError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toResponse(e))
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req expenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	e, err := h.svc.Update(r.Context(), id, req.toParams())
	if err != nil {
		writeExpenseError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toResponse(e))
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		writeExpenseError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type paymentRequest struct {
	Amount        int64     `json:"amount"`
	Date          time.Time `json:"date"`
	PaymentMethod string    `json:"payment_method"`
	Reference     string    `json:"reference"`
}

func (h *Handler) makePayment(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req paymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	e, err := h.svc.Get(r.Context(), id)
	if err != nil {
		writeExpenseError(w, err)
		return
	}

	out, err := h.svc.MakePayment(r.Context(), expense.PaymentParams{
		ExpenseNo:     e.ExpenseNo,
		Amount:        req.Amount,
		Date:          req.Date,
		PaymentMethod: req.PaymentMethod,
		Reference:     req.Reference,
	})
	if err != nil {
		writeExpenseError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toOutflowResponse(out))
}

func (h *Handler) editPayment(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req paymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	out, err := h.svc.EditPayment(r.Context(), id, expense.EditPaymentParams{
		Amount:        req.Amount,
		Date:          req.Date,
		PaymentMethod: req.PaymentMethod,
		Reference:     req.Reference,
	})
	if err != nil {
		writeExpenseError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toOutflowResponse(out))
}

func (h *Handler) deletePayment(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.svc.DeletePayment(r.Context(), id); err != nil {
		writeExpenseError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type itemRequest struct {
	Name string `json:"name"`
}

func (h *Handler) listItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.Items(r.Context())
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, toItemResponseList(items))
}

func (h *Handler) createItem(w http.ResponseWriter, r *http.Request) {
	var req itemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	item, err := h.svc.EnsureItem(r.Context(), req.Name)
	if err != nil {
		writeExpenseError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toItemResponse(item))
}

func writeExpenseError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, expense.ErrNotFound), errors.Is(err, ledger.ErrNotFound):
		http.Error(w, "not found", http.StatusNotFound)
	case errors.Is(err, expense.ErrValidation):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, expense.ErrInvalidAmount):
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
	case errors.Is(err, expense.ErrNotAssociated):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, expense.ErrHasPayments):
		http.Error(w, err.Error(), http.StatusConflict)
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
