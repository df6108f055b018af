package opcost

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/rhasan/estatedesk/internal/opcost"
)

type Handler struct {
	svc *opcost.Service
}

func NewHandler(svc *opcost.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
	r.Put("/{id}", h.update)
	r.Delete("/{id}", h.delete)
}

func (h *Handler) ItemRoutes(r chi.Router) {
	r.Get("/", h.listItems)
	r.Post("/", h.createItem)
}

type costRequest struct {
	CostDate    time.Time `json:"cost_date"`
	ItemID      uuid.UUID `json:"item_id"`
	Amount      int64     `json:"amount"`
	Description string    `json:"description"`
	Reference   string    `json:"reference"`
}

func (req costRequest) toParams() opcost.CreateParams {
	return opcost.CreateParams{
		CostDate:    req.CostDate,
		ItemID:      req.ItemID,
		Amount:      req.Amount,
		Description: req.Description,
		Reference:   req.Reference,
	}
}

type costResponse struct {
	ID          uuid.UUID `json:"id"`
	CostDate    time.Time `json:"cost_date"`
	ItemID      uuid.UUID `json:"item_id"`
	ItemName    string    `json:"item_name,omitempty"`
	Amount      int64     `json:"amount"`
	Description string    `json:"description,omitempty"`
	Reference   string    `json:"reference,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func toResponse(c *opcost.OperatingCost) costResponse {
	return costResponse{
		ID:          c.ID,
		CostDate:    c.CostDate,
		ItemID:      c.ItemID,
		ItemName:    c.ItemName,
		Amount:      c.Amount,
		Description: c.Description,
		Reference:   c.Reference,
		CreatedAt:   c.CreatedAt,
	}
}

func toResponseList(costs []*opcost.OperatingCost) []costResponse {
	resp := make([]costResponse, len(costs))
	for i, c := range costs {
		resp[i] = toResponse(c)
	}

	return resp
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req costRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	c, err := h.svc.Create(r.Context(), req.toParams())
	if err != nil {
		writeCostError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toResponse(c))
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	filter := opcost.ListFilter{}

	q := r.URL.Query()

	if s := q.Get("item_id"); s != "" {
		if id, err := uuid.Parse(s); err == nil {
			filter.ItemID = new(id)
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

	costs, err := h.svc.List(r.Context(), filter)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, toResponseList(costs))
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	c, err := h.svc.Get(r.Context(), id)
	if err != nil {
		writeCostError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toResponse(c))
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req costRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	c, err := h.svc.Update(r.Context(), id, req.toParams())
	if err != nil {
		writeCostError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toResponse(c))
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		writeCostError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type itemRequest struct {
	Name string `json:"name"`
}

type itemResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

func (h *Handler) listItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.Items(r.Context())
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	resp := make([]itemResponse, len(items))
	for i, it := range items {
		resp[i] = itemResponse{ID: it.ID, Name: it.Name}
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) createItem(w http.ResponseWriter, r *http.Request) {
	var req itemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	item, err := h.svc.EnsureItem(r.Context(), req.Name)
	if err != nil {
		writeCostError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, itemResponse{ID: item.ID, Name: item.Name})
}

func writeCostError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, opcost.ErrNotFound):
		http.Error(w, "operating cost not found", http.StatusNotFound)
	case errors.Is(err, opcost.ErrValidation):
		http.Error(w, err.Error(), http.StatusBadRequest)
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
