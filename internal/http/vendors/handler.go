package vendor

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/rhasan/estatedesk/internal/vendors"
)

type Handler struct {
	svc *vendor.Service
}

func NewHandler(svc *vendor.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
	r.Patch("/{id}", h.update)
	r.Delete("/{id}", h.delete)
}

type vendorRequest struct {
	VendorName     string `json:"vendor_name"`
	PhoneNumber    string `json:"phone_number"`
	EnterpriseName string `json:"enterprise_name"`
	Details        string `json:"details"`
}

type vendorResponse struct {
	ID             uuid.UUID  `json:"id"`
	VendorName     string     `json:"vendor_name"`
	PhoneNumber    string     `json:"phone_number"`
	EnterpriseName string     `json:"enterprise_name"`
	Details        string     `json:"details"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      *time.Time `json:"updated_at,omitempty"`
}

func toResponse(v *vendor.Vendor) vendorResponse {
	return vendorResponse{
		ID:             v.ID,
		VendorName:     v.VendorName,
		PhoneNumber:    v.PhoneNumber,
		EnterpriseName: v.EnterpriseName,
		Details:        v.Details,
		CreatedAt:      v.CreatedAt,
		UpdatedAt:      v.UpdatedAt,
	}
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req vendorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	v, err := h.svc.Create(r.Context(), vendor.CreateParams{
		VendorName:     req.VendorName,
		PhoneNumber:    req.PhoneNumber,
		EnterpriseName: req.EnterpriseName,
		Details:        req.Details,
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	writeJSON(w, http.StatusCreated, toResponse(v))
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	vendors, err := h.svc.List(r.Context())
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	resp := make([]vendorResponse, len(vendors))
	for i, v := range vendors {
		resp[i] = toResponse(v)
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	v, err := h.svc.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, vendor.ErrNotFound) {
			http.Error(w, "vendor not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	writeJSON(w, http.StatusOK, toResponse(v))
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req vendorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	v, err := h.svc.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, vendor.ErrNotFound) {
			http.Error(w, "vendor not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	if req.VendorName != "" {
		v.VendorName = req.VendorName
	}

	v.PhoneNumber = req.PhoneNumber
	v.EnterpriseName = req.EnterpriseName
	v.Details = req.Details

	if err := h.svc.Update(r.Context(), v); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	writeJSON(w, http.StatusOK, toResponse(v))
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		if errors.Is(err, vendor.ErrNotFound) {
			http.Error(w, "vendor not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
