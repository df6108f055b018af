package project

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/rhasan/estatedesk/internal/project"
)

type Handler struct {
	svc *project.Service
}

func NewHandler(svc *project.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
	r.Patch("/{id}", h.update)
	r.Delete("/{id}", h.delete)

	r.Post("/{id}/flats", h.addFlat)
	r.Get("/{id}/flats", h.listFlats)
	r.Patch("/flats/{flatID}", h.updateFlat)
	r.Post("/flats/{flatID}/reserve", h.reserveFlat)
	r.Post("/flats/{flatID}/release", h.releaseFlat)
}

type createProjectRequest struct {
	ProjectName     string         `json:"project_name"`
	Location        string         `json:"location"`
	TotalFlats      int            `json:"total_flats"`
	DeveloperShare  int            `json:"developer_share"`
	LandownerShare  int            `json:"landowner_share"`
	StartDate       time.Time      `json:"start_date"`
	Status          project.Status `json:"status"`
	EstimatedBudget int64          `json:"estimated_budget"`
	TargetSell      int64          `json:"target_sell"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	p, err := h.svc.Create(r.Context(), project.CreateParams{
		ProjectName:     req.ProjectName,
		Location:        req.Location,
		TotalFlats:      req.TotalFlats,
		DeveloperShare:  req.DeveloperShare,
		LandownerShare:  req.LandownerShare,
		StartDate:       req.StartDate,
		Status:          req.Status,
		EstimatedBudget: req.EstimatedBudget,
		TargetSell:      req.TargetSell,
	})
	if err != nil {
		writeProjectError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toResponse(p))
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	projects, err := h.svc.List(r.Context())
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, toResponseList(projects))
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	p, err := h.svc.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, project.ErrNotFound) {
			http.Error(w, "project not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	writeJSON(w, http.StatusOK, toResponse(p))
}

type updateProjectRequest struct {
	ProjectName     *string         `json:"project_name,omitempty"`
	Location        *string         `json:"location,omitempty"`
	TotalFlats      *int            `json:"total_flats,omitempty"`
	DeveloperShare  *int            `json:"developer_share,omitempty"`
	LandownerShare  *int            `json:"landowner_share,omitempty"`
	Status          *project.Status `json:"status,omitempty"`
	EstimatedBudget *int64          `json:"estimated_budget,omitempty"`
	TargetSell      *int64          `json:"target_sell,omitempty"`
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req updateProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	p, err := h.svc.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, project.ErrNotFound) {
			http.Error(w, "project not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	if req.ProjectName != nil {
		p.ProjectName = *req.ProjectName
	}

	if req.Location != nil {
		p.Location = *req.Location
	}

	if req.TotalFlats != nil {
		p.TotalFlats = *req.TotalFlats
	}

	if req.DeveloperShare != nil {
		p.DeveloperShare = *req.DeveloperShare
	}

	if req.LandownerShare != nil {
		p.LandownerShare = *req.LandownerShare
	}

	if req.Status != nil {
		p.Status = *req.Status
	}

	if req.EstimatedBudget != nil {
		p.EstimatedBudget = *req.EstimatedBudget
	}

	if req.TargetSell != nil {
		p.TargetSell = *req.TargetSell
	}

	if err := h.svc.Update(r.Context(), p); err != nil {
		writeProjectError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toResponse(p))
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		if errors.Is(err, project.ErrNotFound) {
			http.Error(w, "project not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type addFlatRequest struct {
	FlatNumber string            `json:"flat_number"`
	FlatSize   int               `json:"flat_size"`
	Ownership  project.Ownership `json:"ownership"`
}

func (h *Handler) addFlat(w http.ResponseWriter, r *http.Request) {
	projectID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req addFlatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	f, err := h.svc.AddFlat(r.Context(), project.FlatParams{
		ProjectID:  projectID,
		FlatNumber: req.FlatNumber,
		FlatSize:   req.FlatSize,
		Ownership:  req.Ownership,
	})
	if err != nil {
		writeProjectError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toFlatResponse(f))
}

func (h *Handler) listFlats(w http.ResponseWriter, r *http.Request) {
	projectID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	flats, err := h.svc.ListFlats(r.Context(), projectID)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, toFlatResponseList(flats))
}

type updateFlatRequest struct {
	FlatNumber *string            `json:"flat_number,omitempty"`
	FlatSize   *int               `json:"flat_size,omitempty"`
	Ownership  *project.Ownership `json:"ownership,omitempty"`
}

// updateFlat edits flat attributes only. Status moves through the sale
// lifecycle or reserve/release, never here.
func (h *Handler) updateFlat(w http.ResponseWriter, r *http.Request) {
	flatID, err := uuid.Parse(chi.URLParam(r, "flatID"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req updateFlatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	f, err := h.svc.GetFlat(r.Context(), flatID)
	if err != nil {
		if errors.Is(err, project.ErrFlatNotFound) {
			http.Error(w, "flat not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	if req.FlatNumber != nil {
		f.FlatNumber = *req.FlatNumber
	}

	if req.FlatSize != nil {
		f.FlatSize = *req.FlatSize
	}

	if req.Ownership != nil {
		f.Ownership = *req.Ownership
	}

	if err := h.svc.UpdateFlat(r.Context(), f); err != nil {
		writeProjectError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toFlatResponse(f))
}

func (h *Handler) reserveFlat(w http.ResponseWriter, r *http.Request) {
	h.swapFlat(w, r, h.svc.ReserveFlat)
}

func (h *Handler) releaseFlat(w http.ResponseWriter, r *http.Request) {
	h.swapFlat(w, r, h.svc.ReleaseFlat)
}

func (h *Handler) swapFlat(w http.ResponseWriter, r *http.Request, op func(ctx context.Context, id uuid.UUID) error) {
	flatID, err := uuid.Parse(chi.URLParam(r, "flatID"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := op(r.Context(), flatID); err != nil {
		switch {
		case errors.Is(err, project.ErrFlatNotFound):
			http.Error(w, "flat not found", http.StatusNotFound)
		case errors.Is(err, project.ErrFlatConflict):
			http.Error(w, "flat is not in the expected state", http.StatusConflict)
		default:
			http.Error(w, "internal error", http.StatusInternalServerError)
		}

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func writeProjectError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, project.ErrNotFound):
		http.Error(w, "project not found", http.StatusNotFound)
	case errors.Is(err, project.ErrFlatNotFound):
		http.Error(w, "flat not found", http.StatusNotFound)
	case errors.Is(err, project.ErrValidation):
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
