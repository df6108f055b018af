package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/rhasan/estatedesk/internal/report"
)

type Handler struct {
	svc *report.Service
}

func NewHandler(svc *report.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/dashboard", h.dashboard)
	r.Get("/customers/{id}", h.customerSummary)
	r.Get("/projects/{id}", h.projectSummary)
	r.Get("/export/{register}", h.export)
}

func (h *Handler) dashboard(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.svc.Dashboard(r.Context())
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, toProjectSummaryList(summaries))
}

func (h *Handler) customerSummary(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	summary, err := h.svc.CustomerSummary(r.Context(), id)
	if err != nil {
		writeReportError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toCustomerSummaryResponse(summary))
}

func (h *Handler) projectSummary(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	summary, err := h.svc.ProjectSummary(r.Context(), id)
	if err != nil {
		writeReportError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toProjectSummaryResponse(summary))
}

// export streams a register as a CSV download. Rows are fetched up front;
// the registers are small enough that buffering them is fine.
func (h *Handler) export(w http.ResponseWriter, r *http.Request) {
	register := chi.URLParam(r, "register")

	switch register {
	case "sales", "collections", "payments":
	default:
		http.Error(w, "unknown register", http.StatusNotFound)
		return
	}

	write := func(w http.ResponseWriter) error {
		switch register {
		case "sales":
			rows, err := h.svc.SalesRegister(r.Context())
			if err != nil {
				return err
			}

			return report.WriteSalesRegister(w, rows)
		case "collections":
			rows, err := h.svc.CollectionsRegister(r.Context())
			if err != nil {
				return err
			}

			return report.WriteCollectionsRegister(w, rows)
		case "payments":
			rows, err := h.svc.PaymentsRegister(r.Context())
			if err != nil {
				return err
			}

			return report.WritePaymentsRegister(w, rows)
		}

		return nil
	}

	filename := fmt.Sprintf("%s-register-%s.csv", register, time.Now().Format("20060102"))

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	if err := write(w); err != nil {
		slog.Error("failed to export register", "register", register, "error", err)
	}
}

func writeReportError(w http.ResponseWriter, err error) {
	if errors.Is(err, report.ErrNotFound) {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}

	http.Error(w, "internal error", http.StatusInternalServerError)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
