package importcsv

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/rhasan/estatedesk/internal/importer"
	"github.com/rhasan/estatedesk/internal/ledger"
)

type Handler struct {
	importSvc *importer.Service
	ledgerSvc *ledger.Service
}

func NewHandler(importSvc *importer.Service, ledgerSvc *ledger.Service) *Handler {
	return &Handler{
		importSvc: importSvc,
		ledgerSvc: ledgerSvc,
	}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/collections", h.importCollections)
	r.Post("/collections/confirm", h.confirmCollections)
}

type statementRowDTO struct {
	Date      time.Time `json:"date"`
	ReceiptNo string    `json:"receipt_no"`
	Amount    int64     `json:"amount"`
	Reference string    `json:"reference"`
}

type importSuccessResponse struct {
	Parsed int               `json:"parsed"`
	Rows   []statementRowDTO `json:"rows"`
}

// importCollections parses an uploaded bank statement and returns the rows
// for review. Nothing is written; the back office assigns each row to a
// project, flat and customer before confirming.
func (h *Handler) importCollections(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		http.Error(w, "failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}

	source := importer.Source(r.FormValue("source"))
	if source == "" {
		source = importer.SourceBankStatement
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "file field is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	rows, err := h.importSvc.Import(source, file)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	resp := importSuccessResponse{
		Parsed: len(rows),
		Rows:   make([]statementRowDTO, 0, len(rows)),
	}
	for _, row := range rows {
		resp.Rows = append(resp.Rows, statementRowDTO{
			Date:      row.Date,
			ReceiptNo: row.ReceiptNo,
			Amount:    row.Amount,
			Reference: row.Reference,
		})
	}

	writeJSON(w, http.StatusOK, resp)
}

type confirmRowDTO struct {
	statementRowDTO
	ProjectID     uuid.UUID          `json:"project_id"`
	FlatID        uuid.UUID          `json:"flat_id"`
	CustomerID    uuid.UUID          `json:"customer_id"`
	PaymentType   ledger.PaymentType `json:"payment_type"`
	PaymentMethod string             `json:"payment_method"`
}

type confirmRequest struct {
	Rows []confirmRowDTO `json:"rows"`
}

type confirmResponse struct {
	Recorded int         `json:"recorded"`
	IDs      []uuid.UUID `json:"ids"`
}

// confirmCollections records the reviewed rows as inflows. Rows are written
// one by one; the response reports how many made it before the first failure.
func (h *Handler) confirmCollections(w http.ResponseWriter, r *http.Request) {
	var req confirmRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	resp := confirmResponse{IDs: make([]uuid.UUID, 0, len(req.Rows))}

	for i, row := range req.Rows {
		paymentType := row.PaymentType
		if paymentType == "" {
			paymentType = ledger.PaymentTypeInstallment
		}

		in, err := h.ledgerSvc.RecordInflow(r.Context(), ledger.InflowParams{
			ProjectID:     row.ProjectID,
			FlatID:        row.FlatID,
			CustomerID:    row.CustomerID,
			Amount:        row.Amount,
			Date:          row.Date,
			PaymentType:   paymentType,
			PaymentMethod: row.PaymentMethod,
			ReceiptNo:     row.ReceiptNo,
			Reference:     row.Reference,
		})
		if err != nil {
			slog.Error("failed to record imported collection", "row", i, "error", err)
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		resp.Recorded++
		resp.IDs = append(resp.IDs, in.ID)
	}

	writeJSON(w, http.StatusCreated, resp)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
