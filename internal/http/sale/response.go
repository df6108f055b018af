package sale

import (
	"time"

	"github.com/google/uuid"

	"github.com/rhasan/estatedesk/internal/sale"
)

type extraCostResponse struct {
	Purpose string `json:"purpose"`
	Amount  int64  `json:"amount"`
}

type saleResponse struct {
	ID                 uuid.UUID           `json:"id"`
	ProjectID          uuid.UUID           `json:"project_id"`
	FlatID             uuid.UUID           `json:"flat_id"`
	CustomerID         uuid.UUID           `json:"customer_id"`
	BasePrice          int64               `json:"base_price"`
	ParkingCharge      int64               `json:"parking_charge"`
	UtilityCharge      int64               `json:"utility_charge"`
	ExtraCosts         []extraCostResponse `json:"extra_costs"`
	TotalPrice         int64               `json:"total_price"`
	Downpayment        int64               `json:"downpayment"`
	MonthlyInstallment int64               `json:"monthly_installment"`
	SaleDate           time.Time           `json:"sale_date"`
	Note               string              `json:"note,omitempty"`
	DeedLink           string              `json:"deed_link,omitempty"`
	CreatedAt          time.Time           `json:"created_at"`
	UpdatedAt          *time.Time          `json:"updated_at,omitempty"`
}

func toResponse(s *sale.Sale) saleResponse {
	extras := make([]extraCostResponse, len(s.ExtraCosts))
	for i, e := range s.ExtraCosts {
		extras[i] = extraCostResponse{Purpose: e.Purpose, Amount: e.Amount}
	}

	return saleResponse{
		ID:                 s.ID,
		ProjectID:          s.ProjectID,
		FlatID:             s.FlatID,
		CustomerID:         s.CustomerID,
		BasePrice:          s.BasePrice,
		ParkingCharge:      s.ParkingCharge,
		UtilityCharge:      s.UtilityCharge,
		ExtraCosts:         extras,
		TotalPrice:         s.TotalPrice,
		Downpayment:        s.Downpayment,
		MonthlyInstallment: s.MonthlyInstallment,
		SaleDate:           s.SaleDate,
		Note:               s.Note,
		DeedLink:           s.DeedLink,
		CreatedAt:          s.CreatedAt,
		UpdatedAt:          s.UpdatedAt,
	}
}

func toResponseList(sales []*sale.Sale) []saleResponse {
	resp := make([]saleResponse, len(sales))
	for i, s := range sales {
		resp[i] = toResponse(s)
	}

	return resp
}
