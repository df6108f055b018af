package report

import (
	"github.com/google/uuid"

	"github.com/rhasan/estatedesk/internal/report"
)

type customerSaleRowResponse struct {
	Project    string `json:"project"`
	Flat       string `json:"flat"`
	TotalPrice int64  `json:"total_price"`
	Collected  int64  `json:"collected"`
	Due        int64  `json:"due"`
}

type customerSummaryResponse struct {
	CustomerID     uuid.UUID                 `json:"customer_id"`
	CustomerName   string                    `json:"customer_name"`
	Sales          []customerSaleRowResponse `json:"sales"`
	TotalPrice     int64                     `json:"total_price"`
	TotalCollected int64                     `json:"total_collected"`
	TotalDue       int64                     `json:"total_due"`
}

func toCustomerSummaryResponse(s *report.CustomerSummary) customerSummaryResponse {
	rows := make([]customerSaleRowResponse, len(s.Rows))
	for i, row := range s.Rows {
		rows[i] = customerSaleRowResponse{
			Project:    row.ProjectName,
			Flat:       row.FlatNumber,
			TotalPrice: row.TotalPrice,
			Collected:  row.Collected,
			Due:        row.Due,
		}
	}

	return customerSummaryResponse{
		CustomerID:     s.CustomerID,
		CustomerName:   s.CustomerName,
		Sales:          rows,
		TotalPrice:     s.TotalPrice,
		TotalCollected: s.TotalCollected,
		TotalDue:       s.TotalDue,
	}
}

type projectSummaryResponse struct {
	ProjectID      uuid.UUID `json:"project_id"`
	ProjectName    string    `json:"project_name"`
	Status         string    `json:"status"`
	TotalFlats     int       `json:"total_flats"`
	SoldFlats      int       `json:"sold_flats"`
	AvailableFlats int       `json:"available_flats"`
	ReservedFlats  int       `json:"reserved_flats"`

	SalesValue int64 `json:"sales_value"`
	Collected  int64 `json:"collected"`
	Spent      int64 `json:"spent"`

	ExpenseBilled      int64 `json:"expense_billed"`
	ExpensePaid        int64 `json:"expense_paid"`
	ExpenseOutstanding int64 `json:"expense_outstanding"`
}

func toProjectSummaryResponse(s *report.ProjectSummary) projectSummaryResponse {
	return projectSummaryResponse{
		ProjectID:          s.ProjectID,
		ProjectName:        s.ProjectName,
		Status:             s.Status,
		TotalFlats:         s.TotalFlats,
		SoldFlats:          s.SoldFlats,
		AvailableFlats:     s.AvailableFlats,
		ReservedFlats:      s.ReservedFlats,
		SalesValue:         s.SalesValue,
		Collected:          s.Collected,
		Spent:              s.Spent,
		ExpenseBilled:      s.ExpenseBilled,
		ExpensePaid:        s.ExpensePaid,
		ExpenseOutstanding: s.ExpenseOutstanding,
	}
}

func toProjectSummaryList(summaries []*report.ProjectSummary) []projectSummaryResponse {
	resp := make([]projectSummaryResponse, len(summaries))
	for i, s := range summaries {
		resp[i] = toProjectSummaryResponse(s)
	}

	return resp
}
