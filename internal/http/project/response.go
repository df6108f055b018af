package project

import (
	"time"

	"github.com/google/uuid"

	"github.com/rhasan/estatedesk/internal/project"
)

type projectResponse struct {
	ID              uuid.UUID      `json:"id"`
	ProjectName     string         `json:"project_name"`
	Location        string         `json:"location"`
	TotalFlats      int            `json:"total_flats"`
	DeveloperShare  int            `json:"developer_share"`
	LandownerShare  int            `json:"landowner_share"`
	StartDate       time.Time      `json:"start_date"`
	Status          project.Status `json:"status"`
	EstimatedBudget int64          `json:"estimated_budget"`
	TargetSell      int64          `json:"target_sell"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       *time.Time     `json:"updated_at,omitempty"`
}

func toResponse(p *project.Project) projectResponse {
	return projectResponse{
		ID:              p.ID,
		ProjectName:     p.ProjectName,
		Location:        p.Location,
		TotalFlats:      p.TotalFlats,
		DeveloperShare:  p.DeveloperShare,
		LandownerShare:  p.LandownerShare,
		StartDate:       p.StartDate,
		Status:          p.Status,
		EstimatedBudget: p.EstimatedBudget,
		TargetSell:      p.TargetSell,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}

func toResponseList(projects []*project.Project) []projectResponse {
	resp := make([]projectResponse, len(projects))
	for i, p := range projects {
		resp[i] = toResponse(p)
	}

	return resp
}

type flatResponse struct {
	ID         uuid.UUID          `json:"id"`
	ProjectID  uuid.UUID          `json:"project_id"`
	FlatNumber string             `json:"flat_number"`
	FlatSize   int                `json:"flat_size"`
	Ownership  project.Ownership  `json:"ownership"`
	Status     project.FlatStatus `json:"status"`
	CreatedAt  time.Time          `json:"created_at"`
}

func toFlatResponse(f *project.Flat) flatResponse {
	return flatResponse{
		ID:         f.ID,
		ProjectID:  f.ProjectID,
		FlatNumber: f.FlatNumber,
		FlatSize:   f.FlatSize,
		Ownership:  f.Ownership,
		Status:     f.Status,
		CreatedAt:  f.CreatedAt,
	}
}

func toFlatResponseList(flats []*project.Flat) []flatResponse {
	resp := make([]flatResponse, len(flats))
	for i, f := range flats {
		resp[i] = toFlatResponse(f)
	}

	return resp
}
