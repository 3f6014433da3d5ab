package response

import (
	"time"

	"crm_reporting/internal/domain/entities"
)

type EstimateResponse struct {
	ID             string    `json:"id"`
	ExternalID     string    `json:"external_id"`
	AccountID      string    `json:"account_id"`
	Status         string    `json:"status"`
	PipelineStatus string    `json:"pipeline_status,omitempty"`
	Division       string    `json:"division,omitempty"`
	EstimateType   string    `json:"estimate_type,omitempty"`
	PriceWithTax   float64   `json:"price_with_tax"`
	PriceExTax     float64   `json:"price_ex_tax"`
	EstimateDate   string    `json:"estimate_date,omitempty"`
	CloseDate      string    `json:"estimate_close_date,omitempty"`
	ContractStart  string    `json:"contract_start,omitempty"`
	ContractEnd    string    `json:"contract_end,omitempty"`
	CreatedDate    string    `json:"created_date,omitempty"`
	Archived       bool      `json:"archived"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type EstimateListResponse struct {
	Estimates []EstimateResponse `json:"estimates"`
}

func FromEstimates(estimates []entities.Estimate) EstimateListResponse {
	out := EstimateListResponse{Estimates: make([]EstimateResponse, 0, len(estimates))}
	for _, e := range estimates {
		out.Estimates = append(out.Estimates, FromEstimate(e))
	}
	return out
}

func FromEstimate(e entities.Estimate) EstimateResponse {
	return EstimateResponse{
		ID:             e.ID,
		ExternalID:     e.ExternalID,
		AccountID:      e.AccountID,
		Status:         e.Status,
		PipelineStatus: e.PipelineStatus,
		Division:       e.Division,
		EstimateType:   e.EstimateType,
		PriceWithTax:   e.PriceWithTax,
		PriceExTax:     e.PriceExTax,
		EstimateDate:   e.EstimateDate,
		CloseDate:      e.CloseDate,
		ContractStart:  e.ContractStart,
		ContractEnd:    e.ContractEnd,
		CreatedDate:    e.CreatedDate,
		Archived:       e.Archived,
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      e.UpdatedAt,
	}
}
