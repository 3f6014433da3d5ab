package request

import (
	"errors"
	"strings"
	"time"

	"crm_reporting/internal/domain/entities"
)

var (
	ErrInvalidDateFormat = errors.New("invalid date format, expected YYYY-MM-DD")
)

// EstimateRequest is the import payload produced by the upstream
// spreadsheet-import pipeline. Dates arrive as YYYY-MM-DD strings.
type EstimateRequest struct {
	ExternalID     string  `json:"external_id"`
	AccountID      string  `json:"account_id"`
	Status         string  `json:"status" binding:"required"`
	PipelineStatus string  `json:"pipeline_status"`
	Division       string  `json:"division"`
	EstimateType   string  `json:"estimate_type"`
	PriceWithTax   float64 `json:"price_with_tax"`
	PriceExTax     float64 `json:"price_ex_tax"`
	EstimateDate   string  `json:"estimate_date"`
	CloseDate      string  `json:"estimate_close_date"`
	ContractStart  string  `json:"contract_start"`
	ContractEnd    string  `json:"contract_end"`
	CreatedDate    string  `json:"created_date"`
}

// ToEstimate validates the date fields and builds the domain record.
func (r EstimateRequest) ToEstimate() (entities.Estimate, error) {
	dates := []*string{&r.EstimateDate, &r.CloseDate, &r.ContractStart, &r.ContractEnd, &r.CreatedDate}
	for _, d := range dates {
		*d = strings.TrimSpace(*d)
		if *d == "" {
			continue
		}
		if _, err := time.Parse(time.DateOnly, *d); err != nil {
			return entities.Estimate{}, ErrInvalidDateFormat
		}
	}

	return entities.Estimate{
		ExternalID:     r.ExternalID,
		AccountID:      r.AccountID,
		Status:         r.Status,
		PipelineStatus: r.PipelineStatus,
		Division:       r.Division,
		EstimateType:   r.EstimateType,
		PriceWithTax:   r.PriceWithTax,
		PriceExTax:     r.PriceExTax,
		EstimateDate:   r.EstimateDate,
		CloseDate:      r.CloseDate,
		ContractStart:  r.ContractStart,
		ContractEnd:    r.ContractEnd,
		CreatedDate:    r.CreatedDate,
	}, nil
}

// ArchiveRequest toggles an estimate's archived flag.
type ArchiveRequest struct {
	Archived *bool `json:"archived" binding:"required"`
}
