package response

import (
	"time"

	"crm_reporting/internal/domain/entities"
	"crm_reporting/internal/domain/reporting"
)

// The reporting structs already carry presentation-ready JSON shapes
// (counts, values, one-decimal ratios), so report responses embed them
// directly instead of re-mapping field by field.

type OverallReportResponse struct {
	Year     int  `json:"year,omitempty"`
	SoldOnly bool `json:"sold_only,omitempty"`
	reporting.Stats
}

type AccountReportResponse struct {
	Year     int                      `json:"year,omitempty"`
	SoldOnly bool                     `json:"sold_only,omitempty"`
	Accounts []reporting.AccountStats `json:"accounts"`
}

type DepartmentReportResponse struct {
	Year        int                         `json:"year,omitempty"`
	SoldOnly    bool                        `json:"sold_only,omitempty"`
	Departments []reporting.DepartmentStats `json:"departments"`
}

type AccountResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	AnnualRevenue float64   `json:"annual_revenue"`
	Segment       string    `json:"revenue_segment"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func FromAccount(a entities.Account) AccountResponse {
	return AccountResponse{
		ID:            a.ID,
		Name:          a.Name,
		AnnualRevenue: a.AnnualRevenue,
		Segment:       string(a.Segment),
		UpdatedAt:     a.UpdatedAt,
	}
}

type SegmentRefreshResponse struct {
	Year     int               `json:"year"`
	Accounts []AccountResponse `json:"accounts"`
}

func FromAccounts(accounts []entities.Account) []AccountResponse {
	out := make([]AccountResponse, 0, len(accounts))
	for _, a := range accounts {
		out = append(out, FromAccount(a))
	}
	return out
}
