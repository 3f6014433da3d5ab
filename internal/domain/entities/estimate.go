package entities

import "time"

// Estimate is a sales-estimate record handed over by the upstream import
// pipeline (spreadsheet exports of the external estimating tool). Records
// arrive already linked to accounts and already typed; this service only
// classifies, attributes and aggregates them.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Date fields are calendar dates as YYYY-MM-DD strings, normalized by the
// import pipeline. The calendar year of a date is always taken from the
// string prefix, never from a timezone-aware parse.

type Estimate struct {
	ID         string `json:"id"`
	ExternalID string `json:"external_id"`
	AccountID  string `json:"account_id"`

	Status         string `json:"status"`
	PipelineStatus string `json:"pipeline_status"`
	Division       string `json:"division"`
	EstimateType   string `json:"estimate_type"`

	// PriceWithTax is preferred whenever positive; PriceExTax is the
	// fallback. An estimate with neither contributes zero value.
	PriceWithTax float64 `json:"price_with_tax"`
	PriceExTax   float64 `json:"price_ex_tax"`

	EstimateDate  string `json:"estimate_date"`
	CloseDate     string `json:"estimate_close_date"`
	ContractStart string `json:"contract_start"`
	ContractEnd   string `json:"contract_end"`
	CreatedDate   string `json:"created_date"`

	Archived bool `json:"archived"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
