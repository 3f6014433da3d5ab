package entities

import "time"

// RevenueSegment categorizes an account by its share of current-year
// portfolio revenue. Segment D is reserved for project-only accounts.

type RevenueSegment string

const (
	SegmentA RevenueSegment = "A"
	SegmentB RevenueSegment = "B"
	SegmentC RevenueSegment = "C"
	SegmentD RevenueSegment = "D"
)

// Account is an aggregation target for per-account reporting.
//
// Storage model (DynamoDB):
//   - PK: id
//
// AnnualRevenue and Segment are derived outputs written back by the segment
// refresh use case, never independent inputs.

type Account struct {
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	AnnualRevenue float64        `json:"annual_revenue"`
	Segment       RevenueSegment `json:"revenue_segment"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}
