package reporting

import (
	"math"
	"sort"
	"strings"

	"crm_reporting/internal/domain/entities"
)

// UncategorizedDivision buckets estimates that carry no division label.
const UncategorizedDivision = "uncategorized"

// Valid report years. Years outside this window are treated as bad source
// data and filtered out, never reported as errors.
const (
	minReportYear = 2000
	maxReportYear = 2100
)

// Stats is the aggregate win/loss statistics over a set of estimates.
//
// Pending is structurally always 0 under binary classification; the field is
// kept for output-shape compatibility with the source system's reports.
// Ratios are percentages rounded to one decimal, 0 when the denominator is 0.
type Stats struct {
	Total        int `json:"total"`
	Won          int `json:"won"`
	Lost         int `json:"lost"`
	Pending      int `json:"pending"`
	DecidedCount int `json:"decidedCount"`

	TotalValue   float64 `json:"totalValue"`
	WonValue     float64 `json:"wonValue"`
	LostValue    float64 `json:"lostValue"`
	PendingValue float64 `json:"pendingValue"`

	WinRate             float64 `json:"winRate"`
	EstimatesVsWonRatio float64 `json:"estimatesVsWonRatio"`
	RevenueVsWonRatio   float64 `json:"revenueVsWonRatio"`
}

// AccountStats is Stats for the estimates linked to one account.
type AccountStats struct {
	AccountID   string `json:"account_id"`
	AccountName string `json:"account_name"`
	Stats
}

// DepartmentStats is Stats for the estimates of one division.
type DepartmentStats struct {
	Division string `json:"division"`
	Stats
}

// Aggregate folds a collection of estimates into overall statistics.
//
// Value sums use the full selected price of every estimate regardless of
// year; year scoping is the caller's job via FilterByYear. A partially
// invalid collection never fails: estimates without a usable price count
// toward totals with zero value.
func Aggregate(estimates []entities.Estimate) Stats {
	var s Stats
	s.Total = len(estimates)
	for _, e := range estimates {
		price := SelectPrice(e)
		s.TotalValue += price
		if Classify(e).Won {
			s.Won++
			s.WonValue += price
		} else {
			s.Lost++
			s.LostValue += price
		}
	}
	s.DecidedCount = s.Won + s.Lost
	if s.DecidedCount > 0 {
		s.WinRate = round1(float64(s.Won) / float64(s.DecidedCount) * 100)
	}
	if s.Total > 0 {
		s.EstimatesVsWonRatio = round1(float64(s.Won) / float64(s.Total) * 100)
	}
	if s.TotalValue > 0 {
		s.RevenueVsWonRatio = round1(s.WonValue / s.TotalValue * 100)
	}
	return s
}

// AggregateByAccount partitions estimates by account link and aggregates
// each group. Unlinked estimates are dropped. Groups sort descending by
// total value; ties keep input order.
func AggregateByAccount(estimates []entities.Estimate, accounts []entities.Account) []AccountStats {
	names := make(map[string]string, len(accounts))
	for _, a := range accounts {
		names[a.ID] = a.Name
	}

	var order []string
	groups := make(map[string][]entities.Estimate)
	for _, e := range estimates {
		if e.AccountID == "" {
			continue
		}
		if _, ok := groups[e.AccountID]; !ok {
			order = append(order, e.AccountID)
		}
		groups[e.AccountID] = append(groups[e.AccountID], e)
	}

	out := make([]AccountStats, 0, len(order))
	for _, id := range order {
		out = append(out, AccountStats{
			AccountID:   id,
			AccountName: names[id],
			Stats:       Aggregate(groups[id]),
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].TotalValue > out[j].TotalValue })
	return out
}

// AggregateByDepartment partitions estimates by division label, bucketing
// unlabeled estimates under UncategorizedDivision. Groups sort descending by
// total value; ties keep input order.
func AggregateByDepartment(estimates []entities.Estimate) []DepartmentStats {
	var order []string
	groups := make(map[string][]entities.Estimate)
	for _, e := range estimates {
		div := strings.TrimSpace(e.Division)
		if div == "" {
			div = UncategorizedDivision
		}
		if _, ok := groups[div]; !ok {
			order = append(order, div)
		}
		groups[div] = append(groups[div], e)
	}

	out := make([]DepartmentStats, 0, len(order))
	for _, div := range order {
		out = append(out, DepartmentStats{
			Division: div,
			Stats:    Aggregate(groups[div]),
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].TotalValue > out[j].TotalValue })
	return out
}

// FilterByYear narrows an estimate collection to one calendar year ahead of
// aggregation. In order: duplicates by external id keep their first
// occurrence, archived estimates drop, soldOnly additionally drops statuses
// containing "lost", and the determination-date year (same priority chain
// as attribution) must equal year and fall inside the valid window.
func FilterByYear(estimates []entities.Estimate, year int, soldOnly bool) []entities.Estimate {
	if year < minReportYear || year > maxReportYear {
		return nil
	}
	seen := make(map[string]struct{})
	out := make([]entities.Estimate, 0, len(estimates))
	for _, e := range estimates {
		if key := strings.TrimSpace(e.ExternalID); key != "" {
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
		}
		if e.Archived {
			continue
		}
		if soldOnly && strings.Contains(norm(e.Status), "lost") {
			continue
		}
		y, ok := determinationYear(e)
		if !ok || y < minReportYear || y > maxReportYear {
			continue
		}
		if y == year {
			out = append(out, e)
		}
	}
	return out
}

// round1 rounds a percentage to one decimal place at presentation time.
func round1(v float64) float64 { return math.Round(v*10) / 10 }
