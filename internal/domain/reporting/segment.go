package reporting

import (
	"crm_reporting/internal/domain/entities"
)

// Estimate types used by segment derivation. "standard" marks one-off
// project work, "service" recurring service work.
const (
	estimateTypeStandard = "standard"
	estimateTypeService  = "service"
)

// DeriveSegment derives the revenue segment for one account from its
// estimates and the portfolio-wide revenue for targetYear.
//
// Only estimates that classify as won and attribute to targetYear with a
// non-zero value participate. An account whose participating estimates are
// project-only (at least one "standard", no "service") is segment D
// regardless of revenue. Otherwise the account's share of portfolio revenue
// decides: >=15% is A, >=5% is B, everything else (including unknown or
// non-positive revenue) is C.
func DeriveSegment(account entities.Account, totalPortfolioRevenue float64, accountEstimates []entities.Estimate, targetYear int) entities.RevenueSegment {
	var revenue float64
	hasStandard := false
	hasService := false
	for _, e := range accountEstimates {
		if !Classify(e).Won {
			continue
		}
		alloc := AttributeYears(e, targetYear)
		if alloc == nil || !alloc.AppliesToYear || alloc.Value == 0 {
			continue
		}
		revenue += alloc.Value
		switch norm(e.EstimateType) {
		case estimateTypeStandard:
			hasStandard = true
		case estimateTypeService:
			hasService = true
		}
	}

	if hasStandard && !hasService {
		return entities.SegmentD
	}
	if revenue <= 0 || totalPortfolioRevenue <= 0 {
		return entities.SegmentC
	}

	percentage := revenue / totalPortfolioRevenue * 100
	switch {
	case percentage >= 15:
		return entities.SegmentA
	case percentage >= 5:
		return entities.SegmentB
	default:
		return entities.SegmentC
	}
}

// WonAttributedRevenue sums the value attributed to targetYear across the
// won estimates of a collection. Feeds both an account's annual revenue and
// the portfolio total that segment shares are computed against.
func WonAttributedRevenue(estimates []entities.Estimate, targetYear int) float64 {
	var total float64
	for _, e := range estimates {
		if !Classify(e).Won {
			continue
		}
		if alloc := AttributeYears(e, targetYear); alloc != nil && alloc.AppliesToYear {
			total += alloc.Value
		}
	}
	return total
}
