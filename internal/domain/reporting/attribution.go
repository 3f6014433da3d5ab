package reporting

import (
	"strconv"
	"time"

	"crm_reporting/internal/domain/entities"
)

// YearAllocation is the result of attributing a single estimate to a target
// calendar year. Value is the full estimate price for single-year estimates
// and the annualized share for multi-year contracts.
type YearAllocation struct {
	AppliesToYear bool
	Value         float64
}

// SelectPrice returns the estimate's monetary value: tax-inclusive total
// when positive, tax-exclusive total as fallback, 0 when neither is usable.
func SelectPrice(e entities.Estimate) float64 {
	if e.PriceWithTax > 0 {
		return e.PriceWithTax
	}
	if e.PriceExTax > 0 {
		return e.PriceExTax
	}
	return 0
}

// AttributeYears determines whether the estimate's value counts toward
// targetYear and how much of it does.
//
// Estimates with a full contract span are annualized: the total price is
// split evenly across the contract's years, anchored at the contract start
// year. All other estimates attribute their full price to the year of the
// highest-priority usable date (contract end, contract start, estimate
// date, created date).
//
// Returns nil when the estimate has no usable price or no usable date. The
// import invariant makes the latter unexpected, but callers must skip nil
// rather than treat it as a zero-value match.
func AttributeYears(e entities.Estimate, targetYear int) *YearAllocation {
	price := SelectPrice(e)
	if price <= 0 {
		return nil
	}

	if e.ContractStart != "" && e.ContractEnd != "" {
		start, okStart := parseDate(e.ContractStart)
		end, okEnd := parseDate(e.ContractEnd)
		startYear, okYear := yearOf(e.ContractStart)
		if okStart && okEnd && okYear {
			years := yearsCount(durationMonths(start, end))
			if targetYear >= startYear && targetYear < startYear+years {
				return &YearAllocation{AppliesToYear: true, Value: price / float64(years)}
			}
			return &YearAllocation{AppliesToYear: false}
		}
		// Unparseable contract dates fall back to the single-year path.
	}

	year, ok := determinationYear(e)
	if !ok {
		return nil
	}
	if year == targetYear {
		return &YearAllocation{AppliesToYear: true, Value: price}
	}
	return &YearAllocation{AppliesToYear: false}
}

// determinationYear picks the estimate's attribution year from the first
// usable date in priority order: contract end, contract start, estimate
// date, created date.
func determinationYear(e entities.Estimate) (int, bool) {
	for _, d := range []string{e.ContractEnd, e.ContractStart, e.EstimateDate, e.CreatedDate} {
		if d == "" {
			continue
		}
		if y, ok := yearOf(d); ok {
			return y, true
		}
	}
	return 0, false
}

// durationMonths counts the whole months spanned by a contract. The end
// month counts only when the end day-of-month is strictly greater than the
// start day-of-month, so an exact N-year span stays at N*12 months.
func durationMonths(start, end time.Time) int {
	months := (end.Year()-start.Year())*12 + int(end.Month()) - int(start.Month())
	if end.Day() > start.Day() {
		months++
	}
	if months < 1 {
		months = 1
	}
	return months
}

// yearsCount maps a contract duration in months to the number of calendar
// years its value is split across.
func yearsCount(months int) int {
	switch {
	case months <= 12:
		return 1
	case months <= 24:
		return 2
	case months <= 36:
		return 3
	case months%12 == 0:
		return months / 12
	default:
		return months/12 + 1
	}
}

// yearOf extracts the calendar year from a YYYY-MM-DD string by prefix.
// String extraction avoids the off-by-one-year drift a timezone-aware parse
// can introduce.
func yearOf(date string) (int, bool) {
	if len(date) < 4 {
		return 0, false
	}
	y, err := strconv.Atoi(date[:4])
	if err != nil {
		return 0, false
	}
	return y, true
}

func parseDate(s string) (time.Time, bool) {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
