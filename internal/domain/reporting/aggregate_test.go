package reporting

import (
	"testing"

	"crm_reporting/internal/domain/entities"
)

func TestAggregate(t *testing.T) {
	t.Run("end to end scenario", func(t *testing.T) {
		estimates := []entities.Estimate{
			{Status: "Contract Signed", PriceWithTax: 10000, EstimateDate: "2025-03-01"},
			{Status: "Estimate Lost", PriceWithTax: 5000, EstimateDate: "2025-04-01"},
			{Status: "Pending Review", PriceWithTax: 2000, EstimateDate: "2025-05-01"},
		}
		s := Aggregate(estimates)
		if s.Total != 3 || s.Won != 1 || s.Lost != 2 || s.Pending != 0 {
			t.Fatalf("unexpected counts: %+v", s)
		}
		if s.DecidedCount != 3 {
			t.Fatalf("expected decidedCount 3, got %d", s.DecidedCount)
		}
		if s.WinRate != 33.3 {
			t.Fatalf("expected winRate 33.3, got %v", s.WinRate)
		}
		if s.TotalValue != 17000 || s.WonValue != 10000 || s.LostValue != 7000 {
			t.Fatalf("unexpected values: %+v", s)
		}
	})

	t.Run("empty input", func(t *testing.T) {
		s := Aggregate(nil)
		if s.Total != 0 || s.WinRate != 0 || s.EstimatesVsWonRatio != 0 || s.RevenueVsWonRatio != 0 {
			t.Fatalf("expected zero stats, got %+v", s)
		}
	})

	t.Run("win rate bounds", func(t *testing.T) {
		estimates := []entities.Estimate{
			{Status: "Sold", PriceWithTax: 100},
			{Status: "Won", PriceWithTax: 200},
		}
		s := Aggregate(estimates)
		if s.WinRate != 100 {
			t.Fatalf("expected winRate 100, got %v", s.WinRate)
		}
	})

	t.Run("priceless estimate still counts", func(t *testing.T) {
		estimates := []entities.Estimate{
			{Status: "Contract Signed"},
			{Status: "Estimate Lost", PriceWithTax: 5000},
		}
		s := Aggregate(estimates)
		if s.Total != 2 || s.Won != 1 {
			t.Fatalf("unexpected counts: %+v", s)
		}
		if s.TotalValue != 5000 || s.WonValue != 0 {
			t.Fatalf("unexpected values: %+v", s)
		}
	})

	t.Run("ratios", func(t *testing.T) {
		estimates := []entities.Estimate{
			{Status: "Contract Signed", PriceWithTax: 7500},
			{Status: "Estimate Lost", PriceWithTax: 2500},
			{Status: "Estimate Lost", PriceWithTax: 0},
		}
		s := Aggregate(estimates)
		if s.EstimatesVsWonRatio != 33.3 {
			t.Fatalf("expected estimatesVsWonRatio 33.3, got %v", s.EstimatesVsWonRatio)
		}
		if s.RevenueVsWonRatio != 75 {
			t.Fatalf("expected revenueVsWonRatio 75, got %v", s.RevenueVsWonRatio)
		}
	})
}

func TestAggregateByAccount(t *testing.T) {
	accounts := []entities.Account{
		{ID: "acc-1", Name: "Acme"},
		{ID: "acc-2", Name: "Globex"},
	}
	estimates := []entities.Estimate{
		{AccountID: "acc-1", Status: "Contract Signed", PriceWithTax: 1000},
		{AccountID: "acc-2", Status: "Sold", PriceWithTax: 9000},
		{AccountID: "acc-1", Status: "Estimate Lost", PriceWithTax: 500},
		{Status: "Contract Signed", PriceWithTax: 99999}, // unlinked, dropped
	}

	out := AggregateByAccount(estimates, accounts)
	if len(out) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(out))
	}
	if out[0].AccountID != "acc-2" || out[0].AccountName != "Globex" {
		t.Fatalf("expected acc-2 first by total value, got %+v", out[0])
	}
	if out[1].TotalValue != 1500 || out[1].Won != 1 || out[1].Lost != 1 {
		t.Fatalf("unexpected acc-1 stats: %+v", out[1])
	}
}

func TestAggregateByDepartment(t *testing.T) {
	estimates := []entities.Estimate{
		{Division: "Roofing", Status: "Contract Signed", PriceWithTax: 2000},
		{Status: "Estimate Lost", PriceWithTax: 3000},
		{Division: "  ", Status: "Sold", PriceWithTax: 1000},
	}

	out := AggregateByDepartment(estimates)
	if len(out) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(out))
	}
	if out[0].Division != UncategorizedDivision || out[0].TotalValue != 4000 {
		t.Fatalf("expected uncategorized bucket first, got %+v", out[0])
	}
	if out[1].Division != "Roofing" || out[1].TotalValue != 2000 {
		t.Fatalf("unexpected division stats: %+v", out[1])
	}
}

func TestFilterByYear(t *testing.T) {
	t.Run("dedupe keeps first occurrence", func(t *testing.T) {
		estimates := []entities.Estimate{
			{ID: "1", ExternalID: "ext-1", Status: "Sold", PriceWithTax: 100, ContractEnd: "2025-06-01"},
			{ID: "2", ExternalID: "ext-1", Status: "Sold", PriceWithTax: 100, EstimateDate: "2025-01-01"},
		}
		out := FilterByYear(estimates, 2025, false)
		if len(out) != 1 || out[0].ID != "1" {
			t.Fatalf("expected first occurrence only, got %+v", out)
		}
	})

	t.Run("drops archived", func(t *testing.T) {
		estimates := []entities.Estimate{
			{ID: "1", Status: "Sold", EstimateDate: "2025-01-01", Archived: true},
			{ID: "2", Status: "Sold", EstimateDate: "2025-02-01"},
		}
		out := FilterByYear(estimates, 2025, false)
		if len(out) != 1 || out[0].ID != "2" {
			t.Fatalf("expected archived dropped, got %+v", out)
		}
	})

	t.Run("sold only drops lost statuses", func(t *testing.T) {
		estimates := []entities.Estimate{
			{ID: "1", Status: "Estimate Lost - No Reply", EstimateDate: "2025-01-01"},
			{ID: "2", Status: "Contract Signed", EstimateDate: "2025-02-01"},
		}
		out := FilterByYear(estimates, 2025, true)
		if len(out) != 1 || out[0].ID != "2" {
			t.Fatalf("expected lost dropped, got %+v", out)
		}
	})

	t.Run("determination date priority", func(t *testing.T) {
		e := entities.Estimate{ID: "1", Status: "Sold", ContractEnd: "2026-01-15", EstimateDate: "2025-03-01"}
		if out := FilterByYear([]entities.Estimate{e}, 2025, false); len(out) != 0 {
			t.Fatalf("expected contract end year to win, got %+v", out)
		}
		if out := FilterByYear([]entities.Estimate{e}, 2026, false); len(out) != 1 {
			t.Fatalf("expected match on contract end year")
		}
	})

	t.Run("rejects out of range years", func(t *testing.T) {
		estimates := []entities.Estimate{
			{ID: "1", Status: "Sold", EstimateDate: "1999-01-01"},
			{ID: "2", Status: "Sold", EstimateDate: "2101-01-01"},
		}
		if out := FilterByYear(estimates, 1999, false); out != nil {
			t.Fatalf("expected nil for invalid target year, got %+v", out)
		}
		if out := FilterByYear(estimates, 2025, false); len(out) != 0 {
			t.Fatalf("expected out-of-range estimate years excluded, got %+v", out)
		}
	})
}
