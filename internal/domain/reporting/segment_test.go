package reporting

import (
	"testing"

	"crm_reporting/internal/domain/entities"
)

func TestDeriveSegment(t *testing.T) {
	account := entities.Account{ID: "acc-1", Name: "Acme"}

	wonService := func(price float64) entities.Estimate {
		return entities.Estimate{
			AccountID:    "acc-1",
			Status:       "Contract Signed",
			EstimateType: "Service",
			PriceWithTax: price,
			EstimateDate: "2025-04-01",
		}
	}

	t.Run("segment A at 15 percent share", func(t *testing.T) {
		got := DeriveSegment(account, 100000, []entities.Estimate{wonService(15000)}, 2025)
		if got != entities.SegmentA {
			t.Fatalf("expected A, got %s", got)
		}
	})

	t.Run("segment B between 5 and 15 percent", func(t *testing.T) {
		got := DeriveSegment(account, 100000, []entities.Estimate{wonService(5000)}, 2025)
		if got != entities.SegmentB {
			t.Fatalf("expected B, got %s", got)
		}
	})

	t.Run("segment C below 5 percent", func(t *testing.T) {
		got := DeriveSegment(account, 100000, []entities.Estimate{wonService(4999)}, 2025)
		if got != entities.SegmentC {
			t.Fatalf("expected C, got %s", got)
		}
	})

	t.Run("segment C when portfolio revenue unknown", func(t *testing.T) {
		got := DeriveSegment(account, 0, []entities.Estimate{wonService(15000)}, 2025)
		if got != entities.SegmentC {
			t.Fatalf("expected C, got %s", got)
		}
	})

	t.Run("segment C when no won current year estimates", func(t *testing.T) {
		lost := entities.Estimate{AccountID: "acc-1", Status: "Estimate Lost", PriceWithTax: 50000, EstimateDate: "2025-04-01"}
		otherYear := wonService(50000)
		otherYear.EstimateDate = "2024-04-01"
		got := DeriveSegment(account, 100000, []entities.Estimate{lost, otherYear}, 2025)
		if got != entities.SegmentC {
			t.Fatalf("expected C, got %s", got)
		}
	})

	t.Run("segment D short circuits revenue percentage", func(t *testing.T) {
		project := entities.Estimate{
			AccountID:    "acc-1",
			Status:       "Contract Signed",
			EstimateType: "Standard",
			PriceWithTax: 90000,
			EstimateDate: "2025-04-01",
		}
		got := DeriveSegment(account, 100000, []entities.Estimate{project}, 2025)
		if got != entities.SegmentD {
			t.Fatalf("expected D despite A-level share, got %s", got)
		}
	})

	t.Run("service estimate disables segment D", func(t *testing.T) {
		project := entities.Estimate{
			AccountID:    "acc-1",
			Status:       "Contract Signed",
			EstimateType: "Standard",
			PriceWithTax: 10000,
			EstimateDate: "2025-04-01",
		}
		got := DeriveSegment(account, 100000, []entities.Estimate{project, wonService(10000)}, 2025)
		if got != entities.SegmentA {
			t.Fatalf("expected A, got %s", got)
		}
	})

	t.Run("idempotent for fixed inputs", func(t *testing.T) {
		estimates := []entities.Estimate{wonService(8000)}
		first := DeriveSegment(account, 100000, estimates, 2025)
		for i := 0; i < 5; i++ {
			if got := DeriveSegment(account, 100000, estimates, 2025); got != first {
				t.Fatalf("expected stable %s, got %s", first, got)
			}
		}
	})
}

func TestWonAttributedRevenue(t *testing.T) {
	estimates := []entities.Estimate{
		{Status: "Contract Signed", PriceWithTax: 10000, EstimateDate: "2025-03-01"},
		{Status: "Estimate Lost", PriceWithTax: 5000, EstimateDate: "2025-04-01"},
		{Status: "Sold", PriceWithTax: 24000, ContractStart: "2025-01-01", ContractEnd: "2026-12-31"},
		{Status: "Sold", PriceWithTax: 7000, EstimateDate: "2024-01-01"},
	}
	if got := WonAttributedRevenue(estimates, 2025); got != 22000 {
		t.Fatalf("expected 22000, got %v", got)
	}
}
