package usecase

import (
	"context"
	"errors"
	"log"

	"crm_reporting/internal/domain/entities"
	"crm_reporting/internal/domain/reporting"
	"crm_reporting/internal/infrastructure/metrics"
	"crm_reporting/internal/usecase/interfaces"
)

var (
	ErrInvalidReportYear = errors.New("report year outside supported range")
)

// ReportFilter scopes a report request. Year 0 means no year filter, in
// which case SoldOnly has no effect (sold-only is a year-view concept).
type ReportFilter struct {
	Year     int
	SoldOnly bool
}

// IReportUseCase exposes the win/loss reporting operations. Each call
// aggregates a fresh repository snapshot; nothing is cached or persisted
// except the segment refresh write-back.

type IReportUseCase interface {
	Overall(ctx context.Context, f ReportFilter) (reporting.Stats, error)
	ByAccount(ctx context.Context, f ReportFilter) ([]reporting.AccountStats, error)
	ByDepartment(ctx context.Context, f ReportFilter) ([]reporting.DepartmentStats, error)
	RefreshSegments(ctx context.Context, targetYear int) ([]entities.Account, error)
}

type ReportUseCase struct {
	estimateRepo interfaces.IEstimateRepository
	accountRepo  interfaces.IAccountRepository
}

var _ IReportUseCase = (*ReportUseCase)(nil)

func NewReportUseCase(estimateRepo interfaces.IEstimateRepository, accountRepo interfaces.IAccountRepository) *ReportUseCase {
	return &ReportUseCase{estimateRepo: estimateRepo, accountRepo: accountRepo}
}

func (u *ReportUseCase) Overall(ctx context.Context, f ReportFilter) (reporting.Stats, error) {
	estimates, err := u.snapshot(ctx, f)
	if err != nil {
		return reporting.Stats{}, err
	}
	metrics.ReportsGenerated.WithLabelValues("overall").Inc()
	return reporting.Aggregate(estimates), nil
}

func (u *ReportUseCase) ByAccount(ctx context.Context, f ReportFilter) ([]reporting.AccountStats, error) {
	estimates, err := u.snapshot(ctx, f)
	if err != nil {
		return nil, err
	}
	accounts, err := u.accountRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	metrics.ReportsGenerated.WithLabelValues("account").Inc()
	return reporting.AggregateByAccount(estimates, accounts), nil
}

func (u *ReportUseCase) ByDepartment(ctx context.Context, f ReportFilter) ([]reporting.DepartmentStats, error) {
	estimates, err := u.snapshot(ctx, f)
	if err != nil {
		return nil, err
	}
	metrics.ReportsGenerated.WithLabelValues("department").Inc()
	return reporting.AggregateByDepartment(estimates), nil
}

// RefreshSegments recomputes every account's attributed revenue for
// targetYear, derives its segment, and writes both back onto the account
// record. The portfolio total that segment shares are measured against is
// the won attributed revenue across the full estimate snapshot.
func (u *ReportUseCase) RefreshSegments(ctx context.Context, targetYear int) ([]entities.Account, error) {
	if targetYear < 2000 || targetYear > 2100 {
		return nil, ErrInvalidReportYear
	}

	estimates, err := u.estimateRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	accounts, err := u.accountRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	portfolioRevenue := reporting.WonAttributedRevenue(estimates, targetYear)

	byAccount := make(map[string][]entities.Estimate)
	for _, e := range estimates {
		if e.AccountID != "" {
			byAccount[e.AccountID] = append(byAccount[e.AccountID], e)
		}
	}

	updated := make([]entities.Account, 0, len(accounts))
	for _, a := range accounts {
		group := byAccount[a.ID]
		revenue := reporting.WonAttributedRevenue(group, targetYear)
		segment := reporting.DeriveSegment(a, portfolioRevenue, group, targetYear)

		saved, err := u.accountRepo.UpdateRevenueSegment(ctx, a.ID, revenue, segment)
		if err != nil {
			return nil, err
		}
		updated = append(updated, saved)
	}

	log.Printf("[report][usecase] segment refresh year=%d accounts=%d portfolio_revenue=%.2f", targetYear, len(updated), portfolioRevenue)
	metrics.SegmentRefreshes.Inc()
	return updated, nil
}

// snapshot lists the estimate collection and applies the optional year
// filter. Validation happens here so handlers stay thin.
func (u *ReportUseCase) snapshot(ctx context.Context, f ReportFilter) ([]entities.Estimate, error) {
	if f.Year != 0 && (f.Year < 2000 || f.Year > 2100) {
		return nil, ErrInvalidReportYear
	}

	estimates, err := u.estimateRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	if f.Year == 0 {
		return estimates, nil
	}
	return reporting.FilterByYear(estimates, f.Year, f.SoldOnly), nil
}
