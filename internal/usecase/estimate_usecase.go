package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"crm_reporting/internal/domain/entities"
	"crm_reporting/internal/domain/reporting"
	"crm_reporting/internal/infrastructure/metrics"
	"crm_reporting/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrEstimateNotFound    = errors.New("estimate not found")
	ErrInvalidEstimateID   = errors.New("invalid estimate id")
	ErrInvalidAccountID    = errors.New("invalid account id")
	ErrMissingEstimateDate = errors.New("estimate has no date field")
	ErrNegativeEstimateVal = errors.New("negative estimate value")
)

// IEstimateUseCase exposes the estimate-intake operations consumed by the
// import pipeline. Records arrive already linked and already typed; intake
// only normalizes, ids and stores them.

type IEstimateUseCase interface {
	Import(ctx context.Context, e entities.Estimate) (entities.Estimate, error)
	GetByID(ctx context.Context, id string) (entities.Estimate, error)
	List(ctx context.Context) ([]entities.Estimate, error)
	ListByAccount(ctx context.Context, accountID string) ([]entities.Estimate, error)
	Archive(ctx context.Context, id string, archived bool) (entities.Estimate, error)
}

type EstimateUseCase struct {
	repo interfaces.IEstimateRepository
}

var _ IEstimateUseCase = (*EstimateUseCase)(nil)

func NewEstimateUseCase(repo interfaces.IEstimateRepository) *EstimateUseCase {
	return &EstimateUseCase{repo: repo}
}

// Import stores one estimate from the upstream pipeline.
//
// The import step guarantees every record has at least one date field; that
// invariant is checked here at the boundary so a broken export surfaces
// immediately instead of as a silently unattributable estimate. Unrecognized
// statuses are logged, never rejected: they classify as lost downstream.
func (u *EstimateUseCase) Import(ctx context.Context, e entities.Estimate) (entities.Estimate, error) {
	e.ExternalID = strings.TrimSpace(e.ExternalID)
	e.AccountID = strings.TrimSpace(e.AccountID)
	e.Status = strings.TrimSpace(e.Status)
	e.PipelineStatus = strings.TrimSpace(e.PipelineStatus)
	e.Division = strings.TrimSpace(e.Division)
	e.EstimateType = strings.TrimSpace(e.EstimateType)

	if e.EstimateDate == "" && e.CloseDate == "" && e.ContractStart == "" && e.ContractEnd == "" && e.CreatedDate == "" {
		return entities.Estimate{}, ErrMissingEstimateDate
	}
	if e.PriceWithTax < 0 || e.PriceExTax < 0 {
		return entities.Estimate{}, ErrNegativeEstimateVal
	}

	if e.Status != "" && !reporting.RecognizedStatus(e.Status) {
		log.Printf("[estimate][usecase] unrecognized status %q external_id=%s, will classify as lost", e.Status, e.ExternalID)
	}

	now := time.Now().UTC()
	e.ID = uuid.NewString()
	e.CreatedAt = now
	e.UpdatedAt = now

	created, err := u.repo.Create(ctx, e)
	if err != nil {
		return entities.Estimate{}, err
	}
	metrics.EstimatesImported.Inc()
	return created, nil
}

func (u *EstimateUseCase) GetByID(ctx context.Context, id string) (entities.Estimate, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Estimate{}, ErrInvalidEstimateID
	}

	e, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Estimate{}, err
	}
	if e.ID == "" {
		return entities.Estimate{}, ErrEstimateNotFound
	}
	return e, nil
}

func (u *EstimateUseCase) List(ctx context.Context) ([]entities.Estimate, error) {
	return u.repo.List(ctx)
}

func (u *EstimateUseCase) ListByAccount(ctx context.Context, accountID string) ([]entities.Estimate, error) {
	accountID = strings.TrimSpace(accountID)
	if accountID == "" {
		return nil, ErrInvalidAccountID
	}
	return u.repo.ListByAccountID(ctx, accountID)
}

// Archive flips the archived flag; archived estimates drop out of
// year-filtered reports but keep contributing to unfiltered totals.
func (u *EstimateUseCase) Archive(ctx context.Context, id string, archived bool) (entities.Estimate, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Estimate{}, ErrInvalidEstimateID
	}

	updated, err := u.repo.SetArchived(ctx, id, archived)
	if err != nil {
		return entities.Estimate{}, err
	}
	if updated.ID == "" {
		return entities.Estimate{}, ErrEstimateNotFound
	}
	return updated, nil
}
