package interfaces

import (
	"context"

	"crm_reporting/internal/domain/entities"
)

// IEstimateRepository abstracts DynamoDB persistence for Estimate.
//
// The reporting service must be able to:
//   - store estimates handed over by the import pipeline
//   - list the full snapshot a report request aggregates over
//   - archive estimates so year-filtered reports skip them

type IEstimateRepository interface {
	Create(ctx context.Context, e entities.Estimate) (entities.Estimate, error)
	GetByID(ctx context.Context, id string) (entities.Estimate, error)
	List(ctx context.Context) ([]entities.Estimate, error)
	ListByAccountID(ctx context.Context, accountID string) ([]entities.Estimate, error)
	SetArchived(ctx context.Context, id string, archived bool) (entities.Estimate, error)
}
