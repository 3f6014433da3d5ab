package interfaces

import (
	"context"

	"crm_reporting/internal/domain/entities"
)

// IAccountRepository abstracts DynamoDB persistence for Account.
//
// UpdateRevenueSegment writes the derived annual revenue and segment back
// onto the account record after a segment refresh.

type IAccountRepository interface {
	Create(ctx context.Context, a entities.Account) (entities.Account, error)
	GetByID(ctx context.Context, id string) (entities.Account, error)
	List(ctx context.Context) ([]entities.Account, error)
	UpdateRevenueSegment(ctx context.Context, id string, annualRevenue float64, segment entities.RevenueSegment) (entities.Account, error)
}
