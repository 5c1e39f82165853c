package port

import (
	"context"

	"github.com/google/uuid"

	"crowdfund/internal/core/domain"
)

// LedgerStore is the persistence side of the hosting ledger. It is an
// outbound port in hexagonal architecture. Implementations must run every
// WithinTx callback as one all-or-nothing unit: when fn returns an error
// none of its writes, transfers included, may persist.
type LedgerStore interface {
	// WithinTx runs fn inside a unit of work. Operations that touch the
	// same registry or campaign record must be serialized by the
	// implementation.
	WithinTx(ctx context.Context, fn func(ctx context.Context, tx LedgerTx) error) error

	// GetRegistry returns the admin registry, or nil if none exists.
	GetRegistry(ctx context.Context) (*domain.AdminRegistry, error)
	// GetCampaign returns a campaign by id, or nil if it does not exist.
	GetCampaign(ctx context.Context, id uuid.UUID) (*domain.Campaign, error)
	// GetBalance returns the balance of a custody account. Unknown
	// accounts hold zero.
	GetBalance(ctx context.Context, account domain.Account) (uint64, error)
}

// TransferExecutor moves value between custody accounts. A transfer either
// applies fully or fails with no effect; transfers issued through the same
// LedgerTx commit or roll back together.
type TransferExecutor interface {
	// Transfer moves amount from one account to another. It fails with
	// domain.ErrInsufficientFunds when from holds less than amount.
	// Zero-value transfers succeed.
	Transfer(ctx context.Context, from, to domain.Account, amount uint64) error
}

// LedgerTx is the view of the ledger inside a unit of work.
type LedgerTx interface {
	TransferExecutor

	// CreateRegistry stores the singleton registry. It fails with
	// domain.ErrAlreadyInitialized when one exists.
	CreateRegistry(ctx context.Context, reg domain.AdminRegistry) error
	// ReadRegistry returns the registry, holding it against concurrent
	// pause toggles until the unit of work ends. Nil if none exists.
	ReadRegistry(ctx context.Context) (*domain.AdminRegistry, error)
	// LockRegistry returns the registry for update. Nil if none exists.
	LockRegistry(ctx context.Context) (*domain.AdminRegistry, error)
	// SaveRegistry overwrites the registry.
	SaveRegistry(ctx context.Context, reg domain.AdminRegistry) error

	// InsertCampaign stores a new campaign.
	InsertCampaign(ctx context.Context, c domain.Campaign) error
	// LockCampaign returns a campaign for update. Nil if it does not exist.
	LockCampaign(ctx context.Context, id uuid.UUID) (*domain.Campaign, error)
	// UpdateRaisedAmount persists a campaign's raised total.
	UpdateRaisedAmount(ctx context.Context, id uuid.UUID, raised uint64) error
	// MarkWithdrawn records that a campaign's custody was released.
	MarkWithdrawn(ctx context.Context, id uuid.UUID) error

	// Balance returns a custody account balance as seen by this unit of
	// work.
	Balance(ctx context.Context, account domain.Account) (uint64, error)
}
