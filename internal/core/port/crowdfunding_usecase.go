package port

import (
	"context"
	"time"

	"github.com/google/uuid"

	"crowdfund/internal/core/domain"
)

// CrowdfundingUseCase defines the business operations exposed by the
// custody service. This interface represents the primary port into the
// application domain. Every mutating operation runs as one indivisible
// unit and reports the first failed check as a *domain.Error.
type CrowdfundingUseCase interface {
	// Initialize creates the admin registry with caller as authority.
	Initialize(ctx context.Context, caller domain.Identity) (*domain.AdminRegistry, error)
	// TogglePause flips the pause switch. Only the authority may call it.
	TogglePause(ctx context.Context, caller domain.Identity) (*domain.AdminRegistry, error)
	// GetRegistry returns the admin registry.
	GetRegistry(ctx context.Context) (*domain.AdminRegistry, error)

	// CreateCampaign validates and stores a new campaign and returns its id.
	CreateCampaign(ctx context.Context, req CreateCampaignReq) (uuid.UUID, error)
	// GetCampaign returns a campaign together with its custodied balance.
	GetCampaign(ctx context.Context, id uuid.UUID) (*CampaignView, error)
	// Donate moves a donation into custody, charging the fee to the donor.
	Donate(ctx context.Context, req DonateReq) (*DonationReceipt, error)
	// Withdraw releases the whole custodied balance to the creator.
	Withdraw(ctx context.Context, req WithdrawReq) (*WithdrawalReceipt, error)

	// GetBalance returns the balance of a custody account.
	GetBalance(ctx context.Context, account domain.Account) (uint64, error)
}

// CreateCampaignReq carries the parameters of a new campaign.
type CreateCampaignReq struct {
	Creator     domain.Identity
	Title       string
	Description string
	Goal        uint64
	Deadline    time.Time
}

// DonateReq describes a donation.
type DonateReq struct {
	CampaignID uuid.UUID
	Donor      domain.Identity
	Amount     uint64
}

// WithdrawReq describes a withdrawal by the campaign creator.
type WithdrawReq struct {
	CampaignID uuid.UUID
	Caller     domain.Identity
}

// CampaignView is a campaign as observed at a point in time. It is a DTO
// and carries no behaviour.
type CampaignView struct {
	Campaign domain.Campaign
	Custody  uint64
	State    domain.CampaignState
}

// DonationReceipt reports how a donation was split.
type DonationReceipt struct {
	CampaignID   uuid.UUID
	Amount       uint64
	Fee          domain.Fee
	Net          uint64
	RaisedAmount uint64
}

// WithdrawalReceipt reports the value released to the creator.
type WithdrawalReceipt struct {
	CampaignID uuid.UUID
	Amount     uint64
}
