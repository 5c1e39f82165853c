package domain

import (
	"time"

	"github.com/google/uuid"
)

// Campaign creation limits. Durations are in seconds.
const (
	MaxTitleLength       = 100
	MaxDescriptionLength = 500
	MinCampaignDuration  = 3600
	MaxCampaignDuration  = 86400 * 30
)

// Campaign is a time-boxed fundraising effort. Amounts are in the
// ledger's smallest indivisible unit.
//
// RaisedAmount is the bookkeeping total of net donations. The value
// actually held lives in the campaign's custody account (see
// CampaignAccount) and may exceed it.
type Campaign struct {
	ID           uuid.UUID
	Creator      Identity
	Title        string
	Description  string
	Goal         uint64
	RaisedAmount uint64
	Deadline     time.Time
	CreatedAt    time.Time
	// Withdrawn is set by the first successful withdrawal.
	Withdrawn bool
}

// CampaignState is the lifecycle stage of a campaign at a given instant.
type CampaignState string

const (
	// CampaignActive accepts donations.
	CampaignActive CampaignState = "active"
	// CampaignExpired has reached its goal and awaits withdrawal.
	CampaignExpired CampaignState = "expired"
	// CampaignWithdrawn has released its custody to the creator.
	CampaignWithdrawn CampaignState = "withdrawn"
	// CampaignFailed ended below its goal. Its funds stay in custody.
	CampaignFailed CampaignState = "failed"
)

// NewCampaign validates the creation parameters and returns a campaign
// with nothing raised. Checks run in a fixed order and the first failure
// is returned. The pause check belongs to the caller and precedes these.
func NewCampaign(id uuid.UUID, creator Identity, title, description string, goal uint64, deadline, now time.Time) (Campaign, error) {
	end, start := deadline.Unix(), now.Unix()
	if end < start {
		return Campaign{}, ErrCampaignTooShort
	}
	// end >= start, so the unsigned difference is exact.
	duration := uint64(end) - uint64(start)
	if duration < MinCampaignDuration {
		return Campaign{}, ErrCampaignTooShort
	}
	if duration > MaxCampaignDuration {
		return Campaign{}, ErrCampaignTooLong
	}
	if len(title) > MaxTitleLength {
		return Campaign{}, ErrTitleTooLong
	}
	if len(description) > MaxDescriptionLength {
		return Campaign{}, ErrDescriptionTooLong
	}
	return Campaign{
		ID:          id,
		Creator:     creator,
		Title:       title,
		Description: description,
		Goal:        goal,
		Deadline:    time.Unix(deadline.Unix(), 0).UTC(),
		CreatedAt:   time.Unix(now.Unix(), 0).UTC(),
	}, nil
}

// Donation is the split of a gross donation into fee and net amount.
type Donation struct {
	Amount uint64
	Fee    Fee
	Net    uint64
}

// PrepareDonation checks that c still accepts donations and splits amount
// into fee and net. It does not modify c; call Credit once the value has
// been moved.
func (c Campaign) PrepareDonation(amount uint64, now time.Time) (Donation, error) {
	if now.Unix() >= c.Deadline.Unix() {
		return Donation{}, ErrCampaignEnded
	}
	fee, err := ComputeFee(amount, c)
	if err != nil {
		return Donation{}, err
	}
	if amount <= fee.Total {
		return Donation{}, ErrInvalidDonationAmount
	}
	return Donation{Amount: amount, Fee: fee, Net: amount - fee.Total}, nil
}

// Credit adds a net donation to the raised total.
func (c *Campaign) Credit(net uint64) error {
	raised, err := checkedAdd(c.RaisedAmount, net)
	if err != nil {
		return err
	}
	c.RaisedAmount = raised
	return nil
}

// CheckWithdrawal reports whether caller may release the campaign's funds
// at now. The pause check belongs to the caller and precedes these.
func (c Campaign) CheckWithdrawal(caller Identity, now time.Time) error {
	if now.Unix() <= c.Deadline.Unix() {
		return ErrCampaignNotEnded
	}
	if c.RaisedAmount < c.Goal {
		return ErrGoalNotReached
	}
	return Authorize(caller, c.Creator)
}

// MarkWithdrawn records a successful withdrawal. It reports whether the
// flag changed.
func (c *Campaign) MarkWithdrawn() bool {
	if c.Withdrawn {
		return false
	}
	c.Withdrawn = true
	return true
}

// State derives the lifecycle stage from the clock and the withdrawal
// flag. A campaign that reached its goal stays expired until the creator
// withdraws, even when its custody is empty.
func (c Campaign) State(now time.Time) CampaignState {
	switch {
	case now.Unix() < c.Deadline.Unix():
		return CampaignActive
	case c.RaisedAmount < c.Goal:
		return CampaignFailed
	case c.Withdrawn:
		return CampaignWithdrawn
	default:
		return CampaignExpired
	}
}
