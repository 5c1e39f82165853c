package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"crowdfund/internal/core/domain"
	"crowdfund/internal/core/port"
	"crowdfund/internal/metrics"
)

// CrowdfundingUseCase implements the fund-custody state machine on top of
// a port.LedgerStore. Each public operation runs in a single unit of work,
// so a failure at any step leaves no trace in the ledger.
type CrowdfundingUseCase struct {
	store  port.LedgerStore
	clock  port.Clock
	logger *slog.Logger

	// reserve is charged to the creator and parked in the campaign's
	// custody account when the campaign is created.
	reserve uint64
	newID   func() uuid.UUID
}

// Option configures a CrowdfundingUseCase.
type Option func(*CrowdfundingUseCase)

// WithClock overrides the wall clock.
func WithClock(c port.Clock) Option {
	return func(u *CrowdfundingUseCase) { u.clock = c }
}

// WithLogger sets the structured logger.
func WithLogger(l *slog.Logger) Option {
	return func(u *CrowdfundingUseCase) { u.logger = l }
}

// WithCampaignReserve sets the amount moved from the creator into a new
// campaign's custody account.
func WithCampaignReserve(amount uint64) Option {
	return func(u *CrowdfundingUseCase) { u.reserve = amount }
}

// NewCrowdfundingUseCase creates a use case over store. Without options it
// reads the system clock and discards logs.
func NewCrowdfundingUseCase(store port.LedgerStore, opts ...Option) *CrowdfundingUseCase {
	u := &CrowdfundingUseCase{
		store:  store,
		clock:  systemClock{},
		logger: slog.New(slog.DiscardHandler),
		newID:  uuid.New,
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

var _ port.CrowdfundingUseCase = (*CrowdfundingUseCase)(nil)

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// Initialize creates the admin registry with caller as its authority.
func (u *CrowdfundingUseCase) Initialize(ctx context.Context, caller domain.Identity) (_ *domain.AdminRegistry, err error) {
	defer u.observe("initialize", time.Now(), &err)
	if !caller.Valid() {
		return nil, domain.ErrInvalidIdentity
	}

	reg := domain.NewAdminRegistry(caller)
	err = u.store.WithinTx(ctx, func(ctx context.Context, tx port.LedgerTx) error {
		return tx.CreateRegistry(ctx, reg)
	})
	if err != nil {
		return nil, err
	}

	metrics.Paused.Set(0)
	u.logger.Info("admin registry initialized", slog.String("authority", string(caller)))
	return &reg, nil
}

// TogglePause flips the pause switch on behalf of the authority. It is the
// one operation that keeps working while the registry is paused.
func (u *CrowdfundingUseCase) TogglePause(ctx context.Context, caller domain.Identity) (_ *domain.AdminRegistry, err error) {
	defer u.observe("toggle_pause", time.Now(), &err)
	if !caller.Valid() {
		return nil, domain.ErrInvalidIdentity
	}

	var reg *domain.AdminRegistry
	err = u.store.WithinTx(ctx, func(ctx context.Context, tx port.LedgerTx) error {
		var err error
		if reg, err = tx.LockRegistry(ctx); err != nil {
			return err
		}
		if reg == nil {
			return domain.ErrNotInitialized
		}
		if err = reg.TogglePause(caller); err != nil {
			return err
		}
		return tx.SaveRegistry(ctx, *reg)
	})
	if err != nil {
		return nil, err
	}

	setPausedGauge(reg.Paused)
	u.logger.Info("pause toggled", slog.Bool("paused", reg.Paused))
	return reg, nil
}

// GetRegistry returns the admin registry.
func (u *CrowdfundingUseCase) GetRegistry(ctx context.Context) (*domain.AdminRegistry, error) {
	reg, err := u.store.GetRegistry(ctx)
	if err != nil {
		return nil, err
	}
	if reg == nil {
		return nil, domain.ErrNotInitialized
	}
	return reg, nil
}

// SyncMetrics loads persisted state that gauges mirror. It is meant to run
// once at startup, before requests are served. A missing registry leaves
// the gauges at zero.
func (u *CrowdfundingUseCase) SyncMetrics(ctx context.Context) error {
	reg, err := u.store.GetRegistry(ctx)
	if err != nil {
		return fmt.Errorf("load registry: %w", err)
	}
	setPausedGauge(reg != nil && reg.Paused)
	return nil
}

func setPausedGauge(paused bool) {
	if paused {
		metrics.Paused.Set(1)
		return
	}
	metrics.Paused.Set(0)
}

// CreateCampaign validates the request against the clock and stores a new
// campaign with nothing raised. When a reserve is configured the creator
// pays it into the campaign's custody account in the same unit of work.
func (u *CrowdfundingUseCase) CreateCampaign(ctx context.Context, req port.CreateCampaignReq) (_ uuid.UUID, err error) {
	defer u.observe("create_campaign", time.Now(), &err)
	if !req.Creator.Valid() {
		return uuid.Nil, domain.ErrInvalidIdentity
	}

	var c domain.Campaign
	err = u.store.WithinTx(ctx, func(ctx context.Context, tx port.LedgerTx) error {
		if err := activeRegistry(ctx, tx); err != nil {
			return err
		}

		var err error
		c, err = domain.NewCampaign(u.newID(), req.Creator, req.Title, req.Description, req.Goal, req.Deadline, u.clock.Now())
		if err != nil {
			return err
		}
		if err = tx.InsertCampaign(ctx, c); err != nil {
			return err
		}
		if u.reserve > 0 {
			if err = tx.Transfer(ctx, c.Creator.Account(), domain.CampaignAccount(c.ID), u.reserve); err != nil {
				return fmt.Errorf("transfer reserve: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}

	metrics.CampaignsCreatedTotal.Inc()
	u.logger.Info("campaign created",
		slog.String("campaign_id", c.ID.String()),
		slog.String("creator", string(c.Creator)),
		slog.Uint64("goal", c.Goal),
		slog.Time("deadline", c.Deadline),
	)
	return c.ID, nil
}

// GetCampaign returns the campaign, its custodied balance and its
// lifecycle state at the current time.
func (u *CrowdfundingUseCase) GetCampaign(ctx context.Context, id uuid.UUID) (*port.CampaignView, error) {
	c, err := u.store.GetCampaign(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrCampaignNotFound
	}
	custody, err := u.store.GetBalance(ctx, domain.CampaignAccount(id))
	if err != nil {
		return nil, err
	}
	return &port.CampaignView{
		Campaign: *c,
		Custody:  custody,
		State:    c.State(u.clock.Now()),
	}, nil
}

// Donate splits the donation into fee and net amount, moves the fee to the
// admin account and the net amount into the campaign's custody, then
// credits the campaign. Both transfers and the credit commit together.
func (u *CrowdfundingUseCase) Donate(ctx context.Context, req port.DonateReq) (_ *port.DonationReceipt, err error) {
	defer u.observe("donate", time.Now(), &err)
	if !req.Donor.Valid() {
		return nil, domain.ErrInvalidIdentity
	}

	var receipt port.DonationReceipt
	err = u.store.WithinTx(ctx, func(ctx context.Context, tx port.LedgerTx) error {
		if err := activeRegistry(ctx, tx); err != nil {
			return err
		}
		c, err := lockCampaign(ctx, tx, req.CampaignID)
		if err != nil {
			return err
		}

		d, err := c.PrepareDonation(req.Amount, u.clock.Now())
		if err != nil {
			return err
		}
		if err = tx.Transfer(ctx, req.Donor.Account(), domain.AdminAccount, d.Fee.Total); err != nil {
			return fmt.Errorf("transfer fee: %w", err)
		}
		if err = tx.Transfer(ctx, req.Donor.Account(), domain.CampaignAccount(c.ID), d.Net); err != nil {
			return fmt.Errorf("transfer donation: %w", err)
		}
		if err = c.Credit(d.Net); err != nil {
			return err
		}
		if err = tx.UpdateRaisedAmount(ctx, c.ID, c.RaisedAmount); err != nil {
			return err
		}

		receipt = port.DonationReceipt{
			CampaignID:   c.ID,
			Amount:       d.Amount,
			Fee:          d.Fee,
			Net:          d.Net,
			RaisedAmount: c.RaisedAmount,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.DonatedValueTotal.Add(float64(receipt.Amount))
	metrics.FeesCollectedTotal.Add(float64(receipt.Fee.Total))
	u.logger.Info("donation accepted",
		slog.String("campaign_id", receipt.CampaignID.String()),
		slog.String("donor", string(req.Donor)),
		slog.Uint64("amount", receipt.Amount),
		slog.Group("fee",
			slog.Uint64("base", receipt.Fee.Base),
			slog.Uint64("ratio_bps", receipt.Fee.Ratio),
			slog.Uint64("variable", receipt.Fee.Variable),
			slog.Uint64("total", receipt.Fee.Total),
		),
		slog.Uint64("net", receipt.Net),
		slog.Uint64("raised_amount", receipt.RaisedAmount),
	)
	return &receipt, nil
}

// Withdraw releases everything held in the campaign's custody account to
// its creator, which may be more than the raised total. The raised total
// is left as a historical record. Withdrawing an emptied campaign moves
// nothing and succeeds.
func (u *CrowdfundingUseCase) Withdraw(ctx context.Context, req port.WithdrawReq) (_ *port.WithdrawalReceipt, err error) {
	defer u.observe("withdraw", time.Now(), &err)
	if !req.Caller.Valid() {
		return nil, domain.ErrInvalidIdentity
	}

	var receipt port.WithdrawalReceipt
	err = u.store.WithinTx(ctx, func(ctx context.Context, tx port.LedgerTx) error {
		if err := activeRegistry(ctx, tx); err != nil {
			return err
		}
		c, err := lockCampaign(ctx, tx, req.CampaignID)
		if err != nil {
			return err
		}
		if err = c.CheckWithdrawal(req.Caller, u.clock.Now()); err != nil {
			return err
		}

		custody := domain.CampaignAccount(c.ID)
		balance, err := tx.Balance(ctx, custody)
		if err != nil {
			return err
		}
		if err = tx.Transfer(ctx, custody, c.Creator.Account(), balance); err != nil {
			return fmt.Errorf("transfer custody: %w", err)
		}
		if c.MarkWithdrawn() {
			if err = tx.MarkWithdrawn(ctx, c.ID); err != nil {
				return err
			}
		}

		receipt = port.WithdrawalReceipt{CampaignID: c.ID, Amount: balance}
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.WithdrawnValueTotal.Add(float64(receipt.Amount))
	u.logger.Info("campaign withdrawn",
		slog.String("campaign_id", receipt.CampaignID.String()),
		slog.String("creator", string(req.Caller)),
		slog.Uint64("amount", receipt.Amount),
	)
	return &receipt, nil
}

// GetBalance returns the balance of a custody account.
func (u *CrowdfundingUseCase) GetBalance(ctx context.Context, account domain.Account) (uint64, error) {
	return u.store.GetBalance(ctx, account)
}

// activeRegistry fails unless the registry exists and is not paused.
func activeRegistry(ctx context.Context, tx port.LedgerTx) error {
	reg, err := tx.ReadRegistry(ctx)
	if err != nil {
		return err
	}
	if reg == nil {
		return domain.ErrNotInitialized
	}
	return reg.EnsureActive()
}

func lockCampaign(ctx context.Context, tx port.LedgerTx, id uuid.UUID) (*domain.Campaign, error) {
	c, err := tx.LockCampaign(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrCampaignNotFound
	}
	return c, nil
}

// observe records the outcome of an operation. Rejections by a ledger rule
// are expected traffic and logged at debug; anything else is an error.
func (u *CrowdfundingUseCase) observe(op string, start time.Time, errp *error) {
	err := *errp
	metrics.OperationLatency.WithLabelValues(op).Observe(time.Since(start).Seconds())
	metrics.OperationsTotal.WithLabelValues(op, metrics.Result(err)).Inc()

	switch {
	case err == nil:
	case domain.CodeOf(err) != "":
		u.logger.Debug("operation rejected", slog.String("operation", op), slog.String("code", domain.CodeOf(err)))
	default:
		u.logger.Error("operation failed", slog.String("operation", op), slog.Any("error", err))
	}
}
