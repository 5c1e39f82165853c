package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"crowdfund/internal/core/domain"
	"crowdfund/internal/core/port"
	"crowdfund/internal/core/port/mocks"
	"crowdfund/internal/metrics"
)

// runTx makes the mocked store execute the unit of work against tx and
// hand back whatever it returns.
func runTx(store *mocks.MockLedgerStore, tx *mocks.MockLedgerTx) {
	store.EXPECT().
		WithinTx(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, fn func(context.Context, port.LedgerTx) error) error {
			return fn(ctx, tx)
		})
}

func fixedClock(t *testing.T, now time.Time) *mocks.MockClock {
	clock := mocks.NewMockClock(t)
	clock.EXPECT().Now().Return(now).Maybe()
	return clock
}

// TestDonate_TransferOrder ensures the fee leaves the donor before the
// net amount and that the raised total is persisted last.
func TestDonate_TransferOrder(t *testing.T) {
	store := mocks.NewMockLedgerStore(t)
	tx := mocks.NewMockLedgerTx(t)
	runTx(store, tx)

	c := &domain.Campaign{ID: uuid.New(), Creator: "alice", Goal: 1000, RaisedAmount: 980, Deadline: epoch.Add(time.Hour)}

	var order []string
	tx.EXPECT().ReadRegistry(mock.Anything).Return(&domain.AdminRegistry{Authority: "root"}, nil)
	tx.EXPECT().LockCampaign(mock.Anything, c.ID).Return(c, nil)
	tx.EXPECT().Transfer(mock.Anything, domain.Account("bob"), domain.AdminAccount, uint64(24)).
		Run(func(context.Context, domain.Account, domain.Account, uint64) { order = append(order, "fee") }).
		Return(nil)
	tx.EXPECT().Transfer(mock.Anything, domain.Account("bob"), domain.CampaignAccount(c.ID), uint64(976)).
		Run(func(context.Context, domain.Account, domain.Account, uint64) { order = append(order, "net") }).
		Return(nil)
	tx.EXPECT().UpdateRaisedAmount(mock.Anything, c.ID, uint64(1956)).
		Run(func(context.Context, uuid.UUID, uint64) { order = append(order, "credit") }).
		Return(nil)

	uc := NewCrowdfundingUseCase(store, WithClock(fixedClock(t, epoch)))
	r, err := uc.Donate(context.Background(), port.DonateReq{CampaignID: c.ID, Donor: "bob", Amount: 1000})
	require.NoError(t, err)

	assert.Equal(t, []string{"fee", "net", "credit"}, order)
	assert.Equal(t, uint64(1956), r.RaisedAmount)
}

// TestDonate_FailedTransferSkipsCredit ensures a failing transfer aborts
// the unit of work before the raised total is touched.
func TestDonate_FailedTransferSkipsCredit(t *testing.T) {
	store := mocks.NewMockLedgerStore(t)
	tx := mocks.NewMockLedgerTx(t)
	runTx(store, tx)

	c := &domain.Campaign{ID: uuid.New(), Goal: 1000, Deadline: epoch.Add(time.Hour)}
	tx.EXPECT().ReadRegistry(mock.Anything).Return(&domain.AdminRegistry{}, nil)
	tx.EXPECT().LockCampaign(mock.Anything, c.ID).Return(c, nil)
	tx.EXPECT().Transfer(mock.Anything, domain.Account("bob"), domain.AdminAccount, uint64(20)).Return(nil)
	tx.EXPECT().Transfer(mock.Anything, domain.Account("bob"), domain.CampaignAccount(c.ID), uint64(980)).
		Return(domain.ErrInsufficientFunds)

	uc := NewCrowdfundingUseCase(store, WithClock(fixedClock(t, epoch)))
	_, err := uc.Donate(context.Background(), port.DonateReq{CampaignID: c.ID, Donor: "bob", Amount: 1000})
	require.ErrorIs(t, err, domain.ErrInsufficientFunds)

	tx.AssertNotCalled(t, "UpdateRaisedAmount", mock.Anything, mock.Anything, mock.Anything)
}

// TestDonate_PausedBeforeLookup ensures the pause check precedes every
// other read.
func TestDonate_PausedBeforeLookup(t *testing.T) {
	store := mocks.NewMockLedgerStore(t)
	tx := mocks.NewMockLedgerTx(t)
	runTx(store, tx)

	tx.EXPECT().ReadRegistry(mock.Anything).Return(&domain.AdminRegistry{Authority: "root", Paused: true}, nil)

	uc := NewCrowdfundingUseCase(store, WithClock(fixedClock(t, epoch)))
	_, err := uc.Donate(context.Background(), port.DonateReq{CampaignID: uuid.New(), Donor: "bob", Amount: 1000})
	require.ErrorIs(t, err, domain.ErrContractPaused)

	tx.AssertNotCalled(t, "LockCampaign", mock.Anything, mock.Anything)
}

// TestWithdraw_UsesCustodyBalance ensures the released amount is the
// custody balance rather than the raised total.
func TestWithdraw_UsesCustodyBalance(t *testing.T) {
	store := mocks.NewMockLedgerStore(t)
	tx := mocks.NewMockLedgerTx(t)
	runTx(store, tx)

	c := &domain.Campaign{ID: uuid.New(), Creator: "alice", Goal: 1000, RaisedAmount: 1000, Deadline: epoch.Add(-time.Second)}
	custody := domain.CampaignAccount(c.ID)
	tx.EXPECT().ReadRegistry(mock.Anything).Return(&domain.AdminRegistry{}, nil)
	tx.EXPECT().LockCampaign(mock.Anything, c.ID).Return(c, nil)
	tx.EXPECT().Balance(mock.Anything, custody).Return(uint64(1337), nil)
	tx.EXPECT().Transfer(mock.Anything, custody, domain.Account("alice"), uint64(1337)).Return(nil)
	tx.EXPECT().MarkWithdrawn(mock.Anything, c.ID).Return(nil).Once()

	uc := NewCrowdfundingUseCase(store, WithClock(fixedClock(t, epoch)))
	r, err := uc.Withdraw(context.Background(), port.WithdrawReq{CampaignID: c.ID, Caller: "alice"})
	require.NoError(t, err)
	assert.Equal(t, uint64(1337), r.Amount)
}

// TestWithdraw_RepeatDoesNotRemark ensures an already withdrawn campaign is
// drained again without rewriting its flag.
func TestWithdraw_RepeatDoesNotRemark(t *testing.T) {
	store := mocks.NewMockLedgerStore(t)
	tx := mocks.NewMockLedgerTx(t)
	runTx(store, tx)

	c := &domain.Campaign{ID: uuid.New(), Creator: "alice", Deadline: epoch.Add(-time.Second), Withdrawn: true}
	custody := domain.CampaignAccount(c.ID)
	tx.EXPECT().ReadRegistry(mock.Anything).Return(&domain.AdminRegistry{}, nil)
	tx.EXPECT().LockCampaign(mock.Anything, c.ID).Return(c, nil)
	tx.EXPECT().Balance(mock.Anything, custody).Return(uint64(0), nil)
	tx.EXPECT().Transfer(mock.Anything, custody, domain.Account("alice"), uint64(0)).Return(nil)

	uc := NewCrowdfundingUseCase(store, WithClock(fixedClock(t, epoch)))
	r, err := uc.Withdraw(context.Background(), port.WithdrawReq{CampaignID: c.ID, Caller: "alice"})
	require.NoError(t, err)
	assert.Zero(t, r.Amount)
	tx.AssertNotCalled(t, "MarkWithdrawn", mock.Anything, mock.Anything)
}

// TestSyncMetrics_RestoresPausedGauge ensures a registry persisted as
// paused is reflected by the gauge after a restart.
func TestSyncMetrics_RestoresPausedGauge(t *testing.T) {
	store := mocks.NewMockLedgerStore(t)
	store.EXPECT().GetRegistry(mock.Anything).Return(&domain.AdminRegistry{Authority: "root", Paused: true}, nil).Once()

	metrics.Paused.Set(0)
	require.NoError(t, NewCrowdfundingUseCase(store).SyncMetrics(context.Background()))
	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.Paused))
}

func TestSyncMetrics_NoRegistry(t *testing.T) {
	store := mocks.NewMockLedgerStore(t)
	store.EXPECT().GetRegistry(mock.Anything).Return(nil, nil).Once()

	metrics.Paused.Set(1)
	require.NoError(t, NewCrowdfundingUseCase(store).SyncMetrics(context.Background()))
	assert.Zero(t, testutil.ToFloat64(metrics.Paused))
}

func TestSyncMetrics_StoreError(t *testing.T) {
	store := mocks.NewMockLedgerStore(t)
	store.EXPECT().GetRegistry(mock.Anything).Return(nil, errors.New("conn refused")).Once()

	err := NewCrowdfundingUseCase(store).SyncMetrics(context.Background())
	require.ErrorContains(t, err, "load registry")
}

// TestTogglePause_SavesFlippedRegistry ensures the authority's toggle is
// persisted and a stranger's is not.
func TestTogglePause_SavesFlippedRegistry(t *testing.T) {
	store := mocks.NewMockLedgerStore(t)
	tx := mocks.NewMockLedgerTx(t)
	runTx(store, tx)

	tx.EXPECT().LockRegistry(mock.Anything).Return(&domain.AdminRegistry{Authority: "root"}, nil)
	tx.EXPECT().SaveRegistry(mock.Anything, domain.AdminRegistry{Authority: "root", Paused: true}).Return(nil).Once()

	uc := NewCrowdfundingUseCase(store)
	reg, err := uc.TogglePause(context.Background(), "root")
	require.NoError(t, err)
	assert.True(t, reg.Paused)

	_, err = uc.TogglePause(context.Background(), "mallory")
	require.ErrorIs(t, err, domain.ErrUnauthorized)
}

// TestCreateCampaign_StoreErrorPropagates ensures infrastructure errors
// surface unchanged.
func TestCreateCampaign_StoreErrorPropagates(t *testing.T) {
	store := mocks.NewMockLedgerStore(t)
	tx := mocks.NewMockLedgerTx(t)
	runTx(store, tx)

	boom := errors.New("connection reset")
	id := uuid.New()
	tx.EXPECT().ReadRegistry(mock.Anything).Return(&domain.AdminRegistry{}, nil)
	tx.EXPECT().InsertCampaign(mock.Anything, mock.MatchedBy(func(c domain.Campaign) bool {
		return c.ID == id && c.Creator == "alice" && c.RaisedAmount == 0
	})).Return(boom)

	uc := NewCrowdfundingUseCase(store, WithClock(fixedClock(t, epoch)))
	uc.newID = func() uuid.UUID { return id }

	_, err := uc.CreateCampaign(context.Background(), port.CreateCampaignReq{
		Creator:  "alice",
		Title:    "t",
		Deadline: epoch.Add(2 * time.Hour),
	})
	require.ErrorIs(t, err, boom)
	assert.Empty(t, domain.CodeOf(err))
}

func TestGetCampaign_NotFound(t *testing.T) {
	store := mocks.NewMockLedgerStore(t)
	id := uuid.New()
	store.EXPECT().GetCampaign(mock.Anything, id).Return(nil, nil)

	uc := NewCrowdfundingUseCase(store)
	_, err := uc.GetCampaign(context.Background(), id)
	require.ErrorIs(t, err, domain.ErrCampaignNotFound)
}
