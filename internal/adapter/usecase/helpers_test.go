package usecase

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"crowdfund/internal/adapter/memory"
	"crowdfund/internal/core/domain"
	"crowdfund/internal/core/port"
)

var epoch = time.Unix(1_700_000_000, 0).UTC()

// manualClock is a port.Clock the test moves by hand.
type manualClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *manualClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *manualClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

type fixture struct {
	store *memory.Store
	clock *manualClock
	uc    *CrowdfundingUseCase
}

func newFixture(t *testing.T, opts ...Option) *fixture {
	t.Helper()
	f := &fixture{store: memory.NewStore(), clock: &manualClock{now: epoch}}
	f.uc = NewCrowdfundingUseCase(f.store, append([]Option{WithClock(f.clock)}, opts...)...)

	_, err := f.uc.Initialize(context.Background(), "root")
	require.NoError(t, err)
	return f
}

func (f *fixture) fund(t *testing.T, who domain.Identity, amount uint64) {
	t.Helper()
	require.NoError(t, f.store.Credit(context.Background(), who.Account(), amount))
}

func (f *fixture) campaign(t *testing.T, creator domain.Identity, goal uint64, duration time.Duration) uuid.UUID {
	t.Helper()
	id, err := f.uc.CreateCampaign(context.Background(), port.CreateCampaignReq{
		Creator:     creator,
		Title:       "Community garden",
		Description: "Seeds and tools",
		Goal:        goal,
		Deadline:    f.clock.Now().Add(duration),
	})
	require.NoError(t, err)
	return id
}

func (f *fixture) balance(t *testing.T, account domain.Account) uint64 {
	t.Helper()
	b, err := f.store.GetBalance(context.Background(), account)
	require.NoError(t, err)
	return b
}
