package memory

import (
	"context"
	"fmt"
	"maps"
	"math/bits"
	"sync"
	"time"

	"github.com/google/uuid"

	"crowdfund/internal/core/domain"
	"crowdfund/internal/core/port"
)

// Store implements port.LedgerStore in process memory. Units of work are
// serialized by a single mutex and rolled back by restoring a snapshot
// taken when they start.
type Store struct {
	mu        sync.Mutex
	registry  *domain.AdminRegistry
	campaigns map[uuid.UUID]domain.Campaign
	balances  map[domain.Account]uint64
	journal   []domain.Transfer
	now       func() time.Time
}

// NewStore returns an empty ledger.
func NewStore() *Store {
	return &Store{
		campaigns: make(map[uuid.UUID]domain.Campaign),
		balances:  make(map[domain.Account]uint64),
		now:       time.Now,
	}
}

var _ port.LedgerStore = (*Store)(nil)

type snapshot struct {
	registry   *domain.AdminRegistry
	campaigns  map[uuid.UUID]domain.Campaign
	balances   map[domain.Account]uint64
	journalLen int
}

func (s *Store) snapshot() snapshot {
	snap := snapshot{
		campaigns:  maps.Clone(s.campaigns),
		balances:   maps.Clone(s.balances),
		journalLen: len(s.journal),
	}
	if s.registry != nil {
		reg := *s.registry
		snap.registry = &reg
	}
	return snap
}

func (s *Store) restore(snap snapshot) {
	s.registry = snap.registry
	s.campaigns = snap.campaigns
	s.balances = snap.balances
	s.journal = s.journal[:snap.journalLen]
}

// WithinTx runs fn with exclusive access to the ledger. If fn returns an
// error or panics, every change it made is discarded.
func (s *Store) WithinTx(ctx context.Context, fn func(ctx context.Context, tx port.LedgerTx) error) (err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err = ctx.Err(); err != nil {
		return err
	}

	snap := s.snapshot()
	defer func() {
		if r := recover(); r != nil {
			s.restore(snap)
			panic(r)
		}
		if err != nil {
			s.restore(snap)
		}
	}()

	return fn(ctx, &tx{s: s})
}

// GetRegistry returns a copy of the registry, or nil if none exists.
func (s *Store) GetRegistry(_ context.Context) (*domain.AdminRegistry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.registry == nil {
		return nil, nil
	}
	reg := *s.registry
	return &reg, nil
}

// GetCampaign returns a copy of the campaign, or nil if it does not exist.
func (s *Store) GetCampaign(_ context.Context, id uuid.UUID) (*domain.Campaign, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.campaigns[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

// GetBalance returns the balance of account.
func (s *Store) GetBalance(_ context.Context, account domain.Account) (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.balances[account], nil
}

// Credit mints amount into account. It stands in for value arriving from
// outside the service and is used to fund identities.
func (s *Store) Credit(_ context.Context, account domain.Account, amount uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	sum, carry := bits.Add64(s.balances[account], amount, 0)
	if carry != 0 {
		return domain.ErrMathOverflow
	}
	s.balances[account] = sum
	return nil
}

// OpenAccount creates account holding amount. It reports false and
// changes nothing when the account already exists.
func (s *Store) OpenAccount(_ context.Context, account domain.Account, amount uint64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.balances[account]; ok {
		return false, nil
	}
	s.balances[account] = amount
	return true, nil
}

// Transfers returns a copy of the transfer journal in the order the
// transfers were committed.
func (s *Store) Transfers() []domain.Transfer {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Transfer, len(s.journal))
	copy(out, s.journal)
	return out
}

var _ port.LedgerTx = (*tx)(nil)

// tx is valid only while the enclosing WithinTx holds the store mutex.
type tx struct {
	s *Store
}

func (t *tx) CreateRegistry(_ context.Context, reg domain.AdminRegistry) error {
	if t.s.registry != nil {
		return domain.ErrAlreadyInitialized
	}
	t.s.registry = &reg
	return nil
}

func (t *tx) ReadRegistry(ctx context.Context) (*domain.AdminRegistry, error) {
	return t.LockRegistry(ctx)
}

func (t *tx) LockRegistry(_ context.Context) (*domain.AdminRegistry, error) {
	if t.s.registry == nil {
		return nil, nil
	}
	reg := *t.s.registry
	return &reg, nil
}

func (t *tx) SaveRegistry(_ context.Context, reg domain.AdminRegistry) error {
	if t.s.registry == nil {
		return domain.ErrNotInitialized
	}
	t.s.registry = &reg
	return nil
}

func (t *tx) InsertCampaign(_ context.Context, c domain.Campaign) error {
	if _, ok := t.s.campaigns[c.ID]; ok {
		return fmt.Errorf("campaign %s already exists", c.ID)
	}
	t.s.campaigns[c.ID] = c
	return nil
}

func (t *tx) LockCampaign(_ context.Context, id uuid.UUID) (*domain.Campaign, error) {
	c, ok := t.s.campaigns[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (t *tx) UpdateRaisedAmount(_ context.Context, id uuid.UUID, raised uint64) error {
	c, ok := t.s.campaigns[id]
	if !ok {
		return domain.ErrCampaignNotFound
	}
	c.RaisedAmount = raised
	t.s.campaigns[id] = c
	return nil
}

func (t *tx) MarkWithdrawn(_ context.Context, id uuid.UUID) error {
	c, ok := t.s.campaigns[id]
	if !ok {
		return domain.ErrCampaignNotFound
	}
	c.Withdrawn = true
	t.s.campaigns[id] = c
	return nil
}

func (t *tx) Balance(_ context.Context, account domain.Account) (uint64, error) {
	return t.s.balances[account], nil
}

func (t *tx) Transfer(_ context.Context, from, to domain.Account, amount uint64) error {
	if from != to {
		src := t.s.balances[from]
		if src < amount {
			return domain.ErrInsufficientFunds
		}
		dst, carry := bits.Add64(t.s.balances[to], amount, 0)
		if carry != 0 {
			return domain.ErrMathOverflow
		}
		t.s.balances[from] = src - amount
		t.s.balances[to] = dst
	} else if t.s.balances[from] < amount {
		return domain.ErrInsufficientFunds
	}

	t.s.journal = append(t.s.journal, domain.Transfer{
		ID:        uuid.New(),
		From:      from,
		To:        to,
		Amount:    amount,
		CreatedAt: t.s.now().UTC(),
	})
	return nil
}
