package postgres

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"crowdfund/internal/core/domain"
	"crowdfund/internal/core/port"
)

// A unit of work aborted by a serialization failure or deadlock is
// replayed up to maxTxAttempts times, sleeping between attempts with
// exponential backoff from txRetryInitial capped at txRetryMax, plus
// jitter. Every donation credits the shared fee account, so concurrent
// donations collide on that row even when their campaigns differ.
const (
	maxTxAttempts  = 10
	txRetryInitial = 5 * time.Millisecond
	txRetryMax     = 250 * time.Millisecond
)

const (
	codeSerializationFailure = "40001"
	codeDeadlockDetected     = "40P01"
	codeCheckViolation       = "23514"
)

// LedgerStore implements port.LedgerStore using pgxpool for PostgreSQL.
type LedgerStore struct {
	pool  *pgxpool.Pool
	sleep func(ctx context.Context, d time.Duration) error
}

// NewLedgerStore returns a new store instance.
func NewLedgerStore(pool *pgxpool.Pool) *LedgerStore {
	return &LedgerStore{pool: pool, sleep: sleepContext}
}

var _ port.LedgerStore = (*LedgerStore)(nil)

// WithinTx runs fn in a serializable transaction. Rows are locked with
// SELECT ... FOR UPDATE as fn reads them, so operations on the same
// registry or campaign queue behind each other. Transactions aborted by a
// serialization failure or deadlock are retried from the start, so fn
// must not have effects outside the transaction.
func (s *LedgerStore) WithinTx(ctx context.Context, fn func(ctx context.Context, tx port.LedgerTx) error) error {
	return s.retry(ctx, func() error { return s.withinTx(ctx, fn) })
}

func (s *LedgerStore) retry(ctx context.Context, attempt func() error) error {
	var err error
	for n := 1; ; n++ {
		if err = attempt(); err == nil || !retryable(err) {
			return err
		}
		if n == maxTxAttempts {
			return fmt.Errorf("unit of work aborted after %d attempts: %w", n, err)
		}
		if serr := s.sleep(ctx, retryDelay(n)); serr != nil {
			return fmt.Errorf("retry unit of work: %w", serr)
		}
	}
}

// retryDelay returns the pause after the given failed attempt: the capped
// exponential delay plus up to the same amount again as jitter.
func retryDelay(attempt int) time.Duration {
	delay := txRetryInitial
	for i := 1; i < attempt; i++ {
		delay *= 2
		if delay >= txRetryMax {
			delay = txRetryMax
			break
		}
	}
	return delay + time.Duration(rand.Int64N(int64(delay)+1))
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *LedgerStore) withinTx(ctx context.Context, fn func(ctx context.Context, tx port.LedgerTx) error) (err error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback(ctx)
			panic(p)
		}
		if err != nil {
			_ = tx.Rollback(ctx)
			return
		}
		if err = tx.Commit(ctx); err != nil {
			err = fmt.Errorf("commit tx: %w", err)
		}
	}()
	return fn(ctx, &ledgerTx{tx: tx})
}

// GetRegistry returns the admin registry, or nil if none exists.
func (s *LedgerStore) GetRegistry(ctx context.Context) (*domain.AdminRegistry, error) {
	return scanRegistry(s.pool.QueryRow(ctx, `SELECT authority, paused FROM admin_registry WHERE key = $1`, domain.RegistryKey))
}

// GetCampaign returns a campaign by id.
func (s *LedgerStore) GetCampaign(ctx context.Context, id uuid.UUID) (*domain.Campaign, error) {
	return scanCampaign(s.pool.QueryRow(ctx, selectCampaign+` WHERE id = $1`, id))
}

// GetBalance returns the balance of a custody account.
func (s *LedgerStore) GetBalance(ctx context.Context, account domain.Account) (uint64, error) {
	return scanBalance(s.pool.QueryRow(ctx, `SELECT balance::text FROM accounts WHERE account = $1`, account))
}

// OpenAccount creates account holding amount. It reports false and
// changes nothing when the account already exists.
func (s *LedgerStore) OpenAccount(ctx context.Context, account domain.Account, amount uint64) (bool, error) {
	tag, err := s.pool.Exec(ctx, `INSERT INTO accounts (account, balance) VALUES ($1, $2::numeric) ON CONFLICT (account) DO NOTHING`,
		account, formatAmount(amount))
	if err != nil {
		return false, fmt.Errorf("open account %s: %w", account, err)
	}
	return tag.RowsAffected() == 1, nil
}

// Credit mints amount into account outside of any unit of work. It is
// used to fund identities.
func (s *LedgerStore) Credit(ctx context.Context, account domain.Account, amount uint64) error {
	return credit(ctx, s.pool, account, amount)
}

// retryable reports whether err aborted the transaction for reasons that
// a replay may resolve.
func retryable(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == codeSerializationFailure || pgErr.Code == codeDeadlockDetected
}

// mapError translates constraint violations into ledger errors.
func mapError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == codeCheckViolation && pgErr.ConstraintName == "accounts_balance_max" {
		return domain.ErrMathOverflow
	}
	return err
}
