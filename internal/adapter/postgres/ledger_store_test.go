package postgres

import (
	"context"
	"errors"
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crowdfund/internal/core/domain"
)

// stubRow is a pgx.Row that yields fixed values or an error.
type stubRow struct {
	values []any
	err    error
}

func (r stubRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	if len(dest) != len(r.values) {
		return fmt.Errorf("scan: %d destinations for %d values", len(dest), len(r.values))
	}
	for i, v := range r.values {
		switch d := dest[i].(type) {
		case *string:
			*d = v.(string)
		case *bool:
			*d = v.(bool)
		case *domain.Identity:
			*d = domain.Identity(v.(string))
		default:
			return fmt.Errorf("scan: unsupported destination %T", d)
		}
	}
	return nil
}

func TestAmountRoundTrip(t *testing.T) {
	for _, v := range []uint64{0, 1, 9_800, math.MaxUint64} {
		got, err := parseAmount(formatAmount(v))
		require.NoError(t, err)
		assert.Equal(t, v, got)
	}
}

func TestParseAmount_Rejects(t *testing.T) {
	for _, s := range []string{"", "-1", "1.5", "18446744073709551616"} {
		_, err := parseAmount(s)
		assert.Error(t, err, s)
	}
}

func TestScanBalance(t *testing.T) {
	got, err := scanBalance(stubRow{values: []any{"1956"}})
	require.NoError(t, err)
	assert.Equal(t, uint64(1956), got)

	got, err = scanBalance(stubRow{err: pgx.ErrNoRows})
	require.NoError(t, err)
	assert.Zero(t, got)

	_, err = scanBalance(stubRow{err: errors.New("conn reset")})
	assert.ErrorContains(t, err, "scan balance")
}

func TestScanRegistry(t *testing.T) {
	reg, err := scanRegistry(stubRow{values: []any{"root", true}})
	require.NoError(t, err)
	assert.Equal(t, &domain.AdminRegistry{Authority: "root", Paused: true}, reg)

	reg, err = scanRegistry(stubRow{err: pgx.ErrNoRows})
	require.NoError(t, err)
	assert.Nil(t, reg)
}

func TestRetryable(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "serialization failure", err: &pgconn.PgError{Code: codeSerializationFailure}, want: true},
		{name: "deadlock", err: fmt.Errorf("commit tx: %w", &pgconn.PgError{Code: codeDeadlockDetected}), want: true},
		{name: "unique violation", err: &pgconn.PgError{Code: "23505"}},
		{name: "ledger error", err: domain.ErrInsufficientFunds},
		{name: "plain error", err: errors.New("boom")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, retryable(tt.err))
		})
	}
}

func TestMapError(t *testing.T) {
	overflow := &pgconn.PgError{Code: codeCheckViolation, ConstraintName: "accounts_balance_max"}
	assert.ErrorIs(t, mapError(overflow), domain.ErrMathOverflow)

	other := &pgconn.PgError{Code: codeCheckViolation, ConstraintName: "accounts_balance_min"}
	assert.Same(t, error(other), mapError(other))
}

// recordingSleeper captures the pauses taken between attempts.
type recordingSleeper struct {
	delays []time.Duration
	err    error
}

func (r *recordingSleeper) sleep(_ context.Context, d time.Duration) error {
	r.delays = append(r.delays, d)
	return r.err
}

// failing returns an attempt func that fails with err the first n calls.
func failing(n int, err error) (func() error, *int) {
	calls := 0
	return func() error {
		calls++
		if calls <= n {
			return err
		}
		return nil
	}, &calls
}

func TestRetry_BacksOffUntilCommit(t *testing.T) {
	sleeper := &recordingSleeper{}
	s := &LedgerStore{sleep: sleeper.sleep}
	attempt, calls := failing(4, fmt.Errorf("transfer fee: %w", &pgconn.PgError{Code: codeSerializationFailure}))

	require.NoError(t, s.retry(context.Background(), attempt))

	assert.Equal(t, 5, *calls)
	require.Len(t, sleeper.delays, 4)
	for i, d := range sleeper.delays {
		base := txRetryInitial << i
		assert.GreaterOrEqual(t, d, base, "attempt %d", i+1)
		assert.LessOrEqual(t, d, 2*base, "attempt %d", i+1)
	}
}

func TestRetry_GivesUpAfterMaxAttempts(t *testing.T) {
	sleeper := &recordingSleeper{}
	s := &LedgerStore{sleep: sleeper.sleep}
	pgErr := &pgconn.PgError{Code: codeDeadlockDetected}
	attempt, calls := failing(math.MaxInt, pgErr)

	err := s.retry(context.Background(), attempt)

	var got *pgconn.PgError
	require.ErrorAs(t, err, &got)
	assert.Same(t, pgErr, got)
	assert.Equal(t, maxTxAttempts, *calls)
	assert.Len(t, sleeper.delays, maxTxAttempts-1)
}

func TestRetry_DoesNotReplayLedgerErrors(t *testing.T) {
	sleeper := &recordingSleeper{}
	s := &LedgerStore{sleep: sleeper.sleep}
	attempt, calls := failing(1, domain.ErrInsufficientFunds)

	require.ErrorIs(t, s.retry(context.Background(), attempt), domain.ErrInsufficientFunds)
	assert.Equal(t, 1, *calls)
	assert.Empty(t, sleeper.delays)
}

func TestRetry_StopsWhenContextEnds(t *testing.T) {
	sleeper := &recordingSleeper{err: context.Canceled}
	s := &LedgerStore{sleep: sleeper.sleep}
	attempt, calls := failing(math.MaxInt, &pgconn.PgError{Code: codeSerializationFailure})

	require.ErrorIs(t, s.retry(context.Background(), attempt), context.Canceled)
	assert.Equal(t, 1, *calls)
}

func TestRetryDelay_Capped(t *testing.T) {
	for attempt := 1; attempt <= maxTxAttempts; attempt++ {
		d := retryDelay(attempt)
		assert.GreaterOrEqual(t, d, txRetryInitial)
		assert.LessOrEqual(t, d, 2*txRetryMax)
	}
}

func TestSleepContext_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.ErrorIs(t, sleepContext(ctx, time.Hour), context.Canceled)
}

func TestRawBytes_NeverNil(t *testing.T) {
	assert.NotNil(t, rawBytes(""))
	assert.Equal(t, []byte("a\x00b"), rawBytes("a\x00b"))
}
