package postgres

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"crowdfund/internal/core/domain"
	"crowdfund/internal/core/port"
)

// Amounts are unsigned 64-bit and stored as numeric(20, 0); they cross the
// driver boundary as decimal text.

const selectCampaign = `
        SELECT
            id,
            creator,
            title,
            description,
            goal::text,
            raised_amount::text,
            deadline,
            created_at,
            withdrawn
        FROM campaigns`

// ledgerTx implements port.LedgerTx on a pgx transaction.
type ledgerTx struct {
	tx pgx.Tx
}

var _ port.LedgerTx = (*ledgerTx)(nil)

// CreateRegistry inserts the singleton row at its well-known key.
func (t *ledgerTx) CreateRegistry(ctx context.Context, reg domain.AdminRegistry) error {
	tag, err := t.tx.Exec(ctx, `INSERT INTO admin_registry (key, authority, paused) VALUES ($1, $2, $3) ON CONFLICT (key) DO NOTHING`,
		domain.RegistryKey, reg.Authority, reg.Paused)
	if err != nil {
		return fmt.Errorf("insert registry: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrAlreadyInitialized
	}
	return nil
}

// ReadRegistry takes a shared lock so campaign operations on different
// campaigns do not block each other while a pause toggle still waits.
func (t *ledgerTx) ReadRegistry(ctx context.Context) (*domain.AdminRegistry, error) {
	return scanRegistry(t.tx.QueryRow(ctx, `SELECT authority, paused FROM admin_registry WHERE key = $1 FOR SHARE`, domain.RegistryKey))
}

// LockRegistry locks the registry row for update.
func (t *ledgerTx) LockRegistry(ctx context.Context) (*domain.AdminRegistry, error) {
	return scanRegistry(t.tx.QueryRow(ctx, `SELECT authority, paused FROM admin_registry WHERE key = $1 FOR UPDATE`, domain.RegistryKey))
}

// SaveRegistry overwrites the registry row.
func (t *ledgerTx) SaveRegistry(ctx context.Context, reg domain.AdminRegistry) error {
	tag, err := t.tx.Exec(ctx, `UPDATE admin_registry SET authority = $2, paused = $3, updated_at = now() WHERE key = $1`,
		domain.RegistryKey, reg.Authority, reg.Paused)
	if err != nil {
		return fmt.Errorf("update registry: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotInitialized
	}
	return nil
}

// InsertCampaign stores a new campaign. Title and description are stored
// as raw bytes so any string the domain accepts round-trips unchanged.
func (t *ledgerTx) InsertCampaign(ctx context.Context, c domain.Campaign) error {
	_, err := t.tx.Exec(ctx, `INSERT INTO campaigns
    (id, creator, title, description, goal, raised_amount, deadline, created_at, withdrawn)
VALUES ($1, $2, $3, $4, $5::numeric, $6::numeric, $7, $8, $9)`,
		c.ID, c.Creator, rawBytes(c.Title), rawBytes(c.Description), formatAmount(c.Goal), formatAmount(c.RaisedAmount),
		c.Deadline, c.CreatedAt, c.Withdrawn)
	if err != nil {
		return fmt.Errorf("insert campaign: %w", err)
	}
	return nil
}

// LockCampaign returns a campaign and locks its row for update.
func (t *ledgerTx) LockCampaign(ctx context.Context, id uuid.UUID) (*domain.Campaign, error) {
	return scanCampaign(t.tx.QueryRow(ctx, selectCampaign+` WHERE id = $1 FOR UPDATE`, id))
}

// UpdateRaisedAmount persists the raised total.
func (t *ledgerTx) UpdateRaisedAmount(ctx context.Context, id uuid.UUID, raised uint64) error {
	tag, err := t.tx.Exec(ctx, `UPDATE campaigns SET raised_amount = $2::numeric WHERE id = $1`, id, formatAmount(raised))
	if err != nil {
		return fmt.Errorf("update raised amount: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrCampaignNotFound
	}
	return nil
}

// MarkWithdrawn sets the campaign's withdrawn flag.
func (t *ledgerTx) MarkWithdrawn(ctx context.Context, id uuid.UUID) error {
	tag, err := t.tx.Exec(ctx, `UPDATE campaigns SET withdrawn = true WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("mark withdrawn: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrCampaignNotFound
	}
	return nil
}

// Balance returns an account balance and locks the account row.
func (t *ledgerTx) Balance(ctx context.Context, account domain.Account) (uint64, error) {
	return scanBalance(t.tx.QueryRow(ctx, `SELECT balance::text FROM accounts WHERE account = $1 FOR UPDATE`, account))
}

// Transfer debits from, credits to and journals the movement. The debit
// is conditional on sufficient funds so balances never go negative.
func (t *ledgerTx) Transfer(ctx context.Context, from, to domain.Account, amount uint64) error {
	switch {
	case amount == 0:
	case from == to:
		balance, err := t.Balance(ctx, from)
		if err != nil {
			return err
		}
		if balance < amount {
			return domain.ErrInsufficientFunds
		}
	default:
		tag, err := t.tx.Exec(ctx, `UPDATE accounts
SET balance = balance - $2::numeric, updated_at = now()
WHERE account = $1 AND balance >= $2::numeric`, from, formatAmount(amount))
		if err != nil {
			return fmt.Errorf("debit %s: %w", from, err)
		}
		if tag.RowsAffected() == 0 {
			return domain.ErrInsufficientFunds
		}
		if err = credit(ctx, t.tx, to, amount); err != nil {
			return err
		}
	}

	_, err := t.tx.Exec(ctx, `INSERT INTO transfers (id, from_account, to_account, amount, created_at) VALUES ($1, $2, $3, $4::numeric, now())`,
		uuid.New(), from, to, formatAmount(amount))
	if err != nil {
		return fmt.Errorf("journal transfer: %w", err)
	}
	return nil
}

type execer interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}

func credit(ctx context.Context, db execer, account domain.Account, amount uint64) error {
	_, err := db.Exec(ctx, `INSERT INTO accounts (account, balance) VALUES ($1, $2::numeric)
ON CONFLICT (account) DO UPDATE SET balance = accounts.balance + EXCLUDED.balance, updated_at = now()`,
		account, formatAmount(amount))
	if err != nil {
		if mapped := mapError(err); mapped != err {
			return mapped
		}
		return fmt.Errorf("credit %s: %w", account, err)
	}
	return nil
}

func scanRegistry(row pgx.Row) (*domain.AdminRegistry, error) {
	var reg domain.AdminRegistry
	err := row.Scan(&reg.Authority, &reg.Paused)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("scan registry: %w", err)
	}
	return &reg, nil
}

func scanCampaign(row pgx.Row) (*domain.Campaign, error) {
	var (
		c                  domain.Campaign
		title, description []byte
		goal, raised       string
	)
	err := row.Scan(&c.ID, &c.Creator, &title, &description, &goal, &raised, &c.Deadline, &c.CreatedAt, &c.Withdrawn)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("scan campaign: %w", err)
	}
	if c.Goal, err = parseAmount(goal); err != nil {
		return nil, err
	}
	if c.RaisedAmount, err = parseAmount(raised); err != nil {
		return nil, err
	}
	c.Title = string(title)
	c.Description = string(description)
	c.Deadline = c.Deadline.UTC()
	c.CreatedAt = c.CreatedAt.UTC()
	return &c, nil
}

func scanBalance(row pgx.Row) (uint64, error) {
	var amount string
	err := row.Scan(&amount)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("scan balance: %w", err)
	}
	return parseAmount(amount)
}

// rawBytes converts s for a BYTEA parameter. The empty string maps to an
// empty value, never to NULL.
func rawBytes(s string) []byte {
	b := []byte(s)
	if b == nil {
		return []byte{}
	}
	return b
}

func formatAmount(v uint64) string {
	return strconv.FormatUint(v, 10)
}

func parseAmount(s string) (uint64, error) {
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse amount %q: %w", s, err)
	}
	return v, nil
}
