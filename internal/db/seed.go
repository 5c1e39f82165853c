package db

import (
	"context"
	"fmt"

	"crowdfund/internal/core/domain"
)

// Funder opens funded accounts. Both ledger stores implement it.
type Funder interface {
	// OpenAccount creates account holding amount, or reports false when it
	// already exists.
	OpenAccount(ctx context.Context, account domain.Account, amount uint64) (bool, error)
}

// Seed opens an account holding amount for each demo identity so the API
// can be exercised without an external ledger. Accounts that already exist
// keep their balance, so seeding on every start is safe. Identities that
// are not valid are rejected before anything is opened. It returns the
// number of accounts opened.
func Seed(ctx context.Context, funder Funder, identities []string, amount uint64) (int, error) {
	ids := make([]domain.Identity, 0, len(identities))
	for _, raw := range identities {
		id := domain.Identity(raw)
		if !id.Valid() {
			return 0, fmt.Errorf("seed identity %q: %w", raw, domain.ErrInvalidIdentity)
		}
		ids = append(ids, id)
	}

	opened := 0
	for _, id := range ids {
		created, err := funder.OpenAccount(ctx, id.Account(), amount)
		if err != nil {
			return opened, fmt.Errorf("seed %s: %w", id, err)
		}
		if created {
			opened++
		}
	}
	return opened, nil
}
