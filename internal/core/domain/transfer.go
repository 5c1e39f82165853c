package domain

import (
	"time"

	"github.com/google/uuid"
)

// Transfer is a journaled movement of value between two custody accounts.
type Transfer struct {
	ID        uuid.UUID
	From      Account
	To        Account
	Amount    uint64
	CreatedAt time.Time
}
