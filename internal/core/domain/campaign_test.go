package domain

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Unix(1_700_000_000, 0).UTC()

func TestNewCampaign_DurationBounds(t *testing.T) {
	tests := []struct {
		name    string
		offset   int64
		deadline time.Time
		wantErr  error
	}{
		{name: "minimum", offset: MinCampaignDuration},
		{name: "below minimum", offset: MinCampaignDuration - 1, wantErr: ErrCampaignTooShort},
		{name: "maximum", offset: MaxCampaignDuration},
		{name: "above maximum", offset: MaxCampaignDuration + 1, wantErr: ErrCampaignTooLong},
		{name: "in the past", offset: -10, wantErr: ErrCampaignTooShort},
		{name: "earliest representable", deadline: time.Unix(math.MinInt64, 0), wantErr: ErrCampaignTooShort},
		{name: "latest representable", deadline: time.Unix(math.MaxInt64, 0), wantErr: ErrCampaignTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deadline := now.Add(time.Duration(tt.offset) * time.Second)
			if !tt.deadline.IsZero() {
				deadline = tt.deadline
			}
			c, err := NewCampaign(uuid.New(), "alice", "title", "desc", 100, deadline, now)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Zero(t, c.RaisedAmount)
			assert.Equal(t, deadline.Unix(), c.Deadline.Unix())
		})
	}
}

func TestNewCampaign_TextLimits(t *testing.T) {
	deadline := now.Add(2 * time.Hour)

	_, err := NewCampaign(uuid.New(), "alice", strings.Repeat("t", MaxTitleLength), strings.Repeat("d", MaxDescriptionLength), 0, deadline, now)
	require.NoError(t, err)

	_, err = NewCampaign(uuid.New(), "alice", strings.Repeat("t", MaxTitleLength+1), "", 0, deadline, now)
	require.ErrorIs(t, err, ErrTitleTooLong)

	_, err = NewCampaign(uuid.New(), "alice", "", strings.Repeat("d", MaxDescriptionLength+1), 0, deadline, now)
	require.ErrorIs(t, err, ErrDescriptionTooLong)
}

func TestNewCampaign_LengthsCountBytes(t *testing.T) {
	// 34 three-byte runes are 102 bytes.
	_, err := NewCampaign(uuid.New(), "alice", strings.Repeat("€", 34), "", 0, now.Add(2*time.Hour), now)
	require.ErrorIs(t, err, ErrTitleTooLong)
}

func TestNewCampaign_FirstViolationWins(t *testing.T) {
	long := strings.Repeat("x", 1000)

	_, err := NewCampaign(uuid.New(), "alice", long, long, 0, now, now)
	require.ErrorIs(t, err, ErrCampaignTooShort)

	_, err = NewCampaign(uuid.New(), "alice", long, long, 0, now.Add(2*time.Hour), now)
	require.ErrorIs(t, err, ErrTitleTooLong)
}

func TestCampaign_PrepareDonation(t *testing.T) {
	c := Campaign{Goal: 1000, Deadline: now.Add(time.Hour)}

	d, err := c.PrepareDonation(1000, now)
	require.NoError(t, err)
	assert.Equal(t, uint64(20), d.Fee.Total)
	assert.Equal(t, uint64(980), d.Net)
	assert.Zero(t, c.RaisedAmount, "prepare must not credit")

	require.NoError(t, c.Credit(d.Net))

	d, err = c.PrepareDonation(1000, now)
	require.NoError(t, err)
	assert.Equal(t, uint64(24), d.Fee.Total)
	assert.Equal(t, uint64(976), d.Net)

	require.NoError(t, c.Credit(d.Net))
	assert.Equal(t, uint64(1956), c.RaisedAmount)
}

func TestCampaign_PrepareDonationRejections(t *testing.T) {
	c := Campaign{Goal: 1000, Deadline: now.Add(time.Hour)}

	_, err := c.PrepareDonation(1000, c.Deadline)
	require.ErrorIs(t, err, ErrCampaignEnded)

	_, err = c.PrepareDonation(0, now)
	require.ErrorIs(t, err, ErrInvalidDonationAmount)

	// fee is zero below 50 units, so a single unit is accepted
	d, err := c.PrepareDonation(1, now)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), d.Net)
}

func TestCampaign_CreditOverflow(t *testing.T) {
	c := Campaign{RaisedAmount: ^uint64(0) - 1}
	require.ErrorIs(t, c.Credit(2), ErrMathOverflow)
	assert.Equal(t, ^uint64(0)-1, c.RaisedAmount)
}

func TestCampaign_CheckWithdrawalOrder(t *testing.T) {
	c := Campaign{Creator: "alice", Goal: 100, RaisedAmount: 50, Deadline: now}

	require.ErrorIs(t, c.CheckWithdrawal("mallory", now), ErrCampaignNotEnded)

	after := now.Add(time.Second)
	require.ErrorIs(t, c.CheckWithdrawal("mallory", after), ErrGoalNotReached)

	c.RaisedAmount = 100
	require.ErrorIs(t, c.CheckWithdrawal("mallory", after), ErrUnauthorized)
	require.NoError(t, c.CheckWithdrawal("alice", after))
}

func TestCampaign_ZeroGoalWithdrawableAfterDeadline(t *testing.T) {
	c := Campaign{Creator: "alice", Deadline: now}
	require.NoError(t, c.CheckWithdrawal("alice", now.Add(time.Second)))
}

func TestCampaign_State(t *testing.T) {
	c := Campaign{Goal: 100, RaisedAmount: 100, Deadline: now}

	assert.Equal(t, CampaignActive, c.State(now.Add(-time.Second)))
	assert.Equal(t, CampaignActive, Campaign{Deadline: now.Add(time.Second)}.State(now))
	assert.Equal(t, CampaignExpired, c.State(now))
	assert.Equal(t, CampaignExpired, c.State(now.Add(time.Second)))

	require.True(t, c.MarkWithdrawn())
	assert.False(t, c.MarkWithdrawn())
	assert.Equal(t, CampaignWithdrawn, c.State(now.Add(time.Second)))

	c = Campaign{Goal: 100, RaisedAmount: 99, Deadline: now}
	assert.Equal(t, CampaignFailed, c.State(now.Add(time.Second)))
}

func TestCampaign_StateZeroGoalNeverFunded(t *testing.T) {
	c := Campaign{Deadline: now}

	assert.Equal(t, CampaignExpired, c.State(now.Add(time.Second)))

	c.MarkWithdrawn()
	assert.Equal(t, CampaignWithdrawn, c.State(now.Add(time.Second)))
}
