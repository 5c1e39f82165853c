package domain

import "errors"

// Error is a ledger error kind. Code is stable and safe to expose to
// clients; Message is human readable.
type Error struct {
	Code    string
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

var (
	ErrContractPaused        = &Error{Code: "ContractPaused", Message: "the contract is paused"}
	ErrCampaignTooShort      = &Error{Code: "CampaignTooShort", Message: "the campaign duration is too short"}
	ErrCampaignTooLong       = &Error{Code: "CampaignTooLong", Message: "the campaign duration is too long"}
	ErrTitleTooLong          = &Error{Code: "TitleTooLong", Message: "the campaign title is too long"}
	ErrDescriptionTooLong    = &Error{Code: "DescriptionTooLong", Message: "the campaign description is too long"}
	ErrCampaignEnded         = &Error{Code: "CampaignEnded", Message: "the campaign has ended"}
	ErrCampaignNotEnded      = &Error{Code: "CampaignNotEnded", Message: "the campaign has not ended yet"}
	ErrGoalNotReached        = &Error{Code: "GoalNotReached", Message: "the goal has not been reached"}
	ErrUnauthorized          = &Error{Code: "Unauthorized", Message: "unauthorized"}
	ErrMathOverflow          = &Error{Code: "MathOverflow", Message: "math overflow"}
	ErrInvalidDonationAmount = &Error{Code: "InvalidDonationAmount", Message: "the donation does not cover the fee"}

	// Raised by the hosting ledger rather than the campaign rules.
	ErrAlreadyInitialized = &Error{Code: "AlreadyInitialized", Message: "the admin registry is already initialized"}
	ErrNotInitialized     = &Error{Code: "NotInitialized", Message: "the admin registry is not initialized"}
	ErrCampaignNotFound   = &Error{Code: "CampaignNotFound", Message: "campaign not found"}
	ErrInsufficientFunds  = &Error{Code: "InsufficientFunds", Message: "insufficient funds"}
	ErrInvalidIdentity    = &Error{Code: "InvalidIdentity", Message: "invalid caller identity"}
)

// CodeOf returns the Code of the first *Error in err's chain, or "" when
// err is not a ledger error.
func CodeOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}
