package domain

import "errors"

var (
	ErrPropertyNotFound      = errors.New("property not found")
	ErrBookingNotFound       = errors.New("booking not found")
	ErrPaymentIntentNotFound = errors.New("payment intent not found")
	ErrNonceNotFound         = errors.New("nonce not found or expired")
)

var (
	ErrInvalidNonce       = errors.New("invalid nonce")
	ErrInvalidSignature   = errors.New("invalid signature")
	ErrSessionRequired    = errors.New("wallet session required")
	ErrPersonhoodRequired = errors.New("proof of personhood required")
	ErrPersonhoodRejected = errors.New("proof of personhood rejected")
	ErrStakeRequired      = errors.New("stake required")
	ErrNotBookingParty    = errors.New("wallet is not a party to this booking")
)

var (
	ErrReferenceMissing   = errors.New("payment reference missing")
	ErrReferenceMismatch  = errors.New("payment reference mismatch")
	ErrPaymentRejected    = errors.New("payment rejected")
	ErrIntentExpired      = errors.New("payment intent expired")
	ErrIntentNotPending   = errors.New("payment intent is not pending")
	ErrPaymentUnconfirmed = errors.New("payment is not confirmed")
)

var (
	ErrPropertyInactive     = errors.New("property is not active")
	ErrBookingCancelled     = errors.New("booking is cancelled")
	ErrFundsAlreadyReleased = errors.New("funds already released")
	ErrBookingNotConfirmed  = errors.New("booking is not confirmed")
	ErrCheckInNotReached    = errors.New("check-in date not reached")
	ErrReleaseInProgress    = errors.New("release already in progress")
	ErrAlreadyStaked        = errors.New("wallet already staked")
	ErrStakeTxInvalid       = errors.New("invalid stake transaction")
)

var (
	ErrBookingIDUnavailable  = errors.New("booking id unavailable")
	ErrPropertyIDUnavailable = errors.New("property id unavailable")
	ErrDisputeIDUnavailable  = errors.New("dispute id unavailable")
	ErrTxReverted            = errors.New("transaction reverted")
	ErrVerifierUnavailable   = errors.New("verifier unavailable")
)

var (
	ErrValidation = errors.New("validation error")
)
