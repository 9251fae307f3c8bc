package handler

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stpnv0/StayEscrow/internal/domain"
	"github.com/stpnv0/StayEscrow/internal/handler/dto"
	"github.com/stpnv0/StayEscrow/internal/middleware"
	"github.com/wb-go/wbf/ginext"
)

const (
	CookieSIWE    = "siwe"
	CookiePayment = "payment-nonce"
)

type AuthSvc interface {
	IssueNonce(ctx context.Context) (*domain.AuthNonce, error)
	CompleteSIWE(ctx context.Context, payload domain.SIWEPayload, nonce, cookieNonce string) (domain.Session, string, error)
}

type PersonhoodSvc interface {
	Verify(ctx context.Context, sess domain.Session, proof domain.PersonhoodProof, action, signal string) (domain.PersonhoodResult, string, error)
}

type PaymentSvc interface {
	Initiate(ctx context.Context, wallet common.Address) (*domain.PaymentIntent, error)
	Confirm(ctx context.Context, wallet common.Address, payload domain.PaymentPayload, cookieRef string) (*domain.PaymentTransaction, error)
}

type PropertySvc interface {
	List(ctx context.Context, sess domain.Session, in domain.CreatePropertyInput) (domain.LedgerReceipt, error)
	GetByID(ctx context.Context, id uint64) (*domain.Property, error)
	ListActive(ctx context.Context) ([]*domain.Property, error)
	UploadImage(ctx context.Context, name string, r io.Reader) (string, error)
}

type BookingSvc interface {
	Complete(ctx context.Context, in domain.CreateBookingInput) (*domain.BookingResult, error)
	GetByID(ctx context.Context, id uint64) (*domain.Booking, error)
	List(ctx context.Context, filter domain.BookingFilter) ([]*domain.Booking, error)
	Cancel(ctx context.Context, caller common.Address, id uint64, reason string) (domain.LedgerReceipt, error)
	Release(ctx context.Context, id uint64) (*domain.ReleaseResult, error)
}

type StakingSvc interface {
	Status(ctx context.Context, holder common.Address) (*domain.Stake, error)
	StakeCall(ctx context.Context, holder common.Address) (domain.StakeCall, error)
	Stake(ctx context.Context, holder common.Address, signedTx []byte) (domain.LedgerReceipt, error)
}

type DisputeSvc interface {
	File(ctx context.Context, in domain.FileDisputeInput) (*domain.Dispute, domain.LedgerReceipt, error)
}

type Services struct {
	Auth       AuthSvc
	Personhood PersonhoodSvc
	Payment    PaymentSvc
	Property   PropertySvc
	Booking    BookingSvc
	Staking    StakingSvc
	Dispute    DisputeSvc
}

// Config holds cookie attributes and request limits. Cookies are always
// HttpOnly and SameSite=Strict.
type Config struct {
	CookieDomain   string
	CookieSecure   bool
	ChallengeTTL   time.Duration
	SessionTTL     time.Duration
	MaxUploadBytes int64
}

type Handler struct {
	auth       AuthSvc
	personhood PersonhoodSvc
	payment    PaymentSvc
	property   PropertySvc
	booking    BookingSvc
	staking    StakingSvc
	dispute    DisputeSvc
	cfg        Config
}

func NewHandler(s Services, cfg Config) *Handler {
	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = 5 << 20
	}
	return &Handler{
		auth:       s.Auth,
		personhood: s.Personhood,
		payment:    s.Payment,
		property:   s.Property,
		booking:    s.Booking,
		staking:    s.Staking,
		dispute:    s.Dispute,
		cfg:        cfg,
	}
}

func (h *Handler) setCookie(c *ginext.Context, name, value string, ttl time.Duration) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(name, value, int(ttl/time.Second), "/", h.cfg.CookieDomain, h.cfg.CookieSecure, true)
}

func (h *Handler) clearCookie(c *ginext.Context, name string) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(name, "", -1, "/", h.cfg.CookieDomain, h.cfg.CookieSecure, true)
}

// sessionFrom returns the caller's session; routes using it sit behind
// middleware.RequireSession.
func sessionFrom(c *ginext.Context) domain.Session {
	sess, _ := middleware.SessionFrom(c)
	return sess
}

func badRequest(c *ginext.Context, msg string) {
	c.Set("error", msg)
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: msg})
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrPropertyNotFound),
		errors.Is(err, domain.ErrBookingNotFound),
		errors.Is(err, domain.ErrPaymentIntentNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrSessionRequired),
		errors.Is(err, domain.ErrInvalidSignature):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrPersonhoodRequired),
		errors.Is(err, domain.ErrStakeRequired),
		errors.Is(err, domain.ErrNotBookingParty):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrAlreadyStaked),
		errors.Is(err, domain.ErrBookingCancelled),
		errors.Is(err, domain.ErrFundsAlreadyReleased),
		errors.Is(err, domain.ErrBookingNotConfirmed),
		errors.Is(err, domain.ErrCheckInNotReached),
		errors.Is(err, domain.ErrReleaseInProgress),
		errors.Is(err, domain.ErrPropertyInactive),
		errors.Is(err, domain.ErrIntentNotPending),
		errors.Is(err, domain.ErrPaymentUnconfirmed):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidNonce),
		errors.Is(err, domain.ErrNonceNotFound),
		errors.Is(err, domain.ErrReferenceMissing),
		errors.Is(err, domain.ErrReferenceMismatch),
		errors.Is(err, domain.ErrPaymentRejected),
		errors.Is(err, domain.ErrStakeTxInvalid),
		errors.Is(err, domain.ErrIntentExpired),
		errors.Is(err, domain.ErrPersonhoodRejected):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrVerifierUnavailable):
		c.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{Error: "verifier unavailable", Details: err.Error()})

	case errors.Is(err, domain.ErrTxReverted),
		errors.Is(err, domain.ErrBookingIDUnavailable),
		errors.Is(err, domain.ErrPropertyIDUnavailable),
		errors.Is(err, domain.ErrDisputeIDUnavailable):
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "ledger transaction failed", Details: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
