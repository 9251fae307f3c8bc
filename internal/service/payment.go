package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
	"github.com/stpnv0/StayEscrow/internal/domain"
	"github.com/stpnv0/StayEscrow/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type PaymentService struct {
	intents   ports.PaymentIntentRepo
	payments  ports.PaymentVerifier
	intentTTL time.Duration
	logger    logger.Logger
	now       func() time.Time
}

func NewPaymentService(
	intents ports.PaymentIntentRepo,
	payments ports.PaymentVerifier,
	intentTTL time.Duration,
	logger logger.Logger,
) *PaymentService {
	return &PaymentService{
		intents:   intents,
		payments:  payments,
		intentTTL: intentTTL,
		logger:    logger,
		now:       time.Now,
	}
}

// Initiate mints a payment reference for wallet.
func (s *PaymentService) Initiate(ctx context.Context, wallet common.Address) (*domain.PaymentIntent, error) {
	now := s.now().UTC()
	p := &domain.PaymentIntent{
		Reference: strings.ReplaceAll(uuid.NewString(), "-", ""),
		Wallet:    wallet,
		Status:    domain.PaymentIntentInitiated,
		CreatedAt: now,
		ExpiresAt: now.Add(s.intentTTL),
		UpdatedAt: now,
	}
	if err := s.intents.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("store payment intent: %w", err)
	}

	s.logger.Info("payment initiated",
		logger.String("reference", p.Reference),
		logger.String("wallet", wallet.Hex()),
	)

	return p, nil
}

// Confirm correlates the wallet's payment payload with the stored intent and
// with the payment protocol's own record. Every gap rejects the payment. The
// paid amount and recipient are stored for the booking to check.
func (s *PaymentService) Confirm(ctx context.Context, wallet common.Address, payload domain.PaymentPayload, cookieRef string) (*domain.PaymentTransaction, error) {
	if cookieRef == "" {
		return nil, domain.ErrReferenceMissing
	}
	if payload.Reference != cookieRef {
		return nil, domain.ErrReferenceMismatch
	}
	if payload.Status != "success" {
		return nil, fmt.Errorf("%w: payload status %q", domain.ErrPaymentRejected, payload.Status)
	}
	if payload.TransactionID == "" {
		return nil, fmt.Errorf("%w: transaction id is required", domain.ErrValidation)
	}

	intent, err := s.intents.GetByReference(ctx, cookieRef)
	if err != nil {
		return nil, fmt.Errorf("get payment intent: %w", err)
	}
	now := s.now().UTC()
	switch {
	case intent.Wallet != wallet:
		return nil, domain.ErrReferenceMismatch
	case intent.Status != domain.PaymentIntentInitiated:
		return nil, domain.ErrIntentNotPending
	case !now.Before(intent.ExpiresAt):
		return nil, domain.ErrIntentExpired
	}

	if !s.payments.Configured() {
		s.logger.Error("payment verifier credentials are missing, rejecting confirmation",
			logger.String("reference", cookieRef),
		)
		return nil, fmt.Errorf("%w: payment verifier is not configured", domain.ErrVerifierUnavailable)
	}

	tx, err := s.payments.Transaction(ctx, payload.TransactionID)
	if err != nil {
		return nil, fmt.Errorf("lookup transaction: %w", err)
	}
	if tx.Reference != cookieRef {
		s.logger.Warn("payment reference mismatch",
			logger.String("reference", cookieRef),
			logger.String("transaction_reference", tx.Reference),
			logger.String("transaction_id", payload.TransactionID),
		)
		return nil, domain.ErrReferenceMismatch
	}
	if tx.TransactionStatus == domain.PaymentTransactionFailed {
		return nil, fmt.Errorf("%w: transaction %s failed", domain.ErrPaymentRejected, payload.TransactionID)
	}

	paid, err := domain.ParseTokenAmount(tx.TokenAmount)
	if err != nil {
		return nil, fmt.Errorf("%w: token amount %q", domain.ErrPaymentRejected, tx.TokenAmount)
	}
	if !common.IsHexAddress(tx.To) {
		return nil, fmt.Errorf("%w: recipient %q", domain.ErrPaymentRejected, tx.To)
	}
	recipient := common.HexToAddress(tx.To)

	confirmation := domain.PaymentConfirmation{
		TransactionID: payload.TransactionID,
		Amount:        paid,
		Recipient:     recipient,
	}
	if err = s.intents.MarkConfirmed(ctx, cookieRef, wallet, confirmation, now); err != nil {
		return nil, fmt.Errorf("confirm payment intent: %w", err)
	}

	s.logger.Info("payment confirmed",
		logger.String("reference", cookieRef),
		logger.String("transaction_id", payload.TransactionID),
		logger.String("status", tx.TransactionStatus),
		logger.String("amount", tx.TokenAmount),
		logger.String("recipient", recipient.Hex()),
	)

	return tx, nil
}

func (s *PaymentService) PurgeExpired(ctx context.Context) (int64, error) {
	n, err := s.intents.PurgeExpired(ctx, s.now().UTC())
	if err != nil {
		return 0, fmt.Errorf("purge payment intents: %w", err)
	}
	return n, nil
}
