package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stpnv0/StayEscrow/internal/domain"
	"github.com/stpnv0/StayEscrow/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

const nonceBytes = 16

type AuthService struct {
	nonces   ports.NonceRepo
	verifier ports.SignatureVerifier
	sessions ports.SessionIssuer
	nonceTTL time.Duration
	logger   logger.Logger
	now      func() time.Time
}

func NewAuthService(
	nonces ports.NonceRepo,
	verifier ports.SignatureVerifier,
	sessions ports.SessionIssuer,
	nonceTTL time.Duration,
	logger logger.Logger,
) *AuthService {
	return &AuthService{
		nonces:   nonces,
		verifier: verifier,
		sessions: sessions,
		nonceTTL: nonceTTL,
		logger:   logger,
		now:      time.Now,
	}
}

func (s *AuthService) IssueNonce(ctx context.Context) (*domain.AuthNonce, error) {
	buf := make([]byte, nonceBytes)
	if _, err := rand.Read(buf); err != nil {
		return nil, fmt.Errorf("generate nonce: %w", err)
	}

	now := s.now().UTC()
	n := &domain.AuthNonce{
		Nonce:     hex.EncodeToString(buf),
		IssuedAt:  now,
		ExpiresAt: now.Add(s.nonceTTL),
	}
	if err := s.nonces.Create(ctx, n); err != nil {
		return nil, fmt.Errorf("store nonce: %w", err)
	}

	return n, nil
}

// CompleteSIWE checks the signed sign-in message against the nonce the
// browser was given and returns a session token for the wallet.
func (s *AuthService) CompleteSIWE(ctx context.Context, payload domain.SIWEPayload, nonce, cookieNonce string) (domain.Session, string, error) {
	if nonce == "" || nonce != cookieNonce {
		return domain.Session{}, "", domain.ErrInvalidNonce
	}
	if payload.Message == "" || payload.Signature == "" || payload.Address == "" {
		return domain.Session{}, "", fmt.Errorf("%w: message, signature and address are required", domain.ErrValidation)
	}
	if payload.Status != "success" {
		return domain.Session{}, "", fmt.Errorf("%w: wallet returned status %q", domain.ErrInvalidSignature, payload.Status)
	}
	if !common.IsHexAddress(payload.Address) {
		return domain.Session{}, "", fmt.Errorf("%w: invalid address", domain.ErrValidation)
	}
	address := common.HexToAddress(payload.Address)

	if _, err := s.verifier.Verify(ctx, payload.Message, payload.Signature, nonce, address); err != nil {
		s.logger.Warn("siwe verification failed",
			logger.String("address", address.Hex()),
			logger.String("error", err.Error()),
		)
		return domain.Session{}, "", fmt.Errorf("%w: %w", domain.ErrInvalidSignature, err)
	}

	if err := s.nonces.Consume(ctx, nonce, s.now().UTC()); err != nil {
		return domain.Session{}, "", fmt.Errorf("consume nonce: %w", err)
	}

	sess := domain.Session{Address: address}
	token, err := s.sessions.Issue(sess)
	if err != nil {
		return domain.Session{}, "", fmt.Errorf("issue session: %w", err)
	}

	s.logger.Info("wallet signed in",
		logger.String("address", address.Hex()),
	)

	return sess, token, nil
}

func (s *AuthService) PurgeExpired(ctx context.Context) (int64, error) {
	n, err := s.nonces.PurgeExpired(ctx, s.now().UTC())
	if err != nil {
		return 0, fmt.Errorf("purge nonces: %w", err)
	}
	return n, nil
}
