package service

import (
	"context"
	"fmt"

	"github.com/stpnv0/StayEscrow/internal/domain"
	"github.com/stpnv0/StayEscrow/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type PersonhoodService struct {
	verifier ports.PersonhoodVerifier
	sessions ports.SessionIssuer
	action   string
	logger   logger.Logger
}

// NewPersonhoodService pins the expected action when action is not empty.
func NewPersonhoodService(
	verifier ports.PersonhoodVerifier,
	sessions ports.SessionIssuer,
	action string,
	logger logger.Logger,
) *PersonhoodService {
	return &PersonhoodService{
		verifier: verifier,
		sessions: sessions,
		action:   action,
		logger:   logger,
	}
}

// Verify forwards the proof. On success the returned token is a session
// re-issued with the human flag; on rejection the verifier result is returned
// along with ErrPersonhoodRejected.
func (s *PersonhoodService) Verify(ctx context.Context, sess domain.Session, proof domain.PersonhoodProof, action, signal string) (domain.PersonhoodResult, string, error) {
	if proof.Proof == "" || proof.MerkleRoot == "" || proof.NullifierHash == "" {
		return domain.PersonhoodResult{}, "", fmt.Errorf("%w: incomplete proof", domain.ErrValidation)
	}
	if action == "" {
		action = s.action
	}
	if s.action != "" && action != s.action {
		return domain.PersonhoodResult{}, "", fmt.Errorf("%w: unexpected action %q", domain.ErrValidation, action)
	}

	res, err := s.verifier.Verify(ctx, proof, action, signal)
	if err != nil {
		return domain.PersonhoodResult{}, "", fmt.Errorf("verify proof: %w", err)
	}
	if !res.Success {
		s.logger.Info("personhood proof rejected",
			logger.String("address", sess.Address.Hex()),
			logger.String("code", res.Code),
		)
		return res, "", domain.ErrPersonhoodRejected
	}

	sess.Human = true
	token, err := s.sessions.Issue(sess)
	if err != nil {
		return res, "", fmt.Errorf("issue session: %w", err)
	}

	s.logger.Info("personhood verified",
		logger.String("address", sess.Address.Hex()),
		logger.String("action", action),
	)

	return res, token, nil
}
