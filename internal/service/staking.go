package service

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stpnv0/StayEscrow/internal/domain"
	"github.com/stpnv0/StayEscrow/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type StakingService struct {
	ledger   ports.StakingLedger
	required bool
	logger   logger.Logger
}

func NewStakingService(ledger ports.StakingLedger, required bool, logger logger.Logger) *StakingService {
	return &StakingService{
		ledger:   ledger,
		required: required,
		logger:   logger,
	}
}

func (s *StakingService) Status(ctx context.Context, holder common.Address) (*domain.Stake, error) {
	staked, err := s.ledger.IsStaked(ctx, holder)
	if err != nil {
		return nil, fmt.Errorf("is staked: %w", err)
	}

	st := &domain.Stake{Holder: holder, Staked: staked}
	if staked {
		amount, err := s.ledger.StakeOf(ctx, holder)
		if err != nil {
			return nil, fmt.Errorf("stake amount: %w", err)
		}
		st.Amount = amount
	}
	return st, nil
}

// StakeCall returns the transaction holder's wallet signs to put up its own
// deposit.
func (s *StakingService) StakeCall(ctx context.Context, holder common.Address) (domain.StakeCall, error) {
	if err := s.notStaked(ctx, holder); err != nil {
		return domain.StakeCall{}, err
	}

	call, err := s.ledger.StakeCall(holder)
	if err != nil {
		return domain.StakeCall{}, fmt.Errorf("stake call: %w", err)
	}
	return call, nil
}

// Stake broadcasts the holder-signed stake transaction.
func (s *StakingService) Stake(ctx context.Context, holder common.Address, signedTx []byte) (domain.LedgerReceipt, error) {
	if len(signedTx) == 0 {
		return domain.LedgerReceipt{}, fmt.Errorf("%w: signed transaction is required", domain.ErrValidation)
	}
	if err := s.notStaked(ctx, holder); err != nil {
		return domain.LedgerReceipt{}, err
	}

	receipt, err := s.ledger.SubmitStake(ctx, holder, signedTx)
	if err != nil {
		s.logger.Warn("stake submission failed",
			logger.String("holder", holder.Hex()),
			logger.String("error", err.Error()),
		)
		return domain.LedgerReceipt{}, fmt.Errorf("stake: %w", err)
	}

	s.logger.Info("stake deposited",
		logger.String("holder", holder.Hex()),
		logger.String("tx_hash", receipt.TxHash.Hex()),
	)

	return receipt, nil
}

func (s *StakingService) notStaked(ctx context.Context, holder common.Address) error {
	staked, err := s.ledger.IsStaked(ctx, holder)
	if err != nil {
		return fmt.Errorf("is staked: %w", err)
	}
	if staked {
		return domain.ErrAlreadyStaked
	}
	return nil
}

// Require implements the staking gate in front of listing and booking.
func (s *StakingService) Require(ctx context.Context, holder common.Address) error {
	if !s.required {
		return nil
	}
	staked, err := s.ledger.IsStaked(ctx, holder)
	if err != nil {
		return fmt.Errorf("is staked: %w", err)
	}
	if !staked {
		return domain.ErrStakeRequired
	}
	return nil
}
