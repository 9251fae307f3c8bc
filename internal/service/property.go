package service

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/stpnv0/StayEscrow/internal/domain"
	"github.com/stpnv0/StayEscrow/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type PropertyService struct {
	ledger ports.PropertyLedger
	gate   ports.StakeGate
	images ports.ImageStore
	logger logger.Logger
}

func NewPropertyService(
	ledger ports.PropertyLedger,
	gate ports.StakeGate,
	images ports.ImageStore,
	logger logger.Logger,
) *PropertyService {
	return &PropertyService{
		ledger: ledger,
		gate:   gate,
		images: images,
		logger: logger,
	}
}

func (s *PropertyService) List(ctx context.Context, sess domain.Session, in domain.CreatePropertyInput) (domain.LedgerReceipt, error) {
	if !sess.Human {
		return domain.LedgerReceipt{}, domain.ErrPersonhoodRequired
	}

	in.Host = sess.Address
	in.Name = strings.TrimSpace(in.Name)
	in.Location = strings.TrimSpace(in.Location)
	if in.Name == "" || in.Location == "" {
		return domain.LedgerReceipt{}, fmt.Errorf("%w: name and location are required", domain.ErrValidation)
	}
	if in.PricePerNight == nil || in.PricePerNight.Sign() <= 0 {
		return domain.LedgerReceipt{}, fmt.Errorf("%w: price per night must be positive", domain.ErrValidation)
	}

	if err := s.gate.Require(ctx, sess.Address); err != nil {
		return domain.LedgerReceipt{}, err
	}

	receipt, err := s.ledger.ListProperty(ctx, in)
	if err != nil {
		return receipt, fmt.Errorf("list property: %w", err)
	}

	s.logger.Info("property listed",
		logger.Int64("property_id", int64(receipt.ID)),
		logger.String("host", sess.Address.Hex()),
		logger.String("tx_hash", receipt.TxHash.Hex()),
	)

	return receipt, nil
}

func (s *PropertyService) GetByID(ctx context.Context, id uint64) (*domain.Property, error) {
	return s.ledger.GetProperty(ctx, id)
}

func (s *PropertyService) ListActive(ctx context.Context) ([]*domain.Property, error) {
	props, err := s.ledger.ActiveProperties(ctx)
	if err != nil {
		return nil, fmt.Errorf("active properties: %w", err)
	}
	return props, nil
}

func (s *PropertyService) UploadImage(ctx context.Context, name string, r io.Reader) (string, error) {
	cid, err := s.images.Add(ctx, name, r)
	if err != nil {
		return "", fmt.Errorf("upload image: %w", err)
	}

	s.logger.Info("image uploaded",
		logger.String("name", name),
		logger.String("cid", cid),
	)

	return cid, nil
}
