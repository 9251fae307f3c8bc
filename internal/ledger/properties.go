package ledger

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stpnv0/StayEscrow/internal/domain"
)

// propertyRecord mirrors the Property tuple; field order must match the ABI.
type propertyRecord struct {
	Id            *big.Int
	Host          common.Address
	Name          string
	Description   string
	Location      string
	PricePerNight *big.Int
	IsActive      bool
	CreatedAt     *big.Int
	ImageHash     string
}

func (r propertyRecord) toDomain() *domain.Property {
	return &domain.Property{
		ID:             r.Id.Uint64(),
		Host:           r.Host,
		Name:           r.Name,
		Description:    r.Description,
		Location:       r.Location,
		PricePerNight:  r.PricePerNight,
		IsActive:       r.IsActive,
		CreatedAt:      unixTime(r.CreatedAt),
		ImageReference: r.ImageHash,
	}
}

func (c *Client) ListProperty(ctx context.Context, in domain.CreatePropertyInput) (domain.LedgerReceipt, error) {
	receipt, err := c.transact(ctx, c.properties, nil, "listProperty",
		in.Host, in.Name, in.Description, in.Location, in.PricePerNight, in.ImageReference,
	)
	if err != nil {
		return domain.LedgerReceipt{}, err
	}

	id, ok := emittedID(receipt, c.properties, "PropertyListed")
	if !ok {
		return domain.LedgerReceipt{TxHash: receipt.TxHash}, domain.ErrPropertyIDUnavailable
	}
	return domain.LedgerReceipt{ID: id, TxHash: receipt.TxHash}, nil
}

func (c *Client) GetProperty(ctx context.Context, id uint64) (*domain.Property, error) {
	out, err := c.call(ctx, c.properties, "getProperty", idBig(id))
	if err != nil {
		return nil, err
	}

	rec := *abi.ConvertType(out[0], new(propertyRecord)).(*propertyRecord)
	if rec.Id == nil || rec.Id.Sign() == 0 {
		return nil, fmt.Errorf("property %d: %w", id, domain.ErrPropertyNotFound)
	}
	return rec.toDomain(), nil
}

func (c *Client) ActiveProperties(ctx context.Context) ([]*domain.Property, error) {
	out, err := c.call(ctx, c.properties, "getActiveProperties")
	if err != nil {
		return nil, err
	}

	recs := *abi.ConvertType(out[0], new([]propertyRecord)).(*[]propertyRecord)
	res := make([]*domain.Property, 0, len(recs))
	for _, r := range recs {
		if !r.IsActive {
			continue
		}
		res = append(res, r.toDomain())
	}
	return res, nil
}
