package ledger

import (
	"context"

	"github.com/stpnv0/StayEscrow/internal/domain"
)

func (c *Client) FileDispute(ctx context.Context, d domain.Dispute) (domain.LedgerReceipt, error) {
	receipt, err := c.transact(ctx, c.disputes, nil, "fileDispute",
		idBig(d.BookingID), d.Initiator, d.IsGuestDispute, d.Reason, d.Evidence,
	)
	if err != nil {
		return domain.LedgerReceipt{}, err
	}

	id, ok := emittedID(receipt, c.disputes, "DisputeFiled")
	if !ok {
		return domain.LedgerReceipt{TxHash: receipt.TxHash}, domain.ErrDisputeIDUnavailable
	}
	return domain.LedgerReceipt{ID: id, TxHash: receipt.TxHash}, nil
}
