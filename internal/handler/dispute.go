package handler

import (
	"net/http"

	"github.com/stpnv0/StayEscrow/internal/domain"
	"github.com/stpnv0/StayEscrow/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

func (h *Handler) FileDispute(c *ginext.Context) {
	var req dto.FileDisputeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	d, rcpt, err := h.dispute.File(c.Request.Context(), domain.FileDisputeInput{
		BookingID: req.BookingID,
		Initiator: sessionFrom(c).Address,
		Reason:    req.Reason,
		Evidence:  req.Evidence,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.DisputeResponse{
		Success:         true,
		DisputeID:       d.ID,
		IsGuestDispute:  d.IsGuestDispute,
		TransactionHash: rcpt.TxHash.Hex(),
	})
}
