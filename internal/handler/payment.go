package handler

import (
	"net/http"

	"github.com/stpnv0/StayEscrow/internal/domain"
	"github.com/stpnv0/StayEscrow/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

func (h *Handler) InitiatePay(c *ginext.Context) {
	intent, err := h.payment.Initiate(c.Request.Context(), sessionFrom(c).Address)
	if err != nil {
		c.Set("error", err.Error())
		c.JSON(http.StatusInternalServerError, ginext.H{"error": "failed to initiate payment"})
		return
	}

	h.setCookie(c, CookiePayment, intent.Reference, h.cfg.ChallengeTTL)
	c.JSON(http.StatusOK, dto.InitiatePayResponse{ID: intent.Reference})
}

func (h *Handler) ConfirmPayment(c *ginext.Context) {
	var req dto.ConfirmPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	cookieRef, _ := c.Cookie(CookiePayment)
	payload := domain.PaymentPayload{
		Status:        req.Payload.Status,
		TransactionID: req.Payload.TransactionID,
		Reference:     req.Payload.Reference,
		From:          req.Payload.From,
		Chain:         req.Payload.Chain,
	}

	tx, err := h.payment.Confirm(c.Request.Context(), sessionFrom(c).Address, payload, cookieRef)
	if err != nil {
		h.handleError(c, err)
		return
	}

	h.clearCookie(c, CookiePayment)
	c.JSON(http.StatusOK, dto.ConfirmPaymentResponse{Success: true, Transaction: tx})
}
