package handler

import (
	"errors"
	"net/http"

	"github.com/stpnv0/StayEscrow/internal/domain"
	"github.com/stpnv0/StayEscrow/internal/handler/dto"
	"github.com/stpnv0/StayEscrow/internal/middleware"
	"github.com/wb-go/wbf/ginext"
)

func (h *Handler) Nonce(c *ginext.Context) {
	n, err := h.auth.IssueNonce(c.Request.Context())
	if err != nil {
		c.Set("error", err.Error())
		c.JSON(http.StatusInternalServerError, ginext.H{"error": "failed to issue nonce"})
		return
	}

	h.setCookie(c, CookieSIWE, n.Nonce, h.cfg.ChallengeTTL)
	c.JSON(http.StatusOK, dto.NonceResponse{Nonce: n.Nonce})
}

func (h *Handler) CompleteSIWE(c *ginext.Context) {
	var req dto.CompleteSIWERequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Set("error", err.Error())
		c.JSON(http.StatusBadRequest, dto.SIWEResponse{Status: "error", Message: "invalid request body"})
		return
	}

	cookieNonce, _ := c.Cookie(CookieSIWE)
	// the challenge is single-use whatever the outcome
	h.clearCookie(c, CookieSIWE)

	payload := domain.SIWEPayload{
		Status:    req.Payload.Status,
		Message:   req.Payload.Message,
		Signature: req.Payload.Signature,
		Address:   req.Payload.Address,
		Version:   req.Payload.Version,
	}
	sess, token, err := h.auth.CompleteSIWE(c.Request.Context(), payload, req.Nonce, cookieNonce)
	if err != nil {
		c.Set("error", err.Error())
		switch {
		case errors.Is(err, domain.ErrInvalidNonce):
			c.JSON(http.StatusBadRequest, dto.SIWEResponse{Status: "error", Message: "Invalid nonce"})
		case errors.Is(err, domain.ErrInvalidSignature), errors.Is(err, domain.ErrNonceNotFound):
			c.JSON(http.StatusUnauthorized, dto.SIWEResponse{Status: "error", Message: err.Error()})
		case errors.Is(err, domain.ErrValidation):
			c.JSON(http.StatusBadRequest, dto.SIWEResponse{Status: "error", Message: err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, dto.SIWEResponse{Status: "error", Message: "sign-in failed"})
		}
		return
	}

	h.setCookie(c, middleware.SessionCookie, token, h.cfg.SessionTTL)
	c.JSON(http.StatusOK, dto.SIWEResponse{
		Status:  "success",
		IsValid: true,
		Address: sess.Address.Hex(),
	})
}

func (h *Handler) Session(c *ginext.Context) {
	sess := sessionFrom(c)
	c.JSON(http.StatusOK, dto.SessionResponse{
		Success: true,
		Address: sess.Address.Hex(),
		Human:   sess.Human,
	})
}

func (h *Handler) Logout(c *ginext.Context) {
	h.clearCookie(c, middleware.SessionCookie)
	c.JSON(http.StatusOK, ginext.H{"success": true})
}

func (h *Handler) VerifyPersonhood(c *ginext.Context) {
	var req dto.VerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Set("error", err.Error())
		c.JSON(http.StatusBadRequest, dto.VerifyResponse{Status: http.StatusBadRequest, Error: "invalid request body"})
		return
	}

	proof := domain.PersonhoodProof{
		Proof:             req.Payload.Proof,
		MerkleRoot:        req.Payload.MerkleRoot,
		NullifierHash:     req.Payload.NullifierHash,
		VerificationLevel: req.Payload.VerificationLevel,
	}
	res, token, err := h.personhood.Verify(c.Request.Context(), sessionFrom(c), proof, req.Action, req.Signal)
	if err != nil {
		c.Set("error", err.Error())
		switch {
		case errors.Is(err, domain.ErrPersonhoodRejected):
			c.JSON(http.StatusBadRequest, dto.VerifyResponse{VerifyRes: &res, Status: http.StatusBadRequest})
		case errors.Is(err, domain.ErrValidation):
			c.JSON(http.StatusBadRequest, dto.VerifyResponse{Status: http.StatusBadRequest, Error: err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, dto.VerifyResponse{Status: http.StatusInternalServerError, Error: "verification failed"})
		}
		return
	}

	h.setCookie(c, middleware.SessionCookie, token, h.cfg.SessionTTL)
	c.JSON(http.StatusOK, dto.VerifyResponse{VerifyRes: &res, Status: http.StatusOK})
}
