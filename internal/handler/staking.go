package handler

import (
	"net/http"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/stpnv0/StayEscrow/internal/domain"
	"github.com/stpnv0/StayEscrow/internal/handler/dto"
	"github.com/stpnv0/StayEscrow/internal/middleware"
	"github.com/wb-go/wbf/ginext"
)

// StakeStatus reports the stake of ?address=, falling back to the session wallet.
func (h *Handler) StakeStatus(c *ginext.Context) {
	var holder common.Address
	if v := c.Query("address"); v != "" {
		if !common.IsHexAddress(v) {
			badRequest(c, "invalid address")
			return
		}
		holder = common.HexToAddress(v)
	} else if sess, ok := middleware.SessionFrom(c); ok {
		holder = sess.Address
	} else {
		badRequest(c, "address is required")
		return
	}

	st, err := h.staking.Status(c.Request.Context(), holder)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := dto.StakeStatusResponse{
		Success:  true,
		Address:  st.Holder.Hex(),
		IsStaked: st.Staked,
	}
	if st.Amount != nil && st.Amount.Sign() > 0 {
		resp.Amount = domain.FormatTokenAmount(st.Amount)
	}
	c.JSON(http.StatusOK, resp)
}

// StakeCall returns the stake transaction for the session wallet to sign.
func (h *Handler) StakeCall(c *ginext.Context) {
	call, err := h.staking.StakeCall(c.Request.Context(), sessionFrom(c).Address)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.StakeCallResponse{
		Success: true,
		To:      call.To.Hex(),
		Value:   hexutil.EncodeBig(call.Value),
		Data:    hexutil.Encode(call.Data),
		ChainID: call.ChainID.Int64(),
	})
}

func (h *Handler) Stake(c *ginext.Context) {
	var req dto.StakeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}
	raw, err := hexutil.Decode(req.SignedTransaction)
	if err != nil {
		badRequest(c, "signedTransaction must be 0x-prefixed hex")
		return
	}

	rcpt, err := h.staking.Stake(c.Request.Context(), sessionFrom(c).Address, raw)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.TxResponse{Success: true, TransactionHash: rcpt.TxHash.Hex()})
}
