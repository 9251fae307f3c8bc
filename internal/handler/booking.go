package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stpnv0/StayEscrow/internal/domain"
	"github.com/stpnv0/StayEscrow/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

// parseDate accepts RFC3339 timestamps and bare dates, the latter as UTC midnight.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q", s)
	}
	return t, nil
}

func parseID(c *ginext.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return id, true
}

func (h *Handler) CompleteBooking(c *ginext.Context) {
	var req dto.CompleteBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	checkIn, err := parseDate(req.CheckInDate)
	if err != nil {
		badRequest(c, err.Error())
		return
	}
	checkOut, err := parseDate(req.CheckOutDate)
	if err != nil {
		badRequest(c, err.Error())
		return
	}

	res, err := h.booking.Complete(c.Request.Context(), domain.CreateBookingInput{
		PropertyID:       req.PropertyID,
		Guest:            sessionFrom(c).Address,
		CheckIn:          checkIn,
		CheckOut:         checkOut,
		PaymentReference: req.PaymentReference,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.CompleteBookingResponse{
		Success:         true,
		BookingID:       res.BookingID,
		TransactionHash: res.TxHash.Hex(),
		Nights:          res.Quote.Nights,
		TotalAmount:     domain.FormatTokenAmount(res.Quote.TotalAmount),
		PlatformFee:     domain.FormatTokenAmount(res.Quote.PlatformFee),
		HostAmount:      domain.FormatTokenAmount(res.Quote.HostAmount),
	})
}

func (h *Handler) GetBookings(c *ginext.Context) {
	var filter domain.BookingFilter
	for _, q := range []struct {
		key string
		dst **common.Address
	}{{"guest", &filter.Guest}, {"host", &filter.Host}} {
		v := c.Query(q.key)
		if v == "" {
			continue
		}
		if !common.IsHexAddress(v) {
			badRequest(c, "invalid "+q.key+" address")
			return
		}
		addr := common.HexToAddress(v)
		*q.dst = &addr
	}

	bookings, err := h.booking.List(c.Request.Context(), filter)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		resp = append(resp, dto.ToBookingResponse(b))
	}
	c.JSON(http.StatusOK, dto.BookingsResponse{Success: true, Bookings: resp})
}

func (h *Handler) GetBooking(c *ginext.Context) {
	id, ok := parseID(c)
	if !ok {
		badRequest(c, "invalid booking id")
		return
	}

	b, err := h.booking.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.BookingDetailsResponse{Success: true, Booking: dto.ToBookingResponse(b)})
}

func (h *Handler) CancelBooking(c *ginext.Context) {
	var req dto.CancelBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	rcpt, err := h.booking.Cancel(c.Request.Context(), sessionFrom(c).Address, req.BookingID, req.Reason)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.TxResponse{Success: true, TransactionHash: rcpt.TxHash.Hex()})
}

func (h *Handler) ReleaseFunds(c *ginext.Context) {
	var req dto.ReleaseFundsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	res, err := h.booking.Release(c.Request.Context(), req.BookingID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ReleaseResponse{
		Success:         true,
		BookingID:       res.BookingID,
		TransactionHash: res.TxHash.Hex(),
		HostAmount:      domain.FormatTokenAmount(res.HostAmount),
		PlatformFee:     domain.FormatTokenAmount(res.PlatformFee),
	})
}
