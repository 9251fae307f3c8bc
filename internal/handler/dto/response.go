package dto

import (
	"time"

	"github.com/stpnv0/StayEscrow/internal/domain"
)

type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

type NonceResponse struct {
	Nonce string `json:"nonce"`
}

type SIWEResponse struct {
	Status  string `json:"status"`
	IsValid bool   `json:"isValid"`
	Address string `json:"address,omitempty"`
	Message string `json:"message,omitempty"`
}

type SessionResponse struct {
	Success bool   `json:"success"`
	Address string `json:"address"`
	Human   bool   `json:"human"`
}

type VerifyResponse struct {
	VerifyRes *domain.PersonhoodResult `json:"verifyRes,omitempty"`
	Status    int                      `json:"status"`
	Error     string                   `json:"error,omitempty"`
}

type InitiatePayResponse struct {
	ID string `json:"id"`
}

type ConfirmPaymentResponse struct {
	Success     bool                       `json:"success"`
	Transaction *domain.PaymentTransaction `json:"transaction"`
}

type CompleteBookingResponse struct {
	Success         bool   `json:"success"`
	BookingID       uint64 `json:"bookingId"`
	TransactionHash string `json:"transactionHash"`
	Nights          int64  `json:"nights"`
	TotalAmount     string `json:"totalAmount"`
	PlatformFee     string `json:"platformFee"`
	HostAmount      string `json:"hostAmount"`
}

type BookingResponse struct {
	ID               uint64 `json:"id"`
	PropertyID       uint64 `json:"propertyId"`
	Guest            string `json:"guest"`
	Host             string `json:"host"`
	CheckInDate      string `json:"checkInDate"`
	CheckOutDate     string `json:"checkOutDate"`
	TotalAmount      string `json:"totalAmount"`
	PlatformFee      string `json:"platformFee"`
	HostAmount       string `json:"hostAmount"`
	IsConfirmed      bool   `json:"isConfirmed"`
	IsCancelled      bool   `json:"isCancelled"`
	FundsReleased    bool   `json:"fundsReleased"`
	PaymentReference string `json:"paymentReference"`
	Status           string `json:"status"`
}

type BookingsResponse struct {
	Success  bool              `json:"success"`
	Bookings []BookingResponse `json:"bookings"`
}

type BookingDetailsResponse struct {
	Success bool            `json:"success"`
	Booking BookingResponse `json:"booking"`
}

type TxResponse struct {
	Success         bool   `json:"success"`
	TransactionHash string `json:"transactionHash"`
}

type ReleaseResponse struct {
	Success         bool   `json:"success"`
	BookingID       uint64 `json:"bookingId"`
	TransactionHash string `json:"transactionHash"`
	HostAmount      string `json:"hostAmount"`
	PlatformFee     string `json:"platformFee"`
}

type StakeStatusResponse struct {
	Success  bool   `json:"success"`
	Address  string `json:"address"`
	IsStaked bool   `json:"isStaked"`
	Amount   string `json:"amount,omitempty"`
}

type StakeCallResponse struct {
	Success bool   `json:"success"`
	To      string `json:"to"`
	Value   string `json:"value"`
	Data    string `json:"data"`
	ChainID int64  `json:"chainId"`
}

type DisputeResponse struct {
	Success         bool   `json:"success"`
	DisputeID       uint64 `json:"disputeId"`
	IsGuestDispute  bool   `json:"isGuestDispute"`
	TransactionHash string `json:"transactionHash"`
}

type ListPropertyResponse struct {
	Success         bool   `json:"success"`
	PropertyID      uint64 `json:"propertyId"`
	TransactionHash string `json:"transactionHash"`
}

type PropertyResponse struct {
	ID             uint64 `json:"id"`
	Host           string `json:"host"`
	Name           string `json:"name"`
	Description    string `json:"description"`
	Location       string `json:"location"`
	PricePerNight  string `json:"pricePerNight"`
	IsActive       bool   `json:"isActive"`
	CreatedAt      string `json:"createdAt"`
	ImageReference string `json:"imageReference"`
}

type PropertiesResponse struct {
	Success    bool               `json:"success"`
	Properties []PropertyResponse `json:"properties"`
}

type PropertyDetailsResponse struct {
	Success  bool             `json:"success"`
	Property PropertyResponse `json:"property"`
}

type UploadImageResponse struct {
	Success bool   `json:"success"`
	CID     string `json:"cid"`
}

func ToBookingResponse(b *domain.Booking) BookingResponse {
	return BookingResponse{
		ID:               b.ID,
		PropertyID:       b.PropertyID,
		Guest:            b.Guest.Hex(),
		Host:             b.Host.Hex(),
		CheckInDate:      b.CheckIn.UTC().Format(time.RFC3339),
		CheckOutDate:     b.CheckOut.UTC().Format(time.RFC3339),
		TotalAmount:      domain.FormatTokenAmount(b.TotalAmount),
		PlatformFee:      domain.FormatTokenAmount(b.PlatformFee),
		HostAmount:       domain.FormatTokenAmount(b.HostAmount),
		IsConfirmed:      b.IsConfirmed,
		IsCancelled:      b.IsCancelled,
		FundsReleased:    b.FundsReleased,
		PaymentReference: b.PaymentReference,
		Status:           string(b.Status()),
	}
}

func ToPropertyResponse(p *domain.Property) PropertyResponse {
	return PropertyResponse{
		ID:             p.ID,
		Host:           p.Host.Hex(),
		Name:           p.Name,
		Description:    p.Description,
		Location:       p.Location,
		PricePerNight:  domain.FormatTokenAmount(p.PricePerNight),
		IsActive:       p.IsActive,
		CreatedAt:      p.CreatedAt.UTC().Format(time.RFC3339),
		ImageReference: p.ImageReference,
	}
}
