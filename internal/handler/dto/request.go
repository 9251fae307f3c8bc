package dto

type SIWEPayload struct {
	Status    string `json:"status"`
	Message   string `json:"message"`
	Signature string `json:"signature"`
	Address   string `json:"address"`
	Version   int    `json:"version"`
}

type CompleteSIWERequest struct {
	// payload fields are checked after the nonce
	Payload SIWEPayload `json:"payload"`
	Nonce   string      `json:"nonce"`
}

type PersonhoodProof struct {
	Proof             string `json:"proof" binding:"required"`
	MerkleRoot        string `json:"merkle_root" binding:"required"`
	NullifierHash     string `json:"nullifier_hash" binding:"required"`
	VerificationLevel string `json:"verification_level"`
}

type VerifyRequest struct {
	Payload PersonhoodProof `json:"payload" binding:"required"`
	Action  string          `json:"action"`
	Signal  string          `json:"signal"`
}

type PaymentPayload struct {
	Status        string `json:"status"`
	TransactionID string `json:"transaction_id"`
	Reference     string `json:"reference"`
	From          string `json:"from"`
	Chain         string `json:"chain"`
}

type ConfirmPaymentRequest struct {
	Payload PaymentPayload `json:"payload" binding:"required"`
}

type CompleteBookingRequest struct {
	PropertyID       uint64 `json:"propertyId" binding:"required"`
	CheckInDate      string `json:"checkInDate" binding:"required"`
	CheckOutDate     string `json:"checkOutDate" binding:"required"`
	PaymentReference string `json:"paymentReference" binding:"required"`
}

type CancelBookingRequest struct {
	BookingID uint64 `json:"bookingId" binding:"required"`
	Reason    string `json:"reason"`
}

type ReleaseFundsRequest struct {
	BookingID uint64 `json:"bookingId" binding:"required"`
}

// StakeRequest carries the raw stake transaction, signed by the session wallet.
type StakeRequest struct {
	SignedTransaction string `json:"signedTransaction" binding:"required"`
}

type FileDisputeRequest struct {
	BookingID uint64 `json:"bookingId" binding:"required"`
	Reason    string `json:"reason" binding:"required"`
	Evidence  string `json:"evidence"`
}

type ListPropertyRequest struct {
	Name           string `json:"name" binding:"required"`
	Description    string `json:"description"`
	Location       string `json:"location" binding:"required"`
	PricePerNight  string `json:"pricePerNight" binding:"required"`
	ImageReference string `json:"imageReference"`
}
