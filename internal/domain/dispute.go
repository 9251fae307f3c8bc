package domain

import "github.com/ethereum/go-ethereum/common"

type DisputeStatus string

const (
	DisputeStatusFiled    DisputeStatus = "filed"
	DisputeStatusResolved DisputeStatus = "resolved"
)

type Dispute struct {
	ID             uint64         `json:"id"`
	BookingID      uint64         `json:"booking_id"`
	Initiator      common.Address `json:"initiator"`
	IsGuestDispute bool           `json:"is_guest_dispute"`
	Reason         string         `json:"reason"`
	Evidence       string         `json:"evidence"`
	Status         DisputeStatus  `json:"status"`
}

type FileDisputeInput struct {
	BookingID uint64
	Initiator common.Address
	Reason    string
	Evidence  string
}
