package domain

import "github.com/ethereum/go-ethereum/common"

// LedgerReceipt is what a mined mutating call reports back. ID is the record
// id taken from the emitted event and is zero for calls that create nothing.
type LedgerReceipt struct {
	ID     uint64
	TxHash common.Hash
}
