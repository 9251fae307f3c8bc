package domain

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

type StakeRole string

const (
	StakeRoleUser StakeRole = "user"
	StakeRoleHost StakeRole = "host"
)

// StakeAmount is the fixed 0.1 token deposit in base units.
var StakeAmount = new(big.Int).Exp(big.NewInt(10), big.NewInt(TokenDecimals-1), nil)

type Stake struct {
	Holder common.Address `json:"holder"`
	Amount *big.Int       `json:"amount"`
	Role   StakeRole      `json:"role"`
	Staked bool           `json:"staked"`
}

// StakeCall is the unsigned transaction a holder's wallet signs and funds to
// put up its own deposit.
type StakeCall struct {
	To      common.Address
	Value   *big.Int
	Data    []byte
	ChainID *big.Int
}
