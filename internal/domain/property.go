package domain

import (
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

type Property struct {
	ID             uint64         `json:"id"`
	Host           common.Address `json:"host"`
	Name           string         `json:"name"`
	Description    string         `json:"description"`
	Location       string         `json:"location"`
	PricePerNight  *big.Int       `json:"price_per_night"`
	IsActive       bool           `json:"is_active"`
	CreatedAt      time.Time      `json:"created_at"`
	ImageReference string         `json:"image_reference"`
}

type CreatePropertyInput struct {
	Host           common.Address
	Name           string
	Description    string
	Location       string
	PricePerNight  *big.Int
	ImageReference string
}
