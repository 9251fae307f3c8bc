package domain

import (
	"fmt"
	"math/big"
	"time"

	"github.com/shopspring/decimal"
)

const (
	TokenDecimals = 18
	night         = 24 * time.Hour
)

var platformFeeRate = decimal.New(3, -2)

type Quote struct {
	Nights      int64    `json:"nights"`
	TotalAmount *big.Int `json:"total_amount"`
	PlatformFee *big.Int `json:"platform_fee"`
	HostAmount  *big.Int `json:"host_amount"`
}

// Nights counts started nights between check-in and check-out.
func Nights(checkIn, checkOut time.Time) (int64, error) {
	if !checkOut.After(checkIn) {
		return 0, fmt.Errorf("%w: check-out must be after check-in", ErrValidation)
	}
	d := checkOut.Sub(checkIn)
	n := int64(d / night)
	if d%night != 0 {
		n++
	}
	return n, nil
}

func QuoteStay(pricePerNight *big.Int, checkIn, checkOut time.Time) (Quote, error) {
	if pricePerNight == nil || pricePerNight.Sign() <= 0 {
		return Quote{}, fmt.Errorf("%w: price per night must be positive", ErrValidation)
	}
	nights, err := Nights(checkIn, checkOut)
	if err != nil {
		return Quote{}, err
	}

	total := new(big.Int).Mul(pricePerNight, big.NewInt(nights))
	fee, host := SplitFee(total)

	return Quote{
		Nights:      nights,
		TotalAmount: total,
		PlatformFee: fee,
		HostAmount:  host,
	}, nil
}

// SplitFee returns round(total*0.03) and the remainder, so fee+host == total.
func SplitFee(total *big.Int) (fee, host *big.Int) {
	fee = decimal.NewFromBigInt(total, 0).Mul(platformFeeRate).Round(0).BigInt()
	host = new(big.Int).Sub(total, fee)
	return fee, host
}

// ParseTokenAmount converts a decimal token string ("12.5") into base units.
func ParseTokenAmount(s string) (*big.Int, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid amount %q", ErrValidation, s)
	}
	if d.Sign() <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive", ErrValidation)
	}
	units := d.Shift(TokenDecimals)
	if !units.Equal(units.Truncate(0)) {
		return nil, fmt.Errorf("%w: amount has more than %d decimals", ErrValidation, TokenDecimals)
	}
	return units.BigInt(), nil
}

func FormatTokenAmount(units *big.Int) string {
	if units == nil {
		return "0"
	}
	return decimal.NewFromBigInt(units, -TokenDecimals).String()
}
