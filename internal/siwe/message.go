// Package siwe checks EIP-4361 sign-in messages and their signatures.
package siwe

import (
	"errors"
	"fmt"

	siwego "github.com/spruceid/siwe-go"
)

var (
	ErrMalformedMessage  = errors.New("malformed siwe message")
	ErrNonceMismatch     = errors.New("nonce mismatch")
	ErrAddressMismatch   = errors.New("address mismatch")
	ErrChainMismatch     = errors.New("chain id mismatch")
	ErrDomainMismatch    = errors.New("domain mismatch")
	ErrMessageNotValid   = errors.New("message outside its validity window")
	ErrSignatureMismatch = errors.New("signature does not match address")
)

type Message = siwego.Message

// Parse reads raw with the EIP-4361 grammar.
func Parse(raw string) (*Message, error) {
	m, err := siwego.ParseMessage(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedMessage, err)
	}
	return m, nil
}
