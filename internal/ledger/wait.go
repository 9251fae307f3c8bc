package ledger

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

var ErrReceiptTimeout = errors.New("receipt not available")

type receiptSource interface {
	TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error)
}

// WaitPolicy bounds receipt polling: at most Attempts lookups, the delay
// growing by Factor up to MaxDelay, the whole wait capped by Timeout.
type WaitPolicy struct {
	Timeout  time.Duration
	Attempts int
	Delay    time.Duration
	MaxDelay time.Duration
	Factor   float64
}

func (p WaitPolicy) withDefaults() WaitPolicy {
	if p.Timeout <= 0 {
		p.Timeout = 2 * time.Minute
	}
	if p.Attempts <= 0 {
		p.Attempts = 12
	}
	if p.Delay <= 0 {
		p.Delay = time.Second
	}
	if p.MaxDelay < p.Delay {
		p.MaxDelay = 15 * time.Second
	}
	if p.Factor < 1 {
		p.Factor = 2
	}
	return p
}

func waitMined(ctx context.Context, src receiptSource, hash common.Hash, p WaitPolicy) (*types.Receipt, error) {
	ctx, cancel := context.WithTimeout(ctx, p.Timeout)
	defer cancel()

	delay := p.Delay
	var lastErr error
	for attempt := 1; ; attempt++ {
		receipt, err := src.TransactionReceipt(ctx, hash)
		if err == nil {
			return receipt, nil
		}
		lastErr = err

		if attempt >= p.Attempts {
			return nil, fmt.Errorf("%w after %d attempts: %v", ErrReceiptTimeout, attempt, lastErr)
		}

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, fmt.Errorf("%w: %v (last: %v)", ErrReceiptTimeout, ctx.Err(), lastErr)
		case <-timer.C:
		}

		delay = time.Duration(float64(delay) * p.Factor)
		if delay > p.MaxDelay {
			delay = p.MaxDelay
		}
	}
}
