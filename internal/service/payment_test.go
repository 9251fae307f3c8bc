package service

import (
	"context"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stpnv0/StayEscrow/internal/domain"
	"github.com/stpnv0/StayEscrow/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newPaymentService(t *testing.T) (*PaymentService, *mocks.MockPaymentIntentRepo, *mocks.MockPaymentVerifier) {
	intents := mocks.NewMockPaymentIntentRepo(t)
	payments := mocks.NewMockPaymentVerifier(t)
	svc := NewPaymentService(intents, payments, 5*time.Minute, newTestLogger(t))
	svc.now = clockAt(baseTime)
	return svc, intents, payments
}

func pendingIntent(ref string) *domain.PaymentIntent {
	return &domain.PaymentIntent{
		Reference: ref,
		Wallet:    guest,
		Status:    domain.PaymentIntentInitiated,
		CreatedAt: baseTime.Add(-time.Minute),
		ExpiresAt: baseTime.Add(4 * time.Minute),
	}
}

func successPayload(ref string) domain.PaymentPayload {
	return domain.PaymentPayload{Status: "success", TransactionID: "tx-1", Reference: ref}
}

func TestPaymentService_Initiate(t *testing.T) {
	svc, intents, _ := newPaymentService(t)
	intents.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	p, err := svc.Initiate(context.Background(), guest)

	require.NoError(t, err)
	assert.Len(t, p.Reference, 32)
	assert.NotContains(t, p.Reference, "-")
	assert.Equal(t, guest, p.Wallet)
	assert.Equal(t, domain.PaymentIntentInitiated, p.Status)
	assert.Equal(t, baseTime.Add(5*time.Minute), p.ExpiresAt)
}

func TestPaymentService_Confirm_Success(t *testing.T) {
	svc, intents, payments := newPaymentService(t)

	intents.EXPECT().GetByReference(mock.Anything, "ref1").Return(pendingIntent("ref1"), nil)
	payments.EXPECT().Configured().Return(true)
	payments.EXPECT().Transaction(mock.Anything, "tx-1").
		Return(&domain.PaymentTransaction{TransactionID: "tx-1", Reference: "ref1", TransactionStatus: "mined", To: host.Hex(), TokenAmount: "2.5"}, nil)
	intents.EXPECT().MarkConfirmed(mock.Anything, "ref1", guest, mock.Anything, baseTime).
		Run(func(_ context.Context, _ string, _ common.Address, c domain.PaymentConfirmation, _ time.Time) {
			assert.Equal(t, "tx-1", c.TransactionID)
			assert.Equal(t, host, c.Recipient)
			assert.Equal(t, "2500000000000000000", c.Amount.String())
		}).
		Return(nil)

	tx, err := svc.Confirm(context.Background(), guest, successPayload("ref1"), "ref1")

	require.NoError(t, err)
	assert.Equal(t, "tx-1", tx.TransactionID)
}

// initiate ref1, confirm with ref2 -> rejected
func TestPaymentService_Confirm_ReferenceMismatch(t *testing.T) {
	svc, intents, _ := newPaymentService(t)
	intents.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	p, err := svc.Initiate(context.Background(), guest)
	require.NoError(t, err)

	_, err = svc.Confirm(context.Background(), guest, successPayload("ref2"), p.Reference)

	assert.ErrorIs(t, err, domain.ErrReferenceMismatch)
}

func TestPaymentService_Confirm_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		payload domain.PaymentPayload
		cookie  string
		setup   func(intents *mocks.MockPaymentIntentRepo, payments *mocks.MockPaymentVerifier)
		wantErr error
	}{
		{
			name:    "missing cookie",
			payload: successPayload("ref1"),
			wantErr: domain.ErrReferenceMissing,
		},
		{
			name:    "payload not successful",
			payload: domain.PaymentPayload{Status: "error", Reference: "ref1", TransactionID: "tx-1"},
			cookie:  "ref1",
			wantErr: domain.ErrPaymentRejected,
		},
		{
			name:    "missing transaction id",
			payload: domain.PaymentPayload{Status: "success", Reference: "ref1"},
			cookie:  "ref1",
			wantErr: domain.ErrValidation,
		},
		{
			name:    "unknown intent",
			payload: successPayload("ref1"),
			cookie:  "ref1",
			setup: func(intents *mocks.MockPaymentIntentRepo, _ *mocks.MockPaymentVerifier) {
				intents.EXPECT().GetByReference(mock.Anything, "ref1").Return(nil, domain.ErrPaymentIntentNotFound)
			},
			wantErr: domain.ErrPaymentIntentNotFound,
		},
		{
			name:    "intent of another wallet",
			payload: successPayload("ref1"),
			cookie:  "ref1",
			setup: func(intents *mocks.MockPaymentIntentRepo, _ *mocks.MockPaymentVerifier) {
				p := pendingIntent("ref1")
				p.Wallet = stranger
				intents.EXPECT().GetByReference(mock.Anything, "ref1").Return(p, nil)
			},
			wantErr: domain.ErrReferenceMismatch,
		},
		{
			name:    "already confirmed",
			payload: successPayload("ref1"),
			cookie:  "ref1",
			setup: func(intents *mocks.MockPaymentIntentRepo, _ *mocks.MockPaymentVerifier) {
				p := pendingIntent("ref1")
				p.Status = domain.PaymentIntentConfirmed
				intents.EXPECT().GetByReference(mock.Anything, "ref1").Return(p, nil)
			},
			wantErr: domain.ErrIntentNotPending,
		},
		{
			name:    "expired intent",
			payload: successPayload("ref1"),
			cookie:  "ref1",
			setup: func(intents *mocks.MockPaymentIntentRepo, _ *mocks.MockPaymentVerifier) {
				p := pendingIntent("ref1")
				p.ExpiresAt = baseTime
				intents.EXPECT().GetByReference(mock.Anything, "ref1").Return(p, nil)
			},
			wantErr: domain.ErrIntentExpired,
		},
		{
			name:    "credentials missing",
			payload: successPayload("ref1"),
			cookie:  "ref1",
			setup: func(intents *mocks.MockPaymentIntentRepo, payments *mocks.MockPaymentVerifier) {
				intents.EXPECT().GetByReference(mock.Anything, "ref1").Return(pendingIntent("ref1"), nil)
				payments.EXPECT().Configured().Return(false)
			},
			wantErr: domain.ErrVerifierUnavailable,
		},
		{
			name:    "protocol reference differs",
			payload: successPayload("ref1"),
			cookie:  "ref1",
			setup: func(intents *mocks.MockPaymentIntentRepo, payments *mocks.MockPaymentVerifier) {
				intents.EXPECT().GetByReference(mock.Anything, "ref1").Return(pendingIntent("ref1"), nil)
				payments.EXPECT().Configured().Return(true)
				payments.EXPECT().Transaction(mock.Anything, "tx-1").
					Return(&domain.PaymentTransaction{Reference: "ref9", TransactionStatus: "mined"}, nil)
			},
			wantErr: domain.ErrReferenceMismatch,
		},
		{
			name:    "protocol reports failure",
			payload: successPayload("ref1"),
			cookie:  "ref1",
			setup: func(intents *mocks.MockPaymentIntentRepo, payments *mocks.MockPaymentVerifier) {
				intents.EXPECT().GetByReference(mock.Anything, "ref1").Return(pendingIntent("ref1"), nil)
				payments.EXPECT().Configured().Return(true)
				payments.EXPECT().Transaction(mock.Anything, "tx-1").
					Return(&domain.PaymentTransaction{Reference: "ref1", TransactionStatus: domain.PaymentTransactionFailed}, nil)
			},
			wantErr: domain.ErrPaymentRejected,
		},
		{
			name:    "protocol record without amount",
			payload: successPayload("ref1"),
			cookie:  "ref1",
			setup: func(intents *mocks.MockPaymentIntentRepo, payments *mocks.MockPaymentVerifier) {
				intents.EXPECT().GetByReference(mock.Anything, "ref1").Return(pendingIntent("ref1"), nil)
				payments.EXPECT().Configured().Return(true)
				payments.EXPECT().Transaction(mock.Anything, "tx-1").
					Return(&domain.PaymentTransaction{Reference: "ref1", TransactionStatus: "mined", To: host.Hex()}, nil)
			},
			wantErr: domain.ErrPaymentRejected,
		},
		{
			name:    "protocol record without recipient",
			payload: successPayload("ref1"),
			cookie:  "ref1",
			setup: func(intents *mocks.MockPaymentIntentRepo, payments *mocks.MockPaymentVerifier) {
				intents.EXPECT().GetByReference(mock.Anything, "ref1").Return(pendingIntent("ref1"), nil)
				payments.EXPECT().Configured().Return(true)
				payments.EXPECT().Transaction(mock.Anything, "tx-1").
					Return(&domain.PaymentTransaction{Reference: "ref1", TransactionStatus: "mined", TokenAmount: "1"}, nil)
			},
			wantErr: domain.ErrPaymentRejected,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, intents, payments := newPaymentService(t)
			if tt.setup != nil {
				tt.setup(intents, payments)
			}

			_, err := svc.Confirm(context.Background(), guest, tt.payload, tt.cookie)

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestPaymentService_PurgeExpired(t *testing.T) {
	svc, intents, _ := newPaymentService(t)
	intents.EXPECT().PurgeExpired(mock.Anything, baseTime).Return(int64(2), nil)

	n, err := svc.PurgeExpired(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
}
