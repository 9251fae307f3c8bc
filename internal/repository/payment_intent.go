package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/lib/pq"
	"github.com/stpnv0/StayEscrow/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type PaymentIntentRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewPaymentIntentRepo(db *dbpg.DB) *PaymentIntentRepository {
	return &PaymentIntentRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

const intentColumns = `reference, wallet, status, transaction_id, booking_id,
	paid_amount, recipient, created_at, expires_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanIntent(row rowScanner) (*domain.PaymentIntent, error) {
	var (
		p         domain.PaymentIntent
		wallet    string
		txID      sql.NullString
		bookingID sql.NullInt64
		paid      sql.NullString
		recipient sql.NullString
	)
	if err := row.Scan(
		&p.Reference, &wallet, &p.Status, &txID, &bookingID,
		&paid, &recipient, &p.CreatedAt, &p.ExpiresAt, &p.UpdatedAt,
	); err != nil {
		return nil, err
	}
	if paid.Valid {
		amount, ok := new(big.Int).SetString(paid.String, 10)
		if !ok {
			return nil, fmt.Errorf("paid amount %q is not an integer", paid.String)
		}
		p.PaidAmount = amount
	}
	if recipient.Valid {
		p.Recipient = common.HexToAddress(recipient.String)
	}

	p.Wallet = common.HexToAddress(wallet)
	p.TransactionID = txID.String
	if bookingID.Valid {
		id := uint64(bookingID.Int64)
		p.BookingID = &id
	}
	return &p, nil
}

func (r *PaymentIntentRepository) Create(ctx context.Context, p *domain.PaymentIntent) error {
	query := `INSERT INTO payment_intents (reference, wallet, status, created_at, expires_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query, p.Reference, p.Wallet.Hex(),
		p.Status, p.CreatedAt, p.ExpiresAt, p.UpdatedAt,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return fmt.Errorf("reference collision: %w", err)
		}
		return fmt.Errorf("insert payment intent: %w", err)
	}

	return nil
}

func (r *PaymentIntentRepository) GetByReference(ctx context.Context, reference string) (*domain.PaymentIntent, error) {
	query := `SELECT ` + intentColumns + ` FROM payment_intents WHERE reference = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, reference)
	if err != nil {
		return nil, fmt.Errorf("get payment intent: %w", err)
	}

	p, err := scanIntent(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPaymentIntentNotFound
		}
		return nil, fmt.Errorf("scan payment intent: %w", err)
	}

	return p, nil
}

// MarkConfirmed переводит намерение initiated -> confirmed, если оно
// принадлежит кошельку и ещё не истекло, и запоминает сумму и получателя.
func (r *PaymentIntentRepository) MarkConfirmed(ctx context.Context, reference string, wallet common.Address, c domain.PaymentConfirmation, now time.Time) error {
	if c.Amount == nil {
		return fmt.Errorf("%w: paid amount is required", domain.ErrValidation)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	query := `UPDATE payment_intents
			  SET status = $4, transaction_id = $5, paid_amount = $6, recipient = $7, updated_at = $8
			  WHERE reference = $1
			    AND wallet = $2
			    AND status = $3
			    AND expires_at > $8`
	res, err := tx.ExecContext(
		ctx, query, reference, wallet.Hex(),
		domain.PaymentIntentInitiated, domain.PaymentIntentConfirmed,
		c.TransactionID, c.Amount.String(), c.Recipient.Hex(), now,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			// транзакция уже подтвердила другое намерение
			return domain.ErrReferenceMismatch
		}
		return fmt.Errorf("confirm payment intent: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("intent rows affected: %w", err)
	}
	if rows == 0 {
		return r.diagnose(ctx, tx, reference, wallet, domain.PaymentIntentInitiated, now)
	}

	return tx.Commit()
}

// Claim забирает подтверждённое намерение под создание брони и возвращает его.
// Пока бронь не привязана, Release может вернуть его обратно.
func (r *PaymentIntentRepository) Claim(ctx context.Context, reference string, wallet common.Address, now time.Time) (*domain.PaymentIntent, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	query := `UPDATE payment_intents
			  SET status = $4, updated_at = $5
			  WHERE reference = $1
			    AND wallet = $2
			    AND status = $3
			    AND booking_id IS NULL
			  RETURNING ` + intentColumns
	p, err := scanIntent(tx.QueryRowContext(
		ctx, query, reference, wallet.Hex(),
		domain.PaymentIntentConfirmed, domain.PaymentIntentConsumed, now,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, r.diagnose(ctx, tx, reference, wallet, domain.PaymentIntentConfirmed, time.Time{})
	}
	if err != nil {
		return nil, fmt.Errorf("claim payment intent: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit claim: %w", err)
	}
	return p, nil
}

func (r *PaymentIntentRepository) AttachBooking(ctx context.Context, reference string, bookingID uint64, now time.Time) error {
	query := `UPDATE payment_intents
			  SET booking_id = $3, updated_at = $4
			  WHERE reference = $1 AND status = $2 AND booking_id IS NULL`
	res, err := r.db.ExecWithRetry(
		ctx, r.strategy, query, reference,
		domain.PaymentIntentConsumed, int64(bookingID), now,
	)
	if err != nil {
		return fmt.Errorf("attach booking: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("intent rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrIntentNotPending
	}

	return nil
}

// Release возвращает захваченное намерение в confirmed после неудачи в леджере.
func (r *PaymentIntentRepository) Release(ctx context.Context, reference string, now time.Time) error {
	query := `UPDATE payment_intents
			  SET status = $3, updated_at = $4
			  WHERE reference = $1 AND status = $2 AND booking_id IS NULL`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query, reference,
		domain.PaymentIntentConsumed, domain.PaymentIntentConfirmed, now,
	)
	if err != nil {
		return fmt.Errorf("release payment intent: %w", err)
	}

	return nil
}

// PurgeExpired удаляет неоплаченные намерения. Подтверждённые остаются, по ним
// уже прошли деньги.
func (r *PaymentIntentRepository) PurgeExpired(ctx context.Context, now time.Time) (int64, error) {
	query := `DELETE FROM payment_intents WHERE status = $1 AND expires_at < $2`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, domain.PaymentIntentInitiated, now)
	if err != nil {
		return 0, fmt.Errorf("purge payment intents: %w", err)
	}

	return res.RowsAffected()
}

// diagnose определяет причину, по которой переход не затронул ни одной строки.
// Zero now skips the expiry check.
func (r *PaymentIntentRepository) diagnose(ctx context.Context, tx *sql.Tx, reference string, wallet common.Address, want domain.PaymentIntentStatus, now time.Time) error {
	query := `SELECT ` + intentColumns + ` FROM payment_intents WHERE reference = $1`
	p, err := scanIntent(tx.QueryRowContext(ctx, query, reference))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrPaymentIntentNotFound
		}
		return fmt.Errorf("scan payment intent: %w", err)
	}

	switch {
	case p.Wallet != wallet:
		return domain.ErrReferenceMismatch
	case want == domain.PaymentIntentConfirmed && p.Status == domain.PaymentIntentInitiated:
		return domain.ErrPaymentUnconfirmed
	case p.Status != want:
		return domain.ErrIntentNotPending
	case !now.IsZero() && !now.Before(p.ExpiresAt):
		return domain.ErrIntentExpired
	}
	return domain.ErrPaymentIntentNotFound
}
