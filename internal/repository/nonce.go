package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/stpnv0/StayEscrow/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type NonceRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewNonceRepo(db *dbpg.DB) *NonceRepository {
	return &NonceRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

func (r *NonceRepository) Create(ctx context.Context, n *domain.AuthNonce) error {
	query := `INSERT INTO auth_nonces (nonce, issued_at, expires_at)
			  VALUES ($1, $2, $3)`
	_, err := r.db.ExecWithRetry(ctx, r.strategy, query, n.Nonce, n.IssuedAt, n.ExpiresAt)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return fmt.Errorf("nonce collision: %w", err)
		}
		return fmt.Errorf("insert nonce: %w", err)
	}

	return nil
}

// Consume атомарно помечает nonce использованным. Повторное или просроченное
// использование возвращает ErrNonceNotFound.
func (r *NonceRepository) Consume(ctx context.Context, nonce string, now time.Time) error {
	query := `UPDATE auth_nonces
			  SET consumed_at = $2
			  WHERE nonce = $1
			    AND consumed_at IS NULL
			    AND expires_at > $2`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, nonce, now)
	if err != nil {
		return fmt.Errorf("consume nonce: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("nonce rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrNonceNotFound
	}

	return nil
}

func (r *NonceRepository) PurgeExpired(ctx context.Context, now time.Time) (int64, error) {
	query := `DELETE FROM auth_nonces WHERE expires_at < $1`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, now)
	if err != nil {
		return 0, fmt.Errorf("purge nonces: %w", err)
	}

	return res.RowsAffected()
}
