package repository

import (
	"context"
	"math/big"
	"os"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
	"github.com/stpnv0/StayEscrow/internal/domain"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"github.com/wb-go/wbf/dbpg"
)

var (
	guest    = common.HexToAddress("0x00000000000000000000000000000000000000a1")
	host     = common.HexToAddress("0x00000000000000000000000000000000000000b2")
	stranger = common.HexToAddress("0x00000000000000000000000000000000000000c3")

	baseTime = time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
)

// newTestDB starts a throwaway Postgres with the migrations applied.
func newTestDB(t *testing.T) *dbpg.DB {
	t.Helper()
	if testing.Short() {
		t.Skip("postgres tests need docker")
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)

	ctx := context.Background()
	pg, err := postgres.Run(ctx, "postgres:16-alpine",
		postgres.WithDatabase("stay_escrow"),
		postgres.WithUsername("postgres"),
		postgres.WithPassword("postgres"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(time.Minute),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := pg.Terminate(context.Background()); err != nil {
			t.Logf("terminate postgres: %v", err)
		}
	})

	dsn, err := pg.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := dbpg.New(dsn, nil, &dbpg.Options{MaxOpenConns: 4, MaxIdleConns: 2})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Master.Close() })

	require.NoError(t, goose.SetDialect("postgres"))
	goose.SetLogger(goose.NopLogger())
	require.NoError(t, goose.Up(db.Master, migrationsDir(t)))

	return db
}

func migrationsDir(t *testing.T) string {
	t.Helper()
	dir := "../../migrations"
	_, err := os.Stat(dir)
	require.NoError(t, err)
	return dir
}

func confirmation(txID string, amount int64, to common.Address) domain.PaymentConfirmation {
	return domain.PaymentConfirmation{TransactionID: txID, Amount: big.NewInt(amount), Recipient: to}
}
