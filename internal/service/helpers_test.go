package service

import (
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/wb-go/wbf/logger"
)

var (
	guest    = common.HexToAddress("0x00000000000000000000000000000000000000a1")
	host     = common.HexToAddress("0x00000000000000000000000000000000000000b2")
	stranger = common.HexToAddress("0x00000000000000000000000000000000000000c3")

	baseTime = time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func clockAt(t time.Time) func() time.Time {
	return func() time.Time { return t }
}
