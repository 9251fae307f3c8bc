package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	cleanenvport "github.com/wb-go/wbf/config/cleanenv-port"
	"github.com/wb-go/wbf/logger"
)

type Config struct {
	Server     ServerConfig     `yaml:"server"     validate:"required"`
	Logger     LoggerConfig     `yaml:"logger"     validate:"required"`
	Gin        GinConfig        `yaml:"gin"        validate:"required"`
	Postgres   PostgresConfig   `yaml:"postgres"   validate:"required"`
	Scheduler  SchedulerConfig  `yaml:"scheduler"  validate:"required"`
	Ledger     LedgerConfig     `yaml:"ledger"     validate:"required"`
	Auth       AuthConfig       `yaml:"auth"       validate:"required"`
	Personhood PersonhoodConfig `yaml:"personhood"`
	Payment    PaymentConfig    `yaml:"payment"`
	IPFS       IPFSConfig       `yaml:"ipfs"`
	Telegram   TelegramConfig   `yaml:"telegram"`
}

type ServerConfig struct {
	Addr         string        `yaml:"addr"          env:"SERVER_ADDR"          env-default:":8080" validate:"required"`
	ReadTimeout  time.Duration `yaml:"read_timeout"  env:"SERVER_READ_TIMEOUT"  env-default:"10s"   validate:"gt=0"`
	WriteTimeout time.Duration `yaml:"write_timeout" env:"SERVER_WRITE_TIMEOUT" env-default:"10s"   validate:"gt=0"`
	IdleTimeout  time.Duration `yaml:"idle_timeout"  env:"SERVER_IDLE_TIMEOUT"  env-default:"60s"   validate:"gt=0"`
}

// LogLevel преобразует строковый уровень в logger.Level из wbf.
func (c LoggerConfig) LogLevel() logger.Level {
	switch c.Level {
	case "debug":
		return logger.DebugLevel
	case "warn":
		return logger.WarnLevel
	case "error":
		return logger.ErrorLevel
	default:
		return logger.InfoLevel
	}
}

// LogEngine преобразует строковый движок в logger.Engine из wbf.
func (c LoggerConfig) LogEngine() logger.Engine {
	return logger.Engine(c.Engine)
}

type LoggerConfig struct {
	Engine string `yaml:"engine" env:"LOG_ENGINE" env-default:"slog"  validate:"required,oneof=slog zap zerolog logrus"`
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"  validate:"required,oneof=debug info warn error"`
}

type GinConfig struct {
	Mode string `yaml:"mode" env:"GIN_MODE" env-default:"debug" validate:"required,oneof=debug release test"`
}

type PostgresConfig struct {
	Host            string        `yaml:"host"              env:"DB_HOST"              env-default:"localhost"    validate:"required"`
	Port            int           `yaml:"port"              env:"DB_PORT"              env-default:"5432"         validate:"required,min=1,max=65535"`
	User            string        `yaml:"user"              env:"DB_USER"              env-default:"postgres"     validate:"required"`
	Password        string        `yaml:"password"          env:"DB_PASSWORD"          env-default:"postgres"     validate:"required"`
	Database        string        `yaml:"database"          env:"DB_NAME"              env-default:"stay_escrow"  validate:"required"`
	SSLMode         string        `yaml:"sslmode"           env:"DB_SSLMODE"           env-default:"disable"      validate:"required,oneof=disable require verify-ca verify-full"`
	MaxOpenConns    int           `yaml:"max_open_conns"    env:"DB_MAX_OPEN_CONNS"    env-default:"10"           validate:"min=1"`
	MaxIdleConns    int           `yaml:"max_idle_conns"    env:"DB_MAX_IDLE_CONNS"    env-default:"5"            validate:"min=1"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime" env:"DB_CONN_MAX_LIFETIME" env-default:"5m"           validate:"gt=0"`
}

func (p *PostgresConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.Database, p.SSLMode,
	)
}

type SchedulerConfig struct {
	Interval time.Duration `yaml:"interval" env:"SCHEDULER_INTERVAL" env-default:"30s" validate:"required,gt=0"`
}

type LedgerConfig struct {
	RPCURL           string        `yaml:"rpc_url"           env:"LEDGER_RPC_URL"           validate:"required,url"`
	ChainID          int64         `yaml:"chain_id"          env:"LEDGER_CHAIN_ID"          env-default:"480"  validate:"required,gt=0"`
	RelayerKey       string        `yaml:"relayer_key"       env:"LEDGER_RELAYER_KEY"       validate:"required"`
	PropertyContract string        `yaml:"property_contract" env:"LEDGER_PROPERTY_CONTRACT" validate:"required,eth_addr"`
	BookingContract  string        `yaml:"booking_contract"  env:"LEDGER_BOOKING_CONTRACT"  validate:"required,eth_addr"`
	StakingContract  string        `yaml:"staking_contract"  env:"LEDGER_STAKING_CONTRACT"  validate:"required,eth_addr"`
	DisputeContract  string        `yaml:"dispute_contract"  env:"LEDGER_DISPUTE_CONTRACT"  validate:"required,eth_addr"`
	RequireStake     bool          `yaml:"require_stake"     env:"LEDGER_REQUIRE_STAKE"     env-default:"false"`
	WaitTimeout      time.Duration `yaml:"wait_timeout"      env:"LEDGER_WAIT_TIMEOUT"      env-default:"2m"   validate:"gt=0"`
	WaitAttempts     int           `yaml:"wait_attempts"     env:"LEDGER_WAIT_ATTEMPTS"     env-default:"12"   validate:"min=1,max=100"`
	WaitDelay        time.Duration `yaml:"wait_delay"        env:"LEDGER_WAIT_DELAY"        env-default:"1s"   validate:"gt=0"`
	WaitMaxDelay     time.Duration `yaml:"wait_max_delay"    env:"LEDGER_WAIT_MAX_DELAY"    env-default:"15s"  validate:"gt=0"`
	WaitFactor       float64       `yaml:"wait_factor"       env:"LEDGER_WAIT_FACTOR"       env-default:"2"    validate:"gte=1"`
}

type AuthConfig struct {
	SIWEDomain    string        `yaml:"siwe_domain"    env:"AUTH_SIWE_DOMAIN"    env-default:""`
	NonceTTL      time.Duration `yaml:"nonce_ttl"      env:"AUTH_NONCE_TTL"      env-default:"5m"  validate:"gt=0"`
	SessionSecret string        `yaml:"session_secret" env:"AUTH_SESSION_SECRET" validate:"required,min=32"`
	SessionTTL    time.Duration `yaml:"session_ttl"    env:"AUTH_SESSION_TTL"    env-default:"24h" validate:"gt=0"`
	PaymentTTL    time.Duration `yaml:"payment_ttl"    env:"AUTH_PAYMENT_TTL"    env-default:"5m"  validate:"gt=0"`
	CookieDomain  string        `yaml:"cookie_domain"  env:"AUTH_COOKIE_DOMAIN"  env-default:""`
	CookieSecure  bool          `yaml:"cookie_secure"  env:"AUTH_COOKIE_SECURE"  env-default:"true"`
}

type PersonhoodConfig struct {
	BaseURL string        `yaml:"base_url" env:"PERSONHOOD_BASE_URL" env-default:"https://developer.worldcoin.org"`
	AppID   string        `yaml:"app_id"   env:"PERSONHOOD_APP_ID"`
	Action  string        `yaml:"action"   env:"PERSONHOOD_ACTION"   env-default:"list-property"`
	Timeout time.Duration `yaml:"timeout"  env:"PERSONHOOD_TIMEOUT"  env-default:"15s"`
}

// PaymentConfig keeps the payment protocol credentials server side. With an
// empty APIKey every confirmation is rejected.
type PaymentConfig struct {
	BaseURL string        `yaml:"base_url" env:"PAYMENT_BASE_URL" env-default:"https://developer.worldcoin.org"`
	AppID   string        `yaml:"app_id"   env:"PAYMENT_APP_ID"`
	APIKey  string        `yaml:"api_key"  env:"PAYMENT_API_KEY"`
	Timeout time.Duration `yaml:"timeout"  env:"PAYMENT_TIMEOUT"  env-default:"15s"`
}

type IPFSConfig struct {
	APIURL         string        `yaml:"api_url"          env:"IPFS_API_URL"          env-default:"http://127.0.0.1:5001"`
	Timeout        time.Duration `yaml:"timeout"          env:"IPFS_TIMEOUT"          env-default:"30s"`
	MaxUploadBytes int64         `yaml:"max_upload_bytes" env:"IPFS_MAX_UPLOAD_BYTES" env-default:"5242880" validate:"gt=0"`
}

type TelegramConfig struct {
	BotToken string `yaml:"bot_token" env:"TELEGRAM_BOT_TOKEN" env-default:""`
	ChatID   int64  `yaml:"chat_id"   env:"TELEGRAM_CHAT_ID"   env-default:"0"`
}

// MustLoad reads the config, letting a local .env file seed the environment.
// Variables already set in the environment win over the file.
func MustLoad() *Config {
	_ = godotenv.Load()

	var cfg Config
	if err := cleanenvport.Load(&cfg); err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return &cfg
}
