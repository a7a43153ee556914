package config

import (
	"errors"
	"flag"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

// ErrMissingAuthSecret возвращается Validate, если секрет подписи токенов не задан.
var ErrMissingAuthSecret = errors.New("AUTH_SECRET is required")

// ErrBadBcryptCost возвращается Validate при стоимости bcrypt вне допустимого диапазона.
var ErrBadBcryptCost = errors.New("BCRYPT_COST out of range")

type Config struct {
	// Server-side settings
	DatabaseDSN    string        `env:"DATABASE_URI"`
	AuthSecret     string        `env:"AUTH_SECRET"`
	TokenTTL       time.Duration `env:"TOKEN_TTL"`
	BcryptCost     int           `env:"BCRYPT_COST"`
	StoreTimeout   time.Duration `env:"STORE_TIMEOUT"`
	DBMaxOpenConns int           `env:"DB_MAX_OPEN_CONNS"`
	// раскрывать ли 403 вместо 404 при попытке изменить чужой ресурс
	RevealForeignOwnership bool `env:"REVEAL_FOREIGN_OWNERSHIP"`

	// Shared settings
	BaseURL     string `env:"BASE_URL"`
	EnableHTTPS bool   `env:"ENABLE_HTTPS"`

	// Client-side settings
	ServerURL string `env:"-"`
	TokenFile string `env:"TOKEN_FILE"`
	Version   bool   `env:"-"` // show client version and exit (flag only)
}

const (
	defaultTokenTTL       = 24 * time.Hour
	defaultStoreTimeout   = 5 * time.Second
	defaultDBMaxOpenConns = 10
	defaultBaseURL        = "localhost:8081"
	defaultDatabaseDSN    = "file:reviewboard.db"
)

// NewConfig собирает конфигурацию из .env, переменных окружения и флагов.
// Секрет подписи не получает значения по умолчанию: его наличие проверяет Validate.
func NewConfig() *Config {
	_ = godotenv.Load()

	// TOKEN_TTL=0 должен отключать срок жизни, поэтому отличаем "не задан" от нуля
	_, ttlSet := os.LookupEnv("TOKEN_TTL")

	cfg := &Config{}
	_ = env.Parse(cfg)

	// Server flags
	flag.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "строка подключения к БД (postgres DSN или file:path для SQLite)")
	flag.StringVar(&cfg.AuthSecret, "auth-secret", cfg.AuthSecret, "секрет для подписи JWT")
	flag.DurationVar(&cfg.TokenTTL, "token-ttl", cfg.TokenTTL, "время жизни токена (0: без срока)")
	flag.IntVar(&cfg.BcryptCost, "bcrypt-cost", cfg.BcryptCost, "стоимость bcrypt")
	flag.DurationVar(&cfg.StoreTimeout, "store-timeout", cfg.StoreTimeout, "таймаут одной операции с БД")
	flag.IntVar(&cfg.DBMaxOpenConns, "db-max-conns", cfg.DBMaxOpenConns, "размер пула соединений с БД")
	flag.BoolVar(&cfg.RevealForeignOwnership, "reveal-foreign", cfg.RevealForeignOwnership, "отвечать 403 вместо 404 на чужие ресурсы")
	// Shared/client flags
	flag.StringVar(&cfg.BaseURL, "base-url", cfg.BaseURL, "base URL of the server (host:port)")
	flag.BoolVar(&cfg.EnableHTTPS, "https", cfg.EnableHTTPS, "enable HTTPS (client: prefer https scheme for BaseURL)")
	flag.StringVar(&cfg.TokenFile, "token-file", cfg.TokenFile, "path to auth token file (client)")
	flag.BoolVar(&cfg.Version, "version", cfg.Version, "Show client version and exit")

	flag.Parse()

	flagTTL := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "token-ttl" {
			flagTTL = true
		}
	})

	// Defaults
	if cfg.DatabaseDSN == "" {
		cfg.DatabaseDSN = defaultDatabaseDSN
	}
	if cfg.TokenTTL == 0 && !ttlSet && !flagTTL {
		cfg.TokenTTL = defaultTokenTTL
	}
	if cfg.BcryptCost == 0 {
		cfg.BcryptCost = bcrypt.DefaultCost
	}
	if cfg.StoreTimeout <= 0 {
		cfg.StoreTimeout = defaultStoreTimeout
	}
	if cfg.DBMaxOpenConns <= 0 {
		cfg.DBMaxOpenConns = defaultDBMaxOpenConns
	}
	// validate BaseURL: must be in "address:port" (no scheme, no path). Otherwise use default.
	hostPortRe := regexp.MustCompile(`^[A-Za-z0-9\.\-]+:\d{1,5}$`)
	if !hostPortRe.MatchString(cfg.BaseURL) {
		cfg.BaseURL = defaultBaseURL
	}

	if cfg.EnableHTTPS {
		cfg.ServerURL = "https://" + cfg.BaseURL
	} else {
		cfg.ServerURL = "http://" + cfg.BaseURL
	}

	if cfg.TokenFile == "" {
		if dir, err := os.UserConfigDir(); err == nil {
			cfg.TokenFile = filepath.Join(dir, "ReviewBoard", "auth_token")
		}
	}

	return cfg
}

// Validate проверяет серверные настройки. Вызывается сервером и seed до подключения к БД.
func (c *Config) Validate() error {
	if c.AuthSecret == "" {
		return ErrMissingAuthSecret
	}
	if c.BcryptCost < bcrypt.MinCost || c.BcryptCost > bcrypt.MaxCost {
		return ErrBadBcryptCost
	}
	return nil
}
