package util

import (
	"fmt"
	"log"
	"net"
	"sync"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

//nolint:gochecknoglobals // here its ok
var once sync.Once

func loadDotEnv() {
	once.Do(func() {
		if err := godotenv.Load(".env"); err != nil {
			log.Printf("Warning: could not load .env file: %v", err)
		}
	})
}

const (
	StorageDriverPostgres = "postgres"
	StorageDriverPgx      = "pgx"
	StorageDriverMemory   = "memory"

	TokenPartsExpected   = 2
	RawTokenLength       = 32
	EmergencyTokenLength = 32
	JWTLeeWay            = 5 * time.Second
)

type ServerConfig struct {
	ServerAddr      string        `env:"SERVER_ADDRESS" env-default:"localhost:8080"`
	WriteTimeout    time.Duration `env:"WRITE_TIMEOUT" env-default:"10s"`
	ReadTimeout     time.Duration `env:"READ_TIMEOUT" env-default:"10s"`
	IdleTimeout     time.Duration `env:"IDLE_TIMEOUT" env-default:"30s"`
	GracefulTimeout time.Duration `env:"GRACEFUL_TIMEOUT" env-default:"5s"`
	// TrustedProxies lists the CIDR ranges allowed to set X-Forwarded-For.
	// Empty means the server faces clients directly.
	TrustedProxies []string `env:"TRUSTED_PROXIES" env-separator:","`
}

func (c ServerConfig) TrustedProxyRanges() ([]*net.IPNet, error) {
	ranges := make([]*net.IPNet, 0, len(c.TrustedProxies))
	for _, cidr := range c.TrustedProxies {
		_, ipNet, err := net.ParseCIDR(cidr)
		if err != nil {
			return nil, fmt.Errorf("invalid TRUSTED_PROXIES entry %q: %w", cidr, err)
		}
		ranges = append(ranges, ipNet)
	}
	return ranges, nil
}

type TokenConfig struct {
	JwtSecret  string        `env:"JWT_SECRET" env-required:"true"`
	AccessTTL  time.Duration `env:"ACCESS_TOKEN_TTL" env-default:"15m"`
	RefreshTTL time.Duration `env:"REFRESH_TOKEN_TTL" env-default:"720h"`
}

func (c TokenConfig) SecretKey() []byte { return []byte(c.JwtSecret) }

type RateLimiterConfig struct {
	Limit     int           `env:"RATE_LIMIT_LIMIT" env-default:"30"`
	Interval  time.Duration `env:"RATE_LIMIT_INTERVAL" env-default:"1m"`
	BlockTime time.Duration `env:"RATE_LIMIT_BLOCK_TIME" env-default:"5m"`
}

type DBConfig struct {
	Driver string `env:"STORAGE_DRIVER" env-default:"postgres"`
	DSN    string `env:"DATABASE_URL"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR" env-required:"true"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB" env-default:"0"`
}

type Config struct {
	Server      ServerConfig
	Token       TokenConfig
	RateLimiter RateLimiterConfig
	DB          DBConfig
	Redis       RedisConfig
	WebhookURL  string `env:"WEBHOOK_URL"`
	LogLevel    string `env:"LOG_LEVEL" env-default:"info"`
}

// LoadConfig reads .env (if present) and then the process environment.
func LoadConfig() (*Config, error) {
	loadDotEnv()

	cfg := &Config{}
	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, fmt.Errorf("read env: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.DB.Driver {
	case StorageDriverPostgres, StorageDriverPgx:
		if c.DB.DSN == "" {
			return fmt.Errorf("DATABASE_URL is not set for driver %q", c.DB.Driver)
		}
	case StorageDriverMemory:
	default:
		return fmt.Errorf("unknown STORAGE_DRIVER %q", c.DB.Driver)
	}
	if c.Token.AccessTTL <= 0 || c.Token.RefreshTTL <= 0 {
		return fmt.Errorf("token ttl must be positive")
	}
	if c.RateLimiter.Limit <= 0 {
		return fmt.Errorf("RATE_LIMIT_LIMIT must be positive")
	}
	if _, err := c.Server.TrustedProxyRanges(); err != nil {
		return err
	}
	return nil
}

// ClientConfig configures the medcardctl command line client.
type ClientConfig struct {
	APIURL          string        `env:"MEDCARD_API_URL" env-default:"http://localhost:8080"`
	PublicURL       string        `env:"MEDCARD_PUBLIC_URL" env-default:"http://localhost:5173"`
	CredentialsFile string        `env:"MEDCARD_CREDENTIALS_FILE" env-default:".medcard/credentials.json"`
	Timeout         time.Duration `env:"MEDCARD_TIMEOUT" env-default:"15s"`
	LogLevel        string        `env:"LOG_LEVEL" env-default:"warn"`
}

func LoadClientConfig() (*ClientConfig, error) {
	loadDotEnv()

	cfg := &ClientConfig{}
	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, fmt.Errorf("read env: %w", err)
	}
	return cfg, nil
}
