package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// InsecureDefaultSecret is the documented development fallback. Deployments
// must override it via config or the JWT_SECRET env var.
const InsecureDefaultSecret = "your-secret-key-change-this-in-production"

type Server struct {
	Host       string
	Port       int
	Production bool
}

type Store struct {
	Driver string // "file" or "sqlite"
	Path   string
}

type Auth struct {
	JWTSecret  string
	JWTIssuer  string
	TokenTTL   time.Duration
	BcryptCost int
	LoginRate  float64
	LoginBurst int
}

type Denylist struct {
	Driver    string // "noop", "memory" or "redis"
	RedisAddr string
}

// SeedAdmin bootstraps the first admin account. Seeding is skipped when the
// password is empty or the email is already registered.
type SeedAdmin struct {
	Name     string
	Username string
	Email    string
	Password string
}

type Config struct {
	Server    Server
	Store     Store
	Auth      Auth
	Denylist  Denylist
	SeedAdmin SeedAdmin
	LogLevel  string
}

func newViper(path string) *viper.Viper {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.production", false)
	v.SetDefault("store.driver", "file")
	v.SetDefault("store.path", "data/db.json")
	v.SetDefault("auth.jwt_secret", InsecureDefaultSecret)
	v.SetDefault("auth.jwt_issuer", "portfolio-admin")
	v.SetDefault("auth.token_ttl", "168h")
	v.SetDefault("auth.bcrypt_cost", 10)
	v.SetDefault("auth.login_rate", 1.0)
	v.SetDefault("auth.login_burst", 5)
	v.SetDefault("denylist.driver", "noop")
	v.SetDefault("denylist.redis_addr", "127.0.0.1:6379")
	v.SetDefault("log.level", "info")

	// env overrides, .env loaded by the caller
	_ = v.BindEnv("auth.jwt_secret", "JWT_SECRET")
	_ = v.BindEnv("server.port", "PORT")
	_ = v.BindEnv("server.production", "PRODUCTION")
	_ = v.BindEnv("store.path", "DB_PATH")
	_ = v.BindEnv("denylist.redis_addr", "REDIS_ADDR")

	return v
}

func fromViper(v *viper.Viper) (*Config, error) {
	ttl := v.GetDuration("auth.token_ttl")
	if ttl <= 0 {
		return nil, fmt.Errorf("auth.token_ttl must be positive")
	}
	return &Config{
		Server: Server{
			Host:       v.GetString("server.host"),
			Port:       v.GetInt("server.port"),
			Production: v.GetBool("server.production"),
		},
		Store: Store{
			Driver: v.GetString("store.driver"),
			Path:   v.GetString("store.path"),
		},
		Auth: Auth{
			JWTSecret:  v.GetString("auth.jwt_secret"),
			JWTIssuer:  v.GetString("auth.jwt_issuer"),
			TokenTTL:   ttl,
			BcryptCost: v.GetInt("auth.bcrypt_cost"),
			LoginRate:  v.GetFloat64("auth.login_rate"),
			LoginBurst: v.GetInt("auth.login_burst"),
		},
		Denylist: Denylist{
			Driver:    v.GetString("denylist.driver"),
			RedisAddr: v.GetString("denylist.redis_addr"),
		},
		SeedAdmin: SeedAdmin{
			Name:     v.GetString("seed_admin.name"),
			Username: v.GetString("seed_admin.username"),
			Email:    v.GetString("seed_admin.email"),
			Password: v.GetString("seed_admin.password"),
		},
		LogLevel: v.GetString("log.level"),
	}, nil
}

// Load reads the YAML config at path. A missing file is fine: defaults plus
// env overrides apply.
func Load(path string) (*Config, error) {
	v := newViper(path)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !os.IsNotExist(err) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}
	return fromViper(v)
}

// Watch re-reads the file on change and hands the fresh config to onChange.
// Only settings the caller chooses to re-apply (log level) take effect live.
func Watch(path string, onChange func(*Config)) {
	v := newViper(path)
	if err := v.ReadInConfig(); err != nil {
		return
	}
	v.OnConfigChange(func(fsnotify.Event) {
		if cfg, err := fromViper(v); err == nil {
			onChange(cfg)
		}
	})
	v.WatchConfig()
}
