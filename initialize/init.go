package initialize

import (
	"fmt"
	"net/http"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"portfolio-admin/app/controllers"
	"portfolio-admin/app/denylist"
	"portfolio-admin/app/middleware"
	"portfolio-admin/app/services"
	"portfolio-admin/app/session"
	"portfolio-admin/app/store"
	"portfolio-admin/app/store/gormstore"
	"portfolio-admin/app/token"
	"portfolio-admin/config"
	"portfolio-admin/global"
	"portfolio-admin/router"
)

type App struct {
	Cfg     *config.Config
	Store   store.Store
	Router  http.Handler
	Users   *services.UserService
	Content *services.ContentService
}

func openStore(cfg *config.Config) (store.Store, error) {
	switch cfg.Store.Driver {
	case "", "file":
		return store.NewFileStore(cfg.Store.Path)
	case "sqlite":
		return gormstore.Open(cfg.Store.Path)
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
	}
}

func buildDenylist(cfg *config.Config) (denylist.Denylist, error) {
	switch cfg.Denylist.Driver {
	case "", "noop":
		return denylist.Noop{}, nil
	case "memory":
		return denylist.NewMemory(), nil
	case "redis":
		client := redis.NewClient(&redis.Options{Addr: cfg.Denylist.RedisAddr})
		return denylist.NewRedis(client), nil
	default:
		return nil, fmt.Errorf("unknown denylist driver %q", cfg.Denylist.Driver)
	}
}

// Build wires the whole application from a config path. Callers get an App
// ready to serve; nothing here starts listening.
func Build(configPath string) (*App, error) {
	_ = godotenv.Load(".env")

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	global.Config = cfg
	SetLogLevel(cfg.LogLevel)
	config.Watch(configPath, func(fresh *config.Config) {
		SetLogLevel(fresh.LogLevel)
		global.Logger.Info().Str("level", fresh.LogLevel).Msg("log level reloaded")
	})

	if cfg.Auth.JWTSecret == config.InsecureDefaultSecret {
		global.Logger.Warn().Msg("auth.jwt_secret is the insecure default; set JWT_SECRET before deploying")
	}

	st, err := openStore(cfg)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	dl, err := buildDenylist(cfg)
	if err != nil {
		return nil, err
	}

	users := services.NewUserService(st, cfg.Auth.BcryptCost)
	content := services.NewContentService(st)

	if cfg.SeedAdmin.Password != "" && cfg.SeedAdmin.Email != "" {
		if err := users.EnsureAdmin(cfg.SeedAdmin.Name, cfg.SeedAdmin.Username, cfg.SeedAdmin.Email, cfg.SeedAdmin.Password); err != nil {
			global.Logger.Warn().Err(err).Msg("seed admin")
		}
	}

	signer := &token.Signer{
		Secret: []byte(cfg.Auth.JWTSecret),
		Issuer: cfg.Auth.JWTIssuer,
		TTL:    cfg.Auth.TokenTTL,
	}
	cookies := &session.Transport{Secure: cfg.Server.Production}
	auth := &middleware.Auth{Signer: signer, Cookies: cookies, Denylist: dl}
	loginLimiter := middleware.NewRateLimiter(cfg.Auth.LoginRate, cfg.Auth.LoginBurst)

	deps := router.Deps{
		Auth:         auth,
		LoginLimiter: loginLimiter,
		AuthCtrl:     controllers.NewAuthController(users, signer, cookies, dl),
		AdminCtrl:    controllers.NewAdminController(users),
		ProfileCtrl:  controllers.NewProfileController(users),
		ProjectCtrl:  controllers.NewProjectController(content),
		ClientCtrl:   controllers.NewClientController(content),
		TaskCtrl:     controllers.NewTaskController(content),
		SiteCtrl:     controllers.NewSiteProfileController(content),
		PageCtrl:     controllers.NewPageController(content),
	}

	h := middleware.Logging(router.New(deps))

	return &App{Cfg: cfg, Store: st, Router: h, Users: users, Content: content}, nil
}
