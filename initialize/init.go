package initialize

import (
	"fmt"
	"net/http"

	"stockguard/app/controllers"
	"stockguard/app/db"
	jwtutil "stockguard/app/jwt"
	"stockguard/app/middleware"
	"stockguard/app/models"
	"stockguard/app/repo"
	"stockguard/app/services"
	"stockguard/app/session"
	"stockguard/app/socket"
	"stockguard/config"
	"stockguard/global"
	"stockguard/router"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type App struct {
	Cfg    *config.Config
	DB     *gorm.DB
	Router http.Handler
	Hub    *socket.Hub
}

func Build(configPath string) (*App, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	global.Config = cfg
	SetupLogger(cfg.Env)

	gdb, err := db.Connect(db.Config{Host: cfg.DB.Host, Port: cfg.DB.Port, User: cfg.DB.User, Password: cfg.DB.Pass, DBName: cfg.DB.Name})
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}
	global.Mdb = gdb

	if cfg.Redis.Addr != "" {
		global.Rdb = redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr, Password: cfg.Redis.Pass})
	}

	if err := gdb.AutoMigrate(&models.User{}, &models.InventoryItem{}, &models.Tool{}, &models.Task{}); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	hub := socket.NewHub()
	go hub.Run()

	userRepo := repo.NewUserRepository(gdb)
	userSvc := services.NewUserService(userRepo)
	if err := userSvc.EnsureAdmin("admin", "admin123"); err != nil {
		global.Logger.Warn().Err(err).Msg("admin seed failed")
	}
	inventorySvc := services.NewInventoryService(repo.NewInventoryRepository(gdb), hub)
	toolSvc := services.NewToolService(repo.NewToolRepository(gdb), hub)
	taskSvc := services.NewTaskService(repo.NewTaskRepository(gdb), hub)

	signer := &jwtutil.Signer{Secret: []byte(cfg.JWT.Secret), Issuer: cfg.JWT.Issuer, ExpHours: cfg.JWT.ExpHours}
	sessions := session.NewStore(global.Rdb)
	mw := &middleware.Auth{Signer: signer, Sessions: sessions}

	h := router.New(router.Controllers{
		HTTP:      controllers.NewHTTPController(),
		Auth:      controllers.NewAuthController(userSvc, signer, sessions),
		Admin:     controllers.NewAdminController(userSvc),
		Inventory: controllers.NewInventoryController(inventorySvc),
		Tools:     controllers.NewToolController(toolSvc),
		Tasks:     controllers.NewTaskController(taskSvc),
		Socket:    controllers.NewSocketController(hub, signer, sessions),
	}, mw)

	h = middleware.BodyLimit(cfg.HTTP.BodyLimit, h)
	h = middleware.CORS(cfg.CORSOrigins, h)
	h = middleware.Logging(h)

	return &App{Cfg: cfg, DB: gdb, Router: h, Hub: hub}, nil
}
