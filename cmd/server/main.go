package main

import (
	"ClientAdmin/internal/config"
	"ClientAdmin/internal/handlers"
	"ClientAdmin/internal/middleware"
	"ClientAdmin/internal/repo"
	"ClientAdmin/internal/service"
	"net/http"

	"go.uber.org/zap"
)

func main() {
	cfg := config.NewConfig()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	sugar := logger.Sugar()
	middleware.SetLogger(sugar)
	defer func() {
		if err := logger.Sync(); err != nil {
			sugar.Errorw("Failed to sync logger", "error", err)
		}
	}()

	db, err := repo.InitDB(cfg.DatabaseDSN, cfg.SQLitePath)
	if err != nil {
		sugar.Fatalw("failed to initialize database", "error", err)
	}

	usuarioRepo := repo.NewUsuarioRepository(db)
	clienteRepo := repo.NewClienteRepository(db)
	interesRepo := repo.NewInteresRepository(db)
	usuarioService := service.NewUsuarioService(usuarioRepo)

	h := handlers.NewHandler(usuarioService, clienteRepo, interesRepo, sugar, cfg)

	addr := cfg.BaseURL

	sugar.Infow("Starting server", "addr", addr)
	sugar.Infow("Config",
		"BaseURL", cfg.BaseURL,
		"EnableHTTPS", cfg.EnableHTTPS,
		"DatabaseDSN", cfg.DatabaseDSN != "",
		"SQLitePath", cfg.SQLitePath,
	)

	if err := http.ListenAndServe(addr, h.Router); err != nil {
		sugar.Fatalw("Server failed", "error", err)
	}
}
