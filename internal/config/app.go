package config

import (
	http "github.com/ferdian3456/postapi/internal/delivery/http"
	"github.com/ferdian3456/postapi/internal/delivery/http/middleware"
	"github.com/ferdian3456/postapi/internal/delivery/http/route"
	"github.com/ferdian3456/postapi/internal/storage"
	"github.com/ferdian3456/postapi/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/knadh/koanf/v2"
	"go.uber.org/zap"
)

type ServerConfig struct {
	Router     *fiber.App
	PostStore  usecase.PostStore
	UserStore  usecase.UserStore
	TokenStore usecase.TokenStore
	Disk       storage.Disk
	Log        *zap.Logger
	Config     *koanf.Koanf
}

func Server(config *ServerConfig) {
	postUsecase := usecase.NewPostUsecase(config.PostStore, config.Disk, config.Log, config.Config)
	postController := http.NewPostController(postUsecase, config.Log, config.Config)

	userUsecase := usecase.NewUserUsecase(config.UserStore, config.TokenStore, config.Log, config.Config)
	userController := http.NewUserController(userUsecase, config.Log, config.Config)

	storageController := http.NewStorageController(config.Disk, config.Log)

	authMiddleware := middleware.NewAuthMiddleware(config.Log, config.Config, userUsecase)

	routeConfig := route.RouteConfig{
		App:               config.Router,
		UserController:    userController,
		PostController:    postController,
		StorageController: storageController,
		AuthMiddleware:    authMiddleware,
	}

	routeConfig.SetupRoute()
}
