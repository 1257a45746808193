package http

import (
	"github.com/ferdian3456/postapi/internal/constant"
	"github.com/ferdian3456/postapi/internal/middleware"
	"github.com/ferdian3456/postapi/internal/usecase"
	"github.com/ferdian3456/postapi/internal/util"

	"github.com/gofiber/fiber/v2"
	"github.com/knadh/koanf/v2"
	"go.uber.org/zap"
)

type UserController struct {
	UserUsecase *usecase.UserUsecase
	Log         *zap.Logger
	Config      *koanf.Koanf
}

func NewUserController(userUsecase *usecase.UserUsecase, zap *zap.Logger, koanf *koanf.Koanf) *UserController {
	return &UserController{
		UserUsecase: userUsecase,
		Log:         zap,
		Config:      koanf,
	}
}

func (controller UserController) Register(ctx *fiber.Ctx) error {
	log := middleware.GetLoggerFromContext(ctx, controller.Log)

	input, err := readInput(ctx)
	if err != nil {
		return util.SendErrorResponse(ctx, log, err)
	}

	response, err := controller.UserUsecase.Register(ctx.UserContext(), input)
	if err != nil {
		return util.SendErrorResponse(ctx, log, err)
	}

	log.Info("user registered", zap.Int64("userId", response.User.Id))

	return util.SendSuccessResponseWithData(ctx, fiber.StatusCreated, response)
}

func (controller UserController) Login(ctx *fiber.Ctx) error {
	log := middleware.GetLoggerFromContext(ctx, controller.Log)

	input, err := readInput(ctx)
	if err != nil {
		return util.SendErrorResponse(ctx, log, err)
	}

	response, err := controller.UserUsecase.Login(ctx.UserContext(), input)
	if err != nil {
		return util.SendErrorResponse(ctx, log, err)
	}

	return util.SendSuccessResponseWithData(ctx, fiber.StatusOK, response)
}

func (controller UserController) Me(ctx *fiber.Ctx) error {
	userId := ctx.Locals("userId").(int64)

	response, err := controller.UserUsecase.GetUserInfo(ctx.UserContext(), userId)
	if err != nil {
		return util.SendErrorResponse(ctx, middleware.GetLoggerFromContext(ctx, controller.Log), err)
	}

	return util.SendSuccessResponseWithData(ctx, fiber.StatusOK, response)
}

func (controller UserController) Logout(ctx *fiber.Ctx) error {
	userId := ctx.Locals("userId").(int64)

	err := controller.UserUsecase.Logout(ctx.UserContext(), userId)
	if err != nil {
		return util.SendErrorResponseInternalServer(ctx, middleware.GetLoggerFromContext(ctx, controller.Log), err)
	}

	return util.SendSuccessResponseMessage(ctx, constant.LOGOUT_MESSAGE)
}
