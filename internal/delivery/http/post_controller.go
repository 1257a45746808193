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

type PostController struct {
	PostUsecase *usecase.PostUsecase
	Log         *zap.Logger
	Config      *koanf.Koanf
}

func NewPostController(postUsecase *usecase.PostUsecase, zap *zap.Logger, koanf *koanf.Koanf) *PostController {
	return &PostController{
		PostUsecase: postUsecase,
		Log:         zap,
		Config:      koanf,
	}
}

func (controller *PostController) List(ctx *fiber.Ctx) error {
	response, err := controller.PostUsecase.List(ctx.UserContext())
	if err != nil {
		return util.SendErrorResponse(ctx, middleware.GetLoggerFromContext(ctx, controller.Log), err)
	}

	return util.SendSuccessResponseWithData(ctx, fiber.StatusOK, response)
}

func (controller *PostController) Create(ctx *fiber.Ctx) error {
	log := middleware.GetLoggerFromContext(ctx, controller.Log)

	input, err := readInput(ctx)
	if err != nil {
		return util.SendErrorResponse(ctx, log, err)
	}

	response, err := controller.PostUsecase.Create(ctx.UserContext(), input)
	if err != nil {
		return util.SendErrorResponse(ctx, log, err)
	}

	log.Info("post created", zap.Int64("postId", response.Id))

	return util.SendSuccessResponseWithData(ctx, fiber.StatusCreated, response)
}

func (controller *PostController) Show(ctx *fiber.Ctx) error {
	response, err := controller.PostUsecase.Show(ctx.UserContext(), ctx.Params("id"))
	if err != nil {
		return util.SendErrorResponse(ctx, middleware.GetLoggerFromContext(ctx, controller.Log), err)
	}

	return util.SendSuccessResponseWithData(ctx, fiber.StatusOK, response)
}

func (controller *PostController) Update(ctx *fiber.Ctx) error {
	log := middleware.GetLoggerFromContext(ctx, controller.Log)

	input, err := readInput(ctx)
	if err != nil {
		return util.SendErrorResponse(ctx, log, err)
	}

	response, err := controller.PostUsecase.Update(ctx.UserContext(), ctx.Params("id"), input)
	if err != nil {
		return util.SendErrorResponse(ctx, log, err)
	}

	log.Info("post updated", zap.Int64("postId", response.Id))

	return util.SendSuccessResponseWithData(ctx, fiber.StatusOK, response)
}

func (controller *PostController) Destroy(ctx *fiber.Ctx) error {
	log := middleware.GetLoggerFromContext(ctx, controller.Log)

	err := controller.PostUsecase.Destroy(ctx.UserContext(), ctx.Params("id"))
	if err != nil {
		return util.SendErrorResponse(ctx, log, err)
	}

	log.Info("post deleted", zap.String("postId", ctx.Params("id")))

	return util.SendSuccessResponseMessage(ctx, constant.POST_DELETED_MESSAGE)
}
