package http

import (
	"errors"

	"github.com/ferdian3456/postapi/internal/middleware"
	"github.com/ferdian3456/postapi/internal/model"
	"github.com/ferdian3456/postapi/internal/storage"
	"github.com/ferdian3456/postapi/internal/util"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// StorageController serves the public disk under /storage, whatever driver backs it.
type StorageController struct {
	Disk storage.Disk
	Log  *zap.Logger
}

func NewStorageController(disk storage.Disk, zap *zap.Logger) *StorageController {
	return &StorageController{
		Disk: disk,
		Log:  zap,
	}
}

func (controller *StorageController) Serve(ctx *fiber.Ctx) error {
	object, err := controller.Disk.Open(ctx.UserContext(), ctx.Params("*"))
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotFound) || errors.Is(err, storage.ErrInvalidKey) {
			return util.SendErrorResponseNotFound(ctx, &model.ValidationError{
				Message: "File not found",
				Param:   "path",
			})
		}

		return util.SendErrorResponseInternalServer(ctx, middleware.GetLoggerFromContext(ctx, controller.Log), err)
	}

	ctx.Set(fiber.HeaderContentType, object.ContentType)
	ctx.Set(fiber.HeaderCacheControl, "public, max-age=31536000, immutable")

	// fasthttp closes the body once it has been written out
	return ctx.SendStream(object.Body, int(object.Size))
}
