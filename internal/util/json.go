package util

import (
	"errors"

	"github.com/ferdian3456/postapi/internal/constant"
	"github.com/ferdian3456/postapi/internal/model"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func SendSuccessResponseWithData(ctx *fiber.Ctx, status int, data interface{}) error {
	err := ctx.Status(status).JSON(data)
	if err != nil {
		return err
	}

	return nil
}

func SendSuccessResponseMessage(ctx *fiber.Ctx, message string) error {
	err := ctx.Status(fiber.StatusOK).JSON(model.MessageResponse{
		Message: message,
	})
	if err != nil {
		return err
	}

	return nil
}

// SendErrorResponse picks the status code from the error type: validation
// failures are 422, ValidationError codes map to 404/401, anything else is 500.
func SendErrorResponse(ctx *fiber.Ctx, log *zap.Logger, error error) error {
	var validationErrs *model.ValidationErrors
	var validationErr *model.ValidationError

	if errors.As(error, &validationErrs) {
		return SendErrorResponseValidation(ctx, validationErrs)
	}

	if errors.As(error, &validationErr) {
		switch validationErr.Code {
		case constant.ERR_NOT_FOUND_ERROR:
			return SendErrorResponseNotFound(ctx, validationErr)
		case constant.ERR_UNATHORIZED_ERROR:
			return SendErrorResponseUnauthorized(ctx, validationErr)
		default:
			return SendErrorResponseValidation(ctx, &model.ValidationErrors{
				Fields: []*model.ValidationError{validationErr},
			})
		}
	}

	return SendErrorResponseInternalServer(ctx, log, error)
}

func SendErrorResponseValidation(ctx *fiber.Ctx, error *model.ValidationErrors) error {
	err := ctx.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
		"message": error.Error(),
		"errors":  error.Messages(),
	})
	if err != nil {
		return err
	}

	return nil
}

func SendErrorResponseNotFound(ctx *fiber.Ctx, error error) error {
	err := ctx.Status(fiber.StatusNotFound).JSON(model.MessageResponse{
		Message: error.Error(),
	})
	if err != nil {
		return err
	}

	return nil
}

func SendErrorResponseUnauthorized(ctx *fiber.Ctx, error error) error {
	err := ctx.Status(fiber.StatusUnauthorized).JSON(model.MessageResponse{
		Message: error.Error(),
	})
	if err != nil {
		return err
	}

	return nil
}

func SendErrorResponseInternalServer(ctx *fiber.Ctx, log *zap.Logger, error error) error {
	log.Error("internal server error occured", zap.Error(error), zap.String("path", ctx.Path()))
	err := ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"message": constant.ERR_INTENRAL_SERVER_ERROR_MESSAGE,
		"code":    constant.ERR_INTERNAL_SERVER_ERROR_CODE,
	})
	if err != nil {
		return err
	}

	return nil
}
