package exception

import (
	"errors"
	"fmt"

	"github.com/ferdian3456/postapi/internal/constant"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func Recovery(log *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		defer func() {
			if r := recover(); r != nil {
				var errMsg string
				switch v := r.(type) {
				case error:
					errMsg = v.Error()
				case string:
					errMsg = v
				default:
					errMsg = fmt.Sprintf("%v", v)
				}

				log.Error("panic occurred and recovered", zap.String("error", errMsg), zap.String("path", c.Path()))

				_ = c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
					"message": constant.ERR_INTENRAL_SERVER_ERROR_MESSAGE,
					"code":    constant.ERR_INTERNAL_SERVER_ERROR_CODE,
				})
			}
		}()

		return c.Next()
	}
}

// ErrorHandler renders errors that escape the handlers, such as unknown
// routes or oversized bodies, in the same {"message"} shape.
func ErrorHandler(log *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		message := constant.ERR_INTENRAL_SERVER_ERROR_MESSAGE

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			code = fiberErr.Code
			message = fiberErr.Message
		}

		if code >= fiber.StatusInternalServerError {
			log.Error("unhandled error", zap.Error(err), zap.String("path", c.Path()))
			message = constant.ERR_INTENRAL_SERVER_ERROR_MESSAGE
		}

		return c.Status(code).JSON(fiber.Map{
			"message": message,
		})
	}
}
