package middleware

import (
	"errors"

	"github.com/ferdian3456/postapi/internal/constant"
	"github.com/ferdian3456/postapi/internal/model"
	"github.com/ferdian3456/postapi/internal/usecase"
	"github.com/ferdian3456/postapi/internal/util"

	"github.com/gofiber/fiber/v2"
	"github.com/knadh/koanf/v2"
	"go.uber.org/zap"
)

type AuthMiddleware struct {
	Log         *zap.Logger
	Config      *koanf.Koanf
	UserUsecase *usecase.UserUsecase
}

func NewAuthMiddleware(zap *zap.Logger, koanf *koanf.Koanf, userUsecase *usecase.UserUsecase) *AuthMiddleware {
	return &AuthMiddleware{
		Log:         zap,
		Config:      koanf,
		UserUsecase: userUsecase,
	}
}

var errUnauthenticated = &model.ValidationError{
	Code:    constant.ERR_UNATHORIZED_ERROR,
	Message: constant.ERR_UNAUTHENTICATED_MESSAGE,
	Param:   "accessToken",
}

// ProtectedRoute lets the request through only with a signed bearer token
// that is still the live session of its user.
func (middleware *AuthMiddleware) ProtectedRoute() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		var validationErr *model.ValidationError

		accessToken := ctx.Get(fiber.HeaderAuthorization)
		tokenString, userId, err := util.ValidateAccessToken(accessToken, middleware.Log, middleware.Config.String("JWT_SECRET_KEY"))
		if err != nil {
			if errors.As(err, &validationErr) {
				middleware.Log.Debug("request rejected", zap.String("reason", validationErr.Message))
				return util.SendErrorResponseUnauthorized(ctx, errUnauthenticated)
			}

			return util.SendErrorResponseInternalServer(ctx, middleware.Log, err)
		}

		err = middleware.UserUsecase.VerifyAccessToken(ctx.UserContext(), userId, tokenString)
		if err != nil {
			if errors.As(err, &validationErr) {
				middleware.Log.Debug("request rejected", zap.String("reason", validationErr.Message), zap.Int64("userId", userId))
				return util.SendErrorResponseUnauthorized(ctx, errUnauthenticated)
			}

			return util.SendErrorResponseInternalServer(ctx, middleware.Log, err)
		}

		ctx.Locals("userId", userId)

		return ctx.Next()
	}
}
