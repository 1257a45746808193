package usecase

import (
	"context"
	"crypto/subtle"
	"errors"
	"strings"
	"time"

	"github.com/ferdian3456/postapi/internal/constant"
	"github.com/ferdian3456/postapi/internal/model"
	"github.com/ferdian3456/postapi/internal/util"
	"github.com/ferdian3456/postapi/internal/validator"

	"github.com/knadh/koanf/v2"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var (
	userRegisterSchema = validator.Schema{
		validator.On("name", validator.Required, validator.String, validator.Max(255)),
		validator.On("email", validator.Required, validator.String, validator.Email, validator.Max(255)),
		validator.On("password", validator.Required, validator.String, validator.Min(8), validator.Max(72)),
	}

	userLoginSchema = validator.Schema{
		validator.On("email", validator.Required, validator.String, validator.Email),
		validator.On("password", validator.Required, validator.String),
	}
)

type UserUsecase struct {
	UserStore  UserStore
	TokenStore TokenStore
	Log        *zap.Logger
	Config     *koanf.Koanf
}

func NewUserUsecase(userStore UserStore, tokenStore TokenStore, zap *zap.Logger, koanf *koanf.Koanf) *UserUsecase {
	return &UserUsecase{
		UserStore:  userStore,
		TokenStore: tokenStore,
		Log:        zap,
		Config:     koanf,
	}
}

func (usecase *UserUsecase) accessTokenTTL() time.Duration {
	ttl := usecase.Config.Duration("JWT_ACCESS_TOKEN_TTL")
	if ttl <= 0 {
		return util.AccessTokenDuration
	}

	return ttl
}

func (usecase *UserUsecase) Register(ctx context.Context, input validator.Input) (model.UserAuthResponse, error) {
	fields, err := validator.Validate(userRegisterSchema, input)
	if err != nil {
		return model.UserAuthResponse{}, err
	}

	payload := model.UserRegisterRequest{
		Name:     fields.String("name"),
		Email:    strings.ToLower(fields.String("email")),
		Password: fields.String("password"),
	}

	exists, err := usecase.UserStore.CheckEmailUnique(ctx, payload.Email)
	if err != nil {
		return model.UserAuthResponse{}, err
	}

	if exists == 1 {
		return model.UserAuthResponse{}, &model.ValidationError{
			Code:    constant.ERR_VALIDATION_CODE,
			Message: "The email has already been taken.",
			Param:   "email",
		}
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(payload.Password), bcrypt.DefaultCost)
	if err != nil {
		return model.UserAuthResponse{}, err
	}

	user := model.User{
		Name:     payload.Name,
		Email:    payload.Email,
		Password: string(hashedPassword),
	}

	err = usecase.UserStore.Insert(ctx, &user)
	if err != nil {
		return model.UserAuthResponse{}, err
	}

	return usecase.issueToken(ctx, user)
}

func (usecase *UserUsecase) Login(ctx context.Context, input validator.Input) (model.UserAuthResponse, error) {
	fields, err := validator.Validate(userLoginSchema, input)
	if err != nil {
		return model.UserAuthResponse{}, err
	}

	payload := model.UserLoginRequest{
		Email:    strings.ToLower(fields.String("email")),
		Password: fields.String("password"),
	}

	invalidCredentials := &model.ValidationError{
		Code:    constant.ERR_UNATHORIZED_ERROR,
		Message: constant.ERR_INVALID_CREDENTIALS_MESSAGE,
		Param:   "email",
	}

	user, err := usecase.UserStore.FindByEmail(ctx, payload.Email)
	if err != nil {
		var validationErr *model.ValidationError
		if errors.As(err, &validationErr) {
			return model.UserAuthResponse{}, invalidCredentials
		}
		return model.UserAuthResponse{}, err
	}

	err = bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(payload.Password))
	if err != nil {
		return model.UserAuthResponse{}, invalidCredentials
	}

	return usecase.issueToken(ctx, user)
}

// issueToken replaces any previous session of the user.
func (usecase *UserUsecase) issueToken(ctx context.Context, user model.User) (model.UserAuthResponse, error) {
	ttl := usecase.accessTokenTTL()

	token, err := util.GenerateTokenResponse(user.Id, usecase.Config.String("JWT_SECRET_KEY"), ttl)
	if err != nil {
		return model.UserAuthResponse{}, err
	}

	err = usecase.TokenStore.SetAccessToken(ctx, user.Id, token.AccessToken, ttl)
	if err != nil {
		return model.UserAuthResponse{}, err
	}

	return model.UserAuthResponse{
		User:  toUserResponse(user),
		Token: token,
	}, nil
}

func (usecase *UserUsecase) GetUserInfo(ctx context.Context, userId int64) (model.UserResponse, error) {
	user, err := usecase.UserStore.FindById(ctx, userId)
	if err != nil {
		return model.UserResponse{}, err
	}

	return toUserResponse(user), nil
}

// VerifyAccessToken accepts only the token most recently issued to the user.
func (usecase *UserUsecase) VerifyAccessToken(ctx context.Context, userId int64, accessToken string) error {
	hashedTokenFromCache, err := usecase.TokenStore.GetAccessToken(ctx, userId)
	if err != nil {
		return err
	}

	hashedTokenFromClient := util.HashToken(accessToken)

	if subtle.ConstantTimeCompare([]byte(hashedTokenFromClient), []byte(hashedTokenFromCache)) != 1 {
		return &model.ValidationError{
			Code:    constant.ERR_UNATHORIZED_ERROR,
			Message: "Authorization token is expired",
			Param:   "accessToken",
		}
	}

	return nil
}

func (usecase *UserUsecase) Logout(ctx context.Context, userId int64) error {
	err := usecase.TokenStore.RemoveAccessToken(ctx, userId)
	if err != nil {
		return err
	}

	return nil
}

func toUserResponse(user model.User) model.UserResponse {
	return model.UserResponse{
		Id:        user.Id,
		Name:      user.Name,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}
