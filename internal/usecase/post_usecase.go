package usecase

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"strconv"
	"strings"

	"github.com/ferdian3456/postapi/internal/constant"
	"github.com/ferdian3456/postapi/internal/model"
	"github.com/ferdian3456/postapi/internal/observability"
	"github.com/ferdian3456/postapi/internal/storage"
	"github.com/ferdian3456/postapi/internal/util"
	"github.com/ferdian3456/postapi/internal/validator"

	"github.com/knadh/koanf/v2"
	"go.uber.org/zap"
)

var (
	postCreateSchema = validator.Schema{
		validator.On("title", validator.Required, validator.String, validator.Max(constant.POST_FIELD_MAX_LENGTH)),
		validator.On("author", validator.Required, validator.String, validator.Max(constant.POST_FIELD_MAX_LENGTH)),
		validator.On("article", validator.Required),
		validator.On("image", validator.Nullable, validator.Image, validator.Mimes("jpg", "jpeg", "png"), validator.Max(constant.POST_IMAGE_MAX_SIZE_KB)),
	}

	postUpdateSchema = validator.Schema{
		validator.On("title", validator.String, validator.Max(constant.POST_FIELD_MAX_LENGTH)),
		validator.On("author", validator.String, validator.Max(constant.POST_FIELD_MAX_LENGTH)),
		validator.On("article", validator.Nullable),
		validator.On("image", validator.Nullable, validator.Image, validator.Mimes("jpg", "jpeg", "png"), validator.Max(constant.POST_IMAGE_MAX_SIZE_KB)),
	}
)

type PostUsecase struct {
	PostStore PostStore
	Disk      storage.Disk
	Log       *zap.Logger
	Config    *koanf.Koanf
}

func NewPostUsecase(postStore PostStore, disk storage.Disk, zap *zap.Logger, koanf *koanf.Koanf) *PostUsecase {
	return &PostUsecase{
		PostStore: postStore,
		Disk:      disk,
		Log:       zap,
		Config:    koanf,
	}
}

// ParsePostId maps anything that is not a positive integer to "Post not found".
func ParsePostId(idParam string) (int64, error) {
	id, err := strconv.ParseInt(idParam, 10, 64)
	if err != nil || id <= 0 {
		return 0, &model.ValidationError{
			Code:    constant.ERR_NOT_FOUND_ERROR,
			Message: constant.ERR_POST_NOT_FOUND_MESSAGE,
			Param:   "id",
		}
	}

	return id, nil
}

func (usecase *PostUsecase) List(ctx context.Context) ([]model.PostResponse, error) {
	posts, err := usecase.PostStore.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	response := make([]model.PostResponse, 0, len(posts))
	for _, post := range posts {
		response = append(response, usecase.toResponse(post))
	}

	return response, nil
}

func (usecase *PostUsecase) Create(ctx context.Context, input validator.Input) (model.PostResponse, error) {
	fields, err := validator.Validate(postCreateSchema, input)
	if err != nil {
		return model.PostResponse{}, err
	}

	payload := model.PostCreateRequest{
		Title:   fields.String("title"),
		Author:  fields.String("author"),
		Article: fields.String("article"),
		Image:   fields.File("image"),
	}

	post := model.Post{
		Title:   payload.Title,
		Author:  payload.Author,
		Article: payload.Article,
	}

	if payload.Image != nil {
		imageInfo, _ := fields.Image("image")
		key, err := usecase.storeImage(ctx, payload.Image, imageInfo)
		if err != nil {
			return model.PostResponse{}, err
		}
		post.Image = &key
	}

	err = usecase.PostStore.Insert(ctx, &post)
	if err != nil {
		if post.Image != nil {
			usecase.discardImage(ctx, *post.Image, "failed to remove image of post that could not be created")
		}
		return model.PostResponse{}, err
	}

	return usecase.toResponse(post), nil
}

func (usecase *PostUsecase) Show(ctx context.Context, idParam string) (model.PostResponse, error) {
	id, err := ParsePostId(idParam)
	if err != nil {
		return model.PostResponse{}, err
	}

	post, err := usecase.PostStore.FindById(ctx, id)
	if err != nil {
		return model.PostResponse{}, err
	}

	return usecase.toResponse(post), nil
}

func (usecase *PostUsecase) Update(ctx context.Context, idParam string, input validator.Input) (model.PostResponse, error) {
	id, err := ParsePostId(idParam)
	if err != nil {
		return model.PostResponse{}, err
	}

	post, err := usecase.PostStore.FindById(ctx, id)
	if err != nil {
		return model.PostResponse{}, err
	}

	fields, err := validator.Validate(postUpdateSchema, input)
	if err != nil {
		return model.PostResponse{}, err
	}

	payload := model.PostUpdateRequest{
		Title:   fields.StringPtr("title"),
		Author:  fields.StringPtr("author"),
		Article: fields.StringPtr("article"),
		Image:   fields.File("image"),
	}

	if payload.Title != nil {
		post.Title = *payload.Title
	}
	if payload.Author != nil {
		post.Author = *payload.Author
	}
	if payload.Article != nil {
		post.Article = *payload.Article
	}

	oldImage := post.Image
	if payload.Image != nil {
		imageInfo, _ := fields.Image("image")
		key, err := usecase.storeImage(ctx, payload.Image, imageInfo)
		if err != nil {
			return model.PostResponse{}, err
		}
		post.Image = &key
	}

	err = usecase.PostStore.Update(ctx, &post)
	if err != nil {
		if payload.Image != nil {
			usecase.discardImage(ctx, *post.Image, "failed to remove image of post that could not be updated")
		}
		return model.PostResponse{}, err
	}

	if payload.Image != nil && oldImage != nil && *oldImage != "" {
		usecase.discardImage(ctx, *oldImage, "failed to remove replaced post image")
	}

	return usecase.toResponse(post), nil
}

func (usecase *PostUsecase) Destroy(ctx context.Context, idParam string) error {
	id, err := ParsePostId(idParam)
	if err != nil {
		return err
	}

	post, err := usecase.PostStore.FindById(ctx, id)
	if err != nil {
		return err
	}

	err = usecase.PostStore.Delete(ctx, post.Id)
	if err != nil {
		return err
	}

	if post.Image != nil && *post.Image != "" {
		usecase.discardImage(ctx, *post.Image, "failed to remove image of deleted post")
	}

	return nil
}

// storeImage reuses what validation detected and only inspects the file
// again when it has no result.
func (usecase *PostUsecase) storeImage(ctx context.Context, fileHeader *multipart.FileHeader, info util.ImageInfo) (string, error) {
	if info.ContentType == "" {
		detected, err := util.DetectImage(fileHeader)
		if err != nil {
			return "", fmt.Errorf("detect uploaded image: %w", err)
		}
		info = detected
	}

	src, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("open uploaded image: %w", err)
	}
	defer src.Close()

	key, err := usecase.Disk.Store(ctx, constant.POST_IMAGE_DIR, util.GenerateObjectName(info.Extension), src, fileHeader.Size, info.ContentType)
	if err != nil {
		return "", fmt.Errorf("store post image: %w", err)
	}

	return key, nil
}

// discardImage removes a blob that is no longer referenced. Failures only
// leave an orphaned blob behind, so they are logged and swallowed.
func (usecase *PostUsecase) discardImage(ctx context.Context, key string, message string) {
	log := observability.WithContext(ctx, usecase.Log)

	exists, err := usecase.Disk.Exists(ctx, key)
	if err != nil {
		log.Error(message, zap.String("image", key), zap.Error(err))
		return
	}

	if !exists {
		log.Debug("post image already missing", zap.String("image", key))
		return
	}

	err = usecase.Disk.Delete(ctx, key)
	if err != nil && !errors.Is(err, storage.ErrObjectNotFound) {
		log.Error(message, zap.String("image", key), zap.Error(err))
	}
}

func (usecase *PostUsecase) toResponse(post model.Post) model.PostResponse {
	response := model.PostResponse{
		Id:        post.Id,
		Title:     post.Title,
		Author:    post.Author,
		Article:   post.Article,
		Image:     post.Image,
		CreatedAt: post.CreatedAt,
		UpdatedAt: post.UpdatedAt,
	}

	if post.Image != nil && *post.Image != "" {
		response.ImageUrl = usecase.imageUrl(*post.Image)
	}

	return response
}

func (usecase *PostUsecase) imageUrl(key string) string {
	appUrl := strings.TrimRight(usecase.Config.String("APP_URL"), "/")

	return fmt.Sprintf("%s/%s/%s", appUrl, constant.STORAGE_URL_PREFIX, key)
}
