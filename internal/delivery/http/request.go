package http

import (
	"mime/multipart"
	"net/url"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/ferdian3456/postapi/internal/constant"
	"github.com/ferdian3456/postapi/internal/model"
	"github.com/ferdian3456/postapi/internal/validator"
	"github.com/gofiber/fiber/v2"
)

// readInput collects the request fields from a multipart, urlencoded or
// JSON body. Only the first value of a repeated field is kept.
func readInput(ctx *fiber.Ctx) (validator.Input, error) {
	input := validator.Input{
		Values: make(map[string]any),
		Files:  make(map[string]*multipart.FileHeader),
	}

	contentType := strings.ToLower(ctx.Get(fiber.HeaderContentType))

	switch {
	case strings.HasPrefix(contentType, fiber.MIMEMultipartForm):
		form, err := ctx.MultipartForm()
		if err != nil {
			return input, invalidRequestBody()
		}

		for name, values := range form.Value {
			if len(values) > 0 {
				input.Values[name] = values[0]
			}
		}

		for name, files := range form.File {
			if len(files) > 0 {
				input.Files[name] = files[0]
			}
		}

	case strings.HasPrefix(contentType, fiber.MIMEApplicationForm):
		values, err := url.ParseQuery(string(ctx.Body()))
		if err != nil {
			return input, invalidRequestBody()
		}

		for name := range values {
			input.Values[name] = values.Get(name)
		}

	case strings.HasPrefix(contentType, fiber.MIMEApplicationJSON):
		body := ctx.Body()
		if len(body) == 0 {
			return input, nil
		}

		err := sonic.Unmarshal(body, &input.Values)
		if err != nil {
			return input, invalidRequestBody()
		}
	}

	return input, nil
}

func invalidRequestBody() error {
	return &model.ValidationError{
		Code:    constant.ERR_INVALID_REQUEST_BODY_ERROR_CODE,
		Message: constant.ERR_INVALID_REQUEST_BODY_MESSAGE,
		Param:   "body",
	}
}
