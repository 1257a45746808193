package testinfra

import (
	"bytes"
	"encoding/json"
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/stretchr/testify/require"
)

func testImage(width, height int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 200, A: 255})
		}
	}

	return img
}

func CreateTestPNGImage(t *testing.T) []byte {
	var buffer bytes.Buffer
	require.NoError(t, png.Encode(&buffer, testImage(4, 4)))

	return buffer.Bytes()
}

func CreateTestJPEGImage(t *testing.T) []byte {
	var buffer bytes.Buffer
	require.NoError(t, jpeg.Encode(&buffer, testImage(4, 4), nil))

	return buffer.Bytes()
}

func CreateTestGIFImage(t *testing.T) []byte {
	var buffer bytes.Buffer
	require.NoError(t, gif.Encode(&buffer, testImage(4, 4), nil))

	return buffer.Bytes()
}

// UploadFile is a file part of a multipart body.
type UploadFile struct {
	FieldName string
	FileName  string
	Data      []byte
}

// CreateMultipartFormData builds a multipart body with the given text fields
// and an optional file.
func CreateMultipartFormData(t *testing.T, fields map[string]string, file *UploadFile) (*bytes.Buffer, string) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	for key, value := range fields {
		err := writer.WriteField(key, value)
		require.NoError(t, err, "failed to write form field %s", key)
	}

	if file != nil {
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`, file.FieldName, file.FileName))
		header.Set("Content-Type", "application/octet-stream")

		part, err := writer.CreatePart(header)
		require.NoError(t, err, "failed to create form file field")

		_, err = part.Write(file.Data)
		require.NoError(t, err, "failed to write file data")
	}

	err := writer.Close()
	require.NoError(t, err, "failed to close multipart writer")

	return body, writer.FormDataContentType()
}

// FileHeader runs data through a multipart round trip and returns the
// resulting header, as a request handler would see it.
func FileHeader(t *testing.T, fieldName, fileName string, data []byte) *multipart.FileHeader {
	body, contentType := CreateMultipartFormData(t, nil, &UploadFile{FieldName: fieldName, FileName: fileName, Data: data})

	req := httptest.NewRequest(http.MethodPost, "/", body)
	req.Header.Set("Content-Type", contentType)

	err := req.ParseMultipartForm(32 << 20)
	require.NoError(t, err, "failed to parse multipart form")

	t.Cleanup(func() {
		_ = req.MultipartForm.RemoveAll()
	})

	files := req.MultipartForm.File[fieldName]
	require.Len(t, files, 1)

	return files[0]
}

// CreateJSONRequest creates a test request with JSON body
func CreateJSONRequest(method, url string, jsonBody []byte) *http.Request {
	req := httptest.NewRequest(method, url, bytes.NewReader(jsonBody))
	req.Header.Set("Content-Type", "application/json")
	return req
}

// CreateAuthRequest creates a test request with JSON body and Authorization header
func CreateAuthRequest(method, url string, jsonBody []byte, token string) *http.Request {
	req := CreateJSONRequest(method, url, jsonBody)
	if token != "" {
		req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", token))
	}
	return req
}

// CreateAuthMultipartRequest creates a test request with multipart body and Authorization header
func CreateAuthMultipartRequest(method, url string, body *bytes.Buffer, contentType string, token string) *http.Request {
	req := httptest.NewRequest(method, url, body)
	req.Header.Set("Content-Type", contentType)
	if token != "" {
		req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", token))
	}
	return req
}

// ParseJSONResponse helper to parse JSON response body
func ParseJSONResponse(t *testing.T, resp *http.Response) map[string]interface{} {
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err, "failed to read response body")
	require.NotEmpty(t, body, "response body should not be empty")

	var result map[string]interface{}
	err = json.Unmarshal(body, &result)
	require.NoError(t, err, "failed to parse JSON response")

	return result
}

func ParseJSONArrayResponse(t *testing.T, resp *http.Response) []interface{} {
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err, "failed to read response body")

	var result []interface{}
	err = json.Unmarshal(body, &result)
	require.NoError(t, err, "failed to parse JSON response")

	return result
}

// FieldErrors returns the messages of one field of a 422 response.
func FieldErrors(t *testing.T, result map[string]interface{}, field string) []string {
	errorsObj, ok := result["errors"].(map[string]interface{})
	require.True(t, ok, "errors field should be an object")

	raw, ok := errorsObj[field].([]interface{})
	if !ok {
		return nil
	}

	messages := make([]string, 0, len(raw))
	for _, message := range raw {
		messages = append(messages, message.(string))
	}

	return messages
}
