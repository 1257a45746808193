package util

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"

	"github.com/h2non/bimg"
)

var ErrNotAnImage = errors.New("file is not an image")

// imageContentTypes lists the formats accepted as uploads at all. Which of
// them a field allows is decided by the validator's Mimes rule.
var imageContentTypes = map[bimg.ImageType]string{
	bimg.JPEG: "image/jpeg",
	bimg.PNG:  "image/png",
	bimg.GIF:  "image/gif",
	bimg.WEBP: "image/webp",
}

// ImageExtensions maps a detected content type to the extensions it may be
// uploaded as. The first extension is used for the stored object name.
var ImageExtensions = map[string][]string{
	"image/jpeg": {"jpg", "jpeg"},
	"image/png":  {"png"},
	"image/gif":  {"gif"},
	"image/webp": {"webp"},
}

type ImageInfo struct {
	ContentType string
	Extension   string
	Width       int
	Height      int
}

// DetectImage inspects the uploaded content, never the client-supplied name.
func DetectImage(fileHeader *multipart.FileHeader) (ImageInfo, error) {
	src, err := fileHeader.Open()
	if err != nil {
		return ImageInfo{}, err
	}
	defer src.Close()

	return DetectImageReader(src)
}

func DetectImageReader(src io.Reader) (ImageInfo, error) {
	buffer, err := io.ReadAll(src)
	if err != nil {
		return ImageInfo{}, err
	}

	imageType := bimg.DetermineImageType(buffer)
	contentType, ok := imageContentTypes[imageType]
	if !ok {
		return ImageInfo{}, fmt.Errorf("%w: detected %s", ErrNotAnImage, bimg.ImageTypeName(imageType))
	}

	// Size makes libvips parse the header, so a valid signature over a
	// corrupted body is still rejected
	size, err := bimg.NewImage(buffer).Size()
	if err != nil {
		return ImageInfo{}, fmt.Errorf("%w: %v", ErrNotAnImage, err)
	}

	return ImageInfo{
		ContentType: contentType,
		Extension:   ImageExtensions[contentType][0],
		Width:       size.Width,
		Height:      size.Height,
	}, nil
}
