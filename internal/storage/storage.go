package storage

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"framework4future/portal/internal/config"
)

// ErrNotImage is returned when the uploaded bytes are not a supported image.
var ErrNotImage = errors.New("not an image")

// ImageStore persists an uploaded image and returns its public URL.
type ImageStore interface {
	Save(ctx context.Context, data []byte) (string, error)
}

// New returns the Cloudinary store when credentials are configured and the
// local disk store otherwise.
func New(upload config.UploadConfig, cloud config.CloudinaryConfig) ImageStore {
	if cloud.Enabled() {
		return NewCloudinaryStore(cloud, nil)
	}
	return NewLocalStore(upload.Dir, upload.PublicBaseURL)
}

var imageExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// DetectImage sniffs data and returns its content type and file extension.
func DetectImage(data []byte) (string, string, error) {
	contentType := http.DetectContentType(data)
	if i := strings.Index(contentType, ";"); i != -1 {
		contentType = contentType[:i]
	}
	ext, ok := imageExtensions[contentType]
	if !ok {
		return "", "", ErrNotImage
	}
	return contentType, ext, nil
}
