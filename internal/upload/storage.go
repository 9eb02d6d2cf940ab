package upload

import (
	"context"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/izzypositivetech-001/Attendifybackend/internal/httperr"
)

// Storage is the profile-image collaborator. Save returns the public path
// the stored file is reachable under; Remove accepts that same path.
type Storage interface {
	Save(ctx context.Context, file *multipart.FileHeader) (string, error)
	Remove(ctx context.Context, path string) error
}

var allowedExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
}

var allowedContentTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
}

// validate enforces the JPEG/PNG/GIF + size limit rules, sniffing the
// actual content instead of trusting the client's content type. It returns
// the canonical extension for the detected type.
func validate(file *multipart.FileHeader, maxBytes int64) (string, error) {
	if file.Size > maxBytes {
		return "", httperr.ErrBusiness("file_too_large")
	}

	if !allowedExts[strings.ToLower(filepath.Ext(file.Filename))] {
		return "", httperr.ErrBusiness("invalid_file_type")
	}

	f, err := file.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()

	head := make([]byte, 512)
	n, err := f.Read(head)
	if err != nil && n == 0 {
		return "", httperr.ErrBusiness("invalid_file_type")
	}

	ext, ok := allowedContentTypes[http.DetectContentType(head[:n])]
	if !ok {
		return "", httperr.ErrBusiness("invalid_file_type")
	}
	return ext, nil
}
