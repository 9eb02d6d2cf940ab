package upload

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/izzypositivetech-001/Attendifybackend/internal/httperr"
)

// LocalStorage writes uploads to a directory served statically under
// publicPath.
type LocalStorage struct {
	dir        string
	publicPath string
	maxBytes   int64
}

func NewLocalStorage(dir, publicPath string, maxBytes int64) (*LocalStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}

	return &LocalStorage{
		dir:        dir,
		publicPath: strings.TrimSuffix(publicPath, "/"),
		maxBytes:   maxBytes,
	}, nil
}

func (s *LocalStorage) Save(ctx context.Context, file *multipart.FileHeader) (string, error) {
	ext, err := validate(file, s.maxBytes)
	if err != nil {
		return "", err
	}

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	name := "profile-" + uuid.NewString() + ext

	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}

	return s.publicPath + "/" + name, nil
}

func (s *LocalStorage) Remove(ctx context.Context, p string) error {
	if p == "" {
		return nil
	}
	if !strings.HasPrefix(p, s.publicPath+"/") {
		return httperr.ErrBusiness("unknown_file_path")
	}

	// Base strips any traversal the stored path could carry.
	return os.Remove(filepath.Join(s.dir, path.Base(p)))
}
