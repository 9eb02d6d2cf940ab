package upload

import (
	"context"
	"mime/multipart"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/izzypositivetech-001/Attendifybackend/internal/config"
	"github.com/izzypositivetech-001/Attendifybackend/internal/httperr"
)

const s3KeyPrefix = "profiles/"

// S3Storage keeps profile images in an S3 bucket; the returned path is the
// public object URL.
type S3Storage struct {
	client    *s3.Client
	bucket    string
	publicURL string
	maxBytes  int64
}

func NewS3Storage(cfg *config.Config) *S3Storage {
	client := s3.New(s3.Options{
		Region: cfg.S3Region,
		Credentials: credentials.NewStaticCredentialsProvider(
			cfg.S3AccessKey,
			cfg.S3SecretKey,
			"",
		),
	})

	return &S3Storage{
		client:    client,
		bucket:    cfg.S3Bucket,
		publicURL: strings.TrimSuffix(cfg.S3PublicURL, "/"),
		maxBytes:  cfg.MaxUploadBytes(),
	}
}

func (s *S3Storage) Save(ctx context.Context, file *multipart.FileHeader) (string, error) {
	ext, err := validate(file, s.maxBytes)
	if err != nil {
		return "", err
	}

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	key := s3KeyPrefix + "profile-" + uuid.NewString() + ext

	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          src,
		ContentType:   aws.String(file.Header.Get("Content-Type")),
		ContentLength: aws.Int64(file.Size),
	})
	if err != nil {
		return "", err
	}

	return s.publicURL + "/" + key, nil
}

func (s *S3Storage) Remove(ctx context.Context, p string) error {
	if p == "" {
		return nil
	}
	if !strings.HasPrefix(p, s.publicURL+"/") {
		return httperr.ErrBusiness("unknown_file_path")
	}

	key := strings.TrimPrefix(p, s.publicURL+"/")

	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	return err
}
