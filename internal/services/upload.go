package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

var ErrInvalidImage = errors.New("invalid image data")

// UploadService is a placeholder for object storage. It validates that the
// payload is a data URI and returns a synthetic hosted URL.
//
// TODO: replace with an S3-compatible backend once a bucket is provisioned.
type UploadService struct {
	baseURL string
}

func NewUploadService(baseURL string) *UploadService {
	return &UploadService{baseURL: strings.TrimSuffix(baseURL, "/")}
}

func (s *UploadService) Upload(ctx context.Context, dataURI string) (string, error) {
	if !strings.HasPrefix(dataURI, "data:image") {
		return "", ErrInvalidImage
	}
	return fmt.Sprintf("%s/uploads/%s", s.baseURL, uuid.New().String()), nil
}
