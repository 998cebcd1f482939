package storage

import (
	"context"
	"fmt"
	"io"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"
)

// StorageService uploads verification documents and returns their URLs.
type StorageService interface {
	UploadDocument(ctx context.Context, file io.Reader, folder string) (string, error)
	DeleteDocument(ctx context.Context, publicID string) error
}

// CloudinaryStorage implements StorageService on Cloudinary.
type CloudinaryStorage struct {
	cld *cloudinary.Cloudinary
}

// NewStorageService creates a Cloudinary-backed StorageService.
func NewStorageService(cld *cloudinary.Cloudinary) StorageService {
	return &CloudinaryStorage{cld: cld}
}

// UploadDocument uploads a file into the given folder and returns its
// delivery URL.
func (s *CloudinaryStorage) UploadDocument(ctx context.Context, file io.Reader, folder string) (string, error) {
	uploadParams := uploader.UploadParams{
		Folder:   folder,
		PublicID: uuid.New().String(),
	}
	result, err := s.cld.Upload.Upload(ctx, file, uploadParams)
	if err != nil {
		return "", fmt.Errorf("CloudinaryStorage: failed to upload file: %w", err)
	}
	if result.SecureURL == "" {
		return "", fmt.Errorf("CloudinaryStorage: no URL returned")
	}
	return result.SecureURL, nil
}

// DeleteDocument removes an uploaded file by its public ID.
func (s *CloudinaryStorage) DeleteDocument(ctx context.Context, publicID string) error {
	if _, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID}); err != nil {
		return fmt.Errorf("CloudinaryStorage: failed to delete file: %w", err)
	}
	return nil
}
