package services

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/ayeshchamikara/gradepoint/internal/app/models"
	"github.com/ayeshchamikara/gradepoint/internal/app/repositories"
	"github.com/ayeshchamikara/gradepoint/internal/pkg/apperrors"
)

// ProfileService defines the interface for user profile operations. The
// profile is a singleton record: Save overwrites it, Delete resets it to the
// all-empty default. Unlike transcript saves these writes are awaited, the
// profile editor's Save action only leaves edit mode once the record is
// durable.
type ProfileService interface {
	Get(ctx context.Context) (models.UserProfile, error)
	Save(ctx context.Context, profile models.UserProfile) error
	Delete(ctx context.Context) error
	EncodePhoto(fileHeader *multipart.FileHeader) (string, error)
}

// profileServiceImpl implements the ProfileService interface
type profileServiceImpl struct {
	profileRepo   *repositories.ProfileRepository
	maxPhotoBytes int64
}

// NewProfileService creates a new profile service instance
func NewProfileService(profileRepo *repositories.ProfileRepository, maxPhotoBytes int64) ProfileService {
	return &profileServiceImpl{
		profileRepo:   profileRepo,
		maxPhotoBytes: maxPhotoBytes,
	}
}

// Get retrieves the stored profile, or the all-empty default.
func (s *profileServiceImpl) Get(ctx context.Context) (models.UserProfile, error) {
	profile, err := s.profileRepo.Get(ctx)
	if err != nil {
		return models.UserProfile{}, fmt.Errorf("error retrieving profile: %w", err)
	}
	return profile, nil
}

// Save upserts the profile under its fixed key.
func (s *profileServiceImpl) Save(ctx context.Context, profile models.UserProfile) error {
	if err := s.profileRepo.Upsert(ctx, profile); err != nil {
		return fmt.Errorf("error saving profile: %w", err)
	}
	return nil
}

// Delete clears every profile field and persists the empty record.
func (s *profileServiceImpl) Delete(ctx context.Context) error {
	if err := s.profileRepo.Clear(ctx); err != nil {
		return fmt.Errorf("error clearing profile: %w", err)
	}
	return nil
}

// EncodePhoto reads an uploaded image and returns it as an inline base64
// data URI. Uploads above the configured size cap are rejected; the stored
// string itself is never validated as an image.
func (s *profileServiceImpl) EncodePhoto(fileHeader *multipart.FileHeader) (string, error) {
	if fileHeader == nil {
		return "", apperrors.ErrPhotoUnreadable
	}
	if fileHeader.Size > s.maxPhotoBytes {
		return "", apperrors.ErrPhotoTooLarge
	}

	file, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("%w: %v", apperrors.ErrPhotoUnreadable, err)
	}
	defer file.Close()

	// LimitReader guards against a lying Size header.
	data, err := io.ReadAll(io.LimitReader(file, s.maxPhotoBytes+1))
	if err != nil {
		return "", fmt.Errorf("%w: %v", apperrors.ErrPhotoUnreadable, err)
	}
	if int64(len(data)) > s.maxPhotoBytes {
		return "", apperrors.ErrPhotoTooLarge
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = http.DetectContentType(data)
	}

	return "data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}
