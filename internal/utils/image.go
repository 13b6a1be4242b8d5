package utils

import (
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"slices"
	"strings"

	"rhea-backend/domain"
)

// Upload is an image read out of a multipart form.
type Upload struct {
	Filename    string
	ContentType string
	Data        []byte
}

func (u *Upload) Size() int64 {
	return int64(len(u.Data))
}

// Extension returns the lower-cased extension without the dot, falling back to jpg.
func (u *Upload) Extension() string {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(u.Filename)), ".")
	if ext == "" {
		return "jpg"
	}
	return ext
}

func AllowImage(contentType string) bool {
	return slices.Contains(domain.AllowedImageTypes, strings.ToLower(contentType))
}

// ValidateImage applies the shared upload policy. Every failure wraps ErrInvalidInput.
func ValidateImage(u *Upload) error {
	if u == nil || u.Filename == "" {
		return fmt.Errorf("%w: No filename provided", domain.ErrInvalidInput)
	}
	if len(u.Data) == 0 {
		return fmt.Errorf("%w: Empty file uploaded", domain.ErrInvalidInput)
	}
	if len(u.Data) > domain.MAX_IMAGE_SIZE {
		return fmt.Errorf("%w: File too large. Maximum size is 10MB", domain.ErrInvalidInput)
	}
	if !AllowImage(u.ContentType) {
		return fmt.Errorf("%w: Invalid image file format. Supported formats: JPEG, PNG, WEBP", domain.ErrInvalidInput)
	}
	return nil
}

// ReadUpload loads a form file into memory. Reading stops one byte past the
// size limit, so oversized files are still returned and ValidateImage
// rejects them after the caller's own checks.
func ReadUpload(fh *multipart.FileHeader) (*Upload, error) {
	if fh == nil {
		return nil, fmt.Errorf("%w: No file provided", domain.ErrInvalidInput)
	}

	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, domain.MAX_IMAGE_SIZE+1))
	if err != nil {
		return nil, err
	}

	return &Upload{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}
